package llm

import "errors"

var (
	// ErrRequestFailed indicates the model service could not be reached or
	// answered with a non-success status.
	ErrRequestFailed = errors.New("llm request failed")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the service answered but returned no text.
	ErrEmptyResponse = errors.New("no response received from llm")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrMissingAPIKey indicates a request was built without a credential.
	ErrMissingAPIKey = errors.New("llm api key is required")
)
