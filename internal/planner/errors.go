package planner

import (
	"errors"

	"github.com/alexanderramin/pathwise/internal/domain"
)

var (
	// ErrConfiguration means no credential could be resolved. No request was sent.
	ErrConfiguration = errors.New("api configuration error")

	// ErrService means the call to the generative-AI service failed or
	// returned a non-success status.
	ErrService = errors.New("generative-ai service error")

	// ErrNoResponse means the service answered with an empty body or with
	// text that is not a valid plan.
	ErrNoResponse = errors.New("no response received from AI")
)

// ErrorKind classifies a RequestPlan failure.
type ErrorKind string

const (
	KindNone           ErrorKind = ""
	KindConfiguration  ErrorKind = "configuration"
	KindService        ErrorKind = "service"
	KindNoResponse     ErrorKind = "no_response"
	KindInvalidProfile ErrorKind = "invalid_profile"
	KindUnknown        ErrorKind = "unknown"
)

// failureMessage is shown to the user for every request failure.
const failureMessage = "Failed to generate roadmap. Please check your network connection and API key."

// Kind maps an error returned by RequestPlan to its kind.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrNoResponse):
		return KindNoResponse
	case errors.Is(err, ErrService):
		return KindService
	case errors.Is(err, domain.ErrIncompleteProfile):
		return KindInvalidProfile
	default:
		return KindUnknown
	}
}

// UserMessage converts any request failure into the single message shown
// to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return failureMessage
}

// NeedsCredential reports whether the failure should prompt the user to
// re-enter the API key.
func NeedsCredential(err error) bool {
	k := Kind(err)
	return k == KindConfiguration || k == KindService
}
