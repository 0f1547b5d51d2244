package domain

import "time"

// Setting is one locally persisted key/value pair.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
