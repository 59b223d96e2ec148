package domain

import "fmt"

// ResultStatus is the terminal status of a prompt session.
type ResultStatus string

const (
	StatusAnswered  ResultStatus = "answered"
	StatusCancelled ResultStatus = "cancelled"
)

// Result is the artifact a prompt session writes exactly once on termination.
// The JSON form is self-describing so any reader can parse it without shared
// code: {"status":"answered","text":"..."} or {"status":"cancelled"}.
type Result struct {
	Status ResultStatus `json:"status"`
	Text   string       `json:"text,omitempty"`
}

// NewAnswered returns an answered Result carrying the user's final message.
func NewAnswered(text string) Result {
	return Result{Status: StatusAnswered, Text: text}
}

// NewCancelled returns a cancelled Result.
func NewCancelled() Result {
	return Result{Status: StatusCancelled}
}

// Validate checks that a decoded Result carries a known status.
func (r Result) Validate() error {
	switch r.Status {
	case StatusAnswered, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("unknown result status %q", r.Status)
	}
}

// Answered reports whether the session produced an answer.
func (r Result) Answered() bool {
	return r.Status == StatusAnswered
}
