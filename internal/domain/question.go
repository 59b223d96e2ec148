package domain

import (
	"strings"
	"time"
)

// DefaultOptions is substituted when a caller asks a question without
// suggesting any options of its own.
var DefaultOptions = []string{"Continue", "Make changes", "Finish"}

// Timeout bounds. Anything below MinTimeout means "wait indefinitely";
// anything above MaxTimeout is capped.
const (
	MinTimeout = 1 * time.Minute
	MaxTimeout = 1440 * time.Minute
)

// Question is the immutable input driving one prompt session.
type Question struct {
	CloseOnSubmit bool
	Options       []string
	Text          string
	Timeout       time.Duration // 0 means wait indefinitely
}

// NewQuestion builds a normalized Question: the text must be non-empty after
// trimming, empty options are replaced with DefaultOptions, and the timeout is
// normalized through NormalizeTimeout.
func NewQuestion(text string, options []string, timeout time.Duration, closeOnSubmit bool) (Question, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Question{}, ErrEmptyQuestion
	}

	opts := make([]string, 0, len(options))
	for _, o := range options {
		if strings.TrimSpace(o) != "" {
			opts = append(opts, o)
		}
	}
	if len(opts) == 0 {
		opts = append(opts, DefaultOptions...)
	}

	return Question{
		CloseOnSubmit: closeOnSubmit,
		Options:       opts,
		Text:          trimmed,
		Timeout:       NormalizeTimeout(timeout),
	}, nil
}

// NormalizeTimeout maps a requested timeout onto the supported range:
// below one minute waits indefinitely (0), above 1440 minutes is capped.
func NormalizeTimeout(d time.Duration) time.Duration {
	if d < MinTimeout {
		return 0
	}
	if d > MaxTimeout {
		return MaxTimeout
	}
	return d
}
