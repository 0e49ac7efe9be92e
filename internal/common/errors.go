// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Import errors.
var (
	// ErrNoHeader means the sheet text has no recognizable header row.
	ErrNoHeader = errors.New("no header row in sheet")
	// ErrEmptySheet means the sheet parsed but contained no usable product rows.
	ErrEmptySheet = errors.New("no product rows in sheet")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
