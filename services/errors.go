package services

import "errors"

// ErrInvalidInput is matched by every InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a missing or malformed request field. Message is shown
// to the caller as is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(message string) error {
	return &InputError{Message: message}
}
