package service

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameInUse = errors.New("username already in use")
	ErrEmailInUse    = errors.New("email already in use")
	ErrSlugInUse     = errors.New("slug already in use")
	ErrReviewExists  = errors.New("review for this title already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// confirmation code so the token endpoint can't be used to probe
	// which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is the uniform denial; it carries no hint whether the
	// target exists.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError is a client-visible input rejection with field detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
