package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// ClientError is an error whose message is safe to show to the caller verbatim.
// It matches its Kind sentinel with errors.Is.
type ClientError struct {
	Kind     error
	Problems []string
}

func (e *ClientError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ClientError) Is(target error) bool {
	return target == e.Kind
}

func invalidInput(format string, args ...any) error {
	return &ClientError{Kind: ErrInvalidInput, Problems: []string{fmt.Sprintf(format, args...)}}
}

func notFound(format string, args ...any) error {
	return &ClientError{Kind: ErrNotFound, Problems: []string{fmt.Sprintf(format, args...)}}
}
