package utils

import (
	"errors"
	"fmt"
)

// Domain error categories. Services attach one of these to every expected
// failure so controllers can classify with errors.Is without knowing the
// individual cause.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// DomainError carries a client-facing message plus its category.
type DomainError struct {
	kind error
	msg  string
}

func (e *DomainError) Error() string { return e.msg }
func (e *DomainError) Unwrap() error { return e.kind }

func InvalidInputf(format string, args ...interface{}) error {
	return &DomainError{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &DomainError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func InvalidStatef(format string, args ...interface{}) error {
	return &DomainError{kind: ErrInvalidState, msg: fmt.Sprintf(format, args...)}
}
