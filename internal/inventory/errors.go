package inventory

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Service wraps exactly one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// opError carries a caller-facing message while matching its kind with errors.Is.
type opError struct {
	kind error
	msg  string
}

func (e *opError) Error() string { return e.msg }
func (e *opError) Unwrap() error { return e.kind }

func notFound(format string, args ...any) error {
	return &opError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func invalidArgument(format string, args ...any) error {
	return &opError{kind: ErrInvalidArgument, msg: fmt.Sprintf(format, args...)}
}
