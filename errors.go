package dirinfo

import (
	"errors"
	"strconv"
)

// errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMalformedPath   = errors.New("malformed path")
	ErrPathTooLong     = errors.New("path too long")
	ErrAccessDenied    = errors.New("access denied")
	ErrBrokenChain     = errors.New("broken parent chain")
)

var errNilResolver = errors.New("nil resolver")

// pathError joins one of the sentinel errors above with the name it happened on
// and the underlying platform error, if any
type pathError struct {
	kind  error
	name  string
	cause error
}

var _ error = (*pathError)(nil)

func newPathError(kind error, name string, cause error) error {
	return &pathError{kind: kind, name: name, cause: cause}
}

func (err *pathError) Error() string {
	if err == nil {
		return "(*pathError)(nil)"
	}
	message := err.kind.Error() + ": " + strconv.Quote(err.name)
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *pathError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}
