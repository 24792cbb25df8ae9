package rand

import (
	"github.com/pkg/errors"
)

// Kind is the severity classification of a generator error.
type Kind uint8

// about error kinds
const (
	// KindUnavailable means the generator is not available now
	// and retrying is not expected to help.
	KindUnavailable Kind = iota

	// KindUnexpected means the failure does not fit any other
	// classification, it is treated like KindUnavailable.
	KindUnexpected

	// KindTransient means the failure is ephemeral, it is safe
	// to retry immediately.
	KindTransient

	// KindNotReady means the generator needs more time before
	// it can produce output, retry later.
	KindNotReady
)

// ShouldRetry is used to check the failed operation is worth retrying.
func (k Kind) ShouldRetry() bool {
	return k == KindTransient || k == KindNotReady
}

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindUnexpected:
		return "unexpected"
	case KindTransient:
		return "transient"
	case KindNotReady:
		return "not ready"
	default:
		return "unknown kind"
	}
}

// Error is a generator error with a severity classification, Err
// is the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

// NewError is used to create a classified error from a text message.
func NewError(kind Kind, text string) *Error {
	return &Error{Kind: kind, Err: errors.New(text)}
}

// WrapError is used to classify an existing error and add a message.
func WrapError(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Err: errors.Wrap(err, msg)}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

// Cause is used to get the underlying cause of the error.
func (e *Error) Cause() error {
	return errors.Cause(e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// asError is used to coerce an arbitrary error from a SeedFunc to
// a classified one, unknown errors get the residual classification.
func asError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: KindUnexpected, Err: err}
}
