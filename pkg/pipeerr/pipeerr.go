// Package pipeerr defines the error kinds shared by the OCR and paraphrase
// dispatchers.
//
// Remote provider calls fail in three distinguishable ways and callers handle
// each kind differently, so the kind travels with the error:
//
// - Configuration: the request can never succeed as configured (unknown
//   provider identifier, missing credential).
// - Transient: the service could not be reached (timeout, connection failure).
// - RemoteService: the service was reached but returned a non-success status
//   or an unusable payload.
//
// Errors built here wrap their cause; errors.As against *pipeerr.Error and
// the Is* helpers both work through wrapping done with github.com/pkg/errors
// or fmt.Errorf("%w").
package pipeerr

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes of provider calls.
type Kind int

const (
	// Configuration means the request can never succeed as configured.
	Configuration Kind = iota
	// Transient means the remote service could not be reached.
	Transient
	// RemoteService means the service responded with a non-success result.
	RemoteService
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Transient:
		return "transient"
	case RemoteService:
		return "remote service"
	default:
		return "unknown"
	}
}

// Error is a provider failure tagged with its kind.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind wrapping a cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf reports the kind of err and whether err carries one at all.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// IsConfiguration reports whether err is a Configuration error.
func IsConfiguration(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Configuration
}

// IsTransient reports whether err is a Transient error.
func IsTransient(err error) bool {
	k, ok := KindOf(err)
	return ok && k == Transient
}

// IsRemoteService reports whether err is a RemoteService error.
func IsRemoteService(err error) bool {
	k, ok := KindOf(err)
	return ok && k == RemoteService
}
