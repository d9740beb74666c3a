// Package apierrors classifies domain errors so that transports can map them
// to a status without knowing the domain packages.
//
// Kinds follow the client/server split: ClientInput and Conflict tell the
// caller to fix the request, Upstream tells it to try again later.
package apierrors

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Kind is the error class of an Error.
type Kind int

const (
	KindInternal Kind = iota
	KindClientInput
	KindConflict
	KindNotFound
	KindUpstream
	KindNotAllowed
)

// CodeInternal is reported for errors that carry no classification.
const CodeInternal = "INTERNAL"

// Error is a classified error. Sentinels of this type are wrapped with
// fmt.Errorf("%w: ...") by the domain packages and recovered with errors.As.
type Error struct {
	Kind Kind
	// Code is the stable machine-readable reason sent to clients.
	Code string
	// GRPCCode overrides the default gRPC code for Kind when set.
	GRPCCode codes.Code
	Err      error
}

// New returns a classified sentinel error.
func New(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Err: errors.New(msg)}
}

// WithGRPCCode returns a copy of e reporting c over gRPC.
func (e *Error) WithGRPCCode(c codes.Code) *Error {
	cp := *e
	cp.GRPCCode = c
	return &cp
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the HTTP status for the error class.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindClientInput, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Status returns the gRPC code for the error class.
func (e *Error) Status() codes.Code {
	if e.GRPCCode != codes.OK {
		return e.GRPCCode
	}
	switch e.Kind {
	case KindClientInput:
		return codes.InvalidArgument
	case KindConflict:
		return codes.FailedPrecondition
	case KindNotFound:
		return codes.NotFound
	case KindUpstream:
		return codes.Unavailable
	case KindNotAllowed:
		return codes.Unimplemented
	default:
		return codes.Internal
	}
}

var internal = New(KindInternal, CodeInternal, "internal error")

// Inspect returns the classified error wrapped in err, or a generic internal
// error when err carries no classification.
func Inspect(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return internal
}
