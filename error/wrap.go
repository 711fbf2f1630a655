package error

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-awserror/command"
	"github.com/next-trace/scg-awserror/contract"
)

// ErrInvalidOrigin is returned by Wrap when the failure was not produced by a
// recognized service client.
var ErrInvalidOrigin = errors.New("the wrapped failure must come from a contract.Client")

// Wrap builds a service error from a command failure.
//
// Behavior:
//   - nil failure, or an origin that is not a contract.Client (or has no API model) => ErrInvalidOrigin
//   - message is "<service> Error: " followed by the service-reported message,
//     or the failure's own message when the service reported none
//   - request id, error code and error type are copied from the error context when present
//
// The failure is not modified and is kept as the cause of the result.
func Wrap(f *command.Failure, opts ...Option) (*Error, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil failure", ErrInvalidOrigin)
	}

	client, ok := f.Client.(contract.Client)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidOrigin, f.Client)
	}

	api := client.API()
	if api == nil {
		return nil, fmt.Errorf("%w: %T has no API model", ErrInvalidOrigin, f.Client)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx := f.Context()

	e := &Error{
		message: serviceName(api) + " Error: " + messageText(f, ctx, o.emptyMessage),
		client:  client,
		cause:   f,
	}
	e.requestID, _ = ctx.Lookup(command.PathRequestID)
	e.errorType, _ = ctx.Lookup(command.PathType)
	e.errorCode, _ = ctx.Lookup(command.PathCode)

	return e, nil
}

// MustWrap is like Wrap but panics on ErrInvalidOrigin.
// It is meant for pipeline code where a non-service origin is a programming error.
func MustWrap(f *command.Failure, opts ...Option) *Error {
	e, err := Wrap(f, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// As finds the first *Error in err's chain.
//
// Behavior:
//   - nil input => (nil, false)
//   - if err is or wraps an *Error => that error, true
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	var e *Error

	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

func serviceName(api contract.API) string {
	if v, ok := api.Metadata(contract.MetadataEndpointPrefix); ok {
		return v
	}

	return api.EndpointPrefix()
}

func messageText(f *command.Failure, ctx *command.ErrorContext, p EmptyMessagePolicy) string {
	if msg, ok := ctx.Lookup(command.PathMessage); ok {
		return msg
	}

	// A context exists but its message is empty.
	if p == PreserveEmpty && ctx != nil {
		return ""
	}

	if f.Message != "" {
		return f.Message
	}

	return f.Error()
}
