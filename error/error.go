package error

import (
	"log/slog"

	"github.com/next-trace/scg-awserror/command"
	"github.com/next-trace/scg-awserror/contract"
)

// Error is the service-specific error produced by Wrap.
//
// Fields:
//   - message:   "<endpoint prefix> Error: <text>", always set
//   - requestID: service request id, if a response was received
//   - errorType: "client" or "server", if reported
//   - errorCode: service-defined code (e.g. "AccessDenied"), if reported
//   - client:    live reference to the origin client
//   - cause:     the failure this error was built from
type Error struct {
	message   string
	requestID string
	errorType string
	errorCode string
	client    contract.Client
	cause     *command.Failure
}

// compile-time guarantee that *Error implements contract.ServiceError
var _ contract.ServiceError = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return e.message
}

// Unwrap returns the original command failure, so errors.Is / errors.As reach its root cause.
func (e *Error) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}

	return e.cause
}

// ------ contract.ServiceError getters

func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

func (e *Error) AWSRequestID() (string, bool) { return optional(e.requestID) }
func (e *Error) AWSErrorCode() (string, bool) { return optional(e.errorCode) }
func (e *Error) AWSErrorType() (string, bool) { return optional(e.errorType) }

// RequestID returns the request id of the error. It is only present if a
// response was received and is absent in the event of a networking error.
//
// Deprecated: use AWSRequestID.
func (e *Error) RequestID() (string, bool) { return e.AWSRequestID() }

// ExceptionCode returns the service error code.
//
// Deprecated: use AWSErrorCode.
func (e *Error) ExceptionCode() (string, bool) { return e.AWSErrorCode() }

// ExceptionType returns the error type, one of "client" or "server".
//
// Deprecated: use AWSErrorType.
func (e *Error) ExceptionType() (string, bool) { return e.AWSErrorType() }

// API returns the API model of the client that executed the command.
func (e *Error) API() contract.API {
	if e.client == nil {
		return nil
	}

	return e.client.API()
}

// ServiceName returns the endpoint prefix of the service that encountered the error.
// It is read from the client on every call rather than cached.
func (e *Error) ServiceName() string {
	api := e.API()
	if api == nil {
		return ""
	}

	if v, ok := api.Metadata(contract.MetadataEndpointPrefix); ok {
		return v
	}

	return api.EndpointPrefix()
}

// Cause returns the failure this error was built from.
func (e *Error) Cause() *command.Failure { return e.cause }

// Transaction returns the record of the failed command, or nil.
func (e *Error) Transaction() *command.Transaction {
	if e.cause == nil {
		return nil
	}

	return e.cause.Transaction
}

// Context returns the structured fields of the error as a fresh map.
// Absent optional fields are omitted.
func (e *Error) Context() map[string]any {
	if e == nil {
		return map[string]any{}
	}

	out := map[string]any{"service": e.ServiceName()}

	if v, ok := e.AWSRequestID(); ok {
		out["request_id"] = v
	}

	if v, ok := e.AWSErrorCode(); ok {
		out["error_code"] = v
	}

	if v, ok := e.AWSErrorType(); ok {
		out["error_type"] = v
	}

	if op := e.cause.Operation(); op != "" {
		out["operation"] = op
	}

	return out
}

// LogValue renders the error for log/slog handlers.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}

	attrs := []slog.Attr{
		slog.String("msg", e.message),
		slog.String("service", e.ServiceName()),
	}

	if op := e.cause.Operation(); op != "" {
		attrs = append(attrs, slog.String("operation", op))
	}

	if v, ok := e.AWSErrorCode(); ok {
		attrs = append(attrs, slog.String("error_code", v))
	}

	if v, ok := e.AWSErrorType(); ok {
		attrs = append(attrs, slog.String("error_type", v))
	}

	if v, ok := e.AWSRequestID(); ok {
		attrs = append(attrs, slog.String("request_id", v))
	}

	return slog.GroupValue(attrs...)
}

func optional(v string) (string, bool) { return v, v != "" }
