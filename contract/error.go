// Package contract exposes the minimal interfaces shared by the translator and its callers.
//
// Client and API describe the capability a command's origin must have before its
// failure can be translated into a service error. ServiceError is the read-only
// surface callers depend on instead of the concrete type.
package contract

// ServiceError is the stable, read-only surface of a translated service failure.
//
// Implementations must:
//   - Report optional fields with comma-ok results; absent is ("", false), never a sentinel.
//   - Return identical values from each deprecated alias and its current accessor.
//   - Support errors.Unwrap via Unwrap() so the original command failure stays reachable.
type ServiceError interface {
	error
	Message() string
	ServiceName() string
	API() API

	AWSRequestID() (string, bool)
	AWSErrorCode() (string, bool)
	AWSErrorType() (string, bool)

	// Deprecated: use AWSRequestID.
	RequestID() (string, bool)
	// Deprecated: use AWSErrorCode.
	ExceptionCode() (string, bool)
	// Deprecated: use AWSErrorType.
	ExceptionType() (string, bool)

	// Context returns a defensive copy; NEVER return an internal map directly.
	Context() map[string]any
	Unwrap() error
}
