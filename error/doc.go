// Package error translates generic command failures into service errors.
//
// Wrap is the translation boundary. It accepts a *command.Failure whose origin
// client implements contract.Client and returns a single concrete type, *Error,
// which implements contract.ServiceError and integrates with the standard
// library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Message built as "<endpoint prefix> Error: <text>", where text is the
//     service-reported message or, failing that, the failure's own message
//   - Optional request id, error code and error type reported with comma-ok
//     results; a network failure with no response reports none of them
//   - Deprecated accessor aliases (RequestID, ExceptionCode, ExceptionType)
//     that always agree with their current names
//   - ServiceName and API read the live client on every call
//   - The original failure is kept as the cause, never discarded
//
// Wrap fails only with ErrInvalidOrigin, when the failure did not come from a
// recognized service client. That is a misuse at the call site and is never
// coerced into a service error.
package error
