package command

import (
	"net/http"
)

const defaultMessage = "command failed"

// Transaction is the record of one command's execution.
// Request and Response are nil when the command never reached the wire or no
// response was received; AWSError is nil when the transport parsed no service error.
type Transaction struct {
	Operation string
	Params    any
	Request   *http.Request
	Response  *http.Response
	AWSError  *ErrorContext
}

// Failure is the generic "command failed" error raised by the pipeline.
//
// Fields:
//   - Err:         root cause (network error, deserialization error, service error)
//   - Transaction: record of the failed command (may be nil)
//   - Client:      whatever executed the command; may or may not be a service client
//   - Message:     human-readable summary
type Failure struct {
	Err         error
	Transaction *Transaction
	Client      any
	Message     string
}

func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}

	switch {
	case f.Message != "":
		return f.Message
	case f.Err != nil:
		return f.Err.Error()
	default:
		return defaultMessage
	}
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}

	return f.Err
}

// Context returns the service error context of the transaction, or nil.
func (f *Failure) Context() *ErrorContext {
	if f == nil || f.Transaction == nil {
		return nil
	}

	return f.Transaction.AWSError
}

// Operation returns the failed command's name, or "".
func (f *Failure) Operation() string {
	if f == nil || f.Transaction == nil {
		return ""
	}

	return f.Transaction.Operation
}
