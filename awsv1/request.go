package awsv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"

	"github.com/next-trace/scg-awserror/command"
	svcerr "github.com/next-trace/scg-awserror/error"
)

// HandlerName names the Complete handler registered by Install.
const HandlerName = "scg.awserror.WrapServiceError"

// ErrorContextFrom extracts the service error reported in err.
// It returns nil unless err is an awserr.RequestFailure carrying a response
// status; errors the SDK raises on its own (network failures, cancellation,
// parameter validation, missing credentials) report no service error.
func ErrorContextFrom(err error) *command.ErrorContext {
	return errorContext(err, nil)
}

// errorContext is ErrorContextFrom with the request's HTTP response, which
// also counts as proof that the service answered.
func errorContext(err error, resp *http.Response) *command.ErrorContext {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return nil
	}

	status := 0

	var rf awserr.RequestFailure
	if errors.As(err, &rf) {
		status = rf.StatusCode()
	}

	if status <= 0 && resp != nil {
		status = resp.StatusCode
	}

	if status <= 0 {
		return nil
	}

	ctx := &command.ErrorContext{
		Message: aerr.Message(),
		Code:    aerr.Code(),
		Type:    command.TypeFromStatus(status),
	}

	if rf != nil {
		ctx.RequestID = rf.RequestID()
	}

	return ctx
}

// FailureFromRequest builds the generic failure for a completed request.
func FailureFromRequest(c *Client, r *request.Request) *command.Failure {
	tx := &command.Transaction{
		Params:   r.Params,
		Request:  r.HTTPRequest,
		Response: r.HTTPResponse,
		AWSError: errorContext(r.Error, r.HTTPResponse),
	}

	if r.Operation != nil {
		tx.Operation = r.Operation.Name
	}

	if tx.AWSError != nil && tx.AWSError.RequestID == "" {
		tx.AWSError.RequestID = r.RequestID
	}

	return &command.Failure{
		Err:         r.Error,
		Transaction: tx,
		Client:      c,
		Message:     fmt.Sprintf("Error executing %q: %s", tx.Operation, describe(r.Error)),
	}
}

// Wrap translates the error of a completed request.
func Wrap(c *Client, r *request.Request, opts ...svcerr.Option) (*svcerr.Error, error) {
	return svcerr.Wrap(FailureFromRequest(c, r), opts...)
}

// Install appends a Complete handler to c's SDK client that replaces a failed
// request's error with the translated *svcerr.Error.
// It does nothing when c has no SDK client.
func Install(c *Client, opts ...svcerr.Option) {
	if c == nil || c.c == nil {
		return
	}

	c.c.Handlers.Complete.PushBackNamed(request.NamedHandler{
		Name: HandlerName,
		Fn: func(r *request.Request) {
			if r.Error == nil {
				return
			}

			if _, done := svcerr.As(r.Error); done {
				return
			}

			if e, err := Wrap(c, r, opts...); err == nil {
				r.Error = e
			}
		},
	})
}

func describe(err error) string {
	if err == nil {
		return "unknown error"
	}

	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return err.Error()
	}

	msg := aerr.Message()
	if msg == "" {
		msg = aerr.Code()
	}

	if orig := aerr.OrigErr(); orig != nil {
		msg += ": " + orig.Error()
	}

	return msg
}
