package awsv2

import (
	"context"
	"errors"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/next-trace/scg-awserror/command"
	svcerr "github.com/next-trace/scg-awserror/error"
)

// MiddlewareID identifies the initialize-step middleware added by Middleware.
const MiddlewareID = "scg.awserror.WrapServiceError"

type requestIDError interface {
	ServiceRequestID() string
}

type statusError interface {
	HTTPStatusCode() int
}

type responseError interface {
	HTTPResponse() *smithyhttp.Response
}

// ErrorContextFrom extracts the service error reported in err.
// It returns nil when no smithy.APIError is found in the chain.
func ErrorContextFrom(err error) *command.ErrorContext {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}

	ctx := &command.ErrorContext{
		Message: apiErr.ErrorMessage(),
		Code:    apiErr.ErrorCode(),
	}

	switch apiErr.ErrorFault() {
	case smithy.FaultClient:
		ctx.Type = command.TypeClient
	case smithy.FaultServer:
		ctx.Type = command.TypeServer
	}

	var rid requestIDError
	if errors.As(err, &rid) {
		ctx.RequestID = rid.ServiceRequestID()
	}

	var se statusError
	if ctx.Type == "" && errors.As(err, &se) {
		ctx.Type = command.TypeFromStatus(se.HTTPStatusCode())
	}

	return ctx
}

// FailureFromError builds the generic failure for an error returned by a v2 client call.
// operation names the call when err carries no *smithy.OperationError.
func FailureFromError(c *Client, operation string, err error) *command.Failure {
	tx := &command.Transaction{
		Operation: operation,
		AWSError:  ErrorContextFrom(err),
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		tx.Operation = opErr.OperationName
	}

	var re responseError
	if errors.As(err, &re) {
		if resp := re.HTTPResponse(); resp != nil {
			tx.Response = resp.Response
		}
	}

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	return &command.Failure{
		Err:         err,
		Transaction: tx,
		Client:      c,
		Message:     msg,
	}
}

// Wrap translates an error returned by a v2 client call.
func Wrap(c *Client, operation string, err error, opts ...svcerr.Option) (*svcerr.Error, error) {
	return svcerr.Wrap(FailureFromError(c, operation, err), opts...)
}

// Middleware returns a stack mutator for a client's APIOptions. Errors leaving
// the operation stack are replaced by the translated *svcerr.Error, which the
// SDK then wraps in its *smithy.OperationError.
func Middleware(c *Client, opts ...svcerr.Option) func(*middleware.Stack) error {
	return func(stack *middleware.Stack) error {
		return stack.Initialize.Add(middleware.InitializeMiddlewareFunc(MiddlewareID, func(
			ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler,
		) (middleware.InitializeOutput, middleware.Metadata, error) {
			out, md, err := next.HandleInitialize(ctx, in)
			if err == nil {
				return out, md, nil
			}

			if e, werr := Wrap(c, awsmiddleware.GetOperationName(ctx), err, opts...); werr == nil {
				err = e
			}

			return out, md, err
		}), middleware.After)
	}
}
