// Package main demonstrates usage of the scg-awserror packages.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/next-trace/scg-awserror/awsv2"
	"github.com/next-trace/scg-awserror/command"
	svcerr "github.com/next-trace/scg-awserror/error"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// A failure with a parsed service error
	denied := &command.Failure{
		Err:    errors.New("403 Forbidden"),
		Client: awsv2.NewClient(awsv2.S3),
		Transaction: &command.Transaction{
			Operation: "GetObject",
			AWSError: &command.ErrorContext{
				Message:   "Access Denied",
				Code:      "AccessDenied",
				Type:      command.TypeClient,
				RequestID: "abc-123",
			},
		},
		Message: "Error executing GetObject",
	}

	e, err := svcerr.Wrap(denied)
	if err != nil {
		panic(err)
	}

	code, _ := e.AWSErrorCode()
	fmt.Println(e, e.ServiceName(), code)
	logger.Error("request failed", "err", e)

	// A network failure: no response, so no request id, code or type
	dynamo := awsv2.NewClient(awsv2.NewAPI("DynamoDB", "dynamodb", "2012-08-10"))

	e, err = awsv2.Wrap(dynamo, "GetItem", errors.New("connection timed out"))
	if err != nil {
		panic(err)
	}

	_, hasID := e.AWSRequestID()
	fmt.Printf("%+v\nrequest id present: %v\n", e, hasID)

	// A failure from something that is not a service client
	_, err = svcerr.Wrap(&command.Failure{Client: struct{}{}, Message: "boom"})
	fmt.Println(errors.Is(err, svcerr.ErrInvalidOrigin), err)
}
