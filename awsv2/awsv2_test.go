package awsv2_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-awserror/awsv2"
	"github.com/next-trace/scg-awserror/command"
	"github.com/next-trace/scg-awserror/contract"
	svcerr "github.com/next-trace/scg-awserror/error"
)

func responseError(status int, requestID string, err error) *awshttp.ResponseError {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status, Header: http.Header{}}},
			Err:      err,
		},
		RequestID: requestID,
	}
}

func accessDenied() error {
	return &smithy.OperationError{
		ServiceID:     s3.ServiceID,
		OperationName: "GetObject",
		Err: responseError(http.StatusForbidden, "abc-123", &smithy.GenericAPIError{
			Code:    "AccessDenied",
			Message: "Access Denied",
			Fault:   smithy.FaultClient,
		}),
	}
}

func TestAPI_Metadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "s3", awsv2.S3.EndpointPrefix())

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{contract.MetadataEndpointPrefix, "s3", true},
		{contract.MetadataServiceID, s3.ServiceID, true},
		{contract.MetadataAPIVersion, s3.ServiceAPIVersion, true},
		{"signingName", "", false},
	}

	for _, tc := range tests {
		got, ok := awsv2.S3.Metadata(tc.key)
		assert.Equal(t, tc.want, got, tc.key)
		assert.Equal(t, tc.ok, ok, tc.key)
	}

	_, ok := awsv2.NewAPI("", "sqs", "").Metadata(contract.MetadataServiceID)
	assert.False(t, ok)
}

func TestClient_NilAPI(t *testing.T) {
	t.Parallel()

	assert.Nil(t, awsv2.NewClient(nil).API())

	var c *awsv2.Client
	assert.Nil(t, c.API())
}

func TestErrorContextFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want *command.ErrorContext
	}{
		{"nil", nil, nil},
		{"network failure", &smithy.OperationError{ServiceID: "DynamoDB", OperationName: "GetItem", Err: errors.New("dial tcp: i/o timeout")}, nil},
		{
			"api error with fault",
			accessDenied(),
			&command.ErrorContext{Message: "Access Denied", Code: "AccessDenied", Type: command.TypeClient, RequestID: "abc-123"},
		},
		{
			"unknown fault uses status",
			responseError(http.StatusInternalServerError, "r-500", &smithy.GenericAPIError{Code: "InternalError", Message: "We encountered an internal error."}),
			&command.ErrorContext{Message: "We encountered an internal error.", Code: "InternalError", Type: command.TypeServer, RequestID: "r-500"},
		},
		{
			"bare api error",
			&smithy.GenericAPIError{Code: "ValidationException", Message: "bad", Fault: smithy.FaultServer},
			&command.ErrorContext{Message: "bad", Code: "ValidationException", Type: command.TypeServer},
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, awsv2.ErrorContextFrom(tc.err))
		})
	}
}

func TestWrap_OperationError(t *testing.T) {
	t.Parallel()

	err := accessDenied()

	e, werr := awsv2.Wrap(awsv2.NewClient(awsv2.S3), "", err)
	require.NoError(t, werr)

	assert.Equal(t, "s3 Error: Access Denied", e.Message())
	assert.Equal(t, "s3", e.ServiceName())
	assert.Equal(t, "GetObject", e.Transaction().Operation)
	require.NotNil(t, e.Transaction().Response)
	assert.Equal(t, http.StatusForbidden, e.Transaction().Response.StatusCode)

	code, _ := e.AWSErrorCode()
	assert.Equal(t, "AccessDenied", code)

	typ, _ := e.ExceptionType()
	assert.Equal(t, "client", typ)

	id, _ := e.AWSRequestID()
	assert.Equal(t, "abc-123", id)

	var opErr *smithy.OperationError
	require.ErrorAs(t, e, &opErr)
	assert.Equal(t, s3.ServiceID, opErr.ServiceID)
}

func TestWrap_NetworkFailure(t *testing.T) {
	t.Parallel()

	dynamo := awsv2.NewClient(awsv2.NewAPI("DynamoDB", "dynamodb", "2012-08-10"))
	root := errors.New("connection timed out")

	e, err := awsv2.Wrap(dynamo, "GetItem", root)
	require.NoError(t, err)

	assert.Equal(t, "dynamodb Error: connection timed out", e.Message())
	assert.Equal(t, "GetItem", e.Transaction().Operation)
	assert.Nil(t, e.Transaction().Response)
	assert.ErrorIs(t, e, root)

	for _, get := range []func() (string, bool){e.AWSRequestID, e.AWSErrorCode, e.AWSErrorType} {
		_, ok := get()
		assert.False(t, ok)
	}
}

func TestWrap_NoModel(t *testing.T) {
	t.Parallel()

	_, err := awsv2.Wrap(awsv2.NewClient(nil), "GetObject", accessDenied())
	assert.ErrorIs(t, err, svcerr.ErrInvalidOrigin)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	stack := middleware.NewStack("GetObject", smithyhttp.NewStackRequest)
	require.NoError(t, stack.Initialize.Add(&awsmiddleware.RegisterServiceMetadata{
		ServiceID:     s3.ServiceID,
		OperationName: "GetObject",
	}, middleware.Before))
	require.NoError(t, awsv2.Middleware(awsv2.NewClient(awsv2.S3))(stack))

	_, ok := stack.Initialize.Get(awsv2.MiddlewareID)
	assert.True(t, ok)

	failing := middleware.HandlerFunc(func(context.Context, interface{}) (interface{}, middleware.Metadata, error) {
		return nil, middleware.Metadata{}, responseError(http.StatusNotFound, "r-404", &smithy.GenericAPIError{
			Code:    "NoSuchKey",
			Message: "The specified key does not exist.",
			Fault:   smithy.FaultClient,
		})
	})

	_, _, err := middleware.DecorateHandler(failing, stack).Handle(context.Background(), &s3.GetObjectInput{})
	require.Error(t, err)

	e, ok := svcerr.As(err)
	require.True(t, ok)
	assert.Equal(t, "s3 Error: The specified key does not exist.", e.Message())
	assert.Equal(t, "GetObject", e.Transaction().Operation)

	code, _ := e.AWSErrorCode()
	assert.Equal(t, "NoSuchKey", code)

	succeeding := middleware.HandlerFunc(func(context.Context, interface{}) (interface{}, middleware.Metadata, error) {
		return "ok", middleware.Metadata{}, nil
	})

	_, _, err = middleware.DecorateHandler(succeeding, stack).Handle(context.Background(), &s3.GetObjectInput{})
	assert.NoError(t, err)
}
