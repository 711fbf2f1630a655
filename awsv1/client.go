// Package awsv1 connects the translator to github.com/aws/aws-sdk-go.
//
// Client adapts an SDK *client.Client into a contract.Client, ErrorContextFrom and
// FailureFromRequest turn a failed *request.Request into a command.Failure, and
// Install registers a Complete handler that replaces a request's error with the
// translated service error.
package awsv1

import (
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/client/metadata"

	"github.com/next-trace/scg-awserror/contract"
)

// SDK-specific metadata keys answered by API, next to the contract ones.
const (
	MetadataSigningName  = "signingName"
	MetadataEndpoint     = "endpoint"
	MetadataTargetPrefix = "targetPrefix"
	MetadataJSONVersion  = "jsonVersion"
)

// Client is a contract.Client backed by an SDK service client.
type Client struct {
	c *client.Client
}

var _ contract.Client = (*Client)(nil)

// NewClient adapts c. Service clients embed *client.Client, so pass svc.Client.
func NewClient(c *client.Client) *Client {
	return &Client{c: c}
}

// API returns a view over the client's live ClientInfo, or nil if there is no SDK client.
func (c *Client) API() contract.API {
	if c == nil || c.c == nil {
		return nil
	}

	return &API{info: &c.c.ClientInfo}
}

// API exposes SDK client metadata as a contract.API.
type API struct {
	info *metadata.ClientInfo
}

// EndpointPrefix returns the SDK service name, which is the endpoint prefix in v1 clients.
func (a *API) EndpointPrefix() string {
	if a.info.ServiceName != "" {
		return a.info.ServiceName
	}

	return a.info.SigningName
}

func (a *API) Metadata(key string) (string, bool) {
	var v string

	switch key {
	case contract.MetadataEndpointPrefix:
		v = a.EndpointPrefix()
	case contract.MetadataServiceID:
		v = a.info.ServiceID
	case contract.MetadataAPIVersion:
		v = a.info.APIVersion
	case MetadataSigningName:
		v = a.info.SigningName
	case MetadataEndpoint:
		v = a.info.Endpoint
	case MetadataTargetPrefix:
		v = a.info.TargetPrefix
	case MetadataJSONVersion:
		v = a.info.JSONVersion
	default:
		return "", false
	}

	return v, v != ""
}
