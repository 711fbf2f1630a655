// Package awsv2 connects the translator to github.com/aws/aws-sdk-go-v2 and smithy-go.
//
// V2 service clients do not expose their model metadata, so API is a static
// description built from the service package constants. ErrorContextFrom and
// FailureFromError read smithy API errors and SDK response errors, and
// Middleware translates errors inside a client's operation stack.
package awsv2

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/next-trace/scg-awserror/contract"
)

// S3 describes the Amazon S3 API. V2 service packages export the service id
// and API version but not the endpoint prefix, so the prefix is spelled out.
var S3 = NewAPI(s3.ServiceID, "s3", s3.ServiceAPIVersion)

// API is an immutable contract.API.
type API struct {
	serviceID      string
	endpointPrefix string
	apiVersion     string
}

var _ contract.API = (*API)(nil)

// NewAPI describes a service by its SDK service id, endpoint prefix and API version.
func NewAPI(serviceID, endpointPrefix, apiVersion string) *API {
	return &API{
		serviceID:      serviceID,
		endpointPrefix: endpointPrefix,
		apiVersion:     apiVersion,
	}
}

func (a *API) EndpointPrefix() string { return a.endpointPrefix }

func (a *API) Metadata(key string) (string, bool) {
	var v string

	switch key {
	case contract.MetadataEndpointPrefix:
		v = a.endpointPrefix
	case contract.MetadataServiceID:
		v = a.serviceID
	case contract.MetadataAPIVersion:
		v = a.apiVersion
	default:
		return "", false
	}

	return v, v != ""
}

// Client is a contract.Client standing in for a v2 service client.
type Client struct {
	api *API
}

var _ contract.Client = (*Client)(nil)

// NewClient returns a client for the described API.
func NewClient(api *API) *Client {
	return &Client{api: api}
}

// API returns the client's model, or nil if it has none.
func (c *Client) API() contract.API {
	if c == nil || c.api == nil {
		return nil
	}

	return c.api
}
