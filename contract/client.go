package contract

// Metadata keys. Every API model must answer MetadataEndpointPrefix; the others are optional.
const (
	MetadataEndpointPrefix = "endpointPrefix"
	MetadataServiceID      = "serviceId"
	MetadataAPIVersion     = "apiVersion"
)

// API is the part of a service description model the translator reads.
type API interface {
	// EndpointPrefix is the short, stable identifier of the service (e.g. "s3").
	EndpointPrefix() string
	// Metadata returns a model metadata value. Unknown keys report false.
	Metadata(key string) (string, bool)
}

// Client is the capability a command origin must expose to be recognized as a service client.
type Client interface {
	API() API
}
