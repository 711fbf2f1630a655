package command

// Known error context paths. Lookup answers only these.
const (
	PathMessage   = "aws_error/message"
	PathCode      = "aws_error/code"
	PathType      = "aws_error/type"
	PathRequestID = "aws_error/request_id"
)

// Error types reported by services.
const (
	TypeClient = "client"
	TypeServer = "server"
)

// ErrorContext holds the service error details the transport parsed from a response.
// An empty field means the service did not report it.
type ErrorContext struct {
	Message   string
	Code      string
	Type      string
	RequestID string
}

// Lookup returns the value stored under one of the known paths.
// Unknown paths, empty values and a nil receiver all report ("", false).
func (c *ErrorContext) Lookup(path string) (string, bool) {
	if c == nil {
		return "", false
	}

	var v string

	switch path {
	case PathMessage:
		v = c.Message
	case PathCode:
		v = c.Code
	case PathType:
		v = c.Type
	case PathRequestID:
		v = c.RequestID
	default:
		return "", false
	}

	return v, v != ""
}

// IsZero reports whether no field is set.
func (c *ErrorContext) IsZero() bool {
	return c == nil || *c == ErrorContext{}
}

// TypeFromStatus classifies an HTTP status code as a client or server fault.
// Codes outside 4xx/5xx yield "".
func TypeFromStatus(status int) string {
	switch {
	case status >= 400 && status < 500:
		return TypeClient
	case status >= 500 && status < 600:
		return TypeServer
	default:
		return ""
	}
}
