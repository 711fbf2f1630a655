package error

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v  message (Error())
//	%q      quoted message
//	%+v     message, structured fields and the cause on separate lines
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}

		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *Error) formatVerbose(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}

	_, _ = fmt.Fprintf(w, "service=%s msg=%q", e.ServiceName(), e.message)

	for _, f := range []struct {
		key string
		get func() (string, bool)
	}{
		{"code", e.AWSErrorCode},
		{"type", e.AWSErrorType},
		{"request_id", e.AWSRequestID},
	} {
		if v, ok := f.get(); ok {
			_, _ = fmt.Fprintf(w, " %s=%s", f.key, v)
		}
	}

	if e.cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = io.WriteString(w, e.cause.Error())

		if e.cause.Err != nil {
			_, _ = fmt.Fprintf(w, "\nroot: %+v", e.cause.Err)
		}
	}
}
