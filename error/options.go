package error

// EmptyMessagePolicy decides what Wrap does with a service error message that
// is present in the error context but empty.
type EmptyMessagePolicy int

const (
	// FallbackOnEmpty treats an empty service message as missing and uses the
	// failure's own message instead.
	FallbackOnEmpty EmptyMessagePolicy = iota
	// PreserveEmpty keeps the empty service message; the result carries only the prefix.
	PreserveEmpty
)

// Option configures a single Wrap call.
type Option func(*options)

type options struct {
	emptyMessage EmptyMessagePolicy
}

func defaultOptions() options {
	return options{emptyMessage: FallbackOnEmpty}
}

// WithEmptyMessage sets the policy for present-but-empty service messages.
func WithEmptyMessage(p EmptyMessagePolicy) Option {
	return func(o *options) { o.emptyMessage = p }
}
