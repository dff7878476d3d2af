package jsonapi

import "time"

// DefaultTimeout bounds a call whose Request.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Request describes one JSON API call. It is constructed by the caller and
// never mutated by the call.
type Request struct {
	Method  string
	URL     string
	Params  map[string]string
	Body    any
	Headers map[string]string

	// Timeout is the total wall-clock budget for the request and the body
	// read. Zero means DefaultTimeout.
	Timeout time.Duration

	// AllowErrorStatus keeps responses with status >= 400 from failing the
	// call with KindHTTPError. The default treats them as failures.
	AllowErrorStatus bool
}

func (r Request) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}
