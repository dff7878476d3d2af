package httpclient

import (
	"context"
	"io"
	"net/http"
)

// RequestSpec describes a single HTTP request to perform.
type RequestSpec struct {
	Method  string
	URL     string
	Params  map[string]string
	JSON    any
	Headers map[string]string
}

// Response is the transport-level view of an HTTP response. Body is left as
// a stream so the caller owns the read phase and sees read errors directly.
type Response struct {
	StatusCode int
	Reason     string
	Header     http.Header
	Body       io.ReadCloser
}

// Doer performs one HTTP request without following redirects, so callers can
// inject mocks or different transports. Deadlines come from the context.
type Doer interface {
	Do(ctx context.Context, spec RequestSpec) (*Response, error)
}
