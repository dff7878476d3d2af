package httpclient

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyDoer adapts resty.Client to the httpclient.Doer interface.
type RestyDoer struct {
	client *resty.Client
}

// NewRestyDoer creates a Doer that never follows redirects and hands the
// response body back unread.
func NewRestyDoer() *RestyDoer {
	c := resty.New()
	// Surface 3xx responses as-is instead of hopping.
	c.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	c.SetDoNotParseResponse(true)
	return &RestyDoer{client: c}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing
// plain request/response semantics, like the notify sinks.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	return c
}

// Do performs the described request with the given context.
func (d *RestyDoer) Do(ctx context.Context, spec RequestSpec) (*Response, error) {
	req := d.client.R().SetContext(ctx)
	if len(spec.Params) > 0 {
		req.SetQueryParams(spec.Params)
	}
	if len(spec.Headers) > 0 {
		req.SetHeaders(spec.Headers)
	}
	if spec.JSON != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(spec.JSON)
	}

	resp, err := req.Execute(spec.Method, spec.URL)
	if err != nil {
		return nil, err
	}

	raw := resp.RawResponse
	return &Response{
		StatusCode: raw.StatusCode,
		Reason:     reasonPhrase(raw.Status),
		Header:     raw.Header,
		Body:       resp.RawBody(),
	}, nil
}

// reasonPhrase strips the numeric code from a status line ("200 OK" -> "OK").
func reasonPhrase(status string) string {
	if _, phrase, ok := strings.Cut(status, " "); ok {
		return phrase
	}
	return status
}
