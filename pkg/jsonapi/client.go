package jsonapi

import (
	"context"

	"github.com/samvad-hq/samvad-json-client/pkg/httpclient"
)

// Client binds a transport to the call entry point for callers that issue
// many requests through the same Doer.
type Client struct {
	doer httpclient.Doer
}

// NewClient wraps the given transport.
func NewClient(doer httpclient.Doer) *Client {
	return &Client{doer: doer}
}

// Call performs the request through the bound transport. See Call.
func (c *Client) Call(ctx context.Context, request Request) (*Result, error) {
	return Call(ctx, c.doer, request)
}
