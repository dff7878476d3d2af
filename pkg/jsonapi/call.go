package jsonapi

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/samvad-hq/samvad-json-client/pkg/httpclient"
)

// Result is the outcome of a successful call: the decoded JSON value plus a
// fully populated Details record.
type Result struct {
	JSON    any
	Details Details
}

// Call performs one HTTP request through client and decodes the response as
// JSON. Redirects are never followed and the whole call, body read included,
// is bounded by the request timeout. On failure it returns a *Error whose
// Details carry everything captured up to the failing checkpoint, so callers
// can log or react without re-inspecting the transport.
func Call(ctx context.Context, client httpclient.Doer, request Request) (*Result, error) {
	var details Details

	ctx, cancel := context.WithTimeout(ctx, request.timeout())
	defer cancel()

	resp, err := client.Do(ctx, httpclient.RequestSpec{
		Method:  request.Method,
		URL:     request.URL,
		Params:  request.Params,
		JSON:    request.Body,
		Headers: request.Headers,
	})
	if err != nil {
		return nil, networkError(details, err)
	}
	defer resp.Body.Close()

	// Capture the response metadata before touching the body so every later
	// failure still carries it.
	details.HTTPStatus = resp.StatusCode
	details.HTTPReason = resp.Reason
	if values := resp.Header.Values("Content-Type"); len(values) > 0 {
		ct := values[0]
		details.ContentType = &ct
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(details, err)
	}
	details.BodyBytes = body

	var contentType string
	if details.ContentType != nil {
		contentType = *details.ContentType
	}
	if !isJSONContentType(contentType) {
		return nil, newError(KindUnexpectedContentType, details, nil)
	}

	if !utf8.Valid(body) {
		return nil, newError(KindMalformedJSON, details, nil)
	}
	text := string(body)
	details.BodyText = &text

	if !request.AllowErrorStatus && details.HTTPStatus >= 400 {
		return nil, newError(KindHTTPError, details, nil)
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, newError(KindMalformedJSON, details, err)
	}

	return &Result{JSON: value, Details: details}, nil
}

func networkError(details Details, cause error) *Error {
	details.NetworkErrorKind, details.Errno = classifyNetworkError(cause)
	return newError(KindNetworkError, details, cause)
}

// isJSONContentType reports whether the raw Content-Type value denotes JSON.
// Media type parameters after ";" are ignored and matching is
// case-insensitive; a missing header never matches.
func isJSONContentType(raw string) bool {
	mediaType, _, _ := strings.Cut(raw, ";")
	return strings.ToLower(strings.Trim(mediaType, " \t")) == "application/json"
}
