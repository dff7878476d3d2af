package jsonapi

import "fmt"

// Kind identifies the failure class of a call.
type Kind string

const (
	// KindNetworkError covers transport failures at request or body-read time.
	KindNetworkError Kind = "network_error"
	// KindUnexpectedContentType means the Content-Type header was missing or
	// not application/json.
	KindUnexpectedContentType Kind = "unexpected_content_type"
	// KindMalformedJSON means the body was not valid UTF-8 text or the text
	// was not valid JSON.
	KindMalformedJSON Kind = "malformed_json"
	// KindHTTPError means the status was >= 400 and the request did not opt
	// out of the status check.
	KindHTTPError Kind = "http_error"
)

// Error is the typed failure produced by Call. Details is a snapshot of
// whatever had been captured before the failing checkpoint.
type Error struct {
	Kind    Kind
	Details Details

	cause error
}

func newError(kind Kind, details Details, cause error) *Error {
	return &Error{Kind: kind, Details: details, cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Details.NetworkErrorKind != "":
		return fmt.Sprintf("json api: %s (%s)", e.Kind, e.Details.NetworkErrorKind)
	case e.Details.HTTPStatus != 0:
		return fmt.Sprintf("json api: %s (http %d)", e.Kind, e.Details.HTTPStatus)
	default:
		return fmt.Sprintf("json api: %s", e.Kind)
	}
}

// Unwrap exposes the underlying transport or decode error, if any.
func (e *Error) Unwrap() error { return e.cause }
