package jsonapi

// Details is the diagnostic record accumulated while a call progresses.
// Fields fill in strictly in checkpoint order: network info, then response
// metadata, then body bytes, then body text. A failure carries exactly the
// fields captured before the failing checkpoint, so BodyText is never set
// without BodyBytes, and BodyBytes never without HTTPStatus.
//
// Pointer fields distinguish "absent" from a legitimate zero value: a
// response may carry an empty Content-Type header, an empty body decodes to
// empty text, and errno 0 never occurs but is not relied upon.
type Details struct {
	NetworkErrorKind string  `json:"network_error,omitempty"`
	Errno            *int    `json:"errno,omitempty"`
	HTTPStatus       int     `json:"http_status,omitempty"`
	HTTPReason       string  `json:"http_reason,omitempty"`
	ContentType      *string `json:"content_type,omitempty"`
	BodyBytes        []byte  `json:"bytes,omitempty"`
	BodyText         *string `json:"text,omitempty"`
}
