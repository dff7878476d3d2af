package domain

import "time"

// Domain contains core models shared across packages.

// Outcome summarizes one finished endpoint call.
type Outcome struct {
	EndpointID string    `json:"endpoint_id"`
	Method     string    `json:"method"`
	URL        string    `json:"url"`
	OK         bool      `json:"ok"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	HTTPStatus int       `json:"http_status,omitempty"`
	ElapsedMs  int64     `json:"elapsed_ms"`
	CalledAt   time.Time `json:"called_at"`
}
