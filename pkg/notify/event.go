package notify

import (
	"time"

	"github.com/samvad-hq/samvad-json-client/internal/domain"
	"github.com/samvad-hq/samvad-json-client/pkg/jsonapi"
)

// Event is the payload delivered to sinks when an endpoint call fails.
type Event struct {
	EndpointID string          `json:"endpoint_id"`
	Kind       string          `json:"kind"`
	Outcome    domain.Outcome  `json:"outcome"`
	Details    jsonapi.Details `json:"details"`
	FailedAt   time.Time       `json:"failed_at"`
}

// NewEvent constructs an Event for the given endpoint failure.
func NewEvent(endpointID string, kind jsonapi.Kind, outcome domain.Outcome, details jsonapi.Details) Event {
	return Event{
		EndpointID: endpointID,
		Kind:       string(kind),
		Outcome:    outcome,
		Details:    details,
		FailedAt:   time.Now().UTC(),
	}
}
