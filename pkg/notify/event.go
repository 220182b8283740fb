package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/statusguard/pkg/transition"
)

// Event is the published form of a judged transition.
type Event struct {
	ID      uuid.UUID `json:"id"`
	Field   string    `json:"field"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Valid   bool      `json:"valid"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// NewEvent builds an event for tr stamped with a fresh ID and at.
func NewEvent(tr transition.Transition, p transition.Payload, at time.Time) Event {
	e := Event{
		ID:    uuid.New(),
		Field: tr.Field,
		Valid: tr.Valid,
		At:    at.UTC(),
	}
	if tr.From != nil {
		e.From = tr.From.Name()
	}
	if tr.To != nil {
		e.To = tr.To.Name()
	}
	if v, ok := p.Value(); ok {
		e.Payload = v
	}
	return e
}
