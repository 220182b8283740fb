package transition

import (
	"log/slog"
)

// Option configures a Validator during construction.
type Option func(*Validator)

// MessageFunc renders the message attached to the governed field when a
// transition is rejected.
type MessageFunc func(field string, from, to State) string

// WithLogger enables debug logging of every decision.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.logger = log
		}
	}
}

// WithMessage overrides the rejection message.
func WithMessage(fn MessageFunc) Option {
	return func(v *Validator) {
		if fn != nil {
			v.message = fn
		}
	}
}
