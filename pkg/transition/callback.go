package transition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/statusguard/pkg/logger"
	"github.com/dmitrymomot/statusguard/pkg/validator"
)

// ErrorCallbackKey is the registry key of the callback run on invalid transitions.
const ErrorCallbackKey = "state_machine_error"

const callbackSuffix = "_callback"

// ValidationContext is the caller-owned error accumulator a validation call
// annotates. The validator never keeps it past the call.
type ValidationContext interface {
	AddError(err validator.ValidationError)
}

// Transition describes the change a callback is invoked for.
type Transition struct {
	Field string
	From  State
	To    State
	Valid bool
}

func (t Transition) String() string {
	return fmt.Sprintf("%s: %s -> %s", t.Field, stateName(t.From), stateName(t.To))
}

// Callback runs a side effect after a transition was judged. Returning an
// error does not change the verdict; the error is handed back to the caller.
type Callback func(ctx context.Context, tr Transition, vc ValidationContext, p Payload) error

// CallbackKey normalizes a registered callback name into a registry key: the
// name is lower-cased and a trailing "_callback" is removed, so "Status_B",
// "status_b" and "status_b_callback" share one key.
func CallbackKey(name string) string {
	return strings.TrimSuffix(DestinationKey(name), callbackSuffix)
}

// DestinationKey is the key a destination's success callback is looked up
// by: the lower-cased state name. No suffix is removed, so a state named
// "review_callback" does not share the callbacks of "review".
func DestinationKey(name string) string {
	return cases.Lower(language.Und).String(name)
}

// Chain runs callbacks in order and stops at the first error.
func Chain(callbacks ...Callback) Callback {
	return func(ctx context.Context, tr Transition, vc ValidationContext, p Payload) error {
		for _, cb := range callbacks {
			if cb == nil {
				continue
			}
			if err := cb(ctx, tr, vc, p); err != nil {
				return err
			}
		}
		return nil
	}
}

// LogCallback logs accepted transitions at Info and rejected ones at Warn.
func LogCallback(log *slog.Logger) Callback {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx context.Context, tr Transition, _ ValidationContext, p Payload) error {
		attrs := []any{
			logger.Field(tr.Field),
			logger.FromState(stateName(tr.From)),
			logger.ToState(stateName(tr.To)),
			logger.Outcome(tr.Valid),
		}
		if v, ok := p.Value(); ok {
			attrs = append(attrs, slog.Any("payload", v))
		}
		if tr.Valid {
			log.InfoContext(ctx, "state transition accepted", attrs...)
		} else {
			log.WarnContext(ctx, "state transition rejected", attrs...)
		}
		return nil
	}
}
