package changeset

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/statusguard/pkg/transition"
)

// StateOf converts a raw field value into a transition.State. A nil value
// yields a nil state.
func StateOf(value any) transition.State {
	switch v := value.(type) {
	case nil:
		return nil
	case transition.State:
		return v
	case string:
		return transition.StringState(v)
	case fmt.Stringer:
		return transition.StringState(v.String())
	default:
		return transition.StringState(fmt.Sprint(v))
	}
}

// ValidateTransition checks the pending change of v.Field() against v's
// transition table. When the field is not being changed nothing happens.
// An optional payload is passed through to the selected callback.
func ValidateTransition(ctx context.Context, cs *Changeset, v *transition.Validator, payload ...any) error {
	proposed, changed := cs.GetChange(v.Field())
	if !changed {
		return nil
	}

	current, _ := cs.Get(v.Field())
	from, to := StateOf(current), StateOf(proposed)
	if to == nil {
		// clearing the field is still a change; compare against the empty state
		to = transition.StringState("")
	}

	if len(payload) > 0 {
		return v.ValidateWith(ctx, from, to, cs, payload[0])
	}
	return v.Validate(ctx, from, to, cs)
}
