package transition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/statusguard/pkg/logger"
	"github.com/dmitrymomot/statusguard/pkg/validator"
)

// TranslationKey is attached to the error recorded for a rejected transition.
const TranslationKey = "transition.invalid"

// Validator guards updates of one field against a transition table.
// It holds no mutable state and may be shared between goroutines.
type Validator struct {
	field   string
	table   *Table
	logger  *slog.Logger
	message MessageFunc
}

// NewValidator binds a table to the field it governs.
func NewValidator(field string, table *Table, opts ...Option) (*Validator, error) {
	if field == "" {
		return nil, ErrEmptyField
	}
	if table == nil {
		return nil, ErrNilTable
	}

	v := &Validator{
		field:   field,
		table:   table,
		logger:  logger.Discard(),
		message: DefaultMessage,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("transition"), logger.Field(field))

	return v, nil
}

// MustNewValidator works like NewValidator but panics on error.
func MustNewValidator(field string, table *Table, opts ...Option) *Validator {
	v, err := NewValidator(field, table, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create transition validator: %v", err))
	}
	return v
}

// DefaultMessage is the rejection message used unless WithMessage is given.
func DefaultMessage(field string, from, to State) string {
	return fmt.Sprintf("Invalid update for %s. Wanted to transition from %s to %s for the field %s.",
		field, stateName(from), stateName(to), field)
}

func (v *Validator) Field() string {
	return v.field
}

func (v *Validator) Table() *Table {
	return v.table
}

// Check reports whether moving from -> to is allowed. A nil to means the
// field is not being changed and is always allowed.
func (v *Validator) Check(from, to State) bool {
	if to == nil {
		return true
	}
	return v.table.Allows(from, to)
}

// Validate judges the proposed change from -> to of the governed field.
//
// A nil to means no change was requested: nothing runs and nothing is
// recorded. An allowed change runs the success callback registered for to
// on the rule of from, if any. A rejected change, including any change out
// of a state with no rule, runs the rule's error callback, if any, and then
// records one error on vc for the governed field.
//
// At most one callback runs per call. The returned error is non-nil only
// when that callback fails (wrapped in *CallbackError) or vc is nil; a
// rejected transition is reported through vc, not as an error. When the
// error callback fails, vc is left untouched.
func (v *Validator) Validate(ctx context.Context, from, to State, vc ValidationContext) error {
	return v.validate(ctx, from, to, vc, NoPayload())
}

// ValidateWith works like Validate and passes payload to the selected callback.
func (v *Validator) ValidateWith(ctx context.Context, from, to State, vc ValidationContext, payload any) error {
	return v.validate(ctx, from, to, vc, PayloadOf(payload))
}

func (v *Validator) validate(ctx context.Context, from, to State, vc ValidationContext, p Payload) error {
	if vc == nil {
		return ErrNilContext
	}
	if to == nil {
		return nil
	}

	tr := Transition{
		Field: v.field,
		From:  from,
		To:    to,
		Valid: v.table.Allows(from, to),
	}

	var (
		key         string
		cb          Callback
		hasCallback bool
	)
	if tr.Valid {
		key = DestinationKey(to.Name())
		cb, hasCallback = v.table.SuccessCallback(from, to)
	} else {
		key = ErrorCallbackKey
		cb, hasCallback = v.table.Callback(from, key)
	}

	v.logger.DebugContext(ctx, "transition checked",
		logger.FromState(stateName(from)),
		logger.ToState(to.Name()),
		logger.Outcome(tr.Valid),
		logger.CallbackKey(callbackName(hasCallback, key)),
	)

	if hasCallback {
		if err := cb(ctx, tr, vc, p); err != nil {
			return &CallbackError{
				Field: v.field,
				From:  stateName(from),
				To:    to.Name(),
				Key:   key,
				Err:   err,
			}
		}
	}

	if !tr.Valid {
		vc.AddError(validator.NewError(
			v.field,
			v.message(v.field, from, to),
			TranslationKey,
			"field", v.field,
			"from", stateName(from),
			"to", to.Name(),
		))
	}

	return nil
}

func callbackName(found bool, key string) string {
	if !found {
		return ""
	}
	return key
}
