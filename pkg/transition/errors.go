package transition

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRule = errors.New("invalid transition rule: from and destination states cannot be nil")
	ErrNilTable    = errors.New("transition table cannot be nil")
	ErrEmptyField  = errors.New("field name cannot be empty")
	ErrNilContext  = errors.New("validation context cannot be nil")
)

// DuplicateSourceError indicates two rules were declared for the same source state.
type DuplicateSourceError struct {
	StateName  string
	FirstIndex int
	Index      int
}

func (e *DuplicateSourceError) Error() string {
	return fmt.Sprintf("duplicate transition source '%s': rule[%d] repeats rule[%d]", e.StateName, e.Index, e.FirstIndex)
}

func NewDuplicateSourceError(stateName string, firstIndex, index int) *DuplicateSourceError {
	return &DuplicateSourceError{
		StateName:  stateName,
		FirstIndex: firstIndex,
		Index:      index,
	}
}

// CallbackError wraps a failure returned by a user callback. The validator
// never swallows it.
type CallbackError struct {
	Field string
	From  string
	To    string
	Key   string
	Err   error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("callback '%s' failed for %s transition %s -> %s: %v", e.Key, e.Field, e.From, e.To, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

func IsDuplicateSourceError(err error) bool {
	var e *DuplicateSourceError
	return errors.As(err, &e)
}

func IsCallbackError(err error) bool {
	var e *CallbackError
	return errors.As(err, &e)
}
