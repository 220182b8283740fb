package changeset

import (
	"maps"
	"reflect"

	"github.com/dmitrymomot/statusguard/pkg/validator"
)

// Changeset tracks a pending update of a record: the current field values,
// the requested changes and the validation errors found so far.
// A Changeset is not safe for concurrent mutation.
type Changeset struct {
	data    map[string]any
	changes map[string]any
	errors  validator.ValidationErrors
}

// New creates a changeset over a copy of the record's current values.
func New(data map[string]any) *Changeset {
	return &Changeset{
		data:    maps.Clone(data),
		changes: make(map[string]any),
	}
}

// Change requests a new value for field. Setting a field to its current
// value is not a change.
func (c *Changeset) Change(field string, value any) *Changeset {
	if current, ok := c.data[field]; ok && reflect.DeepEqual(current, value) {
		delete(c.changes, field)
		return c
	}
	c.changes[field] = value
	return c
}

// Get returns the current (persisted) value of field.
func (c *Changeset) Get(field string) (any, bool) {
	v, ok := c.data[field]
	return v, ok
}

// GetChange returns the proposed value of field, if a change was requested.
func (c *Changeset) GetChange(field string) (any, bool) {
	v, ok := c.changes[field]
	return v, ok
}

// Fetch returns the proposed value of field, falling back to the current one.
func (c *Changeset) Fetch(field string) (any, bool) {
	if v, ok := c.changes[field]; ok {
		return v, true
	}
	return c.Get(field)
}

// Changes returns a copy of the requested changes.
func (c *Changeset) Changes() map[string]any {
	return maps.Clone(c.changes)
}

// AddError records a validation error.
func (c *Changeset) AddError(err validator.ValidationError) {
	c.errors.Add(err)
}

// Apply evaluates rules and records every failure.
func (c *Changeset) Apply(rules ...validator.Rule) *Changeset {
	if verrs := validator.ExtractValidationErrors(validator.Apply(rules...)); verrs != nil {
		c.errors.Merge(verrs)
	}
	return c
}

// Errors returns the recorded validation errors.
func (c *Changeset) Errors() validator.ValidationErrors {
	return c.errors
}

// Valid reports whether no error has been recorded.
func (c *Changeset) Valid() bool {
	return c.errors.IsEmpty()
}

// Err returns the recorded errors as an error, or nil when valid.
func (c *Changeset) Err() error {
	if c.Valid() {
		return nil
	}
	return c.errors
}

// Clone returns an independent copy of the changeset.
func (c *Changeset) Clone() *Changeset {
	return &Changeset{
		data:    maps.Clone(c.data),
		changes: maps.Clone(c.changes),
		errors:  append(validator.ValidationErrors(nil), c.errors...),
	}
}
