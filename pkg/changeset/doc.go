// Package changeset is a minimal record-update context for the transition
// guard: it holds current values, requested changes and validation errors,
// and satisfies transition.ValidationContext.
package changeset
