package transition

import (
	"fmt"
)

// Table is the compiled form of a rule list. It is immutable once built and
// safe for concurrent use without locking.
type Table struct {
	sources   []State
	allowed   map[string][]State
	index     map[string]map[string]struct{}
	callbacks map[string]map[string]Callback
}

// Build compiles rules into a Table. Destination sets are taken as declared:
// empty sets, self-transitions and destinations with no rule of their own are
// all accepted. Declaring the same source twice is a configuration error.
func Build(rules ...Rule) (*Table, error) {
	t := &Table{
		sources:   make([]State, 0, len(rules)),
		allowed:   make(map[string][]State, len(rules)),
		index:     make(map[string]map[string]struct{}, len(rules)),
		callbacks: make(map[string]map[string]Callback),
	}

	firstSeen := make(map[string]int, len(rules))

	for i, r := range rules {
		if r.From == nil {
			return nil, fmt.Errorf("failed to add rule[%d]: %w", i, ErrInvalidRule)
		}

		from := r.From.Name()
		if first, ok := firstSeen[from]; ok {
			return nil, NewDuplicateSourceError(from, first, i)
		}
		firstSeen[from] = i

		dest := make([]State, 0, len(r.To))
		set := make(map[string]struct{}, len(r.To))
		for j, to := range r.To {
			if to == nil {
				return nil, fmt.Errorf("failed to add rule[%d] %s: destination[%d]: %w", i, from, j, ErrInvalidRule)
			}
			if _, dup := set[to.Name()]; dup {
				continue
			}
			set[to.Name()] = struct{}{}
			dest = append(dest, to)
		}

		t.sources = append(t.sources, r.From)
		t.allowed[from] = dest
		t.index[from] = set

		if len(r.Callbacks) > 0 {
			registry := make(map[string]Callback, len(r.Callbacks))
			for name, cb := range r.Callbacks {
				if cb == nil {
					continue
				}
				key := CallbackKey(name)
				if _, clash := registry[key]; clash {
					return nil, fmt.Errorf("failed to add rule[%d] %s: callback names collide on key '%s': %w", i, from, key, ErrInvalidRule)
				}
				registry[key] = cb
			}
			t.callbacks[from] = registry
		}
	}

	return t, nil
}

// MustBuild works like Build but panics on a configuration error.
func MustBuild(rules ...Rule) *Table {
	t, err := Build(rules...)
	if err != nil {
		panic(fmt.Sprintf("failed to build transition table: %v", err))
	}
	return t
}

// AllowedDestinations returns the declared destinations of from in
// declaration order. An unknown source has no destinations.
func (t *Table) AllowedDestinations(from State) []State {
	dest := t.allowed[stateName(from)]
	if len(dest) == 0 {
		return nil
	}
	out := make([]State, len(dest))
	copy(out, dest)
	return out
}

// Allows reports whether to is a declared destination of from.
func (t *Table) Allows(from, to State) bool {
	if to == nil {
		return false
	}
	_, ok := t.index[stateName(from)][to.Name()]
	return ok
}

// Has reports whether a rule was declared for from.
func (t *Table) Has(from State) bool {
	_, ok := t.allowed[stateName(from)]
	return ok
}

// Callback looks up a callback on the rule for from. key is normalized with
// CallbackKey before the lookup.
func (t *Table) Callback(from State, key string) (Callback, bool) {
	cb, ok := t.callbacks[stateName(from)][CallbackKey(key)]
	return cb, ok
}

// SuccessCallback looks up the callback registered on the rule for from
// that runs when the field moves to to.
func (t *Table) SuccessCallback(from, to State) (Callback, bool) {
	if to == nil {
		return nil, false
	}
	cb, ok := t.callbacks[stateName(from)][DestinationKey(to.Name())]
	return cb, ok
}

// Sources returns the source states in declaration order.
func (t *Table) Sources() []State {
	out := make([]State, len(t.sources))
	copy(out, t.sources)
	return out
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.sources)
}
