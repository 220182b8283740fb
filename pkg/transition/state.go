package transition

// State is a value of the governed field. Two states are the same state when
// their names are equal.
type State interface {
	Name() string
}

// StringState provides a simple string-based state implementation for basic use cases.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// States converts names into StringState values.
func States(names ...string) []State {
	out := make([]State, 0, len(names))
	for _, n := range names {
		out = append(out, StringState(n))
	}
	return out
}

func stateName(s State) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
