package transition

// Rule declares the destinations reachable from one source state, plus the
// callbacks attached to that source. Callbacks are keyed by name; keys are
// normalized with CallbackKey when the table is built. A success callback is
// registered under "<destination>_callback" (see OnSuccess) and the
// error callback under ErrorCallbackKey.
type Rule struct {
	From      State
	To        []State
	Callbacks map[string]Callback
}

// RuleOption configures callbacks on a rule built with NewRule.
type RuleOption func(*Rule)

// NewRule creates a rule from one source to the given destinations.
func NewRule(from State, to []State, opts ...RuleOption) Rule {
	r := Rule{From: from, To: to}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// OnSuccess registers cb for transitions into to. The suffixed name keeps
// destinations that themselves end in "_callback" addressable.
func OnSuccess(to State, cb Callback) RuleOption {
	return func(r *Rule) {
		if to != nil {
			WithCallback(to.Name()+callbackSuffix, cb)(r)
		}
	}
}

// OnError registers cb for rejected transitions out of the rule's source.
func OnError(cb Callback) RuleOption {
	return WithCallback(ErrorCallbackKey, cb)
}

// WithCallback registers cb under an arbitrary name.
func WithCallback(name string, cb Callback) RuleOption {
	return func(r *Rule) {
		if cb == nil {
			return
		}
		if r.Callbacks == nil {
			r.Callbacks = make(map[string]Callback)
		}
		r.Callbacks[name] = cb
	}
}
