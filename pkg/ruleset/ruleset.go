package ruleset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/statusguard/pkg/transition"
)

// Definition is a parsed rule file: the governed field and its rules in
// declaration order.
type Definition struct {
	Field string
	Rules []transition.Rule
}

type document struct {
	Field       string         `yaml:"field"`
	Transitions []ruleDocument `yaml:"transitions"`
}

type ruleDocument struct {
	From      string            `yaml:"from"`
	To        []string          `yaml:"to"`
	OnSuccess map[string]string `yaml:"on_success"`
	OnError   string            `yaml:"on_error"`
}

// Parse decodes a YAML rule document. Callback names are resolved against
// reg; reg may be nil when the document names no callbacks. Unknown keys in
// the document are rejected.
func Parse(data []byte, reg *Registry) (*Definition, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrMalformedRules, err)
	}

	if doc.Field == "" {
		return nil, ErrMissingField
	}

	def := &Definition{
		Field: doc.Field,
		Rules: make([]transition.Rule, 0, len(doc.Transitions)),
	}

	for i, rd := range doc.Transitions {
		rule := transition.Rule{
			From: transition.StringState(rd.From),
			To:   transition.States(rd.To...),
		}

		targets := make(map[string]struct{}, len(rd.To))
		for _, to := range rd.To {
			targets[transition.DestinationKey(to)] = struct{}{}
		}

		for _, dest := range slices.Sorted(maps.Keys(rd.OnSuccess)) {
			key := transition.CallbackKey(dest)
			if _, ok := targets[key]; !ok {
				return nil, fmt.Errorf("transitions[%d] %s on_success %q: %w", i, rd.From, dest, ErrUnknownDestination)
			}
			cb, err := resolve(reg, rd.OnSuccess[dest])
			if err != nil {
				return nil, fmt.Errorf("transitions[%d] %s -> %s: %w", i, rd.From, dest, err)
			}
			if rule.Callbacks, err = addCallback(rule.Callbacks, key+"_callback", cb); err != nil {
				return nil, fmt.Errorf("transitions[%d] %s on_success %q: %w", i, rd.From, dest, err)
			}
		}

		if rd.OnError != "" {
			cb, err := resolve(reg, rd.OnError)
			if err != nil {
				return nil, fmt.Errorf("transitions[%d] %s on_error: %w", i, rd.From, err)
			}
			if rule.Callbacks, err = addCallback(rule.Callbacks, transition.ErrorCallbackKey, cb); err != nil {
				return nil, fmt.Errorf("transitions[%d] %s on_error: %w", i, rd.From, err)
			}
		}

		def.Rules = append(def.Rules, rule)
	}

	return def, nil
}

// LoadFile reads and parses a YAML rule file.
func LoadFile(path string, reg *Registry) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(data, reg)
}

// Attach adds cb to every destination and to the error path of every rule.
// Where a callback is already declared, cb runs after it.
func (d *Definition) Attach(cb transition.Callback) *Definition {
	if cb == nil {
		return d
	}
	for i := range d.Rules {
		r := &d.Rules[i]
		names := make([]string, 0, len(r.To)+1)
		for _, to := range r.To {
			names = append(names, to.Name()+"_callback")
		}
		names = append(names, transition.ErrorCallbackKey)

		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			key := transition.CallbackKey(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if existing, ok := lookup(r.Callbacks, key); ok {
				r.Callbacks = withCallback(r.Callbacks, name, transition.Chain(existing, cb))
				continue
			}
			r.Callbacks = withCallback(r.Callbacks, name, cb)
		}
	}
	return d
}

// Table compiles the rules.
func (d *Definition) Table() (*transition.Table, error) {
	return transition.Build(d.Rules...)
}

// Validator compiles the rules and binds them to the definition's field.
func (d *Definition) Validator(opts ...transition.Option) (*transition.Validator, error) {
	table, err := d.Table()
	if err != nil {
		return nil, err
	}
	return transition.NewValidator(d.Field, table, opts...)
}

func resolve(reg *Registry, name string) (transition.Callback, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCallback, name)
	}
	cb, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCallback, name)
	}
	return cb, nil
}

// addCallback stores cb under name. Two names normalizing to the same key
// within one rule are a configuration error.
func addCallback(m map[string]transition.Callback, name string, cb transition.Callback) (map[string]transition.Callback, error) {
	if m == nil {
		m = make(map[string]transition.Callback)
	}
	key := transition.CallbackKey(name)
	if _, clash := lookup(m, key); clash {
		return m, fmt.Errorf("callback names collide on key '%s': %w", key, transition.ErrInvalidRule)
	}
	m[name] = cb
	return m, nil
}

// withCallback stores cb under name, replacing any entry whose name
// normalizes to the same key.
func withCallback(m map[string]transition.Callback, name string, cb transition.Callback) map[string]transition.Callback {
	if m == nil {
		m = make(map[string]transition.Callback)
	}
	key := transition.CallbackKey(name)
	for existing := range m {
		if transition.CallbackKey(existing) == key {
			delete(m, existing)
		}
	}
	m[name] = cb
	return m
}

func lookup(m map[string]transition.Callback, key string) (transition.Callback, bool) {
	for name, cb := range m {
		if transition.CallbackKey(name) == key {
			return cb, true
		}
	}
	return nil, false
}
