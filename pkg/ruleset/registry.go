package ruleset

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/statusguard/pkg/transition"
)

// Registry resolves callback names used in rule files. Names are normalized
// with transition.CallbackKey, so "Notify_Review_callback" and
// "notify_review" refer to the same entry.
type Registry struct {
	mu        sync.RWMutex
	callbacks map[string]transition.Callback
}

func NewRegistry() *Registry {
	return &Registry{callbacks: make(map[string]transition.Callback)}
}

// Register adds cb under name. Registering a name twice is an error.
func (r *Registry) Register(name string, cb transition.Callback) error {
	key := transition.CallbackKey(name)
	if key == "" {
		return ErrEmptyCallbackName
	}
	if cb == nil {
		return fmt.Errorf("callback '%s' is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.callbacks[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCallback, name)
	}
	r.callbacks[key] = cb
	return nil
}

// MustRegister works like Register but panics on error.
func (r *Registry) MustRegister(name string, cb transition.Callback) *Registry {
	if err := r.Register(name, cb); err != nil {
		panic(fmt.Sprintf("failed to register callback: %v", err))
	}
	return r
}

func (r *Registry) Lookup(name string) (transition.Callback, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cb, ok := r.callbacks[transition.CallbackKey(name)]
	return cb, ok
}

// Names returns the normalized registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.callbacks))
	for name := range r.callbacks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
