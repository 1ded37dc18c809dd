// Package atomreg implements the atom registry: a process-wide map
// from stable id to (value, watchers), created by `defatom`, mutated
// by `reset!`, never destroyed.
//
// Grounded on funvibe/funxy's internal/evaluator/environment.go locking
// pattern (RWMutex-guarded map with copy-on-read accessors), generalised
// from a lexical environment to a flat registry.
package atomreg

import (
	"fmt"
	"sort"
	"sync"

	"github.com/funvibe/lispcore/internal/value"
)

// watcherEntry preserves registration order, since reset! must invoke
// watchers in registration order — a plain Go map would not preserve
// that.
type watcherEntry struct {
	name string
	fn   value.Value
}

type atom struct {
	val      value.Value
	watchers []watcherEntry
}

// Registry is the process-wide atom store.
type Registry struct {
	mu    sync.RWMutex
	atoms map[string]*atom
}

func New() *Registry {
	return &Registry{atoms: map[string]*atom{}}
}

// IdFor derives an atom's stable id from its defining ns/name, per
// the `defatom` algorithm's naming convention.
func IdFor(ns, name string) string {
	return ns + "/" + name
}

// Create registers a new atom at id with the given initial value.
// Idempotent: if id already exists, the existing value is kept and
// created is returned false to signal "already existed".
func (r *Registry) Create(id string, initial value.Value) (created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.atoms[id]; exists {
		return false
	}
	r.atoms[id] = &atom{val: initial}
	return true
}

// Deref returns the current value of the atom at id.
func (r *Registry) Deref(id string) (value.Value, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.atoms[id]
	if !ok {
		return nil, fmt.Errorf("no atom found for %s", id)
	}
	return a.val, nil
}

// WatcherCaller invokes a registered watcher fn with (old, new) and
// returns its error, if any. Evaluating a Fn/Macro value requires the
// evaluator, so the registry takes this as a callback rather than
// depending on internal/evalcore directly (that would be a cycle: the
// evaluator needs the registry to implement reset!).
type WatcherCaller func(fn value.Value, old, new value.Value) error

// Reset stores newVal into the atom at id, then synchronously invokes
// each watcher with (old, new) in registration order. If a watcher call
// errors, the new value stays stored (it is not rolled back), the
// remaining watchers are skipped, and the error is returned.
func (r *Registry) Reset(id string, newVal value.Value, call WatcherCaller) error {
	r.mu.Lock()
	a, ok := r.atoms[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("no atom found for %s", id)
	}
	old := a.val
	a.val = newVal
	watchers := append([]watcherEntry{}, a.watchers...)
	r.mu.Unlock()

	for _, w := range watchers {
		if err := call(w.fn, old, newVal); err != nil {
			return err
		}
	}
	return nil
}

// AddWatch registers fn under name, replacing any existing watcher with
// the same name (re-adding preserves its original position).
func (r *Registry) AddWatch(id, name string, fn value.Value) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.atoms[id]
	if !ok {
		return fmt.Errorf("no atom found for %s", id)
	}
	for i, w := range a.watchers {
		if w.name == name {
			a.watchers[i].fn = fn
			return nil
		}
	}
	a.watchers = append(a.watchers, watcherEntry{name: name, fn: fn})
	return nil
}

// RemoveWatch unregisters the watcher named name, if present.
func (r *Registry) RemoveWatch(id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.atoms[id]
	if !ok {
		return fmt.Errorf("no atom found for %s", id)
	}
	out := a.watchers[:0]
	for _, w := range a.watchers {
		if w.name != name {
			out = append(out, w)
		}
	}
	a.watchers = out
	return nil
}

// WatcherNames returns the registered watcher names in registration
// order, for diagnostics/tests.
func (r *Registry) WatcherNames(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.atoms[id]
	if !ok {
		return nil
	}
	names := make([]string, len(a.watchers))
	for i, w := range a.watchers {
		names[i] = w.name
	}
	return names
}

// Ids returns every registered atom id, sorted, for diagnostics/tests.
func (r *Registry) Ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.atoms))
	for id := range r.atoms {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
