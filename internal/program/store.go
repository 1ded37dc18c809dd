// Package program implements the global program store: ProgramCode
// (ns/def -> raw code), EvaledDefs (ns/def -> thunk or resolved
// value), and the per-ns import table.
//
// Grounded on funvibe/funxy's internal/modules package (Module's
// Files/Exports/Imports maps, guarded the way loader.go guards its own
// namespace registry) generalised from a typed-module model to flat
// ns/def maps.
package program

import (
	"fmt"
	"sync"

	"github.com/funvibe/lispcore/internal/value"
)

// Store holds process-wide program state: the raw post-parse code for
// every def, the evaluated (or thunked) result for every def once
// preprocessing has visited it, and the import table used to resolve
// qualified symbols.
type Store struct {
	mu     sync.RWMutex
	code   map[string]map[string]value.Value
	evaled map[string]map[string]value.Value
	nsImports map[string]*Imports
}

// Imports is the resolved import table for a single namespace.
type Imports struct {
	// Alias -> target ns, e.g. `(:as util "app.util")`.
	NsAlias map[string]string
	// Referred def -> target ns, e.g. `(:refer "app.util" (foo bar))`.
	ReferDef map[string]string
	// Default (catch-all) target ns, js-interop only.
	Default map[string]string
}

func NewImports() *Imports {
	return &Imports{
		NsAlias:  map[string]string{},
		ReferDef: map[string]string{},
		Default:  map[string]string{},
	}
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		code:      map[string]map[string]value.Value{},
		evaled:    map[string]map[string]value.Value{},
		nsImports: map[string]*Imports{},
	}
}

// WriteDefCode installs the raw code for ns/def, as produced by lifting
// parsed source (internal/cirru) into a Value tree.
func (s *Store) WriteDefCode(ns, def string, code value.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.code[ns] == nil {
		s.code[ns] = map[string]value.Value{}
	}
	s.code[ns][def] = code
}

// HasDefCode reports whether ns/def has raw code registered.
func (s *Store) HasDefCode(ns, def string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.code[ns]
	if !ok {
		return false
	}
	_, ok = m[def]
	return ok
}

// LookupDefCode returns the raw code for ns/def, if any.
func (s *Store) LookupDefCode(ns, def string) (value.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.code[ns]
	if !ok {
		return nil, false
	}
	v, ok := m[def]
	return v, ok
}

// WriteEvaledDef installs v as the current evaluated (or thunked) value
// for ns/def. The only failure is an empty ns or def, which returns an
// error instead of writing.
func (s *Store) WriteEvaledDef(ns, def string, v value.Value) error {
	if ns == "" || def == "" {
		return fmt.Errorf("cannot write evaled def with empty ns/def")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.evaled[ns] == nil {
		s.evaled[ns] = map[string]value.Value{}
	}
	s.evaled[ns][def] = v
	return nil
}

// LookupEvaledDef returns the current evaluated/thunked value for ns/def.
func (s *Store) LookupEvaledDef(ns, def string) (value.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.evaled[ns]
	if !ok {
		return nil, false
	}
	v, ok := m[def]
	return v, ok
}

// CloneEvaledProgram returns a deep-enough snapshot of the evaled-defs
// store for diagnostics/tests.
func (s *Store) CloneEvaledProgram() map[string]map[string]value.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]map[string]value.Value, len(s.evaled))
	for ns, defs := range s.evaled {
		inner := make(map[string]value.Value, len(defs))
		for k, v := range defs {
			inner[k] = v
		}
		out[ns] = inner
	}
	return out
}

// SetImports installs the import table for ns, replacing any prior one.
func (s *Store) SetImports(ns string, imp *Imports) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nsImports[ns] = imp
}

func (s *Store) importsFor(ns string) *Imports {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nsImports[ns]
}

// LookupNsTargetInImport resolves an alias to its target ns within atNs.
func (s *Store) LookupNsTargetInImport(atNs, alias string) (string, bool) {
	imp := s.importsFor(atNs)
	if imp == nil {
		return "", false
	}
	t, ok := imp.NsAlias[alias]
	return t, ok
}

// LookupDefTargetInImport resolves a referred def to its target ns
// within atNs.
func (s *Store) LookupDefTargetInImport(atNs, def string) (string, bool) {
	imp := s.importsFor(atNs)
	if imp == nil {
		return "", false
	}
	t, ok := imp.ReferDef[def]
	return t, ok
}

// LookupDefaultTargetInImport resolves def through the catch-all
// default import within atNs (js interop only).
func (s *Store) LookupDefaultTargetInImport(atNs, def string) (string, bool) {
	imp := s.importsFor(atNs)
	if imp == nil {
		return "", false
	}
	t, ok := imp.Default[def]
	return t, ok
}
