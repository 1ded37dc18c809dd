// Package evalcore implements the preprocessor and the tree-walking
// evaluator together: the two are mutually
// recursive in the source this is modeled on (preprocessing a def
// eagerly evaluates `defn`/`defmacro` forms, and macro expansion during
// preprocessing runs a macro's body to completion), so keeping them as
// separate Go packages would require one to import the other both
// ways. They live here as cooperating files instead, the way the
// original runner/preprocess.rs and runner/mod.rs share one crate.
//
// Grounded directly on the original Calcit implementation's
// src/runner/preprocess.rs and src/runner/mod.rs, in funvibe/funxy's
// package-per-concern style (internal/evaluator) generalised from a
// static-typed tree-walker to Calcit's dynamic Value model.
package evalcore

import (
	"sync"

	"github.com/funvibe/lispcore/internal/atomreg"
	"github.com/funvibe/lispcore/internal/program"
)

// Runtime bundles the process-wide collaborators the preprocessor and
// evaluator both need: the program store, the atom registry, and the
// preprocessing warnings accumulator.
type Runtime struct {
	Program  *program.Store
	Atoms    *atomreg.Registry
	Warnings *Warnings
}

// NewRuntime wires a fresh Runtime around the given stores.
func NewRuntime(prog *program.Store, atoms *atomreg.Registry) *Runtime {
	return &Runtime{Program: prog, Atoms: atoms, Warnings: NewWarnings()}
}

// Warnings accumulates preprocessing diagnostics, mirroring the original's
// RefCell<Vec<String>> with a mutex since Go encourages explicit
// thread-safety over single-threaded interior mutability.
type Warnings struct {
	mu   sync.Mutex
	list []string
}

func NewWarnings() *Warnings { return &Warnings{} }

func (w *Warnings) Add(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = append(w.list, msg)
}

// All returns a snapshot of every warning recorded so far, in order.
func (w *Warnings) All() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.list))
	copy(out, w.list)
	return out
}
