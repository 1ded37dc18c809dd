// Package value implements the Value sum type shared by the
// preprocessor and evaluator: the tagged union of variants, plus its
// printers, equality, total order, and stable hashing.
//
// Grounded on the funvibe/funxy internal/evaluator.Object interface shape
// (Type()/Inspect()/Hash()) and the original Calcit implementation's
// primes.rs (variant set, Display/Ord/Hash impls).
package value

// Kind identifies a Value's concrete variant. Kept as a small enum
// (rather than relying purely on type switches) so ordering/hashing can
// key a fixed variant ranking without repeating a long type switch.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindStr
	KindTag
	KindSymbol
	KindList
	KindSet
	KindMap
	KindRecord
	KindTuple
	KindRef
	KindThunk
	KindRecur
	KindProc
	KindSyntax
	KindFn
	KindMacro
)

// Value is the base interface implemented by every variant.
type Value interface {
	Kind() Kind
	// String renders the default diagnostic/interop form.
	String() string
}

// EvalError is the error type built by `raise`: a plain message,
// optionally tagged with the ns/def it occurred in for diagnostics.
// Other core failures are plain `error` values (fmt.Errorf).
type EvalError struct {
	Message string
	Ns      string
	Def     string
	// Data carries the optional payload passed to `raise`, surfaced to a
	// `try` handler alongside the message.
	Data Value
}

func NewError(msg string) *EvalError {
	return &EvalError{Message: msg}
}

func (e *EvalError) Error() string {
	if e.Ns != "" || e.Def != "" {
		return e.Message + " at " + e.Ns + "/" + e.Def
	}
	return e.Message
}

// WithLocation returns a copy of the error tagged with ns/def; an error
// that already carries an ns is returned unchanged.
func (e *EvalError) WithLocation(ns, def string) *EvalError {
	if e.Ns != "" {
		return e
	}
	return &EvalError{Message: e.Message, Ns: ns, Def: def, Data: e.Data}
}
