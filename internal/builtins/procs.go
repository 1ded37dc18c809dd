// Package builtins implements the closed enumeration of built-in
// procedures and their dispatch contract. Arguments arrive already
// evaluated; each proc validates its own arity and argument kinds.
//
// Grounded on the original Calcit implementation's src/builtins.rs
// (proc-name dispatch shape) and src/builtins/lists.rs; leaf-proc
// categories and naming conventions generalised from funvibe/funxy's
// internal/evaluator/builtins_std.go / builtins_io.go family,
// reimplemented against the dynamically-typed value.Value model instead
// of funvibe/funxy's statically-typed Object.
package builtins

import (
	"fmt"

	"github.com/funvibe/lispcore/internal/value"
)

// procNames is the closed set of recognized proc identities.
var procNames = map[string]bool{
	// arithmetic
	"+": true, "-": true, "*": true, "/": true, "mod": true, "rem": true,
	"=": true, "<": true, ">": true, "<=": true, ">=": true,
	"inc": true, "dec": true, "abs": true, "round": true, "floor": true, "ceil": true,
	"sqrt": true, "pow": true,
	// predicates
	"number?": true, "string?": true, "bool?": true, "nil?": true, "fn?": true,
	"list?": true, "set?": true, "map?": true, "record?": true, "keyword?": true,
	"even?": true, "odd?": true, "zero?": true,
	// strings
	"str": true, "str-concat": true, "str-split": true, "str-replace": true,
	"substr": true, "trim": true, "upper": true, "lower": true, "str-find": true,
	"parse-float": true, "re-matches?": true, "re-find": true,
	// collections
	"count": true, "len": true, "nth": true, "first": true, "rest": true,
	"empty?": true, "append": true, "conj": true, "concat": true, "reverse": true,
	"contains?": true, "includes?": true, "get": true, "assoc": true, "dissoc": true,
	"keys": true, "vals": true, "range": true,
	"&merge-keys": true,
	// time / io
	"cpu-time": true, "now!": true, "get-env": true, "read-file": true, "write-file": true,
	"println": true, "print": true,
	// refs
	"deref": true, "add-watch": true, "remove-watch": true,
	// process
	"raise": true, "quit!": true,
	"turn-string": true,
	// tail iteration
	"recur": true,
}

// IsProcName reports whether def names one of the built-in procs.
func IsProcName(def string) bool {
	return procNames[def]
}

func arityErr(name string, want string, got int) error {
	return fmt.Errorf("%s expected %s arguments, got %d", name, want, got)
}

// Dispatch implements handle_proc(name, args) -> (Value, error). Refs
// is an optional hook bundle (atom-registry access) so callers without
// an atom registry (pure arithmetic tests) don't need to wire one up.
func Dispatch(name string, args []value.Value, refs *RefHooks) (value.Value, error) {
	switch name {
	case "+", "-", "*", "/", "mod", "rem", "=", "<", ">", "<=", ">=",
		"inc", "dec", "abs", "round", "floor", "ceil", "sqrt", "pow":
		return dispatchArith(name, args)
	case "number?", "string?", "bool?", "nil?", "fn?", "list?", "set?",
		"map?", "record?", "keyword?", "even?", "odd?", "zero?":
		return dispatchPredicate(name, args)
	case "str", "str-concat", "str-split", "str-replace", "substr", "trim",
		"upper", "lower", "str-find", "parse-float", "re-matches?", "re-find",
		"turn-string":
		return dispatchString(name, args)
	case "count", "len", "nth", "first", "rest", "empty?", "append", "conj",
		"concat", "reverse", "contains?", "includes?", "get", "assoc", "dissoc",
		"keys", "vals", "range", "&merge-keys":
		return dispatchCollection(name, args)
	case "cpu-time", "now!", "get-env", "read-file", "write-file", "println", "print":
		return dispatchIO(name, args)
	case "deref", "add-watch", "remove-watch":
		return dispatchRefs(name, args, refs)
	case "raise":
		return dispatchRaise(args)
	case "quit!":
		return dispatchQuit(args)
	case "recur":
		return value.Recur{Args: args}, nil
	default:
		return nil, fmt.Errorf("unknown proc: %s", name)
	}
}
