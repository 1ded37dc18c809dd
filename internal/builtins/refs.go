package builtins

import (
	"fmt"
	"os"

	"github.com/funvibe/lispcore/internal/atomreg"
	"github.com/funvibe/lispcore/internal/value"
)

// RefHooks bundles the atom-registry access that the deref/add-watch/
// remove-watch procs need. reset! is not here: it is a syntax form
// handled directly by the evaluator, since invoking a watcher fn
// requires calling back into the evaluator.
type RefHooks struct {
	Atoms *atomreg.Registry
}

func dispatchRefs(name string, args []value.Value, refs *RefHooks) (value.Value, error) {
	if refs == nil || refs.Atoms == nil {
		return nil, fmt.Errorf("%s: no atom registry available", name)
	}
	switch name {
	case "deref":
		if len(args) != 1 {
			return nil, arityErr(name, "1", len(args))
		}
		ref, ok := args[0].(value.Ref)
		if !ok {
			return nil, arityErr(name, "ref", len(args))
		}
		return refs.Atoms.Deref(ref.Id)
	case "add-watch":
		if len(args) != 3 {
			return nil, arityErr(name, "ref, name, fn", len(args))
		}
		ref, ok := args[0].(value.Ref)
		watchName, ok2 := watchNameString(args[1])
		if !ok || !ok2 {
			return nil, arityErr(name, "ref, string or tag, fn", len(args))
		}
		if err := refs.Atoms.AddWatch(ref.Id, watchName, args[2]); err != nil {
			return nil, err
		}
		return value.Nil{}, nil
	case "remove-watch":
		if len(args) != 2 {
			return nil, arityErr(name, "ref, name", len(args))
		}
		ref, ok := args[0].(value.Ref)
		watchName, ok2 := watchNameString(args[1])
		if !ok || !ok2 {
			return nil, arityErr(name, "ref, string or tag", len(args))
		}
		if err := refs.Atoms.RemoveWatch(ref.Id, watchName); err != nil {
			return nil, err
		}
		return value.Nil{}, nil
	}
	return nil, arityErr(name, "?", len(args))
}

// watchNameString accepts both a plain string and a tag (`:name`) for
// the watch name, matching real Calcit's keyword-as-name convention.
func watchNameString(v value.Value) (string, bool) {
	switch n := v.(type) {
	case value.Str:
		return n.Val, true
	case value.Tag:
		return n.Val, true
	default:
		return "", false
	}
}

func dispatchRaise(args []value.Value) (value.Value, error) {
	if len(args) < 1 {
		return nil, arityErr("raise", "at least 1", len(args))
	}
	msg, ok := args[0].(value.Str)
	if !ok {
		return nil, arityErr("raise", "string message", len(args))
	}
	var data value.Value = value.Nil{}
	if len(args) > 1 {
		data = args[1]
	}
	return nil, &value.EvalError{Message: msg.Val, Ns: "", Def: "", Data: data}
}

func dispatchQuit(args []value.Value) (value.Value, error) {
	code := 0
	if len(args) == 1 {
		if n, ok := args[0].(value.Number); ok {
			code = int(n.Val)
		}
	}
	os.Exit(code)
	return value.Nil{}, nil
}
