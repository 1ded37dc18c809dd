package evalcore

import (
	"fmt"

	"github.com/funvibe/lispcore/internal/callstack"
	"github.com/funvibe/lispcore/internal/value"
)

// BindArgs binds positional values to a formal-args list following the
// `name* ('&' name)? ('?' name*)?` grammar: fixed names
// bind one value each, `&` captures the remaining values as a List,
// `?` marks the rest optional (missing values bind to Nil).
func BindArgs(rt *Runtime, argNames []string, values []value.Value, stack *callstack.Stack) (*value.Scope, error) {
	bindings := map[string]value.Value{}
	vi := 0
	optional := false
	for i := 0; i < len(argNames); i++ {
		name := argNames[i]
		switch name {
		case "?":
			optional = true
			continue
		case "&":
			rest := append([]value.Value{}, values[vi:]...)
			bindings[argNames[i+1]] = value.List{Items: rest}
			return value.NewScope().Extend(bindings), nil
		}
		if vi < len(values) {
			bindings[name] = values[vi]
			vi++
			continue
		}
		if optional {
			bindings[name] = value.Nil{}
			continue
		}
		return nil, fmt.Errorf("too few arguments: expected %v, got %v", argNames, values)
	}
	if vi < len(values) {
		return nil, fmt.Errorf("too many arguments: expected %v, got %v", argNames, values)
	}
	return value.NewScope().Extend(bindings), nil
}

// EvaluateLines evaluates a body of forms in sequence under scope,
// returning the last form's result (or a Recur sentinel, left for the
// caller's tail-iteration loop to interpret).
func EvaluateLines(rt *Runtime, body []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	var result value.Value = value.Nil{}
	for _, form := range body {
		v, err := Eval(rt, form, scope, ns, stack)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// ApplyFn calls fn with already-evaluated args, iterating locally on
// Recur so tail calls never grow the Go call stack.
func ApplyFn(rt *Runtime, fn value.Fn, args []value.Value, stack *callstack.Stack) (value.Value, error) {
	code := value.List{Items: append([]value.Value{fn}, args...)}
	nextStack := callstack.Extend(stack, fn.DefNs, fn.Name, callstack.KindFn, code, args)
	currentArgs := args
	for {
		scope, err := BindArgs(rt, fn.Args, currentArgs, nextStack)
		if err != nil {
			return nil, err
		}
		scope = mergeFnScope(fn.Scope, scope)
		result, err := EvaluateLines(rt, fn.Body, scope, fn.DefNs, nextStack)
		if err != nil {
			return nil, err
		}
		if recur, ok := result.(value.Recur); ok {
			currentArgs = recur.Args
			continue
		}
		return result, nil
	}
}

// mergeFnScope layers the call's argument bindings (child) on top of
// the closure's captured scope (fn.Scope), so the body sees both its
// own parameters and the lexical environment the fn was defined in.
func mergeFnScope(closure *value.Scope, argScope *value.Scope) *value.Scope {
	if argScope == nil {
		return closure
	}
	names := argScope.Names()
	bindings := make(map[string]value.Value, len(names))
	for _, n := range names {
		v, _ := argScope.Get(n)
		bindings[n] = v
	}
	return closure.Extend(bindings)
}

// ApplyMacro expands a macro call with unevaluated args, iterating on
// Recur the same way ApplyFn does. The macro's own args are bound
// without the caller's lexical scope, since macros are expanded at
// preprocessing time and capture nothing.
func ApplyMacro(rt *Runtime, macro value.Macro, args []value.Value, stack *callstack.Stack) (value.Value, error) {
	code := value.List{Items: append([]value.Value{macro}, args...)}
	nextStack := callstack.Extend(stack, macro.DefNs, macro.Name, callstack.KindMacro, code, args)
	currentArgs := args
	for {
		scope, err := BindArgs(rt, macro.Args, currentArgs, nextStack)
		if err != nil {
			return nil, err
		}
		result, err := EvaluateLines(rt, macro.Body, scope, macro.DefNs, nextStack)
		if err != nil {
			return nil, err
		}
		if recur, ok := result.(value.Recur); ok {
			currentArgs = recur.Args
			continue
		}
		return result, nil
	}
}
