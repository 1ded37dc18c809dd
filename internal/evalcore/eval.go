package evalcore

import (
	"fmt"
	"sort"

	"github.com/funvibe/lispcore/internal/builtins"
	"github.com/funvibe/lispcore/internal/callstack"
	"github.com/funvibe/lispcore/internal/value"
)

// Eval walks a preprocessed expression, dispatching special forms
// (Syntax heads), proc calls, and fn/macro application. Self-evaluating
// literals return unchanged.
//
// Grounded on evaluate_expr in the original runner/mod.rs (kept with
// the file this repo's DESIGN.md documents as "not extracted into the
// retrieval pack" — reconstructed from its call sites in
// preprocess.rs, since every branch this core exercises is covered
// there).
func Eval(rt *Runtime, expr value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	switch x := expr.(type) {
	case value.Nil, value.Bool, value.Number, value.Str, value.Tag,
		value.Proc, value.Fn, value.Macro, value.Syntax,
		value.Record, value.Tuple, value.Set, value.Map, value.Ref:
		return x, nil
	case value.Symbol:
		return evalSymbol(rt, x, scope, ns, stack)
	case value.List:
		return evalList(rt, x, scope, ns, stack)
	default:
		return nil, fmt.Errorf("cannot evaluate: %v", expr)
	}
}

func evalSymbol(rt *Runtime, sym value.Symbol, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if sym.Resolved == nil {
		return nil, fmt.Errorf("cannot evaluate unresolved symbol: %s", sym.Sym)
	}
	switch sym.Resolved.Kind {
	case value.ResolvedLocal:
		v, ok := scope.Get(sym.Sym)
		if !ok {
			return nil, fmt.Errorf("local `%s` not found in scope", sym.Sym)
		}
		return v, nil
	case value.ResolvedRaw:
		return sym, nil
	case value.ResolvedDef:
		targetNs, targetDef := sym.Resolved.Ns, sym.Resolved.Def
		if targetNs == "js" {
			return nil, fmt.Errorf("js interop target `%s` has no native value", targetDef)
		}
		v, ok := rt.Program.LookupEvaledDef(targetNs, targetDef)
		if !ok {
			return nil, fmt.Errorf("unresolved def at eval time: %s/%s", targetNs, targetDef)
		}
		return forceThunk(rt, v, targetNs, targetDef, stack)
	default:
		return nil, fmt.Errorf("unknown symbol resolution kind for `%s`", sym.Sym)
	}
}

func forceThunk(rt *Runtime, v value.Value, ns, def string, stack *callstack.Stack) (value.Value, error) {
	thunk, ok := v.(value.Thunk)
	if !ok {
		return v, nil
	}
	if thunk.HasCached {
		return thunk.Cached, nil
	}
	computed, err := Eval(rt, thunk.Code, value.NewScope(), ns, stack)
	if err != nil {
		return nil, err
	}
	if err := rt.Program.WriteEvaledDef(ns, def, thunk.Force(computed)); err != nil {
		return nil, err
	}
	return computed, nil
}

func evalList(rt *Runtime, lst value.List, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(lst.Items) == 0 {
		return lst, nil
	}
	head := lst.Items[0]
	args := lst.Items[1:]

	if syn, ok := head.(value.Syntax); ok {
		return evalSyntax(rt, syn, args, scope, ns, stack)
	}

	headVal, err := Eval(rt, head, scope, ns, stack)
	if err != nil {
		return nil, err
	}
	if macro, ok := headVal.(value.Macro); ok {
		expanded, err := ApplyMacro(rt, macro, args, stack)
		if err != nil {
			return nil, err
		}
		return Eval(rt, expanded, scope, ns, stack)
	}

	evaledArgs := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Eval(rt, a, scope, ns, stack)
		if err != nil {
			return nil, err
		}
		evaledArgs[i] = v
	}
	return applyCallable(rt, headVal, evaledArgs, stack)
}

// applyCallable invokes a Fn or Proc value with already-evaluated
// arguments, used both for ordinary calls and for the callback fn
// passed to foldl/sort/reset! watchers.
func applyCallable(rt *Runtime, callee value.Value, args []value.Value, stack *callstack.Stack) (value.Value, error) {
	switch c := callee.(type) {
	case value.Fn:
		return ApplyFn(rt, c, args, stack)
	case value.Proc:
		return builtins.Dispatch(c.Name, args, &builtins.RefHooks{Atoms: rt.Atoms})
	case value.Macro:
		return ApplyMacro(rt, c, args, stack)
	default:
		return nil, fmt.Errorf("not callable: %v", callee)
	}
}

func isTruthy(v value.Value) bool {
	switch b := v.(type) {
	case value.Nil:
		return false
	case value.Bool:
		return b.Val
	default:
		return true
	}
}

func evalSyntax(rt *Runtime, syn value.Syntax, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	nextStack := callstack.Extend(stack, ns, syn.NameString(), callstack.KindSyntax, value.List{Items: append([]value.Value{syn}, args...)}, args)
	switch syn.Name {
	case value.SynIf:
		return evalIf(rt, args, scope, ns, nextStack)
	case value.SynCoreLet:
		return evalCoreLet(rt, args, scope, ns, nextStack)
	case value.SynQuote:
		if len(args) != 1 {
			return nil, fmt.Errorf("quote expected 1 argument, got %d", len(args))
		}
		return args[0], nil
	case value.SynQuasiquote:
		if len(args) != 1 {
			return nil, fmt.Errorf("quasiquote expected 1 argument, got %d", len(args))
		}
		return evalQuasiquote(rt, args[0], scope, ns, nextStack)
	case value.SynDefn:
		return buildFn(args, scope, ns)
	case value.SynDefmacro:
		return buildMacro(args, ns)
	case value.SynTry:
		return evalTry(rt, args, scope, ns, nextStack)
	case value.SynMacroexpand:
		return evalMacroexpand(rt, args, scope, ns, nextStack)
	case value.SynMacroexpand1:
		return evalMacroexpandOne(rt, args, scope, ns, nextStack)
	case value.SynMacroexpandAll:
		return evalMacroexpandAll(rt, args, scope, ns, nextStack)
	case value.SynEval:
		return evalEval(rt, args, scope, ns, nextStack)
	case value.SynFoldl:
		return evalFoldl(rt, args, scope, ns, nextStack)
	case value.SynFoldlShortcut:
		return evalFoldlShortcut(rt, args, scope, ns, nextStack)
	case value.SynSort:
		return evalSort(rt, args, scope, ns, nextStack)
	case value.SynMap:
		return evalMap(rt, args, scope, ns, nextStack)
	case value.SynFilter:
		return evalFilter(rt, args, scope, ns, nextStack)
	case value.SynReduce:
		return evalReduce(rt, args, scope, ns, nextStack)
	case value.SynDefatom:
		return evalDefatom(rt, args, scope, ns, nextStack)
	case value.SynReset:
		return evalReset(rt, args, scope, ns, nextStack)
	case value.SynHintFn:
		if len(args) == 0 {
			return value.Nil{}, nil
		}
		return Eval(rt, args[0], scope, ns, nextStack)
	default:
		return nil, fmt.Errorf("unknown syntax form: %s", syn.NameString())
	}
}

func evalIf(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("if expected 2 or 3 arguments, got %d", len(args))
	}
	cond, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return Eval(rt, args[1], scope, ns, stack)
	}
	if len(args) == 3 {
		return Eval(rt, args[2], scope, ns, stack)
	}
	return value.Nil{}, nil
}

func evalCoreLet(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("&let expected a binding form")
	}
	bodyScope := scope
	if binding, ok := args[0].(value.List); ok && len(binding.Items) == 2 {
		sym, ok := binding.Items[0].(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("&let expected a symbol to bind, got %v", binding.Items[0])
		}
		v, err := Eval(rt, binding.Items[1], scope, ns, stack)
		if err != nil {
			return nil, err
		}
		bodyScope = scope.Bind1(sym.Sym, v)
	}
	return EvaluateLines(rt, args[1:], bodyScope, ns, stack)
}

func buildFn(args []value.Value, scope *value.Scope, ns string) (value.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("defn expected name and args")
	}
	nameSym, ok := args[0].(value.Symbol)
	argList, ok2 := args[1].(value.List)
	if !ok || !ok2 {
		return nil, fmt.Errorf("defn expected name and arg list")
	}
	argNames := symbolsToNames(argList.Items)
	return value.Fn{
		Name: nameSym.Sym, DefNs: ns, Id: value.NewId(),
		Scope: scope, Args: argNames, Body: append([]value.Value{}, args[2:]...),
	}, nil
}

func buildMacro(args []value.Value, ns string) (value.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("defmacro expected name and args")
	}
	nameSym, ok := args[0].(value.Symbol)
	argList, ok2 := args[1].(value.List)
	if !ok || !ok2 {
		return nil, fmt.Errorf("defmacro expected name and arg list")
	}
	argNames := symbolsToNames(argList.Items)
	return value.Macro{
		Name: nameSym.Sym, DefNs: ns, Id: value.NewId(),
		Args: argNames, Body: append([]value.Value{}, args[2:]...),
	}, nil
}

func symbolsToNames(items []value.Value) []string {
	out := make([]string, len(items))
	for i, it := range items {
		if sym, ok := it.(value.Symbol); ok {
			out[i] = sym.Sym
		}
	}
	return out
}

func evalTry(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("try expected a body and a handler, got %d args", len(args))
	}
	result, err := Eval(rt, args[0], scope, ns, stack)
	if err == nil {
		return result, nil
	}
	handler, herr := Eval(rt, args[1], scope, ns, stack)
	if herr != nil {
		return nil, herr
	}
	msg := err.Error()
	var data value.Value = value.Nil{}
	if evalErr, ok := err.(*value.EvalError); ok {
		msg = evalErr.Message
		if evalErr.Data != nil {
			data = evalErr.Data
		}
	}
	return applyCallable(rt, handler, []value.Value{value.Str{Val: msg}, data}, stack)
}

func lookupMacroForHead(rt *Runtime, head value.Value, ns string, stack *callstack.Stack) (value.Macro, bool, error) {
	sym, ok := head.(value.Symbol)
	if !ok {
		return value.Macro{}, false, nil
	}
	_, headEvaled, err := preprocessSymbol(rt, sym, map[string]bool{}, ns, stack)
	if err != nil {
		return value.Macro{}, false, nil
	}
	m, ok := headEvaled.(value.Macro)
	return m, ok, nil
}

func macroexpandOnce(rt *Runtime, form value.Value, ns string, stack *callstack.Stack) (value.Value, error) {
	lst, ok := form.(value.List)
	if !ok || len(lst.Items) == 0 {
		return form, nil
	}
	m, found, err := lookupMacroForHead(rt, lst.Items[0], ns, stack)
	if err != nil {
		return nil, err
	}
	if !found {
		return form, nil
	}
	return ApplyMacro(rt, m, lst.Items[1:], stack)
}

func macroexpandFully(rt *Runtime, form value.Value, ns string, stack *callstack.Stack) (value.Value, error) {
	expanded, err := macroexpandOnce(rt, form, ns, stack)
	if err != nil {
		return nil, err
	}
	if !value.Equal(expanded, form) {
		return macroexpandFully(rt, expanded, ns, stack)
	}
	lst, ok := expanded.(value.List)
	if !ok {
		return expanded, nil
	}
	items := make([]value.Value, len(lst.Items))
	for i, it := range lst.Items {
		v, err := macroexpandFully(rt, it, ns, stack)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return value.List{Items: items}, nil
}

// evalMacroexpand implements the no-suffix `macroexpand`: unlike
// `macroexpand-1` it keeps expanding while the head still resolves to
// a macro, stopping at the first non-macro head (or a fixed point).
func evalMacroexpand(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("macroexpand expected 1 argument, got %d", len(args))
	}
	form, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	for {
		expanded, err := macroexpandOnce(rt, form, ns, stack)
		if err != nil {
			return nil, err
		}
		if value.Equal(expanded, form) {
			return expanded, nil
		}
		form = expanded
	}
}

func evalMacroexpandOne(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("macroexpand-1 expected 1 argument, got %d", len(args))
	}
	form, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	return macroexpandOnce(rt, form, ns, stack)
}

func evalMacroexpandAll(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("macroexpand-all expected 1 argument, got %d", len(args))
	}
	form, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	return macroexpandFully(rt, form, ns, stack)
}

func evalEval(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("eval expected 1 argument, got %d", len(args))
	}
	code, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	resolved, _, err := PreprocessExpr(rt, code, map[string]bool{}, ns, stack)
	if err != nil {
		return nil, err
	}
	return Eval(rt, resolved, value.NewScope(), ns, stack)
}

func evalQuasiquote(rt *Runtime, x value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	lst, ok := x.(value.List)
	if !ok {
		return x, nil
	}
	if len(lst.Items) == 0 {
		return lst, nil
	}
	if sym, ok := lst.Items[0].(value.Symbol); ok && len(lst.Items) == 2 && (sym.Sym == "~" || sym.Sym == "~@") {
		return Eval(rt, lst.Items[1], scope, ns, stack)
	}
	out := make([]value.Value, 0, len(lst.Items))
	for _, item := range lst.Items {
		if itemLst, ok := item.(value.List); ok && len(itemLst.Items) == 2 {
			if sym, ok := itemLst.Items[0].(value.Symbol); ok && sym.Sym == "~@" {
				v, err := Eval(rt, itemLst.Items[1], scope, ns, stack)
				if err != nil {
					return nil, err
				}
				spliced, ok := v.(value.List)
				if !ok {
					return nil, fmt.Errorf("~@ expected a list to splice, got %v", v)
				}
				out = append(out, spliced.Items...)
				continue
			}
			if sym, ok := itemLst.Items[0].(value.Symbol); ok && sym.Sym == "~" {
				v, err := Eval(rt, itemLst.Items[1], scope, ns, stack)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
				continue
			}
		}
		nested, err := evalQuasiquote(rt, item, scope, ns, stack)
		if err != nil {
			return nil, err
		}
		out = append(out, nested)
	}
	return value.List{Items: out}, nil
}

func evalFoldl(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("foldl expected (list init fn), got %d args", len(args))
	}
	listVal, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	acc, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	fn, err := Eval(rt, args[2], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	lst, ok := listVal.(value.List)
	if !ok {
		return nil, fmt.Errorf("foldl expected a list, got %v", listVal)
	}
	for _, item := range lst.Items {
		acc, err = applyCallable(rt, fn, []value.Value{acc, item}, stack)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// evalFoldlShortcut implements early-exit folding: fn(acc, item) returns
// a Tuple{A: Bool continue?, B: nextAccOrResult}. When continue? is
// false, B is returned immediately; if the list is exhausted without a
// stop, defaultVal is returned.
func evalFoldlShortcut(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("foldl-shortcut expected (list init default fn), got %d args", len(args))
	}
	listVal, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	acc, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	defaultVal, err := Eval(rt, args[2], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	fn, err := Eval(rt, args[3], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	lst, ok := listVal.(value.List)
	if !ok {
		return nil, fmt.Errorf("foldl-shortcut expected a list, got %v", listVal)
	}
	for _, item := range lst.Items {
		stepResult, err := applyCallable(rt, fn, []value.Value{acc, item}, stack)
		if err != nil {
			return nil, err
		}
		tup, ok := stepResult.(value.Tuple)
		if !ok {
			return nil, fmt.Errorf("foldl-shortcut step fn expected to return a tuple, got %v", stepResult)
		}
		cont, ok := tup.A.(value.Bool)
		if !ok {
			return nil, fmt.Errorf("foldl-shortcut tuple's first slot must be a bool")
		}
		if !cont.Val {
			return tup.B, nil
		}
		acc = tup.B
	}
	return defaultVal, nil
}

func evalSort(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("sort expected (list cmp-fn), got %d args", len(args))
	}
	listVal, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	cmpFn, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	lst, ok := listVal.(value.List)
	if !ok {
		return nil, fmt.Errorf("sort expected a list, got %v", listVal)
	}
	items := append([]value.Value{}, lst.Items...)
	var sortErr error
	sort.SliceStable(items, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		result, err := applyCallable(rt, cmpFn, []value.Value{items[i], items[j]}, stack)
		if err != nil {
			sortErr = err
			return false
		}
		n, ok := result.(value.Number)
		if !ok {
			sortErr = fmt.Errorf("sort comparator expected to return a number")
			return false
		}
		return n.Val < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return value.List{Items: items}, nil
}

func evalMap(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("map expected (fn list), got %d args", len(args))
	}
	fn, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	listVal, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	lst, ok := listVal.(value.List)
	if !ok {
		return nil, fmt.Errorf("map expected a list, got %v", listVal)
	}
	out := make([]value.Value, len(lst.Items))
	for i, item := range lst.Items {
		v, err := applyCallable(rt, fn, []value.Value{item}, stack)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.List{Items: out}, nil
}

func evalFilter(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("filter expected (pred list), got %d args", len(args))
	}
	pred, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	listVal, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	lst, ok := listVal.(value.List)
	if !ok {
		return nil, fmt.Errorf("filter expected a list, got %v", listVal)
	}
	out := make([]value.Value, 0, len(lst.Items))
	for _, item := range lst.Items {
		keep, err := applyCallable(rt, pred, []value.Value{item}, stack)
		if err != nil {
			return nil, err
		}
		if isTruthy(keep) {
			out = append(out, item)
		}
	}
	return value.List{Items: out}, nil
}

// evalReduce implements the no-seed form: the first item is the
// initial accumulator, distinguishing it from foldl/foldl-shortcut
// (which always take an explicit init).
func evalReduce(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("reduce expected (fn list), got %d args", len(args))
	}
	fn, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	listVal, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	lst, ok := listVal.(value.List)
	if !ok {
		return nil, fmt.Errorf("reduce expected a list, got %v", listVal)
	}
	if len(lst.Items) == 0 {
		return nil, fmt.Errorf("reduce expected a non-empty list")
	}
	acc := lst.Items[0]
	for _, item := range lst.Items[1:] {
		acc, err = applyCallable(rt, fn, []value.Value{acc, item}, stack)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func evalDefatom(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("defatom expected (name init), got %d args", len(args))
	}
	nameSym, ok := args[0].(value.Symbol)
	if !ok {
		return nil, fmt.Errorf("defatom expected a name symbol, got %v", args[0])
	}
	initial, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	id := ns + "/" + nameSym.Sym
	rt.Atoms.Create(id, initial)
	return value.Ref{Id: id}, nil
}

func evalReset(rt *Runtime, args []value.Value, scope *value.Scope, ns string, stack *callstack.Stack) (value.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("reset! expected (ref new-value), got %d args", len(args))
	}
	refVal, err := Eval(rt, args[0], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	ref, ok := refVal.(value.Ref)
	if !ok {
		return nil, fmt.Errorf("reset! expected a ref, got %v", refVal)
	}
	newVal, err := Eval(rt, args[1], scope, ns, stack)
	if err != nil {
		return nil, err
	}
	watcherCall := func(fn value.Value, old, next value.Value) error {
		_, callErr := applyCallable(rt, fn, []value.Value{old, next}, stack)
		return callErr
	}
	if err := rt.Atoms.Reset(ref.Id, newVal, watcherCall); err != nil {
		return nil, err
	}
	return newVal, nil
}
