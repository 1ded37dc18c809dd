package evalcore

import (
	"fmt"
	"strings"

	"github.com/funvibe/lispcore/internal/builtins"
	"github.com/funvibe/lispcore/internal/callstack"
	"github.com/funvibe/lispcore/internal/config"
	"github.com/funvibe/lispcore/internal/value"
)

// pickMacroFn returns v itself if it is a Fn or Macro, nil otherwise.
// Only these two variants matter to a caller deciding whether to expand
// or arity-check a definition during preprocessing.
func pickMacroFn(v value.Value) value.Value {
	switch v.(type) {
	case value.Fn, value.Macro:
		return v
	default:
		return nil
	}
}

func isFnOrMacroForm(code value.Value) bool {
	lst, ok := code.(value.List)
	if !ok || len(lst.Items) == 0 {
		return false
	}
	switch head := lst.Items[0].(type) {
	case value.Symbol:
		return head.Sym == "defn" || head.Sym == "defmacro"
	case value.Syntax:
		return head.Name == value.SynDefn || head.Name == value.SynDefmacro
	}
	return false
}

// parseNsDef splits a qualified symbol like "util/foo" into its alias
// and def parts. A leading "." (method-call syntax, e.g. ".toString")
// is never split.
func parseNsDef(def string) (alias, part string, ok bool) {
	if strings.HasPrefix(def, ".") {
		return "", "", false
	}
	idx := strings.Index(def, "/")
	if idx <= 0 || idx == len(def)-1 {
		return "", "", false
	}
	return def[:idx], def[idx+1:], true
}

// PreprocessNsDef resolves a symbol at ns/def, eagerly preprocessing
// and (for defn/defmacro) evaluating its code the first time it is
// visited, and caching a Nil placeholder first to guard against
// mutually recursive defs causing infinite recursion.
//
// Grounded directly on preprocess_ns_def in the original preprocess.rs.
func PreprocessNsDef(
	rt *Runtime,
	ns, def, rawSym string,
	importRule *value.ImportRule,
	stack *callstack.Stack,
) (value.Value, value.Value, error) {
	if v, ok := rt.Program.LookupEvaledDef(ns, def); ok {
		sym := value.Symbol{Sym: rawSym, Ns: ns, AtDef: def}.WithResolution(value.Resolved{
			Kind: value.ResolvedDef, Ns: ns, Def: def, Rule: importRule,
		})
		return sym, pickMacroFn(v), nil
	}

	code, ok := rt.Program.LookupDefCode(ns, def)
	if !ok {
		if strings.HasPrefix(ns, "|") || strings.HasPrefix(ns, "\"") {
			sym := value.Symbol{Sym: rawSym, Ns: ns, AtDef: def}.WithResolution(value.Resolved{
				Kind: value.ResolvedDef, Ns: ns, Def: def, Rule: importRule,
			})
			return sym, nil, nil
		}
		return nil, nil, fmt.Errorf("unknown ns/def in program: %s/%s", ns, def)
	}

	// write a placeholder first to break mutual-recursion cycles (even?/odd?)
	if err := rt.Program.WriteEvaledDef(ns, def, value.Nil{}); err != nil {
		return nil, nil, err
	}

	nextStack := callstack.Extend(stack, ns, def, callstack.KindFn, code, nil)

	resolvedCode, _, err := PreprocessExpr(rt, code, map[string]bool{}, ns, nextStack)
	if err != nil {
		return nil, nil, err
	}

	var v value.Value
	if isFnOrMacroForm(resolvedCode) {
		v, err = Eval(rt, resolvedCode, nil, ns, nextStack)
		if err != nil {
			return nil, nil, err
		}
	} else {
		v = value.Thunk{Code: resolvedCode}
	}

	if err := rt.Program.WriteEvaledDef(ns, def, v); err != nil {
		return nil, nil, err
	}

	sym := value.Symbol{Sym: rawSym, Ns: ns, AtDef: def}.WithResolution(value.Resolved{
		Kind: value.ResolvedDef, Ns: ns, Def: def,
		Rule: &value.ImportRule{Kind: value.ImportNsReferDef, Ns: ns, Def: def},
	})
	return sym, pickMacroFn(v), nil
}

// PreprocessExpr resolves symbols and expands/validates special forms
// in a single expression, returning the rewritten form and, if the
// expression's head resolved to a Fn/Macro value, that value (so the
// caller can expand a macro or arity-check a fn call).
//
// Grounded directly on preprocess_expr in the original preprocess.rs.
func PreprocessExpr(
	rt *Runtime,
	expr value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, value.Value, error) {
	switch x := expr.(type) {
	case value.Symbol:
		return preprocessSymbol(rt, x, scopeDefs, fileNs, stack)
	case value.List:
		if len(x.Items) == 0 {
			return expr, nil, nil
		}
		return processListCall(rt, x.Items, scopeDefs, fileNs, stack)
	case value.Number, value.Str, value.Nil, value.Bool, value.Tag, value.Proc:
		return expr, nil, nil
	default:
		rt.Warnings.Add(fmt.Sprintf("[Warn] unexpected data during preprocess: %v", expr))
		return expr, nil, nil
	}
}

func preprocessSymbol(
	rt *Runtime,
	sym value.Symbol,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, value.Value, error) {
	def := sym.Sym
	if alias, part, ok := parseNsDef(def); ok {
		if alias == "js" {
			resolved := sym.WithResolution(value.Resolved{Kind: value.ResolvedDef, Ns: "js", Def: part})
			return resolved, nil, nil
		}
		if targetNs, ok := rt.Program.LookupNsTargetInImport(sym.Ns, alias); ok {
			return PreprocessNsDef(rt, targetNs, part, def, nil, stack)
		}
		if rt.Program.HasDefCode(alias, part) {
			return PreprocessNsDef(rt, alias, part, def, nil, stack)
		}
		return nil, nil, fmt.Errorf("unknown ns target: %s", def)
	}

	if def == "~" || def == "~@" || def == "&" || def == "?" {
		return sym.WithResolution(value.Resolved{Kind: value.ResolvedRaw}), nil, nil
	}
	if scopeDefs[def] {
		return sym.WithResolution(value.Resolved{Kind: value.ResolvedLocal}), nil, nil
	}
	if value.IsCoreSyntaxName(def) {
		name, _ := value.SyntaxFromName(def)
		return value.Syntax{Name: name, Ns: sym.Ns}, nil, nil
	}
	if builtins.IsProcName(def) {
		return value.Proc{Name: def}, nil, nil
	}
	if rt.Program.HasDefCode(config.CoreNs, def) {
		return PreprocessNsDef(rt, config.CoreNs, def, def, nil, stack)
	}
	if rt.Program.HasDefCode(sym.Ns, def) {
		return PreprocessNsDef(rt, sym.Ns, def, def, nil, stack)
	}
	if targetNs, ok := rt.Program.LookupDefTargetInImport(sym.Ns, def); ok {
		return PreprocessNsDef(rt, targetNs, def, def, nil, stack)
	}
	if strings.HasPrefix(def, ".") {
		return sym, nil, nil
	}
	if targetNs, ok := rt.Program.LookupDefaultTargetInImport(sym.Ns, def); ok {
		resolved := sym.WithResolution(value.Resolved{
			Kind: value.ResolvedDef, Ns: targetNs, Def: def,
			Rule: &value.ImportRule{Kind: value.ImportNsDefault, Ns: targetNs},
		})
		return resolved, nil, nil
	}
	names := []string{}
	for k := range scopeDefs {
		names = append(names, k)
	}
	rt.Warnings.Add(fmt.Sprintf("[Warn] unknown `%s` in %s/%s, locals {%s}", def, sym.Ns, sym.AtDef, strings.Join(names, " ")))
	return sym, nil, nil
}

func processListCall(
	rt *Runtime,
	xs []value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, value.Value, error) {
	head := xs[0]
	headForm, headEvaled, err := PreprocessExpr(rt, head, scopeDefs, fileNs, stack)
	if err != nil {
		return nil, nil, err
	}
	args := xs[1:]
	defName := grabDefName(head)

	if tag, ok := headForm.(value.Tag); ok {
		if len(args) != 1 {
			return nil, nil, fmt.Errorf("%s expected single argument", tag.String())
		}
		code := value.List{Items: []value.Value{
			value.Symbol{Sym: "get", Ns: config.CoreNs, AtDef: "generated"}.WithResolution(value.Resolved{
				Kind: value.ResolvedDef, Ns: config.CoreNs, Def: "get",
			}),
			args[0],
			head,
		}}
		return PreprocessExpr(rt, code, scopeDefs, fileNs, stack)
	}

	if macro, ok := headEvaled.(value.Macro); ok {
		currentValues := append([]value.Value{}, args...)
		code := value.List{Items: append([]value.Value{}, xs...)}
		nextStack := callstack.Extend(stack, macro.DefNs, macro.Name, callstack.KindMacro, code, args)
		for {
			bodyScope, err := BindArgs(rt, macro.Args, currentValues, nextStack)
			if err != nil {
				return nil, nil, err
			}
			result, err := EvaluateLines(rt, macro.Body, bodyScope, macro.DefNs, nextStack)
			if err != nil {
				return nil, nil, err
			}
			if recur, ok := result.(value.Recur); ok {
				currentValues = recur.Args
				continue
			}
			return PreprocessExpr(rt, result, scopeDefs, fileNs, nextStack)
		}
	}

	if syn, ok := headForm.(value.Syntax); ok {
		switch syn.Name {
		case value.SynQuasiquote:
			form, err := preprocessQuasiquote(rt, syn, args, scopeDefs, fileNs, stack)
			return form, nil, err
		case value.SynDefn, value.SynDefmacro:
			form, err := preprocessDefn(rt, syn, args, scopeDefs, fileNs, stack)
			return form, nil, err
		case value.SynCoreLet:
			form, err := preprocessCallLet(rt, syn, args, scopeDefs, fileNs, stack)
			return form, nil, err
		case value.SynIf, value.SynTry, value.SynMacroexpand, value.SynMacroexpandAll,
			value.SynMacroexpand1, value.SynReset:
			form, err := preprocessEachItems(rt, syn, args, scopeDefs, fileNs, stack)
			return form, nil, err
		case value.SynQuote, value.SynEval, value.SynHintFn:
			return preprocessQuote(syn, args), nil, nil
		case value.SynDefatom:
			form, err := preprocessDefatom(rt, syn, args, scopeDefs, fileNs, stack)
			return form, nil, err
		case value.SynFoldl, value.SynFoldlShortcut, value.SynSort,
			value.SynMap, value.SynFilter, value.SynReduce:
			form, err := preprocessEachItems(rt, syn, args, scopeDefs, fileNs, stack)
			return form, nil, err
		}
	}

	if _, ok := headForm.(value.Thunk); ok {
		return nil, nil, fmt.Errorf("does not know how to preprocess a thunk: %v", head)
	}

	if fn, ok := headEvaled.(value.Fn); ok {
		checkFnArgs(rt, fn.Args, args, fileNs, fn.Name, defName)
	}
	ys := make([]value.Value, 0, len(args)+1)
	ys = append(ys, headForm)
	for _, a := range args {
		form, _, err := PreprocessExpr(rt, a, scopeDefs, fileNs, stack)
		if err != nil {
			return nil, nil, err
		}
		ys = append(ys, form)
	}
	return value.List{Items: ys}, nil, nil
}

func checkFnArgs(rt *Runtime, definedArgs []string, params []value.Value, fileNs, fName, defName string) {
	i, j := 0, 0
	optional := false
	for {
		hasD := i < len(definedArgs)
		hasR := j < len(params)

		if !hasD && !hasR {
			return
		}
		if hasR {
			if sym, ok := params[j].(value.Symbol); ok && sym.Sym == "&" {
				return
			}
		}
		if hasD && definedArgs[i] == "&" {
			return
		}
		if hasD && definedArgs[i] == "?" {
			optional = true
			i++
			continue
		}
		if hasD && !hasR {
			if optional {
				i++
				j++
				continue
			}
			rt.Warnings.Add(fmt.Sprintf("[Warn] lack of args in %s `%v` with `%v`, at %s/%s", fName, definedArgs, params, fileNs, defName))
			return
		}
		if !hasD && hasR {
			rt.Warnings.Add(fmt.Sprintf("[Warn] too many args for %s `%v` with `%v`, at %s/%s", fName, definedArgs, params, fileNs, defName))
			return
		}
		i++
		j++
	}
}

func grabDefName(x value.Value) string {
	if sym, ok := x.(value.Symbol); ok {
		return sym.AtDef
	}
	return "??"
}

func preprocessEachItems(
	rt *Runtime,
	head value.Syntax,
	args []value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, error) {
	xs := []value.Value{head}
	for _, a := range args {
		form, _, err := PreprocessExpr(rt, a, scopeDefs, fileNs, stack)
		if err != nil {
			return nil, err
		}
		xs = append(xs, form)
	}
	return value.List{Items: xs}, nil
}

func preprocessDefn(
	rt *Runtime,
	head value.Syntax,
	args []value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("defn/defmacro expected name and args, got %v", args)
	}
	nameSym, ok := args[0].(value.Symbol)
	argList, ok2 := args[1].(value.List)
	if !ok || !ok2 {
		return nil, fmt.Errorf("defn/defmacro expected name and args: %v %v", args[0], args[1])
	}

	xs := []value.Value{head, nameSym.WithResolution(value.Resolved{Kind: value.ResolvedRaw})}

	bodyDefs := cloneScopeDefs(scopeDefs)
	argNames := make([]string, 0, len(argList.Items))
	for _, y := range argList.Items {
		sym, ok := y.(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("expected defn args to be symbols, got: %v", y)
		}
		checkSymbol(rt, sym.Sym, args)
		argNames = append(argNames, sym.Sym)
		if sym.Sym != "&" && sym.Sym != "?" {
			bodyDefs[sym.Sym] = true
		}
	}
	argsOut := make([]value.Value, len(argNames))
	for i, n := range argNames {
		argsOut[i] = value.Symbol{Sym: n, Ns: fileNs}.WithResolution(value.Resolved{Kind: value.ResolvedRaw})
	}
	xs = append(xs, value.List{Items: argsOut})

	for idx, a := range args {
		if idx < 2 {
			continue
		}
		form, _, err := PreprocessExpr(rt, a, bodyDefs, fileNs, stack)
		if err != nil {
			return nil, err
		}
		xs = append(xs, form)
	}
	return value.List{Items: xs}, nil
}

func checkSymbol(rt *Runtime, sym string, args []value.Value) {
	if builtins.IsProcName(sym) || value.IsCoreSyntaxName(sym) || rt.Program.HasDefCode(config.CoreNs, sym) {
		rt.Warnings.Add(fmt.Sprintf("[Warn] local binding `%s` shadowed `%s/%s`, with %v", sym, config.CoreNs, sym, args))
	}
}

func preprocessCallLet(
	rt *Runtime,
	head value.Syntax,
	args []value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, error) {
	xs := []value.Value{head}
	bodyDefs := cloneScopeDefs(scopeDefs)

	if len(args) == 0 {
		return nil, fmt.Errorf("expected binding of a pair, got nothing")
	}
	var binding value.Value
	switch b := args[0].(type) {
	case value.Nil:
		binding = b
	case value.List:
		if len(b.Items) != 2 {
			return nil, fmt.Errorf("expected binding of a pair, got %v", b.Items)
		}
		sym, ok := b.Items[0].(value.Symbol)
		if !ok {
			return nil, fmt.Errorf("invalid pair for &let binding: %v %v", b.Items[0], b.Items[1])
		}
		checkSymbol(rt, sym.Sym, args)
		bodyDefs[sym.Sym] = true
		form, _, err := PreprocessExpr(rt, b.Items[1], bodyDefs, fileNs, stack)
		if err != nil {
			return nil, err
		}
		binding = value.List{Items: []value.Value{b.Items[0], form}}
	default:
		return nil, fmt.Errorf("expected binding of a pair, got %v", args[0])
	}
	xs = append(xs, binding)

	for idx, a := range args {
		if idx == 0 {
			continue
		}
		form, _, err := PreprocessExpr(rt, a, bodyDefs, fileNs, stack)
		if err != nil {
			return nil, err
		}
		xs = append(xs, form)
	}
	return value.List{Items: xs}, nil
}

func preprocessQuote(head value.Syntax, args []value.Value) value.Value {
	xs := append([]value.Value{head}, args...)
	return value.List{Items: xs}
}

func preprocessDefatom(
	rt *Runtime,
	head value.Syntax,
	args []value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, error) {
	xs := []value.Value{head}
	for _, a := range args {
		form, _, err := PreprocessExpr(rt, a, scopeDefs, fileNs, stack)
		if err != nil {
			return nil, err
		}
		xs = append(xs, form)
	}
	return value.List{Items: xs}, nil
}

func preprocessQuasiquote(
	rt *Runtime,
	head value.Syntax,
	args []value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, error) {
	xs := []value.Value{head}
	for _, a := range args {
		form, err := preprocessQuasiquoteInternal(rt, a, scopeDefs, fileNs, stack)
		if err != nil {
			return nil, err
		}
		xs = append(xs, form)
	}
	return value.List{Items: xs}, nil
}

func preprocessQuasiquoteInternal(
	rt *Runtime,
	x value.Value,
	scopeDefs map[string]bool,
	fileNs string,
	stack *callstack.Stack,
) (value.Value, error) {
	lst, ok := x.(value.List)
	if !ok {
		return x, nil
	}
	if len(lst.Items) == 0 {
		return x, nil
	}
	if sym, ok := lst.Items[0].(value.Symbol); ok && (sym.Sym == "~" || sym.Sym == "~@") {
		xs := make([]value.Value, 0, len(lst.Items))
		for _, y := range lst.Items {
			form, _, err := PreprocessExpr(rt, y, scopeDefs, fileNs, stack)
			if err != nil {
				return nil, err
			}
			xs = append(xs, form)
		}
		return value.List{Items: xs}, nil
	}
	xs := make([]value.Value, 0, len(lst.Items))
	for _, y := range lst.Items {
		form, err := preprocessQuasiquoteInternal(rt, y, scopeDefs, fileNs, stack)
		if err != nil {
			return nil, err
		}
		xs = append(xs, form)
	}
	return value.List{Items: xs}, nil
}

func cloneScopeDefs(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m)+4)
	for k, v := range m {
		out[k] = v
	}
	return out
}
