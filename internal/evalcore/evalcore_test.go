package evalcore_test

import (
	"testing"

	"github.com/funvibe/lispcore/internal/atomreg"
	"github.com/funvibe/lispcore/internal/callstack"
	"github.com/funvibe/lispcore/internal/evalcore"
	"github.com/funvibe/lispcore/internal/program"
	"github.com/funvibe/lispcore/internal/value"
	"github.com/stretchr/testify/require"
)

func sym(s, ns string) value.Value  { return value.Symbol{Sym: s, Ns: ns} }
func num(n float64) value.Value     { return value.Number{Val: n} }
func str(s string) value.Value      { return value.Str{Val: s} }
func tag(s string) value.Value      { return value.Tag{Val: s} }
func lst(items ...value.Value) value.Value { return value.List{Items: items} }

func newRuntime() (*evalcore.Runtime, *program.Store) {
	store := program.New()
	return evalcore.NewRuntime(store, atomreg.New()), store
}

// run preprocesses and evaluates ns/def, as cmd/lispcore's driver does.
func run(t *testing.T, rt *evalcore.Runtime, ns, def string) value.Value {
	t.Helper()
	stack := callstack.Empty()
	resolved, _, err := evalcore.PreprocessNsDef(rt, ns, def, def, nil, stack)
	require.NoError(t, err)
	result, err := evalcore.Eval(rt, resolved, value.NewScope(), ns, stack)
	require.NoError(t, err)
	return result
}

// (defn add2 (a b) (+ a b)) in app.core, referred into app.main, called
// as (add2 3 4) — exercises cross-namespace resolution through the
// import table alongside plain proc dispatch.
func TestCrossNsDefnCallThroughImport(t *testing.T) {
	rt, store := newRuntime()

	store.WriteDefCode("app.core", "add2", lst(
		sym("defn", "app.core"), sym("add2", "app.core"),
		lst(sym("a", "app.core"), sym("b", "app.core")),
		lst(sym("+", "app.core"), sym("a", "app.core"), sym("b", "app.core")),
	))
	store.WriteDefCode("app.main", "main", lst(
		sym("add2", "app.main"), num(3), num(4),
	))

	imp := program.NewImports()
	imp.ReferDef["add2"] = "app.core"
	store.SetImports("app.main", imp)

	got := run(t, rt, "app.main", "main")
	require.Equal(t, value.Number{Val: 7}, got)
}

// (defmacro twice (x) (quasiquote (+ (~ x) (~ x)))) expanded through an
// ordinary call — exercises macro definition, quasiquote/unquote, and
// the preprocessor re-resolving the macro's expansion.
func TestMacroExpansionViaQuasiquote(t *testing.T) {
	rt, store := newRuntime()

	store.WriteDefCode("app.main", "twice", lst(
		sym("defmacro", "app.main"), sym("twice", "app.main"),
		lst(sym("x", "app.main")),
		lst(sym("quasiquote", "app.main"),
			lst(sym("+", "app.main"),
				lst(sym("~", "app.main"), sym("x", "app.main")),
				lst(sym("~", "app.main"), sym("x", "app.main")),
			),
		),
	))
	store.WriteDefCode("app.main", "main", lst(sym("twice", "app.main"), num(5)))

	got := run(t, rt, "app.main", "main")
	require.Equal(t, value.Number{Val: 10}, got)
}

// (macroexpand-1 (quote (twice 5))) returns the macro's single-level
// expansion without resolving or evaluating it further.
func TestMacroexpandOneReturnsUnevaluatedExpansion(t *testing.T) {
	rt, store := newRuntime()

	store.WriteDefCode("app.main", "twice", lst(
		sym("defmacro", "app.main"), sym("twice", "app.main"),
		lst(sym("x", "app.main")),
		lst(sym("quasiquote", "app.main"),
			lst(sym("+", "app.main"),
				lst(sym("~", "app.main"), sym("x", "app.main")),
				lst(sym("~", "app.main"), sym("x", "app.main")),
			),
		),
	))
	store.WriteDefCode("app.main", "main", lst(
		sym("macroexpand-1", "app.main"),
		lst(sym("quote", "app.main"), lst(sym("twice", "app.main"), num(5))),
	))

	got := run(t, rt, "app.main", "main")
	expanded, ok := got.(value.List)
	require.True(t, ok)
	require.Len(t, expanded.Items, 3)
	headSym, ok := expanded.Items[0].(value.Symbol)
	require.True(t, ok)
	require.Equal(t, "+", headSym.Sym)
	require.Equal(t, value.Number{Val: 5}, expanded.Items[1])
	require.Equal(t, value.Number{Val: 5}, expanded.Items[2])
}

// (defn loop-sum (n acc) (if (< n 1) acc (recur (- n 1) (+ acc n))))
// then (loop-sum 1000 0) => 500500, with tail iteration consuming no
// additional Go stack per recursive step.
func TestTailRecursionViaRecur(t *testing.T) {
	rt, store := newRuntime()

	body := lst(
		sym("if", "app.main"),
		lst(sym("<", "app.main"), sym("n", "app.main"), num(1)),
		sym("acc", "app.main"),
		lst(sym("recur", "app.main"),
			lst(sym("-", "app.main"), sym("n", "app.main"), num(1)),
			lst(sym("+", "app.main"), sym("acc", "app.main"), sym("n", "app.main")),
		),
	)
	store.WriteDefCode("app.main", "loop-sum", lst(
		sym("defn", "app.main"), sym("loop-sum", "app.main"),
		lst(sym("n", "app.main"), sym("acc", "app.main")),
		body,
	))
	store.WriteDefCode("app.main", "main", lst(
		sym("loop-sum", "app.main"), num(1000), num(0),
	))

	got := run(t, rt, "app.main", "main")
	require.Equal(t, value.Number{Val: 500500}, got)
}

// (try (raise "boom") handler) recovers via the handler fn, which
// receives the raised message as its first argument.
func TestTryRecoversFromRaise(t *testing.T) {
	rt, store := newRuntime()

	store.WriteDefCode("app.main", "handler", lst(
		sym("defn", "app.main"), sym("handler", "app.main"),
		lst(sym("msg", "app.main"), sym("data", "app.main")),
		sym("msg", "app.main"),
	))
	store.WriteDefCode("app.main", "main", lst(
		sym("try", "app.main"),
		lst(sym("raise", "app.main"), str("boom")),
		sym("handler", "app.main"),
	))

	got := run(t, rt, "app.main", "main")
	require.Equal(t, value.Str{Val: "boom"}, got)
}

// defatom + add-watch + reset!: resetting `log` invokes `on-change`,
// which bumps a second atom `hits` — proving the watcher fires
// synchronously within reset! and can itself touch the atom registry.
func TestDefatomWatchAndReset(t *testing.T) {
	rt, store := newRuntime()

	store.WriteDefCode("app.main", "hits", lst(sym("defatom", "app.main"), sym("hits", "app.main"), num(0)))
	store.WriteDefCode("app.main", "log", lst(sym("defatom", "app.main"), sym("log", "app.main"), num(0)))
	store.WriteDefCode("app.main", "on-change", lst(
		sym("defn", "app.main"), sym("on-change", "app.main"),
		lst(sym("old", "app.main"), sym("new", "app.main")),
		lst(sym("reset!", "app.main"), sym("hits", "app.main"),
			lst(sym("+", "app.main"), lst(sym("deref", "app.main"), sym("hits", "app.main")), num(1)),
		),
	))
	store.WriteDefCode("app.main", "main", lst(
		sym("&let", "app.main"), value.Nil{},
		lst(sym("add-watch", "app.main"), sym("log", "app.main"), tag("w"), sym("on-change", "app.main")),
		lst(sym("reset!", "app.main"), sym("log", "app.main"), num(10)),
		lst(sym("deref", "app.main"), sym("hits", "app.main")),
	))

	got := run(t, rt, "app.main", "main")
	require.Equal(t, value.Number{Val: 1}, got)
}

// Mutually recursive defs preprocess without infinite recursion: the
// Nil placeholder written before recursing into a def's body breaks
// the my-even?/my-odd? cycle. (Plain `even?`/`odd?` would resolve to
// the builtin procs before any same-ns def and never reach these defs.)
func TestMutuallyRecursiveDefsPreprocessWithoutCycling(t *testing.T) {
	rt, store := newRuntime()

	store.WriteDefCode("app.main", "my-even?", lst(
		sym("defn", "app.main"), sym("my-even?", "app.main"),
		lst(sym("n", "app.main")),
		lst(sym("if", "app.main"),
			lst(sym("<", "app.main"), sym("n", "app.main"), num(1)),
			value.Bool{Val: true},
			lst(sym("my-odd?", "app.main"), lst(sym("-", "app.main"), sym("n", "app.main"), num(1))),
		),
	))
	store.WriteDefCode("app.main", "my-odd?", lst(
		sym("defn", "app.main"), sym("my-odd?", "app.main"),
		lst(sym("n", "app.main")),
		lst(sym("if", "app.main"),
			lst(sym("<", "app.main"), sym("n", "app.main"), num(1)),
			value.Bool{Val: false},
			lst(sym("my-even?", "app.main"), lst(sym("-", "app.main"), sym("n", "app.main"), num(1))),
		),
	))
	store.WriteDefCode("app.main", "main", lst(sym("my-even?", "app.main"), num(10)))

	got := run(t, rt, "app.main", "main")
	require.Equal(t, value.Bool{Val: true}, got)
}
