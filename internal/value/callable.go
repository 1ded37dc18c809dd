package value

// Ref is a handle into the atom registry (internal/atomreg).
type Ref struct{ Id string }

func (Ref) Kind() Kind     { return KindRef }
func (r Ref) String() string { return "(&ref " + r.Id + ")" }

// Thunk is a suspended top-level computation, cached after first force.
// It only appears as a stored top-level value during preprocessing;
// HasCached distinguishes "not yet forced" from a forced Nil result.
type Thunk struct {
	Code      Value
	Cached    Value
	HasCached bool
}

func (Thunk) Kind() Kind { return KindThunk }
func (t Thunk) String() string {
	if t.HasCached {
		return "(&thunk " + t.Cached.String() + " " + t.Code.String() + ")"
	}
	return "(&thunk _ " + t.Code.String() + ")"
}

// Force returns the thunk with its cache populated, assuming computed
// has already been evaluated by the caller.
func (t Thunk) Force(computed Value) Thunk {
	return Thunk{Code: t.Code, Cached: computed, HasCached: true}
}

// Recur is the tail-iteration sentinel: it must never escape the
// function/macro/loop body that produced it.
type Recur struct {
	Args []Value
}

func (Recur) Kind() Kind { return KindRecur }
func (r Recur) String() string {
	return "(&recur" + joinItems(r.Args) + ")"
}

// Proc is a built-in procedure identified by name (internal/builtins
// owns the closed enum behind the dispatcher).
type Proc struct{ Name string }

func (Proc) Kind() Kind     { return KindProc }
func (p Proc) String() string { return "(&proc " + p.Name + ")" }

// SyntaxName enumerates the built-in special forms.
type SyntaxName int

const (
	SynIf SyntaxName = iota
	SynCoreLet
	SynQuote
	SynQuasiquote
	SynDefn
	SynDefmacro
	SynTry
	SynMacroexpand
	SynMacroexpand1
	SynMacroexpandAll
	SynEval
	SynFoldl
	SynFoldlShortcut
	SynSort
	SynMap
	SynFilter
	SynReduce
	SynDefatom
	SynReset
	SynHintFn
)

var syntaxNames = map[SyntaxName]string{
	SynIf:              "if",
	SynCoreLet:         "&let",
	SynQuote:           "quote",
	SynQuasiquote:      "quasiquote",
	SynDefn:            "defn",
	SynDefmacro:        "defmacro",
	SynTry:             "try",
	SynMacroexpand:     "macroexpand",
	SynMacroexpand1:    "macroexpand-1",
	SynMacroexpandAll:  "macroexpand-all",
	SynEval:            "eval",
	SynFoldl:           "foldl",
	SynFoldlShortcut:   "foldl-shortcut",
	SynSort:            "sort",
	SynMap:             "map",
	SynFilter:          "filter",
	SynReduce:          "reduce",
	SynDefatom:         "defatom",
	SynReset:           "reset!",
	SynHintFn:          "&fn",
}

var syntaxByName map[string]SyntaxName

func init() {
	syntaxByName = make(map[string]SyntaxName, len(syntaxNames))
	for k, v := range syntaxNames {
		syntaxByName[v] = k
	}
}

// IsCoreSyntaxName reports whether s names a built-in special form.
func IsCoreSyntaxName(s string) bool {
	_, ok := syntaxByName[s]
	return ok
}

// SyntaxFromName resolves a textual syntax name to its SyntaxName.
func SyntaxFromName(s string) (SyntaxName, bool) {
	n, ok := syntaxByName[s]
	return n, ok
}

// Syntax is a built-in special form, evaluated with unevaluated
// arguments.
type Syntax struct {
	Name SyntaxName
	Ns   string
}

func (Syntax) Kind() Kind { return KindSyntax }
func (s Syntax) String() string {
	return "(&syntax " + syntaxNames[s.Name] + ")"
}

func (s Syntax) NameString() string { return syntaxNames[s.Name] }

// Fn is a closure: captured lexical scope plus formal params and body.
// Args follows the grammar `name* ('&' name)? ('?' name*)?`.
// Two Fn values are equal iff their Id matches.
type Fn struct {
	Name  string
	DefNs string
	Id    string
	Scope *Scope
	Args  []string
	Body  []Value
}

func (Fn) Kind() Kind { return KindFn }
func (f Fn) String() string {
	return "(&fn " + f.Name + " (" + joinStrings(f.Args) + ") (" + joinValues(f.Body) + "))"
}

// Macro is a compile-time expander: no captured scope.
type Macro struct {
	Name  string
	DefNs string
	Id    string
	Args  []string
	Body  []Value
}

func (Macro) Kind() Kind { return KindMacro }
func (m Macro) String() string {
	return "(&macro " + m.Name + " (" + joinStrings(m.Args) + ") (" + joinValues(m.Body) + "))"
}

func joinStrings(xs []string) string {
	s := ""
	for i, x := range xs {
		if i > 0 {
			s += " "
		}
		s += x
	}
	return s
}

func joinValues(xs []Value) string {
	s := ""
	for i, x := range xs {
		if i > 0 {
			s += " "
		}
		s += FormatLisp(x)
	}
	return s
}
