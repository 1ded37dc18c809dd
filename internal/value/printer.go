package value

// FormatLisp renders v in the lisp-style source-echo form: lists print as bare `(...)`, symbols/procs/syntax print their
// bare name, everything else falls back to the Display printer.
//
// Grounded on the original's `format_to_lisp` (src/primes.rs).
func FormatLisp(v Value) string {
	switch x := v.(type) {
	case List:
		s := "("
		for i, it := range x.Items {
			if i > 0 {
				s += " "
			}
			s += FormatLisp(it)
		}
		return s + ")"
	case Symbol:
		return x.Sym
	case Syntax:
		return x.NameString()
	case Proc:
		return x.Name
	default:
		return v.String()
	}
}

// FormatArgs renders a slice of Values the way the original's
// CrListWrap does, for warning/error messages that want to show an
// argument list without the surrounding call form.
func FormatArgs(args []Value) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += " "
		}
		s += FormatLisp(a)
	}
	return s
}
