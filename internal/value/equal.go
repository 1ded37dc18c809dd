package value

// Equal implements the equality rules: structural equality for
// data variants, nanoid-identity equality for Fn/Macro.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Nil:
		return true
	case Bool:
		return x.Val == b.(Bool).Val
	case Number:
		return x.Val == b.(Number).Val
	case Str:
		return x.Val == b.(Str).Val
	case Tag:
		return x.Val == b.(Tag).Val
	case Symbol:
		y := b.(Symbol)
		return x.Sym == y.Sym
	case List:
		y := b.(List)
		if len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case Set:
		y := b.(Set)
		if len(x.Items) != len(y.Items) {
			return false
		}
		for _, it := range x.Items {
			if !y.Has(it) {
				return false
			}
		}
		return true
	case Map:
		y := b.(Map)
		if len(x.Keys) != len(y.Keys) {
			return false
		}
		for i, k := range x.Keys {
			yv, ok := y.Get(k)
			if !ok || !Equal(x.Vals[i], yv) {
				return false
			}
		}
		return true
	case Record:
		y := b.(Record)
		if x.Name != y.Name || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i] != y.Fields[i] || !Equal(x.Values[i], y.Values[i]) {
				return false
			}
		}
		return true
	case Tuple:
		y := b.(Tuple)
		return Equal(x.A, y.A) && Equal(x.B, y.B)
	case Ref:
		return x.Id == b.(Ref).Id
	case Thunk:
		y := b.(Thunk)
		return Equal(x.Code, y.Code)
	case Recur:
		y := b.(Recur)
		return equalSlice(x.Args, y.Args)
	case Proc:
		return x.Name == b.(Proc).Name
	case Syntax:
		return x.Name == b.(Syntax).Name
	case Fn:
		return x.Id == b.(Fn).Id
	case Macro:
		return x.Id == b.(Macro).Id
	default:
		return false
	}
}

func equalSlice(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
