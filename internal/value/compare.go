package value

import "strings"

// variantRank fixes the total order across variants, using
// the order the Value table in lists them in.
func variantRank(k Kind) int {
	switch k {
	case KindNil:
		return 0
	case KindBool:
		return 1
	case KindNumber:
		return 2
	case KindStr:
		return 3
	case KindTag:
		return 4
	case KindSymbol:
		return 5
	case KindList:
		return 6
	case KindSet:
		return 7
	case KindMap:
		return 8
	case KindRecord:
		return 9
	case KindTuple:
		return 10
	case KindRef:
		return 11
	case KindThunk:
		return 12
	case KindRecur:
		return 13
	case KindProc:
		return 14
	case KindSyntax:
		return 15
	case KindFn:
		return 16
	case KindMacro:
		return 17
	default:
		return 99
	}
}

// Compare returns -1, 0, or 1 implementing the total order over Value
// variants: lists compare lexicographically; sets compare by size then
// by canonicalised (sorted) content; maps compare by size then
// sorted-key-value lexicographic order (a deliberate choice, since the
// original treats set/map ordering as unreachable).
func Compare(a, b Value) int {
	if ra, rb := variantRank(a.Kind()), variantRank(b.Kind()); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case Nil:
		return 0
	case Bool:
		return boolCmp(x.Val, b.(Bool).Val)
	case Number:
		return numCmp(x.Val, b.(Number).Val)
	case Str:
		return strings.Compare(x.Val, b.(Str).Val)
	case Tag:
		return strings.Compare(x.Val, b.(Tag).Val)
	case Symbol:
		return strings.Compare(x.Sym, b.(Symbol).Sym)
	case List:
		return compareLists(x.Items, b.(List).Items)
	case Set:
		y := b.(Set)
		if c := intCmp(x.Len(), y.Len()); c != 0 {
			return c
		}
		return compareLists(x.sortedItems(), y.sortedItems())
	case Map:
		y := b.(Map)
		if c := intCmp(x.Len(), y.Len()); c != 0 {
			return c
		}
		xk, xv := x.sortedPairs()
		yk, yv := y.sortedPairs()
		if c := compareLists(xk, yk); c != 0 {
			return c
		}
		return compareLists(xv, yv)
	case Record:
		y := b.(Record)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		if c := intCmp(len(x.Fields), len(y.Fields)); c != 0 {
			return c
		}
		for i := range x.Fields {
			if c := strings.Compare(x.Fields[i], y.Fields[i]); c != 0 {
				return c
			}
		}
		return compareLists(x.Values, y.Values)
	case Tuple:
		y := b.(Tuple)
		if c := Compare(x.A, y.A); c != 0 {
			return c
		}
		return Compare(x.B, y.B)
	case Ref:
		return strings.Compare(x.Id, b.(Ref).Id)
	case Thunk:
		return Compare(x.Code, b.(Thunk).Code)
	case Recur:
		return compareLists(x.Args, b.(Recur).Args)
	case Proc:
		return strings.Compare(x.Name, b.(Proc).Name)
	case Syntax:
		return strings.Compare(x.NameString(), b.(Syntax).NameString())
	case Fn:
		return strings.Compare(x.Id, b.(Fn).Id)
	case Macro:
		return strings.Compare(x.Id, b.(Macro).Id)
	default:
		return 0
	}
}

func compareLists(a, b []Value) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return intCmp(len(a), len(b))
}

func boolCmp(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func numCmp(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func intCmp(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b Value) bool { return Compare(a, b) < 0 }
