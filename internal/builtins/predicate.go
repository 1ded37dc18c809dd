package builtins

import (
	"math"

	"github.com/funvibe/lispcore/internal/value"
)

func dispatchPredicate(name string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityErr(name, "1", len(args))
	}
	a := args[0]
	switch name {
	case "number?":
		_, ok := a.(value.Number)
		return value.Bool{Val: ok}, nil
	case "string?":
		_, ok := a.(value.Str)
		return value.Bool{Val: ok}, nil
	case "bool?":
		_, ok := a.(value.Bool)
		return value.Bool{Val: ok}, nil
	case "nil?":
		_, ok := a.(value.Nil)
		return value.Bool{Val: ok}, nil
	case "fn?":
		_, ok := a.(value.Fn)
		return value.Bool{Val: ok}, nil
	case "list?":
		_, ok := a.(value.List)
		return value.Bool{Val: ok}, nil
	case "set?":
		_, ok := a.(value.Set)
		return value.Bool{Val: ok}, nil
	case "map?":
		_, ok := a.(value.Map)
		return value.Bool{Val: ok}, nil
	case "record?":
		_, ok := a.(value.Record)
		return value.Bool{Val: ok}, nil
	case "keyword?":
		_, ok := a.(value.Tag)
		return value.Bool{Val: ok}, nil
	case "even?":
		n, ok := a.(value.Number)
		if !ok {
			return nil, arityErr(name, "number", 1)
		}
		return value.Bool{Val: math.Mod(n.Val, 2) == 0}, nil
	case "odd?":
		n, ok := a.(value.Number)
		if !ok {
			return nil, arityErr(name, "number", 1)
		}
		return value.Bool{Val: math.Mod(n.Val, 2) != 0}, nil
	case "zero?":
		n, ok := a.(value.Number)
		if !ok {
			return nil, arityErr(name, "number", 1)
		}
		return value.Bool{Val: n.Val == 0}, nil
	}
	return nil, arityErr(name, "?", len(args))
}
