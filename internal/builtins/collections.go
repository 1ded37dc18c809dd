package builtins

import (
	"github.com/funvibe/lispcore/internal/value"
)

func dispatchCollection(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "count", "len":
		if len(args) != 1 {
			return nil, arityErr(name, "1", len(args))
		}
		return value.Number{Val: float64(collectionLen(args[0]))}, nil
	case "empty?":
		if len(args) != 1 {
			return nil, arityErr(name, "1", len(args))
		}
		return value.Bool{Val: collectionLen(args[0]) == 0}, nil
	case "nth":
		if len(args) != 2 {
			return nil, arityErr(name, "collection, index", len(args))
		}
		lst, ok := args[0].(value.List)
		idx, ok2 := args[1].(value.Number)
		if !ok || !ok2 {
			return nil, arityErr(name, "list, number", len(args))
		}
		v, ok3 := lst.Get(int(idx.Val))
		if !ok3 {
			return nil, arityErr(name, "index in range", len(args))
		}
		return v, nil
	case "first":
		lst, ok := args[0].(value.List)
		if !ok || lst.Len() == 0 {
			return value.Nil{}, nil
		}
		return lst.Items[0], nil
	case "rest":
		lst, ok := args[0].(value.List)
		if !ok {
			return nil, arityErr(name, "list", len(args))
		}
		return lst.Rest(), nil
	case "append", "conj":
		if len(args) < 1 {
			return nil, arityErr(name, "at least 1", len(args))
		}
		switch coll := args[0].(type) {
		case value.List:
			items := append([]value.Value{}, coll.Items...)
			items = append(items, args[1:]...)
			return value.List{Items: items}, nil
		case value.Set:
			s := coll
			for _, a := range args[1:] {
				s = s.Add(a)
			}
			return s, nil
		}
		return nil, arityErr(name, "list or set", len(args))
	case "concat":
		items := []value.Value{}
		for _, a := range args {
			lst, ok := a.(value.List)
			if !ok {
				return nil, arityErr(name, "lists", len(args))
			}
			items = append(items, lst.Items...)
		}
		return value.List{Items: items}, nil
	case "reverse":
		lst, ok := args[0].(value.List)
		if !ok {
			return nil, arityErr(name, "list", len(args))
		}
		items := make([]value.Value, lst.Len())
		for i, v := range lst.Items {
			items[lst.Len()-1-i] = v
		}
		return value.List{Items: items}, nil
	case "contains?":
		if len(args) != 2 {
			return nil, arityErr(name, "collection, key", len(args))
		}
		return value.Bool{Val: hasKey(args[0], args[1])}, nil
	case "includes?":
		if len(args) != 2 {
			return nil, arityErr(name, "collection, value", len(args))
		}
		return value.Bool{Val: hasMember(args[0], args[1])}, nil
	case "get":
		if len(args) != 2 {
			return nil, arityErr(name, "collection, key", len(args))
		}
		return getFrom(args[0], args[1])
	case "assoc":
		if len(args) != 3 {
			return nil, arityErr(name, "collection, key, value", len(args))
		}
		return assocInto(args[0], args[1], args[2])
	case "dissoc":
		if len(args) != 2 {
			return nil, arityErr(name, "map, key", len(args))
		}
		m, ok := args[0].(value.Map)
		if !ok {
			return nil, arityErr(name, "map", len(args))
		}
		return m.Dissoc(args[1]), nil
	case "keys":
		m, ok := args[0].(value.Map)
		if !ok {
			return nil, arityErr(name, "map", len(args))
		}
		return value.Set{Items: append([]value.Value{}, m.Keys...)}, nil
	case "vals":
		m, ok := args[0].(value.Map)
		if !ok {
			return nil, arityErr(name, "map", len(args))
		}
		return value.List{Items: append([]value.Value{}, m.Vals...)}, nil
	case "range":
		return dispatchRange(args)
	case "&merge-keys":
		base, ok := args[0].(value.Map)
		if !ok {
			return nil, arityErr(name, "maps", len(args))
		}
		for _, a := range args[1:] {
			other, ok := a.(value.Map)
			if !ok {
				return nil, arityErr(name, "maps", len(args))
			}
			for i, k := range other.Keys {
				base = base.Assoc(k, other.Vals[i])
			}
		}
		return base, nil
	}
	return nil, arityErr(name, "?", len(args))
}

func collectionLen(v value.Value) int {
	switch c := v.(type) {
	case value.List:
		return c.Len()
	case value.Set:
		return len(c.Items)
	case value.Map:
		return len(c.Keys)
	case value.Str:
		return len([]rune(c.Val))
	}
	return 0
}

func hasKey(coll value.Value, key value.Value) bool {
	switch c := coll.(type) {
	case value.Map:
		_, ok := c.Get(key)
		return ok
	case value.Set:
		return c.Has(key)
	case value.Record:
		tag, ok := key.(value.Tag)
		if !ok {
			return false
		}
		_, found := c.Get(tag.Val)
		return found
	}
	return false
}

func hasMember(coll value.Value, v value.Value) bool {
	switch c := coll.(type) {
	case value.List:
		for _, item := range c.Items {
			if value.Equal(item, v) {
				return true
			}
		}
		return false
	case value.Set:
		return c.Has(v)
	}
	return false
}

func getFrom(coll value.Value, key value.Value) (value.Value, error) {
	switch c := coll.(type) {
	case value.Map:
		v, ok := c.Get(key)
		if !ok {
			return value.Nil{}, nil
		}
		return v, nil
	case value.List:
		n, ok := key.(value.Number)
		if !ok {
			return nil, arityErr("get", "index", 1)
		}
		v, ok := c.Get(int(n.Val))
		if !ok {
			return value.Nil{}, nil
		}
		return v, nil
	case value.Record:
		tag, ok := key.(value.Tag)
		if !ok {
			return value.Nil{}, nil
		}
		v, found := c.Get(tag.Val)
		if !found {
			return value.Nil{}, nil
		}
		return v, nil
	}
	return value.Nil{}, nil
}

func assocInto(coll value.Value, key value.Value, v value.Value) (value.Value, error) {
	switch c := coll.(type) {
	case value.Map:
		return c.Assoc(key, v), nil
	case value.List:
		n, ok := key.(value.Number)
		if !ok {
			return nil, arityErr("assoc", "index", 1)
		}
		idx := int(n.Val)
		if idx < 0 || idx > c.Len() {
			return nil, arityErr("assoc", "index in range", 1)
		}
		items := append([]value.Value{}, c.Items...)
		if idx == c.Len() {
			items = append(items, v)
		} else {
			items[idx] = v
		}
		return value.List{Items: items}, nil
	case value.Record:
		tag, ok := key.(value.Tag)
		if !ok {
			return nil, arityErr("assoc", "field tag", 1)
		}
		updated, found := c.With(tag.Val, v)
		if !found {
			return nil, arityErr("assoc", "existing field", 1)
		}
		return updated, nil
	}
	return nil, arityErr("assoc", "map, list or record", 1)
}

func dispatchRange(args []value.Value) (value.Value, error) {
	var start, end, step float64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, ok := args[0].(value.Number)
		if !ok {
			return nil, arityErr("range", "number", len(args))
		}
		end = n.Val
	case 2:
		a, ok1 := args[0].(value.Number)
		b, ok2 := args[1].(value.Number)
		if !ok1 || !ok2 {
			return nil, arityErr("range", "numbers", len(args))
		}
		start, end = a.Val, b.Val
	case 3:
		a, ok1 := args[0].(value.Number)
		b, ok2 := args[1].(value.Number)
		c, ok3 := args[2].(value.Number)
		if !ok1 || !ok2 || !ok3 {
			return nil, arityErr("range", "numbers", len(args))
		}
		start, end, step = a.Val, b.Val, c.Val
	default:
		return nil, arityErr("range", "1 to 3", len(args))
	}
	if step == 0 {
		return nil, arityErr("range", "non-zero step", len(args))
	}
	items := []value.Value{}
	if step > 0 {
		for x := start; x < end; x += step {
			items = append(items, value.Number{Val: x})
		}
	} else {
		for x := start; x > end; x += step {
			items = append(items, value.Number{Val: x})
		}
	}
	return value.List{Items: items}, nil
}
