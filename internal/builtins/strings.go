package builtins

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/funvibe/lispcore/internal/value"
)

func strArgs(name string, args []value.Value) ([]string, error) {
	out := make([]string, len(args))
	for i, a := range args {
		s, ok := a.(value.Str)
		if !ok {
			return nil, arityErr(name, "strings", len(args))
		}
		out[i] = s.Val
	}
	return out, nil
}

func dispatchString(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "str":
		parts := make([]string, len(args))
		for i, a := range args {
			if s, ok := a.(value.Str); ok {
				parts[i] = s.Val
			} else {
				parts[i] = a.String()
			}
		}
		return value.Str{Val: strings.Join(parts, "")}, nil
	case "str-concat":
		ss, err := strArgs(name, args)
		if err != nil {
			return nil, err
		}
		return value.Str{Val: strings.Join(ss, "")}, nil
	case "str-split":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 2 {
			return nil, arityErr(name, "2 strings", len(args))
		}
		parts := strings.Split(ss[0], ss[1])
		items := make([]value.Value, len(parts))
		for i, p := range parts {
			items[i] = value.Str{Val: p}
		}
		return value.List{Items: items}, nil
	case "str-replace":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 3 {
			return nil, arityErr(name, "3 strings", len(args))
		}
		return value.Str{Val: strings.ReplaceAll(ss[0], ss[1], ss[2])}, nil
	case "substr":
		if len(args) != 3 {
			return nil, arityErr(name, "string, start, end", len(args))
		}
		s, ok := args[0].(value.Str)
		start, ok2 := args[1].(value.Number)
		end, ok3 := args[2].(value.Number)
		if !ok || !ok2 || !ok3 {
			return nil, arityErr(name, "string, start, end", len(args))
		}
		r := []rune(s.Val)
		lo, hi := int(start.Val), int(end.Val)
		if lo < 0 {
			lo = 0
		}
		if hi > len(r) {
			hi = len(r)
		}
		if lo > hi {
			return value.Str{Val: ""}, nil
		}
		return value.Str{Val: string(r[lo:hi])}, nil
	case "trim":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 1 {
			return nil, arityErr(name, "1 string", len(args))
		}
		return value.Str{Val: strings.TrimSpace(ss[0])}, nil
	case "upper":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 1 {
			return nil, arityErr(name, "1 string", len(args))
		}
		return value.Str{Val: strings.ToUpper(ss[0])}, nil
	case "lower":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 1 {
			return nil, arityErr(name, "1 string", len(args))
		}
		return value.Str{Val: strings.ToLower(ss[0])}, nil
	case "str-find":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 2 {
			return nil, arityErr(name, "2 strings", len(args))
		}
		return value.Number{Val: float64(strings.Index(ss[0], ss[1]))}, nil
	case "turn-string":
		if len(args) != 1 {
			return nil, arityErr(name, "1", len(args))
		}
		return value.Str{Val: args[0].String()}, nil
	case "parse-float":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 1 {
			return nil, arityErr(name, "1 string", len(args))
		}
		n, perr := strconv.ParseFloat(ss[0], 64)
		if perr != nil {
			return nil, perr
		}
		return value.Number{Val: n}, nil
	case "re-matches?":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 2 {
			return nil, arityErr(name, "pattern, string", len(args))
		}
		re, cerr := regexp.Compile(ss[0])
		if cerr != nil {
			return nil, cerr
		}
		return value.Bool{Val: re.MatchString(ss[1])}, nil
	case "re-find":
		ss, err := strArgs(name, args)
		if err != nil || len(ss) != 2 {
			return nil, arityErr(name, "pattern, string", len(args))
		}
		re, cerr := regexp.Compile(ss[0])
		if cerr != nil {
			return nil, cerr
		}
		found := re.FindString(ss[1])
		if found == "" && !re.MatchString(ss[1]) {
			return value.Nil{}, nil
		}
		return value.Str{Val: found}, nil
	}
	return nil, arityErr(name, "?", len(args))
}
