package builtins

import (
	"fmt"
	"os"
	"time"

	"github.com/funvibe/lispcore/internal/value"
)

var processStart = time.Now()

func dispatchIO(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "cpu-time":
		return value.Number{Val: time.Since(processStart).Seconds()}, nil
	case "now!":
		return value.Number{Val: float64(time.Now().UnixMilli())}, nil
	case "get-env":
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, arityErr(name, "string", len(args))
		}
		v, found := os.LookupEnv(s.Val)
		if !found {
			return value.Nil{}, nil
		}
		return value.Str{Val: v}, nil
	case "read-file":
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, arityErr(name, "string", len(args))
		}
		data, err := os.ReadFile(s.Val)
		if err != nil {
			return nil, err
		}
		return value.Str{Val: string(data)}, nil
	case "write-file":
		if len(args) != 2 {
			return nil, arityErr(name, "path, content", len(args))
		}
		path, ok := args[0].(value.Str)
		content, ok2 := args[1].(value.Str)
		if !ok || !ok2 {
			return nil, arityErr(name, "strings", len(args))
		}
		if err := os.WriteFile(path.Val, []byte(content.Val), 0o644); err != nil {
			return nil, err
		}
		return value.Nil{}, nil
	case "println":
		parts := make([]any, len(args))
		for i, a := range args {
			parts[i] = formatDisplay(a)
		}
		fmt.Fprintln(os.Stdout, parts...)
		return value.Nil{}, nil
	case "print":
		parts := make([]any, len(args))
		for i, a := range args {
			parts[i] = formatDisplay(a)
		}
		fmt.Fprint(os.Stdout, parts...)
		return value.Nil{}, nil
	}
	return nil, arityErr(name, "?", len(args))
}

func formatDisplay(v value.Value) string {
	if s, ok := v.(value.Str); ok {
		return s.Val
	}
	return v.String()
}
