// Program fixtures describe a whole ProgramCode as plain YAML instead
// of requiring a real Cirru surface parser (out of scope here): each
// namespace maps def names to a Cirru-shaped tree of strings/lists,
// which cirru.ToValue lifts into the Value form the preprocessor reads.
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/lispcore/internal/cirru"
	"github.com/funvibe/lispcore/internal/program"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk shape: ns -> def -> Cirru node (as nested
// YAML scalars/sequences).
type fixtureFile struct {
	Main    string                 `yaml:"main"`
	Ns      map[string]interface{} `yaml:"ns"`
}

// loadFixture reads a YAML program fixture from path and installs every
// def's lifted code into store. Returns the fixture's declared main
// "ns/def" entry point.
func loadFixture(path string, store *program.Store) (mainNs, mainDef string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading fixture: %w", err)
	}

	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", "", fmt.Errorf("parsing fixture: %w", err)
	}

	mainNs, mainDef, err = splitNsDef(f.Main)
	if err != nil {
		return "", "", err
	}

	for ns, rawDefs := range f.Ns {
		defs, ok := rawDefs.(map[string]interface{})
		if !ok {
			return "", "", fmt.Errorf("ns %q: expected a def map", ns)
		}
		for def, rawNode := range defs {
			node, err := toNode(rawNode)
			if err != nil {
				return "", "", fmt.Errorf("%s/%s: %w", ns, def, err)
			}
			code, err := cirru.ToValue(node, ns)
			if err != nil {
				return "", "", fmt.Errorf("%s/%s: %w", ns, def, err)
			}
			store.WriteDefCode(ns, def, code)
		}
	}

	return mainNs, mainDef, nil
}

// toNode converts a decoded YAML value (string leaf or []interface{}
// list) into a cirru.Node.
func toNode(raw interface{}) (cirru.Node, error) {
	switch v := raw.(type) {
	case string:
		return cirru.Leaf(v), nil
	case int:
		return cirru.Leaf(fmt.Sprintf("%d", v)), nil
	case float64:
		return cirru.Leaf(fmt.Sprintf("%v", v)), nil
	case bool:
		return cirru.Leaf(fmt.Sprintf("%v", v)), nil
	case []interface{}:
		children := make([]cirru.Node, 0, len(v))
		for _, c := range v {
			n, err := toNode(c)
			if err != nil {
				return cirru.Node{}, err
			}
			children = append(children, n)
		}
		return cirru.List(children...), nil
	default:
		return cirru.Node{}, fmt.Errorf("unsupported fixture node type %T", raw)
	}
}

func splitNsDef(s string) (ns, def string, err error) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return s[:i], s[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("main entry %q must be ns/def", s)
}
