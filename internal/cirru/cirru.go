// Package cirru implements the CirruNode -> Value lift. Surface
// parsing of the indentation-based Cirru syntax itself is an external
// collaborator, out of scope here; this package only consumes the
// already-parsed CirruNode tree.
//
// Grounded directly on the original Calcit implementation's
// src/data/cirru.rs (cirru_to_calcit).
package cirru

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/funvibe/lispcore/internal/value"
)

// Node is either a leaf string or a list of child nodes, matching the
// external parser's output shape.
type Node struct {
	Leaf     string
	Children []Node
	IsLeaf   bool
}

func Leaf(s string) Node        { return Node{Leaf: s, IsLeaf: true} }
func List(children ...Node) Node { return Node{Children: children} }

var floatRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ToValue lifts a CirruNode into a Value tree keyed by ns, per the leaf
// mapping table below. List nodes become value.List after dropping
// leading `;`-prefixed comment forms.
func ToValue(n Node, ns string) (value.Value, error) {
	if n.IsLeaf {
		return leafToValue(n.Leaf, ns)
	}
	items := make([]value.Value, 0, len(n.Children))
	for _, child := range n.Children {
		v, err := ToValue(child, ns)
		if err != nil {
			return nil, err
		}
		if isCommentForm(v) {
			continue
		}
		items = append(items, v)
	}
	return value.List{Items: items}, nil
}

func isCommentForm(v value.Value) bool {
	lst, ok := v.(value.List)
	if !ok || len(lst.Items) == 0 {
		return false
	}
	sym, ok := lst.Items[0].(value.Symbol)
	return ok && sym.Sym == ";"
}

func leafToValue(s string, ns string) (value.Value, error) {
	switch s {
	case "":
		return nil, fmt.Errorf("empty string is invalid")
	case "nil":
		return value.Nil{}, nil
	case "true":
		return value.Bool{Val: true}, nil
	case "false":
		return value.Bool{Val: false}, nil
	}

	switch s[0] {
	case ':':
		return value.Tag{Val: s[1:]}, nil
	case '"':
		return value.Str{Val: s[1:]}, nil
	case '|':
		return value.Str{Val: s[1:]}, nil
	case '\'':
		return value.List{Items: []value.Value{
			value.Symbol{Sym: "quote", Ns: ns},
			value.Symbol{Sym: s[1:], Ns: ns},
		}}, nil
	case '~':
		if len(s) > 1 && s[1] == '@' {
			return value.List{Items: []value.Value{
				value.Symbol{Sym: "~@", Ns: ns},
				value.Symbol{Sym: s[2:], Ns: ns},
			}}, nil
		}
		return value.List{Items: []value.Value{
			value.Symbol{Sym: "~", Ns: ns},
			value.Symbol{Sym: s[1:], Ns: ns},
		}}, nil
	case '@':
		return value.List{Items: []value.Value{
			value.Symbol{Sym: "@", Ns: ns},
			value.Symbol{Sym: s[1:], Ns: ns},
		}}, nil
	}

	if floatRe.MatchString(s) {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return value.Number{Val: n}, nil
	}
	return value.Symbol{Sym: s, Ns: ns}, nil
}
