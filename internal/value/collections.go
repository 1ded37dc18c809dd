package value

import "sort"

// List is the persistent ordered sequence of Value — the primary code
// carrier (every expression the preprocessor/evaluator walks is a List).
//
// Go has no builtin persistent vector; per DESIGN.md this uses
// copy-on-write slices (cheap enough at interpreter-core scale) rather
// than pulling in a third-party persistent-collection library, since
// none of the example repos in the pack use one for this purpose.
type List struct {
	Items []Value
}

func NewList(items ...Value) List { return List{Items: items} }

func (List) Kind() Kind { return KindList }
func (l List) String() string {
	return "([]" + joinItems(l.Items) + ")"
}

// Push returns a new List with v appended, leaving l untouched.
func (l List) Push(v Value) List {
	next := make([]Value, len(l.Items)+1)
	copy(next, l.Items)
	next[len(l.Items)] = v
	return List{Items: next}
}

// Rest returns a new List without the first element. Empty input
// yields an empty list.
func (l List) Rest() List {
	if len(l.Items) == 0 {
		return l
	}
	next := make([]Value, len(l.Items)-1)
	copy(next, l.Items[1:])
	return List{Items: next}
}

func (l List) Len() int { return len(l.Items) }

func (l List) Get(i int) (Value, bool) {
	if i < 0 || i >= len(l.Items) {
		return nil, false
	}
	return l.Items[i], true
}

func joinItems(items []Value) string {
	s := ""
	for _, it := range items {
		s += " " + it.String()
	}
	return s
}

// Set is a persistent unordered collection of unique Values, deduped by
// Equal.
type Set struct {
	Items []Value
}

func NewSet(items ...Value) Set {
	var s Set
	for _, it := range items {
		s = s.Add(it)
	}
	return s
}

func (Set) Kind() Kind { return KindSet }
func (s Set) String() string {
	return "(#{}" + joinItems(s.Items) + ")"
}

func (s Set) Has(v Value) bool {
	for _, it := range s.Items {
		if Equal(it, v) {
			return true
		}
	}
	return false
}

// Add returns a new Set with v included, or s unchanged if already present.
func (s Set) Add(v Value) Set {
	if s.Has(v) {
		return s
	}
	next := make([]Value, len(s.Items)+1)
	copy(next, s.Items)
	next[len(s.Items)] = v
	return Set{Items: next}
}

func (s Set) Len() int { return len(s.Items) }

// sortedItems returns a defensive copy of s.Items ordered by Compare,
// used for canonical comparison/hashing.
func (s Set) sortedItems() []Value {
	out := make([]Value, len(s.Items))
	copy(out, s.Items)
	sort.Slice(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })
	return out
}

// Map is a persistent Value->Value mapping; insertion order is not
// guaranteed, stored as parallel key/value slices and
// looked up via Equal.
type Map struct {
	Keys []Value
	Vals []Value
}

func NewMap() Map { return Map{} }

func (Map) Kind() Kind { return KindMap }
func (m Map) String() string {
	s := "({}"
	for i, k := range m.Keys {
		s += " (" + k.String() + " " + m.Vals[i].String() + ")"
	}
	return s + ")"
}

func (m Map) Get(k Value) (Value, bool) {
	for i, kk := range m.Keys {
		if Equal(kk, k) {
			return m.Vals[i], true
		}
	}
	return nil, false
}

// Assoc returns a new Map with k bound to v, replacing any prior binding.
func (m Map) Assoc(k, v Value) Map {
	for i, kk := range m.Keys {
		if Equal(kk, k) {
			keys := append([]Value{}, m.Keys...)
			vals := append([]Value{}, m.Vals...)
			vals[i] = v
			return Map{Keys: keys, Vals: vals}
		}
	}
	keys := append(append([]Value{}, m.Keys...), k)
	vals := append(append([]Value{}, m.Vals...), v)
	return Map{Keys: keys, Vals: vals}
}

// Dissoc returns a new Map without k.
func (m Map) Dissoc(k Value) Map {
	keys := make([]Value, 0, len(m.Keys))
	vals := make([]Value, 0, len(m.Vals))
	for i, kk := range m.Keys {
		if !Equal(kk, k) {
			keys = append(keys, kk)
			vals = append(vals, m.Vals[i])
		}
	}
	return Map{Keys: keys, Vals: vals}
}

func (m Map) Len() int { return len(m.Keys) }

// sortedPairs returns key/value pairs ordered by key Compare, used for
// canonical comparison/hashing.
func (m Map) sortedPairs() ([]Value, []Value) {
	idx := make([]int, len(m.Keys))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return Compare(m.Keys[idx[i]], m.Keys[idx[j]]) < 0 })
	keys := make([]Value, len(idx))
	vals := make([]Value, len(idx))
	for i, j := range idx {
		keys[i] = m.Keys[j]
		vals[i] = m.Vals[j]
	}
	return keys, vals
}
