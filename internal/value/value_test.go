package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualPrimitives(t *testing.T) {
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.True(t, Equal(Number{Val: 1.5}, Number{Val: 1.5}))
	assert.False(t, Equal(Number{Val: 1.5}, Number{Val: 2}))
	assert.True(t, Equal(Str{Val: "a"}, Str{Val: "a"}))
	assert.False(t, Equal(Str{Val: "a"}, Tag{Val: "a"}))
}

func TestFnMacroIdentityEquality(t *testing.T) {
	id := NewId()
	a := Fn{Name: "f", Id: id}
	b := Fn{Name: "g", Id: id}
	assert.True(t, Equal(a, b), "fns with same id must be equal regardless of other fields")

	c := Fn{Name: "f", Id: NewId()}
	assert.False(t, Equal(a, c))
}

func TestCompareVariantRanking(t *testing.T) {
	assert.True(t, Less(Nil{}, Bool{Val: false}))
	assert.True(t, Less(Bool{Val: true}, Number{Val: -100}))
	assert.True(t, Less(Number{Val: 1}, Str{Val: "a"}))
	assert.Equal(t, 0, Compare(Number{Val: 1}, Number{Val: 1}))
}

func TestCompareListsLexicographic(t *testing.T) {
	a := NewList(Number{Val: 1}, Number{Val: 2})
	b := NewList(Number{Val: 1}, Number{Val: 3})
	assert.True(t, Less(a, b))

	short := NewList(Number{Val: 1})
	assert.True(t, Less(short, a))
}

func TestSetEqualityIgnoresOrder(t *testing.T) {
	a := NewSet(Number{Val: 1}, Number{Val: 2})
	b := NewSet(Number{Val: 2}, Number{Val: 1})
	assert.True(t, Equal(a, b))
}

func TestSetDedup(t *testing.T) {
	s := NewSet(Number{Val: 1}, Number{Val: 1}, Number{Val: 2})
	assert.Equal(t, 2, s.Len())
}

func TestMapAssocDissoc(t *testing.T) {
	m := NewMap()
	m = m.Assoc(Tag{Val: "a"}, Number{Val: 1})
	m = m.Assoc(Tag{Val: "b"}, Number{Val: 2})
	v, ok := m.Get(Tag{Val: "a"})
	assert.True(t, ok)
	assert.Equal(t, Number{Val: 1}, v)

	m2 := m.Dissoc(Tag{Val: "a"})
	_, ok = m2.Get(Tag{Val: "a"})
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len(), "original map must stay untouched")
}

func TestHashStableAcrossCalls(t *testing.T) {
	v := NewList(Number{Val: 1}, Str{Val: "x"}, Tag{Val: "y"})
	assert.Equal(t, Hash(v), Hash(v))
}

func TestHashSetOrderIndependent(t *testing.T) {
	a := NewSet(Number{Val: 1}, Number{Val: 2})
	b := NewSet(Number{Val: 2}, Number{Val: 1})
	assert.Equal(t, Hash(a), Hash(b))
}

func TestStrPrinterQuotesNonSimpleTokens(t *testing.T) {
	assert.Equal(t, "|hello-world", Str{Val: "hello-world"}.String())
	assert.Equal(t, "\"|hello world\"", Str{Val: "hello world"}.String())
}

func TestFormatLispBareNames(t *testing.T) {
	sym := Symbol{Sym: "foo"}
	lst := NewList(sym, Number{Val: 2})
	assert.Equal(t, "(foo 2)", FormatLisp(lst))
}

func TestScopeExtendDoesNotMutateParent(t *testing.T) {
	s0 := NewScope()
	s1 := s0.Bind1("x", Number{Val: 1})
	s2 := s1.Bind1("x", Number{Val: 2})

	v1, _ := s1.Get("x")
	v2, _ := s2.Get("x")
	assert.Equal(t, Number{Val: 1}, v1)
	assert.Equal(t, Number{Val: 2}, v2)

	_, ok := s0.Get("x")
	assert.False(t, ok)
}
