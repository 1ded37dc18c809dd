package cirru

import (
	"testing"

	"github.com/funvibe/lispcore/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafMapping(t *testing.T) {
	cases := []struct {
		in   string
		want value.Value
	}{
		{"nil", value.Nil{}},
		{"true", value.Bool{Val: true}},
		{"false", value.Bool{Val: false}},
		{":foo", value.Tag{Val: "foo"}},
		{`"hello`, value.Str{Val: "hello"}},
		{"|hello", value.Str{Val: "hello"}},
		{"3.5", value.Number{Val: 3.5}},
		{"-2", value.Number{Val: -2}},
		{"abc", value.Symbol{Sym: "abc", Ns: "app.main"}},
	}
	for _, c := range cases {
		got, err := ToValue(Leaf(c.in), "app.main")
		require.NoError(t, err)
		assert.True(t, value.Equal(c.want, got), "leaf %q: got %v want %v", c.in, got, c.want)
	}
}

func TestQuoteSugar(t *testing.T) {
	got, err := ToValue(Leaf("'x"), "app.main")
	require.NoError(t, err)
	want := value.List{Items: []value.Value{
		value.Symbol{Sym: "quote", Ns: "app.main"},
		value.Symbol{Sym: "x", Ns: "app.main"},
	}}
	assert.True(t, value.Equal(want, got))
}

func TestUnquoteSpliceSugar(t *testing.T) {
	got, err := ToValue(Leaf("~@xs"), "app.main")
	require.NoError(t, err)
	want := value.List{Items: []value.Value{
		value.Symbol{Sym: "~@", Ns: "app.main"},
		value.Symbol{Sym: "xs", Ns: "app.main"},
	}}
	assert.True(t, value.Equal(want, got))
}

func TestListDropsLeadingCommentForms(t *testing.T) {
	n := List(
		Leaf("+"),
		Leaf("1"),
		List(Leaf(";"), Leaf("a stray comment")),
		Leaf("2"),
	)
	got, err := ToValue(n, "app.main")
	require.NoError(t, err)
	lst := got.(value.List)
	require.Len(t, lst.Items, 3)
	assert.Equal(t, value.Number{Val: 2}, lst.Items[2])
}

func TestEmptyLeafIsError(t *testing.T) {
	_, err := ToValue(Leaf(""), "app.main")
	assert.Error(t, err)
}
