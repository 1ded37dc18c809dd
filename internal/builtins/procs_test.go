package builtins

import (
	"testing"

	"github.com/funvibe/lispcore/internal/atomreg"
	"github.com/funvibe/lispcore/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(n float64) value.Value { return value.Number{Val: n} }

func TestArithDispatch(t *testing.T) {
	got, err := Dispatch("+", []value.Value{num(1), num(2), num(3)}, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 6}, got)

	got, err = Dispatch("-", []value.Value{num(10), num(3)}, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 7}, got)

	got, err = Dispatch("<", []value.Value{num(1), num(2), num(3)}, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, got)
}

func TestPredicateDispatch(t *testing.T) {
	got, err := Dispatch("even?", []value.Value{num(4)}, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: true}, got)

	got, err = Dispatch("odd?", []value.Value{num(4)}, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Val: false}, got)
}

func TestCollectionGetAssoc(t *testing.T) {
	m := value.NewMap().Assoc(value.Tag{Val: "a"}, num(1))
	got, err := Dispatch("get", []value.Value{m, value.Tag{Val: "a"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, num(1), got)

	got, err = Dispatch("assoc", []value.Value{m, value.Tag{Val: "b"}, num(2)}, nil)
	require.NoError(t, err)
	updated := got.(value.Map)
	v, ok := updated.Get(value.Tag{Val: "b"})
	require.True(t, ok)
	assert.Equal(t, num(2), v)
}

func TestRangeProc(t *testing.T) {
	got, err := Dispatch("range", []value.Value{num(3)}, nil)
	require.NoError(t, err)
	lst := got.(value.List)
	require.Len(t, lst.Items, 3)
	assert.Equal(t, num(0), lst.Items[0])
	assert.Equal(t, num(2), lst.Items[2])
}

func TestRaiseReturnsEvalError(t *testing.T) {
	_, err := Dispatch("raise", []value.Value{value.Str{Val: "boom"}, value.Tag{Val: "info"}}, nil)
	require.Error(t, err)
	evalErr, ok := err.(*value.EvalError)
	require.True(t, ok)
	assert.Equal(t, "boom", evalErr.Message)
	assert.Equal(t, value.Tag{Val: "info"}, evalErr.Data)
}

func TestDerefRequiresRegistry(t *testing.T) {
	_, err := Dispatch("deref", []value.Value{value.Ref{Id: "x"}}, nil)
	assert.Error(t, err)
}

func TestDerefWithRegistry(t *testing.T) {
	reg := atomreg.New()
	id := atomreg.IdFor("app.main", "a")
	reg.Create(id, num(5))
	got, err := Dispatch("deref", []value.Value{value.Ref{Id: id}}, &RefHooks{Atoms: reg})
	require.NoError(t, err)
	assert.Equal(t, num(5), got)
}

func TestIsProcName(t *testing.T) {
	assert.True(t, IsProcName("+"))
	assert.False(t, IsProcName("not-a-proc"))
}
