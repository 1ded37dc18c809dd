package atomreg

import (
	"fmt"
	"testing"

	"github.com/funvibe/lispcore/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIsIdempotent(t *testing.T) {
	r := New()
	id := IdFor("app.main", "counter")
	assert.True(t, r.Create(id, value.Number{Val: 0}))
	assert.False(t, r.Create(id, value.Number{Val: 999}), "re-creating must not overwrite")

	v, err := r.Deref(id)
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 0}, v)
}

func TestResetInvokesWatchersInOrder(t *testing.T) {
	r := New()
	id := IdFor("app.main", "a")
	r.Create(id, value.Number{Val: 0})

	var order []string
	call := func(fn value.Value, old, new value.Value) error {
		name := fn.(value.Symbol).Sym
		order = append(order, fmt.Sprintf("%s:%v->%v", name, old.(value.Number).Val, new.(value.Number).Val))
		return nil
	}

	require.NoError(t, r.AddWatch(id, "w1", value.Symbol{Sym: "w1"}))
	require.NoError(t, r.AddWatch(id, "w2", value.Symbol{Sym: "w2"}))

	require.NoError(t, r.Reset(id, value.Number{Val: 7}, call))

	require.Equal(t, []string{"w1:0->7", "w2:0->7"}, order)

	v, _ := r.Deref(id)
	assert.Equal(t, value.Number{Val: 7}, v)
}

func TestResetAbortsOnWatcherError(t *testing.T) {
	r := New()
	id := IdFor("app.main", "a")
	r.Create(id, value.Number{Val: 0})

	var called []string
	call := func(fn value.Value, old, new value.Value) error {
		name := fn.(value.Symbol).Sym
		called = append(called, name)
		if name == "bad" {
			return fmt.Errorf("boom")
		}
		return nil
	}
	require.NoError(t, r.AddWatch(id, "bad", value.Symbol{Sym: "bad"}))
	require.NoError(t, r.AddWatch(id, "after", value.Symbol{Sym: "after"}))

	err := r.Reset(id, value.Number{Val: 1}, call)
	assert.Error(t, err)
	assert.Equal(t, []string{"bad"}, called, "watchers after a failing one must not run")

	v, _ := r.Deref(id)
	assert.Equal(t, value.Number{Val: 1}, v, "value is stored before watchers run")
}

func TestRemoveWatch(t *testing.T) {
	r := New()
	id := IdFor("app.main", "a")
	r.Create(id, value.Nil{})
	require.NoError(t, r.AddWatch(id, "w1", value.Symbol{Sym: "w1"}))
	require.NoError(t, r.RemoveWatch(id, "w1"))
	assert.Empty(t, r.WatcherNames(id))
}
