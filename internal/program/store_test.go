package program

import (
	"testing"

	"github.com/funvibe/lispcore/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLookupDefCode(t *testing.T) {
	s := New()
	assert.False(t, s.HasDefCode("app.main", "x"))

	s.WriteDefCode("app.main", "x", value.Number{Val: 42})
	assert.True(t, s.HasDefCode("app.main", "x"))

	v, ok := s.LookupDefCode("app.main", "x")
	require.True(t, ok)
	assert.Equal(t, value.Number{Val: 42}, v)
}

func TestEvaledDefRoundTrip(t *testing.T) {
	s := New()
	_, ok := s.LookupEvaledDef("app.main", "y")
	assert.False(t, ok)

	require.NoError(t, s.WriteEvaledDef("app.main", "y", value.Nil{}))
	v, ok := s.LookupEvaledDef("app.main", "y")
	require.True(t, ok)
	assert.Equal(t, value.Nil{}, v)
}

func TestWriteEvaledDefRejectsEmptyKeys(t *testing.T) {
	s := New()
	err := s.WriteEvaledDef("", "y", value.Nil{})
	assert.Error(t, err)
}

func TestImportResolution(t *testing.T) {
	s := New()
	imp := NewImports()
	imp.NsAlias["util"] = "app.util"
	imp.ReferDef["helper"] = "app.util"
	imp.Default["Foo"] = "js"
	s.SetImports("app.main", imp)

	ns, ok := s.LookupNsTargetInImport("app.main", "util")
	require.True(t, ok)
	assert.Equal(t, "app.util", ns)

	ns, ok = s.LookupDefTargetInImport("app.main", "helper")
	require.True(t, ok)
	assert.Equal(t, "app.util", ns)

	ns, ok = s.LookupDefaultTargetInImport("app.main", "Foo")
	require.True(t, ok)
	assert.Equal(t, "js", ns)

	_, ok = s.LookupNsTargetInImport("app.other", "util")
	assert.False(t, ok)
}

func TestCloneEvaledProgramIsIndependent(t *testing.T) {
	s := New()
	require.NoError(t, s.WriteEvaledDef("app.main", "x", value.Number{Val: 1}))
	snap := s.CloneEvaledProgram()
	require.NoError(t, s.WriteEvaledDef("app.main", "x", value.Number{Val: 2}))

	assert.Equal(t, value.Number{Val: 1}, snap["app.main"]["x"])
	v, _ := s.LookupEvaledDef("app.main", "x")
	assert.Equal(t, value.Number{Val: 2}, v)
}
