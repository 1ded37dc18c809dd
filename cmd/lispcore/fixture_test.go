package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/funvibe/lispcore/internal/atomreg"
	"github.com/funvibe/lispcore/internal/callstack"
	"github.com/funvibe/lispcore/internal/evalcore"
	"github.com/funvibe/lispcore/internal/program"
	"github.com/funvibe/lispcore/internal/value"
	"github.com/stretchr/testify/require"
)

const addFixture = `
main: app.main/main
ns:
  app.main:
    main: ["+", "1", "2"]
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFixtureSplitsMainEntry(t *testing.T) {
	path := writeFixture(t, addFixture)
	store := program.New()
	ns, def, err := loadFixture(path, store)
	require.NoError(t, err)
	require.Equal(t, "app.main", ns)
	require.Equal(t, "main", def)
	require.True(t, store.HasDefCode("app.main", "main"))
}

func TestLoadFixtureRejectsMissingSlash(t *testing.T) {
	_, _, err := splitNsDef("no-slash-here")
	require.Error(t, err)
}

func TestFixtureEndToEndAddition(t *testing.T) {
	path := writeFixture(t, addFixture)
	store := program.New()
	atoms := atomreg.New()
	rt := evalcore.NewRuntime(store, atoms)

	ns, def, err := loadFixture(path, store)
	require.NoError(t, err)

	stack := callstack.Empty()
	resolved, _, err := evalcore.PreprocessNsDef(rt, ns, def, def, nil, stack)
	require.NoError(t, err)

	result, err := evalcore.Eval(rt, resolved, value.NewScope(), ns, stack)
	require.NoError(t, err)
	require.Equal(t, value.Number{Val: 3}, result)
}
