package callstack

import (
	"os"
	"testing"

	"github.com/funvibe/lispcore/internal/config"
	"github.com/funvibe/lispcore/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendPrependsFrame(t *testing.T) {
	s := Empty()
	s = Extend(s, "app.main", "f", KindFn, value.NewList(), nil)
	s = Extend(s, "app.main", "g", KindProc, value.NewList(), nil)

	frames := s.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "g", frames[0].Def, "newest frame first")
	assert.Equal(t, "f", frames[1].Def)
}

func TestExtendDisabledByTrackStackFlag(t *testing.T) {
	config.SetTrackStack(false)
	defer config.SetTrackStack(true)

	s := Empty()
	s = Extend(s, "app.main", "f", KindFn, value.NewList(), nil)
	assert.Nil(t, s)
}

func TestDisplayAndSnapshotWritesFile(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	s := Extend(Empty(), "app.main", "boom", KindFn, value.NewList(value.Symbol{Sym: "boom"}), []value.Value{value.Number{Val: 1}})
	require.NoError(t, DisplayAndSnapshot("kaboom", s, ""))

	content, err := os.ReadFile(config.ErrorSnapshotFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "kaboom")
	assert.Contains(t, string(content), "app.main/boom")
}
