package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexityscope/complexityscope/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.FormatTable, cfg.Output.Format)
	assert.True(t, cfg.Walker.LogicalOr)
	assert.True(t, cfg.Walker.SwitchCase)
	assert.False(t, cfg.Walker.ForIn)
}

func TestLoad_ReadsYAMLOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "complexityscope.yaml")
	contents := "walker:\n  forin: true\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Walker.ForIn)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "complexityscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsUnknownKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "complexityscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("walker:\n  bogus: true\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
