package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexityscope/complexityscope/cmd/complexityscope/commands"
)

const fixtureModule = `function add(a, b) {
  if (a > 0) {
    return a + b;
  }
  return b;
}
module.exports = add;
`

func writeFixture(t *testing.T, dir, name, source string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o600))

	return path
}

func TestAnalyzeModule_RendersTableByDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFixture(t, dir, "add.js", fixtureModule)

	cmd := commands.NewAnalyzeCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"module", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Maintainability")
}

func TestAnalyzeProject_RendersDependencyTotals(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "a.js", "const b = require('./b');\nfunction use() { return b(); }\n")
	writeFixture(t, dir, "b.js", "module.exports = function () { return 1; };\n")

	cmd := commands.NewAnalyzeCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"project", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Core Size")
}

func TestAnalyzeModule_MissingFileReturnsError(t *testing.T) {
	t.Parallel()

	cmd := commands.NewAnalyzeCommand()
	cmd.SetArgs([]string{"module", "/no/such/file.js"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
}
