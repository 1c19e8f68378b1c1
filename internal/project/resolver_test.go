package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/complexityscope/complexityscope/internal/walker"
)

func TestPathLess_ShorterPathWinsOverLexicographic(t *testing.T) {
	assert.True(t, pathLess("z.js", "a/b.js"))
	assert.False(t, pathLess("a/b.js", "z.js"))
}

func TestPathLess_TieBreaksLexicographically(t *testing.T) {
	assert.True(t, pathLess("a/a.js", "a/b.js"))
	assert.False(t, pathLess("a/b.js", "a/a.js"))
}

func TestResolves_RelativeCommonJS(t *testing.T) {
	dep := walker.Dependency{Type: "CommonJS", Path: "./b"}

	assert.True(t, resolves(dep, "/proj/a.js", "/proj/b.js"))
}

func TestResolves_RelativeCommonJSFallsBackToIndex(t *testing.T) {
	dep := walker.Dependency{Type: "CommonJS", Path: "./sub"}

	assert.True(t, resolves(dep, "/proj/a.js", "/proj/sub/index.js"))
}

// A non-relative CommonJS specifier never
// resolves, regardless of target path.
func TestResolves_NonRelativeCommonJSNeverResolves(t *testing.T) {
	dep := walker.Dependency{Type: "CommonJS", Path: "lodash"}

	assert.False(t, resolves(dep, "/proj/a.js", "/proj/lodash.js"))
	assert.False(t, resolves(dep, "/proj/a.js", "/node_modules/lodash/index.js"))
}

func TestResolves_NonCommonJSSkipsRelativeGate(t *testing.T) {
	dep := walker.Dependency{Type: "ESM", Path: "b"}

	assert.True(t, resolves(dep, "/proj/a.js", "/proj/b"))
}

func TestIsRelative(t *testing.T) {
	assert.True(t, isRelative("./x"))
	assert.True(t, isRelative("../x"))
	assert.False(t, isRelative("x"))
	assert.False(t, isRelative("lodash"))
	assert.False(t, isRelative(".hidden"))
}
