package walker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/complexityscope/complexityscope/internal/walker"
)

func TestDefaultSettings(t *testing.T) {
	settings := walker.DefaultSettings()

	assert.False(t, settings.ForIn)
	assert.True(t, settings.LogicalOr)
	assert.False(t, settings.NewMI)
	assert.True(t, settings.SwitchCase)
	assert.False(t, settings.TryCatch)
}

func TestCount_AbsentResolvesToZero(t *testing.T) {
	var c walker.Count

	assert.False(t, c.Present())
	assert.Zero(t, c.Resolve(nil))
}

func TestCount_Literal(t *testing.T) {
	c := walker.LiteralCount(3)

	assert.True(t, c.Present())
	assert.Equal(t, uint32(3), c.Resolve(nil))
}

func TestCount_Computed(t *testing.T) {
	c := walker.ComputedCount(func(node any) uint32 {
		if node == nil {
			return 0
		}

		return 7
	})

	assert.True(t, c.Present())
	assert.Equal(t, uint32(7), c.Resolve("node"))
	assert.Zero(t, c.Resolve(nil))
}

func TestIdentifier_LiteralAndComputed(t *testing.T) {
	lit := walker.LiteralIdentifier("+")
	assert.Equal(t, "+", lit.Resolve(nil))
	assert.True(t, lit.Applies(nil))

	dyn := walker.ComputedIdentifier(func(any) string { return "()" })
	assert.Equal(t, "()", dyn.Resolve(nil))
}

func TestIdentifier_FilterGatesApplication(t *testing.T) {
	id := walker.LiteralIdentifier("if").WithFilter(func(node any) bool {
		enabled, ok := node.(bool)

		return ok && enabled
	})

	assert.True(t, id.Applies(true))
	assert.False(t, id.Applies(false))
	assert.False(t, id.Applies(nil))
}

func TestDependencyResult_Records(t *testing.T) {
	assert.Nil(t, walker.NoDependency().Records())

	one := walker.OneDependency(walker.Dependency{Type: "CommonJS", Path: "./a"})
	assert.Equal(t, []walker.Dependency{{Type: "CommonJS", Path: "./a"}}, one.Records())

	many := walker.ManyDependencies([]walker.Dependency{
		{Type: "CommonJS", Path: "./b"},
		{Type: "AMD", Path: "c"},
	})
	assert.Len(t, many.Records(), 2)
}
