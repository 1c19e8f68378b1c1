package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/complexityscope/complexityscope/internal/walker"
)

const floatDelta = 0.001

func TestHalsteadBag_EncounterTracksDistinctAndTotal(t *testing.T) {
	bag := NewHalsteadBag()

	bag.Encounter("+")
	bag.Encounter("=")
	bag.Encounter("+")

	assert.Equal(t, uint32(2), bag.Distinct)
	assert.Equal(t, uint32(3), bag.Total)
	assert.Equal(t, []string{"+", "="}, bag.Identifiers)
}

func TestHalsteadBag_ZeroValueIsUsable(t *testing.T) {
	var bag HalsteadBag

	bag.Encounter("x")

	assert.Equal(t, uint32(1), bag.Distinct)
	assert.Equal(t, uint32(1), bag.Total)
}

func TestHalsteadPair_FinalizeZeroLength(t *testing.T) {
	pair := NewHalsteadPair()
	pair.Finalize()

	assert.Zero(t, pair.Length)
	assert.Zero(t, pair.Vocabulary)
	assert.Zero(t, pair.Difficulty)
	assert.Zero(t, pair.Volume)
	assert.Zero(t, pair.Effort)
	assert.Zero(t, pair.Bugs)
	assert.Zero(t, pair.Time)
}

// Two operators (+, =) and three operands (x, y, 1), each seen once.
func TestHalsteadPair_FinalizeKnownScenario(t *testing.T) {
	pair := NewHalsteadPair()

	pair.Encounter(walker.Operators, "+")
	pair.Encounter(walker.Operators, "=")
	pair.Encounter(walker.Operands, "x")
	pair.Encounter(walker.Operands, "y")
	pair.Encounter(walker.Operands, "1")

	pair.Finalize()

	assert.Equal(t, uint32(5), pair.Length)
	assert.Equal(t, uint32(5), pair.Vocabulary)
	assert.InDelta(t, 1.0, pair.Difficulty, floatDelta)
	assert.InDelta(t, 11.6096, pair.Volume, floatDelta)
	assert.InDelta(t, 11.6096, pair.Effort, floatDelta)
	assert.InDelta(t, 0.003870, pair.Bugs, floatDelta)
	assert.InDelta(t, 0.6450, pair.Time, floatDelta)
}

func TestHalsteadPair_DifficultyWithRepeatedOperands(t *testing.T) {
	pair := NewHalsteadPair()

	pair.Encounter(walker.Operators, "+")
	pair.Encounter(walker.Operators, "+")
	pair.Encounter(walker.Operands, "x")
	pair.Encounter(walker.Operands, "x")
	pair.Encounter(walker.Operands, "x")

	pair.Finalize()

	// distinctOps=1, distinctOperands=1, totalOperands=3 -> difficulty = (1/2)*(3/1) = 1.5
	assert.InDelta(t, 1.5, pair.Difficulty, floatDelta)
}
