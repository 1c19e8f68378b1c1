package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintainabilityIndex_ZeroCyclomaticFails(t *testing.T) {
	_, err := maintainabilityIndex(100, 0, 10, false)
	require.ErrorIs(t, err, ErrZeroCyclomatic)
}

func TestMaintainabilityIndex_ClampsToCeiling(t *testing.T) {
	mi, err := maintainabilityIndex(0, 1, 0, false)
	require.NoError(t, err)
	assert.InDelta(t, maintainabilityCeiling, mi, floatDelta)
}

// newmi=true remaps a raw MI of 85.5 onto the 0-100 scale, yielding 50.
func TestMaintainabilityIndex_NewMIRescale(t *testing.T) {
	// Solve for an (effort, cyclomatic, loc) triple that yields exactly
	// 85.5 before rescaling: effort = cyclomatic = 1 zero their log terms,
	// leaving loc alone to bring the ceiling down to rawMI.
	const rawMI = 85.5

	loc := math.Exp((maintainabilityCeiling - rawMI) / miLOCCoefficient)

	rescaled, err := maintainabilityIndex(1, 1, loc, true)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, rescaled, floatDelta)
}

func TestFinalizeFunctionReport_ZeroLogicalSLOCYieldsInfiniteDensity(t *testing.T) {
	report := NewFunctionReport(nil, nil, 0)
	report.Cyclomatic = 3

	finalizeFunctionReport(report)

	assert.True(t, math.IsInf(report.CyclomaticDensity, 1))
}

func TestFinalizeFunctionReport_Density(t *testing.T) {
	report := NewFunctionReport(nil, nil, 0)
	report.Cyclomatic = 2
	report.SLOC.Logical = 4

	finalizeFunctionReport(report)

	assert.InDelta(t, 50.0, report.CyclomaticDensity, floatDelta)
}
