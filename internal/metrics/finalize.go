package metrics

import (
	"math"

	"github.com/complexityscope/complexityscope/internal/walker"
)

// maintainabilityCeiling is the maximum value the raw (non-rescaled)
// maintainability index may take, per the classic Halstead/McCabe formula.
const maintainabilityCeiling = 171.0

const (
	miEffortCoefficient     = 3.42
	miCyclomaticCoefficient = 0.23
	miLOCCoefficient        = 16.2
	miRescaleFactor         = 100.0
)

// calculateMetrics finalises every FunctionReport (including the module
// aggregate), computes the module's project-style averages, and derives
// the maintainability index. settings.NewMI selects the 0-100 rescaling.
func (a *Analyser) calculateMetrics(settings walker.Settings) error {
	for _, fn := range a.report.Functions {
		finalizeFunctionReport(fn)
	}

	finalizeFunctionReport(a.report.Aggregate)

	loc, cyclomatic, effort, params := a.projectAverages()
	a.report.LOC = loc
	a.report.Cyclomatic = cyclomatic
	a.report.Effort = effort
	a.report.Params = params

	mi, err := maintainabilityIndex(effort, cyclomatic, loc, settings.NewMI)
	if err != nil {
		return err
	}

	a.report.Maintainability = mi

	return nil
}

// projectAverages sums sloc.logical, cyclomatic, halstead.effort and
// params across the module's functions and divides by the function count.
// A module with no functions seeds the sums from its aggregate instead,
// treating it as a single "function".
func (a *Analyser) projectAverages() (loc, cyclomatic, effort, params float64) {
	functions := a.report.Functions

	if len(functions) == 0 {
		agg := a.report.Aggregate

		return float64(agg.SLOC.Logical), float64(agg.Cyclomatic), agg.Halstead.Effort, float64(agg.Params)
	}

	var sumLOC, sumCyclomatic, sumEffort, sumParams float64

	for _, fn := range functions {
		sumLOC += float64(fn.SLOC.Logical)
		sumCyclomatic += float64(fn.Cyclomatic)
		sumEffort += fn.Halstead.Effort
		sumParams += float64(fn.Params)
	}

	count := float64(len(functions))

	return sumLOC / count, sumCyclomatic / count, sumEffort / count, sumParams / count
}

// finalizeFunctionReport computes the Halstead-derived scalars and the
// cyclomatic density for one report. Zero logical SLOC yields an IEEE-754
// +Inf/NaN density rather than an error; callers tolerate it.
func finalizeFunctionReport(report *FunctionReport) {
	report.Halstead.Finalize()
	report.CyclomaticDensity = (float64(report.Cyclomatic) / float64(report.SLOC.Logical)) * 100
}

// maintainabilityIndex computes the maintainability index from a module's
// average effort (ε), cyclomatic complexity (μ) and logical SLOC (λ).
// Fails with ErrZeroCyclomatic when μ = 0.
func maintainabilityIndex(effort, cyclomatic, loc float64, newMI bool) (float64, error) {
	if cyclomatic == 0 {
		return 0, ErrZeroCyclomatic
	}

	mi := maintainabilityCeiling -
		miEffortCoefficient*math.Log(effort) -
		miCyclomaticCoefficient*math.Log(cyclomatic) -
		miLOCCoefficient*math.Log(loc)

	if mi > maintainabilityCeiling {
		mi = maintainabilityCeiling
	}

	if newMI {
		mi = math.Max(0, mi*miRescaleFactor/maintainabilityCeiling)
	}

	return mi, nil
}
