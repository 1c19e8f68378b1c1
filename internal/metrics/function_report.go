package metrics

import "github.com/complexityscope/complexityscope/internal/walker"

// SLOC holds the two lines-of-code counts a report tracks. Logical is
// accumulated by the walker; Physical is derived once, at creation, from
// the scope's location range.
type SLOC struct {
	Physical *uint32
	Logical  uint32
}

// FunctionReport is a record for one lexical scope: a module's top-level
// aggregate, or a single function/method found during the walk. It is
// mutated only while it is the top of the module analyser's scope stack.
type FunctionReport struct {
	Name              *string
	Line              *uint32
	Params            uint32
	Cyclomatic        uint32
	SLOC              SLOC
	Halstead          HalsteadPair
	CyclomaticDensity float64
}

// NewFunctionReport builds a FunctionReport for name at loc (nil for a
// location-less scope) with the given parameter count. Cyclomatic starts
// at 1, matching the "one path through the function" baseline.
func NewFunctionReport(name *string, loc *walker.Loc, params uint32) *FunctionReport {
	report := &FunctionReport{
		Name:       name,
		Params:     params,
		Cyclomatic: 1,
		Halstead:   NewHalsteadPair(),
	}

	if loc != nil {
		line := loc.Start.Line
		report.Line = &line

		physical := loc.End.Line - loc.Start.Line + 1
		report.SLOC.Physical = &physical
	}

	return report
}
