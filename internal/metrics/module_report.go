package metrics

import "github.com/complexityscope/complexityscope/internal/walker"

// ModuleReport is the per-module output of the Module Analyser: the
// module-wide aggregate report, the list of per-function reports found
// during the walk, the dependency records the walker emitted, and the
// project-style averages and maintainability index computed once the
// walk completes. Analyse leaves Path empty for the caller to set; no
// other field changes once Analyse returns.
type ModuleReport struct {
	Aggregate    *FunctionReport
	Functions    []*FunctionReport
	Dependencies []walker.Dependency
	Path         string

	Maintainability float64
	LOC             float64
	Cyclomatic      float64
	Effort          float64
	Params          float64
}
