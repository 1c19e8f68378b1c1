// Package project implements the project-level dependency graph analyser:
// it runs the Module Analyser across every module, resolves each module's
// dependencies against the others by path, and derives the adjacency
// matrix, visibility matrix, first-order density, change cost and core
// size from the result.
package project

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel"

	"github.com/complexityscope/complexityscope/internal/metrics"
	"github.com/complexityscope/complexityscope/internal/walker"
)

// tracerName is the OTel tracer for this package's one structural span,
// around the Floyd–Warshall stage. The per-module spans come from
// internal/metrics' own tracer.
const tracerName = "complexityscope.project"

// ModuleInput is one module to analyse: its syntax tree and its path,
// used both for sorting and for dependency-path resolution.
type ModuleInput struct {
	AST  walker.AST
	Path string
}

// Options control the optional, expensive stages of project analysis.
type Options struct {
	// SkipCalculation returns the raw per-module reports without building
	// any matrix or computing any project-level metric.
	SkipCalculation bool
	// NoCoreSize skips the visibility matrix, change cost and core size
	// computation, leaving the adjacency matrix and density intact.
	NoCoreSize bool
}

// Result is the project-wide output: per-module reports sorted by path,
// the dependency matrices, and the graph- and project-level metrics
// derived from them.
type Result struct {
	Reports          []*metrics.ModuleReport
	AdjacencyMatrix  Matrix
	VisibilityMatrix Matrix

	FirstOrderDensity float64
	ChangeCost        float64
	CoreSize          float64

	LOC             float64
	Cyclomatic      float64
	Effort          float64
	Params          float64
	Maintainability float64
}

// Analyse runs the Module Analyser across modules in order, then — unless
// options.SkipCalculation is set — post-processes the reports into a
// Result. A failure in any module's analysis is re-raised with its path
// prefixed onto the error message; no partial results are returned. Each
// module's walk and the Floyd–Warshall stage are each wrapped in their own
// span.
func Analyse(ctx context.Context, modules []ModuleInput, w walker.Walker, settings walker.Settings, options Options) (*Result, error) {
	reports := make([]*metrics.ModuleReport, 0, len(modules))

	for _, module := range modules {
		if module.Path == "" {
			return nil, ErrInvalidInput
		}

		report, err := metrics.NewAnalyser().Analyse(ctx, module.AST, w, settings)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", module.Path, err)
		}

		report.Path = module.Path
		reports = append(reports, report)
	}

	if options.SkipCalculation {
		return &Result{Reports: reports}, nil
	}

	return processResults(ctx, reports, options.NoCoreSize)
}

// processResults sorts reports by path, builds the adjacency matrix and,
// unless noCoreSize is set, the visibility matrix and its derived
// metrics, then computes the project-wide averages.
func processResults(ctx context.Context, reports []*metrics.ModuleReport, noCoreSize bool) (*Result, error) {
	sort.SliceStable(reports, func(i, j int) bool {
		return pathLess(reports[i].Path, reports[j].Path)
	})

	result := &Result{Reports: reports}

	adjacency := buildAdjacencyMatrix(reports)
	result.AdjacencyMatrix = adjacency
	result.FirstOrderDensity = firstOrderDensity(adjacency)

	if !noCoreSize {
		_, span := otel.Tracer(tracerName).Start(ctx, "complexityscope.project.floyd_warshall")
		dist := floydWarshall(adjacency)
		span.End()

		visibility, changeCost := toVisibility(dist)

		result.VisibilityMatrix = visibility
		result.ChangeCost = changeCost
		result.CoreSize = coreSize(visibility, result.FirstOrderDensity)
	}

	computeProjectAverages(result)

	return result, nil
}

// computeProjectAverages averages cyclomatic, effort, loc, maintainability
// and params across all module reports, dividing by 1 instead of 0 for an
// empty project.
func computeProjectAverages(result *Result) {
	divisor := len(result.Reports)
	if divisor == 0 {
		divisor = 1
	}

	var sumLOC, sumCyclomatic, sumEffort, sumParams, sumMI float64

	for _, report := range result.Reports {
		sumLOC += report.LOC
		sumCyclomatic += report.Cyclomatic
		sumEffort += report.Effort
		sumParams += report.Params
		sumMI += report.Maintainability
	}

	d := float64(divisor)
	result.LOC = sumLOC / d
	result.Cyclomatic = sumCyclomatic / d
	result.Effort = sumEffort / d
	result.Params = sumParams / d
	result.Maintainability = sumMI / d
}
