package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/complexityscope/complexityscope/internal/project"
)

const (
	graphWidth        = "1100px"
	graphHeight       = "750px"
	coreCategory      = 0
	peripheryCategory = 1
	baseSymbolSize    = 20
	cyclomaticWeight  = 2
)

// renderHTML writes an interactive node-link visualisation of the project's
// dependency graph: one node per module, one edge per adjacency-matrix
// cell, coloured by core-vs-periphery membership and sized by cyclomatic
// complexity.
func renderHTML(w io.Writer, result *project.Result, _ Options) error {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: graphWidth, Height: graphHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Module Dependency Graph",
			Subtitle: fmt.Sprintf("%d modules, %.2f%% first-order density, %.2f%% core", len(result.Reports), result.FirstOrderDensity, result.CoreSize),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	core := coreMembership(result)

	nodes := make([]opts.GraphNode, len(result.Reports))
	for i, rep := range result.Reports {
		category := peripheryCategory
		if core[i] {
			category = coreCategory
		}

		nodes[i] = opts.GraphNode{
			Name:       rep.Path,
			SymbolSize: float32(baseSymbolSize + cyclomaticWeight*rep.Cyclomatic),
			Category:   category,
			Value:      float32(rep.Maintainability),
		}
	}

	links := make([]opts.GraphLink, 0, result.AdjacencyMatrix.N*result.AdjacencyMatrix.N)

	for i, from := range result.Reports {
		for j, to := range result.Reports {
			if i == j || result.AdjacencyMatrix.At(i, j) != 1 {
				continue
			}

			links = append(links, opts.GraphLink{Source: from.Path, Target: to.Path})
		}
	}

	graph.AddSeries("dependencies", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Force:      &opts.GraphForce{Repulsion: 200},
			Roam:       opts.Bool(true),
			Layout:     "force",
			Categories: []*opts.GraphCategory{{Name: "core"}, {Name: "periphery"}},
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)

	page := components.NewPage()
	page.AddCharts(graph)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dependency graph: %w", err)
	}

	return nil
}

// coreMembership recomputes, per module, whether its fan-in and fan-out in
// the visibility matrix both meet or exceed the median — the same
// definition the project package uses for the aggregate core-size metric,
// applied per-node so the graph can colour individual modules.
func coreMembership(result *project.Result) []bool {
	n := result.VisibilityMatrix.N
	membership := make([]bool, n)

	if n == 0 || result.FirstOrderDensity == 0 {
		return membership
	}

	fanIn := make([]int, n)
	fanOut := make([]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if result.VisibilityMatrix.At(i, j) == 1 {
				fanOut[i]++
				fanIn[j]++
			}
		}
	}

	medIn := median(fanIn)
	medOut := median(fanOut)

	for i := 0; i < n; i++ {
		membership[i] = float64(fanIn[i]) >= medIn && float64(fanOut[i]) >= medOut
	}

	return membership
}

func median(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}

	sorted := append([]int(nil), xs...)

	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return float64(sorted[mid-1]+sorted[mid]) / 2
}
