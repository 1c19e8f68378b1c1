package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/complexityscope/complexityscope/internal/project"
)

const (
	miRescaledGood     = 85.0
	miRescaledModerate = 65.0
	miRawGood          = 130.0
	miRawModerate      = 100.0
)

// renderTable prints a per-module summary table followed by a project
// totals table, colouring the maintainability column by grade when
// opts.Color is set.
func renderTable(w io.Writer, result *project.Result, opts Options) error {
	moduleTable := table.NewWriter()
	moduleTable.SetOutputMirror(w)
	moduleTable.SetStyle(table.StyleLight)
	moduleTable.Style().Options.SeparateRows = false
	moduleTable.Style().Format.Header = text.FormatDefault
	moduleTable.AppendHeader(table.Row{"Module", "SLOC", "Cyclomatic", "Effort", "Bugs", "Maintainability"})

	for _, rep := range result.Reports {
		maintainability := maintainabilityCell(rep.Maintainability, opts)

		bugs := 0.0
		if rep.Aggregate != nil {
			bugs = rep.Aggregate.Halstead.Bugs
		}

		moduleTable.AppendRow(table.Row{
			rep.Path,
			humanize.Comma(int64(rep.LOC)),
			humanize.Commaf(rep.Cyclomatic),
			humanize.SIWithDigits(rep.Effort, 1, ""),
			humanize.CommafWithDigits(bugs, 3),
			maintainability,
		})
	}

	moduleTable.AppendFooter(table.Row{"", "", "", "", "", ""})
	moduleTable.Render()

	fmt.Fprintln(w)

	return renderProjectTable(w, result, opts)
}

func renderProjectTable(w io.Writer, result *project.Result, opts Options) error {
	totals := table.NewWriter()
	totals.SetOutputMirror(w)
	totals.SetStyle(table.StyleLight)
	totals.Style().Options.SeparateRows = false
	totals.Style().Format.Header = text.FormatDefault
	totals.AppendHeader(table.Row{"Modules", "Avg Cyclomatic", "Avg Maintainability", "First-Order Density", "Change Cost", "Core Size"})
	totals.AppendRow(table.Row{
		humanize.Comma(int64(len(result.Reports))),
		humanize.Commaf(result.Cyclomatic),
		maintainabilityCell(result.Maintainability, opts),
		fmt.Sprintf("%.2f%%", result.FirstOrderDensity),
		fmt.Sprintf("%.2f%%", result.ChangeCost),
		fmt.Sprintf("%.2f%%", result.CoreSize),
	})
	totals.Render()

	return nil
}

// maintainabilityCell formats the maintainability index, colouring it
// green/yellow/red by grade when opts.Color is set. The grading
// thresholds shift depending on whether the rescaled 0-100 index or the
// classic 0-171 index is in use.
func maintainabilityCell(mi float64, opts Options) string {
	text := fmt.Sprintf("%.2f", mi)
	if !opts.Color {
		return text
	}

	good, moderate := miRawGood, miRawModerate
	if opts.NewMI {
		good, moderate = miRescaledGood, miRescaledModerate
	}

	switch {
	case mi >= good:
		return color.New(color.FgGreen).Sprint(text)
	case mi >= moderate:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgRed).Sprint(text)
	}
}
