// Package report renders a project.Result three ways: a coloured terminal
// table, a machine-readable JSON document, and an HTML dependency-graph
// visualisation.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/complexityscope/complexityscope/internal/project"
)

// ErrUnknownFormat is returned by Render for any format other than
// FormatTable, FormatJSON or FormatHTML.
var ErrUnknownFormat = errors.New("report: unknown format")

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatHTML  = "html"
)

// Options control rendering: whether the terminal table is coloured, and
// whether the maintainability index is on the rescaled 0-100 scale.
type Options struct {
	Color bool
	NewMI bool
}

// Render writes result to w in the given format.
func Render(w io.Writer, result *project.Result, format string, opts Options) error {
	switch format {
	case FormatTable:
		return renderTable(w, result, opts)
	case FormatJSON:
		return renderJSON(w, result)
	case FormatHTML:
		return renderHTML(w, result, opts)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
