package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/complexityscope/complexityscope/internal/project"
)

// renderJSON writes result as indented JSON.
func renderJSON(w io.Writer, result *project.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}
