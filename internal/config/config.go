// Package config loads complexityscope's configuration: walker settings,
// project-analysis toggles and output preferences, from environment
// variables, a YAML file and built-in defaults, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/complexityscope/complexityscope/internal/project"
	"github.com/complexityscope/complexityscope/internal/walker"
)

// Output formats supported by the report renderer.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatHTML  = "html"
)

// ErrInvalidFormat indicates output.format named something the renderer
// does not know how to produce.
var ErrInvalidFormat = errors.New("output.format must be one of table, json, html")

// ErrSchemaViolation indicates the decoded configuration failed JSON
// Schema validation before semantic checks even ran.
var ErrSchemaViolation = errors.New("config: schema validation failed")

// Config is the top-level configuration struct. Field tags use
// mapstructure for viper unmarshalling.
type Config struct {
	Walker  WalkerConfig  `mapstructure:"walker"`
	Project ProjectConfig `mapstructure:"project"`
	Output  OutputConfig  `mapstructure:"output"`
}

// WalkerConfig mirrors walker.Settings; every field is a traversal toggle
// the metric aggregator forwards to the walker unexamined, except NewMI,
// which the aggregator itself uses to rescale the maintainability index.
type WalkerConfig struct {
	ForIn      bool `mapstructure:"forin"`
	LogicalOr  bool `mapstructure:"logicalor"`
	NewMI      bool `mapstructure:"newmi"`
	SwitchCase bool `mapstructure:"switchcase"`
	TryCatch   bool `mapstructure:"trycatch"`
}

// ProjectConfig mirrors project.Options.
type ProjectConfig struct {
	SkipCalculation bool `mapstructure:"skip_calculation"`
	NoCoreSize      bool `mapstructure:"no_core_size"`
}

// OutputConfig controls how a project.Result is rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// Settings converts the loaded walker config to walker.Settings.
func (c *Config) Settings() walker.Settings {
	return walker.Settings{
		ForIn:      c.Walker.ForIn,
		LogicalOr:  c.Walker.LogicalOr,
		NewMI:      c.Walker.NewMI,
		SwitchCase: c.Walker.SwitchCase,
		TryCatch:   c.Walker.TryCatch,
	}
}

// Options converts the loaded project config to project.Options.
func (c *Config) Options() project.Options {
	return project.Options{
		SkipCalculation: c.Project.SkipCalculation,
		NoCoreSize:      c.Project.NoCoreSize,
	}
}

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatHTML:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.Format)
	}
}
