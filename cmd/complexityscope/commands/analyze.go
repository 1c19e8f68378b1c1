// Package commands implements the complexityscope CLI command tree.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/complexityscope/complexityscope/internal/config"
	"github.com/complexityscope/complexityscope/internal/jswalker"
	"github.com/complexityscope/complexityscope/internal/loader"
	"github.com/complexityscope/complexityscope/internal/metrics"
	"github.com/complexityscope/complexityscope/internal/observability"
	"github.com/complexityscope/complexityscope/internal/project"
	"github.com/complexityscope/complexityscope/internal/report"
)

// NewAnalyzeCommand builds the "analyze" command tree: "analyze module"
// for a single JavaScript file, "analyze project" for a directory tree.
func NewAnalyzeCommand() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze JavaScript source for complexity and dependency metrics",
	}

	analyzeCmd.AddCommand(newAnalyzeModuleCommand())
	analyzeCmd.AddCommand(newAnalyzeProjectCommand())

	return analyzeCmd
}

func newAnalyzeModuleCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "module <file.js>",
		Short: "Analyze a single JavaScript module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyzeModule(cmd, args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a .complexityscope.yaml config file")

	return cmd
}

func newAnalyzeProjectCommand() *cobra.Command {
	var (
		configPath      string
		diagnosticsAddr string
	)

	cmd := &cobra.Command{
		Use:   "project <directory>",
		Short: "Analyze every JavaScript module under a directory and its dependency graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyzeProject(cmd, args[0], configPath, diagnosticsAddr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a .complexityscope.yaml config file")
	cmd.Flags().StringVar(&diagnosticsAddr, "diagnostics-addr", "", "serve /healthz, /readyz and /metrics on this address for the duration of the run")

	return cmd
}

func runAnalyzeModule(cmd *cobra.Command, path, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	providers, err := observability.Init(obsConfigFrom(cmd))
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	defer providers.Shutdown(context.Background())

	ctx, span := providers.Tracer.Start(context.Background(), "complexityscope.cli.analyze_module")
	defer span.End()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := jswalker.Parse(ctx, source)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	moduleReport, err := metrics.NewAnalyser().Analyse(ctx, tree, jswalker.New(), cfg.Settings())
	if err != nil {
		return fmt.Errorf("analyse %s: %w", path, err)
	}

	moduleReport.Path = path

	result := &project.Result{Reports: []*metrics.ModuleReport{moduleReport}}

	return report.Render(cmd.OutOrStdout(), result, cfg.Output.Format, report.Options{
		Color: cfg.Output.Color,
		NewMI: cfg.Walker.NewMI,
	})
}

func runAnalyzeProject(cmd *cobra.Command, dir, configPath, diagnosticsAddr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	providers, err := observability.Init(obsConfigFrom(cmd))
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	defer providers.Shutdown(context.Background())

	runMetrics := observability.NewMetrics()

	if diagnosticsAddr != "" {
		diagnostics, diagErr := observability.NewDiagnosticsServer(diagnosticsAddr, runMetrics)
		if diagErr != nil {
			return fmt.Errorf("start diagnostics server: %w", diagErr)
		}
		defer diagnostics.Close()
	}

	ctx, span := providers.Tracer.Start(context.Background(), "complexityscope.cli.analyze_project")
	defer span.End()

	modules, err := loader.Load(ctx, dir)
	if err != nil {
		return fmt.Errorf("load %s: %w", dir, err)
	}

	defer closeModules(modules)

	started := time.Now()

	result, err := project.Analyse(ctx, modules, jswalker.New(), cfg.Settings(), cfg.Options())
	if err != nil {
		return fmt.Errorf("analyse %s: %w", dir, err)
	}

	runMetrics.ModulesAnalysed.Add(float64(len(modules)))
	runMetrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	runMetrics.CoreSize.Set(result.CoreSize)

	return report.Render(cmd.OutOrStdout(), result, cfg.Output.Format, report.Options{
		Color: cfg.Output.Color,
		NewMI: cfg.Walker.NewMI,
	})
}

// closeModules releases every parsed tree-sitter tree once analysis has
// produced its final report; loader.Load hands ownership of each AST to
// the caller.
func closeModules(modules []project.ModuleInput) {
	for _, module := range modules {
		if tree, ok := module.AST.(*jswalker.Tree); ok {
			tree.Close()
		}
	}
}

func obsConfigFrom(cmd *cobra.Command) observability.Config {
	obsCfg := observability.DefaultConfig()

	if debug, err := cmd.Root().PersistentFlags().GetBool("debug-trace"); err == nil {
		obsCfg.DebugTrace = debug
	}

	if logJSON, err := cmd.Root().PersistentFlags().GetBool("log-json"); err == nil {
		obsCfg.LogJSON = logJSON
	}

	return obsCfg
}
