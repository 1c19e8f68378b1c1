// Package metrics implements the walker-driven metric aggregator: the
// single-pass scope stack, Halstead accumulation, and maintainability-index
// finalisation that together turn one syntax tree plus a walker into a
// ModuleReport.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/complexityscope/complexityscope/internal/walker"
)

// tracerName is the OTel tracer for this package's spans. The hot-path
// complexityscope.metrics.process_node span it emits is suppressed by
// default by observability.NewFilteringTracerProvider.
const tracerName = "complexityscope.metrics"

// Analyser orchestrates one walk over a syntax tree: it owns the scope
// stack, the current-function pointer, and the dependency-capture latch.
// An Analyser is single-use; call Analyse exactly once per instance.
type Analyser struct {
	report        *ModuleReport
	scopeStack    []*FunctionReport
	current       *FunctionReport
	depLatchFired bool
	ctx           context.Context
}

// NewAnalyser returns a ready-to-use Analyser.
func NewAnalyser() *Analyser {
	return &Analyser{}
}

// Analyse walks ast with w under settings and returns the resulting
// ModuleReport. ast and w must both be non-nil. The whole walk is wrapped
// in a span, one per module analysed.
func (a *Analyser) Analyse(ctx context.Context, ast walker.AST, w walker.Walker, settings walker.Settings) (*ModuleReport, error) {
	if ast == nil || w == nil {
		return nil, ErrInvalidInput
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "complexityscope.metrics.analyse_module")
	defer span.End()

	a.ctx = ctx

	a.report = &ModuleReport{
		Aggregate:    NewFunctionReport(nil, ast.Loc(), 0),
		Functions:    make([]*FunctionReport, 0),
		Dependencies: make([]walker.Dependency, 0),
	}

	handlers := walker.Handlers{
		CreateScope: a.createScope,
		PopScope:    a.popScope,
		ProcessNode: a.processNode,
	}

	if err := w.Walk(ast, settings, handlers); err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	if err := a.calculateMetrics(settings); err != nil {
		return nil, err
	}

	return a.report, nil
}

func (a *Analyser) createScope(name *string, loc *walker.Loc, params uint32) {
	report := NewFunctionReport(name, loc, params)

	a.scopeStack = append(a.scopeStack, report)
	a.current = report
	a.report.Functions = append(a.report.Functions, report)
	a.report.Aggregate.Params += params
}

func (a *Analyser) popScope() {
	if len(a.scopeStack) == 0 {
		return
	}

	a.scopeStack = a.scopeStack[:len(a.scopeStack)-1]

	if len(a.scopeStack) > 0 {
		a.current = a.scopeStack[len(a.scopeStack)-1]
	} else {
		a.current = nil
	}
}

func (a *Analyser) processNode(node any, syntax *walker.Syntax) {
	if syntax == nil {
		return
	}

	_, span := otel.Tracer(tracerName).Start(a.ctx, "complexityscope.metrics.process_node")
	defer span.End()

	a.applyCount(syntax.LLOC, node, func(fr *FunctionReport, n uint32) { fr.SLOC.Logical += n })
	a.applyCount(syntax.Cyclomatic, node, func(fr *FunctionReport, n uint32) { fr.Cyclomatic += n })

	for _, ident := range syntax.Operators {
		a.encounter(node, walker.Operators, ident)
	}

	for _, ident := range syntax.Operands {
		a.encounter(node, walker.Operands, ident)
	}

	if syntax.Dependencies != nil {
		clear := !a.depLatchFired
		a.depLatchFired = true

		result := syntax.Dependencies(node, clear)
		a.report.Dependencies = append(a.report.Dependencies, result.Records()...)
	}
}

func (a *Analyser) applyCount(c walker.Count, node any, apply func(*FunctionReport, uint32)) {
	if !c.Present() {
		return
	}

	n := c.Resolve(node)
	apply(a.report.Aggregate, n)

	if a.current != nil {
		apply(a.current, n)
	}
}

func (a *Analyser) encounter(node any, metric walker.MetricKind, ident walker.Identifier) {
	if !ident.Applies(node) {
		return
	}

	value := ident.Resolve(node)

	a.report.Aggregate.Halstead.Encounter(metric, value)

	if a.current != nil {
		a.current.Halstead.Encounter(metric, value)
	}
}
