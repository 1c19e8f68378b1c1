// Package jswalker is a concrete walker.Walker for JavaScript/CommonJS
// sources: it parses with tree-sitter's JavaScript grammar and walks the
// resulting concrete syntax tree, emitting the scope, LLOC, cyclomatic,
// Halstead and dependency descriptors the metric aggregator consumes.
// The aggregator itself never inspects node structure; everything
// grammar-specific lives here.
package jswalker

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexaandru/go-sitter-forest/javascript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"go.opentelemetry.io/otel"

	"github.com/complexityscope/complexityscope/internal/walker"
)

// tracerName is the OTel tracer for this package's spans. It is suppressed
// entirely by default by observability.NewFilteringTracerProvider, since
// parsing runs once per source file on the hot path.
const tracerName = "complexityscope.jswalker"

var (
	languageOnce sync.Once
	language     *sitter.Language
)

func jsLanguage() *sitter.Language {
	languageOnce.Do(func() {
		language = sitter.NewLanguage(javascript.GetLanguage())
	})

	return language
}

// Tree is a parsed JavaScript source file: the tree-sitter tree plus the
// original bytes, needed to recover node text. Tree implements walker.AST.
type Tree struct {
	tree   *sitter.Tree
	source []byte
}

// Loc returns the program's overall line range.
func (t *Tree) Loc() *walker.Loc {
	root := t.tree.RootNode()

	return &walker.Loc{
		Start: walker.Position{Line: uint32(root.StartPoint().Row) + 1},
		End:   walker.Position{Line: uint32(root.EndPoint().Row) + 1},
	}
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// Parse parses source into a Tree ready to be walked by Walker.
func Parse(ctx context.Context, source []byte) (*Tree, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "complexityscope.jswalker.parse")
	defer span.End()

	parser := sitter.NewParser()
	parser.SetLanguage(jsLanguage())

	tree, err := parser.ParseString(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("jswalker: parse: %w", err)
	}

	root := tree.RootNode()
	if root.IsNull() {
		tree.Close()

		return nil, fmt.Errorf("jswalker: %w", errNoRootNode)
	}

	return &Tree{tree: tree, source: source}, nil
}
