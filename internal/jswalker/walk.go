package jswalker

import (
	"fmt"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/complexityscope/complexityscope/internal/walker"
)

// tree-sitter-javascript node type names this walker recognises. Anything
// else is traversed but contributes no descriptor of its own.
const (
	typeFunctionDeclaration = "function_declaration"
	typeFunctionExpression  = "function_expression"
	typeArrowFunction       = "arrow_function"
	typeMethodDefinition    = "method_definition"
	typeGeneratorDecl       = "generator_function_declaration"

	typeIfStatement      = "if_statement"
	typeForStatement     = "for_statement"
	typeForInStatement   = "for_in_statement"
	typeWhileStatement   = "while_statement"
	typeDoStatement      = "do_statement"
	typeSwitchCase       = "switch_case"
	typeCatchClause      = "catch_clause"
	typeTernary          = "ternary_expression"
	typeBinaryExpression = "binary_expression"

	typeExpressionStatement = "expression_statement"
	typeReturnStatement     = "return_statement"
	typeBreakStatement      = "break_statement"
	typeContinueStatement   = "continue_statement"
	typeLexicalDeclaration  = "lexical_declaration"
	typeVariableDeclaration = "variable_declaration"
	typeThrowStatement      = "throw_statement"

	typeIdentifier         = "identifier"
	typePropertyIdentifier = "property_identifier"
	typeNumber             = "number"
	typeString             = "string"
	typeCallExpression     = "call_expression"
	typeAssignmentExpr     = "assignment_expression"
)

// Walker drives one traversal of a parsed JavaScript Tree.
type Walker struct{}

// New returns a ready-to-use Walker.
func New() *Walker { return &Walker{} }

// Walk implements walker.Walker.
func (w *Walker) Walk(ast walker.AST, settings walker.Settings, handlers walker.Handlers) error {
	tree, ok := ast.(*Tree)
	if !ok {
		return fmt.Errorf("jswalker: %w", errUnsupportedAST)
	}

	visit(tree.tree.RootNode(), tree.source, settings, handlers)

	return nil
}

// nodeCtx carries the source bytes alongside a tree-sitter node so the
// Count/Identifier closures registered in the syntax table can recover
// node text without threading an extra parameter through walker.Syntax.
type nodeCtx struct {
	n      sitter.Node
	source []byte
}

func (nc nodeCtx) text() string { return nodeText(nc.n, nc.source) }

// nodeText returns the source text a node spans, as an allocating copy.
func nodeText(n sitter.Node, source []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if end > uint(len(source)) {
		return ""
	}

	return string(source[start:end])
}

func visit(n sitter.Node, source []byte, settings walker.Settings, handlers walker.Handlers) {
	nc := nodeCtx{n: n, source: source}

	scope := isFunctionLike(n.Type())
	if scope {
		handlers.CreateScope(functionName(nc), scopeLoc(n), countParams(n))
	}

	if syntax := syntaxFor(n.Type(), settings); syntax != nil {
		handlers.ProcessNode(nc, syntax)
	}

	for i := uint32(0); i < n.NamedChildCount(); i++ {
		visit(n.NamedChild(i), source, settings, handlers)
	}

	if scope {
		handlers.PopScope()
	}
}

func isFunctionLike(t string) bool {
	switch t {
	case typeFunctionDeclaration, typeFunctionExpression, typeArrowFunction,
		typeMethodDefinition, typeGeneratorDecl:
		return true
	default:
		return false
	}
}

func scopeLoc(n sitter.Node) *walker.Loc {
	return &walker.Loc{
		Start: walker.Position{Line: uint32(n.StartPoint().Row) + 1},
		End:   walker.Position{Line: uint32(n.EndPoint().Row) + 1},
	}
}

func functionName(nc nodeCtx) *string {
	nameNode := nc.n.ChildByFieldName("name")
	if nameNode.IsNull() {
		return nil
	}

	name := nodeText(nameNode, nc.source)

	return &name
}

func countParams(n sitter.Node) uint32 {
	params := n.ChildByFieldName("parameters")
	if params.IsNull() {
		return 0
	}

	return uint32(params.NamedChildCount())
}

// requirePath extracts the string literal argument of a require(...) call,
// stripping the surrounding quotes. ok is false for anything else,
// including multi-argument or dynamic requires.
func requirePath(nc nodeCtx) (string, bool) {
	if nc.n.Type() != typeCallExpression {
		return "", false
	}

	fn := nc.n.ChildByFieldName("function")
	if fn.IsNull() || nodeText(fn, nc.source) != "require" {
		return "", false
	}

	args := nc.n.ChildByFieldName("arguments")
	if args.IsNull() || args.NamedChildCount() != 1 {
		return "", false
	}

	arg := args.NamedChild(0)
	if arg.Type() != typeString {
		return "", false
	}

	return strings.Trim(nodeText(arg, nc.source), `"'`), true
}
