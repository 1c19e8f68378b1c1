package jswalker

import "github.com/complexityscope/complexityscope/internal/walker"

// syntaxFor returns the metric descriptor for a tree-sitter-javascript
// node kind, or nil if the walker has nothing to say about it. settings
// gates the optional decision points: forin, logicalor, switchcase and
// trycatch.
func syntaxFor(nodeType string, settings walker.Settings) *walker.Syntax {
	switch nodeType {
	case typeFunctionDeclaration, typeFunctionExpression, typeArrowFunction,
		typeMethodDefinition, typeGeneratorDecl:
		return &walker.Syntax{LLOC: walker.LiteralCount(1)}

	case typeExpressionStatement, typeReturnStatement, typeBreakStatement, typeContinueStatement,
		typeThrowStatement, typeLexicalDeclaration, typeVariableDeclaration:
		return &walker.Syntax{LLOC: walker.LiteralCount(1)}

	case typeIfStatement, typeForStatement, typeWhileStatement, typeDoStatement:
		return &walker.Syntax{LLOC: walker.LiteralCount(1), Cyclomatic: walker.LiteralCount(1)}

	case typeForInStatement:
		syntax := &walker.Syntax{LLOC: walker.LiteralCount(1)}
		if settings.ForIn {
			syntax.Cyclomatic = walker.LiteralCount(1)
		}

		return syntax

	case typeSwitchCase:
		syntax := &walker.Syntax{LLOC: walker.LiteralCount(1)}
		if settings.SwitchCase {
			syntax.Cyclomatic = walker.LiteralCount(1)
		}

		return syntax

	case typeCatchClause:
		if !settings.TryCatch {
			return nil
		}

		return &walker.Syntax{Cyclomatic: walker.LiteralCount(1)}

	case typeTernary:
		return &walker.Syntax{Cyclomatic: walker.LiteralCount(1)}

	case typeBinaryExpression:
		return binaryExpressionSyntax(settings)

	case typeAssignmentExpr:
		return &walker.Syntax{Operators: []walker.Identifier{operatorFieldIdentifier()}}

	case typeIdentifier, typePropertyIdentifier, typeNumber, typeString:
		return &walker.Syntax{Operands: []walker.Identifier{textIdentifier()}}

	case typeCallExpression:
		return callExpressionSyntax()

	default:
		return nil
	}
}

// logicalOperators are the only binary operators that are also decision
// points; every other binary operator (arithmetic, comparison, bitwise)
// is a Halstead operator but never adds to cyclomatic complexity.
const (
	opLogicalAnd = "&&"
	opLogicalOr  = "||"
)

func binaryExpressionSyntax(settings walker.Settings) *walker.Syntax {
	return &walker.Syntax{
		Operators: []walker.Identifier{operatorFieldIdentifier()},
		Cyclomatic: walker.ComputedCount(func(node any) uint32 {
			nc, ok := node.(nodeCtx)
			if !ok || !settings.LogicalOr {
				return 0
			}

			op := nc.n.ChildByFieldName("operator")
			if op.IsNull() {
				return 0
			}

			text := nodeText(op, nc.source)
			if text == opLogicalAnd || text == opLogicalOr {
				return 1
			}

			return 0
		}),
	}
}

func callExpressionSyntax() *walker.Syntax {
	return &walker.Syntax{
		Operators: []walker.Identifier{walker.LiteralIdentifier("()")},
		Dependencies: func(node any, _ bool) walker.DependencyResult {
			nc, ok := node.(nodeCtx)
			if !ok {
				return walker.NoDependency()
			}

			path, ok := requirePath(nc)
			if !ok {
				return walker.NoDependency()
			}

			line := uint32(nc.n.StartPoint().Row) + 1

			return walker.OneDependency(walker.Dependency{Type: "CommonJS", Path: path, Line: &line})
		},
	}
}

// operatorFieldIdentifier resolves to the node's "operator" field text
// when present (binary/assignment expressions), falling back to the
// node's own text otherwise.
func operatorFieldIdentifier() walker.Identifier {
	return walker.ComputedIdentifier(func(node any) string {
		nc, ok := node.(nodeCtx)
		if !ok {
			return ""
		}

		op := nc.n.ChildByFieldName("operator")
		if op.IsNull() {
			return nc.text()
		}

		return nodeText(op, nc.source)
	})
}

func textIdentifier() walker.Identifier {
	return walker.ComputedIdentifier(func(node any) string {
		nc, ok := node.(nodeCtx)
		if !ok {
			return ""
		}

		return nc.text()
	})
}
