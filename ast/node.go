// Package ast declares the ESTree node types produced by the parser.
package ast

// Node is implemented by every ESTree node.
type Node interface {
	// Type returns the ESTree type name, such as "Identifier".
	Type() string
	// Span returns the node's source range, or nil when the parse did not
	// request locations.
	Span() *Range
}

type (
	// Expression nodes.
	Expression interface {
		Node
		_expr()
	}

	// Statement nodes, including declarations and module items.
	Statement interface {
		Node
		_stmt()
	}

	// Pattern nodes are binding and assignment targets: identifiers,
	// member expressions and the destructuring forms.
	Pattern interface {
		Node
		_pattern()
	}

	// Position is a line (1-based) and byte column (0-based).
	Position struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	}

	SourceLocation struct {
		Start Position `json:"start"`
		End   Position `json:"end"`
	}

	// Range holds the byte offsets of a node and, optionally, its
	// line/column location.
	Range struct {
		Start int
		End   int
		Loc   *SourceLocation
	}
)

func (r *Range) Span() *Range { return r }

type Program struct {
	*Range
	SourceType string      `json:"sourceType"`
	Body       []Statement `json:"body"`
}

func (*Program) Type() string { return "Program" }
