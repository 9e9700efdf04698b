package ast

type (
	// ArrayPattern elements are nil for holes.
	ArrayPattern struct {
		*Range
		Elements []Pattern `json:"elements"`
	}

	// ObjectPattern properties are *Property or *RestElement.
	ObjectPattern struct {
		*Range
		Properties []Node `json:"properties"`
	}

	RestElement struct {
		*Range
		Argument Pattern `json:"argument"`
	}

	AssignmentPattern struct {
		*Range
		Left  Pattern    `json:"left"`
		Right Expression `json:"right"`
	}
)

func (*ArrayPattern) Type() string      { return "ArrayPattern" }
func (*ObjectPattern) Type() string     { return "ObjectPattern" }
func (*RestElement) Type() string       { return "RestElement" }
func (*AssignmentPattern) Type() string { return "AssignmentPattern" }

func (*Identifier) _pattern()        {}
func (*MemberExpression) _pattern()  {}
func (*ArrayPattern) _pattern()      {}
func (*ObjectPattern) _pattern()     {}
func (*RestElement) _pattern()       {}
func (*AssignmentPattern) _pattern() {}
