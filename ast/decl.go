package ast

type (
	// FunctionDeclaration has a nil ID only as an anonymous default export.
	FunctionDeclaration struct {
		*Range
		ID        *Identifier     `json:"id"`
		Params    []Pattern       `json:"params"`
		Body      *BlockStatement `json:"body"`
		Generator bool            `json:"generator"`
		Async     bool            `json:"async"`
	}

	ClassDeclaration struct {
		*Range
		ID         *Identifier `json:"id"`
		SuperClass Expression  `json:"superClass"`
		Body       *ClassBody  `json:"body"`
	}

	VariableDeclaration struct {
		*Range
		Declarations []*VariableDeclarator `json:"declarations"`
		Kind         string                `json:"kind"`
	}

	VariableDeclarator struct {
		*Range
		ID   Pattern    `json:"id"`
		Init Expression `json:"init"`
	}

	// ImportDeclaration specifiers are *ImportSpecifier,
	// *ImportDefaultSpecifier or *ImportNamespaceSpecifier.
	ImportDeclaration struct {
		*Range
		Specifiers []Node             `json:"specifiers"`
		Source     *Literal           `json:"source"`
		Attributes []*ImportAttribute `json:"attributes,omitempty"`
	}

	// ImportSpecifier Imported is an *Identifier or a string *Literal.
	ImportSpecifier struct {
		*Range
		Imported Node        `json:"imported"`
		Local    *Identifier `json:"local"`
	}

	ImportDefaultSpecifier struct {
		*Range
		Local *Identifier `json:"local"`
	}

	ImportNamespaceSpecifier struct {
		*Range
		Local *Identifier `json:"local"`
	}

	// ImportAttribute Key is an *Identifier or a string *Literal.
	ImportAttribute struct {
		*Range
		Key   Node     `json:"key"`
		Value *Literal `json:"value"`
	}

	ExportNamedDeclaration struct {
		*Range
		Declaration Statement          `json:"declaration"`
		Specifiers  []*ExportSpecifier `json:"specifiers"`
		Source      *Literal           `json:"source"`
		Attributes  []*ImportAttribute `json:"attributes,omitempty"`
	}

	// ExportSpecifier Local and Exported are *Identifier or string *Literal.
	ExportSpecifier struct {
		*Range
		Local    Node `json:"local"`
		Exported Node `json:"exported"`
	}

	// ExportDefaultDeclaration Declaration is a *FunctionDeclaration, a
	// *ClassDeclaration or an Expression.
	ExportDefaultDeclaration struct {
		*Range
		Declaration Node `json:"declaration"`
	}

	ExportAllDeclaration struct {
		*Range
		Exported   Node               `json:"exported"`
		Source     *Literal           `json:"source"`
		Attributes []*ImportAttribute `json:"attributes,omitempty"`
	}
)

func (*FunctionDeclaration) Type() string      { return "FunctionDeclaration" }
func (*ClassDeclaration) Type() string         { return "ClassDeclaration" }
func (*VariableDeclaration) Type() string      { return "VariableDeclaration" }
func (*VariableDeclarator) Type() string       { return "VariableDeclarator" }
func (*ImportDeclaration) Type() string        { return "ImportDeclaration" }
func (*ImportSpecifier) Type() string          { return "ImportSpecifier" }
func (*ImportDefaultSpecifier) Type() string   { return "ImportDefaultSpecifier" }
func (*ImportNamespaceSpecifier) Type() string { return "ImportNamespaceSpecifier" }
func (*ImportAttribute) Type() string          { return "ImportAttribute" }
func (*ExportNamedDeclaration) Type() string   { return "ExportNamedDeclaration" }
func (*ExportSpecifier) Type() string          { return "ExportSpecifier" }
func (*ExportDefaultDeclaration) Type() string { return "ExportDefaultDeclaration" }
func (*ExportAllDeclaration) Type() string     { return "ExportAllDeclaration" }

func (*FunctionDeclaration) _stmt()      {}
func (*ClassDeclaration) _stmt()         {}
func (*VariableDeclaration) _stmt()      {}
func (*ImportDeclaration) _stmt()        {}
func (*ExportNamedDeclaration) _stmt()   {}
func (*ExportDefaultDeclaration) _stmt() {}
func (*ExportAllDeclaration) _stmt()     {}
