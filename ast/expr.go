package ast

type (
	Identifier struct {
		*Range
		Name string `json:"name"`
	}

	PrivateIdentifier struct {
		*Range
		Name string `json:"name"`
	}

	// Literal covers strings, numbers, booleans, null, regular expressions
	// and BigInts. Value holds string, float64, bool, nil, or the compiled
	// host regular expression.
	Literal struct {
		*Range
		Value  any         `json:"value"`
		Raw    string      `json:"raw,omitempty"`
		Regex  *RegExpInfo `json:"regex,omitempty"`
		Bigint string      `json:"bigint,omitempty"`
	}

	RegExpInfo struct {
		Pattern string `json:"pattern"`
		Flags   string `json:"flags"`
	}

	ThisExpression struct {
		*Range
	}

	Super struct {
		*Range
	}

	// ArrayExpression elements are nil for holes.
	ArrayExpression struct {
		*Range
		Elements []Expression `json:"elements"`
	}

	// ObjectExpression properties are *Property or *SpreadElement.
	ObjectExpression struct {
		*Range
		Properties []Node `json:"properties"`
	}

	// Property is shared by object literals and object patterns. In a
	// pattern, Value is a Pattern.
	Property struct {
		*Range
		Key       Expression `json:"key"`
		Value     Node       `json:"value"`
		Kind      string     `json:"kind"`
		Method    bool       `json:"method"`
		Shorthand bool       `json:"shorthand"`
		Computed  bool       `json:"computed"`
	}

	SpreadElement struct {
		*Range
		Argument Expression `json:"argument"`
	}

	FunctionExpression struct {
		*Range
		ID        *Identifier     `json:"id"`
		Params    []Pattern       `json:"params"`
		Body      *BlockStatement `json:"body"`
		Generator bool            `json:"generator"`
		Async     bool            `json:"async"`
	}

	// ArrowFunctionExpression has a *BlockStatement body, or an Expression
	// body when Expression is set.
	ArrowFunctionExpression struct {
		*Range
		Params     []Pattern `json:"params"`
		Body       Node      `json:"body"`
		Async      bool      `json:"async"`
		Expression bool      `json:"expression"`
	}

	ClassExpression struct {
		*Range
		ID         *Identifier `json:"id"`
		SuperClass Expression  `json:"superClass"`
		Body       *ClassBody  `json:"body"`
	}

	TemplateLiteral struct {
		*Range
		Quasis      []*TemplateElement `json:"quasis"`
		Expressions []Expression       `json:"expressions"`
	}

	TemplateElement struct {
		*Range
		Value TemplateValue `json:"value"`
		Tail  bool          `json:"tail"`
	}

	// TemplateValue has a nil Cooked string when a tagged template contains
	// an invalid escape.
	TemplateValue struct {
		Cooked *string `json:"cooked"`
		Raw    string  `json:"raw"`
	}

	TaggedTemplateExpression struct {
		*Range
		Tag   Expression       `json:"tag"`
		Quasi *TemplateLiteral `json:"quasi"`
	}

	UnaryExpression struct {
		*Range
		Operator string     `json:"operator"`
		Prefix   bool       `json:"prefix"`
		Argument Expression `json:"argument"`
	}

	UpdateExpression struct {
		*Range
		Operator string     `json:"operator"`
		Prefix   bool       `json:"prefix"`
		Argument Expression `json:"argument"`
	}

	// BinaryExpression Left is a *PrivateIdentifier for #x in o.
	BinaryExpression struct {
		*Range
		Operator string     `json:"operator"`
		Left     Expression `json:"left"`
		Right    Expression `json:"right"`
	}

	LogicalExpression struct {
		*Range
		Operator string     `json:"operator"`
		Left     Expression `json:"left"`
		Right    Expression `json:"right"`
	}

	AssignmentExpression struct {
		*Range
		Operator string     `json:"operator"`
		Left     Pattern    `json:"left"`
		Right    Expression `json:"right"`
	}

	ConditionalExpression struct {
		*Range
		Test       Expression `json:"test"`
		Consequent Expression `json:"consequent"`
		Alternate  Expression `json:"alternate"`
	}

	SequenceExpression struct {
		*Range
		Expressions []Expression `json:"expressions"`
	}

	YieldExpression struct {
		*Range
		Argument Expression `json:"argument"`
		Delegate bool       `json:"delegate"`
	}

	AwaitExpression struct {
		*Range
		Argument Expression `json:"argument"`
	}

	CallExpression struct {
		*Range
		Callee    Expression   `json:"callee"`
		Arguments []Expression `json:"arguments"`
		Optional  bool         `json:"optional"`
	}

	NewExpression struct {
		*Range
		Callee    Expression   `json:"callee"`
		Arguments []Expression `json:"arguments"`
	}

	MemberExpression struct {
		*Range
		Object   Expression `json:"object"`
		Property Expression `json:"property"`
		Computed bool       `json:"computed"`
		Optional bool       `json:"optional"`
	}

	// ChainExpression wraps an optional chain at the point where it ends.
	ChainExpression struct {
		*Range
		Expression Expression `json:"expression"`
	}

	ImportExpression struct {
		*Range
		Source  Expression `json:"source"`
		Options Expression `json:"options,omitempty"`
	}

	MetaProperty struct {
		*Range
		Meta     *Identifier `json:"meta"`
		Property *Identifier `json:"property"`
	}
)

func (*Identifier) Type() string               { return "Identifier" }
func (*PrivateIdentifier) Type() string        { return "PrivateIdentifier" }
func (*Literal) Type() string                  { return "Literal" }
func (*ThisExpression) Type() string           { return "ThisExpression" }
func (*Super) Type() string                    { return "Super" }
func (*ArrayExpression) Type() string          { return "ArrayExpression" }
func (*ObjectExpression) Type() string         { return "ObjectExpression" }
func (*Property) Type() string                 { return "Property" }
func (*SpreadElement) Type() string            { return "SpreadElement" }
func (*FunctionExpression) Type() string       { return "FunctionExpression" }
func (*ArrowFunctionExpression) Type() string  { return "ArrowFunctionExpression" }
func (*ClassExpression) Type() string          { return "ClassExpression" }
func (*TemplateLiteral) Type() string          { return "TemplateLiteral" }
func (*TemplateElement) Type() string          { return "TemplateElement" }
func (*TaggedTemplateExpression) Type() string { return "TaggedTemplateExpression" }
func (*UnaryExpression) Type() string          { return "UnaryExpression" }
func (*UpdateExpression) Type() string         { return "UpdateExpression" }
func (*BinaryExpression) Type() string         { return "BinaryExpression" }
func (*LogicalExpression) Type() string        { return "LogicalExpression" }
func (*AssignmentExpression) Type() string     { return "AssignmentExpression" }
func (*ConditionalExpression) Type() string    { return "ConditionalExpression" }
func (*SequenceExpression) Type() string       { return "SequenceExpression" }
func (*YieldExpression) Type() string          { return "YieldExpression" }
func (*AwaitExpression) Type() string          { return "AwaitExpression" }
func (*CallExpression) Type() string           { return "CallExpression" }
func (*NewExpression) Type() string            { return "NewExpression" }
func (*MemberExpression) Type() string         { return "MemberExpression" }
func (*ChainExpression) Type() string          { return "ChainExpression" }
func (*ImportExpression) Type() string         { return "ImportExpression" }
func (*MetaProperty) Type() string             { return "MetaProperty" }

func (*Identifier) _expr()               {}
func (*PrivateIdentifier) _expr()        {}
func (*Literal) _expr()                  {}
func (*ThisExpression) _expr()           {}
func (*Super) _expr()                    {}
func (*ArrayExpression) _expr()          {}
func (*ObjectExpression) _expr()         {}
func (*SpreadElement) _expr()            {}
func (*FunctionExpression) _expr()       {}
func (*ArrowFunctionExpression) _expr()  {}
func (*ClassExpression) _expr()          {}
func (*TemplateLiteral) _expr()          {}
func (*TaggedTemplateExpression) _expr() {}
func (*UnaryExpression) _expr()          {}
func (*UpdateExpression) _expr()         {}
func (*BinaryExpression) _expr()         {}
func (*LogicalExpression) _expr()        {}
func (*AssignmentExpression) _expr()     {}
func (*ConditionalExpression) _expr()    {}
func (*SequenceExpression) _expr()       {}
func (*YieldExpression) _expr()          {}
func (*AwaitExpression) _expr()          {}
func (*CallExpression) _expr()           {}
func (*NewExpression) _expr()            {}
func (*MemberExpression) _expr()         {}
func (*ChainExpression) _expr()          {}
func (*ImportExpression) _expr()         {}
func (*MetaProperty) _expr()             {}
