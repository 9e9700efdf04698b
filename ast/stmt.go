package ast

type (
	// ExpressionStatement has Directive set for directive prologue entries
	// when directives were requested.
	ExpressionStatement struct {
		*Range
		Expression Expression `json:"expression"`
		Directive  string     `json:"directive,omitempty"`
	}

	BlockStatement struct {
		*Range
		Body []Statement `json:"body"`
	}

	EmptyStatement struct {
		*Range
	}

	DebuggerStatement struct {
		*Range
	}

	WithStatement struct {
		*Range
		Object Expression `json:"object"`
		Body   Statement  `json:"body"`
	}

	ReturnStatement struct {
		*Range
		Argument Expression `json:"argument"`
	}

	LabeledStatement struct {
		*Range
		Label *Identifier `json:"label"`
		Body  Statement   `json:"body"`
	}

	BreakStatement struct {
		*Range
		Label *Identifier `json:"label"`
	}

	ContinueStatement struct {
		*Range
		Label *Identifier `json:"label"`
	}

	IfStatement struct {
		*Range
		Test       Expression `json:"test"`
		Consequent Statement  `json:"consequent"`
		Alternate  Statement  `json:"alternate"`
	}

	SwitchStatement struct {
		*Range
		Discriminant Expression    `json:"discriminant"`
		Cases        []*SwitchCase `json:"cases"`
	}

	// SwitchCase has a nil Test for the default clause.
	SwitchCase struct {
		*Range
		Test       Expression  `json:"test"`
		Consequent []Statement `json:"consequent"`
	}

	ThrowStatement struct {
		*Range
		Argument Expression `json:"argument"`
	}

	TryStatement struct {
		*Range
		Block     *BlockStatement `json:"block"`
		Handler   *CatchClause    `json:"handler"`
		Finalizer *BlockStatement `json:"finalizer"`
	}

	CatchClause struct {
		*Range
		Param Pattern         `json:"param"`
		Body  *BlockStatement `json:"body"`
	}

	WhileStatement struct {
		*Range
		Test Expression `json:"test"`
		Body Statement  `json:"body"`
	}

	DoWhileStatement struct {
		*Range
		Body Statement  `json:"body"`
		Test Expression `json:"test"`
	}

	// ForStatement Init is a *VariableDeclaration or an Expression.
	ForStatement struct {
		*Range
		Init   Node       `json:"init"`
		Test   Expression `json:"test"`
		Update Expression `json:"update"`
		Body   Statement  `json:"body"`
	}

	// ForInStatement Left is a *VariableDeclaration or a Pattern.
	ForInStatement struct {
		*Range
		Left  Node       `json:"left"`
		Right Expression `json:"right"`
		Body  Statement  `json:"body"`
	}

	ForOfStatement struct {
		*Range
		Left  Node       `json:"left"`
		Right Expression `json:"right"`
		Body  Statement  `json:"body"`
		Await bool       `json:"await"`
	}
)

func (*ExpressionStatement) Type() string { return "ExpressionStatement" }
func (*BlockStatement) Type() string      { return "BlockStatement" }
func (*EmptyStatement) Type() string      { return "EmptyStatement" }
func (*DebuggerStatement) Type() string   { return "DebuggerStatement" }
func (*WithStatement) Type() string       { return "WithStatement" }
func (*ReturnStatement) Type() string     { return "ReturnStatement" }
func (*LabeledStatement) Type() string    { return "LabeledStatement" }
func (*BreakStatement) Type() string      { return "BreakStatement" }
func (*ContinueStatement) Type() string   { return "ContinueStatement" }
func (*IfStatement) Type() string         { return "IfStatement" }
func (*SwitchStatement) Type() string     { return "SwitchStatement" }
func (*SwitchCase) Type() string          { return "SwitchCase" }
func (*ThrowStatement) Type() string      { return "ThrowStatement" }
func (*TryStatement) Type() string        { return "TryStatement" }
func (*CatchClause) Type() string         { return "CatchClause" }
func (*WhileStatement) Type() string      { return "WhileStatement" }
func (*DoWhileStatement) Type() string    { return "DoWhileStatement" }
func (*ForStatement) Type() string        { return "ForStatement" }
func (*ForInStatement) Type() string      { return "ForInStatement" }
func (*ForOfStatement) Type() string      { return "ForOfStatement" }

func (*ExpressionStatement) _stmt() {}
func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*DebuggerStatement) _stmt()   {}
func (*WithStatement) _stmt()       {}
func (*ReturnStatement) _stmt()     {}
func (*LabeledStatement) _stmt()    {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*IfStatement) _stmt()         {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*WhileStatement) _stmt()      {}
func (*DoWhileStatement) _stmt()    {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*ForOfStatement) _stmt()      {}
