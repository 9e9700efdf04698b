package ast

// Visitor's Visit is invoked for each node encountered by Walk. If the
// result visitor w is not nil, Walk visits each of the children of node
// with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order, calling f for each node
// and then f(nil) after its children. Returning false skips the children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Walk traverses a tree in depth-first order in source order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStatements(v, n.Body)
	case *Identifier, *PrivateIdentifier, *Literal, *ThisExpression, *Super,
		*EmptyStatement, *DebuggerStatement, *TemplateElement:
	case *ArrayExpression:
		for _, x := range n.Elements {
			if x != nil {
				Walk(v, x)
			}
		}
	case *ObjectExpression:
		walkNodes(v, n.Properties)
	case *Property:
		// Shorthand properties share a name between key and value.
		if !n.Shorthand {
			Walk(v, n.Key)
		}
		Walk(v, n.Value)
	case *SpreadElement:
		Walk(v, n.Argument)
	case *FunctionExpression:
		walkFunction(v, n.ID, n.Params, n.Body)
	case *ArrowFunctionExpression:
		walkPatterns(v, n.Params)
		Walk(v, n.Body)
	case *ClassExpression:
		walkClass(v, n.ID, n.SuperClass, n.Body)
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			Walk(v, q)
			if i < len(n.Expressions) {
				Walk(v, n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		Walk(v, n.Tag)
		Walk(v, n.Quasi)
	case *UnaryExpression:
		Walk(v, n.Argument)
	case *UpdateExpression:
		Walk(v, n.Argument)
	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *AssignmentExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ConditionalExpression:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		Walk(v, n.Alternate)
	case *SequenceExpression:
		for _, x := range n.Expressions {
			Walk(v, x)
		}
	case *YieldExpression:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *AwaitExpression:
		Walk(v, n.Argument)
	case *CallExpression:
		Walk(v, n.Callee)
		for _, x := range n.Arguments {
			Walk(v, x)
		}
	case *NewExpression:
		Walk(v, n.Callee)
		for _, x := range n.Arguments {
			Walk(v, x)
		}
	case *MemberExpression:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *ChainExpression:
		Walk(v, n.Expression)
	case *ImportExpression:
		Walk(v, n.Source)
		if n.Options != nil {
			Walk(v, n.Options)
		}
	case *MetaProperty:
		Walk(v, n.Meta)
		Walk(v, n.Property)

	case *ArrayPattern:
		walkPatterns(v, n.Elements)
	case *ObjectPattern:
		walkNodes(v, n.Properties)
	case *RestElement:
		Walk(v, n.Argument)
	case *AssignmentPattern:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ExpressionStatement:
		Walk(v, n.Expression)
	case *BlockStatement:
		walkStatements(v, n.Body)
	case *WithStatement:
		Walk(v, n.Object)
		Walk(v, n.Body)
	case *ReturnStatement:
		if n.Argument != nil {
			Walk(v, n.Argument)
		}
	case *LabeledStatement:
		Walk(v, n.Label)
		Walk(v, n.Body)
	case *BreakStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *ContinueStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *IfStatement:
		Walk(v, n.Test)
		Walk(v, n.Consequent)
		if n.Alternate != nil {
			Walk(v, n.Alternate)
		}
	case *SwitchStatement:
		Walk(v, n.Discriminant)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *SwitchCase:
		if n.Test != nil {
			Walk(v, n.Test)
		}
		walkStatements(v, n.Consequent)
	case *ThrowStatement:
		Walk(v, n.Argument)
	case *TryStatement:
		Walk(v, n.Block)
		if n.Handler != nil {
			Walk(v, n.Handler)
		}
		if n.Finalizer != nil {
			Walk(v, n.Finalizer)
		}
	case *CatchClause:
		if n.Param != nil {
			Walk(v, n.Param)
		}
		Walk(v, n.Body)
	case *WhileStatement:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *DoWhileStatement:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *ForStatement:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Test != nil {
			Walk(v, n.Test)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)
	case *ForInStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ForOfStatement:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)

	case *FunctionDeclaration:
		walkFunction(v, n.ID, n.Params, n.Body)
	case *ClassDeclaration:
		walkClass(v, n.ID, n.SuperClass, n.Body)
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			Walk(v, d)
		}
	case *VariableDeclarator:
		Walk(v, n.ID)
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *ClassBody:
		walkNodes(v, n.Body)
	case *MethodDefinition:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *PropertyDefinition:
		Walk(v, n.Key)
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *StaticBlock:
		walkStatements(v, n.Body)

	case *ImportDeclaration:
		walkNodes(v, n.Specifiers)
		Walk(v, n.Source)
		for _, a := range n.Attributes {
			Walk(v, a)
		}
	case *ImportSpecifier:
		if !sameName(n.Imported, n.Local) {
			Walk(v, n.Imported)
		}
		Walk(v, n.Local)
	case *ImportDefaultSpecifier:
		Walk(v, n.Local)
	case *ImportNamespaceSpecifier:
		Walk(v, n.Local)
	case *ImportAttribute:
		Walk(v, n.Key)
		Walk(v, n.Value)
	case *ExportNamedDeclaration:
		if n.Declaration != nil {
			Walk(v, n.Declaration)
		}
		for _, s := range n.Specifiers {
			Walk(v, s)
		}
		if n.Source != nil {
			Walk(v, n.Source)
		}
		for _, a := range n.Attributes {
			Walk(v, a)
		}
	case *ExportSpecifier:
		Walk(v, n.Local)
		if !sameName(n.Exported, n.Local) {
			Walk(v, n.Exported)
		}
	case *ExportDefaultDeclaration:
		Walk(v, n.Declaration)
	case *ExportAllDeclaration:
		if n.Exported != nil {
			Walk(v, n.Exported)
		}
		Walk(v, n.Source)
		for _, a := range n.Attributes {
			Walk(v, a)
		}
	}

	v.Visit(nil)
}

func walkStatements(v Visitor, list []Statement) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkNodes(v Visitor, list []Node) {
	for _, n := range list {
		Walk(v, n)
	}
}

func walkPatterns(v Visitor, list []Pattern) {
	for _, p := range list {
		if p != nil {
			Walk(v, p)
		}
	}
}

func walkFunction(v Visitor, id *Identifier, params []Pattern, body *BlockStatement) {
	if id != nil {
		Walk(v, id)
	}
	walkPatterns(v, params)
	Walk(v, body)
}

func walkClass(v Visitor, id *Identifier, super Expression, body *ClassBody) {
	if id != nil {
		Walk(v, id)
	}
	if super != nil {
		Walk(v, super)
	}
	Walk(v, body)
}

// sameName reports whether a specifier's two names are one source token.
func sameName(a, b Node) bool {
	ra, rb := a.Span(), b.Span()
	if ra == nil || rb == nil {
		return a == b
	}
	return ra.Start == rb.Start
}
