package parser

import (
	"math/big"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// parseExpression parses an Expression: one or more comma separated
// assignment expressions.
func (p *parser) parseExpression(ctx context) ast.Expression {
	start := p.start()
	expr := p.parseAssignment(ctx)
	if p.tok != token.Comma {
		return expr
	}
	list := []ast.Expression{expr}
	for p.consumeOpt(ctx, token.Comma) {
		list = append(list, p.parseAssignment(ctx))
	}
	p.assignable = false
	return &ast.SequenceExpression{
		Range:       p.finish(start),
		Expressions: list,
	}
}

// parseAssignment parses an AssignmentExpression that is used as a value.
func (p *parser) parseAssignment(ctx context) ast.Expression {
	start := p.start()
	expr := p.parseAssignmentCover(ctx)
	p.checkCover(start)
	return expr
}

// parseAssignmentCover parses an AssignmentExpression that may still turn
// out to be a pattern. Pattern-only errors inside an object or array
// literal result stay pending in p.cover for the caller to settle.
func (p *parser) parseAssignmentCover(ctx context) ast.Expression {
	p.enter()
	defer p.leave()

	start := p.start()
	if p.tok == token.Yield && ctx.has(ctxYield) {
		if p.s.Escaped {
			p.raise(scanner.ErrInvalidEscapedKeyword)
		}
		return p.parseYield(ctx, start)
	}

	p.potentialArrowAt = start.index
	left := p.parseConditional(ctx)

	if !p.tok.IsAssign() {
		if !p.isPatternCandidate(left) {
			p.checkCover(start)
		}
		return left
	}

	op := p.tok
	var target ast.Pattern
	switch {
	case op == token.Assign && p.isPatternCandidate(left):
		target = p.toAssignmentPattern(ctx, left, start)
		p.clearCover(start)
	case isLiteralPattern(left) && op == token.Assign:
		p.raiseAt(start, scanner.ErrInvalidParenthesizedPattern)
	default:
		p.checkCover(start)
		target = p.checkSimpleTarget(ctx, left, start, scanner.ErrInvalidLHSInAssignment)
	}

	p.next(ctx)
	right := p.parseAssignment(ctx)
	p.assignable = false
	return &ast.AssignmentExpression{
		Range:    p.finish(start),
		Operator: op.String(),
		Left:     target,
		Right:    right,
	}
}

// isPatternCandidate reports whether expr is an unparenthesized object or
// array literal, the only expressions that can become destructuring
// patterns.
func (p *parser) isPatternCandidate(expr ast.Expression) bool {
	return isLiteralPattern(expr) && !p.isParenthesized(expr)
}

func isLiteralPattern(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.ObjectExpression, *ast.ArrayExpression:
		return true
	}
	return false
}

// checkSimpleTarget validates an expression used as a simple assignment
// target, using the assignable flag of the expression just parsed.
func (p *parser) checkSimpleTarget(ctx context, expr ast.Expression, at position, code scanner.ErrorCode, params ...string) ast.Pattern {
	if !p.assignable {
		if _, ok := expr.(*ast.ChainExpression); ok {
			p.raiseAt(at, scanner.ErrInvalidOptionalChainTarget)
		}
		p.raiseAt(at, code, params...)
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		if ctx.has(ctxStrict) && isEvalOrArguments(e.Name) {
			p.raiseAt(at, scanner.ErrStrictEvalArguments)
		}
		return e
	case *ast.MemberExpression:
		return e
	}
	p.raiseAt(at, code, params...)
	return nil
}

func isEvalOrArguments(name string) bool {
	return name == "eval" || name == "arguments"
}

func (p *parser) parseYield(ctx context, start position) ast.Expression {
	if ctx.has(ctxParams) {
		p.raise(scanner.ErrYieldInParameter)
	}
	if p.yieldPos == 0 {
		p.yieldPos = start.index + 1
	}
	p.next(ctx)

	y := &ast.YieldExpression{}
	if !p.s.NewLine {
		if p.tok == token.Multiply {
			y.Delegate = true
			p.next(ctx)
			y.Argument = p.parseAssignment(ctx)
		} else if startsExpression(p.tok) {
			y.Argument = p.parseAssignment(ctx)
		}
	}
	y.Range = p.finish(start)
	p.assignable = false
	return y
}

// startsExpression reports whether t can begin an expression, which
// decides whether a yield has an operand.
func startsExpression(t token.Token) bool {
	switch t {
	case token.String, token.Number, token.BigInt, token.NoSubstitutionTemplate, token.TemplateHead,
		token.LeftParenthesis, token.LeftBracket, token.LeftBrace,
		token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Increment, token.Decrement,
		token.Slash, token.QuotientAssign, token.PrivateIdentifier,
		token.Typeof, token.Void, token.Delete, token.New, token.Function, token.Class,
		token.This, token.Super, token.Null, token.True, token.False, token.Import, token.EscapedReserved:
		return true
	}
	return t.IsIdentifierLike()
}

func (p *parser) parseConditional(ctx context) ast.Expression {
	start := p.start()
	test := p.parseBinary(ctx, token.PrecedenceLowest)
	if p.tok != token.QuestionMark || p.isBareArrow(test) {
		return test
	}
	p.next(ctx)
	consequent := p.parseAssignment(ctx &^ ctxDisallowIn)
	p.consume(ctx, token.Colon)
	alternate := p.parseAssignment(ctx)
	p.assignable = false
	return &ast.ConditionalExpression{
		Range:      p.finish(start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

// isBareArrow reports whether expr is an arrow function that was not
// parenthesized. Such an arrow ends the enclosing AssignmentExpression.
func (p *parser) isBareArrow(expr ast.Expression) bool {
	_, ok := expr.(*ast.ArrowFunctionExpression)
	return ok && !p.isParenthesized(expr)
}

func (p *parser) parseUnary(ctx context) ast.Expression {
	p.enter()
	defer p.leave()

	start := p.start()
	switch {
	case p.tok.IsUnary():
		op := p.tok
		p.next(ctx)
		arg := p.parseUnary(ctx)
		if op == token.Delete {
			p.checkDelete(ctx, arg, start)
		}
		p.assignable = false
		return &ast.UnaryExpression{
			Range:    p.finish(start),
			Operator: op.String(),
			Prefix:   true,
			Argument: arg,
		}

	case p.tok.IsUpdate():
		op := p.tok
		p.next(ctx)
		argStart := p.start()
		arg := p.parseUnary(ctx)
		p.checkSimpleTarget(ctx, arg, argStart, scanner.ErrInvalidLHSInUpdate, "prefix")
		p.assignable = false
		return &ast.UpdateExpression{
			Range:    p.finish(start),
			Operator: op.String(),
			Prefix:   true,
			Argument: arg,
		}

	case p.tok == token.Await && ctx.has(ctxAwait):
		return p.parseAwait(ctx, start)

	case p.tok == token.PrivateIdentifier:
		// #x in obj
		name := p.s.Value
		p.usePrivate(name, start)
		p.next(ctx)
		if p.tok != token.In || ctx.has(ctxDisallowIn) {
			p.unexpected()
		}
		p.assignable = false
		return &ast.PrivateIdentifier{Range: p.finish(start), Name: name}
	}

	expr := p.parseLeftHandSide(ctx)
	return p.parsePostfix(ctx, start, expr)
}

func (p *parser) checkDelete(ctx context, arg ast.Expression, at position) {
	switch a := arg.(type) {
	case *ast.Identifier:
		if ctx.has(ctxStrict) {
			p.raiseAt(at, scanner.ErrStrictDelete)
		}
	case *ast.MemberExpression:
		if _, ok := a.Property.(*ast.PrivateIdentifier); ok {
			p.raiseAt(at, scanner.ErrDeletePrivateField)
		}
	case *ast.ChainExpression:
		if m, ok := a.Expression.(*ast.MemberExpression); ok {
			if _, ok := m.Property.(*ast.PrivateIdentifier); ok {
				p.raiseAt(at, scanner.ErrDeletePrivateField)
			}
		}
	}
}

func (p *parser) parseAwait(ctx context, start position) ast.Expression {
	if p.s.Escaped {
		p.raise(scanner.ErrInvalidEscapedKeyword)
	}
	if ctx.has(ctxParams) {
		p.raise(scanner.ErrAwaitInParameter)
	}
	if p.awaitPos == 0 {
		p.awaitPos = start.index + 1
	}
	p.next(ctx)
	arg := p.parseUnary(ctx)
	p.assignable = false
	return &ast.AwaitExpression{Range: p.finish(start), Argument: arg}
}

func (p *parser) parsePostfix(ctx context, start position, expr ast.Expression) ast.Expression {
	if !p.tok.IsUpdate() || p.s.NewLine || p.isBareArrow(expr) {
		return expr
	}
	p.checkSimpleTarget(ctx, expr, start, scanner.ErrInvalidLHSInUpdate, "postfix")
	op := p.tok
	p.next(ctx)
	p.assignable = false
	return &ast.UpdateExpression{
		Range:    p.finish(start),
		Operator: op.String(),
		Argument: expr,
	}
}

// parseLeftHandSide parses a LeftHandSideExpression: a member, call or new
// expression, possibly an optional chain.
func (p *parser) parseLeftHandSide(ctx context) ast.Expression {
	start := p.start()
	var expr ast.Expression
	if p.tok == token.New {
		expr = p.parseNew(ctx)
	} else {
		expr = p.parsePrimary(ctx)
	}
	return p.parseSubscripts(ctx, start, expr, false)
}

func (p *parser) parseNew(ctx context) ast.Expression {
	start := p.start()
	if p.s.Escaped {
		p.raise(scanner.ErrInvalidEscapedKeyword)
	}
	p.next(ctx)

	if p.tok == token.Period {
		meta := &ast.Identifier{Range: p.finish(start), Name: "new"}
		p.next(ctx)
		propStart := p.start()
		if !p.isContextual(token.Target) {
			p.unexpected()
		}
		if !ctx.has(ctxNewTarget) {
			p.raiseAt(start, scanner.ErrInvalidNewTarget)
		}
		p.next(ctx)
		p.assignable = false
		return &ast.MetaProperty{
			Range:    p.finish(start),
			Meta:     meta,
			Property: &ast.Identifier{Range: p.finish(propStart), Name: "target"},
		}
	}

	calleeStart := p.start()
	var callee ast.Expression
	switch p.tok {
	case token.New:
		callee = p.parseNew(ctx)
	case token.Import:
		if t, _ := p.peek(ctx); t == token.LeftParenthesis {
			p.unexpected()
		}
		callee = p.parsePrimary(ctx)
	default:
		callee = p.parsePrimary(ctx)
	}
	callee = p.parseSubscripts(ctx, calleeStart, callee, true)

	var args []ast.Expression
	if p.tok == token.LeftParenthesis {
		args, _ = p.parseArguments(ctx, false)
	}
	p.assignable = false
	return &ast.NewExpression{
		Range:     p.finish(start),
		Callee:    callee,
		Arguments: args,
	}
}

// parseSubscripts parses the member accesses, calls and tagged templates
// after expr. A new expression callee (noCall) stops at the first argument
// list.
func (p *parser) parseSubscripts(ctx context, start position, expr ast.Expression, noCall bool) ast.Expression {
	if p.isBareArrow(expr) {
		return expr
	}
	chain := false
	for {
		switch p.tok {
		case token.Period:
			p.next(ctx)
			expr = &ast.MemberExpression{
				Object:   expr,
				Property: p.parseMemberName(ctx, expr),
			}
			p.assignable = !chain

		case token.QuestionDot:
			if noCall {
				p.raise(scanner.ErrOptionalChainingNoNew)
			}
			if _, ok := expr.(*ast.Super); ok {
				p.raise(scanner.ErrOptionalChainingNoSuper)
			}
			chain = true
			p.next(ctx)
			switch p.tok {
			case token.LeftParenthesis:
				args, _ := p.parseArguments(ctx, false)
				expr = &ast.CallExpression{Callee: expr, Arguments: args, Optional: true}
			case token.LeftBracket:
				p.next(ctx)
				prop := p.parseExpression(ctx &^ ctxDisallowIn)
				p.consume(ctx, token.RightBracket)
				expr = &ast.MemberExpression{Object: expr, Property: prop, Computed: true, Optional: true}
			case token.NoSubstitutionTemplate, token.TemplateHead:
				p.raise(scanner.ErrOptionalChainingNoTemplate)
			default:
				expr = &ast.MemberExpression{Object: expr, Property: p.parseMemberName(ctx, expr), Optional: true}
			}
			p.assignable = false

		case token.LeftBracket:
			p.next(ctx)
			prop := p.parseExpression(ctx &^ ctxDisallowIn)
			p.consume(ctx, token.RightBracket)
			expr = &ast.MemberExpression{Object: expr, Property: prop, Computed: true}
			p.assignable = !chain

		case token.LeftParenthesis:
			if noCall {
				return p.endChain(start, expr, chain)
			}
			args, _ := p.parseArguments(ctx, false)
			expr = &ast.CallExpression{Callee: expr, Arguments: args}
			p.assignable = false

		case token.NoSubstitutionTemplate, token.TemplateHead:
			if chain {
				p.raise(scanner.ErrOptionalChainingNoTemplate)
			}
			quasi := p.parseTemplate(ctx, true)
			expr = &ast.TaggedTemplateExpression{Tag: expr, Quasi: quasi}
			p.assignable = false

		default:
			return p.endChain(start, expr, chain)
		}
		setRange(expr, p.finish(start))
	}
}

func (p *parser) endChain(start position, expr ast.Expression, chain bool) ast.Expression {
	if !chain {
		return expr
	}
	p.assignable = false
	return &ast.ChainExpression{Range: p.finish(start), Expression: expr}
}

func setRange(expr ast.Expression, r *ast.Range) {
	switch e := expr.(type) {
	case *ast.MemberExpression:
		e.Range = r
	case *ast.CallExpression:
		e.Range = r
	case *ast.TaggedTemplateExpression:
		e.Range = r
	}
}

// parseMemberName parses the name after . or ?., which may be private.
func (p *parser) parseMemberName(ctx context, object ast.Expression) ast.Expression {
	if p.tok == token.PrivateIdentifier {
		start := p.start()
		if _, ok := object.(*ast.Super); ok {
			p.unexpected()
		}
		name := p.s.Value
		p.usePrivate(name, start)
		p.next(ctx)
		return &ast.PrivateIdentifier{Range: p.finish(start), Name: name}
	}
	return p.parseIdentifierName(ctx)
}

// parseArguments parses a parenthesized argument list. In cover mode the
// arguments may still become async arrow parameters, so pattern errors are
// left pending. The returned position is that of a trailing comma after a
// spread element, or index -1.
func (p *parser) parseArguments(ctx context, cover bool) ([]ast.Expression, position) {
	ctx &^= ctxDisallowIn
	p.consume(ctx, token.LeftParenthesis)
	args := []ast.Expression{}
	restComma := position{index: -1}
	for p.tok != token.RightParenthesis {
		start := p.start()
		var arg ast.Expression
		if p.tok == token.Ellipsis {
			p.next(ctx)
			spread := &ast.SpreadElement{}
			if cover {
				argStart := p.start()
				spread.Argument = p.parseAssignmentCover(ctx)
				p.markStart(spread.Argument, argStart)
			} else {
				spread.Argument = p.parseAssignment(ctx)
			}
			spread.Range = p.finish(start)
			if p.tok == token.Comma {
				p.trailingComma[spread] = p.start()
				if restComma.index < 0 {
					restComma = p.start()
				}
			}
			arg = spread
		} else if cover {
			arg = p.parseAssignmentCover(ctx)
		} else {
			arg = p.parseAssignment(ctx)
		}
		if cover {
			p.markStart(arg, start)
		}
		args = append(args, arg)
		if p.tok != token.RightParenthesis {
			p.consume(ctx, token.Comma)
		}
	}
	p.next(ctx)
	return args, restComma
}

func (p *parser) parsePrimary(ctx context) ast.Expression {
	start := p.start()
	var expr ast.Expression
	switch p.tok {
	case token.Function:
		expr = p.parseFunctionExpression(ctx, start, false)
	case token.Class:
		expr = p.parseClassExpression(ctx, start)
	case token.This:
		p.next(ctx)
		expr = &ast.ThisExpression{Range: p.finish(start)}
	case token.Null, token.True, token.False, token.String, token.Number, token.BigInt:
		expr = p.parseLiteral(ctx)
	case token.Slash, token.QuotientAssign:
		expr = p.parseRegExp(ctx)
	case token.NoSubstitutionTemplate, token.TemplateHead:
		expr = p.parseTemplate(ctx, false)
	case token.LeftParenthesis:
		expr = p.parseParenthesized(ctx, start)
	case token.LeftBracket:
		expr = p.parseArrayLiteral(ctx)
	case token.LeftBrace:
		expr = p.parseObjectLiteral(ctx)
	case token.Super:
		expr = p.parseSuper(ctx)
	case token.Import:
		expr = p.parseImportCall(ctx)
	case token.Async:
		if !p.s.Escaped {
			expr = p.parseAsync(ctx, start)
			break
		}
		fallthrough
	default:
		if !p.tok.IsIdentifierLike() {
			p.unexpected()
		}
		id := p.parseIdentifierReference(ctx)
		if p.tok == token.Arrow && start.index == p.potentialArrowAt {
			if p.s.NewLine {
				p.raise(scanner.ErrNoLineBreakBeforeArrow)
			}
			expr = p.parseArrow(ctx, start, []ast.Pattern{id}, false)
		} else {
			expr = id
		}
	}

	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		p.assignable = true
	default:
		p.assignable = false
	}
	return expr
}

func (p *parser) parseIdentifierReference(ctx context) *ast.Identifier {
	start := p.start()
	if !p.tok.IsIdentifierLike() {
		p.unexpected()
	}
	name := p.s.Value
	p.checkReserved(ctx, name, start)
	p.next(ctx)
	return &ast.Identifier{Range: p.finish(start), Name: name}
}

// parseIdentifierName parses an IdentifierName, where reserved words are
// allowed.
func (p *parser) parseIdentifierName(ctx context) *ast.Identifier {
	start := p.start()
	if !p.tok.IsIdentifierName() {
		p.unexpected()
	}
	name := p.s.Value
	p.next(ctx)
	return &ast.Identifier{Range: p.finish(start), Name: name}
}

// checkReserved rejects identifiers that are reserved in ctx.
func (p *parser) checkReserved(ctx context, name string, at position) {
	switch t := token.Lookup(name); {
	case t == token.Yield:
		if ctx.has(ctxYield) {
			p.raiseAt(at, scanner.ErrReservedWord, name)
		}
		if ctx.has(ctxStrict) {
			p.raiseAt(at, scanner.ErrStrictReserved, name)
		}
	case t == token.Await:
		if ctx.has(ctxAwait | ctxModule) {
			p.raiseAt(at, scanner.ErrReservedWord, name)
		}
		if ctx.has(ctxStaticBlock) {
			p.raiseAt(at, scanner.ErrAwaitInStaticBlock)
		}
		if p.awaitIdentPos == 0 {
			p.awaitIdentPos = at.index + 1
		}
	case t == token.Arguments:
		if ctx.has(ctxClassField) {
			p.raiseAt(at, scanner.ErrArgumentsInClassField)
		}
	case t.IsKeyword():
		p.raiseAt(at, scanner.ErrReservedWord, name)
	case t.IsStrictReserved():
		if ctx.has(ctxStrict) {
			p.raiseAt(at, scanner.ErrStrictReserved, name)
		}
	}
}

func (p *parser) parseLiteral(ctx context) *ast.Literal {
	start := p.start()
	lit := &ast.Literal{}
	switch p.tok {
	case token.String:
		lit.Value = p.s.Value
	case token.Number:
		lit.Value = p.s.Number
	case token.BigInt:
		if v, ok := new(big.Int).SetString(p.s.Value, 0); ok {
			lit.Value = v
		}
		lit.Bigint = p.s.Value
	case token.True:
		lit.Value = true
	case token.False:
		lit.Value = false
	}
	if p.opts.Raw {
		lit.Raw = p.s.Raw()
	}
	p.next(ctx)
	lit.Range = p.finish(start)
	return lit
}

func (p *parser) parseRegExp(ctx context) *ast.Literal {
	start := p.start()
	p.s.ScanRegExp()
	if p.s.Err != nil {
		panic(bailout{p.s.Err})
	}
	lit := &ast.Literal{
		Regex: &ast.RegExpInfo{Pattern: p.s.Value, Flags: p.s.Flags},
	}
	if p.s.RegExp != nil {
		lit.Value = p.s.RegExp
	}
	if p.opts.Raw {
		lit.Raw = p.s.Raw()
	}
	p.next(ctx)
	lit.Range = p.finish(start)
	return lit
}

func (p *parser) parseSuper(ctx context) ast.Expression {
	start := p.start()
	if p.s.Escaped {
		p.raise(scanner.ErrInvalidEscapedKeyword)
	}
	p.next(ctx)
	switch p.tok {
	case token.LeftParenthesis:
		if !ctx.has(ctxSuperCall) {
			p.raiseAt(start, scanner.ErrInvalidSuperCall)
		}
	case token.Period, token.LeftBracket:
		if !ctx.has(ctxSuperProperty) {
			p.raiseAt(start, scanner.ErrInvalidSuperProperty)
		}
	case token.QuestionDot:
		p.raise(scanner.ErrOptionalChainingNoSuper)
	default:
		p.raiseAt(start, scanner.ErrInvalidSuperProperty)
	}
	return &ast.Super{Range: p.finish(start)}
}

// parseImportCall parses import(...) and import.meta.
func (p *parser) parseImportCall(ctx context) ast.Expression {
	start := p.start()
	if p.s.Escaped {
		p.raise(scanner.ErrInvalidEscapedKeyword)
	}
	p.next(ctx)

	switch p.tok {
	case token.Period:
		meta := &ast.Identifier{Range: p.finish(start), Name: "import"}
		p.next(ctx)
		propStart := p.start()
		if !p.isContextual(token.Meta) {
			p.unexpected()
		}
		if !ctx.has(ctxModule) {
			p.raiseAt(start, scanner.ErrImportMetaOutsideModule)
		}
		p.next(ctx)
		return &ast.MetaProperty{
			Range:    p.finish(start),
			Meta:     meta,
			Property: &ast.Identifier{Range: p.finish(propStart), Name: "meta"},
		}

	case token.LeftParenthesis:
		inner := ctx &^ ctxDisallowIn
		p.next(inner)
		imp := &ast.ImportExpression{Source: p.parseAssignment(inner)}
		if p.tok == token.Comma && ctx.has(ctxNext) {
			p.next(inner)
			if p.tok != token.RightParenthesis {
				imp.Options = p.parseAssignment(inner)
				p.consumeOpt(inner, token.Comma)
			}
		}
		p.consume(ctx, token.RightParenthesis)
		imp.Range = p.finish(start)
		return imp
	}
	p.unexpected()
	return nil
}

// parseAsync parses an expression starting with an unescaped async: an
// async function or arrow, a call of a function named async, or the plain
// identifier.
func (p *parser) parseAsync(ctx context, start position) ast.Expression {
	if t, newLine := p.peek(ctx); t == token.Function && !newLine {
		p.next(ctx)
		return p.parseFunctionExpression(ctx, start, true)
	}

	canArrow := start.index == p.potentialArrowAt
	id := p.parseIdentifierReference(ctx)
	if canArrow && p.tok == token.Arrow {
		// async => ...
		if p.s.NewLine {
			p.raise(scanner.ErrNoLineBreakBeforeArrow)
		}
		return p.parseArrow(ctx, start, []ast.Pattern{id}, false)
	}
	if !canArrow || p.s.NewLine {
		return id
	}

	if p.tok.IsIdentifierLike() {
		// async x => ...
		paramStart := p.start()
		param := p.parseIdentifierReference(ctx | ctxAwait)
		if p.tok != token.Arrow {
			p.unexpected()
		}
		if p.s.NewLine {
			p.raise(scanner.ErrNoLineBreakBeforeArrow)
		}
		p.checkBindingName(ctx|ctxAwait, param.Name, paramStart, false)
		return p.parseArrow(ctx, start, []ast.Pattern{param}, true)
	}

	if p.tok != token.LeftParenthesis {
		return id
	}

	yieldPos, awaitPos, awaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	args, restComma := p.parseArguments(ctx, true)

	if p.tok == token.Arrow {
		if p.s.NewLine {
			p.raise(scanner.ErrNoLineBreakBeforeArrow)
		}
		p.checkArrowPositions(start)
		params := p.toArrowParams(ctx|ctxAwait, args, restComma, start)
		p.clearCover(start)
		p.yieldPos, p.awaitPos, p.awaitIdentPos = yieldPos, awaitPos, awaitIdentPos
		return p.parseArrow(ctx, start, params, true)
	}

	p.checkCover(start)
	p.yieldPos = firstPos(yieldPos, p.yieldPos)
	p.awaitPos = firstPos(awaitPos, p.awaitPos)
	p.awaitIdentPos = firstPos(awaitIdentPos, p.awaitIdentPos)
	return &ast.CallExpression{
		Range:     p.finish(start),
		Callee:    id,
		Arguments: args,
	}
}

func firstPos(outer, inner int) int {
	if outer != 0 {
		return outer
	}
	return inner
}

// checkArrowPositions rejects yield and await expressions, and await used
// as an identifier, in parameters of an arrow starting at start.
func (p *parser) checkArrowPositions(start position) {
	if p.yieldPos != 0 {
		p.raiseAt(start, scanner.ErrYieldInParameter)
	}
	if p.awaitPos != 0 {
		p.raiseAt(start, scanner.ErrAwaitInParameter)
	}
}

// parseParenthesized parses a parenthesized expression or the parameter
// list of an arrow function.
func (p *parser) parseParenthesized(ctx context, start position) ast.Expression {
	canArrow := start.index == p.potentialArrowAt
	yieldPos, awaitPos, awaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0

	inner := ctx &^ ctxDisallowIn
	p.next(inner)

	var (
		items         []ast.Expression
		itemsStart    position
		rest          ast.Expression
		restAt        position
		trailing      = position{index: -1}
		innerAssignOK bool
	)
	for p.tok != token.RightParenthesis {
		if rest != nil {
			p.raiseAt(restAt, scanner.ErrRestMustBeLast)
		}
		if len(items) == 0 {
			itemsStart = p.start()
		}
		if p.tok == token.Ellipsis {
			restAt = p.start()
			p.next(inner)
			argStart := p.start()
			rest = p.parseAssignmentCover(inner)
			p.markStart(rest, argStart)
		} else {
			itemStart := p.start()
			item := p.parseAssignmentCover(inner)
			p.markStart(item, itemStart)
			items = append(items, item)
			innerAssignOK = p.assignable
		}
		if p.tok == token.RightParenthesis {
			break
		}
		trailing = p.start()
		p.consume(inner, token.Comma)
		if p.tok != token.RightParenthesis {
			trailing.index = -1
		} else if rest != nil {
			p.raiseAt(trailing, scanner.ErrRestTrailingComma)
		}
	}
	closeAt := p.start()
	p.next(ctx)

	if canArrow && p.tok == token.Arrow {
		if p.s.NewLine {
			p.raise(scanner.ErrNoLineBreakBeforeArrow)
		}
		p.checkArrowPositions(start)
		params := p.toArrowParams(ctx, items, position{index: -1}, start)
		if rest != nil {
			params = append(params, &ast.RestElement{
				Range:    p.rangeOf(restAt, rest),
				Argument: p.toBindingPattern(ctx, rest, restAt),
			})
		}
		p.clearCover(start)
		p.yieldPos, p.awaitPos, p.awaitIdentPos = yieldPos, awaitPos, awaitIdentPos
		return p.parseArrow(ctx, start, params, false)
	}

	switch {
	case rest != nil:
		p.raiseAt(restAt, scanner.ErrUnexpectedToken, "...")
	case len(items) == 0:
		p.raiseAt(closeAt, scanner.ErrUnexpectedToken, ")")
	case trailing.index >= 0:
		p.raiseAt(closeAt, scanner.ErrUnexpectedToken, ")")
	}
	p.checkCover(start)
	p.yieldPos = firstPos(yieldPos, p.yieldPos)
	p.awaitPos = firstPos(awaitPos, p.awaitPos)
	p.awaitIdentPos = firstPos(awaitIdentPos, p.awaitIdentPos)

	var expr ast.Expression
	if len(items) == 1 {
		expr = items[0]
	} else {
		expr = &ast.SequenceExpression{
			Range:       p.rangeOf(itemsStart, items[len(items)-1]),
			Expressions: items,
		}
		innerAssignOK = false
	}
	p.parens[expr] = struct{}{}
	p.assignable = innerAssignOK
	return expr
}

func (p *parser) parseArrayLiteral(ctx context) ast.Expression {
	start := p.start()
	inner := ctx &^ ctxDisallowIn
	p.next(inner)
	elements := []ast.Expression{}
	for p.tok != token.RightBracket {
		if p.tok == token.Comma {
			p.next(inner)
			elements = append(elements, nil)
			continue
		}
		elemStart := p.start()
		var elem ast.Expression
		if p.tok == token.Ellipsis {
			elem = p.parseSpreadCover(inner, elemStart)
		} else {
			elem = p.parseAssignmentCover(inner)
		}
		p.markStart(elem, elemStart)
		elements = append(elements, elem)
		if p.tok != token.RightBracket {
			p.consume(inner, token.Comma)
		}
	}
	p.next(ctx)
	return &ast.ArrayExpression{Range: p.finish(start), Elements: elements}
}

func (p *parser) parseObjectLiteral(ctx context) ast.Expression {
	start := p.start()
	inner := ctx &^ ctxDisallowIn
	p.next(inner)
	props := []ast.Node{}
	seenProto := false
	for p.tok != token.RightBrace {
		propStart := p.start()
		var prop ast.Node
		if p.tok == token.Ellipsis {
			prop = p.parseSpreadCover(inner, propStart)
		} else {
			prop = p.parseProperty(inner, propStart, &seenProto)
		}
		p.markStart(prop, propStart)
		props = append(props, prop)
		if p.tok != token.RightBrace {
			p.consume(inner, token.Comma)
		}
	}
	p.next(ctx)
	return &ast.ObjectExpression{Range: p.finish(start), Properties: props}
}

// parseSpreadCover parses a spread element of an array or object literal
// that may become a rest element.
func (p *parser) parseSpreadCover(ctx context, start position) *ast.SpreadElement {
	p.next(ctx)
	argStart := p.start()
	spread := &ast.SpreadElement{Argument: p.parseAssignmentCover(ctx)}
	p.markStart(spread.Argument, argStart)
	spread.Range = p.finish(start)
	if p.tok == token.Comma {
		p.trailingComma[spread] = p.start()
	}
	return spread
}

// propertyModifierFollows reports whether the token after a get, set or
// async word makes that word a modifier rather than the property name.
func (p *parser) propertyModifierFollows(ctx context, allowNewLine bool) bool {
	t, newLine := p.peek(ctx)
	if newLine && !allowNewLine {
		return false
	}
	switch t {
	case token.LeftParenthesis, token.Colon, token.Comma, token.RightBrace, token.Assign, token.Semicolon, token.EOF:
		return false
	}
	return true
}

func (p *parser) parseProperty(ctx context, start position, seenProto *bool) *ast.Property {
	async, generator := false, false
	kind := "init"
	if p.isContextual(token.Async) && p.propertyModifierFollows(ctx, false) {
		async = true
		p.next(ctx)
	}
	if p.tok == token.Multiply {
		generator = true
		p.next(ctx)
	}
	if !async && !generator && (p.isContextual(token.Get) || p.isContextual(token.Set)) && p.propertyModifierFollows(ctx, true) {
		kind = p.s.Value
		p.next(ctx)
	}

	keyTok, keyStart := p.tok, p.start()
	if keyTok == token.PrivateIdentifier {
		p.unexpected()
	}
	key, computed := p.parsePropertyKey(ctx)
	prop := &ast.Property{Key: key, Kind: kind, Computed: computed}

	switch {
	case p.tok == token.LeftParenthesis:
		prop.Value = p.parseMethod(ctx, methodKind(kind), async, generator, false)
		prop.Method = kind == "init"

	case async || generator || kind != "init":
		p.unexpected()

	case p.tok == token.Colon:
		if !computed && propertyName(key) == "__proto__" {
			if *seenProto {
				p.pendCover(p.errorAt(keyStart, scanner.ErrDuplicateProto))
			}
			*seenProto = true
		}
		p.next(ctx)
		valueStart := p.start()
		prop.Value = p.parseAssignmentCover(ctx)
		p.markStart(prop.Value, valueStart)

	default:
		// Shorthand property, with an initializer only in patterns.
		id, ok := key.(*ast.Identifier)
		if !ok || !keyTok.IsIdentifierLike() {
			p.raiseAt(keyStart, scanner.ErrUnexpectedToken, p.src[keyStart.index:p.prevEnd.index])
		}
		p.checkReserved(ctx, id.Name, keyStart)
		prop.Shorthand = true
		value := cloneIdentifier(id)
		if p.tok == token.Assign {
			p.pendCover(p.errorAt(p.start(), scanner.ErrInvalidShorthandPropertyInit))
			p.next(ctx)
			init := p.parseAssignment(ctx)
			prop.Value = &ast.AssignmentPattern{
				Range: p.finish(keyStart),
				Left:  value,
				Right: init,
			}
		} else {
			prop.Value = value
		}
		p.markStart(prop.Value, keyStart)
	}
	prop.Range = p.finish(start)
	return prop
}

func cloneIdentifier(id *ast.Identifier) *ast.Identifier {
	c := &ast.Identifier{Name: id.Name}
	if id.Range != nil {
		r := *id.Range
		c.Range = &r
	}
	return c
}

// parsePropertyKey parses a property name in an object literal, class body
// or object pattern.
func (p *parser) parsePropertyKey(ctx context) (ast.Expression, bool) {
	switch {
	case p.tok == token.LeftBracket:
		p.next(ctx)
		key := p.parseAssignment(ctx &^ ctxDisallowIn)
		p.consume(ctx, token.RightBracket)
		return key, true
	case p.tok.IsLiteralKey():
		return p.parseLiteral(ctx), false
	case p.tok.IsIdentifierName():
		return p.parseIdentifierName(ctx), false
	}
	p.unexpected()
	return nil, false
}

// propertyName returns the static name of a non-computed key.
func propertyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.Literal:
		if s, ok := k.Value.(string); ok {
			return s
		}
	}
	return ""
}
