package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// stmtKind is the syntactic position of a statement, which decides where
// function declarations may appear.
type stmtKind uint8

const (
	stmtListItem  stmtKind = iota // block, function body or script body
	stmtLabelBody                 // body of a label in a statement list
	stmtIfBody                    // consequent or alternate of an if
	stmtBody                      // any other single-statement position
)

// parseDirectivesAndStatements parses a body that starts with a directive
// prologue, up to but not including end. It returns the position of a
// "use strict" directive if there is one.
func (p *parser) parseDirectivesAndStatements(ctx context, sc *scope, end token.Token, labels *labelSet) ([]ast.Statement, *position) {
	body := []ast.Statement{}
	var (
		strictAt *position
		octal    *Error
	)
	for p.tok == token.String {
		start := p.start()
		raw := p.s.Raw()
		if octal == nil && p.s.Octal != scanner.ErrNone {
			octal = p.errorAt(start, p.s.Octal)
		}

		stmt := p.parseStatementListItem(ctx, sc, labels)
		body = append(body, stmt)
		es, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			break
		}
		if lit, ok := es.Expression.(*ast.Literal); !ok || p.isParenthesized(lit) {
			break
		}

		value := raw[1 : len(raw)-1]
		if p.opts.Directives {
			es.Directive = value
		}
		if value == "use strict" {
			at := start
			strictAt = &at
			ctx |= ctxStrict
			if octal != nil {
				p.fail(octal)
			}
			// The token after the directive was scanned as sloppy code.
			if p.s.Octal != scanner.ErrNone {
				p.raise(p.s.Octal)
			}
		}
	}
	return append(body, p.parseStatementList(ctx, sc, end, labels)...), strictAt
}

// parseStatementList parses statement list items up to but not including
// end.
func (p *parser) parseStatementList(ctx context, sc *scope, end token.Token, labels *labelSet) []ast.Statement {
	body := []ast.Statement{}
	for p.tok != end {
		if p.tok == token.EOF {
			p.raise(scanner.ErrUnexpectedEOF)
		}
		body = append(body, p.parseStatementListItem(ctx, sc, labels))
	}
	return body
}

func (p *parser) parseStatementListItem(ctx context, sc *scope, labels *labelSet) ast.Statement {
	start := p.start()
	switch p.tok {
	case token.Function:
		settle(labels)
		return p.parseFunctionDeclaration(ctx, sc, start, false, false)
	case token.Class:
		settle(labels)
		return p.parseClassDeclaration(ctx, sc, start, false)
	case token.Const:
		settle(labels)
		return p.parseVariableStatement(ctx, sc)
	case token.Let:
		if !p.s.Escaped {
			if t, _ := p.peek(ctx); startsLetBinding(t) {
				settle(labels)
				return p.parseVariableStatement(ctx, sc)
			}
		}
	case token.Async:
		if p.startsAsyncFunction(ctx) {
			settle(labels)
			p.next(ctx)
			return p.parseFunctionDeclaration(ctx, sc, start, true, false)
		}
	case token.Import:
		if p.isImportCall(ctx) {
			break
		}
		p.checkModuleItem(ctx, sc)
		return p.parseImport(ctx, sc)
	case token.Export:
		p.checkModuleItem(ctx, sc)
		return p.parseExport(ctx, sc)
	}
	return p.parseStatement(ctx, sc, labels, stmtListItem)
}

func startsLetBinding(t token.Token) bool {
	return t == token.LeftBracket || t == token.LeftBrace || t.IsIdentifierLike()
}

// startsAsyncFunction reports whether the current async word begins an
// async function.
func (p *parser) startsAsyncFunction(ctx context) bool {
	if !p.isContextual(token.Async) {
		return false
	}
	t, newLine := p.peek(ctx)
	return t == token.Function && !newLine
}

// isImportCall reports whether an import keyword starts import(...) or
// import.meta rather than a declaration.
func (p *parser) isImportCall(ctx context) bool {
	t, _ := p.peek(ctx)
	return t == token.LeftParenthesis || t == token.Period
}

// checkModuleItem rejects import and export declarations outside the top
// level of a module.
func (p *parser) checkModuleItem(ctx context, sc *scope) {
	if !ctx.has(ctxModule) {
		p.raise(scanner.ErrImportExportOutsideModule)
	}
	if sc.kind != scopeModule {
		p.unexpected()
	}
}

func (p *parser) parseStatement(ctx context, sc *scope, labels *labelSet, kind stmtKind) ast.Statement {
	p.enter()
	defer p.leave()

	start := p.start()
	switch p.tok {
	case token.For:
		return p.parseFor(ctx, sc, labels)
	case token.While:
		return p.parseWhile(ctx, sc, labels)
	case token.Do:
		return p.parseDoWhile(ctx, sc, labels)
	case token.LeftBrace:
		settle(labels)
		return p.parseBlock(ctx, p.newScope(scopeBlock, sc), labels)
	case token.Semicolon:
		p.next(ctx)
		return &ast.EmptyStatement{Range: p.finish(start)}
	case token.Var:
		settle(labels)
		return p.parseVariableStatement(ctx, sc)
	case token.If:
		settle(labels)
		return p.parseIf(ctx, sc, labels)
	case token.Continue:
		return p.parseContinue(ctx, labels)
	case token.Break:
		return p.parseBreak(ctx, labels)
	case token.Return:
		return p.parseReturn(ctx)
	case token.With:
		settle(labels)
		return p.parseWith(ctx, sc, labels)
	case token.Switch:
		settle(labels)
		return p.parseSwitch(ctx, sc, labels)
	case token.Throw:
		return p.parseThrow(ctx)
	case token.Try:
		settle(labels)
		return p.parseTry(ctx, sc, labels)
	case token.Debugger:
		p.next(ctx)
		p.semicolon(ctx)
		return &ast.DebuggerStatement{Range: p.finish(start)}
	case token.Function:
		settle(labels)
		return p.parseFunctionStatement(ctx, sc, start, kind)
	case token.Class:
		p.raise(scanner.ErrClassForbiddenAsStatement)
	case token.Const:
		p.raise(scanner.ErrLexicalInSingleStatement)
	case token.Let:
		// let [ never starts an expression statement, and let followed by a
		// binding on the same line would be a declaration.
		if t, newLine := p.peek(ctx); t == token.LeftBracket || startsLetBinding(t) && !newLine && kind != stmtListItem {
			p.raise(scanner.ErrLexicalInSingleStatement)
		}
	case token.Async:
		if kind != stmtListItem && p.startsAsyncFunction(ctx) {
			p.raise(scanner.ErrAsyncFunctionInSingleStatement)
		}
	case token.Import:
		if !p.isImportCall(ctx) {
			if !ctx.has(ctxModule) {
				p.raise(scanner.ErrImportExportOutsideModule)
			}
			p.unexpected()
		}
	case token.Export:
		if !ctx.has(ctxModule) {
			p.raise(scanner.ErrImportExportOutsideModule)
		}
		p.unexpected()
	}
	return p.parseExpressionOrLabelled(ctx, sc, labels, kind)
}

// parseFunctionStatement parses a function declaration in a single
// statement position, which only sloppy web code allows: as the body of an
// if, where it acts as if wrapped in a block, or of a label.
func (p *parser) parseFunctionStatement(ctx context, sc *scope, start position, kind stmtKind) ast.Statement {
	switch {
	case ctx.has(ctxStrict):
		p.raise(scanner.ErrStrictFunction)
	case kind == stmtLabelBody && !ctx.webCompat():
		p.raise(scanner.ErrLabelledFunction)
	case kind != stmtIfBody && kind != stmtLabelBody || !ctx.webCompat():
		p.raise(scanner.ErrSloppyFunction)
	}
	if t, _ := p.peek(ctx); t == token.Multiply {
		p.raise(scanner.ErrGeneratorInSingleStatement)
	}
	if kind == stmtIfBody {
		sc = p.newScope(scopeBlock, sc)
	}
	return p.parseFunctionDeclaration(ctx, sc, start, false, false)
}

func (p *parser) parseExpressionOrLabelled(ctx context, sc *scope, labels *labelSet, kind stmtKind) ast.Statement {
	start := p.start()
	startTok := p.tok
	expr := p.parseExpression(ctx)

	if id, ok := expr.(*ast.Identifier); ok && p.tok == token.Colon && startTok.IsIdentifierLike() && !p.isParenthesized(id) {
		labels = p.pushLabel(ctx, labels, id.Name, start)
		p.next(ctx)
		bodyKind := stmtBody
		if kind == stmtListItem || kind == stmtLabelBody {
			bodyKind = stmtLabelBody
		}
		body := p.parseStatement(ctx, sc, labels, bodyKind)
		return &ast.LabeledStatement{Range: p.finish(start), Label: id, Body: body}
	}

	settle(labels)
	p.semicolon(ctx)
	return &ast.ExpressionStatement{Range: p.finish(start), Expression: expr}
}

// parseBlock parses a block whose declarations go in sc.
func (p *parser) parseBlock(ctx context, sc *scope, labels *labelSet) *ast.BlockStatement {
	start := p.start()
	p.consume(ctx, token.LeftBrace)
	body := p.parseStatementList(ctx, sc, token.RightBrace, labels)
	p.next(ctx)
	return &ast.BlockStatement{Range: p.finish(start), Body: body}
}

func (p *parser) parseVariableStatement(ctx context, sc *scope) *ast.VariableDeclaration {
	start := p.start()
	decl, _ := p.parseVariableDeclaration(ctx, sc, false)
	p.semicolon(ctx)
	decl.Range = p.finish(start)
	return decl
}

// parseVariableDeclaration parses a var, let or const declaration list.
// In a for head the missing initializer checks are left to the caller,
// since for-in and for-of heads have no initializers.
func (p *parser) parseVariableDeclaration(ctx context, sc *scope, forHead bool) (*ast.VariableDeclaration, []boundName) {
	start := p.start()
	decl := &ast.VariableDeclaration{Kind: p.tok.String()}
	b := &binder{scope: sc}
	switch p.tok {
	case token.Var:
		b.kind = bindVar
	case token.Let:
		b.kind = bindLet
	case token.Const:
		b.kind = bindConst
	}
	p.next(ctx)

	for {
		declStart := p.start()
		d := &ast.VariableDeclarator{ID: p.parseBindingTarget(ctx, b)}
		if p.consumeOpt(ctx, token.Assign) {
			d.Init = p.parseAssignment(ctx)
		} else if !forHead {
			p.checkInitializer(decl.Kind, d, declStart)
		}
		d.Range = p.finish(declStart)
		decl.Declarations = append(decl.Declarations, d)
		if !p.consumeOpt(ctx, token.Comma) {
			break
		}
	}
	decl.Range = p.finish(start)
	return decl, b.names
}

func (p *parser) checkInitializer(kind string, d *ast.VariableDeclarator, at position) {
	if d.Init != nil {
		return
	}
	if kind == "const" {
		p.raiseAt(at, scanner.ErrMissingInitInConst)
	}
	if _, ok := d.ID.(*ast.Identifier); !ok {
		p.raiseAt(at, scanner.ErrDeclarationMissingInitializer)
	}
}

func (p *parser) parseIf(ctx context, sc *scope, labels *labelSet) *ast.IfStatement {
	start := p.start()
	p.next(ctx)
	p.consume(ctx, token.LeftParenthesis)
	stmt := &ast.IfStatement{Test: p.parseExpression(ctx)}
	p.consume(ctx, token.RightParenthesis)
	stmt.Consequent = p.parseStatement(ctx, sc, labels, stmtIfBody)
	if p.consumeOpt(ctx, token.Else) {
		stmt.Alternate = p.parseStatement(ctx, sc, labels, stmtIfBody)
	}
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseWhile(ctx context, sc *scope, labels *labelSet) *ast.WhileStatement {
	start := p.start()
	markIteration(labels)
	p.next(ctx)
	p.consume(ctx, token.LeftParenthesis)
	stmt := &ast.WhileStatement{Test: p.parseExpression(ctx)}
	p.consume(ctx, token.RightParenthesis)
	stmt.Body = p.parseStatement(ctx|ctxIteration, sc, labels, stmtBody)
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseDoWhile(ctx context, sc *scope, labels *labelSet) *ast.DoWhileStatement {
	start := p.start()
	markIteration(labels)
	p.next(ctx)
	stmt := &ast.DoWhileStatement{Body: p.parseStatement(ctx|ctxIteration, sc, labels, stmtBody)}
	if p.tok != token.While {
		p.unexpected()
	}
	p.next(ctx)
	p.consume(ctx, token.LeftParenthesis)
	stmt.Test = p.parseExpression(ctx)
	p.consume(ctx, token.RightParenthesis)
	// The semicolon after do-while is always optional.
	p.consumeOpt(ctx, token.Semicolon)
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseFor(ctx context, sc *scope, labels *labelSet) ast.Statement {
	start := p.start()
	markIteration(labels)
	p.next(ctx)

	await := false
	if p.tok == token.Await {
		if !ctx.has(ctxAwait) {
			p.raise(scanner.ErrForAwaitOutsideAsync)
		}
		await = true
		p.next(ctx)
	}
	p.consume(ctx, token.LeftParenthesis)

	head := p.newScope(scopeBlock, sc)
	initStart := p.start()
	if p.tok == token.Semicolon {
		if await {
			p.raise(scanner.ErrForAwaitNotOf)
		}
		return p.parseForRest(ctx, start, nil, head, labels)
	}

	isDecl := p.tok == token.Var || p.tok == token.Const
	if p.tok == token.Let && !p.s.Escaped {
		t, _ := p.peek(ctx)
		isDecl = startsLetBinding(t)
	}
	if isDecl {
		decl, names := p.parseVariableDeclaration(ctx|ctxDisallowIn, head, true)
		if p.tok == token.In || p.isContextual(token.Of) {
			forIn := p.tok == token.In
			op := p.tok.String()
			if len(decl.Declarations) > 1 {
				p.raiseAt(initStart, scanner.ErrForInOfLoopMultiBindings, op)
			}
			d := decl.Declarations[0]
			if d.Init != nil {
				_, simple := d.ID.(*ast.Identifier)
				if !forIn || decl.Kind != "var" || !simple || !ctx.webCompat() {
					p.raiseAt(initStart, scanner.ErrForInOfLoopInitializer, op)
				}
			}
			if await && forIn {
				p.raise(scanner.ErrForAwaitNotOf)
			}
			if !forIn && decl.Kind == "var" {
				p.checkForOfVar(head, names)
			}
			return p.parseForInOf(ctx, start, decl, forIn, await, head, labels)
		}
		if await {
			p.raise(scanner.ErrForAwaitNotOf)
		}
		for _, d := range decl.Declarations {
			p.checkInitializer(decl.Kind, d, initStart)
		}
		return p.parseForRest(ctx, start, decl, head, labels)
	}

	startsWithLet := p.tok == token.Let && !p.s.Escaped
	startsWithAsync := p.isContextual(token.Async)
	initCtx := ctx | ctxDisallowIn
	init := p.parseAssignmentCover(initCtx)

	if p.tok == token.In || p.isContextual(token.Of) {
		forIn := p.tok == token.In
		if !forIn {
			if startsWithLet {
				p.raiseAt(initStart, scanner.ErrForOfLet)
			}
			if id, ok := init.(*ast.Identifier); ok && startsWithAsync && !await && !p.isParenthesized(id) {
				p.raiseAt(initStart, scanner.ErrForOfAsync)
			}
		}
		if await && forIn {
			p.raise(scanner.ErrForAwaitNotOf)
		}
		var left ast.Pattern
		if p.isPatternCandidate(init) {
			left = p.toAssignmentPattern(ctx, init, initStart)
			p.clearCover(initStart)
		} else {
			p.checkCover(initStart)
			left = p.checkSimpleTarget(ctx, init, initStart, scanner.ErrInvalidLHSInFor, p.tok.String())
		}
		return p.parseForInOf(ctx, start, left, forIn, await, head, labels)
	}

	p.checkCover(initStart)
	if p.tok == token.Comma {
		list := []ast.Expression{init}
		for p.consumeOpt(initCtx, token.Comma) {
			list = append(list, p.parseAssignment(initCtx))
		}
		init = &ast.SequenceExpression{Range: p.finish(initStart), Expressions: list}
	}
	if await {
		p.raise(scanner.ErrForAwaitNotOf)
	}
	return p.parseForRest(ctx, start, init, head, labels)
}

func (p *parser) parseForRest(ctx context, start position, init ast.Node, head *scope, labels *labelSet) *ast.ForStatement {
	stmt := &ast.ForStatement{Init: init}
	p.consume(ctx, token.Semicolon)
	if p.tok != token.Semicolon {
		stmt.Test = p.parseExpression(ctx)
	}
	p.consume(ctx, token.Semicolon)
	if p.tok != token.RightParenthesis {
		stmt.Update = p.parseExpression(ctx)
	}
	p.consume(ctx, token.RightParenthesis)
	stmt.Body = p.parseStatement(ctx|ctxIteration, head, labels, stmtBody)
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseForInOf(ctx context, start position, left ast.Node, forIn, await bool, head *scope, labels *labelSet) ast.Statement {
	p.next(ctx)
	var right ast.Expression
	if forIn {
		right = p.parseExpression(ctx)
	} else {
		right = p.parseAssignment(ctx)
	}
	p.consume(ctx, token.RightParenthesis)
	body := p.parseStatement(ctx|ctxIteration, head, labels, stmtBody)
	if forIn {
		return &ast.ForInStatement{Range: p.finish(start), Left: left, Right: right, Body: body}
	}
	return &ast.ForOfStatement{Range: p.finish(start), Left: left, Right: right, Body: body, Await: await}
}

// parseJumpLabel parses the optional label of break or continue.
func (p *parser) parseJumpLabel(ctx context, labels *labelSet) (*ast.Identifier, *labelSet) {
	if p.s.NewLine || !p.tok.IsIdentifierLike() {
		return nil, nil
	}
	start := p.start()
	id := p.parseIdentifierReference(ctx)
	l := findLabel(labels, id.Name)
	if l == nil {
		p.raiseAt(start, scanner.ErrUnknownLabel, id.Name)
	}
	return id, l
}

func (p *parser) parseContinue(ctx context, labels *labelSet) *ast.ContinueStatement {
	start := p.start()
	settle(labels)
	p.next(ctx)
	id, l := p.parseJumpLabel(ctx, labels)
	switch {
	case l != nil && !l.iteration:
		p.raiseAt(start, scanner.ErrIllegalContinueLabel, id.Name)
	case id == nil && !ctx.has(ctxIteration):
		p.raiseAt(start, scanner.ErrIllegalContinue)
	}
	p.semicolon(ctx)
	return &ast.ContinueStatement{Range: p.finish(start), Label: id}
}

func (p *parser) parseBreak(ctx context, labels *labelSet) *ast.BreakStatement {
	start := p.start()
	settle(labels)
	p.next(ctx)
	id, _ := p.parseJumpLabel(ctx, labels)
	if id == nil && !ctx.has(ctxIteration|ctxSwitch) {
		p.raiseAt(start, scanner.ErrIllegalBreak)
	}
	p.semicolon(ctx)
	return &ast.BreakStatement{Range: p.finish(start), Label: id}
}

func (p *parser) parseReturn(ctx context) *ast.ReturnStatement {
	start := p.start()
	if !ctx.has(ctxReturn) {
		p.raise(scanner.ErrIllegalReturn)
	}
	p.next(ctx)
	stmt := &ast.ReturnStatement{}
	if !p.canInsertSemicolon() {
		stmt.Argument = p.parseExpression(ctx)
	}
	p.semicolon(ctx)
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseWith(ctx context, sc *scope, labels *labelSet) *ast.WithStatement {
	start := p.start()
	if ctx.has(ctxStrict) {
		p.raise(scanner.ErrStrictWith)
	}
	p.next(ctx)
	p.consume(ctx, token.LeftParenthesis)
	stmt := &ast.WithStatement{Object: p.parseExpression(ctx)}
	p.consume(ctx, token.RightParenthesis)
	stmt.Body = p.parseStatement(ctx, sc, labels, stmtBody)
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseSwitch(ctx context, sc *scope, labels *labelSet) *ast.SwitchStatement {
	start := p.start()
	p.next(ctx)
	p.consume(ctx, token.LeftParenthesis)
	stmt := &ast.SwitchStatement{Discriminant: p.parseExpression(ctx), Cases: []*ast.SwitchCase{}}
	p.consume(ctx, token.RightParenthesis)
	p.consume(ctx, token.LeftBrace)

	inner := ctx | ctxSwitch
	body := p.newScope(scopeBlock, sc)
	seenDefault := false
	for p.tok != token.RightBrace {
		caseStart := p.start()
		c := &ast.SwitchCase{Consequent: []ast.Statement{}}
		switch p.tok {
		case token.Case:
			p.next(ctx)
			c.Test = p.parseExpression(ctx)
		case token.Default:
			if seenDefault {
				p.raise(scanner.ErrMultipleDefaultsInSwitch)
			}
			seenDefault = true
			p.next(ctx)
		default:
			p.unexpected()
		}
		p.consume(ctx, token.Colon)
		for p.tok != token.Case && p.tok != token.Default && p.tok != token.RightBrace {
			if p.tok == token.EOF {
				p.raise(scanner.ErrUnexpectedEOF)
			}
			c.Consequent = append(c.Consequent, p.parseStatementListItem(inner, body, labels))
		}
		c.Range = p.finish(caseStart)
		stmt.Cases = append(stmt.Cases, c)
	}
	p.next(ctx)
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseThrow(ctx context) *ast.ThrowStatement {
	start := p.start()
	p.next(ctx)
	if p.s.NewLine {
		p.raiseAt(p.prevEnd, scanner.ErrNewlineAfterThrow)
	}
	stmt := &ast.ThrowStatement{Argument: p.parseExpression(ctx)}
	p.semicolon(ctx)
	stmt.Range = p.finish(start)
	return stmt
}

func (p *parser) parseTry(ctx context, sc *scope, labels *labelSet) *ast.TryStatement {
	start := p.start()
	p.next(ctx)
	stmt := &ast.TryStatement{Block: p.parseBlock(ctx, p.newScope(scopeBlock, sc), labels)}

	if p.tok == token.Catch {
		catchStart := p.start()
		p.next(ctx)
		clause := &ast.CatchClause{}
		params := p.newScope(scopeCatchParams, sc)
		if p.consumeOpt(ctx, token.LeftParenthesis) {
			b := &binder{scope: params, kind: bindCatchIdent}
			if p.tok == token.LeftBracket || p.tok == token.LeftBrace {
				b.kind = bindCatchPattern
			}
			clause.Param = p.parseBindingTarget(ctx, b)
			p.consume(ctx, token.RightParenthesis)
		}
		clause.Body = p.parseBlock(ctx, p.newScope(scopeCatchBody, params), labels)
		clause.Range = p.finish(catchStart)
		stmt.Handler = clause
	}
	if p.tok == token.Finally {
		p.next(ctx)
		stmt.Finalizer = p.parseBlock(ctx, p.newScope(scopeBlock, sc), labels)
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.raise(scanner.ErrNoCatchOrFinally)
	}
	stmt.Range = p.finish(start)
	return stmt
}
