package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

type methodKind string

const (
	methodInit        methodKind = "init"
	methodGet         methodKind = "get"
	methodSet         methodKind = "set"
	methodPlain       methodKind = "method"
	methodConstructor methodKind = "constructor"
)

// function collects what is known about a function while its parameters
// and body are parsed.
type function struct {
	async, generator bool
	// unique requires unique parameter names: methods and arrows, and any
	// function with a non-simple parameter list or a strict body.
	unique bool

	name   *ast.Identifier
	nameAt position
	// nameCtx is the context the name is bound in, used to recheck the
	// name if the body turns out to be strict.
	nameCtx context

	params []ast.Pattern
	simple bool
	binder binder
	body   *ast.BlockStatement
}

// parseFunctionDeclaration parses a function declaration after any async
// keyword. The name is declared in sc with kind.
func (p *parser) parseFunctionDeclaration(ctx context, sc *scope, start position, async bool, optionalName bool) *ast.FunctionDeclaration {
	p.consume(ctx, token.Function)
	fn := &function{async: async}
	if p.consumeOpt(ctx, token.Multiply) {
		fn.generator = true
	}
	if p.tok != token.LeftParenthesis || !optionalName {
		fn.nameAt = p.start()
		fn.nameCtx = ctx
		b := &binder{scope: sc, kind: p.functionBindingKind(sc, fn)}
		fn.name = p.parseBindingIdentifier(ctx, b)
	}
	p.parseFunctionRest(ctx.functionBody(fn.async, fn.generator), fn)
	return &ast.FunctionDeclaration{
		Range:     p.finish(start),
		ID:        fn.name,
		Params:    fn.params,
		Body:      fn.body,
		Generator: fn.generator,
		Async:     fn.async,
	}
}

// functionBindingKind decides how a function declaration binds its name:
// like var at the top of a script or function body, lexically in blocks and
// at the top of a module. Only plain functions may be redeclared in sloppy
// blocks.
func (p *parser) functionBindingKind(sc *scope, fn *function) bindingKind {
	switch {
	case sc.kind == scopeGlobal || sc.kind == scopeFunctionBody:
		return bindFunctionVar
	case fn.async || fn.generator:
		return bindLet
	}
	return bindFunctionLexical
}

func (p *parser) parseFunctionExpression(ctx context, start position, async bool) *ast.FunctionExpression {
	p.consume(ctx, token.Function)
	fn := &function{async: async}
	if p.consumeOpt(ctx, token.Multiply) {
		fn.generator = true
	}
	inner := ctx.functionBody(fn.async, fn.generator)
	if p.tok != token.LeftParenthesis {
		// The name of a function expression is bound inside the function.
		fn.nameAt = p.start()
		fn.nameCtx = inner &^ ctxParams
		fn.name = p.parseBindingIdentifier(fn.nameCtx, &binder{})
	}
	p.parseFunctionRest(inner, fn)
	p.assignable = false
	return &ast.FunctionExpression{
		Range:     p.finish(start),
		ID:        fn.name,
		Params:    fn.params,
		Body:      fn.body,
		Generator: fn.generator,
		Async:     fn.async,
	}
}

// parseMethod parses the parameters and body of an object or class method.
// The function expression starts at the parameter list.
func (p *parser) parseMethod(ctx context, kind methodKind, async, generator, derived bool) *ast.FunctionExpression {
	start := p.start()
	fn := &function{async: async, generator: generator, unique: true}
	inner := ctx.functionBody(async, generator) | ctxSuperProperty
	if kind == methodConstructor && derived {
		inner |= ctxSuperCall
	}
	p.parseFunctionRest(inner, fn)

	switch kind {
	case methodGet:
		if len(fn.params) != 0 {
			p.raiseAt(start, scanner.ErrBadGetterArity)
		}
	case methodSet:
		if len(fn.params) != 1 {
			p.raiseAt(start, scanner.ErrBadSetterArity)
		}
		if _, ok := fn.params[0].(*ast.RestElement); ok {
			p.raiseAt(start, scanner.ErrBadSetterRestParameter)
		}
	}
	p.assignable = false
	return &ast.FunctionExpression{
		Range:     p.finish(start),
		Params:    fn.params,
		Body:      fn.body,
		Generator: generator,
		Async:     async,
	}
}

// parseFunctionRest parses formal parameters and the function body with
// ctx already set up for the function.
func (p *parser) parseFunctionRest(ctx context, fn *function) {
	yieldPos, awaitPos, awaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	defer func() {
		p.yieldPos, p.awaitPos, p.awaitIdentPos = yieldPos, awaitPos, awaitIdentPos
	}()

	params := p.newScope(scopeFunctionParams, nil)
	fn.binder = binder{scope: params, kind: bindParam}
	fn.params, fn.simple = p.parseFormalParameters(ctx|ctxParams, &fn.binder)
	if fn.unique || !fn.simple {
		if params.scopeError != nil {
			p.fail(params.scopeError)
		}
	}

	bodyStart := p.start()
	body := p.newScope(scopeFunctionBody, params)
	p.consume(ctx, token.LeftBrace)
	stmts, strictAt := p.parseDirectivesAndStatements(ctx, body, token.RightBrace, nil)
	p.next(ctx)
	fn.body = &ast.BlockStatement{Range: p.finish(bodyStart), Body: stmts}

	if strictAt != nil {
		p.checkStrictFunction(ctx|ctxStrict, fn, params, *strictAt)
	}
	if ctx.has(ctxStrict) && params.scopeError != nil {
		p.fail(params.scopeError)
	}
}

// checkStrictFunction applies strict mode rules to the name and parameters
// of a function whose body has a "use strict" directive at strictAt.
func (p *parser) checkStrictFunction(ctx context, fn *function, params *scope, strictAt position) {
	if !fn.simple {
		p.raiseAt(strictAt, scanner.ErrUseStrictNonSimpleParams)
	}
	if params.scopeError != nil {
		p.fail(params.scopeError)
	}
	if fn.name != nil {
		p.checkBindingName(fn.nameCtx|ctxStrict, fn.name.Name, fn.nameAt, false)
	}
	for _, n := range fn.binder.names {
		p.checkBindingName(ctx&^ctxParams, n.name, n.at, false)
	}
}

// parseFormalParameters parses a parenthesized parameter list. The list is
// simple when it has only plain identifiers.
func (p *parser) parseFormalParameters(ctx context, b *binder) ([]ast.Pattern, bool) {
	p.consume(ctx, token.LeftParenthesis)
	params := []ast.Pattern{}
	simple := true
	for p.tok != token.RightParenthesis {
		if p.tok == token.Ellipsis {
			params = append(params, p.parseBindingRest(ctx, b, false, token.RightParenthesis))
			simple = false
			break
		}
		param := p.parseBindingElement(ctx, b)
		if _, ok := param.(*ast.Identifier); !ok {
			simple = false
		}
		params = append(params, param)
		if p.tok != token.RightParenthesis {
			p.consume(ctx, token.Comma)
		}
	}
	p.consume(ctx, token.RightParenthesis)
	return params, simple
}

// arrowBody returns the context of an arrow function body. Arrows keep
// the super, new.target and arguments rules of the enclosing code.
func (c context) arrowBody(async bool) context {
	c &^= ctxYield | ctxAwait | ctxParams | ctxIteration | ctxSwitch | ctxStaticBlock
	c |= ctxReturn
	if async {
		c |= ctxAwait
	}
	return c
}

// parseArrow parses the body of an arrow function whose parameters have
// been reinterpreted, with the current token at =>.
func (p *parser) parseArrow(ctx context, start position, params []ast.Pattern, async bool) *ast.ArrowFunctionExpression {
	inner := ctx.arrowBody(async)
	sc := p.newScope(scopeArrowParams, nil)
	simple := true
	var names []boundName
	for _, param := range params {
		if _, ok := param.(*ast.Identifier); !ok {
			simple = false
		}
		boundIdentifiers(param, func(id *ast.Identifier) {
			p.checkBindingName(inner, id.Name, start, false)
			p.declare(inner, sc, id, start, bindArrowParam)
			names = append(names, boundName{id.Name, start})
		})
	}
	p.next(inner)

	arrow := &ast.ArrowFunctionExpression{Params: params, Async: async}

	yieldPos, awaitPos, awaitIdentPos := p.yieldPos, p.awaitPos, p.awaitIdentPos
	p.yieldPos, p.awaitPos, p.awaitIdentPos = 0, 0, 0
	if p.tok == token.LeftBrace {
		bodyStart := p.start()
		body := p.newScope(scopeFunctionBody, sc)
		inner &^= ctxDisallowIn
		p.next(inner)
		stmts, strictAt := p.parseDirectivesAndStatements(inner, body, token.RightBrace, nil)
		p.next(ctx)
		arrow.Body = &ast.BlockStatement{Range: p.finish(bodyStart), Body: stmts}
		if strictAt != nil {
			fn := &function{simple: simple, binder: binder{names: names}}
			p.checkStrictFunction(inner|ctxStrict, fn, sc, *strictAt)
		}
	} else {
		arrow.Body = p.parseAssignment(inner)
		arrow.Expression = true
	}
	p.yieldPos, p.awaitPos, p.awaitIdentPos = yieldPos, awaitPos, awaitIdentPos

	arrow.Range = p.finish(start)
	p.assignable = false
	return arrow
}
