package parser

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// pendCover records an error that is dropped if the enclosing literal
// becomes a pattern.
func (p *parser) pendCover(err *Error) {
	p.cover = append(p.cover, err)
}

// checkCover raises the first pending error at or after start. The
// expression starting there is a value, not a pattern.
func (p *parser) checkCover(start position) {
	if i := slices.IndexFunc(p.cover, func(e *Error) bool { return e.Index >= start.index }); i >= 0 {
		p.fail(p.cover[i])
	}
}

// clearCover drops pending errors at or after start after the expression
// there was reinterpreted as a pattern.
func (p *parser) clearCover(start position) {
	p.cover = slices.DeleteFunc(p.cover, func(e *Error) bool { return e.Index >= start.index })
}

// toAssignmentPattern reinterprets an object or array literal on the left
// of = or in a for-in/of head as an assignment pattern. The pattern nodes
// take over the ranges and children of the literal.
func (p *parser) toAssignmentPattern(ctx context, expr ast.Expression, at position) ast.Pattern {
	at = p.startOf(expr, at)
	switch e := expr.(type) {
	case *ast.Identifier:
		if ctx.has(ctxStrict) && isEvalOrArguments(e.Name) {
			p.raiseAt(at, scanner.ErrStrictEvalArguments)
		}
		return e

	case *ast.MemberExpression:
		return e

	case *ast.ArrayExpression:
		if p.isParenthesized(e) {
			p.raiseAt(at, scanner.ErrInvalidParenthesizedPattern)
		}
		elements := make([]ast.Pattern, len(e.Elements))
		for i, el := range e.Elements {
			switch el := el.(type) {
			case nil:
			case *ast.SpreadElement:
				elements[i] = p.toRestElement(ctx, el, i == len(e.Elements)-1, at, false)
			default:
				elements[i] = p.toAssignmentPattern(ctx, el, at)
			}
		}
		pat := &ast.ArrayPattern{Range: e.Range, Elements: elements}
		p.moveStart(e, pat)
		return pat

	case *ast.ObjectExpression:
		if p.isParenthesized(e) {
			p.raiseAt(at, scanner.ErrInvalidParenthesizedPattern)
		}
		for i, prop := range e.Properties {
			switch prop := prop.(type) {
			case *ast.Property:
				if prop.Method || prop.Kind != "init" {
					p.raiseAt(p.startOf(prop, at), scanner.ErrInvalidDestructuringTarget)
				}
				switch v := prop.Value.(type) {
				case *ast.AssignmentPattern:
					p.toAssignmentPattern(ctx, v.Left.(*ast.Identifier), p.startOf(v, at))
				case ast.Expression:
					prop.Value = p.toAssignmentPattern(ctx, v, at)
				}
			case *ast.SpreadElement:
				e.Properties[i] = p.toRestElement(ctx, prop, i == len(e.Properties)-1, at, true)
			}
		}
		pat := &ast.ObjectPattern{Range: e.Range, Properties: e.Properties}
		p.moveStart(e, pat)
		return pat

	case *ast.AssignmentExpression:
		if e.Operator != "=" || p.isParenthesized(e) {
			p.raiseAt(at, scanner.ErrInvalidDestructuringTarget)
		}
		pat := &ast.AssignmentPattern{Range: e.Range, Left: e.Left, Right: e.Right}
		p.moveStart(e, pat)
		return pat
	}
	p.raiseAt(at, scanner.ErrInvalidDestructuringTarget)
	return nil
}

func (p *parser) toRestElement(ctx context, spread *ast.SpreadElement, last bool, at position, object bool) *ast.RestElement {
	if !last {
		p.raiseAt(p.startOf(spread, at), scanner.ErrRestMustBeLast)
	}
	if comma, ok := p.trailingComma[spread]; ok {
		p.raiseAt(comma, scanner.ErrRestTrailingComma)
	}
	argAt := p.startOf(spread.Argument, at)
	if _, ok := spread.Argument.(*ast.AssignmentExpression); ok {
		p.raiseAt(argAt, scanner.ErrRestWithInitializer)
	}
	if object && isLiteralPattern(spread.Argument) {
		p.raiseAt(argAt, scanner.ErrInvalidRestBinding)
	}
	rest := &ast.RestElement{
		Range:    spread.Range,
		Argument: p.toAssignmentPattern(ctx, spread.Argument, argAt),
	}
	p.moveStart(spread, rest)
	return rest
}

// toArrowParams reinterprets a parenthesized list or async call arguments
// as arrow function parameters.
func (p *parser) toArrowParams(ctx context, items []ast.Expression, restComma position, at position) []ast.Pattern {
	params := make([]ast.Pattern, len(items))
	for i, item := range items {
		if spread, ok := item.(*ast.SpreadElement); ok {
			if i != len(items)-1 {
				p.raiseAt(p.startOf(spread, at), scanner.ErrRestMustBeLast)
			}
			if restComma.index >= 0 {
				p.raiseAt(restComma, scanner.ErrRestTrailingComma)
			}
			params[i] = &ast.RestElement{
				Range:    spread.Range,
				Argument: p.toBindingPattern(ctx, spread.Argument, at),
			}
			continue
		}
		params[i] = p.toBindingPattern(ctx, item, at)
	}
	return params
}

// toBindingPattern reinterprets an expression as a binding pattern. Unlike
// assignment patterns, bindings cannot contain member expressions or
// parenthesized parts.
func (p *parser) toBindingPattern(ctx context, expr ast.Node, at position) ast.Pattern {
	at = p.startOf(expr, at)
	if p.isParenthesized(expr) {
		p.raiseAt(at, scanner.ErrInvalidDestructuringTarget)
	}
	switch e := expr.(type) {
	case *ast.Identifier:
		p.checkBindingName(ctx, e.Name, at, false)
		return e

	case *ast.ArrayExpression, *ast.ObjectExpression:
		pat := p.toAssignmentPattern(ctx, e.(ast.Expression), at)
		p.checkBindingPattern(ctx, pat, at)
		return pat

	case *ast.AssignmentExpression:
		if e.Operator != "=" {
			p.raiseAt(at, scanner.ErrInvalidDestructuringTarget)
		}
		p.checkBindingPattern(ctx, e.Left, at)
		pat := &ast.AssignmentPattern{Range: e.Range, Left: e.Left, Right: e.Right}
		p.moveStart(e, pat)
		return pat
	}
	p.raiseAt(at, scanner.ErrInvalidDestructuringTarget)
	return nil
}

// checkBindingPattern validates an already built pattern as a binding.
func (p *parser) checkBindingPattern(ctx context, pat ast.Node, at position) {
	at = p.startOf(pat, at)
	if p.isParenthesized(pat) {
		p.raiseAt(at, scanner.ErrInvalidDestructuringTarget)
	}
	switch pt := pat.(type) {
	case *ast.Identifier:
		p.checkBindingName(ctx, pt.Name, at, false)
	case *ast.ArrayPattern:
		for _, el := range pt.Elements {
			if el != nil {
				p.checkBindingPattern(ctx, el, at)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range pt.Properties {
			switch prop := prop.(type) {
			case *ast.Property:
				p.checkBindingPattern(ctx, prop.Value, at)
			case *ast.RestElement:
				if _, ok := prop.Argument.(*ast.Identifier); !ok {
					p.raiseAt(at, scanner.ErrInvalidRestBinding)
				}
				p.checkBindingPattern(ctx, prop.Argument, at)
			}
		}
	case *ast.RestElement:
		p.checkBindingPattern(ctx, pt.Argument, at)
	case *ast.AssignmentPattern:
		p.checkBindingPattern(ctx, pt.Left, at)
	default:
		p.raiseAt(at, scanner.ErrInvalidDestructuringTarget)
	}
}

// boundIdentifiers calls f for every identifier a pattern binds, in source
// order.
func boundIdentifiers(pat ast.Node, f func(*ast.Identifier)) {
	switch pt := pat.(type) {
	case *ast.Identifier:
		f(pt)
	case *ast.ArrayPattern:
		for _, el := range pt.Elements {
			if el != nil {
				boundIdentifiers(el, f)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range pt.Properties {
			switch prop := prop.(type) {
			case *ast.Property:
				boundIdentifiers(prop.Value, f)
			case *ast.RestElement:
				boundIdentifiers(prop.Argument, f)
			}
		}
	case *ast.RestElement:
		boundIdentifiers(pt.Argument, f)
	case *ast.AssignmentPattern:
		boundIdentifiers(pt.Left, f)
	}
}

// binder declares the names of a binding pattern as they are parsed.
type binder struct {
	scope *scope // nil for names that are only collected
	kind  bindingKind
	names []boundName
}

type boundName struct {
	name string
	at   position
}

func (b *binder) lexical() bool {
	return b.kind&(bindLet|bindConst|bindClass) != 0
}

// checkBindingName rejects names that cannot be bound in ctx.
func (p *parser) checkBindingName(ctx context, name string, at position, lexical bool) {
	p.checkReserved(ctx, name, at)
	if ctx.has(ctxStrict) && isEvalOrArguments(name) {
		p.raiseAt(at, scanner.ErrStrictEvalArguments)
	}
	if lexical && name == "let" {
		p.raiseAt(at, scanner.ErrLetInLexicalBinding)
	}
}

func (p *parser) bind(ctx context, b *binder, id *ast.Identifier, at position) {
	p.checkBindingName(ctx, id.Name, at, b.lexical())
	if b.scope != nil {
		p.declare(ctx, b.scope, id, at, b.kind)
	}
	b.names = append(b.names, boundName{id.Name, at})
}

func (p *parser) parseBindingIdentifier(ctx context, b *binder) *ast.Identifier {
	start := p.start()
	if !p.tok.IsIdentifierLike() {
		p.unexpected()
	}
	id := &ast.Identifier{Name: p.s.Value}
	p.next(ctx)
	id.Range = p.finish(start)
	p.bind(ctx, b, id, start)
	return id
}

// parseBindingTarget parses a BindingIdentifier or BindingPattern.
func (p *parser) parseBindingTarget(ctx context, b *binder) ast.Pattern {
	switch p.tok {
	case token.LeftBracket:
		return p.parseArrayBindingPattern(ctx, b)
	case token.LeftBrace:
		return p.parseObjectBindingPattern(ctx, b)
	}
	return p.parseBindingIdentifier(ctx, b)
}

// parseBindingElement parses a binding target with an optional default.
func (p *parser) parseBindingElement(ctx context, b *binder) ast.Pattern {
	start := p.start()
	target := p.parseBindingTarget(ctx, b)
	if p.tok != token.Assign {
		return target
	}
	p.next(ctx)
	init := p.parseAssignment(ctx &^ ctxDisallowIn)
	return &ast.AssignmentPattern{Range: p.rangeOf(start, init), Left: target, Right: init}
}

func (p *parser) parseBindingRest(ctx context, b *binder, object bool, end token.Token) *ast.RestElement {
	start := p.start()
	p.next(ctx)
	var arg ast.Pattern
	if object {
		if p.tok == token.LeftBracket || p.tok == token.LeftBrace {
			p.raise(scanner.ErrInvalidRestBinding)
		}
		arg = p.parseBindingIdentifier(ctx, b)
	} else {
		arg = p.parseBindingTarget(ctx, b)
	}
	rest := &ast.RestElement{Range: p.finish(start), Argument: arg}
	switch p.tok {
	case end:
	case token.Assign:
		p.raise(scanner.ErrRestWithInitializer)
	case token.Comma:
		comma := p.start()
		p.next(ctx)
		if p.tok == end {
			p.raiseAt(comma, scanner.ErrRestTrailingComma)
		}
		p.raiseAt(start, scanner.ErrRestMustBeLast)
	default:
		p.unexpected()
	}
	return rest
}

func (p *parser) parseArrayBindingPattern(ctx context, b *binder) ast.Pattern {
	start := p.start()
	p.next(ctx)
	elements := []ast.Pattern{}
	for p.tok != token.RightBracket {
		switch p.tok {
		case token.Comma:
			p.next(ctx)
			elements = append(elements, nil)
			continue
		case token.Ellipsis:
			elements = append(elements, p.parseBindingRest(ctx, b, false, token.RightBracket))
			continue
		}
		elements = append(elements, p.parseBindingElement(ctx, b))
		if p.tok != token.RightBracket {
			p.consume(ctx, token.Comma)
		}
	}
	p.next(ctx)
	return &ast.ArrayPattern{Range: p.finish(start), Elements: elements}
}

func (p *parser) parseObjectBindingPattern(ctx context, b *binder) ast.Pattern {
	start := p.start()
	p.next(ctx)
	props := []ast.Node{}
	for p.tok != token.RightBrace {
		if p.tok == token.Ellipsis {
			props = append(props, p.parseBindingRest(ctx, b, true, token.RightBrace))
			continue
		}
		propStart := p.start()
		keyTok := p.tok
		key, computed := p.parsePropertyKey(ctx)
		prop := &ast.Property{Key: key, Kind: "init", Computed: computed}
		if p.consumeOpt(ctx, token.Colon) {
			prop.Value = p.parseBindingElement(ctx, b)
		} else {
			id, ok := key.(*ast.Identifier)
			switch {
			case keyTok == token.EscapedReserved:
				p.raiseAt(propStart, scanner.ErrInvalidEscapedKeyword)
			case !ok || !keyTok.IsIdentifierLike():
				p.raiseAt(propStart, scanner.ErrUnexpectedToken, p.src[propStart.index:p.prevEnd.index])
			}
			value := cloneIdentifier(id)
			p.bind(ctx, b, value, propStart)
			prop.Shorthand = true
			if p.tok == token.Assign {
				p.next(ctx)
				init := p.parseAssignment(ctx &^ ctxDisallowIn)
				prop.Value = &ast.AssignmentPattern{Range: p.rangeOf(propStart, init), Left: value, Right: init}
			} else {
				prop.Value = value
			}
		}
		prop.Range = p.finish(propStart)
		props = append(props, prop)
		if p.tok != token.RightBrace {
			p.consume(ctx, token.Comma)
		}
	}
	p.next(ctx)
	return &ast.ObjectPattern{Range: p.finish(start), Properties: props}
}
