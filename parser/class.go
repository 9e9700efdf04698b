package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

type privateKind uint8

const (
	privateField privateKind = iota
	privateMethod
	privateGetter
	privateSetter
)

type privateName struct {
	kind   privateKind
	static bool
}

type privateRef struct {
	name string
	at   position
}

// privateScope tracks the private names of one class body. References may
// come before declarations, so they are resolved when the body ends.
type privateScope struct {
	parent   *privateScope
	declared map[string]privateName
	refs     []privateRef
}

// usePrivate records a reference to #name.
func (p *parser) usePrivate(name string, at position) {
	if p.private == nil {
		p.raiseAt(at, scanner.ErrUndeclaredPrivateName, name)
	}
	p.private.refs = append(p.private.refs, privateRef{name, at})
}

func (p *parser) declarePrivate(name string, at position, n privateName) {
	if name == "constructor" {
		p.raiseAt(at, scanner.ErrPrivateNameConstructor)
	}
	if prev, ok := p.private.declared[name]; ok {
		// A getter and setter pair shares one name.
		pair := prev.static == n.static &&
			(prev.kind == privateGetter && n.kind == privateSetter ||
				prev.kind == privateSetter && n.kind == privateGetter)
		if !pair {
			p.raiseAt(at, scanner.ErrDuplicatePrivateName, name)
		}
		n.kind = privateMethod
	}
	p.private.declared[name] = n
}

// exitPrivate resolves the references of the innermost class body and
// passes the unresolved ones to the enclosing class.
func (p *parser) exitPrivate() {
	ps := p.private
	p.private = ps.parent
	for _, ref := range ps.refs {
		if _, ok := ps.declared[ref.name]; ok {
			continue
		}
		if ps.parent == nil {
			p.raiseAt(ref.at, scanner.ErrUndeclaredPrivateName, ref.name)
		}
		ps.parent.refs = append(ps.parent.refs, ref)
	}
}

// class is the parsed form shared by class declarations and expressions.
type class struct {
	id         *ast.Identifier
	superClass ast.Expression
	body       *ast.ClassBody
}

func (p *parser) parseClassDeclaration(ctx context, sc *scope, start position, optionalName bool) *ast.ClassDeclaration {
	c := p.parseClass(ctx, sc, optionalName)
	return &ast.ClassDeclaration{
		Range:      p.finish(start),
		ID:         c.id,
		SuperClass: c.superClass,
		Body:       c.body,
	}
}

func (p *parser) parseClassExpression(ctx context, start position) *ast.ClassExpression {
	c := p.parseClass(ctx, nil, true)
	p.assignable = false
	return &ast.ClassExpression{
		Range:      p.finish(start),
		ID:         c.id,
		SuperClass: c.superClass,
		Body:       c.body,
	}
}

// parseClass parses a class after which the name is declared in sc. A nil
// sc parses a class expression.
func (p *parser) parseClass(ctx context, sc *scope, optionalName bool) class {
	ctx |= ctxStrict
	if p.s.Escaped {
		p.raise(scanner.ErrInvalidEscapedKeyword)
	}
	p.next(ctx)

	var c class
	if p.tok.IsIdentifierLike() {
		b := &binder{}
		if sc != nil {
			b = &binder{scope: sc, kind: bindClass}
		}
		c.id = p.parseBindingIdentifier(ctx, b)
	} else if !optionalName {
		p.unexpected()
	}

	if p.tok == token.Extends {
		p.next(ctx)
		start := p.start()
		c.superClass = p.parseLeftHandSide(ctx)
		p.checkCover(start)
	}
	c.body = p.parseClassBody(ctx, c.superClass != nil)
	return c
}

func (p *parser) parseClassBody(ctx context, derived bool) *ast.ClassBody {
	start := p.start()
	p.consume(ctx, token.LeftBrace)

	p.private = &privateScope{parent: p.private, declared: map[string]privateName{}}
	elements := []ast.Node{}
	hasConstructor := false
	for p.tok != token.RightBrace {
		if p.consumeOpt(ctx, token.Semicolon) {
			continue
		}
		elements = append(elements, p.parseClassElement(ctx, derived, &hasConstructor))
	}
	p.exitPrivate()
	p.next(ctx)
	return &ast.ClassBody{Range: p.finish(start), Body: elements}
}

// fieldContext is the context of field initializers and static blocks.
func (c context) fieldContext() context {
	c &^= ctxYield | ctxAwait | ctxParams | ctxDisallowIn | ctxIteration | ctxSwitch |
		ctxReturn | ctxSuperCall | ctxStaticBlock
	return c | ctxSuperProperty | ctxNewTarget | ctxClassField
}

func (p *parser) parseClassElement(ctx context, derived bool, hasConstructor *bool) ast.Node {
	start := p.start()
	static := false
	if p.isContextual(token.Static) && p.propertyModifierFollows(ctx, true) {
		p.next(ctx)
		if p.tok == token.LeftBrace {
			return p.parseStaticBlock(ctx, start)
		}
		static = true
	}

	async, generator := false, false
	kind := methodPlain
	if p.isContextual(token.Async) && p.propertyModifierFollows(ctx, false) {
		async = true
		p.next(ctx)
	}
	if p.tok == token.Multiply {
		generator = true
		p.next(ctx)
	}
	if !async && !generator && (p.isContextual(token.Get) || p.isContextual(token.Set)) && p.propertyModifierFollows(ctx, true) {
		kind = methodKind(p.s.Value)
		p.next(ctx)
	}

	keyStart := p.start()
	var (
		key      ast.Expression
		computed bool
		private  string
	)
	if p.tok == token.PrivateIdentifier {
		private = p.s.Value
		p.next(ctx)
		key = &ast.PrivateIdentifier{Range: p.finish(keyStart), Name: private}
	} else {
		key, computed = p.parsePropertyKey(ctx)
	}
	name := ""
	if !computed && private == "" {
		name = propertyName(key)
	}
	if static && name == "prototype" {
		p.raiseAt(keyStart, scanner.ErrStaticPrototype)
	}

	if p.tok == token.LeftParenthesis {
		if !static && name == "constructor" {
			switch {
			case kind == methodGet:
				p.raiseAt(keyStart, scanner.ErrInvalidConstructor, " getter")
			case kind == methodSet:
				p.raiseAt(keyStart, scanner.ErrInvalidConstructor, " setter")
			case generator:
				p.raiseAt(keyStart, scanner.ErrInvalidConstructor, " generator")
			case async:
				p.raiseAt(keyStart, scanner.ErrInvalidConstructor, "n async method")
			}
			if *hasConstructor {
				p.raiseAt(keyStart, scanner.ErrDuplicateConstructor)
			}
			*hasConstructor = true
			kind = methodConstructor
		}
		if private != "" {
			pk := privateMethod
			switch kind {
			case methodGet:
				pk = privateGetter
			case methodSet:
				pk = privateSetter
			}
			p.declarePrivate(private, keyStart, privateName{pk, static})
		}
		value := p.parseMethod(ctx, kind, async, generator, derived)
		return &ast.MethodDefinition{
			Range:    p.finish(start),
			Key:      key,
			Value:    value,
			Kind:     string(kind),
			Computed: computed,
			Static:   static,
		}
	}

	if async || generator || kind != methodPlain {
		p.unexpected()
	}
	if name == "constructor" {
		p.raiseAt(keyStart, scanner.ErrInvalidFieldConstructor)
	}
	if private != "" {
		p.declarePrivate(private, keyStart, privateName{privateField, static})
	}
	field := &ast.PropertyDefinition{Key: key, Computed: computed, Static: static}
	if p.tok == token.Assign {
		inner := ctx.fieldContext()
		p.next(inner)
		field.Value = p.parseAssignment(inner)
	}
	p.semicolon(ctx)
	field.Range = p.finish(start)
	return field
}

func (p *parser) parseStaticBlock(ctx context, start position) *ast.StaticBlock {
	inner := ctx.fieldContext() | ctxStaticBlock
	p.next(inner)
	sc := p.newScope(scopeFunctionBody, nil)
	body := p.parseStatementList(inner, sc, token.RightBrace, nil)
	p.next(ctx)
	return &ast.StaticBlock{Range: p.finish(start), Body: body}
}
