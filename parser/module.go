package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// exportTable collects the exported names of a module and the local
// bindings that export lists refer to. Locals are checked once the whole
// module has been parsed, since they may be declared after the export.
type exportTable struct {
	names  map[string]struct{}
	locals []boundName
}

func newExportTable() *exportTable {
	return &exportTable{names: map[string]struct{}{}}
}

func (e *exportTable) add(p *parser, name string, at position) {
	if _, ok := e.names[name]; ok {
		p.raiseAt(at, scanner.ErrDuplicateExport, name)
	}
	e.names[name] = struct{}{}
}

func (e *exportTable) checkLocals(p *parser, sc *scope) {
	for _, l := range e.locals {
		if !sc.has(l.name) {
			p.raiseAt(l.at, scanner.ErrUndefinedExport, l.name)
		}
	}
}

// moduleExportName returns the name of an identifier or string specifier.
func moduleExportName(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Identifier:
		return n.Name
	case *ast.Literal:
		s, _ := n.Value.(string)
		return s
	}
	return ""
}

func (p *parser) parseModuleExportName(ctx context) ast.Node {
	if p.tok == token.String {
		return p.parseLiteral(ctx)
	}
	return p.parseIdentifierName(ctx)
}

func (p *parser) parseModuleSource(ctx context) *ast.Literal {
	if p.tok != token.String {
		p.unexpected()
	}
	return p.parseLiteral(ctx)
}

func (p *parser) expectFrom(ctx context) {
	if !p.isContextual(token.From) {
		p.unexpected()
	}
	p.next(ctx)
}

// parseImportAttributes parses an optional with clause after a module
// source.
func (p *parser) parseImportAttributes(ctx context) []*ast.ImportAttribute {
	if p.tok != token.With || !ctx.has(ctxNext) {
		return nil
	}
	p.next(ctx)
	p.consume(ctx, token.LeftBrace)
	attrs := []*ast.ImportAttribute{}
	seen := map[string]struct{}{}
	for p.tok != token.RightBrace {
		start := p.start()
		key := p.parseModuleExportName(ctx)
		name := moduleExportName(key)
		if _, ok := seen[name]; ok {
			p.raiseAt(start, scanner.ErrInvalidImportAttribute, name)
		}
		seen[name] = struct{}{}
		p.consume(ctx, token.Colon)
		attr := &ast.ImportAttribute{Key: key, Value: p.parseModuleSource(ctx)}
		attr.Range = p.finish(start)
		attrs = append(attrs, attr)
		if p.tok != token.RightBrace {
			p.consume(ctx, token.Comma)
		}
	}
	p.next(ctx)
	return attrs
}

func (p *parser) parseImport(ctx context, sc *scope) *ast.ImportDeclaration {
	start := p.start()
	p.next(ctx)
	decl := &ast.ImportDeclaration{Specifiers: []ast.Node{}}
	b := &binder{scope: sc, kind: bindImport}

	if p.tok != token.String {
		if p.tok.IsIdentifierLike() {
			specStart := p.start()
			local := p.parseBindingIdentifier(ctx, b)
			decl.Specifiers = append(decl.Specifiers, &ast.ImportDefaultSpecifier{
				Range: p.finish(specStart),
				Local: local,
			})
			if p.consumeOpt(ctx, token.Comma) && p.tok != token.Multiply && p.tok != token.LeftBrace {
				p.unexpected()
			}
		}
		switch p.tok {
		case token.Multiply:
			specStart := p.start()
			p.next(ctx)
			if !p.isContextual(token.As) {
				p.unexpected()
			}
			p.next(ctx)
			local := p.parseBindingIdentifier(ctx, b)
			decl.Specifiers = append(decl.Specifiers, &ast.ImportNamespaceSpecifier{
				Range: p.finish(specStart),
				Local: local,
			})
		case token.LeftBrace:
			decl.Specifiers = append(decl.Specifiers, p.parseImportSpecifiers(ctx, b)...)
		}
		p.expectFrom(ctx)
	}

	decl.Source = p.parseModuleSource(ctx)
	decl.Attributes = p.parseImportAttributes(ctx)
	p.semicolon(ctx)
	decl.Range = p.finish(start)
	return decl
}

func (p *parser) parseImportSpecifiers(ctx context, b *binder) []ast.Node {
	p.next(ctx)
	specs := []ast.Node{}
	for p.tok != token.RightBrace {
		start := p.start()
		identifier := p.tok != token.String
		spec := &ast.ImportSpecifier{Imported: p.parseModuleExportName(ctx)}
		if p.isContextual(token.As) {
			p.next(ctx)
			spec.Local = p.parseBindingIdentifier(ctx, b)
		} else {
			if !identifier {
				p.unexpected()
			}
			spec.Local = cloneIdentifier(spec.Imported.(*ast.Identifier))
			p.bind(ctx, b, spec.Local, start)
		}
		spec.Range = p.finish(start)
		specs = append(specs, spec)
		if p.tok != token.RightBrace {
			p.consume(ctx, token.Comma)
		}
	}
	p.next(ctx)
	return specs
}

func (p *parser) parseExport(ctx context, sc *scope) ast.Statement {
	start := p.start()
	p.next(ctx)

	switch {
	case p.tok == token.Multiply:
		p.next(ctx)
		decl := &ast.ExportAllDeclaration{}
		if p.isContextual(token.As) {
			p.next(ctx)
			nameStart := p.start()
			decl.Exported = p.parseModuleExportName(ctx)
			p.exports.add(p, moduleExportName(decl.Exported), nameStart)
		}
		p.expectFrom(ctx)
		decl.Source = p.parseModuleSource(ctx)
		decl.Attributes = p.parseImportAttributes(ctx)
		p.semicolon(ctx)
		decl.Range = p.finish(start)
		return decl

	case p.tok == token.Default:
		p.exports.add(p, "default", p.start())
		p.next(ctx)
		declStart := p.start()
		var decl ast.Node
		switch {
		case p.tok == token.Function:
			decl = p.parseFunctionDeclaration(ctx, sc, declStart, false, true)
		case p.startsAsyncFunction(ctx):
			p.next(ctx)
			decl = p.parseFunctionDeclaration(ctx, sc, declStart, true, true)
		case p.tok == token.Class:
			decl = p.parseClassDeclaration(ctx, sc, declStart, true)
		default:
			decl = p.parseAssignment(ctx)
			p.semicolon(ctx)
		}
		return &ast.ExportDefaultDeclaration{Range: p.finish(start), Declaration: decl}

	case p.tok == token.LeftBrace:
		return p.parseExportList(ctx, start)
	}

	declStart := p.start()
	var decl ast.Statement
	switch {
	case p.tok == token.Var || p.tok == token.Let || p.tok == token.Const:
		v := p.parseVariableStatement(ctx, sc)
		for _, d := range v.Declarations {
			boundIdentifiers(d.ID, func(id *ast.Identifier) {
				p.exports.add(p, id.Name, declStart)
			})
		}
		decl = v
	case p.tok == token.Function:
		fn := p.parseFunctionDeclaration(ctx, sc, declStart, false, false)
		p.exports.add(p, fn.ID.Name, declStart)
		decl = fn
	case p.startsAsyncFunction(ctx):
		p.next(ctx)
		fn := p.parseFunctionDeclaration(ctx, sc, declStart, true, false)
		p.exports.add(p, fn.ID.Name, declStart)
		decl = fn
	case p.tok == token.Class:
		c := p.parseClassDeclaration(ctx, sc, declStart, false)
		p.exports.add(p, c.ID.Name, declStart)
		decl = c
	default:
		p.unexpected()
	}
	return &ast.ExportNamedDeclaration{
		Range:       p.finish(start),
		Declaration: decl,
		Specifiers:  []*ast.ExportSpecifier{},
	}
}

// parseExportList parses export { ... } with an optional from clause. Without
// one, the local names must be bindings of this module.
func (p *parser) parseExportList(ctx context, start position) *ast.ExportNamedDeclaration {
	p.next(ctx)
	decl := &ast.ExportNamedDeclaration{Specifiers: []*ast.ExportSpecifier{}}
	var (
		locals   []boundName
		invalid  *Error
		exported []boundName
	)
	for p.tok != token.RightBrace {
		specStart := p.start()
		localTok := p.tok
		spec := &ast.ExportSpecifier{Local: p.parseModuleExportName(ctx)}
		name := moduleExportName(spec.Local)
		switch {
		case localTok == token.String:
			if invalid == nil {
				invalid = p.errorAt(specStart, scanner.ErrInvalidExportName)
			}
		case localTok.IsKeyword() || localTok == token.EscapedReserved:
			if invalid == nil {
				invalid = p.errorAt(specStart, scanner.ErrReservedWord, name)
			}
		}
		locals = append(locals, boundName{name, specStart})

		exportStart := specStart
		if p.isContextual(token.As) {
			p.next(ctx)
			exportStart = p.start()
			spec.Exported = p.parseModuleExportName(ctx)
		} else if id, ok := spec.Local.(*ast.Identifier); ok {
			spec.Exported = cloneIdentifier(id)
		} else {
			spec.Exported = spec.Local
		}
		exported = append(exported, boundName{moduleExportName(spec.Exported), exportStart})
		spec.Range = p.finish(specStart)
		decl.Specifiers = append(decl.Specifiers, spec)
		if p.tok != token.RightBrace {
			p.consume(ctx, token.Comma)
		}
	}
	p.next(ctx)

	if p.isContextual(token.From) {
		p.next(ctx)
		decl.Source = p.parseModuleSource(ctx)
		decl.Attributes = p.parseImportAttributes(ctx)
	} else {
		if invalid != nil {
			p.fail(invalid)
		}
		p.exports.locals = append(p.exports.locals, locals...)
	}
	for _, e := range exported {
		p.exports.add(p, e.name, e.at)
	}
	p.semicolon(ctx)
	decl.Range = p.finish(start)
	return decl
}
