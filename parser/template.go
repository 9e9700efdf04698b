package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// parseTemplate parses a template literal starting at the current template
// token. An invalid escape fails an untagged template and leaves a tagged
// template element without a cooked value.
func (p *parser) parseTemplate(ctx context, tagged bool) *ast.TemplateLiteral {
	start := p.start()
	tmpl := &ast.TemplateLiteral{
		Quasis:      []*ast.TemplateElement{},
		Expressions: []ast.Expression{},
	}
	for {
		elem := p.templateElement(tagged)
		tmpl.Quasis = append(tmpl.Quasis, elem)
		if elem.Tail {
			p.next(ctx)
			break
		}

		p.next(ctx &^ ctxDisallowIn)
		tmpl.Expressions = append(tmpl.Expressions, p.parseExpression(ctx&^ctxDisallowIn))
		if p.tok != token.RightBrace {
			p.unexpected()
		}
		p.s.ScanTemplateContinuation()
		if p.s.Err != nil {
			panic(bailout{p.s.Err})
		}
		p.tok = p.s.Kind
	}
	tmpl.Range = p.finish(start)
	return tmpl
}

// templateElement builds the element for the current template token. Its
// range excludes the delimiters: ` or } before, and ` or ${ after.
func (p *parser) templateElement(tagged bool) *ast.TemplateElement {
	tail := p.tok == token.NoSubstitutionTemplate || p.tok == token.TemplateTail
	elem := &ast.TemplateElement{Tail: tail}
	elem.Value.Raw = p.s.TemplateRaw
	if p.s.TemplateErr != nil {
		if !tagged {
			p.fail(p.s.TemplateErr)
		}
	} else {
		cooked := p.s.Value
		elem.Value.Cooked = &cooked
	}

	if p.opts.Loc {
		closing := 2
		if tail {
			closing = 1
		}
		line, column := p.s.Cursor()
		elem.Range = &ast.Range{
			Start: p.s.Start + 1,
			End:   p.s.End - closing,
			Loc: &ast.SourceLocation{
				Start: ast.Position{Line: p.s.Line, Column: p.s.Column + 1},
				End:   ast.Position{Line: line, Column: column - closing},
			},
		}
	}
	return elem
}
