package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// Error is the type of every parse failure.
type Error = scanner.Error

// MaxDepth bounds syntactic nesting. Deeper input fails with
// scanner.ErrTooDeeplyNested.
const MaxDepth = 4096

// Options select the goal symbol and output shape of a parse. The zero
// value parses a sloppy script with web compatibility semantics.
type Options struct {
	// Module parses with the Module goal: strict code, import and export
	// declarations, top-level await and import.meta.
	Module bool
	// Next enables stage features: import attributes.
	Next bool
	// Loc attaches start, end and loc to every node.
	Loc bool
	// DisableWebCompat turns off the web browser compatibility grammar:
	// HTML comments, labelled and if-body function declarations, duplicate
	// block functions and catch parameter var redeclarations.
	DisableWebCompat bool
	// Directives sets ExpressionStatement.Directive in directive prologues.
	Directives bool
	// Raw attaches the source text of every literal.
	Raw bool
	// GlobalReturn allows return statements at the top level.
	GlobalReturn bool
	// ImpliedStrict parses a script as strict mode code.
	ImpliedStrict bool
}

// ParseScript parses src with the Script goal.
func ParseScript(src string, opts *Options) (*ast.Program, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.Module = false
	return newParser(src, o).parse()
}

// ParseModule parses src with the Module goal.
func ParseModule(src string, opts *Options) (*ast.Program, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.Module = true
	return newParser(src, o).parse()
}

// Parse parses src with the goal selected by opts.Module.
func Parse(src string, opts *Options) (*ast.Program, error) {
	if opts != nil && opts.Module {
		return ParseModule(src, opts)
	}
	return ParseScript(src, opts)
}

type position struct {
	index, line, column int
}

type parser struct {
	s    *scanner.Scanner
	src  string
	opts Options

	tok     token.Token
	prevEnd position

	// assignable reports whether the most recently parsed expression is a
	// simple assignment target.
	assignable bool

	// First yield and await expressions and await identifiers seen, as
	// offset+1, used to reject them in arrow parameters parsed before the
	// arrow was known.
	yieldPos, awaitPos, awaitIdentPos int
	// potentialArrowAt is the offset of the expression start where an arrow
	// function may begin.
	potentialArrowAt int

	// cover holds errors that only apply if an object or array literal is
	// not reinterpreted as a pattern, in source order.
	cover []*Error
	// Expressions that were written in parentheses.
	parens map[ast.Node]struct{}
	// Spread elements followed by a comma, which cannot become rest elements.
	trailingComma map[*ast.SpreadElement]position
	// Start positions of literal parts when nodes carry no ranges, used to
	// place errors found while reinterpreting them as patterns.
	starts map[ast.Node]position

	scopes  *arena[scope]
	labels  *arena[labelSet]
	private *privateScope
	exports *exportTable

	depth int
}

func newParser(src string, opts Options) *parser {
	return &parser{
		s:                scanner.NewScanner(src),
		src:              src,
		opts:             opts,
		parens:           map[ast.Node]struct{}{},
		trailingComma:    map[*ast.SpreadElement]position{},
		starts:           map[ast.Node]position{},
		scopes:           newArena[scope](16),
		labels:           newArena[labelSet](8),
		potentialArrowAt: -1,
	}
}

// bailout carries a hard error to the entry point.
type bailout struct{ err *Error }

func (p *parser) parse() (program *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			program, err = nil, b.err
		}
	}()

	ctx := context(0)
	sourceType := "script"
	kind := scopeGlobal
	if p.opts.Module {
		ctx |= ctxModule | ctxStrict | ctxAwait
		sourceType = "module"
		kind = scopeModule
		p.exports = newExportTable()
	}
	if p.opts.ImpliedStrict {
		ctx |= ctxStrict
	}
	if p.opts.DisableWebCompat {
		ctx |= ctxDisableWebCompat
	}
	if p.opts.Next {
		ctx |= ctxNext
	}
	if p.opts.GlobalReturn {
		ctx |= ctxReturn
	}

	sc := p.newScope(kind, nil)
	start := position{0, 1, 0}
	p.next(ctx)
	body, _ := p.parseDirectivesAndStatements(ctx, sc, token.EOF, nil)
	if p.exports != nil {
		p.exports.checkLocals(p, sc)
	}

	// The program spans the whole input, trailing trivia included.
	line, column := p.s.Cursor()
	p.prevEnd = position{len(p.src), line, column}
	return &ast.Program{
		Range:      p.finish(start),
		SourceType: sourceType,
		Body:       body,
	}, nil
}

// next advances to the next token, failing on a lexical error.
func (p *parser) next(ctx context) {
	line, column := p.s.Cursor()
	p.prevEnd = position{p.s.Pos(), line, column}
	p.tok = p.s.Next(ctx.mode())
	if p.s.Err != nil {
		panic(bailout{p.s.Err})
	}
}

func (p *parser) start() position {
	return position{p.s.Start, p.s.Line, p.s.Column}
}

// finish returns the range from start to the end of the previous token, or
// nil when locations are off.
func (p *parser) finish(start position) *ast.Range {
	if !p.opts.Loc {
		return nil
	}
	return &ast.Range{
		Start: start.index,
		End:   p.prevEnd.index,
		Loc: &ast.SourceLocation{
			Start: ast.Position{Line: start.line, Column: start.column},
			End:   ast.Position{Line: p.prevEnd.line, Column: p.prevEnd.column},
		},
	}
}

// rangeOf spans from the start of one finished node to the end of another.
func (p *parser) rangeOf(start position, end ast.Node) *ast.Range {
	if !p.opts.Loc {
		return nil
	}
	r := end.Span()
	return &ast.Range{
		Start: start.index,
		End:   r.End,
		Loc: &ast.SourceLocation{
			Start: ast.Position{Line: start.line, Column: start.column},
			End:   r.Loc.End,
		},
	}
}

func (p *parser) consume(ctx context, t token.Token) {
	if p.tok != t {
		if p.tok == token.EOF {
			p.raise(scanner.ErrUnexpectedEOF)
		}
		p.raise(scanner.ErrExpectedToken, t.String())
	}
	p.next(ctx)
}

func (p *parser) consumeOpt(ctx context, t token.Token) bool {
	if p.tok != t {
		return false
	}
	p.next(ctx)
	return true
}

// isContextual reports whether the current token is the unescaped
// contextual word t.
func (p *parser) isContextual(t token.Token) bool {
	return p.tok == t && !p.s.Escaped
}

func (p *parser) canInsertSemicolon() bool {
	return p.tok == token.Semicolon || p.tok == token.RightBrace || p.tok == token.EOF || p.s.NewLine
}

// semicolon consumes a statement terminator, applying automatic semicolon
// insertion.
func (p *parser) semicolon(ctx context) {
	if p.tok == token.Semicolon {
		p.next(ctx)
		return
	}
	if p.tok == token.RightBrace || p.tok == token.EOF || p.s.NewLine {
		return
	}
	p.unexpected()
}

// peek scans one token ahead and rewinds.
func (p *parser) peek(ctx context) (token.Token, bool) {
	c := p.s.Checkpoint()
	t := p.s.Next(ctx.mode())
	newLine := p.s.NewLine
	p.s.Rewind(c)
	return t, newLine
}

func (p *parser) enter() {
	if p.depth++; p.depth > MaxDepth {
		p.raise(scanner.ErrTooDeeplyNested)
	}
}

func (p *parser) leave() { p.depth-- }

func (p *parser) isParenthesized(n ast.Node) bool {
	_, ok := p.parens[n]
	return ok
}

func (p *parser) markStart(n ast.Node, at position) {
	if !p.opts.Loc {
		p.starts[n] = at
	}
}

// moveStart gives a pattern node built from an expression the position
// of that expression.
func (p *parser) moveStart(from, to ast.Node) {
	if at, ok := p.starts[from]; ok {
		p.starts[to] = at
	}
}

// startOf returns where n begins, or fallback when that is unknown.
func (p *parser) startOf(n ast.Node, fallback position) position {
	if r := n.Span(); r != nil {
		return position{r.Start, r.Loc.Start.Line, r.Loc.Start.Column}
	}
	if at, ok := p.starts[n]; ok {
		return at
	}
	return fallback
}
