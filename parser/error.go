package parser

import (
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// raise fails the parse at the current token.
func (p *parser) raise(code scanner.ErrorCode, params ...string) {
	p.raiseAt(p.start(), code, params...)
}

func (p *parser) raiseAt(at position, code scanner.ErrorCode, params ...string) {
	panic(bailout{scanner.NewError(code, at.index, at.line, at.column, params...)})
}

func (p *parser) errorAt(at position, code scanner.ErrorCode, params ...string) *Error {
	return scanner.NewError(code, at.index, at.line, at.column, params...)
}

// fail raises an error built earlier, such as a deferred scope error.
func (p *parser) fail(err *Error) {
	panic(bailout{err})
}

// unexpected fails on the current token.
func (p *parser) unexpected() {
	switch p.tok {
	case token.EOF:
		p.raise(scanner.ErrUnexpectedEOF)
	case token.EscapedReserved:
		p.raise(scanner.ErrInvalidEscapedKeyword)
	}
	p.raise(scanner.ErrUnexpectedToken, p.tokenText())
}

func (p *parser) tokenText() string {
	switch {
	case p.tok.IsTemplate():
		return "template"
	case p.tok == token.EOF:
		return p.tok.String()
	}
	return p.s.Raw()
}
