package scanner

import (
	"github.com/t14raptor/go-estree/token"
)

// Mode carries the parts of the parser context the lexer depends on.
type Mode uint8

const (
	Strict Mode = 1 << iota
	Module
	DisableWebCompat
)

// skip is returned by byte handlers that consumed trivia.
const skip token.Token = 0xFF

type Scanner struct {
	Token
	Err *Error

	src     Source
	mode    Mode
	scanned bool // at least one token was produced
}

func NewScanner(src string) *Scanner {
	s := &Scanner{src: NewSource(src)}
	s.skipHashbang()
	return s
}

func (s *Scanner) skipHashbang() {
	if !s.src.HasPrefix("#!") {
		return
	}
	for !s.src.EOF() {
		if r, _ := s.src.PeekRune(); isLineTerminator(r) {
			return
		}
		s.src.NextRune()
	}
}

// Next scans the next token. On failure it returns token.Illegal and
// leaves the diagnostic in s.Err.
func (s *Scanner) Next(mode Mode) (kind token.Token) {
	defer s.recover()

	s.mode = mode
	s.NewLine = false
	s.Escaped = false
	s.Octal = ErrNone
	s.TemplateErr = nil

	for {
		s.Start = s.src.pos
		s.Line = s.src.line
		s.Column = s.src.pos - s.src.lineStart

		b, ok := s.src.PeekByte()
		if !ok {
			s.Kind = token.EOF
			break
		}
		var k token.Token
		if b < 0x80 {
			k = byteHandlers[b](s)
		} else {
			k = s.scanUnicode()
		}
		if k != skip {
			s.Kind = k
			break
		}
	}
	s.End = s.src.pos
	s.scanned = true
	return s.Kind
}

func (s *Scanner) scanUnicode() token.Token {
	r, n := s.src.PeekRune()
	switch {
	case r == '\u2028' || r == '\u2029':
		s.src.pos += n
		s.src.NewLine()
		s.NewLine = true
		return skip
	case isWhiteSpace(r):
		s.src.pos += n
		return skip
	case isIdentifierStart(r):
		return s.scanIdentifier()
	}
	s.fail(ErrInvalidCharacter, string(r))
	return token.Illegal
}

// Pos returns the cursor offset, which after a scan is the end of the
// current token.
func (s *Scanner) Pos() int { return s.src.pos }

// Cursor returns the line and column of the cursor.
func (s *Scanner) Cursor() (line, column int) {
	return s.src.line, s.src.pos - s.src.lineStart
}

// Source returns the full input.
func (s *Scanner) Source() string { return s.src.str }

// Raw returns the source text of the current token.
func (s *Scanner) Raw() string { return s.src.str[s.Start:s.End] }

// Checkpoint is a saved scanner state for one-token lookahead.
type Checkpoint struct {
	tok     Token
	src     Source
	scanned bool
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{tok: s.Token, src: s.src, scanned: s.scanned}
}

// Rewind restores a checkpoint, discarding any error scanned since.
func (s *Scanner) Rewind(c Checkpoint) {
	s.Token = c.tok
	s.src = c.src
	s.scanned = c.scanned
	s.Err = nil
}
