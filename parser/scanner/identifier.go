package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/token"
)

func (s *Scanner) scanIdentifier() token.Token {
	name, escaped := s.scanIdentifierName()
	s.Value = name
	t := token.Lookup(name)
	if !escaped {
		return t
	}
	s.Escaped = true
	if t.IsKeyword() {
		return token.EscapedReserved
	}
	return t
}

func (s *Scanner) scanPrivateIdentifier() token.Token {
	s.src.pos++
	r, _ := s.src.PeekRune()
	if r != '\\' && !isIdentifierStart(r) {
		s.fail(ErrInvalidPrivateName)
	}
	s.Value, s.Escaped = s.scanIdentifierName()
	return token.PrivateIdentifier
}

// scanIdentifierName scans an IdentifierName at the cursor. The ASCII path
// returns a slice of the input; escapes and non-ASCII fall back to a builder.
func (s *Scanner) scanIdentifierName() (string, bool) {
	start := s.src.pos
	pos := start
	for pos < s.src.len {
		c := s.src.str[pos]
		if c < utf8.RuneSelf && charFlags[c]&flagIdentPart != 0 {
			pos++
			continue
		}
		if c == '\\' || c >= utf8.RuneSelf {
			s.src.pos = pos
			return s.scanIdentifierSlow(start)
		}
		break
	}
	s.src.pos = pos
	return s.src.Slice(start, pos), false
}

func (s *Scanner) scanIdentifierSlow(start int) (string, bool) {
	var b strings.Builder
	b.WriteString(s.src.Slice(start, s.src.pos))
	escaped := false
	for !s.src.EOF() {
		r, n := s.src.PeekRune()
		first := s.src.pos == start
		if r == '\\' {
			escPos := s.src.pos
			s.src.pos++
			if !s.src.AdvanceIfByteEquals('u') {
				panic(s.errorAt(escPos, ErrInvalidUnicodeEscapeSequence))
			}
			cp, code := s.scanUnicodeEscapeValue()
			if code != ErrNone {
				panic(s.errorAt(escPos, code))
			}
			if first && !isIdentifierStart(cp) || !first && !isIdentifierPart(cp) {
				panic(s.errorAt(escPos, ErrInvalidUnicodeEscapeSequence))
			}
			b.WriteRune(cp)
			escaped = true
			continue
		}
		if first && !isIdentifierStart(r) || !first && !isIdentifierPart(r) {
			break
		}
		b.WriteRune(r)
		s.src.pos += n
	}
	return b.String(), escaped
}

// scanUnicodeEscapeValue is entered after "\u" and reads either four hex
// digits or a braced code point.
func (s *Scanner) scanUnicodeEscapeValue() (rune, ErrorCode) {
	if s.src.AdvanceIfByteEquals('{') {
		var cp rune
		digits := 0
		for {
			c, ok := s.src.PeekByte()
			if !ok {
				return 0, ErrInvalidUnicodeEscapeSequence
			}
			if c == '}' {
				s.src.pos++
				break
			}
			d := hexValue(c)
			if d < 0 {
				return 0, ErrInvalidUnicodeEscapeSequence
			}
			cp = cp<<4 | rune(d)
			if cp > maxCodePoint {
				return 0, ErrUnicodeOverflow
			}
			digits++
			s.src.pos++
		}
		if digits == 0 {
			return 0, ErrInvalidUnicodeEscapeSequence
		}
		return cp, ErrNone
	}
	cp, ok := s.scanHexDigits(4)
	if !ok {
		return 0, ErrInvalidUnicodeEscapeSequence
	}
	return cp, ErrNone
}

func (s *Scanner) scanHexDigits(n int) (rune, bool) {
	var v rune
	for i := 0; i < n; i++ {
		d := hexValue(s.src.PeekAt(i))
		if d < 0 {
			return 0, false
		}
		v = v<<4 | rune(d)
	}
	s.src.pos += n
	return v, true
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
