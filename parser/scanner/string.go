package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/go-estree/token"
)

func (s *Scanner) scanString() token.Token {
	quote := s.src.str[s.src.pos]
	s.src.pos++
	chunk := s.src.pos
	var b *strings.Builder
	for {
		if s.src.EOF() {
			panic(s.errorAt(s.Start, ErrUnterminatedString))
		}
		c := s.src.str[s.src.pos]
		switch {
		case c == quote:
			if b == nil {
				s.Value = s.src.Slice(chunk, s.src.pos)
			} else {
				b.WriteString(s.src.Slice(chunk, s.src.pos))
				s.Value = b.String()
			}
			s.src.pos++
			return token.String
		case c == '\\':
			if b == nil {
				b = &strings.Builder{}
			}
			b.WriteString(s.src.Slice(chunk, s.src.pos))
			escPos := s.src.pos
			s.src.pos++
			if code := s.scanEscape(b, false); code != ErrNone {
				if code == ErrUnterminatedString {
					panic(s.errorAt(s.Start, code))
				}
				panic(s.errorAt(escPos, code))
			}
			chunk = s.src.pos
		case c == '\n' || c == '\r':
			panic(s.errorAt(s.Start, ErrUnterminatedString))
		case c < utf8.RuneSelf:
			s.src.pos++
		default:
			_, n := s.src.PeekRune()
			s.src.pos += n
		}
	}
}

// scanEscape is entered after a backslash and appends the escape's value to
// b. Templates report errors instead of failing; strings fail on anything
// that is an error in their context and record legacy forms in s.Octal.
func (s *Scanner) scanEscape(b *strings.Builder, template bool) ErrorCode {
	if s.src.EOF() {
		if template {
			return ErrUnterminatedTemplate
		}
		return ErrUnterminatedString
	}
	c := s.src.str[s.src.pos]
	switch c {
	case 'b':
		b.WriteByte('\b')
	case 't':
		b.WriteByte('\t')
	case 'n':
		b.WriteByte('\n')
	case 'v':
		b.WriteByte('\v')
	case 'f':
		b.WriteByte('\f')
	case 'r':
		b.WriteByte('\r')
	case '\r', '\n':
		s.src.ConsumeLineTerminator()
		return ErrNone
	case 'x':
		s.src.pos++
		v, ok := s.scanHexDigits(2)
		if !ok {
			return ErrInvalidHexEscapeSequence
		}
		b.WriteRune(v)
		return ErrNone
	case 'u':
		s.src.pos++
		v, code := s.scanUnicodeEscapeValue()
		if code != ErrNone {
			return code
		}
		if v >= 0xD800 && v <= 0xDBFF && s.src.HasPrefix("\\u") {
			save := s.src.pos
			s.src.pos += 2
			if lo, code := s.scanUnicodeEscapeValue(); code == ErrNone && lo >= 0xDC00 && lo <= 0xDFFF {
				v = (v-0xD800)<<10 + (lo - 0xDC00) + 0x10000
			} else {
				s.src.pos = save
			}
		}
		b.WriteRune(v)
		return ErrNone
	case '0', '1', '2', '3', '4', '5', '6', '7':
		next := s.src.PeekAt(1)
		if c == '0' && (next < '0' || next > '9') {
			b.WriteByte(0)
			break
		}
		if template {
			s.src.pos++
			return ErrTemplateOctalLiteral
		}
		if s.mode&Strict != 0 {
			return ErrStrictOctalEscape
		}
		s.Octal = ErrStrictOctalEscape
		b.WriteRune(s.scanLegacyOctalEscape())
		return ErrNone
	case '8', '9':
		if template {
			s.src.pos++
			return ErrTemplateEightAndNine
		}
		if s.mode&Strict != 0 {
			return ErrStrictEightAndNine
		}
		s.Octal = ErrStrictEightAndNine
		b.WriteByte(c)
	default:
		if c >= utf8.RuneSelf {
			r, n := s.src.PeekRune()
			s.src.pos += n
			if r == '\u2028' || r == '\u2029' {
				s.src.NewLine()
				return ErrNone
			}
			b.WriteRune(r)
			return ErrNone
		}
		b.WriteByte(c)
	}
	s.src.pos++
	return ErrNone
}

// scanLegacyOctalEscape reads up to three octal digits, the first of which
// is at the cursor, keeping the value below 256.
func (s *Scanner) scanLegacyOctalEscape() rune {
	v := rune(s.src.str[s.src.pos] - '0')
	s.src.pos++
	max := 2
	if v > 3 {
		max = 1
	}
	for i := 0; i < max; i++ {
		c, ok := s.src.PeekByte()
		if !ok || c < '0' || c > '7' {
			break
		}
		v = v*8 + rune(c-'0')
		s.src.pos++
	}
	return v
}
