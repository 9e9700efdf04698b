package scanner

import (
	"strings"

	"github.com/t14raptor/go-estree/token"
)

func (s *Scanner) scanTemplateHead() token.Token {
	s.src.pos++
	return s.scanTemplate(true)
}

// ScanTemplateContinuation rescans from just after the current '}' token as
// the next chunk of a template literal.
func (s *Scanner) ScanTemplateContinuation() (kind token.Token) {
	defer s.recover()
	s.TemplateErr = nil
	s.Kind = s.scanTemplate(false)
	s.End = s.src.pos
	return s.Kind
}

// scanTemplate scans a template chunk whose opening delimiter has been
// consumed. Escape errors do not stop the scan: the first is stored in
// s.TemplateErr and the chunk has no cooked value.
func (s *Scanner) scanTemplate(head bool) token.Token {
	var cooked, raw strings.Builder
	chunk := s.src.pos
	rawChunk := s.src.pos
	flushRaw := func(to int) {
		raw.WriteString(s.src.Slice(rawChunk, to))
	}
	for {
		if s.src.EOF() {
			panic(s.errorAt(s.Start, ErrUnterminatedTemplate))
		}
		c := s.src.str[s.src.pos]
		switch c {
		case '`', '$':
			if c == '$' && s.src.PeekAt(1) != '{' {
				s.src.pos++
				continue
			}
			cooked.WriteString(s.src.Slice(chunk, s.src.pos))
			flushRaw(s.src.pos)
			s.TemplateRaw = raw.String()
			s.Value = cooked.String()
			if c == '`' {
				s.src.pos++
				if head {
					return token.NoSubstitutionTemplate
				}
				return token.TemplateTail
			}
			s.src.pos += 2
			if head {
				return token.TemplateHead
			}
			return token.TemplateMiddle
		case '\\':
			cooked.WriteString(s.src.Slice(chunk, s.src.pos))
			escPos := s.src.pos
			s.src.pos++
			if c := s.src.PeekAt(0); c == '\r' {
				// The raw value normalizes a continued CR or CR LF to LF.
				flushRaw(s.src.pos)
				raw.WriteByte('\n')
				s.src.ConsumeLineTerminator()
				rawChunk = s.src.pos
				chunk = s.src.pos
				continue
			}
			code := s.scanEscape(&cooked, true)
			if code == ErrUnterminatedTemplate {
				panic(s.errorAt(s.Start, code))
			}
			if code != ErrNone && s.TemplateErr == nil {
				s.TemplateErr = s.errorAt(escPos, code)
			}
			chunk = s.src.pos
		case '\r':
			cooked.WriteString(s.src.Slice(chunk, s.src.pos))
			flushRaw(s.src.pos)
			cooked.WriteByte('\n')
			raw.WriteByte('\n')
			s.src.ConsumeLineTerminator()
			chunk = s.src.pos
			rawChunk = s.src.pos
		case '\n':
			s.src.pos++
			s.src.NewLine()
		default:
			if !s.src.ConsumeLineTerminator() {
				_, n := s.src.PeekRune()
				s.src.pos += n
			}
		}
	}
}
