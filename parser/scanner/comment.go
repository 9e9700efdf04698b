package scanner

import (
	"strings"
)

// skipLineComment consumes up to, not including, the next line terminator.
func (s *Scanner) skipLineComment() {
	for s.src.pos < s.src.len {
		c := s.src.str[s.src.pos]
		if c == '\n' || c == '\r' {
			return
		}
		if c == 0xE2 && (s.src.HasPrefix("\u2028") || s.src.HasPrefix("\u2029")) {
			return
		}
		s.src.pos++
	}
}

// skipBlockComment is entered with the cursor after "/*".
func (s *Scanner) skipBlockComment() {
	start := s.src.pos - 2
	end := strings.Index(s.src.str[s.src.pos:], "*/")
	if end < 0 {
		panic(s.errorAt(start, ErrUnterminatedComment))
	}
	stop := s.src.pos + end
	for s.src.pos < stop {
		if s.src.ConsumeLineTerminator() {
			s.NewLine = true
			continue
		}
		s.src.pos++
	}
	s.src.pos = stop + 2
}

// htmlCommentAllowed reports whether <!-- and --> open comments.
func (s *Scanner) htmlCommentAllowed() bool {
	return s.mode&(Module|DisableWebCompat) == 0
}
