package scanner

import (
	"github.com/t14raptor/go-estree/token"
)

func (s *Scanner) skipWhiteSpace() token.Token {
	pos := s.src.pos + 1
	for pos < s.src.len {
		c := s.src.str[pos]
		if c >= 0x80 || charFlags[c]&flagWhiteSpace == 0 {
			break
		}
		pos++
	}
	s.src.pos = pos
	return skip
}

func (s *Scanner) skipLineTerminator() token.Token {
	s.src.ConsumeLineTerminator()
	s.NewLine = true
	return skip
}
