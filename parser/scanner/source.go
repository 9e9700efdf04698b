package scanner

import (
	"unicode/utf8"
)

// Source is a cursor over the input with line bookkeeping.
type Source struct {
	str string
	pos int
	len int

	line      int // 1-based
	lineStart int // offset of the first byte of the current line
}

func NewSource(src string) Source {
	return Source{
		str:  src,
		len:  len(src),
		line: 1,
	}
}

func (s *Source) EOF() bool {
	return s.pos >= s.len
}

func (s *Source) Offset() int {
	return s.pos
}

func (s *Source) PeekByte() (byte, bool) {
	if s.pos >= s.len {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (s *Source) PeekAt(n int) byte {
	if s.pos+n >= s.len {
		return 0
	}
	return s.str[s.pos+n]
}

func (s *Source) PeekRune() (rune, int) {
	if s.pos >= s.len {
		return -1, 0
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(s.str[s.pos:])
}

func (s *Source) NextRune() rune {
	r, n := s.PeekRune()
	s.pos += n
	return r
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if s.pos < s.len && s.str[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) HasPrefix(p string) bool {
	return len(s.str)-s.pos >= len(p) && s.str[s.pos:s.pos+len(p)] == p
}

// NewLine records that a line terminator ending at the cursor was consumed.
func (s *Source) NewLine() {
	s.line++
	s.lineStart = s.pos
}

// ConsumeLineTerminator consumes one line terminator at the cursor, treating
// CR LF as a single terminator. It reports whether one was present.
func (s *Source) ConsumeLineTerminator() bool {
	if s.pos >= s.len {
		return false
	}
	switch s.str[s.pos] {
	case '\n':
		s.pos++
	case '\r':
		s.pos++
		s.AdvanceIfByteEquals('\n')
	case 0xE2:
		if !s.HasPrefix("\u2028") && !s.HasPrefix("\u2029") {
			return false
		}
		s.pos += 3
	default:
		return false
	}
	s.NewLine()
	return true
}

func (s *Source) Slice(from, to int) string {
	return s.str[from:to]
}
