package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/t14raptor/go-estree/token"
)

const regExpFlags = "dgimsuyv"

// ScanRegExp rescans the current '/' or '/=' token as a regular expression
// literal. The parser calls it where a primary expression is expected.
func (s *Scanner) ScanRegExp() (kind token.Token) {
	defer s.recover()

	s.src.pos = s.Start + 1
	inClass := false
	for {
		r, n := s.src.PeekRune()
		if r < 0 || isLineTerminator(r) {
			panic(s.errorAt(s.Start, ErrUnterminatedRegExp))
		}
		if r == '/' && !inClass {
			break
		}
		switch r {
		case '\\':
			s.src.pos++
			r, n = s.src.PeekRune()
			if r < 0 || isLineTerminator(r) {
				panic(s.errorAt(s.Start, ErrUnterminatedRegExp))
			}
		case '[':
			inClass = true
		case ']':
			inClass = false
		}
		s.src.pos += n
	}
	pattern := s.src.Slice(s.Start+1, s.src.pos)
	s.src.pos++

	flagsStart := s.src.pos
	var seen uint8
	for !s.src.EOF() {
		r, n := s.src.PeekRune()
		if r == '\\' {
			s.fail(ErrUnexpectedRegExpFlag, "\\")
		}
		if !isIdentifierPart(r) {
			break
		}
		i := strings.IndexRune(regExpFlags, r)
		if i < 0 {
			s.fail(ErrUnexpectedRegExpFlag, string(r))
		}
		if seen&(1<<i) != 0 {
			s.fail(ErrDuplicateRegExpFlag, string(r))
		}
		seen |= 1 << i
		s.src.pos += n
	}
	flags := s.src.Slice(flagsStart, s.src.pos)
	if strings.ContainsRune(flags, 'u') && strings.ContainsRune(flags, 'v') {
		panic(s.errorAt(flagsStart, ErrUnexpectedRegExpFlag, "v"))
	}

	re, err := compileRegExp(pattern, flags)
	if err != nil {
		panic(s.errorAt(s.Start, ErrInvalidRegExp, err.Error()))
	}
	s.Value = pattern
	s.Flags = flags
	s.RegExp = re
	s.Kind = token.RegularExpression
	s.End = s.src.pos
	return s.Kind
}

// compileRegExp validates a pattern against the host engine in two steps.
// A pattern the engine rejects on its own is an error. A pattern that only
// fails together with its flags compiles to nil.
func compileRegExp(pattern, flags string) (*regexp2.Regexp, error) {
	host := hostPattern(pattern, flags)
	if _, err := regexp2.Compile(host, regexp2.ECMAScript); err != nil {
		if _, err := regexp2.Compile(host, regexp2.None); err != nil {
			return nil, err
		}
	}
	var opts regexp2.RegexOptions
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		}
	}
	re, err := regexp2.Compile(host, opts|regexp2.ECMAScript)
	if err != nil {
		re, err = regexp2.Compile(host, opts)
	}
	if err != nil {
		return nil, nil
	}
	return re, nil
}

// hostPattern rewrites syntax the host engine spells differently: braced
// code point escapes under the u and v flags, and the empty class forms.
func hostPattern(pattern, flags string) string {
	unicodeMode := strings.ContainsAny(flags, "uv")
	if !unicodeMode && !strings.Contains(pattern, "[]") && !strings.Contains(pattern, "[^]") {
		return pattern
	}
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			if unicodeMode && pattern[i+1] == 'u' && i+2 < len(pattern) && pattern[i+2] == '{' {
				end := strings.IndexByte(pattern[i:], '}')
				if end > 0 {
					if cp, err := strconv.ParseUint(pattern[i+3:i+end], 16, 32); err == nil && cp <= maxCodePoint {
						if cp <= 0xFFFF {
							b.WriteString(fmt.Sprintf(`\u%04x`, cp))
						} else {
							b.WriteRune(rune(cp))
						}
						i += end
						continue
					}
				}
			}
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
		case strings.HasPrefix(pattern[i:], "[^]"):
			b.WriteString(`[\s\S]`)
			i += 2
		case strings.HasPrefix(pattern[i:], "[]"):
			b.WriteString(`(?!)`)
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
