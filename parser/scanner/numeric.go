package scanner

import (
	"strconv"
	"strings"

	"github.com/t14raptor/go-estree/token"
)

func (s *Scanner) scanNumber() token.Token {
	start := s.src.pos
	c := s.src.str[start]
	if c == '0' {
		switch s.src.PeekAt(1) {
		case 'x', 'X':
			return s.scanRadix(16, flagHex)
		case 'o', 'O':
			return s.scanRadix(8, flagOctal)
		case 'b', 'B':
			return s.scanRadix(2, flagBinary)
		case '_':
			s.src.pos++
			s.fail(ErrNumericSeparatorNotAllowed)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return s.scanLegacyNumber()
		}
	}

	integer := true
	if c != '.' {
		s.scanDigits(flagDecimal)
	}
	if s.src.AdvanceIfByteEquals('.') {
		integer = false
		if s.src.PeekAt(0) == '_' {
			s.fail(ErrNumericSeparatorNotAllowed)
		}
		s.scanDigits(flagDecimal)
	}
	if s.scanExponent() {
		integer = false
	}
	if s.src.PeekAt(0) == 'n' {
		if !integer {
			s.fail(ErrInvalidBigInt)
		}
		return s.finishBigInt(start)
	}
	s.checkAfterNumber()
	s.Number = parseDecimal(s.src.Slice(start, s.src.pos))
	return token.Number
}

func (s *Scanner) scanExponent() bool {
	if c := s.src.PeekAt(0); c != 'e' && c != 'E' {
		return false
	}
	s.src.pos++
	if c := s.src.PeekAt(0); c == '+' || c == '-' {
		s.src.pos++
	}
	if s.scanDigits(flagDecimal) == 0 {
		s.fail(ErrMissingExponent)
	}
	return true
}

// scanDigits consumes digits of one class with optional single separators
// between them and returns how many digits it read.
func (s *Scanner) scanDigits(flag uint8) int {
	n := 0
	sep := false
	for !s.src.EOF() {
		c := s.src.str[s.src.pos]
		if c == '_' {
			if n == 0 {
				s.fail(ErrNumericSeparatorNotAllowed)
			}
			if sep {
				s.fail(ErrContinuousNumericSeparator)
			}
			sep = true
			s.src.pos++
			continue
		}
		if c >= 0x80 || charFlags[c]&flag == 0 {
			break
		}
		sep = false
		n++
		s.src.pos++
	}
	if sep {
		panic(s.errorAt(s.src.pos-1, ErrTrailingNumericSeparator))
	}
	return n
}

func (s *Scanner) scanRadix(base int, flag uint8) token.Token {
	start := s.src.pos
	s.src.pos += 2
	digitsStart := s.src.pos
	if s.scanDigits(flag) == 0 {
		s.fail(ErrExpectedNumberInRadix, strconv.Itoa(base))
	}
	digits := strings.ReplaceAll(s.src.Slice(digitsStart, s.src.pos), "_", "")
	if s.src.PeekAt(0) == 'n' {
		return s.finishBigInt(start)
	}
	if c := s.src.PeekAt(0); c < 0x80 && charFlags[c]&flagDecimal != 0 {
		s.fail(ErrExpectedNumberInRadix, strconv.Itoa(base))
	}
	s.checkAfterNumber()
	s.Number = parseRadix(digits, base)
	return token.Number
}

// scanLegacyNumber handles a leading zero followed by a digit: a legacy
// octal literal, or a decimal with a leading zero when an 8 or 9 appears.
func (s *Scanner) scanLegacyNumber() token.Token {
	start := s.src.pos
	s.src.pos++
	octal := true
	for !s.src.EOF() {
		c := s.src.str[s.src.pos]
		if c == '_' {
			s.fail(ErrNumericSeparatorNotAllowed)
		}
		if c < '0' || c > '9' {
			break
		}
		if c > '7' {
			octal = false
		}
		s.src.pos++
	}
	if octal {
		if s.mode&Strict != 0 {
			panic(s.errorAt(start, ErrStrictOctalLiteral))
		}
		if s.src.PeekAt(0) == 'n' {
			s.fail(ErrInvalidBigInt)
		}
		s.checkAfterNumber()
		s.Octal = ErrStrictOctalLiteral
		s.Number = parseRadix(s.src.Slice(start+1, s.src.pos), 8)
		return token.Number
	}
	if s.mode&Strict != 0 {
		panic(s.errorAt(start, ErrStrictDecimalWithLeadingZero))
	}
	if s.src.AdvanceIfByteEquals('.') {
		s.scanDigits(flagDecimal)
	}
	s.scanExponent()
	if s.src.PeekAt(0) == 'n' {
		s.fail(ErrInvalidBigInt)
	}
	s.checkAfterNumber()
	s.Octal = ErrStrictDecimalWithLeadingZero
	s.Number = parseDecimal(s.src.Slice(start, s.src.pos))
	return token.Number
}

func (s *Scanner) finishBigInt(start int) token.Token {
	s.src.pos++
	s.checkAfterNumber()
	s.Value = strings.ReplaceAll(s.src.Slice(start, s.src.pos-1), "_", "")
	return token.BigInt
}

// checkAfterNumber rejects an identifier start or digit directly after a
// numeric literal, as in 3in or 0b12.
func (s *Scanner) checkAfterNumber() {
	r, _ := s.src.PeekRune()
	if r < 0 {
		return
	}
	if r == '\\' || isIdentifierStart(r) || r >= '0' && r <= '9' {
		s.fail(ErrIdentifierAfterNumber)
	}
}

func parseDecimal(raw string) float64 {
	if strings.IndexByte(raw, '_') >= 0 {
		raw = strings.ReplaceAll(raw, "_", "")
	}
	// Out of range literals become ±Inf or 0, which ParseFloat returns
	// alongside its range error.
	v, _ := strconv.ParseFloat(raw, 64)
	return v
}

func parseRadix(digits string, base int) float64 {
	if v, err := strconv.ParseUint(digits, base, 64); err == nil {
		return float64(v)
	}
	var v float64
	for i := 0; i < len(digits); i++ {
		v = v*float64(base) + float64(hexValue(digits[i]))
	}
	return v
}
