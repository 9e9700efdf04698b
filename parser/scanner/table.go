package scanner

import (
	"github.com/t14raptor/go-estree/token"
)

const (
	flagIdentStart uint8 = 1 << iota
	flagIdentPart
	flagDecimal
	flagOctal
	flagHex
	flagBinary
	flagWhiteSpace
	flagLineTerminator
)

// charFlags classifies every ASCII code point.
var charFlags [128]uint8

type byteHandler func(*Scanner) token.Token

// byteHandlers dispatches on the first byte of a token.
var byteHandlers [128]byteHandler

func init() {
	for c := 0; c < 128; c++ {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '$', c == '_':
			charFlags[c] |= flagIdentStart | flagIdentPart
		case c >= '0' && c <= '9':
			charFlags[c] |= flagIdentPart | flagDecimal
		}
		if c >= '0' && c <= '7' {
			charFlags[c] |= flagOctal
		}
		if c == '0' || c == '1' {
			charFlags[c] |= flagBinary
		}
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' {
			charFlags[c] |= flagHex
		}
	}
	for _, c := range []byte{' ', '\t', 0x0B, 0x0C} {
		charFlags[c] |= flagWhiteSpace
	}
	charFlags['\n'] |= flagLineTerminator
	charFlags['\r'] |= flagLineTerminator

	for c := range byteHandlers {
		byteHandlers[c] = (*Scanner).invalidByte
	}
	for c := 0; c < 128; c++ {
		switch f := charFlags[c]; {
		case f&flagIdentStart != 0:
			byteHandlers[c] = (*Scanner).scanIdentifier
		case f&flagDecimal != 0:
			byteHandlers[c] = (*Scanner).scanNumber
		case f&flagWhiteSpace != 0:
			byteHandlers[c] = (*Scanner).skipWhiteSpace
		case f&flagLineTerminator != 0:
			byteHandlers[c] = (*Scanner).skipLineTerminator
		}
	}

	byteHandlers['\\'] = (*Scanner).scanIdentifier
	byteHandlers['#'] = (*Scanner).scanPrivateIdentifier
	byteHandlers['"'] = (*Scanner).scanString
	byteHandlers['\''] = (*Scanner).scanString
	byteHandlers['`'] = (*Scanner).scanTemplateHead
	byteHandlers['.'] = (*Scanner).scanDot
	byteHandlers['/'] = (*Scanner).scanSlash
	byteHandlers['<'] = (*Scanner).scanLess
	byteHandlers['>'] = (*Scanner).scanGreater
	byteHandlers['='] = (*Scanner).scanEquals
	byteHandlers['!'] = (*Scanner).scanBang
	byteHandlers['+'] = (*Scanner).scanPlus
	byteHandlers['-'] = (*Scanner).scanMinus
	byteHandlers['*'] = (*Scanner).scanStar
	byteHandlers['%'] = (*Scanner).scanPercent
	byteHandlers['&'] = (*Scanner).scanAmpersand
	byteHandlers['|'] = (*Scanner).scanPipe
	byteHandlers['^'] = (*Scanner).scanCaret
	byteHandlers['?'] = (*Scanner).scanQuestion

	for c, t := range singleTokens {
		if t != token.Illegal {
			byteHandlers[c] = (*Scanner).scanSingle
		}
	}
}

// singleTokens maps bytes that always form a one-byte punctuator.
var singleTokens = [128]token.Token{
	'(': token.LeftParenthesis,
	')': token.RightParenthesis,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	';': token.Semicolon,
	',': token.Comma,
	':': token.Colon,
	'~': token.BitwiseNot,
}

func (s *Scanner) scanSingle() token.Token {
	t := singleTokens[s.src.str[s.src.pos]]
	s.src.pos++
	return t
}

func (s *Scanner) invalidByte() token.Token {
	s.fail(ErrInvalidCharacter, string(s.src.str[s.src.pos]))
	return token.Illegal
}
