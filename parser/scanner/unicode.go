package scanner

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

const maxCodePoint = 0x10FFFF

// Flat bit-per-code-point tables for ID_Start and ID_Continue.
var idStart, idContinue [(maxCodePoint + 1) / 32]uint32

func init() {
	start := rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	cont := rangetable.Merge(start, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)

	excluded := func(r rune) bool {
		return unicode.Is(unicode.Pattern_Syntax, r) || unicode.Is(unicode.Pattern_White_Space, r)
	}
	rangetable.Visit(start, func(r rune) {
		if !excluded(r) {
			idStart[r>>5] |= 1 << (r & 31)
		}
	})
	rangetable.Visit(cont, func(r rune) {
		if !excluded(r) {
			idContinue[r>>5] |= 1 << (r & 31)
		}
	})
	for _, r := range []rune{'$', '_', '\u200c', '\u200d'} {
		idContinue[r>>5] |= 1 << (r & 31)
	}
	for _, r := range []rune{'$', '_'} {
		idStart[r>>5] |= 1 << (r & 31)
	}
}

func isIdentifierStart(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 0 && charFlags[r]&flagIdentStart != 0
	}
	return r <= maxCodePoint && idStart[r>>5]&(1<<(r&31)) != 0
}

func isIdentifierPart(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 0 && charFlags[r]&flagIdentPart != 0
	}
	return r <= maxCodePoint && idContinue[r>>5]&(1<<(r&31)) != 0
}

// IsIdentifierStart reports whether r may begin an IdentifierName.
func IsIdentifierStart(r rune) bool { return isIdentifierStart(r) }

// IsIdentifierPart reports whether r may continue an IdentifierName.
func IsIdentifierPart(r rune) bool { return isIdentifierPart(r) }

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// isWhiteSpace covers the non-ASCII WhiteSpace code points.
func isWhiteSpace(r rune) bool {
	return r == '\u00a0' || r == '\ufeff' || unicode.Is(unicode.Zs, r)
}
