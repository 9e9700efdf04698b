package scanner

import (
	"github.com/dlclark/regexp2"

	"github.com/t14raptor/go-estree/token"
)

// Token is the state of the most recently scanned token.
type Token struct {
	Kind token.Token

	Start, End   int // byte offsets
	Line, Column int // of Start

	// NewLine is set when a line terminator precedes the token.
	NewLine bool
	// Escaped is set when an identifier or keyword used unicode escapes.
	Escaped bool

	// Value is the decoded identifier name, the cooked string or template
	// value, the regular expression body, or the BigInt digits.
	Value string
	// TemplateRaw is the template raw value with line terminators normalized.
	TemplateRaw string
	Number      float64

	// Octal is the error to raise if the token turns out to be in strict
	// mode code: a legacy octal literal, a decimal with a leading zero, or a
	// legacy octal or \8 \9 escape in a string.
	Octal ErrorCode
	// TemplateErr is the first invalid escape in a template chunk. Tagged
	// templates expose it as an undefined cooked value, others raise it.
	TemplateErr *Error

	Flags string
	// RegExp is the host compiled pattern, nil when the pattern and flags
	// are not accepted together.
	RegExp *regexp2.Regexp
}
