package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// scanAll returns the kinds of every token in src up to EOF, stopping at the
// first error.
func scanAll(t *testing.T, src string, mode scanner.Mode) ([]token.Token, *scanner.Error) {
	t.Helper()
	s := scanner.NewScanner(src)
	var kinds []token.Token
	for i := 0; i < 1000; i++ {
		k := s.Next(mode)
		if s.Err != nil {
			return kinds, s.Err
		}
		if k == token.EOF {
			return kinds, nil
		}
		kinds = append(kinds, k)
	}
	t.Fatalf("scanner did not reach EOF for %q", src)
	return nil, nil
}

func scanOne(t *testing.T, src string, mode scanner.Mode) *scanner.Scanner {
	t.Helper()
	s := scanner.NewScanner(src)
	s.Next(mode)
	require.Nil(t, s.Err, "scanning %q", src)
	return s
}

func TestPunctuators(t *testing.T) {
	kinds, err := scanAll(t, "a >>>= b ?? c ?. d **= e => f ... g", 0)
	require.Nil(t, err)
	assert.Equal(t, []token.Token{
		token.Identifier, token.UnsignedShiftRightAssign, token.Identifier,
		token.Coalesce, token.Identifier, token.QuestionDot, token.Identifier,
		token.ExponentAssign, token.Identifier, token.Arrow, token.Identifier,
		token.Ellipsis, token.Identifier,
	}, kinds)
}

func TestOptionalChainBeforeDigit(t *testing.T) {
	kinds, err := scanAll(t, "a?.5:b", 0)
	require.Nil(t, err)
	assert.Equal(t, []token.Token{
		token.Identifier, token.QuestionMark, token.Number, token.Colon, token.Identifier,
	}, kinds)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0", 0},
		{"1_000_000", 1000000},
		{"0x_1", -1},
		{"0xff", 255},
		{"0b1010", 10},
		{"0o17", 15},
		{"017", 15},
		{"019", 19},
		{".5", 0.5},
		{"1e3", 1000},
		{"1_0.2_5e1_0", 10.25e10},
	}
	for _, tt := range tests {
		s := scanner.NewScanner(tt.src)
		s.Next(0)
		if tt.want < 0 {
			assert.NotNil(t, s.Err, tt.src)
			continue
		}
		require.Nil(t, s.Err, tt.src)
		assert.Equal(t, token.Number, s.Kind, tt.src)
		assert.Equal(t, tt.want, s.Number, tt.src)
	}
}

func TestNumericSeparatorErrors(t *testing.T) {
	tests := []struct {
		src  string
		code scanner.ErrorCode
	}{
		{"1__0", scanner.ErrContinuousNumericSeparator},
		{"1_", scanner.ErrTrailingNumericSeparator},
		{"0_1", scanner.ErrNumericSeparatorNotAllowed},
		{"1._5", scanner.ErrNumericSeparatorNotAllowed},
		{"1e_5", scanner.ErrNumericSeparatorNotAllowed},
		{"3in", scanner.ErrIdentifierAfterNumber},
		{"0b12", scanner.ErrExpectedNumberInRadix},
		{"1.5n", scanner.ErrInvalidBigInt},
		{"1e", scanner.ErrMissingExponent},
	}
	for _, tt := range tests {
		_, err := scanAll(t, tt.src, 0)
		require.NotNil(t, err, tt.src)
		assert.Equal(t, tt.code, err.Code, tt.src)
	}
}

func TestBigInt(t *testing.T) {
	s := scanOne(t, "0x1_Fn", 0)
	assert.Equal(t, token.BigInt, s.Kind)
	assert.Equal(t, "0x1F", s.Value)
}

func TestLegacyOctal(t *testing.T) {
	s := scanOne(t, "010", 0)
	assert.Equal(t, float64(8), s.Number)
	assert.Equal(t, scanner.ErrStrictOctalLiteral, s.Octal)

	s = scanOne(t, "09", 0)
	assert.Equal(t, scanner.ErrStrictDecimalWithLeadingZero, s.Octal)

	_, err := scanAll(t, "010", scanner.Strict)
	require.NotNil(t, err)
	assert.Equal(t, scanner.ErrStrictOctalLiteral, err.Code)
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{`"abc"`, "abc"},
		{`'a\nb'`, "a\nb"},
		{`"\x41B\u{43}"`, "ABC"},
		{`"😀"`, "\U0001F600"},
		{"'a\\\nb'", "ab"},
		{`"\0"`, "\x00"},
		{`"\101"`, "A"},
	}
	for _, tt := range tests {
		s := scanOne(t, tt.src, 0)
		assert.Equal(t, token.String, s.Kind, tt.src)
		assert.Equal(t, tt.want, s.Value, tt.src)
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		src  string
		mode scanner.Mode
		code scanner.ErrorCode
	}{
		{`"abc`, 0, scanner.ErrUnterminatedString},
		{"'a\nb'", 0, scanner.ErrUnterminatedString},
		{`"\x4"`, 0, scanner.ErrInvalidHexEscapeSequence},
		{`"\u{110000}"`, 0, scanner.ErrUnicodeOverflow},
		{`"\101"`, scanner.Strict, scanner.ErrStrictOctalEscape},
		{`"\8"`, scanner.Strict, scanner.ErrStrictEightAndNine},
	}
	for _, tt := range tests {
		_, err := scanAll(t, tt.src, tt.mode)
		require.NotNil(t, err, tt.src)
		assert.Equal(t, tt.code, err.Code, tt.src)
	}
}

func TestTemplateInvalidEscapeIsDeferred(t *testing.T) {
	s := scanOne(t, "`a\\08`", 0)
	assert.Equal(t, token.NoSubstitutionTemplate, s.Kind)
	require.NotNil(t, s.TemplateErr)
	assert.Equal(t, scanner.ErrTemplateOctalLiteral, s.TemplateErr.Code)
	assert.Equal(t, `a\08`, s.TemplateRaw)
}

func TestTemplateRawNormalizesCarriageReturns(t *testing.T) {
	s := scanOne(t, "`a\r\nb`", 0)
	assert.Equal(t, "a\nb", s.Value)
	assert.Equal(t, "a\nb", s.TemplateRaw)
}

func TestTemplateContinuation(t *testing.T) {
	s := scanner.NewScanner("`a${b}c${d}e`")
	assert.Equal(t, token.TemplateHead, s.Next(0))
	assert.Equal(t, "a", s.Value)
	assert.Equal(t, token.Identifier, s.Next(0))
	assert.Equal(t, token.RightBrace, s.Next(0))
	assert.Equal(t, token.TemplateMiddle, s.ScanTemplateContinuation())
	assert.Equal(t, "c", s.Value)
	assert.Equal(t, token.Identifier, s.Next(0))
	assert.Equal(t, token.RightBrace, s.Next(0))
	assert.Equal(t, token.TemplateTail, s.ScanTemplateContinuation())
	assert.Equal(t, "e", s.Value)
	assert.Equal(t, token.EOF, s.Next(0))
}

func TestIdentifiers(t *testing.T) {
	s := scanOne(t, `abc`, 0)
	assert.Equal(t, token.Identifier, s.Kind)
	assert.Equal(t, "abc", s.Value)
	assert.True(t, s.Escaped)

	s = scanOne(t, `var`, 0)
	assert.Equal(t, token.EscapedReserved, s.Kind)

	s = scanOne(t, `let`, 0)
	assert.Equal(t, token.Let, s.Kind)
	assert.True(t, s.Escaped)

	s = scanOne(t, "ñandú", 0)
	assert.Equal(t, "ñandú", s.Value)

	s = scanOne(t, "#priv", 0)
	assert.Equal(t, token.PrivateIdentifier, s.Kind)
	assert.Equal(t, "priv", s.Value)
}

func TestKeywords(t *testing.T) {
	kinds, err := scanAll(t, "if async of yield", 0)
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.If, token.Async, token.Of, token.Yield}, kinds)
}

func TestNewLineFlag(t *testing.T) {
	s := scanner.NewScanner("a /*\n*/ b\nc d")
	s.Next(0)
	assert.False(t, s.NewLine)
	s.Next(0)
	assert.True(t, s.NewLine)
	assert.Equal(t, 2, s.Line)
	s.Next(0)
	assert.True(t, s.NewLine)
	assert.Equal(t, 3, s.Line)
	s.Next(0)
	assert.False(t, s.NewLine)
}

func TestComments(t *testing.T) {
	kinds, err := scanAll(t, "#!/usr/bin/env node\na // x\n/* y */ b", 0)
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.Identifier, token.Identifier}, kinds)

	_, err = scanAll(t, "/* open", 0)
	require.NotNil(t, err)
	assert.Equal(t, scanner.ErrUnterminatedComment, err.Code)
}

func TestHTMLComments(t *testing.T) {
	kinds, err := scanAll(t, "a <!-- b\n--> c\nd", 0)
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.Identifier, token.Identifier}, kinds)

	// --> after other tokens on the same line is a decrement and a comparison.
	kinds, err = scanAll(t, "a --> b", 0)
	require.Nil(t, err)
	assert.Equal(t, []token.Token{token.Identifier, token.Decrement, token.Greater, token.Identifier}, kinds)

	for _, mode := range []scanner.Mode{scanner.Module, scanner.DisableWebCompat} {
		_, err = scanAll(t, "a <!-- b", mode)
		require.NotNil(t, err)
		assert.Equal(t, scanner.ErrHTMLCommentInModule, err.Code)
	}
}

func TestRegExp(t *testing.T) {
	s := scanOne(t, `/[/]\//gi`, 0)
	require.Equal(t, token.Slash, s.Kind)
	assert.Equal(t, token.RegularExpression, s.ScanRegExp())
	require.Nil(t, s.Err)
	assert.Equal(t, `[/]\/`, s.Value)
	assert.Equal(t, "gi", s.Flags)
	assert.NotNil(t, s.RegExp)
}

func TestRegExpErrors(t *testing.T) {
	tests := []struct {
		src  string
		code scanner.ErrorCode
	}{
		{"/abc", scanner.ErrUnterminatedRegExp},
		{"/a/gg", scanner.ErrDuplicateRegExpFlag},
		{"/a/x", scanner.ErrUnexpectedRegExpFlag},
		{"/a/uv", scanner.ErrUnexpectedRegExpFlag},
		{"/(/", scanner.ErrInvalidRegExp},
	}
	for _, tt := range tests {
		s := scanOne(t, tt.src, 0)
		s.ScanRegExp()
		require.NotNil(t, s.Err, tt.src)
		assert.Equal(t, tt.code, s.Err.Code, tt.src)
	}
}

func TestCheckpointRewind(t *testing.T) {
	s := scanner.NewScanner("a b c")
	s.Next(0)
	c := s.Checkpoint()
	s.Next(0)
	s.Next(0)
	assert.Equal(t, "c", s.Value)
	s.Rewind(c)
	assert.Equal(t, "a", s.Value)
	s.Next(0)
	assert.Equal(t, "b", s.Value)
}

func TestErrorPosition(t *testing.T) {
	_, err := scanAll(t, "a\n  @", 0)
	require.NotNil(t, err)
	assert.Equal(t, scanner.ErrInvalidCharacter, err.Code)
	assert.Equal(t, 2, err.Line)
	assert.Equal(t, 2, err.Column)
	assert.Equal(t, 4, err.Index)
	assert.Equal(t, "[2:2]: Invalid or unexpected token '@'", err.Error())
}
