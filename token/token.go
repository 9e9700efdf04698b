package token

import (
	"strconv"
)

// Token is the set of lexical tokens of ECMAScript.
type Token uint8

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence represents operator binding power for Pratt parsing.
//
// Even values are left-associative and odd values right-associative. The
// Pratt loop compares lbp <= minBP and recurses with lbp ^ 1, which flips
// the parity so that same-level left-assoc operators break and same-level
// right-assoc operators continue.
type Precedence uint8

const (
	PrecedenceLowest            Precedence = 0
	PrecedenceNullishCoalescing Precedence = 12 // ??
	PrecedenceLogicalOr         Precedence = 14 // ||
	PrecedenceLogicalAnd        Precedence = 16 // &&
	PrecedenceBitwiseOr         Precedence = 18 // |
	PrecedenceBitwiseXor        Precedence = 20 // ^
	PrecedenceBitwiseAnd        Precedence = 22 // &
	PrecedenceEquals            Precedence = 24 // == != === !==
	PrecedenceCompare           Precedence = 26 // < > <= >= instanceof in
	PrecedenceShift             Precedence = 28 // << >> >>>
	PrecedenceAdd               Precedence = 30 // + -
	PrecedenceMultiply          Precedence = 32 // * / %
	PrecedenceExponentiation    Precedence = 35 // **
)

type attr uint16

const (
	attrKeyword        attr = 1 << iota // reserved everywhere
	attrStrictReserved                  // reserved in strict mode code
	attrContextual                      // identifier with a grammar meaning somewhere
	attrAssign                          // = and compound assignment
	attrUpdate                          // ++ --
	attrUnary                           // ! ~ + - typeof void delete
	attrLogical                         // && || ??
	attrTemplate                        // template tokens
	attrLiteralKey                      // string and numeric property keys
)

type attributes struct {
	prec  Precedence
	flags attr
}

// table holds the per-token attributes. Every query below is a single
// indexed load.
var table [256]attributes

func init() {
	for t := Break; t <= With; t++ {
		table[t].flags |= attrKeyword
	}
	for t := Implements; t <= Yield; t++ {
		table[t].flags |= attrStrictReserved
	}
	for t := As; t <= Arguments; t++ {
		table[t].flags |= attrContextual
	}
	for t := Assign; t <= CoalesceAssign; t++ {
		table[t].flags |= attrAssign
	}
	for _, t := range []Token{NoSubstitutionTemplate, TemplateHead, TemplateMiddle, TemplateTail} {
		table[t].flags |= attrTemplate
	}
	for _, t := range []Token{Not, BitwiseNot, Plus, Minus, Typeof, Void, Delete} {
		table[t].flags |= attrUnary
	}
	for _, t := range []Token{String, Number, BigInt} {
		table[t].flags |= attrLiteralKey
	}
	table[Increment].flags |= attrUpdate
	table[Decrement].flags |= attrUpdate
	table[LogicalAnd].flags |= attrLogical
	table[LogicalOr].flags |= attrLogical
	table[Coalesce].flags |= attrLogical

	table[Coalesce].prec = PrecedenceNullishCoalescing
	table[LogicalOr].prec = PrecedenceLogicalOr
	table[LogicalAnd].prec = PrecedenceLogicalAnd
	table[Or].prec = PrecedenceBitwiseOr
	table[ExclusiveOr].prec = PrecedenceBitwiseXor
	table[And].prec = PrecedenceBitwiseAnd
	table[Equal].prec = PrecedenceEquals
	table[StrictEqual].prec = PrecedenceEquals
	table[NotEqual].prec = PrecedenceEquals
	table[StrictNotEqual].prec = PrecedenceEquals
	table[Less].prec = PrecedenceCompare
	table[Greater].prec = PrecedenceCompare
	table[LessOrEqual].prec = PrecedenceCompare
	table[GreaterOrEqual].prec = PrecedenceCompare
	table[InstanceOf].prec = PrecedenceCompare
	table[In].prec = PrecedenceCompare
	table[ShiftLeft].prec = PrecedenceShift
	table[ShiftRight].prec = PrecedenceShift
	table[UnsignedShiftRight].prec = PrecedenceShift
	table[Plus].prec = PrecedenceAdd
	table[Minus].prec = PrecedenceAdd
	table[Multiply].prec = PrecedenceMultiply
	table[Slash].prec = PrecedenceMultiply
	table[Remainder].prec = PrecedenceMultiply
	table[Exponent].prec = PrecedenceExponentiation
}

// Precedence returns the left binding power of a binary operator, or zero
// when t is not one.
func (t Token) Precedence() Precedence { return table[t].prec }

// IsKeyword reports whether t is reserved in all code.
func (t Token) IsKeyword() bool { return table[t].flags&attrKeyword != 0 }

// IsStrictReserved reports whether t is reserved in strict mode code only.
func (t Token) IsStrictReserved() bool { return table[t].flags&attrStrictReserved != 0 }

// IsContextual reports whether t is a contextual word.
func (t Token) IsContextual() bool { return table[t].flags&attrContextual != 0 }

// IsAssign reports whether t is = or a compound assignment operator.
func (t Token) IsAssign() bool { return table[t].flags&attrAssign != 0 }

func (t Token) IsUpdate() bool  { return table[t].flags&attrUpdate != 0 }
func (t Token) IsUnary() bool   { return table[t].flags&attrUnary != 0 }
func (t Token) IsLogical() bool { return table[t].flags&attrLogical != 0 }

// IsTemplate reports whether t is any of the four template tokens.
func (t Token) IsTemplate() bool { return table[t].flags&attrTemplate != 0 }

// IsLiteralKey reports whether t is a string or numeric literal usable as
// a property key.
func (t Token) IsLiteralKey() bool { return table[t].flags&attrLiteralKey != 0 }

// IsIdentifierName reports whether t lexes as an IdentifierName, which is
// what property names after a dot and in object literals accept.
func (t Token) IsIdentifierName() bool {
	return t == Identifier || t == EscapedReserved ||
		table[t].flags&(attrKeyword|attrStrictReserved|attrContextual) != 0
}

// IsIdentifierLike reports whether t can ever name a binding or reference.
// Context rules (strict mode, generators, async functions) still apply.
func (t Token) IsIdentifierLike() bool {
	return t == Identifier || table[t].flags&(attrStrictReserved|attrContextual) != 0
}

var keywordTable = map[string]Token{}

func init() {
	for t := Break; t < EscapedReserved; t++ {
		keywordTable[token2string[t]] = t
	}
}

// Lookup maps an identifier spelling to its keyword token. Plain identifiers
// return Identifier.
func Lookup(name string) Token {
	if len(name) < 2 || len(name) > 10 {
		return Identifier
	}
	if t, ok := keywordTable[name]; ok {
		return t
	}
	return Identifier
}
