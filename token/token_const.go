package token

const (
	Illegal Token = iota
	EOF

	Identifier
	PrivateIdentifier
	String
	Number
	BigInt
	RegularExpression

	NoSubstitutionTemplate // `...`
	TemplateHead           // `...${
	TemplateMiddle         // }...${
	TemplateTail           // }...`

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	Assign                   // =
	AddAssign                // +=
	SubtractAssign           // -=
	MultiplyAssign           // *=
	ExponentAssign           // **=
	QuotientAssign           // /=
	RemainderAssign          // %=
	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=
	LogicalAndAssign         // &&=
	LogicalOrAssign          // ||=
	CoalesceAssign           // ??=

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??
	Increment  // ++
	Decrement  // --

	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=
	Not            // !
	BitwiseNot     // ~

	LeftParenthesis  // (
	LeftBracket      // [
	LeftBrace        // {
	Comma            // ,
	Period           // .
	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	QuestionDot      // ?.
	Arrow            // =>
	Ellipsis         // ...

	// Reserved words.
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Enum
	Export
	Extends
	False
	Finally
	For
	Function
	If
	Import
	In
	InstanceOf
	New
	Null
	Return
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With

	// Reserved in strict mode code only.
	Implements
	Interface
	Let
	Package
	Private
	Protected
	Public
	Static
	Yield

	// Contextual words. These lex as identifiers everywhere the grammar
	// does not give them a meaning.
	As
	Async
	Await
	From
	Get
	Meta
	Of
	Set
	Target
	Eval
	Arguments

	// EscapedReserved is a reserved word spelled with unicode escapes.
	EscapedReserved

	count
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	EOF:                      "end of source",
	Identifier:               "Identifier",
	PrivateIdentifier:        "PrivateIdentifier",
	String:                   "String",
	Number:                   "Number",
	BigInt:                   "BigInt",
	RegularExpression:        "RegularExpression",
	NoSubstitutionTemplate:   "Template",
	TemplateHead:             "Template",
	TemplateMiddle:           "Template",
	TemplateTail:             "Template",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Exponent:                 "**",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	Assign:                   "=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	Less:                     "<",
	Greater:                  ">",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	Not:                      "!",
	BitwiseNot:               "~",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	QuestionDot:              "?.",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	Break:                    "break",
	Case:                     "case",
	Catch:                    "catch",
	Class:                    "class",
	Const:                    "const",
	Continue:                 "continue",
	Debugger:                 "debugger",
	Default:                  "default",
	Delete:                   "delete",
	Do:                       "do",
	Else:                     "else",
	Enum:                     "enum",
	Export:                   "export",
	Extends:                  "extends",
	False:                    "false",
	Finally:                  "finally",
	For:                      "for",
	Function:                 "function",
	If:                       "if",
	Import:                   "import",
	In:                       "in",
	InstanceOf:               "instanceof",
	New:                      "new",
	Null:                     "null",
	Return:                   "return",
	Super:                    "super",
	Switch:                   "switch",
	This:                     "this",
	Throw:                    "throw",
	True:                     "true",
	Try:                      "try",
	Typeof:                   "typeof",
	Var:                      "var",
	Void:                     "void",
	While:                    "while",
	With:                     "with",
	Implements:               "implements",
	Interface:                "interface",
	Let:                      "let",
	Package:                  "package",
	Private:                  "private",
	Protected:                "protected",
	Public:                   "public",
	Static:                   "static",
	Yield:                    "yield",
	As:                       "as",
	Async:                    "async",
	Await:                    "await",
	From:                     "from",
	Get:                      "get",
	Meta:                     "meta",
	Of:                       "of",
	Set:                      "set",
	Target:                   "target",
	Eval:                     "eval",
	Arguments:                "arguments",
	EscapedReserved:          "escaped keyword",
}
