package scanner

import (
	"fmt"
	"strings"
)

// ErrorCode identifies a diagnostic. The zero value means no error.
type ErrorCode uint16

const (
	ErrNone ErrorCode = iota

	// Lexical errors.
	ErrInvalidCharacter
	ErrUnterminatedComment
	ErrHTMLCommentInModule
	ErrUnterminatedString
	ErrUnterminatedTemplate
	ErrUnterminatedRegExp
	ErrInvalidEscapeSequence
	ErrInvalidHexEscapeSequence
	ErrInvalidUnicodeEscapeSequence
	ErrUnicodeOverflow
	ErrStrictOctalEscape
	ErrStrictEightAndNine
	ErrTemplateOctalLiteral
	ErrTemplateEightAndNine
	ErrStrictOctalLiteral
	ErrStrictDecimalWithLeadingZero
	ErrExpectedNumberInRadix
	ErrMissingExponent
	ErrContinuousNumericSeparator
	ErrTrailingNumericSeparator
	ErrNumericSeparatorNotAllowed
	ErrInvalidBigInt
	ErrIdentifierAfterNumber
	ErrDuplicateRegExpFlag
	ErrUnexpectedRegExpFlag
	ErrInvalidRegExp
	ErrInvalidPrivateName

	// Syntactic and early errors.
	ErrUnexpectedToken
	ErrExpectedToken
	ErrUnexpectedEOF
	ErrInvalidEscapedKeyword
	ErrInvalidLHSInAssignment
	ErrInvalidLHSInUpdate
	ErrInvalidLHSInFor
	ErrInvalidDestructuringTarget
	ErrInvalidShorthandPropertyInit
	ErrInvalidParenthesizedPattern
	ErrDuplicateProto
	ErrUnaryExpressionsAsLHSOfExponent
	ErrCoalesceMixedWithLogical
	ErrStrictEvalArguments
	ErrStrictDelete
	ErrDeletePrivateField
	ErrStrictWith
	ErrStrictFunction
	ErrSloppyFunction
	ErrAsyncFunctionInSingleStatement
	ErrGeneratorInSingleStatement
	ErrClassForbiddenAsStatement
	ErrLexicalInSingleStatement
	ErrLabelledFunction
	ErrStrictReserved
	ErrReservedWord
	ErrLetInLexicalBinding
	ErrYieldInParameter
	ErrAwaitInParameter
	ErrAwaitOutsideAsync
	ErrAwaitInStaticBlock
	ErrNoLineBreakBeforeArrow
	ErrInvalidArrowParameters
	ErrRestMustBeLast
	ErrRestTrailingComma
	ErrRestWithInitializer
	ErrInvalidRestBinding
	ErrDuplicateBinding
	ErrDuplicateParameter
	ErrShadowedCatchClause
	ErrIllegalBreak
	ErrIllegalContinue
	ErrUnknownLabel
	ErrIllegalContinueLabel
	ErrLabelRedeclaration
	ErrIllegalReturn
	ErrNewlineAfterThrow
	ErrNoCatchOrFinally
	ErrMultipleDefaultsInSwitch
	ErrForInOfLoopInitializer
	ErrForInOfLoopMultiBindings
	ErrForOfLet
	ErrForOfAsync
	ErrForAwaitNotOf
	ErrForAwaitOutsideAsync
	ErrMissingInitInConst
	ErrDeclarationMissingInitializer
	ErrImportExportOutsideModule
	ErrImportMetaOutsideModule
	ErrInvalidNewTarget
	ErrInvalidSuperProperty
	ErrInvalidSuperCall
	ErrOptionalChainingNoTemplate
	ErrOptionalChainingNoNew
	ErrOptionalChainingNoSuper
	ErrInvalidOptionalChainTarget
	ErrBadGetterArity
	ErrBadSetterArity
	ErrBadSetterRestParameter
	ErrDuplicateConstructor
	ErrInvalidConstructor
	ErrStaticPrototype
	ErrInvalidFieldConstructor
	ErrDuplicatePrivateName
	ErrUndeclaredPrivateName
	ErrPrivateNameConstructor
	ErrArgumentsInClassField
	ErrUseStrictNonSimpleParams
	ErrUndefinedExport
	ErrDuplicateExport
	ErrInvalidExportName
	ErrInvalidImportAttribute
	ErrTooDeeplyNested
)

var errorMessages = [...]string{
	ErrInvalidCharacter:             "Invalid or unexpected token '%0'",
	ErrUnterminatedComment:          "Unterminated MultiLineComment",
	ErrHTMLCommentInModule:          "HTML comments are not allowed in modules or without web compatibility",
	ErrUnterminatedString:           "Unterminated string literal",
	ErrUnterminatedTemplate:         "Unterminated template literal",
	ErrUnterminatedRegExp:           "Unterminated regular expression",
	ErrInvalidEscapeSequence:        "Invalid escape sequence",
	ErrInvalidHexEscapeSequence:     "Invalid hexadecimal escape sequence",
	ErrInvalidUnicodeEscapeSequence: "Invalid Unicode escape sequence",
	ErrUnicodeOverflow:              "Undefined Unicode code-point",
	ErrStrictOctalEscape:            "Octal escape sequences are not allowed in strict mode",
	ErrStrictEightAndNine:           "Escapes \\8 or \\9 are not allowed in strict mode",
	ErrTemplateOctalLiteral:         "Octal escape sequences are not allowed in template strings",
	ErrTemplateEightAndNine:         "Escapes \\8 or \\9 are not allowed in template strings",
	ErrStrictOctalLiteral:           "Octal literals are not allowed in strict mode",
	ErrStrictDecimalWithLeadingZero: "Decimals with leading zeros are not allowed in strict mode",
	ErrExpectedNumberInRadix:        "Expected number in radix %0",
	ErrMissingExponent:              "Non-number found after exponent indicator",
	ErrContinuousNumericSeparator:   "Only one underscore is allowed as numeric separator",
	ErrTrailingNumericSeparator:     "Numeric separators are not allowed at the end of numeric literals",
	ErrNumericSeparatorNotAllowed:   "Numeric separator is not allowed here",
	ErrInvalidBigInt:                "Invalid BigInt syntax",
	ErrIdentifierAfterNumber:        "An identifier or keyword cannot immediately follow a numeric literal",
	ErrDuplicateRegExpFlag:          "Duplicate regular expression flag '%0'",
	ErrUnexpectedRegExpFlag:         "Unexpected regular expression flag '%0'",
	ErrInvalidRegExp:                "Invalid regular expression: %0",
	ErrInvalidPrivateName:           "Invalid private identifier",

	ErrUnexpectedToken:                 "Unexpected token '%0'",
	ErrExpectedToken:                   "Expected '%0'",
	ErrUnexpectedEOF:                   "Unexpected end of input",
	ErrInvalidEscapedKeyword:           "Keywords cannot contain escape characters",
	ErrInvalidLHSInAssignment:          "Invalid left-hand side in assignment",
	ErrInvalidLHSInUpdate:              "Invalid left-hand side expression in %0 operation",
	ErrInvalidLHSInFor:                 "Invalid left-hand side in for-%0 loop",
	ErrInvalidDestructuringTarget:      "Invalid destructuring assignment target",
	ErrInvalidShorthandPropertyInit:    "Invalid shorthand property initializer",
	ErrInvalidParenthesizedPattern:     "Invalid parenthesized pattern",
	ErrDuplicateProto:                  "Property name __proto__ appears more than once in object literal",
	ErrUnaryExpressionsAsLHSOfExponent: "Unary expressions as the left operand of an exponentiation expression must be disambiguated with parentheses",
	ErrCoalesceMixedWithLogical:        "Nullish coalescing cannot be mixed with || or && without parentheses",
	ErrStrictEvalArguments:             "Unexpected eval or arguments in strict mode",
	ErrStrictDelete:                    "Calling delete on expression not allowed in strict mode",
	ErrDeletePrivateField:              "Private fields can not be deleted",
	ErrStrictWith:                      "Strict mode code may not include a with statement",
	ErrStrictFunction:                  "In strict mode code, functions can only be declared at top level or inside a block",
	ErrSloppyFunction:                  "In non-strict mode code, functions can only be declared at top level, inside a block, or as the body of an if statement",
	ErrAsyncFunctionInSingleStatement:  "Async functions can only be declared at the top level or inside a block",
	ErrGeneratorInSingleStatement:      "Generators can only be declared at the top level or inside a block",
	ErrClassForbiddenAsStatement:       "Class declaration can't appear in single-statement context",
	ErrLexicalInSingleStatement:        "Lexical declaration cannot appear in a single-statement context",
	ErrLabelledFunction:                "Labelled function declarations are not allowed here",
	ErrStrictReserved:                  "Unexpected strict mode reserved word '%0'",
	ErrReservedWord:                    "Unexpected reserved word '%0'",
	ErrLetInLexicalBinding:             "let is disallowed as a lexically bound name",
	ErrYieldInParameter:                "Yield expression not allowed in formal parameter",
	ErrAwaitInParameter:                "Await expression not allowed in formal parameter",
	ErrAwaitOutsideAsync:               "Await is only valid in async functions and the top level bodies of modules",
	ErrAwaitInStaticBlock:              "Await is not allowed in class static blocks",
	ErrNoLineBreakBeforeArrow:          "No line break is allowed before '=>'",
	ErrInvalidArrowParameters:          "Invalid arrow function parameter list",
	ErrRestMustBeLast:                  "Rest element must be last element",
	ErrRestTrailingComma:               "A rest element may not have a trailing comma",
	ErrRestWithInitializer:             "Rest elements cannot have a default value",
	ErrInvalidRestBinding:              "Invalid rest binding target",
	ErrDuplicateBinding:                "Identifier '%0' has already been declared",
	ErrDuplicateParameter:              "Duplicate parameter name '%0' not allowed in this context",
	ErrShadowedCatchClause:             "Identifier '%0' conflicts with the catch parameter",
	ErrIllegalBreak:                    "Illegal break statement",
	ErrIllegalContinue:                 "Illegal continue statement: no surrounding iteration statement",
	ErrUnknownLabel:                    "Undefined label '%0'",
	ErrIllegalContinueLabel:            "Illegal continue statement: '%0' does not denote an iteration statement",
	ErrLabelRedeclaration:              "Label '%0' has already been declared",
	ErrIllegalReturn:                   "Illegal return statement",
	ErrNewlineAfterThrow:               "Illegal newline after throw",
	ErrNoCatchOrFinally:                "Missing catch or finally after try",
	ErrMultipleDefaultsInSwitch:        "More than one default clause in switch statement",
	ErrForInOfLoopInitializer:          "'for-%0' loop variable declaration may not have an initializer",
	ErrForInOfLoopMultiBindings:        "Invalid left-hand side in for-%0 loop: Must have a single binding",
	ErrForOfLet:                        "The left-hand side of a for-of loop may not be 'let'",
	ErrForOfAsync:                      "The left-hand side of a for-of loop may not be 'async'",
	ErrForAwaitNotOf:                   "'for await' loop should be used with 'of'",
	ErrForAwaitOutsideAsync:            "'for await' is only valid in async functions and the top level bodies of modules",
	ErrMissingInitInConst:              "Missing initializer in const declaration",
	ErrDeclarationMissingInitializer:   "Missing initializer in destructuring declaration",
	ErrImportExportOutsideModule:       "Cannot use import or export outside a module",
	ErrImportMetaOutsideModule:         "Cannot use 'import.meta' outside a module",
	ErrInvalidNewTarget:                "new.target expression is not allowed here",
	ErrInvalidSuperProperty:            "'super' keyword unexpected here",
	ErrInvalidSuperCall:                "Calls to super() are only valid inside a derived class constructor",
	ErrOptionalChainingNoTemplate:      "Invalid tagged template on optional chain",
	ErrOptionalChainingNoNew:           "Invalid optional chain from new expression",
	ErrOptionalChainingNoSuper:         "Invalid optional chain from super property",
	ErrInvalidOptionalChainTarget:      "Invalid left-hand side: optional chain",
	ErrBadGetterArity:                  "Getter must not have any formal parameters",
	ErrBadSetterArity:                  "Setter must have exactly one formal parameter",
	ErrBadSetterRestParameter:          "Setter function argument must not be a rest parameter",
	ErrDuplicateConstructor:            "A class may only have one constructor",
	ErrInvalidConstructor:              "Class constructor may not be a%0",
	ErrStaticPrototype:                 "Classes may not have a static property named 'prototype'",
	ErrInvalidFieldConstructor:         "Classes may not have a field named 'constructor'",
	ErrDuplicatePrivateName:            "Identifier '#%0' has already been declared",
	ErrUndeclaredPrivateName:           "Private field '#%0' must be declared in an enclosing class",
	ErrPrivateNameConstructor:          "Classes may not have a private field named '#constructor'",
	ErrArgumentsInClassField:           "'arguments' is not allowed in class field initializer or static initialization block",
	ErrUseStrictNonSimpleParams:        "Illegal 'use strict' directive in function with non-simple parameter list",
	ErrUndefinedExport:                 "Export '%0' is not defined in module",
	ErrDuplicateExport:                 "Duplicate export of '%0'",
	ErrInvalidExportName:               "A string literal cannot be used as an exported binding without 'from'",
	ErrInvalidImportAttribute:          "Duplicate import attribute '%0'",
	ErrTooDeeplyNested:                 "Input is nested too deeply",
}

// Error is a parse failure at a source position. Index is a byte offset,
// Line is 1-based and Column is a 0-based byte offset within the line.
type Error struct {
	Index   int
	Line    int
	Column  int
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d]: %s", e.Line, e.Column, e.Message)
}

// NewError builds the diagnostic for code, substituting %0 and %1 in the
// message template with params.
func NewError(code ErrorCode, index, line, column int, params ...string) *Error {
	msg := ""
	if int(code) < len(errorMessages) {
		msg = errorMessages[code]
	}
	for i, p := range params {
		msg = strings.ReplaceAll(msg, "%"+string(rune('0'+i)), p)
	}
	return &Error{
		Index:   index,
		Line:    line,
		Column:  column,
		Code:    code,
		Message: msg,
	}
}

// Message returns the uninterpolated template for code.
func (c ErrorCode) Message() string {
	if int(c) < len(errorMessages) {
		return errorMessages[c]
	}
	return ""
}

// fail aborts the current scan with an error at the cursor.
func (s *Scanner) fail(code ErrorCode, params ...string) {
	panic(s.errorAt(s.src.pos, code, params...))
}

// errorAt assumes index lies on the cursor's current line.
func (s *Scanner) errorAt(index int, code ErrorCode, params ...string) *Error {
	col := index - s.src.lineStart
	if col < 0 {
		col = 0
	}
	return NewError(code, index, s.src.line, col, params...)
}

// recover converts a scanning panic into s.Err.
func (s *Scanner) recover() {
	if r := recover(); r != nil {
		err, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		s.Err = err
		s.Kind = 0
	}
}
