package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/parser/scanner"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string, opts *parser.Options) *ast.Program {
	t.Helper()
	p, err := parser.Parse(code, opts)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// mustFail parses code and fails the test unless parsing fails.
func mustFail(t *testing.T, code string, opts *parser.Options) *parser.Error {
	t.Helper()
	_, err := parser.Parse(code, opts)
	if err == nil {
		t.Fatalf("expected an error for:\n%s", code)
	}
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %v has type %T; want *parser.Error", err, err)
	}
	return perr
}

// assertJSON checks the compact ESTree encoding of code.
func assertJSON(t *testing.T, code string, opts *parser.Options, want string) {
	t.Helper()
	b, err := ast.Marshal(mustParse(t, code, opts))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Errorf("JSON mismatch for %q (-want +got):\n%s", code, diff)
	}
}

var (
	sloppy   = &parser.Options{}
	strict   = &parser.Options{ImpliedStrict: true}
	module   = &parser.Options{Module: true}
	noCompat = &parser.Options{DisableWebCompat: true}
)

type syntaxCase struct {
	code string
	ok   bool
}

func runCases(t *testing.T, opts *parser.Options, cases []syntaxCase) {
	t.Helper()
	for _, tt := range cases {
		_, err := parser.Parse(tt.code, opts)
		switch {
		case tt.ok && err != nil:
			t.Errorf("Parse(%q) failed: %v", tt.code, err)
		case !tt.ok && err == nil:
			t.Errorf("Parse(%q) succeeded; want an error", tt.code)
		}
	}
}

// ---------------------------------------------------------------------------
// Entry points and output shape
// ---------------------------------------------------------------------------

func TestEmptyProgram(t *testing.T) {
	assertJSON(t, "", nil, `{"type":"Program","sourceType":"script","body":[]}`)
	assertJSON(t, "  // only a comment\n", module, `{"type":"Program","sourceType":"module","body":[]}`)
}

func TestTreeShape(t *testing.T) {
	got := mustParse(t, "a + b * c", nil)
	want := &ast.Program{
		SourceType: "script",
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.BinaryExpression{
				Operator: "+",
				Left:     &ast.Identifier{Name: "a"},
				Right: &ast.BinaryExpression{
					Operator: "*",
					Left:     &ast.Identifier{Name: "b"},
					Right:    &ast.Identifier{Name: "c"},
				},
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestAssociativity(t *testing.T) {
	assertJSON(t, "a ** b ** c", nil,
		`{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":`+
			`{"type":"BinaryExpression","operator":"**","left":{"type":"Identifier","name":"a"},`+
			`"right":{"type":"BinaryExpression","operator":"**","left":{"type":"Identifier","name":"b"},`+
			`"right":{"type":"Identifier","name":"c"}}}}]}`)
	assertJSON(t, "a - b - c", nil,
		`{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":`+
			`{"type":"BinaryExpression","operator":"-","left":{"type":"BinaryExpression","operator":"-",`+
			`"left":{"type":"Identifier","name":"a"},"right":{"type":"Identifier","name":"b"}},`+
			`"right":{"type":"Identifier","name":"c"}}}]}`)
}

func TestLocations(t *testing.T) {
	prog := mustParse(t, "x;\n  a + bb", &parser.Options{Loc: true})
	if prog.Range == nil || prog.Start != 0 || prog.End != 11 {
		t.Fatalf("program range = %+v; want 0-11", prog.Range)
	}
	if got := prog.Loc.End; got != (ast.Position{Line: 2, Column: 8}) {
		t.Errorf("program end = %+v; want 2:8", got)
	}

	stmt := prog.Body[1].(*ast.ExpressionStatement)
	if stmt.Start != 5 || stmt.End != 11 {
		t.Errorf("statement range = %d-%d; want 5-11", stmt.Start, stmt.End)
	}
	if got := stmt.Loc.Start; got != (ast.Position{Line: 2, Column: 2}) {
		t.Errorf("statement start = %+v; want 2:2", got)
	}

	bin := stmt.Expression.(*ast.BinaryExpression)
	right := bin.Right.(*ast.Identifier)
	if right.Start != 9 || right.End != 11 || right.Loc.Start.Column != 6 {
		t.Errorf("identifier range = %+v", right.Range)
	}
}

func TestLocationsIncludeClosingParen(t *testing.T) {
	prog := mustParse(t, "a + (b)", &parser.Options{Loc: true})
	bin := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.BinaryExpression)
	if bin.Start != 0 || bin.End != 7 {
		t.Errorf("binary range = %d-%d; want 0-7", bin.Start, bin.End)
	}
	if id := bin.Right.(*ast.Identifier); id.Start != 5 || id.End != 6 {
		t.Errorf("identifier range = %d-%d; want 5-6", id.Start, id.End)
	}
}

func TestNoLocationsByDefault(t *testing.T) {
	prog := mustParse(t, "a", nil)
	if prog.Range != nil || prog.Body[0].Span() != nil {
		t.Errorf("ranges attached without Loc")
	}
}

func TestErrorValue(t *testing.T) {
	perr := mustFail(t, "a b", nil)
	if perr.Code != scanner.ErrUnexpectedToken {
		t.Errorf("code = %v; want ErrUnexpectedToken", perr.Code)
	}
	if perr.Index != 2 || perr.Line != 1 || perr.Column != 2 {
		t.Errorf("position = %d [%d:%d]; want 2 [1:2]", perr.Index, perr.Line, perr.Column)
	}
	if got, want := perr.Error(), "[1:2]: Unexpected token 'b'"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}

	perr = mustFail(t, "a\n  @", nil)
	if perr.Code != scanner.ErrInvalidCharacter || perr.Line != 2 || perr.Column != 2 {
		t.Errorf("lexical error = %v", perr)
	}

	if perr = mustFail(t, "(a", nil); perr.Code != scanner.ErrUnexpectedEOF {
		t.Errorf("code = %v; want ErrUnexpectedEOF", perr.Code)
	}
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat("(", parser.MaxDepth) + "a" + strings.Repeat(")", parser.MaxDepth)
	if perr := mustFail(t, deep, nil); perr.Code != scanner.ErrTooDeeplyNested {
		t.Errorf("code = %v; want ErrTooDeeplyNested", perr.Code)
	}
	shallow := strings.Repeat("[", 100) + strings.Repeat("]", 100)
	mustParse(t, shallow, nil)
}

func TestParseScriptIgnoresModuleFlag(t *testing.T) {
	prog, err := parser.ParseScript("var await = 1", module)
	if err != nil {
		t.Fatal(err)
	}
	if prog.SourceType != "script" {
		t.Errorf("sourceType = %q", prog.SourceType)
	}
	if _, err := parser.ParseModule("var await = 1", nil); err == nil {
		t.Errorf("await binding accepted in a module")
	}
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

func TestDirectivesOption(t *testing.T) {
	prog := mustParse(t, `"use strict"; 'b'; c; "d"`, &parser.Options{Directives: true})
	var got []string
	for _, s := range prog.Body {
		got = append(got, s.(*ast.ExpressionStatement).Directive)
	}
	want := []string{"use strict", "b", "", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("directives mismatch (-want +got):\n%s", diff)
	}

	prog = mustParse(t, `"use strict"`, nil)
	if d := prog.Body[0].(*ast.ExpressionStatement).Directive; d != "" {
		t.Errorf("directive set without the option: %q", d)
	}
}

func TestParenthesizedStringIsNotDirective(t *testing.T) {
	mustParse(t, `("use strict"); with (a) {}`, nil)
}

func TestRawOption(t *testing.T) {
	assertJSON(t, "0x10", &parser.Options{Raw: true},
		`{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":`+
			`{"type":"Literal","value":16,"raw":"0x10"}}]}`)
	assertJSON(t, "0x10", nil,
		`{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":`+
			`{"type":"Literal","value":16}}]}`)
}

func TestGlobalReturnOption(t *testing.T) {
	mustFail(t, "return 1", nil)
	mustParse(t, "return 1", &parser.Options{GlobalReturn: true})
}

func TestImpliedStrictOption(t *testing.T) {
	mustParse(t, "with (a) {}", nil)
	if perr := mustFail(t, "with (a) {}", strict); perr.Code != scanner.ErrStrictWith {
		t.Errorf("code = %v; want ErrStrictWith", perr.Code)
	}
}

func TestWebCompatOption(t *testing.T) {
	mustParse(t, "a <!-- b\n--> c\n", nil)
	mustFail(t, "a <!-- b", noCompat)
	mustFail(t, "a <!-- b", module)

	runCases(t, noCompat, []syntaxCase{
		{"if (a) function f() {}", false},
		{"l: function f() {}", false},
		{"{ function f() {} function f() {} }", false},
		{"try {} catch (e) { var e; }", false},
		{"for (var a = 0 in b);", false},
	})
}

// ---------------------------------------------------------------------------
// Expressions and reinterpretation
// ---------------------------------------------------------------------------

func TestDestructuringAssignment(t *testing.T) {
	assertJSON(t, "[a, {b}] = c", nil,
		`{"type":"Program","sourceType":"script","body":[{"type":"ExpressionStatement","expression":`+
			`{"type":"AssignmentExpression","operator":"=","left":{"type":"ArrayPattern","elements":[`+
			`{"type":"Identifier","name":"a"},{"type":"ObjectPattern","properties":[{"type":"Property",`+
			`"key":{"type":"Identifier","name":"b"},"value":{"type":"Identifier","name":"b"},`+
			`"kind":"init","method":false,"shorthand":true,"computed":false}]}]},`+
			`"right":{"type":"Identifier","name":"c"}}}]}`)
}

func TestPatternErrorPositions(t *testing.T) {
	tests := []struct {
		code   string
		want   scanner.ErrorCode
		column int
	}{
		{"({a:1} = 1)", scanner.ErrInvalidDestructuringTarget, 4},
		{"[a, [b, c + 1]] = d", scanner.ErrInvalidDestructuringTarget, 8},
		{"[a, ...b, c] = d", scanner.ErrRestMustBeLast, 4},
		{"([a, 1]) => 0", scanner.ErrInvalidDestructuringTarget, 5},
		{"(a, {b: c.d}) => 0", scanner.ErrInvalidDestructuringTarget, 8},
	}
	for _, opts := range []*parser.Options{nil, {Loc: true}} {
		for _, tt := range tests {
			perr := mustFail(t, tt.code, opts)
			if perr.Code != tt.want || perr.Line != 1 || perr.Column != tt.column || perr.Index != tt.column {
				t.Errorf("Parse(%q) error = %v (code %v); want column %d", tt.code, perr, perr.Code, tt.column)
			}
		}
	}
}

func TestReinterpretation(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"({a = 1} = b)", true},
		{"({a = 1})", false},
		{"[{a = 1}] = b", true},
		{"f({a = 1})", false},
		{"({a = 1}) => a", true},
		{"(a) = 4", true},
		{"(a.b) = 4", true},
		{"({a}) = 1", false},
		{"([a]) = 1", false},
		{"3 = 4", false},
		{"a + b = c", false},
		{"a?.b = c", false},
		{"[...a, b] = c", false},
		{"[...a,] = c", false},
		{"[...a] = c", true},
		{"({...a} = b)", true},
		{"({...{a}} = b)", false},
		{"({get a() {}} = b)", false},
		{"({a() {}} = b)", false},
		{"({a: b.c} = d)", true},
		{"[(a)] = b", true},
		{"[a = 1] = b", true},
		{"a += 1", true},
		{"[a] += 1", false},
		{"({__proto__: 1, __proto__: 2})", false},
		{"({__proto__: a, __proto__: b} = c)", true},
		{"++a", true},
		{"++a.b", true},
		{"++(a)", true},
		{"++1", false},
		{"a++ ++", false},
	})
}

func TestStrictAssignmentTargets(t *testing.T) {
	runCases(t, strict, []syntaxCase{
		{"eval = 1", false},
		{"arguments++", false},
		{"[eval] = a", false},
		{"a.eval = 1", true},
		{"delete a", false},
		{"delete a.b", true},
	})
}

func TestArrowFunctions(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"x => x * 2", true},
		{"(a, b) => a + b", true},
		{"() => {}", true},
		{"(a = 1, {b}, [c], ...d) => 0", true},
		{"async x => x", true},
		{"async (a) => await a", true},
		{"async () => {}", true},
		{"async(a, b)", true},
		{"(a, a) => 1", false},
		{"(...a, b) => 1", false},
		{"(...a,) => 1", false},
		{"(a\n) => 1", true},
		{"(a)\n=> 1", false},
		{"a\n=> 1", false},
		{"(a, b)", true},
		{"()", false},
		{"(a,)", false},
		{"(a.b) => 1", false},
		{"((a)) => 1", false},
		{"async (await) => 1", false},
		{"async (x = await 1) => x", false},
		{"function* g() { (x = yield) => 1; }", false},
		{"(eval) => { 'use strict' }", false},
		{"(a = 1) => { 'use strict' }", false},
		{"x => {}\n(1)", true},
		{"async => 1", true},
		{"var f = async => async", true},
		{"async\n=> 1", false},
	})

	prog := mustParse(t, "async => async", nil)
	fn := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.ArrowFunctionExpression)
	if fn.Async {
		t.Errorf("arrow with a parameter named async is marked async")
	}
	if id, ok := fn.Params[0].(*ast.Identifier); !ok || id.Name != "async" {
		t.Errorf("params = %#v", fn.Params)
	}
}

func TestExponentAndCoalesce(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"-2 ** 2", false},
		{"(-2) ** 2", true},
		{"2 ** -2", true},
		{"typeof a ** 2", false},
		{"a ?? b || c", false},
		{"a || b ?? c", false},
		{"(a ?? b) || c", true},
		{"a ?? (b || c)", true},
		{"a ?? b ?? c", true},
		{"a && b || c", true},
	})
}

func TestOptionalChaining(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"a?.b.c(d)?.[e]", true},
		{"a?.5:1", true},
		{"new a?.b", false},
		{"a?.`x`", false},
		{"a?.b`x`", false},
		{"a?.#b", false},
	})

	prog := mustParse(t, "a?.b.c", nil)
	chain, ok := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.ChainExpression)
	if !ok {
		t.Fatalf("expression is %T; want *ast.ChainExpression", prog.Body[0].(*ast.ExpressionStatement).Expression)
	}
	outer := chain.Expression.(*ast.MemberExpression)
	if outer.Optional || !outer.Object.(*ast.MemberExpression).Optional {
		t.Errorf("optional flags are wrong")
	}
}

func TestTemplates(t *testing.T) {
	mustFail(t, "`\\08`", nil)

	prog := mustParse(t, "tag`\\08${a}b`", nil)
	tagged := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.TaggedTemplateExpression)
	quasis := tagged.Quasi.Quasis
	if len(quasis) != 2 {
		t.Fatalf("got %d quasis; want 2", len(quasis))
	}
	if quasis[0].Value.Cooked != nil || quasis[0].Value.Raw != `\08` {
		t.Errorf("first quasi = %+v; want raw \\08 and no cooked value", quasis[0].Value)
	}
	if c := quasis[1].Value.Cooked; c == nil || *c != "b" || !quasis[1].Tail {
		t.Errorf("second quasi = %+v", quasis[1])
	}

	runCases(t, sloppy, []syntaxCase{
		{"`a${b}c${d}e`", true},
		{"`a${b + `c${d}`}`", true},
		{"`a${}`", false},
		{"`a", false},
	})
}

func TestLiterals(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"1_000_000", true},
		{"1__0", false},
		{"0x_1", false},
		{"010", true},
		{"10n", true},
		{"1.5n", false},
		{"/a/g.test(x)", true},
		{"a = /[/]/", true},
		{"/a/gg", false},
		{"'\\u{1F600}'", true},
		{"'\\u{110000}'", false},
	})

	prog := mustParse(t, "0x1_0n", nil)
	lit := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.Literal)
	if lit.Bigint != "0x10" {
		t.Errorf("bigint = %q; want 0x10", lit.Bigint)
	}
}

func TestYieldAndAwait(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"var yield = 1", true},
		{"function* g() { var yield; }", false},
		{"function* g() { yield 1; yield* x; yield; }", true},
		{"function* g(x = yield) {}", false},
		{"function* g() { function f() { var yield; } }", true},
		{"var await = 1", true},
		{"async function f() { await x; }", true},
		{"async function f() { var await; }", false},
		{"async function f(x = await 1) {}", false},
		{"await x", false},
		{"async function f() { for await (x of y); }", true},
		{"async function f() { for await (x in y); }", false},
		{"for await (x of y);", false},
	})

	runCases(t, module, []syntaxCase{
		{"await x", true},
		{"for await (x of y);", true},
		{"function f() { await x; }", false},
	})

	runCases(t, strict, []syntaxCase{
		{"var yield", false},
		{"var let", false},
		{"var static", false},
	})
}

func TestMetaProperties(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"new.target", false},
		{"function f() { new.target }", true},
		{"function f() { () => new.target }", true},
		{"import.meta", false},
		{"import('x')", true},
		{"super.x", false},
		{"({ m() { return super.x; } })", true},
		{"({ m: function () { return super.x; } })", false},
	})
	mustParse(t, "import.meta.url", module)
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestStrictDirective(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{`"use strict"; 010`, false},
		{`"\01"; "use strict";`, false},
		{`'use strict'; with (a) {}`, false},
		{`"use\x20strict"; with (a) {}`, true},
		{`function f(a, a) {}`, true},
		{`function f(a, a) { "use strict" }`, false},
		{`function f(a = 1) { "use strict" }`, false},
		{`function f({a}) { "use strict" }`, false},
		{`function eval() { "use strict" }`, false},
		{`function f(eval) { "use strict" }`, false},
		{`function f() { "use strict"; 010 }`, false},
		{`function f() { "use strict" } with (a) {}`, true},
		{`function f(a, a) {} "use strict"`, true},
	})
}

func TestForStatements(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"for (;;) {}", true},
		{"for (var i = 0, j = 1; i < j; i++) {}", true},
		{"for (let i = 0; i < 1; i++) {}", true},
		{"for (const x of y);", true},
		{"for (const x in y);", true},
		{"for (const x;;);", false},
		{"for (var [a];;);", false},
		{"for (var a = 0 in b);", true},
		{"for (let a = 0 in b);", false},
		{"for (var [a] = 0 in b);", false},
		{"for (var a = 0 of b);", false},
		{"for (var a, b of c);", false},
		{"for (a in b);", true},
		{"for (a.b of c);", true},
		{"for ([a, b] of c);", true},
		{"for ((a) in b);", true},
		{"for (a + b of c);", false},
		{"for (let in x);", true},
		{"for (let of x);", false},
		{"for (let.x of y);", false},
		{"for (async of x);", false},
		{"for ((async) of x);", true},
		{"for (a in b, c);", true},
		{"for (a of b, c);", false},
		{"for (x = 'a' in b;;);", false},
		{"for (x = ('a' in b);;);", true},
		{"for (let x of y) { let x; }", true},
	})
	runCases(t, strict, []syntaxCase{
		{"for (var a = 0 in b);", false},
	})

	prog := mustParse(t, "async function f() { for await (x of y); }", nil)
	loop := prog.Body[0].(*ast.FunctionDeclaration).Body.Body[0].(*ast.ForOfStatement)
	if !loop.Await {
		t.Errorf("for await loop not marked")
	}
}

func TestLabelsAndJumps(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"a: while (1) { continue a; }", true},
		{"a: b: for (;;) { continue a; }", true},
		{"a: { continue a; }", false},
		{"a: { break a; }", true},
		{"a: if (1) break a;", true},
		{"a: { b: while (1) continue a; }", false},
		{"break;", false},
		{"continue;", false},
		{"while (1) break;", true},
		{"switch (a) { case 1: break; }", true},
		{"switch (a) { case 1: continue; }", false},
		{"while (1) { switch (a) { case 1: continue; } }", true},
		{"a: a: ;", false},
		{"a: ; a: ;", true},
		{"a: { a: ; }", false},
		{"break b;", false},
		{"while (1) { function f() { break; } }", false},
		{"a: while (1) { function f() { continue a; } }", false},
		{"a: while (1) { (() => { break a; }); }", false},
		{"while (1) break\na", true},
	})
}

func TestSingleStatementPositions(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"if (a) function f() {}", true},
		{"if (a) function f() {} else function g() {}", true},
		{"if (a) function* f() {}", false},
		{"if (a) async function f() {}", false},
		{"while (a) function f() {}", false},
		{"l: function f() {}", true},
		{"l: function* f() {}", false},
		{"while (a) l: function f() {}", false},
		{"if (a) class A {}", false},
		{"if (a) const b = 1;", false},
		{"if (a) let b = 1;", false},
		{"if (a) let\nb = 1", true},
		{"if (a) let [b] = c;", false},
		{"let = 1", true},
		{"let\nx = 1", true},
		{"do x; while (0) y", true},
		{"do ; while (0)", true},
	})
	runCases(t, strict, []syntaxCase{
		{"if (a) function f() {}", false},
		{"l: function f() {}", false},
		{"{ function f() {} }", true},
	})
}

func TestStatementErrors(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"throw\na", false},
		{"throw a", true},
		{"try {}", false},
		{"try {} catch {}", true},
		{"try {} finally {}", true},
		{"switch (a) { default: default: }", false},
		{"switch (a) { case 1: let b; case 2: let b; }", false},
		{"a\n++b", true},
		{"a\n(b)", true},
		{"debugger;", true},
		{"export var a;", false},
		{"import a from 'a';", false},
		{"{ import('a'); }", true},
	})
}

// ---------------------------------------------------------------------------
// Scopes
// ---------------------------------------------------------------------------

func TestDeclarationConflicts(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"var a; var a;", true},
		{"let a; var a;", false},
		{"var a; let a;", false},
		{"let a; let a;", false},
		{"const a = 1; let a;", false},
		{"let a; { let a; }", true},
		{"let a; { var a; }", false},
		{"{ var a; let a; }", false},
		{"{ let a; } var a;", true},
		{"function f() {} var f;", true},
		{"function f() {} function f() {}", true},
		{"function f() {} let f;", false},
		{"class A {} var A;", false},
		{"{ function f() {} function f() {} }", true},
		{"{ function f() {} var f; }", false},
		{"{ function* f() {} function f() {} }", false},
		{"{ async function f() {} function f() {} }", false},
		{"function g(a) { var a; }", true},
		{"function g(a) { let a; }", false},
		{"function g(a) { { let a; } }", true},
		{"function g() { let a; { var a; } }", false},
		{"(a) => { let a; }", false},
		{"let let = 1", false},
		{"let [a, a] = b", false},
		{"var [a, a] = b", true},
		{"switch (x) { case 1: function f() {} case 2: function f() {} }", true},
	})
	runCases(t, strict, []syntaxCase{
		{"{ function f() {} function f() {} }", false},
		{"function f() {} function f() {}", true},
	})
	runCases(t, module, []syntaxCase{
		{"function f() {} function f() {}", false},
		{"function f() {} var f;", false},
		{"import a from 'a'; let a;", false},
		{"import a from 'a'; var a;", false},
		{"import { a, a } from 'b';", false},
	})
}

func TestCatchParameters(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"try {} catch (e) { var e; }", true},
		{"try {} catch (e) { for (var e in x); }", true},
		{"try {} catch (e) { for (var e of x); }", false},
		{"try {} catch (e) { for (var [e] of x); }", false},
		{"try {} catch (e) { { for (var e of x); } }", false},
		{"try {} catch (e) { for (var f of x); }", true},
		{"try {} catch (e) { function g() { for (var e of x); } }", true},
		{"try {} catch (e) { let e; }", false},
		{"try {} catch (e) { { let e; } }", true},
		{"try {} catch (e) { function e() {} }", false},
		{"try {} catch ([e]) { var e; }", false},
		{"try {} catch ([e, e]) {}", false},
		{"try {} catch ({a: e}) { let f; }", true},
	})
	runCases(t, strict, []syntaxCase{
		{"try {} catch (e) { var e; }", false},
	})
}

// ---------------------------------------------------------------------------
// Functions and classes
// ---------------------------------------------------------------------------

func TestMethods(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"({ get a() {}, set a(v) {}, async *b() {}, [c]() {}, 'd'() {}, 1() {} })", true},
		{"({ get a(x) {} })", false},
		{"({ set a() {} })", false},
		{"({ set a(...v) {} })", false},
		{"({ a(b, b) {} })", false},
		{"({ async\na() {} })", false},
		{"({ get, set, async })", true},
		{"({ if: 1, class: 2 })", true},
		{"({ if })", false},
		{"({ #a: 1 })", false},
	})
}

func TestClasses(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"class A {}", true},
		{"class A extends B { constructor() { super(); } }", true},
		{"class A { constructor() { super(); } }", false},
		{"class A extends B { m() { super(); } }", false},
		{"class A { m() { return super.m(); } }", true},
		{"class A { constructor() {} constructor() {} }", false},
		{"class A { constructor() {} static constructor() {} }", true},
		{"class A { get constructor() {} }", false},
		{"class A { *constructor() {} }", false},
		{"class A { async constructor() {} }", false},
		{"class A { constructor = 1 }", false},
		{"class A { static prototype() {} }", false},
		{"class A { static prototype = 1 }", false},
		{"class A { prototype() {} }", true},
		{"class A { static {} static { var a; } }", true},
		{"class A { static { await; } }", false},
		{"class A { static { return; } }", false},
		{"class A { x = arguments; }", false},
		{"class A { x = () => arguments; }", false},
		{"class A { x = function () { arguments; }; }", true},
		{"class A { a\nb }", true},
		{"class A { a b }", false},
		{"class A { static; static = 1; async; get; set }", true},
		{"class A { m() { with (a) {} } }", false},
		{"class { }", false},
		{"(class {})", true},
		{"class A { [a] = 1; 'b' = 2; 3 = 4 }", true},
		{"class let {}", false},
	})
}

func TestPrivateNames(t *testing.T) {
	runCases(t, sloppy, []syntaxCase{
		{"class A { #a; m() { return this.#a; } }", true},
		{"class A { m() { return this.#a; } #a = 1; }", true},
		{"class A { m() { this.#a; } }", false},
		{"this.#a", false},
		{"class A { #a; #a; }", false},
		{"class A { #a; #a() {} }", false},
		{"class A { get #a() {} set #a(v) {} }", true},
		{"class A { get #a() {} get #a() {} }", false},
		{"class A { static get #a() {} set #a(v) {} }", false},
		{"class A { get #a() {} set #a(v) {} #a; }", false},
		{"class A { #constructor; }", false},
		{"class A { #a; m() { class B { n() { this.#a; } } } }", true},
		{"class A { m() { class B { #a; } this.#a; } }", false},
		{"class A { #a; m(o) { return #a in o; } }", true},
		{"class A { #a; m(o) { return #a; } }", false},
		{"class A { #a; m() { delete this.#a; } }", false},
		{"class A { #a; m() { delete this?.#a; } }", false},
		{"class A { m() { super.#a; } }", false},
	})
}

// ---------------------------------------------------------------------------
// Modules
// ---------------------------------------------------------------------------

func TestModules(t *testing.T) {
	runCases(t, module, []syntaxCase{
		{"import a, { b as c, d } from 'm'; import * as ns from 'n'; import 'o';", true},
		{"import a, * as b from 'm';", true},
		{"import { default as a } from 'm';", true},
		{"import { default } from 'm';", false},
		{"import { 'a b' as c } from 'm';", true},
		{"import { 'a b' } from 'm';", false},
		{"import a from 'm' with { type: 'json' };", false},
		{"export const a = 1, b = 2; export { a as c };", true},
		{"export { a }; var a;", true},
		{"export { x };", false},
		{"export { a }; export { a }; var a;", false},
		{"export var a; export function a() {}", false},
		{"export default 1; export default 2;", false},
		{"export default function () {}", true},
		{"export default class {}", true},
		{"export default async function () {}", true},
		{"export default function f() {} f();", true},
		{"export { 'a' };", false},
		{"export { 'a' } from 'm';", true},
		{"export { a as 'b c' }; let a;", true},
		{"export * from 'm';", true},
		{"export * as ns from 'm'; export * as ns from 'n';", false},
		{"export * as 'b' from 'm';", true},
		{"export { if };", false},
		{"export { if } from 'm';", true},
		{"export { a as default }; let a; export default 1;", false},
		{"export let [a, {b}] = c;", true},
		{"export let a; export let b; export { a as b };", false},
		{"{ export var a; }", false},
		{"function f() { import a from 'm'; }", false},
		{"export async function f() { await 1; }", true},
		{"export class A {}", true},
		{"export class {}", false},
		{"'use strict'; export var a;", true},
		{"<!-- a", false},
		{"with (a) {}", false},
		{"var package;", false},
	})
}

func TestImportAttributes(t *testing.T) {
	next := &parser.Options{Module: true, Next: true}
	runCases(t, next, []syntaxCase{
		{"import a from 'm' with { type: 'json' };", true},
		{"import a from 'm' with { 'type': 'json', b: 'c' };", true},
		{"import a from 'm' with { type: 'json', type: 'css' };", false},
		{"import a from 'm' with { type: 1 };", false},
		{"export * from 'm' with { type: 'json' };", true},
		{"export { a } from 'm' with { type: 'json' };", true},
		{"import('m', { with: { type: 'json' } });", true},
	})

	prog := mustParse(t, "import a from 'm' with { type: 'json' };", next)
	decl := prog.Body[0].(*ast.ImportDeclaration)
	if len(decl.Attributes) != 1 {
		t.Fatalf("got %d attributes; want 1", len(decl.Attributes))
	}
	if key := decl.Attributes[0].Key.(*ast.Identifier); key.Name != "type" {
		t.Errorf("attribute key = %q", key.Name)
	}
}
