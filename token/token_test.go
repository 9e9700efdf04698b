package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Token
	}{
		{"if", If},
		{"instanceof", InstanceOf},
		{"let", Let},
		{"yield", Yield},
		{"async", Async},
		{"arguments", Arguments},
		{"x", Identifier},
		{"iff", Identifier},
		{"constructor", Identifier},
	}
	for _, tt := range tests {
		if got := Lookup(tt.name); got != tt.want {
			t.Errorf("Lookup(%q) = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassification(t *testing.T) {
	if !Typeof.IsKeyword() || !Typeof.IsUnary() {
		t.Errorf("typeof should be a unary keyword")
	}
	if Let.IsKeyword() || !Let.IsStrictReserved() || !Let.IsIdentifierLike() {
		t.Errorf("let should be an identifier outside strict mode code")
	}
	if !Of.IsContextual() || !Of.IsIdentifierLike() {
		t.Errorf("of should be a contextual identifier")
	}
	if If.IsIdentifierLike() || !If.IsIdentifierName() {
		t.Errorf("if should only be an identifier name")
	}
	if !EscapedReserved.IsIdentifierName() || EscapedReserved.IsIdentifierLike() {
		t.Errorf("escaped keywords are property names only")
	}
	for _, tok := range []Token{Assign, AddAssign, CoalesceAssign, LogicalAndAssign} {
		if !tok.IsAssign() {
			t.Errorf("%v should be an assignment operator", tok)
		}
	}
	if Arrow.IsAssign() || Equal.IsAssign() {
		t.Errorf("=> and == are not assignment operators")
	}
	if !TemplateMiddle.IsTemplate() || !Coalesce.IsLogical() || !Decrement.IsUpdate() {
		t.Errorf("template, logical and update classes are wrong")
	}
}

func TestPrecedenceParity(t *testing.T) {
	// Left-associative operators have even binding powers, ** alone is odd.
	for tok := Illegal; tok < count; tok++ {
		p := tok.Precedence()
		if p == PrecedenceLowest {
			continue
		}
		if right := p%2 == 1; right != (tok == Exponent) {
			t.Errorf("%v has precedence %d", tok, p)
		}
	}
	if !(Multiply.Precedence() > Plus.Precedence() && Plus.Precedence() > Less.Precedence()) {
		t.Errorf("arithmetic must bind tighter than comparison")
	}
	if !(LogicalAnd.Precedence() > LogicalOr.Precedence() && LogicalOr.Precedence() > Coalesce.Precedence()) {
		t.Errorf("&& > || > ?? ordering is wrong")
	}
	if Arrow.Precedence() != PrecedenceLowest || Assign.Precedence() != PrecedenceLowest {
		t.Errorf("non-binary tokens must have the lowest precedence")
	}
}

func TestString(t *testing.T) {
	if got := UnsignedShiftRightAssign.String(); got != ">>>=" {
		t.Errorf("String() = %q", got)
	}
	if got := Of.String(); got != "of" {
		t.Errorf("String() = %q", got)
	}
}
