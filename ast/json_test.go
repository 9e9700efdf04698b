package ast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalTypeFirst(t *testing.T) {
	n := &ExpressionStatement{
		Expression: &BinaryExpression{
			Operator: "+",
			Left:     &Identifier{Name: "a"},
			Right:    &Literal{Value: 1.5, Raw: "1.5"},
		},
	}
	got, err := Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"ExpressionStatement","expression":{"type":"BinaryExpression","operator":"+",` +
		`"left":{"type":"Identifier","name":"a"},"right":{"type":"Literal","value":1.5,"raw":"1.5"}}}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalRange(t *testing.T) {
	n := &Identifier{
		Range: &Range{Start: 4, End: 7, Loc: &SourceLocation{
			Start: Position{Line: 2, Column: 0},
			End:   Position{Line: 2, Column: 3},
		}},
		Name: "abc",
	}
	got, err := Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Identifier","start":4,"end":7,` +
		`"loc":{"start":{"line":2,"column":0},"end":{"line":2,"column":3}},"name":"abc"}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalValues(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&ArrayExpression{}, `{"type":"ArrayExpression","elements":[]}`},
		{&ArrayExpression{Elements: []Expression{nil, &ThisExpression{}}},
			`{"type":"ArrayExpression","elements":[null,{"type":"ThisExpression"}]}`},
		{&Literal{Value: nil}, `{"type":"Literal","value":null}`},
		{&Literal{Value: true}, `{"type":"Literal","value":true}`},
		{&Literal{Value: math.Inf(1)}, `{"type":"Literal","value":null}`},
		{&Literal{Value: "a\"\n "}, `{"type":"Literal","value":"a\"\n "}`},
		{&Literal{Value: "\xff"}, `{"type":"Literal","value":"\ufffd"}`},
		{&Literal{Value: &RegExpInfo{}, Regex: &RegExpInfo{Pattern: "a", Flags: "g"}},
			`{"type":"Literal","value":{},"regex":{"pattern":"a","flags":"g"}}`},
	}
	for _, tt := range tests {
		got, err := Marshal(tt.node)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%s) = %s; want %s", tt.node.Type(), got, tt.want)
		}
	}
}

func TestMarshalIndentIsValidJSON(t *testing.T) {
	prog := &Program{
		SourceType: "script",
		Body: []Statement{
			&ExpressionStatement{Expression: &Literal{Value: "use strict"}, Directive: "use strict"},
			&EmptyStatement{},
		},
	}
	b, err := MarshalIndent(prog, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, b)
	}
	want := map[string]any{
		"type":       "Program",
		"sourceType": "script",
		"body": []any{
			map[string]any{
				"type":       "ExpressionStatement",
				"expression": map[string]any{"type": "Literal", "value": "use strict"},
				"directive":  "use strict",
			},
			map[string]any{"type": "EmptyStatement"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MarshalIndent mismatch (-want +got):\n%s", diff)
	}
}
