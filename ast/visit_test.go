package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInspectOrder(t *testing.T) {
	// a = b + c(d)
	prog := &Program{Body: []Statement{
		&ExpressionStatement{Expression: &AssignmentExpression{
			Operator: "=",
			Left:     &Identifier{Name: "a"},
			Right: &BinaryExpression{
				Operator: "+",
				Left:     &Identifier{Name: "b"},
				Right: &CallExpression{
					Callee:    &Identifier{Name: "c"},
					Arguments: []Expression{&Identifier{Name: "d"}},
				},
			},
		}},
	}}

	var got []string
	Inspect(prog, func(n Node) bool {
		switch n := n.(type) {
		case nil:
		case *Identifier:
			got = append(got, n.Name)
		default:
			got = append(got, n.Type())
		}
		return true
	})
	want := []string{
		"Program", "ExpressionStatement", "AssignmentExpression",
		"a", "BinaryExpression", "b", "CallExpression", "c", "d",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Inspect order mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	prog := &Program{Body: []Statement{
		&BlockStatement{Body: []Statement{&EmptyStatement{}}},
		&EmptyStatement{},
	}}
	var visited, nils int
	Inspect(prog, func(n Node) bool {
		if n == nil {
			nils++
			return false
		}
		visited++
		_, block := n.(*BlockStatement)
		return !block
	})
	if visited != 3 {
		t.Errorf("visited = %d; want 3", visited)
	}
	// One trailing nil each for Program and the outer EmptyStatement.
	if nils != 2 {
		t.Errorf("nils = %d; want 2", nils)
	}
}

func TestWalkShorthandProperty(t *testing.T) {
	x := &Identifier{Name: "x"}
	obj := &ObjectExpression{Properties: []Node{
		&Property{Key: x, Value: x, Kind: "init", Shorthand: true},
	}}
	n := 0
	Inspect(obj, func(node Node) bool {
		if node == Node(x) {
			n++
		}
		return true
	})
	if n != 1 {
		t.Errorf("shorthand name visited %d times; want 1", n)
	}
}
