package ast

type (
	// ClassBody elements are *MethodDefinition, *PropertyDefinition or
	// *StaticBlock.
	ClassBody struct {
		*Range
		Body []Node `json:"body"`
	}

	// MethodDefinition Kind is "constructor", "method", "get" or "set".
	MethodDefinition struct {
		*Range
		Key      Expression          `json:"key"`
		Value    *FunctionExpression `json:"value"`
		Kind     string              `json:"kind"`
		Computed bool                `json:"computed"`
		Static   bool                `json:"static"`
	}

	PropertyDefinition struct {
		*Range
		Key      Expression `json:"key"`
		Value    Expression `json:"value"`
		Computed bool       `json:"computed"`
		Static   bool       `json:"static"`
	}

	StaticBlock struct {
		*Range
		Body []Statement `json:"body"`
	}
)

func (*ClassBody) Type() string          { return "ClassBody" }
func (*MethodDefinition) Type() string   { return "MethodDefinition" }
func (*PropertyDefinition) Type() string { return "PropertyDefinition" }
func (*StaticBlock) Type() string        { return "StaticBlock" }
