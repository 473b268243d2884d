package ast_test

import (
	"testing"

	"github.com/AlexGalkin8/Mython/ast"
	"github.com/AlexGalkin8/Mython/value"
)

// countingExpr records whether it was ever evaluated, to prove short-circuit
// behavior in Or/And.
type countingExpr struct {
	v        value.Value
	evaluated *bool
}

func (c countingExpr) Evaluate(value.Closure, value.Context) (value.Value, error) {
	*c.evaluated = true
	return c.v, nil
}

func TestOrShortCircuitsOnTruthyLHS(t *testing.T) {
	rhsEvaluated := false
	rhs := countingExpr{value.Own(value.Bool(false)), &rhsEvaluated}

	got, err := ast.Or{LHS: boolLit(true), RHS: rhs}.Evaluate(value.Closure{}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Bool) != true {
		t.Errorf("got %v, want true", got)
	}
	if rhsEvaluated {
		t.Error("Or evaluated its right operand despite a truthy left operand")
	}
}

func TestOrEvaluatesRHSWhenLHSFalsy(t *testing.T) {
	got, err := ast.Or{LHS: boolLit(false), RHS: boolLit(true)}.Evaluate(value.Closure{}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Bool) != true {
		t.Errorf("got %v, want true", got)
	}
}

func TestAndShortCircuitsOnFalsyLHS(t *testing.T) {
	rhsEvaluated := false
	rhs := countingExpr{value.Own(value.Bool(true)), &rhsEvaluated}

	got, err := ast.And{LHS: boolLit(false), RHS: rhs}.Evaluate(value.Closure{}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Bool) != false {
		t.Errorf("got %v, want false", got)
	}
	if rhsEvaluated {
		t.Error("And evaluated its right operand despite a falsy left operand")
	}
}

func TestAndEvaluatesRHSWhenLHSTruthy(t *testing.T) {
	got, err := ast.And{LHS: boolLit(true), RHS: boolLit(false)}.Evaluate(value.Closure{}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Bool) != false {
		t.Errorf("got %v, want false", got)
	}
}

func TestNotNegatesTruthiness(t *testing.T) {
	cases := map[string]struct {
		arg  value.Executable
		want bool
	}{
		"true becomes false":  {boolLit(true), false},
		"false becomes true":  {boolLit(false), true},
		"zero becomes true":   {num(0), true},
		"nonzero becomes false": {num(1), false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ast.Not{Arg: c.arg}.Evaluate(value.Closure{}, nil)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got.Get().(value.Bool) != value.Bool(c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}
