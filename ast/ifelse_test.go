package ast_test

import (
	"testing"

	"github.com/AlexGalkin8/Mython/ast"
	"github.com/AlexGalkin8/Mython/value"
)

func TestIfElseTakesIfBranchWhenTruthy(t *testing.T) {
	ie := ast.IfElse{Condition: boolLit(true), IfBody: num(1), ElseBody: num(2)}
	got, err := ie.Evaluate(value.Closure{}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Number) != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestIfElseTakesElseBranchWhenFalsy(t *testing.T) {
	ie := ast.IfElse{Condition: boolLit(false), IfBody: num(1), ElseBody: num(2)}
	got, err := ie.Evaluate(value.Closure{}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Number) != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestIfElseWithoutElseBranchReturnsNone(t *testing.T) {
	ie := ast.IfElse{Condition: boolLit(false), IfBody: num(1)}
	got, err := ie.Evaluate(value.Closure{}, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !got.IsNone() {
		t.Errorf("got %v, want None", got)
	}
}

func TestIfElseNilConditionIsError(t *testing.T) {
	if _, err := (ast.IfElse{IfBody: num(1)}).Evaluate(value.Closure{}, nil); err == nil {
		t.Fatal("expected an error with a nil condition")
	}
}
