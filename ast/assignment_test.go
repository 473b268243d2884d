package ast_test

import (
	"testing"

	"github.com/AlexGalkin8/Mython/ast"
	"github.com/AlexGalkin8/Mython/value"
)

func TestAssignmentStoresAndReturnsValue(t *testing.T) {
	scope := value.Closure{}
	got, err := (ast.Assignment{Name: "x", RHS: num(3)}).Evaluate(scope, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Number) != 3 {
		t.Errorf("got %v, want 3", got)
	}
	if scope["x"].Get().(value.Number) != 3 {
		t.Error("Assignment did not store into scope")
	}
}

func TestAssignmentOverwritesExisting(t *testing.T) {
	scope := value.Closure{"x": value.Own(value.Number(1))}
	if _, err := (ast.Assignment{Name: "x", RHS: num(2)}).Evaluate(scope, nil); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if scope["x"].Get().(value.Number) != 2 {
		t.Error("Assignment should overwrite an existing binding")
	}
}

func TestFieldAssignmentWritesIntoInstance(t *testing.T) {
	cls := value.NewClass("Box", nil, nil)
	inst := value.NewInstance(cls)
	scope := value.Closure{"b": value.Own(inst)}

	fa := ast.FieldAssignment{Object: ast.NewVariable("b"), Field: "x", RHS: num(4)}
	got, err := fa.Evaluate(scope, nil)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got.Get().(value.Number) != 4 {
		t.Errorf("got %v, want 4", got)
	}
	if inst.Fields()["x"].Get().(value.Number) != 4 {
		t.Error("FieldAssignment did not write into the instance's field table")
	}
}

func TestFieldAssignmentOnNonInstanceIsError(t *testing.T) {
	scope := value.Closure{"b": value.Own(value.Number(1))}
	fa := ast.FieldAssignment{Object: ast.NewVariable("b"), Field: "x", RHS: num(1)}
	if _, err := fa.Evaluate(scope, nil); err == nil {
		t.Fatal("expected an error assigning a field on a non-instance")
	}
}
