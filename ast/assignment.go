package ast

import "github.com/AlexGalkin8/Mython/value"

// Assignment evaluates RHS and stores it in scope under Name, overwriting
// any existing binding. It returns the stored value.
type Assignment struct {
	Name string
	RHS  value.Executable
}

func (a Assignment) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if a.RHS == nil {
		return value.Value{}, &value.RuntimeError{Msg: "Assignment: nil right-hand side"}
	}
	v, err := a.RHS.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	scope[a.Name] = v
	return v, nil
}

// FieldAssignment evaluates Object to a ClassInstance, evaluates RHS, and
// writes the result into the instance's field table under Field. It returns
// the written value.
type FieldAssignment struct {
	Object VariableValue
	Field  string
	RHS    value.Executable
}

func (f FieldAssignment) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if f.RHS == nil {
		return value.Value{}, &value.RuntimeError{Msg: "FieldAssignment: nil right-hand side"}
	}
	obj, err := f.Object.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	ci, ok := obj.Get().(*value.ClassInstance)
	if !ok {
		return value.Value{}, &value.RuntimeError{Msg: "FieldAssignment: target is not a class instance"}
	}
	v, err := f.RHS.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	ci.Fields()[f.Field] = v
	return v, nil
}
