package ast

import "github.com/AlexGalkin8/Mython/value"

const addMethod = "__add__"

// Add evaluates both operands: number+number, string+string concatenation,
// or, if the left operand is a ClassInstance with __add__/1, dispatches to
// it. Any other combination is a runtime error.
type Add struct{ LHS, RHS value.Executable }

func (a Add) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	lhs, rhs, err := evalPair(a.LHS, a.RHS, scope, ctx)
	if err != nil {
		return value.Value{}, err
	}

	if l, ok := lhs.Get().(value.Number); ok {
		if r, ok := rhs.Get().(value.Number); ok {
			return value.Own(l + r), nil
		}
	}
	if l, ok := lhs.Get().(value.String); ok {
		if r, ok := rhs.Get().(value.String); ok {
			return value.Own(l + r), nil
		}
	}
	if ci, ok := lhs.Get().(*value.ClassInstance); ok && ci.HasMethod(addMethod, 1) {
		return ci.Call(addMethod, []value.Value{rhs}, ctx)
	}
	return value.Value{}, &value.RuntimeError{Msg: "Add: error when adding two values"}
}

// Sub evaluates both operands, which must both be Numbers.
type Sub struct{ LHS, RHS value.Executable }

func (s Sub) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	lhs, rhs, err := evalPair(s.LHS, s.RHS, scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	l, lok := lhs.Get().(value.Number)
	r, rok := rhs.Get().(value.Number)
	if !lok || !rok {
		return value.Value{}, &value.RuntimeError{Msg: "Sub: error when subtracting two values"}
	}
	return value.Own(l - r), nil
}

// Mult evaluates both operands, which must both be Numbers.
type Mult struct{ LHS, RHS value.Executable }

func (m Mult) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	lhs, rhs, err := evalPair(m.LHS, m.RHS, scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	l, lok := lhs.Get().(value.Number)
	r, rok := rhs.Get().(value.Number)
	if !lok || !rok {
		return value.Value{}, &value.RuntimeError{Msg: "Mult: error while multiplying two numbers"}
	}
	return value.Own(l * r), nil
}

// Div evaluates both operands, which must both be Numbers, and the right
// operand must be nonzero.
type Div struct{ LHS, RHS value.Executable }

func (d Div) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	lhs, rhs, err := evalPair(d.LHS, d.RHS, scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	l, lok := lhs.Get().(value.Number)
	r, rok := rhs.Get().(value.Number)
	if !lok || !rok || r == 0 {
		return value.Value{}, &value.RuntimeError{Msg: "Div: error when dividing two values"}
	}
	return value.Own(l / r), nil
}

func evalPair(lhs, rhs value.Executable, scope value.Closure, ctx value.Context) (value.Value, value.Value, error) {
	if lhs == nil || rhs == nil {
		return value.Value{}, value.Value{}, &value.RuntimeError{Msg: "binary operation: nil operand"}
	}
	l, err := lhs.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	r, err := rhs.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	return l, r, nil
}
