package ast

import "github.com/AlexGalkin8/Mython/value"

// Or evaluates lhs; if truthy, returns Bool(true) without evaluating rhs.
// Otherwise evaluates rhs and returns its truthiness as a Bool.
type Or struct{ LHS, RHS value.Executable }

func (o Or) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if o.LHS == nil {
		return value.Value{}, &value.RuntimeError{Msg: "Or: nil operand"}
	}
	lhs, err := o.LHS.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	if value.IsTrue(lhs) {
		return value.Own(value.Bool(true)), nil
	}
	if o.RHS == nil {
		return value.Value{}, &value.RuntimeError{Msg: "Or: nil operand"}
	}
	rhs, err := o.RHS.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	return value.Own(value.Bool(value.IsTrue(rhs))), nil
}

// And evaluates lhs; if falsy, returns Bool(false) without evaluating rhs.
// Otherwise evaluates rhs and returns its truthiness as a Bool.
type And struct{ LHS, RHS value.Executable }

func (a And) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if a.LHS == nil {
		return value.Value{}, &value.RuntimeError{Msg: "And: nil operand"}
	}
	lhs, err := a.LHS.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	if !value.IsTrue(lhs) {
		return value.Own(value.Bool(false)), nil
	}
	if a.RHS == nil {
		return value.Value{}, &value.RuntimeError{Msg: "And: nil operand"}
	}
	rhs, err := a.RHS.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	return value.Own(value.Bool(value.IsTrue(rhs))), nil
}

// Not negates the truthiness of its argument.
type Not struct{ Arg value.Executable }

func (n Not) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if n.Arg == nil {
		return value.Value{}, &value.RuntimeError{Msg: "Not: nil argument"}
	}
	arg, err := n.Arg.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	return value.Own(value.Bool(!value.IsTrue(arg))), nil
}
