package ast

import "github.com/AlexGalkin8/Mython/value"

// IfElse evaluates Condition; if truthy, executes IfBody and returns its
// result; else, if ElseBody is present, executes it and returns its result;
// else returns None.
type IfElse struct {
	Condition value.Executable
	IfBody    value.Executable
	ElseBody  value.Executable // nil when there is no else clause
}

func (i IfElse) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if i.Condition == nil {
		return value.Value{}, &value.RuntimeError{Msg: "IfElse: nil condition"}
	}
	cond, err := i.Condition.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	if value.IsTrue(cond) {
		if i.IfBody == nil {
			return value.Value{}, &value.RuntimeError{Msg: "IfElse: nil if-body"}
		}
		return i.IfBody.Evaluate(scope, ctx)
	}
	if i.ElseBody != nil {
		return i.ElseBody.Evaluate(scope, ctx)
	}
	return value.None(), nil
}
