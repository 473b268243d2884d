package ast

import "github.com/AlexGalkin8/Mython/value"

// Comparator is one of the six value.Value predicates a Comparison node can
// apply.
type Comparator func(lhs, rhs value.Value, ctx value.Context) (bool, error)

// Comparison evaluates both operands and applies cmp, returning the result
// as a Bool.
type Comparison struct {
	Cmp      Comparator
	LHS, RHS value.Executable
}

func (c Comparison) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	lhs, rhs, err := evalPair(c.LHS, c.RHS, scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	result, err := c.Cmp(lhs, rhs, ctx)
	if err != nil {
		return value.Value{}, err
	}
	return value.Own(value.Bool(result)), nil
}
