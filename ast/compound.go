package ast

import "github.com/AlexGalkin8/Mython/value"

// Compound executes its children in order, discarding intermediate results,
// and returns None.
type Compound struct{ Instructions []value.Executable }

func (c Compound) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	for _, instr := range c.Instructions {
		if instr == nil {
			return value.Value{}, &value.RuntimeError{Msg: "Compound: nil instruction"}
		}
		if _, err := instr.Evaluate(scope, ctx); err != nil {
			return value.Value{}, err
		}
	}
	return value.None(), nil
}
