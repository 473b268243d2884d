package ast

import "github.com/AlexGalkin8/Mython/value"

// Literal evaluates to a fixed, precomputed value: a number, string, bool,
// None, or a Class published by a class definition.
type Literal struct {
	V value.Value
}

func (l Literal) Evaluate(value.Closure, value.Context) (value.Value, error) {
	return l.V, nil
}
