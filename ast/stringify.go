package ast

import (
	"bytes"

	"github.com/AlexGalkin8/Mython/value"
)

// Stringify evaluates its argument, prints it through the same path the
// Print statement uses, and wraps the rendered text in a freshly owned
// String.
type Stringify struct{ Arg value.Executable }

func (s Stringify) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if s.Arg == nil {
		return value.Value{}, &value.RuntimeError{Msg: "Stringify: nil argument"}
	}
	arg, err := s.Arg.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	var buf bytes.Buffer
	value.WriteValue(&buf, arg, ctx)
	return value.Own(value.String(buf.String())), nil
}
