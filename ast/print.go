package ast

import "github.com/AlexGalkin8/Mython/value"

// Print evaluates its arguments left-to-right, writes them to the context's
// output stream separated by single spaces, and terminates with a newline.
// It returns None.
type Print struct{ Args []value.Executable }

// PrintVariable builds a Print with a single VariableValue argument.
func PrintVariable(name string) Print {
	return Print{Args: []value.Executable{NewVariable(name)}}
}

func (p Print) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	w := ctx.Output()
	for i, arg := range p.Args {
		if arg == nil {
			return value.Value{}, &value.RuntimeError{Msg: "Print: nil argument"}
		}
		if i > 0 {
			w.Write([]byte(" "))
		}
		v, err := arg.Evaluate(scope, ctx)
		if err != nil {
			return value.Value{}, err
		}
		value.WriteValue(w, v, ctx)
	}
	w.Write([]byte("\n"))
	return value.None(), nil
}
