package value

import (
	"fmt"
	"io"
)

// Closure is a mapping from identifier to value handle: a variable scope
// when passed to Executable.Evaluate, or an instance's field table when held
// by a ClassInstance.
type Closure map[string]Value

// Clone returns a shallow copy of c, used to build the merged lookup scope
// a dotted VariableValue chain evaluates against without mutating either the
// original scope or the instance's own field table.
func (c Closure) Clone() Closure {
	out := make(Closure, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ClassInstance is a value with a class pointer and a private, mutable
// field table.
type ClassInstance struct {
	class  *Class
	fields Closure
}

// NewInstance allocates a ClassInstance of cls with an empty field table.
func NewInstance(cls *Class) *ClassInstance {
	return &ClassInstance{class: cls, fields: Closure{}}
}

// Class returns the instance's class.
func (ci *ClassInstance) Class() *Class { return ci.class }

// Fields returns the instance's mutable field table.
func (ci *ClassInstance) Fields() Closure { return ci.fields }

func (*ClassInstance) isObject() {}

// HasMethod reports whether ci's class has a method of the given name whose
// declared parameter count (excluding the implicit self) equals arity.
func (ci *ClassInstance) HasMethod(name string, arity int) bool {
	m := ci.class.GetMethod(name)
	return m != nil && len(m.Params) == arity
}

// Call dispatches to the named method: it builds a fresh scope binding self
// to a borrowed handle over ci, binds each formal parameter to the
// corresponding actual argument left to right, and evaluates the method
// body against that scope.
func (ci *ClassInstance) Call(name string, args []Value, ctx Context) (Value, error) {
	if !ci.HasMethod(name, len(args)) {
		return Value{}, &RuntimeError{Msg: fmt.Sprintf("object has no method %q with %d argument(s)", name, len(args))}
	}
	m := ci.class.GetMethod(name)
	scope := Closure{"self": Share(ci)}
	for i, param := range m.Params {
		scope[param] = args[i]
	}
	return m.Body.Evaluate(scope, ctx)
}

// Print writes the result of calling __str__ if ci's class defines one with
// no arguments; otherwise it writes an implementation-defined, opaque
// representation of the instance.
func (ci *ClassInstance) Print(w io.Writer, ctx Context) {
	if ci.HasMethod("__str__", 0) {
		result, err := ci.Call("__str__", nil, ctx)
		if err == nil {
			WriteValue(w, result, ctx)
			return
		}
	}
	fmt.Fprintf(w, "%p", ci)
}
