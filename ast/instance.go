package ast

import "github.com/AlexGalkin8/Mython/value"

const initMethod = "__init__"

// NewInstance constructs a fresh ClassInstance of Class. If Class declares
// __init__ with arity matching len(Args), the argument expressions are
// evaluated left-to-right and passed to it before the instance is returned.
type NewInstance struct {
	Class *value.Class
	Args  []value.Executable
}

func (n NewInstance) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	inst := value.NewInstance(n.Class)
	if inst.HasMethod(initMethod, len(n.Args)) {
		args, err := evalArgs(n.Args, scope, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if _, err := inst.Call(initMethod, args, ctx); err != nil {
			return value.Value{}, err
		}
	}
	return value.Own(inst), nil
}

// MethodCall evaluates Object, which must be a ClassInstance, evaluates
// Args left-to-right, and dispatches Method through ClassInstance.Call.
type MethodCall struct {
	Object value.Executable
	Method string
	Args   []value.Executable
}

func (m MethodCall) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if m.Object == nil {
		return value.Value{}, &value.RuntimeError{Msg: "MethodCall: nil object"}
	}
	obj, err := m.Object.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	ci, ok := obj.Get().(*value.ClassInstance)
	if !ok {
		return value.Value{}, &value.RuntimeError{Msg: "MethodCall: receiver is not a class instance"}
	}
	args, err := evalArgs(m.Args, scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	return ci.Call(m.Method, args, ctx)
}

func evalArgs(exprs []value.Executable, scope value.Closure, ctx value.Context) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for i, e := range exprs {
		if e == nil {
			return nil, &value.RuntimeError{Msg: "argument list: nil expression"}
		}
		v, err := e.Evaluate(scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
