package ast

import (
	"errors"

	"github.com/AlexGalkin8/Mython/value"
)

// ReturnSignal is the non-local transfer Return raises to unwind out of a
// method body. It is a sentinel error, not a runtime failure: MethodBody is
// its sole intended handler.
type ReturnSignal struct {
	result value.Value
}

func newReturnSignal(v value.Value) *ReturnSignal { return &ReturnSignal{result: v} }

func (r *ReturnSignal) Error() string { return "return outside method body" }

// Result returns the value the signal carries.
func (r *ReturnSignal) Result() value.Value { return r.result }

// Return evaluates Expr, if present, and raises a ReturnSignal carrying the
// result. A nil Expr falls through without raising: the surrounding body
// completes normally and MethodBody's result is None.
type Return struct{ Expr value.Executable }

func (r Return) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if r.Expr == nil {
		return value.None(), nil
	}
	v, err := r.Expr.Evaluate(scope, ctx)
	if err != nil {
		return value.Value{}, err
	}
	return value.Value{}, newReturnSignal(v)
}

// MethodBody executes Body and catches a ReturnSignal escaping from it,
// converting it into the method's result. If Body completes without
// raising, the result is None.
type MethodBody struct{ Body value.Executable }

func (m MethodBody) Evaluate(scope value.Closure, ctx value.Context) (value.Value, error) {
	if m.Body == nil {
		return value.Value{}, &value.RuntimeError{Msg: "MethodBody: nil body"}
	}
	_, err := m.Body.Evaluate(scope, ctx)
	if err != nil {
		var sig *ReturnSignal
		if errors.As(err, &sig) {
			return sig.Result(), nil
		}
		return value.Value{}, err
	}
	return value.None(), nil
}

// Eval is the top-level evaluation driver: it runs root and, if a
// ReturnSignal escapes all the way out (a return outside any method body),
// converts it into a value.RuntimeError rather than propagating the
// sentinel past the evaluator's boundary.
func Eval(root value.Executable, scope value.Closure, ctx value.Context) (value.Value, error) {
	if root == nil {
		return value.Value{}, &value.RuntimeError{Msg: "Eval: nil program"}
	}
	result, err := root.Evaluate(scope, ctx)
	if err != nil {
		var sig *ReturnSignal
		if errors.As(err, &sig) {
			return value.Value{}, &value.RuntimeError{Msg: "return outside method body"}
		}
		return value.Value{}, err
	}
	return result, nil
}
