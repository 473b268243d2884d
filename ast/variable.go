package ast

import (
	"fmt"

	"github.com/AlexGalkin8/Mython/value"
)

// VariableValue looks up a name in the current scope, or, for a dotted
// chain, walks a sequence of field accesses rooted at the chain's first
// identifier.
type VariableValue struct {
	Name   string   // set for the simple form
	Dotted []string // set for the dotted-chain form; Name is empty
}

// NewVariable builds the simple, single-identifier form.
func NewVariable(name string) VariableValue { return VariableValue{Name: name} }

// NewDottedVariable builds the dotted-chain form: ids[0] is looked up in
// scope, then each subsequent id is looked up as a field of the previous
// result, which must be a ClassInstance.
func NewDottedVariable(ids []string) VariableValue { return VariableValue{Dotted: ids} }

func (v VariableValue) Evaluate(scope value.Closure, _ value.Context) (value.Value, error) {
	if v.Name != "" {
		val, ok := scope[v.Name]
		if !ok {
			return value.Value{}, &value.RuntimeError{Msg: fmt.Sprintf("no value named %q", v.Name)}
		}
		return val, nil
	}

	if len(v.Dotted) == 0 {
		return value.Value{}, &value.RuntimeError{Msg: "VariableValue: empty"}
	}

	current, ok := scope[v.Dotted[0]]
	if !ok {
		return value.Value{}, &value.RuntimeError{Msg: fmt.Sprintf("no value named %q", v.Dotted[0])}
	}

	lookup := scope.Clone()
	for _, id := range v.Dotted[1:] {
		ci, ok := current.Get().(*value.ClassInstance)
		if !ok {
			return value.Value{}, &value.RuntimeError{Msg: "dotted access on a value that is not a class instance"}
		}
		for k, fv := range ci.Fields() {
			lookup[k] = fv
		}
		current, ok = lookup[id]
		if !ok {
			return value.Value{}, &value.RuntimeError{Msg: fmt.Sprintf("no field named %q", id)}
		}
	}
	return current, nil
}
