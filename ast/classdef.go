package ast

import "github.com/AlexGalkin8/Mython/value"

// ClassDefinition publishes a pre-built Class into scope under its name and
// returns the bound value. If the name is already bound, the existing
// binding is left untouched and returned instead.
type ClassDefinition struct{ Class *value.Class }

func (c ClassDefinition) Evaluate(scope value.Closure, _ value.Context) (value.Value, error) {
	name := c.Class.Name()
	if existing, ok := scope[name]; ok {
		return existing, nil
	}
	v := value.Own(c.Class)
	scope[name] = v
	return v, nil
}
