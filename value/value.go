// Package value implements the Mython runtime: value handles, primitive
// kinds, classes and instances, truthiness, comparison, and printing.
package value

import "io"

// Context is the host collaborator supplying the output stream sink used by
// the print statement and by instance printing. The evaluator holds only a
// reference to it; the context outlives any single execution.
type Context interface {
	Output() io.Writer
}

// Object is the closed set of runtime object kinds a Value may hold: Number,
// String, Bool, *Class, and *ClassInstance. isObject is unexported so no
// type outside this package can implement Object.
type Object interface {
	Print(w io.Writer, ctx Context)
	isObject()
}

// Value is a handle over a runtime Object. A zero Value is None.
//
// Own and Share carry the same representation — Go's garbage collector
// reclaims objects when nothing references them any more, so there is no
// manual refcounting to do. The two constructors are kept distinct anyway to
// document intent at each call site: Own marks a freshly constructed object
// the caller is handing off, Share marks a handle over an object whose
// lifetime is rooted elsewhere (always self). Share must never be retained
// past the lifetime of its referent.
type Value struct {
	obj Object
}

// Own wraps a freshly constructed object in an owned handle.
func Own(obj Object) Value { return Value{obj: obj} }

// Share wraps obj in a non-owning handle. The only sanctioned use is binding
// self inside a method call, where the instance is already kept alive by
// its caller.
func Share(obj Object) Value { return Value{obj: obj} }

// None returns the null value handle.
func None() Value { return Value{} }

// IsNone reports whether v holds no object.
func (v Value) IsNone() bool { return v.obj == nil }

// Get returns the underlying object, or nil if v is None.
func (v Value) Get() Object { return v.obj }

// IsTrue implements the language's truth predicate: None is false; String
// is true iff non-empty; Bool is its own value; Number is true iff nonzero;
// every other kind, including Class and ClassInstance, is false.
func IsTrue(v Value) bool {
	switch obj := v.Get().(type) {
	case String:
		return len(obj) != 0
	case Bool:
		return bool(obj)
	case Number:
		return obj != 0
	default:
		return false
	}
}

// WriteValue writes v's printed representation to w the same way the print
// statement and Stringify do: None becomes the literal "None"; any other
// value defers to its own Print method.
func WriteValue(w io.Writer, v Value, ctx Context) {
	if v.IsNone() {
		io.WriteString(w, "None")
		return
	}
	v.Get().Print(w, ctx)
}
