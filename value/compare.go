package value

// Equal implements the language's equal predicate: a ClassInstance with a
// one-argument __eq__ dispatches to it first; otherwise same-kind primitives
// compare by payload; two Nones compare equal; anything else is a runtime
// error.
func Equal(lhs, rhs Value, ctx Context) (bool, error) {
	if ci, ok := lhs.Get().(*ClassInstance); ok && ci.HasMethod("__eq__", 1) {
		result, err := ci.Call("__eq__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.Get().(Bool)
		if !ok {
			return false, &RuntimeError{Msg: "__eq__ did not return a Bool"}
		}
		return bool(b), nil
	}

	switch l := lhs.Get().(type) {
	case String:
		if r, ok := rhs.Get().(String); ok {
			return l == r, nil
		}
	case Bool:
		if r, ok := rhs.Get().(Bool); ok {
			return l == r, nil
		}
	case Number:
		if r, ok := rhs.Get().(Number); ok {
			return l == r, nil
		}
	}

	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}

	return false, &RuntimeError{Msg: "no comparison implementation"}
}

// Less implements the language's less-than predicate: a ClassInstance with
// a one-argument __lt__ dispatches to it first; otherwise same-kind
// primitives compare by payload; anything else is a runtime error.
func Less(lhs, rhs Value, ctx Context) (bool, error) {
	if ci, ok := lhs.Get().(*ClassInstance); ok && ci.HasMethod("__lt__", 1) {
		result, err := ci.Call("__lt__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.Get().(Bool)
		if !ok {
			return false, &RuntimeError{Msg: "__lt__ did not return a Bool"}
		}
		return bool(b), nil
	}

	switch l := lhs.Get().(type) {
	case String:
		if r, ok := rhs.Get().(String); ok {
			return l < r, nil
		}
	case Bool:
		if r, ok := rhs.Get().(Bool); ok {
			return !bool(l) && bool(r), nil
		}
	case Number:
		if r, ok := rhs.Get().(Number); ok {
			return l < r, nil
		}
	}

	return false, &RuntimeError{Msg: "no comparison implementation"}
}

// NotEqual is the negation of Equal.
func NotEqual(lhs, rhs Value, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater is computed as !Less && NotEqual, not as an independently
// dispatched operator: a ClassInstance's __lt__ and __eq__ are each invoked
// once, through Less and NotEqual respectively, but there is no separate
// user-overridable __gt__ hook.
func Greater(lhs, rhs Value, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	ne, err := NotEqual(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less && ne, nil
}

// LessOrEqual is the negation of Greater.
func LessOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// GreaterOrEqual is the negation of Less.
func GreaterOrEqual(lhs, rhs Value, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}
