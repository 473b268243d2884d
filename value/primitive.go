package value

import (
	"fmt"
	"io"
)

// Number is a 32-bit signed integer value. Overflow is not detected, per
// the language's fixed-width-arithmetic Non-goal.
type Number int32

func (Number) isObject() {}

// Print writes the decimal representation of n.
func (n Number) Print(w io.Writer, _ Context) {
	fmt.Fprintf(w, "%d", int32(n))
}

// String is a UTF-8 byte sequence. There is no separate byte/rune
// distinction at this layer; indexing and length operations are out of
// scope for the language itself.
type String string

func (String) isObject() {}

// Print writes s verbatim, with no quoting.
func (s String) Print(w io.Writer, _ Context) {
	io.WriteString(w, string(s))
}

// Bool is a boolean value.
type Bool bool

func (Bool) isObject() {}

// Print writes "True" or "False".
func (b Bool) Print(w io.Writer, _ Context) {
	if b {
		io.WriteString(w, "True")
	} else {
		io.WriteString(w, "False")
	}
}
