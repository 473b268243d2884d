package value

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Executable is a compiled method body. ast.Node implements this interface;
// value depends only on the interface, never on package ast, so the
// dependency runs one way.
type Executable interface {
	Evaluate(scope Closure, ctx Context) (Value, error)
}

// Method is a named, callable member of a Class: its declared parameter
// names (not including the implicit self) and its body.
type Method struct {
	Name   string
	Params []string
	Body   Executable
}

var classCounter uintptr

func nextClassID() uintptr { return atomic.AddUintptr(&classCounter, 1) }

// Class is an immutable registry of methods with an optional parent for
// single inheritance. Classes outlive their instances.
type Class struct {
	id      uintptr
	name    string
	parent  *Class
	methods map[string]*Method
}

// NewClass builds a Class from its declared methods. parent may be nil.
func NewClass(name string, parent *Class, methods []*Method) *Class {
	table := make(map[string]*Method, len(methods))
	for _, m := range methods {
		table[m.Name] = m
	}
	return &Class{id: nextClassID(), name: name, parent: parent, methods: table}
}

// Name returns the class's name.
func (c *Class) Name() string { return c.name }

// Parent returns the class's parent, or nil if it has none.
func (c *Class) Parent() *Class { return c.parent }

func (*Class) isObject() {}

// Print writes "Class <name>".
func (c *Class) Print(w io.Writer, _ Context) {
	fmt.Fprintf(w, "Class %s", c.name)
}

// GetMethod walks the parent chain, self first, returning the first method
// with the given name. A contains.Set of visited class IDs guards against
// revisiting a node; single inheritance makes a parent cycle impossible to
// construct, but the walk stays defensive about it anyway.
func (c *Class) GetMethod(name string) *Method {
	visited := contains.Set{}
	for cur := c; cur != nil; cur = cur.parent {
		if !visited.Add(cur.id) {
			return nil
		}
		if m, ok := cur.methods[name]; ok {
			return m
		}
	}
	return nil
}
