// Package ast implements the tree-walking evaluator: every node kind
// compiled from source is a value.Executable, aliased here as Node.
package ast

import "github.com/AlexGalkin8/Mython/value"

// Node is a compiled, evaluatable piece of source. It is a type alias for
// value.Executable rather than a distinct interface: value defines the
// dependency (ClassInstance.Call must invoke a method body) and ast only
// supplies implementations, so the import runs one way.
type Node = value.Executable
