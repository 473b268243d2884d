package ast_test

import (
	"bytes"
	"io"

	"github.com/AlexGalkin8/Mython/ast"
	"github.com/AlexGalkin8/Mython/value"
)

type testContext struct {
	buf bytes.Buffer
}

func (c *testContext) Output() io.Writer { return &c.buf }

func num(n int32) value.Executable  { return ast.Literal{V: value.Own(value.Number(n))} }
func str(s string) value.Executable { return ast.Literal{V: value.Own(value.String(s))} }
func boolLit(b bool) value.Executable {
	return ast.Literal{V: value.Own(value.Bool(b))}
}
func none() value.Executable { return ast.Literal{V: value.None()} }
