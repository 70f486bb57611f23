package compiler

import (
	"fmt"
	"strings"
)

// Dump renders a parse result as an indented tree, two spaces per level.
// root may be a *TranslationUnit or any Node; nil renders as "<nil>".
//
//	FunctionDeclaration int f(int a)
//	  Block
//	    ReturnStatement
//	      BinaryOp +
//	        Variable a
//	        Constant 1
func Dump(root any) string {
	d := &dumper{}
	switch n := root.(type) {
	case *TranslationUnit:
		d.line("TranslationUnit")
		d.withIndent(func() {
			for _, fn := range n.Functions {
				d.node(fn)
			}
		})
	case Node:
		d.node(n)
	default:
		d.line("<nil>")
	}
	return d.b.String()
}

type dumper struct {
	b     strings.Builder
	depth int
}

func (d *dumper) line(s string) {
	d.b.WriteString(strings.Repeat("  ", d.depth))
	d.b.WriteString(s)
	d.b.WriteByte('\n')
}

func (d *dumper) withIndent(fn func()) { d.depth++; fn(); d.depth-- }

func (d *dumper) node(n Node) {
	switch n := n.(type) {
	case *Constant:
		d.line(fmt.Sprintf("Constant %d", n.Value))
	case *Variable:
		if n.Type != "" {
			d.line(fmt.Sprintf("Variable %s %s", n.Type, n.Name))
		} else {
			d.line("Variable " + n.Name)
		}
	case *BinaryOp:
		d.line("BinaryOp " + n.Op.Symbol())
		d.withIndent(func() {
			d.node(n.Left)
			d.node(n.Right)
		})
	case *Assignment:
		d.line("Assignment")
		d.withIndent(func() {
			d.node(n.Target)
			d.node(n.Value)
		})
	case *ReturnStatement:
		d.line("ReturnStatement")
		d.withIndent(func() { d.node(n.Value) })
	case *Block:
		d.line("Block")
		d.withIndent(func() {
			for _, stmt := range n.Statements {
				d.node(stmt)
			}
		})
	case *FunctionDeclaration:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.String()
		}
		d.line(fmt.Sprintf("FunctionDeclaration %s %s(%s)", n.ReturnType, n.Name, strings.Join(params, ", ")))
		d.withIndent(func() { d.node(n.Body) })
	default:
		d.line("<nil>")
	}
}
