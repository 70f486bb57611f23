package compiler

import (
	"fmt"
	"strings"
)

// Node is implemented by every AST node. The set of implementations is
// closed; consumers type-switch over:
//
//	*Constant *BinaryOp *Variable *Assignment *ReturnStatement *Block *FunctionDeclaration
type Node interface {
	node()
	String() string
}

// Constant is an integer literal.
//
//	return 10;
//	       ^^  Constant{Value: 10}
type Constant struct {
	Value int64
}

func (*Constant) node()            {}
func (c *Constant) String() string { return fmt.Sprintf("%d", c.Value) }

// BinaryOp represents Left Op Right, where Op is PLUS, MINUS, STAR or SLASH.
//
//	x + 1
//	^ ^ ^
//	| | Right
//	| Op
//	Left
//
// Unary minus is encoded as BinaryOp{Left: Constant{-1}, Op: STAR, Right: operand}.
type BinaryOp struct {
	Left  Node
	Op    Kind
	Right Node
}

func (*BinaryOp) node() {}
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Symbol(), b.Right)
}

// Variable is a named variable. Type is the declared type when the variable
// is the target of a declaring assignment, and empty for a plain reference.
type Variable struct {
	Name string
	Type string
}

func (*Variable) node() {}
func (v *Variable) String() string {
	if v.Type != "" {
		return v.Type + " " + v.Name
	}
	return v.Name
}

// Assignment represents  int name = expr
type Assignment struct {
	Target *Variable
	Value  Node
}

func (*Assignment) node() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Target, a.Value)
}

// ReturnStatement represents  return expr
type ReturnStatement struct {
	Value Node
}

func (*ReturnStatement) node() {}
func (r *ReturnStatement) String() string {
	return fmt.Sprintf("ReturnStatement(%s)", r.Value)
}

// Block is an ordered list of statements.
type Block struct {
	Statements []Node
}

func (*Block) node() {}
func (b *Block) String() string {
	return fmt.Sprintf("Block(len=%d)", len(b.Statements))
}

// Param is one (type, name) pair of a function's parameter list.
type Param struct {
	Type string
	Name string
}

func (p Param) String() string { return p.Type + " " + p.Name }

// FunctionDeclaration represents  type name(params) { body }
type FunctionDeclaration struct {
	ReturnType string
	Name       string
	Params     []Param
	Body       *Block
}

func (*FunctionDeclaration) node() {}
func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("FunctionDeclaration(%s %s(%s), body=%s)",
		f.ReturnType, f.Name, strings.Join(params, ", "), f.Body)
}

// TranslationUnit is the root of a whole source file: its functions in
// source order.
type TranslationUnit struct {
	Functions []*FunctionDeclaration
}

func (u *TranslationUnit) String() string {
	return fmt.Sprintf("TranslationUnit(len=%d)", len(u.Functions))
}
