package compiler

import (
	"fmt"
	"strings"
)

// Mode selects the grammar rule a parse starts from.
type Mode int

const (
	ModeTranslationUnit Mode = iota // function*
	ModeFunction                    // a single function
	ModeBlock                       // a bare statement_list
	ModeStatement                   // a single statement
	ModeExpression                  // an expr, optionally followed by ';'
)

var modeNames = [...]string{
	ModeTranslationUnit: "unit",
	ModeFunction:        "function",
	ModeBlock:           "block",
	ModeStatement:       "statement",
	ModeExpression:      "expr",
}

func (m Mode) String() string {
	if int(m) >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name as printed by Mode.String back to its Mode.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown parse mode %q (want one of %s)", name, strings.Join(modeNames[:], ", "))
}

// Config controls a single parse.
type Config struct {
	Mode Mode
	// Symbols is the table types are resolved against and declarations are
	// recorded in. Nil means a fresh table with only the built-in types.
	Symbols *SymbolTable
}

// DefaultConfig parses whole translation units with a fresh symbol table.
func DefaultConfig() Config {
	return Config{Mode: ModeTranslationUnit}
}

// Result holds the tree produced by Parse. Only the field matching Mode is set.
type Result struct {
	Mode      Mode
	Unit      *TranslationUnit
	Function  *FunctionDeclaration
	Block     *Block
	Statement Node
	Expr      Node
	Symbols   *SymbolTable
}

// Root returns the parsed tree for the selected mode.
func (r *Result) Root() any {
	switch r.Mode {
	case ModeFunction:
		return r.Function
	case ModeBlock:
		return r.Block
	case ModeStatement:
		return r.Statement
	case ModeExpression:
		return r.Expr
	default:
		return r.Unit
	}
}

// Parse lexes and parses src starting from cfg.Mode. The whole input must be
// consumed. The returned error is a *LexError or a *SyntaxError; no partial
// tree is returned with it.
func Parse(src string, cfg Config) (*Result, error) {
	p, err := NewParser(NewLexer(src), cfg.Symbols)
	if err != nil {
		return nil, err
	}
	res := &Result{Mode: cfg.Mode, Symbols: p.Symbols()}

	switch cfg.Mode {
	case ModeTranslationUnit:
		res.Unit, err = p.parseTranslationUnit()
		if err == nil {
			err = p.expectEnd(TYPE_KEYWORD)
		}
	case ModeFunction:
		res.Function, err = p.parseFunction()
		if err == nil {
			err = p.expectEnd()
		}
	case ModeBlock:
		res.Block, err = p.parseStatementList()
		if err == nil {
			err = p.expectEnd(firstStatement...)
		}
	case ModeStatement:
		res.Statement, err = p.parseStatement()
		if err == nil {
			err = p.expectEnd()
		}
	case ModeExpression:
		res.Expr, err = p.parseExpr()
		if err == nil {
			err = p.endExpression()
		}
	default:
		return nil, fmt.Errorf("unknown parse mode %d", int(cfg.Mode))
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// endExpression accepts one optional ';' after a top-level expr.
func (p *Parser) endExpression() error {
	if p.cur.Kind != SEMICOLON {
		return p.expectEnd(afterExpr...)
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.expectEnd()
}

// ParseTranslationUnit parses a whole source file.
func ParseTranslationUnit(src string) (*TranslationUnit, error) {
	res, err := Parse(src, Config{Mode: ModeTranslationUnit})
	if err != nil {
		return nil, err
	}
	return res.Unit, nil
}

// ParseFunction parses exactly one function declaration.
func ParseFunction(src string) (*FunctionDeclaration, error) {
	res, err := Parse(src, Config{Mode: ModeFunction})
	if err != nil {
		return nil, err
	}
	return res.Function, nil
}

// ParseBlock parses a sequence of statements without surrounding braces.
func ParseBlock(src string) (*Block, error) {
	res, err := Parse(src, Config{Mode: ModeBlock})
	if err != nil {
		return nil, err
	}
	return res.Block, nil
}

// ParseStatement parses exactly one statement, including its ';'.
func ParseStatement(src string) (Node, error) {
	res, err := Parse(src, Config{Mode: ModeStatement})
	if err != nil {
		return nil, err
	}
	return res.Statement, nil
}

// ParseExpression parses one expression, optionally terminated by ';'.
func ParseExpression(src string) (Node, error) {
	res, err := Parse(src, Config{Mode: ModeExpression})
	if err != nil {
		return nil, err
	}
	return res.Expr, nil
}
