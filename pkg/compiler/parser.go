package compiler

import "fmt"

// Parser is a predictive recursive-descent parser with one token of
// lookahead. It pulls tokens from a Lexer as it goes.
//
// Grammar:
//
//	translation_unit     = function*
//	function             = TYPE IDENTIFIER "(" parameter_list? ")" "{" statement_list "}"
//	parameter_list       = parameter ("," parameter)*
//	parameter            = TYPE IDENTIFIER
//	statement_list       = statement*
//	statement            = (assignment_statement | return_statement | expr) ";"
//	assignment_statement = TYPE IDENTIFIER "=" expr
//	return_statement     = "return" expr
//	expr                 = term (("+" | "-") term)*
//	term                 = factor (("*" | "/") factor)*
//	factor               = IDENTIFIER | INTEGER | ("+" | "-") factor | "(" expr ")"
//
// Type names are resolved through the SymbolTable, and every parameter and
// declared variable is inserted into it.
type Parser struct {
	lex  *Lexer
	cur  Token
	syms *SymbolTable
}

// First sets of the grammar rules that are chosen by lookahead.
var (
	firstFactor    = []Kind{IDENTIFIER, INTEGER, PLUS, MINUS, LPAREN}
	firstStatement = append([]Kind{TYPE_KEYWORD, RETURN_KEYWORD}, firstFactor...)

	// Tokens that may follow a complete expr inside a statement.
	afterExpr = []Kind{SEMICOLON, PLUS, MINUS, STAR, SLASH}

	startsFactor    = kindSet(firstFactor)
	startsStatement = kindSet(firstStatement)
)

func kindSet(kinds []Kind) map[Kind]bool {
	set := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

// NewParser reads the first token from lex and returns a parser positioned
// on it. A nil syms gets a fresh SymbolTable.
func NewParser(lex *Lexer, syms *SymbolTable) (*Parser, error) {
	if syms == nil {
		syms = NewSymbolTable()
	}
	p := &Parser{lex: lex, syms: syms}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Symbols returns the table the parser resolves types against.
func (p *Parser) Symbols() *SymbolTable { return p.syms }

// advance replaces the current token with the next one from the lexer.
func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// fail reports the current token as unexpected.
func (p *Parser) fail(expected ...Kind) error {
	return &SyntaxError{Expected: append([]Kind(nil), expected...), Found: p.cur}
}

// expect consumes the current token if it is of kind k, otherwise returns a
// SyntaxError. alsoAccepted lists other kinds that were valid at this point
// and only affects the error message.
func (p *Parser) expect(k Kind, alsoAccepted ...Kind) (Token, error) {
	tok := p.cur
	if tok.Kind != k {
		return tok, p.fail(append([]Kind{k}, alsoAccepted...)...)
	}
	if err := p.advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

// expectEnd requires the input to be exhausted.
func (p *Parser) expectEnd(alsoAccepted ...Kind) error {
	if p.cur.Kind == EOF {
		return nil
	}
	expected := make([]Kind, 0, len(alsoAccepted)+1)
	expected = append(expected, alsoAccepted...)
	return p.fail(append(expected, EOF)...)
}

// parseTranslationUnit parses function* and stops at the first token that
// cannot start a function.
func (p *Parser) parseTranslationUnit() (*TranslationUnit, error) {
	unit := &TranslationUnit{}
	for p.cur.Kind == TYPE_KEYWORD {
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		unit.Functions = append(unit.Functions, fn)
	}
	return unit, nil
}

// parseType consumes a type keyword and resolves it to a built-in type.
func (p *Parser) parseType() (string, error) {
	tok, err := p.expect(TYPE_KEYWORD)
	if err != nil {
		return "", err
	}
	if _, ok := p.syms.LookupType(tok.Text); !ok {
		return "", &SyntaxError{Expected: []Kind{TYPE_KEYWORD}, Found: tok, Msg: fmt.Sprintf("unknown type %q", tok.Text)}
	}
	return tok.Text, nil
}

// parseFunction parses  type name(params) { statements }
func (p *Parser) parseFunction() (*FunctionDeclaration, error) {
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var params []Param
	if p.cur.Kind == TYPE_KEYWORD {
		params, err = p.parseParameterList()
		if err != nil {
			return nil, err
		}
	}
	if params == nil {
		if _, err := p.expect(RPAREN, TYPE_KEYWORD); err != nil {
			return nil, err
		}
	} else if _, err := p.expect(RPAREN, COMMA); err != nil {
		return nil, err
	}

	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RBRACE, firstStatement...); err != nil {
		return nil, err
	}

	return &FunctionDeclaration{ReturnType: retType, Name: nameTok.Text, Params: params, Body: body}, nil
}

// parseParameterList parses  parameter ("," parameter)*
func (p *Parser) parseParameterList() ([]Param, error) {
	var params []Param
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		nameTok, err := p.expect(IDENTIFIER)
		if err != nil {
			return nil, err
		}
		params = append(params, Param{Type: typ, Name: nameTok.Text})
		p.syms.Insert(NewVariableSymbol(nameTok.Text, typ))

		if p.cur.Kind != COMMA {
			return params, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
}

// parseStatementList parses statements for as long as the current token can
// start one. It does not consume the token that ends the list.
func (p *Parser) parseStatementList() (*Block, error) {
	block := &Block{}
	for startsStatement[p.cur.Kind] {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

// parseStatement dispatches on the leading token and consumes the closing ';'.
func (p *Parser) parseStatement() (Node, error) {
	var stmt Node
	var err error
	switch {
	case p.cur.Kind == TYPE_KEYWORD:
		stmt, err = p.parseAssignment()
	case p.cur.Kind == RETURN_KEYWORD:
		stmt, err = p.parseReturn()
	case startsFactor[p.cur.Kind]:
		stmt, err = p.parseExpr()
	default:
		return nil, p.fail(firstStatement...)
	}
	if err != nil {
		return nil, err
	}

	// Every statement form ends in an expr, so an operator would also have
	// been accepted here.
	if _, err := p.expect(SEMICOLON, afterExpr[1:]...); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseAssignment parses  type name = expr
func (p *Parser) parseAssignment() (Node, error) {
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.syms.Insert(NewVariableSymbol(nameTok.Text, typ))
	return &Assignment{Target: &Variable{Name: nameTok.Text, Type: typ}, Value: val}, nil
}

// parseReturn parses  return expr
func (p *Parser) parseReturn() (Node, error) {
	if _, err := p.expect(RETURN_KEYWORD); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ReturnStatement{Value: val}, nil
}

// parseExpr handles + and -
func (p *Parser) parseExpr() (Node, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == PLUS || p.cur.Kind == MINUS {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// parseTerm handles * and /
func (p *Parser) parseTerm() (Node, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == STAR || p.cur.Kind == SLASH {
		op := p.cur.Kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// parseFactor handles literals, variables, unary signs and parenthesised
// expressions.
func (p *Parser) parseFactor() (Node, error) {
	tok := p.cur
	switch tok.Kind {
	case IDENTIFIER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Variable{Name: tok.Text}, nil

	case INTEGER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Constant{Value: tok.Value}, nil

	case PLUS, MINUS:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if tok.Kind == PLUS {
			return operand, nil
		}
		return &BinaryOp{Left: &Constant{Value: -1}, Op: STAR, Right: operand}, nil

	case LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, afterExpr[1:]...); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.fail(firstFactor...)
	}
}
