package compiler

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer holds all mutable state for a single scanning pass over src.
// Tokens are produced on demand by NextToken; nothing is buffered.
type Lexer struct {
	src    []rune
	pos    int // index of the next rune to consume
	offset int // byte offset of src[pos]
	line   int // current 1-based source line
	col    int // current 1-based column
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.atEnd() {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	l.offset += utf8.RuneLen(r)
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) position() Position {
	return Position{Offset: l.offset, Line: l.line, Col: l.col}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanIdent collects a full identifier or keyword token.
// The first letter must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	pos := l.position()
	start := l.pos
	for !l.atEnd() {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advance()
	}
	text := string(l.src[start:l.pos])
	kind := IDENTIFIER
	if kw, ok := keywords[text]; ok {
		kind = kw
	}
	return Token{Kind: kind, Text: text, Pos: pos}
}

// scanInt collects a maximal run of decimal digits.
// The first digit must still be at l.peek().
func (l *Lexer) scanInt() (Token, error) {
	pos := l.position()
	start := l.pos
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	text := string(l.src[start:l.pos])
	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &LexError{Char: l.src[start], Pos: pos, Msg: "integer literal " + text + " overflows int64"}
	}
	return Token{Kind: INTEGER, Text: text, Value: val, Pos: pos}, nil
}

// NextToken skips whitespace and returns the next Token. Once the input is
// exhausted every call returns an EOF token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	if l.atEnd() {
		return Token{Kind: EOF, Pos: l.position()}, nil
	}

	ch := l.peek()
	if isDigit(ch) {
		return l.scanInt()
	}
	if unicode.IsLetter(ch) {
		return l.scanIdent(), nil
	}

	pos := l.position()
	if kind, ok := punctuation[ch]; ok {
		l.advance()
		return Token{Kind: kind, Text: string(ch), Pos: pos}, nil
	}
	return Token{}, &LexError{Char: ch, Pos: pos}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first unclassifiable character.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}
