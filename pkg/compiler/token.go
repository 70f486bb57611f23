package compiler

import "fmt"

// Kind identifies the category of a lexed token.
type Kind int

const (
	EOF Kind = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable / function name
	INTEGER    // decimal integer literal

	// Keywords
	TYPE_KEYWORD   // "int", "float", "double"
	RETURN_KEYWORD // "return"

	// Paired delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,

	// Operators
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	ASSIGN // =
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	EOF:            "EOF",
	IDENTIFIER:     "IDENTIFIER",
	INTEGER:        "INTEGER",
	TYPE_KEYWORD:   "TYPE_KEYWORD",
	RETURN_KEYWORD: "RETURN_KEYWORD",
	LPAREN:         "LPAREN",
	RPAREN:         "RPAREN",
	LBRACKET:       "LBRACKET",
	RBRACKET:       "RBRACKET",
	LBRACE:         "LBRACE",
	RBRACE:         "RBRACE",
	SEMICOLON:      "SEMICOLON",
	COMMA:          "COMMA",
	PLUS:           "PLUS",
	MINUS:          "MINUS",
	STAR:           "STAR",
	SLASH:          "SLASH",
	ASSIGN:         "ASSIGN",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Symbol returns the source spelling of fixed-text kinds ("+", "(", ...),
// or the kind name for literal classes.
func (k Kind) Symbol() string {
	for ch, kind := range punctuation {
		if kind == k {
			return string(ch)
		}
	}
	return k.String()
}

// punctuation maps every single-character token to its Kind.
var punctuation = map[rune]Kind{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'=': ASSIGN,
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACKET,
	']': RBRACKET,
	'{': LBRACE,
	'}': RBRACE,
	';': SEMICOLON,
	',': COMMA,
}

// keywords maps reserved words to their keyword Kind.
var keywords = map[string]Kind{
	"int":    TYPE_KEYWORD,
	"float":  TYPE_KEYWORD,
	"double": TYPE_KEYWORD,
	"return": RETURN_KEYWORD,
}

// Position locates a token or error in the source text.
type Position struct {
	Offset int // 0-based byte offset
	Line   int // 1-based
	Col    int // 1-based, counted in runes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a single lexical unit produced by the Lexer.
// Tokens are values and are never modified after the lexer returns them.
type Token struct {
	Kind  Kind
	Text  string // the exact source text that was matched
	Value int64  // parsed value, INTEGER only
	Pos   Position
}

func (t Token) String() string {
	return fmt.Sprintf("%-14s %-10q  %s", t.Kind, t.Text, t.Pos)
}

// describe renders the token for error messages.
func (t Token) describe() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s (%q)", t.Kind, t.Text)
}
