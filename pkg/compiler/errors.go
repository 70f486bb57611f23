package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// LexError reports a character the lexer cannot classify, or an integer
// literal that does not fit in an int64 (Msg is set in that case).
type LexError struct {
	Char rune
	Pos  Position
	Msg  string
}

func (e *LexError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
}

// Position returns where the offending character starts.
func (e *LexError) Position() Position { return e.Pos }

// SyntaxError reports a token that does not fit the grammar at its position.
// Expected lists every kind that would have been accepted there.
type SyntaxError struct {
	Expected []Kind
	Found    Token
	Msg      string // overrides the expected/found wording when set
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Found.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Found.Pos, joinKinds(e.Expected), e.Found.describe())
}

// Position returns the position of the offending token.
func (e *SyntaxError) Position() Position { return e.Found.Pos }

// Expects reports whether k is one of the kinds the parser would have accepted.
func (e *SyntaxError) Expects(k Kind) bool {
	for _, want := range e.Expected {
		if want == k {
			return true
		}
	}
	return false
}

func joinKinds(kinds []Kind) string {
	switch len(kinds) {
	case 0:
		return "nothing"
	case 1:
		return kinds[0].Symbol()
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.Symbol()
	}
	return "one of " + strings.Join(parts, " ")
}

// IsIncomplete reports whether err was caused by the input ending early,
// i.e. more text could still turn it into a valid parse.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.Found.Kind == EOF && se.Msg == ""
}

// FormatError renders a lex or syntax error with the offending source line
// and a caret under the column:
//
//	main.c:2:9: expected one of ; + - * /, got INTEGER ("2")
//	  |> return 1 2;
//	  |           ^
//
// Other errors are returned as err.Error().
func FormatError(err error, name, src string) string {
	var pos Position
	var lexErr *LexError
	var synErr *SyntaxError
	switch {
	case errors.As(err, &lexErr):
		pos = lexErr.Pos
	case errors.As(err, &synErr):
		pos = synErr.Found.Pos
	default:
		return err.Error()
	}

	var sb strings.Builder
	if name != "" {
		sb.WriteString(name)
		sb.WriteByte(':')
	}
	sb.WriteString(err.Error())

	lines := strings.Split(src, "\n")
	idx := pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return sb.String()
	}
	line := strings.TrimRight(lines[idx], "\r")
	runes := []rune(line)
	col := min(max(pos.Col-1, 0), len(runes))

	// Tabs before the caret are kept so the caret lines up in a terminal.
	var pad strings.Builder
	for _, r := range runes[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	fmt.Fprintf(&sb, "\n  |> %s\n  |> %s^", line, pad.String())
	return sb.String()
}
