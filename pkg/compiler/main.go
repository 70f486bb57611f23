// Package compiler provides the front end of a small C-like language: a
// pull-based lexer, a predictive recursive-descent parser and a flat symbol
// registry for the built-in types.
//
// Pipeline: source → Lexer → tokens → Parser (+ SymbolTable) → AST
package compiler
