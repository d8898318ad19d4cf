// Package lexer tokenizes jank source text using a state-function-over-a-
// Scanner design, built for jank's own delimiter set: parens for lists,
// brackets for vectors, curly braces for maps, "#{" for sets, and ":"
// keywords.
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jank-lang/jank/parser/token"
)

type LexFn func(*Lexer) *token.Token

const (
	symbolStartExtra = "+-*/=<>!&~%?$."
	symbolExtra       = "0123456789" + symbolStartExtra
)

type Lexer struct {
	scanner *token.Scanner
	lex     LexFn
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s, lex: (*Lexer).readToken}
}

func (lex *Lexer) ReadToken() *token.Token {
	return lex.lex(lex)
}

func (lex *Lexer) readToken() *token.Token {
	lex.skipWhitespace()
	if !lex.scanner.Accept(func(c rune) bool { return true }) {
		if lex.scanner.EOF() {
			return lex.emit(token.EOF, "")
		}
		if err := lex.scanner.Err(); err != nil {
			return lex.emitError(err)
		}
		return lex.emit(token.EOF, "")
	}
	switch lex.scanner.Rune() {
	case '(':
		return lex.emitToken(token.PAREN_L)
	case ')':
		return lex.emitToken(token.PAREN_R)
	case '[':
		return lex.emitToken(token.BRACKET_L)
	case ']':
		return lex.emitToken(token.BRACKET_R)
	case '{':
		return lex.emitToken(token.CURLY_L)
	case '}':
		return lex.emitToken(token.CURLY_R)
	case '\'':
		return lex.emitToken(token.QUOTE)
	case ':':
		return lex.readKeyword()
	case ';':
		lex.scanner.AcceptSeq(func(c rune) bool { return c != '\n' })
		return lex.scanner.EmitToken(token.COMMENT)
	case '"':
		return lex.readString()
	case '#':
		if lex.scanner.AcceptRune('{') {
			return lex.emitToken(token.HASH_CURLY)
		}
		return lex.emitError(fmt.Errorf("unsupported reader macro character after '#'"))
	default:
		return lex.readAtom()
	}
}

func (lex *Lexer) skipWhitespace() {
	lex.scanner.AcceptSeq(unicode.IsSpace)
	lex.scanner.Ignore()
}

func (lex *Lexer) emitToken(typ token.Type) *token.Token {
	return lex.scanner.EmitToken(typ)
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	return &token.Token{Type: typ, Text: text, Source: lex.scanner.LocStart()}
}

func (lex *Lexer) emitError(err error) *token.Token {
	return &token.Token{Type: token.ERROR, Text: err.Error(), Source: lex.scanner.LocStart()}
}

func (lex *Lexer) readKeyword() *token.Token {
	lex.scanner.AcceptSeq(isSymbolRune)
	return lex.scanner.EmitToken(token.KEYWORD)
}

func (lex *Lexer) readString() *token.Token {
	for {
		peek, ok := lex.scanner.Peek()
		if !ok {
			return lex.emitError(fmt.Errorf("unterminated string literal"))
		}
		if peek == '\\' {
			lex.scanner.ScanRune() // consume backslash
			if !lex.scanner.Accept(func(c rune) bool { return true }) {
				return lex.emitError(fmt.Errorf("unterminated string escape"))
			}
			continue
		}
		if !lex.scanner.Accept(func(c rune) bool { return true }) {
			return lex.emitError(fmt.Errorf("unterminated string literal"))
		}
		if lex.scanner.Rune() == '"' {
			return lex.scanner.EmitToken(token.STRING)
		}
	}
}

func (lex *Lexer) readAtom() *token.Token {
	negative := lex.scanner.Rune() == '-'
	if lex.scanner.Rune() == '-' || lex.scanner.Rune() == '+' {
		peek, ok := lex.scanner.Peek()
		if !ok || !isDigit(peek) {
			return lex.readSymbol()
		}
	}
	if isDigit(lex.scanner.Rune()) || negative {
		return lex.readNumber()
	}
	return lex.readSymbol()
}

func (lex *Lexer) readNumber() *token.Token {
	lex.scanner.AcceptSeqDigit()
	isFloat := false
	if lex.scanner.AcceptRune('.') {
		peek, ok := lex.scanner.Peek()
		if ok && isDigit(peek) {
			isFloat = true
			lex.scanner.AcceptSeqDigit()
		}
	}
	if lex.scanner.AcceptAny("eE") {
		isFloat = true
		lex.scanner.AcceptAny("+-")
		lex.scanner.AcceptSeqDigit()
	}
	if isFloat {
		return lex.scanner.EmitToken(token.FLOAT)
	}
	return lex.scanner.EmitToken(token.INT)
}

func (lex *Lexer) readSymbol() *token.Token {
	lex.scanner.AcceptSeq(isSymbolRune)
	return lex.scanner.EmitToken(token.SYMBOL)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isSymbolRune(c rune) bool {
	if unicode.IsSpace(c) {
		return false
	}
	if strings.ContainsRune("()[]{}'\";:", c) {
		return false
	}
	return true
}
