// Package reader turns jank source text into the lazy finite sequence of
// value.Value the semantic analyzer consumes. It is a recursive-descent
// parser over reader/lexer tokens, with one-token lookahead, covering the
// forms jank's input alphabet needs: lists, vectors, maps, sets, quote,
// symbols, keywords, numbers, and strings.
package reader

import (
	"fmt"
	"io"

	"github.com/jank-lang/jank/parser/token"
	"github.com/jank-lang/jank/reader/lexer"
	"github.com/jank-lang/jank/value"
)

// Source is the contract the analyzer's root driver consumes: a lazy
// finite sequence of parse results, advanced by Next, ending at io.EOF.
type Source interface {
	// Next returns the next parsed value. At the end of the stream it
	// returns (nil, io.EOF).
	Next() (*value.Value, error)
}

// Parser implements Source by tokenizing and parsing jank source text.
type Parser struct {
	lex   *lexer.Lexer
	tok   *token.Token
	peek  *token.Token
	name  string
}

// New returns a Parser reading jank source named name (used in error
// locations) from r.
func New(name string, r io.Reader) *Parser {
	scanner := token.NewScanner(name, r)
	return &Parser{lex: lexer.New(scanner), name: name}
}

func (p *Parser) scan() {
	if p.peek != nil {
		p.tok = p.peek
		p.peek = nil
		return
	}
	p.tok = p.lex.ReadToken()
}

func (p *Parser) peekToken() *token.Token {
	if p.peek == nil {
		p.peek = p.lex.ReadToken()
	}
	return p.peek
}

// Next implements Source.
func (p *Parser) Next() (*value.Value, error) {
	p.scan()
	p.skipComments()
	if p.tok.Type == token.EOF {
		return nil, io.EOF
	}
	return p.parseExpr()
}

// All drains the parser eagerly, useful for callers (tests, the native/raw
// analyzer) that want a slice rather than iterating by hand.
func All(src Source) ([]*value.Value, error) {
	var out []*value.Value
	for {
		v, err := src.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

func (p *Parser) skipComments() {
	for p.tok.Type == token.COMMENT {
		p.scan()
	}
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &token.LocationError{
		Err:    fmt.Errorf(format, args...),
		Source: p.tok.Source,
	}
}

func (p *Parser) parseExpr() (*value.Value, error) {
	switch p.tok.Type {
	case token.ERROR:
		return nil, p.errorf("%s", p.tok.Text)
	case token.INT:
		return parseInt(p.tok)
	case token.FLOAT:
		return parseFloat(p.tok)
	case token.STRING:
		return parseString(p.tok)
	case token.SYMBOL:
		return p.parseSymbolLike(p.tok.Text)
	case token.KEYWORD:
		return value.KeywordFromText(p.tok.Text[1:]), nil
	case token.QUOTE:
		return p.parseQuote()
	case token.PAREN_L:
		return p.parseSeq(token.PAREN_R, value.List)
	case token.BRACKET_L:
		return p.parseSeq(token.BRACKET_R, value.Vector)
	case token.CURLY_L:
		return p.parseMap()
	case token.HASH_CURLY:
		return p.parseSeq(token.CURLY_R, value.Set)
	case token.PAREN_R, token.BRACKET_R, token.CURLY_R:
		return nil, p.errorf("unexpected %q", p.tok.Text)
	case token.EOF:
		return nil, io.EOF
	default:
		return nil, p.errorf("unexpected token %v", p.tok.Type)
	}
}

// parseSymbolLike recognizes the three bare-word literals true, false, and
// nil; anything else is an ordinary symbol.
func (p *Parser) parseSymbolLike(text string) (*value.Value, error) {
	switch text {
	case "nil":
		return value.Nil(), nil
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	default:
		sym := value.SymbolFromText(text)
		sym.Source = p.tok.Source
		return sym, nil
	}
}

func (p *Parser) parseQuote() (*value.Value, error) {
	loc := p.tok.Source
	p.scan()
	p.skipComments()
	inner, err := p.parseExpr()
	if err != nil {
		if err == io.EOF {
			return nil, p.errorf("unexpected end of input after '")
		}
		return nil, err
	}
	v := value.List(value.UnqualifiedSymbol("quote"), inner)
	v.Source = loc
	return v, nil
}

func (p *Parser) parseSeq(closeType token.Type, build func(...*value.Value) *value.Value) (*value.Value, error) {
	loc := p.tok.Source
	var cells []*value.Value
	for {
		p.scan()
		p.skipComments()
		if p.tok.Type == closeType {
			v := build(cells...)
			v.Source = loc
			return v, nil
		}
		if p.tok.Type == token.EOF {
			return nil, p.errorf("unexpected end of input, expected %q", closeType)
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		cells = append(cells, v)
	}
}

func (p *Parser) parseMap() (*value.Value, error) {
	loc := p.tok.Source
	v, err := p.parseSeq(token.CURLY_R, value.List)
	if err != nil {
		return nil, err
	}
	if len(v.Cells)%2 != 0 {
		return nil, &token.LocationError{
			Err:    fmt.Errorf("map literal requires an even number of forms"),
			Source: loc,
		}
	}
	m := value.Map(v.Cells...)
	m.Source = loc
	return m, nil
}

func parseInt(tok *token.Token) (*value.Value, error) {
	var n int64
	var neg bool
	text := tok.Text
	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		neg = text[0] == '-'
		text = text[1:]
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return nil, &token.LocationError{Err: fmt.Errorf("invalid integer literal %q", tok.Text), Source: tok.Source}
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		n = -n
	}
	v := value.Int(n)
	v.Source = tok.Source
	return v, nil
}

func parseFloat(tok *token.Token) (*value.Value, error) {
	f, err := parseFloatText(tok.Text)
	if err != nil {
		return nil, &token.LocationError{Err: err, Source: tok.Source}
	}
	v := value.Real(f)
	v.Source = tok.Source
	return v, nil
}

func parseString(tok *token.Token) (*value.Value, error) {
	s, err := unquoteString(tok.Text)
	if err != nil {
		return nil, &token.LocationError{Err: err, Source: tok.Source}
	}
	v := value.String(s)
	v.Source = tok.Source
	return v, nil
}
