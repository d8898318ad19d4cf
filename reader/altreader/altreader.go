// Package altreader is a second implementation of the reader.Source
// contract, built on the github.com/prataprc/goparsec parser-combinator
// library instead of the hand-written recursive-descent reader in package
// reader. It covers the same collection literals (curly-brace maps,
// "#{"-prefixed sets) as package reader.
package altreader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jank-lang/jank/value"
	parsec "github.com/prataprc/goparsec"
)

type nodeType uint

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeList
	nodeVector
	nodeMap
	nodeSet
	nodeQuote
)

// Reader implements reader.Source by eagerly parsing the full input on
// construction, then serving values off a buffered slice — mirroring
// parsec's own scan-the-whole-buffer style (parsec.NewScanner operates on
// an in-memory []byte, not an io.Reader).
type Reader struct {
	values []*value.Value
	pos    int
}

// New parses all of r's contents up front and returns a Reader over the
// results.
func New(name string, r io.Reader) (*Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	vals, n, err := ParseAll(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, io.ErrUnexpectedEOF
	}
	return &Reader{values: vals}, nil
}

// Next implements reader.Source.
func (p *Reader) Next() (*value.Value, error) {
	if p.pos >= len(p.values) {
		return nil, io.EOF
	}
	v := p.values[p.pos]
	p.pos++
	return v, nil
}

// ParseAll parses every top-level form in text, returning the values and
// the number of bytes consumed.
func ParseAll(text []byte) ([]*value.Value, int, error) {
	var vals []*value.Value
	s := parsec.NewScanner(text)
	grammar := newGrammar()
	node, rest := grammar(s)
	for node != nil {
		v, err := toValue(node)
		if err != nil {
			return vals, rest.GetCursor(), err
		}
		if v != nil {
			vals = append(vals, v)
		}
		node, rest = grammar(rest)
		s = rest
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		chunk, _ := s.Match(`.{1,16}`)
		return vals, s.GetCursor(), fmt.Errorf("unexpected source text starting: %q", chunk)
	}
	return vals, s.GetCursor(), nil
}

func astNode(typ nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return &ast{typ: typ, nodes: nodes}
	}
}

type ast struct {
	typ   nodeType
	nodes []parsec.ParsecNode
}

func newGrammar() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openV := parsec.Atom("[", "OPENV")
	closeV := parsec.Atom("]", "CLOSEV")
	openM := parsec.Atom("{", "OPENM")
	closeM := parsec.Atom("}", "CLOSEM")
	openS := parsec.Atom("#{", "OPENS")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;([^\n]*)`, "COMMENT")
	decimal := parsec.Token(`[+-]?[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "DECIMAL")
	keyword := parsec.Token(`:[^\s()\[\]{}'"]+`, "KEYWORD")
	symbol := parsec.Token(`(?:nil|true|false|[^\s()\[\]{}'":;]+)`, "SYMBOL")

	term := parsec.OrdChoice(astNode(nodeTerm),
		parsec.String(),
		decimal,
		keyword,
		symbol,
	)

	var expr parsec.Parser
	elems := parsec.Kleene(nil, &expr)

	list := parsec.And(astNode(nodeList), openP, elems, closeP)
	vector := parsec.And(astNode(nodeVector), openV, elems, closeV)
	mapLit := parsec.And(astNode(nodeMap), openM, elems, closeM)
	setLit := parsec.And(astNode(nodeSet), openS, elems, closeM)
	quote := parsec.And(astNode(nodeQuote), q, &expr)

	expr = parsec.OrdChoice(nil,
		comment,
		setLit, // before term: the symbol pattern would otherwise match "#"
		term,
		list,
		vector,
		mapLit,
		quote,
	)
	return expr
}

func toValue(node parsec.ParsecNode) (*value.Value, error) {
	a, ok := node.(*ast)
	if !ok {
		return nil, nil // comment or other non-value terminal
	}
	nodes := cleanNodes(a.nodes)
	switch a.typ {
	case nodeTerm:
		if len(nodes) == 0 {
			return nil, nil
		}
		return termValue(nodes[0])
	case nodeQuote:
		inner, err := toValue(nodes[len(nodes)-1])
		if err != nil {
			return nil, err
		}
		return value.List(value.UnqualifiedSymbol("quote"), inner), nil
	case nodeList, nodeVector, nodeMap, nodeSet:
		cells, err := elemValues(nodes)
		if err != nil {
			return nil, err
		}
		switch a.typ {
		case nodeList:
			return value.List(cells...), nil
		case nodeVector:
			return value.Vector(cells...), nil
		case nodeSet:
			return value.Set(cells...), nil
		default:
			if len(cells)%2 != 0 {
				return nil, fmt.Errorf("map literal requires an even number of forms")
			}
			return value.Map(cells...), nil
		}
	default:
		return nil, fmt.Errorf("unrecognized node type %v", a.typ)
	}
}

// cleanNodes drops the open/close punctuation terminals parsec.And keeps
// around, leaving only inner sub-expressions (and the quote marker, kept
// so nodeQuote can find its single child via nodes[len-1]).
func cleanNodes(nodes []parsec.ParsecNode) []parsec.ParsecNode {
	var out []parsec.ParsecNode
	for _, n := range nodes {
		if term, ok := n.(*parsec.Terminal); ok {
			switch term.Name {
			case "OPENP", "CLOSEP", "OPENV", "CLOSEV", "OPENM", "CLOSEM", "OPENS":
				continue
			case "COMMENT":
				continue
			}
		}
		if inner, ok := n.([]parsec.ParsecNode); ok {
			out = append(out, cleanNodes(inner)...)
			continue
		}
		out = append(out, n)
	}
	return out
}

func elemValues(nodes []parsec.ParsecNode) ([]*value.Value, error) {
	var out []*value.Value
	for _, n := range nodes {
		v, err := toValue(n)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}

func termValue(node parsec.ParsecNode) (*value.Value, error) {
	switch n := node.(type) {
	case string:
		s, err := strconv.Unquote(`"` + n + `"`)
		if err != nil {
			s = n
		}
		return value.String(s), nil
	case *parsec.Terminal:
		switch n.Name {
		case "DECIMAL":
			if strings.ContainsAny(n.Value, ".eE") {
				f, err := strconv.ParseFloat(n.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("bad number %q: %w", n.Value, err)
				}
				return value.Real(f), nil
			}
			x, err := strconv.ParseInt(n.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q: %w", n.Value, err)
			}
			return value.Int(x), nil
		case "KEYWORD":
			return value.KeywordFromText(n.Value[1:]), nil
		case "SYMBOL":
			switch n.Value {
			case "nil":
				return value.Nil(), nil
			case "true":
				return value.Bool(true), nil
			case "false":
				return value.Bool(false), nil
			default:
				return value.SymbolFromText(n.Value), nil
			}
		}
	}
	return nil, fmt.Errorf("unrecognized terminal %v", node)
}
