// Package value implements the runtime value system that the semantic
// analyzer consumes as its input alphabet: the tagged union of nil,
// booleans, numbers, strings, keywords, symbols, and the collection types
// (lists, vectors, maps, sets), plus vars.
//
// Values use a tagged-union design (one struct, one Type field, a handful
// of typed fields reused across variants) rather than an interface-per-type
// hierarchy, because that is the representation reader, analyzer, and
// (eventually) code generator all need to share cheaply.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jank-lang/jank/parser/token"
)

// Type is the tag of a Value.
type Type uint8

const (
	Invalid Type = iota
	NilType
	BoolType
	IntType
	RealType
	StringType
	KeywordType
	SymbolType
	ListType
	VectorType
	MapType
	SetType
	VarRefType
)

var typeNames = [...]string{
	Invalid:     "invalid",
	NilType:     "nil",
	BoolType:    "bool",
	IntType:     "int",
	RealType:    "real",
	StringType:  "string",
	KeywordType: "keyword",
	SymbolType:  "symbol",
	ListType:    "list",
	VectorType:  "vector",
	MapType:     "map",
	SetType:     "set",
	VarRefType:  "var",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "invalid"
}

// Value is a single runtime value. Only the fields relevant to Type are
// populated; the rest are zero.
type Value struct {
	Type Type

	Bool bool
	Int  int64
	Real float64

	// Ns/Name hold the namespace/name parts of a Symbol or Keyword. Name
	// also holds the payload of a String. Ns is empty for an unqualified
	// symbol or keyword.
	Ns   string
	Name string

	// Interned is true for keywords returned by an interning table; it
	// lets equal keywords compare cheaply by identity upstream, though
	// the analyzer itself only relies on Ns/Name equality.
	Interned bool

	// Cells holds the elements of List, Vector, and Set, and the flattened
	// key/value pairs (k0, v0, k1, v1, ...) of Map, in source order.
	Cells []*Value

	Var *Var

	// Meta is an optional metadata map attached to a Symbol or Var-valued
	// Value. nil means no metadata.
	Meta *Value

	Source *token.Location
}

func Nil() *Value                { return &Value{Type: NilType} }
func Bool(b bool) *Value         { return &Value{Type: BoolType, Bool: b} }
func Int(n int64) *Value         { return &Value{Type: IntType, Int: n} }
func Real(f float64) *Value      { return &Value{Type: RealType, Real: f} }
func String(s string) *Value     { return &Value{Type: StringType, Name: s} }
func Keyword(ns, name string) *Value {
	return &Value{Type: KeywordType, Ns: ns, Name: name}
}
func Symbol(ns, name string) *Value {
	return &Value{Type: SymbolType, Ns: ns, Name: name}
}

// UnqualifiedSymbol is a convenience constructor for a bare symbol name.
func UnqualifiedSymbol(name string) *Value {
	return Symbol("", name)
}

func List(cells ...*Value) *Value {
	return &Value{Type: ListType, Cells: cells}
}

func Vector(cells ...*Value) *Value {
	return &Value{Type: VectorType, Cells: cells}
}

func Set(cells ...*Value) *Value {
	return &Value{Type: SetType, Cells: cells}
}

// Map builds a map value from alternating key, value arguments. It panics
// (a programmer error, not a user error) if given an odd count.
func Map(kvs ...*Value) *Value {
	if len(kvs)%2 != 0 {
		panic("value.Map: odd number of key/value arguments")
	}
	return &Value{Type: MapType, Cells: kvs}
}

func (v *Value) IsNil() bool {
	return v == nil || v.Type == NilType
}

// Truthy implements jank's truthiness: everything except nil and the
// boolean false is truthy.
func (v *Value) Truthy() bool {
	if v.IsNil() {
		return false
	}
	if v.Type == BoolType {
		return v.Bool
	}
	return true
}

// IsQualified reports whether a Symbol or Keyword carries a namespace part.
func (v *Value) IsQualified() bool {
	return v.Ns != ""
}

// QualifiedName renders a symbol or keyword as "ns/name", or "name" if
// unqualified.
func (v *Value) QualifiedName() string {
	if v.Ns == "" {
		return v.Name
	}
	return v.Ns + "/" + v.Name
}

// First returns the head of a list, or nil if the list is empty.
func (v *Value) First() *Value {
	if v.Type != ListType || len(v.Cells) == 0 {
		return Nil()
	}
	return v.Cells[0]
}

// Rest returns the tail of a list (possibly empty).
func (v *Value) Rest() *Value {
	if v.Type != ListType || len(v.Cells) == 0 {
		return List()
	}
	return List(v.Cells[1:]...)
}

func (v *Value) IsEmptyList() bool {
	return v.Type == ListType && len(v.Cells) == 0
}

// Len returns the number of elements/pairs a collection holds. For Map it
// is the number of key/value pairs (Cells/2).
func (v *Value) Len() int {
	switch v.Type {
	case ListType, VectorType, SetType:
		return len(v.Cells)
	case MapType:
		return len(v.Cells) / 2
	default:
		return 0
	}
}

// IsPrimitiveLiteral reports whether v is a self-evaluating scalar: one of
// the types the analyzer's primitive-literal analyzer ("primitive
// literal") handles directly.
func (v *Value) IsPrimitiveLiteral() bool {
	switch v.Type {
	case NilType, BoolType, IntType, RealType, StringType, KeywordType, SetType:
		return true
	default:
		return false
	}
}

// Equal implements a structural equality sufficient for constant/var
// lift-idempotence checks (lift_constant/lift_var are idempotent).
// Map key uniqueness checking is a documented open question
// and is deliberately not layered on top of this.
func Equal(a, b *Value) bool {
	if a.IsNil() && b.IsNil() {
		return true
	}
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	switch a.Type {
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int == b.Int
	case RealType:
		return a.Real == b.Real
	case StringType:
		return a.Name == b.Name
	case KeywordType, SymbolType:
		return a.Ns == b.Ns && a.Name == b.Name
	case ListType, VectorType, SetType:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// String renders v using jank's printed representation. It is used for
// diagnostics, debug dumps, and the CLI — never by the analyzer itself to
// make decisions.
func (v *Value) String() string {
	if v.IsNil() {
		return "nil"
	}
	switch v.Type {
	case BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case RealType:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	case StringType:
		return strconv.Quote(v.Name)
	case KeywordType:
		return ":" + v.QualifiedName()
	case SymbolType:
		return v.QualifiedName()
	case ListType:
		return wrap("(", ")", v.Cells)
	case VectorType:
		return wrap("[", "]", v.Cells)
	case SetType:
		return "#" + wrap("{", "}", v.Cells)
	case MapType:
		var b strings.Builder
		b.WriteByte('{')
		for i := 0; i+1 < len(v.Cells); i += 2 {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v.Cells[i].String())
			b.WriteByte(' ')
			b.WriteString(v.Cells[i+1].String())
		}
		b.WriteByte('}')
		return b.String()
	case VarRefType:
		return fmt.Sprintf("#'%s", v.Var.QualifiedName())
	default:
		return "#<invalid>"
	}
}

func wrap(open, close string, cells []*Value) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return open + strings.Join(parts, " ") + close
}

// SortedMapKeys returns a deterministic ordering of a map's keys, used
// only for stable diagnostic/debug output.
func SortedMapKeys(m *Value) []*Value {
	keys := make([]*Value, 0, m.Len())
	for i := 0; i+1 < len(m.Cells); i += 2 {
		keys = append(keys, m.Cells[i])
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
