// Package analyzer implements the jank semantic analyzer: the pass that
// turns a tree of reader-produced value.Value forms into a typed, resolved
// expression tree ready for code generation. Expression is a tagged union,
// following value.Value's own struct-with-Type-discriminant design, with a
// Go type switch standing in for per-variant behavior.
package analyzer

import "github.com/jank-lang/jank/value"

// Position is where an expression sits relative to a function's return:
// return-position expressions are the last thing an enclosing do/let*/if
// chain will evaluate before the function itself returns.
type Position int

const (
	// Statement is any position other than Return.
	Statement Position = iota
	// Return is the tail of a do/let*/if/fn* body.
	Return
)

// ExprBase is the common record embedded in every expression variant, reached
// through a single Base() accessor instead of per-variant boilerplate.
type ExprBase struct {
	ExprType Position
	Frame    *Frame
	NeedsBox bool
	Meta     *value.Value
}

func (b *ExprBase) Base() *ExprBase { return b }

// Expression is the tagged-variant expression interface; ExprBase is its
// uniform polymorphic surface. Code
// that needs to branch on variant uses a Go type switch, the idiomatic
// replacement for the virtual-dispatch design note.
type Expression interface {
	Base() *ExprBase
}

// PrimitiveLiteral wraps a runtime value, used verbatim at run time.
type PrimitiveLiteral struct {
	ExprBase
	Value *value.Value
}

// LocalReference names a resolved local variable or parameter.
type LocalReference struct {
	ExprBase
	Symbol  *value.Value
	Binding *LocalBinding
}

// VarDeref dereferences a namespaced var to its current value.
type VarDeref struct {
	ExprBase
	Symbol *value.Value
	Var    *value.Value
}

// VarRef reifies the var cell itself, produced by (var sym).
type VarRef struct {
	ExprBase
	Symbol *value.Value
	Var    *value.Value
}

// Def is a top-level or nested (def sym value?) form.
type Def struct {
	ExprBase
	Symbol      *value.Value
	Initializer Expression // nil for declaration-only def
}

// If is a two- or three-armed conditional.
type If struct {
	ExprBase
	Condition Expression
	Then      Expression
	Else      Expression // nil when the else arm was omitted
}

// LetPair is one binding in a let* form.
type LetPair struct {
	Symbol      *value.Value
	Initializer Expression
}

// Let is a (let* [bindings...] body...) form.
type Let struct {
	ExprBase
	Pairs []LetPair
	Body  *Do
	Frame *Frame
}

// Do is an implicit-progn sequence of body expressions.
type Do struct {
	ExprBase
	Body []Expression
}

// FunctionArity is one (params body...) arm of a fn*.
type FunctionArity struct {
	ExprBase
	Params  []*value.Value
	Body    *Do
	Frame   *Frame
	FnCtx   *FunctionContext
}

// Fn is a named or anonymous function with one or more arities.
type Fn struct {
	ExprBase
	Name    string
	Arities []*FunctionArity
}

// Recur is a tail self-call back to the enclosing arity's params.
type Recur struct {
	ExprBase
	Args []Expression
}

// Call is an ordinary function invocation (head is not a special form).
type Call struct {
	ExprBase
	Callee Expression
	Args   []Expression
}

// Vector is a non-constant vector literal.
type Vector struct {
	ExprBase
	Elements []Expression
}

// MapPair is one key/value entry of a map literal.
type MapPair struct {
	Key   Expression
	Value Expression
}

// Map is a map literal.
type Map struct {
	ExprBase
	Pairs []MapPair
}

// NativeChunk is one piece of a native_raw node: either verbatim text or an
// analyzed interpolated expression.
type NativeChunk struct {
	Text string     // non-empty only when Expr is nil
	Expr Expression // nil for a plain text chunk
}

// NativeRaw is a (native/raw "...") verbatim host-code block with
// interpolation holes.
type NativeRaw struct {
	ExprBase
	Chunks []NativeChunk
}
