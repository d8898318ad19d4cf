package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Nil().Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.True(t, Int(0).Truthy())
	assert.True(t, String("").Truthy())
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "foo", Symbol("", "foo").QualifiedName())
	assert.Equal(t, "ns/foo", Symbol("ns", "foo").QualifiedName())
	assert.True(t, Symbol("ns", "foo").IsQualified())
	assert.False(t, Symbol("", "foo").IsQualified())
}

func TestListFirstRest(t *testing.T) {
	l := List(Int(1), Int(2), Int(3))
	assert.True(t, Equal(l.First(), Int(1)))
	assert.True(t, Equal(l.Rest(), List(Int(2), Int(3))))
	assert.True(t, List().IsEmptyList())
	assert.True(t, List().First().IsNil())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Int(2)))
	assert.True(t, Equal(Vector(Int(1), Keyword("", "a")), Vector(Int(1), Keyword("", "a"))))
	assert.False(t, Equal(Vector(Int(1)), Vector(Int(1), Int(2))))
	assert.True(t, Equal(Nil(), Nil()))
}

func TestIsPrimitiveLiteral(t *testing.T) {
	assert.True(t, Nil().IsPrimitiveLiteral())
	assert.True(t, Bool(true).IsPrimitiveLiteral())
	assert.True(t, Int(1).IsPrimitiveLiteral())
	assert.True(t, Set(Int(1)).IsPrimitiveLiteral())
	assert.False(t, List(Int(1)).IsPrimitiveLiteral())
	assert.False(t, Vector(Int(1)).IsPrimitiveLiteral())
	assert.False(t, Symbol("", "x").IsPrimitiveLiteral())
}

func TestString(t *testing.T) {
	assert.Equal(t, "nil", Nil().String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "(1 2)", List(Int(1), Int(2)).String())
	assert.Equal(t, "[1 2]", Vector(Int(1), Int(2)).String())
	assert.Equal(t, ":a/b", Keyword("a", "b").String())
}

func TestRegistryInternVar(t *testing.T) {
	r := NewRegistry()
	v1, err := r.InternVar(Symbol("user", "x"))
	assert.NoError(t, err)
	v2, err := r.InternVar(Symbol("user", "x"))
	assert.NoError(t, err)
	assert.Same(t, v1, v2)

	found, ok := r.FindVar(Symbol("user", "x"))
	assert.True(t, ok)
	assert.Same(t, v1, found)

	_, ok = r.FindVar(Symbol("user", "missing"))
	assert.False(t, ok)
}

func TestVarIsMacro(t *testing.T) {
	v := NewVar("user", "m")
	assert.False(t, v.IsMacro())
	v.SetMeta(Map(Keyword("", "macro"), Bool(true)))
	assert.True(t, v.IsMacro())
}

func TestArityMetaFor(t *testing.T) {
	meta := Map(
		Keyword("", "arities"),
		Map(Int(2), Map(
			Keyword("", "supports-unboxed-input?"), Bool(true),
			Keyword("", "unboxed-output?"), Bool(false),
		)),
	)
	am, ok := ArityMetaFor(meta, 2)
	assert.True(t, ok)
	assert.True(t, am.SupportsUnboxedInput)
	assert.False(t, am.UnboxedOutput)

	_, ok = ArityMetaFor(meta, 3)
	assert.False(t, ok)
}
