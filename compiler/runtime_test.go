package compiler_test

import (
	"testing"

	"github.com/jank-lang/jank/compiler"
	"github.com/jank-lang/jank/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternAndFindVar(t *testing.T) {
	rt := compiler.NewRuntime("user", true)
	sym := value.Symbol("user", "x")

	v, err := rt.InternVar(sym)
	require.NoError(t, err)
	assert.Equal(t, value.VarRefType, v.Type)

	found, ok := rt.FindVar(sym)
	require.True(t, ok)
	assert.Same(t, v.Var, found.Var)

	_, ok = rt.FindVar(value.Symbol("user", "y"))
	assert.False(t, ok)
}

func TestQualifySymbol(t *testing.T) {
	rt := compiler.NewRuntime("user", true)

	qualified, err := rt.QualifySymbol(value.UnqualifiedSymbol("x"))
	require.NoError(t, err)
	assert.Equal(t, "user/x", qualified.QualifiedName())

	already, err := rt.QualifySymbol(value.Symbol("other", "x"))
	require.NoError(t, err)
	assert.Equal(t, "other/x", already.QualifiedName())
}

func TestInternKeywordIsIdempotent(t *testing.T) {
	rt := compiler.NewRuntime("user", true)
	a := rt.InternKeyword("", "macro")
	b := rt.InternKeyword("", "macro")
	assert.Same(t, a, b)
}

func TestUniqueStringIsUnique(t *testing.T) {
	rt := compiler.NewRuntime("user", true)
	a := rt.UniqueString("fn")
	b := rt.UniqueString("fn")
	assert.NotEqual(t, a, b)
}

func TestMunge(t *testing.T) {
	rt := compiler.NewRuntime("user", true)
	assert.Equal(t, "zero_q_", rt.Munge("zero?"))
	assert.Equal(t, "not_eq_", rt.Munge("not="))
}

func TestMacroexpand1NonMacro(t *testing.T) {
	rt := compiler.NewRuntime("user", true)
	_, err := rt.InternVar(value.Symbol("user", "f"))
	require.NoError(t, err)

	form := value.List(value.UnqualifiedSymbol("f"), value.Int(1))
	expanded, changed, err := rt.Macroexpand1(form)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, form, expanded)
}

func TestMemoryModuleWriter(t *testing.T) {
	w := compiler.NewMemoryModuleWriter()
	require.NoError(t, w.WriteModule("user.helper", []string{"user"}, []byte("payload")))

	deps := w.Dependencies("user.helper")
	assert.Equal(t, []string{"user"}, deps)

	artifact, ok := w.Artifact("user.helper")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), artifact)

	assert.Error(t, w.WriteModule("", nil, nil))
}
