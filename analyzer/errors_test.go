package analyzer

import (
	"strconv"
	"testing"

	"github.com/jank-lang/jank/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorCase is one scenario in the error-path tables below: src is analyzed
// directly against a fresh root frame, and the resulting error (there must
// be one) is checked against wantKind.
type errorCase struct {
	name     string
	src      string
	wantKind Kind
}

func runErrorCases(t *testing.T, cases []errorCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestAnalyzer()
			root := NewRootFrame(a.Ctx)
			form := parseForm(t, tc.src)

			_, err := a.Analyze(form, root, Return, nil, true)
			require.Error(t, err)
			aerr, ok := err.(*Error)
			require.True(t, ok, "expected *analyzer.Error, got %T", err)
			assert.Equal(t, tc.wantKind, aerr.Kind)
		})
	}
}

func TestFnShapeAndNameErrors(t *testing.T) {
	runErrorCases(t, []errorCase{
		{"ampersand not followed by exactly one name", `(fn* [a & b & c] a)`, Shape},
		{"qualified param name", `(fn* [user/a] a)`, Name},
		{"missing param vector", `(fn*)`, Shape},
		{"too many params in one arity", bigParamFn(), Shape},
		{"non-symbol param", `(fn* [1] 1)`, Shape},
		{"duplicate fixed arity", `(fn* ([a] a) ([b] b))`, Name},
		{"more than one variadic arity", `(fn* ([& a] a) ([x & b] b))`, Name},
		{"fixed arity not less than variadic's", `(fn* ([a b] a) ([a & rest] a))`, Name},
	})
}

func TestDefVarQuoteIfShapeNameAndTypeErrors(t *testing.T) {
	runErrorCases(t, []errorCase{
		{"def with no args", `(def)`, Shape},
		{"def with three args", `(def a 1 2)`, Shape},
		{"def with qualified symbol", `(def user/a 1)`, Name},
		{"var with no args", `(var)`, Shape},
		{"var with non-symbol", `(var 1)`, Type},
		{"var with unbound symbol", `(var user/nope)`, Name},
		{"quote with no args", `(quote)`, Shape},
		{"quote with two args", `(quote a b)`, Shape},
		{"if with one arg", `(if true)`, Shape},
		{"if with four args", `(if true 1 2 3)`, Shape},
	})
}

func TestNativeRawErrors(t *testing.T) {
	runErrorCases(t, []errorCase{
		{"non-string argument", `(native/raw 1)`, Type},
		{"wrong arity", `(native/raw "a" "b")`, Shape},
		{"unterminated interpolation", `(native/raw "a #{ b")`, Interpolation},
		{"more than one form in interpolation", `(native/raw "#{1 2}#")`, Interpolation},
	})
}

func TestRecurPositionAndShapeErrors(t *testing.T) {
	runErrorCases(t, []errorCase{
		{"recur outside any function", `(recur 1)`, PositionKind},
		{"recur not in tail position", `(fn* f [n] (do (recur n) 1))`, PositionKind},
		{"recur with wrong argument count", `(fn* f [a b] (recur a))`, Shape},
	})
}

func TestUnboundSymbolError(t *testing.T) {
	runErrorCases(t, []errorCase{
		{"unbound symbol", `nope`, Name},
	})
}

func TestLetStarShapeAndNameErrors(t *testing.T) {
	runErrorCases(t, []errorCase{
		{"missing binding vector", `(let*)`, Shape},
		{"odd binding count", `(let* [a] a)`, Shape},
		{"non-symbol binding name", `(let* [1 2] 1)`, Shape},
		{"qualified binding name", `(let* [user/a 1] a)`, Name},
	})
}

// bigParamFn synthesizes a single fn* arity with one more than MaxParams
// distinctly-named parameters.
func bigParamFn() string {
	src := "(fn* ["
	for i := 0; i < MaxParams+1; i++ {
		src += "p" + strconv.Itoa(i) + " "
	}
	src += "] 1)"
	return src
}

// Scenario: (fn* f [a & rest] (recur a rest)) must succeed now that
// FunctionContext.ParamCount counts the rest slot.
func TestRecurAcceptsFullVariadicParamCount(t *testing.T) {
	a, _ := newTestAnalyzer()
	root := NewRootFrame(a.Ctx)
	form := parseForm(t, `(fn* f [a & rest] (recur a rest))`)

	_, err := a.Analyze(form, root, Return, nil, true)
	require.NoError(t, err)
}

func TestUnboxedRelaxation(t *testing.T) {
	arityMeta := func(argCount int, unboxedInput, unboxedOutput bool) *value.Value {
		return value.Map(
			value.Keyword("", "arities"),
			value.Map(
				value.Int(int64(argCount)),
				value.Map(
					value.Keyword("", "supports-unboxed-input?"), value.Bool(unboxedInput),
					value.Keyword("", "unboxed-output?"), value.Bool(unboxedOutput),
				),
			),
		)
	}
	fixedArityFn := func(paramCount int) *Fn {
		return &Fn{Arities: []*FunctionArity{{FnCtx: &FunctionContext{ParamCount: paramCount}}}}
	}
	variadicArityFn := func(paramCount int) *Fn {
		return &Fn{Arities: []*FunctionArity{{FnCtx: &FunctionContext{ParamCount: paramCount, IsVariadic: true}}}}
	}

	t.Run("no meta leaves both boxed", func(t *testing.T) {
		a, rt := newTestAnalyzer()
		v, err := rt.InternVar(value.Symbol("user", "f"))
		require.NoError(t, err)
		deref := &VarDeref{Symbol: value.Symbol("user", "f"), Var: v}

		argBox, retBox, err := unboxedRelaxation(a, deref, 1)
		require.NoError(t, err)
		assert.True(t, argBox)
		assert.True(t, retBox)
	})

	t.Run("meta with no arities entry for this count leaves both boxed", func(t *testing.T) {
		a, rt := newTestAnalyzer()
		v, err := rt.InternVar(value.Symbol("user", "f"))
		require.NoError(t, err)
		v.Var.SetMeta(arityMeta(2, true, true))
		deref := &VarDeref{Symbol: value.Symbol("user", "f"), Var: v}
		a.Vars["user/f"] = fixedArityFn(1)

		argBox, retBox, err := unboxedRelaxation(a, deref, 1)
		require.NoError(t, err)
		assert.True(t, argBox)
		assert.True(t, retBox)
	})

	t.Run("missing initializer is an internal error", func(t *testing.T) {
		a, rt := newTestAnalyzer()
		v, err := rt.InternVar(value.Symbol("user", "f"))
		require.NoError(t, err)
		v.Var.SetMeta(arityMeta(1, true, true))
		deref := &VarDeref{Symbol: value.Symbol("user", "f"), Var: v}

		_, _, err = unboxedRelaxation(a, deref, 1)
		require.Error(t, err)
		assert.Equal(t, Internal, err.(*Error).Kind)
	})

	t.Run("initializer that isn't a function is an internal error", func(t *testing.T) {
		a, rt := newTestAnalyzer()
		v, err := rt.InternVar(value.Symbol("user", "f"))
		require.NoError(t, err)
		v.Var.SetMeta(arityMeta(1, true, true))
		deref := &VarDeref{Symbol: value.Symbol("user", "f"), Var: v}
		a.Vars["user/f"] = &PrimitiveLiteral{Value: value.Int(1)}

		_, _, err = unboxedRelaxation(a, deref, 1)
		require.Error(t, err)
		assert.Equal(t, Internal, err.(*Error).Kind)
	})

	t.Run("function with no matching non-variadic arity falls back to boxed, no error", func(t *testing.T) {
		a, rt := newTestAnalyzer()
		v, err := rt.InternVar(value.Symbol("user", "f"))
		require.NoError(t, err)
		v.Var.SetMeta(arityMeta(1, true, true))
		deref := &VarDeref{Symbol: value.Symbol("user", "f"), Var: v}
		a.Vars["user/f"] = variadicArityFn(1)

		argBox, retBox, err := unboxedRelaxation(a, deref, 1)
		require.NoError(t, err)
		assert.True(t, argBox)
		assert.True(t, retBox)
	})

	t.Run("matching fixed arity relaxes according to meta", func(t *testing.T) {
		a, rt := newTestAnalyzer()
		v, err := rt.InternVar(value.Symbol("user", "f"))
		require.NoError(t, err)
		v.Var.SetMeta(arityMeta(1, true, true))
		deref := &VarDeref{Symbol: value.Symbol("user", "f"), Var: v}
		a.Vars["user/f"] = fixedArityFn(1)

		argBox, retBox, err := unboxedRelaxation(a, deref, 1)
		require.NoError(t, err)
		assert.False(t, argBox)
		assert.False(t, retBox)
	})
}

// Scenario: [1 2 3] collapses to a single lifted constant; {:a 1 :a 2}
// preserves both pairs in source order instead of deduplicating by key.
func TestVectorAndMapLiteralFolding(t *testing.T) {
	a, _ := newTestAnalyzer()
	root := NewRootFrame(a.Ctx)

	vecExpr, err := a.Analyze(parseForm(t, "[1 2 3]"), root, Return, nil, true)
	require.NoError(t, err)
	lit, ok := vecExpr.(*PrimitiveLiteral)
	require.True(t, ok)
	assert.Equal(t, value.VectorType, lit.Value.Type)
	require.NotEmpty(t, root.LiftedConstants)
	last := root.LiftedConstants[len(root.LiftedConstants)-1]
	assert.Equal(t, value.VectorType, last.Type)
	assert.Equal(t, "[1 2 3]", last.String())

	mapExpr, err := a.Analyze(parseForm(t, "{:a 1 :a 2}"), root, Return, nil, true)
	require.NoError(t, err)
	m, ok := mapExpr.(*Map)
	require.True(t, ok)
	require.Len(t, m.Pairs, 2)
	firstVal := m.Pairs[0].Value.(*PrimitiveLiteral)
	secondVal := m.Pairs[1].Value.(*PrimitiveLiteral)
	assert.Equal(t, int64(1), firstVal.Value.Int)
	assert.Equal(t, int64(2), secondVal.Value.Int)
}
