package analyzer

// FunctionContext is per-arity analysis state, created fresh
// for each arity of a fn* and mutated only while that arity's body is being
// analyzed.
type FunctionContext struct {
	// ParamCount is the full parameter count of the arity, including the
	// rest-parameter slot for a variadic arity: it is what recur's
	// arg-count check and the fixed-vs-variadic arity comparison are both
	// built against.
	ParamCount      int
	IsVariadic      bool
	IsTailRecursive bool
}

// NewFunctionContext returns a FunctionContext for an arity with the given
// full parameter count (rest slot included) and variadic flag.
func NewFunctionContext(paramCount int, variadic bool) *FunctionContext {
	return &FunctionContext{ParamCount: paramCount, IsVariadic: variadic}
}
