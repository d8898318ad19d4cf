package analyzer

import "github.com/jank-lang/jank/value"

// analyzeRecur handles (recur arg...): legal only in
// return position inside a function arity, with exactly as many args as
// the arity has parameters.
func analyzeRecur(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	if fnCtx == nil {
		return nil, errorf(PositionKind, "recur: not inside any function")
	}
	if pos != Return {
		return nil, errorf(PositionKind, "recur: not in tail position")
	}
	args := form.Rest().Cells
	if len(args) != fnCtx.ParamCount {
		return nil, errorf(Shape, "recur: expected %d arguments, got %d", fnCtx.ParamCount, len(args))
	}

	exprs := make([]Expression, 0, len(args))
	for _, f := range args {
		expr, err := a.Analyze(f, frame, Statement, fnCtx, true)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	fnCtx.IsTailRecursive = true
	return &Recur{ExprBase: newBase(pos, frame, true), Args: exprs}, nil
}
