package analyzer

import "github.com/jank-lang/jank/value"

// analyzeQuote handles (quote x): yields a primitive
// literal wrapping the unevaluated form, lifted as a constant on the
// enclosing function frame.
func analyzeQuote(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	args := form.Rest().Cells
	if len(args) != 1 {
		return nil, errorf(Shape, "quote: expected exactly one argument, got %d", len(args))
	}
	x := args[0]
	frame.LiftConstant(x)
	return &PrimitiveLiteral{ExprBase: newBase(pos, frame, needsBox), Value: x}, nil
}
