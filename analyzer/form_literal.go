package analyzer

import "github.com/jank-lang/jank/value"

// analyzeLiteral handles nil, boolean, number, keyword, string, and set
// forms: lift the value onto the
// enclosing function frame and emit PrimitiveLiteral.
func analyzeLiteral(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	frame.LiftConstant(form)
	return &PrimitiveLiteral{ExprBase: newBase(pos, frame, needsBox), Value: form}, nil
}
