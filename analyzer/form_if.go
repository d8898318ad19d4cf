package analyzer

import "github.com/jank-lang/jank/value"

// analyzeIf handles (if c t) and (if c t e). needs_box
// is forced true for the node as a whole because the two branches may
// select different unboxed representations.
func analyzeIf(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	args := form.Rest().Cells
	if len(args) != 2 && len(args) != 3 {
		return nil, errorf(Shape, "if: expected (if cond then) or (if cond then else), got %d arguments", len(args))
	}

	cond, err := a.Analyze(args[0], frame, Statement, fnCtx, false)
	if err != nil {
		return nil, err
	}
	then, err := a.Analyze(args[1], frame, pos, fnCtx, true)
	if err != nil {
		return nil, err
	}
	var elseExpr Expression
	if len(args) == 3 {
		elseExpr, err = a.Analyze(args[2], frame, pos, fnCtx, true)
		if err != nil {
			return nil, err
		}
	}
	return &If{ExprBase: newBase(pos, frame, true), Condition: cond, Then: then, Else: elseExpr}, nil
}
