package analyzer

import "github.com/jank-lang/jank/value"

// analyzeDoForm handles the (do body...) special form.
func analyzeDoForm(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	return bodyAsDo(a, form.Rest().Cells, frame, pos, fnCtx, needsBox)
}
