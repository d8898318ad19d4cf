package analyzer

import "github.com/jank-lang/jank/value"

// analyzeVarForm handles (var sym): sym must already
// resolve to a var; the result reifies the var cell itself rather than
// dereferencing it.
func analyzeVarForm(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	args := form.Rest().Cells
	if len(args) != 1 {
		return nil, errorf(Shape, "var: expected exactly one argument, got %d", len(args))
	}
	sym := args[0]
	if sym.Type != value.SymbolType {
		return nil, errorf(Type, "var: argument must be a symbol, got %s", sym.Type)
	}
	qualified, err := frame.Context().QualifySymbol(sym)
	if err != nil {
		return nil, errorf(Internal, "var: %v", err)
	}
	v, ok := frame.Context().FindVar(qualified)
	if !ok {
		return nil, errorf(Name, "var: unbound symbol: %s", qualified.String())
	}
	return &VarRef{ExprBase: newBase(pos, frame, true), Symbol: qualified, Var: v}, nil
}
