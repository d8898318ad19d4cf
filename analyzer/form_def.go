package analyzer

import "github.com/jank-lang/jank/value"

// analyzeDef handles (def sym) and (def sym value).
func analyzeDef(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	args := form.Rest().Cells
	if len(args) != 1 && len(args) != 2 {
		return nil, errorf(Shape, "def: expected (def sym) or (def sym value), got %d arguments", len(args))
	}
	sym := args[0]
	if sym.Type != value.SymbolType {
		return nil, errorf(Type, "def: first argument must be a symbol, got %s", sym.Type)
	}
	if sym.IsQualified() {
		return nil, errorf(Name, "def: symbol must be unqualified, got %s", sym.QualifiedName())
	}

	qualified, err := frame.QualifyForDef(sym)
	if err != nil {
		return nil, errorf(Internal, "def: %v", err)
	}
	if _, err := a.Ctx.InternVar(qualified); err != nil {
		return nil, errorf(Internal, "def: intern-var %s: %v", qualified.String(), err)
	}
	frame.LiftVar(qualified)

	var initExpr Expression
	if len(args) == 2 {
		initExpr, err = a.Analyze(args[1], frame, Statement, fnCtx, true)
		if err != nil {
			return nil, err
		}
		a.Vars[qualified.QualifiedName()] = initExpr
	}

	return &Def{ExprBase: newBase(pos, frame, needsBox), Symbol: qualified, Initializer: initExpr}, nil
}
