package analyzer

import "github.com/jank-lang/jank/value"

// analyzeLetStar handles (let* [sym val sym val ...] body...). Each binding is installed into the new let frame right after its
// own initializer is analyzed and before the next one is, so later
// initializers see earlier bindings, but an initializer never sees the
// binding it's itself defining.
func analyzeLetStar(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	args := form.Rest().Cells
	if len(args) < 1 {
		return nil, errorf(Shape, "let*: missing binding vector")
	}
	bindings := args[0]
	if bindings.Type != value.VectorType {
		return nil, errorf(Shape, "let*: first argument must be a binding vector, got %s", bindings.Type)
	}
	if len(bindings.Cells)%2 != 0 {
		return nil, errorf(Shape, "let*: binding vector must have an even number of forms, got %d", len(bindings.Cells))
	}

	letFrame := frame.NewChild(LetFrame)
	var pairs []LetPair
	for i := 0; i < len(bindings.Cells); i += 2 {
		sym := bindings.Cells[i]
		valForm := bindings.Cells[i+1]
		if sym.Type != value.SymbolType {
			return nil, errorf(Shape, "let*: binding name must be a symbol, got %s", sym.Type)
		}
		if sym.IsQualified() {
			return nil, errorf(Name, "let*: binding name must be unqualified, got %s", sym.QualifiedName())
		}
		initExpr, err := a.Analyze(valForm, letFrame, Statement, fnCtx, false)
		if err != nil {
			return nil, err
		}
		binding := letFrame.Define(sym)
		binding.Initializer = initExpr
		pairs = append(pairs, LetPair{Symbol: sym, Initializer: initExpr})
	}

	body, err := bodyAsDo(a, args[1:], letFrame, pos, fnCtx, needsBox)
	if err != nil {
		return nil, err
	}

	return &Let{ExprBase: newBase(pos, frame, body.NeedsBox), Pairs: pairs, Body: body, Frame: letFrame}, nil
}
