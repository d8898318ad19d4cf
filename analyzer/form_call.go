package analyzer

import "github.com/jank-lang/jank/value"

// analyzeCall handles (head arg...) where head is not a reserved special
// form. Empty lists never reach here; Analyze routes
// them to analyzeLiteral instead.
func analyzeCall(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	head := form.First()

	if head.Type == value.SymbolType {
		headExpr, err := a.Analyze(head, frame, Statement, fnCtx, false)
		if err != nil {
			return nil, err
		}

		expanded, changed, err := a.Ctx.Macroexpand1(form)
		if err != nil {
			return nil, errorf(Internal, "macroexpand: %v", err)
		}
		if changed && !value.Equal(expanded, form) {
			return a.Analyze(expanded, frame, pos, fnCtx, needsBox)
		}

		needsArgBox, needsRetBox := true, true
		if deref, ok := headExpr.(*VarDeref); ok {
			var err error
			needsArgBox, needsRetBox, err = unboxedRelaxation(a, deref, len(form.Cells)-1)
			if err != nil {
				return nil, err
			}
		}
		return buildCall(a, headExpr, form.Rest().Cells, frame, pos, fnCtx, needsArgBox, needsRetBox)
	}

	headExpr, err := a.Analyze(head, frame, Statement, fnCtx, needsBox)
	if err != nil {
		return nil, err
	}
	return buildCall(a, headExpr, form.Rest().Cells, frame, pos, fnCtx, true, true)
}

func buildCall(a *Analyzer, callee Expression, argForms []*value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsArgBox, needsRetBox bool) (Expression, error) {
	args := make([]Expression, 0, len(argForms))
	for _, f := range argForms {
		expr, err := a.Analyze(f, frame, Statement, fnCtx, needsArgBox)
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
	}
	return &Call{ExprBase: newBase(pos, frame, needsRetBox), Callee: callee, Args: args}, nil
}

// unboxedRelaxation implements call-site metadata check:
// when the callee var's meta declares :arities support for this exact
// argument count, the default "both boxed" requirement relaxes according to
// :supports-unboxed-input? / :unboxed-output?. The var itself must exist and
// be bound to a function — anything else is a bug in the analyzer's own
// bookkeeping, not a mistake the source made, and raises an Internal
// diagnostic. A function that simply has no matching non-variadic arity for
// this argument count isn't such a bug: the metadata claim is just unusable
// here, and both operands fall back to boxed.
func unboxedRelaxation(a *Analyzer, deref *VarDeref, argCount int) (needsArgBox, needsRetBox bool, err error) {
	needsArgBox, needsRetBox = true, true
	meta := deref.Var.Var.Meta()
	if meta == nil {
		return needsArgBox, needsRetBox, nil
	}
	am, ok := value.ArityMetaFor(meta, argCount)
	if !ok {
		return needsArgBox, needsRetBox, nil
	}
	qualified := deref.Symbol.QualifiedName()
	initExpr, ok := a.Vars[qualified]
	if !ok {
		return true, true, errorf(Internal, "%s: :arities metadata present but var has no recorded initializer", qualified)
	}
	fn, ok := initExpr.(*Fn)
	if !ok {
		return true, true, errorf(Internal, "%s: :arities metadata present but var is not bound to a function", qualified)
	}
	if !hasMatchingFixedArity(fn, argCount) {
		return true, true, nil
	}
	if am.SupportsUnboxedInput {
		needsArgBox = false
	}
	if am.UnboxedOutput {
		needsRetBox = false
	}
	return needsArgBox, needsRetBox, nil
}

// hasMatchingFixedArity reports whether fn has a non-variadic arity taking
// exactly argCount parameters.
func hasMatchingFixedArity(fn *Fn, argCount int) bool {
	for _, ar := range fn.Arities {
		if !ar.FnCtx.IsVariadic && ar.FnCtx.ParamCount == argCount {
			return true
		}
	}
	return false
}
