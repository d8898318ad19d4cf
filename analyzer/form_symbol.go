package analyzer

import "github.com/jank-lang/jank/value"

// analyzeSymbol resolves a bare symbol reference: first against the local frame tree (registering captures
// across any fn boundaries crossed), then as a var dereference.
func analyzeSymbol(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	if result := frame.FindLocalOrCapture(form); result != nil {
		captured := len(result.CrossedFns) > 0
		if captured {
			RegisterCaptures(result)
			// Re-lookup: the second pass must land directly on a capture
			// binding installed in the current frame's nearest fn ancestor
			// chain, with no further crossing.
			result = frame.FindLocalOrCapture(form)
		}
		binding := result.Binding
		// Captures are always boxed; otherwise usage is
		// boxed or unboxed according to the caller's needs_box hint.
		if captured || needsBox {
			binding.HasBoxedUsage = true
		} else {
			binding.HasUnboxedUsage = true
		}
		return &LocalReference{ExprBase: newBase(pos, frame, needsBox || captured), Symbol: form, Binding: binding}, nil
	}

	qualified, err := frame.Context().QualifySymbol(form)
	if err != nil {
		return nil, errorf(Name, "cannot qualify symbol %s: %v", form.String(), err)
	}
	v, ok := frame.Context().FindVar(qualified)
	if !ok {
		return nil, errorf(Name, "unbound symbol: %s", qualified.String())
	}
	if !v.Var.IsMacro() {
		frame.LiftVar(qualified)
	}
	return &VarDeref{ExprBase: newBase(pos, frame, needsBox), Symbol: qualified, Var: v}, nil
}
