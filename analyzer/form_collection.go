package analyzer

import "github.com/jank-lang/jank/value"

// analyzeVector handles vector literals:
// elements analyze with needs_box=true; a vector of only primitive literals
// collapses into a single lifted constant instead of a Vector node.
func analyzeVector(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	elements := make([]Expression, 0, len(form.Cells))
	allLiteral := true
	for _, cell := range form.Cells {
		expr, err := a.Analyze(cell, frame, pos, fnCtx, true)
		if err != nil {
			return nil, err
		}
		if _, ok := expr.(*PrimitiveLiteral); !ok {
			allLiteral = false
		}
		elements = append(elements, expr)
	}
	if allLiteral {
		frame.LiftConstant(form)
		return &PrimitiveLiteral{ExprBase: newBase(pos, frame, needsBox), Value: form}, nil
	}
	return &Vector{ExprBase: newBase(pos, frame, needsBox), Elements: elements}, nil
}

// analyzeMap handles map literals. Literal detection for maps is a
// documented limitation: unlike vectors,
// a map of only primitive-literal pairs is still emitted as a Map node, not
// collapsed into a constant. Pairs are walked in the literal's own Cells
// order, not sorted by key: map-key uniqueness is left unchecked (an open
// question), so a literal with a repeated key must still produce one AST
// pair per source pair instead of silently merging them.
func analyzeMap(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	pairs := make([]MapPair, 0, form.Len())
	for i := 0; i+1 < len(form.Cells); i += 2 {
		k, v := form.Cells[i], form.Cells[i+1]
		keyExpr, err := a.Analyze(k, frame, pos, fnCtx, true)
		if err != nil {
			return nil, err
		}
		valExpr, err := a.Analyze(v, frame, pos, fnCtx, true)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, MapPair{Key: keyExpr, Value: valExpr})
	}
	return &Map{ExprBase: newBase(pos, frame, needsBox), Pairs: pairs}, nil
}
