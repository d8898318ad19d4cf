package analyzer

import (
	"context"
	"io"

	"github.com/jank-lang/jank/reader"
	"github.com/jank-lang/jank/value"
)

// AnalyzeSource is the root driver: it drains src, wraps the resulting
// forms in a synthetic (fn* [] form1 form2 ... formN) and analyzes that
// against a fresh root frame. Any parse error short-circuits with the
// first diagnostic encountered; an empty stream is itself an error.
func (a *Analyzer) AnalyzeSource(ctx context.Context, src reader.Source) (Expression, error) {
	a.spanCtx = ctx
	var forms []*value.Value
	for i := 0; ; i++ {
		_, end := a.tracer.StartForm(ctx, i)
		v, err := src.Next()
		end()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errorf(Shape, "parse error: %v", err)
		}
		forms = append(forms, v)
	}
	if len(forms) == 0 {
		return nil, errorf(Shape, "already retrieved result")
	}

	synthetic := synthesizeRootFn(forms)
	root := NewRootFrame(a.Ctx)
	return a.Analyze(synthetic, root, Return, nil, true)
}

// synthesizeRootFn builds (fn* [] form1 form2 ... formN).
func synthesizeRootFn(forms []*value.Value) *value.Value {
	cells := make([]*value.Value, 0, len(forms)+2)
	cells = append(cells, value.UnqualifiedSymbol("fn*"), value.Vector())
	cells = append(cells, forms...)
	return value.List(cells...)
}
