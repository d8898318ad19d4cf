package analyzer

import (
	"context"

	"github.com/jank-lang/jank/compiler"
	"github.com/jank-lang/jank/value"
)

// MaxParams bounds the number of parameters fn* accepts in one arity: a
// fixed, implementation-defined upper bound driven by what code generation
// can lay out efficiently.
const MaxParams = 32

// Analyzer drives the semantic-analysis pass: it owns the var-initializer
// map exposed to code generation and the module-dependency bookkeeping fn*
// consults when the runtime is compiling.
type Analyzer struct {
	Ctx    compiler.Context
	Writer compiler.ModuleWriter

	// Vars records, for every analyzed def with an initializer, the
	// expression it was given; it is exposed to code generation keyed by
	// qualified var name.
	Vars map[string]Expression

	// ModuleDeps maps a module name to the modules it depends on,
	// populated by the fn* analyzer's compiling-mode side effect.
	ModuleDeps map[string][]string

	tracer Tracer

	// spanCtx is the ambient context AnalyzeSource was called with; fn*'s
	// per-arity spans nest under it since analyzeArity sits several
	// analyzeFn calls below the root driver and has no context.Context
	// parameter of its own to thread through.
	spanCtx context.Context
}

// New returns an Analyzer over ctx, with writer as the optional module
// code-gen sink.
func New(ctx compiler.Context, writer compiler.ModuleWriter) *Analyzer {
	return &Analyzer{
		Ctx:        ctx,
		Writer:     writer,
		Vars:       make(map[string]Expression),
		ModuleDeps: make(map[string][]string),
		tracer:     NewTracer("jank/analyzer"),
		spanCtx:    context.Background(),
	}
}

// analyzeFn is the signature every per-form analyzer (P) and the dispatcher
// (S) implement: given the form, the frame it's analyzed in, the position
// it's analyzed at, the enclosing function context (nil outside any fn*
// arity), and the needs-box hint from the caller, produce an expression or
// a diagnostic.
type analyzeFn func(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error)

// Analyze is the single entry point every analyzer (including itself,
// recursively) calls to analyze a sub-form. It implements the dispatch
// order: special forms first, then symbols, then calls (with
// macro-expansion restart), then literals/collections.
func (a *Analyzer) Analyze(form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	if form == nil {
		return nil, errorf(Internal, "nil form")
	}

	switch form.Type {
	case value.SymbolType:
		return analyzeSymbol(a, form, frame, pos, fnCtx, needsBox)
	case value.ListType:
		if form.IsEmptyList() {
			return analyzeLiteral(a, form, frame, pos, fnCtx, needsBox)
		}
		return analyzeListForm(a, form, frame, pos, fnCtx, needsBox)
	case value.VectorType:
		return analyzeVector(a, form, frame, pos, fnCtx, needsBox)
	case value.MapType:
		return analyzeMap(a, form, frame, pos, fnCtx, needsBox)
	default:
		return analyzeLiteral(a, form, frame, pos, fnCtx, needsBox)
	}
}

// analyzeListForm handles the non-empty-list case: special form dispatch,
// then ordinary calls.
func analyzeListForm(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	head := form.First()
	if head.Type == value.SymbolType {
		key := head.Name
		if head.IsQualified() {
			key = head.QualifiedName()
		}
		if fn, ok := specialForms[key]; ok {
			return fn(a, form, frame, pos, fnCtx, needsBox)
		}
	}
	return analyzeCall(a, form, frame, pos, fnCtx, needsBox)
}

func newBase(pos Position, frame *Frame, needsBox bool) ExprBase {
	return ExprBase{ExprType: pos, Frame: frame, NeedsBox: needsBox}
}

// bodyAsDo analyzes forms as an implicit do: every form but the last is
// Statement position with needsBox=false, the last inherits pos/needsBox
// from the caller. Used by fn* arities and let* bodies alike.
func bodyAsDo(a *Analyzer, forms []*value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (*Do, error) {
	do := &Do{ExprBase: newBase(pos, frame, needsBox)}
	for i, f := range forms {
		last := i == len(forms)-1
		var expr Expression
		var err error
		if last {
			expr, err = a.Analyze(f, frame, pos, fnCtx, needsBox)
		} else {
			expr, err = a.Analyze(f, frame, Statement, fnCtx, false)
		}
		if err != nil {
			return nil, err
		}
		do.Body = append(do.Body, expr)
	}
	if len(do.Body) > 0 {
		do.NeedsBox = do.Body[len(do.Body)-1].Base().NeedsBox
	}
	return do, nil
}
