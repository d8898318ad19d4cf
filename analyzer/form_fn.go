package analyzer

import (
	"github.com/jank-lang/jank/value"
)

// analyzeFnStar handles (fn* name? params-or-arities...), the analyzer's largest single per-form rule: it threads a fresh
// FunctionContext and Fn child frame through each arity, applies the
// tail-boxing rewrite (B) to tail-recursive bodies, and — when the runtime
// is compiling — records the resulting function as a nested module.
func analyzeFnStar(a *Analyzer, form *value.Value, frame *Frame, pos Position, fnCtx *FunctionContext, needsBox bool) (Expression, error) {
	rest := form.Rest().Cells
	if len(rest) < 1 {
		return nil, errorf(Shape, "fn*: missing parameter vector or arities")
	}

	name := ""
	if rest[0].Type == value.SymbolType {
		name = rest[0].Name
		rest = rest[1:]
	}
	if len(rest) < 1 {
		return nil, errorf(Shape, "fn*: missing parameter vector or arities")
	}
	if name == "" {
		name = a.Ctx.UniqueString("fn")
	}
	mungedName := a.Ctx.Munge(name)

	var arityForms [][]*value.Value // each entry: [paramVector, body...]
	switch rest[0].Type {
	case value.VectorType:
		arityForms = [][]*value.Value{append([]*value.Value{rest[0]}, rest[1:]...)}
	case value.ListType:
		for _, arity := range rest {
			if arity.Type != value.ListType {
				return nil, errorf(Shape, "fn*: multi-arity form expects a list per arity, got %s", arity.Type)
			}
			if len(arity.Cells) < 1 || arity.Cells[0].Type != value.VectorType {
				return nil, errorf(Shape, "fn*: arity must start with a parameter vector")
			}
			arityForms = append(arityForms, arity.Cells)
		}
	default:
		return nil, errorf(Shape, "fn*: expected a parameter vector or a list of arities, got %s", rest[0].Type)
	}

	arities := make([]*FunctionArity, 0, len(arityForms))
	for _, af := range arityForms {
		arity, err := analyzeArity(a, af[0], af[1:], frame)
		if err != nil {
			return nil, err
		}
		arities = append(arities, arity)
	}
	if err := checkArityUniqueness(arities); err != nil {
		return nil, err
	}

	if a.Ctx.Compiling() {
		parent := a.Ctx.CurrentNamespace()
		child := parent + "." + mungedName
		a.ModuleDeps[parent] = append(a.ModuleDeps[parent], child)
		if a.Writer != nil {
			if err := a.Writer.WriteModule(child, nil, []byte(mungedName)); err != nil {
				return nil, errorf(Internal, "fn*: write-module %s: %v", child, err)
			}
		}
	}

	return &Fn{ExprBase: newBase(pos, frame, needsBox), Name: mungedName, Arities: arities}, nil
}

// analyzeArity analyzes one (params body...) arm.
func analyzeArity(a *Analyzer, paramVec *value.Value, bodyForms []*value.Value, parent *Frame) (*FunctionArity, error) {
	fnFrame := parent.NewChild(FnFrame)

	params, variadic, err := parseParams(paramVec, fnFrame)
	if err != nil {
		return nil, err
	}
	if len(params) > MaxParams {
		return nil, errorf(Shape, "fn*: too many parameters: %d (max %d)", len(params), MaxParams)
	}

	_, end := a.tracer.StartArity(a.spanCtx, len(params), variadic)
	defer end()

	fnCtx := NewFunctionContext(len(params), variadic)

	body, err := bodyAsDo(a, bodyForms, fnFrame, Return, fnCtx, false)
	if err != nil {
		return nil, err
	}
	if fnCtx.IsTailRecursive {
		body = BoxTail(body)
	}

	return &FunctionArity{
		ExprBase:   newBase(Return, fnFrame, body.NeedsBox),
		Params: params,
		Body:   body,
		Frame:  fnFrame,
		FnCtx:  fnCtx,
	}, nil
}

// parseParams parses a parameter vector left-to-right: "&" marks the single variadic tail parameter; duplicate names
// are permitted syntactically but the earlier occurrence is renamed to an
// empty, unreferenceable name (shadowing by name erasure).
func parseParams(paramVec *value.Value, fnFrame *Frame) ([]*value.Value, bool, error) {
	cells := paramVec.Cells
	var params []*value.Value
	seen := make(map[string]int) // name -> index into params
	variadic := false
	ampSeen := false

	for i := 0; i < len(cells); i++ {
		sym := cells[i]
		if sym.Type != value.SymbolType {
			return nil, false, errorf(Shape, "fn*: parameter must be a symbol, got %s", sym.Type)
		}
		if sym.Name == "&" {
			if ampSeen {
				return nil, false, errorf(Shape, "fn*: only one '&' allowed in a parameter list")
			}
			ampSeen = true
			if i != len(cells)-2 {
				return nil, false, errorf(Shape, "fn*: exactly one parameter name must follow '&', with nothing after it")
			}
			continue
		}
		if sym.IsQualified() {
			return nil, false, errorf(Name, "fn*: parameter name must be unqualified, got %s", sym.QualifiedName())
		}
		if prevIdx, dup := seen[sym.Name]; dup {
			params[prevIdx] = value.UnqualifiedSymbol("")
		}
		seen[sym.Name] = len(params)
		params = append(params, sym)
		if ampSeen {
			variadic = true
		}
	}

	for _, p := range params {
		if p.Name == "" {
			continue
		}
		fnFrame.Define(p)
	}
	return params, variadic, nil
}

// checkArityUniqueness enforces the fn*-wide cross-arity invariants.
func checkArityUniqueness(arities []*FunctionArity) error {
	seen := make(map[[2]interface{}]bool)
	variadicCount := 0
	var variadicParams int
	hasVariadic := false
	for _, ar := range arities {
		key := [2]interface{}{ar.FnCtx.ParamCount, ar.FnCtx.IsVariadic}
		if seen[key] {
			return errorf(Name, "fn*: duplicate arity (param_count=%d, variadic=%v)", ar.FnCtx.ParamCount, ar.FnCtx.IsVariadic)
		}
		seen[key] = true
		if ar.FnCtx.IsVariadic {
			variadicCount++
			variadicParams = ar.FnCtx.ParamCount
			hasVariadic = true
		}
	}
	if variadicCount > 1 {
		return errorf(Name, "fn*: at most one variadic arity is allowed, found %d", variadicCount)
	}
	if hasVariadic {
		for _, ar := range arities {
			if !ar.FnCtx.IsVariadic && ar.FnCtx.ParamCount >= variadicParams {
				return errorf(Name, "fn*: fixed arity with %d params is not less than the variadic arity's %d params", ar.FnCtx.ParamCount, variadicParams)
			}
		}
	}
	return nil
}
