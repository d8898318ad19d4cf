package analyzer

// specialForms is the special-form dispatch table: a mapping
// from a canonical unqualified symbol to its analyzer. A call whose head is
// one of these names is routed here before macro expansion is considered;
// a reserved head symbol always short-circuits ordinary call analysis.
var specialForms map[string]analyzeFn

func init() {
	specialForms = map[string]analyzeFn{
		"def":        analyzeDef,
		"fn*":        analyzeFnStar,
		"recur":      analyzeRecur,
		"do":         analyzeDoForm,
		"let*":       analyzeLetStar,
		"if":         analyzeIf,
		"quote":      analyzeQuote,
		"var":        analyzeVarForm,
		"native/raw": analyzeNativeRaw,
	}
}
