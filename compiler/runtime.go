// Package compiler provides the runtime-context contract the analyzer
// depends on along with a concrete implementation: a place to intern vars
// and keywords, generate unique names, and munge identifiers, shared
// across the whole family of frames the analyzer builds for one
// compilation.
package compiler

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jank-lang/jank/value"
)

// Context is the capability surface the analyzer (package analyzer)
// consumes from its environment. Keeping it an interface lets the analyzer
// be built and tested without the rest of the compiler present.
type Context interface {
	// InternVar returns sym's Var, creating one in the named namespace if
	// needed.
	InternVar(sym *value.Value) (*value.Value, error)

	// FindVar implements find_var: resolve a qualified symbol to an existing
	// Var without creating one. The second result is false when no such var
	// exists.
	FindVar(sym *value.Value) (*value.Value, bool)

	// InternKeyword returns a canonical, interned keyword value so that
	// keyword equality reduces to pointer identity where convenient.
	InternKeyword(ns, name string) *value.Value

	// QualifySymbol resolves an unqualified symbol against the current
	// namespace's refers/aliases, returning the fully-qualified form.
	QualifySymbol(sym *value.Value) (*value.Value, error)

	// Macroexpand1 performs a single macro-expansion step if head names a
	// macro var, returning (expanded, true); otherwise (form, false).
	Macroexpand1(form *value.Value) (*value.Value, bool, error)

	// UniqueString returns a fresh name; the fn* analyzer uses it to name
	// anonymous functions.
	UniqueString(prefix string) string

	// Munge rewrites a jank identifier into a target-language-safe
	// identifier; the fn* analyzer uses it for function and module names.
	Munge(name string) string

	// Compiling reports whether analysis is running in compile mode (true)
	// as opposed to direct evaluation (false). Only the fn* analyzer
	// consults it, to record a module dependency and write the module.
	Compiling() bool

	// CurrentNamespace returns the namespace new vars are interned into by
	// an unqualified def.
	CurrentNamespace() string
}

// Runtime is the default Context implementation. It owns a var registry, a
// keyword intern table, atomic name-generation counters, and an optional
// ModuleWriter for module output.
type Runtime struct {
	Registry  *value.Registry
	Namespace string
	Writer    ModuleWriter
	compiling bool

	keywords   map[string]*value.Value
	keywordsMu sync.Mutex

	gensym uint64
}

// NewRuntime returns a Runtime rooted at namespace ns, with compiling set to
// compiling.
func NewRuntime(ns string, compiling bool) *Runtime {
	r := &Runtime{
		Registry:  value.NewRegistry(),
		Namespace: ns,
		compiling: compiling,
		keywords:  make(map[string]*value.Value),
	}
	r.Registry.DefineNamespace(ns)
	return r
}

func (r *Runtime) CurrentNamespace() string { return r.Namespace }

func (r *Runtime) Compiling() bool { return r.compiling }

func (r *Runtime) InternVar(sym *value.Value) (*value.Value, error) {
	v, err := r.Registry.InternVar(sym)
	if err != nil {
		return nil, err
	}
	return &value.Value{Type: value.VarRefType, Var: v}, nil
}

func (r *Runtime) FindVar(sym *value.Value) (*value.Value, bool) {
	v, ok := r.Registry.FindVar(sym)
	if !ok {
		return nil, false
	}
	return &value.Value{Type: value.VarRefType, Var: v}, true
}

func (r *Runtime) InternKeyword(ns, name string) *value.Value {
	r.keywordsMu.Lock()
	defer r.keywordsMu.Unlock()
	key := ns + "/" + name
	if k, ok := r.keywords[key]; ok {
		return k
	}
	k := value.Keyword(ns, name)
	k.Interned = true
	r.keywords[key] = k
	return k
}

// QualifySymbol resolves bare symbols to the current namespace. Runtime
// does not model refers or aliases; a symbol that is already qualified is
// returned unchanged.
func (r *Runtime) QualifySymbol(sym *value.Value) (*value.Value, error) {
	if sym.Type != value.SymbolType {
		return nil, fmt.Errorf("qualify-symbol: not a symbol: %s", sym.Type)
	}
	if sym.IsQualified() {
		return sym, nil
	}
	return value.Symbol(r.Namespace, sym.Name), nil
}

// Macroexpand1 looks up form's head in the registry; if it names a macro
// var, it is the caller's job to actually invoke the macro function.
// Runtime only resolves whether expansion applies; a compiler wires in the
// actual apply step through a Context that overrides this method.
func (r *Runtime) Macroexpand1(form *value.Value) (*value.Value, bool, error) {
	if form == nil || form.Type != value.ListType || form.IsEmptyList() {
		return form, false, nil
	}
	head := form.First()
	if head.Type != value.SymbolType {
		return form, false, nil
	}
	qualified, err := r.QualifySymbol(head)
	if err != nil {
		return form, false, nil
	}
	v, ok := r.Registry.FindVar(qualified)
	if !ok || !v.IsMacro() {
		return form, false, nil
	}
	// Expansion itself requires evaluating v's function against form's
	// arguments, which belongs to the evaluator, not Runtime. Returning
	// (form, true, nil) signals "yes this is a macro call"; a full compiler
	// wires an evaluator-backed Context that overrides this method.
	return form, true, nil
}

func (r *Runtime) UniqueString(prefix string) string {
	n := atomic.AddUint64(&r.gensym, 1)
	return fmt.Sprintf("%s__%d__auto", prefix, n)
}

// Munge rewrites jank identifiers (which may contain '-', '?', '!', '*', '+',
// '<', '>', '=') into safe target identifiers for names crossing the
// language boundary into generated code.
func (r *Runtime) Munge(name string) string {
	var b []byte
	for _, c := range name {
		switch c {
		case '-':
			b = append(b, '_')
		case '?':
			b = append(b, '_', 'q', '_')
		case '!':
			b = append(b, '_', 'b', 'a', 'n', 'g', '_')
		case '*':
			b = append(b, '_', 's', 't', 'a', 'r', '_')
		case '+':
			b = append(b, '_', 'p', 'l', 'u', 's', '_')
		case '<':
			b = append(b, '_', 'l', 't', '_')
		case '>':
			b = append(b, '_', 'g', 't', '_')
		case '=':
			b = append(b, '_', 'e', 'q', '_')
		case '/':
			b = append(b, '_', 'S', 'L', 'A', 'S', 'H', '_')
		default:
			b = append(b, string(c)...)
		}
	}
	return string(b)
}
