package value

import (
	"fmt"
	"sort"
	"sync"
)

// Var is a namespaced, mutable cell that names a value (function, data, or
// macro) at runtime. It is its own addressable type, separate from Value,
// since the analyzer needs to hold a reference to a var independent of its
// current root value (e.g. var_ref, lifted_vars).
type Var struct {
	Namespace string
	Name      string

	mu   sync.Mutex
	root *Value
	meta *Value
}

func NewVar(namespace, name string) *Var {
	return &Var{Namespace: namespace, Name: name}
}

func (v *Var) QualifiedName() string {
	return v.Namespace + "/" + v.Name
}

func (v *Var) Root() *Value {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.root
}

func (v *Var) SetRoot(val *Value) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.root = val
}

func (v *Var) Meta() *Value {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.meta
}

func (v *Var) SetMeta(meta *Value) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.meta = meta
}

// IsMacro reports whether the var's meta map has a truthy :macro entry
//" step 2).
func (v *Var) IsMacro() bool {
	meta := v.Meta()
	if meta.IsNil() {
		return false
	}
	val := MetaGet(meta, Keyword("", "macro"))
	return val.Truthy()
}

// Namespace is a named set of interned vars.
type Namespace struct {
	Name string
	Vars map[string]*Var
}

func NewNamespace(name string) *Namespace {
	return &Namespace{Name: name, Vars: make(map[string]*Var)}
}

// Intern returns the existing var named name, or creates and registers a
// new one.
func (ns *Namespace) Intern(name string) *Var {
	if v, ok := ns.Vars[name]; ok {
		return v
	}
	v := NewVar(ns.Name, name)
	ns.Vars[name] = v
	return v
}

func (ns *Namespace) Find(name string) (*Var, bool) {
	v, ok := ns.Vars[name]
	return v, ok
}

// Registry holds every namespace known to the runtime. Grounded on
// lisp.PackageRegistry (lisp/package.go).
type Registry struct {
	mu         sync.Mutex
	Namespaces map[string]*Namespace
}

func NewRegistry() *Registry {
	return &Registry{Namespaces: make(map[string]*Namespace)}
}

func (r *Registry) DefineNamespace(name string) *Namespace {
	r.mu.Lock()
	defer r.mu.Unlock()
	ns, ok := r.Namespaces[name]
	if ok {
		return ns
	}
	ns = NewNamespace(name)
	r.Namespaces[name] = ns
	return ns
}

// InternVar interns a qualified symbol's var, creating its namespace if
// necessary. It is the concrete implementation behind // intern_var(qualified_symbol).
func (r *Registry) InternVar(sym *Value) (*Var, error) {
	if sym.Type != SymbolType || !sym.IsQualified() {
		return nil, fmt.Errorf("intern_var: not a qualified symbol: %v", sym)
	}
	ns := r.DefineNamespace(sym.Ns)
	return ns.Intern(sym.Name), nil
}

// FindVar implements find_var(qualified_symbol).
func (r *Registry) FindVar(sym *Value) (*Var, bool) {
	if sym.Type != SymbolType || !sym.IsQualified() {
		return nil, false
	}
	r.mu.Lock()
	ns, ok := r.Namespaces[sym.Ns]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	return ns.Find(sym.Name)
}

// SortedNamespaceNames returns namespace names in a deterministic order,
// used only for debug output.
func (r *Registry) SortedNamespaceNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.Namespaces))
	for n := range r.Namespaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
