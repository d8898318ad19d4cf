package analyzer

import (
	"github.com/jank-lang/jank/compiler"
	"github.com/jank-lang/jank/value"
)

// FrameKind distinguishes the three kinds of lexical frame.
type FrameKind int

const (
	RootFrame FrameKind = iota
	FnFrame
	LetFrame
)

// LocalBinding is one name bound within a frame. Function
// parameters have a nil Initializer; let-bindings carry the analyzed
// initializer expression.
type LocalBinding struct {
	NameSymbol      *value.Value
	Initializer     Expression
	OriginFrame     *Frame
	NeedsBox        bool
	HasBoxedUsage   bool
	HasUnboxedUsage bool
	CrossedFns      []*Frame
}

// Frame is a node in the lexical scope tree: a map of local bindings plus
// a parent back-link, specialized with the lifted-constant/lifted-var
// bookkeeping a code generator needs.
type Frame struct {
	Kind   FrameKind
	Parent *Frame
	Locals map[string]*LocalBinding

	// LiftedConstants and LiftedVars are populated only on Fn/root frames;
	// let frames delegate lifts to the nearest enclosing fn/root ancestor.
	LiftedConstants []*value.Value
	LiftedVars      []*value.Value
	constantSeen    map[string]bool
	varSeen         map[string]bool

	ctx compiler.Context
}

// NewRootFrame returns a fresh root frame backed by ctx.
func NewRootFrame(ctx compiler.Context) *Frame {
	return &Frame{
		Kind:         RootFrame,
		Locals:       make(map[string]*LocalBinding),
		constantSeen: make(map[string]bool),
		varSeen:      make(map[string]bool),
		ctx:          ctx,
	}
}

// NewChild returns a child frame of the given kind under f.
func (f *Frame) NewChild(kind FrameKind) *Frame {
	child := &Frame{Kind: kind, Parent: f, Locals: make(map[string]*LocalBinding), ctx: f.ctx}
	if kind == FnFrame {
		child.constantSeen = make(map[string]bool)
		child.varSeen = make(map[string]bool)
	}
	return child
}

// Define installs a new local binding named sym in f, overwriting any prior
// binding of the same name (the fn* analyzer uses this to implement
// shadowing-by-name-erasure: the earlier binding is renamed first, then the
// new one is defined under the original name).
func (f *Frame) Define(sym *value.Value) *LocalBinding {
	b := &LocalBinding{NameSymbol: sym, OriginFrame: f}
	f.Locals[sym.Name] = b
	return b
}

// DefineCapture installs a capture binding in f that points back to
// origin, used by RegisterCaptures.
func (f *Frame) DefineCapture(name string, origin *LocalBinding) *LocalBinding {
	b := &LocalBinding{NameSymbol: value.UnqualifiedSymbol(name), OriginFrame: origin.OriginFrame, NeedsBox: true}
	f.Locals[name] = b
	return b
}

// nearestFn returns the nearest enclosing Fn or Root frame, i.e. the frame
// that owns lifted constants/vars.
func (f *Frame) nearestFn() *Frame {
	for cur := f; cur != nil; cur = cur.Parent {
		if cur.Kind == FnFrame || cur.Kind == RootFrame {
			return cur
		}
	}
	return f
}

// FindResult is the outcome of FindLocalOrCapture.
type FindResult struct {
	Binding    *LocalBinding
	CrossedFns []*Frame
}

// FindLocalOrCapture walks f's ancestor chain looking for sym, recording
// every Fn frame crossed along the way. A nil result means
// sym is not a local at all.
func (f *Frame) FindLocalOrCapture(sym *value.Value) *FindResult {
	var crossed []*Frame
	cur := f
	crossedFnSinceStart := false
	for cur != nil {
		if b, ok := cur.Locals[sym.Name]; ok {
			res := &FindResult{Binding: b}
			if crossedFnSinceStart {
				res.CrossedFns = crossed
			}
			return res
		}
		if cur.Kind == FnFrame {
			crossed = append(crossed, cur)
			crossedFnSinceStart = true
		}
		cur = cur.Parent
	}
	return nil
}

// RegisterCaptures ensures a capture binding exists in every frame in
// result.CrossedFns, pointing back to the originating binding, and marks
// the originating binding HasBoxedUsage.
func RegisterCaptures(result *FindResult) {
	if result == nil || len(result.CrossedFns) == 0 {
		return
	}
	origin := result.Binding
	origin.HasBoxedUsage = true
	origin.CrossedFns = append(origin.CrossedFns, result.CrossedFns...)
	name := origin.NameSymbol.Name
	// Crossed frames are recorded in traversal order, innermost first
	// (nearest to the reference); install captures from the frame nearest
	// the origin inward toward the reference. Every capture records the
	// origin binding's frame as its OriginFrame.
	for i := len(result.CrossedFns) - 1; i >= 0; i-- {
		fr := result.CrossedFns[i]
		if _, ok := fr.Locals[name]; !ok {
			fr.DefineCapture(name, origin)
		}
	}
}

// LiftConstant adds v to the nearest enclosing fn/root frame's
// LiftedConstants if not already present. Idempotent and
// insertion-ordered.
func (f *Frame) LiftConstant(v *value.Value) {
	owner := f.nearestFn()
	key := v.String()
	if owner.constantSeen[key] {
		// Distinct values can print alike (1 and 1.0); compare structurally.
		for _, c := range owner.LiftedConstants {
			if value.Equal(c, v) {
				return
			}
		}
	}
	owner.constantSeen[key] = true
	owner.LiftedConstants = append(owner.LiftedConstants, v)
}

// LiftVar adds the qualified symbol sym to the nearest enclosing fn/root
// frame's LiftedVars if not already present.
func (f *Frame) LiftVar(sym *value.Value) {
	owner := f.nearestFn()
	key := sym.QualifiedName()
	if owner.varSeen[key] {
		return
	}
	owner.varSeen[key] = true
	owner.LiftedVars = append(owner.LiftedVars, sym)
}

// QualifyForDef returns a qualified symbol formed from ctx's current
// namespace and name, the overload of lift_var describes as
// used by def.
func (f *Frame) QualifyForDef(name *value.Value) (*value.Value, error) {
	return f.ctx.QualifySymbol(value.UnqualifiedSymbol(name.Name))
}

// Context exposes the runtime context backing f's frame tree.
func (f *Frame) Context() compiler.Context {
	return f.ctx
}
