package analyzer

// BoxTail implements the boxing/tail step: given the body
// of a tail-recursive arity, it walks to every tail position and forces
// needs_box=true there, leaving non-tail subexpressions untouched. The
// rewrite is structural: it returns a new Do value built from shallow
// copies of the nodes on the tail path; everything off that path keeps its
// original pointer. Its one side effect is on local references in tail
// position, which also set HasBoxedUsage on their shared binding.
func BoxTail(body *Do) *Do {
	return boxTailDo(body)
}

func boxTailDo(do *Do) *Do {
	if do == nil {
		return nil
	}
	if len(do.Body) == 0 {
		nd := *do
		nd.NeedsBox = true
		return &nd
	}
	newBody := make([]Expression, len(do.Body))
	copy(newBody, do.Body)
	newBody[len(newBody)-1] = boxTailExpr(do.Body[len(do.Body)-1])
	nd := *do
	nd.Body = newBody
	nd.NeedsBox = true
	return &nd
}

// boxTailExpr forces needs_box=true on e, recursing into further tail
// positions when e is itself a branching construct (if, let*, nested do).
func boxTailExpr(e Expression) Expression {
	switch v := e.(type) {
	case *If:
		nv := *v
		nv.NeedsBox = true
		if nv.Then != nil {
			nv.Then = boxTailExpr(nv.Then)
		}
		if nv.Else != nil {
			nv.Else = boxTailExpr(nv.Else)
		}
		return &nv
	case *Let:
		nv := *v
		nv.Body = boxTailDo(v.Body)
		nv.NeedsBox = true
		return &nv
	case *Do:
		return boxTailDo(v)
	case *PrimitiveLiteral:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *LocalReference:
		nv := *v
		nv.NeedsBox = true
		nv.Binding.HasBoxedUsage = true
		return &nv
	case *VarDeref:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *VarRef:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *Def:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *Recur:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *Call:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *Vector:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *Map:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *NativeRaw:
		nv := *v
		nv.NeedsBox = true
		return &nv
	case *Fn:
		nv := *v
		nv.NeedsBox = true
		return &nv
	default:
		return e
	}
}
