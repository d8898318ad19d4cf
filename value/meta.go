package value

// MetaGet looks up key in a metadata map, returning Nil() if absent or if
// meta is not a Map. Used for the meta-map keys :macro and :arities.
func MetaGet(meta *Value, key *Value) *Value {
	if meta.IsNil() || meta.Type != MapType {
		return Nil()
	}
	for i := 0; i+1 < len(meta.Cells); i += 2 {
		if Equal(meta.Cells[i], key) {
			return meta.Cells[i+1]
		}
	}
	return Nil()
}

// ArityMeta is the decoded shape of one entry of a var's :arities meta map
//: per-arg-count unboxed-calling-convention support.
type ArityMeta struct {
	SupportsUnboxedInput bool
	UnboxedOutput        bool
}

// ArityMetaFor looks up the :arities entry for the given argument count. ok
// is false if the var has no :arities meta, or no entry for argCount.
func ArityMetaFor(varMeta *Value, argCount int) (ArityMeta, bool) {
	arities := MetaGet(varMeta, Keyword("", "arities"))
	if arities.IsNil() || arities.Type != MapType {
		return ArityMeta{}, false
	}
	for i := 0; i+1 < len(arities.Cells); i += 2 {
		k := arities.Cells[i]
		if k.Type != IntType || int(k.Int) != argCount {
			continue
		}
		entry := arities.Cells[i+1]
		return ArityMeta{
			SupportsUnboxedInput: MetaGet(entry, Keyword("", "supports-unboxed-input?")).Truthy(),
			UnboxedOutput:        MetaGet(entry, Keyword("", "unboxed-output?")).Truthy(),
		}, true
	}
	return ArityMeta{}, false
}
