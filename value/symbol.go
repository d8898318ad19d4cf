package value

import "strings"

// ParseSymbolText splits a reader-level symbol token's text into namespace
// and name parts on the first "/". A leading "/" (the division symbol
// itself) is treated as unqualified: a token that is only "/" is never
// split.
func ParseSymbolText(text string) (ns, name string) {
	if text == "/" {
		return "", text
	}
	i := strings.IndexByte(text, '/')
	if i <= 0 {
		return "", text
	}
	return text[:i], text[i+1:]
}

// SymbolFromText builds a Symbol Value from raw reader text.
func SymbolFromText(text string) *Value {
	ns, name := ParseSymbolText(text)
	return Symbol(ns, name)
}

// KeywordFromText builds a Keyword Value from raw reader text (without the
// leading ':').
func KeywordFromText(text string) *Value {
	ns, name := ParseSymbolText(text)
	return Keyword(ns, name)
}
