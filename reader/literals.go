package reader

import (
	"strconv"
	"strings"
)

func parseFloatText(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// unquoteString decodes a string token's text, which still carries its
// surrounding quotes and any backslash escapes, using Go's own escaping
// rules via strconv.Unquote.
func unquoteString(text string) (string, error) {
	if strings.HasPrefix(text, "\"") && strings.HasSuffix(text, "\"") && len(text) >= 2 {
		return strconv.Unquote(text)
	}
	return strconv.Unquote(`"` + text + `"`)
}
