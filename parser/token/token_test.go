package token_test

import (
	"testing"

	"github.com/jank-lang/jank/parser/token"
	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "symbol", token.SYMBOL.String())
	assert.Equal(t, "#{", token.HASH_CURLY.String())
	assert.Equal(t, "invalid", token.Type(9999).String())
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "<native>", (*token.Location)(nil).String())

	loc := &token.Location{File: "f.jank", Pos: -1}
	assert.Equal(t, "f.jank", loc.String())

	loc = &token.Location{File: "f.jank", Pos: 4}
	assert.Equal(t, "f.jank[4]", loc.String())

	loc = &token.Location{File: "f.jank", Pos: 4, Line: 2}
	assert.Equal(t, "f.jank:2", loc.String())

	loc = &token.Location{File: "f.jank", Pos: 4, Line: 2, Col: 9}
	assert.Equal(t, "f.jank:2:9", loc.String())
}

func TestLocationError(t *testing.T) {
	loc := &token.Location{File: "f.jank", Pos: 4, Line: 2, Col: 9}
	err := &token.LocationError{Err: assertErr{"boom"}, Source: loc}
	assert.Equal(t, "f.jank:2:9: boom", err.Error())
	assert.EqualError(t, err.Unwrap(), "boom")
}

type assertErr struct{ msg string }

func (e assertErr) Error() string { return e.msg }
