package token_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/jank-lang/jank/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerEmitToken(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("abc def"))
	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())

	tok := s.EmitToken(token.SYMBOL)
	assert.Equal(t, token.SYMBOL, tok.Type)
	assert.Equal(t, "abc", tok.Text)
	assert.Equal(t, "test.jank:1", tok.Source.String())

	assert.Equal(t, "", s.Text())
}

func TestScannerIgnoreSkipsText(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("   x"))
	n := s.AcceptSeqSpace()
	assert.Equal(t, 3, n)
	s.Ignore()
	assert.Equal(t, "", s.Text())

	require.NoError(t, s.ScanRune())
	tok := s.EmitToken(token.SYMBOL)
	assert.Equal(t, "x", tok.Text)
}

func TestScannerPeekDoesNotConsume(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("hi"))
	r, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'h', r)

	r, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'h', r)

	require.NoError(t, s.ScanRune())
	assert.Equal(t, 'h', s.Rune())
}

func TestScannerAcceptRune(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("(foo)"))
	assert.True(t, s.AcceptRune('('))
	assert.False(t, s.AcceptRune('x'))
	tok := s.EmitToken(token.PAREN_L)
	assert.Equal(t, "(", tok.Text)
}

func TestScannerAcceptDigitAndSeq(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("123abc"))
	n := s.AcceptSeqDigit()
	assert.Equal(t, 3, n)
	tok := s.EmitToken(token.INT)
	assert.Equal(t, "123", tok.Text)

	assert.False(t, s.AcceptDigit())
}

func TestScannerAcceptAny(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("+-*/x"))
	n := s.AcceptSeqAny("+-*/")
	assert.Equal(t, 4, n)
	tok := s.EmitToken(token.SYMBOL)
	assert.Equal(t, "+-*/", tok.Text)
}

func TestScannerAcceptString(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("#{rest"))
	n, ok := s.AcceptString("#{")
	require.True(t, ok)
	assert.Equal(t, 2, n)
	tok := s.EmitToken(token.HASH_CURLY)
	assert.Equal(t, "#{", tok.Text)

	s2 := token.NewScanner("test.jank", strings.NewReader("#x"))
	_, ok = s2.AcceptString("#{")
	assert.False(t, ok)
}

func TestScannerAcceptSpace(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader(" \t\nrest"))
	n := s.AcceptSeqSpace()
	assert.Equal(t, 3, n)
}

func TestScannerAcceptCustomFn(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("ABCx"))
	n := s.AcceptSeq(unicode.IsUpper)
	assert.Equal(t, 3, n)
	tok := s.EmitToken(token.SYMBOL)
	assert.Equal(t, "ABC", tok.Text)
}

func TestScannerEOF(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("a"))
	assert.False(t, s.EOF())
	require.NoError(t, s.ScanRune())
	s.Ignore()
	assert.Error(t, s.ScanRune())
	assert.True(t, s.EOF())
}

func TestScannerLocStartTracksLine(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("ab\ncd"))
	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())
	s.EmitToken(token.SYMBOL)

	require.NoError(t, s.ScanRune())
	s.Ignore()

	require.NoError(t, s.ScanRune())
	tok := s.EmitToken(token.SYMBOL)
	assert.Equal(t, "c", tok.Text)
	assert.Equal(t, 2, tok.Source.Line)
}

func TestScannerSetPath(t *testing.T) {
	s := token.NewScanner("test.jank", strings.NewReader("x"))
	s.SetPath("/tmp/test.jank")
	require.NoError(t, s.ScanRune())
	loc := s.LocStart()
	assert.Equal(t, "/tmp/test.jank", loc.Path)
}
