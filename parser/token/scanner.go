package token

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner turns a byte stream (io.Reader) into a sequence of tokens one rune
// at a time: callers Accept/Scan runes onto the current token, then
// EmitToken to cut a Token from the text accumulated so far.
type Scanner struct {
	file string
	path string

	absPos       int // total bytes consumed so far
	lineStart    int // absPos at the first byte of the current line
	line         int // 1-based line number at lineStart
	tokLineStart int // absPos at the first byte of the line the current token starts on
	tokLine      int // line number at tokLineStart

	r       io.Reader
	readErr error

	buf      []byte
	tokStart int // start of the current token within buf
	runePos  int // index of cur within buf
	nextPos  int // index of the rune following cur within buf
	cur      scannedRune
	lookahead []scannedRune
}

func newScannerBuf(file string, r io.Reader, buf []byte) *Scanner {
	s := &Scanner{
		file:    file,
		r:       r,
		buf:     buf,
		line:    1,
		tokLine: 1,
	}
	s.fill(0)

	return s
}

// NewScanner initializes and returns a new Scanner reading from r.
func NewScanner(file string, r io.Reader) *Scanner {
	buf := make([]byte, 128<<10)
	return newScannerBuf(file, r, buf)
}

// SetPath associates a physical location (e.g. filesystem path) with s, used
// only for diagnostics when file is a synthetic name (a REPL form, a string
// passed on the command line) rather than a real path on disk.
func (s *Scanner) SetPath(path string) {
	s.path = path
}

// EmitToken cuts a token from the text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore discards all text scanned since the last call to either EmitToken
// or Ignore, without producing a token. Lexers use it to drop whitespace and
// comments.
func (s *Scanner) Ignore() {
	s.tokStart = s.nextPos
	s.tokLine = s.line
	s.tokLineStart = s.lineStart
	if s.cur.C == '\n' {
		s.tokLine++
		s.tokLineStart = s.absPos + 1
	}
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.buf[s.tokStart:s.nextPos])
}

// Rune returns the rune most recently scanned by ScanRune: the last rune
// that will appear in the text of the next EmitToken.
func (s *Scanner) Rune() rune {
	return s.cur.C
}

// Peek returns the next rune to be scanned without consuming it. The second
// return value is false at EOF or on an invalid utf-8 sequence; a
// subsequent ScanRune then returns the error explaining why.
func (s *Scanner) Peek() (rune, bool) {
	if len(s.lookahead) > 0 {
		return s.lookahead[0].C, true
	}
	if err := s.ensureBuffered(); err != nil {
		return 0, false
	}
	c, n := utf8.DecodeRune(s.buf[s.nextPos:])
	r := scannedRune{c, n}
	if r.isInvalid() {
		return utf8.RuneError, false
	}
	s.lookahead = append(s.lookahead, r)
	return c, true
}

// ScanRune consumes the next utf-8 rune from the input and appends it to the
// current token. It returns an error when no valid rune could be scanned.
func (s *Scanner) ScanRune() error {
	if err := s.runeErr(); err != nil {
		return err
	}
	if len(s.lookahead) > 0 {
		s.advance(s.lookahead[0])
		s.lookahead = s.lookahead[1:]
		return s.runeErr()
	}
	if err := s.ensureBuffered(); err != nil {
		return err
	}
	c, n := utf8.DecodeRune(s.buf[s.nextPos:])
	s.advance(scannedRune{c, n})
	if err := s.runeErr(); err != nil {
		// A short read, not a genuinely malformed sequence, can also decode
		// as RuneError; prefer the underlying read error when there is one.
		if s.readErr != nil {
			return s.readErr
		}
		return err
	}
	return nil
}

func (s *Scanner) advance(r scannedRune) {
	old := s.cur
	s.cur = r
	s.absPos += old.N
	s.runePos += old.N
	s.nextPos += r.N
	if old.C == '\n' {
		s.line++
		s.lineStart = s.absPos
	}
}

// Err returns the error from the last read of the input stream, once there
// are no more buffered runes left to accept.
func (s *Scanner) Err() error {
	if s.readErr == nil {
		return nil
	}
	if s.readErr == io.EOF {
		return nil
	}
	if len(s.buf) == s.nextPos {
		return s.readErr
	}
	if len(s.buf)-s.nextPos < utf8.UTFMax {
		c, n := utf8.DecodeRune(s.buf[s.nextPos:])
		if c == utf8.RuneError && n == 1 {
			// Too few bytes remain to decode another rune; the short buffer
			// may be hiding a truncated sequence rather than real input.
			return s.readErr
		}
	}
	return nil
}

func (s *Scanner) EOF() bool {
	if len(s.buf) == 0 {
		return true
	}
	if s.readErr == nil {
		return false
	}
	if s.readErr != io.EOF {
		return false
	}
	return s.nextPos >= len(s.buf)
}

func (s *Scanner) Accept(fn func(rune) bool) bool {
	peek, ok := s.Peek()
	if !ok {
		return false
	}
	if fn(peek) {
		return s.ScanRune() == nil
	}
	return false
}

func (s *Scanner) AcceptRune(c rune) bool {
	peek, ok := s.Peek()
	if !ok {
		return false
	}
	if peek == c {
		return s.ScanRune() == nil
	}
	return false
}

func (s *Scanner) AcceptDigit() bool {
	peek, ok := s.Peek()
	if !ok {
		return false
	}
	if '0' <= peek && peek <= '9' {
		return s.ScanRune() == nil
	}
	return false
}

func (s *Scanner) AcceptSpace() bool {
	peek, ok := s.Peek()
	if !ok {
		return false
	}
	if unicode.IsSpace(peek) {
		return s.ScanRune() == nil
	}
	return false
}

func (s *Scanner) AcceptAny(charset string) bool {
	if len(charset) == 1 {
		return s.AcceptRune(rune(charset[0]))
	}
	peek, ok := s.Peek()
	if !ok {
		return false
	}
	if strings.ContainsRune(charset, peek) {
		return s.ScanRune() == nil
	}
	return false
}

func (s *Scanner) AcceptSeq(fn func(rune) bool) int {
	var n int
	for s.Accept(fn) {
		n++
	}
	return n
}

func (s *Scanner) AcceptSeqRune(c rune) int {
	var n int
	for s.AcceptRune(c) {
		n++
	}
	return n
}

func (s *Scanner) AcceptSeqAny(charset string) int {
	var n int
	for s.AcceptAny(charset) {
		n++
	}
	return n
}

func (s *Scanner) AcceptSeqDigit() int {
	var n int
	for s.AcceptDigit() {
		n++
	}
	return n
}

func (s *Scanner) AcceptSeqSpace() int {
	var n int
	for s.AcceptSpace() {
		n++
	}
	return n
}

func (s *Scanner) AcceptString(literal string) (int, bool) {
	var n int
	for _, c := range literal {
		if !s.AcceptRune(c) {
			return n, false
		}
		n++
	}
	return n, true
}

func (s *Scanner) runeErr() error {
	if s.cur.isInvalid() {
		return fmt.Errorf("invalid utf-8 sequence in source text starting with byte %q", s.buf[s.runePos])
	}
	return nil
}

// LocStart returns a Location for the start of the current token, just past
// the end of the previous one.
func (s *Scanner) LocStart() *Location {
	startPos := s.absPos - (s.runePos - s.tokStart)
	if s.tokStart > s.runePos {
		startPos = s.absPos + s.cur.N
	}
	return &Location{
		File: s.file,
		Path: s.path,
		Line: s.tokLine,
		Pos:  startPos,
	}
}

// Loc returns a Location for the scanner's current position: the last
// position of the current token.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Path: s.path,
		Line: s.line,
		Pos:  s.absPos,
	}
}

// ensureBuffered makes sure at least one full utf-8 sequence is available
// past nextPos, compacting and refilling buf when it isn't.
func (s *Scanner) ensureBuffered() error {
	rem := len(s.buf) - s.nextPos
	if rem < utf8.UTFMax {
		s.compact()
	}
	if len(s.buf) == 0 {
		return io.EOF
	}
	if s.nextPos == len(s.buf) {
		// Neither EOF nor a successful compaction freed any room: the
		// current token has grown past what a single buffer can hold.
		return fmt.Errorf("token exceeds maximum allowable size")
	}
	return nil
}

// compact slides the bytes of the in-progress token to the front of buf,
// freeing room at the end for refill to extend it.
func (s *Scanner) compact() bool {
	if s.tokStart == 0 {
		return false
	}

	end := copy(s.buf, s.buf[s.tokStart:])
	s.runePos -= s.tokStart
	s.nextPos -= s.tokStart
	s.tokStart = 0

	s.fill(end)

	return true
}

func (s *Scanner) fill(end int) {
	if s.readErr == io.EOF {
		s.buf = s.buf[:end]
	}
	n, err := io.ReadFull(s.r, s.buf[end:])
	s.buf = s.buf[:end+n]
	if err == io.ErrUnexpectedEOF {
		return
	}
	s.readErr = err
}

// scannedRune is one rune read by Scanner while peeking or scanning ahead.
type scannedRune struct {
	C rune
	N int
}

// isInvalid reports whether r represents an invalid utf-8 sequence as
// decoded by utf8.DecodeRune.
func (r scannedRune) isInvalid() bool {
	return r.C == utf8.RuneError && r.N == 1
}
