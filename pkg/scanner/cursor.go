package scanner

import "unicode/utf8"

// Stream is the character source a cursor reads from. It is satisfied by the
// streams in shape-core's tokenizer package, so sources built with
// tokenizer.NewStream or tokenizer.NewStreamFromReader plug in directly.
type Stream interface {
	// PeekChar returns the current character without consuming it.
	PeekChar() (rune, bool)
	// NextChar consumes the current character and advances by one.
	NextChar() (rune, bool)
}

// Cursor is the scanner's window onto the host's source text.
//
// The scanner only ever peeks before it consumes and never rewinds: once
// NextChar has returned a character, that character is spoken for. Cursors
// add one extra character of lookahead over a plain Stream because the block
// comment content recognizer must stop immediately before a */ delimiter,
// which cannot be decided from the current character alone.
//
// Cursors also record what they consume. Mark sets the start of the current
// lexeme and Lexeme returns everything consumed since, which is how the host
// turns consumed spans into tokens, including the spans the scanner consumed
// and then declined (reserved words).
type Cursor interface {
	// PeekChar returns the current character without consuming it.
	PeekChar() (rune, bool)
	// PeekNextChar returns the character one past the current one without
	// consuming anything.
	PeekNextChar() (rune, bool)
	// NextChar consumes the current character and advances by one.
	NextChar() (rune, bool)
	// Mark starts a new lexeme at the current position.
	Mark()
	// Lexeme returns the characters consumed since the last Mark.
	Lexeme() []rune
	// Consumed reports the total number of characters consumed.
	Consumed() int
}

// SourceCursor is a Cursor over an in-memory source string. It decodes runes
// straight out of the string, making it the fast path for whole-file
// tokenization: no stream indirection, and lexemes are substrings.
type SourceCursor struct {
	src      string
	offset   int // byte offset of the current character
	mark     int // byte offset of the current lexeme start
	consumed int // runes consumed so far
}

// NewSourceCursor creates a cursor over src.
func NewSourceCursor(src string) *SourceCursor {
	return &SourceCursor{src: src}
}

// PeekChar returns the current character without consuming it.
func (c *SourceCursor) PeekChar() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.offset:])
	return r, true
}

// PeekNextChar returns the character after the current one without consuming
// anything.
func (c *SourceCursor) PeekNextChar() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(c.src[c.offset:])
	if c.offset+size >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.offset+size:])
	return r, true
}

// NextChar consumes the current character.
func (c *SourceCursor) NextChar() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.src[c.offset:])
	c.offset += size
	c.consumed++
	return r, true
}

// Mark starts a new lexeme at the current position.
func (c *SourceCursor) Mark() {
	c.mark = c.offset
}

// Lexeme returns the characters consumed since the last Mark.
func (c *SourceCursor) Lexeme() []rune {
	return []rune(c.src[c.mark:c.offset])
}

// Consumed reports the total number of characters consumed.
func (c *SourceCursor) Consumed() int {
	return c.consumed
}

// StreamCursor adapts any Stream to the Cursor interface.
//
// Streams expose a single character of lookahead, so the cursor buffers one
// rune to answer PeekNextChar. The buffered rune belongs to the source text;
// the cursor must therefore stay with its stream for the whole tokenization,
// and the stream must not be read around it.
type StreamCursor struct {
	src        Stream
	pending    rune
	hasPending bool
	lexeme     []rune
	consumed   int
}

// NewStreamCursor creates a cursor over src.
func NewStreamCursor(src Stream) *StreamCursor {
	return &StreamCursor{src: src}
}

// PeekChar returns the current character without consuming it.
func (c *StreamCursor) PeekChar() (rune, bool) {
	if c.hasPending {
		return c.pending, true
	}
	return c.src.PeekChar()
}

// PeekNextChar returns the character after the current one without consuming
// anything. The current character moves into the cursor's buffer.
func (c *StreamCursor) PeekNextChar() (rune, bool) {
	if !c.hasPending {
		r, ok := c.src.NextChar()
		if !ok {
			return 0, false
		}
		c.pending = r
		c.hasPending = true
	}
	return c.src.PeekChar()
}

// NextChar consumes the current character.
func (c *StreamCursor) NextChar() (rune, bool) {
	var r rune
	if c.hasPending {
		r = c.pending
		c.hasPending = false
	} else {
		var ok bool
		r, ok = c.src.NextChar()
		if !ok {
			return 0, false
		}
	}
	c.consumed++
	c.lexeme = append(c.lexeme, r)
	return r, true
}

// Mark starts a new lexeme at the current position.
func (c *StreamCursor) Mark() {
	c.lexeme = c.lexeme[:0]
}

// Lexeme returns the characters consumed since the last Mark. The result is
// a copy; the cursor reuses its internal buffer across lexemes.
func (c *StreamCursor) Lexeme() []rune {
	out := make([]rune, len(c.lexeme))
	copy(out, c.lexeme)
	return out
}

// Consumed reports the total number of characters consumed.
func (c *StreamCursor) Consumed() int {
	return c.consumed
}
