package scanner

// scanBlockCommentStart recognizes the opening delimiter of a block comment.
// Matches: /*
//
// Anything else is declined with zero consumption, leaving the cursor where
// it was for the next recognizer.
func scanBlockCommentStart(cur Cursor) bool {
	r, ok := cur.PeekChar()
	if !ok || r != '/' {
		return false
	}
	next, ok := cur.PeekNextChar()
	if !ok || next != '*' {
		return false
	}
	cur.NextChar()
	cur.NextChar()
	return true
}

// scanBlockCommentEnd recognizes the closing delimiter of a block comment.
// Matches: */
func scanBlockCommentEnd(cur Cursor) bool {
	r, ok := cur.PeekChar()
	if !ok || r != '*' {
		return false
	}
	next, ok := cur.PeekNextChar()
	if !ok || next != '/' {
		return false
	}
	cur.NextChar()
	cur.NextChar()
	return true
}

// scanBlockCommentContent consumes comment text up to, but not including,
// the closing */ delimiter, or to end of input.
//
// At a */ boundary at least one character must have been consumed; with
// nothing consumed the recognizer declines and the end delimiter is the only
// possible match there. At end of input the content succeeds even when
// empty: an unterminated block comment still tokenizes, it just never gets
// its closing delimiter.
func scanBlockCommentContent(cur Cursor) bool {
	consumed := 0
	for {
		r, ok := cur.PeekChar()
		if !ok {
			return true
		}
		if r == '*' {
			if next, ok := cur.PeekNextChar(); ok && next == '/' {
				return consumed > 0
			}
		}
		cur.NextChar()
		consumed++
	}
}

// scanLineComment recognizes a line comment.
// Matches: // followed by everything up to a line break or end of input.
//
// The line break itself is not part of the comment.
func scanLineComment(cur Cursor) bool {
	r, ok := cur.PeekChar()
	if !ok || r != '/' {
		return false
	}
	next, ok := cur.PeekNextChar()
	if !ok || next != '/' {
		return false
	}
	cur.NextChar()
	cur.NextChar()

	for {
		r, ok := cur.PeekChar()
		if !ok || r == '\n' || r == '\r' {
			return true
		}
		cur.NextChar()
	}
}
