package scanner

// scanStringStart recognizes the opening quote of a string literal.
// Matches: "
func scanStringStart(cur Cursor) bool {
	r, ok := cur.PeekChar()
	if !ok || r != '"' {
		return false
	}
	cur.NextChar()
	return true
}

// scanStringEnd recognizes the closing quote of a string literal.
// Matches: "
func scanStringEnd(cur Cursor) bool {
	r, ok := cur.PeekChar()
	if !ok || r != '"' {
		return false
	}
	cur.NextChar()
	return true
}

// scanStringContent consumes string interior text up to an unescaped closing
// quote or end of input.
//
// A backslash consumes the character after it unconditionally; which escape
// codes mean anything is a later stage's concern, the tokenizer only keeps
// escaped quotes from terminating the string. Zero consumed characters is a
// decline: between adjacent quotes there is no content token, the empty
// string literal belongs to the quote tokens alone.
func scanStringContent(cur Cursor) bool {
	consumed := 0
	for {
		r, ok := cur.PeekChar()
		if !ok || r == '"' {
			return consumed > 0
		}
		cur.NextChar()
		consumed++
		if r == '\\' {
			if _, ok := cur.NextChar(); ok {
				consumed++
			}
		}
	}
}
