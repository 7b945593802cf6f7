package scanner

import (
	"unicode"

	"github.com/shapestone/shape-jass/internal/keywords"
)

// DefaultMaxIdentifierLen caps identifier runs when the Scanner does not set
// its own limit. Runs past the cap are consumed in full and then declined, so
// an oversized name is a deterministic non-match, never a truncated token.
const DefaultMaxIdentifierLen = 255

// scanIdentifier recognizes an identifier: a letter or underscore followed
// by the maximal run of letters, digits, and underscores.
//
// Reserved words are never identifiers. The recognizer consumes
// the whole run before declining them, and the host re-tokenizes the span
// through its keyword literals; see Scanner.Scan. Only one rune past the
// longest reserved word is buffered for classification, since a longer run
// can never be reserved, however long it grows.
func scanIdentifier(cur Cursor, maxLen int) bool {
	r, ok := cur.PeekChar()
	if !ok || !isIdentStart(r) {
		return false
	}

	var word [keywords.MaxLength + 1]rune
	length := 0
	for {
		r, ok := cur.PeekChar()
		if !ok || !isIdentPart(r) {
			break
		}
		cur.NextChar()
		if length < len(word) {
			word[length] = r
		}
		length++
	}

	if length > maxLen {
		return false
	}
	if length <= keywords.MaxLength && keywords.ReservedRunes(word[:length]) {
		return false
	}
	return true
}

// isIdentStart reports whether r can begin an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentPart reports whether r can continue an identifier.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
