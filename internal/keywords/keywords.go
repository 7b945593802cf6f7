// Package keywords holds the reserved word table of the JASS language.
//
// Reserved words are excluded from identifier tokenization: the scanner reads
// a maximal identifier-shaped run first and then asks this package whether
// the run is reserved. The table is fixed at build time and read-only, so it
// is safe for unsynchronized concurrent use.
package keywords

// Length bounds of the reserved words. The shortest are two characters
// ("if", "or"), the longest is eleven ("endfunction"). Runs outside these
// bounds are rejected before any comparison.
const (
	MinLength = 2
	MaxLength = 11
)

// words lists every reserved word, sorted.
var words = []string{
	"and", "array", "call", "constant", "else", "elseif",
	"endfunction", "endglobals", "endif", "endloop", "exitwhen",
	"extends", "function", "globals", "if", "local", "loop",
	"native", "not", "nothing", "or", "return", "returns",
	"set", "takes", "then", "type",
}

// Reserved reports whether word is one of the reserved words.
//
// Matching is exact and case-sensitive. The first character narrows the
// candidate set, then candidates are compared whole; the word set is small
// and fixed, so this beats a map lookup and allocates nothing.
func Reserved(word string) bool {
	if len(word) < MinLength || len(word) > MaxLength {
		return false
	}
	switch word[0] {
	case 'a':
		return word == "and" || word == "array"
	case 'c':
		return word == "call" || word == "constant"
	case 'e':
		return word == "else" || word == "elseif" || word == "endif" ||
			word == "endloop" || word == "endfunction" || word == "endglobals" ||
			word == "exitwhen" || word == "extends"
	case 'f':
		return word == "function"
	case 'g':
		return word == "globals"
	case 'i':
		return word == "if"
	case 'l':
		return word == "local" || word == "loop"
	case 'n':
		return word == "not" || word == "native" || word == "nothing"
	case 'o':
		return word == "or"
	case 'r':
		return word == "return" || word == "returns"
	case 's':
		return word == "set"
	case 't':
		return word == "takes" || word == "then" || word == "type"
	}
	return false
}

// ReservedRunes is Reserved for a captured rune run. It avoids converting
// the run to a string, keeping the scanner's identifier path allocation-free.
func ReservedRunes(run []rune) bool {
	if len(run) < MinLength || len(run) > MaxLength {
		return false
	}
	switch run[0] {
	case 'a':
		return runesEqual(run, "and") || runesEqual(run, "array")
	case 'c':
		return runesEqual(run, "call") || runesEqual(run, "constant")
	case 'e':
		return runesEqual(run, "else") || runesEqual(run, "elseif") ||
			runesEqual(run, "endif") || runesEqual(run, "endloop") ||
			runesEqual(run, "endfunction") || runesEqual(run, "endglobals") ||
			runesEqual(run, "exitwhen") || runesEqual(run, "extends")
	case 'f':
		return runesEqual(run, "function")
	case 'g':
		return runesEqual(run, "globals")
	case 'i':
		return runesEqual(run, "if")
	case 'l':
		return runesEqual(run, "local") || runesEqual(run, "loop")
	case 'n':
		return runesEqual(run, "not") || runesEqual(run, "native") ||
			runesEqual(run, "nothing")
	case 'o':
		return runesEqual(run, "or")
	case 'r':
		return runesEqual(run, "return") || runesEqual(run, "returns")
	case 's':
		return runesEqual(run, "set")
	case 't':
		return runesEqual(run, "takes") || runesEqual(run, "then") ||
			runesEqual(run, "type")
	}
	return false
}

// runesEqual compares a rune run against an ASCII word.
func runesEqual(run []rune, word string) bool {
	if len(run) != len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if run[i] != rune(word[i]) {
			return false
		}
	}
	return true
}

// Words returns the reserved words in sorted order. The returned slice is a
// fresh copy; callers may keep or modify it.
func Words() []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}
