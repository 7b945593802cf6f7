package scanner

// TokenType identifies one of the token kinds this scanner can produce.
//
// The declaration order is part of the host contract: admissibility vectors
// are indexed by TokenType, so hosts and scanner must agree on it. Reordering
// or renumbering these is a breaking change.
type TokenType int

const (
	// BlockCommentStart is the opening /* of a block comment.
	BlockCommentStart TokenType = iota
	// BlockCommentContent is the text between /* and */, exclusive.
	BlockCommentContent
	// BlockCommentEnd is the closing */ of a block comment.
	BlockCommentEnd
	// LineComment is a // comment up to, not including, the line break.
	LineComment
	// StringStart is the opening quote of a string literal.
	StringStart
	// StringContent is the text between the quotes, exclusive, with escapes.
	StringContent
	// StringEnd is the closing quote of a string literal.
	StringEnd
	// Identifier is a name: a letter or underscore followed by letters,
	// digits, and underscores, and not a reserved word.
	Identifier

	// TokenCount is the number of token kinds. It sizes ValidSymbols.
	TokenCount
)

var tokenNames = [TokenCount]string{
	BlockCommentStart:   "BlockCommentStart",
	BlockCommentContent: "BlockCommentContent",
	BlockCommentEnd:     "BlockCommentEnd",
	LineComment:         "LineComment",
	StringStart:         "StringStart",
	StringContent:       "StringContent",
	StringEnd:           "StringEnd",
	Identifier:          "Identifier",
}

// String returns the stable name of the token kind. The names double as the
// token kind strings of the streams Tokenize produces.
func (t TokenType) String() string {
	if t < 0 || t >= TokenCount {
		return "Unknown"
	}
	return tokenNames[t]
}

// ValidSymbols tells the scanner which token kinds the host's parse state
// currently admits. The scanner never attempts a kind whose flag is false,
// and never mutates the set.
type ValidSymbols [TokenCount]bool

// NewValidSymbols builds an admissibility set with the given kinds enabled.
func NewValidSymbols(kinds ...TokenType) ValidSymbols {
	var v ValidSymbols
	for _, k := range kinds {
		v[k] = true
	}
	return v
}
