package grammar

import (
	"github.com/shapestone/shape-jass/pkg/scanner"
)

// Mode identifies the parse context the driver is in. The mode decides which
// scanner token kinds are admissible, the way a real parser's state gates
// the scanner at each position.
type Mode int

const (
	// ModeCode is ordinary code: comments and strings may open, identifiers
	// and grammar literals may appear.
	ModeCode Mode = iota
	// ModeBlockComment is the interior of /* ... */.
	ModeBlockComment
	// ModeString is the interior of " ... ".
	ModeString
)

// validFor returns the admissibility set the host supplies in each mode.
//
// Delimiter kinds rank above content kinds in the scanner's dispatch, so
// inside a comment the closing */ wins over content, and between adjacent
// quotes the closing quote wins over content (which would be empty there,
// and empty content is never a token).
func validFor(mode Mode) scanner.ValidSymbols {
	switch mode {
	case ModeBlockComment:
		return scanner.NewValidSymbols(
			scanner.BlockCommentEnd,
			scanner.BlockCommentContent,
		)
	case ModeString:
		return scanner.NewValidSymbols(
			scanner.StringEnd,
			scanner.StringContent,
		)
	default:
		return scanner.NewValidSymbols(
			scanner.BlockCommentStart,
			scanner.LineComment,
			scanner.StringStart,
			scanner.Identifier,
		)
	}
}

// transition returns the mode after a scanner token of the given kind.
func transition(mode Mode, kind scanner.TokenType) Mode {
	switch kind {
	case scanner.BlockCommentStart:
		return ModeBlockComment
	case scanner.BlockCommentEnd:
		return ModeCode
	case scanner.StringStart:
		return ModeString
	case scanner.StringEnd:
		return ModeCode
	default:
		return mode
	}
}
