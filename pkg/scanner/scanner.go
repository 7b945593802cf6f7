// Package scanner implements the context-sensitive tokenizer core for the
// JASS scripting language.
//
// JASS grammars keep four token families out of the context-free grammar
// because they need character-level decisions: block comments, line comments,
// string literals, and identifiers (which must yield to reserved words).
// This package is the scanner a host parser calls for exactly those tokens.
//
// The host contract is narrow. Per tokenization decision the
// host calls Scan with a Cursor over the source and a ValidSymbols vector
// saying which token kinds its parse state currently admits. The scanner
// tries the admissible recognizers in fixed priority order and reports the
// kind that matched, having consumed exactly the token's characters. When no
// recognizer claims the input, Scan reports no token and the host falls back
// to its own grammar-literal matching.
//
// Two contract points deserve emphasis:
//
//   - A recognizer that declines immediately consumes nothing, so the host
//     may try other token kinds from the same position.
//   - The identifier recognizer consumes a whole reserved word and then
//     declines. The consumed span is not an error; the host re-tokenizes it
//     through its keyword literals. Cursor.Mark and Cursor.Lexeme exist for
//     precisely that handoff.
//
// # Thread Safety
//
// A Scanner holds no scan state; Scan reads only its arguments and the
// MaxIdentifierLen field. One scanner may serve any number of parses,
// sequentially or concurrently, as long as each parse owns its Cursor.
// Cursors are single-parse objects and are not safe to share.
//
// # Example
//
//	cur := scanner.NewSourceCursor(`call foo()`)
//	s := scanner.New()
//	cur.Mark()
//	kind, ok := s.Scan(cur, scanner.NewValidSymbols(scanner.Identifier))
//	// ok is false: "call" is reserved. The cursor consumed it anyway,
//	// and cur.Lexeme() returns the span for keyword re-tokenization.
//	_, _ = kind, ok
package scanner

// Scanner recognizes the context-sensitive tokens of JASS under a host
// parser's admissibility rules.
type Scanner struct {
	// MaxIdentifierLen caps identifier runs; zero means
	// DefaultMaxIdentifierLen. Set it before the first Scan. Scanning only
	// reads it, so a configured scanner stays safe for concurrent use.
	MaxIdentifierLen int
}

// New creates a scanner with default settings.
func New() *Scanner {
	return &Scanner{}
}

// Scan attempts to produce one token at the cursor position.
//
// Recognizers run in fixed priority order: structural delimiters before bulk
// content, and bulk content before identifiers. Kinds that valid does not
// admit are skipped. The first success wins and the cursor stands at the end
// of the token.
//
// On failure the cursor reflects exactly what the failed attempt consumed:
// nothing for the delimiter and content recognizers, or the whole run when
// an identifier-shaped span turned out to be a reserved word or outgrew
// MaxIdentifierLen. Callers distinguish the two by the cursor's consumption,
// and re-tokenize consumed spans themselves.
func (s *Scanner) Scan(cur Cursor, valid ValidSymbols) (TokenType, bool) {
	if valid[BlockCommentStart] && scanBlockCommentStart(cur) {
		return BlockCommentStart, true
	}
	if valid[BlockCommentEnd] && scanBlockCommentEnd(cur) {
		return BlockCommentEnd, true
	}
	if valid[LineComment] && scanLineComment(cur) {
		return LineComment, true
	}
	if valid[StringStart] && scanStringStart(cur) {
		return StringStart, true
	}
	if valid[StringEnd] && scanStringEnd(cur) {
		return StringEnd, true
	}
	if valid[BlockCommentContent] && scanBlockCommentContent(cur) {
		return BlockCommentContent, true
	}
	if valid[StringContent] && scanStringContent(cur) {
		return StringContent, true
	}
	if valid[Identifier] && scanIdentifier(cur, s.maxIdentifierLen()) {
		return Identifier, true
	}
	return 0, false
}

// Reset clears accumulated state between incremental edits. The scanner
// accumulates none, so Reset does nothing; it exists to satisfy the host
// lifecycle.
func (s *Scanner) Reset() {}

// Serialize captures scanner state for an incremental re-parse. There is no
// state, so the payload is always empty.
func (s *Scanner) Serialize() []byte {
	return nil
}

// Deserialize restores state captured by Serialize. Any payload is accepted
// and ignored.
func (s *Scanner) Deserialize(data []byte) {}

func (s *Scanner) maxIdentifierLen() int {
	if s.MaxIdentifierLen > 0 {
		return s.MaxIdentifierLen
	}
	return DefaultMaxIdentifierLen
}
