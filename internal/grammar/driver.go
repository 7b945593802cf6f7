package grammar

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-jass/internal/keywords"
	"github.com/shapestone/shape-jass/pkg/scanner"
)

// Driver is the reference host for the scanner. It owns everything the
// scanner contract leaves to the host: the cursor, the admissibility
// decision per position (from its parse mode), the grammar-literal fallback
// when the scanner declines, and the re-tokenization of spans the scanner
// consumed and refused.
//
// Every consumed character lands in exactly one emitted token, so
// concatenating the token values reproduces the source. Tokenization is
// total: spans no rule claims come out as Error tokens rather than stopping
// the stream.
//
// A Driver tokenizes one source, then is done; it is not reset or reused.
type Driver struct {
	cur  Cursor
	scan *scanner.Scanner
	mode Mode
}

// NewDriver creates a driver over cur. A nil scan gets a default scanner.
func NewDriver(cur Cursor, scan *scanner.Scanner) *Driver {
	if scan == nil {
		scan = scanner.New()
	}
	return &Driver{cur: cur, scan: scan, mode: ModeCode}
}

// Mode reports the parse context after the last emitted token. A mode other
// than ModeCode at end of input means an unterminated comment or string.
func (d *Driver) Mode() Mode {
	return d.mode
}

// Next produces the next token. The second result is false at end of input.
func (d *Driver) Next() (*tokenizer.Token, bool) {
	if _, ok := d.cur.PeekChar(); !ok {
		return nil, false
	}

	d.cur.Mark()
	kind, ok := d.scan.Scan(d.cur, validFor(d.mode))
	if ok {
		tok := tokenizer.NewToken(kind.String(), d.cur.Lexeme())
		d.mode = transition(d.mode, kind)
		return tok, true
	}

	if lexeme := d.cur.Lexeme(); len(lexeme) > 0 {
		// The scanner consumed the span and then declined: an identifier
		// shaped run that is either a reserved word or past the length
		// ceiling. The host owns that span now. Reserved words become the
		// keyword literals the grammar wanted all along; anything else has
		// no production to claim it.
		if keywords.ReservedRunes(lexeme) {
			return tokenizer.NewToken(TokenKeyword, lexeme), true
		}
		return tokenizer.NewToken(TokenError, lexeme), true
	}

	for _, match := range literalMatchers {
		if tok := match(d.cur); tok != nil {
			return tok, true
		}
	}

	// No rule claims this character. One Error rune keeps tokenization
	// total and the cursor moving.
	d.cur.Mark()
	d.cur.NextChar()
	return tokenizer.NewToken(TokenError, d.cur.Lexeme()), true
}

// Tokens runs the driver to end of input and returns every token produced.
func (d *Driver) Tokens() []tokenizer.Token {
	var out []tokenizer.Token
	for {
		tok, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, *tok)
	}
}
