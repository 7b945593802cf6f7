package grammar

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-jass/pkg/scanner"
)

// Cursor is the character window the driver shares with the scanner: two
// characters of lookahead plus lexeme capture, so every consumed span can be
// turned into a token. Both cursor implementations in the scanner package
// satisfy it.
type Cursor = scanner.Cursor

// matcher attempts one grammar-literal token at the cursor position. A nil
// return means "not mine" with nothing consumed, so the next matcher sees
// the same position. There is no rewind; a matcher that cannot decide from
// two characters of lookahead must claim what it consumed, as an Error token
// if need be.
type matcher func(cur Cursor) *tokenizer.Token

// literalMatchers holds the grammar-literal fallback in match order:
// whitespace and line breaks first (the most common spans), then numbers,
// rawcodes, and operators. First characters are disjoint, so the order is
// about likelihood, not correctness.
var literalMatchers = []matcher{
	matchWhitespace,
	matchNewline,
	matchNumber,
	matchRawcode,
	matchOperator,
}

// matchWhitespace matches a run of spaces and tabs.
// Matches: one or more of ' ' or '\t'
//
// Line breaks are separate tokens; JASS is line-oriented, so they are
// grammatically significant and must not disappear into whitespace.
func matchWhitespace(cur Cursor) *tokenizer.Token {
	cur.Mark()
	for {
		r, ok := cur.PeekChar()
		if !ok || (r != ' ' && r != '\t') {
			break
		}
		cur.NextChar()
	}
	lexeme := cur.Lexeme()
	if len(lexeme) == 0 {
		return nil
	}
	return tokenizer.NewToken(TokenWhitespace, lexeme)
}

// matchNewline matches a line break.
// Matches: \r\n, \n, or a bare \r
func matchNewline(cur Cursor) *tokenizer.Token {
	r, ok := cur.PeekChar()
	if !ok {
		return nil
	}

	if r == '\r' {
		cur.Mark()
		cur.NextChar()
		if next, ok := cur.PeekChar(); ok && next == '\n' {
			cur.NextChar()
		}
		return tokenizer.NewToken(TokenNewline, cur.Lexeme())
	}

	if r == '\n' {
		cur.Mark()
		cur.NextChar()
		return tokenizer.NewToken(TokenNewline, cur.Lexeme())
	}

	return nil
}

// matchNumber matches a JASS numeric literal.
// Matches: integers and reals plus the two hex spellings
//
// Grammar:
//
//	Number = HexNumber | Real | Integer ;
//	HexNumber = ( "0x" | "0X" | "$" ) HexDigit+ ;
//	Real = Digit+ "." Digit* | "." Digit+ ;
//	Integer = Digit+ ;
//
// Octal literals (leading zero) are lexically plain digit runs, so they need
// no rule of their own. There is no exponent form in JASS.
func matchNumber(cur Cursor) *tokenizer.Token {
	r, ok := cur.PeekChar()
	if !ok {
		return nil
	}

	// $ hex form. The prefix is claimed only when a hex digit follows, so a
	// stray $ stays unconsumed for the error fallback.
	if r == '$' {
		next, ok := cur.PeekNextChar()
		if !ok || !isHexDigit(next) {
			return nil
		}
		cur.Mark()
		cur.NextChar()
		consumeHexDigits(cur)
		return tokenizer.NewToken(TokenNumber, cur.Lexeme())
	}

	// Leading-dot real: .5
	if r == '.' {
		next, ok := cur.PeekNextChar()
		if !ok || !isDigit(next) {
			return nil
		}
		cur.Mark()
		cur.NextChar()
		consumeDigits(cur)
		return tokenizer.NewToken(TokenNumber, cur.Lexeme())
	}

	if !isDigit(r) {
		return nil
	}

	cur.Mark()

	// 0x hex form. Only a lone leading zero takes the x; "10x" is the
	// number 10 followed by an identifier.
	if r == '0' {
		cur.NextChar()
		if x, ok := cur.PeekChar(); ok && (x == 'x' || x == 'X') {
			if h, ok := cur.PeekNextChar(); ok && isHexDigit(h) {
				cur.NextChar()
				consumeHexDigits(cur)
				return tokenizer.NewToken(TokenNumber, cur.Lexeme())
			}
		}
	}

	// Integer part, then an optional fraction. "12." is a valid real.
	consumeDigits(cur)
	if r, ok := cur.PeekChar(); ok && r == '.' {
		cur.NextChar()
		consumeDigits(cur)
	}
	return tokenizer.NewToken(TokenNumber, cur.Lexeme())
}

// matchRawcode matches a rawcode literal: characters between single quotes
// on one line.
// Matches: 'A', 'hfoo'
//
// Rawcodes are object-id integers; their length rules are semantic, so the
// matcher accepts any run up to the closing quote. A quote left open at a
// line break or end of input is claimed as an Error token: there is no
// rewind, and an unterminated rawcode cannot be anything else.
func matchRawcode(cur Cursor) *tokenizer.Token {
	r, ok := cur.PeekChar()
	if !ok || r != '\'' {
		return nil
	}

	cur.Mark()
	cur.NextChar()
	for {
		r, ok := cur.PeekChar()
		if !ok || r == '\n' || r == '\r' {
			return tokenizer.NewToken(TokenError, cur.Lexeme())
		}
		cur.NextChar()
		if r == '\'' {
			return tokenizer.NewToken(TokenRawcode, cur.Lexeme())
		}
	}
}

// operators lists the JASS operator and punctuation literals, two-character
// forms before their one-character prefixes so == is never split into = =.
var operators = []string{
	"==", "!=", "<=", ">=",
	"=", "<", ">", "+", "-", "*", "/",
	"(", ")", "[", "]", ",",
}

// matchOperator matches one operator from the table.
//
// A lone ! is not an operator in JASS (negation is the keyword "not"), so !
// matches only as part of != and otherwise falls through to the error path.
func matchOperator(cur Cursor) *tokenizer.Token {
	r, ok := cur.PeekChar()
	if !ok {
		return nil
	}

	for _, op := range operators {
		if rune(op[0]) != r {
			continue
		}
		if len(op) == 2 {
			next, ok := cur.PeekNextChar()
			if !ok || rune(op[1]) != next {
				continue
			}
			cur.Mark()
			cur.NextChar()
			cur.NextChar()
			return tokenizer.NewToken(TokenOperator, cur.Lexeme())
		}
		cur.Mark()
		cur.NextChar()
		return tokenizer.NewToken(TokenOperator, cur.Lexeme())
	}

	return nil
}

// Helper functions

// isDigit returns true if r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isHexDigit returns true if r is a hexadecimal digit (0-9, a-f, A-F).
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

// consumeDigits consumes a possibly empty run of decimal digits.
func consumeDigits(cur Cursor) {
	for {
		r, ok := cur.PeekChar()
		if !ok || !isDigit(r) {
			return
		}
		cur.NextChar()
	}
}

// consumeHexDigits consumes a possibly empty run of hex digits.
func consumeHexDigits(cur Cursor) {
	for {
		r, ok := cur.PeekChar()
		if !ok || !isHexDigit(r) {
			return
		}
		cur.NextChar()
	}
}
