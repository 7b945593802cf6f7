// Package grammar carries the JASS grammar data and the reference driver
// that exercises the scanner: mode-driven admissibility, grammar-literal
// matching for everything the scanner leaves to the host, and the
// re-tokenization of spans the scanner consumed but declined.
package grammar

// Token kind strings for the streams the driver emits.
//
// The first group names the scanner's own kinds and must match
// scanner.TokenType.String(); tokens_test.go pins that down. The second
// group covers the grammar-literal side the driver matches itself.
const (
	TokenBlockCommentStart   = "BlockCommentStart"   // /*
	TokenBlockCommentContent = "BlockCommentContent" // text between /* and */
	TokenBlockCommentEnd     = "BlockCommentEnd"     // */
	TokenLineComment         = "LineComment"         // // ...
	TokenStringStart         = "StringStart"         // opening "
	TokenStringContent       = "StringContent"       // text between the quotes
	TokenStringEnd           = "StringEnd"           // closing "
	TokenIdentifier          = "Identifier"          // myHero, GetTriggerUnit

	TokenKeyword    = "Keyword"    // set, call, endfunction, ...
	TokenOperator   = "Operator"   // == != <= >= = < > + - * / ( ) [ ] ,
	TokenNumber     = "Number"     // 123, 3.14, .5, 0x1F, $DEAD, 077
	TokenRawcode    = "Rawcode"    // 'A', 'hfoo'
	TokenWhitespace = "Whitespace" // spaces and tabs
	TokenNewline    = "Newline"    // \n, \r\n, or bare \r
	TokenError      = "Error"      // a span no rule claims
)
