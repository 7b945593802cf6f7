// Package jass tokenizes JASS, the scripting language of WarCraft III maps.
//
// The package works at three levels. Tokenize, Check, and Source operate on
// whole sources and cover the common cases. TokenizeStream and
// TokenizeReader do the same over character streams. GetLanguage exposes the
// language binding for hosts that drive the scanner themselves: the external
// token set, the reserved words, and a scanner factory.
//
// Tokenization is total: spans no rule claims come out as Error tokens and
// tokenizing never fails. Concatenating the values of the returned tokens
// reproduces the source exactly. Check is the strict form, reporting the
// first invalid span or unterminated construct as an error.
//
// # Example
//
//	tokens := jass.Tokenize(`call KillUnit(GetTriggerUnit()) // cleanup`)
//	for _, token := range tokens {
//		fmt.Printf("%s %q\n", token.Kind(), token.ValueString())
//	}
//
// # Thread Safety
//
// Tokenize, Check, and Source are safe for concurrent use, as is a shared
// Language. Streams and readers are single-consumer: give each tokenization
// its own.
package jass

import (
	"io"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-jass/internal/grammar"
	"github.com/shapestone/shape-jass/pkg/scanner"
)

// Tokenize splits src into JASS tokens.
//
// Every character of src lands in exactly one token, in source order, so the
// result reconstructs src (see Source). Invalid spans become Error tokens;
// use Check to reject them instead.
func Tokenize(src string) []tokenizer.Token {
	return grammar.NewDriver(scanner.NewSourceCursor(src), nil).Tokens()
}

// TokenizeStream tokenizes a character stream, such as the streams built by
// shape-core's tokenizer package. The stream is consumed to its end.
func TokenizeStream(src scanner.Stream) []tokenizer.Token {
	return grammar.NewDriver(scanner.NewStreamCursor(src), nil).Tokens()
}

// TokenizeReader tokenizes everything r yields. The reader is consumed to
// its end.
func TokenizeReader(r io.Reader) []tokenizer.Token {
	return TokenizeStream(tokenizer.NewStreamFromReader(r))
}
