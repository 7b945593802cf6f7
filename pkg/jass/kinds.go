package jass

import "github.com/shapestone/shape-jass/internal/grammar"

// Token kind strings, as reported by Token.Kind on the tokens Tokenize
// returns.
//
// The first eight kinds are produced by the context-sensitive scanner; their
// order matches Language.ExternalTokens. The rest are grammar literals
// matched by the tokenizer itself.
const (
	KindBlockCommentStart   = grammar.TokenBlockCommentStart
	KindBlockCommentContent = grammar.TokenBlockCommentContent
	KindBlockCommentEnd     = grammar.TokenBlockCommentEnd
	KindLineComment         = grammar.TokenLineComment
	KindStringStart         = grammar.TokenStringStart
	KindStringContent       = grammar.TokenStringContent
	KindStringEnd           = grammar.TokenStringEnd
	KindIdentifier          = grammar.TokenIdentifier

	KindKeyword    = grammar.TokenKeyword
	KindOperator   = grammar.TokenOperator
	KindNumber     = grammar.TokenNumber
	KindRawcode    = grammar.TokenRawcode
	KindWhitespace = grammar.TokenWhitespace
	KindNewline    = grammar.TokenNewline
	KindError      = grammar.TokenError
)
