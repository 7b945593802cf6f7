package jass

import (
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Source reconstructs the text a token stream was produced from. For any
// src, Source(Tokenize(src)) == src.
func Source(tokens []tokenizer.Token) string {
	var b strings.Builder
	for i := range tokens {
		b.WriteString(tokens[i].ValueString())
	}
	return b.String()
}
