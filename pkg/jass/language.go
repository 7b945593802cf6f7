package jass

import (
	"github.com/shapestone/shape-jass/internal/keywords"
	"github.com/shapestone/shape-jass/pkg/scanner"
)

// languageVersion counts incompatible changes to the external token set or
// the reserved word table.
const languageVersion = 1

// Language is the JASS language binding for hosts that drive tokenization
// themselves: the external token set in scanner order, the reserved word
// table, and a scanner factory. A Language is stateless; the zero value and
// GetLanguage are equivalent.
type Language struct{}

// GetLanguage returns the JASS language binding.
func GetLanguage() *Language {
	return &Language{}
}

// Name returns the language name.
func (*Language) Name() string {
	return "jass"
}

// Version reports the binding version. It changes when the external token
// set or the reserved word table changes incompatibly.
func (*Language) Version() int {
	return languageVersion
}

// ExternalTokens lists the scanner's token kinds. The index of each name is
// its scanner.TokenType value, which is the layout hosts must use for the
// admissibility vector they pass to Scan.
func (*Language) ExternalTokens() []string {
	out := make([]string, 0, scanner.TokenCount)
	for kind := scanner.TokenType(0); kind < scanner.TokenCount; kind++ {
		out = append(out, kind.String())
	}
	return out
}

// ReservedWords returns the reserved words of the language, sorted.
func (*Language) ReservedWords() []string {
	return keywords.Words()
}

// IsReserved reports whether word is reserved and therefore never an
// identifier.
func (*Language) IsReserved(word string) bool {
	return keywords.Reserved(word)
}

// NewScanner creates a scanner with default limits for hosts that run the
// scan loop themselves.
func (*Language) NewScanner() *scanner.Scanner {
	return scanner.New()
}
