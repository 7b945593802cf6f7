package grammar

import (
	"testing"

	"github.com/shapestone/shape-jass/pkg/scanner"
)

// TestTokenKinds_MatchScannerNames pins the kind strings to the scanner's names
func TestTokenKinds_MatchScannerNames(t *testing.T) {
	pairs := []struct {
		kind scanner.TokenType
		want string
	}{
		{scanner.BlockCommentStart, TokenBlockCommentStart},
		{scanner.BlockCommentContent, TokenBlockCommentContent},
		{scanner.BlockCommentEnd, TokenBlockCommentEnd},
		{scanner.LineComment, TokenLineComment},
		{scanner.StringStart, TokenStringStart},
		{scanner.StringContent, TokenStringContent},
		{scanner.StringEnd, TokenStringEnd},
		{scanner.Identifier, TokenIdentifier},
	}

	for _, p := range pairs {
		if p.kind.String() != p.want {
			t.Errorf("Expected %v.String() == %q, got %q", int(p.kind), p.want, p.kind.String())
		}
	}
}
