package jass

import (
	"sort"
	"testing"

	"github.com/go-test/deep"
	"github.com/shapestone/shape-jass/pkg/scanner"
)

func TestLanguage_Name(t *testing.T) {
	if got := GetLanguage().Name(); got != "jass" {
		t.Errorf("Expected \"jass\", got %q", got)
	}

	var lang Language
	if got := lang.Name(); got != "jass" {
		t.Errorf("Expected the zero value to work, got %q", got)
	}
}

func TestLanguage_Version(t *testing.T) {
	if got := GetLanguage().Version(); got != 1 {
		t.Errorf("Expected version 1, got %d", got)
	}
}

func TestLanguage_ExternalTokens(t *testing.T) {
	expected := []string{
		"BlockCommentStart",
		"BlockCommentContent",
		"BlockCommentEnd",
		"LineComment",
		"StringStart",
		"StringContent",
		"StringEnd",
		"Identifier",
	}

	if diff := deep.Equal(GetLanguage().ExternalTokens(), expected); diff != nil {
		t.Error(diff)
	}
}

func TestLanguage_ReservedWords(t *testing.T) {
	words := GetLanguage().ReservedWords()

	if len(words) != 27 {
		t.Errorf("Expected 27 reserved words, got %d", len(words))
	}
	if !sort.StringsAreSorted(words) {
		t.Errorf("Expected sorted reserved words, got %v", words)
	}
	for _, word := range words {
		if !GetLanguage().IsReserved(word) {
			t.Errorf("Expected %q to be reserved", word)
		}
	}
}

func TestLanguage_IsReserved(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"set", true},
		{"endfunction", true},
		{"Set", false},
		{"null", false},
		{"integer", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := GetLanguage().IsReserved(tt.word); got != tt.want {
			t.Errorf("Expected IsReserved(%q) == %v, got %v", tt.word, tt.want, got)
		}
	}
}

// TestLanguage_NewScanner drives the scanner by hand the way an embedding
// host would: one cursor, one admissibility vector per call.
func TestLanguage_NewScanner(t *testing.T) {
	scan := GetLanguage().NewScanner()
	cur := scanner.NewSourceCursor("hero // note")

	cur.Mark()
	kind, ok := scan.Scan(cur, scanner.NewValidSymbols(scanner.Identifier, scanner.LineComment))
	if !ok || kind != scanner.Identifier {
		t.Fatalf("Expected an identifier, got %v (ok=%v)", kind, ok)
	}
	if got := string(cur.Lexeme()); got != "hero" {
		t.Errorf("Expected \"hero\", got %q", got)
	}
}
