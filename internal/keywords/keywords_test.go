package keywords

import (
	"sort"
	"testing"
)

// TestReserved_AllWords checks every word in the table is classified as reserved
func TestReserved_AllWords(t *testing.T) {
	for _, word := range Words() {
		if !Reserved(word) {
			t.Errorf("Expected %q to be reserved", word)
		}
		if !ReservedRunes([]rune(word)) {
			t.Errorf("Expected %q to be reserved as runes", word)
		}
	}
}

// TestReserved_NonKeywords checks near-misses and non-keywords are rejected
func TestReserved_NonKeywords(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{"empty", ""},
		{"single char", "i"},
		{"case sensitive", "If"},
		{"upper case", "SET"},
		{"keyword prefix", "ret"},
		{"keyword with suffix", "returnsX"},
		{"keyword with underscore", "set_"},
		{"longest plus one", "endfunctionX"},
		{"over max length", "averylongname"},
		{"identifier", "myVariable"},
		{"underscore led", "_set"},
		{"digits", "123"},
		{"almost elseif", "elseIf"},
		{"non ascii", "sét"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Reserved(tt.word) {
				t.Errorf("Expected %q not to be reserved", tt.word)
			}
			if ReservedRunes([]rune(tt.word)) {
				t.Errorf("Expected %q not to be reserved as runes", tt.word)
			}
		})
	}
}

// TestReserved_Idempotent checks classification is a pure function
func TestReserved_Idempotent(t *testing.T) {
	inputs := []string{"set", "notakeyword", "endfunction", ""}
	for _, word := range inputs {
		first := Reserved(word)
		for i := 0; i < 3; i++ {
			if Reserved(word) != first {
				t.Fatalf("Reserved(%q) changed answer between calls", word)
			}
		}
	}
}

// TestWords_TableShape checks the table's size, order, and length bounds
func TestWords_TableShape(t *testing.T) {
	ws := Words()

	if len(ws) != 27 {
		t.Errorf("Expected 27 reserved words, got %d", len(ws))
	}
	if !sort.StringsAreSorted(ws) {
		t.Error("Expected Words() to be sorted")
	}
	for _, word := range ws {
		if len(word) < MinLength || len(word) > MaxLength {
			t.Errorf("Word %q is outside length bounds [%d, %d]", word, MinLength, MaxLength)
		}
	}
}

// TestWords_ReturnsCopy checks callers cannot corrupt the shared table
func TestWords_ReturnsCopy(t *testing.T) {
	ws := Words()
	ws[0] = "corrupted"

	if !Reserved("and") {
		t.Error("Mutating the Words() result must not affect Reserved")
	}
	if Words()[0] != "and" {
		t.Error("Expected a fresh copy from every Words() call")
	}
}

func BenchmarkReserved(b *testing.B) {
	inputs := []string{"set", "endfunction", "myVariable", "x", "GetTriggerUnit"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Reserved(inputs[i%len(inputs)])
	}
}

func BenchmarkReservedRunes(b *testing.B) {
	inputs := [][]rune{
		[]rune("set"), []rune("endfunction"), []rune("myVariable"),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ReservedRunes(inputs[i%len(inputs)])
	}
}
