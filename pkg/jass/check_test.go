package jass

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"trigger script", triggerScript},
		{"empty", ""},
		{"comment only", "// nothing to see"},
		{"closed block comment", "/* all\nof this\nis fine */"},
		{"empty string literal", `set s = ""`},
		{"rawcode", "set u = 'hfoo'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Check(tt.input))
		})
	}
}

func TestCheck_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unknown character",
			input: "#",
			want:  `invalid JASS: unexpected "#" at line 1, column 1`,
		},
		{
			name:  "unknown character mid line",
			input: "set x = @",
			want:  `invalid JASS: unexpected "@" at line 1, column 9`,
		},
		{
			name:  "lone bang on second line",
			input: "call f()\n  !",
			want:  `invalid JASS: unexpected "!" at line 2, column 3`,
		},
		{
			name:  "crlf counts one line break",
			input: "x\r\n#",
			want:  `invalid JASS: unexpected "#" at line 2, column 1`,
		},
		{
			name:  "unterminated rawcode",
			input: "'q",
			want:  `invalid JASS: unexpected "'q" at line 1, column 1`,
		},
		{
			name:  "unterminated string",
			input: `"open`,
			want:  `invalid JASS: unterminated string opened at line 1, column 1`,
		},
		{
			name:  "unterminated string after code",
			input: "call f(\"a\nx",
			want:  `invalid JASS: unterminated string opened at line 1, column 8`,
		},
		{
			name:  "unterminated block comment",
			input: "/* tick",
			want:  `invalid JASS: unterminated block comment opened at line 1, column 1`,
		},
		{
			name:  "unterminated block comment on second line",
			input: "call f()\n/* x\n",
			want:  `invalid JASS: unterminated block comment opened at line 2, column 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, Check(tt.input), tt.want)
		})
	}
}

func TestCheckReader(t *testing.T) {
	require.NoError(t, CheckReader(strings.NewReader(triggerScript)))
	require.EqualError(t,
		CheckReader(strings.NewReader(`"open`)),
		`invalid JASS: unterminated string opened at line 1, column 1`)
}
