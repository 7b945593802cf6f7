package jass

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-jass/internal/grammar"
	"github.com/shapestone/shape-jass/pkg/scanner"
)

// Check tokenizes src and reports the first problem: a span no lexical rule
// claims, or a block comment or string left open at end of input. A nil
// return means src tokenizes cleanly.
//
// Positions in the error are 1-based lines and columns, counted in
// characters, with \r\n as one line break.
func Check(src string) error {
	return check(grammar.NewDriver(scanner.NewSourceCursor(src), nil))
}

// CheckReader is Check over everything r yields.
func CheckReader(r io.Reader) error {
	return check(grammar.NewDriver(scanner.NewStreamCursor(tokenizer.NewStreamFromReader(r)), nil))
}

func check(d *grammar.Driver) error {
	line, column := 1, 1
	openLine, openColumn := 1, 1
	for {
		token, ok := d.Next()
		if !ok {
			break
		}
		switch token.Kind() {
		case KindError:
			return fmt.Errorf("invalid JASS: unexpected %q at line %d, column %d", token.ValueString(), line, column)
		case KindBlockCommentStart, KindStringStart:
			openLine, openColumn = line, column
		}
		line, column = advance(line, column, token.Value())
	}

	switch d.Mode() {
	case grammar.ModeBlockComment:
		return fmt.Errorf("invalid JASS: unterminated block comment opened at line %d, column %d", openLine, openColumn)
	case grammar.ModeString:
		return fmt.Errorf("invalid JASS: unterminated string opened at line %d, column %d", openLine, openColumn)
	}
	return nil
}

// advance moves a 1-based line and column position across value.
func advance(line, column int, value []rune) (int, int) {
	for i, r := range value {
		switch r {
		case '\n':
			line++
			column = 1
		case '\r':
			if i+1 < len(value) && value[i+1] == '\n' {
				continue
			}
			line++
			column = 1
		default:
			column++
		}
	}
	return line, column
}
