//go:build mage

package main

import (
	"fmt"
	"strconv"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type (
	// Test is the Mage namespace for testing targets.
	Test mg.Namespace
)

// Runs unit tests for all packages.
func (Test) Unit() error {
	return sh.RunV("go", "test", "./...")
}

// Runs unit tests with the race detector and coverage.
func (Test) Cover() error {
	return sh.RunV("go", "test", "-race", "-coverprofile=coverage.out", "./...")
}

// Runs benchmarks for all packages.
func (Test) Bench() error {
	return sh.RunV("go", "test", "-bench=.", "-benchmem", "-run=^$", "./...")
}

// Runs the tokenizer fuzz target for the given number of minutes
// (default 1).
func (Test) Fuzz(fuzzMinutes string) error {
	seconds, err := parseMinutesToSeconds(fuzzMinutes)
	if err != nil {
		return err
	}
	return sh.RunV("go", "test", "./pkg/jass/",
		"-fuzz=FuzzTokenize", "-run=FuzzTokenize",
		fmt.Sprintf("-fuzztime=%ds", seconds))
}

// Checks formatting and vets all packages.
func Lint() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("gofmt needed:\n%s", out)
	}
	return sh.RunV("go", "vet", "./...")
}

// Tokenizes a corpus of JASS scripts and verifies reconstruction.
func Corpus(dir string) error {
	return sh.RunV("go", "run", "./scripts/tokenize_corpus", dir)
}

// parseMinutesToSeconds converts a duration in minutes to seconds.
func parseMinutesToSeconds(minutes string) (int, error) {
	if minutes == "" {
		return 60, nil
	}

	value, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes format: %w", err)
	}

	return value * 60, nil
}
