// Package roman - validation of raw numeral strings.
//
// This file owns the three pattern rules applied before any chain is
// built. Checks are pure substring searches over the fixed alphabet;
// no allocation beyond the one-time compiled patterns.
package roman

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/romanum/digit"
)

// maxRepeat is the first banned run length: four consecutive occurrences
// of the same letter (M excluded from the repetition rule; four M is the
// range rule instead).
const maxRepeat = 4

var (
	// unknownPattern matches the first rune outside the Roman alphabet.
	unknownPattern = regexp.MustCompile(`[^IVXLCDM]`)

	// repeatPattern matches four consecutive occurrences of any letter
	// except M, anywhere in the string.
	repeatPattern = regexp.MustCompile(buildRepeatPattern())

	// rangePattern matches four consecutive M, the de-facto 4000+ marker.
	rangePattern = regexp.MustCompile(fmt.Sprintf("M{%d}", maxRepeat))
)

// buildRepeatPattern assembles the repetition rule from the alphabet so
// the banned set stays in lockstep with digit.Alphabet: one "L{4}"-style
// alternative per letter except M.
func buildRepeatPattern() string {
	parts := make([]string, 0, 6)
	for _, l := range digit.Alphabet() {
		if l == digit.M {
			continue
		}
		parts = append(parts, fmt.Sprintf("%c{%d}", l, maxRepeat))
	}

	return strings.Join(parts, "|")
}

// Validate checks a raw string against the numeral rules without building
// anything. Rules are applied in a fixed order, so input violating
// several reports the first:
//
//  1. non-empty
//  2. alphabet only (ErrUnknownDigit, wrapped with the offending rune)
//  3. repetition: no non-M letter four times in a row (ErrRepeatedDigit)
//  4. range: no four consecutive M (ErrOutOfRange)
//
// A nil return means s is safe to hand to the digit chain builder.
//
// Complexity: O(n) time over a handful of fixed patterns.
func Validate(s string) error {
	if s == "" {
		return ErrEmptyNumeral
	}
	if bad := unknownPattern.FindString(s); bad != "" {
		return fmt.Errorf("%q: %w", bad, ErrUnknownDigit)
	}
	if repeatPattern.MatchString(s) {
		return ErrRepeatedDigit
	}
	if rangePattern.MatchString(s) {
		return ErrOutOfRange
	}

	return nil
}
