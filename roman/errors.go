// Package roman: sentinel error set.
// All public failures are these sentinels; tests and callers match them
// via errors.Is. Context (the offending rune or operand type) is added by
// wrapping with fmt.Errorf("...: %w", ErrX) at the failure site.
package roman

import "errors"

var (
	// ErrUnknownDigit indicates a character outside the Roman alphabet.
	// The message carries the allowed digit set for diagnostics.
	ErrUnknownDigit = errors.New("roman: unknown digit, allowed digits are I, V, X, L, C, D, M")

	// ErrRepeatedDigit indicates a letter other than M occurring four or
	// more times consecutively.
	ErrRepeatedDigit = errors.New("roman: digits other than M cannot be used continuously more than three times")

	// ErrOutOfRange indicates a numeral of 4000 or greater, detected as
	// four or more consecutive M.
	ErrOutOfRange = errors.New("roman: numerals greater than 3999 are not supported")

	// ErrEmptyNumeral indicates an empty input string; values below 1
	// have no Roman spelling.
	ErrEmptyNumeral = errors.New("roman: empty numeral")

	// ErrUnsupportedOperand indicates Add was called with an operand that
	// is neither an int nor a Numeral.
	ErrUnsupportedOperand = errors.New("roman: unsupported operand, want int or Numeral")
)
