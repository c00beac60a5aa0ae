package roman

import (
	"fmt"

	"github.com/katalvlaran/romanum/digit"
)

// Numeral is an immutable, validated Roman numeral.
//
// It wraps the original input string and the digit chain derived from it;
// neither changes after Parse. The zero value behaves as an empty numeral
// of value 0 — obtain real numerals through Parse or MustParse.
type Numeral struct {
	text string
	head *digit.Node
}

// Parse validates s and builds its digit chain.
//
// No partially constructed numeral ever escapes: every failure is
// reported here, and a returned Numeral never fails to evaluate.
//
// Errors:
//   - ErrEmptyNumeral  — s is empty.
//   - ErrUnknownDigit  — s contains a character outside I,V,X,L,C,D,M.
//   - ErrRepeatedDigit — a non-M letter occurs four times in a row.
//   - ErrOutOfRange    — s encodes 4000 or greater.
//
// Complexity: O(n)
func Parse(s string) (Numeral, error) {
	if err := Validate(s); err != nil {
		return Numeral{}, err
	}
	head, err := digit.Build(s)
	if err != nil {
		// Unreachable after Validate; the builder keeps its own alphabet
		// guard as defense in depth.
		return Numeral{}, err
	}

	return Numeral{text: s, head: head}, nil
}

// MustParse is Parse that panics on invalid input. Intended for fixtures
// and package-level constants where the text is known-good.
func MustParse(s string) Numeral {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// Int returns the numeral's integer value, always in 0..3999 (0 only for
// the zero-value Numeral). Never fails on a parsed numeral.
//
// Complexity: O(n)
func (n Numeral) Int() int {
	return n.head.Int()
}

// Add returns the sum of n and other as a plain int.
//
// other may be an int or another Numeral; the sum of two Numerals is
// deliberately an int rather than a new Numeral, since 3999+3999 exceeds
// the representable range and no canonical re-rendering is performed.
//
// Errors:
//   - ErrUnsupportedOperand — other is neither an int nor a Numeral,
//     wrapped with the operand's dynamic type.
func (n Numeral) Add(other any) (int, error) {
	switch o := other.(type) {
	case int:
		return n.Int() + o, nil
	case Numeral:
		return n.Int() + o.Int(), nil
	default:
		return 0, fmt.Errorf("%T: %w", other, ErrUnsupportedOperand)
	}
}

// String returns the original validated string verbatim. Numerals are
// never re-synthesized into canonical form: if the input was a
// pattern-valid archaic spelling such as "VV", that exact text is what
// String returns.
func (n Numeral) String() string {
	return n.text
}

// GoString returns a debug representation including the original string,
// e.g. roman.MustParse("XIV").
func (n Numeral) GoString() string {
	return fmt.Sprintf("roman.MustParse(%q)", n.text)
}

// Equal reports whether n and other denote the same integer value.
// Equality is defined over value, not spelling: MustParse("VV") equals
// MustParse("X") even though their String forms differ.
func (n Numeral) Equal(other Numeral) bool {
	return n.Int() == other.Int()
}
