// Package roman parses and evaluates Roman numeral strings in the range
// I..MMMCMXCIX (1..3999).
//
// 🚀 What is roman?
//
//	The public face of the module:
//	  • Validate — alphabet, repetition and range rules over a raw string
//	  • Parse    — Validate + digit-chain construction into a Numeral
//	  • Numeral  — immutable value: Int, Add, String, GoString, Equal
//
// ✨ Guarantees:
//
//   - Strict construction – every failure surfaces at Parse; a Numeral in
//     your hands is always a valid numeral
//   - Immutable – the wrapped string and its value never change
//   - No canonicalization – String returns your input verbatim, so
//     pattern-valid archaic spellings like "VV" survive a round trip
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/romanum/roman"
//
//	year, err := roman.Parse("MMXXVI")
//	if err != nil {
//	  // errors.Is: ErrUnknownDigit / ErrRepeatedDigit / ErrOutOfRange / ErrEmptyNumeral
//	}
//	fmt.Println(year.Int())          // 2026
//
//	sum, err := year.Add(roman.MustParse("IV"))
//	fmt.Println(sum)                 // 2030 — a plain int, not a Numeral
//
// Validation rules (checked in order):
//  1. Alphabet  — only I, V, X, L, C, D, M may appear (ErrUnknownDigit).
//  2. Repetition — no letter except M may occur four or more times in a
//     row (ErrRepeatedDigit).
//  3. Range — four or more consecutive M means 4000+, beyond the
//     supported ceiling of 3999 (ErrOutOfRange).
//
// Addition intentionally returns a plain int for both int and Numeral
// operands; re-rendering a sum as a numeral is out of scope.
//
// Performance: Validate is a fixed set of regexp scans, Parse and Int are
// O(n) in the numeral's length. Input length is effectively bounded by
// the rules themselves (the longest valid numeral, MMMDCCCLXXXVIII, has
// 15 letters).
package roman
