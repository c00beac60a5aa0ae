// Package romanum parses, validates and evaluates Roman numeral strings —
// from single digits to the full historical range I..MMMCMXCIX.
//
// 🚀 What is romanum?
//
//	A small, strict library that brings together:
//		• Validation: repetition rule (≤3 of any letter but M) & 3999 ceiling
//		• Digit chains: typed letters linked right-to-left for subtractive pairs
//		• Evaluation: IV=4, IX=9, XL=40, XC=90, CD=400, CM=900 — and everything between
//		• Arithmetic: add two numerals, or a numeral and a plain int
//
// ✨ Why choose romanum?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Strict by default – malformed input never yields a value
//   - Pure Go – no cgo, no hidden deps
//   - Immutable – a parsed Numeral never changes under you
//
// Under the hood, everything is organized under two subpackages:
//
//	digit/ — Letter alphabet, magnitudes, the linked digit chain & its evaluation
//	roman/ — the Validator and the public Numeral wrapper (Parse, Int, Add, …)
//
// Quick example:
//
//	n, err := roman.Parse("MMXXVI")
//	if err != nil {
//	  // ErrUnknownDigit, ErrRepeatedDigit or ErrOutOfRange
//	}
//	fmt.Println(n.Int()) // 2026
//
// Dive into README.md and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/romanum
package romanum
