// Package digit models the seven Roman digits and the linked chain a
// numeral decomposes into.
//
// 🚀 What is digit?
//
//	The evaluation core under roman.Numeral:
//	  • Letter — typed alphabet I, V, X, L, C, D, M with fixed magnitudes
//	  • Node   — one letter occurrence, linked to the digit on its right
//	  • Build  — right-to-left chain construction from a raw string
//	  • Int    — recursive evaluation honoring subtractive pairs
//
// Subtractive notation is decided locally: a node contributes the negative
// of its magnitude exactly when its letter is subtractive-capable (I, X, C)
// and the letter immediately to its right is one of its two larger
// partners (I→V,X; X→L,C; C→D,M). All other nodes contribute positively.
//
// ⚙️ Usage:
//
//	head, err := digit.Build("XIV")
//	if err != nil {
//	  // digit.ErrUnknownDigit
//	}
//	fmt.Println(head.Int()) // 14
//
// The package performs no repetition or range validation — that belongs to
// the roman package, which rejects malformed input before any chain is
// built. Build only guards the alphabet.
//
// Performance:
//
//   - Build: O(n) time, O(n) memory for a string of n runes
//   - Int:   O(n) time, O(n) stack (one frame per node)
package digit
