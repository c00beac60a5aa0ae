// Package digit: alphabet, magnitudes and the subtractive-partner table.
//
// This file declares Letter, its fixed weights, the partner table driving
// sign flips, and the package sentinel error.
package digit

import "errors"

// ErrUnknownDigit indicates a rune outside the Roman alphabet.
// The message carries the allowed digit set for diagnostics; wrap with
// fmt.Errorf("%q: %w", r, ErrUnknownDigit) to name the offending rune.
var ErrUnknownDigit = errors.New("digit: unknown roman digit, allowed digits are I, V, X, L, C, D, M")

// Letter is one of the seven Roman digits. Its underlying value is the
// rune itself, so conversion from input text is a plain cast followed by
// a Valid check.
type Letter rune

const (
	// I weighs 1.
	I Letter = 'I'

	// V weighs 5.
	V Letter = 'V'

	// X weighs 10.
	X Letter = 'X'

	// L weighs 50.
	L Letter = 'L'

	// C weighs 100.
	C Letter = 'C'

	// D weighs 500.
	D Letter = 'D'

	// M weighs 1000.
	M Letter = 'M'
)

// magnitudes maps each Letter to its fixed integer weight.
var magnitudes = map[Letter]int{
	I: 1,
	V: 5,
	X: 10,
	L: 50,
	C: 100,
	D: 500,
	M: 1000,
}

// subtractivePartners maps each subtractive-capable letter to the two
// larger letters that flip its sign when one of them immediately follows.
// V, L, D and M never act as the smaller member of a subtractive pair,
// so they do not appear as keys.
var subtractivePartners = map[Letter][2]Letter{
	I: {V, X},
	X: {L, C},
	C: {D, M},
}

// Alphabet returns the seven Roman digits in ascending magnitude order.
// The returned slice is a fresh copy; callers may mutate it freely.
func Alphabet() []Letter {
	return []Letter{I, V, X, L, C, D, M}
}

// Valid reports whether l is one of the seven Roman digits.
func (l Letter) Valid() bool {
	_, ok := magnitudes[l]

	return ok
}

// Magnitude returns the fixed integer weight of l (I=1 … M=1000),
// or 0 if l is not a Roman digit.
func (l Letter) Magnitude() int {
	return magnitudes[l]
}

// subtracts reports whether l contributes negatively when immediately
// followed by next. Only I, X and C can subtract, and only against their
// two designated partners.
func (l Letter) subtracts(next Letter) bool {
	p, ok := subtractivePartners[l]

	return ok && (next == p[0] || next == p[1])
}
