package digit

import "fmt"

// Node is one letter occurrence inside a numeral.
//
// A chain is built back-to-front: each Node's next points at the digit
// immediately to its right in the original string, and the node returned
// by Build is the numeral's first character. The chain is nil-terminated,
// acyclic, and never mutated after construction.
type Node struct {
	letter Letter
	next   *Node
}

// New constructs a single chain node for r, linking next as the digit
// immediately to its right (nil for the last digit of a numeral).
//
// Errors:
//   - ErrUnknownDigit — r is not one of the seven Roman digits.
//
// Complexity: O(1)
func New(r rune, next *Node) (*Node, error) {
	l := Letter(r)
	if !l.Valid() {
		return nil, fmt.Errorf("%q: %w", r, ErrUnknownDigit)
	}

	return &Node{letter: l, next: next}, nil
}

// Build walks s from its last rune to its first and returns the chain's
// entry point — the node for the first character of s. An empty string
// yields a nil head and no error; rejecting empty numerals is the
// caller's concern.
//
// The roman package validates input before calling Build, so the alphabet
// guard here is defense in depth rather than the primary gate.
//
// Errors:
//   - ErrUnknownDigit — s contains a rune outside the Roman alphabet.
//
// Complexity: O(n) time, O(n) memory
func Build(s string) (*Node, error) {
	var (
		prev *Node
		err  error
	)
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if prev, err = New(runes[i], prev); err != nil {
			return nil, err
		}
	}

	return prev, nil
}

// Int evaluates the chain starting at n: the node's own contribution plus
// the value of everything to its right. A nil node evaluates to 0, so the
// recursion needs no explicit base-case branch at call sites.
//
// Complexity: O(n) time, O(n) stack
func (n *Node) Int() int {
	if n == nil {
		return 0
	}

	return n.selfInt() + n.next.Int()
}

// selfInt returns this node's own contribution: its magnitude, negated
// when the letter subtracts against the digit on its right.
func (n *Node) selfInt() int {
	m := n.letter.Magnitude()
	if n.next != nil && n.letter.subtracts(n.next.letter) {
		return -m
	}

	return m
}

// Letter returns the Roman digit this node represents.
func (n *Node) Letter() Letter { return n.letter }

// Next returns the node for the digit immediately to the right,
// or nil at the end of the chain.
func (n *Node) Next() *Node { return n.next }

// Magnitude returns the fixed weight of this node's letter, ignoring any
// subtractive relationship with its neighbor.
func (n *Node) Magnitude() int { return n.letter.Magnitude() }
