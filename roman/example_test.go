package roman_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/romanum/roman"
)

// ExampleParse demonstrates the basic parse-then-evaluate flow.
func ExampleParse() {
	n, err := roman.Parse("MMCCLXIII")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(n.Int())
	// Output:
	// 2263
}

// ExampleParse_invalid demonstrates sentinel matching on malformed input.
func ExampleParse_invalid() {
	for _, s := range []string{"XXXX", "MMMM", "R"} {
		_, err := roman.Parse(s)
		switch {
		case errors.Is(err, roman.ErrRepeatedDigit):
			fmt.Println(s, "-> repeated digit")
		case errors.Is(err, roman.ErrOutOfRange):
			fmt.Println(s, "-> out of range")
		case errors.Is(err, roman.ErrUnknownDigit):
			fmt.Println(s, "-> unknown digit")
		}
	}
	// Output:
	// XXXX -> repeated digit
	// MMMM -> out of range
	// R -> unknown digit
}

// ExampleNumeral_Add demonstrates both operand kinds and the plain-int
// result.
func ExampleNumeral_Add() {
	a := roman.MustParse("MMCCLXIII")
	b := roman.MustParse("CCXLIV")

	sum, _ := a.Add(b)
	fmt.Println(sum)

	sum, _ = a.Add(7)
	fmt.Println(sum)
	// Output:
	// 2507
	// 2270
}

// ExampleNumeral_String demonstrates the verbatim round trip: no
// canonicalization is performed on pattern-valid archaic spellings.
func ExampleNumeral_String() {
	n := roman.MustParse("VV")
	fmt.Println(n.String(), "=", n.Int())
	// Output:
	// VV = 10
}
