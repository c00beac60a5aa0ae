package roman_test

import (
	"testing"

	"github.com/katalvlaran/romanum/roman"
)

// benchmarkParse is a helper that parses s in a loop, failing fast on
// unexpected errors and keeping the result alive.
func benchmarkParse(b *testing.B, s string) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, err := roman.Parse(s)
		if err != nil {
			b.Fatalf("Parse(%q) failed: %v", s, err)
		}
		_ = n
	}
}

// BenchmarkParse_Short benchmarks a single subtractive pair.
func BenchmarkParse_Short(b *testing.B) {
	benchmarkParse(b, "IV")
}

// BenchmarkParse_Max benchmarks the maximum-value numeral.
func BenchmarkParse_Max(b *testing.B) {
	benchmarkParse(b, "MMMCMXCIX")
}

// BenchmarkParse_Longest benchmarks the longest valid numeral (15 letters).
func BenchmarkParse_Longest(b *testing.B) {
	benchmarkParse(b, "MMMDCCCLXXXVIII")
}

// BenchmarkNumeral_Int benchmarks evaluation alone, construction hoisted
// out of the loop.
func BenchmarkNumeral_Int(b *testing.B) {
	n := roman.MustParse("MMMDCCCLXXXVIII")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Int()
	}
}

// BenchmarkValidate_Reject benchmarks the early-rejection path.
func BenchmarkValidate_Reject(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if err := roman.Validate("MMMM"); err == nil {
			b.Fatal("MMMM must not validate")
		}
	}
}
