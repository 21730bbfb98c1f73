package orbit_test

import (
	"testing"

	"github.com/katalvlaran/collatz/orbit"
	"github.com/katalvlaran/collatz/rules"
)

// BenchmarkSimulate27 measures the longest small-start orbit (112 values).
func BenchmarkSimulate27(b *testing.B) {
	r := rules.NewM3A1()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := orbit.Simulate(27, r, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateBatch1000 measures a full batch including the one-time
// classification state build.
func BenchmarkGenerateBatch1000(b *testing.B) {
	r := rules.NewM3A1()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := orbit.GenerateBatch(1000, r); err != nil {
			b.Fatal(err)
		}
	}
}
