// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arc4random

import (
	"testing"
)

// readBenchTest describes tests that are used for the read benchmarks.
type readBenchTest struct {
	name string // benchmark description
	n    int    // number of bytes to read
}

// makeReadBenches returns a slice of tests that consist of a specific
// number of bytes to read for use in the read benchmarks.
func makeReadBenches() []readBenchTest {
	return []readBenchTest{
		{name: "4b", n: 4},
		{name: "8b", n: 8},
		{name: "32b", n: 32},
		{name: "512b", n: 512},
		{name: "1KiB", n: 1024},
		{name: "4KiB", n: 4096},
	}
}

// BenchmarkRead benchmarks filling buffers of various sizes from a stream.
func BenchmarkRead(b *testing.B) {
	benches := makeReadBenches()
	var p Stream
	for benchIdx := range benches {
		bench := benches[benchIdx]
		b.Run(bench.name, func(b *testing.B) {
			buf := make([]byte, bench.n)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				p.Read(buf)
			}
		})
	}
	p.Close()
}

// BenchmarkUint32 benchmarks producing 32-bit words.
func BenchmarkUint32(b *testing.B) {
	var p Stream
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Uint32()
	}
	p.Close()
}

// BenchmarkUniformUint32 benchmarks the unbiased reduction for a bound that
// forces the full rejection arithmetic.
func BenchmarkUniformUint32(b *testing.B) {
	var p Stream
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.UniformUint32(1000)
	}
	p.Close()
}
