// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arc4random

// UniformUint32 returns a uniformly distributed random number less than
// upperBound, avoiding modulo bias.  It returns 0 when upperBound is less
// than two.
//
// Uniformity is achieved by drawing new random numbers until one falls
// outside [0, 2^32 % upperBound).  Every accepted draw lands in
// [2^32 % upperBound, 2^32), which maps back onto [0, upperBound) after
// reduction modulo upperBound with every residue equally likely.
func (p *Stream) UniformUint32(upperBound uint32) uint32 {
	if upperBound < 2 {
		return 0
	}

	min := uint32((1 << 32) % uint64(upperBound))

	// Each draw is accepted with probability greater than 0.5 even in the
	// worst case, so a re-roll is rare.
	for {
		r := p.Uint32()
		if r >= min {
			return r % upperBound
		}
	}
}
