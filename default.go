// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arc4random

import "io"

// globalStream is the module-scoped default stream backing the package
// level functions.  It is created lazily: the zero value keys itself from
// the entropy device on first use, so merely importing the package touches
// no device.
var globalStream Stream

// Reader returns the default stream as an io.Reader.  Like every other part
// of this package, the returned reader is not safe for concurrent access.
func Reader() io.Reader {
	return &globalStream
}

// Stir unconditionally rekeys the default stream from the entropy device.
func Stir() {
	globalStream.Stir()
}

// AddRandom folds caller-supplied bytes into the default stream.
func AddRandom(data []byte) {
	globalStream.AddRandom(data)
}

// Uint32 returns the next 32-bit word from the default stream.
func Uint32() uint32 {
	return globalStream.Uint32()
}

// Uint64 returns the next 64 bits from the default stream.
func Uint64() uint64 {
	return globalStream.Uint64()
}

// Read fills b with random bytes from the default stream.
func Read(b []byte) {
	globalStream.Read(b)
}

// UniformUint32 returns a uniform random integer in [0, upperBound) from
// the default stream, or 0 when upperBound is less than two.
func UniformUint32(upperBound uint32) uint32 {
	return globalStream.UniformUint32(upperBound)
}

// Close releases the default stream's entropy device handle.  The next
// randomness-producing call reacquires it.
func Close() error {
	return globalStream.Close()
}
