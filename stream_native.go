// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build openbsd || windows

package arc4random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
)

// Stream reads directly from crypto/rand on platforms where the operating
// system already supplies an arc4random-family userspace generator
// (OpenBSD) or exposes no entropy device paths to manage (Windows).  The
// keystream core is absent on these platforms; only the API surface
// remains.
type Stream struct{}

// Stir is a no-op; the platform generator manages its own reseeding.
func (p *Stream) Stir() {}

// AddRandom is a no-op; the platform generator does not accept caller
// entropy.
func (p *Stream) AddRandom(data []byte) {}

// Uint32 returns a random 32-bit word from the platform generator.
func (p *Stream) Uint32() uint32 {
	var b [4]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint32(b[:])
}

// Uint64 returns 64 random bits from the platform generator.
func (p *Stream) Uint64() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b[:])
}

// Read fills s from the platform generator and never returns an error in
// the normal path.
func (p *Stream) Read(s []byte) (int, error) {
	if _, err := cryptorand.Read(s); err != nil {
		panic(err)
	}
	return len(s), nil
}

// Close reports success; there is no device handle to release.
func (p *Stream) Close() error {
	return nil
}
