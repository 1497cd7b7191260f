// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !openbsd && !windows

package arc4random

import (
	"io"
	"os"

	"github.com/lk29/arc4random/internal/saferead"
)

const (
	// rekeyInterval is the number of output bytes produced before the
	// keystream is forcibly rekeyed from the entropy device.
	rekeyInterval = 1600000

	// stirReadSize is the number of bytes read from the entropy device on
	// each reseed.
	stirReadSize = 128

	// keyDropBytes is the number of early keystream bytes thrown away
	// after every rekey.  The early arc4 keystream leaks information
	// about the key schedule and must never reach callers.
	keyDropBytes = 256
)

// getpid reports the current process identifier.  It is a variable so fork
// detection can be exercised from tests.
var getpid = os.Getpid

// Stream is a pseudorandom number generator seeded from the operating
// system entropy device.  The zero value is valid and keys itself from the
// device on first use.
//
// Stream methods are not safe for concurrent access.  Callers that share a
// Stream across goroutines must serialize access externally.
type Stream struct {
	s           [256]uint8
	i, j        uint8
	initialized bool
	count       int
	stirPid     int
	entropy     io.ReadCloser
}

// prime fills the substitution table with the identity permutation and
// resets the indices.  Priming alone does not produce a random keystream; a
// stir must follow before any output is returned.
func (p *Stream) prime() {
	for n := range p.s {
		p.s[n] = uint8(n)
	}
	p.i = 0
	p.j = 0
}

// addRandom runs the arc4 key schedule over data, mutating the substitution
// table in place.  The mix is deterministic in data and the prior state.
// data must not be empty.
func (p *Stream) addRandom(data []byte) {
	p.i--
	for n := 0; n < 256; n++ {
		p.i++
		si := p.s[p.i]
		p.j += si + data[n%len(data)]
		p.s[p.i] = p.s[p.j]
		p.s[p.j] = si
	}
	p.j = p.i
}

// getbyte produces the next keystream byte.  All index arithmetic wraps
// modulo 256 through the uint8 type.
func (p *Stream) getbyte() uint8 {
	p.i++
	si := p.s[p.i]
	p.j += si
	sj := p.s[p.j]
	p.s[p.i] = sj
	p.s[p.j] = si
	return p.s[si+sj]
}

// getword produces the next 32-bit keystream word, most significant byte
// first.
func (p *Stream) getword() uint32 {
	val := uint32(p.getbyte()) << 24
	val |= uint32(p.getbyte()) << 16
	val |= uint32(p.getbyte()) << 8
	val |= uint32(p.getbyte())
	return val
}

// stir rekeys the stream with fresh entropy from the device, discards the
// early keystream, and rearms the rekey counter.  The device handle is
// acquired here when none is held, either because the stream is brand new
// or because Close released it.
//
// Panics when no entropy device can be opened.
func (p *Stream) stir() {
	if !p.initialized {
		p.prime()
		p.initialized = true
	}
	if p.entropy == nil {
		dev, err := openDevice()
		if err != nil {
			log.Criticalf("Unable to open an entropy device: %v", err)
			panic(err)
		}
		p.entropy = dev
	}

	var rnd [stirReadSize]byte
	if err := saferead.ReadFull(p.entropy, rnd[:]); err != nil {
		log.Errorf("Short entropy read during rekey: %v", err)
	}
	p.addRandom(rnd[:])

	// Discard early keystream, as per recommendations in:
	// http://www.wisdom.weizmann.ac.il/~itsik/RC4/Papers/Rc4_ksa.ps
	for n := 0; n < keyDropBytes; n++ {
		p.getbyte()
	}

	p.count = rekeyInterval
	log.Tracef("Keystream rekeyed from entropy device")
}

// stirIfNeeded rekeys when the output counter is exhausted, the stream has
// never been keyed, the process identifier changed since the last rekey, or
// Close released the device handle.  The pid check keeps a forked child
// from replaying the parent's stream; the handle check reacquires the
// device on the first randomness call after a Close.
func (p *Stream) stirIfNeeded() {
	pid := getpid()
	if p.count <= 0 || !p.initialized || p.stirPid != pid || p.entropy == nil {
		p.stirPid = pid
		p.stir()
	}
}

// Stir unconditionally rekeys the stream from the entropy device.
func (p *Stream) Stir() {
	p.stir()
}

// AddRandom folds caller-supplied bytes into the keystream state.  A stream
// that has never been keyed is keyed from the entropy device first, so the
// resulting keystream is never derived solely from data.
func (p *Stream) AddRandom(data []byte) {
	if !p.initialized {
		p.stir()
	}
	if len(data) == 0 {
		return
	}
	p.addRandom(data)
}

// Uint32 returns the next 32-bit word of the keystream, rekeying first when
// the reseed policy requires it.
func (p *Stream) Uint32() uint32 {
	p.count -= 4
	p.stirIfNeeded()
	return p.getword()
}

// Uint64 returns the next 64 bits of the keystream, most significant word
// first.
func (p *Stream) Uint64() uint64 {
	return uint64(p.Uint32())<<32 | uint64(p.Uint32())
}

// Read fills s with keystream bytes and never returns an error.  A single
// large read may cross one or more rekey boundaries.  Callers must treat s
// as an opaque bag of random bytes with no positional correlations.
//
// Read implements io.Reader.
func (p *Stream) Read(s []byte) (int, error) {
	p.stirIfNeeded()
	for n := range s {
		p.count--
		if p.count <= 0 {
			p.stir()
		}
		s[n] = p.getbyte()
	}
	return len(s), nil
}

// Close releases the entropy device handle.  It returns nil when the handle
// was released or there was nothing to release.  On failure the handle is
// left in place so a retry remains possible.
//
// Close does not alter the keystream state; the next rekey reacquires the
// device.
func (p *Stream) Close() error {
	if p.entropy == nil {
		return nil
	}
	if err := p.entropy.Close(); err != nil {
		return err
	}
	p.entropy = nil
	return nil
}
