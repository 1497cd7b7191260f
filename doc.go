// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package arc4random implements a userspace pseudorandom number generator
// seeded from the operating system entropy device, for platforms whose
// standard library does not already ship the arc4random family.  The
// generator can be used to obtain random bytes and 32-bit words as well as
// uniformly-distributed integers in a limited range without modulo bias.
//
// The entropy device handle is opened once and retained for the lifetime of
// the stream, so reseeding keeps working after the host application drops
// privileges or changes its filesystem root.  The keystream is rekeyed on
// first use, after a fixed output budget is exhausted, and whenever the
// process identifier changes, which keeps a forked child from replaying its
// parent's stream.
//
// Neither Stream nor the package-level functions are safe for concurrent
// access.  Multi-threaded callers must serialize access externally.
//
// On select operating systems this package compiles to a thin veneer over
// crypto/rand, which already is (or supersedes) the native implementation;
// only Close remains, as a no-op reporting success.
package arc4random
