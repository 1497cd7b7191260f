// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arc4random

// Err identifies an error in a way that is both comparable and matchable
// with errors.Is.
type Err string

func (e Err) Error() string { return string(e) }

var (
	// ErrEntropyUnavailable indicates that no candidate entropy device
	// could be opened at the moment a reseed needed one.  It is raised as
	// a panic from the reseed path: continuing with a zero-entropy
	// keystream would be a silent cryptographic failure, which is strictly
	// worse than a crash.
	ErrEntropyUnavailable = Err("ErrEntropyUnavailable")
)
