// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package saferead provides a reader helper with the retry semantics
// expected from raw reads of an entropy device: short reads and reads
// interrupted by a signal are not errors and are simply retried.
package saferead

import (
	"errors"
	"io"
	"syscall"
)

// ReadFull reads exactly len(buf) bytes from r.  Short reads and reads
// interrupted by a signal are retried.  Any other error is returned,
// leaving buf filled with however many bytes arrived before it.
func ReadFull(r io.Reader, buf []byte) error {
	for off := 0; off < len(buf); {
		n, err := r.Read(buf[off:])
		off += n
		switch {
		case err == nil:
			if n == 0 {
				return io.ErrNoProgress
			}
		case errors.Is(err, syscall.EINTR):
		default:
			return err
		}
	}
	return nil
}
