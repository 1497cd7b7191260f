// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !openbsd && !windows

package arc4random

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// devicePaths lists the candidate entropy devices in preference order.
// arandom, where it exists, serves post-boot quality entropy without
// blocking; urandom is the universally correct choice; random may block on
// entropy-starved systems and is the last resort.  It is a variable so
// tests can point the probe at mock devices.
var devicePaths = []string{"/dev/arandom", "/dev/urandom", "/dev/random"}

// openDevice opens the first candidate entropy device that exists and is
// readable.  The returned handle is held for the lifetime of the stream so
// that rekeys keep working after a chroot or privilege drop removes access
// to the device paths.
func openDevice() (io.ReadCloser, error) {
	for _, path := range devicePaths {
		if unix.Access(path, unix.R_OK) != nil {
			continue
		}
		dev, err := os.Open(path)
		if err != nil {
			continue
		}
		log.Debugf("Entropy device %s opened", dev.Name())
		return dev, nil
	}
	return nil, fmt.Errorf("%w: no openable device among %v",
		ErrEntropyUnavailable, devicePaths)
}
