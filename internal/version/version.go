// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version
// information for the arc4rand utility.
package version

import (
	"fmt"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// These variables define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
var (
	// Version is the application version.  It is defined as a variable so
	// it can be overridden during the build process with:
	// '-ldflags "-X github.com/lk29/arc4random/internal/version.Version=fullsemver"'
	// if needed.
	Version = "1.0.0-pre"

	// BuildMetadata defines the build metadata portion of the version.  It
	// defaults to the version control system commit hash of the build, when
	// available.
	BuildMetadata = vcsCommitID()
)

// normalize returns the passed string stripped of all characters which are
// not valid according to the semantic versioning guidelines for pre-release
// and build metadata strings.  In particular they MUST only contain
// characters in semanticAlphabet.
func normalize(str string) string {
	var result strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// String returns the application version as a properly formed string per
// the semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	version := Version
	if build := normalize(BuildMetadata); build != "" {
		version = fmt.Sprintf("%s+%s", version, build)
	}
	return version
}
