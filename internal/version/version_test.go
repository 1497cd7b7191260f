// Copyright (c) 2025 The arc4random developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "testing"

// TestNormalize ensures the normalize function strips characters that are
// not part of the semantic versioning alphabet.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "empty",
		in:   "",
		want: "",
	}, {
		name: "all valid",
		in:   "abc-def.123",
		want: "abc-def.123",
	}, {
		name: "invalid characters stripped",
		in:   "a_b c+d@e",
		want: "abcde",
	}}

	for _, test := range tests {
		if got := normalize(test.in); got != test.want {
			t.Errorf("%q: got %q, want %q", test.name, got, test.want)
		}
	}
}
