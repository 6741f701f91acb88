// Copyright (C) 2026 tinycbor contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package digest computes SipHash-2-4 checksums over finalized CBOR
// buffers, for callers that persist or transmit a Stream's bytes and
// want to detect corruption in transit. The codec itself does no I/O
// (see package cbor's non-goals); this is a caller-side concern.
package digest

import "github.com/dchest/siphash"

// Sum returns the SipHash-2-4 digest of buf keyed by (k0, k1).
func Sum(buf []byte, k0, k1 uint64) uint64 {
	return siphash.Hash(k0, k1, buf)
}

// Verify reports whether want matches the digest of buf under the
// same key.
func Verify(buf []byte, k0, k1, want uint64) bool {
	return Sum(buf, k0, k1) == want
}
