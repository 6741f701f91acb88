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

package cbor

// SerializeArray writes a definite-length array head (major 4, count
// n). The caller is responsible for then serializing exactly n items.
func SerializeArray(s *Stream, n uint64) (int, error) {
	return EncodeHead(s, MajorArray, n)
}

// DeserializeArray reads a definite-length array head and returns the
// element count and the number of bytes consumed.
func DeserializeArray(buf []byte) (count uint64, consumed int, err error) {
	if len(buf) < 1 || TypeOf(buf[0]) != MajorArray {
		return 0, 0, ErrTypeMismatch
	}
	return DecodeHead(buf)
}

// SerializeMap writes a definite-length map head (major 5, n pairs).
// The caller is responsible for then serializing exactly 2n items
// (alternating key, value).
func SerializeMap(s *Stream, n uint64) (int, error) {
	return EncodeHead(s, MajorMap, n)
}

// DeserializeMap reads a definite-length map head and returns the
// pair count and the number of bytes consumed.
func DeserializeMap(buf []byte) (pairs uint64, consumed int, err error) {
	if len(buf) < 1 || TypeOf(buf[0]) != MajorMap {
		return 0, 0, ErrTypeMismatch
	}
	return DecodeHead(buf)
}

// SerializeIndefiniteArray writes the single-byte indefinite-length
// array marker (0x9F). Elements follow until WriteBreak.
func SerializeIndefiniteArray(s *Stream) (int, error) {
	return writeIndefinite(s, MajorArray)
}

// SerializeIndefiniteMap writes the single-byte indefinite-length map
// marker (0xBF). Key/value pairs follow until WriteBreak.
func SerializeIndefiniteMap(s *Stream) (int, error) {
	return writeIndefinite(s, MajorMap)
}

func writeIndefinite(s *Stream, major Major) (int, error) {
	b := byte(major)<<5 | aiIndefinite
	if !s.append([]byte{b}) {
		return 0, ErrNoSpace
	}
	return 1, nil
}

// DeserializeIndefiniteArray verifies that buf begins with the
// indefinite-length array marker and returns 1 byte consumed.
func DeserializeIndefiniteArray(buf []byte) (int, error) {
	return deserializeIndefinite(MajorArray, buf)
}

// DeserializeIndefiniteMap verifies that buf begins with the
// indefinite-length map marker and returns 1 byte consumed.
func DeserializeIndefiniteMap(buf []byte) (int, error) {
	return deserializeIndefinite(MajorMap, buf)
}

func deserializeIndefinite(major Major, buf []byte) (int, error) {
	if len(buf) < 1 {
		return 0, ErrTruncated
	}
	if TypeOf(buf[0]) != major || buf[0]&0x1F != aiIndefinite {
		return 0, ErrTypeMismatch
	}
	return 1, nil
}

// IsIndefinite reports whether the head byte b encodes an
// indefinite-length container (valid for major 2/3/4/5).
func IsIndefinite(b byte) bool {
	return b&0x1F == aiIndefinite
}
