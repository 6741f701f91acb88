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

// SerializeInt writes v as a CBOR integer: major 0 (unsigned) if
// v >= 0, major 1 (negative) otherwise, using the minimum-width head
// encoding for the magnitude. It returns the number of bytes written.
func SerializeInt(s *Stream, v int64) (int, error) {
	if v >= 0 {
		return EncodeHead(s, MajorUint, uint64(v))
	}
	// -1-v never overflows int64, even for v == math.MinInt64:
	// -1 - MinInt64 == MaxInt64.
	return EncodeHead(s, MajorNegInt, uint64(-1-v))
}

// DeserializeInt reads a CBOR integer (major 0 or 1) from buf and
// returns the signed value and the number of bytes consumed.
func DeserializeInt(buf []byte) (int64, int, error) {
	if len(buf) < 1 {
		return 0, 0, ErrTruncated
	}
	switch TypeOf(buf[0]) {
	case MajorUint:
		arg, n, err := DecodeHead(buf)
		if err != nil {
			return 0, 0, err
		}
		return int64(arg), n, nil
	case MajorNegInt:
		arg, n, err := DecodeHead(buf)
		if err != nil {
			return 0, 0, err
		}
		return -1 - int64(arg), n, nil
	default:
		return 0, 0, ErrTypeMismatch
	}
}

// SerializeUint writes v as a CBOR unsigned integer (major 0).
func SerializeUint(s *Stream, v uint64) (int, error) {
	return EncodeHead(s, MajorUint, v)
}

// DeserializeUint reads a CBOR unsigned integer (major 0 only).
func DeserializeUint(buf []byte) (uint64, int, error) {
	if len(buf) < 1 || TypeOf(buf[0]) != MajorUint {
		return 0, 0, ErrTypeMismatch
	}
	return DecodeHead(buf)
}
