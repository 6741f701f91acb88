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

// SerializeBytes writes payload as a CBOR byte string (major 2):
// a minimum-width head carrying the length, followed by the raw
// bytes. It returns the total bytes written (head + payload), or 0 if
// the stream does not have room for the whole item.
func SerializeBytes(s *Stream, payload []byte) (int, error) {
	return serializeString(s, MajorBytes, payload)
}

// SerializeText writes payload as a CBOR text string (major 3). The
// codec does not validate that payload is well-formed UTF-8; that is
// the caller's responsibility.
func SerializeText(s *Stream, payload []byte) (int, error) {
	return serializeString(s, MajorText, payload)
}

func serializeString(s *Stream, major Major, payload []byte) (int, error) {
	headLen := EncodedHeadLen(uint64(len(payload)))
	dst, ok := s.reserve(headLen + len(payload))
	if !ok {
		return 0, ErrNoSpace
	}
	// Write into a bounded sub-stream view so EncodeHead's own bounds
	// check still applies, then append the payload behind it.
	sub := &Stream{buf: dst}
	n, err := EncodeHead(sub, major, uint64(len(payload)))
	if err != nil {
		return 0, err
	}
	copy(dst[n:], payload)
	s.position += headLen + len(payload)
	return headLen + len(payload), nil
}

// DeserializeBytes reads a CBOR byte string (major 2) from buf into
// dst, which must be sized at least len(payload)+1: the payload is
// copied into dst[:len(payload)] and a trailing zero byte is written
// at dst[len(payload)], matching the source's buffer-plus-terminator
// convention. It returns the number of source bytes consumed (head +
// payload), not the payload length.
func DeserializeBytes(dst []byte, buf []byte) (int, error) {
	return deserializeString(MajorBytes, dst, buf)
}

// DeserializeText reads a CBOR text string (major 3) the same way
// DeserializeBytes reads a byte string. No UTF-8 validation is
// performed.
func DeserializeText(dst []byte, buf []byte) (int, error) {
	return deserializeString(MajorText, dst, buf)
}

func deserializeString(major Major, dst []byte, buf []byte) (int, error) {
	if len(buf) < 1 || TypeOf(buf[0]) != major {
		return 0, ErrTypeMismatch
	}
	length, headLen, err := DecodeHead(buf)
	if err != nil {
		return 0, err
	}
	if len(dst) < int(length)+1 {
		return 0, ErrDestTooSmall
	}
	total := headLen + int(length)
	if len(buf) < total {
		return 0, ErrTruncated
	}
	n := copy(dst, buf[headLen:total])
	dst[n] = 0
	return total, nil
}
