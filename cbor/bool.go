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

const (
	simpleFalse byte = 0xF4
	simpleTrue  byte = 0xF5
	simpleNull  byte = 0xF6
	simpleUndef byte = 0xF7
	simpleHalf  byte = 0xF9
	simpleFloat byte = 0xFA
	simpleDbl   byte = 0xFB
	breakByte   byte = 0xFF
)

// SerializeBool writes a single-byte CBOR boolean (0xF4/0xF5).
func SerializeBool(s *Stream, v bool) (int, error) {
	b := simpleFalse
	if v {
		b = simpleTrue
	}
	if !s.append([]byte{b}) {
		return 0, ErrNoSpace
	}
	return 1, nil
}

// DeserializeBool reads a CBOR boolean. Unlike the source this is
// grounded on, a byte that is major 7 but not 0xF4/0xF5 is reported as
// a type mismatch (0 bytes consumed) rather than silently decoding to
// false; see the design notes on preserved vs. fixed source quirks.
func DeserializeBool(buf []byte) (bool, int, error) {
	if len(buf) < 1 {
		return false, 0, ErrTruncated
	}
	switch buf[0] {
	case simpleFalse:
		return false, 1, nil
	case simpleTrue:
		return true, 1, nil
	default:
		return false, 0, ErrTypeMismatch
	}
}

// SerializeNull writes the CBOR null simple value (0xF6).
func SerializeNull(s *Stream) (int, error) {
	if !s.append([]byte{simpleNull}) {
		return 0, ErrNoSpace
	}
	return 1, nil
}

// SerializeUndefined writes the CBOR undefined simple value (0xF7).
func SerializeUndefined(s *Stream) (int, error) {
	if !s.append([]byte{simpleUndef}) {
		return 0, ErrNoSpace
	}
	return 1, nil
}

// WriteBreak emits the single break byte (0xFF) that terminates an
// indefinite-length container.
func WriteBreak(s *Stream) (int, error) {
	if !s.append([]byte{breakByte}) {
		return 0, ErrNoSpace
	}
	return 1, nil
}

// AtBreak reports whether the byte at offset is the break byte, or
// the stream has no more content at offset. Per the source contract
// this is a loop predicate, not an exact positional check: it also
// returns true past the end of the stream so that callers looping
// "until break" terminate instead of reading out of bounds.
func AtBreak(s *Stream, offset int) bool {
	b, ok := s.at(offset)
	if !ok {
		return true
	}
	return b == breakByte
}

// AtEnd reports whether offset has reached or passed the end of the
// stream's written region, or the stream itself is nil. This is the
// fixed form of the source's off-by-one "position-1" contract: it is
// sound at position == 0.
func AtEnd(s *Stream, offset int) bool {
	if s == nil {
		return true
	}
	return offset >= s.position
}
