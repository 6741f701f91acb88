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

import "github.com/nilgrove/tinycbor/internal/endian"

// Major is one of the eight CBOR major types, held in the top 3 bits
// of an item's initial byte.
type Major byte

const (
	MajorUint     Major = 0
	MajorNegInt   Major = 1
	MajorBytes    Major = 2
	MajorText     Major = 3
	MajorArray    Major = 4
	MajorMap      Major = 5
	MajorTag      Major = 6
	MajorSimple   Major = 7
	majorBits           = 3
	aiIndefinite  byte  = 31
	ai1Byte       byte  = 24
	ai2Byte       byte  = 25
	ai4Byte       byte  = 26
	ai8Byte       byte  = 27
)

func (m Major) String() string {
	switch m {
	case MajorUint:
		return "uint"
	case MajorNegInt:
		return "negint"
	case MajorBytes:
		return "bytes"
	case MajorText:
		return "text"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorSimple:
		return "simple"
	default:
		return "invalid"
	}
}

// TypeOf returns the major type encoded in the initial byte b of an
// item.
func TypeOf(b byte) Major {
	return Major(b >> 5)
}

// headSize returns the number of bytes needed to encode argument as a
// minimum-width CBOR head argument, not counting the initial byte.
func headSize(argument uint64) int {
	switch {
	case argument <= 23:
		return 0
	case argument <= 0xFF:
		return 1
	case argument <= 0xFFFF:
		return 2
	case argument <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

// EncodedHeadLen returns the total length (initial byte + argument
// bytes) that EncodeHead would produce for the given argument. Useful
// for callers sizing a Stream up front.
func EncodedHeadLen(argument uint64) int {
	return 1 + headSize(argument)
}

// EncodeHead writes the initial byte and argument for an item of the
// given major type and unsigned argument, using the shortest possible
// encoding, per the minimum-width law. It returns the number of bytes
// written, or 0 if the stream does not have enough room (no partial
// write is left behind).
func EncodeHead(s *Stream, major Major, argument uint64) (int, error) {
	n := headSize(argument)
	dst, ok := s.reserve(1 + n)
	if !ok {
		return 0, ErrNoSpace
	}
	switch n {
	case 0:
		dst[0] = byte(major)<<5 | byte(argument)
	case 1:
		dst[0] = byte(major)<<5 | ai1Byte
		dst[1] = byte(argument)
	case 2:
		dst[0] = byte(major)<<5 | ai2Byte
		endian.Network.PutUint16(dst[1:], uint16(argument))
	case 4:
		dst[0] = byte(major)<<5 | ai4Byte
		endian.Network.PutUint32(dst[1:], uint32(argument))
	case 8:
		dst[0] = byte(major)<<5 | ai8Byte
		endian.Network.PutUint64(dst[1:], argument)
	}
	s.position += 1 + n
	return 1 + n, nil
}

// DecodeHead reads the initial byte and argument of the item at the
// start of buf (buf[0]) and returns the argument value and the number of
// bytes consumed (1..9). It returns 0 bytes consumed and ErrBadHead if
// the additional-information field is one of the reserved values
// (28, 29, 30), and 0 bytes consumed and ErrTruncated if buf does not
// hold enough follow bytes. DecodeHead does not check the major type
// against any expectation; that is the caller's responsibility.
func DecodeHead(buf []byte) (argument uint64, consumed int, err error) {
	if len(buf) < 1 {
		return 0, 0, ErrTruncated
	}
	ai := buf[0] & 0x1F
	switch {
	case ai <= 23:
		return uint64(ai), 1, nil
	case ai == ai1Byte:
		if len(buf) < 2 {
			return 0, 0, ErrTruncated
		}
		return uint64(buf[1]), 2, nil
	case ai == ai2Byte:
		if len(buf) < 3 {
			return 0, 0, ErrTruncated
		}
		return uint64(endian.Network.Uint16(buf[1:3])), 3, nil
	case ai == ai4Byte:
		if len(buf) < 5 {
			return 0, 0, ErrTruncated
		}
		return uint64(endian.Network.Uint32(buf[1:5])), 5, nil
	case ai == ai8Byte:
		if len(buf) < 9 {
			return 0, 0, ErrTruncated
		}
		return endian.Network.Uint64(buf[1:9]), 9, nil
	case ai == aiIndefinite:
		return 0, 1, nil
	default: // 28, 29, 30: reserved
		return 0, 0, ErrBadHead
	}
}

// HeadAt is a convenience wrapper for decoding the head of the item
// that begins at byte offset within the stream's written region.
func HeadAt(s *Stream, offset int) (argument uint64, consumed int, err error) {
	buf, ok := s.slice(offset)
	if !ok {
		return 0, 0, ErrTruncated
	}
	return DecodeHead(buf)
}
