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

import (
	"math"

	"github.com/nilgrove/tinycbor/internal/endian"
)

// float32ToHalfBits converts the bit pattern of a float32 into an
// IEEE-754 binary16 bit pattern, using round-to-nearest-even on the
// dropped mantissa bits. This is the canonical single->half mapping:
// denormals, infinities and NaN payloads (collapsed to the single
// pattern 0x7C01, sign kept, so the result stays a NaN) are all
// handled explicitly, never via a raw narrowing cast.
func float32ToHalfBits(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xFF) - 127 + 15 // rebase to half's bias
	mant := bits & 0x7FFFFF

	switch {
	case exp <= 0:
		// Exponent too small for a normal half: zero or subnormal.
		if exp <= -10 {
			return sign // underflows to zero
		}
		// Add the implicit leading 1 bit back in before shifting.
		mant |= 0x800000
		shift := uint(14 - exp)
		half := uint16(mant >> shift)
		// round to nearest even on the bits shifted out
		roundBit := uint32(1) << (shift - 1)
		if mant&roundBit != 0 && (mant&(roundBit-1) != 0 || half&1 != 0) {
			half++
		}
		return sign | half
	case exp >= 31:
		// Overflow to infinity, or already infinity/NaN in the source.
		if bits&0x7FFFFFFF > 0x7F800000 {
			// NaN: preserve by setting the low mantissa bit so the
			// half-precision value stays a NaN rather than collapsing
			// to infinity.
			return sign | 0x7C00 | 0x0001
		}
		return sign | 0x7C00
	default:
		half := uint16(exp)<<10 | uint16(mant>>13)
		const halfway = 1 << 12 // midpoint of the 13 dropped bits
		dropped := mant & (1<<13 - 1)
		if dropped > halfway || (dropped == halfway && half&1 != 0) {
			half++ // carrying out of the mantissa bumps the exponent too
		}
		return sign | half
	}
}

// halfBitsToFloat32 converts an IEEE-754 binary16 bit pattern to the
// bit-exact float32 it represents, handling subnormals, infinities and
// NaN explicitly.
func halfBitsToFloat32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := (h >> 10) & 0x1F
	mant := uint32(h & 0x3FF)
	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		return float32(math.Ldexp(float64(mant), -24)) * signFloat32(sign)
	case 31:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7F800000 | (mant << 13) | 1)
	default:
		return float32(math.Ldexp(float64(mant+1024), int(exp)-25)) * signFloat32(sign)
	}
}

func signFloat32(signBit uint32) float32 {
	if signBit != 0 {
		return -1
	}
	return 1
}

// SerializeHalf writes f as an IEEE-754 binary16 value (0xF9 + 2
// bytes), converting from the supplied float32 using round-to-nearest-
// even.
func SerializeHalf(s *Stream, f float32) (int, error) {
	dst, ok := s.reserve(3)
	if !ok {
		return 0, ErrNoSpace
	}
	dst[0] = simpleHalf
	endian.Network.PutUint16(dst[1:], float32ToHalfBits(f))
	s.position += 3
	return 3, nil
}

// DeserializeHalf reads an IEEE-754 binary16 value and widens it to a
// float32.
func DeserializeHalf(buf []byte) (float32, int, error) {
	if len(buf) < 1 || buf[0] != simpleHalf {
		return 0, 0, ErrTypeMismatch
	}
	if len(buf) < 3 {
		return 0, 0, ErrTruncated
	}
	return halfBitsToFloat32(endian.Network.Uint16(buf[1:3])), 3, nil
}

// SerializeFloat writes f as an IEEE-754 binary32 value (0xFA + 4
// bytes), big-endian.
func SerializeFloat(s *Stream, f float32) (int, error) {
	dst, ok := s.reserve(5)
	if !ok {
		return 0, ErrNoSpace
	}
	dst[0] = simpleFloat
	endian.Network.PutUint32(dst[1:], math.Float32bits(f))
	s.position += 5
	return 5, nil
}

// DeserializeFloat reads an IEEE-754 binary32 value.
func DeserializeFloat(buf []byte) (float32, int, error) {
	if len(buf) < 1 || buf[0] != simpleFloat {
		return 0, 0, ErrTypeMismatch
	}
	if len(buf) < 5 {
		return 0, 0, ErrTruncated
	}
	return math.Float32frombits(endian.Network.Uint32(buf[1:5])), 5, nil
}

// SerializeDouble writes f as an IEEE-754 binary64 value (0xFB + 8
// bytes), big-endian.
func SerializeDouble(s *Stream, f float64) (int, error) {
	dst, ok := s.reserve(9)
	if !ok {
		return 0, ErrNoSpace
	}
	dst[0] = simpleDbl
	endian.Network.PutUint64(dst[1:], math.Float64bits(f))
	s.position += 9
	return 9, nil
}

// DeserializeDouble reads an IEEE-754 binary64 value.
func DeserializeDouble(buf []byte) (float64, int, error) {
	if len(buf) < 1 || buf[0] != simpleDbl {
		return 0, 0, ErrTypeMismatch
	}
	if len(buf) < 9 {
		return 0, 0, ErrTruncated
	}
	return math.Float64frombits(endian.Network.Uint64(buf[1:9])), 9, nil
}
