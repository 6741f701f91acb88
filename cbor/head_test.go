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
	"bytes"
	"testing"
)

func TestEncodeHeadMinimumWidth(t *testing.T) {
	cases := []struct {
		arg  uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{0xFF, []byte{0x18, 0xFF}},
		{0x100, []byte{0x19, 0x01, 0x00}},
		{0xFFFF, []byte{0x19, 0xFF, 0xFF}},
		{0x10000, []byte{0x1A, 0x00, 0x01, 0x00, 0x00}},
		{0xFFFFFFFF, []byte{0x1A, 0xFF, 0xFF, 0xFF, 0xFF}},
		{0x100000000, []byte{0x1B, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{0xFFFFFFFFFFFFFFFF, []byte{0x1B, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		s := NewStream(16)
		n, err := EncodeHead(s, MajorUint, c.arg)
		if err != nil {
			t.Fatalf("arg %d: %v", c.arg, err)
		}
		if n != len(c.want) || !bytes.Equal(s.Bytes(), c.want) {
			t.Errorf("arg %d: got %x, want %x", c.arg, s.Bytes(), c.want)
		}
		if EncodedHeadLen(c.arg) != len(c.want) {
			t.Errorf("arg %d: EncodedHeadLen = %d, want %d", c.arg, EncodedHeadLen(c.arg), len(c.want))
		}
		arg, consumed, err := DecodeHead(c.want)
		if err != nil {
			t.Fatalf("decode arg %d: %v", c.arg, err)
		}
		if arg != c.arg || consumed != len(c.want) {
			t.Errorf("decode arg %d: got (%d, %d)", c.arg, arg, consumed)
		}
	}
}

func TestEncodeHeadNoSpace(t *testing.T) {
	s := NewStream(0)
	if n, err := EncodeHead(s, MajorUint, 1000); n != 0 || err != ErrNoSpace {
		t.Fatalf("got (%d, %v), want (0, ErrNoSpace)", n, err)
	}
	if s.Position() != 0 {
		t.Fatalf("failed encode must not advance position")
	}
}

func TestDecodeHeadReservedAI(t *testing.T) {
	for _, ai := range []byte{28, 29, 30} {
		buf := []byte{ai}
		_, n, err := DecodeHead(buf)
		if n != 0 || err != ErrBadHead {
			t.Errorf("ai=%d: got (%d, %v), want (0, ErrBadHead)", ai, n, err)
		}
	}
}

func TestDecodeHeadTruncated(t *testing.T) {
	cases := [][]byte{
		{ai1Byte},
		{ai2Byte, 0x01},
		{ai4Byte, 0x01, 0x02, 0x03},
		{ai8Byte, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
		{},
	}
	for _, buf := range cases {
		_, n, err := DecodeHead(buf)
		if n != 0 || err != ErrTruncated {
			t.Errorf("buf %x: got (%d, %v), want (0, ErrTruncated)", buf, n, err)
		}
	}
}

func TestDecodeHeadIndefinite(t *testing.T) {
	arg, n, err := DecodeHead([]byte{aiIndefinite})
	if err != nil || arg != 0 || n != 1 {
		t.Fatalf("got (%d, %d, %v)", arg, n, err)
	}
}

func TestTypeOf(t *testing.T) {
	if TypeOf(0x00) != MajorUint || TypeOf(0x20) != MajorNegInt ||
		TypeOf(0x40) != MajorBytes || TypeOf(0x60) != MajorText ||
		TypeOf(0x80) != MajorArray || TypeOf(0xA0) != MajorMap ||
		TypeOf(0xC0) != MajorTag || TypeOf(0xE0) != MajorSimple {
		t.Fatal("TypeOf mapped a major incorrectly")
	}
}
