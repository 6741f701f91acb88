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

func TestSerializeBytesLiteral(t *testing.T) {
	cases := []struct {
		payload string
		want    []byte
	}{
		{"", []byte{0x40}},
		{"a", []byte{0x41, 0x61}},
	}
	for _, c := range cases {
		s := NewStream(8)
		n, err := SerializeBytes(s, []byte(c.payload))
		if err != nil {
			t.Fatalf("%q: %v", c.payload, err)
		}
		if n != len(c.want) || !bytes.Equal(s.Bytes(), c.want) {
			t.Errorf("%q: got %x, want %x", c.payload, s.Bytes(), c.want)
		}
	}
}

func TestBytesAndTextRoundTrip(t *testing.T) {
	payloads := []string{"", "a", "hello, world", string(make([]byte, 300))}
	for _, p := range payloads {
		s := NewStream(512)
		n, err := SerializeBytes(s, []byte(p))
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}
		dst := make([]byte, len(p)+1)
		m, err := DeserializeBytes(dst, s.Bytes())
		if err != nil || m != n {
			t.Fatalf("deserialize bytes: (%d, %v), wrote %d", m, err, n)
		}
		if !bytes.Equal(dst[:len(p)], []byte(p)) || dst[len(p)] != 0 {
			t.Errorf("round trip mismatch for %q: %v", p, dst)
		}

		s = NewStream(512)
		n, _ = SerializeText(s, []byte(p))
		dst = make([]byte, len(p)+1)
		m, err = DeserializeText(dst, s.Bytes())
		if err != nil || m != n {
			t.Fatalf("deserialize text: (%d, %v), wrote %d", m, err, n)
		}
		if !bytes.Equal(dst[:len(p)], []byte(p)) {
			t.Errorf("text round trip mismatch for %q", p)
		}
	}
}

func TestDeserializeBytesDestTooSmall(t *testing.T) {
	s := NewStream(8)
	SerializeBytes(s, []byte("abc"))
	dst := make([]byte, 3) // needs 4: 3 payload bytes + terminator
	if n, err := DeserializeBytes(dst, s.Bytes()); n != 0 || err != ErrDestTooSmall {
		t.Fatalf("got (%d, %v), want (0, ErrDestTooSmall)", n, err)
	}
}

func TestDeserializeBytesTruncated(t *testing.T) {
	buf := []byte{0x43, 'a', 'b'} // head says 3 bytes, only 2 present
	dst := make([]byte, 4)
	if n, err := DeserializeBytes(dst, buf); n != 0 || err != ErrTruncated {
		t.Fatalf("got (%d, %v), want (0, ErrTruncated)", n, err)
	}
}

func TestDeserializeBytesTypeMismatch(t *testing.T) {
	buf := []byte{0x01}
	dst := make([]byte, 4)
	if n, err := DeserializeBytes(dst, buf); n != 0 || err != ErrTypeMismatch {
		t.Fatalf("got (%d, %v), want (0, ErrTypeMismatch)", n, err)
	}
	if n, err := DeserializeText(dst, buf); n != 0 || err != ErrTypeMismatch {
		t.Fatalf("got (%d, %v), want (0, ErrTypeMismatch)", n, err)
	}
}

func TestSerializeBytesNoSpace(t *testing.T) {
	s := NewStream(1)
	if n, err := SerializeBytes(s, []byte("ab")); n != 0 || err != ErrNoSpace {
		t.Fatalf("got (%d, %v), want (0, ErrNoSpace)", n, err)
	}
	if s.Position() != 0 {
		t.Fatal("position must not advance on failure")
	}
}
