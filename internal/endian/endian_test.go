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

package endian

import (
	"bytes"
	"testing"
)

func TestNetworkIsBigEndian(t *testing.T) {
	buf := make([]byte, 8)
	Network.PutUint16(buf, 0x0102)
	if !bytes.Equal(buf[:2], []byte{0x01, 0x02}) {
		t.Fatalf("PutUint16: got %x", buf[:2])
	}
	Network.PutUint32(buf, 0x01020304)
	if !bytes.Equal(buf[:4], []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Fatalf("PutUint32: got %x", buf[:4])
	}
	Network.PutUint64(buf, 0x0102030405060708)
	if !bytes.Equal(buf, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}) {
		t.Fatalf("PutUint64: got %x", buf)
	}
	if Network.Uint64(buf) != 0x0102030405060708 {
		t.Fatal("Uint64 did not round trip")
	}
}
