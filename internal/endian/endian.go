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

// Package endian provides the single host capability the cbor codec
// depends on outside of its own buffer: converting 16/32/64-bit
// unsigned integers to and from network (big-endian) byte order.
//
// The codec never imports encoding/binary directly; it depends on the
// ByteOrder interface so the conversion is an injectable capability
// rather than a build-time platform assumption. Network is the only
// concrete implementation shipped, since CBOR's wire format always
// uses big-endian regardless of host native order.
package endian

import "encoding/binary"

// ByteOrder converts fixed-width unsigned integers to and from
// network byte order.
type ByteOrder interface {
	PutUint16(dst []byte, v uint16)
	PutUint32(dst []byte, v uint32)
	PutUint64(dst []byte, v uint64)
	Uint16(src []byte) uint16
	Uint32(src []byte) uint32
	Uint64(src []byte) uint64
}

// Network is the big-endian ByteOrder used by the CBOR wire format.
// On every architecture Go supports, encoding/binary.BigEndian already
// performs this conversion without a native-order branch, so there is
// exactly one implementation.
var Network ByteOrder = binary.BigEndian
