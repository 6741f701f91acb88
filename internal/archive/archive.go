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

// Package archive compresses finalized CBOR buffers with zstd, for
// persisting many small buffers compactly. Compression happens after
// a Stream has been fully written; the codec itself never compresses
// or streams (see package cbor's non-goals).
package archive

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	decoderOnce sync.Once
	decoder     *zstd.Decoder
)

func sharedDecoder() *zstd.Decoder {
	decoderOnce.Do(func() {
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
		if err != nil {
			panic(err)
		}
		decoder = d
	})
	return decoder
}

// Compress appends the zstd-compressed form of src to dst and returns
// the result.
func Compress(dst, src []byte) []byte {
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	return enc.EncodeAll(src, dst)
}

// Decompress decompresses src into a buffer, appending to dst, and
// fails if the decompressed size does not match wantLen.
func Decompress(dst, src []byte, wantLen int) ([]byte, error) {
	out, err := sharedDecoder().DecodeAll(src, dst)
	if err != nil {
		return nil, fmt.Errorf("archive: decompress: %w", err)
	}
	if len(out)-len(dst) != wantLen {
		return nil, fmt.Errorf("archive: decompress: expected %d bytes, got %d", wantLen, len(out)-len(dst))
	}
	return out, nil
}
