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
	"fmt"
	"io"
)

// maxWalkString bounds the size of a byte/text string the walker will
// copy out for printing. Items larger than this are reported by
// length only, not dumped.
const maxWalkString = 4096

// Walk decodes and prints the single item starting at offset, writing
// a human-readable diagnostic line (or lines, for containers) to w.
// It returns the number of bytes consumed by that single top-level
// item, or 0 on failure (matching the in-band error convention used
// throughout the codec). A failure inside a container is reported and
// stops that container without corrupting the outer cursor: the
// container itself still reports the bytes consumed up to the point
// of failure as 0, per decode_all's all-or-nothing contract.
func Walk(w io.Writer, s *Stream, offset, indent int) (int, error) {
	buf, ok := s.slice(offset)
	if !ok || len(buf) == 0 {
		return 0, ErrTruncated
	}
	pad := indentString(indent)
	switch TypeOf(buf[0]) {
	case MajorUint, MajorNegInt:
		v, n, err := DeserializeInt(buf)
		if err != nil {
			fmt.Fprintf(w, "%sint: decode error at offset %d (byte 0x%02X): %v\n", pad, offset, buf[0], err)
			return 0, err
		}
		fmt.Fprintf(w, "%sint %d\n", pad, v)
		return n, nil

	case MajorBytes, MajorText:
		return walkString(w, buf, offset, pad, TypeOf(buf[0]))

	case MajorArray:
		return walkArray(w, s, offset, indent)

	case MajorMap:
		return walkMap(w, s, offset, indent)

	case MajorTag:
		return walkTag(w, s, offset, indent)

	case MajorSimple:
		return walkSimple(w, buf, offset, pad)

	default:
		fmt.Fprintf(w, "%sunrecognized major type at offset %d (byte 0x%02X)\n", pad, offset, buf[0])
		return 0, ErrBadHead
	}
}

func indentString(indent int) string {
	if indent <= 0 {
		return ""
	}
	b := make([]byte, indent)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func walkString(w io.Writer, buf []byte, offset int, pad string, major Major) (int, error) {
	length, headLen, err := DecodeHead(buf)
	if err != nil {
		fmt.Fprintf(w, "%sstring: bad head at offset %d: %v\n", pad, offset, err)
		return 0, err
	}
	total := headLen + int(length)
	if len(buf) < total {
		fmt.Fprintf(w, "%sstring: truncated at offset %d (need %d, have %d)\n", pad, offset, total, len(buf))
		return 0, ErrTruncated
	}
	kind := "bytes"
	if major == MajorText {
		kind = "text"
	}
	if length > maxWalkString {
		fmt.Fprintf(w, "%s%s (%d bytes, too large to dump)\n", pad, kind, length)
		return total, nil
	}
	payload := buf[headLen:total]
	if major == MajorText {
		fmt.Fprintf(w, "%stext %q\n", pad, string(payload))
	} else {
		fmt.Fprintf(w, "%sbytes % X\n", pad, payload)
	}
	return total, nil
}

func walkArray(w io.Writer, s *Stream, offset, indent int) (int, error) {
	pad := indentString(indent)
	buf, ok := s.slice(offset)
	if !ok {
		return 0, ErrTruncated
	}
	if IsIndefinite(buf[0]) {
		fmt.Fprintf(w, "%sarray (indefinite)\n", pad)
		cur := offset + 1
		for !AtBreak(s, cur) {
			n, err := Walk(w, s, cur, indent+2)
			if err != nil || n == 0 {
				fmt.Fprintf(w, "%s  !! array element failed at offset %d\n", pad, cur)
				return 0, err
			}
			cur += n
		}
		return cur + 1 - offset, nil
	}
	count, headLen, err := DeserializeArray(buf)
	if err != nil {
		fmt.Fprintf(w, "%sarray: bad head at offset %d: %v\n", pad, offset, err)
		return 0, err
	}
	fmt.Fprintf(w, "%sarray (%d items)\n", pad, count)
	cur := offset + headLen
	for i := uint64(0); i < count; i++ {
		n, err := Walk(w, s, cur, indent+2)
		if err != nil || n == 0 {
			fmt.Fprintf(w, "%s  !! array element %d failed at offset %d\n", pad, i, cur)
			return 0, err
		}
		cur += n
	}
	return cur - offset, nil
}

func walkMap(w io.Writer, s *Stream, offset, indent int) (int, error) {
	pad := indentString(indent)
	buf, ok := s.slice(offset)
	if !ok {
		return 0, ErrTruncated
	}
	if IsIndefinite(buf[0]) {
		fmt.Fprintf(w, "%smap (indefinite)\n", pad)
		cur := offset + 1
		for !AtBreak(s, cur) {
			n, err := walkPair(w, s, cur, indent)
			if err != nil || n == 0 {
				return 0, err
			}
			cur += n
		}
		return cur + 1 - offset, nil
	}
	pairs, headLen, err := DeserializeMap(buf)
	if err != nil {
		fmt.Fprintf(w, "%smap: bad head at offset %d: %v\n", pad, offset, err)
		return 0, err
	}
	fmt.Fprintf(w, "%smap (%d pairs)\n", pad, pairs)
	cur := offset + headLen
	for i := uint64(0); i < pairs; i++ {
		n, err := walkPair(w, s, cur, indent)
		if err != nil || n == 0 {
			return 0, err
		}
		cur += n
	}
	return cur - offset, nil
}

func walkPair(w io.Writer, s *Stream, offset, indent int) (int, error) {
	pad := indentString(indent + 2)
	fmt.Fprintf(w, "%skey:\n", pad)
	kn, err := Walk(w, s, offset, indent+4)
	if err != nil || kn == 0 {
		fmt.Fprintf(w, "%s  !! map key failed at offset %d\n", pad, offset)
		return 0, err
	}
	fmt.Fprintf(w, "%svalue:\n", pad)
	vn, err := Walk(w, s, offset+kn, indent+4)
	if err != nil || vn == 0 {
		fmt.Fprintf(w, "%s  !! map value failed at offset %d\n", pad, offset+kn)
		return 0, err
	}
	return kn + vn, nil
}

func walkTag(w io.Writer, s *Stream, offset, indent int) (int, error) {
	pad := indentString(indent)
	buf, ok := s.slice(offset)
	if !ok {
		return 0, ErrTruncated
	}
	tag, n, err := ReadTagNumber(buf)
	if err != nil {
		fmt.Fprintf(w, "%stag: bad head at offset %d: %v\n", pad, offset, err)
		return 0, err
	}
	if !IsDateTimeTag(tag) {
		fmt.Fprintf(w, "%stag %d: unknown content\n", pad, tag)
		return n, nil
	}
	switch tag {
	case TagDateTime:
		t, total, err := DeserializeDateTime(buf)
		if err != nil {
			fmt.Fprintf(w, "%stag 0: bad datetime at offset %d: %v\n", pad, offset, err)
			return 0, err
		}
		fmt.Fprintf(w, "%stag 0: datetime %s\n", pad, t)
		return total, nil
	case TagEpoch:
		secs, total, err := DeserializeEpoch(buf)
		if err != nil {
			fmt.Fprintf(w, "%stag 1: bad epoch at offset %d: %v\n", pad, offset, err)
			return 0, err
		}
		fmt.Fprintf(w, "%stag 1: epoch %d\n", pad, secs)
		return total, nil
	default:
		fmt.Fprintf(w, "%stag %d: unknown content\n", pad, tag)
		return n, nil
	}
}

func walkSimple(w io.Writer, buf []byte, offset int, pad string) (int, error) {
	switch buf[0] {
	case simpleFalse, simpleTrue:
		v, n, err := DeserializeBool(buf)
		if err != nil {
			fmt.Fprintf(w, "%sbool: decode error at offset %d: %v\n", pad, offset, err)
			return 0, err
		}
		fmt.Fprintf(w, "%sbool %t\n", pad, v)
		return n, nil
	case simpleNull:
		fmt.Fprintf(w, "%snull\n", pad)
		return 1, nil
	case simpleUndef:
		fmt.Fprintf(w, "%sundefined\n", pad)
		return 1, nil
	case simpleHalf:
		v, n, err := DeserializeHalf(buf)
		if err != nil {
			fmt.Fprintf(w, "%shalf: decode error at offset %d: %v\n", pad, offset, err)
			return 0, err
		}
		fmt.Fprintf(w, "%shalf %v\n", pad, v)
		return n, nil
	case simpleFloat:
		v, n, err := DeserializeFloat(buf)
		if err != nil {
			fmt.Fprintf(w, "%sfloat: decode error at offset %d: %v\n", pad, offset, err)
			return 0, err
		}
		fmt.Fprintf(w, "%sfloat %v\n", pad, v)
		return n, nil
	case simpleDbl:
		v, n, err := DeserializeDouble(buf)
		if err != nil {
			fmt.Fprintf(w, "%sdouble: decode error at offset %d: %v\n", pad, offset, err)
			return 0, err
		}
		fmt.Fprintf(w, "%sdouble %v\n", pad, v)
		return n, nil
	case breakByte:
		fmt.Fprintf(w, "%sunexpected break\n", pad)
		return 0, ErrTypeMismatch
	default:
		fmt.Fprintf(w, "%sunrecognized simple value 0x%02X at offset %d\n", pad, buf[0], offset)
		return 0, ErrBadHead
	}
}

// WalkAll walks every top-level item in the stream's written region,
// from offset 0 to Position, writing a diagnostic dump to w. It stops
// and returns an error the first time a top-level item fails to
// decode (zero progress), matching the source contract for decode_all.
func WalkAll(w io.Writer, s *Stream) error {
	offset := 0
	for !AtEnd(s, offset) {
		n, err := Walk(w, s, offset, 0)
		if err != nil || n == 0 {
			return fmt.Errorf("cbor: walk stopped at offset %d: %w", offset, err)
		}
		offset += n
	}
	return nil
}
