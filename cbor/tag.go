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
	"golang.org/x/exp/slices"

	"github.com/nilgrove/tinycbor/date"
)

// TagDateTime and TagEpoch are the only two tags this codec resolves
// to semantic content; every other tag number is opaque to it.
const (
	TagDateTime uint64 = 0
	TagEpoch    uint64 = 1
)

// knownDateTimeTags is consulted by the walker (§4.4) to decide
// whether a tag's payload should be decoded as a date or left as
// "unknown content". A slice plus slices.Contains is enough for a
// fixed two-element set and keeps the lookup in one place.
var knownDateTimeTags = []uint64{TagDateTime, TagEpoch}

// IsDateTimeTag reports whether t is one of the two datetime tags
// this codec understands.
func IsDateTimeTag(t uint64) bool {
	return slices.Contains(knownDateTimeTags, t)
}

// WriteTag writes a major-6 head carrying the tag number t, using the
// general minimum-width head encoder. Tag numbers up to 23 therefore
// collapse to the source's single-byte 0xC0|t form automatically; the
// general encoder is used unconditionally so larger tag numbers are
// never mis-encoded.
func WriteTag(s *Stream, t uint64) (int, error) {
	return EncodeHead(s, MajorTag, t)
}

// ReadTagNumber reads a major-6 head and returns the tag number and
// bytes consumed, leaving the tagged item itself in the remainder of
// buf for a subsequent typed deserialize call.
func ReadTagNumber(buf []byte) (tag uint64, consumed int, err error) {
	if len(buf) < 1 || TypeOf(buf[0]) != MajorTag {
		return 0, 0, ErrTypeMismatch
	}
	return DecodeHead(buf)
}

// AtTag reports whether the byte at offset has major type 6, or the
// stream has no more content at offset (matching the source's
// end-of-stream convention for predicate-style cursor checks).
func AtTag(s *Stream, offset int) bool {
	b, ok := s.at(offset)
	if !ok {
		return true
	}
	return TypeOf(b) == MajorTag
}

// SerializeDateTime writes t as a tag-0 item: the tag byte followed
// by an RFC 3339 text string ("2006-01-02T15:04:05Z" form, UTC,
// second precision, matching the source's datetime format exactly).
func SerializeDateTime(s *Stream, t date.Time) (int, error) {
	start := s.Position()
	n, err := WriteTag(s, TagDateTime)
	if err != nil {
		return 0, err
	}
	buf := t.AppendRFC3339(nil)
	m, err := SerializeText(s, buf)
	if err != nil {
		s.position = start // drop the tag head: no partial write
		return 0, err
	}
	return n + m, nil
}

// DeserializeDateTime reads a tag-0 item: the tag byte, then an RFC
// 3339 text string parsed via the host calendar package.
func DeserializeDateTime(buf []byte) (date.Time, int, error) {
	tag, n, err := ReadTagNumber(buf)
	if err != nil {
		return date.Time{}, 0, err
	}
	if tag != TagDateTime {
		return date.Time{}, 0, ErrTypeMismatch
	}
	rest := buf[n:]
	if len(rest) < 1 || TypeOf(rest[0]) != MajorText {
		return date.Time{}, 0, ErrTypeMismatch
	}
	length, headLen, err := DecodeHead(rest)
	if err != nil {
		return date.Time{}, 0, err
	}
	total := headLen + int(length)
	if len(rest) < total {
		return date.Time{}, 0, ErrTruncated
	}
	t, ok := date.Parse(rest[headLen:total])
	if !ok {
		return date.Time{}, 0, ErrTypeMismatch
	}
	return t, n + total, nil
}

// SerializeEpoch writes seconds as a tag-1 item: the tag byte followed
// by an unsigned integer (seconds since the Unix epoch). Negative
// values are rejected, matching the source's tag-1 contract.
func SerializeEpoch(s *Stream, seconds int64) (int, error) {
	if seconds < 0 {
		return 0, ErrNegativeEpoch
	}
	start := s.Position()
	n, err := WriteTag(s, TagEpoch)
	if err != nil {
		return 0, err
	}
	m, err := SerializeUint(s, uint64(seconds))
	if err != nil {
		s.position = start // drop the tag head: no partial write
		return 0, err
	}
	return n + m, nil
}

// DeserializeEpoch reads a tag-1 item: the tag byte, then an unsigned
// integer of epoch seconds.
func DeserializeEpoch(buf []byte) (int64, int, error) {
	tag, n, err := ReadTagNumber(buf)
	if err != nil {
		return 0, 0, err
	}
	if tag != TagEpoch {
		return 0, 0, ErrTypeMismatch
	}
	seconds, m, err := DeserializeUint(buf[n:])
	if err != nil {
		return 0, 0, err
	}
	return int64(seconds), n + m, nil
}
