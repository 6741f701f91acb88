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

package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRFC3339RoundTrip(t *testing.T) {
	in := []string{
		"2019-10-12T07:20:50Z",
		"2019-10-12T07:20:50.52334Z",
		"1992-01-23T12:24:32.999999999Z",
		"2022-01-01T00:20:00Z",
	}
	for _, s := range in {
		got, ok := Parse([]byte(s))
		if !ok {
			t.Errorf("couldn't parse %q", s)
			continue
		}
		want, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(FromTime(want)) {
			t.Errorf("%q: got %s, want %s", s, got, FromTime(want))
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, ok := Parse([]byte("not a date")); ok {
		t.Fatal("expected Parse to reject a non-timestamp string")
	}
}

func TestDateComponents(t *testing.T) {
	d := Date(2022, 1, 2, 3, 4, 5, 6)
	if d.Year() != 2022 || d.Month() != 1 || d.Day() != 2 ||
		d.Hour() != 3 || d.Minute() != 4 || d.Second() != 5 || d.Nanosecond() != 6 {
		t.Fatalf("component mismatch: %+v", d)
	}
}

func TestDateNormalizesOverflow(t *testing.T) {
	// January 32nd should normalize to February 1st.
	d := Date(2023, 1, 32, 0, 0, 0, 0)
	if d.Month() != 2 || d.Day() != 1 {
		t.Fatalf("got month=%d day=%d, want Feb 1", d.Month(), d.Day())
	}
}

func TestBeforeAfterEqual(t *testing.T) {
	a := Date(2020, 1, 1, 0, 0, 0, 0)
	b := Date(2021, 1, 1, 0, 0, 0, 0)
	if !a.Before(b) || a.After(b) || a.Equal(b) {
		t.Fatal("ordering mismatch")
	}
	if !a.Equal(a) {
		t.Fatal("a must equal itself")
	}
}

func TestIsZero(t *testing.T) {
	var z Time
	if !z.IsZero() {
		t.Fatal("zero value must report IsZero")
	}
	if Date(2020, 1, 1, 0, 0, 0, 0).IsZero() {
		t.Fatal("non-zero date reported IsZero")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := Date(2022, 5, 6, 7, 8, 9, 0)
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	var got Time
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestJSONNull(t *testing.T) {
	var got Time
	if err := json.Unmarshal([]byte("null"), &got); err != nil {
		t.Fatal(err)
	}
	if !got.IsZero() {
		t.Fatal("unmarshaling null must leave the Time unchanged (zero)")
	}
}
