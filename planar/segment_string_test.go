// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package planar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/twpayne/go-geom"
)

func TestExtractSegmentStrings(t *testing.T) {
	tests := []struct {
		wkt      string
		segments []int
	}{
		{"POINT (1 1)", nil},
		{"MULTIPOINT ((1 1), (2 2))", nil},
		{diagonalWKT, []int{1}},
		{elbowWKT, []int{1, 1}},
		{squareHoleWKT, []int{4, 4}},
		{twoSquaresWKT, []int{4, 4}},
		{"GEOMETRYCOLLECTION (POINT (0 0), LINESTRING (0 0, 1 1, 2 0), POLYGON ((0 0, 1 0, 0 1, 0 0)))", []int{2, 3}},
	}
	for _, test := range tests {
		var got []int
		for _, ss := range ExtractSegmentStrings(parseWKT(t, test.wkt)) {
			got = append(got, ss.NumSegments())
		}
		if diff := cmp.Diff(test.segments, got); diff != "" {
			t.Errorf("ExtractSegmentStrings(%s) segment counts mismatch (-want +got):\n%s", test.wkt, diff)
		}
	}
}

func TestSegmentString(t *testing.T) {
	ss := NewSegmentStringFromCoords(geom.Coord{0, 0}, geom.Coord{4, 0}, geom.Coord{4, 3}, geom.Coord{0, 0})
	if got := ss.NumCoords(); got != 4 {
		t.Errorf("NumCoords() = %d, want 4", got)
	}
	if got := ss.NumSegments(); got != 3 {
		t.Errorf("NumSegments() = %d, want 3", got)
	}
	if !ss.IsClosed() {
		t.Error("IsClosed() = false, want true")
	}
	want := Segment{geom.Coord{4, 0}, geom.Coord{4, 3}}
	if diff := cmp.Diff(want, ss.Segment(1)); diff != "" {
		t.Errorf("Segment(1) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Envelope{0, 0, 4, 3}, ss.Envelope()); diff != "" {
		t.Errorf("Envelope() mismatch (-want +got):\n%s", diff)
	}

	single := NewSegmentStringFromCoords(geom.Coord{1, 1})
	if got := single.NumSegments(); got != 0 {
		t.Errorf("NumSegments() of a single coordinate = %d, want 0", got)
	}
}

func TestSegmentStringComponents(t *testing.T) {
	g := parseWKT(t, "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3), (4 4, 5 5))")
	var got []int
	for _, ss := range ExtractSegmentStrings(g) {
		got = append(got, ss.Component())
	}
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Errorf("Component() mismatch (-want +got):\n%s", diff)
	}
}
