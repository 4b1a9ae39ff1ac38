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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

func TestLineIntersector(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 geom.Coord
		num            int
		proper         bool
		interior       bool
		points         []geom.Coord
	}{
		{
			name: "crossing",
			p1:   geom.Coord{0, 0}, p2: geom.Coord{10, 10},
			q1: geom.Coord{0, 10}, q2: geom.Coord{10, 0},
			num: 1, proper: true, interior: true,
			points: []geom.Coord{{5, 5}},
		},
		{
			name: "shared endpoint",
			p1:   geom.Coord{0, 0}, p2: geom.Coord{5, 5},
			q1: geom.Coord{5, 5}, q2: geom.Coord{10, 0},
			num:    1,
			points: []geom.Coord{{5, 5}},
		},
		{
			name: "endpoint on interior",
			p1:   geom.Coord{0, 0}, p2: geom.Coord{10, 0},
			q1: geom.Coord{5, 0}, q2: geom.Coord{5, 5},
			num: 1, interior: true,
			points: []geom.Coord{{5, 0}},
		},
		{
			name: "collinear overlap",
			p1:   geom.Coord{0, 0}, p2: geom.Coord{10, 0},
			q1: geom.Coord{5, 0}, q2: geom.Coord{15, 0},
			num: 2, interior: true,
			points: []geom.Coord{{5, 0}, {10, 0}},
		},
		{
			name: "collinear end to end",
			p1:   geom.Coord{0, 0}, p2: geom.Coord{5, 0},
			q1: geom.Coord{5, 0}, q2: geom.Coord{10, 0},
			num:    1,
			points: []geom.Coord{{5, 0}},
		},
		{
			name: "collinear disjoint",
			p1:   geom.Coord{0, 0}, p2: geom.Coord{4, 0},
			q1: geom.Coord{5, 0}, q2: geom.Coord{10, 0},
		},
		{
			name: "parallel",
			p1:   geom.Coord{0, 0}, p2: geom.Coord{10, 0},
			q1: geom.Coord{0, 1}, q2: geom.Coord{10, 1},
		},
		{
			name: "degenerate on segment",
			p1:   geom.Coord{3, 0}, p2: geom.Coord{3, 0},
			q1: geom.Coord{0, 0}, q2: geom.Coord{10, 0},
			num: 1, interior: true,
			points: []geom.Coord{{3, 0}},
		},
		{
			name: "degenerate off segment",
			p1:   geom.Coord{3, 1}, p2: geom.Coord{3, 1},
			q1: geom.Coord{0, 0}, q2: geom.Coord{10, 0},
		},
	}
	li := NewLineIntersector()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			li.ComputeIntersection(test.p1, test.p2, test.q1, test.q2)
			if got := li.IntersectionNum(); got != test.num {
				t.Fatalf("IntersectionNum() = %d, want %d", got, test.num)
			}
			if got := li.HasIntersection(); got != (test.num > 0) {
				t.Errorf("HasIntersection() = %v, want %v", got, test.num > 0)
			}
			if got := li.IsProper(); got != test.proper {
				t.Errorf("IsProper() = %v, want %v", got, test.proper)
			}
			if got := li.IsCollinear(); got != (test.num == 2) {
				t.Errorf("IsCollinear() = %v, want %v", got, test.num == 2)
			}
			if got := li.IsInteriorIntersection(); got != test.interior {
				t.Errorf("IsInteriorIntersection() = %v, want %v", got, test.interior)
			}
			var got []geom.Coord
			for i := 0; i < li.IntersectionNum(); i++ {
				got = append(got, li.Intersection(i))
			}
			if diff := cmp.Diff(test.points, got); diff != "" {
				t.Errorf("intersection points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineIntersectorAgreesWithRobustIntersector(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	// Small integer grids produce many touching and collinear cases.
	coord := func() geom.Coord {
		return geom.Coord{float64(rng.Intn(6)), float64(rng.Intn(6))}
	}
	li := NewLineIntersector()
	for i := 0; i < 2000; i++ {
		p1, p2, q1, q2 := coord(), coord(), coord(), coord()
		if coordsEqual(p1, p2) || coordsEqual(q1, q2) {
			continue
		}
		li.ComputeIntersection(p1, p2, q1, q2)
		res := lineintersector.LineIntersectsLine(lineintersector.RobustLineIntersector{}, p1, p2, q1, q2)
		if got, want := li.HasIntersection(), res.HasIntersection(); got != want {
			t.Errorf("HasIntersection(%v-%v, %v-%v) = %v, want %v", p1, p2, q1, q2, got, want)
		}
	}
}
