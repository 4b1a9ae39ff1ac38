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
	"github.com/twpayne/go-geom"
)

// RingRelation models the shell/hole relationship of one ring of a polygonal
// geometry.
type RingRelation struct {
	Polygon  int   // index of the polygon component owning the ring
	ParentID int   // -1 if shell, otherwise index of the enclosing shell ring
	Holes    []int // indices of the hole rings of a shell
	ring     *geom.LinearRing
}

// IsShell returns true if the ring has no parent.
func (r RingRelation) IsShell() bool {
	return r.ParentID < 0
}

// Ring returns the ring itself.
func (r RingRelation) Ring() *geom.LinearRing {
	return r.ring
}

// SegmentString returns the linework of the ring.
func (r RingRelation) SegmentString() *SegmentString {
	return newSegmentString(r.ring.FlatCoords(), r.ring.Stride(), r.Polygon)
}

// polygonRings returns the rings of every polygon component of g, each shell
// followed by its holes. Empty holes are skipped, as are polygons with an
// empty shell.
func polygonRings(g geom.T) []RingRelation {
	var rings []RingRelation
	polyID := 0
	visitComponents(g, func(c geom.T) bool {
		poly, ok := c.(*geom.Polygon)
		if !ok {
			return true
		}
		if poly.NumLinearRings() == 0 || len(poly.LinearRing(0).FlatCoords()) == 0 {
			return true
		}
		shell := len(rings)
		rings = append(rings, RingRelation{Polygon: polyID, ParentID: -1, ring: poly.LinearRing(0)})
		for i := 1; i < poly.NumLinearRings(); i++ {
			ring := poly.LinearRing(i)
			if len(ring.FlatCoords()) == 0 {
				continue
			}
			rings[shell].Holes = append(rings[shell].Holes, len(rings))
			rings = append(rings, RingRelation{Polygon: polyID, ParentID: shell, ring: ring})
		}
		polyID++
		return true
	})
	return rings
}

// isSingleShell reports whether the areal part of g is one shell without
// holes.
func isSingleShell(g geom.T) bool {
	rings := polygonRings(g)
	return len(rings) == 1 && len(rings[0].Holes) == 0
}
