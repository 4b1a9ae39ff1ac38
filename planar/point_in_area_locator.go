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
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy/location"
	"github.com/twpayne/go-geom/xy/orientation"
)

// PointInAreaLocator locates points relative to the areal components of a
// geometry. Points, lines and the exterior of all polygons are Exterior.
type PointInAreaLocator interface {
	Locate(p geom.Coord) location.Type
}

// Locator interface enforcement
var (
	_ PointInAreaLocator = (*SimplePointInAreaLocator)(nil)
	_ PointInAreaLocator = (*IndexedPointInAreaLocator)(nil)
)

// SimplePointInAreaLocator locates points by testing each shell and then its
// holes. It builds no index, so it suits geometries that are queried only a
// few times.
type SimplePointInAreaLocator struct {
	rings []RingRelation
	env   Envelope
}

// NewSimplePointInAreaLocator returns a locator for the areal components of g.
func NewSimplePointInAreaLocator(g geom.T) *SimplePointInAreaLocator {
	return &SimplePointInAreaLocator{rings: polygonRings(g), env: EnvelopeOf(g)}
}

// Locate returns the location of p. The first polygon whose closure holds p
// decides the result.
func (l *SimplePointInAreaLocator) Locate(p geom.Coord) location.Type {
	if !l.env.ContainsPoint(p) {
		return location.Exterior
	}
	for _, r := range l.rings {
		if !r.IsShell() {
			continue
		}
		switch locateInRing(p, r.Ring()) {
		case location.Exterior:
			continue
		case location.Boundary:
			return location.Boundary
		}
		if loc := l.locateInHoles(p, r); loc != location.Exterior {
			return loc
		}
	}
	return location.Exterior
}

// locateInHoles locates p, known to be inside shell, against the holes of
// shell: Exterior if a hole holds p, Boundary on a hole ring, else Interior.
func (l *SimplePointInAreaLocator) locateInHoles(p geom.Coord, shell RingRelation) location.Type {
	for _, h := range shell.Holes {
		switch locateInRing(p, l.rings[h].Ring()) {
		case location.Interior:
			return location.Exterior
		case location.Boundary:
			return location.Boundary
		}
	}
	return location.Interior
}

// IndexedPointInAreaLocator locates points with a ray-crossing count over the
// ring segments of the areal components of a geometry. Segments are held in
// an interval index on Y, so each query only visits segments spanning the
// query ordinate.
type IndexedPointInAreaLocator struct {
	env      Envelope
	segments []Segment
	index    *intervalIndex
}

// NewIndexedPointInAreaLocator builds a locator for the areal components of g.
func NewIndexedPointInAreaLocator(g geom.T) *IndexedPointInAreaLocator {
	l := &IndexedPointInAreaLocator{env: EmptyEnvelope()}
	var mins, maxs []float64
	for _, r := range polygonRings(g) {
		ss := r.SegmentString()
		for i := 0; i < ss.NumSegments(); i++ {
			s := ss.Segment(i)
			l.segments = append(l.segments, s)
			mins = append(mins, math.Min(s.P0[1], s.P1[1]))
			maxs = append(maxs, math.Max(s.P0[1], s.P1[1]))
		}
		if r.IsShell() {
			l.env = l.env.ExpandToInclude(ss.Envelope())
		}
	}
	l.index = newIntervalIndex(mins, maxs)
	return l
}

// NumSegments returns the number of indexed ring segments.
func (l *IndexedPointInAreaLocator) NumSegments() int {
	return l.index.NumItems()
}

// Locate returns the location of p.
func (l *IndexedPointInAreaLocator) Locate(p geom.Coord) location.Type {
	if !l.env.ContainsPoint(p) {
		return location.Exterior
	}
	counter := rayCrossingCounter{p: p}
	l.index.Query(p[1], p[1], func(i int) {
		if !counter.isPointOnSegment {
			counter.countSegment(l.segments[i].P0, l.segments[i].P1)
		}
	})
	return counter.location()
}

// rayCrossingCounter counts the crossings of a horizontal ray running from p
// in the positive X direction.
type rayCrossingCounter struct {
	p             geom.Coord
	crossingCount int
	// true if p lies on a counted segment
	isPointOnSegment bool
}

func (c *rayCrossingCounter) location() location.Type {
	if c.isPointOnSegment {
		return location.Boundary
	}
	if c.crossingCount%2 == 1 {
		return location.Interior
	}
	return location.Exterior
}

func (c *rayCrossingCounter) countSegment(p1, p2 geom.Coord) {
	// Segment strictly to the left of the point.
	if p1[0] < c.p[0] && p2[0] < c.p[0] {
		return
	}

	if c.p[0] == p2[0] && c.p[1] == p2[1] {
		c.isPointOnSegment = true
		return
	}

	// Horizontal segments only matter when the point is on them.
	if p1[1] == c.p[1] && p2[1] == c.p[1] {
		minx, maxx := math.Min(p1[0], p2[0]), math.Max(p1[0], p2[0])
		if c.p[0] >= minx && c.p[0] <= maxx {
			c.isPointOnSegment = true
		}
		return
	}

	// An upward segment includes its start and excludes its end; a downward
	// segment the reverse. Shared vertices are therefore counted once.
	if (p1[1] > c.p[1] && p2[1] <= c.p[1]) || (p2[1] > c.p[1] && p1[1] <= c.p[1]) {
		sign := bigxy.OrientationIndex(c.p, p1, p2)
		if sign == orientation.Collinear {
			c.isPointOnSegment = true
			return
		}
		if p2[1] < p1[1] {
			sign = -sign
		}
		if sign > orientation.Collinear {
			c.crossingCount++
		}
	}
}
