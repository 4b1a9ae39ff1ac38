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
	"github.com/twpayne/go-geom/xy/location"
)

// isRectangle reports whether g is a single polygon without holes whose
// shell is an axis-aligned rectangle of five coordinates.
func isRectangle(g geom.T) bool {
	poly, ok := g.(*geom.Polygon)
	if !ok || poly.NumLinearRings() != 1 {
		return false
	}
	shell := poly.LinearRing(0)
	if shell.NumCoords() != 5 {
		return false
	}
	env := flatEnvelope(shell.FlatCoords(), shell.Stride())
	for i := 0; i < 5; i++ {
		c := shell.Coord(i)
		if c[0] != env.MinX && c[0] != env.MaxX {
			return false
		}
		if c[1] != env.MinY && c[1] != env.MaxY {
			return false
		}
	}
	// Sides alternate between horizontal and vertical.
	prev := shell.Coord(0)
	for i := 1; i < 5; i++ {
		c := shell.Coord(i)
		xChanged, yChanged := c[0] != prev[0], c[1] != prev[1]
		if xChanged == yChanged {
			return false
		}
		prev = c
	}
	return true
}

// rectangleContains reports whether the rectangle rect contains test. Since
// test lies within rect once the envelope check passes, it is contained
// unless it lies entirely in the rectangle boundary.
func rectangleContains(rect Envelope, test geom.T) bool {
	if !rect.Covers(EnvelopeOf(test)) {
		return false
	}
	return !isContainedInBoundary(rect, test)
}

func isContainedInBoundary(rect Envelope, g geom.T) bool {
	switch g := g.(type) {
	// A polygon inside a rectangle always has interior in common with it.
	case *geom.Polygon:
		return false
	case *geom.Point:
		if g.Empty() {
			return true
		}
		return isPointContainedInBoundary(rect, g.FlatCoords())
	case *geom.LineString, *geom.LinearRing:
		if len(g.FlatCoords()) == 0 {
			return true
		}
		return isLineContainedInBoundary(rect, newSegmentString(g.FlatCoords(), g.Stride(), 0))
	}
	return visitComponents(g, func(c geom.T) bool {
		return isContainedInBoundary(rect, c)
	})
}

func isPointContainedInBoundary(rect Envelope, p geom.Coord) bool {
	return p[0] == rect.MinX || p[0] == rect.MaxX ||
		p[1] == rect.MinY || p[1] == rect.MaxY
}

func isLineContainedInBoundary(rect Envelope, ss *SegmentString) bool {
	if ss.NumCoords() == 1 {
		return isPointContainedInBoundary(rect, ss.Coord(0))
	}
	for i := 0; i < ss.NumSegments(); i++ {
		if !isSegmentContainedInBoundary(rect, ss.Coord(i), ss.Coord(i+1)) {
			return false
		}
	}
	return true
}

// isSegmentContainedInBoundary assumes the segment lies within rect.
func isSegmentContainedInBoundary(rect Envelope, p0, p1 geom.Coord) bool {
	if coordsEqual(p0, p1) {
		return isPointContainedInBoundary(rect, p0)
	}
	switch {
	case p0[0] == p1[0]:
		return p0[0] == rect.MinX || p0[0] == rect.MaxX
	case p0[1] == p1[1]:
		return p0[1] == rect.MinY || p0[1] == rect.MaxY
	}
	return false
}

// rectangleIntersects reports whether the rectangle rect intersects test.
func rectangleIntersects(rect Envelope, test geom.T) bool {
	if !rect.Intersects(EnvelopeOf(test)) {
		return false
	}
	if intersectsByComponentEnvelope(rect, test) {
		return true
	}
	if containsRectangleCorner(rect, test) {
		return true
	}
	return intersectsRectangleBoundary(rect, test)
}

// intersectsByComponentEnvelope looks for a component whose envelope alone
// proves the intersection: one inside the rectangle, or a connected one that
// spans it in X or in Y.
func intersectsByComponentEnvelope(rect Envelope, g geom.T) bool {
	return !visitComponents(g, func(c geom.T) bool {
		env := EnvelopeOf(c)
		if !rect.Intersects(env) {
			return true
		}
		if rect.Covers(env) {
			return false
		}
		if env.MinX >= rect.MinX && env.MaxX <= rect.MaxX {
			return false
		}
		if env.MinY >= rect.MinY && env.MaxY <= rect.MaxY {
			return false
		}
		return true
	})
}

// containsRectangleCorner reports whether a polygon of g holds a corner of
// the rectangle in its closure.
func containsRectangleCorner(rect Envelope, g geom.T) bool {
	corners := [4]geom.Coord{
		{rect.MinX, rect.MinY},
		{rect.MinX, rect.MaxY},
		{rect.MaxX, rect.MaxY},
		{rect.MaxX, rect.MinY},
	}
	return !visitComponents(g, func(c geom.T) bool {
		poly, ok := c.(*geom.Polygon)
		if !ok || !rect.Intersects(EnvelopeOf(poly)) {
			return true
		}
		for _, corner := range corners {
			if locateInPolygon(corner, poly) != location.Exterior {
				return false
			}
		}
		return true
	})
}

// intersectsRectangleBoundary reports whether any segment of g meets the
// rectangle.
func intersectsRectangleBoundary(rect Envelope, g geom.T) bool {
	li := NewLineIntersector()
	for _, ss := range ExtractSegmentStrings(g) {
		if !rect.Intersects(ss.Envelope()) {
			continue
		}
		for i := 0; i < ss.NumSegments(); i++ {
			if rectangleSegmentIntersects(rect, ss.Coord(i), ss.Coord(i+1), li) {
				return true
			}
		}
	}
	return false
}

// rectangleSegmentIntersects tests p0-p1 against the rectangle. A segment
// with neither endpoint inside the rectangle meets it only if it crosses the
// diagonal running against the segment's slope.
func rectangleSegmentIntersects(rect Envelope, p0, p1 geom.Coord, li *LineIntersector) bool {
	if !rect.Intersects(segmentEnvelope(p0, p1)) {
		return false
	}
	if rect.ContainsPoint(p0) || rect.ContainsPoint(p1) {
		return true
	}
	if p0[0] > p1[0] {
		p0, p1 = p1, p0
	}
	if p1[1] > p0[1] {
		li.ComputeIntersection(p0, p1, geom.Coord{rect.MinX, rect.MaxY}, geom.Coord{rect.MaxX, rect.MinY})
	} else {
		li.ComputeIntersection(p0, p1, geom.Coord{rect.MinX, rect.MinY}, geom.Coord{rect.MaxX, rect.MaxY})
	}
	return li.HasIntersection()
}
