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
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/location"
)

// PointLocator computes the topological location of a point relative to any
// geometry. Boundaries of lineal components follow the Mod-2 rule: an
// endpoint shared by an even number of lines is in the interior.
type PointLocator struct{}

// Intersects reports whether p lies in the interior or on the boundary of g.
func (l PointLocator) Intersects(p geom.Coord, g geom.T) bool {
	return l.Locate(p, g) != location.Exterior
}

// Locate returns the location of p relative to g.
func (l PointLocator) Locate(p geom.Coord, g geom.T) location.Type {
	switch g := g.(type) {
	case *geom.LineString:
		return locateOnLine(p, g)
	case *geom.LinearRing:
		return locateOnLine(p, g)
	case *geom.Polygon:
		return locateInPolygon(p, g)
	}

	var isIn bool
	var numBoundaries int
	visitComponents(g, func(c geom.T) bool {
		var loc location.Type
		switch c := c.(type) {
		case *geom.Point:
			if c.Empty() || !coordsEqual(p, c.FlatCoords()) {
				return true
			}
			loc = location.Interior
		case *geom.Polygon:
			loc = locateInPolygon(p, c)
		default:
			loc = locateOnLine(p, c)
		}
		switch loc {
		case location.Interior:
			isIn = true
		case location.Boundary:
			numBoundaries++
		}
		return true
	})

	if numBoundaries%2 == 1 {
		return location.Boundary
	}
	if numBoundaries > 0 || isIn {
		return location.Interior
	}
	return location.Exterior
}

// locateOnLine locates p on a LineString or LinearRing. The endpoints of an
// open line are its boundary.
func locateOnLine(p geom.Coord, line geom.T) location.Type {
	flat, stride := line.FlatCoords(), line.Stride()
	if len(flat) < stride {
		return location.Exterior
	}
	if !flatEnvelope(flat, stride).ContainsPoint(p) {
		return location.Exterior
	}
	first, last := geom.Coord(flat[:2]), geom.Coord(flat[len(flat)-stride:len(flat)-stride+2])
	if len(flat) < 2*stride {
		if coordsEqual(p, first) {
			return location.Interior
		}
		return location.Exterior
	}
	if !coordsEqual(first, last) && (coordsEqual(p, first) || coordsEqual(p, last)) {
		return location.Boundary
	}
	if xy.IsOnLine(line.Layout(), p, flat) {
		return location.Interior
	}
	return location.Exterior
}

// locateInPolygon locates p relative to a single polygon, taking holes into
// account.
func locateInPolygon(p geom.Coord, poly *geom.Polygon) location.Type {
	if poly.NumLinearRings() == 0 {
		return location.Exterior
	}
	switch locateInRing(p, poly.LinearRing(0)) {
	case location.Exterior:
		return location.Exterior
	case location.Boundary:
		return location.Boundary
	}
	for i := 1; i < poly.NumLinearRings(); i++ {
		switch locateInRing(p, poly.LinearRing(i)) {
		case location.Interior:
			return location.Exterior
		case location.Boundary:
			return location.Boundary
		}
	}
	return location.Interior
}

func locateInRing(p geom.Coord, ring *geom.LinearRing) location.Type {
	flat, stride := ring.FlatCoords(), ring.Stride()
	if len(flat) == 0 || !flatEnvelope(flat, stride).ContainsPoint(p) {
		return location.Exterior
	}
	return xy.LocatePointInRing(ring.Layout(), p, flat)
}
