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
	"fmt"

	"github.com/twpayne/go-geom"
)

// Dimension is the topological dimension of a geometry, or of an entry of an
// IntersectionMatrix.
type Dimension int

const (
	// DimensionFalse is the dimension of the empty set. It is used for empty
	// geometry collections and for matrix entries with no intersection.
	DimensionFalse Dimension = -1
	// DimensionPoint is the dimension of points.
	DimensionPoint Dimension = 0
	// DimensionCurve is the dimension of lines and rings.
	DimensionCurve Dimension = 1
	// DimensionSurface is the dimension of polygons.
	DimensionSurface Dimension = 2
)

func (d Dimension) String() string {
	switch d {
	case DimensionFalse:
		return "F"
	case DimensionPoint:
		return "0"
	case DimensionCurve:
		return "1"
	case DimensionSurface:
		return "2"
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

// GeometryDimension returns the dimension of g. A geometry collection has the
// largest dimension of its components.
func GeometryDimension(g geom.T) Dimension {
	switch g := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return DimensionPoint
	case *geom.LineString, *geom.LinearRing, *geom.MultiLineString:
		return DimensionCurve
	case *geom.Polygon, *geom.MultiPolygon:
		return DimensionSurface
	case *geom.GeometryCollection:
		dim := DimensionFalse
		for _, c := range g.Geoms() {
			if d := GeometryDimension(c); d > dim {
				dim = d
			}
		}
		return dim
	}
	return DimensionFalse
}

// isPolygonal reports whether g is a Polygon or a MultiPolygon.
func isPolygonal(g geom.T) bool {
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		return true
	}
	return false
}

// isLineal reports whether g is a LineString, LinearRing or MultiLineString.
func isLineal(g geom.T) bool {
	switch g.(type) {
	case *geom.LineString, *geom.LinearRing, *geom.MultiLineString:
		return true
	}
	return false
}

// isPuntal reports whether g is a Point or a MultiPoint.
func isPuntal(g geom.T) bool {
	switch g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return true
	}
	return false
}

// visitComponents calls fn for every atomic component of g (Point,
// LineString, LinearRing or Polygon), descending into multi-geometries and
// collections. It stops as soon as fn returns false, and reports whether the
// walk ran to completion.
func visitComponents(g geom.T, fn func(c geom.T) bool) bool {
	switch g := g.(type) {
	case *geom.Point, *geom.LineString, *geom.LinearRing, *geom.Polygon:
		return fn(g)
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			if !fn(g.Point(i)) {
				return false
			}
		}
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			if !fn(g.LineString(i)) {
				return false
			}
		}
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if !fn(g.Polygon(i)) {
				return false
			}
		}
	case *geom.GeometryCollection:
		for _, c := range g.Geoms() {
			if !visitComponents(c, fn) {
				return false
			}
		}
	}
	return true
}

// componentCoords returns the flat coordinates of an atomic component. Empty
// points have no coordinates.
func componentCoords(c geom.T) []float64 {
	if p, ok := c.(*geom.Point); ok && p.Empty() {
		return nil
	}
	return c.FlatCoords()
}

// forEachVertex calls fn for every vertex of g until fn returns false. It
// reports whether every vertex was visited.
func forEachVertex(g geom.T, fn func(p geom.Coord) bool) bool {
	return visitComponents(g, func(c geom.T) bool {
		flat, stride := componentCoords(c), c.Stride()
		for i := 0; i+1 < len(flat); i += stride {
			if !fn(geom.Coord(flat[i : i+2])) {
				return false
			}
		}
		return true
	})
}

// ComponentCoordinates returns one representative coordinate for each point,
// line and ring of g. The coordinates are copies.
func ComponentCoordinates(g geom.T) []geom.Coord {
	var pts []geom.Coord
	add := func(flat []float64) {
		if len(flat) >= 2 {
			pts = append(pts, geom.Coord{flat[0], flat[1]})
		}
	}
	visitComponents(g, func(c geom.T) bool {
		if poly, ok := c.(*geom.Polygon); ok {
			for i := 0; i < poly.NumLinearRings(); i++ {
				add(poly.LinearRing(i).FlatCoords())
			}
			return true
		}
		add(componentCoords(c))
		return true
	})
	return pts
}

func coordsEqual(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}
