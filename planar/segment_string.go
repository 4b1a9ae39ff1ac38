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

// Segment is a directed line segment from P0 to P1.
type Segment struct {
	P0, P1 geom.Coord
}

func (s Segment) String() string {
	return fmt.Sprintf("LINESTRING (%v %v, %v %v)", s.P0[0], s.P0[1], s.P1[0], s.P1[1])
}

// SegmentString is the ordered sequence of segments of one linear component
// (a line or a polygon ring). It refers to the coordinates of the geometry it
// was extracted from rather than copying them.
type SegmentString struct {
	flat      []float64
	stride    int
	component int
}

func newSegmentString(flat []float64, stride, component int) *SegmentString {
	return &SegmentString{flat: flat, stride: stride, component: component}
}

// NewSegmentStringFromCoords creates a SegmentString over a copy of the given
// coordinates.
func NewSegmentStringFromCoords(coords ...geom.Coord) *SegmentString {
	flat := make([]float64, 0, 2*len(coords))
	for _, c := range coords {
		flat = append(flat, c[0], c[1])
	}
	return newSegmentString(flat, 2, 0)
}

// NumCoords returns the number of coordinates.
func (s *SegmentString) NumCoords() int {
	return len(s.flat) / s.stride
}

// Coord returns the i-th coordinate.
func (s *SegmentString) Coord(i int) geom.Coord {
	return geom.Coord(s.flat[i*s.stride : i*s.stride+2])
}

// NumSegments returns the number of segments.
func (s *SegmentString) NumSegments() int {
	if n := s.NumCoords(); n > 1 {
		return n - 1
	}
	return 0
}

// Segment returns the i-th segment.
func (s *SegmentString) Segment(i int) Segment {
	return Segment{s.Coord(i), s.Coord(i + 1)}
}

// Component returns the index of the component the segments came from.
func (s *SegmentString) Component() int {
	return s.component
}

// IsClosed reports whether the first and last coordinates are equal.
func (s *SegmentString) IsClosed() bool {
	n := s.NumCoords()
	return n > 1 && coordsEqual(s.Coord(0), s.Coord(n-1))
}

// Envelope returns the envelope of the coordinates.
func (s *SegmentString) Envelope() Envelope {
	return flatEnvelope(s.flat, s.stride)
}

// ExtractSegmentStrings returns the linework of g: one SegmentString per line
// and per polygon ring with at least two coordinates. Points contribute
// nothing.
func ExtractSegmentStrings(g geom.T) []*SegmentString {
	var out []*SegmentString
	component := 0
	add := func(flat []float64, stride int) {
		if len(flat) >= 2*stride {
			out = append(out, newSegmentString(flat, stride, component))
		}
	}
	visitComponents(g, func(c geom.T) bool {
		switch c := c.(type) {
		case *geom.LineString, *geom.LinearRing:
			add(c.FlatCoords(), c.Stride())
		case *geom.Polygon:
			for i := 0; i < c.NumLinearRings(); i++ {
				add(c.LinearRing(i).FlatCoords(), c.Stride())
			}
		}
		component++
		return true
	})
	return out
}
