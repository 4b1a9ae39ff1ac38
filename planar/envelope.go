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
	"math"

	"github.com/twpayne/go-geom"
)

// Envelope is an axis-aligned bounding rectangle. An envelope with
// MinX > MaxX is empty.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyEnvelope returns an envelope that covers nothing.
func EmptyEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// EnvelopeOf returns the envelope of all vertices of g.
func EnvelopeOf(g geom.T) Envelope {
	switch g := g.(type) {
	case *geom.GeometryCollection:
		env := EmptyEnvelope()
		for _, c := range g.Geoms() {
			env = env.ExpandToInclude(EnvelopeOf(c))
		}
		return env
	case *geom.Point, *geom.MultiPoint:
		// Empty points carry placeholder coordinates.
		env := EmptyEnvelope()
		visitComponents(g, func(c geom.T) bool {
			env = env.ExpandToInclude(flatEnvelope(componentCoords(c), c.Stride()))
			return true
		})
		return env
	case nil:
		return EmptyEnvelope()
	}
	return flatEnvelope(g.FlatCoords(), g.Stride())
}

// flatEnvelope returns the envelope of a flat coordinate sequence.
func flatEnvelope(flat []float64, stride int) Envelope {
	if stride < 2 || len(flat) < stride {
		return EmptyEnvelope()
	}
	minX, minY, maxX, maxY := BaseFlatEnvelope(flat, stride)
	return Envelope{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// segmentEnvelope returns the envelope of the segment p0-p1.
func segmentEnvelope(p0, p1 geom.Coord) Envelope {
	return Envelope{
		MinX: math.Min(p0[0], p1[0]), MinY: math.Min(p0[1], p1[1]),
		MaxX: math.Max(p0[0], p1[0]), MaxY: math.Max(p0[1], p1[1]),
	}
}

// IsEmpty reports whether the envelope covers nothing.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// Covers reports whether o lies entirely within e. An empty envelope neither
// covers nor is covered.
func (e Envelope) Covers(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.MinX >= e.MinX && o.MaxX <= e.MaxX &&
		o.MinY >= e.MinY && o.MaxY <= e.MaxY
}

// Intersects reports whether e and o share at least one point.
func (e Envelope) Intersects(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.MinX <= e.MaxX && o.MaxX >= e.MinX &&
		o.MinY <= e.MaxY && o.MaxY >= e.MinY
}

// ExpandToInclude returns the smallest envelope covering both e and o.
func (e Envelope) ExpandToInclude(o Envelope) Envelope {
	if o.IsEmpty() {
		return e
	}
	if e.IsEmpty() {
		return o
	}
	return Envelope{
		MinX: math.Min(e.MinX, o.MinX), MinY: math.Min(e.MinY, o.MinY),
		MaxX: math.Max(e.MaxX, o.MaxX), MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// ContainsPoint reports whether p lies in e or on its boundary.
func (e Envelope) ContainsPoint(p geom.Coord) bool {
	return p[0] >= e.MinX && p[0] <= e.MaxX && p[1] >= e.MinY && p[1] <= e.MaxY
}

func (e Envelope) String() string {
	if e.IsEmpty() {
		return "Envelope(empty)"
	}
	return fmt.Sprintf("Envelope(%v %v, %v %v)", e.MinX, e.MinY, e.MaxX, e.MaxY)
}
