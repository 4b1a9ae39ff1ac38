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
	"github.com/twpayne/go-geom/xy/orientation"
)

// intersectionType is the kind of intersection found between two segments.
type intersectionType int

const (
	noIntersection intersectionType = iota
	pointIntersection
	collinearIntersection
)

// LineIntersector computes the intersection of two line segments and
// classifies it. Orientation tests are exact, so the classification is
// consistent for nearly parallel or nearly touching segments.
//
// A LineIntersector holds the result of the last computation and is not safe
// for concurrent use.
type LineIntersector struct {
	input    [2][2]geom.Coord
	result   intersectionType
	isProper bool
	points   [2]geom.Coord
}

// NewLineIntersector returns a new LineIntersector.
func NewLineIntersector() *LineIntersector {
	return &LineIntersector{}
}

// ComputeIntersection computes the intersection of the segments p1-p2 and
// q1-q2.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 geom.Coord) {
	li.input = [2][2]geom.Coord{{p1, p2}, {q1, q2}}
	li.isProper = false
	li.result = li.computeIntersect(p1, p2, q1, q2)
}

// HasIntersection reports whether the last computed segments intersect.
func (li *LineIntersector) HasIntersection() bool {
	return li.result != noIntersection
}

// IsProper reports whether the segments cross at a single point which is in
// the interior of both of them.
func (li *LineIntersector) IsProper() bool {
	return li.HasIntersection() && li.isProper
}

// IsCollinear reports whether the segments overlap along a line.
func (li *LineIntersector) IsCollinear() bool {
	return li.result == collinearIntersection
}

// IntersectionNum returns the number of intersection points: 0, 1, or 2 for
// a collinear overlap.
func (li *LineIntersector) IntersectionNum() int {
	return int(li.result)
}

// Intersection returns the i-th intersection point.
func (li *LineIntersector) Intersection(i int) geom.Coord {
	return li.points[i]
}

// IsInteriorIntersection reports whether some intersection point lies in the
// interior of at least one of the segments.
func (li *LineIntersector) IsInteriorIntersection() bool {
	return li.IsInteriorIntersectionOf(0) || li.IsInteriorIntersectionOf(1)
}

// IsInteriorIntersectionOf reports whether some intersection point lies in
// the interior of input segment i (0 for p, 1 for q).
func (li *LineIntersector) IsInteriorIntersectionOf(i int) bool {
	for j := 0; j < li.IntersectionNum(); j++ {
		pt := li.points[j]
		if !coordsEqual(pt, li.input[i][0]) && !coordsEqual(pt, li.input[i][1]) {
			return true
		}
	}
	return false
}

func (li *LineIntersector) computeIntersect(p1, p2, q1, q2 geom.Coord) intersectionType {
	if !segmentEnvelope(p1, p2).Intersects(segmentEnvelope(q1, q2)) {
		return noIntersection
	}

	// If both endpoints of one segment lie strictly on the same side of the
	// other segment, there is no intersection.
	pq1 := bigxy.OrientationIndex(p1, p2, q1)
	pq2 := bigxy.OrientationIndex(p1, p2, q2)
	if (pq1 > orientation.Collinear && pq2 > orientation.Collinear) ||
		(pq1 < orientation.Collinear && pq2 < orientation.Collinear) {
		return noIntersection
	}
	qp1 := bigxy.OrientationIndex(q1, q2, p1)
	qp2 := bigxy.OrientationIndex(q1, q2, p2)
	if (qp1 > orientation.Collinear && qp2 > orientation.Collinear) ||
		(qp1 < orientation.Collinear && qp2 < orientation.Collinear) {
		return noIntersection
	}

	if pq1 == orientation.Collinear && pq2 == orientation.Collinear &&
		qp1 == orientation.Collinear && qp2 == orientation.Collinear {
		return li.computeCollinearIntersection(p1, p2, q1, q2)
	}

	// A single intersection point. When an endpoint lies on the other segment
	// the endpoint itself is the intersection, which keeps it exact.
	if pq1 == orientation.Collinear || pq2 == orientation.Collinear ||
		qp1 == orientation.Collinear || qp2 == orientation.Collinear {
		switch {
		case coordsEqual(p1, q1) || coordsEqual(p1, q2):
			li.points[0] = p1
		case coordsEqual(p2, q1) || coordsEqual(p2, q2):
			li.points[0] = p2
		case pq1 == orientation.Collinear:
			li.points[0] = q1
		case pq2 == orientation.Collinear:
			li.points[0] = q2
		case qp1 == orientation.Collinear:
			li.points[0] = p1
		case qp2 == orientation.Collinear:
			li.points[0] = p2
		}
		return pointIntersection
	}

	li.isProper = true
	li.points[0] = properIntersection(p1, p2, q1, q2)
	return pointIntersection
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 geom.Coord) intersectionType {
	q1inP := segmentEnvelope(p1, p2).ContainsPoint(q1)
	q2inP := segmentEnvelope(p1, p2).ContainsPoint(q2)
	p1inQ := segmentEnvelope(q1, q2).ContainsPoint(p1)
	p2inQ := segmentEnvelope(q1, q2).ContainsPoint(p2)

	switch {
	case q1inP && q2inP:
		li.points = [2]geom.Coord{q1, q2}
		return touchOrOverlap(q1, q2, false)
	case p1inQ && p2inQ:
		li.points = [2]geom.Coord{p1, p2}
		return touchOrOverlap(p1, p2, false)
	case q1inP && p1inQ:
		li.points = [2]geom.Coord{q1, p1}
		return touchOrOverlap(q1, p1, q2inP || p2inQ)
	case q1inP && p2inQ:
		li.points = [2]geom.Coord{q1, p2}
		return touchOrOverlap(q1, p2, q2inP || p1inQ)
	case q2inP && p1inQ:
		li.points = [2]geom.Coord{q2, p1}
		return touchOrOverlap(q2, p1, q1inP || p2inQ)
	case q2inP && p2inQ:
		li.points = [2]geom.Coord{q2, p2}
		return touchOrOverlap(q2, p2, q1inP || p1inQ)
	}
	return noIntersection
}

// touchOrOverlap distinguishes collinear segments meeting at a single point,
// end to end or because one of them is degenerate, from segments sharing a
// stretch of line.
func touchOrOverlap(a, b geom.Coord, otherInside bool) intersectionType {
	if coordsEqual(a, b) && !otherInside {
		return pointIntersection
	}
	return collinearIntersection
}

// properIntersection computes the crossing point of two segments known to
// cross properly, clamping it into the segment envelopes when rounding
// pushes it outside. Coordinates are translated to the centre of the
// envelope overlap first to limit cancellation.
func properIntersection(p1, p2, q1, q2 geom.Coord) geom.Coord {
	env := segmentEnvelope(p1, p2)
	qenv := segmentEnvelope(q1, q2)
	mx := (math.Max(env.MinX, qenv.MinX) + math.Min(env.MaxX, qenv.MaxX)) / 2
	my := (math.Max(env.MinY, qenv.MinY) + math.Min(env.MaxY, qenv.MaxY)) / 2

	p1x, p1y := p1[0]-mx, p1[1]-my
	p2x, p2y := p2[0]-mx, p2[1]-my
	q1x, q1y := q1[0]-mx, q1[1]-my
	q2x, q2y := q2[0]-mx, q2[1]-my

	// Homogeneous line equations.
	px, py, pw := p1y-p2y, p2x-p1x, p1x*p2y-p2x*p1y
	qx, qy, qw := q1y-q2y, q2x-q1x, q1x*q2y-q2x*q1y
	w := px*qy - qx*py
	pt := geom.Coord{(py*qw-qy*pw)/w + mx, (qx*pw-px*qw)/w + my}

	if w != 0 && env.ContainsPoint(pt) && qenv.ContainsPoint(pt) {
		return pt
	}
	return nearestEndpoint(pt, p1, p2, q1, q2)
}

func nearestEndpoint(pt geom.Coord, pts ...geom.Coord) geom.Coord {
	best, bestDist := pts[0], -1.0
	for _, p := range pts {
		dx, dy := p[0]-pt[0], p[1]-pt[1]
		if d := dx*dx + dy*dy; bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
