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

// IntersectionClass summarizes the intersections found between two sets of
// segments.
type IntersectionClass struct {
	// HasIntersection is true if any pair of segments intersects.
	HasIntersection bool
	// HasProper is true if some pair crosses at a point interior to both.
	HasProper bool
	// HasNonProper is true if some pair touches at an endpoint or overlaps.
	HasNonProper bool
	// HasInterior is true if some intersection point is interior to at least
	// one of its segments.
	HasInterior bool
}

// SegmentIntersectionDetector is a visitor for a SegmentIntersectionFinder
// that records which kinds of intersection occur. By default it is done at
// the first intersection; FindProper and FindAllTypes make it keep scanning.
//
// A detector accumulates state and is used for a single scan.
type SegmentIntersectionDetector struct {
	// FindProper keeps the scan going until a proper intersection is found.
	FindProper bool
	// FindAllTypes keeps the scan going until both a proper and a non-proper
	// intersection are found.
	FindAllTypes bool

	li    *LineIntersector
	class IntersectionClass

	intPt       geom.Coord
	intSegments [2]Segment
}

// NewSegmentIntersectionDetector returns a detector that stops at the first
// intersection.
func NewSegmentIntersectionDetector() *SegmentIntersectionDetector {
	return &SegmentIntersectionDetector{li: NewLineIntersector()}
}

// ProcessIntersections classifies the intersection between segment i0 of e0
// and segment i1 of e1.
func (d *SegmentIntersectionDetector) ProcessIntersections(e0 *SegmentString, i0 int, e1 *SegmentString, i1 int) {
	if e0 == e1 && i0 == i1 {
		return
	}
	s0, s1 := e0.Segment(i0), e1.Segment(i1)
	d.li.ComputeIntersection(s0.P0, s0.P1, s1.P0, s1.P1)
	if !d.li.HasIntersection() {
		return
	}

	d.class.HasIntersection = true
	isProper := d.li.IsProper()
	if isProper {
		d.class.HasProper = true
	} else {
		d.class.HasNonProper = true
	}
	if d.li.IsInteriorIntersection() {
		d.class.HasInterior = true
	}

	// With FindProper, a proper intersection replaces a non-proper one.
	if d.intPt == nil || !d.FindProper || isProper {
		d.intPt = d.li.Intersection(0)
		d.intSegments = [2]Segment{s0, s1}
	}
}

// IsDone reports whether the scan can stop.
func (d *SegmentIntersectionDetector) IsDone() bool {
	if d.FindAllTypes {
		return d.class.HasProper && d.class.HasNonProper
	}
	if d.FindProper {
		return d.class.HasProper
	}
	return d.class.HasIntersection
}

// HasIntersection reports whether any intersection was found.
func (d *SegmentIntersectionDetector) HasIntersection() bool { return d.class.HasIntersection }

// HasProperIntersection reports whether a proper intersection was found.
func (d *SegmentIntersectionDetector) HasProperIntersection() bool { return d.class.HasProper }

// HasNonProperIntersection reports whether a non-proper intersection was found.
func (d *SegmentIntersectionDetector) HasNonProperIntersection() bool { return d.class.HasNonProper }

// HasInteriorIntersection reports whether some intersection point was interior
// to at least one segment.
func (d *SegmentIntersectionDetector) HasInteriorIntersection() bool { return d.class.HasInterior }

// Intersection returns the recorded intersection point, or nil.
func (d *SegmentIntersectionDetector) Intersection() geom.Coord { return d.intPt }

// IntersectionSegments returns the pair of segments of the recorded
// intersection.
func (d *SegmentIntersectionDetector) IntersectionSegments() [2]Segment { return d.intSegments }

// Class returns the accumulated classification.
func (d *SegmentIntersectionDetector) Class() IntersectionClass { return d.class }
