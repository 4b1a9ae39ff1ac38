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

	"github.com/dhconnelly/rtreego"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50

	// Query rectangles are grown by this fraction of the indexed extent so
	// that segments whose envelopes only touch are still reported.
	queryPaddingFraction = 1e-12
)

// SegmentIntersectionFinder answers whether segment strings intersect a fixed
// set of base segment strings. The base segments are held in an R-tree; the
// finder is read-only once built and may be shared between goroutines.
type SegmentIntersectionFinder struct {
	tree        *rtreego.Rtree
	numSegments int
	padding     float64
}

// indexedSegment is one base segment stored in the R-tree.
type indexedSegment struct {
	ss   *SegmentString
	i    int
	rect rtreego.Rect
}

func (s *indexedSegment) Bounds() rtreego.Rect { return s.rect }

// NewSegmentIntersectionFinder indexes the segments of base.
func NewSegmentIntersectionFinder(base []*SegmentString) *SegmentIntersectionFinder {
	f := &SegmentIntersectionFinder{tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)}
	extent := 0.0
	for _, ss := range base {
		for i := 0; i < ss.NumSegments(); i++ {
			env := segmentEnvelope(ss.Coord(i), ss.Coord(i+1))
			f.tree.Insert(&indexedSegment{ss: ss, i: i, rect: envelopeRect(env, 0)})
			f.numSegments++
			extent = math.Max(extent, math.Max(
				math.Max(math.Abs(env.MinX), math.Abs(env.MaxX)),
				math.Max(math.Abs(env.MinY), math.Abs(env.MaxY))))
		}
	}
	f.padding = queryPaddingFraction * (1 + extent)
	return f
}

// NumSegments returns the number of indexed base segments.
func (f *SegmentIntersectionFinder) NumSegments() int {
	return f.numSegments
}

// Intersects reports whether any segment of segStrings intersects a base
// segment.
func (f *SegmentIntersectionFinder) Intersects(segStrings []*SegmentString) bool {
	d := NewSegmentIntersectionDetector()
	f.IntersectsWith(segStrings, d)
	return d.HasIntersection()
}

// IntersectsWith feeds every candidate pair of base and test segments to d
// until d reports it is done.
func (f *SegmentIntersectionFinder) IntersectsWith(segStrings []*SegmentString, d *SegmentIntersectionDetector) {
	if f.numSegments == 0 {
		return
	}
	for _, ss := range segStrings {
		for i := 0; i < ss.NumSegments(); i++ {
			query := envelopeRect(segmentEnvelope(ss.Coord(i), ss.Coord(i+1)), f.padding)
			for _, obj := range f.tree.SearchIntersect(query) {
				base := obj.(*indexedSegment)
				d.ProcessIntersections(base.ss, base.i, ss, i)
				if d.IsDone() {
					return
				}
			}
		}
	}
}

// envelopeRect converts an envelope to an R-tree rectangle grown by pad on
// every side.
func envelopeRect(e Envelope, pad float64) rtreego.Rect {
	// NewRectFromPoints only fails on mismatched dimensions.
	r, _ := rtreego.NewRectFromPoints(
		rtreego.Point{e.MinX - pad, e.MinY - pad},
		rtreego.Point{e.MaxX + pad, e.MaxY + pad},
	)
	return r
}
