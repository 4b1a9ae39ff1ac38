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

// containsConfig selects between the contains and covers flavours of the
// shared containment procedure.
type containsConfig struct {
	// requireInteriorPoint is set for contains: some point of the test must
	// lie in the interior of the target.
	requireInteriorPoint bool
	// fallback is the exact predicate used when the boundary interaction is
	// ambiguous.
	fallback func(test geom.T) (bool, error)
}

func polygonContains(p *PreparedGeometry, test geom.T) (bool, error) {
	if !p.EnvelopeCovers(test) {
		return false, nil
	}
	if p.isRectangle {
		return rectangleContains(p.env, test), nil
	}
	return p.evalContainsCovers(test, containsConfig{
		requireInteriorPoint: true,
		fallback:             p.fallback("contains", Contains),
	})
}

func polygonCovers(p *PreparedGeometry, test geom.T) (bool, error) {
	if !p.EnvelopeCovers(test) {
		return false, nil
	}
	// A rectangle is its own envelope.
	if p.isRectangle {
		return true, nil
	}
	return p.evalContainsCovers(test, containsConfig{
		fallback: p.fallback("covers", Covers),
	})
}

// evalContainsCovers decides contains or covers for a polygonal target.
func (p *PreparedGeometry) evalContainsCovers(test geom.T, cfg containsConfig) (bool, error) {
	if !p.isAllTestVerticesInTarget(test) {
		return false, nil
	}

	// A point set needs no segment analysis, but contains requires one of the
	// points to be interior.
	if cfg.requireInteriorPoint && GeometryDimension(test) == DimensionPoint {
		return p.isAnyTestComponentInTargetInterior(test), nil
	}

	// A proper crossing puts part of the test outside the target when the
	// test is areal or the target has no holes.
	properImpliesNotContained := isPolygonal(test) || p.singleShell

	class := p.classifyIntersections(test)
	if properImpliesNotContained && class.HasProper {
		return false, nil
	}
	// Only proper intersections: the test interior reaches outside somewhere.
	if class.HasIntersection && !class.HasNonProper {
		return false, nil
	}
	if class.HasIntersection {
		return cfg.fallback(test)
	}

	// No boundary interaction: a target ring inside the test area means the
	// target's exterior meets the test's interior.
	//
	// TODO: also inspect the polygons of a GeometryCollection test.
	if isPolygonal(test) && p.isAnyTargetComponentInAreaTest(test) {
		return false, nil
	}
	return true, nil
}

// classifyIntersections scans every pair of target and test segments until
// both a proper and a non-proper intersection have been seen.
func (p *PreparedGeometry) classifyIntersections(test geom.T) IntersectionClass {
	d := NewSegmentIntersectionDetector()
	d.FindAllTypes = true
	p.segmentFinder().IntersectsWith(ExtractSegmentStrings(test), d)
	return d.Class()
}

func polygonContainsProperly(p *PreparedGeometry, test geom.T) (bool, error) {
	if !p.EnvelopeCovers(test) {
		return false, nil
	}
	return p.evalContainsProperly(test), nil
}

// evalContainsProperly decides whether test lies in the interior of a
// polygonal target. Any contact with the target boundary disqualifies it.
func (p *PreparedGeometry) evalContainsProperly(test geom.T) bool {
	if !p.isAllTestVerticesInTargetInterior(test) {
		return false
	}
	if p.segmentFinder().Intersects(ExtractSegmentStrings(test)) {
		return false
	}
	if isPolygonal(test) && p.isAnyTargetComponentInAreaTest(test) {
		return false
	}
	return true
}

// isAllTestVerticesInTarget reports whether no vertex of test is exterior to
// the target. It is vacuously true for an empty test.
func (p *PreparedGeometry) isAllTestVerticesInTarget(test geom.T) bool {
	locator := p.pointInAreaLocator()
	return forEachVertex(test, func(pt geom.Coord) bool {
		return locator.Locate(pt) != location.Exterior
	})
}

// isAllTestVerticesInTargetInterior reports whether every vertex of test is
// in the interior of the target.
func (p *PreparedGeometry) isAllTestVerticesInTargetInterior(test geom.T) bool {
	locator := p.pointInAreaLocator()
	return forEachVertex(test, func(pt geom.Coord) bool {
		return locator.Locate(pt) == location.Interior
	})
}

// isAnyTestComponentInTarget reports whether a representative point of some
// component of test is not exterior to the target.
func (p *PreparedGeometry) isAnyTestComponentInTarget(test geom.T) bool {
	locator := p.pointInAreaLocator()
	for _, pt := range ComponentCoordinates(test) {
		if locator.Locate(pt) != location.Exterior {
			return true
		}
	}
	return false
}

// isAnyTestComponentInTargetInterior reports whether a representative point
// of some component of test is in the interior of the target.
func (p *PreparedGeometry) isAnyTestComponentInTargetInterior(test geom.T) bool {
	locator := p.pointInAreaLocator()
	for _, pt := range ComponentCoordinates(test) {
		if locator.Locate(pt) == location.Interior {
			return true
		}
	}
	return false
}

// isAnyTargetComponentInAreaTest reports whether a representative point of
// the target lies in the closure of the areal components of test.
func (p *PreparedGeometry) isAnyTargetComponentInAreaTest(test geom.T) bool {
	locator := NewSimplePointInAreaLocator(test)
	for _, pt := range p.repPts {
		if locator.Locate(pt) != location.Exterior {
			return true
		}
	}
	return false
}
