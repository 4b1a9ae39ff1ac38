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

func polygonIntersects(p *PreparedGeometry, test geom.T) (bool, error) {
	if !p.EnvelopesIntersect(test) {
		return false, nil
	}
	if p.isRectangle {
		return rectangleIntersects(p.env, test), nil
	}

	// Point-in-polygon tests are cheaper than segment intersection and often
	// answer quickly.
	if p.isAnyTestComponentInTarget(test) {
		return true, nil
	}
	// Every point of a point set was sampled above.
	if GeometryDimension(test) == DimensionPoint {
		return false, nil
	}
	if p.segmentFinder().Intersects(ExtractSegmentStrings(test)) {
		return true, nil
	}
	// The target may lie wholly inside an areal test.
	if GeometryDimension(test) == DimensionSurface && p.isAnyTargetComponentInAreaTest(test) {
		return true, nil
	}
	return false, nil
}

func lineIntersects(p *PreparedGeometry, test geom.T) (bool, error) {
	if !p.EnvelopesIntersect(test) {
		return false, nil
	}
	if p.segmentFinder().Intersects(ExtractSegmentStrings(test)) {
		return true, nil
	}
	// With no crossing linework, the target can still lie inside a test
	// polygon.
	if GeometryDimension(test) == DimensionSurface && p.IsAnyTargetComponentInTest(test) {
		return true, nil
	}
	return p.isAnyTestPointOnTarget(test), nil
}

// isAnyTestPointOnTarget reports whether a point component of test lies on
// the target.
func (p *PreparedGeometry) isAnyTestPointOnTarget(test geom.T) bool {
	var locator PointLocator
	found := false
	visitComponents(test, func(c geom.T) bool {
		pt, ok := c.(*geom.Point)
		if !ok || pt.Empty() {
			return true
		}
		found = locator.Intersects(geom.Coord(pt.FlatCoords()), p.g)
		return !found
	})
	return found
}

func pointIntersects(p *PreparedGeometry, test geom.T) (bool, error) {
	if !p.EnvelopesIntersect(test) {
		return false, nil
	}
	return p.IsAnyTargetComponentInTest(test), nil
}
