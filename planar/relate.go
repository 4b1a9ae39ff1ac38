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
	"strings"

	sfgeom "github.com/peterstace/simplefeatures/geom"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"github.com/twpayne/go-geom/xy/location"
)

// IntersectionMatrix is a DE-9IM matrix. Rows are indexed by the location in
// the first geometry and columns by the location in the second, using the
// location.Interior, location.Boundary and location.Exterior values.
type IntersectionMatrix [3][3]Dimension

// ParseIntersectionMatrix parses the 9-character row-major form of a matrix,
// for example "212101212".
func ParseIntersectionMatrix(s string) (IntersectionMatrix, error) {
	var m IntersectionMatrix
	if len(s) != 9 {
		return m, errors.Errorf("intersection matrix %q: want 9 characters", s)
	}
	for i := 0; i < 9; i++ {
		var d Dimension
		switch s[i] {
		case 'F', 'f':
			d = DimensionFalse
		case '0':
			d = DimensionPoint
		case '1':
			d = DimensionCurve
		case '2':
			d = DimensionSurface
		default:
			return m, errors.Errorf("intersection matrix %q: invalid entry %q", s, s[i])
		}
		m[i/3][i%3] = d
	}
	return m, nil
}

func (m IntersectionMatrix) String() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b.WriteString(m[i][j].String())
		}
	}
	return b.String()
}

func (m IntersectionMatrix) at(a, b location.Type) Dimension {
	return m[a][b]
}

func (m IntersectionMatrix) isTrue(a, b location.Type) bool {
	return m.at(a, b) != DimensionFalse
}

func (m IntersectionMatrix) isFalse(a, b location.Type) bool {
	return m.at(a, b) == DimensionFalse
}

// Matches reports whether m matches a DE-9IM pattern of 9 characters from
// "TF*012".
func (m IntersectionMatrix) Matches(pattern string) bool {
	if len(pattern) != 9 {
		return false
	}
	for i := 0; i < 9; i++ {
		d := m[i/3][i%3]
		switch pattern[i] {
		case '*':
		case 'T', 't':
			if d == DimensionFalse {
				return false
			}
		case 'F', 'f':
			if d != DimensionFalse {
				return false
			}
		case '0', '1', '2':
			if d != Dimension(pattern[i]-'0') {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (m IntersectionMatrix) hasPointInCommon() bool {
	return m.isTrue(location.Interior, location.Interior) ||
		m.isTrue(location.Interior, location.Boundary) ||
		m.isTrue(location.Boundary, location.Interior) ||
		m.isTrue(location.Boundary, location.Boundary)
}

// IsDisjoint reports whether the geometries have no point in common.
func (m IntersectionMatrix) IsDisjoint() bool { return !m.hasPointInCommon() }

// IsIntersects reports whether the geometries have at least one point in common.
func (m IntersectionMatrix) IsIntersects() bool { return m.hasPointInCommon() }

// IsContains reports whether the first geometry contains the second.
func (m IntersectionMatrix) IsContains() bool {
	return m.isTrue(location.Interior, location.Interior) &&
		m.isFalse(location.Exterior, location.Interior) &&
		m.isFalse(location.Exterior, location.Boundary)
}

// IsContainsProperly reports whether the second geometry lies in the interior
// of the first.
func (m IntersectionMatrix) IsContainsProperly() bool {
	return m.Matches("T**FF*FF*")
}

// IsCovers reports whether every point of the second geometry is a point of
// the first.
func (m IntersectionMatrix) IsCovers() bool {
	return m.hasPointInCommon() &&
		m.isFalse(location.Exterior, location.Interior) &&
		m.isFalse(location.Exterior, location.Boundary)
}

// IsCoveredBy reports whether every point of the first geometry is a point of
// the second.
func (m IntersectionMatrix) IsCoveredBy() bool {
	return m.hasPointInCommon() &&
		m.isFalse(location.Interior, location.Exterior) &&
		m.isFalse(location.Boundary, location.Exterior)
}

// IsWithin reports whether the first geometry is within the second.
func (m IntersectionMatrix) IsWithin() bool {
	return m.isTrue(location.Interior, location.Interior) &&
		m.isFalse(location.Interior, location.Exterior) &&
		m.isFalse(location.Boundary, location.Exterior)
}

// IsTouches reports whether the geometries touch, given their dimensions.
func (m IntersectionMatrix) IsTouches(dimA, dimB Dimension) bool {
	if dimA > dimB {
		return m.Transpose().IsTouches(dimB, dimA)
	}
	if dimA == DimensionPoint && dimB == DimensionPoint {
		return false
	}
	if dimA == DimensionFalse || dimB == DimensionFalse {
		return false
	}
	return m.isFalse(location.Interior, location.Interior) &&
		(m.isTrue(location.Interior, location.Boundary) ||
			m.isTrue(location.Boundary, location.Interior) ||
			m.isTrue(location.Boundary, location.Boundary))
}

// IsCrosses reports whether the geometries cross, given their dimensions.
func (m IntersectionMatrix) IsCrosses(dimA, dimB Dimension) bool {
	switch {
	case dimA == DimensionPoint && dimB == DimensionCurve,
		dimA == DimensionPoint && dimB == DimensionSurface,
		dimA == DimensionCurve && dimB == DimensionSurface:
		return m.isTrue(location.Interior, location.Interior) &&
			m.isTrue(location.Interior, location.Exterior)
	case dimA == DimensionCurve && dimB == DimensionPoint,
		dimA == DimensionSurface && dimB == DimensionPoint,
		dimA == DimensionSurface && dimB == DimensionCurve:
		return m.isTrue(location.Interior, location.Interior) &&
			m.isTrue(location.Exterior, location.Interior)
	case dimA == DimensionCurve && dimB == DimensionCurve:
		return m.at(location.Interior, location.Interior) == DimensionPoint
	}
	return false
}

// IsOverlaps reports whether the geometries overlap, given their dimensions.
func (m IntersectionMatrix) IsOverlaps(dimA, dimB Dimension) bool {
	switch {
	case dimA == DimensionPoint && dimB == DimensionPoint,
		dimA == DimensionSurface && dimB == DimensionSurface:
		return m.isTrue(location.Interior, location.Interior) &&
			m.isTrue(location.Interior, location.Exterior) &&
			m.isTrue(location.Exterior, location.Interior)
	case dimA == DimensionCurve && dimB == DimensionCurve:
		return m.at(location.Interior, location.Interior) == DimensionCurve &&
			m.isTrue(location.Interior, location.Exterior) &&
			m.isTrue(location.Exterior, location.Interior)
	}
	return false
}

// IsEquals reports whether the geometries are topologically equal, given
// their dimensions.
func (m IntersectionMatrix) IsEquals(dimA, dimB Dimension) bool {
	if dimA != dimB {
		return false
	}
	return m.isTrue(location.Interior, location.Interior) &&
		m.isFalse(location.Interior, location.Exterior) &&
		m.isFalse(location.Boundary, location.Exterior) &&
		m.isFalse(location.Exterior, location.Interior) &&
		m.isFalse(location.Exterior, location.Boundary)
}

// Transpose returns the matrix of the relation with the arguments swapped.
func (m IntersectionMatrix) Transpose() IntersectionMatrix {
	var t IntersectionMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// Relate computes the exact DE-9IM matrix of a and b by building the full
// topology of both geometries.
func Relate(a, b geom.T) (IntersectionMatrix, error) {
	sa, err := toSimpleFeatures(a)
	if err != nil {
		return IntersectionMatrix{}, errors.Wrap(err, "relate: first geometry")
	}
	sb, err := toSimpleFeatures(b)
	if err != nil {
		return IntersectionMatrix{}, errors.Wrap(err, "relate: second geometry")
	}
	s, err := sfgeom.Relate(sa, sb)
	if err != nil {
		return IntersectionMatrix{}, errors.Wrap(err, "relate")
	}
	return ParseIntersectionMatrix(s)
}

// toSimpleFeatures converts g through its WKT form. LinearRings have no WKT
// representation and are converted as closed LineStrings.
func toSimpleFeatures(g geom.T) (sfgeom.Geometry, error) {
	if r, ok := g.(*geom.LinearRing); ok {
		g = geom.NewLineStringFlat(r.Layout(), r.FlatCoords())
	}
	text, err := wkt.Marshal(g)
	if err != nil {
		return sfgeom.Geometry{}, errors.Wrap(err, "marshal wkt")
	}
	sg, err := sfgeom.UnmarshalWKT(text)
	if err != nil {
		return sfgeom.Geometry{}, errors.Wrapf(err, "unmarshal wkt %q", text)
	}
	return sg, nil
}

// Contains reports whether a contains b, using the exact relate computation.
func Contains(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsContains(), err
}

// ContainsProperly reports whether b lies in the interior of a, using the
// exact relate computation.
func ContainsProperly(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsContainsProperly(), err
}

// Covers reports whether a covers b, using the exact relate computation.
func Covers(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsCovers(), err
}

// CoveredBy reports whether a is covered by b, using the exact relate
// computation.
func CoveredBy(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsCoveredBy(), err
}

// Crosses reports whether a crosses b, using the exact relate computation.
func Crosses(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsCrosses(GeometryDimension(a), GeometryDimension(b)), err
}

// Disjoint reports whether a and b are disjoint, using the exact relate
// computation.
func Disjoint(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsDisjoint(), err
}

// Intersects reports whether a and b intersect, using the exact relate
// computation.
func Intersects(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsIntersects(), err
}

// Overlaps reports whether a overlaps b, using the exact relate computation.
func Overlaps(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsOverlaps(GeometryDimension(a), GeometryDimension(b)), err
}

// Touches reports whether a touches b, using the exact relate computation.
func Touches(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsTouches(GeometryDimension(a), GeometryDimension(b)), err
}

// Within reports whether a is within b, using the exact relate computation.
func Within(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsWithin(), err
}

// Equals reports whether a and b are topologically equal, using the exact
// relate computation.
func Equals(a, b geom.T) (bool, error) {
	m, err := Relate(a, b)
	return err == nil && m.IsEquals(GeometryDimension(a), GeometryDimension(b)), err
}
