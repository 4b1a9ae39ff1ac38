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
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
)

// Kind is the specialization chosen for a prepared target.
type Kind int

const (
	// KindBasic delegates every predicate to the exact relate computation.
	KindBasic Kind = iota
	// KindPoint is used for Point and MultiPoint targets.
	KindPoint
	// KindLine is used for LineString, LinearRing and MultiLineString targets.
	KindLine
	// KindPolygon is used for Polygon and MultiPolygon targets.
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PrepareOptions controls how a target geometry is prepared.
type PrepareOptions struct {
	// Logger receives Debug entries when indexes are built and when a
	// predicate falls back to the exact relate computation.
	Logger logrus.FieldLogger
	// EagerIndexes builds the segment and point-in-area indexes in Prepare
	// instead of on first use.
	EagerIndexes bool
	// RectangleFastPath answers predicates against axis-aligned rectangle
	// targets with dedicated rectangle tests.
	RectangleFastPath bool
}

// NewPrepareOptions returns default options.
func NewPrepareOptions() PrepareOptions {
	return PrepareOptions{
		Logger:            logrus.StandardLogger(),
		RectangleFastPath: true,
	}
}

// predicateFunc evaluates one predicate of a prepared target against a test.
type predicateFunc func(p *PreparedGeometry, test geom.T) (bool, error)

// predicates is the capability set of a Kind. It is chosen once in Prepare.
type predicates struct {
	contains         predicateFunc
	containsProperly predicateFunc
	covers           predicateFunc
	intersects       predicateFunc
}

var basicPredicates = predicates{
	contains:         basicContains,
	containsProperly: basicContainsProperly,
	covers:           basicCovers,
	intersects:       basicIntersects,
}

func predicatesFor(kind Kind) predicates {
	preds := basicPredicates
	switch kind {
	case KindPoint:
		preds.intersects = pointIntersects
	case KindLine:
		preds.intersects = lineIntersects
	case KindPolygon:
		preds.contains = polygonContains
		preds.containsProperly = polygonContainsProperly
		preds.covers = polygonCovers
		preds.intersects = polygonIntersects
	}
	return preds
}

// PreparedGeometry is a target geometry with cached data that speeds up
// repeated predicate evaluation against many test geometries. The target is
// held by reference and must not be modified after Prepare.
//
// A PreparedGeometry is safe for concurrent use. Indexes are built at most
// once and are read-only afterwards.
type PreparedGeometry struct {
	g           geom.T
	kind        Kind
	env         Envelope
	repPts      []geom.Coord
	isRectangle bool
	singleShell bool
	log         logrus.FieldLogger
	preds       predicates

	finderOnce sync.Once
	finder     *SegmentIntersectionFinder

	locatorOnce sync.Once
	locator     *IndexedPointInAreaLocator
}

// Prepare returns a prepared geometry specialized for the category of g.
// A nil opts means default options.
func Prepare(g geom.T, opts *PrepareOptions) *PreparedGeometry {
	kind := KindBasic
	switch {
	case isPolygonal(g):
		kind = KindPolygon
	case isLineal(g):
		kind = KindLine
	case isPuntal(g):
		kind = KindPoint
	}
	return prepare(g, kind, opts)
}

// PrepareBasic returns a prepared geometry that does not specialize on the
// category of g. Every predicate is computed exactly.
func PrepareBasic(g geom.T, opts *PrepareOptions) *PreparedGeometry {
	return prepare(g, KindBasic, opts)
}

func prepare(g geom.T, kind Kind, opts *PrepareOptions) *PreparedGeometry {
	if opts == nil {
		def := NewPrepareOptions()
		opts = &def
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	p := &PreparedGeometry{
		g:      g,
		kind:   kind,
		env:    EnvelopeOf(g),
		repPts: ComponentCoordinates(g),
		log:    log.WithField("kind", kind.String()),
		preds:  predicatesFor(kind),
	}
	if kind == KindPolygon {
		p.singleShell = isSingleShell(g)
		p.isRectangle = opts.RectangleFastPath && isRectangle(g)
	}
	if opts.EagerIndexes {
		switch kind {
		case KindPolygon:
			p.segmentFinder()
			p.pointInAreaLocator()
		case KindLine:
			p.segmentFinder()
		}
	}
	return p
}

// Geometry returns the target geometry.
func (p *PreparedGeometry) Geometry() geom.T { return p.g }

// Kind returns the specialization of p.
func (p *PreparedGeometry) Kind() Kind { return p.kind }

// Envelope returns the envelope of the target.
func (p *PreparedGeometry) Envelope() Envelope { return p.env }

// RepresentativePoints returns one coordinate for each point, line and ring
// of the target. The returned slice must not be modified.
func (p *PreparedGeometry) RepresentativePoints() []geom.Coord { return p.repPts }

// IsRectangle reports whether the target is answered with the rectangle
// tests.
func (p *PreparedGeometry) IsRectangle() bool { return p.isRectangle }

// segmentFinder returns the index over the target's linework, building it
// on first use.
func (p *PreparedGeometry) segmentFinder() *SegmentIntersectionFinder {
	p.finderOnce.Do(func() {
		p.finder = NewSegmentIntersectionFinder(ExtractSegmentStrings(p.g))
		p.log.WithField("segments", p.finder.NumSegments()).Debug("built segment intersection finder")
	})
	return p.finder
}

// pointInAreaLocator returns the indexed locator over the target's rings,
// building it on first use.
func (p *PreparedGeometry) pointInAreaLocator() *IndexedPointInAreaLocator {
	p.locatorOnce.Do(func() {
		p.locator = NewIndexedPointInAreaLocator(p.g)
		p.log.WithField("segments", p.locator.NumSegments()).Debug("built point-in-area locator")
	})
	return p.locator
}

// fallback evaluates an exact predicate and logs that the optimized path was
// inconclusive.
func (p *PreparedGeometry) fallback(name string, exact func(a, b geom.T) (bool, error)) func(geom.T) (bool, error) {
	return func(test geom.T) (bool, error) {
		p.log.WithField("predicate", name).Debug("falling back to exact relate")
		return exact(p.g, test)
	}
}

// EnvelopeCovers reports whether the target's envelope covers the test's.
func (p *PreparedGeometry) EnvelopeCovers(test geom.T) bool {
	return p.env.Covers(EnvelopeOf(test))
}

// EnvelopesIntersect reports whether the envelopes of the target and the
// test intersect.
func (p *PreparedGeometry) EnvelopesIntersect(test geom.T) bool {
	return p.env.Intersects(EnvelopeOf(test))
}

// IsAnyTargetComponentInTest reports whether any representative point of the
// target intersects test.
func (p *PreparedGeometry) IsAnyTargetComponentInTest(test geom.T) bool {
	var locator PointLocator
	for _, pt := range p.repPts {
		if locator.Intersects(pt, test) {
			return true
		}
	}
	return false
}

// Contains reports whether the target contains test.
func (p *PreparedGeometry) Contains(test geom.T) (bool, error) {
	return p.preds.contains(p, test)
}

// ContainsProperly reports whether test lies in the interior of the target,
// without touching its boundary.
func (p *PreparedGeometry) ContainsProperly(test geom.T) (bool, error) {
	return p.preds.containsProperly(p, test)
}

// Covers reports whether every point of test is a point of the target.
func (p *PreparedGeometry) Covers(test geom.T) (bool, error) {
	return p.preds.covers(p, test)
}

// Intersects reports whether the target and test have a point in common.
func (p *PreparedGeometry) Intersects(test geom.T) (bool, error) {
	return p.preds.intersects(p, test)
}

// Disjoint reports whether the target and test have no point in common.
func (p *PreparedGeometry) Disjoint(test geom.T) (bool, error) {
	ok, err := p.Intersects(test)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// CoveredBy reports whether every point of the target is a point of test.
func (p *PreparedGeometry) CoveredBy(test geom.T) (bool, error) {
	return CoveredBy(p.g, test)
}

// Crosses reports whether the target crosses test.
func (p *PreparedGeometry) Crosses(test geom.T) (bool, error) {
	return Crosses(p.g, test)
}

// Overlaps reports whether the target overlaps test.
func (p *PreparedGeometry) Overlaps(test geom.T) (bool, error) {
	return Overlaps(p.g, test)
}

// Touches reports whether the target touches test.
func (p *PreparedGeometry) Touches(test geom.T) (bool, error) {
	return Touches(p.g, test)
}

// Equals reports whether the target and test are topologically equal.
func (p *PreparedGeometry) Equals(test geom.T) (bool, error) {
	return Equals(p.g, test)
}

// Within reports whether the target is within test.
func (p *PreparedGeometry) Within(test geom.T) (bool, error) {
	return Within(p.g, test)
}

func basicContains(p *PreparedGeometry, test geom.T) (bool, error) {
	return Contains(p.g, test)
}

func basicContainsProperly(p *PreparedGeometry, test geom.T) (bool, error) {
	if !p.EnvelopeCovers(test) {
		return false, nil
	}
	return ContainsProperly(p.g, test)
}

func basicCovers(p *PreparedGeometry, test geom.T) (bool, error) {
	return Covers(p.g, test)
}

func basicIntersects(p *PreparedGeometry, test geom.T) (bool, error) {
	return Intersects(p.g, test)
}
