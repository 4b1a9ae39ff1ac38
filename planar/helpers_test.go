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
	"testing"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// parseWKT parses s or fails the test.
func parseWKT(t testing.TB, s string) geom.T {
	t.Helper()
	g, err := wkt.Unmarshal(s)
	if err != nil {
		t.Fatalf("wkt.Unmarshal(%q): %v", s, err)
	}
	return g
}

const (
	squareWKT      = "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))"
	squareHoleWKT  = "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (4 4, 6 4, 6 6, 4 6, 4 4))"
	lShapeWKT      = "POLYGON ((0 0, 10 0, 10 4, 4 4, 4 10, 0 10, 0 0))"
	twoSquaresWKT  = "MULTIPOLYGON (((0 0, 4 0, 4 4, 0 4, 0 0)), ((6 6, 10 6, 10 10, 6 10, 6 6)))"
	diagonalWKT    = "LINESTRING (0 0, 10 10)"
	elbowWKT       = "MULTILINESTRING ((0 0, 5 0), (5 0, 5 5))"
	centerPointWKT = "POINT (5 5)"
	cornersWKT     = "MULTIPOINT ((0 0), (10 10))"
)

// testGeometries spans disjoint, touching, edge-adjacent, crossing, nested
// and overlapping configurations against the targets above.
var testGeometries = []string{
	"POINT (5 5)",
	"POINT (10 5)",
	"POINT (0 0)",
	"POINT (2 2)",
	"POINT (5 0)",
	"POINT (20 20)",
	"MULTIPOINT ((5 5), (20 20))",
	"MULTIPOINT ((1 1), (10 5))",
	"MULTIPOINT ((10 0), (10 5))",
	"LINESTRING (2 2, 8 8)",
	"LINESTRING (-5 5, 15 5)",
	"LINESTRING (10 0, 10 10)",
	"LINESTRING (12 0, 12 10)",
	"LINESTRING (1 1, 3 1)",
	"LINESTRING (0 5, 5 5)",
	"LINESTRING (5 0, 5 5)",
	"LINESTRING (-2 -2, 12 12)",
	"LINESTRING (3 5, 7 5, 7 3, 6 4)",
	"MULTILINESTRING ((1 1, 2 2), (20 20, 21 21))",
	"POLYGON ((2 2, 8 2, 8 8, 2 8, 2 2))",
	"POLYGON ((10 0, 20 0, 20 10, 10 10, 10 0))",
	"POLYGON ((5 5, 15 5, 15 15, 5 15, 5 5))",
	"POLYGON ((-1 -1, 11 -1, 11 11, -1 11, -1 -1))",
	"POLYGON ((20 20, 30 20, 30 30, 20 30, 20 20))",
	"POLYGON ((10 10, 20 10, 20 20, 10 20, 10 10))",
	"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))",
	"POLYGON ((0 0, 5 0, 5 5, 0 5, 0 0))",
	"POLYGON ((3 3, 7 3, 5 7, 3 3))",
	"POLYGON ((1 1, 3 1, 3 3, 1 3, 1 1))",
	"POLYGON ((4.5 4.5, 5.5 4.5, 5.5 5.5, 4.5 5.5, 4.5 4.5))",
	"MULTIPOLYGON (((1 1, 2 1, 2 2, 1 2, 1 1)), ((20 20, 21 20, 21 21, 20 21, 20 20)))",
}

var targetGeometries = []string{
	squareWKT,
	squareHoleWKT,
	lShapeWKT,
	twoSquaresWKT,
	diagonalWKT,
	elbowWKT,
	centerPointWKT,
	cornersWKT,
}
