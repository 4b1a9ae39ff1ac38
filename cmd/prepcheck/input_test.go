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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestReadWKT(t *testing.T) {
	in := `# fixtures
POINT (1 2)

LINESTRING (0 0, 1 1)
   POLYGON ((0 0, 1 0, 1 1, 0 0))
`
	gs, err := readGeometries(strings.NewReader(in), formatWKT)
	require.NoError(t, err)
	require.Len(t, gs, 3)
	assert.IsType(t, &geom.Point{}, gs[0])
	assert.IsType(t, &geom.LineString{}, gs[1])
	assert.IsType(t, &geom.Polygon{}, gs[2])
}

func TestReadWKTError(t *testing.T) {
	in := "POINT (1 2)\n\nPOINT (1\n"
	_, err := readGeometries(strings.NewReader(in), formatWKT)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadGeoJSON(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  int
		isErr bool
	}{
		{
			name: "feature collection",
			in: `{"type": "FeatureCollection", "features": [
				{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]}, "properties": {}},
				{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": null}
			]}`,
			want: 2,
		},
		{
			name: "feature",
			in:   `{"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}}`,
			want: 1,
		},
		{
			name: "geometry",
			in:   `{"type": "MultiPoint", "coordinates": [[0, 0], [1, 1]]}`,
			want: 1,
		},
		{
			name:  "feature without geometry",
			in:    `{"type": "Feature", "geometry": null, "properties": {}}`,
			isErr: true,
		},
		{
			name:  "not json",
			in:    `POINT (1 2)`,
			isErr: true,
		},
		{
			name:  "unsupported type",
			in:    `{"type": "Circle", "coordinates": [0, 0]}`,
			isErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gs, err := readGeometries(strings.NewReader(test.in), formatGeoJSON)
			if test.isErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, gs, test.want)
		})
	}
}

func TestReadUnknownFormat(t *testing.T) {
	_, err := readGeometries(strings.NewReader(""), "kml")
	assert.Error(t, err)
}

func TestWriteGeometriesWKT(t *testing.T) {
	gs, err := readGeometries(strings.NewReader("POINT (1 2)\nLINESTRING (1 2, 3 4)\n"), formatWKT)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeGeometries(&buf, gs, formatWKT))
	assert.Equal(t, "POINT (1 2)\nLINESTRING (1 2, 3 4)\n", buf.String())
}

func TestWriteGeometriesGeoJSON(t *testing.T) {
	gs, err := readGeometries(strings.NewReader("POINT (1 2)\nLINESTRING (1 2, 3 4)\n"), formatWKT)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeGeometries(&buf, gs, formatGeoJSON))
	back, err := readGeometries(&buf, formatGeoJSON)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, gs[0].FlatCoords(), back[0].FlatCoords())
	assert.Equal(t, gs[1].FlatCoords(), back[1].FlatCoords())
}
