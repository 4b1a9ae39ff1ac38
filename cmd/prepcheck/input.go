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
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

const (
	formatWKT     = "wkt"
	formatGeoJSON = "geojson"
)

// maxWKTLine bounds the length of a single WKT line.
const maxWKTLine = 64 << 20

// openInput opens path for reading. "-" reads from stdin, which is not closed.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "prepcheck")
	}
	return f, nil
}

// readGeometryFile decodes every geometry in the file at path.
func readGeometryFile(path, format string, stdin io.Reader) ([]geom.T, error) {
	r, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	gs, err := readGeometries(r, format)
	if err != nil {
		return nil, errors.Wrapf(err, "prepcheck: reading %s", path)
	}
	return gs, nil
}

// readGeometries decodes every geometry in r.
func readGeometries(r io.Reader, format string) ([]geom.T, error) {
	switch format {
	case formatWKT:
		return readWKT(r)
	case formatGeoJSON:
		return readGeoJSON(r)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// readWKT reads one geometry per line. Blank lines and lines starting with
// '#' are skipped.
func readWKT(r io.Reader) ([]geom.T, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxWKTLine)
	var gs []geom.T
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		g, err := wkt.Unmarshal(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		gs = append(gs, g)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning WKT")
	}
	return gs, nil
}

// readGeoJSON reads a FeatureCollection, a Feature or a bare geometry.
func readGeoJSON(r io.Reader) ([]geom.T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading GeoJSON")
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "decoding GeoJSON")
	}

	switch head.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, errors.Wrap(err, "decoding feature collection")
		}
		gs := make([]geom.T, 0, len(fc.Features))
		for i, f := range fc.Features {
			if f.Geometry == nil {
				return nil, errors.Errorf("feature %d has no geometry", i)
			}
			gs = append(gs, f.Geometry)
		}
		return gs, nil
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "decoding feature")
		}
		if f.Geometry == nil {
			return nil, errors.New("feature has no geometry")
		}
		return []geom.T{f.Geometry}, nil
	}

	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrap(err, "decoding geometry")
	}
	if g == nil {
		return nil, nil
	}
	return []geom.T{g}, nil
}

// writeGeometries writes gs to w in the given format: one WKT geometry per
// line, or a GeoJSON FeatureCollection.
func writeGeometries(w io.Writer, gs []geom.T, format string) error {
	if format == formatGeoJSON {
		fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, len(gs))}
		for i, g := range gs {
			fc.Features[i] = &geojson.Feature{Geometry: g}
		}
		data, err := fc.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "prepcheck: encoding GeoJSON")
		}
		_, err = w.Write(append(data, '\n'))
		return errors.Wrap(err, "prepcheck")
	}

	bw := bufio.NewWriter(w)
	for _, g := range gs {
		s, err := wkt.Marshal(g)
		if err != nil {
			return errors.Wrap(err, "prepcheck: encoding WKT")
		}
		bw.WriteString(s)
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "prepcheck")
}
