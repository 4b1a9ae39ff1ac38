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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the prepcheck command line with args and returns what it
// wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// rows splits tabular output into whitespace separated fields.
func rows(out string) [][]string {
	var rs [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rs = append(rs, strings.Fields(line))
	}
	return rs
}

func TestEvalCommand(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.wkt", squareWKT+"\n")
	tests := writeFile(t, dir, "tests.wkt", testsWKT)

	out, err := execute(t, "", "eval",
		"--target", target, "--tests", tests,
		"--predicates", "contains,intersects", "--workers", "3", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"index", "contains", "intersects"},
		{"0", "true", "true"},
		{"1", "false", "true"},
		{"2", "false", "false"},
		{"3", "true", "true"},
		{"4", "false", "true"},
		{"5", "true", "true"},
	}, rows(out))
}

func TestEvalCommandStdin(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.wkt", squareWKT+"\n")

	out, err := execute(t, "POINT (1 1)\nPOINT (11 1)\n", "eval", "--target", target, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"index", "intersects"},
		{"0", "true"},
		{"1", "false"},
	}, rows(out))
}

func TestFilterCommand(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.wkt", squareWKT+"\n")
	tests := writeFile(t, dir, "tests.wkt", testsWKT)

	out, err := execute(t, "", "filter",
		"--target", target, "--tests", tests, "--predicates", "contains", "--no-rectangle", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "POINT (5 5)\nLINESTRING (2 2, 8 8)\nPOLYGON ((2 2, 4 2, 4 4, 2 4, 2 2))\n", out)
}

func TestFilterCommandGeoJSON(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.geojson",
		`{"type": "Polygon", "coordinates": [[[0, 0], [10, 0], [10, 10], [0, 10], [0, 0]]]}`)
	tests := writeFile(t, dir, "tests.geojson", `{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [5, 5]}, "properties": {}},
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [50, 5]}, "properties": {}}
	]}`)

	out, err := execute(t, "", "filter", "--format", "geojson",
		"--target", target, "--tests", tests, "--predicates", "within", "--log-level", "error")
	require.NoError(t, err)
	// The target lies within neither point.
	assert.Contains(t, out, `"features":[]`)

	out, err = execute(t, "", "filter", "--format", "geojson",
		"--target", target, "--tests", tests, "--predicates", "covers", "--log-level", "error")
	require.NoError(t, err)
	gs, err := readGeometries(strings.NewReader(out), formatGeoJSON)
	require.NoError(t, err)
	require.Len(t, gs, 1)
	assert.Equal(t, []float64{5, 5}, gs[0].FlatCoords())
}

func TestRelateCommand(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.wkt", squareWKT+"\n")

	out, err := execute(t, "POINT (5 5)\n", "relate", "--target", target, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"index", "matrix"},
		{"0", "0F2FF1FF2"},
	}, rows(out))
}

func TestConfigFileCommand(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.wkt", squareWKT+"\n")
	tests := writeFile(t, dir, "tests.wkt", testsWKT)
	config := writeFile(t, dir, "prepcheck.toml", `
target = "`+target+`"
tests = "`+tests+`"
predicates = ["covers", "contains_properly"]
workers = 2
log_level = "warn"
eager_indexes = true
`)

	out, err := execute(t, "", "eval", "--config", config)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"index", "covers", "contains_properly"},
		{"0", "true", "true"},
		{"1", "true", "false"},
		{"2", "false", "false"},
		{"3", "true", "true"},
		{"4", "false", "false"},
		{"5", "true", "true"},
	}, rows(out))

	// Flags override the file.
	out, err = execute(t, "", "eval", "--config", config, "--predicates", "disjoint")
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "disjoint"}, rows(out)[0])
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.wkt", squareWKT+"\n")
	two := writeFile(t, dir, "two.wkt", squareWKT+"\n"+squareWKT+"\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no target", []string{"eval"}, "no target"},
		{"unknown predicate", []string{"eval", "--target", target, "--predicates", "near"}, "unknown predicate"},
		{"missing file", []string{"eval", "--target", filepath.Join(dir, "missing.wkt")}, "missing.wkt"},
		{"two targets", []string{"eval", "--target", two}, "holds 2 geometries"},
		{"bad config", []string{"eval", "--config", filepath.Join(dir, "missing.toml")}, "configuration file"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, "", test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}
