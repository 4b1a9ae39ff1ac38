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
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"golang.org/x/sync/errgroup"

	"github.com/akhenakh/geo/planar"
)

type predicateFunc func(*planar.PreparedGeometry, geom.T) (bool, error)

var predicateFuncs = map[string]predicateFunc{
	"contains":          (*planar.PreparedGeometry).Contains,
	"contains-properly": (*planar.PreparedGeometry).ContainsProperly,
	"covered-by":        (*planar.PreparedGeometry).CoveredBy,
	"covers":            (*planar.PreparedGeometry).Covers,
	"crosses":           (*planar.PreparedGeometry).Crosses,
	"disjoint":          (*planar.PreparedGeometry).Disjoint,
	"equals":            (*planar.PreparedGeometry).Equals,
	"intersects":        (*planar.PreparedGeometry).Intersects,
	"overlaps":          (*planar.PreparedGeometry).Overlaps,
	"touches":           (*planar.PreparedGeometry).Touches,
	"within":            (*planar.PreparedGeometry).Within,
}

// predicateName normalizes a predicate name, so "ContainsProperly",
// "contains_properly" and "contains-properly" are the same.
func predicateName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	switch name {
	case "containsproperly":
		return "contains-properly"
	case "coveredby":
		return "covered-by"
	}
	return name
}

func lookupPredicate(name string) (predicateFunc, error) {
	fn, ok := predicateFuncs[predicateName(name)]
	if !ok {
		return nil, errors.Errorf("prepcheck: unknown predicate %q (known: %s)", name, strings.Join(knownPredicates(), ", "))
	}
	return fn, nil
}

func knownPredicates() []string {
	names := make([]string, 0, len(predicateFuncs))
	for name := range predicateFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result holds the predicate values for one test geometry, in the order the
// predicates were given.
type Result struct {
	Index  int
	Values []bool
}

// All reports whether every predicate holds.
func (r Result) All() bool {
	for _, v := range r.Values {
		if !v {
			return false
		}
	}
	return true
}

// evaluate computes every predicate of target against every test geometry.
// Up to workers tests are evaluated at once, all sharing target. The first
// error cancels the remaining work.
func evaluate(ctx context.Context, target *planar.PreparedGeometry, tests []geom.T, names []string, workers int) ([]Result, error) {
	fns := make([]predicateFunc, len(names))
	for i, name := range names {
		fn, err := lookupPredicate(name)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}

	results := make([]Result, len(tests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, test := range tests {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			values := make([]bool, len(fns))
			for j, fn := range fns {
				v, err := fn(target, test)
				if err != nil {
					return errors.Wrapf(err, "prepcheck: test %d: %s", i, names[j])
				}
				values[j] = v
			}
			results[i] = Result{Index: i, Values: values}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "prepcheck")
	}
	return results, nil
}
