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

/*
Package planar implements prepared geometries for the Euclidean plane.

A PreparedGeometry wraps one target geometry and caches the structures needed
to answer the topological predicates Contains, ContainsProperly, Covers and
Intersects against many different test geometries. Most calls are decided by
cheap point sampling and segment intersection classification; only
topologically ambiguous configurations fall back to the exact DE-9IM relate
computation.

Geometries are go-geom values (github.com/twpayne/go-geom). Only the X and Y
ordinates are considered.

	target, _ := wkt.Unmarshal("POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")
	prep := planar.Prepare(target, nil)
	ok, err := prep.Contains(test)

A PreparedGeometry is safe for concurrent use. The target geometry must not be
modified while it is wrapped.
*/
package planar
