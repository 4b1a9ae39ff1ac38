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
	"math"
	"sort"
)

// intervalIndex is a static, packed R-tree over one-dimensional intervals.
// Items are sorted by their midpoint and grouped pairwise into parent nodes,
// so the tree is balanced and built in O(n log n).
type intervalIndex struct {
	nodes []intervalNode
	root  int
}

type intervalNode struct {
	min, max    float64
	left, right int // -1 for leaves
	item        int
}

// newIntervalIndex builds an index over the given intervals. The item
// reported by Query is the position of the interval in mins and maxs.
func newIntervalIndex(mins, maxs []float64) *intervalIndex {
	idx := &intervalIndex{root: -1}
	if len(mins) == 0 {
		return idx
	}

	leaves := make([]intervalNode, len(mins))
	for i := range mins {
		leaves[i] = intervalNode{min: mins[i], max: maxs[i], left: -1, right: -1, item: i}
	}
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].min+leaves[i].max < leaves[j].min+leaves[j].max
	})

	idx.nodes = append(idx.nodes, leaves...)
	level := make([]int, len(leaves))
	for i := range level {
		level[i] = i
	}
	for len(level) > 1 {
		var next []int
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			l, r := idx.nodes[level[i]], idx.nodes[level[i+1]]
			idx.nodes = append(idx.nodes, intervalNode{
				min:   math.Min(l.min, r.min),
				max:   math.Max(l.max, r.max),
				left:  level[i],
				right: level[i+1],
				item:  -1,
			})
			next = append(next, len(idx.nodes)-1)
		}
		level = next
	}
	idx.root = level[0]
	return idx
}

// NumItems returns the number of intervals in the index.
func (idx *intervalIndex) NumItems() int {
	if idx.root < 0 {
		return 0
	}
	return (len(idx.nodes) + 1) / 2
}

// Query calls visit for every interval overlapping [lo, hi].
func (idx *intervalIndex) Query(lo, hi float64, visit func(item int)) {
	if idx.root < 0 {
		return
	}
	idx.query(idx.root, lo, hi, visit)
}

func (idx *intervalIndex) query(n int, lo, hi float64, visit func(item int)) {
	node := &idx.nodes[n]
	if node.max < lo || node.min > hi {
		return
	}
	if node.left < 0 {
		visit(node.item)
		return
	}
	idx.query(node.left, lo, hi, visit)
	idx.query(node.right, lo, hi, visit)
}
