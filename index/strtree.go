// Copyright (c) 2024 The Geoplanar Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/perr"
)

// DefaultSTRNodeCapacity is the default STR-tree node capacity ("c" in
// §4.3's packing formula).
const DefaultSTRNodeCapacity = 10

// STRItem is one leaf entry: a bounding rectangle plus an opaque payload.
type STRItem struct {
	Envelope geom.Envelope
	Value    any
}

// strSpatial adapts an STRItem to rtreego.Spatial so the bulk-packed
// leaves can be handed to a real dynamic R-tree for the query side (§4.3's
// domain-stack note: packing stays hand-written since rtreego has no
// bulk-load API, but Query is answered by rtreego.Rtree.SearchIntersect,
// grounded on the teacher pack's beetlebugorg-s57 ChartIndex).
type strSpatial struct {
	item STRItem
}

func (s strSpatial) Bounds() rtreego.Rect {
	e := s.item.Envelope
	w, h := e.Width(), e.Height()
	if w <= 0 {
		w = 1e-10
	}
	if h <= 0 {
		h = 1e-10
	}
	rect, _ := rtreego.NewRect(rtreego.Point{e.MinX, e.MinY}, []float64{w, h})
	return rect
}

// STRTree is a static, bulk-loaded packed R-tree (§4.3). It is immutable
// after the first Query call: further Insert calls after a Query return
// InvalidState (§4.12).
type STRTree struct {
	capacity int
	items    []STRItem
	built    bool
	queried  bool
	rtree    *rtreego.Rtree
}

// NewSTRTree builds an empty STR-tree with the default node capacity.
func NewSTRTree() *STRTree { return NewSTRTreeWithCapacity(DefaultSTRNodeCapacity) }

// NewSTRTreeWithCapacity builds an empty STR-tree with the given node
// capacity.
func NewSTRTreeWithCapacity(capacity int) *STRTree {
	return &STRTree{capacity: capacity}
}

// Insert adds a leaf item. Insert after the tree has been queried returns
// InvalidState (§4.12): the tree is immutable after first use.
func (t *STRTree) Insert(env geom.Envelope, value any) error {
	if t.queried {
		return perr.InvalidState("cannot insert into an STRTree after it has been queried")
	}
	t.items = append(t.items, STRItem{Envelope: env, Value: value})
	t.built = false
	return nil
}

// build performs the STR bulk-packing described in §4.3: given n leaves
// and node capacity c, compute s = ceil(sqrt(ceil(n/c))), sort by
// centroid-x into s vertical slices, sort each slice by centroid-y and
// pack into nodes of capacity c. The packing order is then handed, leaf by
// leaf, to an rtreego.Rtree for querying.
func (t *STRTree) build() {
	if t.built {
		return
	}
	n := len(t.items)
	rt := rtreego.NewTree(2, t.capacity, 2*t.capacity)
	if n == 0 {
		t.rtree = rt
		t.built = true
		return
	}

	c := t.capacity
	if c < 1 {
		c = DefaultSTRNodeCapacity
	}
	numLeafNodes := ceilDiv(n, c)
	s := ceilSqrt(numLeafNodes)

	sorted := make([]STRItem, n)
	copy(sorted, t.items)
	sort.Slice(sorted, func(i, j int) bool {
		return centroidX(sorted[i].Envelope) < centroidX(sorted[j].Envelope)
	})

	sliceCount := s
	if sliceCount < 1 {
		sliceCount = 1
	}
	sliceSize := ceilDiv(n, sliceCount)
	if sliceSize < 1 {
		sliceSize = n
	}

	packed := make([]STRItem, 0, n)
	for start := 0; start < n; start += sliceSize {
		end := start + sliceSize
		if end > n {
			end = n
		}
		slice := sorted[start:end]
		sort.Slice(slice, func(i, j int) bool {
			return centroidY(slice[i].Envelope) < centroidY(slice[j].Envelope)
		})
		packed = append(packed, slice...)
	}

	for _, item := range packed {
		rt.Insert(strSpatial{item: item})
	}
	t.rtree = rt
	t.built = true
}

func centroidX(e geom.Envelope) float64 { return (e.MinX + e.MaxX) / 2 }
func centroidY(e geom.Envelope) float64 { return (e.MinY + e.MaxY) / 2 }

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func ceilSqrt(n int) int {
	if n <= 1 {
		return 1
	}
	r := 1
	for r*r < n {
		r++
	}
	return r
}

// Query returns every item whose bounding rectangle intersects env. The
// first Query call seals the tree against further inserts.
func (t *STRTree) Query(env geom.Envelope) []any {
	t.build()
	t.queried = true

	w, h := env.Width(), env.Height()
	if w <= 0 {
		w = 1e-10
	}
	if h <= 0 {
		h = 1e-10
	}
	rect, err := rtreego.NewRect(rtreego.Point{env.MinX, env.MinY}, []float64{w, h})
	if err != nil {
		return nil
	}
	results := t.rtree.SearchIntersect(rect)
	out := make([]any, 0, len(results))
	for _, r := range results {
		sp := r.(strSpatial)
		if sp.item.Envelope.Intersects(env) {
			out = append(out, sp.item.Value)
		}
	}
	return out
}

// Size returns the number of indexed items.
func (t *STRTree) Size() int { return len(t.items) }
