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

package planargraph

import "github.com/geoplanar/engine/geom"

// DirectedEdge is an EdgeEnd plus sym (the paired opposite half-edge),
// next/nextMin links used for ring traversal, an edge-ring back-reference,
// and per-side depth counts (§3).
type DirectedEdge struct {
	*EdgeEnd
	Sym         *DirectedEdge
	Next        *DirectedEdge
	NextMin     *DirectedEdge
	Ring        *EdgeRing
	depth       [3]int // indexed by position: On, Left, Right -- per-side depth for *this* directed edge's view
	InResult    bool
	Visited     bool
	IsForward   bool // true if this directed edge traverses Edge.coords in forward order
	EdgeIndex   int  // index of this directed edge's owning input edge set member, for diagnostics
}

// NewDirectedEdge builds a DirectedEdge from a parent EdgeEnd-compatible
// Edge, an explicit forward flag (true if it starts at the edge's first
// coordinate).
func NewDirectedEdge(e *Edge, isForward bool) *DirectedEdge {
	n := e.NumPoints()
	var origin, direction geom.Coordinate
	if isForward {
		origin = e.Coordinate(0)
		direction = e.Coordinate(1)
	} else {
		origin = e.Coordinate(n - 1)
		direction = e.Coordinate(n - 2)
	}
	label := e.Label
	if !isForward {
		label = label.Flip()
	}
	end := NewEdgeEnd(e, origin, direction, label)
	de := &DirectedEdge{EdgeEnd: end, IsForward: isForward}
	end.asDirected = de
	return de
}

// GetDepth returns the recorded depth at pos (On/Left/Right) for this
// directed edge's own orientation.
func (d *DirectedEdge) GetDepth(pos position) int { return d.depth[pos] }

// SetDepth records the depth at pos.
func (d *DirectedEdge) SetDepth(pos position, v int) { d.depth[pos] = v }

// SetDepths sets all three depth positions at once, mirroring the edge's
// Depth entry for geomIndex.
func (d *DirectedEdge) SetDepths(on, left, right int) {
	d.depth[On] = on
	d.depth[Left] = left
	d.depth[Right] = right
}
