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

import (
	"github.com/geoplanar/engine/algorithm"
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/r2"
)

// EdgeEnd is a half-edge: (parent Edge, originating coordinate, direction
// coordinate), per §3. Quadrant and Vec are derived from the two
// coordinates.
type EdgeEnd struct {
	Edge      *Edge
	Origin    geom.Coordinate
	Direction geom.Coordinate
	Label     Label
	Quadrant  int
	Vec       r2.Vector
	node      *Node

	// asDirected back-references the owning DirectedEdge when this
	// EdgeEnd was built via NewDirectedEdge, so EdgeEndStar.DirectedEdges
	// can recover it without a global registry.
	asDirected *DirectedEdge
}

// NewEdgeEnd builds an EdgeEnd.
func NewEdgeEnd(e *Edge, origin, direction geom.Coordinate, label Label) *EdgeEnd {
	vec := r2.Vector{X: direction.X - origin.X, Y: direction.Y - origin.Y}
	return &EdgeEnd{
		Edge: e, Origin: origin, Direction: direction, Label: label,
		Quadrant: vec.Quadrant(), Vec: vec,
	}
}

// Node returns the node this edge-end originates from, once inserted into
// an EdgeEndStar.
func (e *EdgeEnd) Node() *Node { return e.node }

// AsDirected returns the owning DirectedEdge if this edge-end was built via
// NewDirectedEdge, or nil otherwise. Exported so callers outside the
// package (overlay's result-ring linking) can recover a DirectedEdge from
// an EdgeEndStar traversal without a global registry.
func (e *EdgeEnd) AsDirected() *DirectedEdge { return e.asDirected }

// compareDirection orders two EdgeEnds CCW starting at the positive x-axis
// (§3): first by quadrant, then within a quadrant by the robust
// orientation of their direction vectors (ties broken by robust
// orientation, as §3 specifies).
func compareDirection(a, b *EdgeEnd) int {
	if a.Quadrant != b.Quadrant {
		if a.Quadrant < b.Quadrant {
			return -1
		}
		return 1
	}
	// Within a quadrant, order by angle using the robust orientation of
	// (origin, a.direction, b.direction): a CCW turn from a to b means a
	// comes first.
	aDir := geom.NewCoordinate(a.Origin.X+a.Vec.X, a.Origin.Y+a.Vec.Y)
	bDir := geom.NewCoordinate(a.Origin.X+b.Vec.X, a.Origin.Y+b.Vec.Y)
	sign := algorithm.OrientationIndex(a.Origin, aDir, bDir)
	return -sign
}
