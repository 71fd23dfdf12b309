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
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/index"
)

// Edge is an ordered coordinate sequence of >=2 points with a Label, an
// EdgeIntersectionList, a depthDelta, and a monotone-chain index, per §3.
type Edge struct {
	coords       []geom.Coordinate
	Label        Label
	intersections *EdgeIntersectionList
	DepthDelta   int
	isIsolated   bool
	chains       []*index.MonotoneChain

	// Name is a free-form diagnostic label; nothing in this module sets or
	// logs it, and it is not part of the algorithm.
	Name string
}

// NewEdge builds an Edge from coords and a Label.
func NewEdge(coords []geom.Coordinate, label Label) *Edge {
	e := &Edge{coords: coords, Label: label, isIsolated: true}
	e.intersections = newEdgeIntersectionList(e)
	return e
}

// NumPoints returns the number of coordinates.
func (e *Edge) NumPoints() int { return len(e.coords) }

// Coordinate returns coordinate i.
func (e *Edge) Coordinate(i int) geom.Coordinate { return e.coords[i] }

// Coordinates returns all coordinates.
func (e *Edge) Coordinates() []geom.Coordinate { return e.coords }

// Envelope returns the edge's bounding box.
func (e *Edge) Envelope() geom.Envelope {
	env := geom.NewEmptyEnvelope()
	for _, c := range e.coords {
		env.ExpandToInclude(c)
	}
	return env
}

// Intersections returns the edge's EdgeIntersectionList.
func (e *Edge) Intersections() *EdgeIntersectionList { return e.intersections }

// IsIsolated reports whether this edge has not been matched to any other
// noded edge (used during labelling to detect isolated components, §4.6
// step 3).
func (e *Edge) IsIsolated() bool { return e.isIsolated }

// MarkNotIsolated records that this edge shares coordinates with another
// input's edge.
func (e *Edge) MarkNotIsolated() { e.isIsolated = false }

// IsClosed reports whether the edge's first and last coordinates coincide
// (2-D), meaning adjacent-segment self-intersection checks must account
// for the (first, last) pair (§4.5).
func (e *Edge) IsClosed() bool {
	if len(e.coords) < 2 {
		return false
	}
	return e.coords[0].Equals2D(e.coords[len(e.coords)-1])
}

// MonotoneChains lazily builds and caches the edge's monotone chains,
// indexed by segment start, for fast pairwise intersection (§4.3/§3).
func (e *Edge) MonotoneChains() []*index.MonotoneChain {
	if e.chains == nil {
		e.chains = index.BuildMonotoneChains(e.coords, e)
	}
	return e.chains
}

// Reversed returns a new Edge over the same points in reverse order, with
// LEFT/RIGHT flipped in the label (used when merging two noded edges that
// are coordinate-reverses of each other, §4.6 step 1).
func (e *Edge) Reversed() *Edge {
	n := len(e.coords)
	rev := make([]geom.Coordinate, n)
	for i := 0; i < n; i++ {
		rev[i] = e.coords[n-1-i]
	}
	return NewEdge(rev, e.Label.Flip())
}

// EqualsCoords reports whether this edge and o describe the same point
// sequence, forward or reversed (§4.6 step 1's "identical coordinate
// sequences" test).
func (e *Edge) EqualsCoords(o *Edge) (equalForward, equalReversed bool) {
	if len(e.coords) != len(o.coords) {
		return false, false
	}
	equalForward = true
	for i := range e.coords {
		if !e.coords[i].Equals2D(o.coords[i]) {
			equalForward = false
			break
		}
	}
	equalReversed = true
	n := len(e.coords)
	for i := 0; i < n; i++ {
		if !e.coords[i].Equals2D(o.coords[n-1-i]) {
			equalReversed = false
			break
		}
	}
	return equalForward, equalReversed
}
