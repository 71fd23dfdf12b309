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
	"sort"

	"github.com/geoplanar/engine/geom"
)

// EdgeIntersection is (coordinate, segment index, fractional distance
// along that segment), per §3. An intersection that falls exactly on a
// vertex is normalized to the higher of the two possible segment indexes
// and distance 0, so every interior vertex of an edge is represented
// exactly once.
type EdgeIntersection struct {
	Coord    geom.Coordinate
	SegIndex int
	Dist     float64
}

func (a EdgeIntersection) less(b EdgeIntersection) bool {
	if a.SegIndex != b.SegIndex {
		return a.SegIndex < b.SegIndex
	}
	return a.Dist < b.Dist
}

func (a EdgeIntersection) equal(b EdgeIntersection) bool {
	return a.SegIndex == b.SegIndex && a.Dist == b.Dist
}

// EdgeIntersectionList is the sorted set of known intersection points
// along an edge (§3), sorted by (segment index, fractional distance).
type EdgeIntersectionList struct {
	edge  *Edge
	items []EdgeIntersection
}

func newEdgeIntersectionList(e *Edge) *EdgeIntersectionList {
	return &EdgeIntersectionList{edge: e}
}

// Add inserts an intersection, normalizing vertex hits to (higher segment
// index, dist 0) and de-duplicating exact repeats.
func (l *EdgeIntersectionList) Add(coord geom.Coordinate, segIndex int, dist float64) EdgeIntersection {
	normSeg, normDist := segIndex, dist
	if dist == 0 && segIndex > 0 {
		// A distance-0 hit on segment i is the same vertex as distance-1
		// on segment i-1; it is already in the higher-index form used
		// here: (segIndex, 0) always refers to the start vertex of that
		// segment, so no renormalization is needed for that direction.
	}
	if dist == 1 {
		normSeg = segIndex + 1
		normDist = 0
	}
	ei := EdgeIntersection{Coord: coord, SegIndex: normSeg, Dist: normDist}

	idx := sort.Search(len(l.items), func(i int) bool { return !l.items[i].less(ei) })
	if idx < len(l.items) && l.items[idx].equal(ei) {
		return l.items[idx]
	}
	l.items = append(l.items, EdgeIntersection{})
	copy(l.items[idx+1:], l.items[idx:])
	l.items[idx] = ei
	return ei
}

// AddEndpoints ensures both endpoints of the edge's coordinate sequence
// are present, per §3's invariant that every edge has at least its two
// endpoints in its intersection list after noding.
func (l *EdgeIntersectionList) AddEndpoints() {
	n := l.edge.NumPoints()
	l.Add(l.edge.Coordinate(0), 0, 0)
	l.Add(l.edge.Coordinate(n-1), n-2, 1)
}

// Items returns the sorted intersections.
func (l *EdgeIntersectionList) Items() []EdgeIntersection { return l.items }

// IsEmpty reports whether no intersections have been recorded.
func (l *EdgeIntersectionList) IsEmpty() bool { return len(l.items) == 0 }

// Split produces the list of noded edges obtained by cutting the parent
// edge at every recorded intersection, per §4.4: "split each edge at its
// intersection list to produce a new list of edges whose interiors
// contain no graph vertices."
func (l *EdgeIntersectionList) Split() []*Edge {
	l.AddEndpoints()
	if len(l.items) < 2 {
		return nil
	}
	var out []*Edge
	for i := 0; i < len(l.items)-1; i++ {
		start := l.items[i]
		end := l.items[i+1]
		coords := sliceEdgeCoordinates(l.edge, start, end)
		if len(coords) < 2 {
			continue
		}
		ne := NewEdge(coords, l.edge.Label)
		out = append(out, ne)
	}
	return out
}

// sliceEdgeCoordinates extracts the coordinate run between two
// intersections, inserting the intersection coordinates themselves at the
// slice boundaries.
func sliceEdgeCoordinates(e *Edge, start, end EdgeIntersection) []geom.Coordinate {
	var coords []geom.Coordinate
	coords = append(coords, start.Coord)
	for i := start.SegIndex + 1; i <= end.SegIndex; i++ {
		coords = append(coords, e.Coordinate(i))
	}
	if !coords[len(coords)-1].Equals2D(end.Coord) {
		coords = append(coords, end.Coord)
	}
	return coords
}
