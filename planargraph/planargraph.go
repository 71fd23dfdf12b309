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
)

// PlanarGraph owns the merged node map, edge set and directed edge-ends
// produced by noding two GeometryGraphs together (§3). relate and overlay
// both build one of these from a pair of inputs: each input's noded edges
// are re-noded against the other's, then every resulting edge is inserted
// so its two DirectedEdges land in the shared NodeMap.
type PlanarGraph struct {
	nodes       *NodeMap
	edges       []*Edge
	directedEnds []*DirectedEdge
	pairs       [][2]*DirectedEdge
}

// NewPlanarGraph builds an empty PlanarGraph.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{nodes: NewNodeMap()}
}

// Nodes returns the graph's NodeMap.
func (pg *PlanarGraph) Nodes() *NodeMap { return pg.nodes }

// Edges returns every edge inserted into the graph.
func (pg *PlanarGraph) Edges() []*Edge { return pg.edges }

// DirectedEdges returns every directed edge inserted into the graph, in
// insertion order (both directions of every edge).
func (pg *PlanarGraph) DirectedEdges() []*DirectedEdge { return pg.directedEnds }

// InsertEdge adds e's two DirectedEdges to the node map at their
// respective origins and records e, returning the two directed edges
// (forward then backward) so the caller can link Next/NextMin.
func (pg *PlanarGraph) InsertEdge(e *Edge) (fwd, bwd *DirectedEdge) {
	fwd = NewDirectedEdge(e, true)
	bwd = NewDirectedEdge(e, false)
	fwd.Sym = bwd
	bwd.Sym = fwd
	pg.nodes.Add(fwd.EdgeEnd)
	pg.nodes.Add(bwd.EdgeEnd)
	pg.edges = append(pg.edges, e)
	pg.directedEnds = append(pg.directedEnds, fwd, bwd)
	pg.pairs = append(pg.pairs, [2]*DirectedEdge{fwd, bwd})
	return fwd, bwd
}

// DirectedPair returns the (forward, backward) DirectedEdges created for
// pg.Edges()[i]. Callers that need to reason about both directions of a
// given edge together (overlay's result-membership test) should use this
// rather than assuming any particular interleaving of DirectedEdges().
func (pg *PlanarGraph) DirectedPair(i int) (fwd, bwd *DirectedEdge) {
	p := pg.pairs[i]
	return p[0], p[1]
}

// BuildFromGraphs re-nodes the edges of two GeometryGraphs against each
// other (cross-noding, on top of each graph's own self-noding) and
// inserts every resulting edge, merging node labels along the way. It
// returns the combined graph, ready for labelling (§4.6) by the overlay
// or relate engine.
func BuildFromGraphs(li *algorithm.LineIntersector, a, b *GeometryGraph) *PlanarGraph {
	return BuildFromGraphsLabeled(li, a, b, func(*Edge) {})
}

// BuildFromGraphsLabeled behaves like BuildFromGraphs, but calls resolve
// on every noded edge before its DirectedEdges are constructed and
// inserted. This lets overlay fill in a noded edge's missing (non-owning)
// TopologyLocation ahead of time: a DirectedEdge snapshots its owning
// Edge's Label at construction, so mutating Label afterward would not be
// reflected in either direction's own view of it.
func BuildFromGraphsLabeled(li *algorithm.LineIntersector, a, b *GeometryGraph, resolve func(*Edge)) *PlanarGraph {
	pg := NewPlanarGraph()

	var all []*Edge
	all = append(all, a.Edges()...)
	all = append(all, b.Edges()...)
	noded, _ := NodeEdges(li, all)

	for _, e := range noded {
		resolve(e)
		pg.InsertEdge(e)
	}

	mergeNodeLabels(pg.nodes, a.NodeMap())
	mergeNodeLabels(pg.nodes, b.NodeMap())
	markIsolatedEdges(pg.edges, a, b)

	return pg
}

// mergeNodeLabels folds every node label known from a single-input graph's
// NodeMap into the combined graph's nodes at the same coordinate, per
// §4.4's "merge labels of coincident vertices."
func mergeNodeLabels(dst *NodeMap, src *NodeMap) {
	for _, n := range src.Nodes() {
		if target := dst.Find(n.Coord); target != nil {
			target.MergeLabel(n.Label)
		}
	}
}

// markIsolatedEdges flags, on each input's original Edge objects, whether
// its coordinates are shared with the other input's edge set (§4.6 step 1
// / step 3's isolated-component detection): an edge reachable only from
// one GeometryGraph never had MarkNotIsolated called by noding against
// the other input, so it keeps its default isolated=true.
func markIsolatedEdges(noded []*Edge, a, b *GeometryGraph) {
	bCoords := edgeCoordinateSet(b.Edges())
	for _, e := range a.Edges() {
		if edgeSharesCoordinate(e, bCoords) {
			e.MarkNotIsolated()
		}
	}
	aCoords := edgeCoordinateSet(a.Edges())
	for _, e := range b.Edges() {
		if edgeSharesCoordinate(e, aCoords) {
			e.MarkNotIsolated()
		}
	}
}

func edgeCoordinateSet(edges []*Edge) map[nodeKey]bool {
	set := make(map[nodeKey]bool)
	for _, e := range edges {
		for _, c := range e.Coordinates() {
			set[keyOf(c)] = true
		}
	}
	return set
}

func edgeSharesCoordinate(e *Edge, set map[nodeKey]bool) bool {
	for _, c := range e.Coordinates() {
		if set[keyOf(c)] {
			return true
		}
	}
	return false
}

// IsSimple reports whether building g's GeometryGraph and self-noding it
// finds no proper self-intersection. That is the only test made: a line
// that touches itself at a vertex or an endpoint, without a proper
// crossing, is reported simple. This is the free-function home for the simplicity test that
// geom.Geometry's doc comment defers to, avoiding an import cycle between
// geom and planargraph.
func IsSimple(g geom.Geometry, li *algorithm.LineIntersector) bool {
	gg := NewGeometryGraph(0, g, li)
	return !gg.HasProperIntersection()
}
