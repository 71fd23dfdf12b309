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

// GeometryGraph turns a single input Geometry into Edges and Nodes whose
// Labels record, for this input's geomIndex slot, how a point on them
// relates to the input: INTERIOR, BOUNDARY, or (implicitly) EXTERIOR
// elsewhere (§4.4).
type GeometryGraph struct {
	geomIndex int
	geometry  geom.Geometry
	li        *algorithm.LineIntersector
	nodeMap   *NodeMap
	edges     []*Edge

	hasProperIntersection bool
	boundaryNodes         map[nodeKey]int
}

// NewGeometryGraph builds a graph for g under geomIndex (0 or 1), noding
// self-intersections through li.
func NewGeometryGraph(geomIndex int, g geom.Geometry, li *algorithm.LineIntersector) *GeometryGraph {
	gg := &GeometryGraph{
		geomIndex: geomIndex,
		geometry:  g,
		li:        li,
		nodeMap:   NewNodeMap(),
		boundaryNodes: map[nodeKey]int{},
	}
	gg.build()
	return gg
}

// GeomIndex returns which input slot (0 or 1) this graph represents.
func (gg *GeometryGraph) GeomIndex() int { return gg.geomIndex }

// NodeMap returns the graph's coordinate-indexed nodes.
func (gg *GeometryGraph) NodeMap() *NodeMap { return gg.nodeMap }

// Edges returns the graph's noded edges.
func (gg *GeometryGraph) Edges() []*Edge { return gg.edges }

// HasProperIntersection reports whether self-noding found a proper
// self-intersection, the condition planargraph.IsSimple tests.
func (gg *GeometryGraph) HasProperIntersection() bool { return gg.hasProperIntersection }

func (gg *GeometryGraph) build() {
	if gg.geometry == nil || gg.geometry.IsEmpty() {
		return
	}
	lines := collectLines(gg.geometry)
	gg.boundaryNodes = boundaryCounts(lines)

	var rawEdges []*Edge
	gg.addGeometry(gg.geometry, &rawEdges)

	noded, s := NodeEdges(gg.li, rawEdges)
	gg.hasProperIntersection = s.HasProperIntersection()
	gg.edges = noded

	for _, e := range noded {
		gg.insertEdgeEnds(e)
	}
}

// addGeometry dispatches on g's concrete type, applying §4.4's
// per-variant construction rule, and appends every produced (unnoded)
// edge to edges. Point-like inputs are inserted as isolated nodes
// directly, since they contribute no edge.
func (gg *GeometryGraph) addGeometry(g geom.Geometry, edges *[]*Edge) {
	switch v := g.(type) {
	case *geom.Point:
		if !v.IsEmpty() {
			gg.addPoint(v.Coordinate())
		}
	case *geom.MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			p := v.GeometryN(i)
			if !p.IsEmpty() {
				gg.addPoint(p.Coordinate())
			}
		}
	case *geom.LineString:
		gg.addLineString(v, edges)
	case *geom.LinearRing:
		gg.addClosedRing(v.Coordinates(), edges)
	case *geom.Polygon:
		gg.addPolygon(v, edges)
	case *geom.MultiLineString:
		for i := 0; i < v.NumGeometries(); i++ {
			gg.addLineString(v.GeometryN(i), edges)
		}
	case *geom.MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			gg.addPolygon(v.GeometryN(i), edges)
		}
	case *geom.GeometryCollection:
		for i := 0; i < v.NumGeometries(); i++ {
			gg.addGeometry(v.GeometryN(i), edges)
		}
	}
}

func (gg *GeometryGraph) addPoint(c geom.Coordinate) {
	n := gg.nodeMap.FindOrCreate(c, false)
	n.SetLabelOn(gg.geomIndex, Interior)
}

func (gg *GeometryGraph) addLineString(l *geom.LineString, edges *[]*Edge) {
	coords := dedupeConsecutive(l.Coordinates())
	if len(coords) < 2 {
		return
	}
	onLoc := NewPointLocation(Interior)
	label := NewLabel(gg.geomIndex, onLoc)
	e := NewEdge(coords, label)
	*edges = append(*edges, e)

	if l.IsClosed() {
		// A closed line has no endpoints of its own: its start vertex is
		// Interior unless other lines' endpoints make it a Mod-2 boundary.
		gg.markBoundaryEndpoint(coords[0])
		return
	}
	gg.markBoundaryEndpoint(coords[0])
	gg.markBoundaryEndpoint(coords[len(coords)-1])
}

func (gg *GeometryGraph) addClosedRing(coords []geom.Coordinate, edges *[]*Edge) {
	coords = dedupeConsecutive(coords)
	if len(coords) < 2 {
		return
	}
	label := NewLabel(gg.geomIndex, NewPointLocation(Interior))
	e := NewEdge(coords, label)
	*edges = append(*edges, e)
}

func (gg *GeometryGraph) markBoundaryEndpoint(c geom.Coordinate) {
	k := keyOf(c)
	onBoundary := gg.boundaryNodes[k]%2 == 1
	n := gg.nodeMap.FindOrCreate(c, false)
	if onBoundary {
		n.SetLabelOn(gg.geomIndex, Boundary)
	} else if n.Label.Get(gg.geomIndex).On() == Undef {
		n.SetLabelOn(gg.geomIndex, Interior)
	}
}

func (gg *GeometryGraph) addPolygon(p *geom.Polygon, edges *[]*Edge) {
	if p.IsEmpty() {
		return
	}
	gg.addRingEdge(p.ExteriorRing(), edges, false)
	for i := 0; i < p.NumInteriorRings(); i++ {
		gg.addRingEdge(p.InteriorRingN(i), edges, true)
	}
}

// addRingEdge inserts one Polygon boundary ring per §4.4: the shell is
// labelled (ON=BOUNDARY, LEFT=EXTERIOR, RIGHT=INTERIOR) assuming clockwise
// orientation, flipped if the ring is actually CCW; a hole uses the
// opposite interior/exterior assignment.
func (gg *GeometryGraph) addRingEdge(ring *geom.LinearRing, edges *[]*Edge, isHole bool) {
	coords := dedupeConsecutive(ring.Coordinates())
	if len(coords) < 4 {
		return
	}
	left, right := Exterior, Interior
	if isHole {
		left, right = Interior, Exterior
	}
	loc := NewAreaLocation(Boundary, left, right)
	if ring.IsCCW() {
		loc = loc.Flip()
	}
	label := NewLabel(gg.geomIndex, loc)
	e := NewEdge(coords, label)
	*edges = append(*edges, e)
}

// insertEdgeEnds adds both of e's DirectedEdges to the node map at their
// respective origins, wiring e into the graph's node stars so later
// traversal (ring assembly, relate) can walk from a node to its incident
// edges.
func (gg *GeometryGraph) insertEdgeEnds(e *Edge) {
	fwd := NewDirectedEdge(e, true)
	bwd := NewDirectedEdge(e, false)
	fwd.Sym = bwd
	bwd.Sym = fwd
	gg.nodeMap.Add(fwd.EdgeEnd)
	gg.nodeMap.Add(bwd.EdgeEnd)
}

// dedupeConsecutive drops repeated consecutive coordinates (§4.4: "skip
// repeated consecutive points").
func dedupeConsecutive(coords []geom.Coordinate) []geom.Coordinate {
	if len(coords) == 0 {
		return coords
	}
	out := make([]geom.Coordinate, 0, len(coords))
	out = append(out, coords[0])
	for _, c := range coords[1:] {
		if !c.Equals2D(out[len(out)-1]) {
			out = append(out, c)
		}
	}
	return out
}

// collectLines gathers every LineString reachable through
// LineString/MultiLineString/GeometryCollection nesting (but not those
// inside a Polygon/MultiPolygon, whose rings use the Polygon labelling
// rule instead), for the Mod-2 boundary computation.
func collectLines(g geom.Geometry) []*geom.LineString {
	var out []*geom.LineString
	var walk func(geom.Geometry)
	walk = func(g geom.Geometry) {
		switch v := g.(type) {
		case *geom.LineString:
			out = append(out, v)
		case *geom.MultiLineString:
			for i := 0; i < v.NumGeometries(); i++ {
				out = append(out, v.GeometryN(i))
			}
		case *geom.GeometryCollection:
			for i := 0; i < v.NumGeometries(); i++ {
				walk(v.GeometryN(i))
			}
		}
	}
	walk(g)
	return out
}

// boundaryCounts implements the Mod-2 rule (§3, §4.4): counts each
// non-closed line's endpoint coordinates, keyed 2-D only.
func boundaryCounts(lines []*geom.LineString) map[nodeKey]int {
	counts := map[nodeKey]int{}
	for _, l := range lines {
		if l.IsEmpty() || l.IsClosed() {
			continue
		}
		counts[keyOf(l.StartPoint())]++
		counts[keyOf(l.EndPoint())]++
	}
	return counts
}
