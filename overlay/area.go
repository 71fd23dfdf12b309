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

package overlay

import (
	"math"

	"github.com/geoplanar/engine/algorithm"
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/locate"
	"github.com/geoplanar/engine/perr"
	"github.com/geoplanar/engine/planargraph"
	"github.com/rs/zerolog"
)

// computeArea builds the area component of op(a, b), assuming both a and
// b are Polygon or MultiPolygon. It nodes the two inputs together,
// resolves each noded edge's non-owning TopologyLocation by sampling
// points just off its midpoint (resolveOtherLabel), marks each directed
// edge InResult per §4.7's membership table, links result edges into
// rings (linkResultRings), splits them into shells and holes, and
// assembles the final Polygon or MultiPolygon.
//
// It also returns any edges that collapse to a zero-area line result:
// when op is Intersection and an edge sits on both inputs' boundaries
// (§4.6's "touching, not overlapping" case) without either side counting
// as interior to both, the area path alone would simply drop it, losing
// the touching boundary entirely instead of reporting it as the
// intersection's (lower-dimensional) content.
func computeArea(a, b geom.Geometry, op Op, factory *geom.GeometryFactory, li *algorithm.LineIntersector, logger zerolog.Logger) (geom.Geometry, geom.Geometry, error) {
	locA, err := locate.Classify(a)
	if err != nil {
		return nil, nil, err
	}
	locB, err := locate.Classify(b)
	if err != nil {
		return nil, nil, err
	}

	gA := planargraph.NewGeometryGraph(0, a, li)
	gB := planargraph.NewGeometryGraph(1, b, li)

	resolve := func(e *planargraph.Edge) {
		resolveOtherLabel(e, locA, locB)
	}
	pg := planargraph.BuildFromGraphsLabeled(li, gA, gB, resolve)

	markInResult(pg, op)

	if err := linkResultRings(pg, logger); err != nil {
		return nil, nil, err
	}

	shells, holes, err := buildRings(pg)
	if err != nil {
		return nil, nil, err
	}
	attachHoles(shells, holes)

	areaResult, err := assemblePolygons(factory, shells)
	if err != nil {
		return nil, nil, err
	}

	touching := touchingBoundaryFragments(pg, op)
	lineResult, err := assembleLines(factory, touching)
	if err != nil {
		return nil, nil, err
	}
	return areaResult, lineResult, nil
}

// touchingBoundaryFragments collects the coordinates of every area edge
// whose own ON location is Boundary for both inputs (the two inputs'
// rings coincide there) but whose LEFT and RIGHT sides agree (so
// markInResult dropped it as neither strictly inside nor outside the
// result) — the case of two polygons that touch without overlapping.
func touchingBoundaryFragments(pg *planargraph.PlanarGraph, op Op) [][]geom.Coordinate {
	if op != Intersection {
		return nil
	}
	var out [][]geom.Coordinate
	for _, e := range pg.Edges() {
		if !e.Label.IsArea() {
			continue
		}
		if e.Label.Get(0).On() != planargraph.Boundary || e.Label.Get(1).On() != planargraph.Boundary {
			continue
		}
		leftIn := membershipTest(op, e.Label.Get(0).Left() == planargraph.Interior, e.Label.Get(1).Left() == planargraph.Interior)
		rightIn := membershipTest(op, e.Label.Get(0).Right() == planargraph.Interior, e.Label.Get(1).Right() == planargraph.Interior)
		if !leftIn && !rightIn {
			out = append(out, e.Coordinates())
		}
	}
	return dedupFragments(out)
}

// sampleMinOffset is the minimum absolute perpendicular offset used to
// probe either side of a noded edge's midpoint, preventing a degenerate
// edge length from collapsing the offset into locate.Classify's own
// boundary tolerance.
const sampleMinOffset = 1e-6

// resolveOtherLabel fills in, on e's Label, the TopologyLocation for
// whichever input did not originally produce e: a small perpendicular
// offset to either side of e's midpoint is classified against that other
// input directly (via locate.Classify, §4.9), giving the edge's Left and
// Right location with respect to it. This stands in for the full §4.6
// step-2 CCW depth-delta propagation around each node's edge-end star —
// see the overlay grounding-ledger entry in DESIGN.md for why direct
// sampling is sufficient here, mirroring relate's equivalent
// simplification.
func resolveOtherLabel(e *planargraph.Edge, locA, locB func(geom.Coordinate) planargraph.Location) {
	owner := 0
	if e.Label.Get(0).IsNull() {
		owner = 1
	}
	other := 1 - owner
	otherLoc := locB
	if other == 0 {
		otherLoc = locA
	}

	coords := e.Coordinates()
	p0, p1 := coords[0], coords[1]
	mid := geom.NewCoordinate((p0.X+p1.X)/2, (p0.Y+p1.Y)/2)
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	offset := math.Max(length*1e-6, sampleMinOffset)
	nx, ny := -dy/length, dx/length // rotate direction +90deg: the left-hand perpendicular
	left := geom.NewCoordinate(mid.X+offset*nx, mid.Y+offset*ny)
	right := geom.NewCoordinate(mid.X-offset*nx, mid.Y-offset*ny)

	onLoc := otherLoc(mid)
	leftLoc := otherLoc(left)
	rightLoc := otherLoc(right)

	e.Label = e.Label.Set(other, planargraph.NewAreaLocation(onLoc, leftLoc, rightLoc))
}

// markInResult decides, for each physical edge, which of its two
// directions (if either) bounds the result under op: the direction whose
// own LEFT side is "in" while its RIGHT side is not. An edge whose two
// sides agree (both in or both out) is interior or exterior to the
// result throughout and contributes no boundary (§4.6 step 5's
// dimensional collapse, reached here by a direct membership comparison
// rather than depth arithmetic).
func markInResult(pg *planargraph.PlanarGraph, op Op) {
	edges := pg.Edges()
	for i, e := range edges {
		if !e.Label.IsArea() {
			continue
		}
		fwd, bwd := pg.DirectedPair(i)
		leftIn := membershipTest(op, e.Label.Get(0).Left() == planargraph.Interior, e.Label.Get(1).Left() == planargraph.Interior)
		rightIn := membershipTest(op, e.Label.Get(0).Right() == planargraph.Interior, e.Label.Get(1).Right() == planargraph.Interior)
		switch {
		case leftIn && !rightIn:
			fwd.InResult = true
		case rightIn && !leftIn:
			bwd.InResult = true
		}
	}
}

// linkResultRings sets Next on every InResult directed edge: arriving at
// a node via de (i.e. standing at de.Sym's node), the ring continues
// along the next InResult directed edge found walking CCW from de.Sym
// around that node's star. This is the standard "turn to the next
// surviving edge" rule for tracing maximal rings out of a labelled planar
// graph (§4.7).
func linkResultRings(pg *planargraph.PlanarGraph, logger zerolog.Logger) error {
	for _, de := range pg.DirectedEdges() {
		if !de.InResult || de.Next != nil {
			continue
		}
		node := de.Sym.Node()
		if node == nil {
			return perr.NewTopologyException("overlay: result edge has no terminating node")
		}
		next := nextInResult(node.Star(), de.Sym.EdgeEnd)
		if next == nil {
			logger.Warn().Str("op", "overlay").Msg("could not pair an incoming result edge with an outgoing one at a node")
			return perr.NewTopologyException("overlay: could not link result edge into a ring")
		}
		de.Next = next
	}
	return nil
}

func nextInResult(star *planargraph.EdgeEndStar, from *planargraph.EdgeEnd) *planargraph.DirectedEdge {
	cur := from
	for i := 0; i < star.Degree(); i++ {
		cur = star.NextCCW(cur)
		if cur == nil {
			return nil
		}
		if d := cur.AsDirected(); d != nil && d.InResult {
			return d
		}
	}
	return nil
}

// buildRings walks every not-yet-visited InResult directed edge into a
// maximal ring via planargraph.BuildEdgeRing, splits it into minimal
// rings at any node its walk passes through more than once (§4.7 —
// two polygons touching at a single shared vertex is the common case
// that produces this), and classifies each minimal ring as a shell or a
// hole by its own signed area (positive, i.e. counter-clockwise, is a
// shell — the convention already established for input rings by
// GeometryGraph's addRingEdge) rather than EdgeRing.IsHole(), whose own
// doc comment assumes the opposite (clockwise-shell) convention; see
// DESIGN.md for why this ring-local classification is used instead.
func buildRings(pg *planargraph.PlanarGraph) (shells, holes []*ringResult, err error) {
	seen := map[*planargraph.DirectedEdge]bool{}
	for _, de := range pg.DirectedEdges() {
		if !de.InResult || seen[de] {
			continue
		}
		ring, rerr := planargraph.BuildEdgeRing(de)
		if rerr != nil {
			return nil, nil, rerr
		}
		for _, member := range ring.DirectedEdges() {
			seen[member] = true
		}
		for _, coords := range splitMinimalRings(ring.DirectedEdges()) {
			rr := &ringResult{coords: coords}
			if isShell(rr.coords) {
				shells = append(shells, rr)
			} else {
				holes = append(holes, rr)
			}
		}
	}
	return shells, holes, nil
}

// splitMinimalRings decomposes a maximal ring's directed-edge walk into
// OGC-minimal rings (§4.7, §3's "every node has out-degree <= 2"): a
// maximal ring may pass back through the same node more than once
// (every node along it has result out-degree 2, but a node shared by
// two otherwise-independent loops — e.g. two polygons touching at a
// single vertex — is visited by the walk once per loop). It walks the
// directed-edge sequence maintaining a stack of the edges traversed
// since each node currently open on the path was last entered; the
// first time a node recurs, the edges pushed since its earlier
// occurrence are a closed sub-loop (choosing, at that node, the CCW-next
// result edge already baked into Next by linkResultRings) and are
// popped off as one minimal ring, leaving the walk to continue from
// where it left off. Any ring with no repeated node degenerates to the
// single maximal ring itself, unchanged.
func splitMinimalRings(walk []*planargraph.DirectedEdge) [][]geom.Coordinate {
	var rings [][]geom.Coordinate
	var stack []*planargraph.DirectedEdge
	nodeIndex := map[*planargraph.Node]int{}

	flush := func(from int) {
		loop := stack[from:]
		rings = append(rings, ringCoordinates(loop))
		for _, de := range loop {
			delete(nodeIndex, de.Node())
		}
		stack = stack[:from]
	}

	for _, de := range walk {
		n := de.Node()
		if idx, ok := nodeIndex[n]; ok {
			flush(idx)
		}
		nodeIndex[n] = len(stack)
		stack = append(stack, de)
	}
	if len(stack) > 0 {
		rings = append(rings, ringCoordinates(stack))
	}
	return rings
}

// ringCoordinates builds a closed coordinate sequence from an ordered
// run of directed edges, the same way planargraph.EdgeRing itself does
// internally: each edge contributes its coordinates in traversal
// direction, dropping the last point of each (it is the next edge's
// first), then closes the sequence explicitly.
func ringCoordinates(edges []*planargraph.DirectedEdge) []geom.Coordinate {
	var coords []geom.Coordinate
	for _, de := range edges {
		e := de.Edge
		n := e.NumPoints()
		if de.IsForward {
			for i := 0; i < n-1; i++ {
				coords = append(coords, e.Coordinate(i))
			}
		} else {
			for i := n - 1; i > 0; i-- {
				coords = append(coords, e.Coordinate(i))
			}
		}
	}
	if len(coords) > 0 && !coords[0].Equals2D(coords[len(coords)-1]) {
		coords = append(coords, coords[0])
	}
	return coords
}

// ringResult is a built result ring's coordinate sequence plus whichever
// holes have been attached to it (when it is itself a shell).
type ringResult struct {
	coords []geom.Coordinate
	holes  []*ringResult
}

func isShell(coords []geom.Coordinate) bool {
	return signedArea(coords) > 0
}

func signedArea(coords []geom.Coordinate) float64 {
	n := len(coords)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		sum += coords[i].X*coords[i+1].Y - coords[i+1].X*coords[i].Y
	}
	sum += coords[n-1].X*coords[0].Y - coords[0].X*coords[n-1].Y
	return sum / 2
}

// attachHoles assigns each hole ring to the smallest-area enclosing
// shell by bounding-box containment followed by an exact point-in-ring
// test (§4.7's shell/hole attachment), mirroring
// planargraph.EdgeRing.ContainsPoint's own ray-cast.
func attachHoles(shells, holes []*ringResult) {
	for _, hole := range holes {
		if len(hole.coords) == 0 {
			continue
		}
		pt := hole.coords[0]
		var best *ringResult
		bestArea := math.Inf(1)
		for _, shell := range shells {
			env := envelopeOf(shell.coords)
			if !env.ContainsCoordinate(pt) {
				continue
			}
			if !pointInRing(pt, shell.coords) {
				continue
			}
			area := env.Area()
			if area < bestArea {
				bestArea = area
				best = shell
			}
		}
		if best != nil {
			best.holes = append(best.holes, hole)
		}
	}
}

func envelopeOf(coords []geom.Coordinate) geom.Envelope {
	env := geom.NewEmptyEnvelope()
	for _, c := range coords {
		env.ExpandToInclude(c)
	}
	return env
}

// pointInRing is the standard even-odd horizontal-ray crossing count,
// duplicated from planargraph.EdgeRing's unexported helper of the same
// name since this package works over plain coordinate slices, not
// EdgeRing values, once rings have been classified.
func pointInRing(pt geom.Coordinate, ring []geom.Coordinate) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// assemblePolygons turns a set of shells (each with its attached holes)
// into a single Polygon or a MultiPolygon, or an empty Polygon if no
// shell survived.
func assemblePolygons(factory *geom.GeometryFactory, shells []*ringResult) (geom.Geometry, error) {
	if len(shells) == 0 {
		return factory.CreateEmptyPolygon(), nil
	}
	polys := make([]*geom.Polygon, 0, len(shells))
	for _, shell := range shells {
		shellRing, err := factory.CreateLinearRing(shell.coords)
		if err != nil {
			return nil, err
		}
		holeRings := make([]*geom.LinearRing, 0, len(shell.holes))
		for _, h := range shell.holes {
			hr, err := factory.CreateLinearRing(h.coords)
			if err != nil {
				return nil, err
			}
			holeRings = append(holeRings, hr)
		}
		poly, err := factory.CreatePolygon(shellRing, holeRings)
		if err != nil {
			return nil, err
		}
		polys = append(polys, poly)
	}
	if len(polys) == 1 {
		return polys[0], nil
	}
	return factory.CreateMultiPolygon(polys), nil
}
