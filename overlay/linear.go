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
	"fmt"
	"strings"

	"github.com/geoplanar/engine/algorithm"
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/locate"
	"github.com/geoplanar/engine/planargraph"
)

// computeLinear builds the line and point components of op(a, b) for
// whichever of a/b is not polygonal (computeArea already handles the
// case where both are). Each linear or point input's own fragments are
// tested for inclusion against the *other* input's location, per §4.7's
// membership table; this is a simpler per-fragment test than the
// ring-based area path, since line and point results need no shell/hole
// assembly.
//
// When both inputs are linear, they are noded together first so
// fragments split exactly at their mutual crossings (letting a crossing
// that produces no surviving line fragment fall back to a point
// witness, matching §8's crossing-lines scenario); otherwise each linear
// operand is only self-noded and tested against the other's Classify
// locator directly — an acceptable simplification when the other operand
// is polygonal or point-like, where no further splitting is needed.
func computeLinear(a, b geom.Geometry, op Op, factory *geom.GeometryFactory, li *algorithm.LineIntersector, dimA, dimB int) (geom.Geometry, geom.Geometry, error) {
	locA, err := locate.Classify(a)
	if err != nil {
		return nil, nil, err
	}
	locB, err := locate.Classify(b)
	if err != nil {
		return nil, nil, err
	}

	var lineFragments [][]geom.Coordinate
	var sharedNodes []geom.Coordinate

	if dimA == 1 && dimB == 1 {
		lineFragments, sharedNodes = linearPairFragments(a, b, op, li, locA, locB)
	} else {
		if dimA == 1 {
			lineFragments = append(lineFragments, linearFragments(a, op, 0, li, locB)...)
		}
		if dimB == 1 {
			lineFragments = append(lineFragments, linearFragments(b, op, 1, li, locA)...)
		}
	}
	lineFragments = dedupFragments(lineFragments)

	var pointCoords []geom.Coordinate
	if dimA == 0 {
		pointCoords = append(pointCoords, includedPoints(a, op, 0, locB)...)
	}
	if dimB == 0 {
		pointCoords = append(pointCoords, includedPoints(b, op, 1, locA)...)
	}
	if len(lineFragments) == 0 {
		for _, n := range sharedNodes {
			if membershipTest(op, true, true) {
				pointCoords = append(pointCoords, n)
			}
		}
	}
	pointCoords = dedupCoords(pointCoords)

	lineGeom, err := assembleLines(factory, lineFragments)
	if err != nil {
		return nil, nil, err
	}
	return lineGeom, assemblePoints(factory, pointCoords), nil
}

// linearPairFragments nodes a and b together (so any mutual crossing
// splits both), returning each input's own resulting fragments (already
// filtered by op's membership test) plus the set of coordinates where
// both inputs independently ended up with a fragment endpoint — the
// crossing points a non-collinear line intersection needs, since no
// fragment's midpoint can ever witness a single-point coincidence.
func linearPairFragments(a, b geom.Geometry, op Op, li *algorithm.LineIntersector, locA, locB func(geom.Coordinate) planargraph.Location) ([][]geom.Coordinate, []geom.Coordinate) {
	gA := planargraph.NewGeometryGraph(0, a, li)
	gB := planargraph.NewGeometryGraph(1, b, li)

	var all []*planargraph.Edge
	all = append(all, gA.Edges()...)
	all = append(all, gB.Edges()...)
	noded, _ := planargraph.NodeEdges(li, all)

	aEnds := map[[2]float64]bool{}
	bEnds := map[[2]float64]bool{}
	var fragments [][]geom.Coordinate

	for _, e := range noded {
		owner := 0
		if e.Label.Get(0).IsNull() {
			owner = 1
		}
		otherLoc := locB
		if owner == 1 {
			otherLoc = locA
		}
		coords := e.Coordinates()
		if len(coords) == 0 {
			continue
		}
		ends := aEnds
		if owner == 1 {
			ends = bEnds
		}
		ends[coordKey(coords[0])] = true
		ends[coordKey(coords[len(coords)-1])] = true

		if includeLineFragment(op, owner, e, otherLoc) {
			fragments = append(fragments, coords)
		}
	}

	var shared []geom.Coordinate
	for k := range aEnds {
		if bEnds[k] {
			shared = append(shared, geom.NewCoordinate(k[0], k[1]))
		}
	}
	return fragments, shared
}

// linearFragments self-nodes owned (a LineString or MultiLineString) and
// returns whichever resulting fragments survive op's membership test
// against otherLoc.
func linearFragments(owned geom.Geometry, op Op, ownerIdx int, li *algorithm.LineIntersector, otherLoc func(geom.Coordinate) planargraph.Location) [][]geom.Coordinate {
	g := planargraph.NewGeometryGraph(ownerIdx, owned, li)
	var out [][]geom.Coordinate
	for _, e := range g.Edges() {
		if includeLineFragment(op, ownerIdx, e, otherLoc) {
			out = append(out, e.Coordinates())
		}
	}
	return out
}

// includeLineFragment reports whether e (owned by ownerIdx) survives op,
// sampling e's own midpoint against the other input's locator: otherIn
// means this fragment coincides with the other input over its whole
// span, the only case a line/line overlay can treat as "also in the
// other operand" without full collinear-overlap bookkeeping.
func includeLineFragment(op Op, ownerIdx int, e *planargraph.Edge, otherLoc func(geom.Coordinate) planargraph.Location) bool {
	coords := e.Coordinates()
	p0, p1 := coords[0], coords[1]
	mid := geom.NewCoordinate((p0.X+p1.X)/2, (p0.Y+p1.Y)/2)
	return lineMembership(op, ownerIdx, otherLoc(mid) != planargraph.Exterior)
}

func lineMembership(op Op, ownerIdx int, otherIn bool) bool {
	switch op {
	case Intersection:
		return otherIn
	case Union:
		return true
	case Difference:
		return ownerIdx == 0 && !otherIn
	case SymDifference:
		return !otherIn
	default:
		return false
	}
}

// includedPoints returns owned's own Point/MultiPoint coordinates that
// survive op's membership test against otherLoc.
func includedPoints(owned geom.Geometry, op Op, ownerIdx int, otherLoc func(geom.Coordinate) planargraph.Location) []geom.Coordinate {
	var coords []geom.Coordinate
	switch v := owned.(type) {
	case *geom.Point:
		if !v.IsEmpty() {
			coords = append(coords, v.Coordinate())
		}
	case *geom.MultiPoint:
		for i := 0; i < v.NumGeometries(); i++ {
			p := v.GeometryN(i)
			if !p.IsEmpty() {
				coords = append(coords, p.Coordinate())
			}
		}
	}
	var out []geom.Coordinate
	for _, c := range coords {
		if lineMembership(op, ownerIdx, otherLoc(c) != planargraph.Exterior) {
			out = append(out, c)
		}
	}
	return out
}

func coordKey(c geom.Coordinate) [2]float64 { return [2]float64{c.X, c.Y} }

// dedupFragments drops a fragment whose coordinate sequence (forward or
// reversed) has already been kept, standing in for §4.6 step 1's
// duplicate-edge merge, which this package does not otherwise perform.
func dedupFragments(fragments [][]geom.Coordinate) [][]geom.Coordinate {
	seen := map[string]bool{}
	var out [][]geom.Coordinate
	for _, f := range fragments {
		key := fragmentKey(f)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}

func fragmentKey(coords []geom.Coordinate) string {
	rev := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		rev[len(coords)-1-i] = c
	}
	fwdKey := coordsKey(coords)
	revKey := coordsKey(rev)
	if fwdKey < revKey {
		return fwdKey
	}
	return revKey
}

func coordsKey(coords []geom.Coordinate) string {
	var b strings.Builder
	for _, c := range coords {
		fmt.Fprintf(&b, "%.9f,%.9f;", c.X, c.Y)
	}
	return b.String()
}

func dedupCoords(coords []geom.Coordinate) []geom.Coordinate {
	seen := map[[2]float64]bool{}
	var out []geom.Coordinate
	for _, c := range coords {
		k := coordKey(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

func assembleLines(factory *geom.GeometryFactory, fragments [][]geom.Coordinate) (geom.Geometry, error) {
	switch len(fragments) {
	case 0:
		return nil, nil
	case 1:
		return factory.CreateLineString(fragments[0])
	default:
		return factory.CreateMultiLineString(fragments)
	}
}

func assemblePoints(factory *geom.GeometryFactory, coords []geom.Coordinate) geom.Geometry {
	switch len(coords) {
	case 0:
		return nil
	case 1:
		p, err := factory.CreatePoint(coords[0])
		if err != nil {
			return nil
		}
		return p
	default:
		return factory.CreateMultiPoint(coords)
	}
}
