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

package locate

import (
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/index"
	"github.com/geoplanar/engine/planargraph"
)

// IndexedLocator answers repeated point-location queries against the same
// Polygon/MultiPolygon faster than the plain ray-cast, by pre-loading each
// ring's segments into a 1-D Bintree keyed on y-extent (§4.9): a query only
// tests the segments whose y-range straddles the query point instead of
// every segment in the ring.
type IndexedLocator struct {
	g       geom.Geometry
	rings   []ringEntry
	bintree *index.Bintree
}

type ringEntry struct {
	coords []geom.Coordinate
	isHole bool
	env    geom.Envelope
}

type segRef struct {
	ring int
	seg  int
}

// NewIndexedLocator builds a Bintree-accelerated locator over g, which must
// be a Polygon or MultiPolygon.
func NewIndexedLocator(g geom.Geometry) *IndexedLocator {
	loc := &IndexedLocator{g: g, bintree: index.NewBintree()}
	switch v := g.(type) {
	case *geom.Polygon:
		loc.addPolygon(v)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			loc.addPolygon(v.GeometryN(i))
		}
	}
	return loc
}

func (loc *IndexedLocator) addPolygon(p *geom.Polygon) {
	if p.IsEmpty() {
		return
	}
	loc.addRing(p.ExteriorRing(), false)
	for i := 0; i < p.NumInteriorRings(); i++ {
		loc.addRing(p.InteriorRingN(i), true)
	}
}

func (loc *IndexedLocator) addRing(ring *geom.LinearRing, isHole bool) {
	coords := ring.Coordinates()
	ringIdx := len(loc.rings)
	loc.rings = append(loc.rings, ringEntry{coords: coords, isHole: isHole, env: ring.Envelope()})
	for i := 0; i < len(coords)-1; i++ {
		lo, hi := coords[i].Y, coords[i+1].Y
		if lo > hi {
			lo, hi = hi, lo
		}
		loc.bintree.Insert(index.Interval{Lo: lo, Hi: hi}, segRef{ring: ringIdx, seg: i})
	}
}

// Locate answers the same Interior/Boundary/Exterior question as Locate,
// but only tests the segments the Bintree reports as straddling pt.Y.
func (loc *IndexedLocator) Locate(pt geom.Coordinate) planargraph.Location {
	if len(loc.rings) == 0 {
		return planargraph.Exterior
	}
	candidates := loc.bintree.Query(index.Interval{Lo: pt.Y, Hi: pt.Y})

	crossingsByRing := map[int]int{}
	for _, c := range candidates {
		ref := c.(segRef)
		ring := loc.rings[ref.ring]
		a, b := ring.coords[ref.seg], ring.coords[ref.seg+1]

		if distanceToSegment(pt, a, b) <= boundaryTolerance {
			return planargraph.Boundary
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < xCross {
				crossingsByRing[ref.ring]++
			}
		}
	}

	inShell := false
	for i, ring := range loc.rings {
		if ring.isHole {
			continue
		}
		if !ring.env.ContainsCoordinate(pt) {
			continue
		}
		if crossingsByRing[i]%2 == 1 {
			inShell = true
		}
	}
	if !inShell {
		return planargraph.Exterior
	}
	for i, ring := range loc.rings {
		if !ring.isHole {
			continue
		}
		if !ring.env.ContainsCoordinate(pt) {
			continue
		}
		if crossingsByRing[i]%2 == 1 {
			return planargraph.Exterior
		}
	}
	return planargraph.Interior
}

// STRLocator answers repeated point-location queries by pre-loading every
// ring segment's bounding box into an STRTree (§4.3, §4.9): a query prunes
// candidate segments via the packed R-tree instead of a full ring scan.
// Like STRTree itself, an STRLocator is immutable after its first Locate
// call.
type STRLocator struct {
	rings []ringEntry
	tree  *index.STRTree
	bounds geom.Envelope
}

// NewSTRLocator builds an STR-tree-accelerated locator over g, which must
// be a Polygon or MultiPolygon.
func NewSTRLocator(g geom.Geometry) *STRLocator {
	loc := &STRLocator{tree: index.NewSTRTree(), bounds: geom.NewEmptyEnvelope()}
	switch v := g.(type) {
	case *geom.Polygon:
		loc.addPolygon(v)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			loc.addPolygon(v.GeometryN(i))
		}
	}
	return loc
}

func (loc *STRLocator) addPolygon(p *geom.Polygon) {
	if p.IsEmpty() {
		return
	}
	loc.addRing(p.ExteriorRing(), false)
	for i := 0; i < p.NumInteriorRings(); i++ {
		loc.addRing(p.InteriorRingN(i), true)
	}
}

func (loc *STRLocator) addRing(ring *geom.LinearRing, isHole bool) {
	coords := ring.Coordinates()
	ringIdx := len(loc.rings)
	ringEnv := ring.Envelope()
	loc.rings = append(loc.rings, ringEntry{coords: coords, isHole: isHole, env: ringEnv})
	loc.bounds.ExpandToIncludeEnvelope(ringEnv)
	for i := 0; i < len(coords)-1; i++ {
		env := segmentEnvelope(coords[i], coords[i+1])
		_ = loc.tree.Insert(env, segRef{ring: ringIdx, seg: i})
	}
}

func segmentEnvelope(a, b geom.Coordinate) geom.Envelope {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return geom.Envelope{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Locate answers the same Interior/Boundary/Exterior question, pruning
// candidate segments via the STR-tree's packed bounding boxes.
func (loc *STRLocator) Locate(pt geom.Coordinate) planargraph.Location {
	if len(loc.rings) == 0 {
		return planargraph.Exterior
	}
	query := geom.Envelope{MinX: loc.bounds.MinX - 1, MinY: pt.Y, MaxX: loc.bounds.MaxX + 1, MaxY: pt.Y}
	candidates := loc.tree.Query(query)

	crossingsByRing := map[int]int{}
	for _, c := range candidates {
		ref := c.(segRef)
		ring := loc.rings[ref.ring]
		a, b := ring.coords[ref.seg], ring.coords[ref.seg+1]

		if distanceToSegment(pt, a, b) <= boundaryTolerance {
			return planargraph.Boundary
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < xCross {
				crossingsByRing[ref.ring]++
			}
		}
	}

	inShell := false
	for i, ring := range loc.rings {
		if ring.isHole {
			continue
		}
		if !ring.env.ContainsCoordinate(pt) {
			continue
		}
		if crossingsByRing[i]%2 == 1 {
			inShell = true
		}
	}
	if !inShell {
		return planargraph.Exterior
	}
	for i, ring := range loc.rings {
		if !ring.isHole {
			continue
		}
		if !ring.env.ContainsCoordinate(pt) {
			continue
		}
		if crossingsByRing[i]%2 == 1 {
			return planargraph.Exterior
		}
	}
	return planargraph.Interior
}
