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

// Package locate implements the point-in-polygon area locators of §4.9:
// a plain ray-cast, a Bintree accelerated version, and
// an STR-tree accelerated version, all answering the same
// planargraph.Location question for a query point against a Polygon or
// MultiPolygon.
package locate

import (
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/planargraph"
)

// Locate returns the query point's location (Interior/Boundary/Exterior)
// with respect to g, using the plain ray-cast algorithm (§4.9). g must be
// a Polygon or MultiPolygon; any other geometry reports Exterior.
func Locate(pt geom.Coordinate, g geom.Geometry) planargraph.Location {
	switch v := g.(type) {
	case *geom.Polygon:
		return locatePolygon(pt, v)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumGeometries(); i++ {
			loc := locatePolygon(pt, v.GeometryN(i))
			if loc != planargraph.Exterior {
				return loc
			}
		}
		return planargraph.Exterior
	default:
		return planargraph.Exterior
	}
}

func locatePolygon(pt geom.Coordinate, p *geom.Polygon) planargraph.Location {
	if p.IsEmpty() || !p.Envelope().ContainsCoordinate(pt) {
		return planargraph.Exterior
	}
	shellLoc := locateRing(pt, p.ExteriorRing())
	if shellLoc != planargraph.Interior {
		return shellLoc
	}
	for i := 0; i < p.NumInteriorRings(); i++ {
		hole := p.InteriorRingN(i)
		holeLoc := locateRing(pt, hole)
		if holeLoc == planargraph.Boundary {
			return planargraph.Boundary
		}
		if holeLoc == planargraph.Interior {
			return planargraph.Exterior
		}
	}
	return planargraph.Interior
}

func locateRing(pt geom.Coordinate, ring *geom.LinearRing) planargraph.Location {
	coords := ring.Coordinates()
	if onRingBoundary(pt, coords) {
		return planargraph.Boundary
	}
	if rayCastInside(pt, coords) {
		return planargraph.Interior
	}
	return planargraph.Exterior
}

// boundaryTolerance bounds the perpendicular distance within which a query
// point is considered to lie exactly on a ring segment (§4.9: "on-boundary
// cases are detected separately by distance-to-segment comparison to a
// model-derived tolerance").
const boundaryTolerance = 1e-9

func onRingBoundary(pt geom.Coordinate, ring []geom.Coordinate) bool {
	for i := 0; i < len(ring)-1; i++ {
		if distanceToSegment(pt, ring[i], ring[i+1]) <= boundaryTolerance {
			return true
		}
	}
	return false
}

func distanceToSegment(p, a, b geom.Coordinate) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := geom.NewCoordinate(a.X+t*dx, a.Y+t*dy)
	return p.Distance(proj)
}

// rayCastInside implements §4.9's crossing rule: a horizontal ray from pt
// in the +x direction, counting segments whose y-range strictly straddles
// pt.Y with upper-endpoint inclusion to avoid double-counting a ray that
// passes exactly through a vertex.
func rayCastInside(pt geom.Coordinate, ring []geom.Coordinate) bool {
	inside := false
	n := len(ring)
	if n == 0 {
		return false
	}
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
