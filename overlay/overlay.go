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

// Package overlay computes the four boolean set operations of §4.7
// (intersection, union, difference, symmetric difference) over pairs of
// geometries, building on planargraph's noding and ring machinery.
package overlay

import (
	"github.com/geoplanar/engine/algorithm"
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/perr"
	"github.com/rs/zerolog"
)

// Op identifies one of the four boolean set operations §4.7 defines.
type Op int

const (
	Intersection Op = iota
	Union
	Difference
	SymDifference
)

func (op Op) String() string {
	switch op {
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	case Difference:
		return "difference"
	case SymDifference:
		return "symDifference"
	default:
		return "unknown"
	}
}

// Compute builds the result geometry of op applied to a and b, per §4.6's
// labelling and §4.7's result extraction. Intersection points found while
// noding are rounded through factory's precision model; the inputs' own
// coordinates are used as given.
//
// Area components (when both inputs are polygonal) are built by the full
// ring-linking path in area.go. Any other dimension combination — lines,
// points, or a polygon paired with a line or point — is handled by the
// simpler per-fragment membership test in linear.go, which does not
// attempt ring assembly.
func Compute(a, b geom.Geometry, op Op, factory *geom.GeometryFactory, logger zerolog.Logger) (geom.Geometry, error) {
	if hasCollection(a) || hasCollection(b) {
		return nil, perr.UnsupportedOperation("overlay does not support GeometryCollection operands")
	}
	dimA, dimB := dimensionOf(a), dimensionOf(b)
	if dimA < 0 || dimB < 0 {
		return emptyOperandResult(a, b, dimA, dimB, op, factory), nil
	}

	li := algorithm.NewLineIntersector(factory.PrecisionModel())

	var areaResult, areaLine geom.Geometry
	if dimA == 2 && dimB == 2 {
		var err error
		areaResult, areaLine, err = computeArea(a, b, op, factory, li, logger)
		if err != nil {
			return nil, err
		}
	}

	lineResult, pointResult, err := computeLinear(a, b, op, factory, li, dimA, dimB)
	if err != nil {
		return nil, err
	}
	lineResult, err = mergeLines(factory, lineResult, areaLine)
	if err != nil {
		return nil, err
	}

	return assemble(factory, areaResult, lineResult, pointResult)
}

// emptyOperandResult resolves op when at least one operand is empty,
// short-circuiting both the area and linear paths (neither handles an
// empty/non-empty dimension mismatch on its own): per §8's union and
// difference identities, union with an empty operand returns the other
// operand unchanged, and difference/symDifference follow ordinary set
// algebra with one side being the empty set.
func emptyOperandResult(a, b geom.Geometry, dimA, dimB int, op Op, factory *geom.GeometryFactory) geom.Geometry {
	aEmpty, bEmpty := dimA < 0, dimB < 0
	switch op {
	case Union:
		switch {
		case aEmpty && bEmpty:
			return factory.CreateEmptyPolygon()
		case aEmpty:
			return b
		default:
			return a
		}
	case Difference:
		if aEmpty {
			return factory.CreateEmptyPolygon()
		}
		return a
	case SymDifference:
		switch {
		case aEmpty && bEmpty:
			return factory.CreateEmptyPolygon()
		case aEmpty:
			return b
		default:
			return a
		}
	default: // Intersection
		return factory.CreateEmptyPolygon()
	}
}

// mergeLines combines two possibly-nil line results (each a LineString,
// a MultiLineString, or nil) into one.
func mergeLines(factory *geom.GeometryFactory, a, b geom.Geometry) (geom.Geometry, error) {
	var fragments [][]geom.Coordinate
	fragments = append(fragments, lineFragmentsOf(a)...)
	fragments = append(fragments, lineFragmentsOf(b)...)
	if len(fragments) == 0 {
		return nil, nil
	}
	return assembleLines(factory, dedupFragments(fragments))
}

func lineFragmentsOf(g geom.Geometry) [][]geom.Coordinate {
	switch v := g.(type) {
	case nil:
		return nil
	case *geom.LineString:
		if v.IsEmpty() {
			return nil
		}
		return [][]geom.Coordinate{v.Coordinates()}
	case *geom.MultiLineString:
		out := make([][]geom.Coordinate, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			out = append(out, v.GeometryN(i).Coordinates())
		}
		return out
	default:
		return nil
	}
}

// dimensionOf returns a geometry's topological dimension (0 point, 1
// line, 2 area), or -1 for an empty or nil geometry. Mirrors relate's
// identically named helper; duplicated rather than imported since
// overlay and relate are sibling packages that do not depend on each
// other (§9's package layering).
func dimensionOf(g geom.Geometry) int {
	if g == nil || g.IsEmpty() {
		return -1
	}
	switch v := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return 0
	case *geom.LineString, *geom.LinearRing, *geom.MultiLineString:
		return 1
	case *geom.Polygon, *geom.MultiPolygon:
		return 2
	case *geom.GeometryCollection:
		best := -1
		for i := 0; i < v.NumGeometries(); i++ {
			if d := dimensionOf(v.GeometryN(i)); d > best {
				best = d
			}
		}
		return best
	default:
		return -1
	}
}

func hasCollection(g geom.Geometry) bool {
	_, ok := g.(*geom.GeometryCollection)
	return ok
}

// membershipTest translates op and two inputs' Interior-or-not status
// into "is this side of the arrangement part of the result", per §4.7's
// per-operation membership table.
func membershipTest(op Op, inA, inB bool) bool {
	switch op {
	case Intersection:
		return inA && inB
	case Union:
		return inA || inB
	case Difference:
		return inA && !inB
	case SymDifference:
		return inA != inB
	default:
		return false
	}
}

// assemble combines whatever components were actually produced into one
// result geometry. A mixed-dimension result (e.g. an area result plus a
// residual line) is returned as a GeometryCollection; a single non-empty
// component is returned as-is; no components at all yields an empty
// polygon, matching Compute's "nothing survived" convention.
func assemble(factory *geom.GeometryFactory, area, line, point geom.Geometry) (geom.Geometry, error) {
	var parts []geom.Geometry
	for _, g := range []geom.Geometry{area, line, point} {
		if g != nil && !g.IsEmpty() {
			parts = append(parts, g)
		}
	}
	switch len(parts) {
	case 0:
		return factory.CreateEmptyPolygon(), nil
	case 1:
		return parts[0], nil
	default:
		return factory.CreateGeometryCollection(parts)
	}
}
