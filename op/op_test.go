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

package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/op"
)

func square(t *testing.T, f *geom.GeometryFactory, x0, y0, x1, y1 float64) *geom.Polygon {
	t.Helper()
	r, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(x0, y0),
		geom.NewCoordinate(x1, y0),
		geom.NewCoordinate(x1, y1),
		geom.NewCoordinate(x0, y1),
		geom.NewCoordinate(x0, y0),
	})
	require.NoError(t, err)
	p, err := f.CreatePolygon(r, nil)
	require.NoError(t, err)
	return p
}

func point(t *testing.T, f *geom.GeometryFactory, x, y float64) *geom.Point {
	t.Helper()
	p, err := f.CreatePoint(geom.NewCoordinate(x, y))
	require.NoError(t, err)
	return p
}

func line(t *testing.T, f *geom.GeometryFactory, coords ...float64) *geom.LineString {
	t.Helper()
	cs := make([]geom.Coordinate, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		cs = append(cs, geom.NewCoordinate(coords[i], coords[i+1]))
	}
	l, err := f.CreateLineString(cs)
	require.NoError(t, err)
	return l
}

// Scenario 1 (§8): a point interior to a square relates, contains, and is
// contained the expected way.
func TestEnginePointInSquare(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	sq := square(t, f, 0, 0, 10, 10)
	p := point(t, f, 5, 5)

	im, err := e.Relate(sq, p)
	require.NoError(t, err)
	assert.Equal(t, "0F2FF1FF2", im.String())

	contains, err := e.Contains(sq, p)
	require.NoError(t, err)
	assert.True(t, contains)

	within, err := e.Within(p, sq)
	require.NoError(t, err)
	assert.True(t, within)
}

// Scenario 2 (§8): two overlapping squares intersect to the expected
// 5x5 square.
func TestEngineOverlappingSquaresIntersection(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 5, 5, 15, 15)

	result, err := e.Intersection(a, b)
	require.NoError(t, err)

	expected := square(t, f, 5, 5, 10, 10)
	assert.True(t, result.Normalize().EqualsExact(expected.Normalize(), 0))
}

// Scenario 3 (§8): two squares sharing only a common edge touch, intersect,
// do not overlap, and their intersection is the shared edge.
func TestEngineTouchingSquares(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 10, 0, 20, 10)

	touches, err := e.Touches(a, b)
	require.NoError(t, err)
	assert.True(t, touches)

	intersects, err := e.Intersects(a, b)
	require.NoError(t, err)
	assert.True(t, intersects)

	overlaps, err := e.Overlaps(a, b)
	require.NoError(t, err)
	assert.False(t, overlaps)

	intersection, err := e.Intersection(a, b)
	require.NoError(t, err)
	ls, ok := intersection.(*geom.LineString)
	require.True(t, ok, "expected a LineString, got %T", intersection)
	assert.Len(t, ls.Coordinates(), 2)
}

// Scenario 4 (§8): two disjoint points relate, are disjoint, and union to
// a MultiPoint of both.
func TestEngineDisjointPoints(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := point(t, f, 0, 0)
	b := point(t, f, 1, 1)

	im, err := e.Relate(a, b)
	require.NoError(t, err)
	assert.Equal(t, "FF0FFF0F2", im.String())

	disjoint, err := e.Disjoint(a, b)
	require.NoError(t, err)
	assert.True(t, disjoint)

	union, err := e.Union(a, b)
	require.NoError(t, err)
	mp, ok := union.(*geom.MultiPoint)
	require.True(t, ok, "expected a MultiPoint, got %T", union)
	assert.Equal(t, 2, mp.NumGeometries())
}

// Scenario 5 (§8): two lines crossing at a single interior point intersect,
// cross, and intersect to that point.
func TestEngineCrossingLines(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := line(t, f, 0, 0, 10, 10)
	b := line(t, f, 0, 10, 10, 0)

	intersects, err := e.Intersects(a, b)
	require.NoError(t, err)
	assert.True(t, intersects)

	crosses, err := e.Crosses(a, b)
	require.NoError(t, err)
	assert.True(t, crosses)

	intersection, err := e.Intersection(a, b)
	require.NoError(t, err)
	p, ok := intersection.(*geom.Point)
	require.True(t, ok, "expected a Point, got %T", intersection)
	assert.InDelta(t, 5.0, p.Coordinate().X, 1e-6)
	assert.InDelta(t, 5.0, p.Coordinate().Y, 1e-6)
}

// Scenario 6 (§8): a square with a hole, unioned with a polygon that is
// exactly that hole, fills back to the plain outer square; their
// intersection collapses to empty.
func TestEnginePolygonWithHole(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()

	shell, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 0),
		geom.NewCoordinate(10, 10), geom.NewCoordinate(0, 10),
		geom.NewCoordinate(0, 0),
	})
	require.NoError(t, err)
	hole, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(2, 2), geom.NewCoordinate(8, 2),
		geom.NewCoordinate(8, 8), geom.NewCoordinate(2, 8),
		geom.NewCoordinate(2, 2),
	})
	require.NoError(t, err)
	a, err := f.CreatePolygon(shell, []*geom.LinearRing{hole})
	require.NoError(t, err)
	b, err := f.CreatePolygon(hole, nil)
	require.NoError(t, err)

	union, err := e.Union(a, b)
	require.NoError(t, err)
	expected := square(t, f, 0, 0, 10, 10)
	assert.True(t, union.Normalize().EqualsExact(expected.Normalize(), 0))

	intersection, err := e.Intersection(a, b)
	require.NoError(t, err)
	assert.True(t, intersection.IsEmpty())
}

// Relate is symmetric up to transposition.
func TestEngineRelateTransposeSymmetry(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 5, 5, 15, 15)

	ab, err := e.Relate(a, b)
	require.NoError(t, err)
	ba, err := e.Relate(b, a)
	require.NoError(t, err)
	assert.Equal(t, ab.String(), transpose(ba.String()))
}

func transpose(pattern string) string {
	out := make([]byte, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j*3+i] = pattern[i*3+j]
		}
	}
	return string(out)
}

// De Morgan on predicates: contains(a,b) <-> within(b,a), and
// disjoint(a,b) <-> !intersects(a,b).
func TestEngineDeMorgan(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	outer := square(t, f, 0, 0, 10, 10)
	inner := point(t, f, 5, 5)

	contains, err := e.Contains(outer, inner)
	require.NoError(t, err)
	within, err := e.Within(inner, outer)
	require.NoError(t, err)
	assert.Equal(t, contains, within)

	disjoint, err := e.Disjoint(outer, inner)
	require.NoError(t, err)
	intersects, err := e.Intersects(outer, inner)
	require.NoError(t, err)
	assert.Equal(t, disjoint, !intersects)
}

// Union identity: a union empty returns a unchanged.
func TestEngineUnionIdentity(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := square(t, f, 0, 0, 10, 10)
	empty := f.CreateEmptyPolygon()

	union, err := e.Union(a, empty)
	require.NoError(t, err)
	assert.True(t, union.Normalize().EqualsExact(a.Normalize(), 0))
}

// Difference annihilation: a minus empty is a, and empty minus a is empty.
func TestEngineDifferenceAnnihilation(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := square(t, f, 0, 0, 10, 10)
	empty := f.CreateEmptyPolygon()

	diff, err := e.Difference(a, empty)
	require.NoError(t, err)
	assert.True(t, diff.Normalize().EqualsExact(a.Normalize(), 0))

	diff, err = e.Difference(empty, a)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
}

// Symmetric-difference identity: symDiff(a,b) == (a union b) - (a
// intersection b), checked by area since both sides may order their
// pieces differently.
func TestEngineSymDifferenceIdentity(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 5, 5, 15, 15)

	symDiff, err := e.SymDifference(a, b)
	require.NoError(t, err)

	union, err := e.Union(a, b)
	require.NoError(t, err)
	intersection, err := e.Intersection(a, b)
	require.NoError(t, err)
	unionMinusIntersection, err := e.Difference(union, intersection)
	require.NoError(t, err)

	assert.InDelta(t, polygonArea(t, unionMinusIntersection), polygonArea(t, symDiff), 1e-6)
}

func polygonArea(t *testing.T, g geom.Geometry) float64 {
	t.Helper()
	switch v := g.(type) {
	case *geom.Polygon:
		area := shoelace(v.ExteriorRing().Coordinates())
		for i := 0; i < v.NumInteriorRings(); i++ {
			area -= shoelace(v.InteriorRingN(i).Coordinates())
		}
		return area
	case *geom.MultiPolygon:
		total := 0.0
		for i := 0; i < v.NumGeometries(); i++ {
			total += polygonArea(t, v.GeometryN(i))
		}
		return total
	default:
		return 0
	}
}

func shoelace(coords []geom.Coordinate) float64 {
	sum := 0.0
	for i := 0; i+1 < len(coords); i++ {
		sum += coords[i].X*coords[i+1].Y - coords[i+1].X*coords[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// Envelope short-circuit (§8, supplementary): Intersects reports false
// for envelope-disjoint inputs without the relate engine ever running —
// exercised here with two envelope-disjoint squares; the test checks the
// Intersects and Disjoint results, not whether relate ran.
func TestEngineEnvelopeShortCircuit(t *testing.T) {
	e := op.NewEngine()
	f := e.Factory()
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 100, 100, 110, 110)

	intersects, err := e.Intersects(a, b)
	require.NoError(t, err)
	assert.False(t, intersects)

	disjoint, err := e.Disjoint(a, b)
	require.NoError(t, err)
	assert.True(t, disjoint)
}

// LinearRing closure invariant (§8, supplementary): a ring whose first and
// last coordinates differ is rejected at construction.
func TestLinearRingClosureInvariant(t *testing.T) {
	_, err := geom.DefaultFactory.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(10, 0),
		geom.NewCoordinate(10, 10),
		geom.NewCoordinate(0, 10),
	})
	assert.Error(t, err)
}
