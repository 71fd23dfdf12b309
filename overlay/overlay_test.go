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

package overlay_test

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/overlay"
)

func square(t *testing.T, x0, y0, x1, y1 float64) *geom.Polygon {
	t.Helper()
	f := geom.DefaultFactory
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

// squareWithHole builds the outer square [x0,y0]-[x1,y1] with a square hole
// [hx0,hy0]-[hx1,hy1] cut out of it.
func squareWithHole(t *testing.T, x0, y0, x1, y1, hx0, hy0, hx1, hy1 float64) *geom.Polygon {
	t.Helper()
	f := geom.DefaultFactory
	shell, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(x0, y0),
		geom.NewCoordinate(x1, y0),
		geom.NewCoordinate(x1, y1),
		geom.NewCoordinate(x0, y1),
		geom.NewCoordinate(x0, y0),
	})
	require.NoError(t, err)
	hole, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(hx0, hy0),
		geom.NewCoordinate(hx0, hy1),
		geom.NewCoordinate(hx1, hy1),
		geom.NewCoordinate(hx1, hy0),
		geom.NewCoordinate(hx0, hy0),
	})
	require.NoError(t, err)
	p, err := f.CreatePolygon(shell, []*geom.LinearRing{hole})
	require.NoError(t, err)
	return p
}

func line(t *testing.T, coords ...float64) *geom.LineString {
	t.Helper()
	cs := make([]geom.Coordinate, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		cs = append(cs, geom.NewCoordinate(coords[i], coords[i+1]))
	}
	l, err := geom.DefaultFactory.CreateLineString(cs)
	require.NoError(t, err)
	return l
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// shoelaceArea returns the unsigned area enclosed by a closed ring's
// coordinates.
func shoelaceArea(coords []geom.Coordinate) float64 {
	sum := 0.0
	for i := 0; i+1 < len(coords); i++ {
		sum += coords[i].X*coords[i+1].Y - coords[i+1].X*coords[i].Y
	}
	return math.Abs(sum) / 2
}

// polygonArea sums a Polygon's (or MultiPolygon's) shell areas minus their
// holes, matching how overlay's own ring classification treats nesting.
func polygonArea(t *testing.T, g geom.Geometry) float64 {
	t.Helper()
	switch v := g.(type) {
	case *geom.Polygon:
		area := shoelaceArea(v.ExteriorRing().Coordinates())
		for i := 0; i < v.NumInteriorRings(); i++ {
			area -= shoelaceArea(v.InteriorRingN(i).Coordinates())
		}
		return area
	case *geom.MultiPolygon:
		total := 0.0
		for i := 0; i < v.NumGeometries(); i++ {
			total += polygonArea(t, v.GeometryN(i))
		}
		return total
	default:
		t.Fatalf("polygonArea: unexpected type %T", g)
		return 0
	}
}

// Scenario 2 (§8): two overlapping squares intersect to a 5x5 square of
// area 25.
func TestOverlayIntersectionOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)

	result, err := overlay.Compute(a, b, overlay.Intersection, geom.DefaultFactory, testLogger())
	require.NoError(t, err)

	poly, ok := result.(*geom.Polygon)
	require.True(t, ok, "expected a single Polygon, got %T", result)
	assert.False(t, poly.IsEmpty())
	assert.InDelta(t, 25.0, polygonArea(t, poly), 1e-6)
}

// The union of the same two overlapping squares covers both, 175 being the
// sum of the two 100-area squares minus the 25-area overlap counted twice.
func TestOverlayUnionOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)

	result, err := overlay.Compute(a, b, overlay.Union, geom.DefaultFactory, testLogger())
	require.NoError(t, err)
	assert.InDelta(t, 175.0, polygonArea(t, result), 1e-6)
}

// Scenario 3 (§8): two squares sharing only a common edge touch without
// overlapping; their intersection is the shared edge, reduced to a line.
func TestOverlayIntersectionTouchingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 10, 0, 20, 10)

	result, err := overlay.Compute(a, b, overlay.Intersection, geom.DefaultFactory, testLogger())
	require.NoError(t, err)

	ls, ok := result.(*geom.LineString)
	require.True(t, ok, "expected a LineString, got %T", result)
	coords := ls.Coordinates()
	require.Len(t, coords, 2)
	xs := map[float64]bool{coords[0].X: true, coords[1].X: true}
	assert.True(t, xs[10])
	assert.Len(t, xs, 1)
	ys := map[float64]bool{coords[0].Y: true, coords[1].Y: true}
	assert.Contains(t, ys, 0.0)
	assert.Contains(t, ys, 10.0)
}

// The union of two touching squares merges into a single 10x20 rectangle,
// with no residual internal seam.
func TestOverlayUnionTouchingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 10, 0, 20, 10)

	result, err := overlay.Compute(a, b, overlay.Union, geom.DefaultFactory, testLogger())
	require.NoError(t, err)

	poly, ok := result.(*geom.Polygon)
	require.True(t, ok, "expected a single merged Polygon, got %T", result)
	assert.Equal(t, 0, poly.NumInteriorRings())
	assert.InDelta(t, 200.0, polygonArea(t, poly), 1e-6)
}

// Scenario 5 (§8): two lines crossing at a single interior point intersect
// to that point alone.
func TestOverlayIntersectionCrossingLines(t *testing.T) {
	a := line(t, 0, 0, 10, 10)
	b := line(t, 0, 10, 10, 0)

	result, err := overlay.Compute(a, b, overlay.Intersection, geom.DefaultFactory, testLogger())
	require.NoError(t, err)

	p, ok := result.(*geom.Point)
	require.True(t, ok, "expected a Point, got %T", result)
	assert.InDelta(t, 5.0, p.Coordinate().X, 1e-6)
	assert.InDelta(t, 5.0, p.Coordinate().Y, 1e-6)
}

// A square-shaped hole in one polygon, aligned with another polygon that is
// itself exactly that hole filled in, unions back to the plain outer
// square with no hole.
func TestOverlayUnionFillsHole(t *testing.T) {
	withHole := squareWithHole(t, 0, 0, 10, 10, 4, 4, 6, 6)
	plug := square(t, 4, 4, 6, 6)

	result, err := overlay.Compute(withHole, plug, overlay.Union, geom.DefaultFactory, testLogger())
	require.NoError(t, err)

	poly, ok := result.(*geom.Polygon)
	require.True(t, ok, "expected a single filled Polygon, got %T", result)
	assert.Equal(t, 0, poly.NumInteriorRings())
	assert.InDelta(t, 100.0, polygonArea(t, poly), 1e-6)
}

// The same hole/plug pair intersect to nothing: the hole's boundary is the
// plug's whole shell, so neither interior overlaps the other.
func TestOverlayIntersectionHoleAndPlugIsEmpty(t *testing.T) {
	withHole := squareWithHole(t, 0, 0, 10, 10, 4, 4, 6, 6)
	plug := square(t, 4, 4, 6, 6)

	result, err := overlay.Compute(withHole, plug, overlay.Intersection, geom.DefaultFactory, testLogger())
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

// Difference of a square minus an overlapping square leaves only the part
// of a not covered by b: a 10x10 square minus its top-right 5x5 overlap
// with b leaves 75 units of area.
func TestOverlayDifferenceOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)

	result, err := overlay.Compute(a, b, overlay.Difference, geom.DefaultFactory, testLogger())
	require.NoError(t, err)
	assert.InDelta(t, 75.0, polygonArea(t, result), 1e-6)
}

// Symmetric difference of two overlapping squares is everything but their
// shared middle: 175 total minus the 25-area overlap kept once more, i.e.
// 150.
func TestOverlaySymDifferenceOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)

	result, err := overlay.Compute(a, b, overlay.SymDifference, geom.DefaultFactory, testLogger())
	require.NoError(t, err)
	assert.InDelta(t, 150.0, polygonArea(t, result), 1e-6)
}

// A disjoint pair has an empty intersection and a union whose area is the
// simple sum of both (no overlap to double-count).
func TestOverlayDisjointSquares(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 20, 0, 30, 10)

	intersection, err := overlay.Compute(a, b, overlay.Intersection, geom.DefaultFactory, testLogger())
	require.NoError(t, err)
	assert.True(t, intersection.IsEmpty())

	union, err := overlay.Compute(a, b, overlay.Union, geom.DefaultFactory, testLogger())
	require.NoError(t, err)
	assert.InDelta(t, 200.0, polygonArea(t, union), 1e-6)
}

// Two squares that touch only at a shared corner vertex force a result
// node with out-degree 4: every edge-end from both squares' corners
// survives into the result, so the maximal ring built at that node
// passes through it twice and must be split into its two minimal rings
// (§4.7) rather than returned as one self-touching ring.
func TestOverlayUnionSquaresTouchingAtCorner(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	b := square(t, 10, 10, 20, 20)

	result, err := overlay.Compute(a, b, overlay.Union, geom.DefaultFactory, testLogger())
	require.NoError(t, err)

	mp, ok := result.(*geom.MultiPolygon)
	require.True(t, ok, "expected a MultiPolygon of two separate squares, got %T", result)
	require.Equal(t, 2, mp.NumGeometries())
	for i := 0; i < mp.NumGeometries(); i++ {
		poly := mp.GeometryN(i).(*geom.Polygon)
		assert.Equal(t, 0, poly.NumInteriorRings())
		assert.InDelta(t, 100.0, polygonArea(t, poly), 1e-6)
	}
	assert.InDelta(t, 200.0, polygonArea(t, result), 1e-6)
}

// GeometryCollection operands are explicitly unsupported by overlay.
func TestOverlayRejectsGeometryCollection(t *testing.T) {
	a := square(t, 0, 0, 10, 10)
	gc, err := geom.DefaultFactory.CreateGeometryCollection([]geom.Geometry{a})
	require.NoError(t, err)

	_, err = overlay.Compute(gc, a, overlay.Union, geom.DefaultFactory, testLogger())
	assert.Error(t, err)
}
