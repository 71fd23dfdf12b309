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

package relate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/pm"
	"github.com/geoplanar/engine/relate"
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

func point(t *testing.T, x, y float64) *geom.Point {
	t.Helper()
	p, err := geom.DefaultFactory.CreatePoint(geom.NewCoordinate(x, y))
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

// Scenario 1 (§8): a point interior to a square relates as "0F2FF1FF2",
// and is both within and contained the expected way around.
func TestRelatePointInSquare(t *testing.T) {
	model := pm.NewFloating()
	p := point(t, 5, 5)
	sq := square(t, 0, 0, 10, 10)

	im, err := relate.Relate(sq, p, model)
	require.NoError(t, err)
	assert.Equal(t, "0F2FF1FF2", im.String())

	within, err := relate.Within(p, sq, model)
	require.NoError(t, err)
	assert.True(t, within)

	contains, err := relate.Contains(sq, p, model)
	require.NoError(t, err)
	assert.True(t, contains)
}

// Scenario 3 (§8): two squares sharing only a common edge touch, and are
// neither overlapping nor disjoint.
func TestRelateTouchingSquares(t *testing.T) {
	model := pm.NewFloating()
	a := square(t, 0, 0, 10, 10)
	b := square(t, 10, 0, 20, 10)

	touches, err := relate.Touches(a, b, model)
	require.NoError(t, err)
	assert.True(t, touches)

	intersects, err := relate.Intersects(a, b, model)
	require.NoError(t, err)
	assert.True(t, intersects)

	overlaps, err := relate.Overlaps(a, b, model)
	require.NoError(t, err)
	assert.False(t, overlaps)

	disjoint, err := relate.Disjoint(a, b, model)
	require.NoError(t, err)
	assert.False(t, disjoint)
}

// Scenario 4 (§8): two distinct points are disjoint and relate as
// "FF0FFF0F2".
func TestRelateDisjointPoints(t *testing.T) {
	model := pm.NewFloating()
	a := point(t, 0, 0)
	b := point(t, 1, 1)

	im, err := relate.Relate(a, b, model)
	require.NoError(t, err)
	assert.Equal(t, "FF0FFF0F2", im.String())

	disjoint, err := relate.Disjoint(a, b, model)
	require.NoError(t, err)
	assert.True(t, disjoint)

	intersects, err := relate.Intersects(a, b, model)
	require.NoError(t, err)
	assert.False(t, intersects)
}

// Scenario 5 (§8): two lines crossing at a single interior point intersect
// and cross, but do not overlap or touch.
func TestRelateCrossingLines(t *testing.T) {
	model := pm.NewFloating()
	a := line(t, 0, 0, 10, 10)
	b := line(t, 0, 10, 10, 0)

	intersects, err := relate.Intersects(a, b, model)
	require.NoError(t, err)
	assert.True(t, intersects)

	crosses, err := relate.Crosses(a, b, model)
	require.NoError(t, err)
	assert.True(t, crosses)

	touches, err := relate.Touches(a, b, model)
	require.NoError(t, err)
	assert.False(t, touches)
}

// Overlapping squares (scenario 2's setup) overlap and are neither within
// nor disjoint of one another.
func TestRelateOverlappingSquares(t *testing.T) {
	model := pm.NewFloating()
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)

	overlaps, err := relate.Overlaps(a, b, model)
	require.NoError(t, err)
	assert.True(t, overlaps)

	within, err := relate.Within(a, b, model)
	require.NoError(t, err)
	assert.False(t, within)

	disjoint, err := relate.Disjoint(a, b, model)
	require.NoError(t, err)
	assert.False(t, disjoint)
}

// Equals holds for a square related to an identical copy of itself.
func TestRelateEqualsSquares(t *testing.T) {
	model := pm.NewFloating()
	a := square(t, 0, 0, 10, 10)
	b := square(t, 0, 0, 10, 10)

	equals, err := relate.Equals(a, b, model)
	require.NoError(t, err)
	assert.True(t, equals)
}

// The matrix is the exact transpose of itself when the operands are
// swapped, per §8's universal symmetry property.
func TestRelateTransposeSymmetry(t *testing.T) {
	model := pm.NewFloating()
	a := square(t, 0, 0, 10, 10)
	b := square(t, 5, 5, 15, 15)

	ab, err := relate.Relate(a, b, model)
	require.NoError(t, err)
	ba, err := relate.Relate(b, a, model)
	require.NoError(t, err)

	for i := relate.PInterior; i <= relate.PExterior; i++ {
		for j := relate.PInterior; j <= relate.PExterior; j++ {
			assert.Equal(t, ab.Get(i, j), ba.Get(j, i), "cell (%d,%d)", i, j)
		}
	}
}

// contains(a, b) must agree with within(b, a), per §8's universal duality
// property.
func TestRelateContainsWithinDuality(t *testing.T) {
	model := pm.NewFloating()
	outer := square(t, 0, 0, 10, 10)
	inner := point(t, 5, 5)

	contains, err := relate.Contains(outer, inner, model)
	require.NoError(t, err)
	within, err := relate.Within(inner, outer, model)
	require.NoError(t, err)
	assert.Equal(t, contains, within)
}

// GeometryCollection operands are explicitly unsupported by relate.
func TestRelateRejectsGeometryCollection(t *testing.T) {
	model := pm.NewFloating()
	p := point(t, 0, 0)
	gc, err := geom.DefaultFactory.CreateGeometryCollection([]geom.Geometry{p})
	require.NoError(t, err)

	_, err = relate.Relate(gc, p, model)
	assert.Error(t, err)
}

// MatchesPattern exposes the raw relate(g, pattern) operation from §6.
func TestRelateMatchesPattern(t *testing.T) {
	model := pm.NewFloating()
	p := point(t, 5, 5)
	sq := square(t, 0, 0, 10, 10)

	ok, err := relate.MatchesPattern(sq, p, model, "0F2FF1FF2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = relate.MatchesPattern(sq, p, model, "FF*FF****")
	require.NoError(t, err)
	assert.False(t, ok)
}
