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

package wkt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/wkt"
)

func roundTrip(t *testing.T, g geom.Geometry) geom.Geometry {
	t.Helper()
	text := wkt.Write(g)
	parsed, err := wkt.Parse(text, geom.DefaultFactory)
	require.NoError(t, err, "wkt %q failed to parse", text)
	return parsed
}

// Round-trip through WKT (§8): for any geometry built by the factory,
// parse(write(g)) equals g under equalsExact(0).
func TestRoundTripPoint(t *testing.T) {
	p, err := geom.DefaultFactory.CreatePoint(geom.NewCoordinate(5, 5))
	require.NoError(t, err)

	assert.Equal(t, "POINT (5 5)", wkt.Write(p))

	parsed := roundTrip(t, p)
	assert.True(t, p.EqualsExact(parsed, 0))
}

func TestRoundTripLineString(t *testing.T) {
	l, err := geom.DefaultFactory.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 10),
	})
	require.NoError(t, err)

	assert.Equal(t, "LINESTRING (0 0, 10 10)", wkt.Write(l))

	parsed := roundTrip(t, l)
	assert.True(t, l.EqualsExact(parsed, 0))
}

func TestRoundTripPolygonWithHole(t *testing.T) {
	f := geom.DefaultFactory
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
	p, err := f.CreatePolygon(shell, []*geom.LinearRing{hole})
	require.NoError(t, err)

	text := wkt.Write(p)
	assert.Equal(t, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 8 2, 8 8, 2 8, 2 2))", text)

	parsed := roundTrip(t, p)
	assert.True(t, p.EqualsExact(parsed, 0))
}

func TestRoundTripMultiPoint(t *testing.T) {
	f := geom.DefaultFactory
	mp := f.CreateMultiPoint([]geom.Coordinate{geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 1)})

	parsed := roundTrip(t, mp)
	assert.True(t, mp.EqualsExact(parsed, 0))
}

func TestRoundTripEmptyGeometries(t *testing.T) {
	f := geom.DefaultFactory

	assert.Equal(t, "POINT EMPTY", wkt.Write(f.CreateEmptyPoint()))
	assert.Equal(t, "POLYGON EMPTY", wkt.Write(f.CreateEmptyPolygon()))

	emptyLine, err := f.CreateLineString(nil)
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING EMPTY", wkt.Write(emptyLine))

	parsed, err := wkt.Parse("POINT EMPTY", f)
	require.NoError(t, err)
	assert.True(t, parsed.IsEmpty())
}

func TestParseGeometryCollection(t *testing.T) {
	f := geom.DefaultFactory
	g, err := wkt.Parse("GEOMETRYCOLLECTION (POINT (0 0), LINESTRING (0 0, 1 1))", f)
	require.NoError(t, err)

	gc, ok := g.(*geom.GeometryCollection)
	require.True(t, ok, "expected a GeometryCollection, got %T", g)
	assert.Equal(t, 2, gc.NumGeometries())
}

// Scenario 3 (§8) literal value: a touching-squares intersection writes
// as the expected LineString.
func TestWriteLineStringLiteral(t *testing.T) {
	l, err := geom.DefaultFactory.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(10, 0), geom.NewCoordinate(10, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING (10 0, 10 10)", wkt.Write(l))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := wkt.Parse("NOTAGEOMETRY (1 2)", geom.DefaultFactory)
	assert.Error(t, err)
}
