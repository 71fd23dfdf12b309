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

package geojsonio_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplanar/engine/geojsonio"
	"github.com/geoplanar/engine/geom"
)

func roundTrip(t *testing.T, g geom.Geometry) geom.Geometry {
	t.Helper()
	data, err := geojsonio.Encode(g)
	require.NoError(t, err)
	parsed, err := geojsonio.Decode(data, geom.DefaultFactory)
	require.NoError(t, err)
	return parsed
}

func TestEncodePoint(t *testing.T) {
	f := geom.DefaultFactory
	p, err := f.CreatePoint(geom.NewCoordinate(5, 5))
	require.NoError(t, err)

	data, err := geojsonio.Encode(p)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Point", decoded["type"])
	assert.Equal(t, []interface{}{5.0, 5.0}, decoded["coordinates"])

	parsed := roundTrip(t, p)
	assert.True(t, p.EqualsExact(parsed, 0))
}

func TestRoundTripLineString(t *testing.T) {
	f := geom.DefaultFactory
	l, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 10),
	})
	require.NoError(t, err)

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

	parsed := roundTrip(t, p)
	assert.True(t, p.EqualsExact(parsed, 0))
}

func TestRoundTripMultiPolygon(t *testing.T) {
	f := geom.DefaultFactory
	r1, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0),
		geom.NewCoordinate(1, 1), geom.NewCoordinate(0, 1),
		geom.NewCoordinate(0, 0),
	})
	require.NoError(t, err)
	r2, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(5, 5), geom.NewCoordinate(6, 5),
		geom.NewCoordinate(6, 6), geom.NewCoordinate(5, 6),
		geom.NewCoordinate(5, 5),
	})
	require.NoError(t, err)
	p1, err := f.CreatePolygon(r1, nil)
	require.NoError(t, err)
	p2, err := f.CreatePolygon(r2, nil)
	require.NoError(t, err)
	mp := f.CreateMultiPolygon([]*geom.Polygon{p1, p2})

	parsed := roundTrip(t, mp)
	assert.True(t, mp.EqualsExact(parsed, 0))
}

func TestEncodeFeatureCarriesProperties(t *testing.T) {
	f := geom.DefaultFactory
	p, err := f.CreatePoint(geom.NewCoordinate(1, 2))
	require.NoError(t, err)

	data, err := geojsonio.EncodeFeature(p, map[string]interface{}{"name": "station"})
	require.NoError(t, err)

	parsed, props, err := geojsonio.DecodeFeature(data, f)
	require.NoError(t, err)
	assert.True(t, p.EqualsExact(parsed, 0))
	assert.Equal(t, "station", props["name"])
}

func TestDecodeGeometryCollection(t *testing.T) {
	f := geom.DefaultFactory
	data := []byte(`{"type":"GeometryCollection","geometries":[
		{"type":"Point","coordinates":[0,0]},
		{"type":"LineString","coordinates":[[0,0],[1,1]]}
	]}`)

	g, err := geojsonio.Decode(data, f)
	require.NoError(t, err)
	gc, ok := g.(*geom.GeometryCollection)
	require.True(t, ok, "expected a GeometryCollection, got %T", g)
	assert.Equal(t, 2, gc.NumGeometries())
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	_, err := geojsonio.Decode([]byte(`{"type":"Blob","coordinates":[0,0]}`), geom.DefaultFactory)
	assert.Error(t, err)
}
