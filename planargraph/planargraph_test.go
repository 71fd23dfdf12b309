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

package planargraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoplanar/engine/algorithm"
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/pm"
	"github.com/geoplanar/engine/planargraph"
)

func newIntersector() *algorithm.LineIntersector {
	return algorithm.NewLineIntersector(pm.NewFloating())
}

func square(t *testing.T, f *geom.GeometryFactory, x0, y0, x1, y1 float64) *geom.Polygon {
	t.Helper()
	ring, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewCoordinate(x0, y0),
		geom.NewCoordinate(x1, y0),
		geom.NewCoordinate(x1, y1),
		geom.NewCoordinate(x0, y1),
		geom.NewCoordinate(x0, y0),
	})
	require.NoError(t, err)
	p, err := f.CreatePolygon(ring, nil)
	require.NoError(t, err)
	return p
}

func TestGeometryGraphLineStringBoundary(t *testing.T) {
	f := geom.DefaultFactory
	ls, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(1, 0),
		geom.NewCoordinate(2, 0),
	})
	require.NoError(t, err)

	gg := planargraph.NewGeometryGraph(0, ls, newIntersector())
	start := gg.NodeMap().Find(geom.NewCoordinate(0, 0))
	end := gg.NodeMap().Find(geom.NewCoordinate(2, 0))
	mid := gg.NodeMap().Find(geom.NewCoordinate(1, 0))

	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, planargraph.Boundary, start.Label.Get(0).On())
	assert.Equal(t, planargraph.Boundary, end.Label.Get(0).On())
	if mid != nil {
		assert.Equal(t, planargraph.Interior, mid.Label.Get(0).On())
	}
}

func TestGeometryGraphClosedLineStringHasNoBoundary(t *testing.T) {
	f := geom.DefaultFactory
	ls, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(1, 0),
		geom.NewCoordinate(1, 1),
		geom.NewCoordinate(0, 0),
	})
	require.NoError(t, err)

	gg := planargraph.NewGeometryGraph(0, ls, newIntersector())
	start := gg.NodeMap().Find(geom.NewCoordinate(0, 0))
	require.NotNil(t, start)
	assert.Equal(t, planargraph.Interior, start.Label.Get(0).On())
}

func TestGeometryGraphPolygonShellLabel(t *testing.T) {
	f := geom.DefaultFactory
	p := square(t, f, 0, 0, 10, 10)

	gg := planargraph.NewGeometryGraph(0, p, newIntersector())
	require.Len(t, gg.Edges(), 1)
	e := gg.Edges()[0]
	assert.Equal(t, planargraph.Boundary, e.Label.Get(0).On())
	// The ring as constructed winds CCW (standard shoelace-positive square),
	// so the labelling rule flips LEFT/RIGHT from the CW default.
	assert.Equal(t, planargraph.Interior, e.Label.Get(0).Left())
	assert.Equal(t, planargraph.Exterior, e.Label.Get(0).Right())
}

func TestGeometryGraphSelfIntersectingLineIsNotSimple(t *testing.T) {
	f := geom.DefaultFactory
	ls, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(10, 10),
		geom.NewCoordinate(10, 0),
		geom.NewCoordinate(0, 10),
	})
	require.NoError(t, err)

	assert.False(t, planargraph.IsSimple(ls, newIntersector()))
}

func TestGeometryGraphSimpleLineIsSimple(t *testing.T) {
	f := geom.DefaultFactory
	ls, err := f.CreateLineString([]geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(10, 0),
		geom.NewCoordinate(10, 10),
	})
	require.NoError(t, err)

	assert.True(t, planargraph.IsSimple(ls, newIntersector()))
}

func TestBuildFromGraphsCrossNodesOverlappingSquares(t *testing.T) {
	f := geom.DefaultFactory
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 5, 5, 15, 15)

	li := newIntersector()
	ga := planargraph.NewGeometryGraph(0, a, li)
	gb := planargraph.NewGeometryGraph(1, b, li)

	pg := planargraph.BuildFromGraphs(li, ga, gb)

	// The overlapping squares' shells must cross at (10,5) and (5,10),
	// each producing a node in the merged graph.
	n1 := pg.Nodes().Find(geom.NewCoordinate(10, 5))
	n2 := pg.Nodes().Find(geom.NewCoordinate(5, 10))
	assert.NotNil(t, n1)
	assert.NotNil(t, n2)
	assert.Greater(t, len(pg.Edges()), 2)
}

func TestEdgeIntersectionListSplitProducesNoInteriorVertices(t *testing.T) {
	coords := []geom.Coordinate{
		geom.NewCoordinate(0, 0),
		geom.NewCoordinate(5, 0),
		geom.NewCoordinate(10, 0),
	}
	e := planargraph.NewEdge(coords, planargraph.NewLabel(0, planargraph.NewPointLocation(planargraph.Interior)))
	e.Intersections().Add(geom.NewCoordinate(5, 0), 0, 1)

	split := e.Intersections().Split()
	require.Len(t, split, 2)
	assert.True(t, split[0].Coordinate(split[0].NumPoints()-1).Equals2D(geom.NewCoordinate(5, 0)))
	assert.True(t, split[1].Coordinate(0).Equals2D(geom.NewCoordinate(5, 0)))
}

func TestEdgeEndStarOrdersCCWByQuadrant(t *testing.T) {
	e := planargraph.NewEdge([]geom.Coordinate{geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0)},
		planargraph.NewLabel(0, planargraph.NewPointLocation(planargraph.Interior)))
	n := planargraph.NewNode(geom.NewCoordinate(0, 0), false)

	origin := geom.NewCoordinate(0, 0)
	east := planargraph.NewEdgeEnd(e, origin, geom.NewCoordinate(1, 0), planargraph.Label{})
	north := planargraph.NewEdgeEnd(e, origin, geom.NewCoordinate(0, 1), planargraph.Label{})
	west := planargraph.NewEdgeEnd(e, origin, geom.NewCoordinate(-1, 0), planargraph.Label{})
	south := planargraph.NewEdgeEnd(e, origin, geom.NewCoordinate(0, -1), planargraph.Label{})

	n.Add(south)
	n.Add(west)
	n.Add(east)
	n.Add(north)

	ends := n.Star().Edges()
	require.Len(t, ends, 4)
	assert.Equal(t, east, ends[0])
	assert.Equal(t, north, ends[1])
	assert.Equal(t, west, ends[2])
	assert.Equal(t, south, ends[3])
}

func TestDirectedEdgeBackReferenceWithoutGlobalState(t *testing.T) {
	e := planargraph.NewEdge([]geom.Coordinate{geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 1)},
		planargraph.NewLabel(0, planargraph.NewPointLocation(planargraph.Interior)))
	de := planargraph.NewDirectedEdge(e, true)
	n := planargraph.NewNode(geom.NewCoordinate(0, 0), false)
	n.Add(de.EdgeEnd)

	got := n.Star().DirectedEdges()
	require.Len(t, got, 1)
	assert.Same(t, de, got[0])
}
