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

package relate

import (
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/locate"
	"github.com/geoplanar/engine/perr"
	"github.com/geoplanar/engine/planargraph"
)

// dimensionOf returns a geometry's topological dimension (0 point, 1
// line, 2 area), or -1 for an empty geometry. Collections report the
// maximum dimension of their non-empty children.
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

// locatorFunc answers, for one fixed geometry, the location of any query
// coordinate with respect to it.
type locatorFunc func(geom.Coordinate) planargraph.Location

// buildLocator returns a locatorFunc for g, rejecting GeometryCollection
// operands outright (relate does not support them) and otherwise
// delegating to locate.Classify, which both relate and overlay share.
func buildLocator(g geom.Geometry) (locatorFunc, error) {
	if hasCollection(g) {
		return nil, perr.UnsupportedOperation("relate does not support GeometryCollection operands")
	}
	fn, err := locate.Classify(g)
	if err != nil {
		return nil, err
	}
	return locatorFunc(fn), nil
}

func posOf(loc planargraph.Location) Pos {
	switch loc {
	case planargraph.Interior:
		return PInterior
	case planargraph.Boundary:
		return PBoundary
	default:
		return PExterior
	}
}
