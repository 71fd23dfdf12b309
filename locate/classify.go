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
	"github.com/geoplanar/engine/perr"
	"github.com/geoplanar/engine/planargraph"
)

// classifyTolerance is the distance under which a query coordinate is
// treated as coinciding with a point input or lying exactly on a line's
// segment or endpoint, matching Locate's own boundaryTolerance.
const classifyTolerance = 1e-9

// Classify returns a function answering the location of any query
// coordinate with respect to g, dispatching per geometry type: exact
// membership for points, on-segment/Mod-2-boundary tests for lines, and
// Locate (§4.9) for polygonal geometry. relate and overlay both build one
// of these per input whenever they need a uniform point-location
// predicate against an arbitrary geometry.
func Classify(g geom.Geometry) (func(geom.Coordinate) planargraph.Location, error) {
	switch v := g.(type) {
	case *geom.Point:
		pt := v.Coordinate()
		return func(c geom.Coordinate) planargraph.Location {
			if c.Distance(pt) <= classifyTolerance {
				return planargraph.Interior
			}
			return planargraph.Exterior
		}, nil
	case *geom.MultiPoint:
		pts := make([]geom.Coordinate, 0, v.NumGeometries())
		for i := 0; i < v.NumGeometries(); i++ {
			if !v.GeometryN(i).IsEmpty() {
				pts = append(pts, v.GeometryN(i).Coordinate())
			}
		}
		return func(c geom.Coordinate) planargraph.Location {
			for _, p := range pts {
				if c.Distance(p) <= classifyTolerance {
					return planargraph.Interior
				}
			}
			return planargraph.Exterior
		}, nil
	case *geom.LineString:
		return classifyLines([]*geom.LineString{v}), nil
	case *geom.MultiLineString:
		lines := make([]*geom.LineString, v.NumGeometries())
		for i := range lines {
			lines[i] = v.GeometryN(i)
		}
		return classifyLines(lines), nil
	case *geom.Polygon, *geom.MultiPolygon:
		return func(c geom.Coordinate) planargraph.Location {
			return Locate(c, g)
		}, nil
	case *geom.GeometryCollection:
		return nil, perr.UnsupportedOperation("Classify does not support GeometryCollection operands")
	default:
		return nil, perr.UnsupportedOperation("Classify does not support geometry type %T", g)
	}
}

func classifyLines(lines []*geom.LineString) func(geom.Coordinate) planargraph.Location {
	boundary := map[[2]float64]int{}
	for _, l := range lines {
		if l.IsEmpty() || l.IsClosed() {
			continue
		}
		for _, c := range []geom.Coordinate{l.StartPoint(), l.EndPoint()} {
			boundary[[2]float64{c.X, c.Y}]++
		}
	}
	return func(c geom.Coordinate) planargraph.Location {
		k := [2]float64{c.X, c.Y}
		if boundary[k]%2 == 1 {
			return planargraph.Boundary
		}
		for _, l := range lines {
			coords := l.Coordinates()
			for i := 0; i+1 < len(coords); i++ {
				if distanceToSegment(c, coords[i], coords[i+1]) <= classifyTolerance {
					return planargraph.Interior
				}
			}
		}
		return planargraph.Exterior
	}
}
