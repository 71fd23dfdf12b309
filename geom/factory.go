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

package geom

import (
	"math"

	"github.com/geoplanar/engine/perr"
	"github.com/geoplanar/engine/pm"
)

// GeometryFactory is the source of a geometry's precision model and SRID.
// It is immutable after construction and safe to share read-only across
// goroutines (§5); every Geometry value is created through one.
type GeometryFactory struct {
	model pm.Model
	srid  int
}

// NewGeometryFactory builds a factory with the given precision model and
// SRID. SRID is opaque and never interpreted by the core (§6).
func NewGeometryFactory(model pm.Model, srid int) *GeometryFactory {
	return &GeometryFactory{model: model, srid: srid}
}

// DefaultFactory is a shared FLOATING, SRID-0 factory, handed out by
// reference rather than recreated, replacing the source's process-wide
// internal singleton per §9's "explicit context" design note.
var DefaultFactory = NewGeometryFactory(pm.NewFloating(), 0)

// PrecisionModel returns the factory's coordinate quantization policy.
func (f *GeometryFactory) PrecisionModel() pm.Model { return f.model }

// SRID returns the factory's spatial reference id.
func (f *GeometryFactory) SRID() int { return f.srid }

// makePrecise rounds a coordinate through the factory's precision model.
func (f *GeometryFactory) makePrecise(c Coordinate) Coordinate {
	x, y := f.model.MakePreciseXY(c.X, c.Y)
	return Coordinate{X: x, Y: y, Z: c.Z}
}

func (f *GeometryFactory) validateCoordinate(c Coordinate) error {
	if math.IsNaN(c.X) || math.IsNaN(c.Y) {
		return perr.InvalidArgument("coordinate has NaN x or y")
	}
	return nil
}

func (f *GeometryFactory) makePreciseSeq(in []Coordinate) (*CoordinateSequence, error) {
	out := make([]Coordinate, len(in))
	for i, c := range in {
		if err := f.validateCoordinate(c); err != nil {
			return nil, err
		}
		out[i] = f.makePrecise(c)
	}
	return NewCoordinateSequence(out), nil
}

// CreatePoint builds a Point from a coordinate.
func (f *GeometryFactory) CreatePoint(c Coordinate) (*Point, error) {
	if err := f.validateCoordinate(c); err != nil {
		return nil, err
	}
	return newPoint(f, f.makePrecise(c), false), nil
}

// CreateEmptyPoint builds the empty Point.
func (f *GeometryFactory) CreateEmptyPoint() *Point {
	return newPoint(f, Coordinate{}, true)
}

// CreateLineString builds a LineString from coordinates (0 or >=2 points).
func (f *GeometryFactory) CreateLineString(coords []Coordinate) (*LineString, error) {
	seq, err := f.makePreciseSeq(coords)
	if err != nil {
		return nil, err
	}
	return newLineString(f, seq)
}

// CreateLinearRing builds a LinearRing (0 or >=4 points, closed).
func (f *GeometryFactory) CreateLinearRing(coords []Coordinate) (*LinearRing, error) {
	seq, err := f.makePreciseSeq(coords)
	if err != nil {
		return nil, err
	}
	return newLinearRing(f, seq)
}

// CreatePolygon builds a Polygon from a shell and holes.
func (f *GeometryFactory) CreatePolygon(shell *LinearRing, holes []*LinearRing) (*Polygon, error) {
	return newPolygon(f, shell, holes)
}

// CreateEmptyPolygon builds a Polygon with an empty shell and no holes.
func (f *GeometryFactory) CreateEmptyPolygon() *Polygon {
	shell, _ := f.CreateLinearRing(nil)
	p, _ := newPolygon(f, shell, nil)
	return p
}

// CreateMultiPoint builds a MultiPoint directly from coordinates.
func (f *GeometryFactory) CreateMultiPoint(coords []Coordinate) *MultiPoint {
	pts := make([]*Point, len(coords))
	for i, c := range coords {
		p, err := f.CreatePoint(c)
		if err != nil {
			p = f.CreateEmptyPoint()
		}
		pts[i] = p
	}
	return newMultiPoint(f, pts)
}

// CreateMultiPointFromPoints builds a MultiPoint from existing Points.
func (f *GeometryFactory) CreateMultiPointFromPoints(pts []*Point) *MultiPoint {
	cp := make([]*Point, len(pts))
	copy(cp, pts)
	return newMultiPoint(f, cp)
}

// CreateMultiLineString builds a MultiLineString from coordinate rings.
func (f *GeometryFactory) CreateMultiLineString(lines [][]Coordinate) (*MultiLineString, error) {
	ls := make([]*LineString, len(lines))
	for i, coords := range lines {
		l, err := f.CreateLineString(coords)
		if err != nil {
			return nil, err
		}
		ls[i] = l
	}
	return newMultiLineString(f, ls), nil
}

func (f *GeometryFactory) createMultiLineStringFromLines(lines []*LineString) *MultiLineString {
	return newMultiLineString(f, lines)
}

// CreateMultiPolygon builds a MultiPolygon from Polygons.
func (f *GeometryFactory) CreateMultiPolygon(polys []*Polygon) *MultiPolygon {
	cp := make([]*Polygon, len(polys))
	copy(cp, polys)
	return newMultiPolygon(f, cp)
}

// CreateGeometryCollection builds a GeometryCollection; a nil element is
// rejected per §4.12 (InvalidArgument).
func (f *GeometryFactory) CreateGeometryCollection(children []Geometry) (*GeometryCollection, error) {
	return newGeometryCollection(f, children)
}

func errNilElement(i int) error {
	return perr.InvalidArgument("collection element %d is nil", i)
}
