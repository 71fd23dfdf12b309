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

// Point is a single Coordinate. An empty Point carries no coordinate.
type Point struct {
	base
	coord Coordinate
	empty bool
}

func newPoint(f *GeometryFactory, c Coordinate, empty bool) *Point {
	return &Point{base: base{factory: f}, coord: c, empty: empty}
}

func (p *Point) GeomType() GeomType { return TypePoint }
func (p *Point) Dimension() Dimension { return DimensionPoint }
func (p *Point) IsEmpty() bool { return p.empty }
func (p *Point) NumPoints() int {
	if p.empty {
		return 0
	}
	return 1
}

// Coordinate returns the point's single coordinate; callers should check
// IsEmpty first.
func (p *Point) Coordinate() Coordinate { return p.coord }

func (p *Point) Coordinates() []Coordinate {
	if p.empty {
		return nil
	}
	return []Coordinate{p.coord}
}

func (p *Point) Envelope() Envelope {
	return p.cachedEnvelope(func() Envelope {
		if p.empty {
			return NewEmptyEnvelope()
		}
		env := NewEmptyEnvelope()
		env.ExpandToInclude(p.coord)
		return env
	})
}

func (p *Point) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*Point)
	if !ok {
		return false
	}
	if p.empty != o.empty {
		return false
	}
	if p.empty {
		return true
	}
	if tolerance == 0 {
		return p.coord.Equals2D(o.coord)
	}
	return p.coord.Distance(o.coord) <= tolerance
}

func (p *Point) Normalize() Geometry { return p }
