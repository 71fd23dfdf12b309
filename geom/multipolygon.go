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

// MultiPolygon is a collection of Polygons whose interiors must not
// overlap in a valid instance (not enforced by the constructor).
type MultiPolygon struct {
	base
	polys []*Polygon
}

func newMultiPolygon(f *GeometryFactory, polys []*Polygon) *MultiPolygon {
	return &MultiPolygon{base: base{factory: f}, polys: polys}
}

func (m *MultiPolygon) GeomType() GeomType   { return TypeMultiPolygon }
func (m *MultiPolygon) Dimension() Dimension { return DimensionSurface }
func (m *MultiPolygon) IsEmpty() bool        { return len(m.polys) == 0 }
func (m *MultiPolygon) NumGeometries() int   { return len(m.polys) }
func (m *MultiPolygon) GeometryN(i int) *Polygon { return m.polys[i] }

func (m *MultiPolygon) NumPoints() int {
	n := 0
	for _, p := range m.polys {
		n += p.NumPoints()
	}
	return n
}

func (m *MultiPolygon) Coordinates() []Coordinate {
	var out []Coordinate
	for _, p := range m.polys {
		out = append(out, p.Coordinates()...)
	}
	return out
}

func (m *MultiPolygon) Envelope() Envelope {
	return m.cachedEnvelope(func() Envelope {
		env := NewEmptyEnvelope()
		for _, p := range m.polys {
			env.ExpandToIncludeEnvelope(p.Envelope())
		}
		return env
	})
}

// GetBoundary is the union of each polygon's boundary rings.
func (m *MultiPolygon) GetBoundary() Geometry {
	var lines []*LineString
	for _, p := range m.polys {
		b := p.GetBoundary()
		switch bb := b.(type) {
		case *LineString:
			lines = append(lines, bb)
		case *MultiLineString:
			for i := 0; i < bb.NumGeometries(); i++ {
				lines = append(lines, bb.GeometryN(i))
			}
		}
	}
	return m.factory.createMultiLineStringFromLines(lines)
}

func (m *MultiPolygon) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*MultiPolygon)
	if !ok || len(m.polys) != len(o.polys) {
		return false
	}
	for i := range m.polys {
		if !m.polys[i].EqualsExact(o.polys[i], tolerance) {
			return false
		}
	}
	return true
}

func (m *MultiPolygon) Normalize() Geometry {
	polys := make([]*Polygon, len(m.polys))
	for i, p := range m.polys {
		polys[i] = p.Normalize().(*Polygon)
	}
	for i := 1; i < len(polys); i++ {
		j := i
		for j > 0 && ringMin(polys[j-1].shell).CompareTo(ringMin(polys[j].shell)) > 0 {
			polys[j-1], polys[j] = polys[j], polys[j-1]
			j--
		}
	}
	return newMultiPolygon(m.factory, polys)
}
