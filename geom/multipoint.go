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

// MultiPoint is a collection of Points.
type MultiPoint struct {
	base
	points []*Point
}

func newMultiPoint(f *GeometryFactory, points []*Point) *MultiPoint {
	return &MultiPoint{base: base{factory: f}, points: points}
}

func (m *MultiPoint) GeomType() GeomType   { return TypeMultiPoint }
func (m *MultiPoint) Dimension() Dimension { return DimensionPoint }
func (m *MultiPoint) IsEmpty() bool        { return len(m.points) == 0 }
func (m *MultiPoint) NumGeometries() int   { return len(m.points) }
func (m *MultiPoint) GeometryN(i int) *Point { return m.points[i] }

func (m *MultiPoint) NumPoints() int {
	n := 0
	for _, p := range m.points {
		n += p.NumPoints()
	}
	return n
}

func (m *MultiPoint) Coordinates() []Coordinate {
	var out []Coordinate
	for _, p := range m.points {
		out = append(out, p.Coordinates()...)
	}
	return out
}

func (m *MultiPoint) Envelope() Envelope {
	return m.cachedEnvelope(func() Envelope {
		env := NewEmptyEnvelope()
		for _, p := range m.points {
			env.ExpandToIncludeEnvelope(p.Envelope())
		}
		return env
	})
}

// GetBoundary is always empty for a MultiPoint per OGC SFS.
func (m *MultiPoint) GetBoundary() Geometry {
	return m.factory.CreateMultiPoint(nil)
}

func (m *MultiPoint) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*MultiPoint)
	if !ok || len(m.points) != len(o.points) {
		return false
	}
	for i := range m.points {
		if !m.points[i].EqualsExact(o.points[i], tolerance) {
			return false
		}
	}
	return true
}

func (m *MultiPoint) Normalize() Geometry {
	pts := make([]*Point, len(m.points))
	copy(pts, m.points)
	for i := 1; i < len(pts); i++ {
		j := i
		for j > 0 && pointLess(pts[j], pts[j-1]) {
			pts[j-1], pts[j] = pts[j], pts[j-1]
			j--
		}
	}
	return newMultiPoint(m.factory, pts)
}

func pointLess(a, b *Point) bool {
	if a.empty != b.empty {
		return b.empty
	}
	return a.coord.CompareTo(b.coord) < 0
}
