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

// MultiLineString is a collection of LineStrings. Its boundary follows the
// Mod-2 rule: a coordinate is on the boundary iff it is an endpoint of an
// odd number of component (non-closed) line strings.
type MultiLineString struct {
	base
	lines []*LineString
}

func newMultiLineString(f *GeometryFactory, lines []*LineString) *MultiLineString {
	return &MultiLineString{base: base{factory: f}, lines: lines}
}

func (m *MultiLineString) GeomType() GeomType    { return TypeMultiLineString }
func (m *MultiLineString) Dimension() Dimension  { return DimensionCurve }
func (m *MultiLineString) IsEmpty() bool         { return len(m.lines) == 0 }
func (m *MultiLineString) NumGeometries() int    { return len(m.lines) }
func (m *MultiLineString) GeometryN(i int) *LineString { return m.lines[i] }

func (m *MultiLineString) NumPoints() int {
	n := 0
	for _, l := range m.lines {
		n += l.NumPoints()
	}
	return n
}

func (m *MultiLineString) Coordinates() []Coordinate {
	var out []Coordinate
	for _, l := range m.lines {
		out = append(out, l.Coordinates()...)
	}
	return out
}

func (m *MultiLineString) Envelope() Envelope {
	return m.cachedEnvelope(func() Envelope {
		env := NewEmptyEnvelope()
		for _, l := range m.lines {
			env.ExpandToIncludeEnvelope(l.Envelope())
		}
		return env
	})
}

// GetBoundary applies the Mod-2 rule across all component line strings.
func (m *MultiLineString) GetBoundary() Geometry {
	// Coordinate's Z is NaN when absent, and NaN never equals itself, so
	// Coordinate cannot be used directly as a map key here; key on the
	// (x, y) pair instead.
	type key struct{ x, y float64 }
	counts := map[key]int{}
	order := make([]Coordinate, 0)
	for _, l := range m.lines {
		if l.IsEmpty() || l.IsClosed() {
			continue
		}
		for _, c := range []Coordinate{l.StartPoint(), l.EndPoint()} {
			k := key{c.X, c.Y}
			if _, ok := counts[k]; !ok {
				order = append(order, c)
			}
			counts[k]++
		}
	}
	var boundary []Coordinate
	for _, c := range order {
		if counts[key{c.X, c.Y}]%2 == 1 {
			boundary = append(boundary, c)
		}
	}
	return m.factory.CreateMultiPoint(boundary)
}

func (m *MultiLineString) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*MultiLineString)
	if !ok || len(m.lines) != len(o.lines) {
		return false
	}
	for i := range m.lines {
		if !m.lines[i].EqualsExact(o.lines[i], tolerance) {
			return false
		}
	}
	return true
}

func (m *MultiLineString) Normalize() Geometry {
	lines := make([]*LineString, len(m.lines))
	for i, l := range m.lines {
		lines[i] = l.Normalize().(*LineString)
	}
	for i := 1; i < len(lines); i++ {
		j := i
		for j > 0 && lineLess(lines[j], lines[j-1]) {
			lines[j-1], lines[j] = lines[j], lines[j-1]
			j--
		}
	}
	return newMultiLineString(m.factory, lines)
}

func lineLess(a, b *LineString) bool {
	an, bn := a.NumPoints(), b.NumPoints()
	for i := 0; i < an && i < bn; i++ {
		c := a.seq.Get(i).CompareTo(b.seq.Get(i))
		if c != 0 {
			return c < 0
		}
	}
	return an < bn
}
