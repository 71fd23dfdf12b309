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

// GeometryCollection is a heterogeneous collection of Geometries. It owns
// its children.
type GeometryCollection struct {
	base
	children []Geometry
}

func newGeometryCollection(f *GeometryFactory, children []Geometry) (*GeometryCollection, error) {
	for i, c := range children {
		if c == nil {
			return nil, errNilElement(i)
		}
	}
	return &GeometryCollection{base: base{factory: f}, children: children}, nil
}

func (g *GeometryCollection) GeomType() GeomType { return TypeGeometryCollection }

func (g *GeometryCollection) Dimension() Dimension {
	if len(g.children) == 0 {
		return DimensionPoint
	}
	d := g.children[0].Dimension()
	for _, c := range g.children[1:] {
		if c.Dimension() != d {
			return DimensionMixed
		}
	}
	return d
}

func (g *GeometryCollection) IsEmpty() bool {
	for _, c := range g.children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *GeometryCollection) NumGeometries() int   { return len(g.children) }
func (g *GeometryCollection) GeometryN(i int) Geometry { return g.children[i] }

func (g *GeometryCollection) NumPoints() int {
	n := 0
	for _, c := range g.children {
		n += c.NumPoints()
	}
	return n
}

func (g *GeometryCollection) Coordinates() []Coordinate {
	var out []Coordinate
	for _, c := range g.children {
		out = append(out, c.Coordinates()...)
	}
	return out
}

func (g *GeometryCollection) Envelope() Envelope {
	return g.cachedEnvelope(func() Envelope {
		env := NewEmptyEnvelope()
		for _, c := range g.children {
			env.ExpandToIncludeEnvelope(c.Envelope())
		}
		return env
	})
}

func (g *GeometryCollection) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*GeometryCollection)
	if !ok || len(g.children) != len(o.children) {
		return false
	}
	for i := range g.children {
		if g.children[i].GeomType() != o.children[i].GeomType() {
			return false
		}
		if !g.children[i].EqualsExact(o.children[i], tolerance) {
			return false
		}
	}
	return true
}

func (g *GeometryCollection) Normalize() Geometry {
	children := make([]Geometry, len(g.children))
	for i, c := range g.children {
		children[i] = c.Normalize()
	}
	for i := 1; i < len(children); i++ {
		j := i
		for j > 0 && geometryLess(children[j], children[j-1]) {
			children[j-1], children[j] = children[j], children[j-1]
			j--
		}
	}
	gc, _ := newGeometryCollection(g.factory, children)
	return gc
}

func geometryLess(a, b Geometry) bool {
	if a.GeomType() != b.GeomType() {
		return a.GeomType() < b.GeomType()
	}
	ac, bc := a.Coordinates(), b.Coordinates()
	for i := 0; i < len(ac) && i < len(bc); i++ {
		c := ac[i].CompareTo(bc[i])
		if c != 0 {
			return c < 0
		}
	}
	return len(ac) < len(bc)
}
