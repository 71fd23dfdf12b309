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

import "github.com/geoplanar/engine/perr"

// Polygon has one shell LinearRing and zero or more hole LinearRings. Holes
// must lie inside the shell in a valid polygon, but the constructor does
// not enforce this (§3): that is a validity question for a separate
// checker, not a construction invariant.
type Polygon struct {
	base
	shell *LinearRing
	holes []*LinearRing
}

func newPolygon(f *GeometryFactory, shell *LinearRing, holes []*LinearRing) (*Polygon, error) {
	if shell == nil {
		return nil, perr.InvalidArgument("Polygon shell must not be nil")
	}
	if shell.IsEmpty() && len(holes) > 0 {
		return nil, perr.InvalidArgument("Polygon shell is empty but holes present")
	}
	for i, h := range holes {
		if h == nil {
			return nil, perr.InvalidArgument("Polygon hole %d is nil", i)
		}
	}
	return &Polygon{base: base{factory: f}, shell: shell, holes: holes}, nil
}

func (p *Polygon) GeomType() GeomType   { return TypePolygon }
func (p *Polygon) Dimension() Dimension { return DimensionSurface }
func (p *Polygon) IsEmpty() bool        { return p.shell.IsEmpty() }

func (p *Polygon) NumPoints() int {
	n := p.shell.NumPoints()
	for _, h := range p.holes {
		n += h.NumPoints()
	}
	return n
}

// ExteriorRing returns the shell.
func (p *Polygon) ExteriorRing() *LinearRing { return p.shell }

// NumInteriorRings returns the hole count.
func (p *Polygon) NumInteriorRings() int { return len(p.holes) }

// InteriorRingN returns hole i.
func (p *Polygon) InteriorRingN(i int) *LinearRing { return p.holes[i] }

// InteriorRings returns all holes.
func (p *Polygon) InteriorRings() []*LinearRing { return p.holes }

func (p *Polygon) Coordinates() []Coordinate {
	out := p.shell.Coordinates()
	for _, h := range p.holes {
		out = append(out, h.Coordinates()...)
	}
	return out
}

func (p *Polygon) Envelope() Envelope {
	return p.cachedEnvelope(func() Envelope { return p.shell.Envelope() })
}

// GetBoundary returns the polygon's boundary: a single ring if there are no
// holes, else a MultiLineString of shell + holes.
func (p *Polygon) GetBoundary() Geometry {
	if p.IsEmpty() {
		return p.factory.createMultiLineStringFromLines(nil)
	}
	if len(p.holes) == 0 {
		ls, _ := newLineString(p.factory, p.shell.seq.Clone())
		return ls
	}
	rings := make([]*LinearRing, 0, 1+len(p.holes))
	rings = append(rings, p.shell)
	rings = append(rings, p.holes...)
	lines := make([]*LineString, len(rings))
	for i, r := range rings {
		ls, _ := newLineString(p.factory, r.seq.Clone())
		lines[i] = ls
	}
	return p.factory.createMultiLineStringFromLines(lines)
}

func (p *Polygon) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*Polygon)
	if !ok {
		return false
	}
	if !p.shell.EqualsExact(o.shell, tolerance) {
		return false
	}
	if len(p.holes) != len(o.holes) {
		return false
	}
	for i := range p.holes {
		if !p.holes[i].EqualsExact(o.holes[i], tolerance) {
			return false
		}
	}
	return true
}

func (p *Polygon) Normalize() Geometry {
	shell := normalizeRingSequence(p.shell.seq)
	if signedArea(shell) > 0 {
		shell = shell.Reversed()
	}
	newShell, _ := newLinearRing(p.factory, shell)

	newHoles := make([]*LinearRing, len(p.holes))
	for i, h := range p.holes {
		hseq := normalizeRingSequence(h.seq)
		if signedArea(hseq) < 0 {
			hseq = hseq.Reversed()
		}
		nh, _ := newLinearRing(p.factory, hseq)
		newHoles[i] = nh
	}
	sortRingsByMinCoordinate(newHoles)
	poly, _ := newPolygon(p.factory, newShell, newHoles)
	return poly
}

func sortRingsByMinCoordinate(rings []*LinearRing) {
	for i := 1; i < len(rings); i++ {
		j := i
		for j > 0 && ringMin(rings[j-1]).CompareTo(ringMin(rings[j])) > 0 {
			rings[j-1], rings[j] = rings[j], rings[j-1]
			j--
		}
	}
}

func ringMin(r *LinearRing) Coordinate {
	cs := r.Coordinates()
	if len(cs) == 0 {
		return Coordinate{}
	}
	m := cs[0]
	for _, c := range cs[1:] {
		if c.CompareTo(m) < 0 {
			m = c
		}
	}
	return m
}
