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

// LinearRing is a closed LineString with either 0 or at least 4 points, per
// §3. The constructor enforces closure and the point-count rule; it does
// not verify simplicity (self-intersection is a topological question,
// answered by planargraph.IsSimple).
type LinearRing struct {
	base
	seq *CoordinateSequence
}

func newLinearRing(f *GeometryFactory, seq *CoordinateSequence) (*LinearRing, error) {
	n := seq.Size()
	if n != 0 && n < 4 {
		return nil, perr.InvalidArgument("LinearRing must have 0 or >=4 points, got %d", n)
	}
	if n != 0 && !seq.IsClosed() {
		return nil, perr.InvalidArgument("LinearRing must be closed: first and last coordinates differ")
	}
	return &LinearRing{base: base{factory: f}, seq: seq}, nil
}

func (r *LinearRing) GeomType() GeomType   { return TypeLinearRing }
func (r *LinearRing) Dimension() Dimension { return DimensionCurve }
func (r *LinearRing) IsEmpty() bool        { return r.seq.IsEmpty() }
func (r *LinearRing) NumPoints() int       { return r.seq.Size() }

func (r *LinearRing) CoordinateSequence() *CoordinateSequence { return r.seq }
func (r *LinearRing) Coordinates() []Coordinate               { return r.seq.ToSlice() }

func (r *LinearRing) Envelope() Envelope {
	return r.cachedEnvelope(r.seq.Envelope)
}

func (r *LinearRing) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*LinearRing)
	if !ok {
		return false
	}
	return r.seq.EqualsExact(o.seq, tolerance)
}

// IsCCW reports whether the ring winds counter-clockwise, using the sign
// of the whole ring's shoelace signed area (computed here rather than via
// algorithm.OrientationIndex to avoid an import of algorithm from geom,
// keeping geom topology-free per §3).
func (r *LinearRing) IsCCW() bool {
	return signedArea(r.seq) > 0
}

func signedArea(seq *CoordinateSequence) float64 {
	n := seq.Size()
	if n < 4 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		a, b := seq.Get(i), seq.Get(i+1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func (r *LinearRing) Normalize() Geometry {
	seq := normalizeRingSequence(r.seq)
	ring, _ := newLinearRing(r.factory, seq)
	return ring
}

// normalizeRingSequence rotates a closed ring to start at its
// lexicographically smallest coordinate and fixes its winding to CW,
// matching JTS's LinearRing.normalize() convention (shells are
// conventionally stored CW for a canonical form) so that EqualsExact after
// Normalize is order- and direction-independent.
func normalizeRingSequence(seq *CoordinateSequence) *CoordinateSequence {
	n := seq.Size()
	if n == 0 {
		return seq
	}
	// Drop the duplicated closing point while finding the minimal start,
	// then re-close.
	open := seq.ToSlice()[:n-1]
	minIdx := 0
	for i := 1; i < len(open); i++ {
		if open[i].CompareTo(open[minIdx]) < 0 {
			minIdx = i
		}
	}
	rotated := make([]Coordinate, 0, n)
	for i := 0; i < len(open); i++ {
		rotated = append(rotated, open[(minIdx+i)%len(open)])
	}
	rotated = append(rotated, rotated[0])
	rotSeq := NewCoordinateSequence(rotated)
	if signedArea(rotSeq) > 0 {
		// The ring is closed on its minimal point, so reversing it keeps
		// that point at both the front and the end.
		rotSeq = rotSeq.Reversed()
	}
	return rotSeq
}
