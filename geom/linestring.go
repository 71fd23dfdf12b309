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

// LineString is an ordered sequence of two or more points (or zero, for the
// empty line string).
type LineString struct {
	base
	seq *CoordinateSequence
}

func newLineString(f *GeometryFactory, seq *CoordinateSequence) (*LineString, error) {
	if seq.Size() == 1 {
		return nil, perr.InvalidArgument("LineString must have 0 or >=2 points, got 1")
	}
	return &LineString{base: base{factory: f}, seq: seq}, nil
}

func (l *LineString) GeomType() GeomType  { return TypeLineString }
func (l *LineString) Dimension() Dimension { return DimensionCurve }
func (l *LineString) IsEmpty() bool       { return l.seq.IsEmpty() }
func (l *LineString) NumPoints() int      { return l.seq.Size() }

// CoordinateSequence returns the underlying sequence.
func (l *LineString) CoordinateSequence() *CoordinateSequence { return l.seq }

func (l *LineString) Coordinates() []Coordinate { return l.seq.ToSlice() }

func (l *LineString) Envelope() Envelope {
	return l.cachedEnvelope(l.seq.Envelope)
}

// IsClosed reports whether the first and last coordinates coincide (2-D).
func (l *LineString) IsClosed() bool { return l.seq.IsClosed() }

// IsRing reports whether the line string is closed and has at least 4
// points, the same point-count rule LinearRing's constructor applies.
func (l *LineString) IsRing() bool { return l.IsClosed() && l.NumPoints() >= 4 }

// StartPoint returns the first coordinate; panics on an empty line string.
func (l *LineString) StartPoint() Coordinate { return l.seq.Get(0) }

// EndPoint returns the last coordinate; panics on an empty line string.
func (l *LineString) EndPoint() Coordinate { return l.seq.Get(l.seq.Size() - 1) }

// GetBoundary returns the boundary of a single LineString per OGC SFS: the
// empty set if closed, else its two endpoints as a MultiPoint.
func (l *LineString) GetBoundary() Geometry {
	if l.IsEmpty() || l.IsClosed() {
		return l.factory.CreateMultiPoint(nil)
	}
	return l.factory.CreateMultiPoint([]Coordinate{l.StartPoint(), l.EndPoint()})
}

func (l *LineString) EqualsExact(other Geometry, tolerance float64) bool {
	o, ok := other.(*LineString)
	if !ok {
		return false
	}
	return l.seq.EqualsExact(o.seq, tolerance)
}

func (l *LineString) Normalize() Geometry {
	seq := l.seq
	if seq.Size() > 0 && compareSequenceDirection(seq) > 0 {
		seq = seq.Reversed()
	}
	ls, _ := newLineString(l.factory, seq)
	return ls
}

// compareSequenceDirection returns a negative value if the sequence is
// already in its lexicographically smaller direction (forward vs reverse),
// zero if palindromic, positive if it should be reversed.
func compareSequenceDirection(seq *CoordinateSequence) int {
	rev := seq.Reversed()
	for i := 0; i < seq.Size(); i++ {
		c := seq.Get(i).CompareTo(rev.Get(i))
		if c != 0 {
			return c
		}
	}
	return 0
}
