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

import "math"

// Envelope is an axis-aligned bounding rectangle. An empty Envelope (no
// points ever added) reports IsEmpty and never intersects anything.
type Envelope struct {
	MinX, MaxX, MinY, MaxY float64
	empty                  bool
}

// NewEmptyEnvelope returns the empty envelope.
func NewEmptyEnvelope() Envelope {
	return Envelope{empty: true}
}

// NewEnvelope builds an envelope from two opposite corner coordinates.
func NewEnvelope(a, b Coordinate) Envelope {
	e := NewEmptyEnvelope()
	e.ExpandToInclude(a)
	e.ExpandToInclude(b)
	return e
}

// IsEmpty reports whether the envelope contains no points.
func (e Envelope) IsEmpty() bool { return e.empty }

// ExpandToInclude grows the envelope, if needed, to cover c.
func (e *Envelope) ExpandToInclude(c Coordinate) {
	if e.empty {
		e.MinX, e.MaxX = c.X, c.X
		e.MinY, e.MaxY = c.Y, c.Y
		e.empty = false
		return
	}
	e.MinX = math.Min(e.MinX, c.X)
	e.MaxX = math.Max(e.MaxX, c.X)
	e.MinY = math.Min(e.MinY, c.Y)
	e.MaxY = math.Max(e.MaxY, c.Y)
}

// ExpandToIncludeEnvelope grows the envelope to cover another.
func (e *Envelope) ExpandToIncludeEnvelope(o Envelope) {
	if o.empty {
		return
	}
	if e.empty {
		*e = o
		return
	}
	e.MinX = math.Min(e.MinX, o.MinX)
	e.MaxX = math.Max(e.MaxX, o.MaxX)
	e.MinY = math.Min(e.MinY, o.MinY)
	e.MaxY = math.Max(e.MaxY, o.MaxY)
}

// Intersects reports whether two envelopes share at least one point.
// Disjoint if either is empty.
func (e Envelope) Intersects(o Envelope) bool {
	if e.empty || o.empty {
		return false
	}
	return !(o.MinX > e.MaxX || o.MaxX < e.MinX || o.MinY > e.MaxY || o.MaxY < e.MinY)
}

// Contains reports whether o lies entirely within e (inclusive).
func (e Envelope) Contains(o Envelope) bool {
	if e.empty || o.empty {
		return false
	}
	return o.MinX >= e.MinX && o.MaxX <= e.MaxX && o.MinY >= e.MinY && o.MaxY <= e.MaxY
}

// ContainsCoordinate reports whether c lies within e (inclusive).
func (e Envelope) ContainsCoordinate(c Coordinate) bool {
	if e.empty {
		return false
	}
	return c.X >= e.MinX && c.X <= e.MaxX && c.Y >= e.MinY && c.Y <= e.MaxY
}

// Width returns MaxX - MinX, or 0 if empty.
func (e Envelope) Width() float64 {
	if e.empty {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns MaxY - MinY, or 0 if empty.
func (e Envelope) Height() float64 {
	if e.empty {
		return 0
	}
	return e.MaxY - e.MinY
}

// Area returns the envelope's area, 0 if empty.
func (e Envelope) Area() float64 { return e.Width() * e.Height() }
