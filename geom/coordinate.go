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

// Package geom implements the immutable geometry value layer of §3: points,
// line strings, rings, polygons, their collections, and the coordinate
// storage beneath them. The package carries no topology.
package geom

import "math"

// Coordinate is an (x, y, z) triple of doubles. Z may be NaN, meaning
// "absent". 2-D comparisons (the default throughout the engine) use only
// (x, y).
type Coordinate struct {
	X, Y, Z float64
}

// NewCoordinate builds a 2-D coordinate with an absent Z.
func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN()}
}

// NewCoordinate3D builds a full 3-D coordinate.
func NewCoordinate3D(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// HasZ reports whether Z is present (not NaN).
func (c Coordinate) HasZ() bool { return !math.IsNaN(c.Z) }

// Equals2D reports 2-D equality: equal x and equal y.
func (c Coordinate) Equals2D(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Equals3D reports 3-D equality, including both-absent or equal Z.
func (c Coordinate) Equals3D(o Coordinate) bool {
	if !c.Equals2D(o) {
		return false
	}
	if c.HasZ() != o.HasZ() {
		return false
	}
	if !c.HasZ() {
		return true
	}
	return c.Z == o.Z
}

// CompareTo orders coordinates lexicographically by (x, y), 2-D only.
func (c Coordinate) CompareTo(o Coordinate) int {
	if c.X < o.X {
		return -1
	}
	if c.X > o.X {
		return 1
	}
	if c.Y < o.Y {
		return -1
	}
	if c.Y > o.Y {
		return 1
	}
	return 0
}

// Distance returns the 2-D Euclidean distance to another coordinate.
func (c Coordinate) Distance(o Coordinate) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// InterpolateZ returns the Z value along segment (a, b) at parametric
// fraction frac ∈ [0, 1], following §3's "best effort, interpolated on
// intersections" rule. If neither endpoint has Z, the result is NaN.
func InterpolateZ(a, b Coordinate, frac float64) float64 {
	switch {
	case a.HasZ() && b.HasZ():
		return a.Z + (b.Z-a.Z)*frac
	case a.HasZ():
		return a.Z
	case b.HasZ():
		return b.Z
	default:
		return math.NaN()
	}
}

// AverageZ averages the Z values of the coordinates that have one,
// following §3's "averaged when fused" rule. Returns NaN if none do.
func AverageZ(cs ...Coordinate) float64 {
	sum, n := 0.0, 0
	for _, c := range cs {
		if c.HasZ() {
			sum += c.Z
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
