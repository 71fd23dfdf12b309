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

// Package pm implements the coordinate quantization policy described in
// §3/§4.1: FLOATING, FLOATING_SINGLE and FIXED precision models.
package pm

import (
	"math"

	"github.com/geoplanar/engine/perr"
)

// Type selects a PrecisionModel's rounding policy.
type Type int

const (
	// Floating passes coordinates through unchanged.
	Floating Type = iota
	// FloatingSingle rounds coordinates to 32-bit float representation.
	FloatingSingle
	// Fixed rounds coordinates to a grid of the given Scale.
	Fixed
)

// Model is an immutable coordinate quantization policy. The zero value is
// a Floating model, matching the usual default.
type Model struct {
	typ   Type
	scale float64
}

// NewFloating returns the FLOATING precision model.
func NewFloating() Model { return Model{typ: Floating} }

// NewFloatingSingle returns the FLOATING_SINGLE precision model.
func NewFloatingSingle() Model { return Model{typ: FloatingSingle} }

// NewFixed returns a FIXED precision model with the given grid scale.
// scale must be positive and finite, per §6's precision-model configuration
// struct.
func NewFixed(scale float64) (Model, error) {
	if !(scale > 0) || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return Model{}, perr.InvalidArgument("fixed precision scale must be positive and finite, got %v", scale)
	}
	return Model{typ: Fixed, scale: scale}, nil
}

// Type reports which rounding policy this model uses.
func (m Model) Type() Type { return m.typ }

// Scale reports the FIXED grid scale; it is meaningless for other types.
func (m Model) Scale() float64 { return m.scale }

// IsFloating reports whether this model passes coordinates through
// unchanged (FLOATING or FLOATING_SINGLE both preserve full double range
// values for comparison purposes; only MakePrecise distinguishes them).
func (m Model) IsFloating() bool { return m.typ == Floating || m.typ == FloatingSingle }

// MaximumSignificantDigits derives the number of significant decimal
// digits the model's grid can resolve, per §4.1.
func (m Model) MaximumSignificantDigits() int {
	switch m.typ {
	case Floating:
		return 16
	case FloatingSingle:
		return 6
	case Fixed:
		digits := int(math.Ceil(math.Log10(m.scale))) + 1
		if digits < 1 {
			digits = 1
		}
		return digits
	default:
		return 16
	}
}

// MakePrecise rounds a single coordinate value to the model's grid.
// Idempotent: MakePrecise(MakePrecise(v)) == MakePrecise(v).
func (m Model) MakePrecise(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	switch m.typ {
	case Floating:
		return v
	case FloatingSingle:
		return float64(float32(v))
	case Fixed:
		return roundHalfAwayFromZero(v*m.scale) / m.scale
	default:
		return v
	}
}

// MakePreciseXY rounds an (x, y) pair to the model's grid in one call.
func (m Model) MakePreciseXY(x, y float64) (float64, float64) {
	return m.MakePrecise(x), m.MakePrecise(y)
}

// roundHalfAwayFromZero implements round(v) with ties rounding away from
// zero, matching FIXED's "round(v·scale)/scale" contract in §4.1.
func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return math.Floor(v + 0.5)
	}
	return math.Ceil(v - 0.5)
}
