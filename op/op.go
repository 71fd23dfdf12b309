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

// Package op is the public operation façade of §6: the eight named DE-9IM
// predicates, the raw relate(g) and relate(g, pattern) operations, and the
// four boolean set operations, all exposed as methods of an Engine that
// carries a precision model, an SRID and a logger. relate and overlay do
// the actual work; this package only wires them to a shared configuration
// so callers do not thread a precision model through every call.
package op

import (
	"github.com/rs/zerolog"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/overlay"
	"github.com/geoplanar/engine/pm"
	"github.com/geoplanar/engine/relate"
)

// Engine evaluates predicates and set operations under a fixed precision
// model, SRID and logger. The zero value is not usable; build one with
// NewEngine.
type Engine struct {
	factory *geom.GeometryFactory
	model   pm.Model
	logger  zerolog.Logger
}

// NewEngine builds an Engine from the given options, defaulting to a
// FLOATING precision model, SRID 0, and a disabled (silent) logger.
func NewEngine(opts ...Option) *Engine {
	c := config{model: pm.NewFloating(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	return &Engine{
		factory: geom.NewGeometryFactory(c.model, c.srid),
		model:   c.model,
		logger:  c.logger,
	}
}

// Factory returns the GeometryFactory the engine builds result geometries
// with, so callers can construct compatible input geometries.
func (e *Engine) Factory() *geom.GeometryFactory { return e.factory }

// envelopesDisjoint reports whether a and b's envelopes share no point,
// letting Intersects and Disjoint short-circuit the relate engine per
// §8's envelope short-circuit property.
func envelopesDisjoint(a, b geom.Geometry) bool {
	return !a.Envelope().Intersects(b.Envelope())
}

// Equals reports whether a and b represent the same point set.
func (e *Engine) Equals(a, b geom.Geometry) (bool, error) {
	return relate.Equals(a, b, e.model)
}

// Disjoint reports whether a and b share no point.
func (e *Engine) Disjoint(a, b geom.Geometry) (bool, error) {
	if envelopesDisjoint(a, b) {
		return true, nil
	}
	return relate.Disjoint(a, b, e.model)
}

// Intersects reports whether a and b share at least one point.
func (e *Engine) Intersects(a, b geom.Geometry) (bool, error) {
	if envelopesDisjoint(a, b) {
		return false, nil
	}
	return relate.Intersects(a, b, e.model)
}

// Touches reports whether a and b meet only at their boundaries.
func (e *Engine) Touches(a, b geom.Geometry) (bool, error) {
	return relate.Touches(a, b, e.model)
}

// Crosses reports whether a and b intersect in a set of lower dimension
// than the larger of the two inputs, with interiors actually crossing.
func (e *Engine) Crosses(a, b geom.Geometry) (bool, error) {
	return relate.Crosses(a, b, e.model)
}

// Within reports whether a lies entirely inside b.
func (e *Engine) Within(a, b geom.Geometry) (bool, error) {
	return relate.Within(a, b, e.model)
}

// Contains reports whether b lies entirely inside a.
func (e *Engine) Contains(a, b geom.Geometry) (bool, error) {
	return relate.Contains(a, b, e.model)
}

// Overlaps reports whether a and b are the same dimension, their
// interiors intersect, and each has a part outside the other.
func (e *Engine) Overlaps(a, b geom.Geometry) (bool, error) {
	return relate.Overlaps(a, b, e.model)
}

// Relate computes the full 3x3 DE-9IM intersection matrix of a and b.
func (e *Engine) Relate(a, b geom.Geometry) (*relate.IntersectionMatrix, error) {
	return relate.Relate(a, b, e.model)
}

// RelateMatches reports whether relate(a, b) satisfies the given 9-char
// DE-9IM pattern.
func (e *Engine) RelateMatches(a, b geom.Geometry, pattern string) (bool, error) {
	return relate.MatchesPattern(a, b, e.model, pattern)
}

// Intersection returns the point set shared by a and b.
func (e *Engine) Intersection(a, b geom.Geometry) (geom.Geometry, error) {
	return overlay.Compute(a, b, overlay.Intersection, e.factory, e.logger)
}

// Union returns the point set of a combined with b.
func (e *Engine) Union(a, b geom.Geometry) (geom.Geometry, error) {
	return overlay.Compute(a, b, overlay.Union, e.factory, e.logger)
}

// Difference returns the part of a that does not lie in b.
func (e *Engine) Difference(a, b geom.Geometry) (geom.Geometry, error) {
	return overlay.Compute(a, b, overlay.Difference, e.factory, e.logger)
}

// SymDifference returns the part of a and b that lies in exactly one of
// the two, i.e. (a union b) minus (a intersection b).
func (e *Engine) SymDifference(a, b geom.Geometry) (geom.Geometry, error) {
	return overlay.Compute(a, b, overlay.SymDifference, e.factory, e.logger)
}
