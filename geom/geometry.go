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

// GeomType tags which variant of the Geometry sum type a value holds.
type GeomType int

const (
	TypePoint GeomType = iota
	TypeLineString
	TypeLinearRing
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	TypeGeometryCollection
)

func (t GeomType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypeLinearRing:
		return "LinearRing"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Dimension is a geometry's topological dimension: 0 (point-like), 1
// (curve-like), 2 (area-like), or mixed for heterogeneous collections.
type Dimension int

const (
	DimensionPoint Dimension = iota
	DimensionCurve
	DimensionSurface
	DimensionMixed
)

// Geometry is the common interface satisfied by every variant in the sum
// type: Point, LineString, LinearRing, Polygon, MultiPoint,
// MultiLineString, MultiPolygon, GeometryCollection. Shared state (owning
// factory, cached envelope, SRID) lives in the embedded base struct;
// variant-specific behaviour is implemented per concrete type and
// dispatched here by interface method or by a type switch in callers that
// need exhaustive handling (geom.Boundary is one such type switch).
type Geometry interface {
	// GeomType reports which variant this value is.
	GeomType() GeomType
	// Dimension reports the geometry's topological dimension.
	Dimension() Dimension
	// IsEmpty reports whether the geometry has no points.
	IsEmpty() bool
	// Envelope returns the (possibly cached) axis-aligned bounding box.
	Envelope() Envelope
	// Factory returns the owning GeometryFactory.
	Factory() *GeometryFactory
	// SRID returns the geometry's spatial reference id, propagated from
	// its factory but never interpreted by the core.
	SRID() int
	// NumPoints returns the total number of coordinates the geometry is
	// built from.
	NumPoints() int
	// Coordinates returns every coordinate in the geometry, in a
	// deterministic traversal order.
	Coordinates() []Coordinate
	// EqualsExact reports structural equality within tolerance (0 means
	// exact 2-D equality), without reordering rings/children: compare
	// Normalize()'d geometries first if order-independent equality is
	// wanted.
	EqualsExact(other Geometry, tolerance float64) bool
	// Normalize returns a canonicalized copy: rings start at their
	// lexicographically smallest coordinate and wind a fixed direction,
	// and collection children are sorted, so that two geometries
	// representing the same point set compare equal via EqualsExact(0)
	// after normalizing both.
	Normalize() Geometry
}

// base is the common header embedded by every concrete Geometry variant:
// the owning factory and a lazily computed, cached envelope.
type base struct {
	factory *GeometryFactory
	env     *Envelope
}

func (b *base) Factory() *GeometryFactory { return b.factory }

func (b *base) SRID() int {
	if b.factory == nil {
		return 0
	}
	return b.factory.SRID()
}

// cachedEnvelope lazily computes and caches env using compute, which is
// supplied by the concrete type (it knows how to walk its own coordinates).
func (b *base) cachedEnvelope(compute func() Envelope) Envelope {
	if b.env == nil {
		e := compute()
		b.env = &e
	}
	return *b.env
}

// IsSimple reports whether g has no anomalous self-intersection. Simplicity
// is a topological property computed by noding the geometry against
// itself; rather than duplicate that machinery here (it lives in
// planargraph/GeometryGraph, which imports geom), IsSimple is implemented
// as a free function in that package (planargraph.IsSimple) to avoid an
// import cycle. This method name is intentionally absent from the
// interface; see planargraph.IsSimple.
var _ = (*base)(nil)
