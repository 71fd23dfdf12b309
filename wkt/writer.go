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

// Package wkt implements the Well-Known Text reader and writer §6
// describes as a thin, separately-built collaborator: `POINT (x y)`,
// `LINESTRING (...)`, `POLYGON ((...), (...))`, the MULTI* variants,
// GEOMETRYCOLLECTION, and the EMPTY keyword.
//
// Grounded on original_source/WKTWriter.cpp's tagged-text structure
// (one appendXxxTaggedText per geometry kind, each writing its keyword
// then delegating to a shared coordinate/ring writer) and its
// precision-driven decimal formatting; no pack example ships a WKT
// writer of its own.
package wkt

import (
	"strconv"
	"strings"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/pm"
)

// Write renders g as WKT text under its own factory's precision model,
// matching original_source/WKTWriter.cpp's createFormatter: FLOATING
// keeps full double precision, FIXED/FLOATING_SINGLE round to the
// model's MaximumSignificantDigits, used as a count of decimal places.
func Write(g geom.Geometry) string {
	var b strings.Builder
	model := g.Factory().PrecisionModel()
	digits := model.MaximumSignificantDigits()
	if model.Type() == pm.Floating {
		// The shortest decimal form that parses back to the same float64.
		digits = -1
	}
	appendGeometryTaggedText(&b, g, digits)
	return b.String()
}

func appendGeometryTaggedText(b *strings.Builder, g geom.Geometry, digits int) {
	switch v := g.(type) {
	case *geom.Point:
		b.WriteString("POINT ")
		appendPointText(b, v, digits)
	case *geom.LineString:
		b.WriteString("LINESTRING ")
		appendLineStringText(b, v.Coordinates(), digits)
	case *geom.LinearRing:
		b.WriteString("LINESTRING ")
		appendLineStringText(b, v.Coordinates(), digits)
	case *geom.Polygon:
		b.WriteString("POLYGON ")
		appendPolygonText(b, v, digits)
	case *geom.MultiPoint:
		b.WriteString("MULTIPOINT ")
		appendMultiPointText(b, v, digits)
	case *geom.MultiLineString:
		b.WriteString("MULTILINESTRING ")
		appendMultiLineStringText(b, v, digits)
	case *geom.MultiPolygon:
		b.WriteString("MULTIPOLYGON ")
		appendMultiPolygonText(b, v, digits)
	case *geom.GeometryCollection:
		b.WriteString("GEOMETRYCOLLECTION ")
		appendGeometryCollectionText(b, v, digits)
	default:
		b.WriteString("GEOMETRYCOLLECTION EMPTY")
	}
}

func appendPointText(b *strings.Builder, p *geom.Point, digits int) {
	if p.IsEmpty() {
		b.WriteString("EMPTY")
		return
	}
	b.WriteString("(")
	appendCoordinate(b, p.Coordinate(), digits)
	b.WriteString(")")
}

func appendLineStringText(b *strings.Builder, coords []geom.Coordinate, digits int) {
	if len(coords) == 0 {
		b.WriteString("EMPTY")
		return
	}
	b.WriteString("(")
	for i, c := range coords {
		if i > 0 {
			b.WriteString(", ")
		}
		appendCoordinate(b, c, digits)
	}
	b.WriteString(")")
}

func appendPolygonText(b *strings.Builder, p *geom.Polygon, digits int) {
	if p.IsEmpty() {
		b.WriteString("EMPTY")
		return
	}
	b.WriteString("(")
	appendLineStringText(b, p.ExteriorRing().Coordinates(), digits)
	for i := 0; i < p.NumInteriorRings(); i++ {
		b.WriteString(", ")
		appendLineStringText(b, p.InteriorRingN(i).Coordinates(), digits)
	}
	b.WriteString(")")
}

func appendMultiPointText(b *strings.Builder, mp *geom.MultiPoint, digits int) {
	if mp.IsEmpty() {
		b.WriteString("EMPTY")
		return
	}
	b.WriteString("(")
	for i := 0; i < mp.NumGeometries(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		appendCoordinate(b, mp.GeometryN(i).Coordinate(), digits)
	}
	b.WriteString(")")
}

func appendMultiLineStringText(b *strings.Builder, mls *geom.MultiLineString, digits int) {
	if mls.IsEmpty() {
		b.WriteString("EMPTY")
		return
	}
	b.WriteString("(")
	for i := 0; i < mls.NumGeometries(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		appendLineStringText(b, mls.GeometryN(i).Coordinates(), digits)
	}
	b.WriteString(")")
}

func appendMultiPolygonText(b *strings.Builder, mp *geom.MultiPolygon, digits int) {
	if mp.IsEmpty() {
		b.WriteString("EMPTY")
		return
	}
	b.WriteString("(")
	for i := 0; i < mp.NumGeometries(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		appendPolygonText(b, mp.GeometryN(i), digits)
	}
	b.WriteString(")")
}

func appendGeometryCollectionText(b *strings.Builder, gc *geom.GeometryCollection, digits int) {
	if gc.IsEmpty() {
		b.WriteString("EMPTY")
		return
	}
	b.WriteString("(")
	for i := 0; i < gc.NumGeometries(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		appendGeometryTaggedText(b, gc.GeometryN(i), digits)
	}
	b.WriteString(")")
}

func appendCoordinate(b *strings.Builder, c geom.Coordinate, digits int) {
	b.WriteString(formatNumber(c.X, digits))
	b.WriteString(" ")
	b.WriteString(formatNumber(c.Y, digits))
}

// formatNumber renders v with at most digits decimal places (the shortest
// exact form when digits is negative), trimming
// trailing zeros (and a trailing decimal point) the way JTS's own WKT
// writer does, rather than original_source's fixed-width %f.
func formatNumber(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}
