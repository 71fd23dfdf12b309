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

package wkt

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/perr"
)

// Parse reads a WKT string into a Geometry built by factory. Hand-grounded
// on the grammar §6 spells out and on original_source/WKTWriter.cpp's
// tagged-text layout read in reverse (no pack example ships a WKT reader);
// implemented as an ordinary recursive-descent parser over a small token
// stream, the idiomatic Go shape for this kind of grammar.
func Parse(s string, factory *geom.GeometryFactory) (geom.Geometry, error) {
	p := &parser{tokens: tokenize(s), factory: factory}
	g, err := p.parseGeometryTaggedText()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, perr.InvalidArgument("wkt: unexpected trailing input at %q", p.peek())
	}
	return g, nil
}

type parser struct {
	tokens  []string
	pos     int
	factory *geom.GeometryFactory
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) expect(tok string) error {
	got := p.next()
	if !strings.EqualFold(got, tok) {
		return perr.InvalidArgument("wkt: expected %q, got %q", tok, got)
	}
	return nil
}

func (p *parser) parseGeometryTaggedText() (geom.Geometry, error) {
	switch tag := strings.ToUpper(p.next()); tag {
	case "POINT":
		return p.parsePoint()
	case "LINESTRING":
		return p.parseLineString()
	case "POLYGON":
		return p.parsePolygon()
	case "MULTIPOINT":
		return p.parseMultiPoint()
	case "MULTILINESTRING":
		return p.parseMultiLineString()
	case "MULTIPOLYGON":
		return p.parseMultiPolygon()
	case "GEOMETRYCOLLECTION":
		return p.parseGeometryCollection()
	default:
		return nil, perr.InvalidArgument("wkt: unrecognized geometry tag %q", tag)
	}
}

func (p *parser) isEmpty() bool {
	if strings.EqualFold(p.peek(), "EMPTY") {
		p.next()
		return true
	}
	return false
}

func (p *parser) parsePoint() (geom.Geometry, error) {
	if p.isEmpty() {
		return p.factory.CreateEmptyPoint(), nil
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	c, err := p.parseCoordinate()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return p.factory.CreatePoint(c)
}

func (p *parser) parseCoordinate() (geom.Coordinate, error) {
	x, err := p.parseNumber()
	if err != nil {
		return geom.Coordinate{}, err
	}
	y, err := p.parseNumber()
	if err != nil {
		return geom.Coordinate{}, err
	}
	return geom.NewCoordinate(x, y), nil
}

func (p *parser) parseNumber() (float64, error) {
	tok := p.next()
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, perr.InvalidArgument("wkt: expected a number, got %q", tok)
	}
	return v, nil
}

func (p *parser) parseCoordinateSequence() ([]geom.Coordinate, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var coords []geom.Coordinate
	for {
		c, err := p.parseCoordinate()
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
		if strings.EqualFold(p.peek(), ",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return coords, nil
}

func (p *parser) parseLineString() (geom.Geometry, error) {
	if p.isEmpty() {
		return p.factory.CreateLineString(nil)
	}
	coords, err := p.parseCoordinateSequence()
	if err != nil {
		return nil, err
	}
	return p.factory.CreateLineString(coords)
}

func (p *parser) parseLinearRing() (*geom.LinearRing, error) {
	coords, err := p.parseCoordinateSequence()
	if err != nil {
		return nil, err
	}
	return p.factory.CreateLinearRing(coords)
}

func (p *parser) parsePolygon() (geom.Geometry, error) {
	if p.isEmpty() {
		return p.factory.CreateEmptyPolygon(), nil
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	shell, err := p.parseLinearRing()
	if err != nil {
		return nil, err
	}
	var holes []*geom.LinearRing
	for strings.EqualFold(p.peek(), ",") {
		p.next()
		hole, err := p.parseLinearRing()
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return p.factory.CreatePolygon(shell, holes)
}

func (p *parser) parseMultiPoint() (geom.Geometry, error) {
	if p.isEmpty() {
		return p.factory.CreateMultiPoint(nil), nil
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var coords []geom.Coordinate
	for {
		// MULTIPOINT members may appear as bare "x y" or parenthesised
		// "(x y)"; both forms are in real-world use.
		var c geom.Coordinate
		var err error
		if strings.EqualFold(p.peek(), "(") {
			p.next()
			c, err = p.parseCoordinate()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
		} else {
			c, err = p.parseCoordinate()
			if err != nil {
				return nil, err
			}
		}
		coords = append(coords, c)
		if strings.EqualFold(p.peek(), ",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return p.factory.CreateMultiPoint(coords), nil
}

func (p *parser) parseMultiLineString() (geom.Geometry, error) {
	if p.isEmpty() {
		return p.factory.CreateMultiLineString(nil)
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var lines [][]geom.Coordinate
	for {
		coords, err := p.parseCoordinateSequence()
		if err != nil {
			return nil, err
		}
		lines = append(lines, coords)
		if strings.EqualFold(p.peek(), ",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return p.factory.CreateMultiLineString(lines)
}

func (p *parser) parseMultiPolygon() (geom.Geometry, error) {
	if p.isEmpty() {
		return p.factory.CreateMultiPolygon(nil), nil
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var polys []*geom.Polygon
	for {
		g, err := p.parsePolygon()
		if err != nil {
			return nil, err
		}
		polys = append(polys, g.(*geom.Polygon))
		if strings.EqualFold(p.peek(), ",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return p.factory.CreateMultiPolygon(polys), nil
}

func (p *parser) parseGeometryCollection() (geom.Geometry, error) {
	if p.isEmpty() {
		return p.factory.CreateGeometryCollection(nil)
	}
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var children []geom.Geometry
	for {
		g, err := p.parseGeometryTaggedText()
		if err != nil {
			return nil, err
		}
		children = append(children, g)
		if strings.EqualFold(p.peek(), ",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return p.factory.CreateGeometryCollection(children)
}

// tokenize splits s into identifiers, numbers and the punctuation '(',
// ')', ',', skipping whitespace. Numbers keep their leading sign and any
// exponent so parseNumber can hand them straight to strconv.ParseFloat.
func tokenize(s string) []string {
	var tokens []string
	r := []rune(s)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(' || c == ')' || c == ',':
			tokens = append(tokens, string(c))
			i++
		case c == '-' || c == '+' || c == '.' || unicode.IsDigit(c):
			j := i + 1
			for j < len(r) && isNumberRune(r[j]) {
				j++
			}
			tokens = append(tokens, string(r[i:j]))
			i = j
		default:
			j := i + 1
			for j < len(r) && unicode.IsLetter(r[j]) {
				j++
			}
			tokens = append(tokens, string(r[i:j]))
			i = j
		}
	}
	return tokens
}

func isNumberRune(r rune) bool {
	return unicode.IsDigit(r) || r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-'
}
