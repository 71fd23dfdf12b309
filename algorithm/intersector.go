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

package algorithm

import (
	"math"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/pm"
	"github.com/geoplanar/engine/r1"
)

// IntersectionType classifies the result of intersecting two segments.
type IntersectionType int

const (
	// NoIntersection means the segments do not meet.
	NoIntersection IntersectionType = iota
	// PointIntersectionType means the segments meet at exactly one point.
	PointIntersectionType
	// CollinearIntersection means the segments overlap along a shared
	// line, producing zero, one or two intersection points.
	CollinearIntersection
)

// LineIntersector computes robust intersections between two segments
// under a given precision model, following the algorithm in §4.2.
type LineIntersector struct {
	model pm.Model
}

// NewLineIntersector builds a LineIntersector bound to model; all computed
// intersection coordinates are rounded through model before being
// returned, per §4.1.
func NewLineIntersector(model pm.Model) *LineIntersector {
	return &LineIntersector{model: model}
}

// Result is the outcome of intersecting segment (p1,p2) with (p3,p4).
type Result struct {
	Type         IntersectionType
	Points       []geom.Coordinate // 0, 1, or 2 points
	IsProper     bool              // true iff the single intersection point is strictly interior to both segments
}

// ComputeIntersection intersects segment (p1,p2) with segment (p3,p4).
func (li *LineIntersector) ComputeIntersection(p1, p2, p3, p4 geom.Coordinate) Result {
	// Step 1: bounding-box reject.
	if !boxesOverlap(p1, p2, p3, p4) {
		return Result{Type: NoIntersection}
	}

	// Step 2: orientation classification.
	o1 := OrientationIndex(p1, p2, p3)
	o2 := OrientationIndex(p1, p2, p4)
	o3 := OrientationIndex(p3, p4, p1)
	o4 := OrientationIndex(p3, p4, p2)

	if o1 != 0 && o1 == o2 {
		return Result{Type: NoIntersection}
	}
	if o3 != 0 && o3 == o4 {
		return Result{Type: NoIntersection}
	}

	if o1 == 0 || o2 == 0 || o3 == 0 || o4 == 0 {
		return li.computeCollinearOrTouching(p1, p2, p3, p4, o1, o2, o3, o4)
	}

	// Step 4: proper crossing. Compute via homogeneous-coordinate meet.
	pt, ok := intersectionPoint(p1, p2, p3, p4)
	if !ok {
		// Numerically parallel despite opposite-side classification;
		// fall back to the collinear/touching path which tolerates
		// degenerate configurations.
		return li.computeCollinearOrTouching(p1, p2, p3, p4, o1, o2, o3, o4)
	}
	pt = li.round(pt)
	proper := !pt.Equals2D(p1) && !pt.Equals2D(p2) && !pt.Equals2D(p3) && !pt.Equals2D(p4)
	return Result{Type: PointIntersectionType, Points: []geom.Coordinate{pt}, IsProper: proper}
}

func (li *LineIntersector) round(c geom.Coordinate) geom.Coordinate {
	x, y := li.model.MakePreciseXY(c.X, c.Y)
	return geom.NewCoordinate(x, y)
}

func boxesOverlap(p1, p2, p3, p4 geom.Coordinate) bool {
	env1 := geom.NewEnvelope(p1, p2)
	env2 := geom.NewEnvelope(p3, p4)
	return env1.Intersects(env2)
}

// intersectionPoint computes the meet of lines (p1,p2) and (p3,p4) using
// the projective/homogeneous-coordinates construction referenced in §4.2:
// each line is represented as the cross product of its two homogeneous
// points, and the intersection is the cross product of the two lines.
func intersectionPoint(p1, p2, p3, p4 geom.Coordinate) (geom.Coordinate, bool) {
	// Line through p1,p2 in homogeneous coords: (a1, b1, c1).
	a1, b1, c1 := lineCoeffs(p1, p2)
	a2, b2, c2 := lineCoeffs(p3, p4)

	// Meet: cross product of the two lines.
	x := b1*c2 - b2*c1
	y := a2*c1 - a1*c2
	w := a1*b2 - a2*b1

	if w == 0 {
		return geom.Coordinate{}, false
	}
	return geom.NewCoordinate(x/w, y/w), true
}

func lineCoeffs(p, q geom.Coordinate) (a, b, c float64) {
	a = p.Y - q.Y
	b = q.X - p.X
	c = p.X*q.Y - q.X*p.Y
	return
}

// computeCollinearOrTouching handles the case where at least one
// orientation sign is zero: an endpoint lies exactly on the other line, or
// the two segments are fully collinear. Parametric overlap is computed on
// whichever axis has the larger extent, to minimize rounding (§4.2).
func (li *LineIntersector) computeCollinearOrTouching(p1, p2, p3, p4 geom.Coordinate, o1, o2, o3, o4 int) Result {
	collinear := o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0
	if !collinear {
		// Exactly one endpoint touches the other segment's interior or
		// the other endpoint. Find which.
		candidates := []struct {
			pt      geom.Coordinate
			onOther bool
		}{
			{p3, o1 == 0 && isBetween(p3, p1, p2)},
			{p4, o2 == 0 && isBetween(p4, p1, p2)},
			{p1, o3 == 0 && isBetween(p1, p3, p4)},
			{p2, o4 == 0 && isBetween(p2, p3, p4)},
		}
		for _, cand := range candidates {
			if cand.onOther {
				pt := li.round(cand.pt)
				return Result{Type: PointIntersectionType, Points: []geom.Coordinate{pt}, IsProper: false}
			}
		}
		return Result{Type: NoIntersection}
	}

	// Fully collinear: project onto the axis of greatest extent and
	// compute the overlap interval.
	useX := math.Abs(p2.X-p1.X) >= math.Abs(p2.Y-p1.Y)
	coordOf := func(c geom.Coordinate) float64 {
		if useX {
			return c.X
		}
		return c.Y
	}

	iv1 := orderedInterval(coordOf(p1), coordOf(p2))
	iv2 := orderedInterval(coordOf(p3), coordOf(p4))
	overlap := iv1.Intersection(iv2)
	if overlap.IsEmpty() {
		return Result{Type: NoIntersection}
	}

	pointAt := func(t float64) geom.Coordinate {
		// Map the overlap endpoint back to 2-D by linear interpolation
		// along segment (p1,p2) or (p3,p4), whichever is degenerate-safe.
		return interpolateAtCoordinate(p1, p2, p3, p4, useX, t)
	}

	if overlap.Lo == overlap.Hi {
		return Result{Type: PointIntersectionType, Points: []geom.Coordinate{li.round(pointAt(overlap.Lo))}}
	}
	return Result{Type: CollinearIntersection, Points: []geom.Coordinate{li.round(pointAt(overlap.Lo)), li.round(pointAt(overlap.Hi))}}
}

// interpolateAtCoordinate reconstructs the 2-D point on the shared line at
// parametric coordinate value t along the chosen axis, using whichever of
// the two input segments is non-degenerate on that axis.
func interpolateAtCoordinate(p1, p2, p3, p4 geom.Coordinate, useX bool, t float64) geom.Coordinate {
	tryAlong := func(a, b geom.Coordinate) (geom.Coordinate, bool) {
		var da float64
		if useX {
			da = b.X - a.X
		} else {
			da = b.Y - a.Y
		}
		if da == 0 {
			return geom.Coordinate{}, false
		}
		var at float64
		if useX {
			at = a.X
		} else {
			at = a.Y
		}
		frac := (t - at) / da
		x := a.X + frac*(b.X-a.X)
		y := a.Y + frac*(b.Y-a.Y)
		return geom.NewCoordinate(x, y), true
	}
	if c, ok := tryAlong(p1, p2); ok {
		return c
	}
	if c, ok := tryAlong(p3, p4); ok {
		return c
	}
	// Both segments are degenerate on the chosen axis (shouldn't happen
	// given useX picks the axis of greater extent), fall back to p1.
	return p1
}

// isBetween reports whether point q (known collinear with a,b) lies within
// the closed bounding box of segment (a,b).
func isBetween(q, a, b geom.Coordinate) bool {
	env := geom.NewEnvelope(a, b)
	return env.ContainsCoordinate(q)
}

// orderedInterval builds a well-formed r1.Interval (Lo <= Hi) covering the
// two projected coordinates, regardless of which one precedes the other
// along the segment.
func orderedInterval(a, b float64) r1.Interval {
	if a > b {
		a, b = b, a
	}
	return r1.Interval{Lo: a, Hi: b}
}

// EdgeDistance returns an orientation-invariant monotone parameter along
// p1->p2 used only for sorting intersections along an edge (§4.2): the
// axis of largest extent is chosen to minimize rounding error.
func EdgeDistance(p, p1, p2 geom.Coordinate) float64 {
	dx := math.Abs(p2.X - p1.X)
	dy := math.Abs(p2.Y - p1.Y)
	if dx > dy {
		if p2.X == p1.X {
			return 0
		}
		return (p.X - p1.X) / (p2.X - p1.X)
	}
	if p2.Y == p1.Y {
		return 0
	}
	return (p.Y - p1.Y) / (p2.Y - p1.Y)
}
