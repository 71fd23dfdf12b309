package algorithm_test

import (
	"testing"

	"github.com/geoplanar/engine/algorithm"
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/pm"
)

func TestOrientationIndexConsistency(t *testing.T) {
	p := geom.NewCoordinate(0, 0)
	q := geom.NewCoordinate(10, 0)
	r := geom.NewCoordinate(5, 5)
	if !algorithm.OrientationIndexConsistent(p, q, r) {
		t.Fatal("orientation index consistency violated")
	}
	if algorithm.OrientationIndex(p, q, r) != 1 {
		t.Fatal("expected CCW (+1)")
	}
	if algorithm.OrientationIndex(p, q, geom.NewCoordinate(5, -5)) != -1 {
		t.Fatal("expected CW (-1)")
	}
	if algorithm.OrientationIndex(p, q, geom.NewCoordinate(5, 0)) != 0 {
		t.Fatal("expected collinear (0)")
	}
}

func TestSignOfDet2x2CollinearTinyValues(t *testing.T) {
	// A near-degenerate determinant that would underflow in naive
	// float64 arithmetic but is exactly zero.
	if got := algorithm.SignOfDet2x2(1e-200, 1e-200, 1e-200, 1e-200); got != 0 {
		t.Fatalf("expected sign 0, got %d", got)
	}
}

func TestLineIntersectorCrossing(t *testing.T) {
	li := algorithm.NewLineIntersector(pm.NewFloating())
	res := li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 10),
		geom.NewCoordinate(0, 10), geom.NewCoordinate(10, 0),
	)
	if res.Type != algorithm.PointIntersectionType {
		t.Fatalf("expected point intersection, got %v", res.Type)
	}
	if len(res.Points) != 1 || res.Points[0].X != 5 || res.Points[0].Y != 5 {
		t.Fatalf("expected (5,5), got %v", res.Points)
	}
	if !res.IsProper {
		t.Fatal("expected proper intersection")
	}
}

func TestLineIntersectorDisjoint(t *testing.T) {
	li := algorithm.NewLineIntersector(pm.NewFloating())
	res := li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 0),
		geom.NewCoordinate(5, 5), geom.NewCoordinate(6, 6),
	)
	if res.Type != algorithm.NoIntersection {
		t.Fatalf("expected no intersection, got %v", res.Type)
	}
}

func TestLineIntersectorCollinearOverlap(t *testing.T) {
	li := algorithm.NewLineIntersector(pm.NewFloating())
	res := li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 0),
		geom.NewCoordinate(5, 0), geom.NewCoordinate(15, 0),
	)
	if res.Type != algorithm.CollinearIntersection {
		t.Fatalf("expected collinear intersection, got %v", res.Type)
	}
	if len(res.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(res.Points))
	}
}

func TestLineIntersectorTouchingEndpoint(t *testing.T) {
	li := algorithm.NewLineIntersector(pm.NewFloating())
	res := li.ComputeIntersection(
		geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 0),
		geom.NewCoordinate(10, 0), geom.NewCoordinate(10, 10),
	)
	if res.Type != algorithm.PointIntersectionType {
		t.Fatalf("expected point intersection, got %v", res.Type)
	}
	if res.IsProper {
		t.Fatal("shared endpoint should not be proper")
	}
}
