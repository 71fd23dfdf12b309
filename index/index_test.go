package index_test

import (
	"testing"

	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/index"
)

func TestMonotoneChainSweepFindsCrossing(t *testing.T) {
	edgeA := []geom.Coordinate{geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 10)}
	edgeB := []geom.Coordinate{geom.NewCoordinate(0, 10), geom.NewCoordinate(10, 0)}

	chains := index.BuildMonotoneChains(edgeA, "A")
	chains = append(chains, index.BuildMonotoneChains(edgeB, "B")...)

	found := 0
	index.SweepLineIntersect(chains, func(a *index.MonotoneChain, sa int, b *index.MonotoneChain, sb int) {
		if a.Context != b.Context {
			found++
		}
	})
	if found == 0 {
		t.Fatal("expected at least one candidate crossing pair")
	}
}

func TestSTRTreeQuery(t *testing.T) {
	tree := index.NewSTRTree()
	for i := 0; i < 50; i++ {
		fi := float64(i)
		env := geom.NewEnvelope(geom.NewCoordinate(fi, fi), geom.NewCoordinate(fi+0.5, fi+0.5))
		if err := tree.Insert(env, i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	q := geom.NewEnvelope(geom.NewCoordinate(10, 10), geom.NewCoordinate(10.5, 10.5))
	results := tree.Query(q)
	if len(results) == 0 {
		t.Fatal("expected at least one match")
	}
	found := false
	for _, r := range results {
		if r.(int) == 10 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected item 10 among results, got %v", results)
	}

	if err := tree.Insert(q, 999); err == nil {
		t.Fatal("expected InvalidState inserting after query")
	}
}

func TestQuadtreeInsertAfterQuery(t *testing.T) {
	q := index.NewQuadtree()
	q.Insert(geom.NewEnvelope(geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 1)), "a")
	_ = q.Query(geom.NewEnvelope(geom.NewCoordinate(0, 0), geom.NewCoordinate(1, 1)))
	// Quadtree supports insert after query, unlike STRTree.
	q.Insert(geom.NewEnvelope(geom.NewCoordinate(5, 5), geom.NewCoordinate(6, 6)), "b")
	results := q.Query(geom.NewEnvelope(geom.NewCoordinate(5, 5), geom.NewCoordinate(6, 6)))
	if len(results) != 1 || results[0] != "b" {
		t.Fatalf("expected [\"b\"], got %v", results)
	}
}

func TestBintreeOverlap(t *testing.T) {
	bt := index.NewBintree()
	bt.Insert(index.Interval{Lo: 0, Hi: 5}, "low")
	bt.Insert(index.Interval{Lo: 10, Hi: 15}, "high")
	results := bt.Query(index.Interval{Lo: 4, Hi: 11})
	if len(results) != 2 {
		t.Fatalf("expected both intervals to overlap query, got %v", results)
	}
}
