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

// Package index implements the spatial indexes of §4.3: monotone chains
// over an edge, the monotone-chain sweep-line intersector, the STR-tree,
// the Quadtree and the Bintree.
package index

import (
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/r2"
)

// SegmentIntersectorFunc is called for every candidate segment pair two
// chains' recursive intersection search narrows down to.
type SegmentIntersectorFunc func(chainA *MonotoneChain, startA int, chainB *MonotoneChain, startB int)

// MonotoneChain is a maximal run of an edge's segments that occupy the
// same quadrant, so the chain's bounding box equals the box of its two
// endpoints (§4.3). Context is an opaque back-reference to whatever the
// chain indexes (an Edge, typically), stored so callers threading through
// SegmentIntersectorFunc can recover it.
type MonotoneChain struct {
	coords  []geom.Coordinate
	start   int // index into coords of the chain's first vertex
	end     int // index into coords of the chain's last vertex
	env     geom.Envelope
	Context any
}

// Start returns the chain's starting index within its coordinate sequence.
func (c *MonotoneChain) Start() int { return c.start }

// End returns the chain's ending index within its coordinate sequence.
func (c *MonotoneChain) End() int { return c.end }

// Envelope returns the chain's bounding box (its two endpoints' box).
func (c *MonotoneChain) Envelope() geom.Envelope { return c.env }

// Coordinate returns coordinate i of the chain's backing sequence.
func (c *MonotoneChain) Coordinate(i int) geom.Coordinate { return c.coords[i] }

// BuildMonotoneChains splits coords into maximal monotone runs: a new chain
// starts whenever consecutive segments change quadrant.
func BuildMonotoneChains(coords []geom.Coordinate, context any) []*MonotoneChain {
	var chains []*MonotoneChain
	n := len(coords)
	if n < 2 {
		return chains
	}
	start := 0
	for start < n-1 {
		last := findChainEnd(coords, start)
		chains = append(chains, newChain(coords, start, last, context))
		start = last
	}
	return chains
}

func findChainEnd(coords []geom.Coordinate, start int) int {
	safeStart := start
	if safeStart >= len(coords)-1 {
		return len(coords) - 1
	}
	q0 := quadrant(coords[safeStart], coords[safeStart+1])
	last := safeStart + 1
	for last < len(coords)-1 {
		q := quadrant(coords[last], coords[last+1])
		if q != q0 {
			break
		}
		last++
	}
	return last
}

func newChain(coords []geom.Coordinate, start, end int, context any) *MonotoneChain {
	env := geom.NewEnvelope(coords[start], coords[end])
	return &MonotoneChain{coords: coords, start: start, end: end, env: env, Context: context}
}

// quadrant returns which of the 4 quadrants (0..3 CCW starting at +x,+y)
// the directed segment p->q falls in, per §3's EdgeEnd derivation.
func quadrant(p, q geom.Coordinate) int {
	return r2.Vector{X: q.X - p.X, Y: q.Y - p.Y}.Quadrant()
}

// ComputeIntersections recursively intersects chain c against chain o,
// narrowing by bounding box until both sides are single segments, at
// which point fn is invoked with the matching segment start indexes.
func (c *MonotoneChain) ComputeIntersections(o *MonotoneChain, fn SegmentIntersectorFunc) {
	computeIntersectsRecursive(c, c.start, c.end, o, o.start, o.end, fn)
}

func computeIntersectsRecursive(a *MonotoneChain, aStart, aEnd int, b *MonotoneChain, bStart, bEnd int, fn SegmentIntersectorFunc) {
	envA := geom.NewEnvelope(a.coords[aStart], a.coords[aEnd])
	envB := geom.NewEnvelope(b.coords[bStart], b.coords[bEnd])
	if !envA.Intersects(envB) {
		return
	}

	aIsLeaf := aEnd-aStart <= 1
	bIsLeaf := bEnd-bStart <= 1
	if aIsLeaf && bIsLeaf {
		fn(a, aStart, b, bStart)
		return
	}

	if aIsLeaf {
		bMid := (bStart + bEnd) / 2
		computeIntersectsRecursive(a, aStart, aEnd, b, bStart, bMid, fn)
		computeIntersectsRecursive(a, aStart, aEnd, b, bMid, bEnd, fn)
		return
	}
	if bIsLeaf {
		aMid := (aStart + aEnd) / 2
		computeIntersectsRecursive(a, aStart, aMid, b, bStart, bEnd, fn)
		computeIntersectsRecursive(a, aMid, aEnd, b, bStart, bEnd, fn)
		return
	}

	aMid := (aStart + aEnd) / 2
	bMid := (bStart + bEnd) / 2
	computeIntersectsRecursive(a, aStart, aMid, b, bStart, bMid, fn)
	computeIntersectsRecursive(a, aStart, aMid, b, bMid, bEnd, fn)
	computeIntersectsRecursive(a, aMid, aEnd, b, bStart, bMid, fn)
	computeIntersectsRecursive(a, aMid, aEnd, b, bMid, bEnd, fn)
}
