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

package planargraph

import (
	"github.com/geoplanar/engine/algorithm"
	"github.com/geoplanar/engine/index"
)

// SegmentIntersector drives an algorithm.LineIntersector over candidate
// segment pairs drawn from the monotone-chain sweep, recording an
// EdgeIntersection on each edge touched and tracking whether any proper
// (interior, not merely endpoint-touching) intersection was found (§4.5).
type SegmentIntersector struct {
	li           *algorithm.LineIntersector
	hasProper    bool
	hasIntersection bool
}

// NewSegmentIntersector builds a SegmentIntersector bound to li.
func NewSegmentIntersector(li *algorithm.LineIntersector) *SegmentIntersector {
	return &SegmentIntersector{li: li}
}

// HasProperIntersection reports whether any processed pair produced a
// proper intersection.
func (s *SegmentIntersector) HasProperIntersection() bool { return s.hasProper }

// HasIntersection reports whether any processed pair produced any
// intersection at all, proper or not.
func (s *SegmentIntersector) HasIntersection() bool { return s.hasIntersection }

// NodeEdges runs the monotone-chain sweep-line intersector (§4.3) over
// every edge's chains, feeding candidate segment pairs through a fresh
// SegmentIntersector, and then splits every edge at its resulting
// intersection list, returning the noded edges (§4.4's "split each edge
// at its intersection list") and the intersector used, so callers can
// inspect HasProperIntersection/HasIntersection afterward.
func NodeEdges(li *algorithm.LineIntersector, edges []*Edge) ([]*Edge, *SegmentIntersector) {
	s := NewSegmentIntersector(li)
	var chains []*index.MonotoneChain
	for _, e := range edges {
		chains = append(chains, e.MonotoneChains()...)
	}
	index.SweepLineIntersect(chains, func(a *index.MonotoneChain, aStart int, b *index.MonotoneChain, bStart int) {
		s.processChainPair(a, aStart, b, bStart)
	})

	var out []*Edge
	for _, e := range edges {
		if e.Intersections().IsEmpty() {
			e.Intersections().AddEndpoints()
			out = append(out, e)
			continue
		}
		split := e.Intersections().Split()
		if split == nil {
			e.Intersections().AddEndpoints()
			out = append(out, e)
			continue
		}
		out = append(out, split...)
	}
	return out, s
}

// processChainPair handles one candidate segment pair emitted by the
// sweep: skip adjacent segments of the same edge (they trivially share an
// endpoint) unless the edge is closed and the pair is its (first, last)
// segment, then run the LineIntersector and record any hit.
func (s *SegmentIntersector) processChainPair(a *index.MonotoneChain, aStart int, b *index.MonotoneChain, bStart int) {
	edgeA, _ := a.Context.(*Edge)
	edgeB, _ := b.Context.(*Edge)
	if edgeA == nil || edgeB == nil {
		return
	}
	if edgeA == edgeB && isAdjacentSegment(edgeA, aStart, bStart) {
		return
	}

	p1, p2 := a.Coordinate(aStart), a.Coordinate(aStart+1)
	p3, p4 := b.Coordinate(bStart), b.Coordinate(bStart+1)
	res := s.li.ComputeIntersection(p1, p2, p3, p4)
	if res.Type == algorithm.NoIntersection {
		return
	}
	s.hasIntersection = true
	if res.IsProper {
		s.hasProper = true
	}
	for _, pt := range res.Points {
		distA := algorithm.EdgeDistance(pt, p1, p2)
		distB := algorithm.EdgeDistance(pt, p3, p4)
		edgeA.Intersections().Add(pt, aStart, distA)
		edgeB.Intersections().Add(pt, bStart, distB)
	}
}

// isAdjacentSegment reports whether segments starting at indexes i and j
// of the same edge share an endpoint trivially: consecutive indexes, or
// the (first, last) pair of a closed edge.
func isAdjacentSegment(e *Edge, i, j int) bool {
	if i == j {
		return true
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo == 1 {
		return true
	}
	if e.IsClosed() && lo == 0 && hi == e.NumPoints()-2 {
		return true
	}
	return false
}
