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

import "sort"

// EdgeEndStar is the set of half-edges leaving a Node, kept sorted
// counter-clockwise starting at the positive x-axis (§3).
type EdgeEndStar struct {
	ends []*EdgeEnd
}

func newEdgeEndStar() *EdgeEndStar { return &EdgeEndStar{} }

// Insert adds an edge-end to the star and re-sorts it into CCW order.
func (s *EdgeEndStar) Insert(e *EdgeEnd) {
	s.ends = append(s.ends, e)
	sort.SliceStable(s.ends, func(i, j int) bool {
		return compareDirection(s.ends[i], s.ends[j]) < 0
	})
}

// Edges returns the star's edge-ends in CCW order.
func (s *EdgeEndStar) Edges() []*EdgeEnd { return s.ends }

// Degree returns the number of edge-ends at this node.
func (s *EdgeEndStar) Degree() int { return len(s.ends) }

// DirectedEdges returns the star's edge-ends as DirectedEdges, assuming
// every entry was constructed as one (true whenever the star belongs to a
// PlanarGraph built for relate/overlay rather than a bare GeometryGraph).
func (s *EdgeEndStar) DirectedEdges() []*DirectedEdge {
	out := make([]*DirectedEdge, 0, len(s.ends))
	for _, e := range s.ends {
		if e.asDirected != nil {
			out = append(out, e.asDirected)
		}
	}
	return out
}

// NextCW returns the edge-end immediately clockwise of e within the star
// (i.e. the previous entry in CCW order), used for ring traversal.
func (s *EdgeEndStar) NextCW(e *EdgeEnd) *EdgeEnd {
	idx := s.indexOf(e)
	if idx < 0 {
		return nil
	}
	prev := idx - 1
	if prev < 0 {
		prev = len(s.ends) - 1
	}
	return s.ends[prev]
}

// NextCCW returns the edge-end immediately counter-clockwise of e.
func (s *EdgeEndStar) NextCCW(e *EdgeEnd) *EdgeEnd {
	idx := s.indexOf(e)
	if idx < 0 {
		return nil
	}
	next := (idx + 1) % len(s.ends)
	return s.ends[next]
}

func (s *EdgeEndStar) indexOf(e *EdgeEnd) int {
	for i, x := range s.ends {
		if x == e {
			return i
		}
	}
	return -1
}
