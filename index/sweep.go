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

package index

import "sort"

// eventType distinguishes the two event kinds the sweep processes.
type eventType int

const (
	insertEvent eventType = iota
	deleteEvent
)

type sweepEvent struct {
	x      float64
	typ    eventType
	chain  *MonotoneChain
	insIdx int // not assigned by SweepLineIntersect; always zero
}

// SweepLineIntersect is the default edge-set intersector (§4.3): an
// Insert event is emitted at each chain's min-x, a Delete event at its
// max-x; events are sorted by x (Insert before Delete on ties); the sweep
// walks events keeping the set of chains whose x-range is open, and each
// Insert pairs its chain with every chain currently in that set (pairs
// whose envelopes intersect are handed to ComputeIntersections, which
// calls fn). Only chains whose x-ranges overlap are ever paired, rather
// than the quadratic full cross product.
func SweepLineIntersect(chains []*MonotoneChain, fn SegmentIntersectorFunc) {
	n := len(chains)
	events := make([]sweepEvent, 0, 2*n)
	for _, c := range chains {
		env := c.Envelope()
		events = append(events,
			sweepEvent{x: env.MinX, typ: insertEvent, chain: c},
			sweepEvent{x: env.MaxX, typ: deleteEvent, chain: c},
		)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].x != events[j].x {
			return events[i].x < events[j].x
		}
		// Insert before Delete at equal x.
		return events[i].typ == insertEvent && events[j].typ == deleteEvent
	})

	active := make(map[*MonotoneChain]bool, n)
	for _, ev := range events {
		switch ev.typ {
		case insertEvent:
			for other := range active {
				processPair(ev.chain, other, fn)
			}
			active[ev.chain] = true
		case deleteEvent:
			delete(active, ev.chain)
		}
	}
}

func processPair(a, b *MonotoneChain, fn SegmentIntersectorFunc) {
	if a == b {
		return
	}
	if !a.Envelope().Intersects(b.Envelope()) {
		return
	}
	a.ComputeIntersections(b, fn)
}
