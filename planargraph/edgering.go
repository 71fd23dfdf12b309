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
	"github.com/geoplanar/engine/geom"
	"github.com/geoplanar/engine/perr"
)

// EdgeRing is a cyclic list of DirectedEdges forming a closed ring (§3): it
// carries the ring's coordinate sequence, a Label, hole/shell
// classification, an optional pointer to the shell it is a hole of, and
// its own list of holes. A MinimalEdgeRing is an EdgeRing built so that
// every node along it has out-degree <=2 (the OGC-compatible form
// produced by splitting a maximal edge ring at its high-degree nodes).
type EdgeRing struct {
	starts []*DirectedEdge
	coords []geom.Coordinate
	Label  Label
	isHole bool
	shell  *EdgeRing
	holes  []*EdgeRing
}

// BuildEdgeRing walks the ring starting at start, following Next links
// (DirectedEdge.Next), until it returns to start, marking each directed
// edge's Ring field along the way. It returns a TopologyException if the
// chain does not close, signalling a failed result-ring linkage (§4.7's
// "if linking cannot pair every incoming with an outgoing, raise a
// topology error").
func BuildEdgeRing(start *DirectedEdge) (*EdgeRing, error) {
	ring := &EdgeRing{}
	de := start
	for {
		if de == nil {
			return nil, perr.NewTopologyException("edge ring did not close: nil next link")
		}
		ring.starts = append(ring.starts, de)
		de.Ring = ring
		de = de.Next
		if de == start {
			break
		}
		if len(ring.starts) > maxRingSteps {
			return nil, perr.NewTopologyException("edge ring did not close within bound")
		}
	}
	ring.computeCoordinates()
	ring.computeLabel()
	ring.isHole = !isCW(ring.coords)
	return ring, nil
}

// maxRingSteps bounds ring traversal against a malformed Next chain that
// never returns to its start, turning an infinite loop into a
// TopologyException.
const maxRingSteps = 1 << 20

// DirectedEdges returns the ring's directed edges in traversal order.
func (r *EdgeRing) DirectedEdges() []*DirectedEdge { return r.starts }

// Coordinates returns the ring's closed coordinate sequence.
func (r *EdgeRing) Coordinates() []geom.Coordinate { return r.coords }

func (r *EdgeRing) computeCoordinates() {
	var coords []geom.Coordinate
	for _, de := range r.starts {
		e := de.Edge
		n := e.NumPoints()
		if de.IsForward {
			for i := 0; i < n-1; i++ {
				coords = append(coords, e.Coordinate(i))
			}
		} else {
			for i := n - 1; i > 0; i-- {
				coords = append(coords, e.Coordinate(i))
			}
		}
	}
	if len(coords) > 0 && !coords[0].Equals2D(coords[len(coords)-1]) {
		coords = append(coords, coords[0])
	}
	r.coords = coords
}

func (r *EdgeRing) computeLabel() {
	var lbl Label
	for _, de := range r.starts {
		lbl = lbl.Set(0, lbl.Get(0).Merge(de.Label.Get(0)))
		lbl = lbl.Set(1, lbl.Get(1).Merge(de.Label.Get(1)))
	}
	r.Label = lbl
}

// IsHole reports whether this ring's coordinate sequence winds CCW (a
// hole) rather than CW (a shell), per §3's orientation convention for
// result rings: shells are clockwise, holes counter-clockwise.
func (r *EdgeRing) IsHole() bool { return r.isHole }

// Shell returns the shell ring this ring is a hole of, or nil if this
// ring is itself a shell (or not yet assigned).
func (r *EdgeRing) Shell() *EdgeRing { return r.shell }

// SetShell records that this ring is a hole of shell.
func (r *EdgeRing) SetShell(shell *EdgeRing) { r.shell = shell }

// Holes returns the holes assigned to this (shell) ring.
func (r *EdgeRing) Holes() []*EdgeRing { return r.holes }

// AddHole appends hole to this ring's hole list and sets hole's shell
// back-reference.
func (r *EdgeRing) AddHole(hole *EdgeRing) {
	hole.shell = r
	r.holes = append(r.holes, hole)
}

// Envelope returns the ring's bounding box, used for the shell/hole
// bounding-box containment pre-check of §4.7.
func (r *EdgeRing) Envelope() geom.Envelope {
	env := geom.NewEmptyEnvelope()
	for _, c := range r.coords {
		env.ExpandToInclude(c)
	}
	return env
}

// ContainsPoint reports whether pt lies inside this ring via a plain
// ray-cast (§4.9's simple point-in-ring), used while attaching
// unassigned holes to their enclosing shell. The locate package provides
// the accelerated variants used elsewhere; this ring-local copy avoids a
// dependency from planargraph on the higher-level locate package.
func (r *EdgeRing) ContainsPoint(pt geom.Coordinate) bool {
	env := r.Envelope()
	if !env.ContainsCoordinate(pt) {
		return false
	}
	return pointInRing(pt, r.coords)
}

// pointInRing is the standard even-odd horizontal-ray crossing count
// against a closed ring (§4.9's "simple ray-cast").
func pointInRing(pt geom.Coordinate, ring []geom.Coordinate) bool {
	inside := false
	n := len(ring)
	if n == 0 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// isCW reports whether a closed coordinate sequence winds clockwise,
// using the shoelace signed-area test (negative area = CW under a
// standard right-handed, y-up plane).
func isCW(coords []geom.Coordinate) bool {
	return signedArea(coords) < 0
}

func signedArea(coords []geom.Coordinate) float64 {
	n := len(coords)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		sum += coords[i].X*coords[i+1].Y - coords[i+1].X*coords[i].Y
	}
	sum += coords[n-1].X*coords[0].Y - coords[0].X*coords[n-1].Y
	return sum / 2
}
