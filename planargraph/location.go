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

// Package planargraph implements the topology graph entities of §3/§4.4:
// Label, TopologyLocation, Depth, Edge, EdgeIntersection, Node, EdgeEnd,
// DirectedEdge, EdgeRing, GeometryGraph and PlanarGraph, plus the noding
// machinery (SegmentIntersector) that builds them.
package planargraph

// Location is the topological position of a point with respect to a
// geometry: interior, boundary, exterior, or undefined (not yet known).
type Location int

const (
	// Undef means the location has not been determined.
	Undef Location = iota
	Interior
	Boundary
	Exterior
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	case Exterior:
		return "Exterior"
	default:
		return "Undef"
	}
}

// position indexes the three positions a TopologyLocation may record.
type position int

const (
	On position = iota
	Left
	Right
)

// TopologyLocation gives location values at up to three positions (ON,
// LEFT, RIGHT) around an edge, for one of the two input geometries. A
// point-like location only ever sets ON.
type TopologyLocation struct {
	loc    [3]Location
	isArea bool
}

// NewPointLocation builds a point-like (ON-only) TopologyLocation.
func NewPointLocation(on Location) TopologyLocation {
	return TopologyLocation{loc: [3]Location{on, Undef, Undef}, isArea: false}
}

// NewAreaLocation builds an area-edge TopologyLocation with all three
// positions set.
func NewAreaLocation(on, left, right Location) TopologyLocation {
	return TopologyLocation{loc: [3]Location{on, left, right}, isArea: true}
}

// NewUndefLocation builds a TopologyLocation with every position Undef,
// for an edge whose relationship to this input is not yet known.
func NewUndefLocation(isArea bool) TopologyLocation {
	return TopologyLocation{loc: [3]Location{Undef, Undef, Undef}, isArea: isArea}
}

// IsArea reports whether this location tracks LEFT/RIGHT (an area edge) or
// only ON (a line or point edge).
func (t TopologyLocation) IsArea() bool { return t.isArea }

// On returns the ON location.
func (t TopologyLocation) On() Location { return t.loc[On] }

// Left returns the LEFT location.
func (t TopologyLocation) Left() Location { return t.loc[Left] }

// Right returns the RIGHT location.
func (t TopologyLocation) Right() Location { return t.loc[Right] }

// WithOn returns a copy with ON set.
func (t TopologyLocation) WithOn(loc Location) TopologyLocation {
	t.loc[On] = loc
	return t
}

// WithLeft returns a copy with LEFT set.
func (t TopologyLocation) WithLeft(loc Location) TopologyLocation {
	t.loc[Left] = loc
	t.isArea = true
	return t
}

// WithRight returns a copy with RIGHT set.
func (t TopologyLocation) WithRight(loc Location) TopologyLocation {
	t.loc[Right] = loc
	t.isArea = true
	return t
}

// Flip swaps LEFT and RIGHT, used when an edge's direction is reversed.
func (t TopologyLocation) Flip() TopologyLocation {
	t.loc[Left], t.loc[Right] = t.loc[Right], t.loc[Left]
	return t
}

// IsNull reports whether every set position is Undef.
func (t TopologyLocation) IsNull() bool {
	if t.isArea {
		return t.loc[On] == Undef && t.loc[Left] == Undef && t.loc[Right] == Undef
	}
	return t.loc[On] == Undef
}

// IsAnyNull reports whether at least one relevant position is Undef.
func (t TopologyLocation) IsAnyNull() bool {
	if t.loc[On] == Undef {
		return true
	}
	if t.isArea && (t.loc[Left] == Undef || t.loc[Right] == Undef) {
		return true
	}
	return false
}

// Merge combines two locations for the same input, filling in Undef slots
// of t from o, used when two noded edges with identical coordinates are
// merged (§4.6 step 1).
func (t TopologyLocation) Merge(o TopologyLocation) TopologyLocation {
	result := t
	if result.loc[On] == Undef {
		result.loc[On] = o.loc[On]
	}
	if result.isArea || o.isArea {
		result.isArea = true
		if result.loc[Left] == Undef {
			result.loc[Left] = o.loc[Left]
		}
		if result.loc[Right] == Undef {
			result.loc[Right] = o.loc[Right]
		}
	}
	return result
}

// Label carries a TopologyLocation for each of the two input geometries
// (index 0 and 1), per §3.
type Label struct {
	loc [2]TopologyLocation
}

// NewLabel builds a Label where geomIndex carries loc and the other input
// is null (isArea matching loc's kind).
func NewLabel(geomIndex int, loc TopologyLocation) Label {
	var l Label
	l.loc[geomIndex] = loc
	l.loc[1-geomIndex] = NewUndefLocation(loc.IsArea())
	return l
}

// NewLabelBoth builds a Label with both inputs' locations given.
func NewLabelBoth(loc0, loc1 TopologyLocation) Label {
	return Label{loc: [2]TopologyLocation{loc0, loc1}}
}

// Get returns the TopologyLocation for geomIndex (0 or 1).
func (l Label) Get(geomIndex int) TopologyLocation { return l.loc[geomIndex] }

// Set returns a copy of l with geomIndex's location replaced.
func (l Label) Set(geomIndex int, loc TopologyLocation) Label {
	l.loc[geomIndex] = loc
	return l
}

// Flip swaps LEFT/RIGHT for both inputs, used when a DirectedEdge's sym is
// considered.
func (l Label) Flip() Label {
	l.loc[0] = l.loc[0].Flip()
	l.loc[1] = l.loc[1].Flip()
	return l
}

// IsArea reports whether either input's location is an area location.
func (l Label) IsArea() bool { return l.loc[0].IsArea() || l.loc[1].IsArea() }
