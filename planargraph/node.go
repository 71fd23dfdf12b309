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

import "github.com/geoplanar/engine/geom"

// Node is a graph vertex: a coordinate shared by one or more edges, its
// Label (location with respect to each input), and the star of edge-ends
// leaving it (§3).
type Node struct {
	Coord geom.Coordinate
	Label Label
	star  *EdgeEndStar
}

// NewNode builds an isolated Node (no edge-ends yet) at coord.
func NewNode(coord geom.Coordinate, isArea bool) *Node {
	return &Node{
		Coord: coord,
		Label: NewLabel(0, NewUndefLocation(isArea)),
		star:  newEdgeEndStar(),
	}
}

// Star returns the node's EdgeEndStar.
func (n *Node) Star() *EdgeEndStar { return n.star }

// Add inserts e into the node's star, linking e back to this node.
func (n *Node) Add(e *EdgeEnd) {
	e.node = n
	n.star.Insert(e)
}

// IsIsolated reports whether this node carries edge-ends from only one
// input geometry (§4.4's isolated-node detection, used to label nodes that
// fall inside the other geometry's interior/exterior with no edges of
// their own).
func (n *Node) IsIsolated() bool {
	return !(n.Label.Get(0).On() != Undef && n.Label.Get(1).On() != Undef)
}

// MergeLabel folds another node's (or component's) Label into this node's,
// filling in Undef slots, per §4.4 step "merge labels of coincident
// vertices."
func (n *Node) MergeLabel(other Label) {
	for g := 0; g < 2; g++ {
		if n.Label.Get(g).IsNull() {
			n.Label = n.Label.Set(g, other.Get(g))
		} else {
			n.Label = n.Label.Set(g, n.Label.Get(g).Merge(other.Get(g)))
		}
	}
}

// SetLabelOn records the ON location for geomIndex directly, e.g. when a
// Point input coincides with this node.
func (n *Node) SetLabelOn(geomIndex int, loc Location) {
	n.Label = n.Label.Set(geomIndex, n.Label.Get(geomIndex).WithOn(loc))
}

// nodeKey is the 2-D-only lookup key for NodeMap. geom.Coordinate carries
// a Z field that is NaN when absent, and NaN never compares equal to
// itself, so Coordinate cannot be used directly as a map key.
type nodeKey struct{ x, y float64 }

func keyOf(c geom.Coordinate) nodeKey { return nodeKey{c.X, c.Y} }

// NodeMap indexes Nodes by 2-D coordinate, creating them on first reference
// (§3's "nodes are created on demand as edges are inserted").
type NodeMap struct {
	nodes map[nodeKey]*Node
}

// NewNodeMap builds an empty NodeMap.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[nodeKey]*Node)}
}

// FindOrCreate returns the Node at coord, creating an isolated one if none
// exists yet.
func (m *NodeMap) FindOrCreate(coord geom.Coordinate, isArea bool) *Node {
	k := keyOf(coord)
	if n, ok := m.nodes[k]; ok {
		return n
	}
	n := NewNode(coord, isArea)
	m.nodes[k] = n
	return n
}

// Find returns the Node at coord, or nil if none has been created.
func (m *NodeMap) Find(coord geom.Coordinate) *Node {
	return m.nodes[keyOf(coord)]
}

// Add inserts e at its origin coordinate, creating the node if needed.
func (m *NodeMap) Add(e *EdgeEnd) *Node {
	n := m.FindOrCreate(e.Origin, e.Label.IsArea())
	n.Add(e)
	return n
}

// Nodes returns every node in the map, order unspecified.
func (m *NodeMap) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	return out
}

// Len returns the number of distinct nodes.
func (m *NodeMap) Len() int { return len(m.nodes) }
