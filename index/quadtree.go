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

import "github.com/geoplanar/engine/geom"

// defaultMinExtent is the minimum extent a zero-area box is grown to
// before insertion, so recursion on point items terminates (§4.3).
const defaultMinExtent = 1e-10

// quadItem is one leaf entry of the Quadtree.
type quadItem struct {
	env   geom.Envelope
	value any
}

type quadNode struct {
	env      geom.Envelope
	items    []quadItem
	children [4]*quadNode // SW, SE, NW, NE
}

// Quadtree is a dynamic spatial index used when items are added
// incrementally (§4.3). Unlike the STR-tree it supports Insert after
// Query.
type Quadtree struct {
	root      *quadNode
	minExtent float64
}

// NewQuadtree builds an empty Quadtree covering the whole plane lazily;
// the root envelope grows to fit the first inserted item and its children
// subdivide from there.
func NewQuadtree() *Quadtree {
	return &Quadtree{minExtent: defaultMinExtent}
}

// Insert adds value with bounding box env. Zero-extent boxes are grown to
// the tree's minimum extent first.
func (q *Quadtree) Insert(env geom.Envelope, value any) {
	env = ensureExtent(env, q.minExtent)
	if q.root == nil {
		q.root = &quadNode{env: env}
	} else {
		q.root.env.ExpandToIncludeEnvelope(env)
	}
	insertInto(q.root, env, value, q.minExtent, 0)
}

// maxDepth bounds recursion for degenerate/clustered inputs.
const maxDepth = 32

func insertInto(n *quadNode, env geom.Envelope, value any, minExtent float64, depth int) {
	if depth >= maxDepth || n.env.Width() <= minExtent*2 || n.env.Height() <= minExtent*2 {
		n.items = append(n.items, quadItem{env: env, value: value})
		return
	}
	cx := (n.env.MinX + n.env.MaxX) / 2
	cy := (n.env.MinY + n.env.MaxY) / 2

	// If env straddles the center on either axis, it must live at this
	// node (its box crosses the centre, per §4.3).
	if env.MinX < cx && env.MaxX > cx || env.MinY < cy && env.MaxY > cy {
		n.items = append(n.items, quadItem{env: env, value: value})
		return
	}

	quadrant := 0
	var childEnv geom.Envelope
	switch {
	case env.MaxX <= cx && env.MaxY <= cy:
		quadrant = 0
		childEnv = geom.NewEnvelope(geom.NewCoordinate(n.env.MinX, n.env.MinY), geom.NewCoordinate(cx, cy))
	case env.MinX >= cx && env.MaxY <= cy:
		quadrant = 1
		childEnv = geom.NewEnvelope(geom.NewCoordinate(cx, n.env.MinY), geom.NewCoordinate(n.env.MaxX, cy))
	case env.MaxX <= cx && env.MinY >= cy:
		quadrant = 2
		childEnv = geom.NewEnvelope(geom.NewCoordinate(n.env.MinX, cy), geom.NewCoordinate(cx, n.env.MaxY))
	default:
		quadrant = 3
		childEnv = geom.NewEnvelope(geom.NewCoordinate(cx, cy), geom.NewCoordinate(n.env.MaxX, n.env.MaxY))
	}

	if n.children[quadrant] == nil {
		n.children[quadrant] = &quadNode{env: childEnv}
	}
	// A child created before the root grew may not cover env; grow it so
	// queryNode's envelope pruning never skips an item below it.
	n.children[quadrant].env.ExpandToIncludeEnvelope(env)
	insertInto(n.children[quadrant], env, value, minExtent, depth+1)
}

func ensureExtent(env geom.Envelope, minExtent float64) geom.Envelope {
	if env.Width() >= minExtent && env.Height() >= minExtent {
		return env
	}
	cx := (env.MinX + env.MaxX) / 2
	cy := (env.MinY + env.MaxY) / 2
	half := minExtent / 2
	return geom.NewEnvelope(
		geom.NewCoordinate(cx-half, cy-half),
		geom.NewCoordinate(cx+half, cy+half),
	)
}

// Query returns every value whose bounding box intersects env.
func (q *Quadtree) Query(env geom.Envelope) []any {
	var out []any
	if q.root == nil {
		return out
	}
	queryNode(q.root, env, &out)
	return out
}

func queryNode(n *quadNode, env geom.Envelope, out *[]any) {
	if n == nil || !n.env.Intersects(env) {
		return
	}
	for _, it := range n.items {
		if it.env.Intersects(env) {
			*out = append(*out, it.value)
		}
	}
	for _, c := range n.children {
		queryNode(c, env, out)
	}
}
