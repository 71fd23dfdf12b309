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

const nullDepth = -1

// Depth is a per-geometry, per-side integer count used while labelling
// area overlays (§3): how many times each side is inside that input.
type Depth struct {
	depth [2][3]int // [geomIndex][On|Left|Right]
}

// NewDepth builds a Depth with every cell unset (nullDepth).
func NewDepth() *Depth {
	d := &Depth{}
	for g := 0; g < 2; g++ {
		for p := 0; p < 3; p++ {
			d.depth[g][p] = nullDepth
		}
	}
	return d
}

// GetDepth returns the depth for geomIndex at position pos (On/Left/Right).
func (d *Depth) GetDepth(geomIndex int, pos position) int { return d.depth[geomIndex][pos] }

// SetDepth sets the depth for geomIndex at position pos.
func (d *Depth) SetDepth(geomIndex int, pos position, depthVal int) {
	d.depth[geomIndex][pos] = depthVal
}

// IsNull reports whether no depth has been recorded for geomIndex.
func (d *Depth) IsNull(geomIndex int) bool {
	for p := 0; p < 3; p++ {
		if d.depth[geomIndex][p] != nullDepth {
			return false
		}
	}
	return true
}

// GetLocation derives a Location from a depth count: >0 is Interior, 0 is
// Exterior, unset is Undef.
func (d *Depth) GetLocation(geomIndex int, pos position) Location {
	v := d.depth[geomIndex][pos]
	if v <= 0 {
		if v == nullDepth {
			return Undef
		}
		return Exterior
	}
	return Interior
}

// Add increments the depth at (geomIndex, pos) by delta, treating an unset
// cell as starting at 0.
func (d *Depth) Add(geomIndex int, pos position, delta int) {
	if d.depth[geomIndex][pos] == nullDepth {
		d.depth[geomIndex][pos] = 0
	}
	d.depth[geomIndex][pos] += delta
}

// Normalize subtracts the smaller of each geometry's Left and Right depths
// from its set cells, so that minimum becomes 0 (§4.6 step 5); a geometry
// whose smaller side depth is negative or unset is left unchanged.
func (d *Depth) Normalize() {
	for g := 0; g < 2; g++ {
		min := d.depth[g][Left]
		if d.depth[g][Right] < min {
			min = d.depth[g][Right]
		}
		if min == nullDepth {
			continue
		}
		if min < 0 {
			min = 0
		}
		for _, p := range []position{On, Left, Right} {
			if d.depth[g][p] != nullDepth {
				d.depth[g][p] -= min
			}
		}
	}
}

// DepthDelta returns the signed area-side change when crossing the edge
// for geomIndex: right depth minus left depth, the quantity stored on an
// Edge as depthDelta (§3).
func (d *Depth) DepthDelta(geomIndex int) int {
	return d.depth[geomIndex][Right] - d.depth[geomIndex][Left]
}
