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

// Package relate implements the DE-9IM intersection matrix and the named
// boolean predicates built on it (§4.8, §6): equals, disjoint, intersects,
// touches, crosses, within, contains, overlaps.
package relate

import "github.com/geoplanar/engine/perr"

// Dim is a DE-9IM cell value: the dimension of an intersection set, or
// DimFalse if that set is empty.
type Dim int

const (
	DimFalse Dim = -1
	Dim0     Dim = 0
	Dim1     Dim = 1
	Dim2     Dim = 2
)

func (d Dim) symbol() byte {
	if d == DimFalse {
		return 'F'
	}
	return byte('0' + d)
}

// Pos indexes one of the three positions (Interior, Boundary, Exterior) a
// geometry's point set is partitioned into.
type Pos int

const (
	PInterior Pos = iota
	PBoundary
	PExterior
)

// IntersectionMatrix is the 3x3 DE-9IM table, rows indexed by A's
// position and columns by B's.
type IntersectionMatrix struct {
	m [3][3]Dim
}

// NewIntersectionMatrix builds a matrix with every cell set to DimFalse.
func NewIntersectionMatrix() *IntersectionMatrix {
	im := &IntersectionMatrix{}
	for i := range im.m {
		for j := range im.m[i] {
			im.m[i][j] = DimFalse
		}
	}
	return im
}

// Set assigns cell (i,j) directly.
func (im *IntersectionMatrix) Set(i, j Pos, d Dim) { im.m[i][j] = d }

// SetAtLeast raises cell (i,j) to d if d exceeds its current value,
// matching the usual DE-9IM construction rule: a cell only ever records
// the highest-dimension witness found for it.
func (im *IntersectionMatrix) SetAtLeast(i, j Pos, d Dim) {
	if d > im.m[i][j] {
		im.m[i][j] = d
	}
}

// Get returns cell (i,j).
func (im *IntersectionMatrix) Get(i, j Pos) Dim { return im.m[i][j] }

// String renders the matrix as the standard 9-character DE-9IM code, row
// major: II IB IE BI BB BE EI EB EE.
func (im *IntersectionMatrix) String() string {
	var b [9]byte
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[k] = im.m[i][j].symbol()
			k++
		}
	}
	return string(b[:])
}

// Matches reports whether the matrix satisfies a 9-character DE-9IM
// pattern: each character is one of F, 0, 1, 2, T (any non-F) or * (any).
func (im *IntersectionMatrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, perr.InvalidArgument("relate pattern must be exactly 9 characters, got %q", pattern)
	}
	k := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !matchesSymbol(im.m[i][j], pattern[k]) {
				return false, nil
			}
			k++
		}
	}
	return true, nil
}

func matchesSymbol(d Dim, sym byte) bool {
	switch sym {
	case '*':
		return true
	case 'T':
		return d >= Dim0
	case 'F':
		return d == DimFalse
	case '0':
		return d == Dim0
	case '1':
		return d == Dim1
	case '2':
		return d == Dim2
	default:
		return false
	}
}

func mustMatch(im *IntersectionMatrix, pattern string) bool {
	ok, _ := im.Matches(pattern)
	return ok
}

// IsEquals implements the equals predicate (§6): both inputs have the
// same dimension, and each is entirely contained within the other's
// interior-or-boundary with no part in the other's exterior.
func (im *IntersectionMatrix) IsEquals(dimA, dimB int) bool {
	if dimA != dimB {
		return false
	}
	return mustMatch(im, "T*F**FFF*")
}

// IsDisjoint implements the disjoint predicate: A and B share no point at
// all.
func (im *IntersectionMatrix) IsDisjoint() bool {
	return mustMatch(im, "FF*FF****")
}

// IsIntersects is the negation of IsDisjoint.
func (im *IntersectionMatrix) IsIntersects() bool { return !im.IsDisjoint() }

// IsWithin implements the within predicate: A lies entirely inside B.
func (im *IntersectionMatrix) IsWithin() bool {
	return mustMatch(im, "T*F**F***")
}

// IsContains implements the contains predicate: B lies entirely inside A.
// By De Morgan it equals IsWithin with operands swapped.
func (im *IntersectionMatrix) IsContains() bool {
	return mustMatch(im, "T*****FF*")
}

// IsTouches implements the touches predicate (§6): interiors are
// disjoint, but A and B share at least one boundary point. Two points can
// never touch (they have no boundary).
func (im *IntersectionMatrix) IsTouches(dimA, dimB int) bool {
	if dimA == 0 && dimB == 0 {
		return false
	}
	if im.Get(PInterior, PInterior) != DimFalse {
		return false
	}
	return mustMatch(im, "FT*******") ||
		mustMatch(im, "F**T*****") ||
		mustMatch(im, "F***T****")
}

// IsCrosses implements the crosses predicate (§6), whose exact pattern
// depends on the relative dimension of the two inputs.
func (im *IntersectionMatrix) IsCrosses(dimA, dimB int) bool {
	switch {
	case dimA < dimB:
		return mustMatch(im, "T*T******")
	case dimA > dimB:
		return mustMatch(im, "T*****T**")
	case dimA == 1 && dimB == 1:
		return im.Get(PInterior, PInterior) == Dim0
	default:
		return false
	}
}

// IsOverlaps implements the overlaps predicate (§6): both inputs have the
// same dimension, their interiors intersect, and each has a part outside
// the other.
func (im *IntersectionMatrix) IsOverlaps(dimA, dimB int) bool {
	if dimA != dimB {
		return false
	}
	if dimA == 0 || dimA == 2 {
		return mustMatch(im, "T*T***T**")
	}
	return im.Get(PInterior, PInterior) == Dim1 && mustMatch(im, "1*T***T**")
}
