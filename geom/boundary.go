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

package geom

// Boundary computes the OGC SFS boundary of any geometry: a type switch
// dispatching to each variant's GetBoundary, the visitor-style pattern
// §9's design notes call for in place of the source's virtual dispatch.
func Boundary(g Geometry) Geometry {
	switch v := g.(type) {
	case *Point:
		return v.Factory().CreateMultiPoint(nil)
	case *LineString:
		return v.GetBoundary()
	case *LinearRing:
		return v.Factory().CreateMultiPoint(nil)
	case *Polygon:
		return v.GetBoundary()
	case *MultiPoint:
		return v.GetBoundary()
	case *MultiLineString:
		return v.GetBoundary()
	case *MultiPolygon:
		return v.GetBoundary()
	case *GeometryCollection:
		return v.Factory().CreateGeometryCollectionOrPanic(nil)
	default:
		return nil
	}
}

// CreateGeometryCollectionOrPanic is a convenience used only where an empty
// collection is always valid (no nil elements, so construction cannot
// fail).
func (f *GeometryFactory) CreateGeometryCollectionOrPanic(children []Geometry) *GeometryCollection {
	gc, err := f.CreateGeometryCollection(children)
	if err != nil {
		panic(err)
	}
	return gc
}
