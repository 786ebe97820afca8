// Copyright © 2016 Abcum Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package geom defines the coordinate primitives shared by every other
// package in the kernel. Coordinates are latitude/longitude pairs in
// radians with planar semantics: the only spherical concession made in
// this library is longitude remapping around the ±π antimeridian.
package geom

import "math"

const (
	// Epsilon is the one-ULP nudge applied to a query coordinate when
	// it ties exactly with a loop vertex during ray casting. It fixes
	// the containment bias on shared boundaries: south and east edges
	// are contained, north and west edges are not.
	Epsilon = 2.220446049250313e-16

	// Coincidence is the distance threshold below which a segment
	// endpoint and a loop vertex are treated as the same point during
	// intersection testing. It is a separate knob from Epsilon, as its
	// role is a proximity threshold rather than a tie-break nudge.
	Coincidence = 2.220446049250313e-16
)

// Coordinate is a latitude/longitude pair in radians. No normalization
// is stored on the value itself; algorithms remap longitudes
// transiently when working across the antimeridian.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Vect is a planar working vector, with X holding a longitude and Y a
// latitude. The intersection classifier operates on Vect values whose
// longitudes have already been remapped.
type Vect struct {
	X float64
	Y float64
}

// Vector converts a coordinate into a planar vector, remapping the
// longitude if the surrounding computation is transmeridian.
func Vector(c Coordinate, transmeridian bool) Vect {
	return Vect{X: NormalizeLng(c.Lng, transmeridian), Y: c.Lat}
}

// Orient returns the sign of the cross product of (b-a) and (c-a): +1
// when c lies to the left of the directed line a -> b, -1 when it lies
// to the right, and 0 when the three points are collinear. No robust
// arithmetic is attempted beyond IEEE double precision.
func Orient(a, b, c Vect) int {

	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)

	if cross > 0 {
		return 1
	}

	if cross < 0 {
		return -1
	}

	return 0

}

// NormalizeLng remaps a longitude into the [0, 2π) range when the
// surrounding computation crosses the antimeridian, so that edges
// spanning the ±π discontinuity compare as contiguous values.
func NormalizeLng(lng float64, transmeridian bool) float64 {

	if transmeridian && lng < 0 {
		return lng + 2*math.Pi
	}

	return lng

}

// AlmostEqual reports whether two coordinates lie within the given
// threshold of each other on both axes.
func AlmostEqual(a, b Coordinate, threshold float64) bool {
	return math.Abs(a.Lat-b.Lat) < threshold && math.Abs(a.Lng-b.Lng) < threshold
}
