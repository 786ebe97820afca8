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

// Package loop implements the generic algorithms which operate over
// closed loops of coordinates. The algorithms are written once against
// the Looper capability, so that both the array-backed representation
// in this package and the linked representation in the linked package
// share identical containment, intersection, bounding and winding
// logic.
package loop

import "github.com/abcum/fence/geom"

// Looper is the capability required by the generic loop algorithms:
// an emptiness check, and iteration over every consecutive edge pair,
// wrapping from the final vertex back to the first. Each must stop
// early if the callback returns false.
type Looper interface {
	Empty() bool
	Each(fn func(a, b geom.Coordinate) bool)
}

// Simple is an ordered, array-backed loop of coordinates. The loop is
// implicitly closed: an edge joins the final vertex to the first. The
// vertex order determines the winding: counter-clockwise loops are
// outer boundaries, clockwise loops are holes.
type Simple []geom.Coordinate

// Empty reports whether the loop has no vertices.
func (l Simple) Empty() bool {
	return len(l) == 0
}

// Each visits every edge of the loop in order, wrapping from the last
// vertex back to the first, stopping early if fn returns false.
func (l Simple) Each(fn func(a, b geom.Coordinate) bool) {

	for i := range l {
		if !fn(l[i], l[(i+1)%len(l)]) {
			return
		}
	}

}
