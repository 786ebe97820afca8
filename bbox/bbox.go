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

// Package bbox implements axis-aligned geographic bounding boxes in
// radians, with support for boxes spanning the ±π antimeridian.
package bbox

import (
	"math"

	"github.com/abcum/fence/geom"
)

// Box is an axis-aligned bounding box. North is always greater than or
// equal to South. A box with East less than West crosses the
// antimeridian, and its longitude range wraps around ±π.
type Box struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Transmeridian reports whether the box crosses the antimeridian.
func (b *Box) Transmeridian() bool {
	return b.East < b.West
}

// Contains reports whether the coordinate falls within the box,
// accounting for a wrapped longitude range on transmeridian boxes.
func (b *Box) Contains(c geom.Coordinate) bool {

	if c.Lat < b.South || c.Lat > b.North {
		return false
	}

	if b.Transmeridian() {
		return c.Lng >= b.West || c.Lng <= b.East
	}

	return c.Lng >= b.West && c.Lng <= b.East

}

// Width returns the longitude span of the box in radians.
func (b *Box) Width() float64 {

	if b.Transmeridian() {
		return b.East - b.West + 2*math.Pi
	}

	return b.East - b.West

}

// Height returns the latitude span of the box in radians.
func (b *Box) Height() float64 {
	return b.North - b.South
}

// Area returns the planar area of the box in square radians. The
// normalizer compares hole candidates by this value to select the
// immediate enclosing outer loop.
func (b *Box) Area() float64 {
	return b.Width() * b.Height()
}

// Equals reports whether two boxes are exactly equal.
func (b *Box) Equals(o *Box) bool {
	return b.North == o.North && b.South == o.South && b.East == o.East && b.West == o.West
}
