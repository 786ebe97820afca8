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

// Package poly combines an outer loop with zero or more hole loops
// for composite containment and intersection queries.
package poly

import (
	"github.com/abcum/fence/bbox"
	"github.com/abcum/fence/geom"
	"github.com/abcum/fence/loop"
)

// Polygon is one outer loop plus any number of holes. The loops are
// non-owning references to caller data. Queries take the bounding
// boxes computed by Bounds so that repeated queries against the same
// polygon do not recompute them.
type Polygon struct {
	Outer loop.Simple
	Holes []loop.Simple
}

// Bounds computes the bounding boxes for the polygon: index 0 holds
// the outer loop's box, and index 1+i the box of hole i.
func (p *Polygon) Bounds() []bbox.Box {

	boxes := make([]bbox.Box, len(p.Holes)+1)

	boxes[0] = loop.Bounds(p.Outer)

	for i, hole := range p.Holes {
		boxes[i+1] = loop.Bounds(hole)
	}

	return boxes

}

// Contains reports whether a coordinate lies inside the outer loop
// and outside every hole.
func (p *Polygon) Contains(boxes []bbox.Box, c geom.Coordinate) bool {

	if !loop.Inside(p.Outer, &boxes[0], c) {
		return false
	}

	for i, hole := range p.Holes {
		if loop.Inside(hole, &boxes[i+1], c) {
			return false
		}
	}

	return true

}

// ContainsLoop reports whether an entire loop lies inside the
// polygon. Three checks are each necessary: every vertex of the loop
// must be contained; no hole vertex may lie inside the loop; and no
// edge of the loop may intersect the outer loop or any hole. Vertex
// containment alone is not enough, as an edge of a non-convex loop
// can bulge outside the boundary between two contained vertices.
func (p *Polygon) ContainsLoop(boxes []bbox.Box, l loop.Simple) bool {

	for _, c := range l {
		if !p.Contains(boxes, c) {
			return false
		}
	}

	if len(l) < 2 {
		return len(l) != 0
	}

	if len(l) > 2 && len(p.Holes) > 0 {

		box := loop.Bounds(l)

		for _, hole := range p.Holes {
			for _, c := range hole {
				if loop.Inside(l, &box, c) {
					return false
				}
			}
		}

	}

	for i := range l {

		p0 := l[i]
		p1 := l[(i+1)%len(l)]

		if loop.Intersects(p.Outer, &boxes[0], p0, p1) {
			return false
		}

		for j, hole := range p.Holes {
			if loop.Intersects(hole, &boxes[j+1], p0, p1) {
				return false
			}
		}

	}

	return true

}

// IntersectsLoop reports whether a loop overlaps the filled region of
// the polygon. Any vertex inside the outer loop and outside every
// hole overlaps immediately, as do vertices claimed by two different
// holes. If every vertex is confined to the exterior or to one single
// hole, the loop can still overlap by crossing that boundary, so its
// edges are tested against the one loop determined by the walk.
func (p *Polygon) IntersectsLoop(boxes []bbox.Box, l loop.Simple) bool {

	holeIndex := -1

	for _, c := range l {

		contains := loop.Inside(p.Outer, &boxes[0], c)

		if contains && len(p.Holes) > 0 {
			for j, hole := range p.Holes {
				if loop.Inside(hole, &boxes[j+1], c) {
					if holeIndex != -1 && holeIndex != j {
						// A previous vertex was
						// claimed by another hole.
						return true
					}
					holeIndex = j
					contains = false
					break
				}
			}
		}

		if contains {
			return true
		}

	}

	if len(l) > 1 {

		boundary := p.Outer
		box := &boxes[0]

		if holeIndex != -1 {
			boundary = p.Holes[holeIndex]
			box = &boxes[holeIndex+1]
		}

		for i := range l {
			if loop.Intersects(boundary, box, l[i], l[(i+1)%len(l)]) {
				return true
			}
		}

	}

	return false

}
