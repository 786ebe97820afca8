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

// Package linked implements the owned, dynamically built loop and
// polygon structures produced by boundary tracing, together with the
// multi-polygon normalizer which reconstructs the outer-loop/hole
// hierarchy from an unordered set of loops. Loops satisfy the generic
// loop capability, so every containment and winding predicate in the
// loop package applies to them unchanged.
package linked

import "github.com/abcum/fence/geom"

// Coord is a single vertex node within a linked loop.
type Coord struct {
	geom.Coordinate
	Next *Coord
}

// Loop is an owned, append-only chain of coordinate nodes, implicitly
// closed from the final node back to the first. Loops within one
// polygon are chained through Next.
type Loop struct {
	First *Coord
	Last  *Coord
	Next  *Loop
}

// Polygon owns a chain of loops, and chains onward to sibling
// polygons through Next. Before normalization a polygon holds an
// unordered mix of outer and hole loops and no siblings; afterwards
// each polygon's first loop is its outer boundary and every following
// loop is a hole immediately contained by it.
type Polygon struct {
	First *Loop
	Last  *Loop
	Next  *Polygon
}

// AddCoord appends a vertex node to the loop and returns it.
func (l *Loop) AddCoord(c geom.Coordinate) *Coord {

	node := &Coord{Coordinate: c}

	if l.First == nil {
		l.First = node
	} else {
		l.Last.Next = node
	}

	l.Last = node

	return node

}

// CountCoords returns the number of vertices in the loop.
func (l *Loop) CountCoords() int {

	count := 0

	for n := l.First; n != nil; n = n.Next {
		count++
	}

	return count

}

// Empty reports whether the loop has no vertices.
func (l *Loop) Empty() bool {
	return l == nil || l.First == nil
}

// Each visits every edge of the loop in order, wrapping from the last
// vertex back to the first, stopping early if fn returns false.
func (l *Loop) Each(fn func(a, b geom.Coordinate) bool) {

	if l.Empty() {
		return
	}

	for n := l.First; n != nil; n = n.Next {

		next := n.Next

		if next == nil {
			next = l.First
		}

		if !fn(n.Coordinate, next.Coordinate) {
			return
		}

	}

}

// AddLoop appends a new empty loop to the polygon and returns it.
func (p *Polygon) AddLoop() *Loop {
	return p.Append(&Loop{})
}

// Append links an existing loop onto the end of the polygon's loop
// list and returns it.
func (p *Polygon) Append(l *Loop) *Loop {

	if p.First == nil {
		p.First = l
	} else {
		p.Last.Next = l
	}

	p.Last = l

	return l

}

// AddPolygon chains a new sibling polygon after this one and returns
// it. The receiver must be the final polygon in its chain.
func (p *Polygon) AddPolygon() *Polygon {

	next := &Polygon{}

	p.Next = next

	return next

}

// CountLoops returns the number of loops in this polygon, not
// including sibling polygons.
func (p *Polygon) CountLoops() int {

	count := 0

	for l := p.First; l != nil; l = l.Next {
		count++
	}

	return count

}

// CountPolygons returns the number of polygons in the chain starting
// at this one.
func (p *Polygon) CountPolygons() int {

	count := 0

	for n := p; n != nil; n = n.Next {
		count++
	}

	return count

}
