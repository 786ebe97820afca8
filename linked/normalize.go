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

package linked

import (
	"errors"

	"github.com/abcum/fence/bbox"
	"github.com/abcum/fence/log"
	"github.com/abcum/fence/loop"
)

// ErrNormalize is returned when a multi-polygon structure can not be
// normalized: the input has sibling polygons already, contains no
// outer loop, or contains a hole which no outer loop encloses.
var ErrNormalize = errors.New("Unable to normalize multi-polygon structure")

// Normalize rearranges the loops of a polygon whose loop list is an
// unordered mix of outer and hole loops, so that each polygon's first
// loop is its unique outer boundary followed by the holes it
// immediately contains, with disjoint outer shapes split into sibling
// polygons. A hole contained by several nested outer loops is
// assigned to the one with the smallest bounding box, its immediate
// container.
//
// Only loop and sibling links are reassigned: no coordinate or loop
// node is copied or allocated, and ownership of every node stays with
// the structure. On failure the input is left unmodified.
func Normalize(p *Polygon) error {

	// Normalization needs a flat input, with all loops staged on
	// one single polygon.

	if p.Next != nil {
		return ErrNormalize
	}

	var outers []*Loop
	var holes []*Loop

	for l := p.First; l != nil; l = l.Next {
		if loop.Clockwise(l) {
			holes = append(holes, l)
		} else {
			outers = append(outers, l)
		}
	}

	if len(outers) == 0 {
		return ErrNormalize
	}

	if log.IsDebug() {
		log.WithPrefix("fence").Debugf("normalize: %d outer loops, %d holes", len(outers), len(holes))
	}

	boxes := make([]bbox.Box, len(outers))

	for i, outer := range outers {
		boxes[i] = loop.Bounds(outer)
	}

	// Resolve every hole to its immediate container before any
	// link is touched, so that a failed call leaves the staged
	// structure intact.

	assigned := make([]int, len(holes))

	for i, hole := range holes {

		assigned[i] = assign(hole, outers, boxes)

		if assigned[i] == -1 {
			return ErrNormalize
		}

	}

	// The first outer loop reuses the input polygon as its home,
	// and every further outer loop becomes a new sibling.

	polygons := make([]*Polygon, len(outers))

	p.First, p.Last, p.Next = nil, nil, nil

	polygons[0] = p

	for i := 1; i < len(outers); i++ {
		polygons[i] = polygons[i-1].AddPolygon()
	}

	for i, outer := range outers {
		outer.Next = nil
		polygons[i].Append(outer)
	}

	for i, hole := range holes {
		hole.Next = nil
		polygons[assigned[i]].Append(hole)
	}

	return nil

}

// assign finds the outer loop which immediately contains a hole,
// testing one representative vertex against every candidate, and
// returning the index of the smallest-area match, or -1 if no outer
// loop contains the hole.
func assign(hole *Loop, outers []*Loop, boxes []bbox.Box) int {

	found := -1

	area := 0.0

	if hole.Empty() {
		return found
	}

	vertex := hole.First.Coordinate

	for i, outer := range outers {

		if !boxes[i].Contains(vertex) {
			continue
		}

		if !loop.Inside(outer, &boxes[i], vertex) {
			continue
		}

		if found == -1 || boxes[i].Area() < area {
			found = i
			area = boxes[i].Area()
		}

	}

	return found

}
