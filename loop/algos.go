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

package loop

import (
	"math"

	"github.com/abcum/fence/bbox"
	"github.com/abcum/fence/geom"
)

// Bounds computes the bounding box of a loop. An empty loop yields the
// zero box. Any edge whose endpoints differ by more than π of
// longitude marks the loop as crossing the antimeridian, in which case
// the box wraps: east takes the maximum negative longitude seen and
// west the minimum positive one. Loops containing a pole, or edges
// genuinely spanning more than 180° of longitude, are not supported.
func Bounds(l Looper) (box bbox.Box) {

	if l.Empty() {
		return box
	}

	box.North = -math.MaxFloat64
	box.South = math.MaxFloat64
	box.East = -math.MaxFloat64
	box.West = math.MaxFloat64

	minPosLng := math.MaxFloat64
	maxNegLng := -math.MaxFloat64

	trans := false

	l.Each(func(a, b geom.Coordinate) bool {

		if a.Lat < box.South {
			box.South = a.Lat
		}
		if a.Lat > box.North {
			box.North = a.Lat
		}
		if a.Lng < box.West {
			box.West = a.Lng
		}
		if a.Lng > box.East {
			box.East = a.Lng
		}

		if a.Lng > 0 && a.Lng < minPosLng {
			minPosLng = a.Lng
		}
		if a.Lng < 0 && a.Lng > maxNegLng {
			maxNegLng = a.Lng
		}

		if math.Abs(a.Lng-b.Lng) > math.Pi {
			trans = true
		}

		return true

	})

	if trans {
		box.East = maxNegLng
		box.West = minPosLng
	}

	return box

}

// Inside reports whether a coordinate is contained within a loop,
// using a longitudinal ray-cast parity test. Ties with loop vertices
// are broken by nudging the query point one unit of least precision,
// which biases containment towards south and east boundaries and away
// from north and west ones. A point exactly at the north pole can
// never be reported as contained.
func Inside(l Looper, box *bbox.Box, c geom.Coordinate) bool {

	if !box.Contains(c) {
		return false
	}

	trans := box.Transmeridian()

	contains := false

	lat := c.Lat
	lng := geom.NormalizeLng(c.Lng, trans)

	l.Each(func(a, b geom.Coordinate) bool {

		// The ray cast needs the second vertex to be the
		// northern one, so swap if needed.

		if a.Lat > b.Lat {
			a, b = b, a
		}

		// If the latitude matches a vertex exactly the ray
		// would be counted once for each of the two edges
		// sharing it, so nudge the query point northward. The
		// adjustment is kept for the remaining edges.

		if lat == a.Lat || lat == b.Lat {
			lat += geom.Epsilon
		}

		if lat < a.Lat || lat > b.Lat {
			return true
		}

		aLng := geom.NormalizeLng(a.Lng, trans)
		bLng := geom.NormalizeLng(b.Lng, trans)

		// Ties on longitude bias westerly, so that of two
		// polygons sharing an edge exactly one contains it.

		if aLng == lng || bLng == lng {
			lng -= geom.Epsilon
		}

		// Interpolate the longitude at which the edge crosses
		// the query latitude, and toggle parity if that
		// crossing lies east of the query point.

		ratio := (lat - a.Lat) / (b.Lat - a.Lat)

		test := geom.NormalizeLng(aLng+(bLng-aLng)*ratio, trans)

		if test > lng {
			contains = !contains
		}

		return true

	})

	return contains

}

// Intersects reports whether the segment from p0 to p1 crosses or
// touches any edge of the loop. Endpoints coinciding with loop
// vertices, collinear overlaps within range, and true crossings all
// count as intersections.
func Intersects(l Looper, box *bbox.Box, p0, p1 geom.Coordinate) bool {

	if l.Empty() {
		return false
	}

	// Discard segments which cannot possibly reach the loop.

	if (p0.Lat > box.North && p1.Lat > box.North) ||
		(p0.Lng > box.East && p1.Lng > box.East) ||
		(p0.Lat < box.South && p1.Lat < box.South) ||
		(p0.Lng < box.West && p1.Lng < box.West) {
		return false
	}

	trans := box.Transmeridian() || math.Abs(p0.Lng-p1.Lng) > math.Pi

	v0 := geom.Vector(p0, trans)
	v1 := geom.Vector(p1, trans)

	xmin := math.Min(v0.X, v1.X)
	xmax := math.Max(v0.X, v1.X)
	ymin := math.Min(v0.Y, v1.Y)
	ymax := math.Max(v0.Y, v1.Y)

	found := false

	oa, ob := 0, 0

	reused := false

	l.Each(func(a, b geom.Coordinate) bool {

		va := geom.Vector(a, trans)
		vb := geom.Vector(b, trans)

		xminAb := math.Min(va.X, vb.X)
		xmaxAb := math.Max(va.X, vb.X)
		yminAb := math.Min(va.Y, vb.Y)
		ymaxAb := math.Max(va.Y, vb.Y)

		// Skip edges whose bounds cannot overlap the segment.
		// Any carried orientation is stale after a skip.

		if xmax < xminAb || xmaxAb < xmin || ymax < yminAb || ymaxAb < ymin {
			reused = false
			return true
		}

		// An endpoint which coincides with a loop vertex is a
		// touching intersection.

		if geom.AlmostEqual(p0, a, geom.Coincidence) || geom.AlmostEqual(p0, b, geom.Coincidence) {
			found = true
			return false
		}

		if geom.AlmostEqual(p1, a, geom.Coincidence) || geom.AlmostEqual(p1, b, geom.Coincidence) {
			found = true
			return false
		}

		// Classify the loop vertices against the segment. A
		// collinear vertex within the segment bounds touches.
		// When edges are processed consecutively the previous
		// edge's second vertex is reused as this edge's first.

		if !reused {
			oa = geom.Orient(v0, v1, va)
			if oa == 0 && xmin <= va.X && va.X <= xmax && ymin <= va.Y && va.Y <= ymax {
				found = true
				return false
			}
		}

		ob = geom.Orient(v0, v1, vb)
		if ob == 0 && xmin <= vb.X && vb.X <= xmax && ymin <= vb.Y && vb.Y <= ymax {
			found = true
			return false
		}

		// Classify the segment endpoints against the edge.

		o0 := geom.Orient(va, vb, v0)
		if o0 == 0 && xminAb <= v0.X && v0.X <= xmaxAb && yminAb <= v0.Y && v0.Y <= ymaxAb {
			found = true
			return false
		}

		o1 := geom.Orient(va, vb, v1)
		if o1 == 0 && xminAb <= v1.X && v1.X <= xmaxAb && yminAb <= v1.Y && v1.Y <= ymaxAb {
			found = true
			return false
		}

		// Opposite orientations on both sides is a crossing.

		if oa*ob == -1 && o0*o1 == -1 {
			found = true
			return false
		}

		oa = ob
		reused = true

		return true

	})

	return found

}

// Clockwise reports whether the vertex order of a loop winds
// clockwise. Clockwise loops are holes, counter-clockwise loops are
// outer boundaries. The signed area is computed in two passes: a first
// pass detects any edge spanning more than π of longitude, and if one
// is found the summation is redone with longitudes remapped around the
// antimeridian.
func Clockwise(l Looper) bool {

	sum, ok := winding(l, false)

	if !ok {
		sum, _ = winding(l, true)
	}

	return sum > 0

}

// winding accumulates the signed area sum of a loop. When not yet
// remapping, it aborts on the first edge spanning more than π of
// longitude, reporting that a remapped pass is required.
func winding(l Looper, trans bool) (sum float64, ok bool) {

	ok = true

	l.Each(func(a, b geom.Coordinate) bool {

		if !trans && math.Abs(a.Lng-b.Lng) > math.Pi {
			ok = false
			return false
		}

		sum += (geom.NormalizeLng(b.Lng, trans) - geom.NormalizeLng(a.Lng, trans)) * (b.Lat + a.Lat)

		return true

	})

	return

}
