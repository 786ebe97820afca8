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
	"testing"

	"github.com/abcum/fence/bbox"
	"github.com/abcum/fence/geom"

	. "github.com/smartystreets/goconvey/convey"
)

// A cell boundary around San Francisco.
var sfVerts = Simple{
	{Lat: 0.659966917655, Lng: -2.1364398519396},
	{Lat: 0.6595011102219, Lng: -2.1359434279405},
	{Lat: 0.6583348114025, Lng: -2.1354884206045},
	{Lat: 0.6581220034068, Lng: -2.1382437718946},
	{Lat: 0.6594479998527, Lng: -2.1384597563896},
	{Lat: 0.6599990002976, Lng: -2.1376771158464},
}

func TestInside(t *testing.T) {

	box := Bounds(sfVerts)

	Convey("Loop contains a point inside it", t, func() {
		So(Inside(sfVerts, &box, geom.Coordinate{Lat: 0.659, Lng: -2.136}), ShouldBeTrue)
	})

	Convey("Loop does not contain a point somewhere else", t, func() {
		So(Inside(sfVerts, &box, geom.Coordinate{Lat: 1, Lng: 2}), ShouldBeFalse)
	})

	Convey("Exact vertices are biased consistently", t, func() {
		So(Inside(sfVerts, &box, sfVerts[0]), ShouldBeFalse)
		So(Inside(sfVerts, &box, sfVerts[3]), ShouldBeTrue)
	})

}

func TestInsideCorners(t *testing.T) {

	square := Simple{
		{Lat: 0, Lng: 0},
		{Lat: 1, Lng: 0},
		{Lat: 1, Lng: 1},
		{Lat: 0, Lng: 1},
	}

	box := Bounds(square)

	// Ties on the boundary bias north and west towards exclusion,
	// so of the four corners only the southeast one is contained.

	Convey("Southwest corner is not contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 0, Lng: 0}), ShouldBeFalse)
	})

	Convey("Northwest corner is not contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 1, Lng: 0}), ShouldBeFalse)
	})

	Convey("Northeast corner is not contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 1, Lng: 1}), ShouldBeFalse)
	})

	Convey("Southeast corner is contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 0, Lng: 1}), ShouldBeTrue)
	})

}

func TestInsideEdges(t *testing.T) {

	square := Simple{
		{Lat: 0, Lng: 0},
		{Lat: 1, Lng: 0},
		{Lat: 1, Lng: 1},
		{Lat: 0, Lng: 1},
	}

	box := Bounds(square)

	Convey("West edge is not contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 0.5, Lng: 0}), ShouldBeFalse)
	})

	Convey("North edge is not contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 1, Lng: 0.5}), ShouldBeFalse)
	})

	Convey("East edge is contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 0.5, Lng: 1}), ShouldBeTrue)
	})

	Convey("South edge is contained", t, func() {
		So(Inside(square, &box, geom.Coordinate{Lat: 0, Lng: 0.5}), ShouldBeTrue)
	})

}

func TestInsideVertexLng(t *testing.T) {

	// An interior point sharing its longitude with the apex vertex
	// exercises the longitude tie-break nudge on its own.

	triangle := Simple{
		{Lat: 0, Lng: 0},
		{Lat: 1, Lng: 0.5},
		{Lat: 0, Lng: 1},
	}

	box := Bounds(triangle)

	Convey("Loop contains an inside point matching a vertex longitude", t, func() {
		So(Inside(triangle, &box, geom.Coordinate{Lat: 0.5, Lng: 0.5}), ShouldBeTrue)
	})

}

func TestInsideTransmeridian(t *testing.T) {

	wrapped := Simple{
		{Lat: 0.01, Lng: -math.Pi + 0.01},
		{Lat: 0.01, Lng: math.Pi - 0.01},
		{Lat: -0.01, Lng: math.Pi - 0.01},
		{Lat: -0.01, Lng: -math.Pi + 0.01},
	}

	box := Bounds(wrapped)

	Convey("Bounding box wraps the antimeridian", t, func() {
		So(box.Transmeridian(), ShouldBeTrue)
	})

	Convey("Loop contains points on both sides of the antimeridian", t, func() {
		So(Inside(wrapped, &box, geom.Coordinate{Lat: 0.001, Lng: math.Pi - 0.001}), ShouldBeTrue)
		So(Inside(wrapped, &box, geom.Coordinate{Lat: 0.001, Lng: -math.Pi + 0.001}), ShouldBeTrue)
	})

	Convey("Loop does not contain points further out on either side", t, func() {
		So(Inside(wrapped, &box, geom.Coordinate{Lat: 0.001, Lng: math.Pi - 0.1}), ShouldBeFalse)
		So(Inside(wrapped, &box, geom.Coordinate{Lat: 0.001, Lng: -math.Pi + 0.1}), ShouldBeFalse)
	})

}

func TestIntersects(t *testing.T) {

	box := Bounds(sfVerts)

	inside1 := geom.Coordinate{Lat: 0.659, Lng: -2.136}
	inside2 := geom.Coordinate{Lat: 0.659, Lng: -2.138}
	outside1 := geom.Coordinate{Lat: 0.661, Lng: -2.139}
	outside2 := geom.Coordinate{Lat: 0.660, Lng: -2.135}

	Convey("Segment from inside to outside intersects", t, func() {
		So(Intersects(sfVerts, &box, inside1, outside1), ShouldBeTrue)
	})

	Convey("Segment between two inside points does not intersect", t, func() {
		So(Intersects(sfVerts, &box, inside1, inside2), ShouldBeFalse)
	})

	Convey("Segment between two outside points does not intersect", t, func() {
		So(Intersects(sfVerts, &box, outside1, outside2), ShouldBeFalse)
	})

	Convey("Segment with an endpoint matching a loop vertex intersects", t, func() {
		So(Intersects(sfVerts, &box, sfVerts[0], outside2), ShouldBeTrue)
	})

}

func TestIntersectsEdgeTouch(t *testing.T) {

	triangle := Simple{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
	}

	box := Bounds(triangle)

	onEdge := geom.Coordinate{Lat: 0.5, Lng: 0.5}
	collinear := geom.Coordinate{Lat: 1.01, Lng: 1.01}
	outside := geom.Coordinate{Lat: 1, Lng: 0}

	Convey("Segment touching a loop edge intersects", t, func() {
		So(Intersects(triangle, &box, onEdge, outside), ShouldBeTrue)
	})

	Convey("Segment endpoint collinear with an edge but out of range does not intersect", t, func() {
		So(Intersects(triangle, &box, collinear, outside), ShouldBeFalse)
	})

}

func TestIntersectsVertexTouch(t *testing.T) {

	triangle := Simple{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
	}

	box := Bounds(triangle)

	Convey("Segment passing through a loop vertex intersects", t, func() {
		p0 := geom.Coordinate{Lat: 1.5, Lng: 0.5}
		p1 := geom.Coordinate{Lat: 0.5, Lng: 1.5}
		So(Intersects(triangle, &box, p0, p1), ShouldBeTrue)
	})

	Convey("Loop vertex collinear with the segment but out of range does not intersect", t, func() {
		p0 := geom.Coordinate{Lat: 1.5, Lng: 0.5}
		p1 := geom.Coordinate{Lat: 2, Lng: 0}
		So(Intersects(triangle, &box, p0, p1), ShouldBeFalse)
	})

}

func TestIntersectsEmpty(t *testing.T) {

	empty := Simple{}

	box := Bounds(empty)

	Convey("No segment intersects an empty loop", t, func() {
		p0 := geom.Coordinate{Lat: 0, Lng: 0}
		p1 := geom.Coordinate{Lat: 1, Lng: 1}
		So(Intersects(empty, &box, p0, p1), ShouldBeFalse)
	})

}

func TestBounds(t *testing.T) {

	verts := Simple{
		{Lat: 0.8, Lng: 0.3},
		{Lat: 0.7, Lng: 0.6},
		{Lat: 1.1, Lng: 0.7},
		{Lat: 1.0, Lng: 0.2},
	}

	Convey("Bounds of a plain loop are the min/max extents", t, func() {
		So(Bounds(verts), ShouldResemble, bbox.Box{North: 1.1, South: 0.7, East: 0.7, West: 0.2})
	})

}

func TestBoundsTransmeridian(t *testing.T) {

	verts := Simple{
		{Lat: 0.1, Lng: -math.Pi + 0.1},
		{Lat: 0.1, Lng: math.Pi - 0.1},
		{Lat: 0.05, Lng: math.Pi - 0.2},
		{Lat: -0.1, Lng: math.Pi - 0.1},
		{Lat: -0.1, Lng: -math.Pi + 0.1},
		{Lat: -0.05, Lng: -math.Pi + 0.2},
	}

	Convey("Bounds of a transmeridian loop wrap east under west", t, func() {
		box := Bounds(verts)
		So(box, ShouldResemble, bbox.Box{North: 0.1, South: -0.1, East: -math.Pi + 0.2, West: math.Pi - 0.2})
		So(box.Transmeridian(), ShouldBeTrue)
	})

}

func TestBoundsEmpty(t *testing.T) {

	Convey("Bounds of an empty loop is the zero box", t, func() {
		So(Bounds(Simple{}), ShouldResemble, bbox.Box{})
	})

}

func TestClockwise(t *testing.T) {

	Convey("A clockwise loop is detected", t, func() {
		cw := Simple{
			{Lat: 0, Lng: 0},
			{Lat: 0.1, Lng: 0.1},
			{Lat: 0, Lng: 0.1},
		}
		So(Clockwise(cw), ShouldBeTrue)
	})

	Convey("A counter-clockwise loop is detected", t, func() {
		ccw := Simple{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 0.4},
			{Lat: 0.4, Lng: 0.4},
			{Lat: 0.4, Lng: 0},
		}
		So(Clockwise(ccw), ShouldBeFalse)
	})

}

func TestClockwiseTransmeridian(t *testing.T) {

	Convey("A clockwise transmeridian loop is detected", t, func() {
		cw := Simple{
			{Lat: 0.4, Lng: math.Pi - 0.1},
			{Lat: 0.4, Lng: -math.Pi + 0.1},
			{Lat: -0.4, Lng: -math.Pi + 0.1},
			{Lat: -0.4, Lng: math.Pi - 0.1},
		}
		So(Clockwise(cw), ShouldBeTrue)
	})

	Convey("A counter-clockwise transmeridian loop is detected", t, func() {
		ccw := Simple{
			{Lat: 0.4, Lng: math.Pi - 0.1},
			{Lat: -0.4, Lng: math.Pi - 0.1},
			{Lat: -0.4, Lng: -math.Pi + 0.1},
			{Lat: 0.4, Lng: -math.Pi + 0.1},
		}
		So(Clockwise(ccw), ShouldBeFalse)
	})

}
