package inlay

import (
	"testing"

	"github.com/tdewolff/test"
)

func testSweeper(w Wire, inside bool, entry ToolEntry) sweeper {
	return sweeper{
		angle:   45.0,
		depth:   2.0,
		inside:  inside,
		entry:   entry,
		ring:    w.Ring(0.01),
		overlap: DefaultOverlapRatio,
	}
}

func TestPlunge(t *testing.T) {
	s := testSweeper(squareCW(), true, EntryDown)
	test.Float(t, s.plunge(), 2.0)
	test.Float(t, s.floorZ(), -2.0)

	s.entry = EntryUp
	test.Float(t, s.floorZ(), 2.0)
}

func TestLineWallFace(t *testing.T) {
	w := squareCW()
	s := testSweeper(w, true, EntryDown)

	// west edge of the clockwise square: interior lies east
	f := s.lineWallFace(w.Edges[0])
	test.T(t, f.Kind, PlaneSurface)
	test.T(t, f.RimRail(), w.Edges[0])
	floor := f.FloorRail()
	test.T(t, floor.Start().Equals(Point{2, 0, -2}), true)
	test.T(t, floor.End().Equals(Point{2, 10, -2}), true)
	test.T(t, len(f.Edges), 4)

	// outside lean goes west
	s.inside = false
	floor = s.lineWallFace(w.Edges[0]).FloorRail()
	test.T(t, floor.Start().Equals(Point{-2, 0, -2}), true)
}

func TestArcWallFace(t *testing.T) {
	w := Wire{[]Edge{Circle(Point{0, 0, 0}, 5.0, false)}}
	s := testSweeper(w, true, EntryDown)

	f := s.arcWallFace(w.Edges[0], true)
	test.T(t, f.Kind, ConeSurface)
	test.Float(t, f.FloorRail().Radius, 3.0)
	test.Float(t, f.FloorRail().Center.Z, -2.0)
	test.T(t, len(f.Edges), 2) // full circles carry no side edges

	f = s.arcWallFace(w.Edges[0], false)
	test.Float(t, f.FloorRail().Radius, 7.0)
}

func TestArcWallFaceClamped(t *testing.T) {
	w := Wire{[]Edge{Circle(Point{0, 0, 0}, 5.0, false)}}
	s := testSweeper(w, true, EntryDown)
	s.depth = 10.0 // plunge 10 exceeds the radius

	f := s.arcWallFace(w.Edges[0], true)
	test.Float(t, f.FloorRail().Radius, 0.0)
	test.Float(t, f.FloorRail().Center.Z, -5.0)
}

func TestWallFaceSideResolution(t *testing.T) {
	w := Wire{[]Edge{Circle(Point{0, 0, 0}, 5.0, false)}}

	s := testSweeper(w, true, EntryDown)
	test.Float(t, s.wallFace(w.Edges[0]).FloorRail().Radius, 3.0)

	s = testSweeper(w, false, EntryDown)
	test.Float(t, s.wallFace(w.Edges[0]).FloorRail().Radius, 7.0)
}

func TestLeansInward(t *testing.T) {
	w := Wire{[]Edge{Circle(Point{0, 0, 0}, 5.0, false)}}
	s := testSweeper(w, true, EntryDown)
	test.T(t, s.leansInward(s.arcWallFace(w.Edges[0], true)), true)
	test.T(t, s.leansInward(s.arcWallFace(w.Edges[0], false)), false)
}

func TestConnectionFacesRound(t *testing.T) {
	w := squareCW()
	s := testSweeper(w, false, EntryDown)

	// outside corner at (0,10): pivot from the west wall floor to the north
	apex := Point{0, 10, 0}
	prevLow := Point{-2, 10, -2}
	fs := s.connectionFaces(apex, prevLow, 90.0, true)
	test.T(t, len(fs), 1)
	f := fs[0]
	test.T(t, f.Kind, ConeSurface)
	base := f.FloorRail()
	test.Float(t, base.Radius, 2.0)
	test.T(t, base.Start().Equals(Point{-2, 10, -2}), true)
	test.T(t, base.End().Equals(Point{0, 12, -2}), true)
	test.T(t, base.CCW(), false) // outside pivots clockwise
	test.Float(t, f.RimRail().Radius, 0.0)
	test.T(t, f.RimRail().Start().Equals(apex), true)
}

func TestConnectionFacesSquare(t *testing.T) {
	w := squareCW()
	s := testSweeper(w, false, EntryDown)

	apex := Point{0, 10, 0}
	fs := s.connectionFaces(apex, Point{-2, 10, -2}, 90.0, false)
	test.T(t, len(fs), 2)
	for _, f := range fs {
		test.T(t, f.Kind, PlaneSurface)
		test.T(t, len(f.Edges), 3)
	}
	// the miter point restores the sharp corner at (-2,12)
	m := Point{-2, 12, -2}
	found := false
	for _, v := range fs[0].Vertices() {
		if v.Equals(m) {
			found = true
		}
	}
	test.That(t, found)
}

func TestLowConnectPoint(t *testing.T) {
	w := squareCW()
	s := testSweeper(w, true, EntryDown)
	f := s.lineWallFace(w.Edges[0])

	p, ok := lowConnectPoint(f, Point{0, 10, 0}, 1e-4)
	test.T(t, ok, true)
	test.T(t, p.Equals(Point{2, 10, -2}), true)

	_, ok = lowConnectPoint(f, Point{5, 5, 0}, 1e-4)
	test.T(t, ok, false)
}

func TestConnectionPivotDirectionInside(t *testing.T) {
	// convex corner of an inside cut pivots counter-clockwise
	w := Wire{[]Edge{
		Line(Point{-5, 0, 0}, Point{0, 0, 0}),
		Line(Point{0, 0, 0}, Point{0, 5, 0}),
	}}
	s := testSweeper(w, true, EntryDown)
	fs := s.connectionFaces(Point{0, 0, 0}, Point{0, -2, -2}, 90.0, true)
	base := fs[0].FloorRail()
	test.T(t, base.CCW(), true)
	test.T(t, base.End().Equals(Point{2, 0, -2}), true)
}
