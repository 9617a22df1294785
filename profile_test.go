package inlay

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestFromRing(t *testing.T) {
	r := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	w, err := FromRing(r)
	test.Error(t, err)
	test.T(t, len(w.Edges), 4)
	test.T(t, w.Closed(), true)
	test.Float(t, w.Length(), 40.0)

	_, err = FromRing(orb.Ring{{0, 0}, {1, 1}})
	test.That(t, err != nil)
	_, err = FromRing(orb.Ring{{0, 0}, {0, 0}, {0, 0}, {0, 0}})
	test.That(t, err != nil)
}

func TestPrepareProfile(t *testing.T) {
	// shuffled counter-clockwise edges at z=3
	z := 3.0
	edges := []Edge{
		Line(Point{10, 10, z}, Point{0, 10, z}),
		Line(Point{0, 0, z}, Point{10, 0, z}),
		Line(Point{0, 10, z}, Point{0, 0, z}),
		Line(Point{10, 0, z}, Point{10, 10, z}),
	}
	w, height, err := PrepareProfile(Wire{edges})
	test.Error(t, err)
	test.Float(t, height, 3.0)
	test.T(t, w.Closed(), true)
	test.T(t, w.Clockwise(), true)
	test.Float(t, w.BoundBox().Max.Z, 0.0)
	test.Float(t, w.Length(), 40.0)

	// preparing again changes nothing
	w2, height2, err := PrepareProfile(w)
	test.Error(t, err)
	test.Float(t, height2, 0.0)
	test.T(t, w2, w)
}

func TestPrepareProfileErrors(t *testing.T) {
	_, _, err := PrepareProfile(Wire{})
	test.That(t, err != nil)

	split := Wire{[]Edge{
		Line(Point{0, 0, 0}, Point{1, 0, 0}),
		Line(Point{5, 5, 0}, Point{6, 5, 0}),
	}}
	_, _, err = PrepareProfile(split)
	test.That(t, err != nil)
}

func TestPrepareProfileKeepsOpenWire(t *testing.T) {
	open := Wire{[]Edge{
		Line(Point{0, 0, 1}, Point{10, 0, 1}),
		Line(Point{10, 0, 1}, Point{10, 10, 1}),
	}}
	w, height, err := PrepareProfile(open)
	test.Error(t, err)
	test.Float(t, height, 1.0)
	test.T(t, w.Closed(), false)
	test.T(t, len(w.Edges), 2)
}
