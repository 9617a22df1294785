package inlay

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestNormalizeDegrees(t *testing.T) {
	test.Float(t, NormalizeDegrees(0.0), 0.0)
	test.Float(t, NormalizeDegrees(360.0), 0.0)
	test.Float(t, NormalizeDegrees(-90.0), 270.0)
	test.Float(t, NormalizeDegrees(450.0), 90.0)
	test.Float(t, NormalizeDegrees(-360.0), 0.0)
}

func TestVectorToDegrees(t *testing.T) {
	test.Float(t, VectorToDegrees(Point{1, 0, 0}), 0.0)
	test.Float(t, VectorToDegrees(Point{0, 1, 0}), 90.0)
	test.Float(t, VectorToDegrees(Point{-1, 0, 0}), 180.0)
	test.Float(t, VectorToDegrees(Point{0, -1, 0}), 270.0)
	test.Float(t, VectorToDegrees(Point{1, 1, 5}), 45.0)

	// opposite vectors are exactly 180 apart after rounding
	v := Point{0.3121102, -0.9123344, 0.0}
	a, b := VectorToDegrees(v), VectorToDegrees(v.Neg())
	test.Float(t, math.Abs(a-b), 180.0)
}

func TestPoint(t *testing.T) {
	p := Point{3, 4, 0}
	test.T(t, p.Mul(2.0), Point{6, 8, 0})
	test.T(t, p.Neg(), Point{-3, -4, 0})
	test.T(t, p.Rot90CW(), Point{4, -3, 0})
	test.T(t, p.Rot90CCW(), Point{-4, 3, 0})
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Dot(Point{3, 0, 0}), 9.0)
	test.T(t, Point{1, 0, 0}.Cross(Point{0, 1, 0}), Point{0, 0, 1})
	test.T(t, p.Norm(10.0), Point{6, 8, 0})
	test.T(t, Point{}.Norm(1.0), Point{})
	test.T(t, Point{0, 0, 0}.Interpolate(p, 0.5), Point{1.5, 2, 0})
	test.T(t, Point{1, 2, 3}.XY(), Point{1, 2, 0})
	test.T(t, p.Equals(Point{3, 4, 1e-7}), true)
	test.T(t, p.Equals(Point{3, 4, 1}), false)
	test.String(t, p.String(), "(3,4,0)")

	q := Point{1, 0, 2}.RotZ(90.0, Point{})
	test.T(t, q.Equals(Point{0, 1, 2}), true)

	test.T(t, Point{}.IsZero(), true)
	test.T(t, p.IsZero(), false)
}

func TestPointKey(t *testing.T) {
	test.String(t, pointKey(Point{1, 2, 3}, 4), "3,2,1,")
	test.String(t, pointKey(Point{-0.00001, 0, 0}, 4), "0,0,0,")
	test.String(t, pointKey(Point{1.00004, 0, 0}, 4), "0,0,1,")
	// coincident points share keys
	test.String(t, pointKey(Point{1.99999999, 3, -4}, 4), pointKey(Point{2, 3, -4}, 4))
}

func TestRect3(t *testing.T) {
	r := emptyRect3.AddPoint(Point{1, 2, 3}).AddPoint(Point{-1, 5, 0})
	test.T(t, r.Min, Point{-1, 2, 0})
	test.T(t, r.Max, Point{1, 5, 3})
	test.T(t, emptyRect3.IsEmpty(), true)
	test.T(t, r.IsEmpty(), false)
	test.T(t, r.Add(emptyRect3), r)
	test.T(t, emptyRect3.Add(r), r)
}

func TestIntersectLineLine(t *testing.T) {
	q, ok := intersectLineLine(Point{0, 0, -2}, Point{0, 10, -2}, Point{-5, 5, -2}, Point{5, 5, -2})
	test.T(t, ok, true)
	test.T(t, q.Equals(Point{0, 5, -2}), true)

	_, ok = intersectLineLine(Point{0, 0, 0}, Point{1, 0, 0}, Point{0, 1, 0}, Point{1, 1, 0})
	test.T(t, ok, false)
}

func TestIntersectLineCircle(t *testing.T) {
	ps := intersectLineCircle(Point{-10, 0, 0}, Point{10, 0, 0}, Point{0, 0, -1}, 5.0)
	test.T(t, len(ps), 2)
	test.T(t, ps[0].Equals(Point{-5, 0, -1}), true)
	test.T(t, ps[1].Equals(Point{5, 0, -1}), true)

	test.T(t, len(intersectLineCircle(Point{-10, 6, 0}, Point{10, 6, 0}, Point{}, 5.0)), 0)
}

func TestIntersectCircleCircle(t *testing.T) {
	ps := intersectCircleCircle(Point{0, 0, -3}, 5.0, Point{8, 0, -3}, 5.0)
	test.T(t, len(ps), 2)
	for _, p := range ps {
		test.Float(t, p.X, 4.0)
		test.Float(t, math.Abs(p.Y), 3.0)
		test.Float(t, p.Z, -3.0)
	}
	// concentric
	test.T(t, len(intersectCircleCircle(Point{}, 5.0, Point{}, 3.0)), 0)
	// disjoint
	test.T(t, len(intersectCircleCircle(Point{}, 1.0, Point{10, 0, 0}, 1.0)), 0)
}

func TestClosestPoint(t *testing.T) {
	p, ok := closestPoint(Point{0, 0, 0}, []Point{{5, 0, 0}, {1, 1, -9}, {3, 3, 0}})
	test.T(t, ok, true)
	test.T(t, p, Point{1, 1, -9})

	_, ok = closestPoint(Point{}, nil)
	test.T(t, ok, false)
}
