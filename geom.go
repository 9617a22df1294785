package inlay

import (
	"fmt"
	"math"
)

// Epsilon is the default coincidence tolerance in millimetres. Positions
// closer than this are considered the same point.
var Epsilon = 1e-5

// PositionDigits is the rounding applied to coordinates when building
// position keys for the filter bookkeeping.
const PositionDigits = 4

func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func equalTol(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// NormalizeDegrees returns the angle a in the range [0,360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0.0 {
		a += 360.0
	}
	return a
}

// VectorToDegrees returns the bearing of the XY projection of v as an angle
// in [0,360) measured counter-clockwise from the positive X axis. The result
// is rounded to six decimals so that opposite vectors produce exactly
// complementary bearings.
func VectorToDegrees(v Point) float64 {
	a := roundTo(math.Atan2(v.Y, v.X)*180.0/math.Pi, 6)
	if a < 0.0 {
		a += 360.0
	}
	return a
}

func roundTo(f float64, digits int) float64 {
	shift := math.Pow(10.0, float64(digits))
	return math.Round(f*shift) / shift
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 3D space, used both as position and direction.
type Point struct {
	X, Y, Z float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0 && p.Z == 0.0
}

// Equals returns true if P and Q coincide within tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return p.Sub(q).Length() < Epsilon
}

// EqualsTol returns true if P and Q coincide within tolerance tol.
func (p Point) EqualsTol(q Point, tol float64) bool {
	return p.Sub(q).Length() < tol
}

// Neg negates all coordinates.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul multiplies all coordinates by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y, f * p.Z}
}

// Dot returns the dot product of P and Q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product of P and Q.
func (p Point) Cross(q Point) Point {
	return Point{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the Euclidean length of P.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Norm scales P to the given length. The zero vector stays zero.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return p.Mul(length / d)
}

// XY drops the Z coordinate.
func (p Point) XY() Point {
	return Point{p.X, p.Y, 0.0}
}

// Rot90CW rotates the XY projection of P by 90 degrees clockwise, seen from
// the positive Z axis. Z is kept.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X, p.Z}
}

// Rot90CCW rotates the XY projection of P by 90 degrees counter-clockwise.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X, p.Z}
}

// RotZ rotates P by deg degrees counter-clockwise about the vertical axis
// through p0.
func (p Point) RotZ(deg float64, p0 Point) Point {
	sin, cos := math.Sincos(deg * math.Pi / 180.0)
	x, y := p.X-p0.X, p.Y-p0.Y
	return Point{
		p0.X + cos*x - sin*y,
		p0.Y + sin*x + cos*y,
		p.Z,
	}
}

// Interpolate returns the point on PQ linearly interpolated by t, ie. t=0
// returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{
		(1.0-t)*p.X + t*q.X,
		(1.0-t)*p.Y + t*q.Y,
		(1.0-t)*p.Z + t*q.Z,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// pointKey returns a rounded textual position key so that coincident points
// compare equal as strings. Coordinates are ordered z,y,x and negative zero
// is normalized.
func pointKey(p Point, digits int) string {
	shift := math.Pow(10.0, float64(digits))
	r := func(f float64) float64 {
		f = math.Round(f*shift) / shift
		if f == 0.0 {
			return 0.0 // avoid -0.0
		}
		return f
	}
	return fmt.Sprintf("%v,%v,%v,", r(p.Z), r(p.Y), r(p.X))
}

////////////////////////////////////////////////////////////////

// Rect3 is an axis-aligned bounding box.
type Rect3 struct {
	Min, Max Point
}

// emptyRect3 is the identity for Rect3.Add.
var emptyRect3 = Rect3{
	Min: Point{math.Inf(1), math.Inf(1), math.Inf(1)},
	Max: Point{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

// IsEmpty returns true if the box contains no points.
func (r Rect3) IsEmpty() bool {
	return r.Max.X < r.Min.X
}

// AddPoint expands the box to contain p.
func (r Rect3) AddPoint(p Point) Rect3 {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Min.Z = math.Min(r.Min.Z, p.Z)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	r.Max.Z = math.Max(r.Max.Z, p.Z)
	return r
}

// Add expands the box to contain q.
func (r Rect3) Add(q Rect3) Rect3 {
	if q.IsEmpty() {
		return r
	} else if r.IsEmpty() {
		return q
	}
	return r.AddPoint(q.Min).AddPoint(q.Max)
}

func (r Rect3) String() string {
	return fmt.Sprintf("%v--%v", r.Min, r.Max)
}

// Shape is any geometric value with an axis-aligned bounding box.
type Shape interface {
	BoundBox() Rect3
}

////////////////////////////////////////////////////////////////

// intersectLineLine returns the intersection of the infinite lines through
// a0,a1 and b0,b1 in the XY plane. ok is false for (near) parallel lines.
// The Z coordinate of a0 is kept.
func intersectLineLine(a0, a1, b0, b1 Point) (Point, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.X*db.Y - da.Y*db.X
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}
	t := ((b0.X-a0.X)*db.Y - (b0.Y-a0.Y)*db.X) / denom
	q := a0.Add(da.Mul(t))
	q.Z = a0.Z
	return q, true
}

// intersectLineCircle returns the intersections of the infinite line through
// a0,a1 with the circle around c in the XY plane. Zero, one or two points are
// returned, at the Z coordinate of c.
func intersectLineCircle(a0, a1, c Point, r float64) []Point {
	d := a1.Sub(a0)
	f := a0.Sub(c)
	A := d.X*d.X + d.Y*d.Y
	B := 2.0 * (f.X*d.X + f.Y*d.Y)
	C := f.X*f.X + f.Y*f.Y - r*r
	disc := B*B - 4.0*A*C
	if A < 1e-12 || disc < 0.0 {
		return nil
	}
	sq := math.Sqrt(disc)
	ts := []float64{(-B - sq) / (2.0 * A), (-B + sq) / (2.0 * A)}
	var ps []Point
	for i, t := range ts {
		if i == 1 && disc == 0.0 {
			break
		}
		q := a0.Add(d.Mul(t))
		q.Z = c.Z
		ps = append(ps, q)
	}
	return ps
}

// intersectCircleCircle returns the intersections of two circles in the XY
// plane, at the Z coordinate of c0.
func intersectCircleCircle(c0 Point, r0 float64, c1 Point, r1 float64) []Point {
	d := c1.Sub(c0).XY().Length()
	if d < 1e-12 || d > r0+r1 || d < math.Abs(r0-r1) {
		return nil
	}
	a := (r0*r0 - r1*r1 + d*d) / (2.0 * d)
	h2 := r0*r0 - a*a
	if h2 < 0.0 {
		h2 = 0.0
	}
	h := math.Sqrt(h2)
	dir := c1.Sub(c0).XY().Norm(1.0)
	mid := c0.Add(dir.Mul(a))
	perp := dir.Rot90CCW()
	p0 := mid.Add(perp.Mul(h))
	p1 := mid.Sub(perp.Mul(h))
	p0.Z = c0.Z
	p1.Z = c0.Z
	if h == 0.0 {
		return []Point{p0}
	}
	return []Point{p0, p1}
}

// closestPoint returns the candidate nearest to p, comparing XY distance only.
func closestPoint(p Point, candidates []Point) (Point, bool) {
	if len(candidates) == 0 {
		return Point{}, false
	}
	best := candidates[0]
	bestD := best.Sub(p).XY().Length()
	for _, q := range candidates[1:] {
		if d := q.Sub(p).XY().Length(); d < bestD {
			best, bestD = q, d
		}
	}
	return best, true
}
