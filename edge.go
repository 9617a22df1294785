package inlay

import (
	"fmt"
	"math"
)

// CurveKind discriminates the two curve types the pipeline produces.
type CurveKind int

const (
	LineCurve CurveKind = iota
	ArcCurve
)

func (kind CurveKind) String() string {
	if kind == LineCurve {
		return "Line"
	}
	return "Arc"
}

// Edge is a bounded curve in 3D space, either a straight line segment or a
// horizontal circular arc. Edges are values and freely copyable.
//
// Arc angles A0 and A1 are absolute bearings in degrees in the XY plane. The
// arc runs from A0 to A1 going counter-clockwise (seen from the positive Z
// axis) when Axis.Z is positive, and clockwise when negative. A0 == A1
// denotes a full circle.
type Edge struct {
	Kind   CurveKind
	P0, P1 Point // line end points

	Center Point
	Radius float64
	Axis   Point
	A0, A1 float64
}

// Line returns the line segment from p0 to p1.
func Line(p0, p1 Point) Edge {
	return Edge{Kind: LineCurve, P0: p0, P1: p1}
}

// Arc returns the horizontal arc around center with the given radius, running
// from bearing a0 to bearing a1. The arc goes counter-clockwise when ccw is
// true, otherwise clockwise. Equal bearings yield a full circle.
func Arc(center Point, radius, a0, a1 float64, ccw bool) Edge {
	axis := Point{0.0, 0.0, 1.0}
	if !ccw {
		axis.Z = -1.0
	}
	return Edge{
		Kind:   ArcCurve,
		Center: center,
		Radius: radius,
		Axis:   axis,
		A0:     NormalizeDegrees(a0),
		A1:     NormalizeDegrees(a1),
	}
}

// Circle returns the full horizontal circle around center.
func Circle(center Point, radius float64, ccw bool) Edge {
	return Arc(center, radius, 0.0, 0.0, ccw)
}

// CCW returns true if an arc edge runs counter-clockwise seen from above.
func (e Edge) CCW() bool {
	return 0.0 < e.Axis.Z
}

// Sweep returns the swept angle of an arc edge in degrees, in (0,360].
func (e Edge) Sweep() float64 {
	var d float64
	if e.CCW() {
		d = NormalizeDegrees(e.A1 - e.A0)
	} else {
		d = NormalizeDegrees(e.A0 - e.A1)
	}
	if d == 0.0 {
		d = 360.0
	}
	return d
}

// IsFullCircle returns true if an arc edge closes on itself.
func (e Edge) IsFullCircle() bool {
	return e.Kind == ArcCurve && Epsilon < e.Radius && e.Start().Equals(e.End())
}

func (e Edge) pointAtBearing(b float64) Point {
	sin, cos := math.Sincos(b * math.Pi / 180.0)
	return Point{e.Center.X + e.Radius*cos, e.Center.Y + e.Radius*sin, e.Center.Z}
}

// Start returns the first vertex of the edge.
func (e Edge) Start() Point {
	if e.Kind == LineCurve {
		return e.P0
	}
	return e.pointAtBearing(e.A0)
}

// End returns the last vertex of the edge.
func (e Edge) End() Point {
	if e.Kind == LineCurve {
		return e.P1
	}
	return e.pointAtBearing(e.A1)
}

// Vertices returns the distinct end vertices of the edge. Full circles have a
// single vertex.
func (e Edge) Vertices() []Point {
	if e.Kind == ArcCurve && e.IsFullCircle() {
		return []Point{e.Start()}
	}
	return []Point{e.Start(), e.End()}
}

// Length returns the arc length of the edge.
func (e Edge) Length() float64 {
	if e.Kind == LineCurve {
		return e.P1.Sub(e.P0).Length()
	}
	return 2.0 * math.Pi * e.Radius * e.Sweep() / 360.0
}

// PointAt returns the point at parameter t in [0,1] along the edge, scanning
// from Start to End.
func (e Edge) PointAt(t float64) Point {
	if e.Kind == LineCurve {
		return e.P0.Interpolate(e.P1, t)
	}
	b := e.A0 + e.Sweep()*t
	if !e.CCW() {
		b = e.A0 - e.Sweep()*t
	}
	return e.pointAtBearing(b)
}

// ValueAtEdgeLength returns the point at the given distance from the start of
// the edge, scanning proportionally along its length.
func ValueAtEdgeLength(e Edge, length float64) Point {
	total := e.Length()
	if equal(total, 0.0) {
		return e.Start()
	}
	return e.PointAt(length / total)
}

// Midpoint returns the point halfway along the edge.
func (e Edge) Midpoint() Point {
	return e.PointAt(0.5)
}

// FlipEdge returns the edge with reversed orientation: start and end swap
// while the point set stays the same. Flipping twice restores the original.
func FlipEdge(e Edge) Edge {
	if e.Kind == LineCurve {
		e.P0, e.P1 = e.P1, e.P0
		return e
	}
	e.A0, e.A1 = e.A1, e.A0
	e.Axis = e.Axis.Neg()
	return e
}

// Translate moves the edge by v.
func (e Edge) Translate(v Point) Edge {
	if e.Kind == LineCurve {
		e.P0 = e.P0.Add(v)
		e.P1 = e.P1.Add(v)
		return e
	}
	e.Center = e.Center.Add(v)
	return e
}

// BoundBox returns the axis-aligned bounding box of the edge. For arcs the
// cardinal bearings inside the sweep contribute the extremes.
func (e Edge) BoundBox() Rect3 {
	r := emptyRect3.AddPoint(e.Start()).AddPoint(e.End())
	if e.Kind == ArcCurve {
		sweep := e.Sweep()
		for k := 0; k < 4; k++ {
			b := float64(k) * 90.0
			var d float64
			if e.CCW() {
				d = NormalizeDegrees(b - e.A0)
			} else {
				d = NormalizeDegrees(e.A0 - b)
			}
			if d <= sweep || e.IsFullCircle() {
				r = r.AddPoint(e.pointAtBearing(b))
			}
		}
	}
	return r
}

// ContainsBearing returns true if bearing b lies within the sweep of an arc
// edge.
func (e Edge) ContainsBearing(b float64) bool {
	if e.IsFullCircle() {
		return true
	}
	var d float64
	if e.CCW() {
		d = NormalizeDegrees(b - e.A0)
	} else {
		d = NormalizeDegrees(e.A0 - b)
	}
	return d <= e.Sweep()+Epsilon || 360.0-Epsilon <= d
}

// sameEdge returns true if both edges describe the same curve, in either
// orientation.
func sameEdge(a, b Edge) bool {
	if a.Kind != b.Kind || !equal(a.Length(), b.Length()) {
		return false
	}
	if !a.Midpoint().Equals(b.Midpoint()) {
		return false
	}
	return a.Start().Equals(b.Start()) && a.End().Equals(b.End()) ||
		a.Start().Equals(b.End()) && a.End().Equals(b.Start())
}

// edgeKey returns a textual key identifying the edge by its midpoint and
// length, so that coincident edges of any orientation compare equal.
func edgeKey(e Edge, digits int) string {
	return fmt.Sprintf("%s%v,", pointKey(e.Midpoint(), digits), roundTo(e.Length(), digits))
}

func (e Edge) String() string {
	if e.Kind == LineCurve {
		return fmt.Sprintf("L%v%v", e.P0, e.P1)
	}
	dir := "ccw"
	if !e.CCW() {
		dir = "cw"
	}
	return fmt.Sprintf("A%v r=%g %g..%g %s", e.Center, e.Radius, e.A0, e.A1, dir)
}
