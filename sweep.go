package inlay

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ToolEntry selects from which side the cutter enters the stock. The rim of
// the cut is always at Z zero; the floor lies below it for EntryDown and
// above it for EntryUp.
type ToolEntry int

const (
	EntryDown ToolEntry = iota
	EntryUp
)

func (entry ToolEntry) sign() float64 {
	if entry == EntryUp {
		return 1.0
	}
	return -1.0
}

func (entry ToolEntry) String() string {
	if entry == EntryUp {
		return "Up"
	}
	return "Down"
}

// DefaultOverlapRatio is the fraction of a conical wall's footprint that must
// lie inside the profile region for the wall to count as leaning inward.
const DefaultOverlapRatio = 0.25

// sweeper carries the parameters of one raw sweep.
type sweeper struct {
	angle   float64 // half tool angle magnitude in degrees
	depth   float64 // depth of cut, positive
	inside  bool    // walls lean into the profile interior
	entry   ToolEntry
	ring    orb.Ring // XY projection of the profile
	overlap float64
}

// plunge returns the horizontal distance the wall travels over the full
// depth of cut.
func (s sweeper) plunge() float64 {
	return math.Tan(s.angle*math.Pi/180.0) * s.depth
}

func (s sweeper) floorZ() float64 {
	return s.entry.sign() * s.depth
}

// lineWallFace sweeps a straight profile edge into a planar wall. For a
// clockwise profile the interior lies to the right of the edge direction.
func (s sweeper) lineWallFace(e Edge) Face {
	dir := e.P1.Sub(e.P0).XY().Norm(1.0)
	var off Point
	if s.inside {
		off = dir.Rot90CW().Mul(s.plunge())
	} else {
		off = dir.Rot90CCW().Mul(s.plunge())
	}
	off.Z = s.floorZ()
	floor := Line(e.P0.Add(off), e.P1.Add(off))
	return newWallFace(PlaneSurface, e, floor)
}

// arcWallFace sweeps an arc profile edge into a conical wall, leaning toward
// the center when toCenter is true. When the plunge reaches the center first,
// the cone is clamped at its apex and the wall stops short of the full depth.
func (s sweeper) arcWallFace(e Edge, toCenter bool) Face {
	depth := s.depth
	rFloor := e.Radius + s.plunge()
	if toCenter {
		rFloor = e.Radius - s.plunge()
		if rFloor <= 0.0 {
			rFloor = 0.0
			depth = e.Radius / math.Tan(s.angle*math.Pi/180.0)
		}
	}
	center := e.Center
	center.Z = e.Center.Z + s.entry.sign()*depth
	floor := Edge{
		Kind:   ArcCurve,
		Center: center,
		Radius: rFloor,
		Axis:   e.Axis,
		A0:     e.A0,
		A1:     e.A1,
	}
	return newWallFace(ConeSurface, e, floor)
}

// wallFace builds the wall for a profile edge. For arcs the lean side is
// first guessed from the cut side and then verified against the profile
// region, rebuilding on the wrong-side guess.
func (s sweeper) wallFace(e Edge) Face {
	if e.Kind == LineCurve {
		return s.lineWallFace(e)
	}
	f := s.arcWallFace(e, s.inside)
	if s.leansInward(f) != s.inside {
		f = s.arcWallFace(e, !s.inside)
	}
	return f
}

// leansInward samples the XY footprint of a conical wall and returns true if
// more than the overlap ratio of it lies inside the profile region.
func (s sweeper) leansInward(f Face) bool {
	rim, floor := f.RimRail(), f.FloorRail()
	rMin := math.Min(rim.Radius, floor.Radius)
	rMax := math.Max(rim.Radius, floor.Radius)
	if equal(rMin, rMax) {
		rMax = rMin + Epsilon
	}
	na := int(math.Ceil(rim.Sweep() / 10.0))
	if na < 8 {
		na = 8
	}
	const nr = 5
	inside, total := 0, 0
	for i := 0; i < na; i++ {
		p := rim.PointAt((float64(i) + 0.5) / float64(na))
		dir := p.Sub(rim.Center).XY().Norm(1.0)
		for j := 0; j < nr; j++ {
			r := rMin + (float64(j)+0.5)/nr*(rMax-rMin)
			q := rim.Center.Add(dir.Mul(r))
			if planar.RingContains(s.ring, orb.Point{q.X, q.Y}) {
				inside++
			}
			total++
		}
	}
	return s.overlap < float64(inside)/float64(total)
}

// connectionFaces builds the pivot geometry at an open corner: the cutter
// rotates about the corner vertex by arcAng degrees, sweeping a cone sector
// from the floor end of the previous wall. With square corners the sector is
// replaced by two flat triangles whose outer point restores the sharp corner.
func (s sweeper) connectionFaces(apex, prevLow Point, arcAng float64, round bool) []Face {
	plunge := s.plunge()
	center := Point{apex.X, apex.Y, s.floorZ()}
	b0 := VectorToDegrees(prevLow.Sub(apex))
	ccw := s.inside
	b1 := b0 - arcAng
	if ccw {
		b1 = b0 + arcAng
	}
	base := Arc(center, plunge, b0, b1, ccw)
	if !round && arcAng < 180.0-Epsilon {
		// sharp corner: miter point on the bisector
		half := arcAng / 2.0 * math.Pi / 180.0
		bis := b0 + arcAng/2.0
		if !ccw {
			bis = b0 - arcAng/2.0
		}
		sin, cos := math.Sincos(bis * math.Pi / 180.0)
		m := center.Add(Point{cos, sin, 0.0}.Mul(plunge / math.Cos(half)))
		return []Face{
			newTriangleFace(apex, base.Start(), m),
			newTriangleFace(apex, m, base.End()),
		}
	}
	tip := Arc(apex, 0.0, base.A0, base.A1, ccw)
	return []Face{newWallFace(ConeSurface, tip, base)}
}

// lowConnectPoint returns the far vertex of a non-horizontal boundary edge of
// f that starts or ends at top.
func lowConnectPoint(f Face, top Point, tol float64) (Point, bool) {
	for _, e := range f.Edges {
		if e.Kind != LineCurve || equalTol(e.P0.Z, e.P1.Z, tol) {
			continue
		}
		if e.P0.EqualsTol(top, tol) {
			return e.P1, true
		} else if e.P1.EqualsTol(top, tol) {
			return e.P0, true
		}
	}
	return Point{}, false
}

// edgeStartBearing returns the tangent bearing at the start of the edge, in
// traversal direction.
func edgeStartBearing(e Edge) float64 {
	if e.Kind == LineCurve {
		return VectorToDegrees(e.P1.Sub(e.P0))
	}
	if e.CCW() {
		return NormalizeDegrees(e.A0 + 90.0)
	}
	return NormalizeDegrees(e.A0 - 90.0)
}

// edgeEndBearing returns the tangent bearing at the end of the edge.
func edgeEndBearing(e Edge) float64 {
	if e.Kind == LineCurve {
		return VectorToDegrees(e.P1.Sub(e.P0))
	}
	if e.CCW() {
		return NormalizeDegrees(e.A1 + 90.0)
	}
	return NormalizeDegrees(e.A1 - 90.0)
}
