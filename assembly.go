package inlay

import (
	"fmt"
	"math"
)

// rawOptions parametrizes one raw sweep.
type rawOptions struct {
	halfAngle    float64 // degrees, magnitude is used
	depth        float64
	inside       bool
	entry        ToolEntry
	roundCorners bool
	overlap      float64
	tracer       Tracer
}

// ClockwiseWireToRawInlay sweeps the wall faces of an inlay cut along a
// clockwise profile wire. The walls lean into the profile interior. The
// returned points mark the corner vertices at which connection faces were
// made; they identify support edges in the later perimeter analysis.
func ClockwiseWireToRawInlay(w Wire, halfToolAngle, depthOfCut float64, roundCorners bool, entry ToolEntry) (*FaceSet, []Point, error) {
	return buildRaw(w, rawOptions{
		halfAngle:    halfToolAngle,
		depth:        depthOfCut,
		inside:       true,
		entry:        entry,
		roundCorners: roundCorners,
	})
}

// ClockwiseWireToRawOutlay sweeps the wall faces of an outlay cut along a
// clockwise profile wire. The walls lean away from the profile interior.
func ClockwiseWireToRawOutlay(w Wire, halfToolAngle, depthOfCut float64, roundCorners bool, entry ToolEntry) (*FaceSet, []Point, error) {
	return buildRaw(w, rawOptions{
		halfAngle:    halfToolAngle,
		depth:        depthOfCut,
		inside:       false,
		entry:        entry,
		roundCorners: roundCorners,
	})
}

// angle tolerance for tangent continuity between profile edges
const bearingEps = 1e-4

func buildRaw(w Wire, o rawOptions) (*FaceSet, []Point, error) {
	if len(w.Edges) == 0 {
		return nil, nil, fmt.Errorf("empty wire")
	}
	angle := math.Abs(o.halfAngle)
	if 90.0 <= angle {
		return nil, nil, fmt.Errorf("half tool angle %g out of range [0,90)", o.halfAngle)
	} else if o.depth <= 0.0 {
		return nil, nil, fmt.Errorf("depth of cut %g must be positive", o.depth)
	}
	if o.overlap == 0.0 {
		o.overlap = DefaultOverlapRatio
	}
	if o.tracer == nil {
		o.tracer = NopTracer
	}

	s := sweeper{
		angle:   angle,
		depth:   o.depth,
		inside:  o.inside,
		entry:   o.entry,
		ring:    w.Ring(0.01),
		overlap: o.overlap,
	}

	n := len(w.Edges)
	faces := make([]Face, n)
	for i, e := range w.Edges {
		faces[i] = s.wallFace(e)
	}

	corners := n - 1
	if w.Closed() {
		corners = n
	}

	var conns []Face
	var obtuse []Point
	for i := 0; i < corners; i++ {
		j := (i + 1) % n
		apex := w.Edges[i].End()
		angDiff := edgeStartBearing(w.Edges[j]) - edgeEndBearing(w.Edges[i])
		if equalTol(angDiff, 0.0, bearingEps) || 360.0-bearingEps < math.Abs(angDiff) {
			continue // tangent continuous
		}

		connect := 0.0 < angDiff && angDiff < 180.0 || angDiff < -180.0
		if !o.inside {
			connect = 180.0 < angDiff || -180.0 < angDiff && angDiff < 0.0
		}
		if connect {
			arcAng := NormalizeDegrees(angDiff)
			if !o.inside {
				arcAng = NormalizeDegrees(-angDiff)
			}
			prevLow, ok := lowConnectPoint(faces[i], apex, bearingEps)
			if !ok {
				o.tracer.Printf("no connect point on wall %d at %v", i, apex)
				continue
			}
			conns = append(conns, s.connectionFaces(apex, prevLow, arcAng, o.roundCorners)...)
			obtuse = append(obtuse, apex)
			continue
		}

		// walls overlap at this corner: trim both floors to their miter
		q, ok := floorIntersection(faces[i].FloorRail(), faces[j].FloorRail(), apex)
		if !ok {
			o.tracer.Printf("no miter for corner %d at %v", i, apex)
			continue
		}
		if fi := faces[i].trimFloorEnd(q); fi.FloorRail().Length() <= faces[i].FloorRail().Length()+Epsilon {
			faces[i] = fi
		}
		if fj := faces[j].trimFloorStart(q); fj.FloorRail().Length() <= faces[j].FloorRail().Length()+Epsilon {
			faces[j] = fj
		}
	}

	fs := FuseShapes(append(faces, conns...))
	o.tracer.Shape("raw", fs)
	return fs, obtuse, nil
}

// floorIntersection intersects two floor rails in the XY plane and returns
// the solution nearest to the corner vertex.
func floorIntersection(a, b Edge, near Point) (Point, bool) {
	var ps []Point
	switch {
	case a.Kind == LineCurve && b.Kind == LineCurve:
		if q, ok := intersectLineLine(a.P0, a.P1, b.P0, b.P1); ok {
			ps = []Point{q}
		}
	case a.Kind == LineCurve:
		ps = intersectLineCircle(a.P0, a.P1, b.Center, b.Radius)
	case b.Kind == LineCurve:
		ps = intersectLineCircle(b.P0, b.P1, a.Center, a.Radius)
	default:
		ps = intersectCircleCircle(a.Center, a.Radius, b.Center, b.Radius)
	}
	return closestPoint(near, ps)
}
