package inlay

import (
	"fmt"
	"sort"
	"strings"
)

// SurfaceKind discriminates the two surface types the pipeline produces.
type SurfaceKind int

const (
	PlaneSurface SurfaceKind = iota
	ConeSurface
)

func (kind SurfaceKind) String() string {
	if kind == PlaneSurface {
		return "Plane"
	}
	return "Cone"
}

// Face is a ruled surface patch between two rails: the rim rail at the top of
// the cut and the floor rail at full depth. Either rail may be degenerate
// (zero length), collapsing the patch to a triangle or cone tip. The boundary
// edges include the non-degenerate rails and the straight side edges between
// their end points.
type Face struct {
	Kind  SurfaceKind
	Edges []Edge

	rimRail, floorRail Edge
}

// newWallFace builds the patch between the rim and floor rails. Both rails
// run in sweep direction. Zero-length edges are left out of the boundary.
func newWallFace(kind SurfaceKind, rim, floor Edge) Face {
	f := Face{Kind: kind, rimRail: rim, floorRail: floor}
	add := func(e Edge) {
		if Epsilon < e.Length() {
			f.Edges = append(f.Edges, e)
		}
	}
	add(rim)
	if rim.Kind == ArcCurve && rim.IsFullCircle() {
		add(floor)
		return f
	}
	add(Line(rim.End(), floor.End()))
	add(FlipEdge(floor))
	add(Line(floor.Start(), rim.Start()))
	return f
}

// newTriangleFace builds a planar triangle from three corner points.
func newTriangleFace(a, b, c Point) Face {
	return Face{
		Kind:      PlaneSurface,
		Edges:     []Edge{Line(a, b), Line(b, c), Line(c, a)},
		rimRail:   Line(a, a),
		floorRail: Line(b, c),
	}
}

// RimRail returns the rail at the top of the cut, in sweep direction.
func (f Face) RimRail() Edge {
	return f.rimRail
}

// FloorRail returns the rail at full depth, in sweep direction.
func (f Face) FloorRail() Edge {
	return f.floorRail
}

// Vertices returns the distinct corner vertices of the face.
func (f Face) Vertices() []Point {
	var vs []Point
	for _, e := range f.Edges {
		for _, v := range e.Vertices() {
			found := false
			for _, u := range vs {
				if u.Equals(v) {
					found = true
					break
				}
			}
			if !found {
				vs = append(vs, v)
			}
		}
	}
	return vs
}

// BoundBox returns the axis-aligned bounding box of the face boundary.
func (f Face) BoundBox() Rect3 {
	r := emptyRect3
	for _, e := range f.Edges {
		r = r.Add(e.BoundBox())
	}
	r = r.Add(f.rimRail.BoundBox())
	r = r.Add(f.floorRail.BoundBox())
	return r
}

// Translate moves the face by v.
func (f Face) Translate(v Point) Face {
	edges := make([]Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = e.Translate(v)
	}
	return Face{
		Kind:      f.Kind,
		Edges:     edges,
		rimRail:   f.rimRail.Translate(v),
		floorRail: f.floorRail.Translate(v),
	}
}

// trimFloorEnd shortens the floor rail so that it ends at q, rebuilding the
// side edges. The rim rail is kept. Used to resolve wall overlap at convex
// corners.
func (f Face) trimFloorEnd(q Point) Face {
	floor := f.floorRail
	if floor.Kind == LineCurve {
		floor.P1 = q
	} else {
		floor.A1 = VectorToDegrees(q.Sub(floor.Center))
	}
	return newWallFace(f.Kind, f.rimRail, floor)
}

// trimFloorStart shortens the floor rail so that it starts at q.
func (f Face) trimFloorStart(q Point) Face {
	floor := f.floorRail
	if floor.Kind == LineCurve {
		floor.P0 = q
	} else {
		floor.A0 = VectorToDegrees(q.Sub(floor.Center))
	}
	return newWallFace(f.Kind, f.rimRail, floor)
}

// faceKey returns a textual key identifying the face by its boundary, so that
// coincident faces compare equal.
func faceKey(f Face, digits int) string {
	keys := make([]string, len(f.Edges))
	for i, e := range f.Edges {
		keys[i] = edgeKey(e, digits)
	}
	sort.Strings(keys)
	return strings.Join(keys, ";")
}

func (f Face) String() string {
	return fmt.Sprintf("%v(%d edges)", f.Kind, len(f.Edges))
}
