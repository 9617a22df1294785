package inlay

import (
	"fmt"

	"github.com/paulmach/orb"
)

// FromRing converts a closed XY ring into a profile wire of line edges. The
// duplicated closing point of the ring is dropped.
func FromRing(r orb.Ring) (Wire, error) {
	if len(r) < 3 {
		return Wire{}, fmt.Errorf("ring has %d points, need at least 3", len(r))
	}
	ps := []orb.Point(r)
	if ps[0] == ps[len(ps)-1] {
		ps = ps[:len(ps)-1]
	}
	var edges []Edge
	for i := range ps {
		j := (i + 1) % len(ps)
		p0 := Point{ps[i][0], ps[i][1], 0.0}
		p1 := Point{ps[j][0], ps[j][1], 0.0}
		if p0.Equals(p1) {
			continue
		}
		edges = append(edges, Line(p0, p1))
	}
	if len(edges) < 2 {
		return Wire{}, fmt.Errorf("ring collapses to %d edges", len(edges))
	}
	return Wire{edges}, nil
}

// flattenEdge projects an edge onto the Z zero plane.
func flattenEdge(e Edge) Edge {
	if e.Kind == LineCurve {
		e.P0.Z = 0.0
		e.P1.Z = 0.0
		return e
	}
	e.Center.Z = 0.0
	return e
}

// PrepareProfile readies an arbitrary profile wire for the sweep: edges are
// chained head to tail, projected onto the Z zero plane, colinear runs are
// merged and the wire is oriented clockwise. The returned height is the
// original Z of the profile.
func PrepareProfile(w Wire) (Wire, float64, error) {
	if len(w.Edges) == 0 {
		return Wire{}, 0.0, fmt.Errorf("empty wire")
	}
	height := w.BoundBox().Min.Z

	edges := make([]Edge, len(w.Edges))
	for i, e := range w.Edges {
		edges[i] = flattenEdge(e)
	}
	wires := chainEdges(edges, Epsilon)
	if len(wires) != 1 {
		return Wire{}, 0.0, fmt.Errorf("profile splits into %d wires", len(wires))
	}
	prof := wires[0].Refine()
	if prof.Closed() && !prof.Clockwise() {
		prof = prof.Flip()
	}
	return prof, height, nil
}
