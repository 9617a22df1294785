package inlay

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// Wire is an ordered sequence of edges, connected head to tail.
type Wire struct {
	Edges []Edge
}

// Closed returns true if the wire ends where it starts. Empty wires are not
// closed.
func (w Wire) Closed() bool {
	if len(w.Edges) == 0 {
		return false
	}
	if len(w.Edges) == 1 && w.Edges[0].IsFullCircle() {
		return true
	}
	return w.Edges[0].Start().Equals(w.Edges[len(w.Edges)-1].End())
}

// Length returns the total arc length of the wire.
func (w Wire) Length() float64 {
	d := 0.0
	for _, e := range w.Edges {
		d += e.Length()
	}
	return d
}

// BoundBox returns the axis-aligned bounding box of the wire.
func (w Wire) BoundBox() Rect3 {
	r := emptyRect3
	for _, e := range w.Edges {
		r = r.Add(e.BoundBox())
	}
	return r
}

// Translate moves the wire by v.
func (w Wire) Translate(v Point) Wire {
	edges := make([]Edge, len(w.Edges))
	for i, e := range w.Edges {
		edges[i] = e.Translate(v)
	}
	return Wire{edges}
}

// Flip reverses the wire: edge order and each edge's orientation.
func (w Wire) Flip() Wire {
	edges := make([]Edge, len(w.Edges))
	for i, e := range w.Edges {
		edges[len(w.Edges)-1-i] = FlipEdge(e)
	}
	return Wire{edges}
}

// Vertices returns the distinct corner vertices of the wire in order.
func (w Wire) Vertices() []Point {
	var vs []Point
	for _, e := range w.Edges {
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

// LowestVertex returns the vertex with the smallest Z coordinate.
func (w Wire) LowestVertex() Point {
	low := Point{0.0, 0.0, math.Inf(1)}
	for _, v := range w.Vertices() {
		if v.Z < low.Z {
			low = v
		}
	}
	return low
}

// Polyline samples the wire into a flat point chain. Arcs are subdivided so
// that the chord deviation stays below deflection.
func (w Wire) Polyline(deflection float64) []Point {
	var ps []Point
	for _, e := range w.Edges {
		n := 1
		if e.Kind == ArcCurve {
			// chord deviation below deflection
			step := 2.0 * math.Acos(math.Max(-1.0, 1.0-deflection/math.Max(e.Radius, Epsilon)))
			if step <= 0.0 {
				step = math.Pi / 18.0
			}
			n = int(math.Ceil(e.Sweep() * math.Pi / 180.0 / step))
			if n < 4 {
				n = 4
			}
		}
		if len(ps) == 0 {
			ps = append(ps, e.Start())
		}
		for i := 1; i <= n; i++ {
			ps = append(ps, e.PointAt(float64(i)/float64(n)))
		}
	}
	return ps
}

// Ring projects the wire onto the XY plane as a closed ring, resampling arcs.
func (w Wire) Ring(deflection float64) orb.Ring {
	ps := w.Polyline(deflection)
	ring := make(orb.Ring, 0, len(ps)+1)
	for _, p := range ps {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if 0 < len(ring) && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// Clockwise returns true if a closed wire winds clockwise seen from the
// positive Z axis.
func (w Wire) Clockwise() bool {
	return w.Ring(0.01).Orientation() == orb.CW
}

// Refine merges consecutive edges that continue the same curve: colinear line
// segments and arcs on the same circle in the same direction.
func (w Wire) Refine() Wire {
	var edges []Edge
	for _, e := range w.Edges {
		if len(edges) == 0 {
			edges = append(edges, e)
			continue
		}
		prev := &edges[len(edges)-1]
		if !prev.End().Equals(e.Start()) {
			edges = append(edges, e)
			continue
		}
		if prev.Kind == LineCurve && e.Kind == LineCurve {
			d0 := prev.P1.Sub(prev.P0).Norm(1.0)
			d1 := e.P1.Sub(e.P0).Norm(1.0)
			if d0.Sub(d1).Length() < Epsilon {
				prev.P1 = e.P1
				continue
			}
		} else if prev.Kind == ArcCurve && e.Kind == ArcCurve &&
			prev.Center.Equals(e.Center) && equal(prev.Radius, e.Radius) &&
			prev.CCW() == e.CCW() && prev.Sweep()+e.Sweep() < 360.0+Epsilon {
			prev.A1 = e.A1
			continue
		}
		edges = append(edges, e)
	}
	return Wire{edges}
}

func (w Wire) String() string {
	sb := strings.Builder{}
	sb.WriteString("Wire[")
	for i, e := range w.Edges {
		if 0 < i {
			sb.WriteString(" ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString("]")
	return sb.String()
}

////////////////////////////////////////////////////////////////

// chainEdges sorts loose edges into connected wires. Edges are flipped as
// needed so that each wire runs head to tail. Edges that connect to no chain
// start a new wire.
func chainEdges(edges []Edge, tol float64) []Wire {
	var wires []Wire
	used := make([]bool, len(edges))
	for seed := range edges {
		if used[seed] {
			continue
		}
		used[seed] = true
		chain := []Edge{edges[seed]}
		for {
			extended := false
			head := chain[0].Start()
			tail := chain[len(chain)-1].End()
			if head.EqualsTol(tail, tol) && 1 < len(chain) {
				break // closed
			}
			for i, e := range edges {
				if used[i] {
					continue
				}
				if e.Start().EqualsTol(tail, tol) {
					chain = append(chain, e)
				} else if e.End().EqualsTol(tail, tol) {
					chain = append(chain, FlipEdge(e))
				} else if e.End().EqualsTol(head, tol) {
					chain = append([]Edge{e}, chain...)
				} else if e.Start().EqualsTol(head, tol) {
					chain = append([]Edge{FlipEdge(e)}, chain...)
				} else {
					continue
				}
				used[i] = true
				extended = true
				break
			}
			if !extended {
				break
			}
		}
		wires = append(wires, Wire{chain})
	}
	return wires
}
