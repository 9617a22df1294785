package inlay

import (
	"sort"
)

// WireType selects which perimeter of the filtered cut to extract.
type WireType int

const (
	WireNone WireType = iota
	WireInlay
	WireBottom
	WireMidline
	WireTop
)

func (wt WireType) String() string {
	switch wt {
	case WireInlay:
		return "Inlay"
	case WireBottom:
		return "Bottom"
	case WireMidline:
		return "Midline"
	case WireTop:
		return "Top"
	}
	return "None"
}

// analEdge is one classified boundary edge of a face.
type analEdge struct {
	edge Edge
	face int
}

// faceBuckets is the per-face outcome of faceAnalysis. cats holds one letter
// per non-trash edge: L for a line, C for an arc, uppercase when the whole
// edge lies at rim height. catEdges aligns with cats.
type faceBuckets struct {
	rim, support, other, bottom []analEdge
	cats                        string
	catEdges                    []Edge
}

// faceAnalysis sorts the boundary edges of a face into rim, bottom, support
// and other groups. Zero-length edges and support edges touching an obtuse
// corner point are trashed.
func faceAnalysis(f Face, fi int, zRim, zBottom float64, obtusePoints []Point) faceBuckets {
	var b faceBuckets
	for _, e := range f.Edges {
		letter := byte('L')
		if e.Kind == ArcCurve {
			letter = 'C'
		}
		bb := e.BoundBox()
		horizontal := equal(bb.Min.Z, bb.Max.Z)
		switch {
		case e.Length() < 1e-7:
			// trash
			continue
		case horizontal && equal(bb.Max.Z, zRim):
			b.rim = append(b.rim, analEdge{e, fi})
			b.cats += string(letter)
			b.catEdges = append(b.catEdges, e)
			continue
		case horizontal && equal(bb.Max.Z, zBottom):
			b.bottom = append(b.bottom, analEdge{e, fi})
		case equal(bb.Max.Z, zRim) || equal(bb.Min.Z, zRim):
			if touchesObtusePoint(e, obtusePoints) {
				continue // trash
			}
			b.support = append(b.support, analEdge{e, fi})
		default:
			b.other = append(b.other, analEdge{e, fi})
		}
		b.cats += string(letter + 'a' - 'A')
		b.catEdges = append(b.catEdges, e)
	}
	return b
}

// touchesObtusePoint returns true if a vertex of e lies over an obtuse corner
// point, comparing XY only.
func touchesObtusePoint(e Edge, obtusePoints []Point) bool {
	for _, v := range e.Vertices() {
		for _, op := range obtusePoints {
			if v.XY().EqualsTol(op.XY(), Epsilon) {
				return true
			}
		}
	}
	return false
}

// commonEndPointAtRim returns true if e1 and e2 share an end point at rim
// height.
func commonEndPointAtRim(zRim float64, e1, e2 Edge) bool {
	for _, p := range e1.Vertices() {
		if !equal(p.Z, zRim) {
			continue
		}
		for _, q := range e2.Vertices() {
			if p.Equals(q) {
				return true
			}
		}
	}
	return false
}

// uniqueEdges drops duplicate edges, comparing midpoint position keys.
func uniqueEdges(edges []Edge) []Edge {
	type keyed struct {
		key  string
		edge Edge
	}
	ks := make([]keyed, len(edges))
	for i, e := range edges {
		ks[i] = keyed{edgeKey(e, PositionDigits), e}
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	var out []Edge
	for i, k := range ks {
		if 0 < i && ks[i-1].key == k.key {
			continue
		}
		out = append(out, k.edge)
	}
	return out
}

// removeEdges drops the edges of full that appear in ignore, comparing
// midpoint position keys.
func removeEdges(full, ignore []Edge) []Edge {
	drop := make(map[string]bool, len(ignore))
	for _, e := range ignore {
		drop[edgeKey(e, PositionDigits)] = true
	}
	var out []Edge
	for _, e := range full {
		if !drop[edgeKey(e, PositionDigits)] {
			out = append(out, e)
		}
	}
	return out
}

// IdentifyInsidePathWires extracts the requested perimeter wires from a
// filtered inside cut. The obtuse points are the corner vertices reported by
// the raw sweep.
func IdentifyInsidePathWires(fs *FaceSet, wireType WireType, obtusePoints []Point, entry ToolEntry) []Wire {
	return identifyPathWires(fs, wireType, obtusePoints, entry, false)
}

// IdentifyOutsidePathWires extracts the requested perimeter wires from a
// filtered outside cut. Line segments never count as supports here.
func IdentifyOutsidePathWires(fs *FaceSet, wireType WireType, obtusePoints []Point, entry ToolEntry) []Wire {
	return identifyPathWires(fs, wireType, obtusePoints, entry, true)
}

func identifyPathWires(fs *FaceSet, wireType WireType, obtusePoints []Point, entry ToolEntry, outside bool) []Wire {
	if fs == nil || len(fs.Faces) == 0 || wireType == WireNone {
		return nil
	}
	bb := fs.BoundBox()
	zRim, zBottom := bb.Max.Z, bb.Min.Z
	if entry == EntryUp {
		zRim, zBottom = bb.Min.Z, bb.Max.Z
	}

	var rim, support, other, bottom, remove, keep []analEdge
	for fi, f := range fs.Faces {
		b := faceAnalysis(f, fi, zRim, zBottom, obtusePoints)
		rim = append(rim, b.rim...)
		bottom = append(bottom, b.bottom...)
		other = append(other, b.other...)

		s := b.support
		if len(f.Edges) == 3 {
			if hasCat(b.cats, 'L') {
				keep = append(keep, s...)
			} else if hasCat(b.cats, 'c') {
				remove = append(remove, s...)
			} else {
				support = append(support, s...)
			}
			continue
		}
		if hasCat(b.cats, 'C') && hasCat(b.cats, 'c') {
			// arcs at both rim and bottom
			re := b.catEdges[catIndex(b.cats, 'C')]
			be := b.catEdges[catIndex(b.cats, 'c')]
			if 1e-5 < re.Length() {
				if be.Radius < re.Radius {
					remove = append(remove, s...)
				} else {
					support = append(support, s...)
				}
			} else if 1 < len(s) && commonEndPointAtRim(zRim, s[0].edge, s[1].edge) {
				remove = append(remove, s...)
			} else {
				support = append(support, s...)
			}
		} else if len(s) == 2 && commonEndPointAtRim(zRim, s[0].edge, s[1].edge) {
			remove = append(remove, s...)
		} else {
			support = append(support, s...)
		}
	}

	r := uniqueEdges(edgesOf(rim))
	b := uniqueEdges(edgesOf(bottom))
	o := uniqueEdges(edgesOf(other))
	d := uniqueEdges(edgesOf(remove))
	k := uniqueEdges(edgesOf(keep))
	s := removeEdges(uniqueEdges(edgesOf(support)), d)
	if outside {
		var arcs []Edge
		for _, e := range s {
			if e.Kind == ArcCurve {
				arcs = append(arcs, e)
			}
		}
		s = arcs
	}

	switch wireType {
	case WireInlay:
		es := append(append(append(append([]Edge{}, o...), b...), k...), s...)
		return chainEdges(es, Epsilon)
	case WireMidline:
		return edgesToWires(fs, append(append([]Edge{}, b...), o...))
	case WireBottom:
		return edgesToWires(fs, b)
	case WireTop:
		return edgesToWires(fs, r)
	}
	return nil
}

func hasCat(cats string, c byte) bool {
	for i := 0; i < len(cats); i++ {
		if cats[i] == c {
			return true
		}
	}
	return false
}

func catIndex(cats string, c byte) int {
	for i := 0; i < len(cats); i++ {
		if cats[i] == c {
			return i
		}
	}
	return -1
}

func edgesOf(refs []analEdge) []Edge {
	es := make([]Edge, len(refs))
	for i, ref := range refs {
		es[i] = ref.edge
	}
	return es
}

// edgesToWires chains loose edges into wires. An empty selection falls back
// to a 10 mm vertical line at the lowest vertex of the set, so a caller
// always receives a usable path position.
func edgesToWires(fs *FaceSet, edges []Edge) []Wire {
	if len(edges) == 0 {
		p := lowestVertex(fs)
		return []Wire{{[]Edge{Line(p, Point{p.X, p.Y, p.Z + 10.0})}}}
	}
	return chainEdges(edges, Epsilon)
}

func lowestVertex(fs *FaceSet) Point {
	low := Point{}
	first := true
	for _, f := range fs.Faces {
		for _, v := range f.Vertices() {
			if first || v.Z < low.Z {
				low = v
				first = false
			}
		}
	}
	return low
}
