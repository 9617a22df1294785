package inlay

import (
	"sort"
)

// vertexRef locates one vertex of one face by its rounded position key.
type vertexRef struct {
	key         string
	face        int
	vertexCount int
}

// edgeRef locates one edge of one face by the rounded position key of its
// midpoint.
type edgeRef struct {
	key  string
	face int
}

// rimZ returns the Z height of the rim of the set: the top for a down cut,
// the bottom for an up cut.
func rimZ(fs *FaceSet, entry ToolEntry) float64 {
	bb := fs.BoundBox()
	if entry == EntryUp {
		return bb.Min.Z
	}
	return bb.Max.Z
}

// rimSideZ returns the Z of the rim side of a box for the given entry.
func rimSideZ(bb Rect3, entry ToolEntry) float64 {
	if entry == EntryUp {
		return bb.Min.Z
	}
	return bb.Max.Z
}

// FilterInlay removes the topological junk from a raw sweep: faces that sank
// below the rim, spurs attached by a lone vertex, isolated rim edges and
// walls stacked three deep on a shared edge. The pass order differs between
// the inside and outside variants.
func FilterInlay(raw *FaceSet, isOutside, isClosed, extra bool, entry ToolEntry) *FaceSet {
	if raw == nil {
		return nil
	}
	fs := filterRimTouch(raw, entry)
	if isOutside {
		fs = filterLoneVertex(fs, isClosed, false, entry)
		if isClosed {
			fs = filterIsolatedRimEdge(fs, entry)
		}
		return fs
	}
	fs = filterLoneVertex(fs, isClosed, true, entry)
	fs = filterTripleSharedEdge(fs)
	if extra {
		fs = filterLoneVertex(fs, isClosed, false, entry)
	}
	return fs
}

// filterRimTouch drops faces that do not reach the rim of the set. If no
// face is dropped the set is returned unchanged.
func filterRimTouch(fs *FaceSet, entry ToolEntry) *FaceSet {
	if fs == nil {
		return nil
	}
	rim := rimZ(fs, entry)
	var keep []Face
	for _, f := range fs.Faces {
		if equal(rimSideZ(f.BoundBox(), entry), rim) {
			keep = append(keep, f)
		}
	}
	if len(keep) == len(fs.Faces) {
		return fs
	}
	return FuseShapes(keep)
}

// filterLoneVertex drops faces owning a vertex shared with no other face.
// For open profiles only triangular faces are dropped. With filterTriangular
// the matched-pair cancellation of low horizontal triangle edges runs
// afterwards.
func filterLoneVertex(fs *FaceSet, isClosed, filterTriangular bool, entry ToolEntry) *FaceSet {
	if fs == nil || len(fs.Faces) == 0 {
		return fs
	}
	var refs []vertexRef
	for fi, f := range fs.Faces {
		vs := cornerVertices(f)
		for _, v := range vs {
			refs = append(refs, vertexRef{pointKey(v, PositionDigits), fi, len(vs)})
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].key < refs[j].key })

	lone := make(map[int]bool)
	for i := 0; i < len(refs); {
		j := i
		for j < len(refs) && refs[j].key == refs[i].key {
			j++
		}
		if j-i == 1 {
			if isClosed || refs[i].vertexCount == 3 {
				lone[refs[i].face] = true
			}
		}
		i = j
	}

	var faces []Face
	for fi, f := range fs.Faces {
		if !lone[fi] {
			faces = append(faces, f)
		}
	}
	if filterTriangular {
		faces = filterSpecialTriangles(faces, entry)
	}
	return FuseShapes(faces)
}

// cornerVertices returns the distinct corner vertices of a face. The seam
// vertex of a full-circle edge is no corner and does not count.
func cornerVertices(f Face) []Point {
	var vs []Point
	for _, e := range f.Edges {
		if e.IsFullCircle() {
			continue
		}
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

// filterSpecialTriangles cancels matched pairs of triangular faces that carry
// a horizontal edge below the rim. Triangles whose low edge midpoint matches
// another's drop out pairwise; the rest is kept.
func filterSpecialTriangles(faces []Face, entry ToolEntry) []Face {
	rim := rimSideZ(boundBoxOf(faces), entry)
	var keep []Face
	var flagged []edgeRef
	for fi, f := range faces {
		key, ok := "", false
		if len(f.Edges) == 3 {
			key, ok = triangleLowEdgeKey(f, rim)
		}
		if !ok {
			keep = append(keep, f)
			continue
		}
		flagged = append(flagged, edgeRef{key, fi})
	}
	sort.Slice(flagged, func(i, j int) bool { return flagged[i].key < flagged[j].key })

	var stack []edgeRef
	for _, ref := range flagged {
		if 0 < len(stack) && stack[len(stack)-1].key == ref.key {
			stack = stack[:len(stack)-1]
		} else {
			stack = append(stack, ref)
		}
	}
	for _, ref := range stack {
		keep = append(keep, faces[ref.face])
	}
	return keep
}

// triangleLowEdgeKey returns the midpoint key of a horizontal edge of f that
// is not at the rim.
func triangleLowEdgeKey(f Face, rim float64) (string, bool) {
	for _, e := range f.Edges {
		bb := e.BoundBox()
		if equal(bb.Min.Z, bb.Max.Z) && !equal(bb.Max.Z, rim) {
			return edgeKey(e, 6), true
		}
	}
	return "", false
}

func boundBoxOf(faces []Face) Rect3 {
	r := emptyRect3
	for _, f := range faces {
		r = r.Add(f.BoundBox())
	}
	return r
}

// filterIsolatedRimEdge drops faces whose rim-touching edge matches no other
// face's rim-touching edge.
func filterIsolatedRimEdge(fs *FaceSet, entry ToolEntry) *FaceSet {
	if fs == nil || len(fs.Faces) == 0 {
		return fs
	}
	rim := rimZ(fs, entry)
	var refs []edgeRef
	for fi, f := range fs.Faces {
		for _, e := range f.Edges {
			bb := e.BoundBox()
			if equal(rimSideZ(bb, entry), rim) && !equal(bb.Min.Z, bb.Max.Z) {
				refs = append(refs, edgeRef{pointKey(e.Midpoint(), PositionDigits), fi})
			}
		}
	}
	if len(refs) == 0 {
		return fs
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].key < refs[j].key })

	remove := make(map[int]bool)
	for i := 0; i < len(refs); {
		j := i
		for j < len(refs) && refs[j].key == refs[i].key {
			j++
		}
		if j-i == 1 {
			remove[refs[i].face] = true
		}
		i = j
	}

	var keep []Face
	for fi, f := range fs.Faces {
		if !remove[fi] {
			keep = append(keep, f)
		}
	}
	return FuseShapes(keep)
}

// filterTripleSharedEdge drops faces that share an edge with two or more
// other faces, but only those that also carry at least two edges shared with
// no face at all. The second condition keeps legitimate walls that merely
// pass through a crowded corner.
func filterTripleSharedEdge(fs *FaceSet) *FaceSet {
	if fs == nil || len(fs.Faces) == 0 {
		return fs
	}
	var refs []edgeRef
	for fi, f := range fs.Faces {
		for _, e := range f.Edges {
			refs = append(refs, edgeRef{pointKey(e.Midpoint(), PositionDigits), fi})
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].key < refs[j].key })

	crowded := make(map[int]bool)
	singles := make(map[int]int)
	for i := 0; i < len(refs); {
		j := i
		for j < len(refs) && refs[j].key == refs[i].key {
			j++
		}
		if 2 < j-i {
			for k := i; k < j; k++ {
				crowded[refs[k].face] = true
			}
		} else if j-i == 1 {
			singles[refs[i].face]++
		}
		i = j
	}

	var keep []Face
	for fi, f := range fs.Faces {
		if crowded[fi] && 2 <= singles[fi] {
			continue
		}
		keep = append(keep, f)
	}
	return FuseShapes(keep)
}
