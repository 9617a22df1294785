package inlay

import (
	"io"
	"math"

	"github.com/hschendel/stl"
)

// Triangle is a single mesh facet.
type Triangle struct {
	A, B, C Point
}

// Area returns the area of the triangle.
func (t Triangle) Area() float64 {
	return 0.5 * t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length()
}

// Normal returns the unit normal of the triangle, or zero for degenerate
// triangles.
func (t Triangle) Normal() Point {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Norm(1.0)
}

// Tessellate approximates the face by a triangle strip between its rails.
// Degenerate rails produce a fan.
func (f Face) Tessellate() []Triangle {
	n := 1
	for _, rail := range []Edge{f.rimRail, f.floorRail} {
		if rail.Kind == ArcCurve && Epsilon < rail.Length() {
			m := int(math.Ceil(rail.Sweep() / 5.0))
			if m < 4 {
				m = 4
			}
			if n < m {
				n = m
			}
		}
	}
	var ts []Triangle
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		a0, a1 := f.rimRail.PointAt(t0), f.rimRail.PointAt(t1)
		b0, b1 := f.floorRail.PointAt(t0), f.floorRail.PointAt(t1)
		for _, t := range []Triangle{{a0, b0, b1}, {a0, b1, a1}} {
			if Epsilon*Epsilon < t.Area() {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

// Area returns the surface area of the face, approximated by tessellation.
func (f Face) Area() float64 {
	area := 0.0
	for _, t := range f.Tessellate() {
		area += t.Area()
	}
	return area
}

// Tessellate approximates all faces of the set.
func (fs *FaceSet) Tessellate() []Triangle {
	if fs == nil {
		return nil
	}
	var ts []Triangle
	for _, f := range fs.Faces {
		ts = append(ts, f.Tessellate()...)
	}
	return ts
}

// ToSTL converts the set into an STL solid with the given name.
func (fs *FaceSet) ToSTL(name string) *stl.Solid {
	solid := &stl.Solid{Name: name}
	for _, t := range fs.Tessellate() {
		n := t.Normal()
		solid.Triangles = append(solid.Triangles, stl.Triangle{
			Normal: stl.Vec3{float32(n.X), float32(n.Y), float32(n.Z)},
			Vertices: [3]stl.Vec3{
				{float32(t.A.X), float32(t.A.Y), float32(t.A.Z)},
				{float32(t.B.X), float32(t.B.Y), float32(t.B.Z)},
				{float32(t.C.X), float32(t.C.Y), float32(t.C.Z)},
			},
		})
	}
	return solid
}

// WriteSTL writes the set as a binary STL to w.
func (fs *FaceSet) WriteSTL(w io.Writer, name string) error {
	return fs.ToSTL(name).WriteAll(w)
}
