package inlay

import (
	"fmt"
)

// FaceSet is a collection of faces forming one shape. A nil FaceSet is the
// empty shape.
type FaceSet struct {
	Faces []Face
}

// FuseShapes merges faces into a single set, dropping duplicates. Order does
// not matter for the result. Nil is returned for an empty input.
func FuseShapes(faces []Face) *FaceSet {
	if len(faces) == 0 {
		return nil
	}
	fs := &FaceSet{}
	seen := make(map[string]bool, len(faces))
	for _, f := range faces {
		key := faceKey(f, PositionDigits)
		if seen[key] {
			continue
		}
		seen[key] = true
		fs.Faces = append(fs.Faces, f)
	}
	return fs
}

// Fuse merges two sets into a new one, dropping duplicate faces. Either
// operand may be nil.
func (fs *FaceSet) Fuse(other *FaceSet) *FaceSet {
	var faces []Face
	if fs != nil {
		faces = append(faces, fs.Faces...)
	}
	if other != nil {
		faces = append(faces, other.Faces...)
	}
	return FuseShapes(faces)
}

// BoundBox returns the axis-aligned bounding box of all faces.
func (fs *FaceSet) BoundBox() Rect3 {
	r := emptyRect3
	if fs == nil {
		return r
	}
	for _, f := range fs.Faces {
		r = r.Add(f.BoundBox())
	}
	return r
}

// Translate moves all faces by v.
func (fs *FaceSet) Translate(v Point) *FaceSet {
	if fs == nil {
		return nil
	}
	faces := make([]Face, len(fs.Faces))
	for i, f := range fs.Faces {
		faces[i] = f.Translate(v)
	}
	return &FaceSet{faces}
}

// Area returns the total surface area of all faces.
func (fs *FaceSet) Area() float64 {
	if fs == nil {
		return 0.0
	}
	area := 0.0
	for _, f := range fs.Faces {
		area += f.Area()
	}
	return area
}

func (fs *FaceSet) String() string {
	if fs == nil {
		return "FaceSet(nil)"
	}
	return fmt.Sprintf("FaceSet(%d faces)", len(fs.Faces))
}
