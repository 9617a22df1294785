package inlay

import (
	"context"
	"fmt"
	"math"
)

// Tool describes a V-groove cutter by its included angle and the flat at its
// tip. A zero tip diameter models a perfectly sharp point.
type Tool struct {
	CuttingEdgeAngle float64 // included angle in degrees
	TipDiameter      float64
}

// HalfAngle returns the half angle of the cutter in degrees.
func (t Tool) HalfAngle() float64 {
	return t.CuttingEdgeAngle / 2.0
}

// TipHeight returns the height of the cone section lost to the tip flat: the
// distance from the virtual sharp point to the actual tip.
func (t Tool) TipHeight() float64 {
	half := t.HalfAngle()
	if half <= 0.0 {
		return 0.0
	}
	return t.TipDiameter / 2.0 / math.Tan(half*math.Pi/180.0)
}

// PocketDepth returns the cut depth needed to seat an inlay of the given
// thickness with a glue gap below it, compensating for the tip flat.
func (t Tool) PocketDepth(thickness, glueGap float64) float64 {
	return thickness + t.TipHeight() + glueGap
}

// WasteHeight adjusts the waste allowance above the working surface for the
// tip flat.
func (t Tool) WasteHeight(waste float64) float64 {
	return waste + t.TipHeight()
}

// MidlineDepth returns the cut depth at which the walls of any profile within
// the given shape meet below its centerline, with some margin.
func MidlineDepth(shape Shape, cutAngle float64) float64 {
	bb := shape.BoundBox()
	length := math.Max(bb.Max.X-bb.Min.X, bb.Max.Y-bb.Min.Y) * 1.1 / 2.0
	return math.Abs(length / math.Tan(cutAngle*math.Pi/180.0))
}

// CutSide selects which side of the profile to cut.
type CutSide int

const (
	CutBoth CutSide = iota
	CutOutside
	CutInside
)

func (cs CutSide) String() string {
	switch cs {
	case CutOutside:
		return "Outside"
	case CutInside:
		return "Inside"
	}
	return "Both"
}

// CutUpDown selects the vertical cut directions to generate.
type CutUpDown int

const (
	UpDownBoth CutUpDown = iota
	UpDownDown
	UpDownUp
)

func (ud CutUpDown) String() string {
	switch ud {
	case UpDownDown:
		return "Down"
	case UpDownUp:
		return "Up"
	}
	return "Both"
}

// MakeInlayDown builds the filtered inside cut of a clockwise profile wire,
// cutting from above, raised so its rim sits at the given height. When
// wireType is not WireNone the matching perimeter wires are extracted as
// well.
func MakeInlayDown(w Wire, roundCorners bool, halfToolAngle, height, pocketDepth float64, wireType WireType) (*FaceSet, []Wire, error) {
	return makeCut(w, cutSpec{
		inside:  true,
		entry:   EntryDown,
		round:   roundCorners,
		angle:   halfToolAngle,
		height:  height,
		depth:   pocketDepth,
		wire:    wireType,
		outFlag: false,
		extra:   false,
	})
}

// MakeOutlayDown builds the filtered outside cut of a clockwise profile wire,
// cutting from above.
func MakeOutlayDown(w Wire, roundCorners bool, halfToolAngle, height, pocketDepth float64, wireType WireType) (*FaceSet, []Wire, error) {
	return makeCut(w, cutSpec{
		inside:  false,
		entry:   EntryDown,
		round:   roundCorners,
		angle:   halfToolAngle,
		height:  height,
		depth:   pocketDepth,
		wire:    wireType,
		outFlag: false,
		extra:   false,
	})
}

// MakeInlayUp builds the filtered inside cut of a clockwise profile wire,
// cutting from below. The extra lone-vertex pass runs when corners are
// rounded.
func MakeInlayUp(w Wire, roundCorners bool, halfToolAngle, height, pocketDepth float64, wireType WireType) (*FaceSet, []Wire, error) {
	return makeCut(w, cutSpec{
		inside:  true,
		entry:   EntryUp,
		round:   roundCorners,
		angle:   halfToolAngle,
		height:  height,
		depth:   pocketDepth,
		wire:    wireType,
		outFlag: false,
		extra:   roundCorners,
	})
}

// MakeOutlayUp builds the filtered outside cut of a clockwise profile wire,
// cutting from below.
func MakeOutlayUp(w Wire, roundCorners bool, halfToolAngle, height, pocketDepth float64, wireType WireType) (*FaceSet, []Wire, error) {
	return makeCut(w, cutSpec{
		inside:  false,
		entry:   EntryUp,
		round:   roundCorners,
		angle:   halfToolAngle,
		height:  height,
		depth:   pocketDepth,
		wire:    wireType,
		outFlag: true,
		extra:   false,
	})
}

type cutSpec struct {
	inside  bool
	entry   ToolEntry
	round   bool
	angle   float64
	height  float64
	depth   float64
	wire    WireType
	outFlag bool // outside flag passed to the face filter
	extra   bool
}

func makeCut(w Wire, spec cutSpec) (*FaceSet, []Wire, error) {
	var raw *FaceSet
	var obtuse []Point
	var err error
	if spec.inside {
		raw, obtuse, err = ClockwiseWireToRawInlay(w, spec.angle, spec.depth, spec.round, spec.entry)
	} else {
		raw, obtuse, err = ClockwiseWireToRawOutlay(w, spec.angle, spec.depth, spec.round, spec.entry)
	}
	if err != nil {
		return nil, nil, err
	}
	fs := FilterInlay(raw, spec.outFlag, true, spec.extra, spec.entry)
	if fs == nil {
		return nil, nil, nil
	}
	dz := spec.height - fs.BoundBox().Max.Z
	fs = fs.Translate(Point{0.0, 0.0, dz})
	for i := range obtuse {
		obtuse[i].Z += dz
	}

	var wires []Wire
	if spec.wire != WireNone {
		if spec.inside {
			wires = IdentifyInsidePathWires(fs, spec.wire, obtuse, spec.entry)
		} else {
			wires = IdentifyOutsidePathWires(fs, spec.wire, obtuse, spec.entry)
		}
	}
	return fs, wires, nil
}

// Options configures a Build run.
type Options struct {
	Tool           Tool
	InlayThickness float64
	GlueGap        float64
	WasteHeight    float64
	WireType       WireType
	CutSide        CutSide
	CutUpDown      CutUpDown
	RoundBottom    bool // round the floor corners of the inside cut
	RoundTop       bool // round the floor corners of the outside cut
	Tracer         Tracer
}

// Component is one generated cut with its toolpath wires.
type Component struct {
	Name   string
	Shape  *FaceSet
	Paths  []Wire
	Obtuse []Point
}

// Result holds all cuts generated by Build.
type Result struct {
	Components []Component
}

// Build generates the requested combinations of cut side and vertical
// direction for a profile wire. The profile is prepared first: chained,
// flattened and oriented clockwise. The cut angle is the negated half tool
// angle, matching a cutter plunging through the rim.
func Build(ctx context.Context, profile Wire, opt Options) (*Result, error) {
	tracer := opt.Tracer
	if tracer == nil {
		tracer = NopTracer
	}
	if opt.Tool.CuttingEdgeAngle <= 0.0 || 180.0 <= opt.Tool.CuttingEdgeAngle {
		return nil, fmt.Errorf("cutting edge angle %g out of range (0,180)", opt.Tool.CuttingEdgeAngle)
	}

	w, height, err := PrepareProfile(profile)
	if err != nil {
		return nil, err
	}
	if !w.Closed() {
		return nil, fmt.Errorf("profile wire is not closed")
	}

	cutAngle := -opt.Tool.HalfAngle()
	depth := opt.Tool.PocketDepth(opt.InlayThickness, opt.GlueGap)
	if opt.WireType == WireMidline {
		depth = MidlineDepth(w, cutAngle)
	}
	// cuts from below sit in the waste stock above the working surface
	upHeight := height + opt.Tool.WasteHeight(opt.WasteHeight)
	tracer.Printf("build: angle=%g height=%g depth=%g", cutAngle, height, depth)

	type variant struct {
		name   string
		side   CutSide
		updown CutUpDown
		make   func() (*FaceSet, []Wire, error)
	}
	variants := []variant{
		{"Inside_Down", CutInside, UpDownDown, func() (*FaceSet, []Wire, error) {
			return MakeInlayDown(w, opt.RoundBottom, cutAngle, height, depth, opt.WireType)
		}},
		{"Outside_Down", CutOutside, UpDownDown, func() (*FaceSet, []Wire, error) {
			return MakeOutlayDown(w, opt.RoundTop, cutAngle, height, depth, opt.WireType)
		}},
		{"Inside_Up", CutInside, UpDownUp, func() (*FaceSet, []Wire, error) {
			return MakeInlayUp(w, opt.RoundBottom, cutAngle, upHeight, depth, opt.WireType)
		}},
		{"Outside_Up", CutOutside, UpDownUp, func() (*FaceSet, []Wire, error) {
			return MakeOutlayUp(w, opt.RoundTop, cutAngle, upHeight, depth, opt.WireType)
		}},
	}

	res := &Result{}
	for _, v := range variants {
		if opt.CutSide != CutBoth && opt.CutSide != v.side {
			continue
		}
		if opt.CutUpDown != UpDownBoth && opt.CutUpDown != v.updown {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fs, paths, err := v.make()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.name, err)
		}
		if fs == nil {
			tracer.Printf("%s: empty after filtering", v.name)
			continue
		}
		tracer.Shape(v.name, fs)
		res.Components = append(res.Components, Component{Name: v.name, Shape: fs, Paths: paths})
	}
	return res, nil
}

// RotateShape180 flips a face set about the Y axis of the center of its
// bounding box, so a cut made from above mates with its counterpart from
// below.
func RotateShape180(fs *FaceSet) *FaceSet {
	if fs == nil {
		return nil
	}
	bb := fs.BoundBox()
	cx := (bb.Min.X + bb.Max.X) / 2.0
	cz := (bb.Min.Z + bb.Max.Z) / 2.0
	mirror := func(p Point) Point {
		return Point{2.0*cx - p.X, p.Y, 2.0*cz - p.Z}
	}
	faces := make([]Face, len(fs.Faces))
	for i, f := range fs.Faces {
		faces[i] = mirrorFace(f, mirror)
	}
	return &FaceSet{faces}
}

func mirrorFace(f Face, m func(Point) Point) Face {
	edges := make([]Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = mirrorEdge(e, m)
	}
	return Face{
		Kind:      f.Kind,
		Edges:     edges,
		rimRail:   mirrorEdge(f.rimRail, m),
		floorRail: mirrorEdge(f.floorRail, m),
	}
}

// mirrorEdge maps an edge through a 180 degree rotation about a Y-parallel
// axis. Bearings reflect about the Y axis and the traversal direction flips.
func mirrorEdge(e Edge, m func(Point) Point) Edge {
	if e.Kind == LineCurve {
		return Line(m(e.P0), m(e.P1))
	}
	a0 := NormalizeDegrees(180.0 - e.A0)
	a1 := NormalizeDegrees(180.0 - e.A1)
	return Edge{
		Kind:   ArcCurve,
		Center: m(e.Center),
		Radius: e.Radius,
		Axis:   e.Axis.Neg(),
		A0:     a0,
		A1:     a1,
	}
}
