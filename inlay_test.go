package inlay

import (
	"context"
	"testing"

	"github.com/tdewolff/test"
)

func TestToolGeometry(t *testing.T) {
	tool := Tool{CuttingEdgeAngle: 90.0, TipDiameter: 2.0}
	test.Float(t, tool.HalfAngle(), 45.0)
	test.Float(t, tool.TipHeight(), 1.0)
	test.Float(t, tool.PocketDepth(5.0, 1.0), 7.0)
	test.Float(t, tool.WasteHeight(0.5), 1.5)

	sharp := Tool{CuttingEdgeAngle: 60.0}
	test.Float(t, sharp.TipHeight(), 0.0)
	test.Float(t, sharp.PocketDepth(5.0, 1.0), 6.0)
}

func TestMidlineDepth(t *testing.T) {
	test.Float(t, MidlineDepth(squareCW(), -45.0), 5.5)
}

func TestBuildInsideDown(t *testing.T) {
	opt := Options{
		Tool:           Tool{CuttingEdgeAngle: 90.0},
		InlayThickness: 2.0,
		WireType:       WireBottom,
		CutSide:        CutInside,
		CutUpDown:      UpDownDown,
	}
	res, err := Build(context.Background(), squareCW(), opt)
	test.Error(t, err)
	test.T(t, len(res.Components), 1)
	c := res.Components[0]
	test.String(t, c.Name, "Inside_Down")
	test.T(t, len(c.Shape.Faces), 4)
	test.T(t, len(c.Paths), 1)
	test.Float(t, c.Paths[0].Length(), 24.0)
}

func TestBuildAllVariants(t *testing.T) {
	opt := Options{
		Tool:           Tool{CuttingEdgeAngle: 90.0},
		InlayThickness: 2.0,
	}
	res, err := Build(context.Background(), squareCW(), opt)
	test.Error(t, err)
	test.T(t, len(res.Components), 4)
	test.String(t, res.Components[0].Name, "Inside_Down")
	test.String(t, res.Components[1].Name, "Outside_Down")
	test.String(t, res.Components[2].Name, "Inside_Up")
	test.String(t, res.Components[3].Name, "Outside_Up")
}

func TestBuildOrientsProfile(t *testing.T) {
	opt := Options{
		Tool:           Tool{CuttingEdgeAngle: 90.0},
		InlayThickness: 2.0,
		CutSide:        CutInside,
		CutUpDown:      UpDownDown,
	}
	res, err := Build(context.Background(), squareCW().Flip(), opt)
	test.Error(t, err)
	test.T(t, len(res.Components), 1)
	test.T(t, len(res.Components[0].Shape.Faces), 4)
}

func TestBuildBadTool(t *testing.T) {
	_, err := Build(context.Background(), squareCW(), Options{Tool: Tool{CuttingEdgeAngle: 180.0}})
	test.That(t, err != nil)
	_, err = Build(context.Background(), squareCW(), Options{Tool: Tool{}})
	test.That(t, err != nil)
}

func TestBuildOpenProfile(t *testing.T) {
	open := Wire{[]Edge{Line(Point{0, 0, 0}, Point{10, 0, 0})}}
	_, err := Build(context.Background(), open, Options{Tool: Tool{CuttingEdgeAngle: 90.0}})
	test.That(t, err != nil)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, squareCW(), Options{Tool: Tool{CuttingEdgeAngle: 90.0}})
	test.T(t, err, context.Canceled)
}

func TestBuildWasteHeight(t *testing.T) {
	opt := Options{
		Tool:           Tool{CuttingEdgeAngle: 90.0},
		InlayThickness: 2.0,
		WasteHeight:    3.0,
		CutSide:        CutInside,
		CutUpDown:      UpDownUp,
	}
	res, err := Build(context.Background(), squareCW(), opt)
	test.Error(t, err)
	test.T(t, len(res.Components), 1)
	test.Float(t, res.Components[0].Shape.BoundBox().Max.Z, 3.0)
}

func TestRotateShape180(t *testing.T) {
	fs := rawSquareInlay(t)
	rot := RotateShape180(fs)
	test.T(t, len(rot.Faces), len(fs.Faces))
	bb, rb := fs.BoundBox(), rot.BoundBox()
	test.Float(t, rb.Min.X, bb.Min.X)
	test.Float(t, rb.Max.X, bb.Max.X)
	test.Float(t, rb.Min.Z, bb.Min.Z)
	test.Float(t, rb.Max.Z, bb.Max.Z)
	test.That(t, equalTol(rot.Area(), fs.Area(), 1e-6))
	test.T(t, RotateShape180(nil), (*FaceSet)(nil))
}
