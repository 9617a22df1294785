package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/carvelab/inlay"
	"github.com/fatih/color"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type CutOptions struct {
	Angle     float64  `short:"a" default:"90" desc:"Cutting edge angle of the V-bit in degrees"`
	Tip       float64  `short:"t" default:"0" desc:"Tip flat diameter of the V-bit in mm"`
	Thickness float64  `default:"5" desc:"Inlay thickness in mm"`
	GlueGap   float64  `default:"1" desc:"Glue gap below the seated inlay in mm"`
	Waste     float64  `default:"0" desc:"Waste height above the surface for cuts from below in mm"`
	Side      string   `short:"s" default:"both" desc:"Cut side: inside, outside or both"`
	UpDown    string   `short:"u" default:"both" desc:"Vertical direction: down, up or both"`
	Wire      string   `short:"w" default:"bottom" desc:"Path wire type: none, inlay, bottom, midline or top"`
	Round     bool     `short:"r" desc:"Round the floor corners instead of squaring them"`
	Output    string   `short:"o" default:"inlay" desc:"Output filename prefix"`
	Plot      string   `short:"p" desc:"Write an SVG plot of the path wires"`
	Verbose   bool     `short:"v" desc:"Print pipeline diagnostics"`
	Args      []string `index:"*" desc:"GeoJSON profile file"`
}

func (o *CutOptions) Run() error {
	return cutCmd(o.Args)
}

type PlotOptions struct {
	Output string   `short:"o" default:"profile.svg" desc:"Output SVG filename"`
	Args   []string `index:"*" desc:"GeoJSON profile file"`
}

func (o *PlotOptions) Run() error {
	return plotCmd(o.Args)
}

var (
	cutOptions  CutOptions
	plotOptions PlotOptions
)

func main() {
	root := argp.New("V-carve inlay toolpath geometry generator")
	root.AddCmd(&cutOptions, "cut", "Generate inlay cut geometry and toolpath wires from a GeoJSON profile")
	root.AddCmd(&plotOptions, "plot", "Plot a GeoJSON profile")

	root.Parse()
	root.PrintHelp()
}

type stderrTracer struct{}

func (stderrTracer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func (stderrTracer) Shape(name string, shape inlay.Shape) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, shape.BoundBox())
}

func cutCmd(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must pass one GeoJSON file")
	}
	profiles, err := readProfiles(args[0])
	if err != nil {
		return err
	}

	opt := inlay.Options{
		Tool: inlay.Tool{
			CuttingEdgeAngle: cutOptions.Angle,
			TipDiameter:      cutOptions.Tip,
		},
		InlayThickness: cutOptions.Thickness,
		GlueGap:        cutOptions.GlueGap,
		WasteHeight:    cutOptions.Waste,
		RoundBottom:    cutOptions.Round,
		RoundTop:       cutOptions.Round,
	}
	if opt.CutSide, err = parseSide(cutOptions.Side); err != nil {
		return err
	}
	if opt.CutUpDown, err = parseUpDown(cutOptions.UpDown); err != nil {
		return err
	}
	if opt.WireType, err = parseWire(cutOptions.Wire); err != nil {
		return err
	}
	if cutOptions.Verbose {
		opt.Tracer = stderrTracer{}
	}

	var paths []inlay.Wire
	failed := 0
	for pi, profile := range profiles {
		res, err := inlay.Build(context.Background(), profile, opt)
		if err != nil {
			color.Red("profile %d: %v", pi, err)
			failed++
			continue
		}
		if len(res.Components) == 0 {
			color.Yellow("profile %d: no geometry generated", pi)
			continue
		}
		prefix := cutOptions.Output
		if 1 < len(profiles) {
			prefix = fmt.Sprintf("%s_%d", prefix, pi)
		}
		for _, c := range res.Components {
			name := fmt.Sprintf("%s_%s.stl", prefix, strings.ToLower(c.Name))
			f, err := os.Create(name)
			if err != nil {
				return err
			}
			if err := c.Shape.WriteSTL(f, c.Name); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			color.Green("%s: %d faces, %d path wires", name, len(c.Shape.Faces), len(c.Paths))
			paths = append(paths, c.Paths...)
		}
	}
	if failed == len(profiles) {
		return fmt.Errorf("all %d profiles failed", failed)
	}

	if cutOptions.Plot != "" && 0 < len(paths) {
		if err := plotWires(paths, cutOptions.Plot); err != nil {
			return err
		}
		color.Green("%s: %d wires", cutOptions.Plot, len(paths))
	}
	return nil
}

func plotCmd(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must pass one GeoJSON file")
	}
	profiles, err := readProfiles(args[0])
	if err != nil {
		return err
	}
	if err := plotWires(profiles, plotOptions.Output); err != nil {
		return err
	}
	color.Green("%s", plotOptions.Output)
	return nil
}

// readProfiles loads the outer rings of all polygons in a GeoJSON file.
func readProfiles(filename string) ([]inlay.Wire, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	var wires []inlay.Wire
	add := func(p orb.Polygon) error {
		if len(p) == 0 {
			return nil
		}
		w, err := inlay.FromRing(p[0])
		if err != nil {
			return err
		}
		wires = append(wires, w)
		return nil
	}
	for _, feat := range fc.Features {
		switch g := feat.Geometry.(type) {
		case orb.Polygon:
			if err := add(g); err != nil {
				return nil, err
			}
		case orb.MultiPolygon:
			for _, p := range g {
				if err := add(p); err != nil {
					return nil, err
				}
			}
		}
	}
	if len(wires) == 0 {
		return nil, fmt.Errorf("%s: no polygon found", filepath.Base(filename))
	}
	return wires, nil
}

// plotWires writes the XY projection of the wires to an SVG file.
func plotWires(wires []inlay.Wire, filename string) error {
	p := plot.New()
	p.Title.Text = "Toolpath wires"
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"
	for _, w := range wires {
		ps := w.Polyline(0.05)
		xys := make(plotter.XYs, len(ps))
		for i, pt := range ps {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		p.Add(line)
	}
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, filename)
}

func parseSide(s string) (inlay.CutSide, error) {
	switch strings.ToLower(s) {
	case "both":
		return inlay.CutBoth, nil
	case "outside":
		return inlay.CutOutside, nil
	case "inside":
		return inlay.CutInside, nil
	}
	return 0, fmt.Errorf("unknown cut side %q", s)
}

func parseUpDown(s string) (inlay.CutUpDown, error) {
	switch strings.ToLower(s) {
	case "both":
		return inlay.UpDownBoth, nil
	case "down":
		return inlay.UpDownDown, nil
	case "up":
		return inlay.UpDownUp, nil
	}
	return 0, fmt.Errorf("unknown vertical direction %q", s)
}

func parseWire(s string) (inlay.WireType, error) {
	switch strings.ToLower(s) {
	case "none":
		return inlay.WireNone, nil
	case "inlay":
		return inlay.WireInlay, nil
	case "bottom":
		return inlay.WireBottom, nil
	case "midline":
		return inlay.WireMidline, nil
	case "top":
		return inlay.WireTop, nil
	}
	return 0, fmt.Errorf("unknown wire type %q", s)
}
