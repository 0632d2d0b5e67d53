package export

import (
	"bytes"
	"context"
	"errors"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/faultsim/internal/geom"
	"github.com/san-kum/faultsim/internal/playback"
)

func TestFrameSVG_FaultAtRest(t *testing.T) {
	f := geom.Map(0, geom.DefaultVariant(geom.Normal, 50))
	svg := FrameSVG(f, 0, 0)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an SVG document")
	}
	if strings.Contains(svg, "transform=") {
		t.Error("at-rest plates should not carry transforms")
	}
	if strings.Contains(svg, `id="arrow-`) {
		t.Error("arrows should be hidden at rest")
	}
	if !strings.Contains(svg, `width="400" height="300"`) {
		t.Error("size should default to the frame viewBox")
	}
	if !strings.Contains(svg, `id="fault-trace"`) {
		t.Error("missing fault trace")
	}
}

func TestFrameSVG_FaultDisplaced(t *testing.T) {
	f := geom.Map(20, geom.DefaultVariant(geom.StrikeSlip, 40))
	svg := FrameSVG(f, 800, 600)

	if !strings.Contains(svg, `transform="translate(0 -17.5)"`) {
		t.Error("missing west plate transform")
	}
	if !strings.Contains(svg, `transform="translate(0 17.5)"`) {
		t.Error("missing east plate transform")
	}
	if strings.Count(svg, `id="arrow-`) != 2 {
		t.Error("expected two visible arrows")
	}
}

func TestFrameSVG_Scenario(t *testing.T) {
	f := geom.Map(0.5, geom.DefaultVariant(geom.FourPlate, 1))
	svg := FrameSVG(f, 0, 0)
	if got := strings.Count(svg, `class="north-west `); got != 6 {
		t.Errorf("expected 6 faces for north-west, got %d", got)
	}
}

func TestTimelineSVG(t *testing.T) {
	if TimelineSVG([]float64{0}, []float64{0}, 1, 100, 50, "#fff") != "" {
		t.Error("expected empty output for a single point")
	}
	svg := TimelineSVG([]float64{0, 1, 2}, []float64{0, 35, 40}, 40, 100, 50, "#00ff00")
	if !strings.Contains(svg, "M0.0,47.5 L50.0,") {
		t.Errorf("unexpected path: %s", svg)
	}
}

func TestRasterize(t *testing.T) {
	f := geom.Map(25, geom.DefaultVariant(geom.Reverse, 50))
	img := Rasterize(f, 200, 150)
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 150 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	// Centre of the footwall, well away from the fault.
	c := img.RGBAAt(40, 100)
	bg := parseColor(background, 1)
	if c.R == bg.R && c.G == bg.G && c.B == bg.B {
		t.Error("footwall pixel was not painted")
	}
	if corner := img.RGBAAt(1, 1); corner.R != bg.R || corner.G != bg.G || corner.B != bg.B {
		t.Errorf("corner should be background, got %v", corner)
	}
}

func TestWriteGIF(t *testing.T) {
	v := geom.DefaultVariant(geom.StrikeSlip, 40)
	samples := []playback.Sample{{Displacement: 0}, {Displacement: 20}, {Displacement: 40}}
	frames := Frames(v, samples)

	var buf bytes.Buffer
	if err := WriteGIF(context.Background(), &buf, frames, GIFOptions{Width: 80, Height: 60, Workers: 2}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(g.Image) != 3 {
		t.Errorf("expected 3 frames, got %d", len(g.Image))
	}
}

func TestWriteGIF_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames := Frames(geom.DefaultVariant(geom.Normal, 50), []playback.Sample{{}, {}})
	var buf bytes.Buffer
	err := WriteGIF(ctx, &buf, frames, GIFOptions{Width: 10, Height: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTimelineCSV(t *testing.T) {
	result := &playback.Result{Samples: []playback.Sample{
		{TimeMs: 0, Displacement: 0, Playing: true},
		{TimeMs: 250, Displacement: 12.5, Playing: false},
	}}
	var buf bytes.Buffer
	if err := TimelineCSV(&buf, result); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "time_ms,displacement,playing\n0.000,0.000000,true\n250.000,12.500000,false\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
