package export

import (
	"context"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"runtime"

	"github.com/san-kum/faultsim/internal/geom"
	"github.com/san-kum/faultsim/internal/playback"
	"golang.org/x/sync/errgroup"
)

type GIFOptions struct {
	Width, Height int
	// DelayCs is the per-frame delay in hundredths of a second.
	DelayCs int
	// Workers bounds concurrent rasterization; zero means GOMAXPROCS.
	Workers int
}

// Frames maps each sampled displacement to a frame.
func Frames(v geom.Variant, samples []playback.Sample) []geom.Frame {
	frames := make([]geom.Frame, len(samples))
	for i, s := range samples {
		frames[i] = geom.Map(s.Displacement, v)
	}
	return frames
}

// RenderPaletted rasterizes frames concurrently and quantizes them to the
// Plan 9 palette. Output order matches input order.
func RenderPaletted(ctx context.Context, frames []geom.Frame, opts GIFOptions) ([]*image.Paletted, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*image.Paletted, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range frames {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rgba := Rasterize(frames[i], opts.Width, opts.Height)
			p := image.NewPaletted(rgba.Bounds(), palette.Plan9)
			draw.FloydSteinberg.Draw(p, p.Bounds(), rgba, image.Point{})
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteGIF encodes frames as a looping animated GIF.
func WriteGIF(ctx context.Context, w io.Writer, frames []geom.Frame, opts GIFOptions) error {
	imgs, err := RenderPaletted(ctx, frames, opts)
	if err != nil {
		return err
	}
	delay := opts.DelayCs
	if delay <= 0 {
		delay = 3
	}

	anim := gif.GIF{LoopCount: 0}
	for _, img := range imgs {
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
