// Package render rasterizes field model slices for quick inspection.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/openmag/geomag/internal/bfield"
	"github.com/openmag/geomag/internal/coords"
)

// Options controls the slice rasterization.
type Options struct {
	// Extent is the half-width of the slice in Re. Default 15.
	Extent float64
	// Grid is the sample resolution per axis. Default 128.
	Grid int
	// Scale upsamples the output by this factor. Default 4.
	Scale int
}

func (o Options) normalized() Options {
	if o.Extent <= 0 {
		o.Extent = 15
	}
	if o.Grid <= 0 {
		o.Grid = 128
	}
	if o.Scale <= 0 {
		o.Scale = 4
	}
	return o
}

// SliceMap renders log10 |B| over the noon-midnight meridian plane (GSM
// xz), sun to the right. The Earth disk is blanked.
func SliceMap(ctx *coords.Context, model bfield.Model, opt Options) *image.RGBA {
	opt = opt.normalized()

	src := image.NewRGBA(image.Rect(0, 0, opt.Grid, opt.Grid))
	for py := 0; py < opt.Grid; py++ {
		for px := 0; px < opt.Grid; px++ {
			// pixel center to GSM xz-plane, +x right, +z up
			x := (float64(px)+0.5)/float64(opt.Grid)*2*opt.Extent - opt.Extent
			z := opt.Extent - (float64(py)+0.5)/float64(opt.Grid)*2*opt.Extent

			pos := coords.Vec3{X: x, Z: z}
			if pos.Mag() < 1 {
				src.Set(px, py, color.RGBA{A: 255})
				continue
			}

			b := model.Eval(ctx, pos).Mag()
			src.Set(px, py, heat(math.Log10(math.Max(b, 1e-3))))
		}
	}

	if opt.Scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, opt.Grid*opt.Scale, opt.Grid*opt.Scale))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// heat maps log10 |B| in [-1, 5] onto a blue-to-red gradient.
func heat(v float64) color.RGBA {
	t := (v + 1) / 6
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	return color.RGBA{
		R: uint8(255 * t),
		G: uint8(255 * (1 - math.Abs(2*t-1))),
		B: uint8(255 * (1 - t)),
		A: 255,
	}
}

// EncodeWebP writes the image as lossy WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: 85})
}
