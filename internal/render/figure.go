// Package render draws a posed figure to a raster preview: bones as
// anti-aliased capsule strokes, the head as a filled disc, on a
// transparent canvas. Rendering is supersampled and downsampled so the
// thin strokes stay clean at small output sizes.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/kinematics"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/mathutil"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/pose"
	"github.com/theflibbertigibbet/Bitruvius-Posing-System/internal/schema"
)

// Options controls the preview raster.
type Options struct {
	Size        int     // output canvas edge, pixels
	Supersample int     // oversampling factor before downsampling
	StrokeWidth float64 // bone stroke width at output scale
	FillRatio   float64 // fraction of the canvas the figure spans
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 256
	}
	if o.Supersample <= 0 {
		o.Supersample = 2
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 6
	}
	if o.FillRatio <= 0 || o.FillRatio > 1 {
		o.FillRatio = 0.80
	}
	return o
}

var inkColor = color.NRGBA{R: 38, G: 38, B: 46, A: 255}

// Figure renders one pose.
func Figure(p pose.Pose, opts Options) *image.NRGBA {
	opts = opts.withDefaults()
	joints := kinematics.ResolveJoints(p)

	big := opts.Size * opts.Supersample
	img := image.NewNRGBA(image.Rect(0, 0, big, big))

	// Fit the figure into the canvas: uniform scale, centered.
	lo := mathutil.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	hi := mathutil.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, v := range joints {
		lo.X, lo.Y = math.Min(lo.X, v.X), math.Min(lo.Y, v.Y)
		hi.X, hi.Y = math.Max(hi.X, v.X), math.Max(hi.Y, v.Y)
	}
	span := math.Max(hi.X-lo.X, hi.Y-lo.Y)
	if span < 1 {
		span = 1
	}
	scale := float64(big) * opts.FillRatio / span
	center := lo.Add(hi).Scale(0.5)
	canvasMid := mathutil.Vec2{X: float64(big) / 2, Y: float64(big) / 2}
	place := func(v mathutil.Vec2) mathutil.Vec2 {
		return v.Sub(center).Scale(scale).Add(canvasMid)
	}

	w := opts.StrokeWidth * float64(opts.Supersample)
	for _, b := range schema.Bones {
		if b.Distal == schema.PointHead {
			// The head bone renders as a disc spanning neck base to head top.
			a, c := place(joints[b.Proximal]), place(joints[b.Distal])
			disc(img, a.Add(c).Scale(0.5), a.Dist(c)/2, inkColor)
			continue
		}
		stroke(img, place(joints[b.Proximal]), place(joints[b.Distal]), w, inkColor)
	}
	// Clavicles and hip bar, implied by the schema offsets.
	stroke(img, place(joints[schema.PointNeck]), place(joints[schema.PointLeftShoulder]), w, inkColor)
	stroke(img, place(joints[schema.PointNeck]), place(joints[schema.PointRightShoulder]), w, inkColor)
	stroke(img, place(joints[schema.PointPelvis]), place(joints[schema.PointLeftHip]), w, inkColor)
	stroke(img, place(joints[schema.PointPelvis]), place(joints[schema.PointRightHip]), w, inkColor)

	if opts.Supersample > 1 {
		return Downsample(img, opts.Size)
	}
	return img
}

// stroke paints an anti-aliased capsule from a to b.
func stroke(img *image.NRGBA, a, b mathutil.Vec2, w float64, col color.NRGBA) {
	r := w / 2
	x0 := int(math.Floor(math.Min(a.X, b.X) - r - 1))
	x1 := int(math.Ceil(math.Max(a.X, b.X) + r + 1))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) - r - 1))
	y1 := int(math.Ceil(math.Max(a.Y, b.Y) + r + 1))

	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)

	bounds := img.Bounds()
	for y := max(y0, bounds.Min.Y); y < min(y1, bounds.Max.Y); y++ {
		for x := max(x0, bounds.Min.X); x < min(x1, bounds.Max.X); x++ {
			pt := mathutil.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			t := 0.0
			if abLen2 > 0 {
				t = mathutil.Clamp(pt.Sub(a).Dot(ab)/abLen2, 0, 1)
			}
			d := pt.Dist(a.Add(ab.Scale(t)))
			paint(img, x, y, mathutil.Clamp(r-d+0.5, 0, 1), col)
		}
	}
}

// disc paints an anti-aliased filled circle.
func disc(img *image.NRGBA, c mathutil.Vec2, r float64, col color.NRGBA) {
	x0, x1 := int(math.Floor(c.X-r-1)), int(math.Ceil(c.X+r+1))
	y0, y1 := int(math.Floor(c.Y-r-1)), int(math.Ceil(c.Y+r+1))
	bounds := img.Bounds()
	for y := max(y0, bounds.Min.Y); y < min(y1, bounds.Max.Y); y++ {
		for x := max(x0, bounds.Min.X); x < min(x1, bounds.Max.X); x++ {
			pt := mathutil.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			paint(img, x, y, mathutil.Clamp(r-pt.Dist(c)+0.5, 0, 1), col)
		}
	}
}

// paint blends coverage into the canvas, keeping the strongest alpha where
// strokes overlap (a single ink color makes that exact).
func paint(img *image.NRGBA, x, y int, cov float64, col color.NRGBA) {
	if cov <= 0 {
		return
	}
	i := img.PixOffset(x, y)
	a := uint8(cov*float64(col.A) + 0.5)
	if a <= img.Pix[i+3] {
		return
	}
	img.Pix[i] = col.R
	img.Pix[i+1] = col.G
	img.Pix[i+2] = col.B
	img.Pix[i+3] = a
}
