package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a quarter ellipse each.
const kappa = 0.5522847498

// ErrInvalidSize is returned when a canvas would have no pixels.
var ErrInvalidSize = errors.New("render: canvas size must be positive")

// Point is a position in canvas pixel space.
type Point struct{ X, Y float64 }

// Canvas is a drawable pixel buffer. Opaque canvases come from a gradient or
// a solid fill and encode without an alpha channel; transparent canvases start
// fully clear and serve as overlays or as transparent artifacts.
type Canvas struct {
	img    *image.RGBA
	mask   *image.Alpha
	raster *vector.Rasterizer
	opaque bool
}

func newCanvas(width, height int, opaque bool) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrInvalidSize, width, height)
	}
	bounds := image.Rect(0, 0, width, height)
	return &Canvas{
		img:    image.NewRGBA(bounds),
		mask:   image.NewAlpha(bounds),
		raster: vector.NewRasterizer(width, height),
		opaque: opaque,
	}, nil
}

// NewTransparent returns a fully transparent canvas.
func NewTransparent(width, height int) (*Canvas, error) {
	return newCanvas(width, height, false)
}

// NewSolid returns an opaque canvas filled with fill.
func NewSolid(width, height int, fill color.Color) (*Canvas, error) {
	c, err := newCanvas(width, height, true)
	if err != nil {
		return nil, err
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: opaqueColor(fill)}, image.Point{}, draw.Src)
	return c, nil
}

// NewGradient returns an opaque canvas filled with a vertical gradient.
// The top scanline is start and the bottom scanline is end.
func NewGradient(width, height int, start, end color.Color) (*Canvas, error) {
	c, err := newCanvas(width, height, true)
	if err != nil {
		return nil, err
	}
	from := color.NRGBAModel.Convert(start).(color.NRGBA)
	to := color.NRGBAModel.Convert(end).(color.NRGBA)
	for y := 0; y < height; y++ {
		ratio := 0.0
		if height > 1 {
			ratio = float64(y) / float64(height-1)
		}
		row := image.Rect(0, y, width, y+1)
		draw.Draw(c.img, row, &image.Uniform{C: Lerp(from, to, ratio)}, image.Point{}, draw.Src)
	}
	return c, nil
}

// Lerp interpolates the RGB channels of a and b; the result is opaque.
func Lerp(a, b color.NRGBA, ratio float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		v := math.Round(float64(p)*(1-ratio) + float64(q)*ratio)
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xFF}
}

func opaqueColor(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xFF}
}

// Image exposes the underlying pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rectangle, anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Opaque reports whether the canvas was created with an opaque background.
func (c *Canvas) Opaque() bool { return c.opaque }

// Width and Height in pixels.
func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// FillEllipse fills the ellipse inscribed in the box (x0,y0)-(x1,y1).
func (c *Canvas) FillEllipse(x0, y0, x1, y1 float64, col color.Color) {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := math.Abs(x1-x0)/2, math.Abs(y1-y0)/2
	if rx == 0 || ry == 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa
	c.fill(col, func(z *vector.Rasterizer) {
		z.MoveTo(f32(cx+rx), f32(cy))
		z.CubeTo(f32(cx+rx), f32(cy+ky), f32(cx+kx), f32(cy+ry), f32(cx), f32(cy+ry))
		z.CubeTo(f32(cx-kx), f32(cy+ry), f32(cx-rx), f32(cy+ky), f32(cx-rx), f32(cy))
		z.CubeTo(f32(cx-rx), f32(cy-ky), f32(cx-kx), f32(cy-ry), f32(cx), f32(cy-ry))
		z.CubeTo(f32(cx+kx), f32(cy-ry), f32(cx+rx), f32(cy-ky), f32(cx+rx), f32(cy))
		z.ClosePath()
	})
}

// FillRect fills the axis-aligned box (x0,y0)-(x1,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	c.FillPolygon([]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, col)
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.fill(col, func(z *vector.Rasterizer) {
		z.MoveTo(f32(pts[0].X), f32(pts[0].Y))
		for _, p := range pts[1:] {
			z.LineTo(f32(p.X), f32(p.Y))
		}
		z.ClosePath()
	})
}

// Line strokes the segment (x0,y0)-(x1,y1) with butt ends.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx, ny := -dy/length*width/2, dx/length*width/2
	c.FillPolygon([]Point{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, col)
}

// Composite blends overlay onto c using source-over.
func (c *Canvas) Composite(overlay *Canvas) error {
	if overlay.Bounds() != c.Bounds() {
		return fmt.Errorf("render: composite size mismatch: %v onto %v", overlay.Bounds(), c.Bounds())
	}
	draw.Draw(c.img, c.img.Bounds(), overlay.img, image.Point{}, draw.Over)
	return nil
}

// fill rasterizes one path into the coverage mask, snaps the mask to hard
// edges and paints col through it. On transparent canvases covered pixels are
// replaced rather than blended, so overlapping translucent shapes keep a
// single opacity.
func (c *Canvas) fill(col color.Color, path func(z *vector.Rasterizer)) {
	bounds := c.img.Bounds()
	c.raster.Reset(bounds.Dx(), bounds.Dy())
	c.raster.DrawOp = draw.Src
	path(c.raster)
	c.raster.Draw(c.mask, bounds, image.Opaque, image.Point{})
	harden(c.mask)
	op := draw.Over
	if !c.opaque {
		op = draw.Src
	}
	draw.DrawMask(c.img, bounds, &image.Uniform{C: col}, image.Point{}, c.mask, image.Point{}, op)
}

// harden turns partial coverage into all-or-nothing so fills never introduce
// intermediate colors.
func harden(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xFF
		} else {
			mask.Pix[i] = 0
		}
	}
}

func f32(v float64) float32 { return float32(v) }
