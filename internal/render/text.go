package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Captioner draws single-line labels. It prefers the embedded Go Regular
// TrueType font and falls back to the fixed 7x13 bitmap face.
type Captioner struct {
	ttFont   *truetype.Font
	fontFace font.Face
	size     float64
	Logger   Logger
}

// Logger matches app.Logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// NewCaptioner loads the caption font at size points (72 DPI, so points are pixels).
// logger may be nil.
func NewCaptioner(size float64, logger Logger) *Captioner {
	c := &Captioner{size: size, Logger: logger}
	tt, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		c.fontFace = basicfont.Face7x13
		if c.Logger != nil {
			c.Logger.Errorf("caption", "truetype parse failed, using basicfont: %v", err)
		}
		return c
	}
	c.ttFont = tt
	c.fontFace = truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	if c.Logger != nil {
		c.Logger.Infof("caption", "loaded Go Regular at %.0fpt", size)
	}
	return c
}

// Measure returns the advance width and ascent of text in pixels.
func (c *Captioner) Measure(text string) (width, ascent int) {
	drawer := &font.Drawer{Face: c.fontFace}
	return drawer.MeasureString(text).Ceil(), c.fontFace.Metrics().Ascent.Ceil()
}

// DrawCentered draws text centered on centerX with its baseline at baselineY.
func (c *Captioner) DrawCentered(dst draw.Image, text string, centerX, baselineY int, fg color.Color) {
	width, _ := c.Measure(text)
	xPos := centerX - width/2

	if c.ttFont == nil {
		drawer := &font.Drawer{Dst: dst, Src: &image.Uniform{C: fg}, Face: c.fontFace}
		drawer.Dot = fixed.P(xPos, baselineY)
		drawer.DrawString(text)
		return
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(c.ttFont)
	ctx.SetFontSize(c.size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(&image.Uniform{C: fg})
	if _, err := ctx.DrawString(text, freetype.Pt(xPos, baselineY)); err != nil && c.Logger != nil {
		c.Logger.Errorf("caption", "draw %q failed: %v", text, err)
	}
}
