// Package icons composes the weather app's icon artifacts from the glyphs in
// package render.
package icons

import (
	"image/color"

	"github.com/skycast/iconmaker/internal/render"
	"github.com/skycast/iconmaker/internal/render/layout"
)

// Canvas sizes in pixels.
const (
	AppIconSize = 1024
	SplashSize  = 200
	FaviconSize = 32
)

// Theme holds the colors the compositions are parameterized by.
type Theme struct {
	GradientStart color.Color
	GradientEnd   color.Color
}

// DefaultTheme is the app's primary purple-blue gradient.
var DefaultTheme = Theme{GradientStart: render.GradientStart, GradientEnd: render.GradientEnd}

func (t Theme) gradient(width, height int) (*render.Canvas, error) {
	return render.NewGradient(width, height, t.GradientStart, t.GradientEnd)
}

// glyphColors selects the color of each glyph in a scene.
type glyphColors struct {
	cloud, sun, thermometer, mercury color.Color
}

// drawScene layers cloud, sun and thermometer into frame f. When
// cloudOverlay is set the cloud is drawn onto a transparent layer first and
// composited, so translucent cloud colors blend with the background.
func drawScene(c *render.Canvas, f layout.Frame, colors glyphColors, cloudOverlay bool) error {
	cloudX, cloudY := f.At(0, -0.15)
	if cloudOverlay {
		layer, err := render.NewTransparent(c.Width(), c.Height())
		if err != nil {
			return err
		}
		render.DrawCloud(layer, cloudX, cloudY, f.Span(0.5), colors.cloud)
		if err := c.Composite(layer); err != nil {
			return err
		}
	} else {
		render.DrawCloud(c, cloudX, cloudY, f.Span(0.5), colors.cloud)
	}

	sunX, sunY := f.At(-0.2, -0.25)
	render.DrawSun(c, sunX, sunY, f.Span(0.4), colors.sun)

	thermoX, thermoY := f.At(0.25, 0.1)
	render.DrawThermometerFill(c, thermoX, thermoY, f.Span(0.35), colors.thermometer, colors.mercury)
	return nil
}

var colorScene = glyphColors{
	cloud:       render.CloudDim,
	sun:         render.SunGold,
	thermometer: render.White,
	mercury:     render.Mercury,
}

// AppIcon is the 1024px store icon: gradient, translucent cloud, sun and
// thermometer inside a 15% margin.
func (t Theme) AppIcon() (*render.Canvas, error) {
	c, err := t.gradient(AppIconSize, AppIconSize)
	if err != nil {
		return nil, err
	}
	f := layout.Padded(AppIconSize, AppIconSize, AppIconSize*0.15)
	if err := drawScene(c, f, colorScene, true); err != nil {
		return nil, err
	}
	return c, nil
}

// AndroidForeground is the adaptive-icon foreground: glyphs only, on a
// transparent canvas, inside the 20% safe margin.
func (t Theme) AndroidForeground() (*render.Canvas, error) {
	c, err := render.NewTransparent(AppIconSize, AppIconSize)
	if err != nil {
		return nil, err
	}
	f := layout.Padded(AppIconSize, AppIconSize, AppIconSize*0.2)
	colors := colorScene
	colors.cloud = render.White
	if err := drawScene(c, f, colors, true); err != nil {
		return nil, err
	}
	return c, nil
}

// AndroidBackground is the adaptive-icon background: the gradient alone.
func (t Theme) AndroidBackground() (*render.Canvas, error) {
	return t.gradient(AppIconSize, AppIconSize)
}

// AndroidMonochrome draws every glyph in black on white. The mercury column
// is left white so the image stays strictly two-color.
func (t Theme) AndroidMonochrome() (*render.Canvas, error) {
	c, err := render.NewSolid(AppIconSize, AppIconSize, render.White)
	if err != nil {
		return nil, err
	}
	f := layout.Padded(AppIconSize, AppIconSize, AppIconSize*0.2)
	colors := glyphColors{
		cloud:       render.Black,
		sun:         render.Black,
		thermometer: render.Black,
		mercury:     render.White,
	}
	if err := drawScene(c, f, colors, false); err != nil {
		return nil, err
	}
	return c, nil
}

// Splash is the 200px splash-screen icon; the glyph region is 70% of the width.
func (t Theme) Splash() (*render.Canvas, error) {
	c, err := t.gradient(SplashSize, SplashSize)
	if err != nil {
		return nil, err
	}
	f := layout.Scaled(SplashSize, SplashSize, 0.7)
	if err := drawScene(c, f, colorScene, true); err != nil {
		return nil, err
	}
	return c, nil
}

// Favicon is the 32px favicon.
func (t Theme) Favicon() (*render.Canvas, error) {
	return t.FaviconAt(FaviconSize)
}

// FaviconAt renders the favicon at size pixels: gradient plus a three-ellipse
// cloud, since the full scene is illegible that small.
func (t Theme) FaviconAt(size int) (*render.Canvas, error) {
	c, err := t.gradient(size, size)
	if err != nil {
		return nil, err
	}
	f := layout.Scaled(size, size, 0.7)
	ellipse := func(dx0, dy0, dx1, dy1 float64) {
		x0, y0 := f.At(dx0, dy0)
		x1, y1 := f.At(dx1, dy1)
		c.FillEllipse(x0, y0, x1, y1, render.White)
	}
	ellipse(-0.3, -0.15, 0.3, 0.15)
	ellipse(-0.45, 0, -0.15, 0.2)
	ellipse(0.15, 0, 0.45, 0.2)
	return c, nil
}
