package icons

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/skycast/iconmaker/internal/render"
)

func TestArtifactDimensions(t *testing.T) {
	want := map[string]int{
		"icon.png":                    1024,
		"android-icon-foreground.png": 1024,
		"android-icon-background.png": 1024,
		"android-icon-monochrome.png": 1024,
		"splash-icon.png":             200,
		"favicon.png":                 32,
	}
	artifacts := DefaultTheme.Artifacts()
	if len(artifacts) != len(want) {
		t.Fatalf("len(Artifacts) = %d, want %d", len(artifacts), len(want))
	}
	for _, a := range artifacts {
		c, err := a.Compose()
		if err != nil {
			t.Fatalf("%s: %v", a.File, err)
		}
		size, ok := want[a.File]
		if !ok {
			t.Errorf("unexpected artifact %s", a.File)
			continue
		}
		if c.Width() != size || c.Height() != size {
			t.Errorf("%s = %dx%d, want %dx%d", a.File, c.Width(), c.Height(), size, size)
		}
		if a.Size != size {
			t.Errorf("%s Size = %d, want %d", a.File, a.Size, size)
		}
	}
}

func TestArtifactOrder(t *testing.T) {
	order := []string{
		"icon.png",
		"android-icon-foreground.png",
		"android-icon-background.png",
		"android-icon-monochrome.png",
		"splash-icon.png",
		"favicon.png",
	}
	for i, a := range DefaultTheme.Artifacts() {
		if a.File != order[i] {
			t.Errorf("artifact %d = %s, want %s", i, a.File, order[i])
		}
	}
}

func TestAppIconCorners(t *testing.T) {
	c, err := DefaultTheme.AppIcon()
	if err != nil {
		t.Fatalf("AppIcon: %v", err)
	}
	img := c.Image()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 102, G: 126, B: 234, A: 255}) {
		t.Errorf("top-left = %v, want (102,126,234)", got)
	}
	if got := img.RGBAAt(0, 1023); got != (color.RGBA{R: 118, G: 75, B: 162, A: 255}) {
		t.Errorf("bottom-left = %v, want (118,75,162)", got)
	}
}

func TestAppIconCloudIsTranslucent(t *testing.T) {
	c, err := DefaultTheme.AppIcon()
	if err != nil {
		t.Fatalf("AppIcon: %v", err)
	}
	// Cloud center: (512, 512 - 0.15*716.8). Nothing else is drawn there.
	px := c.Image().RGBAAt(512, 404)
	if px.A != 0xFF {
		t.Fatalf("alpha = %d, want opaque", px.A)
	}
	if px.R < 230 || px.R == 255 {
		t.Errorf("cloud pixel = %v, want near-white with the gradient showing through", px)
	}
	// On row 360 the body and top puff overlap at x=512; x=680 is body only.
	overlap, bodyOnly := c.Image().RGBAAt(512, 360), c.Image().RGBAAt(680, 360)
	if overlap != bodyOnly {
		t.Errorf("overlap = %v, body only = %v, want one cloud opacity", overlap, bodyOnly)
	}
}

func TestAndroidForegroundCornersTransparent(t *testing.T) {
	c, err := DefaultTheme.AndroidForeground()
	if err != nil {
		t.Fatalf("AndroidForeground: %v", err)
	}
	img := c.Image()
	for _, p := range []image.Point{{0, 0}, {1023, 0}, {0, 1023}, {1023, 1023}} {
		if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	if got := img.RGBAAt(512, 512-92); got != render.White {
		t.Errorf("cloud center = %v, want opaque white", got)
	}
	if c.Opaque() {
		t.Error("foreground reports an opaque background")
	}
}

func TestAndroidBackgroundIsGradientOnly(t *testing.T) {
	bg, err := DefaultTheme.AndroidBackground()
	if err != nil {
		t.Fatalf("AndroidBackground: %v", err)
	}
	grad, err := render.NewGradient(1024, 1024, render.GradientStart, render.GradientEnd)
	if err != nil {
		t.Fatalf("NewGradient: %v", err)
	}
	if !bytes.Equal(bg.Image().Pix, grad.Image().Pix) {
		t.Error("background differs from the plain gradient")
	}
}

func TestAndroidMonochromeTwoColors(t *testing.T) {
	c, err := DefaultTheme.AndroidMonochrome()
	if err != nil {
		t.Fatalf("AndroidMonochrome: %v", err)
	}
	img := c.Image()
	var black, white int
	for y := 0; y < 1024; y++ {
		for x := 0; x < 1024; x++ {
			switch img.RGBAAt(x, y) {
			case render.Black:
				black++
			case render.White:
				white++
			default:
				t.Fatalf("pixel (%d,%d) = %v, want pure black or white", x, y, img.RGBAAt(x, y))
			}
		}
	}
	if black == 0 || white == 0 {
		t.Errorf("black=%d white=%d, want both present", black, white)
	}
}

func TestFaviconCloud(t *testing.T) {
	c, err := DefaultTheme.Favicon()
	if err != nil {
		t.Fatalf("Favicon: %v", err)
	}
	img := c.Image()
	if got := img.RGBAAt(16, 16); got != render.White {
		t.Errorf("center = %v, want white cloud", got)
	}
	if got := img.RGBAAt(0, 0); got != render.GradientStart {
		t.Errorf("top-left = %v, want gradient start", got)
	}
}

func TestOpaqueVariants(t *testing.T) {
	for _, compose := range []func() (*render.Canvas, error){
		DefaultTheme.AppIcon, DefaultTheme.AndroidBackground, DefaultTheme.AndroidMonochrome,
		DefaultTheme.Splash, DefaultTheme.Favicon,
	} {
		c, err := compose()
		if err != nil {
			t.Fatalf("compose: %v", err)
		}
		if !c.Opaque() || !c.Image().Opaque() {
			t.Errorf("%dx%d variant is not fully opaque", c.Width(), c.Height())
		}
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	first := DefaultTheme.Artifacts()
	second := DefaultTheme.Artifacts()
	for i := range first {
		a, err := first[i].Compose()
		if err != nil {
			t.Fatalf("%s: %v", first[i].File, err)
		}
		b, err := second[i].Compose()
		if err != nil {
			t.Fatalf("%s: %v", second[i].File, err)
		}
		var bufA, bufB bytes.Buffer
		if err := png.Encode(&bufA, a.Image()); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if err := png.Encode(&bufB, b.Image()); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if !bytes.Equal(bufA.Bytes(), bufB.Bytes()) {
			t.Errorf("%s differs between runs", first[i].File)
		}
	}
}

func TestFaviconFrames(t *testing.T) {
	frames, err := DefaultTheme.FaviconFrames(ICOSizes...)
	if err != nil {
		t.Fatalf("FaviconFrames: %v", err)
	}
	if len(frames) != len(ICOSizes) {
		t.Fatalf("len(frames) = %d, want %d", len(frames), len(ICOSizes))
	}
	for i, f := range frames {
		if f.Bounds().Dx() != ICOSizes[i] || f.Bounds().Dy() != ICOSizes[i] {
			t.Errorf("frame %d = %v, want %dpx", i, f.Bounds(), ICOSizes[i])
		}
	}
	if _, err := DefaultTheme.FaviconFrames(0); err == nil {
		t.Error("expected error for a zero-sized frame")
	}
}

func TestCustomThemeGradient(t *testing.T) {
	theme := Theme{GradientStart: render.Black, GradientEnd: render.White}
	c, err := theme.Splash()
	if err != nil {
		t.Fatalf("Splash: %v", err)
	}
	if got := c.Image().RGBAAt(0, 0); got != render.Black {
		t.Errorf("top-left = %v, want black", got)
	}
	if got := c.Image().RGBAAt(199, 199); got != render.White {
		t.Errorf("bottom-right = %v, want white", got)
	}
}

func TestContactSheet(t *testing.T) {
	var items []Labeled
	for _, a := range DefaultTheme.Artifacts() {
		c, err := a.Compose()
		if err != nil {
			t.Fatalf("%s: %v", a.File, err)
		}
		items = append(items, Labeled{Label: a.Label, Image: c.Image()})
	}

	sheet := ContactSheet(items, NewSheetCaptioner(nil))
	if sheet.Bounds() != image.Rect(0, 0, SheetWidth, SheetHeight) {
		t.Fatalf("sheet bounds = %v", sheet.Bounds())
	}
	if got := sheet.RGBAAt(0, 0); got != sheetBackdrop {
		t.Errorf("sheet corner = %v, want backdrop", got)
	}
	// The monochrome icon fills the fourth cell with a white background.
	if got := sheet.RGBAAt(100, 600); got != render.White {
		t.Errorf("monochrome cell = %v, want white", got)
	}
}

func TestContactSheetWithoutCaptions(t *testing.T) {
	icon, err := DefaultTheme.Favicon()
	if err != nil {
		t.Fatalf("Favicon: %v", err)
	}
	sheet := ContactSheet([]Labeled{{Label: "Favicon", Image: icon.Image()}}, nil)
	if got := sheet.RGBAAt(256, 240); got == sheetBackdrop {
		t.Error("first cell left empty")
	}
	if got := sheet.RGBAAt(768, 240); got != sheetBackdrop {
		t.Errorf("unused cell = %v, want backdrop", got)
	}
}
