package icons

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/skycast/iconmaker/internal/render"
	"github.com/skycast/iconmaker/internal/render/layout"
)

// Contact sheet geometry.
const (
	SheetWidth   = 1536
	SheetHeight  = 1024
	sheetCols    = 3
	sheetRows    = 2
	sheetPadding = 24
	captionPx    = 22
	captionStrip = 48
)

// sheetBackdrop is a neutral mid grey that keeps both the white monochrome
// layer and the transparent foreground visible.
var sheetBackdrop = color.RGBA{R: 0x3A, G: 0x3F, B: 0x4B, A: 0xFF}

// Labeled pairs a rendered image with its caption.
type Labeled struct {
	Label string
	Image image.Image
}

// ContactSheet lays the given images out on a 3x2 grid, each scaled into a
// square cell above its caption. Extra images are ignored.
func ContactSheet(items []Labeled, captions *render.Captioner) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, SheetWidth, SheetHeight))
	draw.Draw(sheet, sheet.Bounds(), &image.Uniform{C: sheetBackdrop}, image.Point{}, draw.Src)

	cells := layout.Grid(sheet.Bounds(), sheetCols, sheetRows)
	for i, item := range items {
		if i >= len(cells) {
			break
		}
		cell := layout.Inset(cells[i], sheetPadding)
		imageArea, captionArea := layout.SplitHorizontal(cell, cell.Dy()-captionStrip)
		target := layout.CenterSquare(imageArea)
		// Nearest neighbor keeps the favicon's pixels crisp when enlarged.
		xdraw.NearestNeighbor.Scale(sheet, target, item.Image, item.Image.Bounds(), xdraw.Over, nil)

		if captions != nil {
			_, ascent := captions.Measure(item.Label)
			baseline := captionArea.Min.Y + (captionArea.Dy()+ascent)/2
			centerX := captionArea.Min.X + captionArea.Dx()/2
			captions.DrawCentered(sheet, item.Label, centerX, baseline, render.White)
		}
	}
	return sheet
}

// NewSheetCaptioner returns the captioner sized for contact sheet labels.
func NewSheetCaptioner(logger render.Logger) *render.Captioner {
	return render.NewCaptioner(captionPx, logger)
}
