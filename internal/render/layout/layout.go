package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Grid splits rect into cols x rows cells, returned row by row.
// The last column and row absorb any remainder.
func Grid(rect image.Rectangle, cols, rows int) []image.Rectangle {
	rect = Normalize(rect)
	if cols <= 0 || rows <= 0 {
		return nil
	}
	cellW := rect.Dx() / cols
	cellH := rect.Dy() / rows
	cells := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		y0 := rect.Min.Y + row*cellH
		y1 := y0 + cellH
		if row == rows-1 {
			y1 = rect.Max.Y
		}
		for col := 0; col < cols; col++ {
			x0 := rect.Min.X + col*cellW
			x1 := x0 + cellW
			if col == cols-1 {
				x1 = rect.Max.X
			}
			cells = append(cells, image.Rect(x0, y0, x1, y1))
		}
	}
	return cells
}

// CenterSquare returns the largest square that fits into rect, centered in it.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	x0 := rect.Min.X + (rect.Dx()-size)/2
	y0 := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(x0, y0, x0+size, y0+size)
}

// Frame is the drawing area of one icon: its center and the edge length of
// the glyph region left after padding.
type Frame struct {
	CX, CY float64
	Size   float64
}

// Padded centers a frame in a width x height canvas, leaving padding on each side.
func Padded(width, height int, padding float64) Frame {
	return Frame{
		CX:   float64(width) / 2,
		CY:   float64(height) / 2,
		Size: float64(width) - padding*2,
	}
}

// Scaled centers a frame whose glyph region is ratio of the canvas width.
func Scaled(width, height int, ratio float64) Frame {
	return Frame{
		CX:   float64(width) / 2,
		CY:   float64(height) / 2,
		Size: float64(width) * ratio,
	}
}

// At returns the point offset from the center by (dx, dy) frame sizes.
func (f Frame) At(dx, dy float64) (x, y float64) {
	return f.CX + f.Size*dx, f.CY + f.Size*dy
}

// Span returns ratio of the frame size.
func (f Frame) Span(ratio float64) float64 { return f.Size * ratio }
