package render

import "image/color"

// Palette shared by every icon variant.
var (
	// Primary gradient of the app theme (#667eea -> #764ba2).
	GradientStart = color.RGBA{R: 0x66, G: 0x7E, B: 0xEA, A: 0xFF}
	GradientEnd   = color.RGBA{R: 0x76, G: 0x4B, B: 0xA2, A: 0xFF}

	SunGold  = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	Mercury  = color.RGBA{R: 0xFF, G: 0x50, B: 0x50, A: 0xFF}
	White    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black    = color.RGBA{A: 0xFF}
	CloudDim = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE6} // non-premultiplied, ~90% white
)

// Sun rays.
const (
	SunRays       = 8
	sunRadius     = 0.25
	sunRayLength  = 0.15
	sunRayPadding = 0.03
)
