package render

import (
	"image/color"
	"math"
)

// DrawCloud draws a cloud from four overlapping ellipses around (cx, cy).
// All offsets are fractions of size.
func DrawCloud(c *Canvas, cx, cy, size float64, col color.Color) {
	// body
	c.FillEllipse(cx-size*0.6, cy-size*0.3, cx+size*0.6, cy+size*0.3, col)
	// left puff
	c.FillEllipse(cx-size*0.9, cy-size*0.1, cx-size*0.3, cy+size*0.4, col)
	// right puff
	c.FillEllipse(cx+size*0.3, cy-size*0.1, cx+size*0.9, cy+size*0.4, col)
	// top puff
	c.FillEllipse(cx-size*0.5, cy-size*0.6, cx+size*0.5, cy-size*0.1, col)
}

// DrawSun draws a disc of radius size/4 and SunRays evenly spaced rays.
func DrawSun(c *Canvas, cx, cy, size float64, col color.Color) {
	radius := size * sunRadius
	c.FillEllipse(cx-radius, cy-radius, cx+radius, cy+radius, col)

	rayLength := size * sunRayLength
	rayPadding := size * sunRayPadding
	// Stroke width truncates to whole pixels.
	width := float64(int(rayPadding * 2))
	for i := 0; i < SunRays; i++ {
		angle := 2 * math.Pi * float64(i) / SunRays
		cos, sin := math.Cos(angle), math.Sin(angle)
		c.Line(
			cx+(radius+rayPadding)*cos, cy+(radius+rayPadding)*sin,
			cx+(radius+rayLength)*cos, cy+(radius+rayLength)*sin,
			width, col)
	}
}

// DrawThermometer draws a thermometer with the standard red mercury column.
func DrawThermometer(c *Canvas, cx, cy, size float64, col color.Color) {
	DrawThermometerFill(c, cx, cy, size, col, Mercury)
}

// DrawThermometerFill draws a thermometer centered on (cx, cy): bulb, body,
// rounded cap and a mercury column painted with fill.
func DrawThermometerFill(c *Canvas, cx, cy, size float64, col, fill color.Color) {
	bodyWidth := size * 0.08
	bodyHeight := size * 0.5
	bodyX := cx - bodyWidth/2
	bodyY := cy - bodyHeight/2
	bodyBottom := cy + bodyHeight/2

	bulbRadius := size * 0.12
	c.FillEllipse(cx-bulbRadius, bodyBottom-bulbRadius, cx+bulbRadius, bodyBottom+bulbRadius, col)

	c.FillRect(bodyX, bodyY, bodyX+bodyWidth, bodyY+bodyHeight, col)

	capRadius := bodyWidth / 2
	c.FillEllipse(bodyX, bodyY-capRadius, bodyX+bodyWidth, bodyY+capRadius, col)

	innerWidth := bodyWidth * 0.5
	innerHeight := bodyHeight * 0.6
	innerX := cx - innerWidth/2
	innerY := bodyBottom - innerHeight - bulbRadius*0.3
	c.FillRect(innerX, innerY, innerX+innerWidth, innerY+innerHeight, fill)
}
