package core

import "math"

// Canvas maps world-space shapes onto a region of a Screen.
// The world is scaled independently on each axis to fill the region.
type Canvas struct {
	screen *Screen
	region Rect
	scaleX float64
	scaleY float64
}

// NewCanvas creates a canvas that projects a worldW x worldH world onto region.
func NewCanvas(screen *Screen, region Rect, worldW, worldH float64) *Canvas {
	c := &Canvas{screen: screen, region: region}
	if worldW > 0 {
		c.scaleX = float64(region.W) / worldW
	}
	if worldH > 0 {
		c.scaleY = float64(region.H) / worldH
	}
	return c
}

// Screen returns the underlying screen buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// cellSpan converts a world interval [lo, hi] to an inclusive cell range.
// A non-empty world interval always covers at least one cell.
func cellSpan(lo, hi, scale float64, origin int) (int, int) {
	first := int(math.Round(lo * scale))
	last := int(math.Round(hi*scale)) - 1
	if last < first {
		last = first
	}
	return origin + first, origin + last
}

// FillShape fills every cell covered by the shape's bounding box.
// Cells outside the canvas region are clipped.
func (c *Canvas) FillShape(s Shape, r rune, color Color) {
	x0, x1 := cellSpan(s.Left(), s.Right(), c.scaleX, c.region.X)
	y0, y1 := cellSpan(s.Top(), s.Bottom(), c.scaleY, c.region.Y)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.region.Contains(x, y) {
				c.screen.SetColored(x, y, r, color)
			}
		}
	}
}

// Plot draws a single glyph at the cell containing the world point (x, y).
func (c *Canvas) Plot(x, y float64, r rune, color Color) {
	cx := c.region.X + int(math.Floor(x*c.scaleX))
	cy := c.region.Y + int(math.Floor(y*c.scaleY))
	if c.region.Contains(cx, cy) {
		c.screen.SetColored(cx, cy, r, color)
	}
}
