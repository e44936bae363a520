// Package overlay renders the diagnostics of dot tracking on top of a frame.
package overlay

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/LdDl/dot-go/dot"
)

var _ dot.Drawer = (*Canvas)(nil)

// Canvas is a color copy of a frame, enlarged by an integer factor, receiving markers.
// Marker coordinates are frame coordinates.
type Canvas struct {
	img   *image.RGBA
	scale int
}

// NewCanvas copies frame into a new canvas. Scales lower than 1 are treated as 1.
func NewCanvas(frame image.Image, scale int) *Canvas {
	if scale < 1 {
		scale = 1
	}
	b := frame.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(img, img.Bounds(), frame, b, draw.Src, nil)
	return &Canvas{
		img:   img,
		scale: scale,
	}
}

// Image returns the rendered canvas
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// DrawPoint paints the frame pixel (u, v)
func (c *Canvas) DrawPoint(u, v int, col color.Color) {
	x0, y0 := u*c.scale, v*c.scale
	for y := y0; y < y0+c.scale; y++ {
		for x := x0; x < x0+c.scale; x++ {
			c.img.Set(x, y, col)
		}
	}
}

// DrawCross paints a horizontal and a vertical segment of size pixels centered on (u, v)
func (c *Canvas) DrawCross(u, v, size int, col color.Color) {
	half := size / 2
	for i := -half; i <= half; i++ {
		c.DrawPoint(u+i, v, col)
		c.DrawPoint(u, v+i, col)
	}
}

// DrawRectangle outlines the pixels of area
func (c *Canvas) DrawRectangle(a dot.Area, col color.Color) {
	for u := a.UMin; u <= a.UMax; u++ {
		c.DrawPoint(u, a.VMin, col)
		c.DrawPoint(u, a.VMax, col)
	}
	for v := a.VMin; v <= a.VMax; v++ {
		c.DrawPoint(a.UMin, v, col)
		c.DrawPoint(a.UMax, v, col)
	}
}

// Label writes text with its baseline starting at frame pixel (u, v)
func (c *Canvas) Label(u, v int, text string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(u*c.scale, v*c.scale),
	}
	d.DrawString(text)
}

// SavePNG writes the canvas to path
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't create overlay file '%s'", path)
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't encode overlay '%s'", path)
	}
	return f.Close()
}
