package dot

import (
	"fmt"
	"image"
)

// Area is a rectangular search window clipped to the image it was built for.
// Bounds are inclusive: a pixel (u, v) is in the area when
// UMin <= u <= UMax and VMin <= v <= VMax.
type Area struct {
	UMin int
	VMin int
	UMax int
	VMax int
	// Width and Height are the clipped extents in pixels
	Width  int
	Height int
	// CenterU and CenterV are cached because candidate ranking needs them for every germ
	CenterU float64
	CenterV float64
}

// NewArea builds the search window with upper-left corner (u, v) and size w x h, then
// clips it to the image bounds. The result always holds at least one pixel.
func NewArea(img *image.Gray, u, v, w, h int) Area {
	imageW, imageH := imageSize(img)
	uMin := clampInt(u, 0, imageW-1)
	vMin := clampInt(v, 0, imageH-1)
	uMax := clampInt(u+w-1, uMin, imageW-1)
	vMax := clampInt(v+h-1, vMin, imageH-1)
	area := Area{
		UMin:   uMin,
		VMin:   vMin,
		UMax:   uMax,
		VMax:   vMax,
		Width:  uMax - uMin + 1,
		Height: vMax - vMin + 1,
	}
	area.CenterU = float64(area.UMin) + float64(area.Width)/2.0
	area.CenterV = float64(area.VMin) + float64(area.Height)/2.0
	return area
}

// ImageArea returns the area covering the whole image
func ImageArea(img *image.Gray) Area {
	w, h := imageSize(img)
	return NewArea(img, 0, 0, w, h)
}

// Contains reports whether the pixel (u, v) is inside the area
func (a Area) Contains(u, v int) bool {
	if u < a.UMin || u > a.UMax {
		return false
	}
	if v < a.VMin || v > a.VMax {
		return false
	}
	return true
}

// Center returns the cached area center
func (a Area) Center() Point {
	return Point{U: a.CenterU, V: a.CenterV}
}

func (a Area) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", a.UMin, a.VMin, a.UMax, a.VMax)
}

// imageSize returns the image dimensions. A nil or empty raster is a programmer error.
func imageSize(img *image.Gray) (int, int) {
	if img == nil {
		panic("dot: nil image")
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("dot: invalid image size %dx%d", w, h))
	}
	return w, h
}

// isInImage reports whether (u, v) addresses a pixel of the image
func isInImage(img *image.Gray, u, v int) bool {
	w, h := imageSize(img)
	if u < 0 || u >= w {
		return false
	}
	if v < 0 || v >= h {
		return false
	}
	return true
}

// intensity returns the gray level at (u, v), coordinates relative to img.Rect.Min.
// The caller guarantees the pixel is in the image.
func intensity(img *image.Gray, u, v int) uint8 {
	return img.Pix[v*img.Stride+u]
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
