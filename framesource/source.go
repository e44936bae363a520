package framesource

import (
	"image"
	"image/draw"
	"time"
)

// Frame is one gray level image delivered by a Source
type Frame struct {
	Image *image.Gray
	// Timestamp is when the frame was acquired
	Timestamp time.Time
	// Sequence is the monotonic frame number, starting at 0
	Sequence uint64
}

// Source delivers frames one by one. Acquire returns io.EOF once no frame is left.
type Source interface {
	Acquire() (Frame, error)
	Close() error
}

// ToGray converts img into a gray level raster whose bounds start at (0, 0).
// Color images are collapsed with the standard luminance weights.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	if gray, ok := img.(*image.Gray); ok && b.Min == (image.Point{}) {
		return gray
	}
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}
