package dot

import "image/color"

// Drawer receives the markers a dot emits while it works when graphics are enabled.
// It is a pure side channel: nothing it does changes tracking results.
type Drawer interface {
	// DrawCross draws a cross of the given size centered on (u, v)
	DrawCross(u, v, size int, c color.Color)
	// DrawRectangle outlines a search area
	DrawRectangle(a Area, c color.Color)
	// DrawPoint marks a single pixel
	DrawPoint(u, v int, c color.Color)
}

var (
	// borderColor marks border pixels walked by the tracer
	borderColor = color.RGBA{R: 255, A: 255}
	// centerColor marks the center of a tracked dot
	centerColor = color.RGBA{R: 255, A: 255}
	// searchColor outlines area search windows
	searchColor = color.RGBA{B: 255, A: 255}
	// ringColor marks the samples of shape validation
	ringColor = color.RGBA{G: 255, A: 255}
)

const centerCrossSize = 15
