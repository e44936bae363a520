package dot

import (
	"image"
	"image/color"
	"math"
)

const (
	eps = 0.00001
)

func newBlack(w, h int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, w, h))
}

// fillRect paints the pixels of [u0, u1] x [v0, v1]
func fillRect(img *image.Gray, u0, v0, u1, v1 int, value uint8) {
	for v := v0; v <= v1; v++ {
		for u := u0; u <= u1; u++ {
			img.SetGray(u, v, color.Gray{Y: value})
		}
	}
}

// fillDisc paints the pixels whose distance to (cu, cv) is at most r
func fillDisc(img *image.Gray, cu, cv int, r float64, value uint8) {
	fillEllipse(img, float64(cu), float64(cv), r, r, 0, value)
}

// fillEllipse paints an ellipse with semi axes a and b, the a axis turned by theta from the u axis
func fillEllipse(img *image.Gray, cu, cv, a, b, theta float64, value uint8) {
	bounds := img.Bounds()
	cos, sin := math.Cos(theta), math.Sin(theta)
	for v := bounds.Min.Y; v < bounds.Max.Y; v++ {
		for u := bounds.Min.X; u < bounds.Max.X; u++ {
			du := float64(u) - cu
			dv := float64(v) - cv
			x := (du*cos + dv*sin) / a
			y := (-du*sin + dv*cos) / b
			if x*x+y*y <= 1 {
				img.SetGray(u, v, color.Gray{Y: value})
			}
		}
	}
}

// floodCount counts the 8-connected pixels brighter than level reachable from (u, v)
func floodCount(img *image.Gray, u, v int, level uint8) int {
	bounds := img.Bounds()
	seen := make(map[image.Point]bool)
	stack := []image.Point{image.Pt(u, v)}
	count := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.In(bounds) || seen[p] || img.GrayAt(p.X, p.Y).Y <= level {
			continue
		}
		seen[p] = true
		count++
		for dv := -1; dv <= 1; dv++ {
			for du := -1; du <= 1; du++ {
				if du != 0 || dv != 0 {
					stack = append(stack, image.Pt(p.X+du, p.Y+dv))
				}
			}
		}
	}
	return count
}

// recordingDrawer counts the diagnostics calls it receives
type recordingDrawer struct {
	crosses    int
	rectangles int
	points     int
}

func (r *recordingDrawer) DrawCross(u, v, size int, c color.Color) { r.crosses++ }
func (r *recordingDrawer) DrawRectangle(a Area, c color.Color) { r.rectangles++ }
func (r *recordingDrawer) DrawPoint(u, v int, c color.Color) { r.points++ }

// snapshot gathers the measured parameters of a dot for comparisons
type snapshot struct {
	Center  Point
	Width   float64
	Height  float64
	Surface float64
	Moments Moments
}

func snapshotOf(d *Dot) snapshot {
	return snapshot{
		Center:  d.GetCenter(),
		Width:   d.GetWidth(),
		Height:  d.GetHeight(),
		Surface: d.GetSurface(),
		Moments: d.GetMoments(),
	}
}
