package dot

import (
	"image"
	"math"
)

// Rectangle is an axis-aligned box in floating point image coordinates.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRectCentered returns a rectangle of the given size centered on (u, v)
func NewRectCentered(u, v, width, height float64) Rectangle {
	return Rectangle{
		X:      u - width/2.0,
		Y:      v - height/2.0,
		Width:  width,
		Height: height,
	}
}

// Contains reports whether (u, v) lies inside the rectangle, borders included
func (r Rectangle) Contains(u, v float64) bool {
	return u >= r.X && u <= r.X+r.Width && v >= r.Y && v <= r.Y+r.Height
}

// Point is a position in image coordinates: U is the column, V is the row.
type Point struct {
	U float64
	V float64
}

func NewPoint(u, v float64) Point {
	return Point{
		U: u,
		V: v,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		U: float64(point.X),
		V: float64(point.Y),
	}
}

// Pixel truncates the point to integer pixel coordinates
func (p Point) Pixel() (int, int) {
	return int(p.U), int(p.V)
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.U-p2.U, 2) + math.Pow(p1.V-p2.V, 2))
}
