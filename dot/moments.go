package dot

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Moments holds the raw moments of a dot: Mpq is the sum of u^p * v^q over the
// polygon joining the border pixel centers.
type Moments struct {
	M00 float64
	M10 float64
	M01 float64
	M11 float64
	M20 float64
	M02 float64
}

// Centroid returns the center of gravity (m10/m00, m01/m00)
func (m Moments) Centroid() Point {
	return Point{
		U: m.M10 / m.M00,
		V: m.M01 / m.M00,
	}
}

// Centered returns the second order central moments normalised by m00, that is
// the covariance of the dot surface: mu20, mu02 and mu11.
func (m Moments) Centered() (float64, float64, float64) {
	c := m.Centroid()
	mu20 := m.M20/m.M00 - c.U*c.U
	mu02 := m.M02/m.M00 - c.V*c.V
	mu11 := m.M11/m.M00 - c.U*c.V
	return mu20, mu02, mu11
}

// Ellipse is the ellipse having the same first and second order moments as a dot
type Ellipse struct {
	Center    Point
	SemiMajor float64
	SemiMinor float64
	// Orientation is the angle of the major axis with the u axis, in radians within (-pi/2, pi/2].
	// Rows grow downward so positive angles turn clockwise on screen.
	Orientation float64
}

// Ellipse computes the equivalent ellipse from the eigen decomposition of the covariance matrix
func (m Moments) Ellipse() (Ellipse, error) {
	if m.M00 <= 1 {
		return Ellipse{}, errors.Wrapf(ErrDegenerateMoment, "surface %f", m.M00)
	}
	mu20, mu02, mu11 := m.Centered()
	cov := mat.NewSymDense(2, []float64{
		mu20, mu11,
		mu11, mu02,
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(cov, true); !ok {
		return Ellipse{}, errors.New("can't factorize moments covariance")
	}
	// Eigen values come in ascending order
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	orientation := math.Atan2(vectors.At(1, 1), vectors.At(0, 1))
	if orientation > math.Pi/2 {
		orientation -= math.Pi
	} else if orientation <= -math.Pi/2 {
		orientation += math.Pi
	}
	return Ellipse{
		Center:      m.Centroid(),
		SemiMajor:   2 * math.Sqrt(math.Max(values[1], 0)),
		SemiMinor:   2 * math.Sqrt(math.Max(values[0], 0)),
		Orientation: orientation,
	}, nil
}
