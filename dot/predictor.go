package dot

import (
	kalman_filter "github.com/LdDl/kalman-filter"
	"github.com/pkg/errors"
)

// Predictor estimates where a dot will be on the next frame with a 2D Kalman filter
// over its center.
type Predictor struct {
	tracker *kalman_filter.Kalman2D
}

// NewPredictor creates a predictor whose state starts at center with no velocity.
// dt is the time between two frames.
func NewPredictor(center Point, dt float64) *Predictor {
	/* Kalman filter props */
	// No control input: a dot has no known acceleration
	ux := 0.0
	uy := 0.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(dt, ux, uy, stdDevA, stdDevMx, stdDevMy, kalman_filter.WithState2D(center.U, center.V))
	return &Predictor{
		tracker: kf,
	}
}

// Predict executes Kalman filter's first step and returns the predicted center
func (p *Predictor) Predict() Point {
	p.tracker.Predict()
	stateX, stateY := p.tracker.GetState()
	return Point{U: stateX, V: stateY}
}

// Correct feeds the measured center back (Kalman filter's second step)
func (p *Predictor) Correct(center Point) error {
	err := p.tracker.Update(center.U, center.V)
	if err != nil {
		return errors.Wrap(err, "Can't update dot predictor")
	}
	return nil
}
