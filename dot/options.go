package dot

import "log/slog"

// Option configures a Dot at construction
type Option func(*Dot)

// WithAccuracy sets the matching tolerance, see SetAccuracy
func WithAccuracy(accuracy float64) Option {
	return func(d *Dot) {
		d.SetAccuracy(accuracy)
	}
}

// WithComputeMoments enables second order moments (m11, m20, m02) accumulation
func WithComputeMoments(enabled bool) Option {
	return func(d *Dot) {
		d.computeMoments = enabled
	}
}

// WithGraphics enables diagnostics drawing. A nil drawer disables it.
func WithGraphics(drawer Drawer) Option {
	return func(d *Dot) {
		d.drawer = drawer
	}
}

// WithLogger sets the logger receiving tracking diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dot) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithPrediction makes tracking start from a Kalman prediction of the center.
// dt is the time between two frames; non-positive values disable prediction.
func WithPrediction(dt float64) Option {
	return func(d *Dot) {
		d.predictDt = dt
	}
}

// WithCandidateFactory replaces the candidates built by area search
func WithCandidateFactory(factory CandidateFactory) Option {
	return func(d *Dot) {
		if factory != nil {
			d.factory = factory
		}
	}
}
