package dot

import "image"

// Candidate is what area search builds at every promising grid intersection.
// *Dot implements it; other dot variants can be searched by passing their own
// CandidateFactory with WithCandidateFactory.
type Candidate interface {
	// Parameters
	ComputeParameters(img *image.Gray, area Area, u, v float64) error
	IsValid(img *image.Gray, area Area, wanted *Dot) bool

	// Geometry
	GetCenter() Point
	GetWidth() float64
	GetHeight() float64
	GetSurface() float64
	GetMoments() Moments
}

// CandidateFactory returns a fresh candidate configured after the wanted dot
type CandidateFactory func(wanted *Dot) Candidate

// NewCandidate is the default CandidateFactory. The candidate shares the wanted dot's
// levels, accuracy and graphics, and always computes second order moments.
func NewCandidate(wanted *Dot) Candidate {
	candidate := NewDot(
		WithAccuracy(wanted.accuracy),
		WithComputeMoments(true),
		WithGraphics(wanted.drawer),
		WithLogger(wanted.logger),
	)
	candidate.SetInLevel(wanted.levels.in)
	candidate.SetOutLevel(wanted.levels.out)
	return candidate
}

// coversPoint reports whether (u, v) falls in the bounding box of the candidate
func coversPoint(c Candidate, u, v int) bool {
	center := c.GetCenter()
	box := NewRectCentered(center.U, center.V, c.GetWidth(), c.GetHeight())
	return box.Contains(float64(u), float64(v))
}
