package dot

import "github.com/pkg/errors"

var (
	// ErrRegionNotFound is returned when no closed border could be traced from a seed
	ErrRegionNotFound = errors.New("region not found")
	// ErrDegenerateMoment is returned when a closed border encloses a surface of 0 or 1
	ErrDegenerateMoment = errors.New("degenerate moment")
	// ErrFeatureLost is returned by tracking when the dot can't be found anymore.
	// Tracking resumes only after the dot is seeded again.
	ErrFeatureLost = errors.New("feature lost")
	// ErrNoMoments is returned when second order moments are needed but were not computed
	ErrNoMoments = errors.New("second order moments are not computed")
)
