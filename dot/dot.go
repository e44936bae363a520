package dot

import (
	"image"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// DefaultAccuracy is the accuracy of a new dot
	DefaultAccuracy = 0.65
	// MinAccuracy is the lowest accuracy a dot accepts
	MinAccuracy = 0.05

	// searchWindowFactor scales the dot size into the window searched when it is lost
	searchWindowFactor = 5.0
	// defaultSearchWindow is the window size used while the dot size is unknown
	defaultSearchWindow = 80.0
)

// Dot is a bright, roughly elliptical region tracked from frame to frame.
// It is not safe for concurrent use; track several dots with one Dot each.
type Dot struct {
	id     uuid.UUID
	center Point
	// Bounding extents of the border and enclosed surface (m00)
	width   float64
	height  float64
	surface float64

	levels   levels
	accuracy float64

	moments        Moments
	computeMoments bool

	// Border of the last successful trace
	border []image.Point
	chain  []Direction

	state State

	drawer    Drawer
	logger    *slog.Logger
	predictDt float64
	predictor *Predictor
	factory   CandidateFactory
}

// NewDot creates a dot at the image origin with default levels and accuracy
func NewDot(opts ...Option) *Dot {
	d := Dot{
		id:       uuid.New(),
		levels:   levels{in: DefaultInLevel, out: DefaultOutLevel},
		accuracy: DefaultAccuracy,
		state:    StateSeeded,
		logger:   slog.New(slog.DiscardHandler),
		factory:  NewCandidate,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return &d
}

// NewDotAt creates a dot whose center is initialised to (u, v)
func NewDotAt(u, v float64, opts ...Option) *Dot {
	d := NewDot(opts...)
	d.center = Point{U: u, V: v}
	return d
}

// GetID returns dot's identifier
func (d *Dot) GetID() uuid.UUID {
	return d.id
}

// GetCenter returns dot's center of gravity
func (d *Dot) GetCenter() Point {
	return d.center
}

// GetWidth returns the horizontal extent of dot's border
func (d *Dot) GetWidth() float64 {
	return d.width
}

// GetHeight returns the vertical extent of dot's border
func (d *Dot) GetHeight() float64 {
	return d.height
}

// GetSurface returns the surface enclosed by dot's border
func (d *Dot) GetSurface() float64 {
	return d.surface
}

// GetInLevel returns the level a pixel must exceed to be inside the dot
func (d *Dot) GetInLevel() int {
	return d.levels.in
}

// GetOutLevel returns the level a pixel must stay below to surround the dot
func (d *Dot) GetOutLevel() int {
	return d.levels.out
}

// GetAccuracy returns the matching tolerance in [MinAccuracy, 1]
func (d *Dot) GetAccuracy() float64 {
	return d.accuracy
}

// GetMoments returns dot's raw moments. Second order moments are zero unless
// moments computation is enabled.
func (d *Dot) GetMoments() Moments {
	return d.moments
}

// GetEllipse returns the ellipse equivalent to dot's moments
func (d *Dot) GetEllipse() (Ellipse, error) {
	if !d.computeMoments {
		return Ellipse{}, ErrNoMoments
	}
	return d.moments.Ellipse()
}

// GetState returns dot's tracking state
func (d *Dot) GetState() State {
	return d.state
}

// GetBorder returns the border pixels of the last successful trace, in walking order.
// Be careful: this is not copy of border, but reference to it
func (d *Dot) GetBorder() []image.Point {
	return d.border
}

// GetFreemanChain returns the direction leaving each border pixel of GetBorder
func (d *Dot) GetFreemanChain() []Direction {
	return d.chain
}

// GetBBox returns the box of dot's size centered on dot's center
func (d *Dot) GetBBox() Rectangle {
	return NewRectCentered(d.center.U, d.center.V, d.width, d.height)
}

// DistanceTo returns distance to other dot (center to center)
func (d *Dot) DistanceTo(other *Dot) float64 {
	return euclideanDistance(d.center, other.center)
}

// SetCenter moves dot's center
func (d *Dot) SetCenter(center Point) {
	d.center = center
}

// SetWidth sets the width of the dot to search
func (d *Dot) SetWidth(width float64) {
	d.width = width
}

// SetHeight sets the height of the dot to search
func (d *Dot) SetHeight(height float64) {
	d.height = height
}

// SetSurface sets the surface of the dot to search
func (d *Dot) SetSurface(surface float64) {
	d.surface = surface
}

// SetInLevel sets the in level. Levels lower than MinInLevel are brought back to MinInLevel.
func (d *Dot) SetInLevel(inLevel int) {
	d.levels.in = floorInLevel(inLevel)
}

// SetOutLevel sets the out level
func (d *Dot) SetOutLevel(outLevel int) {
	d.levels.out = outLevel
}

// SetAccuracy sets the matching tolerance. 1 means full precision, values close
// to 0 a very bad one. Values below MinAccuracy are brought back to MinAccuracy,
// values above 1 to 1.
func (d *Dot) SetAccuracy(accuracy float64) {
	switch {
	case accuracy < MinAccuracy:
		d.accuracy = MinAccuracy
	case accuracy > 1:
		d.accuracy = 1.0
	default:
		d.accuracy = accuracy
	}
}

// SetGraphics replaces the diagnostics drawer, nil disables diagnostics
func (d *Dot) SetGraphics(drawer Drawer) {
	d.drawer = drawer
}

// SetComputeMoments enables or disables second order moments accumulation
func (d *Dot) SetComputeMoments(enabled bool) {
	d.computeMoments = enabled
}

// HasGoodLevel reports whether (u, v) is in area and brighter than dot's in level
func (d *Dot) HasGoodLevel(img *image.Gray, area Area, u, v int) bool {
	return newClassifier(img, area, d.levels).hasGoodLevel(u, v)
}

// HasReverseLevel reports whether (u, v) is darker than dot's out level.
// Checking the search area is up to the caller.
func (d *Dot) HasReverseLevel(img *image.Gray, u, v int) bool {
	return newClassifier(img, ImageArea(img), d.levels).hasReverseLevel(u, v)
}

// ComputeParameters traces the border of the region holding (u, v) within area and
// updates center, size, surface, moments and border together. On failure the dot
// keeps its previous parameters.
func (d *Dot) ComputeParameters(img *image.Gray, area Area, u, v float64) error {
	status := d.computeParameters(img, area, u, v)
	if status != traceOK {
		return errors.Wrapf(status.err(), "can't compute dot parameters from (%.1f, %.1f)", u, v)
	}
	return nil
}

func (d *Dot) computeParameters(img *image.Gray, area Area, u, v float64) traceStatus {
	t := tracer{
		cls:            newClassifier(img, area, d.levels),
		computeMoments: d.computeMoments,
		expectedWidth:  d.width,
		accuracy:       d.accuracy,
		drawer:         d.drawer,
	}
	res, status := t.trace(u, v)
	if status != traceOK {
		return status
	}
	d.center = res.center
	d.width = res.width
	d.height = res.height
	d.surface = res.moments.M00
	d.moments = res.moments
	d.border = res.border
	d.chain = res.chain
	return traceOK
}

// InitTracking seeds the dot at pixel (u, v): levels are derived from the pixel
// intensity, the size is forgotten, then the dot is tracked once.
func (d *Dot) InitTracking(img *image.Gray, u, v int) error {
	if !isInImage(img, u, v) {
		d.state = StateLost
		return errors.Wrapf(ErrRegionNotFound, "seed (%d, %d) is out of the image", u, v)
	}
	d.center = Point{U: float64(u), V: float64(v)}
	d.levels = seedLevels(intensity(img, u, v), d.accuracy)
	d.width = 0
	d.height = 0
	d.state = StateSeeded
	d.resetPredictor()
	return d.Track(img)
}

// Reseed makes a lost dot trackable again from center, keeping its levels and size
func (d *Dot) Reseed(center Point) {
	d.center = center
	d.state = StateSeeded
	d.resetPredictor()
}

func (d *Dot) resetPredictor() {
	if d.predictDt > 0 {
		d.predictor = NewPredictor(d.center, d.predictDt)
	}
}

// Track locates the dot on a new frame:
//   - compute the parameters again from the previous center (from the predicted
//     center first when prediction is enabled);
//   - if that fails, search dots like this one in a window around the previous
//     center and take the closest;
//   - update levels from the new center.
//
// ErrFeatureLost is returned when no dot is found or its center leaves the image.
// The dot then stays lost until it is seeded again.
func (d *Dot) Track(img *image.Gray) error {
	if d.state == StateLost {
		return errors.Wrap(ErrFeatureLost, "dot must be seeded again")
	}
	// Dots placed with NewDotAt get their predictor on the first track
	if d.predictor == nil && d.predictDt > 0 {
		d.resetPredictor()
	}
	full := ImageArea(img)
	found := false
	if d.predictor != nil {
		predicted := d.predictor.Predict()
		if predicted != d.center {
			status := d.computeParameters(img, full, predicted.U, predicted.V)
			found = status == traceOK
			if !found {
				d.logger.Debug("predicted position failed", "id", d.id, "u", predicted.U, "v", predicted.V, "reason", status.String())
			}
		}
	}
	if !found {
		status := d.computeParameters(img, full, d.center.U, d.center.V)
		found = status == traceOK
		if !found {
			d.logger.Debug("direct tracking failed", "id", d.id, "u", d.center.U, "v", d.center.V, "reason", status.String())
		}
	}
	if !found {
		// Look for the dot closest to the previous position in a bigger window
		windowWidth := defaultSearchWindow
		windowHeight := defaultSearchWindow
		if d.width != 0 && d.height != 0 {
			windowWidth = d.width * searchWindowFactor
			windowHeight = d.height * searchWindowFactor
		}
		candidates := d.SearchDotsInArea(img,
			int(d.center.U-windowWidth/2.0),
			int(d.center.V-windowHeight/2.0),
			int(windowWidth),
			int(windowHeight),
		)
		if len(candidates) == 0 {
			d.lose()
			return errors.Wrapf(ErrFeatureLost, "no dot was found around (%.1f, %.1f)", d.center.U, d.center.V)
		}
		d.adopt(candidates[0])
	}

	u, v := d.center.Pixel()
	if !isInImage(img, u, v) {
		d.lose()
		return errors.Wrapf(ErrFeatureLost, "center (%d, %d) of the dot is not in the image", u, v)
	}

	// Update the levels for the next frame
	value := intensity(img, u, v)
	d.SetInLevel(int(float64(value) * d.accuracy))
	d.SetOutLevel(int(float64(value) * d.accuracy))
	d.state = StateTracking

	if d.predictor != nil {
		if err := d.predictor.Correct(d.center); err != nil {
			d.logger.Warn("predictor correction failed", "id", d.id, "error", err)
		}
	}
	if d.drawer != nil {
		d.drawer.DrawCross(u, v, centerCrossSize, centerColor)
	}
	return nil
}

// TrackPoint tracks the dot and returns its new center
func (d *Dot) TrackPoint(img *image.Gray) (Point, error) {
	err := d.Track(img)
	return d.center, err
}

// adopt takes over the parameters of a candidate found by area search
func (d *Dot) adopt(c Candidate) {
	d.center = c.GetCenter()
	d.surface = c.GetSurface()
	d.width = c.GetWidth()
	d.height = c.GetHeight()
	d.moments = c.GetMoments()
	if !d.computeMoments {
		d.moments.M11 = 0
		d.moments.M20 = 0
		d.moments.M02 = 0
	}
	if other, ok := c.(*Dot); ok {
		d.border = other.border
		d.chain = other.chain
	} else {
		d.border = nil
		d.chain = nil
	}
}

func (d *Dot) lose() {
	d.state = StateLost
	d.logger.Warn("feature lost", "id", d.id, "u", d.center.U, "v", d.center.V)
}
