package dot

import (
	"image"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Group tracks several dots on the same frames. Every dot is tracked on its own;
// the group only handles lost dots and dots converging on the same region.
type Group struct {
	// Main storage
	Dots map[uuid.UUID]*Dot
	// Seeding order, used to decide which dot survives when two overlap
	order []uuid.UUID
	// Consecutive frames each dot has been lost
	lostTimes map[uuid.UUID]int
	// Max number of frames a lost dot is seeded again before removal. Default is 0
	maxLost int
	// IoU above which a dot is a duplicate of an earlier one. Default 0 (disabled)
	iouThreshold float64
	// Options applied to every new dot
	options []Option
	// Drawer given to SetGraphics, overrides the one of options
	drawer    Drawer
	drawerSet bool
}

// NewGroupDefault creates a group removing dots as soon as they are lost
func NewGroupDefault(opts ...Option) *Group {
	return NewGroup(0, 0.0, opts...)
}

// NewGroup creates a group. A lost dot is seeded again at its last center on up
// to maxLost following frames before being removed. iouThreshold > 0 drops dots
// whose box overlaps the box of an earlier dot by more than the threshold.
func NewGroup(maxLost int, iouThreshold float64, opts ...Option) *Group {
	return &Group{
		Dots:         make(map[uuid.UUID]*Dot),
		order:        make([]uuid.UUID, 0),
		lostTimes:    make(map[uuid.UUID]int),
		maxLost:      maxLost,
		iouThreshold: iouThreshold,
		options:      opts,
	}
}

// Add seeds a new dot at pixel (u, v) and tracks it on img
func (g *Group) Add(img *image.Gray, u, v int) (uuid.UUID, error) {
	d := NewDot(g.options...)
	if g.drawerSet {
		d.SetGraphics(g.drawer)
	}
	if err := d.InitTracking(img, u, v); err != nil {
		return uuid.Nil, errors.Wrapf(err, "Can't seed dot at (%d, %d)", u, v)
	}
	g.Dots[d.id] = d
	g.order = append(g.order, d.id)
	g.lostTimes[d.id] = 0
	return d.id, nil
}

// Remove forgets a dot
func (g *Group) Remove(id uuid.UUID) {
	delete(g.Dots, id)
	delete(g.lostTimes, id)
	for i := range g.order {
		if g.order[i] == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// SetGraphics sets the diagnostics drawer of every dot, nil disables diagnostics.
// Dots added later use it too.
func (g *Group) SetGraphics(drawer Drawer) {
	g.drawer = drawer
	g.drawerSet = true
	for _, d := range g.Dots {
		d.SetGraphics(drawer)
	}
}

// Len returns the number of dots in the group
func (g *Group) Len() int {
	return len(g.order)
}

// IDs returns dot identifiers in seeding order
func (g *Group) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(g.order))
	copy(ids, g.order)
	return ids
}

// Track tracks every dot of the group on img. It returns the tracking error of
// every dot that failed on this frame; removed dots are absent from Dots afterwards.
func (g *Group) Track(img *image.Gray) map[uuid.UUID]error {
	failures := make(map[uuid.UUID]error)
	for _, id := range g.order {
		d := g.Dots[id]
		if d.state == StateLost {
			d.Reseed(d.center)
		}
		if err := d.Track(img); err != nil {
			failures[id] = err
		}
	}

	if g.iouThreshold > 0 {
		kept := make([]*Dot, 0, len(g.order))
		for _, id := range g.order {
			d := g.Dots[id]
			if d.state != StateTracking {
				continue
			}
			duplicate := false
			for _, other := range kept {
				if IoU(d.GetBBox(), other.GetBBox()) > g.iouThreshold {
					d.lose()
					failures[id] = errors.Wrapf(ErrFeatureLost, "dot %s converged on dot %s", id, other.id)
					duplicate = true
					break
				}
			}
			if !duplicate {
				kept = append(kept, d)
			}
		}
	}

	// Clean up dots lost for too long
	removed := make([]uuid.UUID, 0)
	for _, id := range g.order {
		if g.Dots[id].state != StateLost {
			g.lostTimes[id] = 0
			continue
		}
		g.lostTimes[id]++
		if g.lostTimes[id] > g.maxLost {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		g.Remove(id)
	}
	return failures
}
