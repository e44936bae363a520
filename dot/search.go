package dot

import (
	"image"
	"math"
)

// dedupeEpsilon is the distance (per axis) under which two candidates are the same dot
const dedupeEpsilon = 3.0

// candidateList keeps validated candidates ordered by distance to the search area center
type candidateList struct {
	center Point
	items  []Candidate
}

// insert adds c before the first candidate farther from the center. c is dropped
// when a nearer candidate has the same center.
func (l *candidateList) insert(c Candidate) {
	cc := c.GetCenter()
	dist := euclideanDistance(cc, l.center)
	for i, other := range l.items {
		oc := other.GetCenter()
		if math.Abs(oc.U-cc.U) < dedupeEpsilon && math.Abs(oc.V-cc.V) < dedupeEpsilon {
			return
		}
		if euclideanDistance(oc, l.center) > dist {
			l.items = append(l.items, nil)
			copy(l.items[i+1:], l.items[i:])
			l.items[i] = c
			return
		}
	}
	l.items = append(l.items, c)
}

// covers reports whether (u, v) is in the bounding box of any listed candidate
func (l *candidateList) covers(u, v int) bool {
	return anyCovers(l.items, u, v)
}

func anyCovers(candidates []Candidate, u, v int) bool {
	for _, c := range candidates {
		if coversPoint(c, u, v) {
			return true
		}
	}
	return false
}

// gridSize returns the spacing of the search grid. A grid square is small enough
// to fit in the smallest matching dot, assuming it is a disc (1/sqrt(2) = cos(pi/4)).
func (d *Dot) gridSize() (int, int) {
	gridWidth := int(d.width * d.accuracy / math.Sqrt2)
	gridHeight := int(d.height * d.accuracy / math.Sqrt2)
	if gridWidth == 0 {
		gridWidth = 1
	}
	if gridHeight == 0 {
		gridHeight = 1
	}
	return gridWidth, gridHeight
}

// SearchDotsInImage looks for dots matching this dot's parameters in the whole image
func (d *Dot) SearchDotsInImage(img *image.Gray) []Candidate {
	w, h := imageSize(img)
	return d.SearchDotsInArea(img, 0, 0, w, h)
}

// SearchDotsInArea looks for dots matching this dot's parameters (width, height,
// surface, levels, accuracy) in the window with upper-left corner (u, v) and size
// w x h. Candidates are ordered by distance to the window center, nearest first;
// an empty result means no match.
//
// Before a whole image search the dot characteristics have to be set:
//
//	d := dot.NewDot(dot.WithAccuracy(0.65))
//	d.SetWidth(15.0)
//	d.SetHeight(12.0)
//	d.SetSurface(124)
//	d.SetInLevel(164)
//	d.SetOutLevel(164)
//	candidates := d.SearchDotsInImage(img)
func (d *Dot) SearchDotsInArea(img *image.Gray, u, v, w, h int) []Candidate {
	area := NewArea(img, u, v, w, h)
	gridWidth, gridHeight := d.gridSize()
	if d.drawer != nil {
		d.drawer.DrawRectangle(area, searchColor)
	}

	cls := newClassifier(img, area, d.levels)
	nice := candidateList{center: area.Center()}
	bad := make([]Candidate, 0)
	germs := 0
	for gv := area.VMin; gv < area.VMax; gv += gridHeight {
		for gu := area.UMin; gu < area.UMax; gu += gridWidth {
			// Not white enough, go to the next grid intersection
			if !cls.hasGoodLevel(gu, gv) {
				continue
			}
			// Germ inside a dot already detected, valid or not
			if nice.covers(gu, gv) || anyCovers(bad, gu, gv) {
				continue
			}
			germs++
			candidate := d.factory(d)
			// No closed border from this germ (dot partially out of the area...)
			if err := candidate.ComputeParameters(img, area, float64(gu), float64(gv)); err != nil {
				continue
			}
			if candidate.IsValid(img, area, d) {
				nice.insert(candidate)
			} else {
				bad = append(bad, candidate)
			}
		}
	}
	d.logger.Debug("dots searched",
		"id", d.id,
		"area", area.String(),
		"grid_w", gridWidth,
		"grid_h", gridHeight,
		"germs", germs,
		"found", len(nice.items),
		"rejected", len(bad),
	)
	return nice.items
}
