package dot

import (
	"image"
	"math"

	"github.com/pkg/errors"
)

// traceStatus tells why a border trace stopped
type traceStatus int

const (
	traceOK traceStatus = iota
	traceSeedNotInArea
	traceSeedTooDark
	traceTooWide
	traceIsolatedPixel
	traceBrokenBorder
	traceLeftArea
	traceNotClosed
	traceDegenerate
	traceDarkCenter
)

func (s traceStatus) String() string {
	switch s {
	case traceOK:
		return "ok"
	case traceSeedNotInArea:
		return "seed is not in the search area"
	case traceSeedTooDark:
		return "seed has not a good in level"
	case traceTooWide:
		return "region is wider than the expected dot"
	case traceIsolatedPixel:
		return "no border direction from the first border pixel"
	case traceBrokenBorder:
		return "no border direction found while following the border"
	case traceLeftArea:
		return "border left the search area"
	case traceNotClosed:
		return "border did not close"
	case traceDegenerate:
		return "degenerate surface"
	case traceDarkCenter:
		return "center of gravity has not a good in level"
	default:
		return "unknown"
	}
}

// err converts a failed status into the error returned by the exported API
func (s traceStatus) err() error {
	switch s {
	case traceOK:
		return nil
	case traceDegenerate:
		return errors.Wrap(ErrDegenerateMoment, s.String())
	default:
		return errors.Wrap(ErrRegionNotFound, s.String())
	}
}

// traceResult is everything a successful trace measures
type traceResult struct {
	center  Point
	width   float64
	height  float64
	moments Moments
	border  []image.Point
	chain   []Direction
}

// tracer walks the border of the bright region holding a seed pixel
type tracer struct {
	cls            classifier
	computeMoments bool
	// expectedWidth bounds the rightward scan for the first border pixel, 0 disables it
	expectedWidth float64
	accuracy      float64
	drawer        Drawer
}

// trace follows the border of the region containing (estU, estV) counterclockwise
// and accumulates its moments step by step.
func (t tracer) trace(estU, estV float64) (traceResult, traceStatus) {
	seedU := int(estU)
	seedV := int(estV)
	if !t.cls.area.Contains(seedU, seedV) {
		return traceResult{}, traceSeedNotInArea
	}
	if !t.cls.hasGoodLevel(seedU, seedV) {
		return traceResult{}, traceSeedTooDark
	}

	// Cross the region rightward until its border
	firstU := seedU
	firstV := seedV
	for t.cls.hasGoodLevel(firstU+1, firstV) && firstU < t.cls.area.UMax {
		if t.expectedWidth > 0 && math.Abs(estU-float64(firstU)) > t.expectedWidth/t.accuracy {
			return traceResult{}, traceTooWide
		}
		firstU++
	}

	firstDir, ok := nextFreemanElement(t.cls, firstU, firstV, Up)
	if !ok {
		return traceResult{}, traceIsolatedPixel
	}

	area := t.cls.area
	maxSteps := 8*area.Width*area.Height + 8

	res := traceResult{
		border: make([]image.Point, 0, 64),
		chain:  make([]Direction, 0, 64),
	}
	uMin, uMax := firstU, firstU
	vMin, vMax := firstV, firstV

	borderU := firstU
	borderV := firstV
	dir := firstDir
	for steps := 0; ; steps++ {
		if steps > maxSteps {
			return traceResult{}, traceNotClosed
		}
		if t.drawer != nil {
			t.drawer.DrawPoint(borderU, borderV, borderColor)
		}
		res.border = append(res.border, image.Pt(borderU, borderV))
		res.chain = append(res.chain, dir)

		inc := computeFreemanIncrement(borderU, borderV, dir, t.computeMoments)
		du, dv := dir.Step()
		borderU += du
		borderV += dv
		res.moments.M00 += inc.dS
		res.moments.M10 += inc.dMu
		res.moments.M01 += inc.dMv
		if t.computeMoments {
			res.moments.M11 += inc.dMuv
			res.moments.M20 += inc.dMu2
			res.moments.M02 += inc.dMv2
		}
		if !area.Contains(borderU, borderV) {
			return traceResult{}, traceLeftArea
		}

		uMin = minInt(uMin, borderU)
		uMax = maxInt(uMax, borderU)
		vMin = minInt(vMin, borderV)
		vMax = maxInt(vMax, borderV)

		dir, ok = nextFreemanElement(t.cls, borderU, borderV, dir)
		if !ok {
			return traceResult{}, traceBrokenBorder
		}
		if borderU == firstU && borderV == firstV && dir == firstDir {
			break
		}
	}

	// A surface of zero or one means the center of gravity can't be trusted
	m00 := res.moments.M00
	if m00 == 0 || m00 == 1 {
		return traceResult{}, traceDegenerate
	}
	res.center = Point{
		U: res.moments.M10 / m00,
		V: res.moments.M01 / m00,
	}
	if !t.cls.hasGoodLevel(res.center.Pixel()) {
		return traceResult{}, traceDarkCenter
	}
	res.width = float64(uMax - uMin)
	res.height = float64(vMax - vMin)
	return res, traceOK
}
