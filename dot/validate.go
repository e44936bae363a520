package dot

import (
	"image"
	"math"
)

const (
	// validationEpsilon loosens the size bounds against rounding
	validationEpsilon = 0.001
	// innerCoef and outerCoef scale the half size into the radius of the sampled rings
	innerCoef = 0.4
	outerCoef = 1.6
	// innerStep and outerStep are the angular steps of the rings, in radians
	innerStep = 0.4
	outerStep = 0.3
)

// IsValid checks that this dot looks like the wanted one:
//   - width and height within [wanted*accuracy, wanted/accuracy], surface within
//     [wanted*accuracy^2, wanted/accuracy^2], using the wanted dot's accuracy;
//   - an inner ellipse at 0.4 of the half size is made of pixels with the wanted
//     dot's in level. Samples outside area fail the check;
//   - an outer ellipse at 1.6 of the half size is made of pixels with the wanted
//     dot's out level. Samples outside area are skipped.
func (d *Dot) IsValid(img *image.Gray, area Area, wanted *Dot) bool {
	accuracy := wanted.accuracy
	if !(wanted.width*accuracy-validationEpsilon < d.width) {
		return false
	}
	if !(d.width < wanted.width/accuracy+validationEpsilon) {
		return false
	}
	if !(wanted.height*accuracy-validationEpsilon < d.height) {
		return false
	}
	if !(d.height < wanted.height/accuracy+validationEpsilon) {
		return false
	}
	if !(wanted.surface*(accuracy*accuracy)-validationEpsilon < d.surface) {
		return false
	}
	if !(d.surface < wanted.surface/(accuracy*accuracy)+validationEpsilon) {
		return false
	}

	// Sizes match, now the costly checks: a bright ellipse inside the dot,
	// then a dark ellipse around it.
	cls := newClassifier(img, area, wanted.levels)
	for alpha := 0.0; alpha < 2*math.Pi; alpha += innerStep {
		u := int(d.center.U + math.Sin(alpha)*innerCoef*d.width/2)
		v := int(d.center.V + math.Cos(alpha)*innerCoef*d.height/2)
		if d.drawer != nil {
			d.drawer.DrawCross(u, v, 1, ringColor)
		}
		if !cls.hasGoodLevel(u, v) {
			return false
		}
	}
	for alpha := 0.0; alpha < 2*math.Pi; alpha += outerStep {
		u := int(d.center.U + math.Sin(alpha)*outerCoef*d.width/2)
		v := int(d.center.V + math.Cos(alpha)*outerCoef*d.height/2)
		if d.drawer != nil {
			d.drawer.DrawCross(u, v, 1, ringColor)
		}
		if u < area.UMin || u >= area.UMax || v < area.VMin || v >= area.VMax {
			continue
		}
		if !cls.hasReverseLevel(u, v) {
			return false
		}
	}
	return true
}
