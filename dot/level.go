package dot

import "image"

const (
	// MinInLevel is the lowest in level a dot may use. Pixels darker than this
	// never belong to a dot, whatever the seed intensity was.
	MinInLevel = 70
	// DefaultInLevel is the in level of a dot that was never seeded
	DefaultInLevel = 210
	// DefaultOutLevel is the out level of a dot that was never seeded
	DefaultOutLevel = 150
)

// levels holds the brightness thresholds classifying pixels against a dot
type levels struct {
	in  int
	out int
}

// seedLevels derives both thresholds from the intensity of a seed pixel
func seedLevels(value uint8, accuracy float64) levels {
	scaled := int(float64(value) * accuracy)
	return levels{
		in:  floorInLevel(scaled),
		out: scaled,
	}
}

func floorInLevel(in int) int {
	if in > MinInLevel {
		return in
	}
	return MinInLevel
}

// classifier answers the pixel level questions of one operation: it binds an
// image, the search area of the operation and the thresholds in use.
type classifier struct {
	img    *image.Gray
	area   Area
	levels levels
}

func newClassifier(img *image.Gray, area Area, lv levels) classifier {
	return classifier{
		img:    img,
		area:   area,
		levels: lv,
	}
}

// hasGoodLevel reports whether (u, v) is in the area and bright enough to be inside the dot
func (c classifier) hasGoodLevel(u, v int) bool {
	if !c.area.Contains(u, v) {
		return false
	}
	return int(intensity(c.img, u, v)) > c.levels.in
}

// hasReverseLevel reports whether (u, v) is dark enough to surround the dot.
// The search area is not checked; pixels outside the image are never dark.
func (c classifier) hasReverseLevel(u, v int) bool {
	if !isInImage(c.img, u, v) {
		return false
	}
	return int(intensity(c.img, u, v)) < c.levels.out
}
