package dot

import "testing"

func TestFreemanOppositeSteps(t *testing.T) {
	for d := Right; d <= UpRight; d++ {
		du, dv := d.Step()
		ou, ov := d.turn(4).Step()
		if du+ou != 0 || dv+ov != 0 {
			t.Errorf("Direction %d and its opposite don't cancel: (%d, %d) + (%d, %d)", d, du, dv, ou, ov)
		}
	}
	if du, dv := Down.Step(); du != 0 || dv != 1 {
		t.Errorf("Down should increase rows, got (%d, %d)", du, dv)
	}
}

func TestNextFreemanElementIsolated(t *testing.T) {
	img := newBlack(10, 10)
	fillRect(img, 5, 5, 5, 5, 255)
	cls := newClassifier(img, ImageArea(img), levels{in: 100, out: 100})
	if _, ok := nextFreemanElement(cls, 5, 5, Up); ok {
		t.Error("An isolated pixel should have no next border element")
	}
	if _, ok := nextFreemanElement(cls, 4, 5, Up); ok {
		t.Error("A dark pixel should have no next border element")
	}
}

func TestNextFreemanElementPriority(t *testing.T) {
	img := newBlack(10, 10)
	// Both the pixel above and the pixel on the left of (5, 5) are bright:
	// coming upward, going straight wins over turning left.
	fillRect(img, 4, 4, 5, 5, 255)
	cls := newClassifier(img, ImageArea(img), levels{in: 100, out: 100})
	next, ok := nextFreemanElement(cls, 5, 5, Up)
	if !ok || next != Up {
		t.Errorf("Wrong next element: %d (ok=%v), expected: %d", next, ok, Up)
	}
	// On the top right corner the walk turns left
	next, ok = nextFreemanElement(cls, 5, 4, Up)
	if !ok || next != Left {
		t.Errorf("Wrong next element: %d (ok=%v), expected: %d", next, ok, Left)
	}
}

func TestFreemanIncrementsSquare(t *testing.T) {
	// Walk the border of [2, 4] x [3, 5] the way the tracer does and sum the increments
	path := []struct {
		u, v int
		dir  Direction
	}{
		{4, 5, Up}, {4, 4, Up}, {4, 3, Left}, {3, 3, Left}, {2, 3, Down},
		{2, 4, Down}, {2, 5, Right}, {3, 5, Right},
	}
	var m Moments
	for _, step := range path {
		inc := computeFreemanIncrement(step.u, step.v, step.dir, true)
		m.M00 += inc.dS
		m.M10 += inc.dMu
		m.M01 += inc.dMv
		m.M20 += inc.dMu2
		m.M02 += inc.dMv2
		m.M11 += inc.dMuv
	}
	if m.M00 != 4 {
		t.Errorf("Wrong surface: %v, expected: 4", m.M00)
	}
	center := m.Centroid()
	if center.U != 3 || center.V != 4 {
		t.Errorf("Wrong center: %v, expected: (3, 4)", center)
	}
	mu20, mu02, mu11 := m.Centered()
	// Variance of a uniform distribution over a segment of length 2
	if diff := mu20 - 4.0/12.0; diff > eps || diff < -eps {
		t.Errorf("Wrong mu20: %v, expected: %v", mu20, 4.0/12.0)
	}
	if diff := mu02 - 4.0/12.0; diff > eps || diff < -eps {
		t.Errorf("Wrong mu02: %v, expected: %v", mu02, 4.0/12.0)
	}
	if mu11 > eps || mu11 < -eps {
		t.Errorf("Wrong mu11: %v, expected: 0", mu11)
	}
}

func TestFreemanIncrementsWithoutMoments(t *testing.T) {
	inc := computeFreemanIncrement(7, 9, DownRight, false)
	if inc.dMuv != 0 || inc.dMu2 != 0 || inc.dMv2 != 0 {
		t.Errorf("Second order increments should be zero, got %+v", inc)
	}
	if inc.dS != 9.5 {
		t.Errorf("Wrong surface increment: %v, expected: 9.5", inc.dS)
	}
}
