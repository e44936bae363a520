package dot

// Direction is a Freeman chain code. Codes grow clockwise on screen (rows go down):
// 0 is right, 2 is down, 4 is left and 6 is up; odd codes are the diagonals between them.
type Direction int

const (
	Right Direction = iota
	DownRight
	Down
	DownLeft
	Left
	UpLeft
	Up
	UpRight
)

var freemanSteps = [8][2]int{
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
}

// freemanTurnOrder lists the turns tried at every border pixel, relative to the
// incoming direction: right, diagonal right, straight, diagonal left, left,
// diagonal back left, back, diagonal back right.
var freemanTurnOrder = [8]Direction{2, 1, 0, 7, 6, 5, 4, 3}

// Step returns the unit displacement of the direction
func (d Direction) Step() (int, int) {
	step := freemanSteps[d]
	return step[0], step[1]
}

func (d Direction) turn(k Direction) Direction {
	return (d + k) % 8
}

// nextFreemanElement finds the direction leaving the border pixel (u, v) so that the
// dot is walked around counterclockwise. It fails when (u, v) itself is not inside
// the dot or when no neighbor is.
func nextFreemanElement(cls classifier, u, v int, element Direction) (Direction, bool) {
	if !cls.hasGoodLevel(u, v) {
		return element, false
	}
	for _, k := range freemanTurnOrder {
		candidate := element.turn(k)
		du, dv := candidate.Step()
		if cls.hasGoodLevel(u+du, v+dv) {
			return candidate, true
		}
	}
	return element, false
}

// freemanIncrement is the contribution of one border step to the raw moments
type freemanIncrement struct {
	dS   float64
	dMu  float64
	dMv  float64
	dMuv float64
	dMu2 float64
	dMv2 float64
}

// computeFreemanIncrement returns the moment increments for the step leaving the
// border pixel (uP, vP) along element. Summed over a closed border they give the
// moments of the polygon joining the border pixel centers (discrete Green's theorem).
// Second order increments stay zero unless withMoments is set.
func computeFreemanIncrement(uP, vP int, element Direction, withMoments bool) freemanIncrement {
	u := float64(uP)
	v := float64(vP)
	var inc freemanIncrement
	switch element {
	case Right:
		inc.dS = v
		inc.dMu = 0.0
		inc.dMv = 0.5 * v * v
		if withMoments {
			inc.dMuv = 0.25 * v * v * (2*u + 1)
			inc.dMu2 = 0
			inc.dMv2 = 1.0 / 3.0 * v * v * v
		}
	case DownRight:
		inc.dS = v + 0.5
		inc.dMu = -(0.5*u*(u+1) + 1.0/6.0)
		inc.dMv = 0.5*v*(v+1) + 1.0/6.0
		if withMoments {
			halfU := 0.5 * u
			inc.dMuv = v*v*(0.25+halfU) + v*(1.0/3.0+halfU) + 1.0/6.0*u + 0.125
			inc.dMu2 = -1.0/3.0*u*(u*u+1.5*u+1.0) - 1.0/12.0
			inc.dMv2 = 1.0/3.0*v*(v*v+1.5*v+1.0) + 1.0/12.0
		}
	case Down:
		inc.dS = 0.0
		inc.dMu = -0.5 * u * u
		inc.dMv = 0.0
		if withMoments {
			inc.dMuv = 0
			inc.dMu2 = -1.0 / 3.0 * u * u * u
			inc.dMv2 = 0
		}
	case DownLeft:
		inc.dS = -v - 0.5
		inc.dMu = -(0.5*u*(u-1) + 1.0/6.0)
		inc.dMv = -(0.5*v*(v+1) + 1.0/6.0)
		if withMoments {
			halfU := 0.5 * u
			inc.dMuv = v*v*(0.25-halfU) + v*(1.0/3.0-halfU) - 1.0/6.0*u + 0.125
			inc.dMu2 = -1.0/3.0*u*(u*u-1.5*u+1.0) - 1.0/12.0
			inc.dMv2 = -1.0/3.0*v*(v*v+1.5*v+1.0) - 1.0/12.0
		}
	case Left:
		inc.dS = -v
		inc.dMu = 0.0
		inc.dMv = -0.5 * v * v
		if withMoments {
			inc.dMuv = -0.25 * v * v * (2*u - 1)
			inc.dMu2 = 0
			inc.dMv2 = -1.0 / 3.0 * v * v * v
		}
	case UpLeft:
		inc.dS = -v + 0.5
		inc.dMu = 0.5*u*(u-1) + 1.0/6.0
		inc.dMv = -(0.5*v*(v-1) + 1.0/6.0)
		if withMoments {
			halfU := 0.5 * u
			inc.dMuv = v*v*(0.25-halfU) - v*(1.0/3.0-halfU) - 1.0/6.0*u + 0.125
			inc.dMu2 = 1.0/3.0*u*(u*u-1.5*u+1.0) - 1.0/12.0
			inc.dMv2 = -1.0/3.0*v*(v*v-1.5*v+1.0) - 1.0/12.0
		}
	case Up:
		inc.dS = 0.0
		inc.dMu = 0.5 * u * u
		inc.dMv = 0.0
		if withMoments {
			inc.dMuv = 0
			inc.dMu2 = 1.0 / 3.0 * u * u * u
			inc.dMv2 = 0
		}
	case UpRight:
		inc.dS = v - 0.5
		inc.dMu = 0.5*u*(u+1) + 1.0/6.0
		inc.dMv = 0.5*v*(v-1) + 1.0/6.0
		if withMoments {
			halfU := 0.5 * u
			inc.dMuv = v*v*(0.25+halfU) - v*(1.0/3.0+halfU) + 1.0/6.0*u + 0.125
			inc.dMu2 = 1.0/3.0*u*(u*u+1.5*u+1.0) + 1.0/12.0
			inc.dMv2 = 1.0/3.0*v*(v*v-1.5*v+1.0) - 1.0/12.0
		}
	}
	return inc
}
