package game

const (
	// Landmarks is the number of joints reported per hand
	Landmarks = 21

	JointWrist            = 0
	JointIndexTip         = 8
	JointMiddleFingerBase = 9
)

// Hand is an ordered list of joints normalized to [0, 1].
type Hand []Point

func (h Hand) Joint(i int) (Point, bool) {
	if i < 0 || i >= len(h) {
		return Point{}, false
	}
	return h[i], true
}

// Mirror flips the hand horizontally, as a selfie camera shows it
func (h Hand) Mirror() Hand {
	m := make(Hand, len(h))
	for i, p := range h {
		m[i] = Point{X: 1 - p.X, Y: p.Y}
	}
	return m
}

// Scale maps a normalized point into screen space.
func (p Point) Scale(width, height float64) Point {
	return Point{X: p.X * width, Y: p.Y * height}
}
