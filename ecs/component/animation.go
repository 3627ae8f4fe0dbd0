package component

import "github.com/hajimehoshi/ebiten/v2"

// Animation steps through frames by distance travelled instead of time.
type Animation struct {
	Walk  []*ebiten.Image
	Climb []*ebiten.Image

	WalkIndex     int
	ClimbIndex    int
	WalkDistance  float64
	ClimbDistance float64

	// StepDistance is the number of pixels moved per frame advance.
	StepDistance float64
}

// Reset rewinds both cycles and their movement accumulators.
func (a *Animation) Reset() {
	a.WalkIndex = 0
	a.ClimbIndex = 0
	a.WalkDistance = 0
	a.ClimbDistance = 0
}

// Idle returns the first walk frame, or nil when the set is empty.
func (a *Animation) Idle() *ebiten.Image {
	if len(a.Walk) == 0 {
		return nil
	}
	return a.Walk[0]
}

var AnimationComponent = NewComponent[Animation]()
