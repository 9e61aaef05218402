package animations

// Animation cycles frame indices [First, Last] at a fixed tick rate.
type Animation struct {
	First        int
	Last         int
	SpeedInTps   float32 // ticks before advancing to the next frame
	frameCounter float32
	frame        int
}

func NewAnimation(first, last int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame++
		if a.frame > a.Last {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
}
