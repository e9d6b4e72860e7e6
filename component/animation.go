package component

// Animation is a tick-driven frame counter for a horizontal sprite strip. It
// holds no images; the render layer maps Frame() onto whatever sheet it owns.
type Animation struct {
	FrameCount    int
	TicksPerFrame int
	Loop          bool

	frame   int
	timer   int
	reverse bool
	done    bool
}

// NewAnimation creates an animation of frameCount frames, each shown for
// ticksPerFrame ticks (defaults to 1 if <= 0).
func NewAnimation(frameCount, ticksPerFrame int, loop bool) *Animation {
	if frameCount <= 0 {
		frameCount = 1
	}
	if ticksPerFrame <= 0 {
		ticksPerFrame = 1
	}
	a := &Animation{FrameCount: frameCount, TicksPerFrame: ticksPerFrame, Loop: loop}
	a.Reset()
	return a
}

// Reset rewinds to the first frame and plays forward.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.frame = 0
	a.timer = a.TicksPerFrame
	a.reverse = false
	a.done = false
}

// PlayReverse starts one step past the last frame and counts down to frame 0.
func (a *Animation) PlayReverse() {
	if a == nil {
		return
	}
	a.frame = a.FrameCount
	a.timer = a.TicksPerFrame
	a.reverse = true
	a.done = false
}

// Update advances the animation by one tick. It reports true on the tick the
// cycle completes: when a forward animation steps past its last frame, or a
// reversed one reaches frame 0. Finished non-looping animations hold their
// final frame.
func (a *Animation) Update() bool {
	if a == nil || a.done {
		return false
	}
	a.timer--
	if a.timer > 0 {
		return false
	}
	a.timer = a.TicksPerFrame

	if a.reverse {
		a.frame--
		if a.frame <= 0 {
			a.frame = 0
			a.done = true
			return true
		}
		return false
	}

	a.frame++
	if a.frame < a.FrameCount {
		return false
	}
	if a.Loop {
		a.frame = 0
	} else {
		a.frame = a.FrameCount - 1
		a.done = true
	}
	return true
}

// Frame is the frame index to draw.
func (a *Animation) Frame() int {
	if a == nil {
		return 0
	}
	if a.frame >= a.FrameCount {
		return a.FrameCount - 1
	}
	return a.frame
}

// Done reports whether a non-looping animation has finished.
func (a *Animation) Done() bool {
	return a != nil && a.done
}
