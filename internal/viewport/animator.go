package viewport

import "time"

// Standard zoom durations.
const (
	ZoomInDuration  = 600 * time.Millisecond
	ZoomOutDuration = 500 * time.Millisecond
)

// Animator moves the viewBox from its current value to a target over time.
// At most one animation is in flight; starting another cancels it.
type Animator struct {
	sched   Scheduler
	current Rect
	apply   func(Rect)

	frame  FrameID
	active bool
	target Rect
}

// NewAnimator returns an animator starting at initial. apply is called with
// every frame's (rounded) viewBox and may be nil.
func NewAnimator(sched Scheduler, initial Rect, apply func(Rect)) *Animator {
	if apply == nil {
		apply = func(Rect) {}
	}
	return &Animator{sched: sched, current: initial, apply: apply}
}

// Current returns the last applied viewBox.
func (a *Animator) Current() Rect { return a.current }

// Animating reports whether an animation is in flight.
func (a *Animator) Animating() bool { return a.active }

// Target returns the destination of the in-flight animation, or the current
// viewBox when idle.
func (a *Animator) Target() Rect {
	if a.active {
		return a.target
	}
	return a.current
}

// AnimateTo starts an eased animation from the current viewBox to target.
// Any in-flight animation is cancelled first; its remaining frames never
// run. A non-positive duration completes on the first frame.
func (a *Animator) AnimateTo(target Rect, d time.Duration) {
	a.Cancel()

	from := a.current
	start := a.sched.Now()

	var step func(now time.Time)
	step = func(now time.Time) {
		progress := 1.0
		if d > 0 {
			progress = float64(now.Sub(start)) / float64(d)
			if progress > 1 {
				progress = 1
			}
			if progress < 0 {
				progress = 0
			}
		}

		vb := Lerp(from, target, EaseInOutCubic(progress)).Rounded()
		a.current = vb
		a.apply(vb)

		if progress < 1 {
			a.frame = a.sched.RequestFrame(step)
			return
		}
		a.active = false
	}

	a.target = target
	a.active = true
	a.frame = a.sched.RequestFrame(step)
}

// Cancel stops the in-flight animation, leaving the viewBox where it is.
func (a *Animator) Cancel() {
	if !a.active {
		return
	}
	a.sched.CancelFrame(a.frame)
	a.active = false
}
