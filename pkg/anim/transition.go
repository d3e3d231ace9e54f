package anim

import (
	"github.com/kiln-ui/kiln/pkg/style"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// transitionKey identifies one watched longhand on one node.
type transitionKey struct {
	node tree.ID
	prop string
}

// Transition is a single in-flight tween toward a newly-observed value,
// created when a watched longhand's computed value changes (spec.md §4.4:
// "if the tracked longhand value differs from its previously recorded
// value, create a local tween animator with the given duration/delay/
// timing and begin animating toward the new value"). StartedAt is an
// absolute Engine.now timestamp rather than an elapsed counter, so
// restarting a transition mid-flight (From/To/StartedAt reassigned) needs
// no separate reset step.
type Transition struct {
	Property  string
	From, To  style.ComputedValue
	Duration  float64
	Delay     float64
	Timing    string
	StartedAt float64
}

// sampleAbsolute returns the tween's value at absolute time now, and
// whether it has finished (past duration+delay, at which point the
// watcher drops it and future frames pass target through unmodified).
func (t *Transition) sampleAbsolute(now float64) (style.ComputedValue, bool) {
	if t.Duration <= 0 {
		return t.To, true
	}
	elapsed := now - t.StartedAt
	raw := (elapsed - t.Delay) / t.Duration
	if raw < 0 {
		return t.From, false
	}
	if raw >= 1 {
		return t.To, true
	}
	fn := Timing(t.Timing)
	u := float64(fn(float32(raw), 0, 1, 1))
	v, ok := interpolate(t.From, t.To, u)
	if !ok {
		return t.To, false
	}
	return v, false
}
