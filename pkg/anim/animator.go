package anim

import "github.com/kiln-ui/kiln/pkg/tree"

// Animator is one running @keyframes instance bound to a tree node, sampling
// its Tracks against elapsed wall time per spec.md §4.4's duration/delay/
// iteration-count/direction/fill-mode state machine.
type Animator struct {
	Node   tree.ID
	Name   string
	Tracks []Track
	Config tree.AnimationConfig
}

// Sample computes the eased progress u in [0,1] for elapsed seconds since
// the animator started, and whether it should contribute an override this
// frame at all.
//
// raw = (elapsed-delay)/duration. Before the delay elapses (raw<0),
// backwards/both fill holds at the first keyframe; normal/forwards apply
// nothing yet. Past the last iteration (raw>=iterations, non-infinite),
// forwards/both fill holds at the last keyframe; none/backwards applies
// nothing. In between, the iteration index selects alternation and the
// fractional part is eased by the configured timing function.
func (a *Animator) Sample(elapsed float64) (progress float64, apply bool) {
	cfg := a.Config
	if cfg.Duration <= 0 {
		return 0, false
	}
	raw := (elapsed - cfg.Delay) / cfg.Duration

	if raw < 0 {
		switch cfg.FillMode {
		case tree.FillBackwards, tree.FillBoth:
			return a.ease(0, 0), true
		default:
			return 0, false
		}
	}

	if !cfg.Infinite && raw >= cfg.Iterations {
		last := int(cfg.Iterations)
		if last > 0 {
			last--
		}
		switch cfg.FillMode {
		case tree.FillForwards, tree.FillBoth:
			return a.ease(last, 1), true
		default:
			return 0, false
		}
	}

	iteration := int(raw)
	f := raw - float64(iteration)
	return a.ease(iteration, f), true
}

// ease flips or alternates f per animation-direction, then applies the
// configured timing function.
func (a *Animator) ease(iteration int, f float64) float64 {
	cfg := a.Config
	reverse := false
	switch cfg.Direction {
	case tree.AnimationReverse:
		reverse = true
	case tree.AnimationAlternate:
		reverse = iteration%2 == 1
	case tree.AnimationAlternateReverse:
		reverse = iteration%2 == 0
	}
	if reverse {
		f = 1 - f
	}
	fn := Timing(cfg.Timing)
	return float64(fn(float32(f), 0, 1, 1))
}
