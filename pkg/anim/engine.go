package anim

import (
	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/style"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// runningAnimator pairs a live Animator with the wall-clock time it began,
// so Engine can compute elapsed seconds without storing per-frame state on
// the animator itself.
type runningAnimator struct {
	anim    *Animator
	started float64
}

// Engine is the concrete style.AnimationSource: it tracks one running
// animator and one in-flight transition per (node, longhand) and samples
// both against a wall-clock accumulator driven by Tick.
//
// Transitions read the PREVIOUS frame's tree.Element.Transition config
// rather than the one the cascade is about to compute this frame — the
// cascade's step 6 (transitions watch the pre-transition value) runs
// before step 7 (apply() writes transition-duration etc. onto the
// Element), so a transition's own configuration for this frame isn't
// written yet when Engine needs to decide whether to start one. This
// one-frame lag is a deliberate simplification: a transition's declared
// duration takes effect starting the frame after the CSS rule that sets it
// is matched, not the same frame.
type Engine struct {
	now float64

	sheet parsed.StyleSheet
	sizes style.Sizes

	animators   map[tree.ID]*runningAnimator
	transitions map[transitionKey]*Transition
	prevConfig  map[tree.ID]tree.TransitionConfig
	prevValues  map[transitionKey]style.ComputedValue
}

// NewEngine returns an Engine reading keyframes from sheet and resolving
// keyframe lengths against sizes.
func NewEngine(sheet parsed.StyleSheet, sizes style.Sizes) *Engine {
	return &Engine{
		sheet:       sheet,
		sizes:       sizes,
		animators:   map[tree.ID]*runningAnimator{},
		transitions: map[transitionKey]*Transition{},
		prevConfig:  map[tree.ID]tree.TransitionConfig{},
		prevValues:  map[transitionKey]style.ComputedValue{},
	}
}

// Tick advances the engine's wall clock by dt seconds (the frame's elapsed
// time, per spec.md §5's per-frame pipeline).
func (e *Engine) Tick(dt float64) {
	e.now += dt
}

// Sync reconciles the running animator/transition set against each
// element's current Animation/Transition config, called once per frame
// after the cascade writes those fields (spec.md §4.4). It must run before
// the NEXT frame's cascade, since that is when Overrides/Transition are
// consulted again.
func (e *Engine) Sync(tr *tree.Tree) error {
	seen := map[tree.ID]bool{}
	err := tr.Walk(func(el *tree.Element) error {
		id := el.ID
		if el.Animation == nil || el.Animation.Name == "" || !el.Animation.Running {
			delete(e.animators, id)
		} else if err := e.syncAnimator(id, el, seen); err != nil {
			return err
		}

		if el.Transition != nil {
			e.prevConfig[id] = *el.Transition
		} else {
			delete(e.prevConfig, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for id := range e.animators {
		if !seen[id] {
			delete(e.animators, id)
		}
	}
	return nil
}

func (e *Engine) syncAnimator(id tree.ID, el *tree.Element, seen map[tree.ID]bool) error {
	seen[id] = true
	running, ok := e.animators[id]
	if ok && running.anim.Name == el.Animation.Name {
		running.anim.Config = *el.Animation
		return nil
	}
	kf, ok := e.sheet.Keyframes[el.Animation.Name]
	if !ok {
		delete(e.animators, id)
		return nil
	}
	tracks, err := BuildTracks(kf, e.sizes, computedSnapshot(el))
	if err != nil {
		return err
	}
	e.animators[id] = &runningAnimator{
		anim:    &Animator{Node: id, Name: el.Animation.Name, Tracks: tracks, Config: *el.Animation},
		started: e.now,
	}
	return nil
}

func computedSnapshot(el *tree.Element) map[string]style.ComputedValue {
	snap := map[string]style.ComputedValue{}
	if len(el.Backgrounds) > 0 {
		snap["background-color"] = style.ComputedValue{Kind: style.KindColor, Color: style.Color(el.Backgrounds[0].Color)}
	}
	snap["color"] = style.ComputedValue{Kind: style.KindColor, Color: style.Color(el.Foreground)}
	snap["opacity"] = style.ComputedValue{Kind: style.KindNumber, Number: el.Opacity}
	return snap
}

// Overrides implements style.AnimationSource: it samples id's running
// animator, if any, at the engine's current wall time.
func (e *Engine) Overrides(id tree.ID) map[string]style.ComputedValue {
	running, ok := e.animators[id]
	if !ok {
		return nil
	}
	progress, apply := running.anim.Sample(e.now - running.started)
	if !apply {
		return nil
	}
	out := map[string]style.ComputedValue{}
	for _, track := range running.anim.Tracks {
		if v, ok := track.sampleAt(progress); ok {
			out[track.Property] = v
		}
	}
	return out
}

// Transition implements style.AnimationSource: it watches prop on id for a
// change from its previously recorded value, starting or continuing a
// tween toward target using the PREVIOUS frame's transition config (see
// Engine's doc comment for why).
func (e *Engine) Transition(id tree.ID, prop string, target style.ComputedValue) (style.ComputedValue, bool) {
	cfg, watched := e.prevConfig[id]
	key := transitionKey{node: id, prop: prop}
	prev, hadPrev := e.prevValues[key]
	e.prevValues[key] = target

	if t, inFlight := e.transitions[key]; inFlight {
		if hadPrev && !valuesEqual(prev, target) {
			// Value changed again mid-transition: restart from the tween's
			// current in-flight value, standard CSS transition-restart
			// semantics.
			v, _ := t.sampleAbsolute(e.now)
			t.From = v
			t.To = target
			t.StartedAt = e.now
		}
		v, done := t.sampleAbsolute(e.now)
		if done {
			delete(e.transitions, key)
			return target, false
		}
		return v, true
	}

	if !watched || cfg.Property != prop {
		return target, false
	}
	if !hadPrev || valuesEqual(prev, target) {
		return target, false
	}
	if e.animatorTargets(id, prop) {
		// Animation wins: a transition never starts on a longhand an
		// animator is already driving (spec.md §4.4).
		return target, false
	}
	t := &Transition{Property: prop, From: prev, To: target, Duration: cfg.Duration, Delay: cfg.Delay, Timing: cfg.Timing, StartedAt: e.now}
	e.transitions[key] = t
	v, _ := t.sampleAbsolute(e.now)
	return v, true
}

// animatorTargets reports whether id's currently running animator, if any,
// has a track for prop.
func (e *Engine) animatorTargets(id tree.ID, prop string) bool {
	running, ok := e.animators[id]
	if !ok {
		return false
	}
	for _, track := range running.anim.Tracks {
		if track.Property == prop {
			return true
		}
	}
	return false
}

func valuesEqual(a, b style.ComputedValue) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case style.KindColor:
		return a.Color == b.Color
	case style.KindLength, style.KindPercentage:
		return a.Length == b.Length
	case style.KindNumber:
		return a.Number == b.Number
	case style.KindKeyword:
		return a.Keyword == b.Keyword
	default:
		return a.String() == b.String()
	}
}
