// Package anim implements the per-element animator and transition engine
// (spec.md §4.4): sampling a stylesheet's @keyframes against wall time and
// blending the result onto the cascade's in-progress computed style.
package anim

import "github.com/tanema/gween/ease"

// timingFunctions maps the seven CSS easing keywords spec.md §4.4 names to
// gween's TweenFunc adapters (`func(t, begin, change, duration float32)
// float32`). gween's bundled ease package has no exact cubic-bezier match
// for CSS's ease/ease-in/ease-out/ease-in-out, so those four use gween's
// closest quadratic equivalent; step-start/step-end have no gween
// counterpart at all and are hand-written below.
var timingFunctions = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"ease":        ease.OutQuad,
	"ease-in":     ease.InQuad,
	"ease-out":    ease.OutQuad,
	"ease-in-out": ease.InOutQuad,
	"step-start":  stepStart,
	"step-end":    stepEnd,
}

// Timing resolves a CSS timing-function keyword to a TweenFunc, defaulting
// to ease-in-out style's engine default when name is unrecognized.
func Timing(name string) ease.TweenFunc {
	if fn, ok := timingFunctions[name]; ok {
		return fn
	}
	return ease.InOutQuad
}

func stepStart(t, begin, change, duration float32) float32 {
	if t <= 0 {
		return begin
	}
	return begin + change
}

func stepEnd(t, begin, change, duration float32) float32 {
	if t >= duration {
		return begin + change
	}
	return begin
}
