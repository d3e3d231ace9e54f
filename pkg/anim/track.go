package anim

import (
	"sort"

	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/style"
)

// Keyframe is one sample point of a Track, time normalized to [0,1] (spec.md
// §4.4's step 0..100 scaled down).
type Keyframe struct {
	Time  float64
	Value style.ComputedValue
}

// Track is a single longhand's timeline, extracted from an @keyframes block
// (spec.md's "per-longhand timeline extracted from an animation for
// efficient sampling"). Grounded on
// original_source/src/animation.rs's Track/Keyframe shape.
type Track struct {
	Property  string
	Keyframes []Keyframe
}

// BuildTracks resolves kf's steps into one Track per longhand referenced,
// filling implicit 0%/100% endpoints from current (the node's computed
// style before the animator runs) when a step doesn't cover them — spec.md
// §4.4's "filling implicit 0% and 100% endpoints from the node's current
// computed style ... if missing."
func BuildTracks(kf parsed.Keyframes, sizes style.Sizes, current map[string]style.ComputedValue) ([]Track, error) {
	steps := append([]parsed.KeyframeStep(nil), kf.Steps...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].Step < steps[j].Step })

	byProp := map[string][]Keyframe{}
	var order []string
	for _, st := range steps {
		for _, d := range st.Declarations {
			for _, longhand := range style.ExpandShorthand(d) {
				if len(longhand.Value) == 0 {
					continue
				}
				v, err := sizes.Resolve(longhand.Value[0], 0)
				if err != nil {
					return nil, err
				}
				if _, seen := byProp[longhand.Property]; !seen {
					order = append(order, longhand.Property)
				}
				byProp[longhand.Property] = append(byProp[longhand.Property], Keyframe{Time: st.Step / 100, Value: v})
			}
		}
	}
	sort.Strings(order)

	tracks := make([]Track, 0, len(order))
	for _, prop := range order {
		kfs := byProp[prop]
		if kfs[0].Time > 0 {
			start := kfs[0].Value
			if cur, ok := current[prop]; ok {
				start = cur
			}
			kfs = append([]Keyframe{{Time: 0, Value: start}}, kfs...)
		}
		if kfs[len(kfs)-1].Time < 1 {
			end := kfs[len(kfs)-1].Value
			if cur, ok := current[prop]; ok {
				end = cur
			}
			kfs = append(kfs, Keyframe{Time: 1, Value: end})
		}
		tracks = append(tracks, Track{Property: prop, Keyframes: kfs})
	}
	return tracks, nil
}

// sampleAt finds the keyframe pair bracketing u and interpolates between
// them, per spec.md §4.4's per-kind rules. The second return reports
// whether the property kind supports interpolation at all; an unsupported
// kind holds at the earlier keyframe's value.
func (t Track) sampleAt(u float64) (style.ComputedValue, bool) {
	kfs := t.Keyframes
	if len(kfs) == 0 {
		return style.ComputedValue{}, false
	}
	if u <= kfs[0].Time {
		return kfs[0].Value, true
	}
	last := kfs[len(kfs)-1]
	if u >= last.Time {
		return last.Value, true
	}
	for i := 1; i < len(kfs); i++ {
		if u <= kfs[i].Time {
			a, b := kfs[i-1], kfs[i]
			span := b.Time - a.Time
			local := 0.0
			if span > 0 {
				local = (u - a.Time) / span
			}
			return interpolate(a.Value, b.Value, local)
		}
	}
	return last.Value, true
}

// interpolate blends a toward b by fraction t, per spec.md §4.4: lengths
// and percentages interpolate linearly (kiln resolves every length to
// device pixels before this point, so there is no "different unit" case to
// reject); colors interpolate per-channel in sRGB; any other kind is
// non-animatable and holds at a.
func interpolate(a, b style.ComputedValue, t float64) (style.ComputedValue, bool) {
	if a.Kind != b.Kind {
		return a, false
	}
	switch a.Kind {
	case style.KindLength:
		return style.ComputedValue{Kind: style.KindLength, Length: lerp(a.Length, b.Length, t), Unit: a.Unit}, true
	case style.KindPercentage:
		return style.ComputedValue{Kind: style.KindPercentage, Length: lerp(a.Length, b.Length, t)}, true
	case style.KindNumber:
		return style.ComputedValue{Kind: style.KindNumber, Number: lerp(a.Number, b.Number, t)}, true
	case style.KindColor:
		return style.ComputedValue{Kind: style.KindColor, Color: lerpColor(a.Color, b.Color, t)}, true
	default:
		return a, false
	}
}

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func lerpColor(a, b style.Color, t float64) style.Color {
	return style.Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(lerp(float64(a), float64(b), t))
}
