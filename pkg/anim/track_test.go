package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/style"
)

func numTok(n float64) parsed.Token { return parsed.Token{Kind: parsed.TokenNumber, Number: n} }

func TestBuildTracksFillsImplicitEndpointsFromCurrent(t *testing.T) {
	kf := parsed.Keyframes{
		Name: "fade",
		Steps: []parsed.KeyframeStep{
			{Step: 100, Declarations: []parsed.Declaration{{Property: "opacity", Value: []parsed.Token{numTok(1)}}}},
		},
	}
	current := map[string]style.ComputedValue{"opacity": {Kind: style.KindNumber, Number: 0.2}}
	tracks, err := BuildTracks(kf, style.DefaultSizes(), current)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "opacity", tracks[0].Property)
	require.Len(t, tracks[0].Keyframes, 2)
	assert.Equal(t, 0.0, tracks[0].Keyframes[0].Time)
	assert.InDelta(t, 0.2, tracks[0].Keyframes[0].Value.Number, 1e-9)
	assert.Equal(t, 1.0, tracks[0].Keyframes[1].Time)
	assert.InDelta(t, 1.0, tracks[0].Keyframes[1].Value.Number, 1e-9)
}

func TestBuildTracksHoldsLastValueWhenNo100PercentStep(t *testing.T) {
	kf := parsed.Keyframes{
		Name: "fade",
		Steps: []parsed.KeyframeStep{
			{Step: 0, Declarations: []parsed.Declaration{{Property: "opacity", Value: []parsed.Token{numTok(0)}}}},
			{Step: 50, Declarations: []parsed.Declaration{{Property: "opacity", Value: []parsed.Token{numTok(1)}}}},
		},
	}
	tracks, err := BuildTracks(kf, style.DefaultSizes(), nil)
	require.NoError(t, err)
	require.Len(t, tracks[0].Keyframes, 3)
	last := tracks[0].Keyframes[2]
	assert.Equal(t, 1.0, last.Time)
	assert.InDelta(t, 1.0, last.Value.Number, 1e-9)
}

func TestTrackSampleAtInterpolatesBetweenBracketingKeyframes(t *testing.T) {
	track := Track{Keyframes: []Keyframe{
		{Time: 0, Value: style.ComputedValue{Kind: style.KindNumber, Number: 0}},
		{Time: 1, Value: style.ComputedValue{Kind: style.KindNumber, Number: 10}},
	}}
	v, ok := track.sampleAt(0.3)
	require.True(t, ok)
	assert.InDelta(t, 3, v.Number, 1e-9)
}

func TestTrackSampleAtColorInterpolatesPerChannel(t *testing.T) {
	track := Track{Keyframes: []Keyframe{
		{Time: 0, Value: style.ComputedValue{Kind: style.KindColor, Color: style.Color{R: 0, G: 0, B: 0, A: 255}}},
		{Time: 1, Value: style.ComputedValue{Kind: style.KindColor, Color: style.Color{R: 200, G: 0, B: 0, A: 255}}},
	}}
	v, ok := track.sampleAt(0.5)
	require.True(t, ok)
	assert.Equal(t, uint8(100), v.Color.R)
}

func TestInterpolateUnsupportedKindHoldsEarlierValue(t *testing.T) {
	a := style.ComputedValue{Kind: style.KindKeyword, Keyword: "flex"}
	b := style.ComputedValue{Kind: style.KindKeyword, Keyword: "grid"}
	v, ok := interpolate(a, b, 0.5)
	assert.False(t, ok)
	assert.Equal(t, "flex", v.Keyword)
}
