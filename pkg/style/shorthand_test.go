package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ui/kiln/pkg/parsed"
)

func numTok(n float64) parsed.Token { return parsed.Token{Kind: parsed.TokenNumber, Number: n} }

func TestFourSidesOneValueAppliesToAll(t *testing.T) {
	decls := fourSides([]parsed.Token{numTok(4)}, "t", "r", "b", "l")
	require.Len(t, decls, 4)
	for _, d := range decls {
		assert.Equal(t, 4.0, d.Value[0].Number)
	}
}

func TestFourSidesTwoValuesSplitTopBottomLeftRight(t *testing.T) {
	decls := fourSides([]parsed.Token{numTok(1), numTok(2)}, "t", "r", "b", "l")
	byProp := map[string]float64{}
	for _, d := range decls {
		byProp[d.Property] = d.Value[0].Number
	}
	assert.Equal(t, 1.0, byProp["t"])
	assert.Equal(t, 1.0, byProp["b"])
	assert.Equal(t, 2.0, byProp["r"])
	assert.Equal(t, 2.0, byProp["l"])
}

func TestFourSidesFourValuesAppliedInOrder(t *testing.T) {
	decls := fourSides([]parsed.Token{numTok(1), numTok(2), numTok(3), numTok(4)}, "t", "r", "b", "l")
	byProp := map[string]float64{}
	for _, d := range decls {
		byProp[d.Property] = d.Value[0].Number
	}
	assert.Equal(t, 1.0, byProp["t"])
	assert.Equal(t, 2.0, byProp["r"])
	assert.Equal(t, 3.0, byProp["b"])
	assert.Equal(t, 4.0, byProp["l"])
}

func TestBorderSidesSplitsWidthAndColor(t *testing.T) {
	value := []parsed.Token{
		{Kind: parsed.TokenDimension, Number: 2, Unit: "px"},
		{Kind: parsed.TokenKeyword, Keyword: "solid"},
		{Kind: parsed.TokenColorHex, Hex: "ff0000"},
	}
	decls := borderSides(value, "border-top", "border-right", "border-bottom", "border-left")
	require.Len(t, decls, 8)
	var sawWidth, sawColor bool
	for _, d := range decls {
		switch d.Property {
		case "border-top-width":
			sawWidth = true
		case "border-top-color":
			sawColor = true
		}
	}
	assert.True(t, sawWidth)
	assert.True(t, sawColor)
}

func TestFlexLonghandsThreeValues(t *testing.T) {
	decls := flexLonghands([]parsed.Token{numTok(1), numTok(0), numTok(50)})
	require.Len(t, decls, 3)
	assert.Equal(t, "flex-grow", decls[0].Property)
	assert.Equal(t, "flex-shrink", decls[1].Property)
	assert.Equal(t, "flex-basis", decls[2].Property)
}

func TestGapLonghandsOneValueAppliesBothAxes(t *testing.T) {
	decls := gapLonghands([]parsed.Token{numTok(8)})
	require.Len(t, decls, 2)
	assert.Equal(t, 8.0, decls[0].Value[0].Number)
	assert.Equal(t, 8.0, decls[1].Value[0].Number)
}

func TestGridTemplateLonghandsSplitsOnSlash(t *testing.T) {
	value := []parsed.Token{
		numTok(1), numTok(2),
		{Kind: parsed.TokenKeyword, Keyword: "/"},
		numTok(3),
	}
	decls := gridTemplateLonghands(value)
	require.Len(t, decls, 2)
	assert.Equal(t, "grid-template-rows", decls[0].Property)
	assert.Len(t, decls[0].Value, 2)
	assert.Equal(t, "grid-template-columns", decls[1].Property)
	assert.Len(t, decls[1].Value, 1)
}

func TestAnimationLonghandsByGrammaticalType(t *testing.T) {
	value := []parsed.Token{
		{Kind: parsed.TokenTime, Number: 2},
		{Kind: parsed.TokenKeyword, Keyword: "ease-in-out"},
		{Kind: parsed.TokenKeyword, Keyword: "infinite"},
		{Kind: parsed.TokenKeyword, Keyword: "alternate"},
		{Kind: parsed.TokenKeyword, Keyword: "pulse"},
	}
	decls := animationLonghands(value)
	byProp := map[string]parsed.Token{}
	for _, d := range decls {
		byProp[d.Property] = d.Value[0]
	}
	assert.Equal(t, "ease-in-out", byProp["animation-timing-function"].Keyword)
	assert.Equal(t, "infinite", byProp["animation-iteration-count"].Keyword)
	assert.Equal(t, "alternate", byProp["animation-direction"].Keyword)
	assert.Equal(t, "pulse", byProp["animation-name"].Keyword)
	assert.Equal(t, 2.0, byProp["animation-duration"].Number)
}

func TestExpandShorthandPassesThroughUnknownProperty(t *testing.T) {
	d := parsed.Declaration{Property: "color", Value: []parsed.Token{{Kind: parsed.TokenColorHex, Hex: "000000"}}}
	out := expandShorthand(d)
	require.Len(t, out, 1)
	assert.Equal(t, "color", out[0].Property)
}
