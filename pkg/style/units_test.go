package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiln-ui/kiln/pkg/parsed"
)

func TestResolveLengthUnits(t *testing.T) {
	sizes := Sizes{RootFontSize: 20, ParentFontSize: 10, ViewportWidth: 1000, ViewportHeight: 500}

	px, err := sizes.ResolveLength("px", 12)
	require.NoError(t, err)
	assert.Equal(t, 12.0, px)

	em, err := sizes.ResolveLength("em", 2)
	require.NoError(t, err)
	assert.Equal(t, 20.0, em)

	rem, err := sizes.ResolveLength("rem", 2)
	require.NoError(t, err)
	assert.Equal(t, 40.0, rem)

	vw, err := sizes.ResolveLength("vw", 50)
	require.NoError(t, err)
	assert.Equal(t, 500.0, vw)

	vmin, err := sizes.ResolveLength("vmin", 10)
	require.NoError(t, err)
	assert.Equal(t, 50.0, vmin)

	_, err = sizes.ResolveLength("ch", 1)
	assert.Error(t, err)
}

func TestResolveFrDimensionStaysUnresolved(t *testing.T) {
	sizes := DefaultSizes()
	tok := parsed.Token{Kind: parsed.TokenDimension, Number: 1, Unit: "fr"}
	v, err := sizes.Resolve(tok, 0)
	require.NoError(t, err)
	assert.Equal(t, KindDimension, v.Kind)
	assert.Equal(t, "fr", v.Unit)
	assert.Equal(t, 1.0, v.Number)
}

func TestResolvePercentageAgainstBasis(t *testing.T) {
	sizes := DefaultSizes()
	tok := parsed.Token{Kind: parsed.TokenPercentage, Number: 50}
	v, err := sizes.Resolve(tok, 200)
	require.NoError(t, err)
	assert.Equal(t, KindPercentage, v.Kind)
	assert.Equal(t, 100.0, v.Length)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("ff0080")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xff, G: 0x00, B: 0x80, A: 0xff}, c)

	c, err = parseHexColor("00000080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = parseHexColor("zzz")
	assert.Error(t, err)
}

func TestResolveFunctionRecursesArgs(t *testing.T) {
	sizes := DefaultSizes()
	tok := parsed.Token{
		Kind:     parsed.TokenFunction,
		Function: "rgb",
		Args: []parsed.Token{
			{Kind: parsed.TokenNumber, Number: 10},
			{Kind: parsed.TokenNumber, Number: 20},
			{Kind: parsed.TokenNumber, Number: 30},
		},
	}
	v, err := sizes.Resolve(tok, 0)
	require.NoError(t, err)
	assert.Equal(t, KindFunction, v.Kind)
	assert.Equal(t, "rgb", v.Func)
	require.Len(t, v.Args, 3)
	assert.Equal(t, 20.0, v.Args[1].Number)
}
