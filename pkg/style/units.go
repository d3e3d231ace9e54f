package style

import (
	"fmt"

	"github.com/kiln-ui/kiln/pkg/parsed"
)

// Sizes is the size-resolution context threaded through cascade: the root
// and parent font sizes (for rem/em) and the viewport box (for vw/vh/vmin/
// vmax), grounded on original_source/src/models.rs's SizeContext.
type Sizes struct {
	RootFontSize   float64
	ParentFontSize float64
	ViewportWidth  float64
	ViewportHeight float64
}

// DefaultSizes returns a Sizes with a 16px root font and a 1920x1080
// viewport, the conventional defaults absent an explicit host window size.
func DefaultSizes() Sizes {
	return Sizes{RootFontSize: 16, ParentFontSize: 16, ViewportWidth: 1920, ViewportHeight: 1080}
}

// ResolveLength turns a Dimension/Percentage/Number token into device
// pixels (spec.md §4.3's unit table: px/em/rem/vw/vh/vmin/vmax).
func (s Sizes) ResolveLength(unit string, n float64) (float64, error) {
	switch unit {
	case "px":
		return n, nil
	case "em":
		return n * s.ParentFontSize, nil
	case "rem":
		return n * s.RootFontSize, nil
	case "vw":
		return n / 100 * s.ViewportWidth, nil
	case "vh":
		return n / 100 * s.ViewportHeight, nil
	case "vmin":
		return n / 100 * min(s.ViewportWidth, s.ViewportHeight), nil
	case "vmax":
		return n / 100 * max(s.ViewportWidth, s.ViewportHeight), nil
	case "":
		return n, nil
	default:
		return 0, fmt.Errorf("style: unsupported unit %q", unit)
	}
}

// Resolve converts a parsed token into a ComputedValue under this Sizes
// context. percentOf is the basis a KindPercentage resolves against (e.g.
// the containing block's width for a width property); pass 0 when the
// property doesn't resolve percentages against a length (font-size, etc.)
// and read Length back as the raw percentage instead.
func (s Sizes) Resolve(tok parsed.Token, percentOf float64) (ComputedValue, error) {
	switch tok.Kind {
	case parsed.TokenKeyword:
		return ComputedValue{Kind: KindKeyword, Keyword: tok.Keyword}, nil
	case parsed.TokenNumber:
		return ComputedValue{Kind: KindNumber, Number: tok.Number}, nil
	case parsed.TokenDimension:
		if tok.Unit == "fr" {
			// Grid's fractional unit is resolved by the layout engine against
			// the track list's remaining space, not here.
			return ComputedValue{Kind: KindDimension, Number: tok.Number, Unit: "fr"}, nil
		}
		px, err := s.ResolveLength(tok.Unit, tok.Number)
		if err != nil {
			return ComputedValue{}, err
		}
		return ComputedValue{Kind: KindLength, Length: px, Unit: tok.Unit, Number: tok.Number}, nil
	case parsed.TokenPercentage:
		if percentOf == 0 {
			return ComputedValue{Kind: KindPercentage, Length: tok.Number}, nil
		}
		return ComputedValue{Kind: KindPercentage, Length: tok.Number / 100 * percentOf}, nil
	case parsed.TokenColorHex:
		c, err := parseHexColor(tok.Hex)
		if err != nil {
			return ComputedValue{}, err
		}
		return ComputedValue{Kind: KindColor, Color: c}, nil
	case parsed.TokenString:
		return ComputedValue{Kind: KindString, Str: tok.Str}, nil
	case parsed.TokenTime:
		seconds := tok.Number
		if tok.Unit == "ms" {
			seconds /= 1000
		}
		return ComputedValue{Kind: KindTime, Time: seconds}, nil
	case parsed.TokenFunction:
		args := make([]ComputedValue, 0, len(tok.Args))
		for _, a := range tok.Args {
			v, err := s.Resolve(a, percentOf)
			if err != nil {
				return ComputedValue{}, err
			}
			args = append(args, v)
		}
		return ComputedValue{Kind: KindFunction, Func: tok.Function, Args: args}, nil
	default:
		return ComputedValue{}, fmt.Errorf("style: unsupported token kind %d", tok.Kind)
	}
}

func parseHexColor(hex string) (Color, error) {
	var r, g, b, a uint8 = 0, 0, 0, 255
	parse2 := func(s string) (uint8, error) {
		var v int
		_, err := fmt.Sscanf(s, "%02x", &v)
		return uint8(v), err
	}
	switch len(hex) {
	case 6:
		var err error
		if r, err = parse2(hex[0:2]); err != nil {
			return Color{}, err
		}
		if g, err = parse2(hex[2:4]); err != nil {
			return Color{}, err
		}
		if b, err = parse2(hex[4:6]); err != nil {
			return Color{}, err
		}
	case 8:
		var err error
		if r, err = parse2(hex[0:2]); err != nil {
			return Color{}, err
		}
		if g, err = parse2(hex[2:4]); err != nil {
			return Color{}, err
		}
		if b, err = parse2(hex[4:6]); err != nil {
			return Color{}, err
		}
		if a, err = parse2(hex[6:8]); err != nil {
			return Color{}, err
		}
	default:
		return Color{}, fmt.Errorf("style: invalid hex color %q", hex)
	}
	return Color{R: r, G: g, B: b, A: a}, nil
}
