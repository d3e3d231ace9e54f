package style

import "github.com/kiln-ui/kiln/pkg/parsed"

// expandShorthand turns one shorthand declaration into its longhand
// equivalents, deterministically (spec.md §4.3). Declarations the table
// doesn't recognize pass through unchanged — a longhand is its own
// "shorthand" of one. Grounded on original_source/src/styles/apply.rs's
// per-property match arms for which longhands a shorthand ultimately
// feeds.
func expandShorthand(d parsed.Declaration) []parsed.Declaration {
	switch d.Property {
	case "border":
		return borderSides(d.Value, "border-top", "border-right", "border-bottom", "border-left")
	case "border-width":
		return fourSides(d.Value, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	case "border-color":
		return fourSides(d.Value, "border-top-color", "border-right-color", "border-bottom-color", "border-left-color")
	case "padding":
		return fourSides(d.Value, "padding-top", "padding-right", "padding-bottom", "padding-left")
	case "margin":
		return fourSides(d.Value, "margin-top", "margin-right", "margin-bottom", "margin-left")
	case "inset":
		return fourSides(d.Value, "top", "right", "bottom", "left")
	case "background":
		return oneLonghand(d.Value, "background-color")
	case "flex":
		return flexLonghands(d.Value)
	case "gap":
		return gapLonghands(d.Value)
	case "grid-template":
		return gridTemplateLonghands(d.Value)
	case "animation":
		return animationLonghands(d.Value)
	default:
		return []parsed.Declaration{d}
	}
}

// ExpandShorthand exposes expandShorthand for other packages (pkg/anim
// expands @keyframes step declarations the same way rule declarations are
// expanded).
func ExpandShorthand(d parsed.Declaration) []parsed.Declaration {
	return expandShorthand(d)
}

func oneLonghand(value []parsed.Token, name string) []parsed.Declaration {
	return []parsed.Declaration{{Property: name, Value: value}}
}

// fourSides expands the CSS 1/2/3/4-value shorthand pattern: one value
// applies to all sides; two to top/bottom then left/right; three to top,
// left/right, bottom; four to top, right, bottom, left in order.
func fourSides(value []parsed.Token, top, right, bottom, left string) []parsed.Declaration {
	var t, r, b, l parsed.Token
	switch len(value) {
	case 1:
		t, r, b, l = value[0], value[0], value[0], value[0]
	case 2:
		t, b = value[0], value[0]
		r, l = value[1], value[1]
	case 3:
		t, b = value[0], value[0]
		r, l = value[1], value[1]
		b = value[2]
	case 4:
		t, r, b, l = value[0], value[1], value[2], value[3]
	default:
		return nil
	}
	return []parsed.Declaration{
		{Property: top, Value: []parsed.Token{t}},
		{Property: right, Value: []parsed.Token{r}},
		{Property: bottom, Value: []parsed.Token{b}},
		{Property: left, Value: []parsed.Token{l}},
	}
}

// borderSides expands `border: width style color` to each side's width and
// color longhands (border-style isn't modeled; the engine always draws a
// solid rule, per the Element data model's Border{Width,Color} shape).
func borderSides(value []parsed.Token, top, right, bottom, left string) []parsed.Declaration {
	var width, color parsed.Token
	haveWidth, haveColor := false, false
	for _, tok := range value {
		switch tok.Kind {
		case parsed.TokenDimension, parsed.TokenNumber:
			width, haveWidth = tok, true
		case parsed.TokenColorHex, parsed.TokenFunction:
			color, haveColor = tok, true
		case parsed.TokenKeyword:
			// border-style keyword (solid, dashed, ...); not modeled, ignored.
		}
	}
	var out []parsed.Declaration
	for _, side := range []string{top, right, bottom, left} {
		if haveWidth {
			out = append(out, parsed.Declaration{Property: side + "-width", Value: []parsed.Token{width}})
		}
		if haveColor {
			out = append(out, parsed.Declaration{Property: side + "-color", Value: []parsed.Token{color}})
		}
	}
	return out
}

func flexLonghands(value []parsed.Token) []parsed.Declaration {
	var out []parsed.Declaration
	switch len(value) {
	case 1:
		out = append(out, parsed.Declaration{Property: "flex-grow", Value: value})
	case 2:
		out = append(out,
			parsed.Declaration{Property: "flex-grow", Value: value[:1]},
			parsed.Declaration{Property: "flex-shrink", Value: value[1:2]},
		)
	case 3:
		out = append(out,
			parsed.Declaration{Property: "flex-grow", Value: value[:1]},
			parsed.Declaration{Property: "flex-shrink", Value: value[1:2]},
			parsed.Declaration{Property: "flex-basis", Value: value[2:3]},
		)
	}
	return out
}

func gapLonghands(value []parsed.Token) []parsed.Declaration {
	switch len(value) {
	case 1:
		return []parsed.Declaration{
			{Property: "row-gap", Value: value},
			{Property: "column-gap", Value: value},
		}
	case 2:
		return []parsed.Declaration{
			{Property: "row-gap", Value: value[:1]},
			{Property: "column-gap", Value: value[1:2]},
		}
	default:
		return nil
	}
}

func gridTemplateLonghands(value []parsed.Token) []parsed.Declaration {
	// "rows / columns"; var-reference free, split on a literal "/" keyword
	// token the tokenizer emits for the slash.
	for i, tok := range value {
		if tok.Kind == parsed.TokenKeyword && tok.Keyword == "/" {
			return []parsed.Declaration{
				{Property: "grid-template-rows", Value: value[:i]},
				{Property: "grid-template-columns", Value: value[i+1:]},
			}
		}
	}
	return []parsed.Declaration{{Property: "grid-template-columns", Value: value}}
}

// animationLonghands parses each token by its grammatical type, per
// spec.md §4.3 ("parses by value type (duration vs iteration count vs
// keyword vs name)"): the first time-kind token is duration, the second is
// delay; a bare number is the iteration count; "infinite" sets iteration
// count to infinite; direction/fill-mode keywords are recognized by value;
// anything else is taken as the animation name.
func animationLonghands(value []parsed.Token) []parsed.Declaration {
	var out []parsed.Declaration
	timesSeen := 0
	for _, tok := range value {
		switch tok.Kind {
		case parsed.TokenTime:
			if timesSeen == 0 {
				out = append(out, parsed.Declaration{Property: "animation-duration", Value: []parsed.Token{tok}})
			} else {
				out = append(out, parsed.Declaration{Property: "animation-delay", Value: []parsed.Token{tok}})
			}
			timesSeen++
		case parsed.TokenNumber:
			out = append(out, parsed.Declaration{Property: "animation-iteration-count", Value: []parsed.Token{tok}})
		case parsed.TokenKeyword:
			switch tok.Keyword {
			case "infinite":
				out = append(out, parsed.Declaration{Property: "animation-iteration-count", Value: []parsed.Token{tok}})
			case "normal", "reverse", "alternate", "alternate-reverse":
				out = append(out, parsed.Declaration{Property: "animation-direction", Value: []parsed.Token{tok}})
			case "none", "forwards", "backwards", "both":
				out = append(out, parsed.Declaration{Property: "animation-fill-mode", Value: []parsed.Token{tok}})
			case "ease", "ease-in", "ease-out", "ease-in-out", "linear", "step-start", "step-end":
				out = append(out, parsed.Declaration{Property: "animation-timing-function", Value: []parsed.Token{tok}})
			default:
				out = append(out, parsed.Declaration{Property: "animation-name", Value: []parsed.Token{tok}})
			}
		}
	}
	return out
}
