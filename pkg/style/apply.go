package style

import (
	"fmt"
	"strings"

	"github.com/kiln-ui/kiln/pkg/layout"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// apply translates one resolved longhand into presentation and/or layout
// fields, grounded on original_source/src/styles/apply.rs's per-property
// match arms. Unknown property/value pairs are logged by the caller and
// skipped (spec.md §4.3's "Unknown property/value pairs are logged,
// skipped").
func (c *Cascade) apply(prop string, v ComputedValue, sizes Sizes, el *tree.Element, l *layout.Style) error {
	switch prop {
	//
	// Element-only presentation.
	//
	case "background-color":
		col, err := asColor(prop, v)
		if err != nil {
			return err
		}
		if len(el.Backgrounds) == 0 {
			el.Backgrounds = append(el.Backgrounds, tree.Background{})
		}
		el.Backgrounds[0].Color = col
	case "background-image":
		if v.Kind != KindFunction || v.Func != "url" || len(v.Args) == 0 {
			return invalidKeyword(prop, v.String())
		}
		if len(el.Backgrounds) == 0 {
			el.Backgrounds = append(el.Backgrounds, tree.Background{})
		}
		el.Backgrounds[0].Image = v.Args[0].Str
	case "color":
		col, err := asColor(prop, v)
		if err != nil {
			return err
		}
		el.Foreground = col
	case "opacity":
		el.Opacity = asNumber(v)
	case "font-size":
		px, err := asLength(prop, v, sizes, sizes.ParentFontSize)
		if err != nil {
			return err
		}
		el.Font.Size = px
	case "font-family":
		el.Font.Family = v.Str
	case "font-weight":
		w, err := resolveFontWeight(v)
		if err != nil {
			return err
		}
		el.Font.Weight = w
	case "font-style":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "normal", "italic", "oblique":
			el.Font.Style = tree.FontStyle(v.Keyword)
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "line-height":
		px, err := asLength(prop, v, sizes, el.Font.Size)
		if err != nil {
			return err
		}
		el.Font.LineHeight = px
	case "text-align":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "start", "left":
			el.Font.Align = tree.TextAlignStart
		case "center":
			el.Font.Align = tree.TextAlignCenter
		case "end", "right":
			el.Font.Align = tree.TextAlignEnd
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "pointer-events":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "auto", "none":
			el.PointerEvents = tree.PointerEvents(v.Keyword)
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "transform":
		fn, err := resolveTransform(v, el)
		if err != nil {
			return err
		}
		el.Transforms = append(el.Transforms, fn)

	//
	// Border: element (drawing) + layout (border rect).
	//
	case "border-top-width", "border-right-width", "border-bottom-width", "border-left-width":
		px, err := asLength(prop, v, sizes, 0)
		if err != nil {
			return err
		}
		setBorderWidth(el, l, prop, px)
	case "border-top-color", "border-right-color", "border-bottom-color", "border-left-color":
		col, err := asColor(prop, v)
		if err != nil {
			return err
		}
		setBorderColor(el, prop, col)
	case "border-top-left-radius":
		el.Borders.RadiusTL = asNumber(v)
	case "border-top-right-radius":
		el.Borders.RadiusTR = asNumber(v)
	case "border-bottom-right-radius":
		el.Borders.RadiusBR = asNumber(v)
	case "border-bottom-left-radius":
		el.Borders.RadiusBL = asNumber(v)

	//
	// Layout-only.
	//
	case "display":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "block":
			l.Display = layout.DisplayBlock
		case "flex":
			l.Display = layout.DisplayFlex
		case "grid":
			l.Display = layout.DisplayGrid
		case "none":
			l.Display = layout.DisplayNone
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "position":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "relative":
			l.Position = layout.PositionRelative
		case "absolute":
			l.Position = layout.PositionAbsolute
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "overflow-x", "overflow-y":
		ov, err := resolveOverflow(v)
		if err != nil {
			return err
		}
		if prop == "overflow-x" {
			l.OverflowX = ov
		} else {
			l.OverflowY = ov
		}
	case "top", "right", "bottom", "left":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		setEdge(&l.Inset, prop, dim)
	case "margin-top", "margin-right", "margin-bottom", "margin-left":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		setEdge(&l.Margin, prop, dim)
	case "padding-top", "padding-right", "padding-bottom", "padding-left":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		setEdge(&l.Padding, prop, dim)
	case "width":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		l.Size.Width = dim
	case "height":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		l.Size.Height = dim
	case "min-width":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		l.MinSize.Width = dim
	case "min-height":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		l.MinSize.Height = dim
	case "max-width":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		l.MaxSize.Width = dim
	case "max-height":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		l.MaxSize.Height = dim
	case "aspect-ratio":
		l.AspectRatio = asNumber(v)
	case "row-gap":
		px, err := asLength(prop, v, sizes, 0)
		if err != nil {
			return err
		}
		l.RowGap = px
	case "column-gap":
		px, err := asLength(prop, v, sizes, 0)
		if err != nil {
			return err
		}
		l.ColumnGap = px
	case "flex-direction":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		dir, ok := map[string]layout.FlexDirection{
			"row": layout.FlexRow, "row-reverse": layout.FlexRowReverse,
			"column": layout.FlexColumn, "column-reverse": layout.FlexColumnReverse,
		}[v.Keyword]
		if !ok {
			return invalidKeyword(prop, v.Keyword)
		}
		l.FlexDirection = dir
	case "flex-wrap":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		wrap, ok := map[string]layout.FlexWrap{
			"nowrap": layout.NoWrap, "wrap": layout.Wrap, "wrap-reverse": layout.WrapReverse,
		}[v.Keyword]
		if !ok {
			return invalidKeyword(prop, v.Keyword)
		}
		l.FlexWrap = wrap
	case "flex-grow":
		l.FlexGrow = asNumber(v)
	case "flex-shrink":
		l.FlexShrink = asNumber(v)
	case "flex-basis":
		dim, err := asDimension(prop, v)
		if err != nil {
			return err
		}
		l.FlexBasis = dim
	case "align-items", "align-self", "justify-content", "align-content", "justify-items", "justify-self":
		a, err := resolveAlign(prop, v)
		if err != nil {
			return err
		}
		switch prop {
		case "align-items":
			l.AlignItems = a
		case "align-self":
			l.AlignSelf = &a
		case "justify-content":
			l.JustifyContent = a
		case "align-content":
			l.AlignContent = a
		}
	//
	// Animation & transition config, read back by pkg/anim each frame.
	//
	case "animation-name":
		animation(el).Name = v.Keyword
	case "animation-duration":
		animation(el).Duration = asSeconds(v)
	case "animation-delay":
		animation(el).Delay = asSeconds(v)
	case "animation-direction":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "normal", "reverse", "alternate", "alternate-reverse":
			animation(el).Direction = tree.AnimationDirection(v.Keyword)
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "animation-fill-mode":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "none", "forwards", "backwards", "both":
			animation(el).FillMode = tree.AnimationFillMode(v.Keyword)
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "animation-iteration-count":
		a := animation(el)
		if v.Kind == KindKeyword && v.Keyword == "infinite" {
			a.Infinite = true
		} else {
			a.Iterations = asNumber(v)
		}
	case "animation-play-state":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		switch v.Keyword {
		case "running":
			animation(el).Running = true
		case "paused":
			animation(el).Running = false
		default:
			return invalidKeyword(prop, v.Keyword)
		}
	case "animation-timing-function":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		animation(el).Timing = v.Keyword
	case "transition-property":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		transition(el).Property = v.Keyword
	case "transition-duration":
		transition(el).Duration = asSeconds(v)
	case "transition-delay":
		transition(el).Delay = asSeconds(v)
	case "transition-timing-function":
		if v.Kind != KindKeyword {
			return invalidKeyword(prop, v.String())
		}
		transition(el).Timing = v.Keyword

	case "grid-template-rows", "grid-template-columns":
		tracks, err := resolveTrackList(v)
		if err != nil {
			return err
		}
		if prop == "grid-template-rows" {
			l.GridTemplateRows = tracks
		} else {
			l.GridTemplateColumns = tracks
		}
	default:
		return invalidKeyword(prop, v.String())
	}
	return nil
}

func asColor(prop string, v ComputedValue) (tree.Color, error) {
	switch v.Kind {
	case KindColor:
		return tree.Color{R: v.Color.R, G: v.Color.G, B: v.Color.B, A: v.Color.A}, nil
	case KindFunction:
		return resolveColorFunction(v)
	default:
		return tree.Color{}, &CascadeError{Kind: ErrInvalidColor, Property: prop, Detail: v.String()}
	}
}

// resolveColorFunction supports rgb()/rgba() at minimum (spec.md §4.3).
func resolveColorFunction(v ComputedValue) (tree.Color, error) {
	if (v.Func != "rgb" && v.Func != "rgba") || len(v.Args) < 3 {
		return tree.Color{}, &CascadeError{Kind: ErrInvalidColor, Property: "color", Detail: v.Func}
	}
	r := uint8(clampByte(asNumber(v.Args[0])))
	g := uint8(clampByte(asNumber(v.Args[1])))
	b := uint8(clampByte(asNumber(v.Args[2])))
	a := uint8(255)
	if len(v.Args) > 3 {
		a = uint8(clampByte(asNumber(v.Args[3]) * 255))
	}
	return tree.Color{R: r, G: g, B: b, A: a}, nil
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// animation lazily allocates el's AnimationConfig with the engine defaults
// (iterations 1, running, normal direction, no fill), mirroring
// original_source/src/styles/default.rs's animator defaults.
func animation(el *tree.Element) *tree.AnimationConfig {
	if el.Animation == nil {
		el.Animation = &tree.AnimationConfig{Iterations: 1, Running: true, Direction: tree.AnimationNormal, FillMode: tree.FillNone}
	}
	return el.Animation
}

func transition(el *tree.Element) *tree.TransitionConfig {
	if el.Transition == nil {
		el.Transition = &tree.TransitionConfig{Timing: "ease"}
	}
	return el.Transition
}

func asSeconds(v ComputedValue) float64 {
	if v.Kind == KindTime {
		return v.Time
	}
	return asNumber(v)
}

func asNumber(v ComputedValue) float64 {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindLength:
		return v.Length
	case KindPercentage:
		return v.Length
	default:
		return 0
	}
}

func asLength(prop string, v ComputedValue, sizes Sizes, percentOf float64) (float64, error) {
	switch v.Kind {
	case KindLength:
		return v.Length, nil
	case KindPercentage:
		return v.Length / 100 * percentOf, nil
	case KindNumber:
		return v.Number, nil
	default:
		return 0, &CascadeError{Kind: ErrInvalidLength, Property: prop, Detail: v.String()}
	}
}

func asDimension(prop string, v ComputedValue) (layout.Dimension, error) {
	switch v.Kind {
	case KindLength:
		return layout.Px(v.Length), nil
	case KindPercentage:
		return layout.Percent(v.Length), nil
	case KindKeyword:
		if v.Keyword == "auto" {
			return layout.Auto(), nil
		}
		return layout.Dimension{}, &CascadeError{Kind: ErrInvalidLength, Property: prop, Detail: v.Keyword}
	default:
		return layout.Dimension{}, &CascadeError{Kind: ErrInvalidLength, Property: prop, Detail: v.String()}
	}
}

func resolveFontWeight(v ComputedValue) (tree.FontWeight, error) {
	switch v.Kind {
	case KindKeyword:
		switch v.Keyword {
		case "normal":
			return tree.FontWeightNormal, nil
		case "bold":
			return tree.FontWeightBold, nil
		}
	case KindNumber:
		if v.Number >= 700 {
			return tree.FontWeightBold, nil
		}
		return tree.FontWeightNormal, nil
	}
	return "", invalidKeyword("font-weight", v.String())
}

func resolveOverflow(v ComputedValue) (layout.Overflow, error) {
	if v.Kind != KindKeyword {
		return 0, invalidKeyword("overflow", v.String())
	}
	switch v.Keyword {
	case "visible":
		return layout.OverflowVisible, nil
	case "hidden":
		return layout.OverflowHidden, nil
	case "clip":
		return layout.OverflowClip, nil
	case "scroll":
		return layout.OverflowScroll, nil
	default:
		return 0, invalidKeyword("overflow", v.Keyword)
	}
}

func resolveAlign(prop string, v ComputedValue) (layout.Align, error) {
	if v.Kind != KindKeyword {
		return 0, invalidKeyword(prop, v.String())
	}
	switch v.Keyword {
	case "start", "flex-start":
		return layout.AlignStart, nil
	case "center":
		return layout.AlignCenter, nil
	case "end", "flex-end":
		return layout.AlignEnd, nil
	case "stretch":
		return layout.AlignStretch, nil
	case "space-between":
		return layout.AlignSpaceBetween, nil
	case "space-around":
		return layout.AlignSpaceAround, nil
	case "space-evenly":
		return layout.AlignSpaceEvenly, nil
	default:
		return 0, invalidKeyword(prop, v.Keyword)
	}
}

func resolveTrackList(v ComputedValue) ([]layout.TrackSize, error) {
	vals := []ComputedValue{v}
	if v.Kind == KindFunction && v.Func == "list" {
		vals = v.Args
	}
	tracks := make([]layout.TrackSize, 0, len(vals))
	for _, item := range vals {
		switch item.Kind {
		case KindLength:
			tracks = append(tracks, layout.TrackSize{Kind: layout.DimLength, Value: item.Length})
		case KindPercentage:
			tracks = append(tracks, layout.TrackSize{Kind: layout.DimPercent, Value: item.Length})
		case KindKeyword:
			if item.Keyword == "auto" {
				tracks = append(tracks, layout.TrackSize{Kind: layout.DimAuto})
				continue
			}
			return nil, invalidKeyword("grid-template", item.Keyword)
		case KindDimension:
			if item.Unit == "fr" {
				tracks = append(tracks, layout.TrackSize{Kind: layout.DimFr, Value: item.Number})
				continue
			}
			return nil, fmt.Errorf("style: unsupported grid track unit %q", item.Unit)
		default:
			return nil, invalidKeyword("grid-template", item.String())
		}
	}
	return tracks, nil
}

func resolveTransform(v ComputedValue, el *tree.Element) (tree.TransformFunc, error) {
	if v.Kind != KindFunction {
		return tree.TransformFunc{}, invalidKeyword("transform", v.String())
	}
	fn := tree.TransformFunc{Name: v.Func}
	switch v.Func {
	case "translate":
		if len(v.Args) > 0 {
			fn.X = resolveAgainst(v.Args[0], el.Position.Width)
		}
		if len(v.Args) > 1 {
			fn.Y = resolveAgainst(v.Args[1], el.Position.Height)
		}
	default:
		// Parsed but not positionally evaluated (spec.md §4.5: only
		// translate affects layout); kept on the element for the renderer.
	}
	return fn, nil
}

func resolveAgainst(v ComputedValue, basis float64) float64 {
	switch v.Kind {
	case KindPercentage:
		return v.Length / 100 * basis
	default:
		return asNumber(v)
	}
}

func setBorderWidth(el *tree.Element, l *layout.Style, prop string, px float64) {
	switch prop {
	case "border-top-width":
		el.Borders.Top.Width = px
		l.Border.Top = layout.Px(px)
	case "border-right-width":
		el.Borders.Right.Width = px
		l.Border.Right = layout.Px(px)
	case "border-bottom-width":
		el.Borders.Bottom.Width = px
		l.Border.Bottom = layout.Px(px)
	case "border-left-width":
		el.Borders.Left.Width = px
		l.Border.Left = layout.Px(px)
	}
}

func setBorderColor(el *tree.Element, prop string, col tree.Color) {
	switch prop {
	case "border-top-color":
		el.Borders.Top.Color = col
	case "border-right-color":
		el.Borders.Right.Color = col
	case "border-bottom-color":
		el.Borders.Bottom.Color = col
	case "border-left-color":
		el.Borders.Left.Color = col
	}
}

func setEdge(r *layout.EdgeRect, prop string, dim layout.Dimension) {
	switch {
	case strings.HasSuffix(prop, "top"):
		r.Top = dim
	case strings.HasSuffix(prop, "right"):
		r.Right = dim
	case strings.HasSuffix(prop, "bottom"):
		r.Bottom = dim
	case strings.HasSuffix(prop, "left"):
		r.Left = dim
	}
}
