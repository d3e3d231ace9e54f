// Package layout drives an external-style flex/grid/block layout pass over
// a tree.Tree: it consumes the Style the cascade produced for each node,
// measures text via a host Fonts callback, and writes back absolute
// Rect/ContentSize/Scroll/Clip/Transform fields on each Element (spec.md
// §4.5). Grounded on pkg/components/layout_types.go's string-backed enum
// idiom and pkg/components/flex.go/grid_layout.go for algorithm shape;
// the property domain (what a longhand ultimately configures) is grounded
// on original_source/src/styles.rs's taffy::Style construction.
package layout

// Display selects which algorithm lays out a node's children.
type Display int

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayNone
)

// Overflow is the per-axis overflow behavior.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowClip
	OverflowScroll
)

// PositionMode is the CSS position property's layout-relevant subset.
type PositionMode int

const (
	PositionRelative PositionMode = iota
	PositionAbsolute
)

// DimKind tags a Dimension's meaning.
type DimKind int

const (
	DimAuto DimKind = iota
	DimLength
	DimPercent
)

// Dimension is a length that may be "auto", a fixed pixel length, or a
// percentage of the containing block.
type Dimension struct {
	Kind  DimKind
	Value float64 // pixels for DimLength, 0-100 for DimPercent
}

func Auto() Dimension               { return Dimension{Kind: DimAuto} }
func Px(v float64) Dimension        { return Dimension{Kind: DimLength, Value: v} }
func Percent(v float64) Dimension   { return Dimension{Kind: DimPercent, Value: v} }

// Resolve turns a Dimension into pixels given the containing block's
// corresponding axis size. DimAuto resolves to fallback.
func (d Dimension) Resolve(basis, fallback float64) float64 {
	switch d.Kind {
	case DimLength:
		return d.Value
	case DimPercent:
		return d.Value / 100 * basis
	default:
		return fallback
	}
}

// EdgeRect is a four-side box (margin/padding/border/inset), each side an
// independent Dimension — mirroring the Borders fix in tree.Borders.
type EdgeRect struct {
	Top, Right, Bottom, Left Dimension
}

// Size is a two-axis Dimension pair.
type Size struct {
	Width, Height Dimension
}

// FlexDirection is the flex container's main-axis direction.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// FlexWrap controls whether flex items wrap onto new lines.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Align is the shared vocabulary for align-items/align-self/
// justify-content/align-content (spec.md §4.3).
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

// TrackSize is one entry of a grid-template-rows/columns track list:
// either a fixed length, a percentage, an auto track, or a fractional
// (`fr`) share of remaining space.
type TrackSize struct {
	Kind  DimKind // DimLength, DimPercent, DimAuto, or Fr (below)
	Value float64
}

const DimFr DimKind = 100 // distinct from the three DimKind values above

// Placement is a node's explicit grid-row/grid-column line range
// (1-indexed, end exclusive like CSS grid lines); a zero value means
// "auto-placed".
type Placement struct {
	Start, End int
}

// Style is the layout engine's per-node input, the translation target of
// the cascade's layout longhands (spec.md §4.3's "Layout longhands
// translate to the layout engine's enum/value domain").
type Style struct {
	Display Display

	Position PositionMode
	Inset    EdgeRect

	Margin  EdgeRect
	Padding EdgeRect
	Border  EdgeRect // widths only; color lives on the Element, not here

	Size, MinSize, MaxSize Size
	AspectRatio             float64 // 0 means unset

	OverflowX, OverflowY Overflow

	RowGap, ColumnGap float64

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float64
	FlexShrink    float64
	FlexBasis     Dimension

	AlignItems     Align
	AlignSelf      *Align
	JustifyContent Align
	AlignContent   Align

	GridTemplateRows    []TrackSize
	GridTemplateColumns []TrackSize
	GridRow             Placement
	GridColumn          Placement
}

// DefaultStyle returns the layout engine's initial per-node style, mirroring
// original_source/src/styles.rs's default_layout_style (block display,
// visible overflow, relative position, auto inset/size, zero margin/
// padding/border/gap, row flex direction, no-wrap, grow 0 shrink 1 basis
// auto).
func DefaultStyle() Style {
	return Style{
		Display:       DisplayBlock,
		Position:      PositionRelative,
		Inset:         EdgeRect{Auto(), Auto(), Auto(), Auto()},
		Size:          Size{Auto(), Auto()},
		MinSize:       Size{Auto(), Auto()},
		MaxSize:       Size{Auto(), Auto()},
		FlexDirection: FlexRow,
		FlexWrap:      NoWrap,
		FlexGrow:      0,
		FlexShrink:    1,
		FlexBasis:     Auto(),
	}
}
