package tree

import (
	"strings"

	"github.com/kiln-ui/kiln/pkg/parsed"
)

// Behavior is the sum type for an element's interactive variant. The zero
// value, BehaviorNone, marks a plain element with no input semantics.
type Behavior int

const (
	// BehaviorNone is a plain, non-interactive element.
	BehaviorNone Behavior = iota
	// BehaviorInput marks a text input; its current string lives in Value.
	BehaviorInput
	// BehaviorSelect marks a single-selection control; Value holds the
	// currently selected option's value.
	BehaviorSelect
	// BehaviorMultiSelect marks a multi-selection control; Values holds the
	// set of currently selected option values.
	BehaviorMultiSelect
)

// BehaviorState carries the mutable state associated with a Behavior. Only
// the field matching Kind is meaningful.
type BehaviorState struct {
	Kind   Behavior
	Value  string
	Values map[string]struct{}
}

// Span is one piece of an element's text content: either a literal string
// or a placeholder that a Binding keeps in sync with the model.
type Span struct {
	Text          string
	IsPlaceholder bool
}

// Color is a straightforward RGBA color, channels in [0,255].
type Color struct {
	R, G, B, A uint8
}

// Background is one layer of an element's background: a flat color and/or
// an image reference resolved from a CSS url().
type Background struct {
	Color Color
	Image string
}

// Border describes one side of an element's border.
type Border struct {
	Width float64
	Color Color
}

// Borders holds the four independent sides of an element's border plus its
// four corner radii. Each side is resolved and applied independently by the
// cascade (see SPEC_FULL.md §9 — the right side is not an alias for left).
type Borders struct {
	Top, Right, Bottom, Left Border
	RadiusTL, RadiusTR, RadiusBR, RadiusBL float64
}

// FontStyle and FontWeight mirror the CSS keyword sets for those longhands.
type FontStyle string

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightBold   FontWeight = "bold"
)

// TextAlign mirrors the CSS text-align keyword set the core supports.
type TextAlign string

const (
	TextAlignStart  TextAlign = "start"
	TextAlignCenter TextAlign = "center"
	TextAlignEnd    TextAlign = "end"
)

// Font is the resolved font face an element is drawn with.
type Font struct {
	Family     string
	Size       float64
	Style      FontStyle
	Weight     FontWeight
	LineHeight float64
	Align      TextAlign
}

// TransformFunc is one function in an element's transform list. The core
// only evaluates "translate"; other names are kept on the element with
// zero X/Y/Z and no error is raised for them.
type TransformFunc struct {
	Name string
	X, Y, Z float64
}

// AnimationDirection and AnimationFillMode mirror the CSS animation-direction
// and animation-fill-mode keyword sets (spec.md §4.4).
type AnimationDirection string

const (
	AnimationNormal           AnimationDirection = "normal"
	AnimationReverse          AnimationDirection = "reverse"
	AnimationAlternate        AnimationDirection = "alternate"
	AnimationAlternateReverse AnimationDirection = "alternate-reverse"
)

type AnimationFillMode string

const (
	FillNone      AnimationFillMode = "none"
	FillForwards  AnimationFillMode = "forwards"
	FillBackwards AnimationFillMode = "backwards"
	FillBoth      AnimationFillMode = "both"
)

// AnimationConfig is the resolved animation-* longhand set for one element.
// It names a single @keyframes block, not a comma-separated list — CSS's
// multi-animation syntax is out of scope, consistent with shorthand.go's
// animationLonghands parsing one animation per declaration.
type AnimationConfig struct {
	Name       string
	Duration   float64 // seconds
	Delay      float64 // seconds
	Direction  AnimationDirection
	FillMode   AnimationFillMode
	Iterations float64 // meaningless when Infinite is true
	Infinite   bool
	Timing     string // CSS timing-function keyword
	Running    bool
}

// TransitionConfig is the resolved transition-* longhand set for one element,
// naming a single watched property rather than CSS's comma-separated list —
// the same single-instance simplification as AnimationConfig.
type TransitionConfig struct {
	Property string
	Duration float64 // seconds
	Delay    float64 // seconds
	Timing   string
}

// ScrollState is the persistent scroll offset of an overflowing element.
type ScrollState struct {
	OffsetX, OffsetY       float64
	MaxOffsetX, MaxOffsetY float64
}

// ClipRect is an axis-aligned rectangle in absolute coordinates that clips
// an element's descendants.
type ClipRect struct {
	X, Y, Width, Height float64
}

// InteractionState is the per-node pseudo-class state computed fresh every
// frame by the interaction resolver, plus the sticky behavior state.
type InteractionState struct {
	Active, Hover, Focus, Checked bool
	Behavior                      BehaviorState
}

// PointerEvents mirrors the CSS pointer-events longhand's two-value subset
// the core understands.
type PointerEvents string

const (
	PointerEventsAuto PointerEvents = "auto"
	PointerEventsNone PointerEvents = "none"
)

// Rect is an absolute, laid-out box: position and size in logical pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Element is a single laid-out, styled node. Elements never hold pointers
// to one another — children are referenced by ID and resolved through the
// owning Tree, per SPEC_FULL.md §9 (no back-pointers, no cycles).
type Element struct {
	ID       ID
	Tag      string
	Attrs    map[string]string
	Spans    []Span
	Children []ID

	// InlineStyle is the node's parsed style="..." attribute, applied by
	// the cascade after matched rules and before animators/transitions
	// (spec.md §4.3 step 4).
	InlineStyle []parsed.Declaration

	// Layout output, set by the layout driver.
	Position Rect
	Content  Rect

	// Presentation, set by the cascade.
	Backgrounds []Background
	Borders     Borders
	Foreground  Color
	Font        Font
	Opacity     float64
	Transforms  []TransformFunc

	Handlers map[string]Handler

	Scroll        *ScrollState
	Clip          *ClipRect
	State         InteractionState
	PointerEvents PointerEvents

	Animation  *AnimationConfig  // set by the cascade's animation-* longhands
	Transition *TransitionConfig // set by the cascade's transition-* longhands
	Animators  []string          // names of currently running animators, for inspection/telemetry

	// Visible is the attach/detach flag a Reattach reaction toggles
	// (spec.md §4.2). An invisible element and its subtree are skipped by
	// layout and omitted from Output.Elements, but stay in the Tree so a
	// later reaction can show them again without reconstruction — this is
	// how repeat slots beyond the current cursor are "hidden rather than
	// destroyed" (spec.md §3 invariants).
	Visible bool
}

// Handler is an event handler descriptor produced by the template renderer
// for an "on<event>" attribute.
type Handler struct {
	Function   string
	ArgPath    string
	PipeChain  []string
}

// NewElement returns an Element with engine defaults applied (opaque,
// pointer-events auto, no borders/backgrounds), ready for the cascade's
// reset step.
func NewElement(id ID, tag string) *Element {
	return &Element{
		ID:            id,
		Tag:           tag,
		Attrs:         map[string]string{},
		Handlers:      map[string]Handler{},
		Opacity:       1,
		PointerEvents: PointerEventsAuto,
		Visible:       true,
	}
}

// Text concatenates the element's spans directly, with no inserted
// separator: each span is an interpolation chunk (a literal or a bound
// expression's value) whose own spacing is already authored into it, so
// "Hello, " + "Ada" + "!" must read "Hello, Ada!", not "Hello,  Ada !".
func (e *Element) Text() string {
	var b strings.Builder
	for _, s := range e.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Value returns the element's current behavior value, if any, following
// the "value" attribute for inputs and single-selects.
func (e *Element) Value() (string, bool) {
	switch e.State.Behavior.Kind {
	case BehaviorInput, BehaviorSelect:
		return e.State.Behavior.Value, true
	}
	return "", false
}
