// Package kiln turns templates and stylesheets into positioned, styled
// rectangles and outbound calls, as if fired in a kiln.
//
// View, Input, Output and the construction Options live in view.go. This
// file re-exports the host-facing types from kiln's subpackages so a host
// that only needs to read Output and configure a View never has to import
// pkg/tree, pkg/interact, pkg/layout or pkg/telemetry directly, mirroring
// the teacher's root bubblyui.go convention of aliasing its pkg/bubbly
// surface for single-import convenience.
package kiln

import (
	"github.com/kiln-ui/kiln/pkg/interact"
	"github.com/kiln-ui/kiln/pkg/layout"
	"github.com/kiln-ui/kiln/pkg/parsed"
	"github.com/kiln-ui/kiln/pkg/preview"
	"github.com/kiln-ui/kiln/pkg/telemetry"
	"github.com/kiln-ui/kiln/pkg/tree"
)

// =============================================================================
// Tree / element surface (pkg/tree)
// =============================================================================

// Element is a single laid-out, styled node of an Output frame.
type Element = tree.Element

// ID is an element's stable identifier, reused frame to frame across an
// unchanged template region.
type ID = tree.ID

// Behavior names an element's interactive variant: input, select or
// multi-select.
type Behavior = tree.Behavior

const (
	BehaviorNone        = tree.BehaviorNone
	BehaviorInput       = tree.BehaviorInput
	BehaviorSelect      = tree.BehaviorSelect
	BehaviorMultiSelect = tree.BehaviorMultiSelect
)

// Rect is an absolute, laid-out box in logical pixels.
type Rect = tree.Rect

// Color is a straightforward RGBA color, channels in [0,255].
type Color = tree.Color

// =============================================================================
// Parsed template/stylesheet contract (pkg/parsed)
// =============================================================================

// Node is the already-parsed HTML contract a host parser feeds NewView
// (spec.md §1 — HTML/CSS parsing itself is out of scope).
type Node = parsed.Node

// StyleSheet is the already-parsed CSS contract NewView loads rules from.
type StyleSheet = parsed.StyleSheet

// =============================================================================
// Interaction surface (pkg/interact)
// =============================================================================

// Call is one outbound handler invocation an Update produced.
type Call = interact.Call

// MouseButton mirrors spec.md §6's button code table.
type MouseButton = interact.MouseButton

const (
	MouseLeft  = interact.MouseLeft
	MouseRight = interact.MouseRight
)

// Key mirrors spec.md §6's logical key set.
type Key = interact.Key

const (
	KeyUnknown    = interact.KeyUnknown
	KeyEscape     = interact.KeyEscape
	KeyBackspace  = interact.KeyBackspace
	KeyDelete     = interact.KeyDelete
	KeyInsert     = interact.KeyInsert
	KeyEnter      = interact.KeyEnter
	KeyTab        = interact.KeyTab
	KeyArrowUp    = interact.KeyArrowUp
	KeyArrowDown  = interact.KeyArrowDown
	KeyArrowLeft  = interact.KeyArrowLeft
	KeyArrowRight = interact.KeyArrowRight
	KeyHome       = interact.KeyHome
	KeyEnd        = interact.KeyEnd
	KeyPageUp     = interact.KeyPageUp
	KeyPageDown   = interact.KeyPageDown
	KeyAlt        = interact.KeyAlt
	KeyCapsLock   = interact.KeyCapsLock
	KeyCtrl       = interact.KeyCtrl
	KeyShift      = interact.KeyShift
)

// =============================================================================
// Fonts capability (pkg/layout)
// =============================================================================

// Fonts measures the pixel box a run of text occupies, the host capability
// required by spec.md §6.
type Fonts = layout.Fonts

// FallbackFonts is the naive character-count estimator used when a host
// hasn't wired a real text shaper.
type FallbackFonts = layout.FallbackFonts

// Viewport is the layout root's available box.
type Viewport = layout.Viewport

// =============================================================================
// Telemetry (pkg/telemetry)
// =============================================================================

// Reporter receives recoverable per-frame error events.
type Reporter = telemetry.Reporter

// Metrics receives per-frame counters for the log-and-skip paths of
// spec.md §7.
type Metrics = telemetry.Metrics

// NewConsoleReporter and NewSentryReporter construct the two Reporter
// implementations kiln ships; NewPrometheusMetrics constructs the one
// Metrics implementation backed by a real collector registry.
var (
	NewConsoleReporter   = telemetry.NewConsoleReporter
	NewSentryReporter    = telemetry.NewSentryReporter
	NewPrometheusMetrics = telemetry.NewPrometheusMetrics
)

// SetReporter and SetMetrics configure the process-wide defaults every
// View picks up unless overridden with WithReporter/WithMetrics.
var (
	SetReporter = telemetry.SetReporter
	SetMetrics  = telemetry.SetMetrics
)

// =============================================================================
// Debug preview (pkg/preview)
// =============================================================================

// Dump renders the view's current tree as an indented, bordered terminal
// tree, for tests and host-side debugging. Call it against View.Tree() — it
// has no knowledge of Output, only of the live element tree underneath it.
var Dump = preview.Dump

// Tree exposes the view's underlying tree.Tree for Dump and other
// introspection that doesn't belong in the Output contract (e.g. a test
// asserting on a hidden element's Visible flag after a repeat shrinks).
func (v *View) Tree() *tree.Tree { return v.tr }
