// Package interact runs the per-frame interaction resolver (spec.md §4.6):
// hit testing, pseudo-class computation, focus transfer, click detection,
// scroll, and the text-input/select behavior variants, assembling the
// handler Call list the frame's update returns.
package interact

import "time"

// MouseButton mirrors spec.md §6's button code table.
type MouseButton int

const (
	MouseLeft  MouseButton = 0
	MouseRight MouseButton = 1
)

// Key mirrors spec.md §6's logical key set.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEnter
	KeyTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyAlt
	KeyCapsLock
	KeyCtrl
	KeyShift
)

// Input is one frame's interaction input, spec.md §6's per-cycle fields
// relevant to pkg/interact (viewport and the model value are consumed
// upstream of this package).
type Input struct {
	Time time.Duration

	MousePosition    [2]float64
	MouseButtonsDown map[MouseButton]bool
	MouseButtonsUp   map[MouseButton]bool
	WheelDelta       float64

	KeysDown    map[Key]bool
	KeysUp      map[Key]bool
	KeysPressed map[Key]bool

	Characters []rune
}

// Call is one outbound handler invocation, spec.md §4.6/§6's
// {function, arguments} output shape.
type Call struct {
	Function  string
	Arguments []any
}
