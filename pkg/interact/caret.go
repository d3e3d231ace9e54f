package interact

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
)

// Caret drives the blink state of a focused text input's caret child
// element — a cosmetic extra beyond spec.md, gated so it never changes
// spec.md-mandated input behavior. bubbles/cursor's own Model.Update runs
// on bubbletea's async Cmd/Msg blink timer, which doesn't fit kiln's
// synchronous one-call-per-frame update (spec.md §5): Caret borrows only
// cursor.New's default blink cadence and advances visibility itself from
// the frame's wall-clock delta.
type Caret struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewCaret returns a Caret blinking at bubbles/cursor's default cadence.
func NewCaret() *Caret {
	return &Caret{interval: cursor.New().BlinkSpeed}
}

// Tick advances the blink timer by dt and reports whether the caret should
// currently be drawn visible.
func (c *Caret) Tick(dt time.Duration) bool {
	c.elapsed += dt
	if c.interval <= 0 {
		return true
	}
	c.elapsed %= c.interval
	return c.elapsed < c.interval/2
}

// Reset shows the caret immediately and restarts its blink cycle, used
// whenever the input it belongs to receives new input (a caret
// should never blink-hide right as the user is actively typing).
func (c *Caret) Reset() {
	c.elapsed = 0
}
