package layout

import "github.com/kiln-ui/kiln/pkg/tree"

// Finish runs the second traversal spec.md §4.5 describes: applying each
// element's translate transform, and establishing/refreshing scrolling
// state and clip rectangles for nodes whose style overflows. Call this
// once after Run has produced absolute Position/Content rects for every
// visible node.
func Finish(tr *tree.Tree, styles map[tree.ID]Style) error {
	root, err := tr.Get(tr.Root)
	if err != nil {
		return &Error{Op: "get root", Err: err}
	}
	return finishNode(tr, styles, root)
}

func finishNode(tr *tree.Tree, styles map[tree.ID]Style, el *tree.Element) error {
	if !el.Visible {
		return nil
	}
	applyTranslate(el)

	children, err := tr.Children(el.ID)
	if err != nil {
		return &Error{Op: "finish children", Err: err}
	}

	refreshScrollAndClip(el, styles[el.ID], children)

	for _, c := range children {
		if err := finishNode(tr, styles, c); err != nil {
			return err
		}
	}
	return nil
}

// applyTranslate accumulates each translate(x,y,z?) transform function
// onto the element's already-absolute Position. Lengths resolve as
// pixels directly; the core only evaluates translate (spec.md §4.5);
// other function names are left in Transforms for the renderer but are
// not positionally meaningful.
func applyTranslate(el *tree.Element) {
	for _, fn := range el.Transforms {
		if fn.Name != "translate" {
			continue
		}
		el.Position.X += fn.X
		el.Position.Y += fn.Y
	}
}

// refreshScrollAndClip sets up el.Scroll (when its style requests
// scrolling overflow, with zero max offsets when the content fits) and el.Clip
// (when its style clips children), preserving any existing scroll offset
// rather than resetting it — hot-reload and ordinary re-layout both want
// scroll position to survive a frame that didn't change it.
func refreshScrollAndClip(el *tree.Element, style Style, children []*tree.Element) {
	var extentX, extentY float64
	for _, c := range children {
		if !c.Visible {
			continue
		}
		right := c.Position.X + c.Position.Width - el.Content.X
		bottom := c.Position.Y + c.Position.Height - el.Content.Y
		if right > extentX {
			extentX = right
		}
		if bottom > extentY {
			extentY = bottom
		}
	}

	overflows := style.OverflowX == OverflowScroll || style.OverflowY == OverflowScroll
	clips := overflows || style.OverflowX == OverflowHidden || style.OverflowX == OverflowClip ||
		style.OverflowY == OverflowHidden || style.OverflowY == OverflowClip

	if overflows {
		maxX := extentX - el.Content.Width
		if maxX < 0 {
			maxX = 0
		}
		maxY := extentY - el.Content.Height
		if maxY < 0 {
			maxY = 0
		}
		if el.Scroll == nil {
			el.Scroll = &tree.ScrollState{}
		}
		el.Scroll.MaxOffsetX = maxX
		el.Scroll.MaxOffsetY = maxY
		el.Scroll.OffsetX = clamp(el.Scroll.OffsetX, 0, maxX)
		el.Scroll.OffsetY = clamp(el.Scroll.OffsetY, 0, maxY)
	} else {
		el.Scroll = nil
	}

	if clips {
		el.Clip = &tree.ClipRect{
			X: el.Content.X, Y: el.Content.Y,
			Width: el.Content.Width, Height: el.Content.Height,
		}
	} else {
		el.Clip = nil
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
