package layout

import "github.com/kiln-ui/kiln/pkg/tree"

// measureBlockNatural sums children's heights and takes the widest width,
// the natural size of a block formatting context stacking children
// vertically (spec.md §4.5's default display).
func measureBlockNatural(children []naturalSize) naturalSize {
	var ns naturalSize
	for _, c := range children {
		if c.Width > ns.Width {
			ns.Width = c.Width
		}
		ns.Height += c.Height
	}
	return ns
}

// layoutBlockChildren stacks children top to bottom, each at full content
// width unless its own Style.Size.Width says otherwise — margin collapsing
// between adjacent blocks is not modeled (a documented simplification:
// each child's margin is reserved, not merged with its neighbor's).
func layoutBlockChildren(content tree.Rect, styles []Style, sizes []naturalSize) []tree.Rect {
	rects := make([]tree.Rect, len(styles))
	y := content.Y
	for i, st := range styles {
		mTop := st.Margin.Top.Resolve(content.Height, 0)
		mLeft := st.Margin.Left.Resolve(content.Width, 0)
		mRight := st.Margin.Right.Resolve(content.Width, 0)
		mBottom := st.Margin.Bottom.Resolve(content.Width, 0)

		width := st.Size.Width.Resolve(content.Width-mLeft-mRight, content.Width-mLeft-mRight)
		height := st.Size.Height.Resolve(content.Height, sizes[i].Height)

		y += mTop
		rects[i] = tree.Rect{X: content.X + mLeft, Y: y, Width: width, Height: height}
		y += height + mBottom
	}
	return rects
}
