package layout

import (
	"github.com/kiln-ui/kiln/pkg/tree"
)

// Viewport is the layout root's available box — the window or terminal
// size the host reports each frame.
type Viewport struct {
	Width, Height float64
}

// Run lays out every visible node of tr starting from its root, using
// styles (produced by the cascade, one per node) and fonts for text
// measurement. It writes Position/Content back onto each tree.Element.
// Invisible nodes (Element.Visible == false) and their subtrees are
// skipped entirely — they keep whatever Rect they last had and are
// excluded from measurement and arrangement of their siblings, per
// spec.md §4.5/§3 (hidden repeat slots stay in the tree, out of layout).
func Run(tr *tree.Tree, styles map[tree.ID]Style, fonts Fonts, vp Viewport) error {
	root, err := tr.Get(tr.Root)
	if err != nil {
		return &Error{Op: "get root", Err: err}
	}
	d := &driver{tr: tr, styles: styles, fonts: fonts}
	natural, err := d.measure(root, vp.Width)
	if err != nil {
		return err
	}
	box := tree.Rect{X: 0, Y: 0, Width: vp.Width, Height: vp.Height}
	if box.Width == 0 {
		box.Width = natural.Width
	}
	if box.Height == 0 {
		box.Height = natural.Height
	}
	return d.position(root, box)
}

type driver struct {
	tr     *tree.Tree
	styles map[tree.ID]Style
	fonts  Fonts
	sizes  map[tree.ID]naturalSize
}

type naturalSize struct {
	Width, Height float64
}

func (d *driver) styleOf(id tree.ID) Style {
	if s, ok := d.styles[id]; ok {
		return s
	}
	return DefaultStyle()
}

// measure computes el's natural (content-requested) box bottom-up: text
// leaves ask Fonts directly; containers sum or stack their visible
// children's natural boxes according to their own Display.
func (d *driver) measure(el *tree.Element, availableWidth float64) (naturalSize, error) {
	if d.sizes == nil {
		d.sizes = map[tree.ID]naturalSize{}
	}
	style := d.styleOf(el.ID)

	children, err := visibleChildren(d.tr, el)
	if err != nil {
		return naturalSize{}, &Error{Op: "measure children", Err: err}
	}

	if len(children) == 0 {
		if text := el.Text(); text != "" {
			w, h := d.fonts.Measure(text, el.Font, availableWidth, availableWidth > 0)
			ns := naturalSize{Width: w, Height: h}
			d.sizes[el.ID] = ns
			return ns, nil
		}
		d.sizes[el.ID] = naturalSize{}
		return naturalSize{}, nil
	}

	childSizes := make([]naturalSize, len(children))
	for i, c := range children {
		cs, err := d.measure(c, availableWidth)
		if err != nil {
			return naturalSize{}, err
		}
		childSizes[i] = cs
	}

	var ns naturalSize
	switch style.Display {
	case DisplayFlex:
		ns = measureFlexNatural(style, childSizes)
	case DisplayGrid:
		ns = measureGridNatural(style, childSizes)
	default:
		ns = measureBlockNatural(childSizes)
	}
	d.sizes[el.ID] = ns
	return ns, nil
}

// position resolves el's own Rect within box, then arranges its visible
// children inside el's content box per el's own Display.
func (d *driver) position(el *tree.Element, box tree.Rect) error {
	style := d.styleOf(el.ID)
	natural := d.sizes[el.ID]

	// An auto-sized dimension fills whatever box the parent assigned (the
	// ordinary block/flex/grid default); only a leaf with no box.Width to
	// fill (a bare text node scaled purely by content) falls back to its
	// measured natural size.
	fallbackWidth, fallbackHeight := natural.Width, natural.Height
	if box.Width > 0 {
		fallbackWidth = box.Width
	}
	if box.Height > 0 {
		fallbackHeight = box.Height
	}
	width := style.Size.Width.Resolve(box.Width, fallbackWidth)
	height := style.Size.Height.Resolve(box.Height, fallbackHeight)

	el.Position = tree.Rect{X: box.X, Y: box.Y, Width: width, Height: height}
	content := tree.Rect{
		X:      box.X + style.Padding.Left.Resolve(width, 0) + style.Border.Left.Resolve(width, 0),
		Y:      box.Y + style.Padding.Top.Resolve(height, 0) + style.Border.Top.Resolve(height, 0),
		Width:  width - horizontal(style.Padding, width) - horizontal(style.Border, width),
		Height: height - vertical(style.Padding, height) - vertical(style.Border, height),
	}
	el.Content = content

	children, err := visibleChildren(d.tr, el)
	if err != nil {
		return &Error{Op: "position children", Err: err}
	}
	if len(children) == 0 {
		return nil
	}

	childSizes := make([]naturalSize, len(children))
	childStyles := make([]Style, len(children))
	for i, c := range children {
		childSizes[i] = d.sizes[c.ID]
		childStyles[i] = d.styleOf(c.ID)
	}

	var rects []tree.Rect
	switch style.Display {
	case DisplayFlex:
		rects = layoutFlexChildren(content, style, childStyles, childSizes)
	case DisplayGrid:
		rects = layoutGridChildren(content, style, childStyles, childSizes)
	default:
		rects = layoutBlockChildren(content, childStyles, childSizes)
	}

	for i, c := range children {
		if err := d.position(c, rects[i]); err != nil {
			return err
		}
	}
	return nil
}

func visibleChildren(tr *tree.Tree, el *tree.Element) ([]*tree.Element, error) {
	all, err := tr.Children(el.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*tree.Element, 0, len(all))
	for _, c := range all {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out, nil
}

func horizontal(r EdgeRect, basis float64) float64 {
	return r.Left.Resolve(basis, 0) + r.Right.Resolve(basis, 0)
}

func vertical(r EdgeRect, basis float64) float64 {
	return r.Top.Resolve(basis, 0) + r.Bottom.Resolve(basis, 0)
}
