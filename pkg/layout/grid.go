package layout

import "github.com/kiln-ui/kiln/pkg/tree"

// resolveTracks turns a grid-template-rows/columns track list into pixel
// sizes: fixed and percentage tracks resolve directly, `fr` tracks split
// whatever space remains proportionally, and each `auto` track takes the
// share a 1fr track would alongside the fr tracks (a documented simplification of
// CSS grid's full auto-sizing algorithm, which measures each auto track's
// content first).
func resolveTracks(tracks []TrackSize, available float64, gap float64) []float64 {
	if len(tracks) == 0 {
		return nil
	}
	sizes := make([]float64, len(tracks))
	var fixedTotal float64
	var frTotal float64
	var flexCount int
	for i, t := range tracks {
		switch t.Kind {
		case DimLength:
			sizes[i] = t.Value
			fixedTotal += t.Value
		case DimPercent:
			sizes[i] = t.Value / 100 * available
			fixedTotal += sizes[i]
		case DimFr:
			frTotal += t.Value
			flexCount++
		default: // auto, shares the remainder as one fr
			frTotal++
			flexCount++
		}
	}
	fixedTotal += gap * float64(len(tracks)-1)
	remaining := available - fixedTotal
	if remaining < 0 {
		remaining = 0
	}
	if flexCount > 0 {
		for i, t := range tracks {
			switch t.Kind {
			case DimFr:
				if frTotal > 0 {
					sizes[i] = remaining * t.Value / frTotal
				}
			case DimLength, DimPercent:
				// already sized
			default:
				sizes[i] = remaining / frTotal
			}
		}
	}
	return sizes
}

func trackOffsets(sizes []float64, start, gap float64) []float64 {
	offsets := make([]float64, len(sizes))
	cursor := start
	for i, s := range sizes {
		offsets[i] = cursor
		cursor += s + gap
	}
	return offsets
}

// measureGridNatural estimates a grid's natural size as the largest child's
// size times the column and row counts, adequate for a fixed-template grid.
// Explicit track sizes (fixed, percent, fr) are not consulted.
func measureGridNatural(style Style, children []naturalSize) naturalSize {
	var maxW, maxH float64
	for _, c := range children {
		if c.Width > maxW {
			maxW = c.Width
		}
		if c.Height > maxH {
			maxH = c.Height
		}
	}
	cols := maxInt(len(style.GridTemplateColumns), 1)
	rows := maxInt(len(style.GridTemplateRows), (len(children)+cols-1)/maxInt(cols, 1))
	return naturalSize{Width: maxW * float64(cols), Height: maxH * float64(rows)}
}

// layoutGridChildren places children into the explicit track grid in
// document order, row-major, wrapping to the next row after filling every
// column — auto-placement beyond that (dense packing, explicit
// grid-row/grid-column spans) is not modeled, a deliberate scope cut since
// spec.md's repeat model produces uniform same-shape clones rather than
// arbitrarily spanning grid items.
func layoutGridChildren(content tree.Rect, style Style, childStyles []Style, childSizes []naturalSize) []tree.Rect {
	cols := style.GridTemplateColumns
	if len(cols) == 0 {
		cols = []TrackSize{{Kind: DimFr, Value: 1}}
	}
	colSizes := resolveTracks(cols, content.Width, style.ColumnGap)
	colOffsets := trackOffsets(colSizes, content.X, style.ColumnGap)

	rowCount := (len(childStyles) + len(cols) - 1) / len(cols)
	rows := style.GridTemplateRows
	if len(rows) == 0 {
		rows = make([]TrackSize, rowCount)
		for i := range rows {
			rows[i] = TrackSize{Kind: DimFr, Value: 1}
		}
	}
	rowSizes := resolveTracks(rows, content.Height, style.RowGap)
	rowOffsets := trackOffsets(rowSizes, content.Y, style.RowGap)

	rects := make([]tree.Rect, len(childStyles))
	for i := range childStyles {
		col := i % len(cols)
		row := i / len(cols)
		var w, h float64
		if col < len(colSizes) {
			w = colSizes[col]
		}
		if row < len(rowSizes) {
			h = rowSizes[row]
		}
		var x, y float64
		if col < len(colOffsets) {
			x = colOffsets[col]
		}
		if row < len(rowOffsets) {
			y = rowOffsets[row]
		}
		rects[i] = tree.Rect{X: x, Y: y, Width: w, Height: h}
	}
	return rects
}
