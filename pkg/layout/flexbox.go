package layout

import "github.com/kiln-ui/kiln/pkg/tree"

// isRow reports whether dir lays its children out horizontally.
func isRow(dir FlexDirection) bool { return dir == FlexRow || dir == FlexRowReverse }
func isReverse(dir FlexDirection) bool {
	return dir == FlexRowReverse || dir == FlexColumnReverse
}

// measureFlexNatural sums the main-axis natural sizes (plus gaps) and
// takes the largest cross-axis natural size — the natural size of a
// single-line flex container.
func measureFlexNatural(style Style, children []naturalSize) naturalSize {
	row := isRow(style.FlexDirection)
	var mainTotal, crossMax float64
	for i, c := range children {
		main, cross := axisOf(row, c)
		mainTotal += main
		if i > 0 {
			mainTotal += style.ColumnGap
			if !row {
				mainTotal += style.RowGap - style.ColumnGap
			}
		}
		if cross > crossMax {
			crossMax = cross
		}
	}
	if row {
		return naturalSize{Width: mainTotal, Height: crossMax}
	}
	return naturalSize{Width: crossMax, Height: mainTotal}
}

func axisOf(row bool, s naturalSize) (main, cross float64) {
	if row {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// layoutFlexChildren arranges children along style.FlexDirection's main
// axis using the standard grow/shrink distribution (single line only —
// FlexWrap is parsed but not applied, a documented simplification; most
// kiln views use a single row/column of fixed-count children per spec.md
// §4.1's repeat model rather than reflowing wrapped content).
func layoutFlexChildren(content tree.Rect, style Style, childStyles []Style, childSizes []naturalSize) []tree.Rect {
	row := isRow(style.FlexDirection)
	containerMain, containerCross := axisOf(row, naturalSize{Width: content.Width, Height: content.Height})
	gap := style.ColumnGap
	if !row {
		gap = style.RowGap
	}

	n := len(childStyles)
	basis := make([]float64, n)
	grow := make([]float64, n)
	shrink := make([]float64, n)
	cross := make([]float64, n)

	var basisTotal float64
	for i, st := range childStyles {
		mainNatural, crossNatural := axisOf(row, childSizes[i])
		mainSizeProp := st.Size.Width
		if !row {
			mainSizeProp = st.Size.Height
		}
		b := mainNatural
		if mainSizeProp.Kind != DimAuto {
			b = mainSizeProp.Resolve(containerMain, mainNatural)
		}
		if st.FlexBasis.Kind != DimAuto {
			b = st.FlexBasis.Resolve(containerMain, mainNatural)
		}
		basis[i] = b
		basisTotal += b
		grow[i] = st.FlexGrow
		shrink[i] = st.FlexShrink
		cross[i] = crossNatural
	}
	basisTotal += gap * float64(maxInt(n-1, 0))

	free := containerMain - basisTotal
	mainSizes := make([]float64, n)
	copy(mainSizes, basis)

	if free > 0 {
		var growTotal float64
		for _, g := range grow {
			growTotal += g
		}
		if growTotal > 0 {
			for i := range mainSizes {
				mainSizes[i] += free * grow[i] / growTotal
			}
		}
	} else if free < 0 {
		var shrinkTotal float64
		for i, s := range shrink {
			shrinkTotal += s * basis[i]
		}
		if shrinkTotal > 0 {
			for i := range mainSizes {
				mainSizes[i] += free * (shrink[i] * basis[i]) / shrinkTotal
				if mainSizes[i] < 0 {
					mainSizes[i] = 0
				}
			}
		}
	}

	var usedMain float64
	for _, m := range mainSizes {
		usedMain += m
	}
	usedMain += gap * float64(maxInt(n-1, 0))
	leftover := containerMain - usedMain

	start, step := mainStartStep(style.JustifyContent, leftover, n, gap)

	positions := make([]float64, n)
	cursor := start
	for i := range positions {
		positions[i] = cursor
		cursor += mainSizes[i] + step
	}

	rects := make([]tree.Rect, n)
	for i := 0; i < n; i++ {
		idx := i
		if isReverse(style.FlexDirection) {
			idx = n - 1 - i
		}
		align := style.AlignItems
		if childStyles[idx].AlignSelf != nil {
			align = *childStyles[idx].AlignSelf
		}
		crossSize := cross[idx]
		if align == AlignStretch {
			crossSize = containerCross
		}
		crossPos := crossStart(align, containerCross, crossSize)

		if row {
			rects[idx] = tree.Rect{
				X: content.X + positions[i], Y: content.Y + crossPos,
				Width: mainSizes[idx], Height: crossSize,
			}
		} else {
			rects[idx] = tree.Rect{
				X: content.X + crossPos, Y: content.Y + positions[i],
				Width: crossSize, Height: mainSizes[idx],
			}
		}
	}
	return rects
}

// mainStartStep returns the starting offset and the extra per-gap spacing
// justify-content adds between items, given leftover free space on the
// main axis after sizing.
func mainStartStep(justify Align, leftover float64, n int, gap float64) (start, step float64) {
	step = gap
	if n == 0 || leftover <= 0 {
		return 0, step
	}
	switch justify {
	case AlignCenter:
		return leftover / 2, step
	case AlignEnd:
		return leftover, step
	case AlignSpaceBetween:
		if n > 1 {
			return 0, step + leftover/float64(n-1)
		}
		return leftover / 2, step
	case AlignSpaceAround:
		each := leftover / float64(n)
		return each / 2, step + each
	case AlignSpaceEvenly:
		each := leftover / float64(n+1)
		return each, step + each
	default:
		return 0, step
	}
}

func crossStart(align Align, containerCross, itemCross float64) float64 {
	switch align {
	case AlignCenter:
		return (containerCross - itemCross) / 2
	case AlignEnd:
		return containerCross - itemCross
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
