package layout

import "github.com/xiaoxigua1/takumi-go/style"

// flexItem tracks one child's state through the two sizing passes
// below, the Go analogue of the teacher's layoutFlex per-item
// bookkeeping (FlexBasis/HypotheticalMainSize/grow/shrink).
type flexItem struct {
	node       *Node
	basis      float32
	finalMain  float32
	finalCross float32
	grow       float32
	shrink     float32
	minMain    float32
	maxMain    float32
	hasMinMain bool
	hasMaxMain bool
	stretch    bool
}

// computeFlex lays out a flex container and its children, adapted from
// the teacher's pkg/layout/layout_flex.go main/cross axis algorithm,
// generalized to the generic Node/Measure model (spec.md §3.3's flex
// properties, §4.9's layout-engine contract).
func computeFlex(n *Node, available [2]AvailableSpace) {
	s := n.Style
	isRow := s.FlexDirection == style.FlexRow || s.FlexDirection == style.FlexRowReverse
	mainReverse := s.FlexDirection == style.FlexRowReverse || s.FlexDirection == style.FlexColumnReverse
	wrap := s.FlexWrap != style.FlexNoWrap
	wrapReverse := s.FlexWrap == style.FlexWrapReverse

	mainIdx, crossIdx := 0, 1
	if !isRow {
		mainIdx, crossIdx = 1, 0
	}

	pb := paddingBorderSize(n)
	pbAxis := [2]float32{pb.Width, pb.Height}

	containerMain, mainDefinite := resolveContainerAxis(n, mainIdx, available[mainIdx], pbAxis[mainIdx])
	containerCross, crossDefinite := resolveContainerAxis(n, crossIdx, available[crossIdx], pbAxis[crossIdx])

	mainGap := resolveGap(s, mainIdx, containerMain, mainDefinite)
	crossGap := resolveGap(s, crossIdx, containerCross, crossDefinite)

	items := make([]*flexItem, 0, len(n.Children))
	for _, child := range n.Children {
		if child.Style.Display == style.DisplayNone {
			continue
		}
		items = append(items, &flexItem{node: child})
	}

	// Pass 1: natural size at content-driven availability, to establish
	// each item's flex-basis when it is auto.
	naturalAvail := [2]AvailableSpace{{Kind: MaxContent}, {Kind: MaxContent}}
	if crossDefinite {
		naturalAvail[crossIdx] = DefiniteSpace(containerCross)
	}
	for _, it := range items {
		cs := it.node.Style
		basisLen := axisLength(cs, mainIdx, cs.FlexBasis)
		if basisLen.Kind != style.LoweredAuto {
			v, ok := resolveAxis(basisLen, DefiniteSpace(containerMain))
			if ok {
				it.basis = v
			} else {
				computeNode(it.node, naturalAvail)
				it.basis = axisOf(it.node.Layout.Size, mainIdx)
			}
		} else {
			computeNode(it.node, naturalAvail)
			it.basis = axisOf(it.node.Layout.Size, mainIdx)
		}
		it.grow = cs.FlexGrow
		it.shrink = cs.FlexShrink
		if v, ok := resolveAxis(axisLength(cs, mainIdx, axisMinLength(cs, mainIdx)), DefiniteSpace(containerMain)); ok {
			it.minMain, it.hasMinMain = v, true
		}
		if v, ok := resolveAxis(axisLength(cs, mainIdx, axisMaxLength(cs, mainIdx)), DefiniteSpace(containerMain)); ok {
			it.maxMain, it.hasMaxMain = v, true
		}
		it.stretch = itemAlign(n, it.node) == style.AlignStretch && axisLength(cs, crossIdx, axisSizeLength(cs, crossIdx)).Kind == style.LoweredAuto
	}

	// Split into flex lines.
	var lines [][]*flexItem
	if !wrap || !mainDefinite {
		lines = [][]*flexItem{items}
	} else {
		var line []*flexItem
		running := float32(0)
		for _, it := range items {
			w := it.basis
			if len(line) > 0 {
				w += mainGap
			}
			if len(line) > 0 && running+w > containerMain {
				lines = append(lines, line)
				line = nil
				running = 0
				w = it.basis
			}
			line = append(line, it)
			running += w
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}

	if !mainDefinite {
		// Shrink-to-fit: container main size is the widest line's content.
		var widest float32
		for _, line := range lines {
			sum := float32(0)
			for i, it := range line {
				sum += it.basis
				if i > 0 {
					sum += mainGap
				}
			}
			if sum > widest {
				widest = sum
			}
		}
		containerMain = widest
	}

	// Distribute grow/shrink within each line.
	lineCrossSizes := make([]float32, len(lines))
	for li, line := range lines {
		var totalBasis, totalGrow, totalShrinkWeighted float32
		for i, it := range line {
			totalBasis += it.basis
			if i > 0 {
				totalBasis += mainGap
			}
			totalGrow += it.grow
			totalShrinkWeighted += it.shrink * it.basis
		}
		free := containerMain - totalBasis
		for _, it := range line {
			final := it.basis
			switch {
			case free > 0 && totalGrow > 0:
				final += free * (it.grow / totalGrow)
			case free < 0 && totalShrinkWeighted > 0:
				final += free * (it.shrink * it.basis / totalShrinkWeighted)
			}
			if it.hasMinMain && final < it.minMain {
				final = it.minMain
			}
			if it.hasMaxMain && final > it.maxMain {
				final = it.maxMain
			}
			if final < 0 {
				final = 0
			}
			it.finalMain = final
		}

		// Pass 2: resolve final layout at the distributed main size.
		finalAvail := [2]AvailableSpace{}
		for _, it := range line {
			a := naturalAvail
			a[mainIdx] = DefiniteSpace(it.finalMain)
			if it.stretch && crossDefinite {
				a[crossIdx] = DefiniteSpace(containerCross)
			}
			_ = finalAvail
			computeNode(it.node, a)
			it.finalCross = axisOf(it.node.Layout.Size, crossIdx)
			if it.finalCross > lineCrossSizes[li] {
				lineCrossSizes[li] = it.finalCross
			}
		}
	}

	if crossDefinite && len(lines) == 1 {
		lineCrossSizes[0] = containerCross
	}

	totalCross := float32(0)
	for i, c := range lineCrossSizes {
		totalCross += c
		if i > 0 {
			totalCross += crossGap
		}
	}
	if !crossDefinite {
		containerCross = totalCross
	}

	// Position items.
	crossCursor := crossStartOffset(s.AlignContent, containerCross, totalCross, len(lines))
	crossExtra := crossContentGap(s.AlignContent, containerCross, totalCross, len(lines))
	if wrapReverse {
		crossCursor = containerCross - crossCursor
	}

	for li, line := range lines {
		lineCross := lineCrossSizes[li]
		mainCursor, mainExtra := mainStartOffset(s.JustifyContent, containerMain, line, mainGap)

		ordered := line
		if mainReverse {
			ordered = reversedItems(line)
		}
		lineCrossOrigin := crossCursor
		if wrapReverse {
			lineCrossOrigin = crossCursor - lineCross
		}

		for i, it := range ordered {
			crossOffset := crossItemOffset(itemAlign(n, it.node), lineCross, it.finalCross)
			loc := Point{}
			setAxis(&loc, mainIdx, mainCursor)
			setAxis(&loc, crossIdx, lineCrossOrigin+crossOffset)
			it.node.Layout.Location = loc

			mainCursor += it.finalMain + mainExtra
			if i < len(ordered)-1 {
				mainCursor += mainGap
			}
		}
		if wrapReverse {
			crossCursor -= lineCross + crossGap + crossExtra
		} else {
			crossCursor += lineCross + crossGap + crossExtra
		}
	}

	n.Layout = layoutFromBorderBox(n, sizeFromAxes(mainIdx, containerMain+pbAxis[mainIdx], containerCross+pbAxis[crossIdx]), available)
}

func reversedItems(items []*flexItem) []*flexItem {
	out := make([]*flexItem, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}

func axisOf(s Size, idx int) float32 {
	if idx == 0 {
		return s.Width
	}
	return s.Height
}

func setAxis(p *Point, idx int, v float32) {
	if idx == 0 {
		p.X = v
	} else {
		p.Y = v
	}
}

func sizeFromAxes(mainIdx int, main, cross float32) Size {
	if mainIdx == 0 {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func resolveContainerAxis(n *Node, axis int, available AvailableSpace, paddingBorder float32) (float32, bool) {
	s := n.Style
	length := axisSizeLength(s, axis)
	if v, ok := resolveAxis(length, available); ok {
		return toContentAxis(s, v, paddingBorder), true
	}
	if available.Kind == Definite {
		v := available.Value - paddingBorder
		if v < 0 {
			v = 0
		}
		return v, true
	}
	return 0, false
}

func axisSizeLength(s style.LayoutStyle, axis int) style.LoweredLength {
	if axis == 0 {
		return s.Width
	}
	return s.Height
}

func axisMinLength(s style.LayoutStyle, axis int) style.LoweredLength {
	if axis == 0 {
		return s.MinWidth
	}
	return s.MinHeight
}

func axisMaxLength(s style.LayoutStyle, axis int) style.LoweredLength {
	if axis == 0 {
		return s.MaxWidth
	}
	return s.MaxHeight
}

// axisLength exists so flex-basis ("main-axis size") call sites read the
// same as the min/max helpers; it just returns l unchanged.
func axisLength(_ style.LayoutStyle, _ int, l style.LoweredLength) style.LoweredLength { return l }

func resolveGap(s style.LayoutStyle, axis int, containerSize float32, definite bool) float32 {
	var g style.LoweredLength
	if axis == 0 {
		g = s.ColumnGap
	} else {
		g = s.RowGap
	}
	if v, ok := resolveAxis(g, DefiniteSpace(containerSize)); ok && definite {
		return v
	}
	if g.Kind == style.LoweredLength_ {
		return g.PxValue
	}
	return 0
}

func itemAlign(container *Node, item *Node) style.AlignItems {
	switch item.Style.AlignSelf {
	case style.AlignSelfStretch:
		return style.AlignStretch
	case style.AlignSelfStart:
		return style.AlignStart
	case style.AlignSelfEnd:
		return style.AlignEnd
	case style.AlignSelfCenter:
		return style.AlignCenter
	case style.AlignSelfBaseline:
		return style.AlignBaseline
	default:
		return container.Style.AlignItems
	}
}

func crossItemOffset(align style.AlignItems, lineCross, itemCross float32) float32 {
	switch align {
	case style.AlignCenter:
		return (lineCross - itemCross) / 2
	case style.AlignEnd:
		return lineCross - itemCross
	default:
		return 0
	}
}

func mainStartOffset(justify style.JustifyContent, containerMain float32, line []*flexItem, gap float32) (float32, float32) {
	var used float32
	for i, it := range line {
		used += it.finalMain
		if i > 0 {
			used += gap
		}
	}
	free := containerMain - used
	if free < 0 {
		free = 0
	}
	n := len(line)
	switch justify {
	case style.JustifyEnd:
		return free, 0
	case style.JustifyCenter:
		return free / 2, 0
	case style.JustifySpaceBetween:
		if n > 1 {
			return 0, free / float32(n-1)
		}
		return 0, 0
	case style.JustifySpaceAround:
		if n > 0 {
			each := free / float32(n)
			return each / 2, each
		}
		return 0, 0
	case style.JustifySpaceEvenly:
		each := free / float32(n+1)
		return each, each
	default:
		return 0, 0
	}
}

func crossStartOffset(align style.AlignContent, containerCross, totalCross float32, lineCount int) float32 {
	free := containerCross - totalCross
	if free < 0 {
		free = 0
	}
	switch align {
	case style.AlignContentEnd:
		return free
	case style.AlignContentCenter:
		return free / 2
	case style.AlignContentSpaceAround:
		if lineCount > 0 {
			return free / float32(lineCount) / 2
		}
	case style.AlignContentSpaceEvenly:
		return free / float32(lineCount+1)
	}
	return 0
}

func crossContentGap(align style.AlignContent, containerCross, totalCross float32, lineCount int) float32 {
	free := containerCross - totalCross
	if free < 0 {
		free = 0
	}
	switch align {
	case style.AlignContentSpaceBetween:
		if lineCount > 1 {
			return free / float32(lineCount-1)
		}
	case style.AlignContentSpaceAround:
		if lineCount > 0 {
			return free / float32(lineCount)
		}
	case style.AlignContentSpaceEvenly:
		return free / float32(lineCount+1)
	}
	return 0
}
