package layout

import "github.com/xiaoxigua1/takumi-go/style"

// track is one resolved grid track: a fixed pixel size, or a flexible
// share of the leftover space (fr units and auto tracks both flex,
// matching the common simplification of treating auto tracks as 1fr
// when no intrinsic-sizing pass is run — this engine has no separate
// min-content/max-content track algorithm).
type track struct {
	fixedPx float32
	isFlex  bool
	flex    float32
	start   float32 // resolved position, filled in after sizing
	size    float32
}

type namedLines map[string][]int // line name -> 1-based line indices

// expandTracks flattens a grid-template-component list into tracks plus
// a name->line-index map, resolving repeat() groups inline. Grounded on
// spec.md §4.2's LineNames|SingleTrack|Repeat grammar; the teacher's
// grid.go never implemented repeat()/named lines so this is new code
// written directly from the spec grammar (see DESIGN.md).
func expandTracks(components []style.GridTemplateComponent, containerSize float32, definite bool) ([]track, namedLines) {
	var tracks []track
	names := namedLines{}
	lineIdx := 1 // 1-based CSS grid line numbering

	addNames := func(ns []string) {
		for _, nm := range ns {
			names[nm] = append(names[nm], lineIdx)
		}
	}
	addTrack := func(t style.TrackSize) {
		tracks = append(tracks, resolveTrackSize(t, containerSize, definite))
		lineIdx++
	}

	var walk func(comps []style.GridTemplateComponent)
	walk = func(comps []style.GridTemplateComponent) {
		for _, c := range comps {
			switch c.Kind {
			case style.GridComponentLineNames:
				addNames(c.LineNames)
			case style.GridComponentSingleTrack:
				addTrack(c.Track)
			case style.GridComponentRepeat:
				count := c.RepeatCount.Count
				if c.RepeatCount.IsAutoFill || c.RepeatCount.IsAutoFit {
					count = 1 // no container-fit pass; treat as a single repetition
				}
				if count < 1 {
					count = 1
				}
				for i := 0; i < count; i++ {
					walk(c.RepeatTracks)
				}
			}
		}
	}
	walk(components)
	return tracks, names
}

func resolveTrackSize(t style.TrackSize, containerSize float32, definite bool) track {
	switch t.Kind {
	case style.TrackFlex:
		return track{isFlex: true, flex: t.Flex}
	case style.TrackAuto, style.TrackMinContent, style.TrackMaxContent:
		return track{isFlex: true, flex: 1}
	case style.TrackMinMax:
		if t.Max != nil {
			return resolveTrackSize(*t.Max, containerSize, definite)
		}
		return track{isFlex: true, flex: 1}
	default: // TrackLength
		// style.LowerGridTemplateComponents has already resolved every
		// non-percentage unit to px before this tree reaches the layout
		// package, so only UnitPx/UnitPercentage/UnitAuto remain here.
		switch t.Length.Unit {
		case style.UnitPercentage:
			if !definite {
				return track{isFlex: true, flex: 1}
			}
			return track{fixedPx: (t.Length.Value / 100.0) * containerSize}
		case style.UnitAuto:
			return track{isFlex: true, flex: 1}
		default:
			return track{fixedPx: t.Length.Value}
		}
	}
}

func sizeTracks(tracks []track, containerSize, gap float32) {
	n := len(tracks)
	if n == 0 {
		return
	}
	var fixedTotal, flexTotal float32
	for _, t := range tracks {
		if t.isFlex {
			flexTotal += t.flex
		} else {
			fixedTotal += t.fixedPx
		}
	}
	totalGap := gap * float32(n-1)
	leftover := containerSize - fixedTotal - totalGap
	if leftover < 0 {
		leftover = 0
	}
	pos := float32(0)
	for i := range tracks {
		if tracks[i].isFlex {
			if flexTotal > 0 {
				tracks[i].size = leftover * (tracks[i].flex / flexTotal)
			}
		} else {
			tracks[i].size = tracks[i].fixedPx
		}
		tracks[i].start = pos
		pos += tracks[i].size + gap
	}
}

func tracksSpan(tracks []track, startLine, endLine int, gap float32) (float32, float32) {
	if startLine < 1 {
		startLine = 1
	}
	if endLine > len(tracks)+1 {
		endLine = len(tracks) + 1
	}
	if endLine <= startLine {
		endLine = startLine + 1
	}
	start := tracks[startLine-1].start
	var size float32
	for i := startLine; i < endLine && i <= len(tracks); i++ {
		size += tracks[i-1].size
		if i > startLine {
			size += gap
		}
	}
	return start, size
}

// computeGrid lays out a grid container, adapted from the teacher's
// pkg/layout/grid.go explicit-track placement model and extended with
// repeat()/named-line/auto-placement support per spec.md §4.2.
func computeGrid(n *Node, available [2]AvailableSpace) {
	s := n.Style
	pb := paddingBorderSize(n)
	containerW, wDefinite := resolveContainerAxis(n, 0, available[0], pb.Width)
	containerH, hDefinite := resolveContainerAxis(n, 1, available[1], pb.Height)

	colGap := resolveGap(s, 0, containerW, wDefinite)
	rowGap := resolveGap(s, 1, containerH, hDefinite)

	cols, colNames := expandTracks(s.GridTemplateColumns, containerW, wDefinite)
	rows, rowNames := expandTracks(s.GridTemplateRows, containerH, hDefinite)
	if len(cols) == 0 {
		cols = []track{{isFlex: true, flex: 1}}
	}
	if len(rows) == 0 {
		rows = []track{{isFlex: true, flex: 1}}
	}

	type placed struct {
		node                   *Node
		colStart, colEnd       int
		rowStart, rowEnd       int
	}

	autoCol, autoRow := 1, 1
	var items []placed
	for _, child := range n.Children {
		if child.Style.Display == style.DisplayNone {
			continue
		}
		cs := child.Style
		colStart, colEnd := resolvePlacement(cs.GridColumnStart, cs.GridColumnEnd, colNames, s.GridTemplateAreas, true)
		rowStart, rowEnd := resolvePlacement(cs.GridRowStart, cs.GridRowEnd, rowNames, s.GridTemplateAreas, false)
		if colStart == 0 {
			colStart, colEnd = autoCol, autoCol+1
		}
		if rowStart == 0 {
			rowStart, rowEnd = autoRow, autoRow+1
		}
		for colEnd > len(cols)+1 {
			cols = append(cols, track{isFlex: true, flex: 1})
		}
		for rowEnd > len(rows)+1 {
			rows = append(rows, track{isFlex: true, flex: 1})
		}
		items = append(items, placed{child, colStart, colEnd, rowStart, rowEnd})

		autoCol = colEnd
		if autoCol > len(cols) {
			autoCol = 1
			autoRow++
		}
	}

	sizeTracks(cols, containerW, colGap)
	sizeTracks(rows, containerH, rowGap)

	if !wDefinite {
		var total float32
		for i, t := range cols {
			total += t.size
			if i > 0 {
				total += colGap
			}
		}
		containerW = total
	}
	if !hDefinite {
		var total float32
		for i, t := range rows {
			total += t.size
			if i > 0 {
				total += rowGap
			}
		}
		containerH = total
	}

	for _, it := range items {
		cx, cw := tracksSpan(cols, it.colStart, it.colEnd, colGap)
		ry, rh := tracksSpan(rows, it.rowStart, it.rowEnd, rowGap)

		align := itemAlign(n, it.node)
		justify := style.AlignItems(it.node.Style.JustifySelf)
		if it.node.Style.JustifySelf == style.AlignSelfAuto {
			justify = n.Style.JustifyItems
		} else {
			justify = selfToItems(it.node.Style.JustifySelf)
		}

		cellAvail := [2]AvailableSpace{DefiniteSpace(cw), DefiniteSpace(rh)}
		if align != style.AlignStretch {
			cellAvail[1] = AvailableSpace{Kind: MaxContent}
		}
		if justify != style.AlignStretch {
			cellAvail[0] = AvailableSpace{Kind: MaxContent}
		}
		computeNode(it.node, cellAvail)

		itemW := it.node.Layout.Size.Width
		itemH := it.node.Layout.Size.Height
		x := cx + crossItemOffset(justify, cw, itemW)
		y := ry + crossItemOffset(align, rh, itemH)
		it.node.Layout.Location = Point{X: x, Y: y}
	}

	n.Layout = layoutFromBorderBox(n, Size{Width: containerW + pb.Width, Height: containerH + pb.Height}, available)
}

func selfToItems(a style.AlignSelf) style.AlignItems {
	switch a {
	case style.AlignSelfStart:
		return style.AlignStart
	case style.AlignSelfEnd:
		return style.AlignEnd
	case style.AlignSelfCenter:
		return style.AlignCenter
	case style.AlignSelfBaseline:
		return style.AlignBaseline
	default:
		return style.AlignStretch
	}
}

// resolvePlacement resolves a GridColumnStart/End or GridRowStart/End
// pair into 1-based [start,end) line numbers, or (0,0) for "fully
// auto" (both ends unspecified), spec.md §4.2's
// auto|line(i)|span(n)|named(id) grammar. isColumn selects which axis
// of grid-template-areas to consult for named placements.
func resolvePlacement(startP, endP style.GridPlacement, names namedLines, areas map[string]style.GridAreaRect, isColumn bool) (int, int) {
	resolveOne := func(p style.GridPlacement) (int, bool) {
		switch p.Kind {
		case style.GridPlacementLine:
			return p.Line, true
		case style.GridPlacementNamed:
			if lines, ok := names[p.Name]; ok && len(lines) > 0 {
				return lines[0], true
			}
			if rect, ok := areas[p.Name]; ok {
				if isColumn {
					return rect.ColumnStart, true
				}
				return rect.RowStart, true
			}
		}
		return 0, false
	}

	start, hasStart := resolveOne(startP)
	if !hasStart {
		if startP.Kind == style.GridPlacementNamed {
			if rect, ok := areas[startP.Name]; ok {
				if isColumn {
					return rect.ColumnStart, rect.ColumnEnd
				}
				return rect.RowStart, rect.RowEnd
			}
		}
		return 0, 0
	}

	if endP.Kind == style.GridPlacementSpan {
		return start, start + maxInt(endP.Span, 1)
	}
	end, hasEnd := resolveOne(endP)
	if !hasEnd {
		return start, start + 1
	}
	if end <= start {
		end = start + 1
	}
	return start, end
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
