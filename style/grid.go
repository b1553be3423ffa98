package style

import "github.com/xiaoxigua1/takumi-go/core"

// TrackSizeKind is the kind of sizing function a grid track uses.
type TrackSizeKind uint8

const (
	TrackLength TrackSizeKind = iota
	TrackFlex                // fr unit
	TrackMinContent
	TrackMaxContent
	TrackAuto
	TrackMinMax
)

// TrackSize is one grid track's sizing function.
type TrackSize struct {
	Kind TrackSizeKind
	// Length is used by TrackLength; Flex by TrackFlex (the fr count).
	Length Length
	Flex   float32
	// Min/Max are used by TrackMinMax.
	Min, Max *TrackSize
}

// GridComponentKind distinguishes the three forms a grid-template entry
// can take, spec.md §4.2.
type GridComponentKind uint8

const (
	GridComponentLineNames GridComponentKind = iota
	GridComponentSingleTrack
	GridComponentRepeat
)

// RepeatCount is either a fixed integer or the `auto-fill`/`auto-fit`
// keyword, which expands to as many tracks as fit the container.
type RepeatCount struct {
	IsAutoFill bool
	IsAutoFit  bool
	Count      int
}

// GridTemplateComponent is one element of a `grid-template-columns`/
// `grid-template-rows` value list: a set of line names attached to the
// line at this position, a single track, or a repeat() group.
type GridTemplateComponent struct {
	Kind GridComponentKind

	// LineNames, used by GridComponentLineNames and attached before
	// GridComponentSingleTrack/GridComponentRepeat entries.
	LineNames []string

	// Track, used by GridComponentSingleTrack.
	Track TrackSize

	// Repeat fields, used by GridComponentRepeat.
	RepeatCount  RepeatCount
	RepeatTracks []GridTemplateComponent
}

// GridPlacementKind is the form of a `grid-column`/`grid-row` line
// placement, spec.md §4.2.
type GridPlacementKind uint8

const (
	GridPlacementAuto GridPlacementKind = iota
	GridPlacementLine
	GridPlacementSpan
	GridPlacementNamed
)

// GridPlacement is one end (start or end) of a grid item's line
// placement.
type GridPlacement struct {
	Kind GridPlacementKind
	Line int    // GridPlacementLine: 1-based line index, may be negative
	Span int    // GridPlacementSpan: number of tracks to span
	Name string // GridPlacementNamed: a named line or area
}

// gridAreaEmptyCell is the `grid-template-areas` cell token that denotes
// an empty cell.
const gridAreaEmptyCell = "."

// GridAreaRect is a resolved named area: the rectangle of grid lines it
// spans, 1-based and end-exclusive like CSS grid line numbers.
type GridAreaRect struct {
	RowStart, RowEnd       int
	ColumnStart, ColumnEnd int
}

// ParseGridTemplateAreas resolves a `grid-template-areas` matrix (one
// string per row, space-separated cell names) into named rectangles,
// validating that every row has the same number of columns and that
// each named area forms a single rectangle. Grounded on spec.md §4.2's
// "resolves to rectangles with consistent-width validation"; this
// algorithm has no teacher precursor (the teacher's grid.go never
// implemented grid-template-areas) so it is original code written
// directly from the CSS Grid specification's area-resolution rules.
func ParseGridTemplateAreas(rows []string) (map[string]GridAreaRect, error) {
	var grid [][]string
	width := -1
	for _, row := range rows {
		cells := splitAreaRow(row)
		if width == -1 {
			width = len(cells)
		} else if len(cells) != width {
			return nil, errInconsistentGridAreaWidth
		}
		grid = append(grid, cells)
	}

	areas := make(map[string]GridAreaRect)
	for r, row := range grid {
		for c, name := range row {
			if name == gridAreaEmptyCell || name == "" {
				continue
			}
			rect, seen := areas[name]
			if !seen {
				areas[name] = GridAreaRect{
					RowStart: r + 1, RowEnd: r + 2,
					ColumnStart: c + 1, ColumnEnd: c + 2,
				}
				continue
			}
			if r+1 < rect.RowStart {
				rect.RowStart = r + 1
			}
			if r+2 > rect.RowEnd {
				rect.RowEnd = r + 2
			}
			if c+1 < rect.ColumnStart {
				rect.ColumnStart = c + 1
			}
			if c+2 > rect.ColumnEnd {
				rect.ColumnEnd = c + 2
			}
			areas[name] = rect
		}
	}

	for name, rect := range areas {
		for r := rect.RowStart - 1; r < rect.RowEnd-1; r++ {
			for c := rect.ColumnStart - 1; c < rect.ColumnEnd-1; c++ {
				if grid[r][c] != name {
					return nil, errNonRectangularGridArea
				}
			}
		}
	}
	return areas, nil
}

func splitAreaRow(row string) []string {
	var cells []string
	var cur []byte
	flush := func() {
		if len(cur) > 0 {
			cells = append(cells, string(cur))
			cur = nil
		}
	}
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == ' ' || c == '\t' {
			flush()
			continue
		}
		cur = append(cur, c)
	}
	flush()
	return cells
}

// lowerLength resolves a track's Length to a layout-package-friendly
// form: percentages pass through unchanged (the layout engine resolves
// them against the container track size it computes), every other unit
// is resolved eagerly to px via ctx. Grid tracks have no native lowered
// form like LoweredLength because the layout package's track sizer
// works directly on style.Length (percentage | px), so this just
// normalizes everything else into Px.
func (t TrackSize) lowerLength(ctx core.RenderContext) TrackSize {
	out := t
	switch t.Kind {
	case TrackLength:
		out.Length = lowerTrackLength(t.Length, ctx)
	case TrackMinMax:
		if t.Min != nil {
			m := t.Min.lowerLength(ctx)
			out.Min = &m
		}
		if t.Max != nil {
			m := t.Max.lowerLength(ctx)
			out.Max = &m
		}
	}
	return out
}

func lowerTrackLength(l Length, ctx core.RenderContext) Length {
	if l.Unit == UnitPercentage || l.Unit == UnitAuto {
		return l
	}
	return Px(l.ResolveToPx(ctx, 0))
}

// LowerGridTemplateComponents resolves every track's Length within a
// grid-template-columns/rows component list, recursing into repeat()
// groups; line-name entries pass through untouched.
func LowerGridTemplateComponents(ctx core.RenderContext, components []GridTemplateComponent) []GridTemplateComponent {
	if components == nil {
		return nil
	}
	out := make([]GridTemplateComponent, len(components))
	for i, c := range components {
		out[i] = c
		switch c.Kind {
		case GridComponentSingleTrack:
			out[i].Track = c.Track.lowerLength(ctx)
		case GridComponentRepeat:
			out[i].RepeatTracks = LowerGridTemplateComponents(ctx, c.RepeatTracks)
		}
	}
	return out
}

// LowerTrackSizeList resolves every track's Length in a flat
// grid-auto-columns/rows list.
func LowerTrackSizeList(ctx core.RenderContext, tracks []TrackSize) []TrackSize {
	if tracks == nil {
		return nil
	}
	out := make([]TrackSize, len(tracks))
	for i, t := range tracks {
		out[i] = t.lowerLength(ctx)
	}
	return out
}
