package render

import (
	"math"

	"github.com/xiaoxigua1/takumi-go/canvas"
	"github.com/xiaoxigua1/takumi-go/layout"
	"github.com/xiaoxigua1/takumi-go/node"
	"github.com/xiaoxigua1/takumi-go/style"
)

// debugBorderColor is the fixed magenta outline GlobalContext.
// DrawDebugBorder draws around every node's border box, SPEC_FULL §12's
// debug-border-overlay supplement (takumi's rendering/render.rs
// draw_debug_border).
var debugBorderColor = style.Color{R: 255, G: 0, B: 255, A: 255}

// drawDebugBorder outlines a node's border box with a 1px strip on each
// edge, drawn after the node's normal content so it is always visible.
func drawDebugBorder(cv canvas.Canvas, pc node.PaintContext, size layout.Size) {
	w := int(math.Round(float64(size.Width)))
	h := int(math.Round(float64(size.Height)))
	if w <= 0 || h <= 0 {
		return
	}
	ox, oy := int(math.Round(float64(pc.OriginX))), int(math.Round(float64(pc.OriginY)))

	strip := func(x, y, sw, sh int) {
		if sw <= 0 || sh <= 0 {
			return
		}
		cv.FillColor(canvas.Offset{X: x, Y: y}, canvas.Size{Width: uint32(sw), Height: uint32(sh)}, debugBorderColor, nil, pc.Transform)
	}
	strip(ox, oy, w, 1)
	strip(ox, oy+h-1, w, 1)
	strip(ox, oy, 1, h)
	strip(ox+w-1, oy, 1, h)
}
