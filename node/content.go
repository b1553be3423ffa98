package node

import (
	"image"
	"math"

	"github.com/xiaoxigua1/takumi-go/canvas"
	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/imagestore"
	"github.com/xiaoxigua1/takumi-go/layout"
	"github.com/xiaoxigua1/takumi-go/style"
	"github.com/xiaoxigua1/takumi-go/text"
)

// drawText paints this node's glyph runs at the content box's origin,
// spec.md §4.10's "Text: draw_content calls the text painter". laidOut
// is nil only if measurement was skipped (zero-size content box), in
// which case there is nothing to paint.
func (n *Node) drawText(pc PaintContext, resolved style.Style, lay layout.Layout, offset canvas.Offset) {
	if n.laidOut == nil {
		return
	}
	svc, _ := pc.RenderCtx.Global.FontService.(text.FontService)
	if svc == nil {
		return
	}
	cx, cy := contentBoxOrigin(pc.RenderCtx, resolved, lay)
	originX := float32(offset.X) + cx
	originY := float32(offset.Y) + cy
	maskImage := n.resolveMaskImage(pc, resolved, lay)
	text.Paint(pc.RenderCtx, pc.Canvas, svc, n.laidOut, n.resolvedFont, originX, originY, maskImage)
}

// resolveMaskImage fetches and fits mask-image to the content box,
// spec.md §4.8 step 4's mask_image-as-glyph-fill path. A missing or
// undecoded src falls back to nil, leaving glyphs painted with the flat
// text color, the same absorb-and-continue behavior drawImage applies
// to a bad image src.
func (n *Node) resolveMaskImage(pc PaintContext, resolved style.Style, lay layout.Layout) image.Image {
	src := resolved.MaskImage.Value
	if src == "" {
		return nil
	}
	store, _ := pc.RenderCtx.Global.ImageStore.(imagestore.ImageStore)
	if store == nil {
		return nil
	}
	state := store.Get(src)
	if state.Kind != imagestore.StateFetched || state.Bitmap == nil {
		return nil
	}
	boxW := int(math.Round(float64(lay.ContentSize.Width)))
	boxH := int(math.Round(float64(lay.ContentSize.Height)))
	if boxW <= 0 || boxH <= 0 {
		return nil
	}
	return imagestore.ApplyFit(state.Bitmap, boxW, boxH, imagestore.FitFill, imagestore.Position{X: 0.5, Y: 0.5})
}

// drawImage resolves this node's src through the image store, applies
// object-fit/object-position, and enqueues one OverlayImage for the
// result, spec.md §4.10. A missing or undecodable src is absorbed per
// §7: the node has already painted its background/border, so drawImage
// simply has nothing to add.
func (n *Node) drawImage(pc PaintContext, resolved style.Style, lay layout.Layout, offset canvas.Offset) {
	store, _ := pc.RenderCtx.Global.ImageStore.(imagestore.ImageStore)
	if store == nil || n.Src == "" {
		return
	}
	state := store.Get(n.Src)
	var src image.Image
	switch state.Kind {
	case imagestore.StateFetched:
		src = state.Bitmap
	default:
		// SVG trees, network errors, and decode errors are all absorbed;
		// none produce a raster source this renderer can composite.
		return
	}
	if src == nil {
		return
	}

	boxW := int(math.Round(float64(lay.ContentSize.Width)))
	boxH := int(math.Round(float64(lay.ContentSize.Height)))
	if boxW <= 0 || boxH <= 0 {
		return
	}

	fit := lowerObjectFit(resolved.ObjectFit.Value)
	pos := resolveObjectPosition(pc.RenderCtx, resolved.ObjectPosition.Value, lay.ContentSize)
	fitted := imagestore.ApplyFit(src, boxW, boxH, fit, pos)

	cx, cy := contentBoxOrigin(pc.RenderCtx, resolved, lay)
	contentOffset := canvas.Offset{X: offset.X + int(math.Round(float64(cx))), Y: offset.Y + int(math.Round(float64(cy)))}
	pc.Canvas.OverlayImage(fitted, contentOffset, nil, pc.Transform, canvas.ScalingBilinear)
}

func lowerObjectFit(f style.ObjectFit) imagestore.Fit {
	switch f {
	case style.ObjectFitContain:
		return imagestore.FitContain
	case style.ObjectFitCover:
		return imagestore.FitCover
	case style.ObjectFitNone:
		return imagestore.FitNone
	case style.ObjectFitScaleDown:
		return imagestore.FitScaleDown
	default:
		return imagestore.FitFill
	}
}

// resolveObjectPosition turns a style.BackgroundPosition into the 0..1
// slack fraction imagestore.ApplyFit expects, resolving each axis's
// length against the content box's own size (object-position
// percentages are relative to the box being fit into, not the image).
func resolveObjectPosition(ctx core.RenderContext, pos style.BackgroundPosition, box layout.Size) imagestore.Position {
	xLen := pos.X.ToLength()
	yLen := pos.Y.ToLength()

	var xFrac, yFrac float32
	if xLen.Unit == style.UnitPercentage {
		xFrac = xLen.Value / 100.0
	} else if box.Width != 0 {
		xFrac = xLen.ResolveToPx(ctx, box.Width) / box.Width
	}
	if yLen.Unit == style.UnitPercentage {
		yFrac = yLen.Value / 100.0
	} else if box.Height != 0 {
		yFrac = yLen.ResolveToPx(ctx, box.Height) / box.Height
	}
	return imagestore.Position{X: xFrac, Y: yFrac}
}
