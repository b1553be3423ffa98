package node

import (
	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/imagestore"
	"github.com/xiaoxigua1/takumi-go/layout"
	"github.com/xiaoxigua1/takumi-go/style"
	"github.com/xiaoxigua1/takumi-go/text"
)

// MeasureFunc builds the layout.MeasureFunc this node contributes to
// the layout engine's measure pass, spec.md §4.10: Text measures via
// the font service, Image resolves (or is given) an intrinsic size and
// preserves aspect ratio, Container never measures (nil, matching
// layout.Node's "nil for containers" contract).
func (n *Node) MeasureFunc(ctx core.RenderContext, resolved style.Style) layout.MeasureFunc {
	switch n.Kind {
	case KindText:
		return n.measureText(ctx, resolved)
	case KindImage:
		return n.measureImage(ctx)
	default:
		return nil
	}
}

func (n *Node) measureText(ctx core.RenderContext, resolved style.Style) layout.MeasureFunc {
	fs := resolved.ResolveToFontStyle(ctx)
	n.resolvedFont = fs
	svc, _ := ctx.Global.FontService.(text.FontService)

	return func(known layout.KnownDimensions, available [2]layout.AvailableSpace) layout.Size {
		if svc == nil {
			return layout.Size{}
		}
		knownWidth := known.Width
		var availWidth *float32
		if knownWidth == nil && available[0].Kind == layout.Definite {
			v := available[0].Value
			availWidth = &v
		}
		knownHeight := known.Height
		var availHeight *float32
		if knownHeight == nil && available[1].Kind == layout.Definite {
			v := available[1].Value
			availHeight = &v
		}
		w, h, laid, err := text.Measure(svc, n.Text, fs, knownWidth, availWidth, knownHeight, availHeight)
		if err != nil {
			return layout.Size{}
		}
		n.laidOut = &laid
		if known.Height != nil {
			h = *known.Height
		}
		return layout.Size{Width: w, Height: h}
	}
}

// measureImage implements spec.md §4.10's Image measurement: explicit
// known dimensions win outright; otherwise the intrinsic size (see
// intrinsicSize) is scaled to whichever dimension is known, and otherwise
// constrained to fit the available space while preserving aspect ratio.
func (n *Node) measureImage(ctx core.RenderContext) layout.MeasureFunc {
	store, _ := ctx.Global.ImageStore.(imagestore.ImageStore)

	return func(known layout.KnownDimensions, available [2]layout.AvailableSpace) layout.Size {
		if known.Width != nil && known.Height != nil {
			return layout.Size{Width: *known.Width, Height: *known.Height}
		}

		iw, ih := n.intrinsicSize(store)
		if iw <= 0 || ih <= 0 {
			if known.Width != nil {
				return layout.Size{Width: *known.Width}
			}
			if known.Height != nil {
				return layout.Size{Height: *known.Height}
			}
			return layout.Size{}
		}
		ratio := iw / ih

		switch {
		case known.Width != nil:
			return layout.Size{Width: *known.Width, Height: *known.Width / ratio}
		case known.Height != nil:
			return layout.Size{Width: *known.Height * ratio, Height: *known.Height}
		default:
			w, h := iw, ih
			if available[0].Kind == layout.Definite && w > available[0].Value {
				w = available[0].Value
				h = w / ratio
			}
			if available[1].Kind == layout.Definite && h > available[1].Value {
				h = available[1].Value
				w = h * ratio
			}
			return layout.Size{Width: w, Height: h}
		}
	}
}

// intrinsicSize resolves this image node's natural size: the node's
// width/height hints when both are set (spec.md §3.4's optional Image
// width/height), else the decoded bitmap's own dimensions when the
// store can fetch it, else a single set hint used for both axes, or
// (0, 0) when nothing is known —
// §7's "unknown image src / decode failure is absorbed" contract, the
// node simply measures to zero and paints background/border only.
func (n *Node) intrinsicSize(store imagestore.ImageStore) (float32, float32) {
	if n.Width != nil && n.Height != nil {
		return *n.Width, *n.Height
	}
	if store != nil && n.Src != "" {
		state := store.Get(n.Src)
		if state.Kind == imagestore.StateFetched && state.Bitmap != nil {
			b := state.Bitmap.Bounds()
			return float32(b.Dx()), float32(b.Dy())
		}
	}
	if n.Width != nil {
		return *n.Width, *n.Width
	}
	if n.Height != nil {
		return *n.Height, *n.Height
	}
	return 0, 0
}
