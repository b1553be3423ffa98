package style

import "github.com/xiaoxigua1/takumi-go/core"

// LowerBackgroundLayer resolves every context-dependent length on a
// background layer (position/size, and the gradient's own stop/center
// lengths) to px or percentage, the same "pre-lower in style/" pattern
// style/grid.go uses for grid track sizes: paint/ stays decoupled from
// core.RenderContext, so em/rem/vw/vh must already be gone by the time
// a layer reaches it.
func LowerBackgroundLayer(ctx core.RenderContext, layer BackgroundLayer) BackgroundLayer {
	out := layer
	out.Position = BackgroundPosition{
		X: lowerPositionComponent(ctx, layer.Position.X),
		Y: lowerPositionComponent(ctx, layer.Position.Y),
	}
	if layer.Size.Mode == BackgroundSizeExplicit {
		out.Size.Width = lowerPositionLength(layer.Size.Width, ctx)
		out.Size.Height = lowerPositionLength(layer.Size.Height, ctx)
	}
	if layer.Kind == BackgroundLayerGradient {
		out.Gradient = lowerGradient(ctx, layer.Gradient)
	}
	return out
}

func lowerPositionComponent(ctx core.RenderContext, p PositionComponent) PositionComponent {
	if p.Keyword != PositionKeywordNone {
		return p
	}
	return PositionComponent{Length: lowerPositionLength(p.Length, ctx)}
}

func lowerPositionLength(l Length, ctx core.RenderContext) Length {
	if l.Unit == UnitPercentage || l.Unit == UnitAuto {
		return l
	}
	return Px(l.ResolveToPx(ctx, 0))
}

func lowerGradient(ctx core.RenderContext, g Gradient) Gradient {
	out := g
	out.Center = BackgroundPosition{
		X: lowerPositionComponent(ctx, g.Center.X),
		Y: lowerPositionComponent(ctx, g.Center.Y),
	}
	return out
}
