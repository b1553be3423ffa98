package node

import (
	"image"
	"testing"

	"github.com/xiaoxigua1/takumi-go/canvas"
	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/imagestore"
	"github.com/xiaoxigua1/takumi-go/layout"
	"github.com/xiaoxigua1/takumi-go/style"
)

func drainCommands(ch chan canvas.DrawCommand) []canvas.DrawCommand {
	close(ch)
	var out []canvas.DrawCommand
	for c := range ch {
		out = append(out, c)
	}
	return out
}

func testLayout(w, h float32) layout.Layout {
	return layout.Layout{
		Size:        layout.Size{Width: w, Height: h},
		ContentSize: layout.Size{Width: w, Height: h},
		BorderRect:  layout.Rect{Width: w, Height: h},
		PaddingRect: layout.Rect{Width: w, Height: h},
		MarginRect:  layout.Rect{Width: w, Height: h},
	}
}

func TestSplitBoxShadowsGroupsAndReverses(t *testing.T) {
	shadows := []style.BoxShadow{
		{Inset: false, OffsetX: style.Px(1)},
		{Inset: true, OffsetX: style.Px(2)},
		{Inset: false, OffsetX: style.Px(3)},
	}
	outset, inset := splitBoxShadows(shadows)
	if len(outset) != 2 || len(inset) != 1 {
		t.Fatalf("expected 2 outset and 1 inset, got %d/%d", len(outset), len(inset))
	}
	if outset[0].OffsetX.Value != 3 || outset[1].OffsetX.Value != 1 {
		t.Fatalf("expected outset shadows reversed, got %+v", outset)
	}
}

func TestDrawOnCanvasBackgroundColorOnlyEmitsSingleFill(t *testing.T) {
	resolved := style.Initial()
	resolved.BackgroundColor = style.Set(style.Color{R: 1, G: 2, B: 3, A: 255})

	n := &Node{Kind: KindContainer}
	ch := make(chan canvas.DrawCommand, 8)
	pc := PaintContext{Canvas: canvas.NewCanvas(ch), Transform: style.Identity}
	n.DrawOnCanvas(pc, resolved, testLayout(20, 20))

	cmds := drainCommands(ch)
	if len(cmds) != 1 || cmds[0].Kind != canvas.CommandFillColor {
		t.Fatalf("expected a single background-color fill, got %+v", cmds)
	}
}

func TestDrawOnCanvasSkipsTransparentBackground(t *testing.T) {
	resolved := style.Initial() // BackgroundColor defaults to Transparent
	n := &Node{Kind: KindContainer}
	ch := make(chan canvas.DrawCommand, 8)
	pc := PaintContext{Canvas: canvas.NewCanvas(ch), Transform: style.Identity}
	n.DrawOnCanvas(pc, resolved, testLayout(20, 20))

	cmds := drainCommands(ch)
	if len(cmds) != 0 {
		t.Fatalf("expected no draws for a fully transparent, borderless container, got %+v", cmds)
	}
}

func TestDrawBorderEmitsMaskWhenWidthAndColorSet(t *testing.T) {
	resolved := style.Initial()
	resolved.BorderWidth = style.Set(style.NewSides(style.Px(2)))
	resolved.BorderColor = style.Set(style.Color{R: 9, G: 9, B: 9, A: 255})

	n := &Node{Kind: KindContainer}
	ch := make(chan canvas.DrawCommand, 8)
	pc := PaintContext{Canvas: canvas.NewCanvas(ch), Transform: style.Identity}
	n.DrawOnCanvas(pc, resolved, testLayout(20, 20))

	cmds := drainCommands(ch)
	if len(cmds) != 1 || cmds[0].Kind != canvas.CommandDrawMask {
		t.Fatalf("expected a single border mask draw, got %+v", cmds)
	}
}

func TestDrawBorderSkipsZeroWidth(t *testing.T) {
	resolved := style.Initial()
	resolved.BorderColor = style.Set(style.Color{R: 9, G: 9, B: 9, A: 255})
	n := &Node{Kind: KindContainer}
	ch := make(chan canvas.DrawCommand, 8)
	pc := PaintContext{Canvas: canvas.NewCanvas(ch), Transform: style.Identity}
	n.DrawOnCanvas(pc, resolved, testLayout(20, 20))

	cmds := drainCommands(ch)
	if len(cmds) != 0 {
		t.Fatalf("expected no border draw with zero border width, got %+v", cmds)
	}
}

func TestDrawImageEnqueuesOverlay(t *testing.T) {
	bmp := image.NewRGBA(image.Rect(0, 0, 10, 10))
	store := stubImageStore{state: imagestore.ImageState{Kind: imagestore.StateFetched, Bitmap: bmp}}
	n := &Node{Kind: KindImage, Src: "x.png"}
	ch := make(chan canvas.DrawCommand, 8)
	pc := PaintContext{
		Canvas:    canvas.NewCanvas(ch),
		Transform: style.Identity,
		RenderCtx: testRenderContext(&core.GlobalContext{ImageStore: store}),
	}
	n.DrawOnCanvas(pc, style.Initial(), testLayout(10, 10))

	cmds := drainCommands(ch)
	found := false
	for _, c := range cmds {
		if c.Kind == canvas.CommandOverlayImage {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an OverlayImage command for a fetched image, got %+v", cmds)
	}
}

func TestDrawImageNoOpOnMissingStore(t *testing.T) {
	n := &Node{Kind: KindImage, Src: "x.png"}
	ch := make(chan canvas.DrawCommand, 8)
	pc := PaintContext{
		Canvas:    canvas.NewCanvas(ch),
		Transform: style.Identity,
		RenderCtx: testRenderContext(&core.GlobalContext{}),
	}
	n.DrawOnCanvas(pc, style.Initial(), testLayout(10, 10))

	cmds := drainCommands(ch)
	if len(cmds) != 0 {
		t.Fatalf("expected no draws when no image store is wired, got %+v", cmds)
	}
}
