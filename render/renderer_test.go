package render

import (
	"testing"

	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/node"
)

func decodeOrFatal(t *testing.T, data string) *node.Node {
	t.Helper()
	n, err := node.Decode([]byte(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return n
}

func TestRenderFlatBackgroundColor(t *testing.T) {
	root := decodeOrFatal(t, `{
		"width": "40px", "height": "40px",
		"backgroundColor": "#ff0000"
	}`)
	viewport := core.Viewport{Width: 40, Height: 40, RootFontSize: 16}
	global := &core.GlobalContext{}

	img, err := Render(viewport, global, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Fatalf("expected a 40x40 image, got %v", img.Bounds())
	}
	r, g, b, a := img.At(20, 20).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 || uint8(a>>8) != 255 {
		t.Fatalf("expected opaque red at center, got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestRenderNestedChildInheritsBackgroundIndependently(t *testing.T) {
	root := decodeOrFatal(t, `{
		"width": "60px", "height": "60px",
		"backgroundColor": "#0000ff",
		"children": [
			{"width": "20px", "height": "20px", "backgroundColor": "#00ff00"}
		]
	}`)
	viewport := core.Viewport{Width: 60, Height: 60, RootFontSize: 16}
	global := &core.GlobalContext{}

	img, err := Render(viewport, global, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Flex-row default layout places the child at the content origin
	// (top-left, padding/border zero), so (5,5) should land inside it.
	r, g, b, _ := img.At(5, 5).RGBA()
	if uint8(r>>8) != 0 || uint8(g>>8) != 255 || uint8(b>>8) != 0 {
		t.Fatalf("expected green child at (5,5), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	// A point outside the child but inside the parent shows the parent's
	// own background.
	r, g, b, _ = img.At(50, 50).RGBA()
	if uint8(r>>8) != 0 || uint8(g>>8) != 0 || uint8(b>>8) != 255 {
		t.Fatalf("expected blue parent background at (50,50), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestDrawBeforeConstructReturnsError(t *testing.T) {
	r := NewRenderer(core.Viewport{Width: 10, Height: 10}, &core.GlobalContext{})
	if _, err := r.Draw(); err != core.ErrLayoutNotConstructed {
		t.Fatalf("expected ErrLayoutNotConstructed, got %v", err)
	}
}

func TestDrawDebugBorderOverlayOutlinesNode(t *testing.T) {
	root := decodeOrFatal(t, `{"width": "20px", "height": "20px"}`)
	viewport := core.Viewport{Width: 20, Height: 20, RootFontSize: 16}
	global := &core.GlobalContext{DrawDebugBorder: true}

	img, err := Render(viewport, global, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 255 || uint8(a>>8) != 255 {
		t.Fatalf("expected magenta debug outline pixel at origin, got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}
