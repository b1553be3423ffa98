package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/imagestore"
	"github.com/xiaoxigua1/takumi-go/node"
)

// These mirror spec.md §8.3's concrete input-to-output scenarios.
// Text ellipsis (scenario 4) is excluded: exercising real glyph
// shaping needs a loaded font file, not present anywhere in the
// retrieved corpus; that scenario belongs once a caller supplies a
// concrete text.FontService.

func TestScenarioEmptyContainer(t *testing.T) {
	root := decodeOrFatal(t, `{"width":"100px","height":"50px","backgroundColor":"#ff0000"}`)
	img, err := Render(core.Viewport{Width: 100, Height: 50, RootFontSize: 16}, &core.GlobalContext{}, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 || uint8(a>>8) != 255 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d), want opaque red", x, y, r>>8, g>>8, b>>8, a>>8)
			}
		}
	}
}

func TestScenarioRoundedBackground(t *testing.T) {
	root := decodeOrFatal(t, `{"width":"100px","height":"50px","backgroundColor":"#ff0000","borderRadius":"10px"}`)
	img, err := Render(core.Viewport{Width: 100, Height: 50, RootFontSize: 16}, &core.GlobalContext{}, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := img.At(50, 25).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 || uint8(a>>8) != 255 {
		t.Fatalf("center pixel = (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
	_, _, _, cornerA := img.At(0, 0).RGBA()
	if cornerA != 0 {
		t.Fatalf("corner pixel alpha = %d, want 0", cornerA>>8)
	}
	_, _, _, tenA := img.At(10, 0).RGBA()
	if uint8(tenA>>8) != 255 {
		t.Fatalf("(10,0) alpha = %d, want 255", tenA>>8)
	}
}

func TestScenarioLinearGradient(t *testing.T) {
	root := decodeOrFatal(t, `{"width":"100px","height":"1px","backgroundImage":"linear-gradient(to right, #ff0000 0%, #0000ff 100%)"}`)
	img, err := Render(core.Viewport{Width: 100, Height: 1, RootFontSize: 16}, &core.GlobalContext{}, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r0, g0, b0, a0 := img.At(0, 0).RGBA()
	if uint8(r0>>8) != 255 || uint8(g0>>8) != 0 || uint8(b0>>8) != 0 || uint8(a0>>8) != 255 {
		t.Fatalf("pixel (0,0) = (%d,%d,%d,%d), want opaque red", r0>>8, g0>>8, b0>>8, a0>>8)
	}
	r99, g99, b99, a99 := img.At(99, 0).RGBA()
	if uint8(r99>>8) != 0 || uint8(g99>>8) != 0 || uint8(b99>>8) != 255 || uint8(a99>>8) != 255 {
		t.Fatalf("pixel (99,0) = (%d,%d,%d,%d), want opaque blue", r99>>8, g99>>8, b99>>8, a99>>8)
	}
	r50, g50, b50, a50 := img.At(50, 0).RGBA()
	if !within(int(r50>>8), 128, 20) || g50>>8 != 0 || !within(int(b50>>8), 128, 20) || uint8(a50>>8) != 255 {
		t.Fatalf("pixel (50,0) = (%d,%d,%d,%d), want ~mid red/blue", r50>>8, g50>>8, b50>>8, a50>>8)
	}
}

func TestScenarioBoxShadow(t *testing.T) {
	root := decodeOrFatal(t, `{
		"width":"200px","height":"200px","backgroundColor":"#ffffff",
		"children":[{
			"width":"50px","height":"50px","backgroundColor":"#ff0000",
			"boxShadow":"5px 5px 10px black"
		}]
	}`)
	img, err := Render(core.Viewport{Width: 200, Height: 200, RootFontSize: 16}, &core.GlobalContext{}, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Far outside the blur envelope, the white canvas background survives.
	r, g, b, a := img.At(190, 190).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 255 || uint8(b>>8) != 255 || uint8(a>>8) != 255 {
		t.Fatalf("far pixel = (%d,%d,%d,%d), want unchanged white", r>>8, g>>8, b>>8, a>>8)
	}
	// Near the shadow's declared offset centre (box ends at (50,50),
	// offset (5,5)), some darkening from the shadow should be visible.
	sr, _, _, _ := img.At(55, 55).RGBA()
	if uint8(sr>>8) == 255 {
		t.Fatalf("pixel (55,55) red = 255, want darkened by the shadow")
	}
}

func TestScenarioObjectFitCover(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0, A: 255})
		}
	}
	store := fixedImageStore{state: imagestore.ImageState{Kind: imagestore.StateFetched, Bitmap: src}}
	root := decodeOrFatal(t, `{"type":"image","src":"x.png","width":"100px","height":"100px","objectFit":"cover"}`)
	img, err := Render(core.Viewport{Width: 100, Height: 100, RootFontSize: 16}, &core.GlobalContext{ImageStore: store}, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Fatalf("expected a 100x100 output, got %v", img.Bounds())
	}
	// object-fit: cover on a 2:1 source into a 1:1 box scales by height
	// (100 -> 100) and crops width to the centre 100px slice (starting
	// at source x=50); pixel (0,0) of the output should carry the red
	// channel of source column 50, not source column 0.
	r, _, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 50 {
		t.Fatalf("expected red channel 50 (source column 50), got %d", r>>8)
	}
}

type fixedImageStore struct {
	state imagestore.ImageState
}

func (s fixedImageStore) Get(src string) imagestore.ImageState { return s.state }

func within(v, target, tolerance int) bool {
	d := v - target
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
