package paint

import (
	"testing"

	"github.com/xiaoxigua1/takumi-go/style"
)

// solidLayer builds a gradient layer whose two stops are the same
// opaque color, so every pixel of the rendered tile is deterministically
// opaque (unlike the noise layer, whose alpha varies pixel to pixel and
// would make an edge-coverage assertion flaky).
func solidLayer(explicitW, explicitH int, repeat style.RepeatStyle) style.BackgroundLayer {
	red := style.Color{R: 255, A: 255}
	return style.BackgroundLayer{
		Kind: style.BackgroundLayerGradient,
		Gradient: style.Gradient{
			Kind: style.GradientLinear,
			Stops: []style.GradientStop{
				{Color: red, HasPosition: true, Position: 0},
				{Color: red, HasPosition: true, Position: 1},
			},
		},
		Position: style.BackgroundPositionCenter,
		Size: style.BackgroundSize{
			Mode:   style.BackgroundSizeExplicit,
			Width:  style.Px(float32(explicitW)),
			Height: style.Px(float32(explicitH)),
		},
		Repeat: style.BackgroundRepeat{X: repeat, Y: repeat},
	}
}

func TestTileLayerRoundRescalesTileToFitEvenly(t *testing.T) {
	// A 30px tile tiled across a 100px box doesn't divide evenly;
	// background-repeat: round must rescale it so an integer count
	// (here 4 tiles of 25px, 25 being the divisor of 100 nearest 30)
	// exactly fills the box, unlike plain repeat which would leave a
	// partial tile at the edge.
	out := TileLayer(100, 100, solidLayer(30, 30, style.RepeatRound))
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Fatalf("output size = %+v, want 100x100", out.Bounds())
	}
	// every opaque pixel along the last column/row must still be
	// covered: round guarantees whole tiles, so there is no seam of
	// untouched (fully transparent) pixels at the far edge.
	if _, _, _, a := out.At(99, 50).RGBA(); uint8(a>>8) == 0 {
		t.Fatal("expected the rightmost column to be covered by a rescaled tile, got fully transparent")
	}
	if _, _, _, a := out.At(50, 99).RGBA(); uint8(a>>8) == 0 {
		t.Fatal("expected the bottommost row to be covered by a rescaled tile, got fully transparent")
	}
}

func TestTileLayerRepeatKeepsBoxSize(t *testing.T) {
	// Contrast with plain repeat: the 30px tile is not rescaled; from
	// the default centered position the copies start at x=-25 (-25, 5,
	// 35, 65, 95) and the last one is clipped at the box edge. This
	// only pins the output size of the default repeat path.
	out := TileLayer(100, 100, solidLayer(30, 30, style.RepeatRepeat))
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Fatalf("output size = %+v, want 100x100", out.Bounds())
	}
}

func TestRoundTileSizeRescalesToDivideBoxEvenly(t *testing.T) {
	tile := RasterizeNoise(30, 30, style.NoiseBackground{BaseColor: style.Color{R: 1, A: 255}})
	resized := RoundTileSize(tile, 100, 100, true, true)
	b := resized.Bounds()
	if 100%b.Dx() != 0 || 100%b.Dy() != 0 {
		t.Fatalf("resized tile %dx%d does not evenly divide 100x100", b.Dx(), b.Dy())
	}
}

func TestRoundTileSizeNoOpWhenAlreadyExact(t *testing.T) {
	tile := RasterizeNoise(25, 25, style.NoiseBackground{BaseColor: style.Color{R: 1, A: 255}})
	resized := RoundTileSize(tile, 100, 100, true, true)
	if resized.Bounds().Dx() != 25 || resized.Bounds().Dy() != 25 {
		t.Fatalf("expected an already-exact 25px tile to be left at 25x25, got %+v", resized.Bounds())
	}
}
