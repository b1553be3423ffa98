package paint

import (
	"image"
	"math"

	"github.com/xiaoxigua1/takumi-go/style"
)

// RasterizeNoise renders a deterministic value-noise field seeded from
// layer.Seed, the supplemented background layer SPEC_FULL §12
// describes: bilinear-interpolated lattice noise tinted toward
// layer.BaseColor, so repeated renders of the same node are
// byte-identical. No teacher or pack precursor exists for procedural
// noise, so the lattice hash and interpolation are written directly
// from the standard value-noise algorithm (integer lattice points
// hashed to a pseudo-random value, bilinearly interpolated between
// them).
func RasterizeNoise(w, h int, n style.NoiseBackground) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scale := n.Scale
	if scale <= 0 {
		scale = 32
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := valueNoise(float64(x)/float64(scale), float64(y)/float64(scale), n.Seed)
			c := n.BaseColor
			shade := uint8(clampByte(float64(c.A) * v))
			img.Set(x, y, style.Color{R: c.R, G: c.G, B: c.B, A: shade}.NRGBA())
		}
	}
	return img
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func valueNoise(x, y float64, seed uint64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0

	v00 := latticeHash(int64(x0), int64(y0), seed)
	v10 := latticeHash(int64(x0)+1, int64(y0), seed)
	v01 := latticeHash(int64(x0), int64(y0)+1, seed)
	v11 := latticeHash(int64(x0)+1, int64(y0)+1, seed)

	sx := smoothstep(fx)
	sy := smoothstep(fy)

	top := lerp(v00, v10, sx)
	bottom := lerp(v01, v11, sx)
	return lerp(top, bottom, sy)
}

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// latticeHash maps an integer lattice point plus seed to a value in
// [0, 1] using a 64-bit mix, the same shape as splitmix64's finalizer.
func latticeHash(x, y int64, seed uint64) float64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ seed
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return float64(h%1000000) / 1000000.0
}
