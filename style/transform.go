package style

import (
	"math"

	"github.com/xiaoxigua1/takumi-go/core"
)

// Affine is a 2D affine transform matrix:
//
//	[ a c x ]
//	[ b d y ]
//	[ 0 0 1 ]
//
// Ported field-for-field from takumi's Affine (layout/style/properties/
// transform.rs) so the multiply/invert math matches exactly.
type Affine struct {
	A, B, C, D, X, Y float32
}

// Identity is the no-op affine transform.
var Identity = Affine{A: 1, D: 1}

// IsIdentity reports whether the transform is the identity matrix.
func (m Affine) IsIdentity() bool { return m == Identity }

// Mul composes m then rhs (applies m's transform first, as in takumi's
// `instance * transform` left-to-right fold over reversed ops).
func (m Affine) Mul(rhs Affine) Affine {
	return Affine{
		A: m.A*rhs.A + m.B*rhs.C,
		B: m.A*rhs.B + m.B*rhs.D,
		C: m.C*rhs.A + m.D*rhs.C,
		D: m.C*rhs.B + m.D*rhs.D,
		X: m.X*rhs.A + m.Y*rhs.C + rhs.X,
		Y: m.X*rhs.B + m.Y*rhs.D + rhs.Y,
	}
}

// Apply transforms a point (x, y) by the matrix.
func (m Affine) Apply(x, y float32) (float32, float32) {
	return x*m.A + y*m.C + m.X, x*m.B + y*m.D + m.Y
}

// Determinant returns a*d - b*c.
func (m Affine) Determinant() float32 { return m.A*m.D - m.B*m.C }

// Invert returns the inverse transform, or false if the matrix is
// singular (determinant within float32 epsilon of zero).
func (m Affine) Invert() (Affine, bool) {
	det := m.Determinant()
	if float32(math.Abs(float64(det))) < 1.1920929e-7 {
		return Affine{}, false
	}
	return Affine{
		A: m.D / det,
		B: m.B / -det,
		C: m.C / -det,
		D: m.A / det,
		X: (m.D*m.X - m.C*m.Y) / -det,
		Y: (m.B*m.X - m.A*m.Y) / det,
	}, true
}

// Translation builds a pure-translation affine.
func Translation(dx, dy float32) Affine {
	return Affine{A: 1, D: 1, X: dx, Y: dy}
}

// Scaling builds a scale affine about the given center point.
func Scaling(sx, sy, cx, cy float32) Affine {
	return Affine{
		A: sx, D: sy,
		X: cx - sx*cx,
		Y: cy - sy*cy,
	}
}

// Rotation builds a rotation affine (angle in degrees) about the given
// center point.
func Rotation(degrees, cx, cy float32) Affine {
	rad := float64(degrees) * math.Pi / 180
	cos, sin := float32(math.Cos(rad)), float32(math.Sin(rad))
	return Affine{
		A: cos, B: sin, C: -sin, D: cos,
		X: cx - cos*cx + sin*cy,
		Y: cy - cos*cy - sin*cx,
	}
}

// Skewing builds a skew affine (angles in degrees) about the given
// center point.
func Skewing(xDeg, yDeg, cx, cy float32) Affine {
	tanX := float32(math.Tan(float64(xDeg) * math.Pi / 180))
	tanY := float32(math.Tan(float64(yDeg) * math.Pi / 180))
	return Affine{
		A: 1, B: tanY, C: tanX, D: 1,
		X: -cy * tanX,
		Y: -cx * tanY,
	}
}

// TransformOpKind names a single transform-list function.
type TransformOpKind uint8

const (
	TransformTranslate TransformOpKind = iota
	TransformScale
	TransformRotate
	TransformSkew
	TransformMatrix
)

// TransformOp is one entry of a `transform` property's function list.
// Translate uses Lengths (resolved per-axis against the layout box);
// Scale/Rotate/Skew/Matrix use plain numbers/degrees/matrix components.
type TransformOp struct {
	Kind TransformOpKind

	TranslateX, TranslateY Length
	ScaleX, ScaleY         float32
	RotateDeg              float32
	SkewXDeg, SkewYDeg     float32
	Matrix                 Affine
}

// Transforms is an ordered list of transform operations, spec.md's
// `transform` property.
type Transforms []TransformOp

// ToAffine folds the transform list into a single affine matrix about
// transformOriginX/Y (already resolved to pixels), applied in reverse
// list order and composed via Mul, exactly mirroring takumi's
// `Transforms::to_affine`.
func (ts Transforms) ToAffine(ctx core.RenderContext, boxWidth, boxHeight, originX, originY float32) Affine {
	instance := Identity
	for i := len(ts) - 1; i >= 0; i-- {
		op := ts[i]
		var step Affine
		switch op.Kind {
		case TransformTranslate:
			step = Translation(
				op.TranslateX.ResolveToPx(ctx, boxWidth),
				op.TranslateY.ResolveToPx(ctx, boxHeight),
			)
		case TransformScale:
			step = Scaling(op.ScaleX, op.ScaleY, originX, originY)
		case TransformRotate:
			step = Rotation(op.RotateDeg, originX, originY)
		case TransformSkew:
			step = Skewing(op.SkewXDeg, op.SkewYDeg, originX, originY)
		case TransformMatrix:
			step = op.Matrix
		}
		instance = instance.Mul(step)
	}
	return instance
}
