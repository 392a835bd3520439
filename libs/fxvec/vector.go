// Package fxvec provides small component-wise aggregates of fxnum.Fp.
// All types are plain values; every method returns a new value.
package fxvec

import (
	"github.com/beatoz/fxcore/libs/fxmath"
	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/types/xerrors"
)

type Vector2 struct {
	X, Y fxnum.Fp
}

func V2(x, y fxnum.Fp) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) At(i int) (fxnum.Fp, xerrors.XError) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return fxnum.Zero, xerrors.ErrIndex.Wrapf("invalid index: %d", i)
}

func (v Vector2) With(i int, c fxnum.Fp) (Vector2, xerrors.XError) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	default:
		return v, xerrors.ErrIndex.Wrapf("invalid index: %d", i)
	}
	return v, nil
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X.Add(o.X), v.Y.Add(o.Y)}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X.Sub(o.X), v.Y.Sub(o.Y)}
}

// Mul multiplies component-wise.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{v.X.Mul(o.X), v.Y.Mul(o.Y)}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{v.X.Neg(), v.Y.Neg()}
}

func (v Vector2) Scale(d fxnum.Fp) Vector2 {
	return Vector2{v.X.Mul(d), v.Y.Mul(d)}
}

// Div panics if d is Zero.
func (v Vector2) Div(d fxnum.Fp) Vector2 {
	return Vector2{v.X.Div(d), v.Y.Div(d)}
}

func (v Vector2) Dot(o Vector2) fxnum.Fp {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y))
}

func (v Vector2) SqrMagnitude() fxnum.Fp {
	return v.Dot(v)
}

func (v Vector2) Magnitude() fxnum.Fp {
	return fxmath.Sqrt(v.SqrMagnitude())
}

// Normalized returns v scaled to unit length, or the zero vector when its
// magnitude is not above EpsilonSqrt.
func (v Vector2) Normalized() Vector2 {
	mag := v.Magnitude()
	if mag.LessThanOrEqual(fxnum.EpsilonSqrt) {
		return Vector2{}
	}
	return v.Scale(fxnum.One.Div(mag))
}

func (v Vector2) Equal(o Vector2) bool {
	return v == o
}

func (v Vector2) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ")"
}

type Vector3 struct {
	X, Y, Z fxnum.Fp
}

func V3(x, y, z fxnum.Fp) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) At(i int) (fxnum.Fp, xerrors.XError) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}
	return fxnum.Zero, xerrors.ErrIndex.Wrapf("invalid index: %d", i)
}

func (v Vector3) With(i int, c fxnum.Fp) (Vector3, xerrors.XError) {
	switch i {
	case 0:
		v.X = c
	case 1:
		v.Y = c
	case 2:
		v.Z = c
	default:
		return v, xerrors.ErrIndex.Wrapf("invalid index: %d", i)
	}
	return v, nil
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

func (v Vector3) Scale(d fxnum.Fp) Vector3 {
	return Vector3{v.X.Mul(d), v.Y.Mul(d), v.Z.Mul(d)}
}

// Div panics if d is Zero.
func (v Vector3) Div(d fxnum.Fp) Vector3 {
	return Vector3{v.X.Div(d), v.Y.Div(d), v.Z.Div(d)}
}

func (v Vector3) Dot(o Vector3) fxnum.Fp {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		Y: v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		Z: v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

func (v Vector3) SqrMagnitude() fxnum.Fp {
	return v.Dot(v)
}

func (v Vector3) Magnitude() fxnum.Fp {
	return fxmath.Sqrt(v.SqrMagnitude())
}

// Normalized returns v scaled to unit length, or the zero vector when its
// magnitude is not above EpsilonSqrt.
func (v Vector3) Normalized() Vector3 {
	mag := v.Magnitude()
	if mag.LessThanOrEqual(fxnum.EpsilonSqrt) {
		return Vector3{}
	}
	return v.Scale(fxnum.One.Div(mag))
}

func (v Vector3) Equal(o Vector3) bool {
	return v == o
}

func (v Vector3) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ", " + v.Z.String() + ")"
}
