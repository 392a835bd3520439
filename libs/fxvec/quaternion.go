package fxvec

import (
	"github.com/beatoz/fxcore/libs/fxmath"
	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/types/xerrors"
)

// Quaternion holds a rotation as X, Y, Z (vector part) and W (scalar part).
// Rotation composition is not provided.
type Quaternion struct {
	X, Y, Z, W fxnum.Fp
}

var Identity = Quaternion{W: fxnum.One}

func (q Quaternion) At(i int) (fxnum.Fp, xerrors.XError) {
	switch i {
	case 0:
		return q.X, nil
	case 1:
		return q.Y, nil
	case 2:
		return q.Z, nil
	case 3:
		return q.W, nil
	}
	return fxnum.Zero, xerrors.ErrIndex.Wrapf("invalid index: %d", i)
}

func (q Quaternion) With(i int, c fxnum.Fp) (Quaternion, xerrors.XError) {
	switch i {
	case 0:
		q.X = c
	case 1:
		q.Y = c
	case 2:
		q.Z = c
	case 3:
		q.W = c
	default:
		return q, xerrors.ErrIndex.Wrapf("invalid index: %d", i)
	}
	return q, nil
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.X.Add(o.X), q.Y.Add(o.Y), q.Z.Add(o.Z), q.W.Add(o.W)}
}

func (q Quaternion) Sub(o Quaternion) Quaternion {
	return Quaternion{q.X.Sub(o.X), q.Y.Sub(o.Y), q.Z.Sub(o.Z), q.W.Sub(o.W)}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{q.X.Neg(), q.Y.Neg(), q.Z.Neg(), q.W.Neg()}
}

func (q Quaternion) Scale(d fxnum.Fp) Quaternion {
	return Quaternion{q.X.Mul(d), q.Y.Mul(d), q.Z.Mul(d), q.W.Mul(d)}
}

// Div panics if d is Zero.
func (q Quaternion) Div(d fxnum.Fp) Quaternion {
	return Quaternion{q.X.Div(d), q.Y.Div(d), q.Z.Div(d), q.W.Div(d)}
}

func (q Quaternion) SqrMagnitude() fxnum.Fp {
	return q.Dot(q)
}

func (q Quaternion) Magnitude() fxnum.Fp {
	return fxmath.Sqrt(q.SqrMagnitude())
}

// Normalized returns q scaled to unit length, or the zero quaternion when
// its magnitude is not above EpsilonSqrt.
func (q Quaternion) Normalized() Quaternion {
	mag := q.Magnitude()
	if mag.LessThanOrEqual(fxnum.EpsilonSqrt) {
		return Quaternion{}
	}
	return q.Scale(fxnum.One.Div(mag))
}

func (q Quaternion) Dot(o Quaternion) fxnum.Fp {
	return q.X.Mul(o.X).Add(q.Y.Mul(o.Y)).Add(q.Z.Mul(o.Z)).Add(q.W.Mul(o.W))
}

func (q Quaternion) Equal(o Quaternion) bool {
	return q == o
}
