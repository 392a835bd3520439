package fxrand

import (
	"github.com/beatoz/fxcore/libs/fxmath"
	"github.com/beatoz/fxcore/libs/fxnum"
	"github.com/beatoz/fxcore/libs/fxvec"
	"github.com/beatoz/fxcore/types/xerrors"
)

// angle returns a uniform angle in [0, 2π).
func (r *Rand) angle() fxnum.Fp {
	return r.NextfpRange(fxnum.Zero, fxmath.TwoPI.Sub(fxnum.Epsilon))
}

// OnUnitCircle returns (cos a, sin a) for a uniform angle a.
func (r *Rand) OnUnitCircle() fxvec.Vector2 {
	a := r.angle()
	return fxvec.V2(fxmath.Cos(a), fxmath.Sin(a))
}

// InsideUnitCircle samples the unit disk uniformly by area.
func (r *Rand) InsideUnitCircle() fxvec.Vector2 {
	p := r.OnUnitCircle()
	return p.Scale(fxmath.Sqrt(r.Nextfp()))
}

// OnUnitSphere samples the unit sphere surface uniformly: z is uniform in
// [-1, 1] and the point lies on the circle of radius sqrt(1 - z²) at height z.
func (r *Rand) OnUnitSphere() fxvec.Vector3 {
	z := r.NextfpRange(fxnum.MinusOne, fxnum.One)
	a := r.angle()
	rad := fxmath.Sqrt(fxnum.One.Sub(z.Mul(z)))
	return fxvec.V3(rad.Mul(fxmath.Cos(a)), rad.Mul(fxmath.Sin(a)), z)
}

// InsideUnitSphere samples the unit ball uniformly by volume.
func (r *Rand) InsideUnitSphere() fxvec.Vector3 {
	p := r.OnUnitSphere()
	return p.Scale(fxmath.Cbrt(r.Nextfp()))
}

// Rotation is not supported: a uniform rotation needs trigonometric
// inverses that are not available.
func (r *Rand) Rotation() (fxvec.Quaternion, xerrors.XError) {
	return fxvec.Identity, xerrors.ErrUnsupported.Wrapf("random rotation")
}

func (r *Rand) RotationUniform() (fxvec.Quaternion, xerrors.XError) {
	return fxvec.Identity, xerrors.ErrUnsupported.Wrapf("uniform random rotation")
}
