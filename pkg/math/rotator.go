package math

import "github.com/chewxy/math32"

// Angle conversion factors.
const (
	DegToRad = math32.Pi / 180
	RadToDeg = 180 / math32.Pi
)

// Rotator is an orientation in degrees: Yaw turns around Z, Pitch tilts the
// forward axis toward Z, Roll spins around the forward axis.
type Rotator struct {
	Pitch, Yaw, Roll float32
}

// LookAtRotation returns the rotator that points the forward (+X) axis from
// from toward to. Roll is always zero. Coincident points give a zero rotator.
func LookAtRotation(from, to Vec3) Rotator {
	dir := to.Sub(from)
	if dir.Length() == 0 {
		return Rotator{}
	}
	return Rotator{
		Pitch: math32.Atan2(dir.Z, math32.Hypot(dir.X, dir.Y)) * RadToDeg,
		Yaw:   math32.Atan2(dir.Y, dir.X) * RadToDeg,
	}
}

// Quat converts the rotator to a quaternion (roll, then pitch, then yaw).
func (r Rotator) Quat() Quat {
	if r == (Rotator{}) {
		return QuatIdentity()
	}
	yaw := QuatFromAxisAngle(Vec3Up, r.Yaw*DegToRad)
	pitch := QuatFromAxisAngle(Vec3{0, 1, 0}, -r.Pitch*DegToRad)
	roll := QuatFromAxisAngle(Vec3Forward, r.Roll*DegToRad)
	return yaw.Mul(pitch).Mul(roll).Normalize()
}

// QuatLookAt returns the rotation that faces from toward to.
func QuatLookAt(from, to Vec3) Quat {
	return LookAtRotation(from, to).Quat()
}
