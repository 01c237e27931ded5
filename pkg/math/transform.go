package math

// Transform is a location, rotation and non-uniform scale.
type Transform struct {
	Location Vec3
	Rotation Quat
	Scale    Vec3
}

// TransformIdentity returns a transform that leaves points unchanged.
func TransformIdentity() Transform {
	return Transform{Rotation: QuatIdentity(), Scale: Vec3One}
}

// ToMat4 returns the model matrix: scale, then rotate, then translate.
func (t Transform) ToMat4() Mat4 {
	return Translate(t.Location.X, t.Location.Y, t.Location.Z).
		Mul(t.Rotation.ToMat4()).
		Mul(Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Forward returns the direction the transform faces.
func (t Transform) Forward() Vec3 {
	return t.Rotation.Rotate(Vec3Forward)
}
