package math

import "github.com/chewxy/math32"

// Euler returns the rotation matrix for angles applied in XYZ order,
// i.e. Rx * Ry * Rz, so Z is applied to a point first. Angles are radians.
func Euler(x, y, z float32) Mat4 {
	return RotateX(x).Mul(RotateY(y)).Mul(RotateZ(z))
}

// Compose builds a model matrix T * R * S from position, Euler rotation and scale.
func Compose(position, rotation, scale Vec3) Mat4 {
	return Translate(position.X, position.Y, position.Z).
		Mul(Euler(rotation.X, rotation.Y, rotation.Z)).
		Mul(Scale(scale.X, scale.Y, scale.Z))
}

// MaxScale returns the largest axis scale encoded in the matrix.
func (m Mat4) MaxScale() float32 {
	sx := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	sy := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	sz := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]
	return math32.Sqrt(math32.Max(sx, math32.Max(sy, sz)))
}
