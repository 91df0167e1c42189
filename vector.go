package flag3d

import (
	"github.com/chewxy/math32"
)

// Vector3 represents a 3D Vector, used for vertex positions within a GridMesh (x and y across the image, z as depth).
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector3 by the given scalar (ignoring the W component), returning a copy with the result.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// SetZ sets the Z component in the vector to the value provided.
func (vec Vector3) SetZ(z float32) Vector3 {
	vec.Z = z
	return vec
}

// Equals returns true if the two Vectors are exactly equal.
func (vec Vector3) Equals(other Vector3) bool {
	return vec.X == other.X && vec.Y == other.Y && vec.Z == other.Z
}

// Vector4 is a Vector3 with a fourth, homogeneous W component. It's what you get out of Matrix4.MultVecW() before the
// perspective divide.
type Vector4 struct {
	X, Y, Z, W float32
}
