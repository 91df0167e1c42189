package flag3d

import (
	"github.com/chewxy/math32"
)

// Matrix4 represents a 4x4 matrix for translation, scale, rotation and projection. A Matrix4 is row-major (i.e. the X axis is matrix[0]),
// and vectors are multiplied as row vectors, so the translation lives in matrix[3].
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix4Rotate(x, y, z, angle float32) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	axis := Vector3{X: x, Y: y, Z: z}.Unit()
	s, c := math32.Sincos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is the vertical field of view in degrees, near and far are the near and far clipping plane,
// while viewWidth and viewHeight is the width and height of the view. Points in front of the eye look down -Z; after MultVecW(), W holds the
// distance in front of the eye, and X / W, Y / W and Z / W range from -1 to 1 inside the frustum.
func NewProjectionPerspective(fovy, near, far, viewWidth, viewHeight float32) Matrix4 {

	aspect := viewWidth / viewHeight

	t := math32.Tan(fovy * math32.Pi / 360)
	r := t * aspect

	return Matrix4{
		{1 / r, 0, 0, 0},
		{0, 1 / t, 0, 0},
		{0, 0, -((far + near) / (far - near)), -1},
		{0, 0, -((2 * far * near) / (far - near)), 0},
	}

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {

	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component, giving a vector that has been rotated, scaled, translated,
// or projected as desired.
func (matrix Matrix4) MultVecW(vect Vector3) Vector4 {

	return Vector4{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3],
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them. The calling Matrix4 is applied first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[row][col] = matrix[row][0]*other[0][col] + matrix[row][1]*other[1][col] + matrix[row][2]*other[2][col] + matrix[row][3]*other[3][col]
		}
	}

	return newMat

}

// Equals returns true if the Matrix4 is equal to the other provided, within a small tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	eps := float32(1e-4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if math32.Abs(matrix[y][x]-other[y][x]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}
