package colors

// package colors contains functions to quickly and easily generate flag3d.Color instances by name (i.e. "White()", "Blue()", "Green()", etc).

import "github.com/solarlune/flag3d"

// Transparent generates a flag3d.Color instance of the provided name.
func Transparent() flag3d.Color {
	return flag3d.NewColor(0, 0, 0, 0)
}

// White generates a flag3d.Color instance of the provided name. This is the vertex color of every GridMesh vertex.
func White() flag3d.Color {
	return flag3d.NewColor(1, 1, 1, 1)
}

// Black generates a flag3d.Color instance of the provided name.
func Black() flag3d.Color {
	return flag3d.NewColor(0, 0, 0, 1)
}

// LightGray generates a flag3d.Color instance of the provided name.
func LightGray() flag3d.Color {
	return flag3d.NewColor(0.8, 0.8, 0.8, 1)
}

// Red generates a flag3d.Color instance of the provided name.
func Red() flag3d.Color {
	return flag3d.NewColor(1, 0, 0, 1)
}

// Yellow generates a flag3d.Color instance of the provided name.
func Yellow() flag3d.Color {
	return flag3d.NewColor(1, 1, 0, 1)
}

// Blue generates a flag3d.Color instance of the provided name.
func Blue() flag3d.Color {
	return flag3d.NewColor(0, 0, 1, 1)
}

// SkyBlue generates a flag3d.Color instance of the provided name.
func SkyBlue() flag3d.Color {
	return flag3d.NewColor(0.235, 0.275, 0.314, 1)
}
