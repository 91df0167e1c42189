package flag3d

import "fmt"

// GridMesh is an indexed triangle mesh covering a Width x Height rectangle, subdivided according to its Grid. Vertex
// positions, texture coordinates, colors, and indices are stored in flat buffers; vertex (col, row) lives at
// (col * (Rows+1) + row) * 3 in the position and texture coordinate buffers.
//
// The GridMesh owns its buffers. Positions(), TexCoords(), Colors() and Indices() hand out the backing slices
// so the renderer can read them each frame without copying; don't hold on to them or write through them.
type GridMesh struct {
	Name string
	Grid Grid

	Width, Height             float32 // Size of the covered rectangle (generally the source image's size in pixels)
	PaddedWidth, PaddedHeight float32 // Size of the backing texture; texture coordinates are normalized against this
	XStep, YStep              float32 // Size of each cell

	positions []float32
	texCoords []float32
	colors    []uint8
	indices   []uint16
}

// NewGridMesh builds a GridMesh covering a width x height rectangle split into the cells of the given Grid. paddedWidth and paddedHeight
// are the dimensions of the texture that will be drawn onto the mesh, which may be larger than the image if the texture is padded
// (to a power of two, for example); pass the width and height again if it isn't.
//
// Each cell is made of two triangles (a, b, d) and (b, c, d), where a is the cell's bottom-left corner, b the bottom-right,
// c the top-right, and d the top-left. All vertices start with a Z of 0 and a white color.
//
// NewGridMesh panics if the dimensions are not positive, if the padded size is smaller than the width or height, or if
// the Grid is invalid.
func NewGridMesh(width, height float32, grid Grid, paddedWidth, paddedHeight float32) *GridMesh {

	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("Error: NewGridMesh() needs a positive width and height; got %f x %f.", width, height))
	}

	if paddedWidth < width || paddedHeight < height {
		panic(fmt.Sprintf("Error: NewGridMesh() was given a padded texture size (%f x %f) smaller than the mesh size (%f x %f).", paddedWidth, paddedHeight, width, height))
	}

	grid.validate()

	vertCount := grid.VertexCount()

	mesh := &GridMesh{
		Name:         "Grid" + grid.String(),
		Grid:         grid,
		Width:        width,
		Height:       height,
		PaddedWidth:  paddedWidth,
		PaddedHeight: paddedHeight,
		XStep:        width / float32(grid.Columns),
		YStep:        height / float32(grid.Rows),
		positions:    make([]float32, vertCount*3),
		texCoords:    make([]float32, vertCount*3),
		colors:       make([]uint8, vertCount*4),
		indices:      make([]uint16, 0, grid.IndexCount()),
	}

	for i := range mesh.colors {
		mesh.colors[i] = 255
	}

	//  d <-- c
	//        ^
	//        |
	//  a --> b

	for x := 0; x < grid.Columns; x++ {
		for y := 0; y < grid.Rows; y++ {

			a := grid.vertexIndex(x, y)
			b := grid.vertexIndex(x+1, y)
			c := grid.vertexIndex(x+1, y+1)
			d := grid.vertexIndex(x, y+1)

			mesh.indices = append(mesh.indices,
				uint16(a), uint16(b), uint16(d),
				uint16(b), uint16(c), uint16(d),
			)

			mesh.writeCorner(a, x, y)
			mesh.writeCorner(b, x+1, y)
			mesh.writeCorner(c, x+1, y+1)
			mesh.writeCorner(d, x, y+1)

		}
	}

	return mesh

}

// writeCorner writes the flat position and texture coordinate of a cell corner. The position comes from the corner's
// column and row rather than from a neighboring corner plus a step, so every cell that shares the corner writes the
// exact same values.
func (mesh *GridMesh) writeCorner(vertIndex, col, row int) {

	x := float32(col) * mesh.XStep
	y := float32(row) * mesh.YStep

	i := vertIndex * 3

	mesh.positions[i] = x
	mesh.positions[i+1] = y
	mesh.positions[i+2] = 0

	mesh.texCoords[i] = x / mesh.PaddedWidth
	mesh.texCoords[i+1] = y / mesh.PaddedHeight
	mesh.texCoords[i+2] = 0

}

// index returns the offset of the vertex at the given column and row in the flat position / texture coordinate buffers.
// It panics if the vertex is outside of the Grid.
func (mesh *GridMesh) index(col, row int) int {
	if !mesh.Grid.Contains(col, row) {
		panic(fmt.Sprintf("Error: vertex (%d, %d) is out of range for a %s grid.", col, row, mesh.Grid))
	}
	return mesh.Grid.vertexIndex(col, row) * 3
}

// Vertex returns the position of the vertex at the given column and row. col can range from 0 to Grid.Columns
// (inclusive), and row from 0 to Grid.Rows (inclusive); anything else panics.
func (mesh *GridMesh) Vertex(col, row int) Vector3 {
	i := mesh.index(col, row)
	return Vector3{X: mesh.positions[i], Y: mesh.positions[i+1], Z: mesh.positions[i+2]}
}

// SetVertex sets the position of the vertex at the given column and row. The same range rules as Vertex() apply.
func (mesh *GridMesh) SetVertex(col, row int, position Vector3) {
	i := mesh.index(col, row)
	mesh.positions[i] = position.X
	mesh.positions[i+1] = position.Y
	mesh.positions[i+2] = position.Z
}

// TexCoord returns the texture coordinate (u, v, 0) of the vertex at the given column and row. u and v are normalized
// against the padded texture size, with v increasing upwards alongside the vertex's Y position.
func (mesh *GridMesh) TexCoord(col, row int) Vector3 {
	i := mesh.index(col, row)
	return Vector3{X: mesh.texCoords[i], Y: mesh.texCoords[i+1], Z: mesh.texCoords[i+2]}
}

// VertexColor returns the color of the vertex at the given column and row.
func (mesh *GridMesh) VertexColor(col, row int) Color {
	i := mesh.index(col, row) / 3 * 4
	return NewColorFromRGBA8(mesh.colors[i], mesh.colors[i+1], mesh.colors[i+2], mesh.colors[i+3])
}

// Positions returns the flat vertex position buffer (x, y, z for each vertex).
func (mesh *GridMesh) Positions() []float32 {
	return mesh.positions
}

// TexCoords returns the flat texture coordinate buffer (u, v, 0 for each vertex).
func (mesh *GridMesh) TexCoords() []float32 {
	return mesh.texCoords
}

// Colors returns the flat vertex color buffer (r, g, b, a for each vertex).
func (mesh *GridMesh) Colors() []uint8 {
	return mesh.colors
}

// Indices returns the index buffer; every three indices make up a triangle.
func (mesh *GridMesh) Indices() []uint16 {
	return mesh.indices
}

// Bounds returns the minimum and maximum corners of the mesh in its current state.
func (mesh *GridMesh) Bounds() (lo, hi Vector3) {

	lo = Vector3{mesh.positions[0], mesh.positions[1], mesh.positions[2]}
	hi = lo

	for i := 3; i < len(mesh.positions); i += 3 {
		x, y, z := mesh.positions[i], mesh.positions[i+1], mesh.positions[i+2]
		lo.X, hi.X = min(lo.X, x), max(hi.X, x)
		lo.Y, hi.Y = min(lo.Y, y), max(hi.Y, y)
		lo.Z, hi.Z = min(lo.Z, z), max(hi.Z, z)
	}

	return lo, hi

}
