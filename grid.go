package flag3d

import "fmt"

// MaxGridVertexCount is the largest number of vertices a GridMesh may have, as the index buffer is made of uint16s
// (which is what Ebitengine's DrawTriangles() takes).
const MaxGridVertexCount = 1 << 16

// Grid describes how many cells a GridMesh is subdivided into across (Columns) and up (Rows). A Grid of 20x20 splits
// an image into 400 cells, each drawn as two triangles.
type Grid struct {
	Columns int
	Rows    int
}

// NewGrid returns a new Grid with the given number of columns and rows. Both must be at least 1, and the resulting
// vertex count must fit within MaxGridVertexCount, or NewGrid will panic.
func NewGrid(columns, rows int) Grid {
	grid := Grid{Columns: columns, Rows: rows}
	grid.validate()
	return grid
}

func (grid Grid) validate() {
	if grid.Columns < 1 || grid.Rows < 1 {
		panic(fmt.Sprintf("Error: Grid needs at least one column and one row; got %d x %d.", grid.Columns, grid.Rows))
	}
	if grid.VertexCount() > MaxGridVertexCount {
		panic(fmt.Sprintf("Error: Grid of %d x %d has %d vertices, which exceeds the maximum of %d.", grid.Columns, grid.Rows, grid.VertexCount(), MaxGridVertexCount))
	}
}

// VertexCount returns the number of vertices a GridMesh built from the Grid contains; that's one for each cell corner.
func (grid Grid) VertexCount() int {
	return (grid.Columns + 1) * (grid.Rows + 1)
}

// TriangleCount returns how many triangles the Grid is made of (two per cell).
func (grid Grid) TriangleCount() int {
	return grid.Columns * grid.Rows * 2
}

// IndexCount returns the length of the index buffer of a GridMesh built from the Grid.
func (grid Grid) IndexCount() int {
	return grid.TriangleCount() * 3
}

// vertexIndex returns the index of the vertex at the given column and row, without bounds-checking.
func (grid Grid) vertexIndex(col, row int) int {
	return col*(grid.Rows+1) + row
}

// Contains returns if the provided column and row identify a vertex (not a cell) of the Grid.
func (grid Grid) Contains(col, row int) bool {
	return col >= 0 && col <= grid.Columns && row >= 0 && row <= grid.Rows
}

func (grid Grid) String() string {
	return fmt.Sprintf("%dx%d", grid.Columns, grid.Rows)
}
