package flag3d

import (
	"testing"
)

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected a panic, but there was none", name)
		}
	}()
	f()
}

var testGrids = []Grid{
	{1, 1},
	{2, 2},
	{3, 1},
	{1, 4},
	{7, 5},
	{20, 20},
}

func TestGridMeshBufferSizes(t *testing.T) {

	for _, grid := range testGrids {

		mesh := NewGridMesh(640, 480, grid, 1024, 512)

		vertCount := (grid.Columns + 1) * (grid.Rows + 1)

		if l := len(mesh.Indices()); l != 6*grid.Columns*grid.Rows {
			t.Fatalf("%s: index buffer has length %d, expected %d", grid, l, 6*grid.Columns*grid.Rows)
		}

		if l := len(mesh.Positions()); l != 3*vertCount {
			t.Fatalf("%s: position buffer has length %d, expected %d", grid, l, 3*vertCount)
		}

		if l := len(mesh.TexCoords()); l != 3*vertCount {
			t.Fatalf("%s: texture coordinate buffer has length %d, expected %d", grid, l, 3*vertCount)
		}

		if l := len(mesh.Colors()); l != 4*vertCount {
			t.Fatalf("%s: color buffer has length %d, expected %d", grid, l, 4*vertCount)
		}

	}

}

func TestGridMeshIndicesInRange(t *testing.T) {

	for _, grid := range testGrids {

		mesh := NewGridMesh(100, 60, grid, 100, 60)

		used := make([]bool, grid.VertexCount())

		for _, index := range mesh.Indices() {
			if int(index) >= grid.VertexCount() {
				t.Fatalf("%s: index %d is out of range (vertex count %d)", grid, index, grid.VertexCount())
			}
			used[index] = true
		}

		for i, u := range used {
			if !u {
				t.Fatalf("%s: vertex %d is never used by a triangle", grid, i)
			}
		}

	}

}

func TestGridMeshTrianglesWinding(t *testing.T) {

	mesh := NewGridMesh(90, 70, Grid{9, 7}, 128, 128)
	pos := mesh.Positions()
	indices := mesh.Indices()

	for tri := 0; tri < len(indices); tri += 3 {

		a := indices[tri] * 3
		b := indices[tri+1] * 3
		c := indices[tri+2] * 3

		area := (pos[b]-pos[a])*(pos[c+1]-pos[a+1]) - (pos[c]-pos[a])*(pos[b+1]-pos[a+1])

		if area <= 0 {
			t.Fatalf("triangle %d is degenerate or wound clockwise (signed area %f)", tri/3, area)
		}

	}

}

func TestGridMeshCellCorners(t *testing.T) {

	grid := Grid{4, 3}
	mesh := NewGridMesh(40, 30, grid, 64, 32)
	indices := mesh.Indices()

	for i := 0; i < grid.Columns; i++ {
		for j := 0; j < grid.Rows; j++ {

			cell := indices[(i*grid.Rows+j)*6:][:6]

			a := uint16(grid.vertexIndex(i, j))
			b := uint16(grid.vertexIndex(i+1, j))
			c := uint16(grid.vertexIndex(i+1, j+1))
			d := uint16(grid.vertexIndex(i, j+1))

			expected := []uint16{a, b, d, b, c, d}

			for k := range expected {
				if cell[k] != expected[k] {
					t.Fatalf("cell (%d, %d): indices %v, expected %v", i, j, cell, expected)
				}
			}

		}
	}

}

func TestGridMeshSharedCornersMatch(t *testing.T) {

	// Steps that aren't exactly representable would produce seams if corners were computed by accumulating steps.
	grid := Grid{7, 3}
	mesh := NewGridMesh(100, 100, grid, 128, 128)

	for i := 0; i <= grid.Columns; i++ {
		for j := 0; j <= grid.Rows; j++ {

			v := mesh.Vertex(i, j)

			x := float32(i) * mesh.XStep
			y := float32(j) * mesh.YStep

			if v.X != x || v.Y != y || v.Z != 0 {
				t.Fatalf("vertex (%d, %d) is %v, expected {%f %f 0}", i, j, v, x, y)
			}

			tex := mesh.TexCoord(i, j)

			if tex.X != x/mesh.PaddedWidth || tex.Y != y/mesh.PaddedHeight || tex.Z != 0 {
				t.Fatalf("vertex (%d, %d) has texture coordinate %v, expected {%f %f 0}", i, j, tex, x/mesh.PaddedWidth, y/mesh.PaddedHeight)
			}

		}
	}

	// Neighboring cells share an edge; the vertex they share is stored once, so comparing through
	// each cell's own triangle indices must give the same values.
	indices := mesh.Indices()
	pos := mesh.Positions()

	for i := 0; i < grid.Columns-1; i++ {
		for j := 0; j < grid.Rows; j++ {
			left := indices[(i*grid.Rows+j)*6:][:6]
			right := indices[((i+1)*grid.Rows+j)*6:][:6]
			// The left cell's b and c are the right cell's a and d.
			for _, pair := range [][2]uint16{{left[1], right[0]}, {left[4], right[2]}} {
				for k := 0; k < 3; k++ {
					if pos[int(pair[0])*3+k] != pos[int(pair[1])*3+k] {
						t.Fatalf("cells (%d, %d) and (%d, %d) disagree on a shared corner", i, j, i+1, j)
					}
				}
			}
		}
	}

	for i := 0; i < grid.Columns; i++ {
		for j := 0; j < grid.Rows-1; j++ {
			below := indices[(i*grid.Rows+j)*6:][:6]
			above := indices[(i*grid.Rows+j+1)*6:][:6]
			// The lower cell's d and c are the upper cell's a and b.
			for _, pair := range [][2]uint16{{below[2], above[0]}, {below[4], above[1]}} {
				for k := 0; k < 3; k++ {
					if pos[int(pair[0])*3+k] != pos[int(pair[1])*3+k] {
						t.Fatalf("cells (%d, %d) and (%d, %d) disagree on a shared corner", i, j, i, j+1)
					}
				}
			}
		}
	}

}

func TestGridMeshTexCoordsNormalized(t *testing.T) {

	mesh := NewGridMesh(640, 480, Grid{20, 20}, 1024, 512)

	corner := mesh.TexCoord(20, 20)

	if corner.X != 640.0/1024 || corner.Y != 480.0/512 {
		t.Fatalf("top-right texture coordinate is %v, expected {0.625 0.9375 0}", corner)
	}

	unpadded := NewGridMesh(640, 480, Grid{20, 20}, 640, 480)

	corner = unpadded.TexCoord(20, 20)

	if corner.X != 1 || corner.Y != 1 {
		t.Fatalf("top-right texture coordinate of an unpadded mesh is %v, expected {1 1 0}", corner)
	}

}

func TestGridMeshColorsWhite(t *testing.T) {

	mesh := NewGridMesh(10, 10, Grid{2, 2}, 16, 16)

	for _, c := range mesh.Colors() {
		if c != 255 {
			t.Fatalf("vertex color component is %d, expected 255", c)
		}
	}

	if c := mesh.VertexColor(1, 1); c != NewColor(1, 1, 1, 1) {
		t.Fatalf("vertex color is %v, expected opaque white", c)
	}

}

func TestGridMeshVertexRoundTrip(t *testing.T) {

	mesh := NewGridMesh(20, 20, Grid{2, 2}, 32, 32)

	values := []Vector3{
		{1.5, -2.25, 3.125},
		{0, 0, 0},
		{-1e6, 1e-6, 42},
	}

	for _, v := range values {
		for i := 0; i <= 2; i++ {
			for j := 0; j <= 2; j++ {
				mesh.SetVertex(i, j, v)
				if got := mesh.Vertex(i, j); !got.Equals(v) {
					t.Fatalf("SetVertex(%d, %d, %v) then Vertex() gave %v", i, j, v, got)
				}
			}
		}
	}

	// Setting one vertex mustn't touch its neighbors.
	mesh.SetVertex(1, 1, Vector3{7, 8, 9})
	mesh.SetVertex(1, 2, Vector3{1, 2, 3})

	if got := mesh.Vertex(1, 1); !got.Equals(Vector3{7, 8, 9}) {
		t.Fatalf("vertex (1, 1) was changed by setting (1, 2): %v", got)
	}

}

func TestGridMeshPreconditions(t *testing.T) {

	expectPanic(t, "zero columns", func() { NewGrid(0, 4) })
	expectPanic(t, "negative rows", func() { NewGrid(4, -1) })
	expectPanic(t, "too many vertices", func() { NewGrid(256, 256) })
	expectPanic(t, "zero width", func() { NewGridMesh(0, 10, Grid{1, 1}, 16, 16) })
	expectPanic(t, "padded size too small", func() { NewGridMesh(20, 10, Grid{1, 1}, 16, 16) })
	expectPanic(t, "invalid grid", func() { NewGridMesh(10, 10, Grid{0, 1}, 16, 16) })

	mesh := NewGridMesh(10, 10, Grid{2, 3}, 16, 16)

	expectPanic(t, "column past the grid", func() { mesh.Vertex(3, 0) })
	expectPanic(t, "row past the grid", func() { mesh.Vertex(0, 4) })
	expectPanic(t, "negative column", func() { mesh.SetVertex(-1, 0, Vector3{}) })
	expectPanic(t, "negative row", func() { mesh.TexCoord(0, -1) })

	// The last column and row are valid vertices.
	mesh.Vertex(2, 3)

}

func TestGridMeshBounds(t *testing.T) {

	mesh := NewGridMesh(40, 20, Grid{4, 2}, 64, 32)
	mesh.SetVertex(2, 1, Vector3{20, 10, -5})
	mesh.SetVertex(3, 1, Vector3{30, 10, 7})

	lo, hi := mesh.Bounds()

	if !lo.Equals(Vector3{0, 0, -5}) || !hi.Equals(Vector3{40, 20, 7}) {
		t.Fatalf("bounds are %v - %v, expected {0 0 -5} - {40 20 7}", lo, hi)
	}

}

func BenchmarkNewGridMesh(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		NewGridMesh(640, 480, Grid{20, 20}, 1024, 512)
	}

}
