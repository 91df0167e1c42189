package flag3d

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// DebugInfo is a struct that holds debugging information for a Camera's render pass. These values are updated on each
// call to Camera.RenderGridMesh().
type DebugInfo struct {
	FrameTime   time.Duration // Amount of CPU frame time spent transforming vertices and calling Image.DrawTriangles. Doesn't include time Ebitengine spends flushing the command queue.
	DrawnTris   int           // Number of drawn triangles, excluding those culled for crossing the near or far plane
	TotalTris   int           // Total number of triangles
	DrawnVerts  int           // Number of vertices handed to Ebitengine
	CulledVerts int           // Number of vertices nearer than the near plane or farther than the far plane
}

// Camera represents where the GridMesh is looked at from. It holds a perspective projection, which is rebuilt when the Camera
// is resized, and renders GridMeshes by projecting their vertices, sorting their triangles from back to front (as Ebitengine
// doesn't have a depth buffer for DrawTriangles()), and submitting them as one triangle list.
type Camera struct {
	// Transform is the model-view Matrix4 applied to vertices before projection. The Camera looks down -Z from the origin, so
	// this is generally a translation that pushes the mesh in front of it.
	Transform Matrix4
	// SortMode is how triangles are sorted before drawing; defaults to TriangleSortModeBackToFront.
	SortMode int
	// SortBinCount is how many depth bins triangles are sorted into; more bins means a more accurate (but slower) sort.
	SortBinCount int

	DebugInfo DebugInfo

	width, height int
	near, far     float32 // The near and far clipping plane.
	fieldOfView   float32 // Vertical field of view in degrees

	updateProjectionMatrix bool
	cachedProjectionMatrix Matrix4

	vertexList    []ebiten.Vertex
	indexList     []uint16
	clipped       []Vector4
	sorter        *sortingTriangleBucket
	debugFontFace font.Face
}

// NewCamera creates a new Camera with the specified view width and height, a 90 degree vertical field of view, a near plane of 0.1,
// and a far plane of 400.
func NewCamera(w, h int) *Camera {

	cam := &Camera{
		Transform:    NewMatrix4(),
		SortMode:     TriangleSortModeBackToFront,
		SortBinCount: 256,
		near:         0.1,
		far:          400,
		fieldOfView:  90,
	}

	cam.Resize(w, h)

	return cam

}

// Resize resizes the view of the Camera to the specified width and height, which reconfigures the perspective projection for
// the new aspect ratio. If the width and height are already set to the specified arguments, or either is 0 or less (as can
// happen with a minimized window), then the function does nothing.
func (camera *Camera) Resize(w, h int) {

	if w <= 0 || h <= 0 || (w == camera.width && h == camera.height) {
		return
	}

	camera.width = w
	camera.height = h
	camera.updateProjectionMatrix = true

}

// Size returns the width and height of the camera's view.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float32 {
	return float32(camera.width) / float32(camera.height)
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {

	if camera.updateProjectionMatrix {
		camera.cachedProjectionMatrix = NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, float32(camera.width), float32(camera.height))
		camera.updateProjectionMatrix = false
	}

	return camera.cachedProjectionMatrix

}

// SetFieldOfView sets the vertical field of view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float32) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float32 {
	return camera.fieldOfView
}

// Near returns the near plane of a camera.
func (camera *Camera) Near() float32 {
	return camera.near
}

// SetNear sets the near plane of a camera.
func (camera *Camera) SetNear(near float32) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.updateProjectionMatrix = true
}

// Far returns the far plane of a camera.
func (camera *Camera) Far() float32 {
	return camera.far
}

// SetFar sets the far plane of the camera.
func (camera *Camera) SetFar(far float32) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.updateProjectionMatrix = true
}

// ViewProjection returns the camera's Transform combined with its Projection.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.Transform.Mult(camera.Projection())
}

// clipToScreen performs the perspective divide on a projected vertex and maps it to pixels on the camera's view. The returned
// Vector3's Z is the vertex's distance in front of the camera.
func (camera *Camera) clipToScreen(vert Vector4) Vector3 {

	w := float32(camera.width)
	h := float32(camera.height)

	v3 := vert.W

	// Vertices behind the camera are culled by the caller; this just avoids dividing by zero.
	if v3 == 0 {
		v3 = 0.000001
	}

	return Vector3{
		X: (vert.X/v3 + 1) / 2 * w,
		Y: (1 - vert.Y/v3) / 2 * h,
		Z: vert.W,
	}

}

// WorldToScreen transforms a position in the GridMesh's space to a position onscreen, with X and Y representing the pixels,
// and Z the distance in front of the camera. The boolean is false if the position is nearer than the near plane or farther
// than the far plane.
func (camera *Camera) WorldToScreen(position Vector3) (Vector3, bool) {
	v := camera.ViewProjection().MultVecW(position)
	return camera.clipToScreen(v), !camera.outsideDepthRange(v.W)
}

// outsideDepthRange returns if a vertex at the given distance in front of the camera lies outside of the near and far planes.
func (camera *Camera) outsideDepthRange(w float32) bool {
	return w < camera.near || w > camera.far
}

// prepareGridMesh projects the vertices of the mesh and fills the camera's vertex and index lists with the triangles to draw,
// sorted according to the camera's SortMode.
func (camera *Camera) prepareGridMesh(mesh *GridMesh, texture *Texture) ([]ebiten.Vertex, []uint16) {

	positions := mesh.Positions()
	texCoords := mesh.TexCoords()
	colors := mesh.Colors()
	indices := mesh.Indices()

	vertCount := len(positions) / 3
	triCount := len(indices) / 3

	if cap(camera.vertexList) < vertCount {
		camera.vertexList = make([]ebiten.Vertex, vertCount)
		camera.clipped = make([]Vector4, vertCount)
	}
	camera.vertexList = camera.vertexList[:vertCount]
	camera.clipped = camera.clipped[:vertCount]

	if cap(camera.indexList) < len(indices) {
		camera.indexList = make([]uint16, 0, len(indices))
	}
	camera.indexList = camera.indexList[:0]

	if camera.sorter == nil || camera.sorter.Capacity() < triCount || len(camera.sorter.bins) != max(camera.SortBinCount, 1) {
		camera.sorter = newSortingTriangleBucket(camera.SortBinCount, triCount)
	}
	camera.sorter.sortMode = camera.SortMode
	camera.sorter.Clear()

	vp := camera.ViewProjection()

	texW := float32(texture.PaddedWidth)
	texH := float32(texture.PaddedHeight)
	imgH := float32(texture.Height)

	camera.DebugInfo.CulledVerts = 0

	for i := 0; i < vertCount; i++ {

		p := Vector3{positions[i*3], positions[i*3+1], positions[i*3+2]}
		clip := vp.MultVecW(p)
		camera.clipped[i] = clip

		if camera.outsideDepthRange(clip.W) {
			camera.DebugInfo.CulledVerts++
		}

		screen := camera.clipToScreen(clip)

		// Texture coordinates point upwards from the bottom edge of the image, while Ebitengine's source
		// coordinates point downwards from the top-left of the (padded) image.
		camera.vertexList[i] = ebiten.Vertex{
			DstX:   screen.X,
			DstY:   screen.Y,
			SrcX:   texCoords[i*3] * texW,
			SrcY:   imgH - texCoords[i*3+1]*texH,
			ColorR: float32(colors[i*4]) / 255,
			ColorG: float32(colors[i*4+1]) / 255,
			ColorB: float32(colors[i*4+2]) / 255,
			ColorA: float32(colors[i*4+3]) / 255,
		}

	}

	var minDepth, maxDepth float32
	first := true

	for t := 0; t < triCount; t++ {

		a, b, c := indices[t*3], indices[t*3+1], indices[t*3+2]
		wa, wb, wc := camera.clipped[a].W, camera.clipped[b].W, camera.clipped[c].W

		if camera.outsideDepthRange(wa) || camera.outsideDepthRange(wb) || camera.outsideDepthRange(wc) {
			continue
		}

		depth := (wa + wb + wc) / 3

		if first {
			minDepth, maxDepth = depth, depth
			first = false
		} else {
			minDepth, maxDepth = min(minDepth, depth), max(maxDepth, depth)
		}

		camera.sorter.AddTriangle(t, depth)

	}

	camera.sorter.Sort(minDepth, maxDepth)

	camera.sorter.ForEach(func(triIndex, triID int) {
		camera.indexList = append(camera.indexList, indices[triID*3], indices[triID*3+1], indices[triID*3+2])
	})

	camera.DebugInfo.TotalTris = triCount
	camera.DebugInfo.DrawnTris = len(camera.indexList) / 3
	camera.DebugInfo.DrawnVerts = vertCount

	return camera.vertexList, camera.indexList

}

// RenderGridMesh renders the GridMesh provided to the screen image, with the Texture given drawn across it. The mesh's vertices
// are transformed by the camera's Transform and Projection, and triangles are drawn from back to front.
func (camera *Camera) RenderGridMesh(screen *ebiten.Image, mesh *GridMesh, texture *Texture) {

	start := time.Now()

	verts, indices := camera.prepareGridMesh(mesh, texture)

	if len(indices) > 0 {
		screen.DrawTriangles(verts, indices, texture.Image(), &ebiten.DrawTrianglesOptions{
			Filter:  texture.Filter,
			Address: ebiten.AddressClampToZero,
		})
	}

	camera.DebugInfo.FrameTime = time.Since(start)

}
