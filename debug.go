package flag3d

import (
	"fmt"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const debugFontSize = 12

func (camera *Camera) fontFace() font.Face {

	if camera.debugFontFace == nil {

		tt, err := truetype.Parse(gomono.TTF)
		if err != nil {
			panic(err)
		}

		camera.debugFontFace = truetype.NewFace(tt, &truetype.Options{Size: debugFontSize, DPI: 72, Hinting: font.HintingFull})

	}

	return camera.debugFontFace

}

// DrawDebugRenderInfo draws render debug information (like number of drawn triangles, frame time, etc)
// at the top-left of the provided screen *ebiten.Image, using the color provided. elapsed is the animation time to show.
// Note that the frame-time mentioned here is purely the time spent projecting the mesh and sending render commands to the command queue.
func (camera *Camera) DrawDebugRenderInfo(screen *ebiten.Image, elapsed float64, color Color) {

	m := camera.DebugInfo.FrameTime.Round(time.Microsecond).Microseconds()
	ft := fmt.Sprintf("%.2fms", float32(m)/1000)

	debugText := fmt.Sprintf(
		"TPS: %f\nFPS: %f\nTotal render frame-time: %s\nRendered triangles: %d/%d\nClipped vertices: %d\nElapsed: %.2fs",
		ebiten.ActualTPS(),
		ebiten.ActualFPS(),
		ft,
		camera.DebugInfo.DrawnTris,
		camera.DebugInfo.TotalTris,
		camera.DebugInfo.CulledVerts,
		elapsed,
	)

	camera.DebugDrawText(screen, debugText, 0, 0, color)

}

// DebugDrawText draws the text provided at the given position on the screen, with a black drop shadow so it stays readable
// on top of the flag.
func (camera *Camera) DebugDrawText(screen *ebiten.Image, txt string, posX, posY int, color Color) {

	face := camera.fontFace()
	lineHeight := face.Metrics().Height.Ceil()

	text.Draw(screen, txt, face, posX+5, posY+lineHeight+5, NewColor(0, 0, 0, color.A).ToNRGBA())
	text.Draw(screen, txt, face, posX+4, posY+lineHeight+4, color.ToNRGBA())

}

// DrawDebugWireframe draws the edges of the GridMesh's triangles, as they'd be projected by the Camera, in the color provided.
// Triangles with a vertex outside of the near and far planes are skipped.
func (camera *Camera) DrawDebugWireframe(screen *ebiten.Image, mesh *GridMesh, color Color) {

	vp := camera.ViewProjection()
	clr := color.ToNRGBA()

	indices := mesh.Indices()

	points := [3]Vector3{}

	for t := 0; t < len(indices); t += 3 {

		visible := true

		for i := 0; i < 3; i++ {
			v := mesh.positions[int(indices[t+i])*3:]
			clip := vp.MultVecW(Vector3{v[0], v[1], v[2]})
			if camera.outsideDepthRange(clip.W) {
				visible = false
				break
			}
			points[i] = camera.clipToScreen(clip)
		}

		if !visible {
			continue
		}

		for i := 0; i < 3; i++ {
			start := points[i]
			end := points[(i+1)%3]
			vector.StrokeLine(screen, start.X, start.Y, end.X, end.Y, 1, clr, false)
		}

	}

}
