package flag3d

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultAmplitude is the default height of the wave's crests, in the same units as the mesh's vertex positions.
const DefaultAmplitude = 32

// WavePhaseScale is how much a vertex's X + Y position shifts the phase of the wave. This is what makes the crests travel
// diagonally across the mesh.
const WavePhaseScale = 0.01

// WaveHeight returns the depth of the wave at the given planar position at elapsed time t (in seconds). The wave completes
// one full period every second.
func WaveHeight(x, y, t, amplitude float64) float64 {
	return amplitude * math.Sin(2*math.Pi*t+WavePhaseScale*(x+y))
}

// WaveAnimator animates a GridMesh like a flag waving in the wind by moving the Z position of each vertex along a sine wave
// that travels across the mesh over time. X and Y positions, texture coordinates, colors, and indices are left alone.
type WaveAnimator struct {
	Mesh      *GridMesh
	Amplitude float64 // Height of the wave's crests; changing it takes effect on the next Step()

	elapsed        float64
	amplitudeTween *gween.Tween
}

// NewWaveAnimator returns a new WaveAnimator for the provided GridMesh, using DefaultAmplitude.
func NewWaveAnimator(mesh *GridMesh) *WaveAnimator {
	return &WaveAnimator{
		Mesh:      mesh,
		Amplitude: DefaultAmplitude,
	}
}

// Step advances the animator's elapsed time by dt seconds and recalculates the Z position of every vertex in the Mesh.
// Calling Step(0) recalculates the current wave without advancing it. A negative, infinite, or NaN dt panics.
func (anim *WaveAnimator) Step(dt float64) {

	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("Error: WaveAnimator.Step() was given an invalid delta time (%f); it must be finite and non-negative.", dt))
	}

	anim.elapsed += dt

	if anim.amplitudeTween != nil {
		amp, finished := anim.amplitudeTween.Update(float32(dt))
		anim.Amplitude = float64(amp)
		if finished {
			anim.amplitudeTween = nil
		}
	}

	grid := anim.Mesh.Grid

	for i := 0; i <= grid.Columns; i++ {
		for j := 0; j <= grid.Rows; j++ {
			v := anim.Mesh.Vertex(i, j)
			z := WaveHeight(float64(v.X), float64(v.Y), anim.elapsed, anim.Amplitude)
			anim.Mesh.SetVertex(i, j, v.SetZ(float32(z)))
		}
	}

}

// Elapsed returns the total time the animator has been stepped by, in seconds.
func (anim *WaveAnimator) Elapsed() float64 {
	return anim.elapsed
}

// EaseAmplitude tweens the animator's Amplitude from its current value to the target value over the given duration in seconds,
// following the easing function provided (ease.OutQuad if nil). The tween advances with each Step(). A duration of 0 or less sets
// the Amplitude immediately.
func (anim *WaveAnimator) EaseAmplitude(target, duration float64, easing ease.TweenFunc) {

	if duration <= 0 {
		anim.Amplitude = target
		anim.amplitudeTween = nil
		return
	}

	if easing == nil {
		easing = ease.OutQuad
	}

	anim.amplitudeTween = gween.New(float32(anim.Amplitude), float32(target), float32(duration), easing)

}

// Easing returns whether the animator's Amplitude is currently being tweened.
func (anim *WaveAnimator) Easing() bool {
	return anim.amplitudeTween != nil
}
