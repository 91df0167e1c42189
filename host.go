package flag3d

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Host ties a GridMesh, its WaveAnimator, a Texture, and a Camera to Ebitengine's game loop. It implements ebiten.Game:
// Update() advances the animation by the FrameClock's delta, Draw() renders the mesh, and Layout() resizes the Camera (and so its
// projection) to the window. Host holds no global state; construct one per window with NewHost().
type Host struct {
	Config   *Config
	Texture  *Texture
	Mesh     *GridMesh
	Animator *WaveAnimator
	Camera   *Camera
	Clock    FrameClock

	Paused          bool  // If the animation is paused; the mesh is still drawn
	BackgroundColor Color // Color the screen is cleared to before drawing
}

// NewHost creates a new Host that waves the Texture provided, set up according to the Config given. Passing a nil Config uses
// DefaultConfig(). NewHost panics if the Config is invalid; use Config.Validate() beforehand for configurations from users.
func NewHost(cfg *Config, texture *Texture) *Host {

	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		panic("Error: NewHost() was given an invalid Config: " + err.Error())
	}

	mesh := texture.NewGridMesh(cfg.Grid())

	anim := NewWaveAnimator(mesh)
	anim.Amplitude = cfg.Amplitude

	if cfg.EaseInSeconds > 0 {
		anim.Amplitude = 0
		anim.EaseAmplitude(cfg.Amplitude, cfg.EaseInSeconds, ease.OutQuad)
	}

	camera := NewCamera(cfg.WindowWidth, cfg.WindowHeight)
	camera.SetFieldOfView(cfg.FieldOfView)
	camera.SetNear(cfg.Near)
	camera.SetFar(cfg.Far)

	offset := cfg.Offset
	if cfg.AutoCenter {
		offset[0] = -mesh.Width / 2
		offset[1] = -mesh.Height / 2
	}
	camera.Transform = NewMatrix4Translate(offset[0], offset[1], offset[2])

	return &Host{
		Config:          cfg,
		Texture:         texture,
		Mesh:            mesh,
		Animator:        anim,
		Camera:          camera,
		Clock:           cfg.FrameClock(),
		BackgroundColor: NewColor(0, 0, 0, 1),
	}

}

// Update advances the animation by one tick.
func (host *Host) Update() error {

	dt := host.Clock.Delta()

	if !host.Paused {
		host.Animator.Step(dt)
	}

	return nil

}

// Draw clears the screen and renders the GridMesh through the Camera.
func (host *Host) Draw(screen *ebiten.Image) {
	screen.Fill(host.BackgroundColor.ToNRGBA())
	host.Camera.RenderGridMesh(screen, host.Mesh, host.Texture)
}

// Layout matches the screen to the window's size and reconfigures the Camera's projection for it.
func (host *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	host.Camera.Resize(outsideWidth, outsideHeight)
	w, h := host.Camera.Size()
	return w, h
}

// ExportGLTF saves the GridMesh, as it currently is, to a binary glTF file at the path provided.
func (host *Host) ExportGLTF(path string) error {
	return ExportGLTF(path, host.Mesh, host.Texture)
}
