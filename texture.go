package flag3d

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureOptions alters how a Texture is created.
type TextureOptions struct {
	// PadToPowerOfTwo pads the backing image out to the next power of two in each dimension, like older graphics hardware
	// demands. The image sits in the top-left corner of the padded area, and the padding is transparent. If false,
	// the padded size of the Texture is simply its image size.
	PadToPowerOfTwo bool
	// Filter is the filter used when the Texture is drawn onto a mesh.
	Filter ebiten.Filter
}

// DefaultTextureOptions creates an instance of TextureOptions with some sensible defaults.
func DefaultTextureOptions() *TextureOptions {
	return &TextureOptions{
		PadToPowerOfTwo: true,
		Filter:          ebiten.FilterLinear,
	}
}

// Texture is an image to be drawn onto a GridMesh. Width and Height are the size of the image itself, while PaddedWidth and PaddedHeight
// are the size of the backing image, which may be larger (see TextureOptions.PadToPowerOfTwo).
type Texture struct {
	Name                      string
	Width, Height             int
	PaddedWidth, PaddedHeight int
	Filter                    ebiten.Filter

	source *image.NRGBA
	image  *ebiten.Image
}

// LoadTexture loads an image file (PNG, JPEG, GIF, BMP, WebP, or TGA) from the filepath given and creates a Texture from it.
// Passing nil for options will use DefaultTextureOptions().
func LoadTexture(path string, options *TextureOptions) (*Texture, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flag3d: read texture %s: %w", path, err)
	}

	return LoadTextureData(bytes.NewReader(data), filepath.Base(path), options)

}

// LoadTextureData decodes an image from the reader given and creates a Texture with the provided name from it.
// Passing nil for options will use DefaultTextureOptions().
func LoadTextureData(r io.Reader, name string, options *TextureOptions) (*Texture, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("flag3d: decode texture %s: %w", name, err)
	}

	return NewTexture(img, name, options), nil

}

// NewTexture creates a Texture from an already decoded image. Passing nil for options will use DefaultTextureOptions().
// NewTexture panics if the image is empty.
func NewTexture(img image.Image, name string, options *TextureOptions) *Texture {

	if options == nil {
		options = DefaultTextureOptions()
	}

	bounds := img.Bounds()

	if bounds.Empty() {
		panic("Error: NewTexture() was given an empty image.")
	}

	tex := &Texture{
		Name:         name,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		PaddedWidth:  bounds.Dx(),
		PaddedHeight: bounds.Dy(),
		Filter:       options.Filter,
	}

	if options.PadToPowerOfTwo {
		tex.PaddedWidth = NextPowerOfTwo(tex.Width)
		tex.PaddedHeight = NextPowerOfTwo(tex.Height)
	}

	tex.source = image.NewNRGBA(image.Rect(0, 0, tex.PaddedWidth, tex.PaddedHeight))
	draw.Copy(tex.source, image.Point{}, img, bounds, draw.Src, nil)

	return tex

}

// Source returns the Texture's backing image, padded as necessary.
func (tex *Texture) Source() *image.NRGBA {
	return tex.source
}

// Image returns the Ebitengine image for the Texture, creating it on first use.
func (tex *Texture) Image() *ebiten.Image {
	if tex.image == nil {
		tex.image = ebiten.NewImageFromImage(tex.source)
	}
	return tex.image
}

// Dispose disposes of the Texture's Ebitengine image, if it was created. The Texture can still be drawn afterwards; the image
// will simply be recreated.
func (tex *Texture) Dispose() {
	if tex.image != nil {
		tex.image.Deallocate()
		tex.image = nil
	}
}

// NewGridMesh creates a GridMesh covering the Texture's image, with texture coordinates normalized against its padded size.
func (tex *Texture) NewGridMesh(grid Grid) *GridMesh {
	mesh := NewGridMesh(float32(tex.Width), float32(tex.Height), grid, float32(tex.PaddedWidth), float32(tex.PaddedHeight))
	mesh.Name = tex.Name
	return mesh
}

// NextPowerOfTwo returns the smallest power of two that is greater than or equal to n (and at least 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
