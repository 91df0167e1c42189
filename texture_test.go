package flag3d

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func newCheckerImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func TestNextPowerOfTwo(t *testing.T) {

	cases := map[int]int{
		0:    1,
		1:    1,
		2:    2,
		3:    4,
		480:  512,
		640:  1024,
		1024: 1024,
		1025: 2048,
	}

	for n, expected := range cases {
		if p := NextPowerOfTwo(n); p != expected {
			t.Errorf("NextPowerOfTwo(%d) = %d, expected %d", n, p, expected)
		}
	}

}

func TestNewTexturePadding(t *testing.T) {

	img := newCheckerImage(5, 3)

	tex := NewTexture(img, "checker", &TextureOptions{PadToPowerOfTwo: true})

	if tex.Width != 5 || tex.Height != 3 || tex.PaddedWidth != 8 || tex.PaddedHeight != 4 {
		t.Fatalf("texture is %dx%d padded to %dx%d, expected 5x3 padded to 8x4", tex.Width, tex.Height, tex.PaddedWidth, tex.PaddedHeight)
	}

	if b := tex.Source().Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("backing image is %dx%d, expected 8x4", b.Dx(), b.Dy())
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if tex.Source().NRGBAAt(x, y) != img.NRGBAAt(x, y) {
				t.Fatalf("pixel %d, %d wasn't copied into the padded image", x, y)
			}
		}
	}

	if c := tex.Source().NRGBAAt(6, 3); c.A != 0 {
		t.Fatalf("padding pixel is %v, expected transparent", c)
	}

	unpadded := NewTexture(img, "checker", &TextureOptions{PadToPowerOfTwo: false})

	if unpadded.PaddedWidth != 5 || unpadded.PaddedHeight != 3 {
		t.Fatalf("unpadded texture has a padded size of %dx%d, expected 5x3", unpadded.PaddedWidth, unpadded.PaddedHeight)
	}

}

func TestNewTextureOffsetBounds(t *testing.T) {

	// Sub-images don't start at 0, 0.
	img := newCheckerImage(10, 10).SubImage(image.Rect(3, 4, 9, 7))

	tex := NewTexture(img, "sub", nil)

	if tex.Width != 6 || tex.Height != 3 {
		t.Fatalf("texture from a sub-image is %dx%d, expected 6x3", tex.Width, tex.Height)
	}

	if tex.Source().At(0, 0) != img.At(3, 4) {
		t.Fatal("sub-image wasn't copied to the top-left of the texture")
	}

	expectPanic(t, "empty image", func() { NewTexture(image.NewNRGBA(image.Rectangle{}), "empty", nil) })

}

func TestLoadTexture(t *testing.T) {

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, newCheckerImage(12, 7)); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "flag.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	tex, err := LoadTexture(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	if tex.Name != "flag.png" || tex.Width != 12 || tex.Height != 7 || tex.PaddedWidth != 16 || tex.PaddedHeight != 8 {
		t.Fatalf("loaded texture %q is %dx%d padded to %dx%d, expected \"flag.png\" 12x7 padded to 16x8", tex.Name, tex.Width, tex.Height, tex.PaddedWidth, tex.PaddedHeight)
	}

	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"), nil); err == nil {
		t.Fatal("loading a missing file should fail")
	}

	if _, err := LoadTextureData(bytes.NewReader([]byte("not an image")), "garbage", nil); err == nil {
		t.Fatal("loading garbage data should fail")
	}

}

func TestTextureNewGridMesh(t *testing.T) {

	tex := NewTexture(newCheckerImage(640, 480), "flag", nil)
	mesh := tex.NewGridMesh(NewGrid(20, 20))

	if mesh.Width != 640 || mesh.Height != 480 || mesh.PaddedWidth != 1024 || mesh.PaddedHeight != 512 {
		t.Fatalf("mesh covers %fx%f with a padded size of %fx%f, expected 640x480 and 1024x512", mesh.Width, mesh.Height, mesh.PaddedWidth, mesh.PaddedHeight)
	}

	if mesh.XStep != 32 || mesh.YStep != 24 {
		t.Fatalf("mesh cells are %fx%f, expected 32x24", mesh.XStep, mesh.YStep)
	}

}
