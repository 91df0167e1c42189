package flag3d

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

// SaveScreenshot encodes the image provided (an *ebiten.Image works, as it implements image.Image) as a lossless WebP file at the
// path given.
func SaveScreenshot(path string, img image.Image) error {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("flag3d: create screenshot %s: %w", path, err)
	}

	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("flag3d: encode screenshot %s: %w", path, err)
	}

	return f.Close()

}
