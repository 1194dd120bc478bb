package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png *.wav
var assetsFS embed.FS

var images = map[string]*ebiten.Image{}

// Load decodes every embedded asset up front, before the game loop starts.
// Any decode failure is a hard startup failure; the run can't start without
// its assets.
func Load() error {
	names, err := fs.Glob(assetsFS, "*.png")
	if err != nil {
		return fmt.Errorf("assets: glob images: %w", err)
	}
	for _, name := range names {
		b, err := assetsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("assets: read %s: %w", name, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("assets: decode %s: %w", name, err)
		}
		images[name] = ebiten.NewImageFromImage(img)
	}
	return loadSFX()
}

// Image returns a loaded image by file name, or nil when missing. Callers
// fall back to primitive rendering; a missing image is never fatal.
func Image(name string) *ebiten.Image {
	return images[name]
}
