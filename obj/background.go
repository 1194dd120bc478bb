package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Background draws the parallax layers behind the track. Each layer scrolls
// at a fraction of the camera speed; a layer with no image falls back to a
// flat band so a missing asset never breaks the frame.
type Background struct {
	layers []bgLayer
}

type bgLayer struct {
	imageName string
	parallax  float64
	y         float64
	height    float64
	fallback  color.NRGBA
}

func NewBackground() *Background {
	return &Background{
		layers: []bgLayer{
			{imageName: "bg_far.png", parallax: 0.15, y: 0, height: 720, fallback: color.NRGBA{R: 0x10, G: 0x12, B: 0x2e, A: 0xff}},
			{imageName: "bg_mid.png", parallax: 0.4, y: 300, height: 420, fallback: color.NRGBA{R: 0x1c, G: 0x20, B: 0x4a, A: 0xff}},
			{imageName: "bg_near.png", parallax: 0.7, y: 480, height: 240, fallback: color.NRGBA{R: 0x2a, G: 0x2f, B: 0x66, A: 0xff}},
		},
	}
}

// Draw tiles each layer horizontally against the scrolled camera.
func (b *Background) Draw(screen *ebiten.Image, images ImageProvider, scrollX float64) {
	w := float64(screen.Bounds().Dx())
	for _, layer := range b.layers {
		img := images(layer.imageName)
		if img == nil {
			vector.DrawFilledRect(screen, 0, float32(layer.y), float32(w), float32(layer.height), layer.fallback, false)
			continue
		}
		iw := float64(img.Bounds().Dx())
		ih := float64(img.Bounds().Dy())
		scale := layer.height / ih
		tileW := iw * scale
		offset := -math.Mod(scrollX*layer.parallax, tileW)
		for x := offset; x < w; x += tileW {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, layer.y)
			screen.DrawImage(img, op)
		}
	}
}
