package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gravitydash/common"
	"github.com/milk9111/gravitydash/segments"
	"golang.org/x/image/colornames"
)

// ImageProvider resolves a loaded image by key, or nil when missing. Missing
// images are never fatal; every draw call below has a solid-fill fallback.
type ImageProvider func(name string) *ebiten.Image

// Renderer draws the level window and the player in world space. The screen
// is already in world units (the window scale is applied by the layout), so
// only the scroll translation happens here.
type Renderer struct {
	images ImageProvider

	whiteImg *ebiten.Image
}

func NewRenderer(images ImageProvider) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		images:   images,
		whiteImg: white,
	}
}

// DrawLevel draws the floor, ceiling and every entity of every segment in the
// visible window.
func (r *Renderer) DrawLevel(screen *ebiten.Image, level *Level) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	// track bounds
	vector.DrawFilledRect(screen, 0, float32(common.FloorY), w, h-float32(common.FloorY), colornames.Darkslategray, false)
	vector.DrawFilledRect(screen, 0, 0, w, float32(common.CeilingY), colornames.Darkslategray, false)

	scroll := level.ScrollX()
	lo := scroll - level.RecycleMargin()
	hi := scroll + level.ViewWidth() + level.RecycleMargin()
	for _, s := range level.Segments() {
		if s.End() < lo || s.Offset > hi {
			continue
		}
		for i := range s.Entities {
			r.drawEntity(screen, &s.Entities[i], s.Offset-scroll)
		}
	}
}

func (r *Renderer) drawEntity(screen *ebiten.Image, e *Entity, offset float64) {
	switch e.Kind {
	case segments.KindPlatform:
		r.drawPlatform(screen, e, offset)
	case segments.KindSpike:
		r.drawSpike(screen, e, offset)
	case segments.KindBooster:
		r.drawBooster(screen, e, offset)
	case segments.KindOrb:
		r.drawOrb(screen, e, offset)
	case segments.KindPortal:
		r.drawPortal(screen, e, offset)
	default:
		// unknown entity types don't render
	}
}

func (r *Renderer) drawPlatform(screen *ebiten.Image, e *Entity, offset float64) {
	rect := e.WorldRect(offset)
	if img := r.images("platform.png"); img != nil {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Scale(rect.Width/float64(b.Dx()), rect.Height/float64(b.Dy()))
		op.GeoM.Translate(rect.X, rect.Y)
		screen.DrawImage(img, op)
		return
	}
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), colornames.Slategray, false)
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), 4, colornames.Lightsteelblue, false)
}

func (r *Renderer) drawSpike(screen *ebiten.Image, e *Entity, offset float64) {
	rect := e.WorldRect(offset)
	props, _ := e.Props.(segments.SpikeProps)
	var apexY, baseY float64
	if props.Orientation == segments.OrientationDown {
		apexY = rect.Bottom()
		baseY = rect.Top()
	} else {
		apexY = rect.Top()
		baseY = rect.Bottom()
	}
	r.fillTriangle(screen,
		float32(rect.Left()), float32(baseY),
		float32(rect.Right()), float32(baseY),
		float32(rect.CenterX()), float32(apexY),
		colornames.Crimson)
}

func (r *Renderer) drawBooster(screen *ebiten.Image, e *Entity, offset float64) {
	rect := e.WorldRect(offset)
	clr := colornames.Gold
	if e.Cooldown > 0 {
		clr = colornames.Darkgoldenrod
	}
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), clr, false)
	// chevrons pointing along the scroll direction
	cy := float32(rect.CenterY())
	for i := 0; i < 2; i++ {
		x := float32(rect.X) + float32(rect.Width)*(0.3+0.35*float32(i))
		r.fillTriangle(screen, x-8, cy-10, x-8, cy+10, x+8, cy, colornames.White)
	}
}

func (r *Renderer) drawOrb(screen *ebiten.Image, e *Entity, offset float64) {
	c := e.WorldCircle(offset)
	clr := colornames.Yellow
	if e.Cooldown > 0 {
		clr = colornames.Olive
	}
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), clr, true)
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius)+3, 2, colornames.White, true)
}

func (r *Renderer) drawPortal(screen *ebiten.Image, e *Entity, offset float64) {
	rect := e.WorldRect(offset)
	props, _ := e.Props.(segments.PortalProps)
	clr := colornames.Mediumorchid
	if props.Gravity > 0 {
		clr = colornames.Deepskyblue
	}
	cx := float32(rect.CenterX())
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: 90}, false)
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), 3, clr, false)
	// arrow showing the gravity the portal sets
	ay := float32(rect.CenterY())
	if props.Gravity > 0 {
		r.fillTriangle(screen, cx-14, ay-10, cx+14, ay-10, cx, ay+14, clr)
	} else {
		r.fillTriangle(screen, cx-14, ay+10, cx+14, ay+10, cx, ay-14, clr)
	}
}

// DrawPlayer draws the player square at its camera-relative position.
func (r *Renderer) DrawPlayer(screen *ebiten.Image, p *Player, scrollX float64) {
	b := p.Bounds()
	x := b.X - scrollX
	if !p.Alive {
		return
	}
	if img := r.images("player.png"); img != nil {
		op := &ebiten.DrawImageOptions{}
		ib := img.Bounds()
		op.GeoM.Scale(b.Width/float64(ib.Dx()), b.Height/float64(ib.Dy()))
		if p.GravityDir < 0 {
			op.GeoM.Scale(1, -1)
			op.GeoM.Translate(0, b.Height)
		}
		op.GeoM.Translate(x, b.Y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(b.Y), float32(b.Width), float32(b.Height), colornames.Crimson, false)
	// eye marks the gravity side
	eyeY := b.Y + 10
	if p.GravityDir < 0 {
		eyeY = b.Bottom() - 16
	}
	vector.DrawFilledRect(screen, float32(x+b.Width-16), float32(eyeY), 6, 6, colornames.White, false)
}

func (r *Renderer) fillTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.RGBA) {
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, r.whiteImg.SubImage(r.whiteImg.Bounds().Inset(1)).(*ebiten.Image), nil)
}
