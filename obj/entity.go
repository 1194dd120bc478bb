package obj

import (
	"math/rand"

	"github.com/milk9111/gravitydash/common"
	"github.com/milk9111/gravitydash/segments"
)

// Entity is one live instance inside a segment: a blueprint's geometry plus a
// mutable cooldown timer. Entities are rebuilt from the template whenever a
// segment recycles; no instance identity survives.
type Entity struct {
	Kind     segments.Kind
	Rect     common.Rect
	Circle   common.Circle
	IsCircle bool
	Props    segments.Props
	Cooldown float64
}

func buildEntities(t *segments.Template, rng *rand.Rand) []Entity {
	bps := t.Build(rng)
	out := make([]Entity, 0, len(bps))
	for _, bp := range bps {
		e := Entity{Kind: bp.Kind, Props: bp.Props}
		if bp.Radius > 0 {
			e.IsCircle = true
			e.Circle = common.Circle{X: bp.X, Y: bp.Y, Radius: bp.Radius}
		} else {
			e.Rect = common.Rect{X: bp.X, Y: bp.Y, Width: bp.Width, Height: bp.Height}
		}
		out = append(out, e)
	}
	return out
}

// WorldRect returns the entity's rectangle shifted by the segment's offset.
func (e *Entity) WorldRect(offset float64) common.Rect {
	r := e.Rect
	r.X += offset
	return r
}

// WorldCircle returns the entity's circle shifted by the segment's offset.
func (e *Entity) WorldCircle(offset float64) common.Circle {
	c := e.Circle
	c.X += offset
	return c
}

// Overlaps reports whether the entity's geometry overlaps the given rect.
func (e *Entity) Overlaps(offset float64, r common.Rect) bool {
	if e.IsCircle {
		return e.WorldCircle(offset).IntersectsRect(r)
	}
	return e.WorldRect(offset).Intersects(r)
}
