package obj

import (
	"math"

	"github.com/milk9111/gravitydash/common"
	"github.com/milk9111/gravitydash/segments"
)

const (
	// approachTolerance scales the platform landing epsilon with fall speed.
	// The exact value is tunable; it only needs to grow with |velocity.y| so
	// fast falls don't tunnel past the landing check.
	approachTolerance = 0.02

	boosterDebounce = 0.2
)

// Resolver runs the per-frame collision pass between the player and the
// level: world bounds first, then every entity of every segment inside the
// visible-plus-margin window, in template authoring order.
type Resolver struct {
	level *Level
}

func NewResolver(level *Level) *Resolver {
	return &Resolver{level: level}
}

// Resolve mutates the player (and entity cooldowns) for this frame. A fatal
// spike hit kills the player and short-circuits the rest of the pass.
func (r *Resolver) Resolve(p *Player, in Intents, dt float64) {
	if !p.Alive {
		return
	}

	// Grounded is re-derived every frame; landing checks below set it back.
	p.Grounded = false

	r.clampWorldBounds(p)

	lo := r.level.scrollX - r.level.recycleMargin
	hi := r.level.scrollX + r.level.viewWidth + r.level.recycleMargin

	for _, s := range r.level.segs {
		if s.End() < lo || s.Offset > hi {
			continue
		}
		for i := range s.Entities {
			e := &s.Entities[i]
			if e.Cooldown > 0 {
				e.Cooldown = math.Max(0, e.Cooldown-dt)
			}
			switch e.Kind {
			case segments.KindPlatform:
				r.resolvePlatform(p, e, s.Offset)
			case segments.KindSpike:
				if r.hitSpike(p, e, s.Offset) {
					p.Kill()
					return
				}
			case segments.KindBooster:
				r.resolveBooster(p, e, s.Offset)
			case segments.KindOrb:
				r.resolveOrb(p, e, s.Offset, in)
			case segments.KindPortal:
				r.resolvePortal(p, e, s.Offset)
			default:
				// unknown entity types neither collide nor render
			}
		}
	}

	r.revalidateGrounded(p)
}

// clampWorldBounds lands the player on the surface in the gravity direction
// and clamps against the opposite one. Always wins over entity collision.
func (r *Resolver) clampWorldBounds(p *Player) {
	b := p.Bounds()
	if p.GravityDir > 0 {
		if b.Bottom() >= common.FloorY {
			p.Land(common.FloorY)
		}
		if p.Bounds().Top() <= common.CeilingY {
			p.Y = common.CeilingY + PlayerHalfSize
			if p.VelocityY < 0 {
				p.VelocityY = 0
			}
		}
		return
	}
	if b.Top() <= common.CeilingY {
		p.Land(common.CeilingY)
	}
	if p.Bounds().Bottom() >= common.FloorY {
		p.Y = common.FloorY - PlayerHalfSize
		if p.VelocityY > 0 {
			p.VelocityY = 0
		}
	}
}

// resolvePlatform is a swept one-directional landing check: the player only
// lands when the previous frame's rect was on the approach side, within a
// velocity-scaled tolerance. Platforms approached from the side or already
// passed through are ignored.
func (r *Resolver) resolvePlatform(p *Player, e *Entity, offset float64) {
	rect := e.WorldRect(offset)
	if !p.Bounds().Intersects(rect) {
		return
	}
	eps := math.Abs(p.VelocityY) * approachTolerance
	prev := p.PrevBounds()
	if p.GravityDir > 0 {
		if p.VelocityY >= 0 && prev.Bottom() <= rect.Top()+eps {
			p.Land(rect.Top())
		}
		return
	}
	if p.VelocityY <= 0 && prev.Top() >= rect.Bottom()-eps {
		p.Land(rect.Bottom())
	}
}

// hitSpike does a rect broad-phase, then checks the triangular hazard
// profile: the collision line sits at the apex-side corner height at the
// rect's horizontal edges and drops to the base edge at the center, so the
// tip is forgiving. Fatal when the player's gravity-side edge crosses it.
func (r *Resolver) hitSpike(p *Player, e *Entity, offset float64) bool {
	rect := e.WorldRect(offset)
	b := p.Bounds()
	if !b.Intersects(rect) {
		return false
	}
	props, ok := e.Props.(segments.SpikeProps)
	if !ok {
		return false
	}
	relX := common.Clamp((b.CenterX()-rect.Left())/rect.Width, 0, 1)
	slant := 2 * math.Abs(relX-0.5)
	if props.Orientation == segments.OrientationDown {
		lineY := rect.Top() + rect.Height*slant
		return b.Top() <= lineY
	}
	lineY := rect.Bottom() - rect.Height*slant
	return b.Bottom() >= lineY
}

func (r *Resolver) resolveBooster(p *Player, e *Entity, offset float64) {
	if e.Cooldown > 0 || !e.Overlaps(offset, p.Bounds()) {
		return
	}
	props, ok := e.Props.(segments.BoosterProps)
	if !ok {
		return
	}
	p.ApplyBoost(props.Multiplier, props.Duration, props.GravityScale)
	cooldown := props.Cooldown
	if cooldown <= 0 {
		cooldown = props.Duration
	}
	if cooldown <= 0 {
		cooldown = 1
	}
	// debounce margin past the boost's own duration so the same pad doesn't
	// re-trigger the instant its effect ends
	e.Cooldown = cooldown + boosterDebounce
}

// resolveOrb fires only on player intent: a fresh press this frame or a held
// jump. Without intent (or while cooling down) the orb is a pass-through.
func (r *Resolver) resolveOrb(p *Player, e *Entity, offset float64, in Intents) {
	if e.Cooldown > 0 || !e.Overlaps(offset, p.Bounds()) {
		return
	}
	if !in.JumpPressed && !in.JumpHeld {
		return
	}
	props, ok := e.Props.(segments.OrbProps)
	if !ok {
		return
	}
	p.OrbJump(props.Power)
	e.Cooldown = props.Cooldown
}

func (r *Resolver) resolvePortal(p *Player, e *Entity, offset float64) {
	if e.Cooldown > 0 || !e.Overlaps(offset, p.Bounds()) {
		return
	}
	props, ok := e.Props.(segments.PortalProps)
	if !ok {
		return
	}
	p.SetGravityDir(props.Gravity)
	e.Cooldown = props.Cooldown
}

// revalidateGrounded re-checks the world bounds after the entity loop;
// a portal flip later in the pass can leave an already-grounded player
// penetrating the floor or ceiling.
func (r *Resolver) revalidateGrounded(p *Player) {
	if !p.Grounded {
		return
	}
	b := p.Bounds()
	if b.Bottom() > common.FloorY {
		p.Y = common.FloorY - PlayerHalfSize
	}
	if p.Bounds().Top() < common.CeilingY {
		p.Y = common.CeilingY + PlayerHalfSize
	}
}
