package obj

import (
	"github.com/milk9111/gravitydash/common"
)

const (
	// PlayerHalfSize is half the side of the player's square hitbox. The
	// player's X/Y always refer to the hitbox center.
	PlayerHalfSize = 24.0

	gravityAccel = 2400.0
	jumpStrength = 760.0
	maxFallSpeed = 1300.0
	maxRiseSpeed = 1100.0

	// JumpBufferTime is how long an early jump press is remembered before
	// landing; CoyoteTime is how long a jump still counts as grounded after
	// leaving a surface.
	JumpBufferTime = 0.12
	CoyoteTime     = 0.08
)

// Player is the single simulated body. X is camera-derived (pinned to the
// scroll position every frame), only Y is integrated.
type Player struct {
	X, Y         float64
	PrevX, PrevY float64
	VelocityY    float64

	// GravityDir is +1 for normal gravity (down) and -1 for flipped.
	GravityDir int

	Grounded bool
	Alive    bool

	SpeedMultiplier float64
	GravityScale    float64
	BoostTimer      float64
	// BoostDuration is the full length of the running boost, for displaying
	// the remaining fraction.
	BoostDuration float64
	CoyoteTimer   float64
	JumpBuffer    float64
}

// NewPlayer creates the session-lifetime player in its reset state.
func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

// Reset reinitializes the player for a new attempt. The value itself lives
// for the whole session.
func (p *Player) Reset() {
	p.Y = common.FloorY - PlayerHalfSize
	p.PrevX = p.X
	p.PrevY = p.Y
	p.VelocityY = 0
	p.GravityDir = 1
	p.Grounded = true
	p.Alive = true
	p.SpeedMultiplier = 1
	p.GravityScale = 1
	p.BoostTimer = 0
	p.BoostDuration = 0
	p.CoyoteTimer = 0
	p.JumpBuffer = 0
}

// Bounds returns the player's hitbox.
func (p *Player) Bounds() common.Rect {
	return common.Rect{
		X:      p.X - PlayerHalfSize,
		Y:      p.Y - PlayerHalfSize,
		Width:  PlayerHalfSize * 2,
		Height: PlayerHalfSize * 2,
	}
}

// PrevBounds returns the hitbox at the previous frame's position, used by the
// swept platform landing check.
func (p *Player) PrevBounds() common.Rect {
	return common.Rect{
		X:      p.PrevX - PlayerHalfSize,
		Y:      p.PrevY - PlayerHalfSize,
		Width:  PlayerHalfSize * 2,
		Height: PlayerHalfSize * 2,
	}
}

// Integrate applies gravity and advances the vertical position, then decays
// the jump buffer, coyote and boost timers.
func (p *Player) Integrate(dt float64) {
	if !p.Alive {
		return
	}

	p.PrevX = p.X
	p.PrevY = p.Y

	p.VelocityY += gravityAccel * float64(p.GravityDir) * p.GravityScale * dt
	if p.GravityDir > 0 {
		p.VelocityY = common.Clamp(p.VelocityY, -maxRiseSpeed, maxFallSpeed)
	} else {
		p.VelocityY = common.Clamp(p.VelocityY, -maxFallSpeed, maxRiseSpeed)
	}
	p.Y += p.VelocityY * dt

	p.JumpBuffer = common.Clamp(p.JumpBuffer-dt, 0, JumpBufferTime)
	p.CoyoteTimer = common.Clamp(p.CoyoteTimer-dt, 0, CoyoteTime)

	if p.BoostTimer > 0 {
		p.BoostTimer -= dt
		if p.BoostTimer <= 0 {
			p.BoostTimer = 0
			p.BoostDuration = 0
			p.SpeedMultiplier = 1
			p.GravityScale = 1
		}
	}
}

// RequestJump buffers a jump press. Buffering happens regardless of grounded
// state so a press slightly before landing still fires on landing.
func (p *Player) RequestJump() {
	p.JumpBuffer = JumpBufferTime
}

// ApplyBufferedJump fires the buffered jump if the player is grounded or
// still inside the coyote window. Called after collision resolution so the
// frame's grounded state is final. Reports whether a jump happened.
func (p *Player) ApplyBufferedJump() bool {
	if !p.Alive || p.JumpBuffer <= 0 {
		return false
	}
	if !p.Grounded && p.CoyoteTimer <= 0 {
		return false
	}
	p.JumpBuffer = 0
	p.VelocityY = -jumpStrength * float64(p.GravityDir)
	p.Grounded = false
	p.CoyoteTimer = 0
	return true
}

// OrbJump applies an orb's impulse immediately; unlike a normal jump it is
// never buffered and doesn't need ground contact.
func (p *Player) OrbJump(power float64) {
	if !p.Alive {
		return
	}
	p.VelocityY = -power * float64(p.GravityDir)
	p.Grounded = false
	p.CoyoteTimer = 0
	p.JumpBuffer = 0
}

// Land snaps the player onto a surface at surfaceY, offset by half the body
// size away from gravity, and opens a fresh coyote window.
func (p *Player) Land(surfaceY float64) {
	p.VelocityY = 0
	p.Grounded = true
	p.CoyoteTimer = CoyoteTime
	p.Y = surfaceY - PlayerHalfSize*float64(p.GravityDir)
}

// Kill ends the attempt. Integration and resolution become no-ops until the
// next Reset.
func (p *Player) Kill() {
	p.Alive = false
}

// SetGravityDir flips gravity. Requesting the current direction is a no-op;
// a real flip zeroes vertical velocity, clamps the position into the legal
// band and clears grounded/coyote state.
func (p *Player) SetGravityDir(dir int) {
	if dir == p.GravityDir || (dir != 1 && dir != -1) {
		return
	}
	p.GravityDir = dir
	p.VelocityY = 0
	p.Y = common.Clamp(p.Y, common.CeilingY+PlayerHalfSize, common.FloorY-PlayerHalfSize)
	p.Grounded = false
	p.CoyoteTimer = 0
}

// ApplyBoost merges a boost with any active one, keeping whichever multiplier
// and duration is stronger. A gravityScale below 1 reduces effective gravity
// while the boost runs.
func (p *Player) ApplyBoost(multiplier, duration, gravityScale float64) {
	if multiplier > p.SpeedMultiplier {
		p.SpeedMultiplier = multiplier
	}
	if duration > p.BoostTimer {
		p.BoostTimer = duration
	}
	if p.BoostTimer > p.BoostDuration {
		p.BoostDuration = p.BoostTimer
	}
	if gravityScale > 0 && gravityScale < p.GravityScale {
		p.GravityScale = gravityScale
	}
}
