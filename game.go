package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravitydash/assets"
	"github.com/milk9111/gravitydash/common"
	"github.com/milk9111/gravitydash/obj"
	"github.com/milk9111/gravitydash/segments"
)

const (
	// maxDeltaTime bounds integration error during stalls; a long stall
	// produces a single slow tick rather than sub-steps.
	maxDeltaTime = 1.0 / 30.0

	// resetDelay is how long a dead run sits idle before reinitializing.
	resetDelay = 600 * time.Millisecond
)

type Game struct {
	seed  int64
	debug bool

	lib      *segments.Library
	input    *obj.Input
	player   *obj.Player
	level    *obj.Level
	resolver *obj.Resolver
	hud      *obj.Hud
	renderer *obj.Renderer
	bg       *obj.Background

	watcher *segments.Watcher
	pauseUI *ebitenui.UI
	paused  bool

	// running is false while a death reset is pending; resetAt is polled by
	// the loop instead of firing a scheduled callback.
	running bool
	resetAt time.Time

	lastTick time.Time
	scale    float64

	requestRestart bool
	clipboardOK    bool
}

func NewGame(lib *segments.Library, seed int64, debug bool) *Game {
	rng := rand.New(rand.NewSource(seed))
	level := obj.NewLevel(lib, rng)

	g := &Game{
		seed:     seed,
		debug:    debug,
		lib:      lib,
		input:    obj.NewInput(),
		player:   obj.NewPlayer(),
		level:    level,
		resolver: obj.NewResolver(level),
		hud:      obj.NewHud(),
		renderer: obj.NewRenderer(assets.Image),
		bg:       obj.NewBackground(),
		scale:    1,
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		g.initDebug()
		watcher, err := segments.NewWatcher("segments", "segments/scripts")
		if err != nil {
			log.Warn("template watcher unavailable", "err", err)
		} else {
			g.watcher = watcher
		}
	}

	g.reset()
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	dt := maxDeltaTime
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
		if dt > maxDeltaTime {
			dt = maxDeltaTime
		}
	}
	g.lastTick = now

	g.pollWatcher()

	g.input.Update()
	in := g.input.Consume()

	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		if g.pausedRestart(in) {
			g.reset()
		}
		return nil
	}

	if g.debug {
		g.updateDebug()
	}

	if in.Restart {
		g.reset()
		return nil
	}

	if !g.running {
		if !g.resetAt.IsZero() && now.After(g.resetAt) {
			g.reset()
		}
		return nil
	}

	if in.JumpQueued {
		g.player.RequestJump()
	}

	prevMultiplier := g.player.SpeedMultiplier

	g.player.Integrate(dt)
	g.level.Advance(dt, g.player.SpeedMultiplier)
	g.player.X = g.level.PlayerX()
	g.resolver.Resolve(g.player, in, dt)

	if !g.player.Alive {
		g.running = false
		g.resetAt = now.Add(resetDelay)
		assets.PlaySound("death.wav")
		return nil
	}

	if g.player.SpeedMultiplier > prevMultiplier {
		assets.PlaySound("boost.wav")
	}
	if g.player.ApplyBufferedJump() {
		assets.PlaySound("jump.wav")
	}

	g.hud.Update(dt, g.level.ScrollX())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	scroll := g.level.ScrollX()
	g.bg.Draw(screen, assets.Image, scroll)
	g.renderer.DrawLevel(screen, g.level)
	g.renderer.DrawPlayer(screen, g.player, scroll)
	g.hud.Draw(screen, g.player)

	if g.debug {
		g.drawDebug(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// LayoutF keeps the world height fixed and lets the visible width follow the
// window's aspect ratio. The scale factor affects rendering and the streaming
// window only; simulation stays in fixed world units.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return common.BaseWidth, common.BaseHeight
	}
	g.scale = outsideHeight / common.BaseHeight
	width := outsideWidth / g.scale
	g.level.SetViewport(width)
	return width, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// reset starts a new attempt: the player reinitializes fully, the segment
// window rebuilds from the current scroll position.
func (g *Game) reset() {
	g.player.Reset()
	g.level.Reset()
	g.player.X = g.level.PlayerX()
	g.hud.StartAttempt(g.level.ScrollX())
	g.resetAt = time.Time{}
	g.running = true
}

// pausedRestart reports whether a restart was requested while paused, either
// by the R key or the overlay's Restart button, and unpauses if so.
func (g *Game) pausedRestart(in obj.Intents) bool {
	if !in.Restart && !g.requestRestart {
		return false
	}
	g.requestRestart = false
	g.paused = false
	return true
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Dirty():
		if err := g.lib.Reload(); err != nil {
			log.Warn("template reload failed", "err", err)
			return
		}
		log.Info("templates reloaded", "templates", g.lib.Len())
	default:
	}
}

// Close stops the watcher; safe to call more than once.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
