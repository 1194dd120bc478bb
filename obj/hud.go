package obj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// unitsPerMeter converts scroll distance into the HUD's meter readout.
const unitsPerMeter = 48.0

// Hud accumulates per-attempt distance and time plus session-wide bests.
type Hud struct {
	Attempt     int
	AttemptTime float64
	Distance    float64
	Best        float64

	startScroll float64
}

func NewHud() *Hud {
	return &Hud{}
}

// StartAttempt begins a fresh attempt measured from the given scroll origin.
func (h *Hud) StartAttempt(scrollX float64) {
	h.Attempt++
	h.AttemptTime = 0
	h.Distance = 0
	h.startScroll = scrollX
}

// Update accumulates attempt time and distance from the scroll position.
func (h *Hud) Update(dt, scrollX float64) {
	h.AttemptTime += dt
	h.Distance = (scrollX - h.startScroll) / unitsPerMeter
	if h.Distance > h.Best {
		h.Best = h.Distance
	}
}

// Draw renders the distance/time line and, while a boost runs, its remaining
// duration as a bar.
func (h *Hud) Draw(screen *ebiten.Image, p *Player) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0fm  best %.0fm", h.Distance, h.Best), 12, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("attempt %d  %.1fs", h.Attempt, h.AttemptTime), 12, 24)

	if p.BoostTimer > 0 && p.BoostDuration > 0 {
		frac := p.BoostTimer / p.BoostDuration
		vector.DrawFilledRect(screen, 12, 44, 120, 8, colornames.Gray, false)
		vector.DrawFilledRect(screen, 12, 44, float32(120*frac), 8, colornames.Gold, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x%.2f", p.SpeedMultiplier), 140, 40)
	}
}
