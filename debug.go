package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

// initDebug sets up the clipboard for seed copying. Clipboard access can be
// unavailable (headless X, wayland without portal); the overlay still works
// without it.
func (g *Game) initDebug() {
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", "err", err)
		return
	}
	g.clipboardOK = true
}

// updateDebug handles debug-only input: F2 copies the run seed so a layout
// can be reproduced with -seed.
func (g *Game) updateDebug() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) && g.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(strconv.FormatInt(g.seed, 10)))
		log.Info("seed copied to clipboard", "seed", g.seed)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	names := make([]string, 0, len(g.level.Segments()))
	for _, s := range g.level.Segments() {
		names = append(names, s.Template.Name)
	}

	lines := []string{
		fmt.Sprintf("seed %d (F2 copies)", g.seed),
		fmt.Sprintf("scroll %.0f  speed %.0f", g.level.ScrollX(), g.level.Speed()),
		fmt.Sprintf("segments [%s]", strings.Join(names, " ")),
		fmt.Sprintf("y %.1f vy %.1f grav %+d grounded %v buffer %.2f coyote %.2f",
			g.player.Y, g.player.VelocityY, g.player.GravityDir, g.player.Grounded, g.player.JumpBuffer, g.player.CoyoteTimer),
		fmt.Sprintf("tps %.1f fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 12, 80+i*16)
	}
}
