package tui

import (
	"fmt"

	"github.com/avoronkov/runlane/internal/core"
	"github.com/avoronkov/runlane/internal/runner"
)

// Entity and player glyphs.
const (
	playerRune         = '█'
	groundHazardRune   = '▓'
	floatingHazardRune = '◆'
	pickupRune         = '●'
	groundRune         = '═'
)

// tierColor styles the ground line and tier label per difficulty.
func tierColor(level int) core.Color {
	switch level {
	case 1:
		return core.ColorGray
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorYellow
	case 4:
		return core.ColorOrange
	default:
		return core.ColorBrightRed
	}
}

// drawScene renders one snapshot into the screen buffer: ground,
// entities, player, then the HUD on top.
func drawScene(s *core.Screen, snap runner.Snapshot, costs [3]int, muted bool) {
	s.Clear()

	s.DrawHLine(0, snap.GroundY, s.Width(), groundRune, tierColor(snap.Tier.Level))

	for _, e := range snap.Entities {
		drawEntity(s, e)
	}

	drawPlayer(s, snap)
	drawHUD(s, snap, costs, muted)
}

func drawEntity(s *core.Screen, e runner.EntityView) {
	r := e.Box.Rect()
	switch e.Kind {
	case runner.KindGroundHazard:
		s.DrawRect(r, groundHazardRune, core.ColorRed)
	case runner.KindFloatingHazard:
		s.DrawRect(r, floatingHazardRune, core.ColorBrightMagenta)
	case runner.KindPickup:
		s.DrawRect(r, pickupRune, core.ColorBrightYellow)
	}
}

func drawPlayer(s *core.Screen, snap runner.Snapshot) {
	color := core.ColorBrightCyan
	if snap.Invulnerable && snap.Frame%6 < 3 {
		color = core.ColorGray // blink while invulnerable
	}
	s.DrawRect(snap.Player.Rect(), playerRune, color)
}

// drawHUD paints score, currency, shields and the shop line.
func drawHUD(s *core.Screen, snap runner.Snapshot, costs [3]int, muted bool) {
	status := fmt.Sprintf(" SCORE %06d  COINS %d ", snap.Score, snap.Currency)
	s.DrawTextColored(1, 0, status, core.ColorBrightWhite)
	s.DrawTextColored(1+len(status), 0, " "+snap.Tier.Label+" ", tierColor(snap.Tier.Level))

	shields := " SHIELDS "
	for i := 0; i < snap.Shields; i++ {
		shields += "♦"
	}
	if snap.Shields == 0 {
		shields += "-"
	}
	s.DrawTextColored(core.Max(s.Width()-len([]rune(shields))-2, 0), 0, shields, core.ColorBrightBlue)

	shop := fmt.Sprintf(" [1] mobility %d  [2] jump %d  [3] shield %d ", costs[0], costs[1], costs[2])
	up := snap.Upgrades
	levels := fmt.Sprintf(" lv %d/%d/%d ", up.Mobility, up.Jump, up.Shield)
	s.DrawTextColored(1, 1, shop+levels, core.ColorGray)

	if muted {
		s.DrawTextColored(s.Width()-8, 1, " muted ", core.ColorGray)
	}
}

// drawIdleOverlay paints the title screen over an empty playfield.
func drawIdleOverlay(s *core.Screen, highScore int) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "R U N L A N E")
	s.DrawTextCentered(mid, "press enter to run")
	if highScore > 0 {
		s.DrawTextCentered(mid+2, fmt.Sprintf("best: %d", highScore))
	}
	s.DrawTextCentered(s.Height()-2, "←/→ move · space jump · p pause · m mute · q quit")
}

// drawPauseOverlay paints the pause banner over the frozen scene.
func drawPauseOverlay(s *core.Screen) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid, "║ PAUSED ║")
	s.DrawTextCentered(mid+2, "p to resume")
}

// drawGameOverOverlay paints the end-of-run banner. While the name
// prompt is active it shows the text input, afterwards the restart hint.
func drawGameOverOverlay(s *core.Screen, snap runner.Snapshot, nameView string, entering bool) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "G A M E   O V E R")
	s.DrawTextCentered(mid-1, fmt.Sprintf("score: %d", snap.Score))

	if entering {
		s.DrawTextCentered(mid+1, "your name:")
		s.DrawTextCentered(mid+2, nameView)
	} else {
		s.DrawTextCentered(mid+1, "r to run again · q to quit")
	}
}
