package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronkov/runlane/internal/core"
	"github.com/avoronkov/runlane/internal/runner"
)

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"a", ActionLeft},
		{"left", ActionLeft},
		{"d", ActionRight},
		{" ", ActionJump},
		{"up", ActionJump},
		{"p", ActionPause},
		{"enter", ActionStart},
		{"r", ActionRestart},
		{"m", ActionMute},
		{"1", ActionBuyMobility},
		{"2", ActionBuyJump},
		{"3", ActionBuyShield},
		{"x", ActionNone},
	}

	for _, c := range cases {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(c.key)}
		switch c.key {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}
		if got := km.MapKey(msg); got != c.want {
			t.Errorf("key %q mapped to %v, expected %v", c.key, got, c.want)
		}
	}
}

func TestUpgradeForAction(t *testing.T) {
	if k, ok := upgradeForAction(ActionBuyShield); !ok || k != runner.UpgradeShield {
		t.Errorf("ActionBuyShield mapped to %v, %v", k, ok)
	}
	if _, ok := upgradeForAction(ActionJump); ok {
		t.Error("non-purchase action should not map to an upgrade")
	}
}

func TestDrawSceneGroundAndPlayer(t *testing.T) {
	s := core.NewScreen(60, 20)
	snap := runner.Snapshot{
		Status:  runner.StatusRunning,
		Player:  core.NewBox(8, 14, 3, 3),
		GroundY: 17,
		Tier:    runner.TierForScore(0),
	}

	drawScene(s, snap, [3]int{3, 3, 3}, false)

	if s.Get(0, 17) != groundRune || s.Get(59, 17) != groundRune {
		t.Error("ground line not drawn across the full width")
	}
	if s.Get(9, 15) != playerRune {
		t.Errorf("player not drawn at expected cell, got %q", s.Get(9, 15))
	}
	if !strings.Contains(s.Row(0), "SCORE") {
		t.Error("HUD score missing from the top row")
	}
	// The shop line names the upgrade categories as the rest of the
	// game does
	if row := s.Row(1); !strings.Contains(row, "mobility") || !strings.Contains(row, "jump") || !strings.Contains(row, "shield") {
		t.Errorf("shop line missing upgrade names: %q", row)
	}
}

func TestDrawSceneEntities(t *testing.T) {
	s := core.NewScreen(60, 20)
	snap := runner.Snapshot{
		Status:  runner.StatusRunning,
		Player:  core.NewBox(8, 14, 3, 3),
		GroundY: 17,
		Tier:    runner.TierForScore(0),
		Entities: []runner.EntityView{
			{Kind: runner.KindGroundHazard, Box: core.NewBox(30, 15, 2, 2)},
			{Kind: runner.KindPickup, Box: core.NewBox(40, 10, 1, 1)},
		},
	}

	drawScene(s, snap, [3]int{3, 3, 3}, false)

	if s.Get(30, 15) != groundHazardRune {
		t.Errorf("ground hazard not drawn, got %q", s.Get(30, 15))
	}
	if s.Get(40, 10) != pickupRune {
		t.Errorf("pickup not drawn, got %q", s.Get(40, 10))
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(10, 4)
	s.DrawTextColored(0, 0, "hi", core.ColorRed)

	out := RenderScreen(s)
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("rendered output has %d newlines, expected 3", lines)
	}
}
