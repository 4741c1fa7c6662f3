package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronkov/runlane/internal/audio"
	"github.com/avoronkov/runlane/internal/config"
	"github.com/avoronkov/runlane/internal/core"
	"github.com/avoronkov/runlane/internal/runner"
	"github.com/avoronkov/runlane/internal/scores"
)

// heldWindow is how long a movement key counts as held after its last
// press. Terminals deliver no key-up events, so a held key is modeled
// as a window the auto-repeat keeps refreshing.
const heldWindow = 160 * time.Millisecond

// Model is the Bubble Tea model for a runner session.
type Model struct {
	session *runner.Session
	screen  *core.Screen
	board   *scores.Board
	sound   *audio.Engine
	config  core.RuntimeConfig
	keys    *KeyMapper

	lastTick   time.Time
	leftUntil  time.Time
	rightUntil time.Time
	jumpQueued bool

	nameInput    textinput.Model
	enteringName bool
	scoreSaved   bool

	quitting bool
}

// NewModel creates a model around a fresh session. The board and sound
// engine may be inert; the game runs the same without them.
func NewModel(cfg config.RunnerConfig, rt core.RuntimeConfig, board *scores.Board, sound *audio.Engine) Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 18

	return Model{
		session:   runner.NewSession(cfg, rt),
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		board:     board,
		sound:     sound,
		config:    rt,
		keys:      NewKeyMapper(),
		nameInput: ti,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.enteringName {
		return m.handleNameKey(msg)
	}

	switch m.keys.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		m.sound.StopMusic()
		return m, tea.Quit

	case ActionScreenshot:
		m.saveScreenshot()

	case ActionLeft:
		m.leftUntil = time.Now().Add(heldWindow)

	case ActionRight:
		m.rightUntil = time.Now().Add(heldWindow)

	case ActionJump:
		if snap := m.session.Snapshot(); snap.Status == runner.StatusRunning && snap.OnGround {
			m.sound.Play(audio.CueJump)
		}
		m.jumpQueued = true

	case ActionPause:
		m.togglePause()

	case ActionStart:
		switch m.session.Status() {
		case runner.StatusIdle, runner.StatusOver:
			m.startRun()
		}

	case ActionRestart:
		if m.session.Status() != runner.StatusIdle {
			m.session.Restart()
			m.afterStart()
		}

	case ActionMute:
		if muted := m.sound.ToggleMute(); !muted && m.session.Status() == runner.StatusRunning {
			m.sound.StartMusic()
		}

	case ActionBuyMobility, ActionBuyJump, ActionBuyShield:
		if kind, ok := upgradeForAction(m.keys.MapKey(msg)); ok {
			if m.session.Buy(kind) {
				m.sound.Play(audio.CuePurchase)
			}
		}
	}

	return m, nil
}

// handleNameKey drives the game-over name prompt.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saveScore()
		return m, nil
	case "esc":
		// Skip saving
		m.enteringName = false
		m.scoreSaved = true
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the real elapsed time and maps
// the tick's events to audio cues.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := now.Sub(m.lastTick)
	m.lastTick = now

	in := core.Input{
		Left:  now.Before(m.leftUntil),
		Right: now.Before(m.rightUntil),
		Jump:  m.jumpQueued,
	}
	m.jumpQueued = false

	result := m.session.Advance(elapsed, in)

	for _, ev := range result.Events {
		switch ev {
		case runner.EventPickup:
			m.sound.Play(audio.CuePickup)
		case runner.EventShieldHit:
			m.sound.Play(audio.CueShieldHit)
		case runner.EventGameOver:
			m.sound.Play(audio.CueGameOver)
			m.sound.StopMusic()
		}
	}

	if result.Status == runner.StatusOver && !m.scoreSaved && !m.enteringName {
		m.openNamePrompt()
	}

	return m, tickCmd(m.config.TickRate)
}

// startRun begins a fresh run from idle or over.
func (m *Model) startRun() {
	m.session.Start()
	m.afterStart()
}

// afterStart resets per-run UI state and restarts the clock so the
// pre-run interval does not arrive as one giant delta.
func (m *Model) afterStart() {
	m.lastTick = time.Now()
	m.scoreSaved = false
	m.enteringName = false
	m.jumpQueued = false
	m.sound.StartMusic()
}

func (m *Model) togglePause() {
	was := m.session.Status()
	m.session.TogglePause()
	switch {
	case was == runner.StatusRunning:
		m.sound.StopMusic()
	case was == runner.StatusPaused:
		// Resuming: the paused interval must not reach the simulation
		m.lastTick = time.Now()
		m.sound.StartMusic()
	}
}

// openNamePrompt shows the name input prefilled with the last-used name.
func (m *Model) openNamePrompt() {
	m.nameInput.SetValue(m.board.PlayerName())
	m.nameInput.Focus()
	m.enteringName = true
}

// saveScore writes the finished run to the leaderboard exactly once.
func (m *Model) saveScore() {
	name := m.nameInput.Value()
	if name == "" {
		name = scores.DefaultName
	}
	m.board.SetPlayerName(name)
	snap := m.session.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.board.Insert(name, snap.Score)
	m.scoreSaved = true
	m.enteringName = false
}

// saveScreenshot dumps the current frame as plain text.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".runlane", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runlane_%s.txt", timestamp))

	m.renderFrame()
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// renderFrame draws the current state into the screen buffer.
func (m *Model) renderFrame() {
	snap := m.session.Snapshot()
	costs := [3]int{
		m.session.UpgradeCost(runner.UpgradeMobility),
		m.session.UpgradeCost(runner.UpgradeJump),
		m.session.UpgradeCost(runner.UpgradeShield),
	}

	switch snap.Status {
	case runner.StatusIdle:
		m.screen.Clear()
		m.screen.DrawHLine(0, m.config.ScreenH-3, m.screen.Width(), groundRune, core.ColorGray)
		drawIdleOverlay(m.screen, m.board.HighScore())
	case runner.StatusRunning:
		drawScene(m.screen, snap, costs, m.sound.Muted())
	case runner.StatusPaused:
		drawScene(m.screen, snap, costs, m.sound.Muted())
		drawPauseOverlay(m.screen)
	case runner.StatusOver:
		drawScene(m.screen, snap, costs, m.sound.Muted())
		nameView := "> " + m.nameInput.Value() + "▌"
		drawGameOverOverlay(m.screen, snap, nameView, m.enteringName)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderFrame()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.RunnerConfig, rt core.RuntimeConfig, board *scores.Board, sound *audio.Engine) error {
	model := NewModel(cfg, rt, board, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
