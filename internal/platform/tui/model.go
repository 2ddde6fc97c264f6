package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blockfall/internal/config"
	"github.com/vovakirdan/tui-blockfall/internal/core"
	"github.com/vovakirdan/tui-blockfall/internal/engine"
	"github.com/vovakirdan/tui-blockfall/internal/storage"
)

// maxFrameDt caps the measured frame interval in seconds. A suspended
// terminal would otherwise deliver one huge gravity burst on resume.
const maxFrameDt = 0.25

// Model is the Bubble Tea model for a game session.
type Model struct {
	game      *engine.Game
	screen    *core.Screen
	store     *storage.Store
	rules     config.Config
	runtime   core.RuntimeConfig
	mode      string // difficulty label, keyed into score records
	keyMapper *KeyMapper

	lastTick   time.Time
	highScore  int
	paused     bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model running a fresh game under the
// given rules. Fails if the rules describe an unplayable board.
func NewModel(rules config.Config, store *storage.Store, runtime core.RuntimeConfig, mode string) (Model, error) {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	game, err := newGame(rules, runtime.Seed)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:     store,
		rules:     rules,
		runtime:   runtime,
		mode:      mode,
		keyMapper: NewKeyMapper(),
	}
	m.loadHighScore()
	return m, nil
}

// newGame builds an engine instance from the rule config.
func newGame(rules config.Config, seed int64) (*engine.Game, error) {
	return engine.New(rules.Board.Rows, rules.Board.Cols, engine.Options{
		GravityInterval: rules.Gravity.Interval,
		PiecePoints:     rules.Scoring.Piece,
		LinePoints:      rules.LineTable(),
		Seed:            seed,
	})
}

// loadHighScore fetches the best recorded score for the current mode.
func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	if high, err := m.store.HighScore(m.mode); err == nil {
		m.highScore = high
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if !m.game.Over() {
			m.paused = !m.paused
		}
		return m, nil

	case core.ActionRestart:
		if m.game.Over() {
			return m.restart()
		}
		return m, nil
	}

	// Piece commands queue up for the next tick; the engine drains them
	// in press order.
	if m.paused || m.game.Over() {
		return m, nil
	}
	if cmd, ok := ActionCommand(action); ok {
		m.game.Push(cmd)
	}

	return m, nil
}

// restart starts a fresh game with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	game, err := newGame(m.rules, time.Now().UnixNano())
	if err != nil {
		// Rules were already validated once; keep the finished game up.
		return m, nil
	}
	m.game = game
	m.paused = false
	m.scoreSaved = false
	m.lastTick = time.Time{}
	m.loadHighScore()
	return m, nil
}

// handleTick advances the simulation by the measured real interval.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
	}
	m.lastTick = now

	if !m.paused {
		m.game.Advance(dt)
	}

	// Save score on game over (once)
	if m.game.Over() && !m.scoreSaved {
		if m.store != nil && m.game.Score() > 0 {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveScore(m.mode, m.game.Score(), m.game.Lines())
		}
		if m.game.Score() > m.highScore {
			m.highScore = m.game.Score()
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawBoard()
	m.drawHUD()
	m.drawOverlay()

	return RenderScreen(m.screen)
}

// Board origin on screen. Cells render two columns wide so the playfield
// looks roughly square in a character grid.
const (
	boardX = 2
	boardY = 1
)

// drawBoard renders the playfield: locked cells, the ghost landing
// position, then the active piece on top.
func (m Model) drawBoard() {
	rows, cols := m.game.Rows(), m.game.Cols()

	m.screen.DrawBox(core.NewRect(boardX-1, boardY-1, cols*2+2, rows+2))

	cells := m.game.BoardCells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if v := cells[row*cols+col]; v != 0 {
				m.drawCell(col, row, '█', cellColor(v))
			}
		}
	}

	if !m.game.HasPiece() {
		return
	}

	size := m.game.PieceSize()
	piece := m.game.PieceCells()
	px, py := m.game.PieceAt()
	sx, sy := m.game.ShadowAt()

	// Ghost first so the real piece overdraws it when they overlap.
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if piece[r*size+c] == 0 {
				continue
			}
			m.drawCell(sx+c, sy+r, '░', core.ColorGray)
		}
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if v := piece[r*size+c]; v != 0 {
				m.drawCell(px+c, py+r, '█', cellColor(v))
			}
		}
	}
}

// drawCell paints one board cell (two screen columns) at board
// coordinates (col, row).
func (m Model) drawCell(col, row int, r rune, c core.Color) {
	x := boardX + col*2
	y := boardY + row
	m.screen.SetCell(x, y, r, c)
	m.screen.SetCell(x+1, y, r, c)
}

// drawHUD renders score and controls to the right of the playfield.
func (m Model) drawHUD() {
	x := boardX + m.game.Cols()*2 + 3
	y := boardY

	m.screen.DrawText(x, y, "BLOCKFALL")
	y += 2
	m.screen.DrawText(x, y, fmt.Sprintf("Score %d", m.game.Score()))
	y++
	m.screen.DrawText(x, y, fmt.Sprintf("Lines %d", m.game.Lines()))
	y++
	if m.highScore > 0 {
		m.screen.DrawText(x, y, fmt.Sprintf("Best  %d", m.highScore))
		y++
	}
	if m.mode != "" {
		m.screen.DrawText(x, y, fmt.Sprintf("Mode  %s", m.mode))
		y++
	}

	y += 2
	for _, line := range []string{
		"←/→  move",
		"↑    rotate",
		"↓    soft drop",
		"spc  hard drop",
		"p    pause",
		"q    quit",
	} {
		m.screen.DrawText(x, y, line)
		y++
	}
}

// drawOverlay renders pause and game-over banners over the playfield.
func (m Model) drawOverlay() {
	centerY := boardY + m.game.Rows()/2

	switch {
	case m.game.Over():
		m.drawBanner(centerY-1, "GAME OVER")
		m.drawBanner(centerY+1, "r restart / q quit")
	case m.paused:
		m.drawBanner(centerY, "PAUSED")
	}
}

// drawBanner centers text within the playfield width at the given row.
func (m Model) drawBanner(y int, text string) {
	width := m.game.Cols() * 2
	x := boardX + (width-len(text))/2
	for i, r := range text {
		m.screen.SetCell(x+i, y, r, core.ColorWhite)
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(rules config.Config, store *storage.Store, runtime core.RuntimeConfig, mode string) error {
	model, err := NewModel(rules, store, runtime, mode)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
