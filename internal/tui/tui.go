// Package tui is the terminal shell around the rules core: it renders the
// tableau, translates typed commands into core operations and owns the
// delayed reset after a win.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/spider/spider"
	"github.com/lox/spider/internal/store"
)

// resetMsg fires when the post-win delay elapses
type resetMsg struct{}

// Options configures the TUI shell
type Options struct {
	Store      store.Store
	Autosave   bool
	ResetDelay time.Duration
	Clock      quartz.Clock
}

// Model is the Bubble Tea model for a solitaire session
type Model struct {
	game    *spider.Game
	newGame func() *spider.Game
	logger  *log.Logger

	store      store.Store
	autosave   bool
	resetDelay time.Duration
	clock      quartz.Clock

	input       textinput.Model
	logViewport viewport.Model
	gameLog     []string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewModel creates a TUI model around an existing game. newGame deals
// replacements for the "new" command and the post-win reset.
func NewModel(game *spider.Game, newGame func() *spider.Game, logger *log.Logger, opts Options) *Model {
	input := textinput.New()
	input.Placeholder = "move <src> <dst> [count]"
	input.Focus()
	input.CharLimit = 32

	vp := viewport.New(40, 6)

	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	delay := opts.ResetDelay
	if delay == 0 {
		delay = 3 * time.Second
	}

	return &Model{
		game:        game,
		newGame:     newGame,
		logger:      logger.WithPrefix("tui"),
		store:       opts.Store,
		autosave:    opts.Autosave,
		resetDelay:  delay,
		clock:       clock,
		input:       input,
		logViewport: vp,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 2
		m.logViewport.Height = 6
		m.initialized = true
		return m, nil

	case resetMsg:
		m.game = m.newGame()
		m.appendLog("New deal.")
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.runCommand(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCommand executes one typed command against the game
func (m *Model) runCommand(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	cmd, err := parseCommand(line)
	if err != nil {
		m.appendLog(ErrorStyle.Render(err.Error()))
		return m, nil
	}

	switch cmd.Kind {
	case cmdQuit:
		m.quitting = true
		return m, tea.Quit

	case cmdNew:
		m.game = m.newGame()
		m.appendLog("New deal.")
		return m, nil

	case cmdSave:
		if m.store == nil {
			m.appendLog(ErrorStyle.Render("no save directory configured"))
			return m, nil
		}
		store.SaveGame(m.store, m.logger, m.game)
		m.appendLog("Saved.")
		return m, nil

	case cmdLoad:
		if m.store == nil {
			m.appendLog(ErrorStyle.Render("no save directory configured"))
			return m, nil
		}
		m.game = store.LoadGame(m.store, m.logger, m.game)
		m.appendLog("Loaded.")
		return m, nil

	case cmdMove:
		return m.runMove(cmd)
	}
	return m, nil
}

// runMove performs the full per-move pipeline: validate and execute the
// move, resolve completed sequences, save, and check for the win.
func (m *Model) runMove(cmd command) (tea.Model, tea.Cmd) {
	id, err := m.movingCard(cmd.Src, cmd.Count)
	if err != nil {
		m.appendLog(ErrorStyle.Render(err.Error()))
		return m, nil
	}

	if err := m.game.Move(id, cmd.Dst); err != nil {
		m.appendLog(ErrorStyle.Render(err.Error()))
		return m, nil
	}
	m.appendLog(fmt.Sprintf("Moved %d card(s) from pile %d to pile %d.", cmd.Count, cmd.Src, cmd.Dst))

	if n := m.game.Resolve(); n > 0 {
		m.appendLog(WinStyle.Render(fmt.Sprintf("Completed %d sequence(s)!", n)))
	}

	if m.autosave && m.store != nil {
		store.SaveGame(m.store, m.logger, m.game)
	}

	if m.game.Won() {
		m.appendLog(WinStyle.Render("You won! Dealing again shortly..."))
		return m, m.scheduleReset()
	}
	return m, nil
}

// movingCard resolves "count cards off the top of pile src" to a card ID
func (m *Model) movingCard(src, count int) (spider.CardID, error) {
	if src < 0 || src >= spider.NumPiles {
		return 0, fmt.Errorf("pile %d out of range", src)
	}
	pile := m.game.Tableau[src]
	if count > len(pile) {
		return 0, fmt.Errorf("pile %d has only %d cards", src, len(pile))
	}
	return pile[len(pile)-count].ID, nil
}

// scheduleReset arms the post-win timer on the injected clock
func (m *Model) scheduleReset() tea.Cmd {
	fired := make(chan struct{})
	m.clock.AfterFunc(m.resetDelay, func() {
		close(fired)
	})
	return func() tea.Msg {
		<-fired
		return resetMsg{}
	}
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	if len(m.gameLog) > 100 {
		m.gameLog = m.gameLog[len(m.gameLog)-100:]
	}
	m.logViewport.SetContent(LogStyle.Render(strings.Join(m.gameLog, "\n")))
	m.logViewport.GotoBottom()
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" Spider "))
	b.WriteString("\n\n")
	b.WriteString(m.renderTableau())
	b.WriteString("\n")
	b.WriteString(StockStyle.Render(fmt.Sprintf("Stock: %d cards", len(m.game.Stock))))
	b.WriteString("\n\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("move <src> <dst> [count] · new · save · load · quit"))
	return b.String()
}

// renderTableau draws the ten piles as columns
func (m *Model) renderTableau() string {
	columns := make([]string, 0, spider.NumPiles)
	for i, pile := range m.game.Tableau {
		var col strings.Builder
		col.WriteString(PileIndexStyle.Render(fmt.Sprintf(" %d ", i)))
		for _, c := range pile {
			col.WriteString("\n")
			if c.FaceUp {
				col.WriteString(FaceUpCardStyle.Render(fmt.Sprintf("%3s", c.String())))
			} else {
				col.WriteString(FaceDownCardStyle.Render(" ▒▒"))
			}
		}
		columns = append(columns, col.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
