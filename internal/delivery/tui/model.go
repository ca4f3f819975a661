package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/flipdeck/flip/internal/deck"
	"github.com/flipdeck/flip/internal/game"
	"github.com/flipdeck/flip/internal/ui"
)

// Model is the bubbletea model driving one study session. Every key event
// maps to exactly one session transition followed by one render; actions the
// session rejects leave the screen untouched.
type Model struct {
	session *game.Session[string, string]
	keys    keyMap
	help    help.Model
	logger  *zap.Logger
	area    ui.Rect
}

// NewModel starts a session over d and wraps it for the terminal.
func NewModel(d deck.Deck, strategy game.Strategy, logger *zap.Logger) (Model, error) {
	session, err := game.NewSession(d, strategy)
	if err != nil {
		return Model{}, err
	}

	return Model{
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
		logger:  logger.With(zap.String("session_id", session.ID().String())),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.area = ui.Rect{Width: msg.Width, Height: msg.Height}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info("session quit", zap.Bool("finished", m.session.Finished()))
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reveal):
			m.session.Reveal()

		case key.Matches(msg, m.keys.Hit):
			m.score(game.Hit)

		case key.Matches(msg, m.keys.Miss):
			m.score(game.Miss)

		case key.Matches(msg, m.keys.Restart):
			if err := m.session.Restart(); err != nil {
				// Restart is only offered on the summary screen; anywhere
				// else the key is absorbed.
				m.logger.Debug("restart rejected", zap.Error(err))
			} else {
				m.logger.Info("session restarted")
			}
		}
	}

	return m, nil
}

func (m Model) score(s game.Score) {
	if err := m.session.Score(s); err != nil {
		// Scoring an unrevealed card is rejected: the answer has to be
		// visible before it can be judged. The screen simply does not
		// change.
		m.logger.Debug("score rejected", zap.Stringer("score", s), zap.Error(err))
		return
	}

	m.logger.Debug("card scored", zap.Stringer("score", s))
	if m.session.Finished() {
		sum := m.session.Summary()
		m.logger.Info("session finished",
			zap.Int("hits", sum.Hits),
			zap.Int("misses", sum.Misses),
		)
	}
}

// View implements tea.Model. The whole frame is a pure function of the
// session state; widgets are rebuilt from scratch every call.
func (m Model) View() string {
	if m.area.Width <= 0 || m.area.Height <= 1 {
		return ""
	}

	body := ui.Rect{Width: m.area.Width, Height: m.area.Height - 1}

	var screen string
	if m.session.Finished() {
		screen = summaryView(m.session.Deck().Title, m.session.Summary()).Render(body)
	} else {
		card, _ := m.session.Current()
		screen = NewCardSide(card, m.session.Revealed()).
			WithTitle(m.session.Deck().Title).
			Render(body)
	}

	return screen + "\n" + m.help.View(m.keys)
}
