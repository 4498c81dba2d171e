// Package tui is an interactive viewer that deals rounds and shows the
// winning order.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/session"
)

type keyMap struct {
	Deal    key.Binding
	Details key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Deal, k.Details, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Deal: key.NewBinding(
		key.WithKeys("n", " "),
		key.WithHelp("n", "new deal"),
	),
	Details: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle details"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// roundMsg carries a freshly dealt round
type roundMsg struct {
	round *session.Round
	err   error
}

// Model is the Bubble Tea model for the hand viewer
type Model struct {
	dealer *session.Dealer
	logger *log.Logger
	hands  int
	seed   int64 // seed for the next deal, 0 derives one from the clock

	round   *session.Round
	err     error
	details bool
	deals   int

	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel creates a viewer that deals hands-sized rounds starting at seed
func NewModel(dealer *session.Dealer, logger *log.Logger, hands int, seed int64) *Model {
	return &Model{
		dealer: dealer,
		logger: logger.WithPrefix("tui"),
		hands:  hands,
		seed:   seed,
		keys:   defaultKeys,
		help:   help.New(),
	}
}

// Init deals the first round
func (m *Model) Init() tea.Cmd {
	return m.deal()
}

func (m *Model) deal() tea.Cmd {
	seed, hands := m.seed, m.hands
	return func() tea.Msg {
		round, err := m.dealer.Deal(seed, hands)
		return roundMsg{round: round, err: err}
	}
}

// Update handles deals and key presses
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roundMsg:
		m.round, m.err = msg.round, msg.err
		if msg.err != nil {
			m.logger.Error("Deal failed", "error", msg.err)
			return m, nil
		}
		m.deals++
		// keep seeded sessions reproducible: each redeal uses the next seed
		if m.seed != 0 {
			m.seed = msg.round.Seed + 1
		}
		m.logger.Debug("Round dealt", "seed", msg.round.Seed, "deals", m.deals)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Deal):
			return m, m.deal()
		case key.Matches(msg, m.keys.Details):
			m.details = !m.details
		}
	}

	return m, nil
}

// View renders the current round
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Poker Hand Analyzer ♦ ♣ "))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.round == nil:
		b.WriteString(InfoStyle.Render("Dealing..."))
		b.WriteString("\n")
	default:
		b.WriteString(InfoStyle.Render(fmt.Sprintf("Deal #%d  seed %d", m.deals, m.round.Seed)))
		b.WriteString("\n\n")
		b.WriteString(HandInfoStyle.Render("--- WINNING HAND ORDER ---"))
		b.WriteString("\n")
		for i, h := range m.round.Ranked() {
			b.WriteString(m.renderHand(i, h))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderHand(pos int, h *evaluator.Hand) string {
	cards := make([]string, 0, evaluator.HandSize)
	for _, c := range h.Unsorted() {
		cards = append(cards, renderCard(c))
	}

	category := h.Category().String()
	if pos == 0 {
		category = WinnerStyle.Render(category)
	}
	line := fmt.Sprintf("%d. %s - %s", pos+1, strings.Join(cards, " "), category)

	if m.details {
		scores := h.Scores()
		strs := make([]string, 0, len(scores))
		for i, c := range h.Cards() {
			strs = append(strs, fmt.Sprintf("%s=%s", c, scores[i]))
		}
		line += "\n   " + InfoStyle.Render(strings.Join(strs, " "))
	}
	return line
}

func renderCard(c deck.Card) string {
	s := fmt.Sprintf("%3s", c.Pretty())
	if c.IsRed() {
		return RedCardStyle.Render(s)
	}
	return BlackCardStyle.Render(s)
}
