// Package tui renders the table with bubbletea and drives the game loop:
// every tick applies one game update and then clears the key state.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/fourhanded/internal/controls"
	"github.com/lox/fourhanded/internal/deck"
	"github.com/lox/fourhanded/internal/game"
)

// tickMsg triggers one game update
type tickMsg time.Time

// Model is the bubbletea model for a local game
type Model struct {
	game     *game.Game
	in       *controls.Controls
	logger   *log.Logger
	keys     keyMap
	help     help.Model
	interval time.Duration
	human    int // seat whose cards are always shown, -1 for none

	width    int
	height   int
	quitting bool
	err      error
}

// New creates a model around g. in is the controls shared with any human
// actor; human is the seat played from the keyboard or -1.
func New(g *game.Game, in *controls.Controls, human int, interval time.Duration, logger *log.Logger) *Model {
	return &Model{
		game:     g,
		in:       in,
		logger:   logger.WithPrefix("tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		interval: interval,
		human:    human,
	}
}

// Err returns the error that stopped the game, if any
func (m *Model) Err() error {
	return m.err
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		for _, b := range m.keys.bindings() {
			if key.Matches(msg, b.binding) {
				m.in.Press(b.key)
			}
		}

	case tickMsg:
		if m.game.Phase == game.GameOver && m.in.IsPressed(controls.Confirm) {
			m.quitting = true
			return m, tea.Quit
		}
		err := m.game.Update(m.in)
		m.in.ReleaseAll()
		if err != nil {
			m.logger.Error("Game stopped", "error", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	seat := func(i int) string {
		if i >= len(m.game.Seats) {
			return ""
		}
		return m.renderSeat(i)
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Center, seat(1), "  ", m.renderFelt(), "  ", seat(3))
	table := lipgloss.JoinVertical(lipgloss.Center, seat(2), middle, seat(0))

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		table,
		"",
		m.renderStatus(),
		InfoStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) renderHeader() string {
	g := m.game
	title := fmt.Sprintf("Hand #%d", g.HandNumber)
	if g.Phase == game.Round {
		title += " · " + g.Round.Stage().String()
	}
	return HeaderStyle.Render(title)
}

func (m *Model) renderFelt() string {
	g := m.game
	cards := make([]string, 0, len(g.Table.Board))
	for _, bc := range g.Table.Board {
		if bc.Revealed {
			cards = append(cards, renderCard(bc.Card))
		} else {
			cards = append(cards, renderBack())
		}
	}
	board := strings.Join(cards, " ")
	if board == "" {
		board = InfoStyle.Render("shuffling")
	}

	pot := WarningStyle.Render(fmt.Sprintf("Pot: %d", g.Pot()))
	if g.Table.CurrentBet > 0 && g.Phase == game.Round {
		pot += "  " + WarningStyle.Render(fmt.Sprintf("Bet: %d", g.Table.CurrentBet))
	}
	return FeltStyle.Render(lipgloss.JoinVertical(lipgloss.Center, board, "", pot))
}

func (m *Model) renderSeat(i int) string {
	g := m.game
	s := g.Seats[i]

	var name strings.Builder
	name.WriteString(PlayerInfoStyle.Bold(true).Render(s.Name))
	if g.Table.Dealer == i {
		name.WriteString(" " + DealerChipStyle.Render(" D "))
	}
	if g.ActingSeat() == i {
		name.WriteString(" " + TurnChipStyle.Render(" T "))
	}

	lines := []string{name.String()}
	switch {
	case s.Eliminated:
		lines = append(lines, InfoStyle.Render("out"))
	default:
		lines = append(lines, PlayerInfoStyle.Render(fmt.Sprintf("Chips %3d  Bet %3d", s.Stack, s.Bet)))
		lines = append(lines, m.renderHole(i))
	}

	if sd := g.Showdown; sd != nil {
		if p := sd.Plays[i]; p != nil {
			line := p.String()
			if won := sd.Payouts[i]; won > 0 {
				line = SuccessStyle.Render(fmt.Sprintf(">>> %s +%d <<<", line, won))
			}
			lines = append(lines, line)
		}
	}

	style := SeatStyle
	if g.ActingSeat() == i {
		style = ActiveSeatStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHole(i int) string {
	s := m.game.Seats[i]
	if len(s.Hole) == 0 {
		return ""
	}
	if s.Folded {
		return InfoStyle.Render("folded")
	}

	faceUp := i == m.human || m.game.Phase == game.Resolving
	cards := make([]string, len(s.Hole))
	for n, c := range s.Hole {
		if faceUp {
			cards[n] = renderCard(c)
		} else {
			cards[n] = renderBack()
		}
	}
	return strings.Join(cards, " ")
}

func (m *Model) renderStatus() string {
	g := m.game
	switch g.Phase {
	case game.GameOver:
		for _, s := range g.Seats {
			if s.Stack > 0 {
				return SuccessStyle.Render(fmt.Sprintf("%s wins the game. Press enter to exit.", s.Name))
			}
		}
		return SuccessStyle.Render("Game over. Press enter to exit.")
	case game.Resolving:
		return HandInfoStyle.Render("Press enter for the next hand.")
	case game.Round:
		if m.human >= 0 && g.ActingSeat() == m.human && g.Round.BlindsPosted() {
			s := g.Seats[m.human]
			toCall := max(0, min(g.Table.CurrentBet-s.Bet, s.Stack))
			return HandInfoStyle.Render(fmt.Sprintf("Your turn: %d to call, minimum raise %d.",
				toCall, max(g.Table.BigBlind, g.Table.LastRaise)))
		}
		return InfoStyle.Render("Waiting...")
	}
	return ""
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(fmt.Sprintf(" %s ", c))
	}
	return BlackCardStyle.Render(fmt.Sprintf(" %s ", c))
}

func renderBack() string {
	return CardBackStyle.Render(" ▒▒ ")
}
