// Package display renders decks, hands and rankings as styled text.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/session"
)

// cardsPerRow matches one suit per row for an ordered deck
const cardsPerRow = 13

// Printer writes styled output to a writer
type Printer struct {
	w io.Writer

	titleStyle    lipgloss.Style
	headerStyle   lipgloss.Style
	redStyle      lipgloss.Style
	blackStyle    lipgloss.Style
	categoryStyle lipgloss.Style
	winnerStyle   lipgloss.Style
	errorStyle    lipgloss.Style
}

// New creates a printer. With color disabled the output is plain text.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:             w,
		titleStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")),
		headerStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		redStyle:      r.NewStyle().Foreground(lipgloss.Color("9")),
		blackStyle:    r.NewStyle().Foreground(lipgloss.Color("15")),
		categoryStyle: r.NewStyle().Foreground(lipgloss.Color("12")),
		winnerStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		errorStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Banner prints the program title
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.titleStyle.Render("*** P O K E R   H A N D   A N A L Y Z E R ***"))
	fmt.Fprintln(p.w)
}

// RandomMode prints the header for a shuffled deal
func (p *Printer) RandomMode(seed int64) {
	fmt.Fprintln(p.w, p.headerStyle.Render("*** USING RANDOMIZED DECK OF CARDS ***"))
	fmt.Fprintf(p.w, "*** Seed: %d\n", seed)
	fmt.Fprintln(p.w)
}

// FileMode prints the header for a hand file and echoes its lines
func (p *Printer) FileMode(path string, lines []string) {
	fmt.Fprintln(p.w, p.headerStyle.Render("*** USING TEST DECK ***"))
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "*** File: %s\n", path)
	for _, line := range lines {
		fmt.Fprintln(p.w, line)
	}
	fmt.Fprintln(p.w)
}

// Deck prints cards under a title, thirteen per row
func (p *Printer) Deck(title string, cards []deck.Card) {
	fmt.Fprintln(p.w, p.headerStyle.Render(title))
	for i := 0; i < len(cards); i += cardsPerRow {
		row := cards[i:min(i+cardsPerRow, len(cards))]
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, p.card(c))
		}
		fmt.Fprintln(p.w, strings.Join(cells, " "))
	}
	fmt.Fprintln(p.w)
}

// Hands prints each hand's cards in dealt order
func (p *Printer) Hands(title string, hands []*evaluator.Hand) {
	fmt.Fprintln(p.w, p.headerStyle.Render(title))
	for _, h := range hands {
		fmt.Fprintln(p.w, p.hand(h))
	}
	fmt.Fprintln(p.w)
}

// WinningOrder prints ranked hands with their categories, strongest first
func (p *Printer) WinningOrder(ranked []*evaluator.Hand) {
	fmt.Fprintln(p.w, p.headerStyle.Render("--- WINNING HAND ORDER ---"))
	for i, h := range ranked {
		line := fmt.Sprintf("%s - %s", p.hand(h), p.categoryStyle.Render(h.Category().String()))
		if i == 0 {
			line = fmt.Sprintf("%s - %s", p.hand(h), p.winnerStyle.Render(h.Category().String()))
		}
		fmt.Fprintln(p.w, line)
	}
}

// Breakdown prints a table of ranked hands with canonical order and the
// reason each hand beats the next.
func (p *Printer) Breakdown(ranked []*evaluator.Hand) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tHAND\tCATEGORY\tKEY CARDS\tKICKERS\tVERSUS NEXT")
	for i, h := range ranked {
		reason := "-"
		if i+1 < len(ranked) {
			_, reason = h.Explain(ranked[i+1])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, h, h.Category(), joinCards(h.KeyCards()), joinCards(h.Kickers()), reason)
	}
	return tw.Flush()
}

// Duplicate prints the duplicate-card abort message
func (p *Printer) Duplicate(err *session.DuplicateCardError) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.errorStyle.Render("*** ERROR - DUPLICATED CARD FOUND IN DECK ***"))
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "*** DUPLICATE: %s ***\n", err.Card)
}

func (p *Printer) card(c deck.Card) string {
	s := fmt.Sprintf("%3s", c.String())
	if c.IsRed() {
		return p.redStyle.Render(s)
	}
	return p.blackStyle.Render(s)
}

func (p *Printer) hand(h *evaluator.Hand) string {
	cells := make([]string, 0, evaluator.HandSize)
	for _, c := range h.Unsorted() {
		cells = append(cells, p.card(c))
	}
	return strings.Join(cells, " ")
}

func joinCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	strs := make([]string, 0, len(cards))
	for _, c := range cards {
		strs = append(strs, c.String())
	}
	return strings.Join(strs, " ")
}
