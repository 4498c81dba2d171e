package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	"github.com/lox/pokerhands/internal/fileutil"
	"github.com/lox/pokerhands/internal/session"
	"github.com/lox/pokerhands/internal/tui"
)

// DealCmd deals a random round
type DealCmd struct {
	Hands       int    `short:"n" help:"Number of hands to deal (default from config, 6)"`
	Seed        int64  `short:"s" help:"Shuffle seed for a reproducible deal (0 uses the clock)"`
	Interactive bool   `short:"i" help:"Open the interactive viewer"`
	Save        string `type:"path" help:"Write the dealt hands to a hand file for replay with the file command"`

	clock quartz.Clock `kong:"-"`
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	hands := e.cfg.Deal.Hands
	if c.Hands != 0 {
		hands = c.Hands
	}
	seed := e.cfg.Deal.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}

	clock := c.clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	dealer := session.NewDealer(e.logger, clock)

	if c.Interactive {
		p := tea.NewProgram(tui.NewModel(dealer, e.logger, hands, seed), tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	round, err := dealer.Deal(seed, hands)
	if err != nil {
		return err
	}
	e.logger.Info("Using seed", "seed", round.Seed)

	p := e.printer
	p.Banner()
	p.RandomMode(round.Seed)
	if e.cfg.ShowDeck() {
		p.Deck("*** Shuffled 52 card deck:", round.Deck)
	}
	p.Hands(fmt.Sprintf("*** Here are the %s hands...", countWord(len(round.Hands))), round.Hands)
	if e.cfg.ShowDeck() {
		p.Deck("*** Here is what remains in the deck...", round.Remaining)
	}
	p.WinningOrder(round.Ranked())

	if c.Save != "" {
		if err := fileutil.WriteFileAtomic(c.Save, round.HandFile(), 0o644); err != nil {
			return fmt.Errorf("failed to save hands: %w", err)
		}
		e.logger.Info("Saved hands", "path", c.Save, "hands", len(round.Hands))
	}
	return nil
}

func countWord(n int) string {
	words := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}
	if n >= 0 && n < len(words) {
		return words[n]
	}
	return fmt.Sprintf("%d", n)
}
