package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/pokerhands/internal/session"
)

// RankCmd ranks hands passed on the command line
type RankCmd struct {
	Hands   []string `arg:"" help:"Hands in the form 'AS,KS,QS,JS,10S'"`
	Explain bool     `short:"e" help:"Show key cards, kickers and why each hand beats the next"`
}

func (c *RankCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	// one hand per line, so duplicates across arguments are caught too
	dealer := session.NewDealer(e.logger, quartz.NewReal())
	round, err := dealer.ReadHands(strings.NewReader(strings.Join(c.Hands, "\n")), len(c.Hands))

	var dup *session.DuplicateCardError
	if errors.As(err, &dup) {
		e.printer.Duplicate(dup)
		return fmt.Errorf("ranking aborted: %w", err)
	}
	if err != nil {
		return err
	}

	ranked := round.Ranked()
	if c.Explain {
		return e.printer.Breakdown(ranked)
	}
	e.printer.WinningOrder(ranked)
	return nil
}
