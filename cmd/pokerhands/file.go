package main

import (
	"errors"
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/pokerhands/internal/session"
)

// FileCmd ranks the hands in a file
type FileCmd struct {
	Path     string `arg:"" help:"Hand file, one comma-separated hand per line" type:"existingfile"`
	MaxHands int    `help:"Maximum number of hands to read" default:"6"`
}

func (c *FileCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	dealer := session.NewDealer(e.logger, quartz.NewReal())
	round, err := dealer.ReadFile(c.Path, c.MaxHands)

	var dup *session.DuplicateCardError
	if errors.As(err, &dup) {
		e.printer.Banner()
		e.printer.FileMode(c.Path, round.Lines)
		e.printer.Duplicate(dup)
		return fmt.Errorf("ranking aborted: %w", err)
	}
	if err != nil {
		return err
	}

	p := e.printer
	p.Banner()
	p.FileMode(c.Path, round.Lines)
	p.Hands(fmt.Sprintf("*** Here are the %s hands...", countWord(len(round.Hands))), round.Hands)
	p.WinningOrder(round.Ranked())
	return nil
}
