// Package session produces rounds of evaluated hands, either dealt from a
// shuffled deck or read from a hand file.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/randutil"
)

// DefaultHands is the number of hands dealt or read per round
const DefaultHands = 6

// MaxHands is the largest round a single deck can deal
const MaxHands = deck.Size / evaluator.HandSize

// ErrDuplicateCard matches any *DuplicateCardError
var ErrDuplicateCard = errors.New("duplicate card")

// DuplicateCardError reports a card seen twice in one session
type DuplicateCardError struct {
	Card deck.Card
	Line int
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card %s on line %d", e.Card, e.Line)
}

// Is lets errors.Is match ErrDuplicateCard
func (e *DuplicateCardError) Is(target error) bool {
	return target == ErrDuplicateCard
}

// Round is one set of hands ready for ranking
type Round struct {
	Seed      int64       // seed used to shuffle, zero for file input
	Deck      []deck.Card // shuffled deck before dealing
	Remaining []deck.Card // cards left after dealing
	Lines     []string    // raw input lines, for file input
	Hands     []*evaluator.Hand
}

// Ranked returns the hands strongest first
func (r *Round) Ranked() []*evaluator.Hand {
	return evaluator.Rank(r.Hands)
}

// Winner returns the strongest hand, or nil for an empty round
func (r *Round) Winner() *evaluator.Hand {
	ranked := r.Ranked()
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}

// HandFile renders the hands in the format ReadHands accepts, one hand per
// line in dealt order
func (r *Round) HandFile() []byte {
	var b strings.Builder
	for _, h := range r.Hands {
		cards := h.Unsorted()
		strs := make([]string, len(cards))
		for i, c := range cards {
			strs[i] = c.String()
		}
		b.WriteString(strings.Join(strs, ", "))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Dealer builds rounds
type Dealer struct {
	logger *log.Logger
	clock  quartz.Clock
}

// NewDealer creates a dealer. The clock seeds shuffles when no seed is given.
func NewDealer(logger *log.Logger, clock quartz.Clock) *Dealer {
	return &Dealer{
		logger: logger.WithPrefix("session"),
		clock:  clock,
	}
}

// Deal shuffles a fresh deck and deals handCount hands of five cards. A zero
// seed is replaced by one derived from the clock and recorded in the round.
func (d *Dealer) Deal(seed int64, handCount int) (*Round, error) {
	if handCount < 1 || handCount > MaxHands {
		return nil, fmt.Errorf("hand count must be between 1 and %d, got %d", MaxHands, handCount)
	}

	seed = randutil.Seed(d.clock, seed)
	cards := deck.NewDeck(randutil.New(seed))
	cards.Shuffle()

	round := &Round{
		Seed: seed,
		Deck: cards.Cards(),
	}

	dealt, err := cards.DealHands(handCount, evaluator.HandSize)
	if err != nil {
		return nil, fmt.Errorf("failed to deal: %w", err)
	}
	round.Remaining = cards.Cards()

	for i, hand := range dealt {
		h, err := evaluator.NewHand(hand)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		d.logger.Debug("Hand evaluated", "hand", h, "category", h.Category())
		round.Hands = append(round.Hands, h)
	}

	d.logger.Debug("Dealt round", "seed", seed, "hands", handCount, "remaining", len(round.Remaining))
	return round, nil
}

// ReadFile reads a round from a hand file. See ReadHands.
func (d *Dealer) ReadFile(path string, maxHands int) (*Round, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hand file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			d.logger.Warn("Failed to close hand file", "path", path, "error", err)
		}
	}()

	return d.ReadHands(f, maxHands)
}

// ReadHands reads one hand per non-empty line, cards separated by commas,
// stopping after maxHands hands. Cards must be unique across the whole input.
//
// On a duplicate card the returned round holds the lines read so far and no
// hands, alongside a *DuplicateCardError.
func (d *Dealer) ReadHands(r io.Reader, maxHands int) (*Round, error) {
	if maxHands < 1 {
		maxHands = DefaultHands
	}

	round := &Round{}
	seen := make(map[deck.Card]bool)
	var hands [][]deck.Card

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for len(hands) < maxHands && scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		round.Lines = append(round.Lines, line)

		cards, err := deck.ParseCards(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		for _, c := range cards {
			if seen[c] {
				d.logger.Warn("Duplicate card found", "card", c, "line", lineNo)
				return round, &DuplicateCardError{Card: c, Line: lineNo}
			}
			seen[c] = true
		}

		if len(cards) != evaluator.HandSize {
			return nil, fmt.Errorf("line %d: %w, got %d", lineNo, evaluator.ErrHandSize, len(cards))
		}
		hands = append(hands, cards)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}

	// evaluation starts only once the whole input is known to be duplicate free
	for i, cards := range hands {
		h, err := evaluator.NewHand(cards)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		d.logger.Debug("Hand evaluated", "hand", h, "category", h.Category())
		round.Hands = append(round.Hands, h)
	}

	d.logger.Debug("Read round", "hands", len(round.Hands))
	return round, nil
}
