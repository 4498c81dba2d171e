package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/pokerhands/internal/deck"
)

// HandSize is the only supported hand size
const HandSize = 5

// ErrHandSize is returned when a hand is built from other than five cards
var ErrHandSize = errors.New("hand must contain exactly 5 cards")

// Hand is a fully evaluated five-card hand. It is immutable once built:
// classification, ordering and both scoring passes happen in NewHand.
type Hand struct {
	cards    [HandSize]deck.Card // canonical order: key cards, then kickers
	unsorted [HandSize]deck.Card // input order, for display
	keyCount int
	category Category
	scores   [HandSize]Score // primary pass, aligned with cards
	tiebreak [HandSize]Score // primary plus suit pass, aligned with cards
}

// NewHand evaluates five cards
func NewHand(cards []deck.Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w, got %d", ErrHandSize, len(cards))
	}
	for i, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w at position %d: face %d suit %d", deck.ErrInvalidCard, i+1, int(c.Face), int(c.Suit))
		}
	}

	h := &Hand{}
	copy(h.unsorted[:], cards)

	ordered, keyCount := canonicalOrder(cards)
	copy(h.cards[:], ordered)
	h.keyCount = keyCount

	h.category = Classify(h.cards[:])
	h.scores, h.tiebreak = scoreCards(h.category, h.cards)

	return h, nil
}

// MustNewHand parses and evaluates a hand, panicking on error (for tests)
func MustNewHand(s string) *Hand {
	h, err := NewHand(deck.MustParseCards(s))
	if err != nil {
		panic(fmt.Sprintf("failed to build hand '%s': %v", s, err))
	}
	return h
}

// Category returns the hand's poker category
func (h *Hand) Category() Category {
	return h.category
}

// Cards returns the cards in canonical order
func (h *Hand) Cards() []deck.Card {
	return append([]deck.Card(nil), h.cards[:]...)
}

// Unsorted returns the cards in the order they were supplied
func (h *Hand) Unsorted() []deck.Card {
	return append([]deck.Card(nil), h.unsorted[:]...)
}

// KeyCards returns the cards whose face repeats, strongest first
func (h *Hand) KeyCards() []deck.Card {
	return append([]deck.Card(nil), h.cards[:h.keyCount]...)
}

// Kickers returns the cards whose face is unique, in canonical order
func (h *Hand) Kickers() []deck.Card {
	return append([]deck.Card(nil), h.cards[h.keyCount:]...)
}

// Scores returns the primary per-card scores, aligned with Cards
func (h *Hand) Scores() []Score {
	return append([]Score(nil), h.scores[:]...)
}

// TiebreakScores returns the per-card scores after the suit pass, aligned
// with Cards
func (h *Hand) TiebreakScores() []Score {
	return append([]Score(nil), h.tiebreak[:]...)
}

// String returns the unsorted cards joined by spaces, e.g. "AS 10D 3C 4H 9S"
func (h *Hand) String() string {
	strs := make([]string, 0, HandSize)
	for _, c := range h.unsorted {
		strs = append(strs, c.String())
	}
	return strings.Join(strs, " ")
}
