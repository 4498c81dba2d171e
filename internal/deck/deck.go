package deck

import (
	"fmt"
	"math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates an ordered 52-card deck: Diamonds, Clubs, Hearts, Spades,
// each from Two to Ace. The rng is used by Shuffle.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{
		cards: Ordered(),
		rng:   rng,
	}
}

// Ordered returns the 52 cards in deck order
func Ordered() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for face := Two; face <= Ace; face++ {
			cards = append(cards, Card{Face: face, Suit: suit})
		}
	}
	return cards
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cards returns a copy of the cards still in the deck, top first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Deal removes and returns n cards from the top of the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("cannot deal %d cards, %d remaining", n, len(d.cards))
	}

	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// DealHands deals count hands of size cards each, one hand at a time
func (d *Deck) DealHands(count, size int) ([][]Card, error) {
	if count*size > len(d.cards) {
		return nil, fmt.Errorf("cannot deal %d hands of %d cards, %d remaining", count, size, len(d.cards))
	}

	hands := make([][]Card, 0, count)
	for range count {
		hand, err := d.Deal(size)
		if err != nil {
			return nil, err
		}
		hands = append(hands, hand)
	}
	return hands, nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
