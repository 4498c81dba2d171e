package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a card is built from a face or suit outside
// the standard 52-card deck.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit. The declaration order is the tie-break order,
// lowest first.
type Suit int

const (
	Diamonds Suit = iota + 1
	Clubs
	Hearts
	Spades
)

// Suits lists every suit in tie-break order
var Suits = [...]Suit{Diamonds, Clubs, Hearts, Spades}

// String returns the single letter used in card notation
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol
func (s Suit) Symbol() string {
	switch s {
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Spades
}

// Weight returns the tie-break weight of the suit, 1 (Diamonds) to 4 (Spades).
// It never ranks suits strategically; it only separates otherwise equal cards.
func (s Suit) Weight() int {
	if !s.Valid() {
		return 0
	}
	return int(s)
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Face represents a card rank
type Face int

const (
	Two Face = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the face as written in card notation ("10" for Ten)
func (f Face) String() string {
	switch f {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if f >= Two && f < Ten {
			return fmt.Sprintf("%d", int(f))
		}
		return "?"
	}
}

// Valid reports whether f is between Two and Ace
func (f Face) Valid() bool {
	return f >= Two && f <= Ace
}

// Value returns the numeric rank of the face, 2 through 14 (Ace high)
func (f Face) Value() int {
	if !f.Valid() {
		return 0
	}
	return int(f)
}

// Card is an immutable playing card
type Card struct {
	Face Face
	Suit Suit
}

// NewCard creates a card, rejecting faces and suits outside the deck
func NewCard(face Face, suit Suit) (Card, error) {
	if !face.Valid() {
		return Card{}, fmt.Errorf("%w: face %d", ErrInvalidCard, int(face))
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, int(suit))
	}
	return Card{Face: face, Suit: suit}, nil
}

// Valid reports whether both face and suit are recognised
func (c Card) Valid() bool {
	return c.Face.Valid() && c.Suit.Valid()
}

// String returns the card in "{face}{suit}" notation, e.g. "AS" or "10D"
func (c Card) String() string {
	return c.Face.String() + c.Suit.String()
}

// Pretty returns the card with a unicode suit symbol, e.g. "A♠"
func (c Card) Pretty() string {
	return c.Face.String() + c.Suit.Symbol()
}

// FaceValue returns the numeric rank of the card, 2 through 14
func (c Card) FaceValue() int {
	return c.Face.Value()
}

// SuitValue returns the tie-break weight of the card's suit
func (c Card) SuitValue() int {
	return c.Suit.Weight()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Face == Ace
}
