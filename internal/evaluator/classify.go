package evaluator

import (
	"slices"

	"github.com/lox/pokerhands/internal/deck"
)

// histogram counts cards per face value, indexed 2 through 14
type histogram [deck.Ace + 1]int

func newHistogram(cards []deck.Card) histogram {
	var h histogram
	for _, c := range cards {
		if c.Face.Valid() {
			h[c.Face]++
		}
	}
	return h
}

// count returns how many cards share face f
func (h histogram) count(f deck.Face) int {
	if !f.Valid() {
		return 0
	}
	return h[f]
}

// nOfAKind reports whether some face appears exactly n times
func (h histogram) nOfAKind(n int) bool {
	return slices.Contains(h[:], n)
}

// pairCount returns the number of faces appearing exactly twice
func (h histogram) pairCount() int {
	pairs := 0
	for _, n := range h {
		if n == 2 {
			pairs++
		}
	}
	return pairs
}

func isFlush(cards []deck.Card) bool {
	if len(cards) == 0 {
		return false
	}
	suit := cards[0].Suit
	for _, c := range cards[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// isStraight reports whether the faces are consecutive once sorted, counting
// A-2-3-4-5 (the wheel) as a straight.
func isStraight(cards []deck.Card) bool {
	if len(cards) != HandSize {
		return false
	}

	values := make([]int, 0, len(cards))
	for _, c := range cards {
		values = append(values, c.FaceValue())
	}
	slices.Sort(values)

	if slices.Equal(values, []int{2, 3, 4, 5, 14}) {
		return true
	}

	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

// Classify returns the category of five cards. Checks run strongest first
// and the first match wins, so a flush holding trips is a Flush and a full
// house is never reported as Three of a Kind.
func Classify(cards []deck.Card) Category {
	h := newHistogram(cards)
	flush := isFlush(cards)
	straight := isStraight(cards)

	switch {
	case flush && straight && h.count(deck.Ace) > 0 && h.count(deck.King) > 0:
		return RoyalFlush
	case flush && straight:
		return StraightFlush
	case h.nOfAKind(4):
		return FourOfAKind
	case h.nOfAKind(3) && h.nOfAKind(2):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case h.nOfAKind(3):
		return ThreeOfAKind
	case h.pairCount() == 2:
		return TwoPair
	case h.nOfAKind(2):
		return OnePair
	default:
		return HighCard
	}
}
