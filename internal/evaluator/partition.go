package evaluator

import (
	"cmp"
	"slices"

	"github.com/lox/pokerhands/internal/deck"
)

// Partition splits cards into key cards, whose face repeats, and kickers,
// whose face is unique. Each group is sorted strongest first by face, then by
// suit weight.
func Partition(cards []deck.Card) (keys, kickers []deck.Card) {
	h := newHistogram(cards)

	keys = make([]deck.Card, 0, len(cards))
	kickers = make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		if h.count(c.Face) > 1 {
			keys = append(keys, c)
		} else {
			kickers = append(kickers, c)
		}
	}

	slices.SortFunc(keys, byStrengthDesc)
	slices.SortFunc(kickers, byStrengthDesc)
	return keys, kickers
}

// canonicalOrder returns key cards followed by kickers, and the number of key
// cards. In a wheel the ace is moved to the end so it plays low.
func canonicalOrder(cards []deck.Card) ([]deck.Card, int) {
	keys, kickers := Partition(cards)
	ordered := append(keys, kickers...)

	last := len(ordered) - 1
	if isStraight(ordered) && ordered[0].Face == deck.Ace && ordered[last].Face == deck.Two {
		ordered = append(ordered[1:], ordered[0])
	}

	return ordered, len(keys)
}

func byStrengthDesc(a, b deck.Card) int {
	if c := cmp.Compare(b.FaceValue(), a.FaceValue()); c != 0 {
		return c
	}
	return cmp.Compare(b.SuitValue(), a.SuitValue())
}
