package evaluator

import (
	"fmt"
	"slices"
)

// Compare orders h against other. The result is the signed score difference
// at the first position that differs: negative if h is weaker, zero if the
// hands are equal, positive if h is stronger.
//
// Key-card positions are compared on primary scores, bounded by the smaller
// key-card count. Remaining positions are compared on tiebreak scores, which
// add the suit weight a second time.
func (h *Hand) Compare(other *Hand) int {
	d, _ := h.firstDifference(other)
	return d
}

// firstDifference returns the comparison result and the deciding position,
// or -1 when the hands tie.
func (h *Hand) firstDifference(other *Hand) (int, int) {
	bound := min(h.keyCount, other.keyCount)

	for i := range bound {
		if d := h.scores[i] - other.scores[i]; d != 0 {
			return int(d), i
		}
	}

	for i := bound; i < HandSize; i++ {
		if d := h.tiebreak[i] - other.tiebreak[i]; d != 0 {
			return int(d), i
		}
	}

	return 0, -1
}

// Compare is the package-level form of Hand.Compare, usable with slices.SortFunc
func Compare(a, b *Hand) int {
	return a.Compare(b)
}

// Less reports whether h is weaker than other
func (h *Hand) Less(other *Hand) bool {
	return h.Compare(other) < 0
}

// IsStrongerThan returns true if this hand beats the other hand
func (h *Hand) IsStrongerThan(other *Hand) bool {
	return h.Compare(other) > 0
}

// Equals returns true if both hands are equal in strength
func (h *Hand) Equals(other *Hand) bool {
	return h.Compare(other) == 0
}

// Rank returns the hands ordered strongest first. The input is not modified.
// Hands are sorted ascending and the result reversed.
func Rank(hands []*Hand) []*Hand {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, Compare)
	slices.Reverse(ranked)
	return ranked
}

// Explain compares two hands and returns the result with a short explanation
func (h *Hand) Explain(other *Hand) (int, string) {
	result, pos := h.firstDifference(other)
	if result == 0 {
		return 0, "hands tie"
	}

	winner, loser := h, other
	if result < 0 {
		winner, loser = other, h
	}

	if winner.category != loser.category {
		return result, fmt.Sprintf("%s beats %s", winner.category, loser.category)
	}

	kind := "kicker"
	if pos < min(winner.keyCount, loser.keyCount) {
		kind = "key card"
	}
	w, l := winner.cards[pos], loser.cards[pos]
	if w.Face == l.Face {
		return result, fmt.Sprintf("%s wins on suit at %s %d (%s vs %s)", winner.category, kind, pos+1, w, l)
	}
	return result, fmt.Sprintf("%s wins on higher %s %d (%s vs %s)", winner.category, kind, pos+1, w, l)
}
