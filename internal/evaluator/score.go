package evaluator

import (
	"fmt"

	"github.com/lox/pokerhands/internal/deck"
)

// Score is a per-card value in tenths of a point. Category base and face
// value count whole points; suit weight counts tenths, so a face difference
// always outweighs any suit contribution.
type Score int

const scoreScale = 10

// String renders the score with one decimal, e.g. "9014.4"
func (s Score) String() string {
	sign := ""
	if s < 0 {
		sign = "-"
		s = -s
	}
	return fmt.Sprintf("%s%d.%d", sign, s/scoreScale, s%scoreScale)
}

// primaryScore is the category pass: base + face, plus suit weight for every
// category except One Pair and Two Pair.
func primaryScore(category Category, c deck.Card) Score {
	s := Score((category.BaseScore() + c.FaceValue()) * scoreScale)
	if category.scoresSuit() {
		s += Score(c.SuitValue())
	}
	return s
}

// tiebreakScore is the secondary suit pass applied on top of the primary
// score when key cards tie.
func tiebreakScore(primary Score, c deck.Card) Score {
	return primary + Score(c.SuitValue())
}

// scoreCards stamps both passes for cards already in canonical order
func scoreCards(category Category, cards [HandSize]deck.Card) (primary, tiebreak [HandSize]Score) {
	for i, c := range cards {
		primary[i] = primaryScore(category, c)
		tiebreak[i] = tiebreakScore(primary[i], c)
	}
	return primary, tiebreak
}
