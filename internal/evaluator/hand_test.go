package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhands/internal/deck"
)

func TestNewHandRejectsWrongSize(t *testing.T) {
	for _, cards := range []string{"", "AS,KS,QS,JS", "AS,KS,QS,JS,10S,9S"} {
		_, err := NewHand(deck.MustParseCards(cards))
		assert.ErrorIs(t, err, ErrHandSize, "cards %q", cards)
	}
}

func TestNewHandRejectsInvalidCards(t *testing.T) {
	cards := deck.MustParseCards("AS,KS,QS,JS")
	cards = append(cards, deck.Card{Face: deck.Face(1), Suit: deck.Spades})

	_, err := NewHand(cards)
	assert.ErrorIs(t, err, deck.ErrInvalidCard)

	cards[4] = deck.Card{Face: deck.Ten}
	_, err = NewHand(cards)
	assert.ErrorIs(t, err, deck.ErrInvalidCard)
}

func TestNewHand(t *testing.T) {
	input := deck.MustParseCards("2S,9C,7D,7C,7H")
	h, err := NewHand(input)
	require.NoError(t, err)

	assert.Equal(t, ThreeOfAKind, h.Category())
	assert.Equal(t, deck.MustParseCards("7H,7C,7D,9C,2S"), h.Cards())
	assert.Equal(t, deck.MustParseCards("7H,7C,7D"), h.KeyCards())
	assert.Equal(t, deck.MustParseCards("9C,2S"), h.Kickers())
	assert.Equal(t, input, h.Unsorted())
	assert.Equal(t, "2S 9C 7D 7C 7H", h.String())

	// callers cannot reach the hand's storage
	input[0] = deck.Card{Face: deck.Ace, Suit: deck.Spades}
	h.Cards()[0] = deck.Card{Face: deck.Ace, Suit: deck.Spades}
	assert.Equal(t, "2S 9C 7D 7C 7H", h.String())
	assert.Equal(t, deck.Seven, h.Cards()[0].Face)
}

func TestWheelKickersPlayAceLow(t *testing.T) {
	h := MustNewHand("AD,2D,3D,4D,5D")
	assert.Equal(t, StraightFlush, h.Category())
	assert.Empty(t, h.KeyCards())
	assert.Equal(t, deck.MustParseCards("5D,4D,3D,2D,AD"), h.Kickers())
}

func TestScores(t *testing.T) {
	t.Run("suit counts outside pair categories", func(t *testing.T) {
		h := MustNewHand("2D,3D,4D,5D,6D")
		// (9000 + 6) points and 1 tenth for diamonds
		assert.Equal(t, Score(90061), h.Scores()[0])
		assert.Equal(t, Score(90062), h.TiebreakScores()[0])
		assert.Equal(t, "9006.1", h.Scores()[0].String())
	})

	t.Run("pairs leave suit out of the primary pass", func(t *testing.T) {
		h := MustNewHand("KS,KH,2D,5C,9H")
		assert.Equal(t, []Score{20130, 20130, 20090, 20050, 20020}, h.Scores())
		assert.Equal(t, []Score{20134, 20133, 20093, 20052, 20021}, h.TiebreakScores())
	})

	t.Run("two pair", func(t *testing.T) {
		h := MustNewHand("JS,JH,4D,4C,9S")
		assert.Equal(t, []Score{30110, 30110, 30040, 30040, 30090}, h.Scores())
	})

	t.Run("royal flush", func(t *testing.T) {
		h := MustNewHand("10S,JS,QS,KS,AS")
		assert.Equal(t, RoyalFlush, h.Category())
		assert.Equal(t, Score(100144), h.Scores()[0])
	})

	t.Run("scores do not accumulate across evaluations", func(t *testing.T) {
		cards := deck.MustParseCards("QS,QH,QD,4C,9S")
		first, err := NewHand(cards)
		require.NoError(t, err)
		second, err := NewHand(cards)
		require.NoError(t, err)

		assert.Equal(t, first.Scores(), second.Scores())
		first.Compare(second)
		first.Compare(second)
		assert.Equal(t, first.Scores(), second.Scores())
		assert.Equal(t, first.TiebreakScores(), second.TiebreakScores())
	})
}

func TestScoreString(t *testing.T) {
	assert.Equal(t, "0.0", Score(0).String())
	assert.Equal(t, "1014.4", Score(10144).String())
	assert.Equal(t, "-0.3", Score(-3).String())
}
