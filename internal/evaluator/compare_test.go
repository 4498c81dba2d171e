package evaluator

import (
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/randutil"
)

// one hand per category, weakest first
var categorySamples = []struct {
	category Category
	cards    string
}{
	{HighCard, "AS,KH,QD,9S,7C"},
	{OnePair, "2S,2H,3D,4C,5S"},
	{TwoPair, "3S,3H,2D,2C,4S"},
	{ThreeOfAKind, "2S,2H,2D,3C,4S"},
	{Straight, "AS,2H,3D,4C,5S"},
	{Flush, "2C,3C,4C,5C,7C"},
	{FullHouse, "2S,2H,2D,3C,3S"},
	{FourOfAKind, "2S,2H,2D,2C,3S"},
	{StraightFlush, "AD,2D,3D,4D,5D"},
	{RoyalFlush, "10D,JD,QD,KD,AD"},
}

func TestCompareAcrossCategories(t *testing.T) {
	for i, weaker := range categorySamples {
		lo := MustNewHand(weaker.cards)
		require.Equal(t, weaker.category, lo.Category())

		for _, stronger := range categorySamples[i+1:] {
			hi := MustNewHand(stronger.cards)
			assert.Positive(t, hi.Compare(lo), "%s should beat %s", stronger.category, weaker.category)
			assert.Negative(t, lo.Compare(hi), "%s should lose to %s", weaker.category, stronger.category)
			assert.True(t, lo.Less(hi))
		}
	}
}

func TestCompareWithItself(t *testing.T) {
	for _, sample := range categorySamples {
		t.Run(sample.category.String(), func(t *testing.T) {
			h := MustNewHand(sample.cards)
			assert.Zero(t, h.Compare(h))
			assert.Zero(t, h.Compare(MustNewHand(sample.cards)))
			assert.True(t, h.Equals(MustNewHand(sample.cards)))
		})
	}
}

func TestCompareWithinCategory(t *testing.T) {
	tests := []struct {
		name     string
		stronger string
		weaker   string
	}{
		{"higher pair", "AS,AH,2D,3C,4S", "KS,KH,QD,JC,9S"},
		{"higher kicker", "KS,KH,9D,5C,3D", "KD,KC,8H,5S,2C"},
		{"equal pair faces fall to kicker suit", "KD,KC,9S,5H,2C", "KS,KH,9D,5C,2D"},
		{"higher top pair", "JS,JH,3D,3C,2S", "10S,10H,9D,9C,AS"},
		{"six high straight beats the wheel", "2S,3H,4D,5C,6S", "AS,2H,3D,4C,5S"},
		{"broadway beats king high straight", "10D,JS,QH,KC,AS", "9D,10S,JH,QC,KS"},
		{"flush decided by suit when faces match", "2S,5S,7S,9S,JS", "2H,5H,7H,9H,JH"},
		{"higher high card", "AS,7H,5D,3C,2S", "KS,QH,JD,9C,8S"},
		{"higher quads", "3S,3H,3D,3C,2S", "2D,2H,2S,2C,AS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hi := MustNewHand(tt.stronger)
			lo := MustNewHand(tt.weaker)
			require.Equal(t, hi.Category(), lo.Category())
			assert.Positive(t, hi.Compare(lo))
			assert.Negative(t, lo.Compare(hi))
			assert.Equal(t, hi.Compare(lo), -lo.Compare(hi))
		})
	}
}

func TestCompareReturnsScoreDifference(t *testing.T) {
	a := MustNewHand("KS,KH,9D,5C,2D")
	b := MustNewHand("KD,KC,9S,5H,2C")
	// pairs tie; first kicker 9D vs 9S after the suit pass
	assert.Equal(t, -3, a.Compare(b))
}

func TestStraightFlushBeatsFourOfAKind(t *testing.T) {
	sf := MustNewHand("2D,3D,4D,5D,6D")
	quads := MustNewHand("AS,AH,AC,AD,KS")

	assert.Equal(t, StraightFlush, sf.Category())
	assert.Equal(t, FourOfAKind, quads.Category())
	assert.Positive(t, sf.Compare(quads))
	assert.True(t, sf.IsStrongerThan(quads))
}

func TestRank(t *testing.T) {
	hands := []*Hand{
		MustNewHand("AS,KH,QD,9S,7C"),
		MustNewHand("2D,3D,4D,5D,6D"),
		MustNewHand("KS,KH,2D,5C,9H"),
		MustNewHand("AH,AC,AD,KD,2S"),
		MustNewHand("7S,7H,7C,KC,KH"),
	}

	ranked := Rank(hands)
	require.Len(t, ranked, len(hands))

	var got []Category
	for _, h := range ranked {
		got = append(got, h.Category())
	}
	assert.Equal(t, []Category{StraightFlush, FullHouse, ThreeOfAKind, OnePair, HighCard}, got)
	assert.Equal(t, HighCard, hands[0].Category(), "input slice is left alone")

	assert.Empty(t, Rank(nil))
}

func TestExplain(t *testing.T) {
	flush := MustNewHand("2C,3C,4C,5C,7C")
	straight := MustNewHand("AS,2H,3D,4C,5S")

	result, why := flush.Explain(straight)
	assert.Positive(t, result)
	assert.Equal(t, "Flush beats Straight", why)

	result, why = straight.Explain(flush)
	assert.Negative(t, result)
	assert.Equal(t, "Flush beats Straight", why)

	result, why = flush.Explain(flush)
	assert.Zero(t, result)
	assert.Equal(t, "hands tie", why)

	_, why = MustNewHand("AS,AH,2D,3C,4S").Explain(MustNewHand("KS,KH,QD,JC,9S"))
	assert.Equal(t, "One Pair wins on higher key card 1 (AS vs KS)", why)

	_, why = MustNewHand("KD,KC,9S,5H,2C").Explain(MustNewHand("KS,KH,9D,5C,2D"))
	assert.Equal(t, "One Pair wins on suit at kicker 3 (9S vs 9D)", why)
}

func TestIdempotentEvaluation(t *testing.T) {
	reference := MustNewHand("QS,QH,QD,4C,9S")
	cards := deck.MustParseCards("JS,JH,4D,4C,9C")

	first, err := NewHand(cards)
	require.NoError(t, err)
	second, err := NewHand(cards)
	require.NoError(t, err)

	assert.Equal(t, first.Category(), second.Category())
	assert.Equal(t, first.Compare(reference), second.Compare(reference))
	assert.Equal(t, first.Compare(reference), first.Compare(reference))
}

// randomHands deals n hands from one shuffled deck per round
func randomHands(t *testing.T, seed int64, rounds int) [][]*Hand {
	t.Helper()
	rng := randutil.New(seed)

	var out [][]*Hand
	for range rounds {
		d := deck.NewDeck(rng)
		d.Shuffle()
		dealt, err := d.DealHands(10, HandSize)
		require.NoError(t, err)

		round := make([]*Hand, 0, len(dealt))
		for _, cards := range dealt {
			h, err := NewHand(cards)
			require.NoError(t, err)
			round = append(round, h)
		}
		out = append(out, round)
	}
	return out
}

func TestCompareProperties(t *testing.T) {
	for _, round := range randomHands(t, 2024, 200) {
		for i, a := range round {
			for _, b := range round[i+1:] {
				ab, ba := a.Compare(b), b.Compare(a)
				assert.Equal(t, ab, -ba, "antisymmetry %s / %s", a, b)
				assert.NotZero(t, ab, "distinct cards never tie: %s / %s", a, b)

				if a.Category() != b.Category() {
					assert.Equal(t, a.Category() > b.Category(), ab > 0, "category decides %s / %s", a, b)
				}
			}
		}
	}
}

// referenceCard converts a card for the independent evaluator, where the ace is rank 1
func referenceCard(t *testing.T, c deck.Card) poker.Card {
	t.Helper()
	rank := c.FaceValue()
	if c.Face == deck.Ace {
		rank = 1
	}

	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	}

	card, err := poker.MakeCard(suit, poker.Rank(rank))
	require.NoError(t, err)
	return card
}

func referenceEval(t *testing.T, h *Hand) int16 {
	t.Helper()
	var cards [5]poker.Card
	for i, c := range h.Unsorted() {
		cards[i] = referenceCard(t, c)
	}
	return poker.Eval5(&cards)
}

func TestCategoryOrderMatchesReferenceEvaluator(t *testing.T) {
	for _, round := range randomHands(t, 77, 100) {
		for i, a := range round {
			for _, b := range round[i+1:] {
				if a.Category() == b.Category() {
					continue
				}
				ours := a.Compare(b) > 0
				theirs := referenceEval(t, a) > referenceEval(t, b)
				assert.Equal(t, theirs, ours, "%s (%s) vs %s (%s)", a, a.Category(), b, b.Category())
			}
		}
	}
}
