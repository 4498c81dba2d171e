package evaluator

// Category is the poker category of a five-card hand, weakest first
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// royalBonus is added on top of the straight flush base for an ace-high
// straight flush.
const royalBonus = 1000

var baseScores = [...]int{
	HighCard:      1000,
	OnePair:       2000,
	TwoPair:       3000,
	ThreeOfAKind:  4000,
	Straight:      5000,
	Flush:         6000,
	FullHouse:     7000,
	FourOfAKind:   8000,
	StraightFlush: 9000,
	RoyalFlush:    9000 + royalBonus,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// BaseScore returns the fixed offset that orders categories before any
// per-card tie-break.
func (c Category) BaseScore() int {
	if c < HighCard || c > RoyalFlush {
		return 0
	}
	return baseScores[c]
}

// scoresSuit reports whether the primary scoring pass adds suit weight.
// Pair categories leave suit out so that equal pairs tie on the key cards.
func (c Category) scoresSuit() bool {
	switch c {
	case OnePair, TwoPair:
		return false
	default:
		return true
	}
}
