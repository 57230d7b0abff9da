package poker

import "fmt"

// Category enumerates the poker hand categories ordered from weakest to
// strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPairs:
		return "Two Pairs"
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

// Score is the primary comparison key of a hand: its category and the rank
// that defines it (the pair's rank for OnePair, the top card of a straight).
type Score struct {
	Category Category
	Rank     Rank
}

// String returns the score as e.g. "Two Pairs (9)".
func (s Score) String() string {
	return fmt.Sprintf("%s (%s)", s.Category, s.Rank)
}

// Compare orders scores by category and then by defining rank.
func (s Score) Compare(other Score) Ordering {
	switch {
	case s.Category > other.Category:
		return Greater
	case s.Category < other.Category:
		return Less
	case s.Rank > other.Rank:
		return Greater
	case s.Rank < other.Rank:
		return Less
	default:
		return Equal
	}
}

// detectors lists the category checks from strongest to weakest.
var detectors = [...]struct {
	category Category
	detect   func(Hand) (Rank, bool)
}{
	{RoyalFlush, Hand.RoyalFlush},
	{StraightFlush, Hand.StraightFlush},
	{FourOfAKind, Hand.FourOfAKind},
	{FullHouse, Hand.FullHouse},
	{Flush, Hand.Flush},
	{Straight, Hand.Straight},
	{ThreeOfAKind, Hand.ThreeOfAKind},
	{TwoPairs, Hand.TwoPair},
	{OnePair, Hand.OnePair},
}

// Classify returns the strongest category the hand satisfies together with
// its defining rank.
func Classify(h Hand) Score {
	for _, d := range detectors {
		if rank, ok := d.detect(h); ok {
			return Score{Category: d.category, Rank: rank}
		}
	}
	return Score{Category: HighCard, Rank: h.HighestRank()}
}
