package poker

import "slices"

// Straight reports whether the five ranks form an unbroken run, returning the
// top rank. The run is followed upwards from the lowest card, so A-2-3-4-5 is
// not a straight.
func (h Hand) Straight() (Rank, bool) {
	rank := h.sortedRanks()[0]
	for step := 0; step < HandSize-1; step++ {
		next, ok := rank.Next()
		if !ok || !h.ContainsRank(next) {
			return 0, false
		}
		rank = next
	}

	return h.HighestRank(), true
}

// Flush reports whether all five cards share a suit, returning the highest
// rank.
func (h Hand) Flush() (Rank, bool) {
	for _, c := range h[1:] {
		if c.Suit != h[0].Suit {
			return 0, false
		}
	}
	return h.HighestRank(), true
}

// StraightFlush requires both the suit check and the rank sequence check.
func (h Hand) StraightFlush() (Rank, bool) {
	if _, ok := h.Flush(); !ok {
		return 0, false
	}
	return h.Straight()
}

// RoyalFlush is an Ace high straight flush.
func (h Hand) RoyalFlush() (Rank, bool) {
	top, ok := h.StraightFlush()
	if !ok || top != Ace {
		return 0, false
	}
	return top, true
}

func (h Hand) FourOfAKind() (Rank, bool) {
	return h.XOfAKind(4)
}

// FullHouse returns the rank of the triple when the hand is three of one rank
// and two of another.
func (h Hand) FullHouse() (Rank, bool) {
	if !countsMatch(h.RankCounts(), 2, 3) {
		return 0, false
	}
	return h.XOfAKind(3)
}

func (h Hand) ThreeOfAKind() (Rank, bool) {
	return h.XOfAKind(3)
}

// TwoPair returns the higher paired rank when the hand holds two pairs and a
// single card.
func (h Hand) TwoPair() (Rank, bool) {
	if !countsMatch(h.RankCounts(), 1, 2, 2) {
		return 0, false
	}
	return h.XOfAKind(2)
}

func (h Hand) OnePair() (Rank, bool) {
	return h.XOfAKind(2)
}

// countsMatch reports whether counts is a permutation of want.
func countsMatch(counts []int, want ...int) bool {
	if len(counts) != len(want) {
		return false
	}
	got := slices.Clone(counts)
	slices.Sort(got)
	return slices.Equal(got, want)
}
