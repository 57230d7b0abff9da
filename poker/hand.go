package poker

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is exactly five cards kept in the order they were parsed.
// Duplicate cards are not rejected.
type Hand [HandSize]Card

// ParseHand parses five whitespace separated card codes, e.g.
// "8C TS KC 9H 4S". Non-space characters are consumed two at a time, so the
// separators themselves are optional.
func ParseHand(s string) (Hand, error) {
	var (
		hand    Hand
		count   int
		pending []rune
	)

	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		pending = append(pending, r)
		if len(pending) < 2 {
			continue
		}

		code := string(pending)
		pending = pending[:0]

		if count == HandSize {
			return Hand{}, fmt.Errorf("%w: more than %d cards in %q", ErrInvalidHandFormat, HandSize, s)
		}
		card, err := ParseCard(code)
		if err != nil {
			return Hand{}, fmt.Errorf("%w: card %d: %w", ErrInvalidHandFormat, count+1, err)
		}
		hand[count] = card
		count++
	}

	if len(pending) != 0 {
		return Hand{}, fmt.Errorf("%w: incomplete card %q in %q", ErrInvalidHandFormat, string(pending), s)
	}
	if count < HandSize {
		return Hand{}, fmt.Errorf("%w: found %d cards, want %d", ErrInvalidHandFormat, count, HandSize)
	}

	return hand, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	hand, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return hand
}

// Card returns the card in slot i.
func (h Hand) Card(i int) (Card, error) {
	if i < 0 || i >= HandSize {
		return Card{}, fmt.Errorf("card index %d out of range [0,%d)", i, HandSize)
	}
	return h[i], nil
}

// String returns the hand in its input format.
func (h Hand) String() string {
	parts := make([]string, HandSize)
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Ranks returns the five ranks in hand order.
func (h Hand) Ranks() [HandSize]Rank {
	var ranks [HandSize]Rank
	for i, c := range h {
		ranks[i] = c.Rank
	}
	return ranks
}

// sortedRanks returns the five ranks in ascending order.
func (h Hand) sortedRanks() [HandSize]Rank {
	ranks := h.Ranks()
	slices.Sort(ranks[:])
	return ranks
}

// RankCounts returns the sizes of the runs of equal ranks, scanning the ranks
// in ascending order. [2 2 3 3 3] gives [2 3].
func (h Hand) RankCounts() []int {
	ranks := h.sortedRanks()

	counts := make([]int, 0, HandSize)
	run := 1
	for i := 1; i < HandSize; i++ {
		if ranks[i] == ranks[i-1] {
			run++
			continue
		}
		counts = append(counts, run)
		run = 1
	}
	return append(counts, run)
}

// ContainsRank reports whether any card has rank r.
func (h Hand) ContainsRank(r Rank) bool {
	for _, c := range h {
		if c.Rank == r {
			return true
		}
	}
	return false
}

// HighestRank returns the highest rank in the hand.
func (h Hand) HighestRank() Rank {
	highest := h[0].Rank
	for _, c := range h[1:] {
		if c.Rank > highest {
			highest = c.Rank
		}
	}
	return highest
}

// XOfAKind returns the highest rank held by at least x cards.
func (h Hand) XOfAKind(x int) (Rank, bool) {
	var counts [Ace + 1]int
	for _, c := range h {
		counts[c.Rank]++
	}

	for r := Ace; r >= Two; r-- {
		if counts[r] >= x {
			return r, true
		}
	}
	return 0, false
}
