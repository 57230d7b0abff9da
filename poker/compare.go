package poker

import "fmt"

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns the ordering name.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Reverse swaps Greater and Less.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Compare compares two hands and returns:
// Less if a is weaker than b
// Equal if a and b tie
// Greater if a is stronger than b
//
// Hands are ordered by Score first. When the scores tie, both hands' ranks
// are sorted ascending and compared from the highest slot down.
func Compare(a, b Hand) Ordering {
	if o := Classify(a).Compare(Classify(b)); o != Equal {
		return o
	}
	return compareKickers(a, b)
}

func compareKickers(a, b Hand) Ordering {
	ra, rb := a.sortedRanks(), b.sortedRanks()
	for i := HandSize - 1; i >= 0; i-- {
		if ra[i] > rb[i] {
			return Greater
		}
		if ra[i] < rb[i] {
			return Less
		}
	}
	return Equal
}

// Explain compares two hands and returns the result with an explanation
func Explain(a, b Hand) (Ordering, string) {
	sa, sb := Classify(a), Classify(b)
	result := Compare(a, b)
	if result == Equal {
		return result, "hands tie"
	}

	winner, loser := sa, sb
	wh, lh := a, b
	if result == Less {
		winner, loser = sb, sa
		wh, lh = b, a
	}

	if winner.Category != loser.Category {
		return result, fmt.Sprintf("%s beats %s", winner.Category, loser.Category)
	}
	if winner.Rank != loser.Rank {
		return result, fmt.Sprintf("%s with higher rank (%s vs %s)",
			winner.Category, winner.Rank.Name(), loser.Rank.Name())
	}

	wr, lr := wh.sortedRanks(), lh.sortedRanks()
	for i := HandSize - 1; i >= 0; i-- {
		if wr[i] != lr[i] {
			return result, fmt.Sprintf("%s with higher kicker (%s vs %s)",
				winner.Category, wr[i].Name(), lr[i].Name())
		}
	}
	return result, "hands tie"
}
