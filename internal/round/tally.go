package round

import "github.com/lox/fivecard/poker"

// Tally counts round outcomes.
type Tally struct {
	WinsA   int `json:"wins_a"`
	WinsB   int `json:"wins_b"`
	Draws   int `json:"draws"`
	Skipped int `json:"skipped"`
}

// Add records one outcome seen from hand A's side.
func (t *Tally) Add(o poker.Ordering) {
	switch o {
	case poker.Greater:
		t.WinsA++
	case poker.Less:
		t.WinsB++
	default:
		t.Draws++
	}
}

// Merge adds the counts of other into t.
func (t *Tally) Merge(other Tally) {
	t.WinsA += other.WinsA
	t.WinsB += other.WinsB
	t.Draws += other.Draws
	t.Skipped += other.Skipped
}

// Rounds returns the number of rounds that were evaluated.
func (t Tally) Rounds() int {
	return t.WinsA + t.WinsB + t.Draws
}
