package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want Ordering
	}{
		{"pair of fives loses to pair of eights", "5H 5C 6S 7S KD", "2C 3S 8S 8D TD", Less},
		{"ace high beats queen high", "5D 8C 9S JS AC", "2C 5C 7D 8S QH", Greater},
		{"flush beats three aces", "2D 9C AS AH AC", "3D 6D 7D TD QD", Less},
		{"queens with nine kicker", "4D 6S 9H QH QC", "3D 6D 7H QD QS", Greater},
		{"fours full beats threes full", "2H 2D 4C 4D 4S", "3C 3D 3S 9S 9D", Greater},
		{"king high loses to ace high", "8C TS KC 9H 4S", "7D 2S 5D 3S AC", Less},
		{"identical ranks draw", "2H 3D 5S 9C KD", "2C 3H 5C 9S KH", Equal},
		{"suits never break ties", "TH JH QH KH 9H", "TS JS QS KS 9S", Equal},
		{"fifth kicker decides", "AH KD 9C 7S 4H", "AS KC 9D 7H 3C", Greater},
		{"royal flush beats king high straight flush", "TH JH QH KH AH", "9D TD JD QD KD", Greater},
		{"two pair kicker compared on sorted ranks", "KH KD 5C 5S QH", "KS KC 4D 4H AH", Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b := MustParseHand(tt.a), MustParseHand(tt.b)
			assert.Equal(t, tt.want, Compare(a, b))
			assert.Equal(t, tt.want.Reverse(), Compare(b, a))
		})
	}
}

func TestCompareCategoryMonotonic(t *testing.T) {
	t.Parallel()
	for i, weaker := range categoryHands {
		for _, stronger := range categoryHands[i+1:] {
			a, b := MustParseHand(stronger.hand), MustParseHand(weaker.hand)
			require.Equal(t, Greater, Compare(a, b), "%s vs %s", stronger.hand, weaker.hand)
		}
	}
}

func TestCompareTotalOrder(t *testing.T) {
	t.Parallel()
	hands := randomHands(42, 60)
	for _, c := range categoryHands {
		hands = append(hands, MustParseHand(c.hand))
	}

	for _, a := range hands {
		require.Equal(t, Equal, Compare(a, a), a.String())
		for _, b := range hands {
			ab, ba := Compare(a, b), Compare(b, a)
			require.Equal(t, ab, ba.Reverse(), "antisymmetry %s / %s", a, b)

			for _, c := range hands {
				if ab != Less && Compare(b, c) != Less {
					require.NotEqual(t, Less, Compare(a, c), "transitivity %s >= %s >= %s", a, b, c)
				}
			}
		}
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b   string
		want   Ordering
		reason string
	}{
		{"2D 9C AS AH AC", "3D 6D 7D TD QD", Less, "Flush beats Three of a Kind"},
		{"5H 5C 6S 7S KD", "2C 3S 8S 8D TD", Less, "One Pair with higher rank (Eight vs Five)"},
		{"4D 6S 9H QH QC", "3D 6D 7H QD QS", Greater, "One Pair with higher kicker (Nine vs Seven)"},
		{"2H 3D 5S 9C KD", "2C 3H 5C 9S KH", Equal, "hands tie"},
	}
	for _, tt := range tests {
		got, reason := Explain(MustParseHand(tt.a), MustParseHand(tt.b))
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.reason, reason)
	}
}

func TestOrderingString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, Less, Greater.Reverse())
}
