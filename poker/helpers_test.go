package poker

import (
	"math/rand"
)

// testDeck deals hands without replacement from a seeded 52-card deck.
type testDeck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

func newTestDeck(seed int64) *testDeck {
	d := &testDeck{rng: rand.New(rand.NewSource(seed))}

	i := 0
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.shuffle()
	return d
}

// shuffle shuffles the deck using Fisher-Yates
func (d *testDeck) shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// dealHand deals five cards, reshuffling when the deck runs low.
func (d *testDeck) dealHand() Hand {
	if d.next+HandSize > len(d.cards) {
		d.shuffle()
	}
	var h Hand
	copy(h[:], d.cards[d.next:d.next+HandSize])
	d.next += HandSize
	return h
}

// randomHands deals n hands, reshuffling between hands so any pair of them
// may share cards.
func randomHands(seed int64, n int) []Hand {
	d := newTestDeck(seed)
	hands := make([]Hand, n)
	for i := range hands {
		d.shuffle()
		hands[i] = d.dealHand()
	}
	return hands
}
