package poker

import "fmt"

// Suit is one of the four card suits. Suits carry no order; they are only
// compared for equality when looking for a flush.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// String returns the single letter code of the suit.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank is a card face value ordered from Two (lowest) to Ace (highest).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Valid reports whether r is one of the 13 playable ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Next returns the rank directly above r. Ace has no successor, so
// straights never wrap around to Two.
func (r Rank) Next() (Rank, bool) {
	if !r.Valid() || r == Ace {
		return 0, false
	}
	return r + 1, true
}

// String returns the single character code of the rank.
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return string(rune('0' + r))
	}
	return "?"
}

// Name returns the English name of the rank, e.g. "Nine".
func (r Rank) Name() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r-Two]
}

var rankNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two character code of the card, e.g. "TH".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Compare orders cards by rank only. Two cards of equal rank compare equal
// whatever their suits.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// ParseCard parses a two character card code such as "AS" or "9D".
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be 2 characters", ErrInvalidCardCode, code)
	}

	rank, ok := parseRank(code[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q in %q", ErrInvalidCardCode, code[0], code)
	}

	suit, ok := parseSuit(code[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q in %q", ErrInvalidCardCode, code[1], code)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(code string) Card {
	card, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return card
}

func parseRank(c byte) (Rank, bool) {
	switch c {
	case 'A':
		return Ace, true
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'J':
		return Jack, true
	case 'T':
		return Ten, true
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), true
	default:
		// '1' is deliberately absent: Ten is coded 'T'.
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'H':
		return Hearts, true
	case 'D':
		return Diamonds, true
	case 'C':
		return Clubs, true
	case 'S':
		return Spades, true
	default:
		return 0, false
	}
}
