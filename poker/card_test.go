package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank != Ace {
		t.Errorf("Expected rank Ace, got %v", aceSpades.Rank)
	}
	if aceSpades.Suit != Spades {
		t.Errorf("Expected suit Spades, got %v", aceSpades.Suit)
	}
	if aceSpades.String() != "AS" {
		t.Errorf("Expected 'AS', got %s", aceSpades.String())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2C" {
		t.Errorf("Expected '2C', got %s", twoClubs.String())
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "AS", wantCard: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2H", wantCard: NewCard(Two, Hearts)},
		{name: "king of diamonds", input: "KD", wantCard: NewCard(King, Diamonds)},
		{name: "ten of clubs", input: "TC", wantCard: NewCard(Ten, Clubs)},
		{name: "jack of hearts", input: "JH", wantCard: NewCard(Jack, Hearts)},
		{name: "nine of spades", input: "9S", wantCard: NewCard(Nine, Spades)},
		{name: "one is not a rank", input: "1H", wantErr: true},
		{name: "invalid rank", input: "XS", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "lower case suit", input: "As", wantErr: true},
		{name: "ten as digits", input: "10H", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error, got %v", tt.input, card)
				}
				if !errors.Is(err, ErrInvalidCardCode) {
					t.Errorf("ParseCard(%q) error %v is not ErrInvalidCardCode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if card != tt.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, card, tt.wantCard)
			}
		})
	}
}

func TestCardCodeRoundTrip(t *testing.T) {
	t.Parallel()
	for _, r := range "23456789TJQKA" {
		for _, s := range "HDCS" {
			code := string(r) + string(s)
			card, err := ParseCard(code)
			if err != nil {
				t.Fatalf("ParseCard(%q): %v", code, err)
			}
			if card.String() != code {
				t.Errorf("round trip %q gave %q", code, card.String())
			}
		}
	}
}

func TestCardCompareIgnoresSuit(t *testing.T) {
	t.Parallel()
	if got := MustParseCard("QH").Compare(MustParseCard("JH")); got != 1 {
		t.Errorf("queen vs jack = %d, want 1", got)
	}
	if got := MustParseCard("JH").Compare(MustParseCard("QS")); got != -1 {
		t.Errorf("jack vs queen = %d, want -1", got)
	}
	if got := MustParseCard("7H").Compare(MustParseCard("7S")); got != 0 {
		t.Errorf("seven vs seven = %d, want 0", got)
	}
}

func TestRankNext(t *testing.T) {
	t.Parallel()
	for r := Two; r < Ace; r++ {
		next, ok := r.Next()
		if !ok || next != r+1 {
			t.Errorf("%v.Next() = %v, %v", r, next, ok)
		}
	}
	if _, ok := Ace.Next(); ok {
		t.Error("Ace should have no successor")
	}
}

func TestRankNames(t *testing.T) {
	t.Parallel()
	if Nine.Name() != "Nine" || Ace.Name() != "Ace" || Two.Name() != "Two" {
		t.Errorf("unexpected names: %s %s %s", Nine.Name(), Ace.Name(), Two.Name())
	}
	if Rank(1).Valid() || Rank(1).Name() != "Unknown" {
		t.Error("rank below Two must be invalid")
	}
}
