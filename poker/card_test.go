package poker

import "testing"

func TestCardString(t *testing.T) {
	testCases := []struct {
		card     Card
		expected string
	}{
		{Card{Rank: 2, Suit: Hearts}, "[2 ♥]"},
		{Card{Rank: 10, Suit: Diamonds}, "[10♦]"},
		{Card{Rank: 11, Suit: Clubs}, "[J ♣]"},
		{Card{Rank: 12, Suit: Spades}, "[Q ♠]"},
		{Card{Rank: 13, Suit: Hearts}, "[K ♥]"},
		{Card{Rank: 14, Suit: Spades}, "[A ♠]"},
	}
	for _, tc := range testCases {
		if got := tc.card.String(); got != tc.expected {
			t.Errorf("Card{%d, %c}.String() = %q, expected %q", tc.card.Rank, tc.card.Suit, got, tc.expected)
		}
	}
}

func TestCardsToString(t *testing.T) {
	cards := []Card{
		{Rank: 14, Suit: Hearts},
		{Rank: 10, Suit: Diamonds},
	}
	expected := "[A ♥][10♦]"
	if got := CardsToString(cards); got != expected {
		t.Errorf("CardsToString = %q, expected %q", got, expected)
	}
}
