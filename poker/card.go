package poker

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit is one of the four card suits, stored as its display glyph.
type Suit rune

const (
	Hearts   Suit = '♥'
	Diamonds Suit = '♦'
	Spades   Suit = '♠'
	Clubs    Suit = '♣'
)

// Suits lists every suit in deck-building order.
var Suits = [4]Suit{Hearts, Diamonds, Spades, Clubs}

const (
	// MinRank and MaxRank bound card ranks. Jack through ace are 11-14;
	// comparisons always use the numeric rank, the face names are for
	// display only.
	MinRank = 2
	MaxRank = 14
)

var faceRanks = map[int]string{
	11: "J",
	12: "Q",
	13: "K",
	14: "A",
}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank int
	Suit Suit
}

// RankString returns the display name of the card's rank: the numeral
// for 2-10, or J/Q/K/A.
func (c Card) RankString() string {
	if name, ok := faceRanks[c.Rank]; ok {
		return name
	}
	return strconv.Itoa(c.Rank)
}

// String renders the card as "[<RANK><SUIT>]" with the rank padded to
// two characters, e.g. "[5 ♥]" or "[10♦]".
func (c Card) String() string {
	return fmt.Sprintf("[%-2s%c]", c.RankString(), c.Suit)
}

// CardsToString concatenates the rendered cards with no separator.
func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(len(cards) * 6)
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
