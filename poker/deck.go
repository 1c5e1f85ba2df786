package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrDeckExhausted is returned when a card is requested from an empty
// deck. A table never deals more than 52 cards in a round, so hitting
// this is a contract violation, not a recoverable condition.
var ErrDeckExhausted = errors.New("deck exhausted")

var fullDeck []Card

func init() {
	fullDeck = initializeFullCards()
}

func initializeFullCards() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Deck is a bag of up to 52 cards dealt pop-style from the top.
type Deck struct {
	cards   []Card
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewDeck returns a shuffled 52-card deck. Pass a seeded source for a
// reproducible order, or nil for a crypto-seeded one.
func NewDeck(source rand.Source) *Deck {
	if source == nil {
		source = newSeed()
	}
	deck := &Deck{randGen: rand.New(source)}
	deck.Shuffle()
	return deck
}

// Shuffle rebuilds the full 52-card set, discarding any dealt state,
// and randomizes it with a Fisher-Yates pass.
func (deck *Deck) Shuffle() *Deck {
	deck.cards = make([]Card, len(fullDeck))
	copy(deck.cards, fullDeck)
	deck.randGen.Shuffle(len(deck.cards), func(i, j int) {
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	})
	return deck
}

// Deal removes and returns the top card.
func (deck *Deck) Deal() (Card, error) {
	if len(deck.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := deck.cards[len(deck.cards)-1]
	deck.cards = deck.cards[:len(deck.cards)-1]
	return card, nil
}

// Remaining reports how many cards have not been dealt.
func (deck *Deck) Remaining() int {
	return len(deck.cards)
}

// Empty reports whether every card has been dealt.
func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}
