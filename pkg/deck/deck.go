package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"holdem-showdown/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards Hand `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

// NewWithGenerator returns an unshuffled deck that shuffles with the provided random source
func NewWithGenerator(g rng.Generator) *Deck {
	d := New()
	d.rng = g
	return d
}

// SetSeed will replace the random source with a seeded one
// This should only be used by tests and simulations that need to be reproducible
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.NewSeeded(seed)
}

func (d *Deck) buildDeck() {
	if cap(d.Cards) >= 52 {
		d.Cards = d.Cards[:0]
	} else {
		d.Cards = make(Hand, 0, 52)
	}

	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.Cards = append(d.Cards, Card{Rank: rank, Suit: suit})
		}
	}
}

// Shuffle rebuilds the full deck and shuffles it
// If no random source has been provided, crypto/rand is used
func (d *Deck) Shuffle() {
	d.buildDeck()

	if d.rng == nil {
		d.rng = rng.Crypto{}
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.Short()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN draws n cards
// Nothing is drawn if fewer than n cards are left
func (d *Deck) DrawN(n int) (Hand, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	hand := make(Hand, n)
	copy(hand, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
