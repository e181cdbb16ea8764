package poker

import (
	"encoding/json"
	"errors"
	"fmt"

	"holdem-showdown/pkg/deck"
)

// ErrInvalidHoleCards is returned when hole cards are not two distinct cards
var ErrInvalidHoleCards = errors.New("hole cards must be two distinct cards")

// HoleCards are a player's two private cards, highest first
type HoleCards [2]deck.Card

// NewHoleCards returns the hole cards ordered high card first
func NewHoleCards(cards ...deck.Card) (HoleCards, error) {
	if len(cards) != 2 {
		return HoleCards{}, fmt.Errorf("%w: got %d", ErrInvalidHoleCards, len(cards))
	}

	if cards[0].Equal(cards[1]) {
		return HoleCards{}, fmt.Errorf("%w: %s twice", ErrInvalidHoleCards, cards[0].Short())
	}

	sorted := deck.Hand(cards).Sorted()
	return HoleCards{sorted[0], sorted[1]}, nil
}

// Pair returns true if both cards share a rank
func (h HoleCards) Pair() bool {
	return h[0].SameRank(h[1])
}

// Suited returns true if both cards share a suit
func (h HoleCards) Suited() bool {
	return h[0].Suit == h[1].Suit
}

// Shorthand returns the starting hand notation, i.e., [AA], [AKs], or [T9o]
func (h HoleCards) Shorthand() string {
	ranks := h[0].Rank.Short() + h[1].Rank.Short()
	switch {
	case h.Pair():
		return "[" + ranks + "]"
	case h.Suited():
		return "[" + ranks + "s]"
	default:
		return "[" + ranks + "o]"
	}
}

// Hand returns the hole cards as a hand
func (h HoleCards) Hand() deck.Hand {
	return deck.Hand{h[0], h[1]}
}

func (h HoleCards) String() string {
	return h[0].Short() + h[1].Short()
}

// MarshalJSON encodes the cards and their shorthand
func (h HoleCards) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Cards     []string `json:"cards"`
		Shorthand string   `json:"shorthand"`
	}{
		Cards:     h.Hand().Strings(),
		Shorthand: h.Shorthand(),
	})
}
