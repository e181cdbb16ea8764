package poker

import (
	"encoding/json"
	"fmt"

	"holdem-showdown/pkg/deck"
)

// Holding is the best five card hand a player can make
// cards[0] is the most significant card and the rest are kickers in order.
type Holding struct {
	category Category
	cards    [HandSize]deck.Card
}

func newHolding(category Category, hand deck.Hand) Holding {
	if len(hand) != HandSize {
		panic(fmt.Sprintf("invariant violation: %s has %d cards", category, len(hand)))
	}

	h := Holding{category: category}
	copy(h.cards[:], hand)

	return h
}

// Category returns the category of the holding
func (h Holding) Category() Category {
	return h.category
}

// Cards returns a copy of the five cards, most significant first
func (h Holding) Cards() deck.Hand {
	cards := make(deck.Hand, HandSize)
	copy(cards, h.cards[:])

	return cards
}

// Compare returns 1 if h beats other, -1 if other beats h, and 0 on a split
func (h Holding) Compare(other Holding) int {
	switch {
	case h.category > other.category:
		return 1
	case h.category < other.category:
		return -1
	}

	return compareRanks(h.cards[:], other.cards[:])
}

// Beats returns true if h is strictly better than other
func (h Holding) Beats(other Holding) bool {
	return h.Compare(other) > 0
}

// Ties returns true if h and other split the pot
func (h Holding) Ties(other Holding) bool {
	return h.Compare(other) == 0
}

func (h Holding) String() string {
	return fmt.Sprintf("%s %s", h.category, deck.Hand(h.cards[:]).Short())
}

type holdingJSON struct {
	Category    Category `json:"category"`
	Cards       []string `json:"cards"`
	Description string   `json:"description"`
}

// MarshalJSON encodes the category, cards, and a description
func (h Holding) MarshalJSON() ([]byte, error) {
	return json.Marshal(holdingJSON{
		Category:    h.category,
		Cards:       h.Cards().Strings(),
		Description: h.Describe(),
	})
}

// Compare compares two holdings, see Holding.Compare()
func Compare(a, b Holding) int {
	return a.Compare(b)
}

// Best returns the indexes of every holding that ties for the best hand
func Best(holdings ...Holding) []int {
	if len(holdings) == 0 {
		return nil
	}

	best := []int{0}
	for i := 1; i < len(holdings); i++ {
		switch holdings[i].Compare(holdings[best[0]]) {
		case 1:
			best = []int{i}
		case 0:
			best = append(best, i)
		}
	}

	return best
}
