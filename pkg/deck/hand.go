package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

// Less sorts by rank descending, then by suit order
func (h Hand) Less(i, j int) bool {
	return canonicalLess(h[i], h[j])
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Sorted returns a copy of the hand sorted by rank (high to low)
func (h Hand) Sorted() Hand {
	sorted := h.Clone()
	sort.Sort(sorted)

	return sorted
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// FindDuplicate returns the first card that appears more than once
func (h Hand) FindDuplicate() (Card, bool) {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return c, true
		}

		seen[c] = true
	}

	return Card{}, false
}

// FirstCard returns the first card in the hand, false if the hand is empty
func (h Hand) FirstCard() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	return h[0], true
}

// LastCard returns the last card in the hand, false if the hand is empty
func (h Hand) LastCard() (Card, bool) {
	n := len(h)
	if n == 0 {
		return Card{}, false
	}

	return h[n-1], true
}

// Short returns the hand in its short form, i.e., [As][Kd]
func (h Hand) Short() string {
	var sb strings.Builder
	for _, c := range h {
		sb.WriteString("[")
		sb.WriteString(c.Short())
		sb.WriteString("]")
	}

	return sb.String()
}

// Strings returns the short form of every card
func (h Hand) Strings() []string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.Short()
	}

	return s
}

func (h Hand) String() string {
	return strings.Join(h.Strings(), ",")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
