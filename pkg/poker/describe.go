package poker

import (
	"fmt"
	"strings"

	"holdem-showdown/pkg/deck"
)

// Describe returns a human readable description of the holding
// i.e., "a Full House, Nines full of Fours"
func (h Holding) Describe() string {
	c := h.cards
	switch h.category {
	case RoyalFlush:
		return fmt.Sprintf("a Royal Flush of %s", c[0].Suit.Name())
	case StraightFlush:
		return fmt.Sprintf("a Straight Flush of %s, %s to %s", c[0].Suit.Name(), c[4].Rank.Name(), c[0].Rank.Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s, with a kicker %s", c[0].Rank.Plural(), c[4].Rank.Name())
	case FullHouse:
		return fmt.Sprintf("a Full House, %s full of %s", c[0].Rank.Plural(), c[3].Rank.Plural())
	case Flush:
		return fmt.Sprintf("a Flush of %s, %s", c[0].Suit.Name(), strings.Join(rankNames(c[:]), ", "))
	case Straight:
		return fmt.Sprintf("a Straight, %s to %s", c[4].Rank.Name(), c[0].Rank.Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s, with kickers %s", c[0].Rank.Plural(), joinAnd(rankNames(c[3:])))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s, with a kicker %s", c[0].Rank.Plural(), c[2].Rank.Plural(), c[4].Rank.Name())
	case Pair:
		return fmt.Sprintf("a Pair of %s, with kickers %s", c[0].Rank.Plural(), joinAnd(rankNames(c[2:])))
	case HighCard:
		return fmt.Sprintf("a High Card, %s, with kickers %s", c[0].Rank.Name(), joinAnd(rankNames(c[1:])))
	default:
		panic(fmt.Sprintf("unknown category: %d", h.category))
	}
}

func rankNames(cards []deck.Card) []string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.Rank.Name()
	}

	return names
}

// joinAnd joins names as "A, B and C"
func joinAnd(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}

	n := len(names)
	return strings.Join(names[:n-1], ", ") + " and " + names[n-1]
}
