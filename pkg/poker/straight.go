package poker

import "holdem-showdown/pkg/deck"

// straightLength is the number of consecutive ranks in a straight
const straightLength = 5

// findStraight returns the highest straight that can be made from a sorted hand
// An Ace counts both above a King and below a Deuce. The wheel is returned as 5-4-3-2-A.
func findStraight(cards deck.Hand) (deck.Hand, bool) {
	// byValue holds the first (canonical) card seen for each value, Ace in both 1 and 14
	var byValue [int(deck.Ace) + 1]*deck.Card
	distinct := 0
	for i := range cards {
		card := &cards[i]
		if byValue[card.Rank] != nil {
			continue
		}

		distinct++
		byValue[card.Rank] = card
		if card.Rank == deck.Ace {
			byValue[card.AceLowRank()] = card
		}
	}

	if distinct < straightLength {
		return nil, false
	}

	for top := int(deck.Ace); top >= int(deck.Five); top-- {
		if !isRun(byValue[:], top) {
			continue
		}

		straight := make(deck.Hand, 0, straightLength)
		for v := top; v > top-straightLength; v-- {
			straight = append(straight, *byValue[v])
		}

		return straight, true
	}

	return nil, false
}

func isRun(byValue []*deck.Card, top int) bool {
	for v := top; v > top-straightLength; v-- {
		if byValue[v] == nil {
			return false
		}
	}

	return true
}
