package poker

import "holdem-showdown/pkg/deck"

// findStraightFlush returns the best straight within any single suit
func findStraightFlush(cards deck.Hand) (deck.Hand, bool) {
	var best deck.Hand
	for _, suitedCards := range suited(cards) {
		straight, ok := findStraight(suitedCards)
		if !ok {
			continue
		}

		if best == nil || compareRanks(straight, best) > 0 {
			best = straight
		}
	}

	return best, best != nil
}

// findFlush returns the five highest cards of the best flush
// With seven cards there can only be one suit with five members, but larger
// inputs are compared card by card.
func findFlush(cards deck.Hand) (deck.Hand, bool) {
	var best deck.Hand
	for _, suitedCards := range suited(cards) {
		flush := suitedCards[:5]
		if best == nil || compareRanks(flush, best) > 0 {
			best = flush
		}
	}

	if best == nil {
		return nil, false
	}

	return best.Clone(), true
}

// isRoyal returns true if a straight runs from Ace down to Ten
func isRoyal(straight deck.Hand) bool {
	return len(straight) == straightLength &&
		straight[0].Rank == deck.Ace &&
		straight[straightLength-1].Rank == deck.Ten
}
