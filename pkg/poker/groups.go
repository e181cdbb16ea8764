package poker

import (
	"holdem-showdown/pkg/deck"
)

// rankGroup is a run of same-ranked cards within a sorted hand
type rankGroup struct {
	rank  deck.Rank
	start int
	count int
}

// groupByRank groups a sorted hand by rank
// Groups are returned highest rank first
func groupByRank(cards deck.Hand) []rankGroup {
	groups := make([]rankGroup, 0, len(cards))
	for i, card := range cards {
		n := len(groups)
		if n > 0 && groups[n-1].rank == card.Rank {
			groups[n-1].count++
			continue
		}

		groups = append(groups, rankGroup{rank: card.Rank, start: i, count: 1})
	}

	return groups
}

// bestGroup returns the highest ranked group with at least min cards
// Groups listed in skip are ignored.
func bestGroup(groups []rankGroup, min int, skip ...deck.Rank) (rankGroup, bool) {
outer:
	for _, g := range groups {
		if g.count < min {
			continue
		}

		for _, r := range skip {
			if g.rank == r {
				continue outer
			}
		}

		return g, true
	}

	return rankGroup{}, false
}

// selection picks cards out of an immutable sorted hand by index
// Nothing is ever removed from the source, taken cards are only masked.
type selection struct {
	cards  deck.Hand
	groups []rankGroup
	taken  []bool
	hand   deck.Hand
}

func newSelection(cards deck.Hand, groups []rankGroup) *selection {
	return &selection{
		cards:  cards,
		groups: groups,
		taken:  make([]bool, len(cards)),
		hand:   make(deck.Hand, 0, 5),
	}
}

// takeGroup takes the first n cards of a group
func (s *selection) takeGroup(g rankGroup, n int) {
	for i := g.start; i < g.start+n && i < g.start+g.count; i++ {
		s.take(i)
	}
}

func (s *selection) take(i int) {
	s.taken[i] = true
	s.hand = append(s.hand, s.cards[i])
}

// kickers takes the n highest cards that have not been taken yet
// Returns false if there are not enough cards left
func (s *selection) kickers(n int) bool {
	return s.fill(n, func(int) bool { return true })
}

// singleKickers takes the n highest unpaired cards
// A card is unpaired if no other card in the source shares its rank
func (s *selection) singleKickers(n int) bool {
	singles := make([]bool, len(s.cards))
	for _, g := range s.groups {
		if g.count == 1 {
			singles[g.start] = true
		}
	}

	return s.fill(n, func(i int) bool { return singles[i] })
}

func (s *selection) fill(n int, allowed func(i int) bool) bool {
	picked := make([]int, 0, n)
	for i := range s.cards {
		if len(picked) == n {
			break
		}

		if !s.taken[i] && allowed(i) {
			picked = append(picked, i)
		}
	}

	if len(picked) < n {
		return false
	}

	for _, i := range picked {
		s.take(i)
	}

	return true
}

// suited returns the cards of each suit that has at least five members
// The cards keep their sorted order.
func suited(cards deck.Hand) []deck.Hand {
	bySuit := make(map[deck.Suit]deck.Hand, len(deck.Suits))
	for _, card := range cards {
		bySuit[card.Suit] = append(bySuit[card.Suit], card)
	}

	flushes := make([]deck.Hand, 0, 1)
	for _, suit := range deck.Suits {
		if len(bySuit[suit]) >= 5 {
			flushes = append(flushes, bySuit[suit])
		}
	}

	return flushes
}

// compareRanks compares two equal-length hands card by card
func compareRanks(a, b deck.Hand) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if cmp := a[i].Compare(b[i]); cmp != 0 {
			return cmp
		}
	}

	return 0
}
