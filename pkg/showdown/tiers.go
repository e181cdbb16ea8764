package showdown

import (
	"sort"

	"holdem-showdown/pkg/poker"
)

// Participant is a seat whose holding is compared at showdown
type Participant struct {
	Seat    int             `json:"seat"`
	Hole    poker.HoleCards `json:"hole"`
	Holding poker.Holding   `json:"holding"`
}

type tier struct {
	holding      poker.Holding
	participants []Participant
}

// TierManager groups participants by the strength of their holding
// Participants whose holdings split the pot share a tier.
type TierManager struct {
	tiers []*tier
}

// NewTierManager returns a new TierManager
func NewTierManager() *TierManager {
	return &TierManager{}
}

// AddParticipant places the participant into the tier matching their holding
func (t *TierManager) AddParticipant(p Participant) {
	for _, existing := range t.tiers {
		if existing.holding.Ties(p.Holding) {
			existing.participants = append(existing.participants, p)
			return
		}
	}

	t.tiers = append(t.tiers, &tier{
		holding:      p.Holding,
		participants: []Participant{p},
	})
}

// SortedTiers returns the participants grouped by holding, best holding first
func (t *TierManager) SortedTiers() [][]Participant {
	tiers := make([]*tier, len(t.tiers))
	copy(tiers, t.tiers)

	sort.Sort(sort.Reverse(sortByHolding(tiers)))

	tieredParticipants := make([][]Participant, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

type sortByHolding []*tier

func (s sortByHolding) Len() int {
	return len(s)
}

func (s sortByHolding) Less(i, j int) bool {
	return s[i].holding.Compare(s[j].holding) < 0
}

func (s sortByHolding) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
