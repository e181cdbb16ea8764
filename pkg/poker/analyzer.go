package poker

import (
	"errors"
	"fmt"

	"holdem-showdown/pkg/deck"
)

// HandSize is the number of cards in a holding
const HandSize = 5

// ErrInsufficientCards is returned when fewer than five cards are classified
var ErrInsufficientCards = errors.New("at least five cards are required")

// ErrDuplicateCard is returned when the same physical card appears twice
var ErrDuplicateCard = errors.New("duplicate card")

// Detector finds the best five cards for a category
// The returned hand is ordered most significant card first.
type Detector func(cards []deck.Card) (deck.Hand, bool)

type detection struct {
	category Category
	detect   func(cards deck.Hand, groups []rankGroup) (deck.Hand, bool)
}

// cascade is checked in order, the first match wins
var cascade = []detection{
	{RoyalFlush, detectRoyalFlush},
	{StraightFlush, detectStraightFlush},
	{FourOfAKind, detectFourOfAKind},
	{FullHouse, detectFullHouse},
	{Flush, detectFlush},
	{Straight, detectStraight},
	{ThreeOfAKind, detectThreeOfAKind},
	{TwoPair, detectTwoPair},
	{Pair, detectPair},
	{HighCard, detectHighCard},
}

// Classify returns the best five card holding that can be made from the cards
func Classify(cards []deck.Card) (Holding, error) {
	if len(cards) < HandSize {
		return Holding{}, fmt.Errorf("%w: got %d", ErrInsufficientCards, len(cards))
	}

	for _, card := range cards {
		if !card.Valid() {
			return Holding{}, fmt.Errorf("%w: rank %d of %q", deck.ErrInvalidCard, int(card.Rank), string(card.Suit))
		}
	}

	if dup, found := deck.Hand(cards).FindDuplicate(); found {
		return Holding{}, fmt.Errorf("%w: %s", ErrDuplicateCard, dup.Short())
	}

	sorted := deck.Hand(cards).Sorted()
	groups := groupByRank(sorted)

	for _, d := range cascade {
		if hand, ok := d.detect(sorted, groups); ok {
			return newHolding(d.category, hand), nil
		}
	}

	panic(fmt.Sprintf("invariant violation: no category matched %s", sorted))
}

// MustClassify is like Classify but panics on error
func MustClassify(cards []deck.Card) Holding {
	h, err := Classify(cards)
	if err != nil {
		panic(err)
	}

	return h
}

// exported returns a Detector that sorts its input before detecting
func exported(detect func(deck.Hand, []rankGroup) (deck.Hand, bool)) Detector {
	return func(cards []deck.Card) (deck.Hand, bool) {
		sorted := deck.Hand(cards).Sorted()
		return detect(sorted, groupByRank(sorted))
	}
}

// Detectors for each category
// These are checked in isolation and do not know about stronger categories, i.e.,
// StraightDetector reports a straight for a straight flush.
var (
	RoyalFlushDetector    = exported(detectRoyalFlush)
	StraightFlushDetector = exported(detectStraightFlush)
	FourOfAKindDetector   = exported(detectFourOfAKind)
	FullHouseDetector     = exported(detectFullHouse)
	FlushDetector         = exported(detectFlush)
	StraightDetector      = exported(detectStraight)
	ThreeOfAKindDetector  = exported(detectThreeOfAKind)
	TwoPairDetector       = exported(detectTwoPair)
	PairDetector          = exported(detectPair)
	HighCardDetector      = exported(detectHighCard)
)

// DetectorFor returns the detector for the category
func DetectorFor(c Category) Detector {
	switch c {
	case RoyalFlush:
		return RoyalFlushDetector
	case StraightFlush:
		return StraightFlushDetector
	case FourOfAKind:
		return FourOfAKindDetector
	case FullHouse:
		return FullHouseDetector
	case Flush:
		return FlushDetector
	case Straight:
		return StraightDetector
	case ThreeOfAKind:
		return ThreeOfAKindDetector
	case TwoPair:
		return TwoPairDetector
	case Pair:
		return PairDetector
	case HighCard:
		return HighCardDetector
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

func detectRoyalFlush(cards deck.Hand, _ []rankGroup) (deck.Hand, bool) {
	hand, ok := findStraightFlush(cards)
	if !ok || !isRoyal(hand) {
		return nil, false
	}

	return hand, true
}

func detectStraightFlush(cards deck.Hand, _ []rankGroup) (deck.Hand, bool) {
	return findStraightFlush(cards)
}

func detectFourOfAKind(cards deck.Hand, groups []rankGroup) (deck.Hand, bool) {
	quads, ok := bestGroup(groups, 4)
	if !ok {
		return nil, false
	}

	s := newSelection(cards, groups)
	s.takeGroup(quads, 4)
	if !s.kickers(1) {
		return nil, false
	}

	return s.hand, true
}

func detectFullHouse(cards deck.Hand, groups []rankGroup) (deck.Hand, bool) {
	trips, ok := bestGroup(groups, 3)
	if !ok {
		return nil, false
	}

	// a second set of trips counts as the pair
	pair, ok := bestGroup(groups, 2, trips.rank)
	if !ok {
		return nil, false
	}

	s := newSelection(cards, groups)
	s.takeGroup(trips, 3)
	s.takeGroup(pair, 2)

	return s.hand, true
}

func detectFlush(cards deck.Hand, _ []rankGroup) (deck.Hand, bool) {
	return findFlush(cards)
}

func detectStraight(cards deck.Hand, _ []rankGroup) (deck.Hand, bool) {
	return findStraight(cards)
}

func detectThreeOfAKind(cards deck.Hand, groups []rankGroup) (deck.Hand, bool) {
	trips, ok := bestGroup(groups, 3)
	if !ok {
		return nil, false
	}

	// two sets of trips is a full house
	if _, ok := bestGroup(groups, 3, trips.rank); ok {
		return nil, false
	}

	s := newSelection(cards, groups)
	s.takeGroup(trips, 3)
	if !s.singleKickers(2) {
		return nil, false
	}

	return s.hand, true
}

func detectTwoPair(cards deck.Hand, groups []rankGroup) (deck.Hand, bool) {
	high, ok := bestGroup(groups, 2)
	if !ok {
		return nil, false
	}

	low, ok := bestGroup(groups, 2, high.rank)
	if !ok {
		return nil, false
	}

	s := newSelection(cards, groups)
	s.takeGroup(high, 2)
	s.takeGroup(low, 2)
	if !s.kickers(1) {
		return nil, false
	}

	return s.hand, true
}

func detectPair(cards deck.Hand, groups []rankGroup) (deck.Hand, bool) {
	pair, ok := bestGroup(groups, 2)
	if !ok {
		return nil, false
	}

	s := newSelection(cards, groups)
	s.takeGroup(pair, 2)
	if !s.singleKickers(3) {
		return nil, false
	}

	return s.hand, true
}

// detectHighCard prefers one card per rank and tops up with the remaining cards
func detectHighCard(cards deck.Hand, groups []rankGroup) (deck.Hand, bool) {
	if len(cards) < HandSize {
		return nil, false
	}

	s := newSelection(cards, groups)
	for _, g := range groups {
		if len(s.hand) == HandSize {
			break
		}

		s.takeGroup(g, 1)
	}

	if !s.kickers(HandSize - len(s.hand)) {
		return nil, false
	}

	return s.hand, true
}
