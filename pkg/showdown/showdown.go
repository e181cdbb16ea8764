package showdown

import (
	"errors"
	"fmt"

	"holdem-showdown/pkg/deck"
	"holdem-showdown/pkg/poker"
)

// BoardSize is the number of community cards on a complete board
const BoardSize = 5

// ErrNotEnoughPlayers is returned when a showdown has fewer than two players
var ErrNotEnoughPlayers = errors.New("at least two players are required")

// ErrInvalidBoard is returned when the board has too few or too many cards
var ErrInvalidBoard = errors.New("board must have between three and five cards")

// Result is the outcome of a showdown
type Result struct {
	Board        deck.Hand       `json:"-"`
	Participants []Participant   `json:"participants"`
	Tiers        [][]Participant `json:"-"`
}

// Run evaluates every player's best holding with the board and ranks them
func Run(board deck.Hand, holes []poker.HoleCards) (*Result, error) {
	if len(holes) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughPlayers, len(holes))
	}

	if len(board) < 3 || len(board) > BoardSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoard, len(board))
	}

	all := board.Clone()
	for _, hole := range holes {
		all = append(all, hole.Hand()...)
	}

	if dup, found := all.FindDuplicate(); found {
		return nil, fmt.Errorf("%w: %s", poker.ErrDuplicateCard, dup.Short())
	}

	tm := NewTierManager()
	participants := make([]Participant, len(holes))
	for i, hole := range holes {
		cards := append(hole.Hand(), board...)
		holding, err := poker.Classify(cards)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}

		participants[i] = Participant{
			Seat:    i,
			Hole:    hole,
			Holding: holding,
		}
		tm.AddParticipant(participants[i])
	}

	return &Result{
		Board:        board.Clone(),
		Participants: participants,
		Tiers:        tm.SortedTiers(),
	}, nil
}

// Winners returns the seats that win (or split) the pot
func (r *Result) Winners() []int {
	if len(r.Tiers) == 0 {
		return nil
	}

	seats := make([]int, len(r.Tiers[0]))
	for i, p := range r.Tiers[0] {
		seats[i] = p.Seat
	}

	return seats
}

// IsSplit returns true if more than one seat shares the pot
func (r *Result) IsSplit() bool {
	return len(r.Tiers) > 0 && len(r.Tiers[0]) > 1
}

// Order returns the seats grouped by finishing position
func (r *Result) Order() [][]int {
	order := make([][]int, len(r.Tiers))
	for i, participants := range r.Tiers {
		order[i] = make([]int, len(participants))
		for j, p := range participants {
			order[i][j] = p.Seat
		}
	}

	return order
}
