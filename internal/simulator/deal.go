package simulator

import (
	"fmt"
	"io"
	"strings"

	"holdem-showdown/pkg/deck"
	"holdem-showdown/pkg/poker"
)

// Deal is one heads-up hand played to showdown
type Deal struct {
	// Dealt holds each player's hole cards in the order they came off the deck
	Dealt    [2]deck.Hand
	Hole     [2]poker.HoleCards
	Board    deck.Hand
	Holdings [2]poker.Holding
	// Result is 1 if the first player wins, -1 if the second player wins, and 0 on a split
	Result int
}

// Winner returns the index of the winning player, false on a split
func (d Deal) Winner() (int, bool) {
	switch d.Result {
	case 1:
		return 0, true
	case -1:
		return 1, true
	default:
		return 0, false
	}
}

// PlayHand deals two cards to each player and five to the board, then compares the holdings
// The deck should already be shuffled.
func PlayHand(d *deck.Deck) (Deal, error) {
	var deal Deal

	for i := range deal.Dealt {
		cards, err := d.DrawN(2)
		if err != nil {
			return Deal{}, err
		}

		deal.Dealt[i] = cards
		hole, err := poker.NewHoleCards(cards...)
		if err != nil {
			return Deal{}, err
		}

		deal.Hole[i] = hole
	}

	board, err := d.DrawN(5)
	if err != nil {
		return Deal{}, err
	}

	deal.Board = board

	for i, dealt := range deal.Dealt {
		cards := append(dealt.Clone(), board...)
		holding, err := poker.Classify(cards)
		if err != nil {
			return Deal{}, err
		}

		deal.Holdings[i] = holding
	}

	deal.Result = poker.Compare(deal.Holdings[0], deal.Holdings[1])
	return deal, nil
}

func titleBool(b bool) string {
	if b {
		return "True"
	}

	return "False"
}

// WriteDeal writes a deal in the transcript format
func WriteDeal(w io.Writer, d Deal) error {
	var sb strings.Builder
	p1, p2 := d.Holdings[0], d.Holdings[1]

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "P1:%s     %s     P2:%s\n", strings.Join(d.Dealt[0].Strings(), ""), strings.Join(d.Board.Sorted().Strings(), ""), strings.Join(d.Dealt[1].Strings(), ""))
	fmt.Fprintf(&sb, "P1:%-34sP2:%s\n", d.Hole[0].Shorthand(), d.Hole[1].Shorthand())
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "P1: %s\n", p1.Describe())
	fmt.Fprintf(&sb, "P2: %s\n", p2.Describe())
	fmt.Fprintf(&sb, "P1 < P2 (P2 WINS): %s\n", titleBool(d.Result < 0))
	fmt.Fprintf(&sb, "P1 > P2 (P1 WINS): %s\n", titleBool(d.Result > 0))
	fmt.Fprintf(&sb, "P1 == P2 (SPLIT) : %s\n", titleBool(d.Result == 0))
	fmt.Fprintf(&sb, "P1 != P2         : %s\n", titleBool(d.Result != 0))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "P1: %s\n", strings.Join(p1.Cards().Strings(), ""))
	fmt.Fprintf(&sb, "P2: %s\n", strings.Join(p2.Cards().Strings(), ""))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
