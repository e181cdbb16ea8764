package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
)

// Suits lists the suits in their canonical order
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// index is the position of the suit in Suits
// It only exists to make sorting deterministic, suits never break ties.
func (s Suit) index() int {
	switch s {
	case Spades:
		return 0
	case Hearts:
		return 1
	case Clubs:
		return 2
	case Diamonds:
		return 3
	default:
		return 4
	}
}

// Short returns the single-letter form of the suit (s, h, c, d)
func (s Suit) Short() string {
	switch s {
	case Spades, Hearts, Clubs, Diamonds:
		return string(s)[:1]
	default:
		return "?"
	}
}

// Name returns the capitalized suit name, i.e., Spades
func (s Suit) Name() string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(string(s)[:1]) + string(s)[1:]
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	case Hearts:
		return "♡"
	case Spades:
		return "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %q", string(s)))
	}
}

// Rank is the rank of a card
// Aces are always high. Straight detection is the only place an Ace plays low, see AceLowValue()
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// LowAce is the value an Ace takes at the bottom of a wheel (A-2-3-4-5)
const LowAce = 1

// AceLowValue returns the value of the rank when an Ace is considered low
func (r Rank) AceLowValue() int {
	if r == Ace {
		return LowAce
	}

	return int(r)
}

// Ordinal returns the 1–13 position of the rank with Ace first (Ace=1, King=13)
func (r Rank) Ordinal() int {
	return r.AceLowValue()
}

// Short returns the rank glyph (2-9, T, J, Q, K, A)
func (r Rank) Short() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return strconv.Itoa(int(r))
		}

		return "?"
	}
}

var rankNames = map[Rank]string{
	Two:   "Deuce",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

// Name returns the rank name, i.e., Deuce or Queen
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}

	return "Unknown"
}

// Plural returns the plural of the rank name, i.e., Sixes
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}

	return r.Name() + "s"
}

// Valid returns true if the rank is between Two and Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card is an individual playing card
// Cards are compared by rank only. Two cards of different suits with the same rank
// are equal for the purpose of ranking hands. Use Equal() to test physical identity.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.Short(), c.Suit)
}

// Short returns the two-character form of the card, i.e., As or Td
func (c Card) Short() string {
	return c.Rank.Short() + c.Suit.Short()
}

// Compare compares the rank of two cards, ignoring the suit
// Returns -1 if c is lower, 0 if the ranks match, and 1 if c is higher.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// SameRank returns true if both cards share a rank
func (c Card) SameRank(other Card) bool {
	return c.Rank == other.Rank
}

// Equal returns true if the cards are physically the same card (matches suit and rank)
func (c Card) Equal(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// Valid returns true if the card has a known rank and suit
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.index() < len(Suits)
}

// AceLowRank returns the value of the card where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	return c.Rank.AceLowValue()
}

// canonicalLess orders cards by rank descending, then by suit order
func canonicalLess(a, b Card) bool {
	if a.Rank != b.Rank {
		return a.Rank > b.Rank
	}

	return a.Suit.index() < b.Suit.index()
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([shcd])\z`)

// ParseCard parses a card in the format <rank><suit>
// Rank can be 2-14, or one of T, J, Q, K, A. Suit is one of s, h, c, d.
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}

		rank = Rank(n)
	}

	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %q: rank out of range", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "s":
		suit = Spades
	case "h":
		suit = Hearts
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a list of cards
func ParseCards(cards []string) (Hand, error) {
	hand := make(Hand, 0, len(cards))
	for _, s := range cards {
		card, err := ParseCard(s)
		if err != nil {
			return nil, err
		}

		hand = append(hand, card)
	}

	return hand, nil
}

// CardFromString returns a Card from the string.
// The string must be in a format ParseCard() understands, otherwise this panics
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString will return a hand from a comma-separated list, i.e., "As,Kd,10c"
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}
