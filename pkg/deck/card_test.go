package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, Rank(2), Two)
	assert.Equal(t, Rank(10), Ten)
	assert.Equal(t, Rank(11), Jack)
	assert.Equal(t, Rank(12), Queen)
	assert.Equal(t, Rank(13), King)
	assert.Equal(t, Rank(14), Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Card{Rank: 2, Suit: Hearts}.String())
	assert.Equal(t, "J♣", Card{Rank: Jack, Suit: Clubs}.String())
	assert.Equal(t, "Q♢", Card{Rank: Queen, Suit: Diamonds}.String())
	assert.Equal(t, "K♠", Card{Rank: King, Suit: Spades}.String())
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "T♠", Card{Rank: Ten, Suit: Spades}.String())
}

func TestCard_Short(t *testing.T) {
	assert.Equal(t, "As", NewCard(Ace, Spades).Short())
	assert.Equal(t, "Th", NewCard(Ten, Hearts).Short())
	assert.Equal(t, "9c", NewCard(Nine, Clubs).Short())
	assert.Equal(t, "2d", NewCard(Two, Diamonds).Short())
}

func TestCard_Compare(t *testing.T) {
	a := assert.New(t)

	aceSpades := NewCard(Ace, Spades)
	aceHearts := NewCard(Ace, Hearts)
	kingSpades := NewCard(King, Spades)
	twoClubs := NewCard(Two, Clubs)

	// suit never matters
	a.Equal(0, aceSpades.Compare(aceHearts))
	a.True(aceSpades.SameRank(aceHearts))
	a.False(aceSpades.Equal(aceHearts))
	a.True(aceSpades.Equal(NewCard(Ace, Spades)))

	// aces are high
	a.Equal(1, aceSpades.Compare(kingSpades))
	a.Equal(-1, kingSpades.Compare(aceSpades))
	a.Equal(1, twoClubs.Compare(NewCard(Ace, Clubs))*-1)
}

func TestRank(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, Ace.AceLowValue())
	a.Equal(13, King.AceLowValue())
	a.Equal(1, Ace.Ordinal())
	a.Equal(2, Two.Ordinal())
	a.Equal("Deuce", Two.Name())
	a.Equal("Deuces", Two.Plural())
	a.Equal("Sixes", Six.Plural())
	a.Equal("Aces", Ace.Plural())
	a.Equal("Unknown", Rank(15).Name())
	a.Equal("?", Rank(1).Short())
	a.False(Rank(1).Valid())
	a.True(Ace.Valid())
}

func TestSuit(t *testing.T) {
	a := assert.New(t)
	a.Equal("s", Spades.Short())
	a.Equal("h", Hearts.Short())
	a.Equal("c", Clubs.Short())
	a.Equal("d", Diamonds.Short())
	a.Equal("Spades", Spades.Name())
	a.Equal("Diamonds", Diamonds.Name())

	a.PanicsWithValue(`unknown suit: "stars"`, func() {
		_ = Suit("stars").String()
	})
}

func TestCard_Valid(t *testing.T) {
	a := assert.New(t)
	a.True(NewCard(Ace, Spades).Valid())
	a.True(NewCard(Two, Diamonds).Valid())
	a.False(NewCard(Rank(15), Spades).Valid())
	a.False(NewCard(Rank(1), Hearts).Valid())
	a.False(NewCard(Ten, Suit("stars")).Valid())
	a.False(Card{}.Valid())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "As", want: NewCard(Ace, Spades)},
		{input: "14s", want: NewCard(Ace, Spades)},
		{input: "ah", want: NewCard(Ace, Hearts)},
		{input: "Td", want: NewCard(Ten, Diamonds)},
		{input: "10d", want: NewCard(Ten, Diamonds)},
		{input: "2C", want: NewCard(Two, Clubs)},
		{input: " 9h ", want: NewCard(Nine, Hearts)},
		{input: "1s", wantErr: true},
		{input: "15s", wantErr: true},
		{input: "Ax", wantErr: true},
		{input: "", wantErr: true},
		{input: "Asd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidCard))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, card)
		})
	}
}

func TestParseCards(t *testing.T) {
	hand, err := ParseCards([]string{"As", "Kd"})
	assert.NoError(t, err)
	assert.Equal(t, Hand{NewCard(Ace, Spades), NewCard(King, Diamonds)}, hand)

	_, err = ParseCards([]string{"As", "Xd"})
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCardsFromString(t *testing.T) {
	assert.Equal(t, Hand{}, CardsFromString(""))
	assert.Equal(t, "As,Td,2c", CardsFromString("14s,10d,2c").String())

	assert.Panics(t, func() {
		CardFromString("bad")
	})
}
