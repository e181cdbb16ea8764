package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := CardsFromString("2c,3c,4d")
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "As,3c", h.String())
}

func TestHand_Sorted(t *testing.T) {
	h := CardsFromString("3c,Ad,3s,Kh,Ah")
	sorted := h.Sorted()
	assert.Equal(t, "Ah,Ad,Kh,3s,3c", sorted.String())

	// input is untouched
	assert.Equal(t, "3c,Ad,3s,Kh,Ah", h.String())
}

func TestHand_FindDuplicate(t *testing.T) {
	_, ok := CardsFromString("As,Ah,Kd").FindDuplicate()
	assert.False(t, ok)

	card, ok := CardsFromString("As,Kd,14s").FindDuplicate()
	assert.True(t, ok)
	assert.Equal(t, NewCard(Ace, Spades), card)
}

func TestHand_FirstLastCard(t *testing.T) {
	_, ok := Hand{}.FirstCard()
	assert.False(t, ok)
	_, ok = Hand{}.LastCard()
	assert.False(t, ok)

	h := CardsFromString("As,Kd,Qc")
	first, _ := h.FirstCard()
	last, _ := h.LastCard()
	assert.Equal(t, "As", first.Short())
	assert.Equal(t, "Qc", last.Short())
}

func TestHand_Short(t *testing.T) {
	assert.Equal(t, "[As][Td]", CardsFromString("As,Td").Short())
	assert.Equal(t, []string{"As", "Td"}, CardsFromString("As,Td").Strings())
}
