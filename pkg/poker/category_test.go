package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High Card", HighCard.String())
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.String())
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.PanicsWithValue(t, "unknown category: 10", func() {
		_ = Category(10).String()
	})
}

func TestCategory_order(t *testing.T) {
	for i := 1; i < len(Categories); i++ {
		assert.Greater(t, int(Categories[i-1]), int(Categories[i]))
	}
}

func TestCategory_MarshalText(t *testing.T) {
	b, err := FullHouse.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Full House", string(b))

	_, err = Category(-1).MarshalText()
	assert.EqualError(t, err, "unknown category: -1")
}
