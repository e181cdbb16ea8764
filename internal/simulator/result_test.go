package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"holdem-showdown/pkg/deck"
	"holdem-showdown/pkg/poker"
)

func testDeal(t *testing.T, p1, p2, board string) Deal {
	t.Helper()

	var deal Deal
	for i, cards := range []string{p1, p2} {
		deal.Dealt[i] = deck.CardsFromString(cards)
		hole, err := poker.NewHoleCards(deal.Dealt[i]...)
		require.NoError(t, err)
		deal.Hole[i] = hole
		deal.Holdings[i] = poker.MustClassify(append(deal.Dealt[i].Clone(), deck.CardsFromString(board)...))
	}

	deal.Board = deck.CardsFromString(board)
	deal.Result = poker.Compare(deal.Holdings[0], deal.Holdings[1])
	return deal
}

func TestResult_Add(t *testing.T) {
	a := assert.New(t)

	r := NewResult()
	r.Add(testDeal(t, "As,Ah", "Kd,Qc", "2c,7d,9h,Js,3s"))
	r.Add(testDeal(t, "5s,4h", "Kd,Kc", "2c,7d,9h,Js,3s"))
	r.Add(testDeal(t, "As,Ah", "Ks,Kh", "2c,3c,4d,5d,6d"))
	r.Add(testDeal(t, "Ad,Ac", "Kd,Qc", "2s,7d,9h,Js,3h"))

	a.Equal(4, r.Trials)
	a.Equal(2, r.P1Wins)
	a.Equal(1, r.P2Wins)
	a.Equal(1, r.Splits)
	a.Equal(map[string]int{"[AA]": 2, "[KK]": 1}, r.Wins)
	a.Equal(map[poker.Category]int{poker.Pair: 3, poker.Straight: 1}, r.Categories)

	a.Equal([]Tally{{"[AA]", 2}, {"[KK]", 1}}, r.Top(0))
	a.Equal([]Tally{{"[AA]", 2}}, r.Top(1))
}

func TestResult_Merge(t *testing.T) {
	a := assert.New(t)

	r1 := NewResult()
	r1.Add(testDeal(t, "As,Ah", "Kd,Qc", "2c,7d,9h,Js,3s"))
	r2 := NewResult()
	r2.Add(testDeal(t, "Ks,Qs", "Ad,Ac", "2c,7d,9h,Js,3s"))

	r1.Merge(r2)
	r1.Merge(nil)
	a.Equal(2, r1.Trials)
	a.Equal(1, r1.P1Wins)
	a.Equal(1, r1.P2Wins)
	a.Equal(map[string]int{"[AA]": 2}, r1.Wins)
}

func TestResult_Report(t *testing.T) {
	r := NewResult()
	r.Seed = 42
	r.Workers = 1
	r.Add(testDeal(t, "As,Ah", "Kd,Qc", "2c,7d,9h,Js,3s"))

	report := r.Report(5)
	assert.Len(t, report.Categories, 10)
	assert.Equal(t, CategoryCount{"Royal Flush", 0}, report.Categories[0])
	assert.Equal(t, CategoryCount{"Pair", 1}, report.Categories[8])

	b, err := yaml.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(b), "seed: 42\n")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(b, &decoded))
	assert.Equal(t, report, decoded)
}
