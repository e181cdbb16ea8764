package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type holdingPayload struct {
	Category    string   `json:"category"`
	Cards       []string `json:"cards"`
	Description string   `json:"description"`
}

func TestMux_postClassify(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp holdingPayload
	assertPost(t, ts, "/classify", classifyRequest{
		Cards: []string{"9s", "4h", "9h", "Kc", "4s", "9c", "4d"},
	}, &resp, 200)
	a.Equal("Full House", resp.Category)
	a.Equal([]string{"9s", "9h", "9c", "4s", "4h"}, resp.Cards)
	a.Equal("a Full House, Nines full of Fours", resp.Description)

	var errObj errorResponse
	assertPost(t, ts, "/classify", classifyRequest{Cards: []string{"9s", "4h"}}, &errObj, 400)
	a.Equal("at least five cards are required: got 2", errObj.Message)

	assertPost(t, ts, "/classify", classifyRequest{Cards: []string{"9s", "4h", "9s", "Kc", "2d"}}, &errObj, 400)
	a.Equal("duplicate card: 9s", errObj.Message)

	assertPost(t, ts, "/classify", classifyRequest{Cards: []string{"9s", "4h", "1x", "Kc", "2d"}}, &errObj, 400)
	a.Equal(`invalid card: "1x"`, errObj.Message)

	assertPost(t, ts, "/classify", "{", &errObj, 400)

	assertPostWithContentType(t, ts, "/classify", "text/plain", "{}", &errObj, 415)
	a.Equal(415, errObj.StatusCode)
}

func TestMux_postCompare(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp struct {
		Result int            `json:"result"`
		Winner string         `json:"winner"`
		A      holdingPayload `json:"a"`
		B      holdingPayload `json:"b"`
	}

	board := []string{"2c", "3c", "4d", "5d", "6d"}
	assertPost(t, ts, "/compare", compareRequest{
		A: append([]string{"As", "Ah"}, board...),
		B: append([]string{"Ks", "Kh"}, board...),
	}, &resp, 200)
	a.Equal(0, resp.Result)
	a.Equal("split", resp.Winner)
	a.Equal("Straight", resp.A.Category)
	a.Equal(resp.A.Cards, resp.B.Cards)

	assertPost(t, ts, "/compare", compareRequest{
		A: []string{"As", "Ah", "Kd", "7c", "2h"},
		B: []string{"Ks", "Kh", "Kc", "7d", "2d"},
	}, &resp, 200)
	a.Equal(-1, resp.Result)
	a.Equal("b", resp.Winner)

	var errObj errorResponse
	assertPost(t, ts, "/compare", compareRequest{
		A: []string{"As", "Ah", "Kd", "7c", "2h"},
		B: []string{"Ks"},
	}, &errObj, 400)
	a.Equal("b: at least five cards are required: got 1", errObj.Message)
}

func TestMux_postShowdown(t *testing.T) {
	a := assert.New(t)
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var resp struct {
		Winners      []int   `json:"winners"`
		Split        bool    `json:"split"`
		Order        [][]int `json:"order"`
		Participants []struct {
			Seat int `json:"seat"`
			Hole struct {
				Cards     []string `json:"cards"`
				Shorthand string   `json:"shorthand"`
			} `json:"hole"`
			Holding holdingPayload `json:"holding"`
		} `json:"participants"`
	}

	assertPost(t, ts, "/showdown", showdownRequest{
		Board:   []string{"Kc", "Kd", "7h", "4s", "2c"},
		Players: [][]string{{"As", "Ah"}, {"Ks", "Qh"}, {"7s", "7d"}},
	}, &resp, 200)
	a.Equal([]int{2}, resp.Winners)
	a.False(resp.Split)
	a.Equal([][]int{{2}, {1}, {0}}, resp.Order)
	if a.Len(resp.Participants, 3) {
		a.Equal("[AA]", resp.Participants[0].Hole.Shorthand)
		a.Equal("Two Pair", resp.Participants[0].Holding.Category)
		a.Equal("a Full House, Sevens full of Kings", resp.Participants[2].Holding.Description)
	}

	var errObj errorResponse
	assertPost(t, ts, "/showdown", showdownRequest{
		Board:   []string{"Kc", "Kd", "7h", "4s", "2c"},
		Players: [][]string{{"As", "Ah"}, {"Ks"}},
	}, &errObj, 400)
	a.Equal("player 1: hole cards must be two distinct cards: got 1", errObj.Message)

	assertPost(t, ts, "/showdown", showdownRequest{
		Board:   []string{"Kc", "Kd", "7h", "4s", "2c"},
		Players: [][]string{{"As", "Ah"}},
	}, &errObj, 400)
	a.Equal("at least two players are required: got 1", errObj.Message)
}
