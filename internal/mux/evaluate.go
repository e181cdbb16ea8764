package mux

import (
	"fmt"
	"net/http"

	"holdem-showdown/pkg/deck"
	"holdem-showdown/pkg/poker"
	"holdem-showdown/pkg/showdown"
)

type classifyRequest struct {
	Cards []string `json:"cards"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		holding, err := classifyStrings(req.Cards)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, holding)
	}
}

type compareRequest struct {
	A []string `json:"a"`
	B []string `json:"b"`
}

type compareResponse struct {
	Result int           `json:"result"`
	Winner string        `json:"winner"`
	A      poker.Holding `json:"a"`
	B      poker.Holding `json:"b"`
}

func (m *Mux) postCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		a, err := classifyStrings(req.A)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("a: %w", err))
			return
		}

		b, err := classifyStrings(req.B)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("b: %w", err))
			return
		}

		resp := compareResponse{
			Result: poker.Compare(a, b),
			A:      a,
			B:      b,
		}

		switch resp.Result {
		case 1:
			resp.Winner = "a"
		case -1:
			resp.Winner = "b"
		default:
			resp.Winner = "split"
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type showdownRequest struct {
	Board   []string   `json:"board"`
	Players [][]string `json:"players"`
}

type showdownResponse struct {
	Winners      []int                  `json:"winners"`
	Split        bool                   `json:"split"`
	Order        [][]int                `json:"order"`
	Participants []showdown.Participant `json:"participants"`
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req showdownRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		board, err := deck.ParseCards(req.Board)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("board: %w", err))
			return
		}

		holes := make([]poker.HoleCards, len(req.Players))
		for i, player := range req.Players {
			cards, err := deck.ParseCards(player)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("player %d: %w", i, err))
				return
			}

			hole, err := poker.NewHoleCards(cards...)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, fmt.Errorf("player %d: %w", i, err))
				return
			}

			holes[i] = hole
		}

		result, err := showdown.Run(board, holes)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, showdownResponse{
			Winners:      result.Winners(),
			Split:        result.IsSplit(),
			Order:        result.Order(),
			Participants: result.Participants,
		})
	}
}

func classifyStrings(cards []string) (poker.Holding, error) {
	hand, err := deck.ParseCards(cards)
	if err != nil {
		return poker.Holding{}, err
	}

	return poker.Classify(hand)
}
