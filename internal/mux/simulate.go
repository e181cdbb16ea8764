package mux

import (
	"fmt"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"holdem-showdown/internal/simulator"
	"holdem-showdown/pkg/model"
)

type simulateRequest struct {
	Trials  int   `json:"trials"`
	Workers int   `json:"workers"`
	Seed    int64 `json:"seed"`
	Top     int   `json:"top"`
	Persist bool  `json:"persist"`
}

type simulateResponse struct {
	UUID   string           `json:"uuid,omitempty"`
	Report simulator.Report `json:"report"`
}

func (m *Mux) postSimulate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req simulateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if req.Trials > m.config.maxTrials {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("trials cannot be greater than %d", m.config.maxTrials))
			return
		}

		if req.Workers > m.config.maxWorkers {
			req.Workers = m.config.maxWorkers
		}

		sim, err := simulator.New(simulator.Options{
			Trials:  req.Trials,
			Workers: req.Workers,
			Seed:    req.Seed,
		})
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"remoteAddr": remoteAddr(r),
			"trials":     req.Trials,
		}).Info("simulation requested")

		result, err := sim.Run(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		resp := simulateResponse{Report: result.Report(req.Top)}
		if req.Persist {
			run := model.NewSimulationRun(result, req.Top)
			if err := m.runs.SaveRun(r.Context(), run, result.Wins); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			resp.UUID = run.UUID
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) getSimulation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		runs, err := m.runs.ListRuns(r.Context(), start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}

func (m *Mux) getSimulationUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := m.runs.GetRun(r.Context(), gmux.Vars(r)["uuid"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}
