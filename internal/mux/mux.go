package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdem-showdown/pkg/model"
)

// RunStore persists simulation runs
type RunStore interface {
	SaveRun(ctx context.Context, run *model.SimulationRun, wins map[string]int) error
	GetRun(ctx context.Context, uuid string) (*model.SimulationRun, error)
	ListRuns(ctx context.Context, start int64, rows int) ([]*model.SimulationRun, error)
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config
	version string
	runs    RunStore
}

type config struct {
	// maxTrials is the largest simulation a single request may run
	maxTrials int
	// maxWorkers caps the workers of a single simulation request
	maxWorkers int
}

// NewMux returns a new HTTP mux
// Simulation runs are stored in postgres
func NewMux(version string) *Mux {
	return newMux(version, modelStore{})
}

func newMux(version string, runs RunStore) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		runs:    runs,
		config: config{
			maxTrials:  1000000,
			maxWorkers: 8,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	r.Methods(http.MethodPost).Path("/compare").Handler(this.postCompare())
	r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())
	r.Methods(http.MethodPost).Path("/simulate").Handler(this.postSimulate())
	r.Methods(http.MethodGet).Path("/simulation").Handler(this.getSimulation())
	r.Methods(http.MethodGet).Path("/simulation/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Handler(this.getSimulationUUID())

	return this
}

type modelStore struct{}

func (modelStore) SaveRun(ctx context.Context, run *model.SimulationRun, wins map[string]int) error {
	return run.Save(ctx, wins)
}

func (modelStore) GetRun(ctx context.Context, uuid string) (*model.SimulationRun, error) {
	return model.GetSimulationRunByUUID(ctx, uuid)
}

func (modelStore) ListRuns(ctx context.Context, start int64, rows int) ([]*model.SimulationRun, error) {
	return model.GetSimulationRuns(ctx, start, rows)
}
